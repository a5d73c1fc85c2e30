package main

import (
	"testing"

	"github.com/nicolagi/logbook"
	"github.com/stretchr/testify/assert"
)

func TestNewEditorSelection(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	assert.Equal(t, execEditor{command: "vi"}, newEditor(&logbook.Config{}))
	t.Setenv("EDITOR", "ed")
	assert.Equal(t, execEditor{command: "ed"}, newEditor(&logbook.Config{}))
	t.Setenv("VISUAL", "emacs")
	assert.Equal(t, execEditor{command: "emacs"}, newEditor(&logbook.Config{}))
	assert.Equal(t, execEditor{command: "nano"}, newEditor(&logbook.Config{Editor: "nano"}))
	assert.Equal(t, plumbEditor{}, newEditor(&logbook.Config{Editor: "plumb"}))
}
