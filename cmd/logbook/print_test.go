package main

import (
	"bytes"
	"testing"

	"github.com/nicolagi/logbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintEntriesSingleFile(t *testing.T) {
	var buf bytes.Buffer
	err := printEntries(&buf, []*logbook.FileEntry{
		{Entry: logbook.Entry{Text: "write spec"}, Section: logbook.SectionToday, File: "/r/2024/01/15.todo"},
		{Entry: logbook.Entry{Text: "buy milk", Done: true}, Section: logbook.SectionCompleted, File: "/r/2024/01/15.todo"},
	})
	require.Nil(t, err)
	assert.Equal(t, " \tTODAY\twrite spec\nx\tCOMPLETED\tbuy milk\n", buf.String())
}

func TestPrintEntriesManyFiles(t *testing.T) {
	var buf bytes.Buffer
	err := printEntries(&buf, []*logbook.FileEntry{
		{Entry: logbook.Entry{Text: "old news"}, Section: logbook.SectionToday, File: "/r/2024/01/15.todo"},
		{Entry: logbook.Entry{Text: "write spec"}, Section: logbook.SectionToday, File: "/r/2024/01/16.todo"},
	})
	require.Nil(t, err)
	assert.Equal(t, "15.todo:\n \tTODAY\told news\n16.todo:\n \tTODAY\twrite spec\n", buf.String())
}
