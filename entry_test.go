package logbook_test

import (
	"testing"

	"github.com/nicolagi/logbook"
	"github.com/stretchr/testify/assert"
)

func TestParseEntry(t *testing.T) {
	testCases := []struct {
		line     string
		expected logbook.Entry
	}{
		{"buy milk", logbook.Entry{Text: "buy milk"}},
		{"- buy milk", logbook.Entry{Text: "buy milk"}},
		{"* buy milk", logbook.Entry{Text: "buy milk"}},
		{"[] buy milk", logbook.Entry{Text: "buy milk"}},
		{"[ ] buy milk", logbook.Entry{Text: "buy milk"}},
		{"-> carried over", logbook.Entry{Text: "carried over"}},
		{"[x] write spec", logbook.Entry{Text: "write spec", Done: true}},
		{"[X] write spec", logbook.Entry{Text: "write spec", Done: true}},
		{"  - indented  ", logbook.Entry{Text: "indented"}},
		{"-no space after marker", logbook.Entry{Text: "no space after marker"}},
	}
	for _, tc := range testCases {
		t.Run("", func(t *testing.T) {
			assert.Equal(t, tc.expected, logbook.ParseEntry(tc.line))
		})
	}
}

func TestEntryString(t *testing.T) {
	assert.Equal(t, "buy milk", logbook.Entry{Text: "buy milk"}.String())
	assert.Equal(t, "[x] buy milk", logbook.Entry{Text: "buy milk", Done: true}.String())
	// Whatever marker was parsed, rendering is canonical: open entries come back
	// bare, done entries with "[x]".
	assert.Equal(t, "buy milk", logbook.ParseEntry("- buy milk").String())
	assert.Equal(t, "[x] done thing", logbook.ParseEntry("[X] done thing").String())
}
