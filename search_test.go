package logbook_test

import (
	"testing"
	"time"

	"github.com/nicolagi/logbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture(t *testing.T) *logbook.Book {
	t.Helper()
	b, err := logbook.NewBook(t.TempDir(), logbook.WithNow(fixedClock(date(2024, time.January, 16))))
	require.Nil(t, err)
	writeLogFile(t, b, date(2024, time.January, 15), `# TODAY
old news

`)
	writeLogFile(t, b, date(2024, time.January, 16), `# TODAY
write spec
[x] buy milk

# THIS WEEK
review spec

`)
	return b
}

func texts(entries []*logbook.FileEntry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Text)
	}
	return out
}

func TestSearchCurrentFile(t *testing.T) {
	b := searchFixture(t)
	entries, err := b.SearchEntries().Results()
	require.Nil(t, err)
	assert.Equal(t, []string{"write spec", "buy milk", "review spec"}, texts(entries))
}

func TestSearchWithText(t *testing.T) {
	b := searchFixture(t)
	entries, err := b.SearchEntries().WithText("spec").Results()
	require.Nil(t, err)
	assert.Equal(t, []string{"write spec", "review spec"}, texts(entries))
}

func TestSearchNot(t *testing.T) {
	b := searchFixture(t)
	entries, err := b.SearchEntries().WithText("spec").Not().Results()
	require.Nil(t, err)
	assert.Equal(t, []string{"buy milk"}, texts(entries))
}

func TestSearchWithSection(t *testing.T) {
	b := searchFixture(t)
	entries, err := b.SearchEntries().WithSection("week").Results()
	require.Nil(t, err)
	assert.Equal(t, []string{"review spec"}, texts(entries))
}

func TestSearchWithDone(t *testing.T) {
	b := searchFixture(t)
	entries, err := b.SearchEntries().WithDone(true).Results()
	require.Nil(t, err)
	assert.Equal(t, []string{"buy milk"}, texts(entries))
}

func TestSearchInAllFiles(t *testing.T) {
	b := searchFixture(t)
	entries, err := b.SearchEntries().WithDone(false).InAllFiles().Results()
	require.Nil(t, err)
	assert.Equal(t, []string{"old news", "write spec", "review spec"}, texts(entries))
	// Oldest file first.
	assert.Equal(t, b.Resolve(date(2024, time.January, 15)), entries[0].File)
}

func TestSearchMissingCurrentFile(t *testing.T) {
	b, err := logbook.NewBook(t.TempDir(), logbook.WithNow(fixedClock(date(2024, time.January, 16))))
	require.Nil(t, err)
	entries, err := b.SearchEntries().Results()
	require.Nil(t, err)
	assert.Empty(t, entries)
}
