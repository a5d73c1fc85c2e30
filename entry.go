package logbook

import "strings"

// Markers recognized at the start of a task line. The order matters where one marker
// is a prefix of another: "->" must be tried before "-".
var (
	doneMarkers = []string{"[x]", "[X]"}
	openMarkers = []string{"->", "[ ]", "[]", "*", "-"}
)

// Entry is a single todo line: free text plus whether the task is marked done.
// It is a value type; reading and writing entries goes through the Book.
type Entry struct {
	Text string
	Done bool
}

// ParseEntry strips a leading marker, if any, from a task line. A line with no
// recognized marker is an open task whose text is the whole line.
func ParseEntry(line string) Entry {
	line = strings.TrimSpace(line)
	for _, marker := range doneMarkers {
		if strings.HasPrefix(line, marker) {
			return Entry{Text: strings.TrimSpace(line[len(marker):]), Done: true}
		}
	}
	for _, marker := range openMarkers {
		if strings.HasPrefix(line, marker) {
			return Entry{Text: strings.TrimSpace(line[len(marker):])}
		}
	}
	return Entry{Text: line}
}

// String renders the entry as a task line. Open entries are rendered as bare text,
// so that appending "buy milk" stores exactly that; done entries get the canonical
// "[x]" marker whatever marker they were parsed from.
func (e Entry) String() string {
	if e.Done {
		return doneMarkers[0] + " " + e.Text
	}
	return e.Text
}
