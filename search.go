package logbook

import (
	"errors"
	"io/fs"
	"strings"
)

type entryPredicate func(*FileEntry) bool

func negate(p entryPredicate) entryPredicate {
	return func(e *FileEntry) bool {
		return !p(e)
	}
}

// EntryScan accumulates predicates and scans logbook files for matching entries.
type EntryScan struct {
	book       *Book
	all        bool
	predicates []entryPredicate
}

// Not negates the last predicate added. It will panic if no predicates were added.
func (s *EntryScan) Not() *EntryScan {
	i := len(s.predicates) - 1
	s.predicates[i] = negate(s.predicates[i])
	return s
}

func (s *EntryScan) WithDone(value bool) *EntryScan {
	s.predicates = append(s.predicates, func(e *FileEntry) bool {
		return e.Done == value
	})
	return s
}

// WithSection looks for entries under headings containing the given string,
// case-insensitively, so that "week" matches THIS WEEK.
func (s *EntryScan) WithSection(name string) *EntryScan {
	needle := strings.ToUpper(name)
	s.predicates = append(s.predicates, func(e *FileEntry) bool {
		return strings.Contains(e.Section, needle)
	})
	return s
}

// WithText looks for entries containing the given substring.
func (s *EntryScan) WithText(needle string) *EntryScan {
	s.predicates = append(s.predicates, func(e *FileEntry) bool {
		return strings.Contains(e.Text, needle)
	})
	return s
}

// InAllFiles extends the scan from the current period's file to every log file under
// the root, oldest first.
func (s *EntryScan) InAllFiles() *EntryScan {
	s.all = true
	return s
}

// Results runs the scan. Unlike the pure Resolve this reads the filesystem; a current
// file that does not exist yet yields no results rather than an error. Entries come
// back in file order, sections in their file order within each file.
func (s *EntryScan) Results() ([]*FileEntry, error) {
	var paths []string
	if s.all {
		var err error
		paths, err = s.book.files()
		if err != nil {
			return nil, err
		}
	} else {
		paths = []string{s.book.CurrentPath()}
	}
	ordered := append(Sections(), Section{})
	var results []*FileEntry
	for _, pathname := range paths {
		sections, err := ReadSections(pathname)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		for _, section := range ordered {
			for _, entry := range sections[section.Heading] {
				e := &FileEntry{Entry: entry, Section: section.Heading, File: pathname}
				if s.match(e) {
					results = append(results, e)
				}
			}
		}
	}
	return results, nil
}

func (s *EntryScan) match(e *FileEntry) bool {
	for _, match := range s.predicates {
		if !match(e) {
			return false
		}
	}
	return true
}

// SearchEntries returns a scan over the current file's entries; chain predicates and
// call Results. See also InAllFiles.
func (b *Book) SearchEntries() *EntryScan {
	return &EntryScan{
		book: b,
	}
}
