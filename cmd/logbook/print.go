package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/nicolagi/logbook"
)

// printEntries writes one tab-separated line per entry: done marker, section, text.
// When entries from more than one file are being printed, each file's entries are
// preceded by its name.
func printEntries(w io.Writer, entries []*logbook.FileEntry) error {
	var file string
	multi := false
	for _, e := range entries {
		if file != "" && e.File != file {
			multi = true
			break
		}
		file = e.File
	}
	file = ""
	for _, e := range entries {
		if multi && e.File != file {
			file = e.File
			if _, err := fmt.Fprintf(w, "%s:\n", filepath.Base(file)); err != nil {
				return err
			}
		}
		marker := " "
		if e.Done {
			marker = "x"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", marker, e.Section, e.Text); err != nil {
			return err
		}
	}
	return nil
}
