package logbook

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// FileEntry is an entry together with where it was found.
type FileEntry struct {
	Entry
	Section string // heading of the containing section; empty for entries outside any
	File    string
}

// ReadSections parses a logbook file into per-section entries. A known "# HEADING"
// line opens a section and a blank line closes it, matching the template written by
// Rollover. Other lines starting with "#" (the "# TODO FOR ..." header, stray
// comments) are skipped. Lines outside any section, such as those appended by Add to
// a file without a template, are collected under the empty heading.
func ReadSections(pathname string) (map[string][]Entry, error) {
	f, err := os.Open(pathname)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", pathname, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithFields(log.Fields{
				"cause": err,
				"path":  pathname,
			}).Warning("Could not close log file")
		}
	}()
	known := make(map[string]bool)
	for _, section := range Sections() {
		known[section.Heading] = true
	}
	sections := make(map[string][]Entry)
	var heading string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			heading = ""
			continue
		}
		if h := strings.TrimPrefix(line, "# "); known[h] {
			heading = h
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		sections[heading] = append(sections[heading], ParseEntry(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", pathname, err)
	}
	return sections, nil
}
