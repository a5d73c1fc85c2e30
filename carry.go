package logbook

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ReviewFunc decides the fate of a task carried over from an expired horizon: given
// the section the task was found under, it returns the heading of the section the
// task should land in (SectionCompleted and SectionDropped retire it into the new
// file's terminal sections). Rollover only consults it for open tasks whose horizon
// no longer contains the previous file's date; a nil ReviewFunc keeps every such task
// in its section.
type ReviewFunc func(section Section, entry Entry) string

// Rollover prepares the current period's file. If it already exists nothing happens.
// Otherwise the newest strictly older logbook file is read, its open tasks are
// carried over (tasks from still-current horizons as they are, tasks from expired
// horizons as decided by review, tasks already marked done into COMPLETED), and the
// new file is written with the full section template. This is the only code path that
// writes a file wholesale, and it only ever runs for a file that does not exist yet.
func (b *Book) Rollover(review ReviewFunc) (pathname string, created bool, err error) {
	now := b.now()
	pathname = b.Resolve(now)
	if _, err := os.Stat(pathname); err == nil {
		return pathname, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("rollover: %w", err)
	}
	todos := make(map[string][]Entry)
	previous, previousDate, ok, err := b.previous(now)
	if err != nil {
		return "", false, err
	}
	if ok {
		sections, err := ReadSections(previous)
		if err != nil {
			return "", false, err
		}
		for _, section := range Sections() {
			if section.Terminal {
				// Completed and dropped tasks stay in the old file.
				continue
			}
			entries := sections[section.Heading]
			if section.Heading == SectionToday {
				// Entries appended after the section blocks (Add writes at the end
				// of the file) are today's tasks.
				entries = append(entries, sections[""]...)
			}
			for _, entry := range entries {
				target := section.Heading
				switch {
				case entry.Done:
					target = SectionCompleted
				case !section.Horizon.Contains(previousDate, now):
					if review != nil {
						target = review(section, entry)
					}
				}
				todos[target] = append(todos[target], entry)
			}
		}
	}
	if err := b.writeFresh(pathname, now, todos); err != nil {
		return "", false, err
	}
	return pathname, true, nil
}

// previous returns the newest log file strictly older than the period containing now,
// along with a date inside the period it covers. Path comparison is lexical, which is
// chronological under the naming convention.
func (b *Book) previous(now time.Time) (pathname string, date time.Time, ok bool, err error) {
	paths, err := b.files()
	if err != nil {
		return "", time.Time{}, false, err
	}
	current := filepath.ToSlash(b.period.Filename(now))
	var bestRel string
	var bestDate time.Time
	found := false
	for _, p := range paths {
		rel, err := filepath.Rel(b.root, p)
		if err != nil {
			return "", time.Time{}, false, fmt.Errorf("rollover: %w", err)
		}
		rel = filepath.ToSlash(rel)
		when, parsed := b.period.ParseFilename(rel)
		if !parsed || rel >= current {
			continue
		}
		if !found || rel > bestRel {
			found, bestRel, bestDate = true, rel, when
		}
	}
	if !found {
		return "", time.Time{}, false, nil
	}
	return filepath.Join(b.root, filepath.FromSlash(bestRel)), bestDate, true, nil
}

// files lists every log file under the root, sorted by path. A root that does not
// exist yet yields an empty list, not an error.
func (b *Book) files() ([]string, error) {
	if _, err := os.Stat(b.root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s: %w", b.root, err)
	}
	var paths []string
	err := filepath.WalkDir(b.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".todo") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", b.root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// writeFresh writes the section template for a new period file: a header naming the
// period, then one block per section with the carried-over tasks.
func (b *Book) writeFresh(pathname string, date time.Time, todos map[string][]Entry) error {
	if _, err := b.EnsureExists(pathname); err != nil {
		return err
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# TODO FOR %s\n\n", b.period.Stub(date))
	for _, section := range Sections() {
		fmt.Fprintf(&buf, "# %s\n", section.Heading)
		for _, entry := range todos[section.Heading] {
			entry.Done = section.Heading == SectionCompleted
			fmt.Fprintf(&buf, "%s\n", entry)
		}
		buf.WriteString("\n")
	}
	if err := os.WriteFile(pathname, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("create %s: %w", pathname, err)
	}
	return nil
}
