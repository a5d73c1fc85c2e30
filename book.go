package logbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoRoot is returned by NewBook when the root directory is not an absolute path.
var ErrNoRoot = errors.New("root directory must be an absolute path")

// ErrMultiline is returned by Append for entries containing a newline. Entries are
// lines; multiline tasks would break every reader of the format.
var ErrMultiline = errors.New("entry must be a single line")

type bookOption func(*Book) error

// WithPeriod sets the file bucketing granularity. The default is one file per day.
func WithPeriod(p Period) bookOption {
	return func(b *Book) error {
		b.period = p
		return nil
	}
}

// WithNow overrides the clock used to resolve the current file. This is meant to be
// used in tests only.
func WithNow(now func() time.Time) bookOption {
	return func(b *Book) error {
		b.now = now
		return nil
	}
}

// WithHeader sets a generator for a header line that Add writes exactly once, when it
// finds it has just created the period's file. Without this option Add writes no
// header at all. (Rollover writes its own header as part of the section template and
// ignores this option.)
func WithHeader(header func(time.Time) string) bookOption {
	return func(b *Book) error {
		b.header = header
		return nil
	}
}

// Book resolves and appends to the todo files under a root directory. The root is
// configuration fixed at construction time; a Book never changes it. All methods are
// short-lived: file handles are acquired, used and released within one call, and the
// current date is re-read from the clock on every operation, so a Book can safely
// live across midnight.
type Book struct {
	root   string
	period Period
	now    func() time.Time
	header func(time.Time) string
}

// NewBook creates a Book rooted at the given absolute directory. The directory does
// not need to exist yet; it is created on first append.
func NewBook(root string, opts ...bookOption) (*Book, error) {
	if !filepath.IsAbs(root) {
		return nil, fmt.Errorf("%q: %w", root, ErrNoRoot)
	}
	b := &Book{root: root, period: Day, now: time.Now}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Root returns the root directory the book was created with.
func (b *Book) Root() string {
	return b.root
}

// Resolve maps a date to the log file for the period containing it. It is pure: it
// never touches the filesystem and always returns the same path for the same date.
func (b *Book) Resolve(date time.Time) string {
	return filepath.Join(b.root, b.period.Filename(date))
}

// CurrentPath resolves the file for the current clock reading. Long-lived callers
// should call this (or Add) per operation rather than cache the result, or they will
// keep appending to yesterday's file after midnight.
func (b *Book) CurrentPath() string {
	return b.Resolve(b.now())
}

// EnsureExists creates the file, and any missing parent directories, if it is not
// already there. It reports whether this call created the file, so that a header can
// be written exactly once. Calling it again is a no-op.
func (b *Book) EnsureExists(pathname string) (created bool, err error) {
	if err := os.MkdirAll(filepath.Dir(pathname), 0700); err != nil {
		return false, fmt.Errorf("ensure %s: %w", pathname, err)
	}
	f, err := os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("ensure %s: %w", pathname, err)
	}
	if err := f.Close(); err != nil {
		return true, fmt.Errorf("ensure %s: %w", pathname, err)
	}
	return true, nil
}

// Append writes the entry and its line terminator to the end of the file, in a single
// write call, so that a subsequent reader never observes a partial line. The file
// handle is released on all exit paths. Entries containing a newline are rejected
// with ErrMultiline before the file is touched.
func (b *Book) Append(pathname string, entry Entry) error {
	if strings.ContainsRune(entry.Text, '\n') {
		return fmt.Errorf("%q: %w", entry.Text, ErrMultiline)
	}
	f, err := os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("append to %s: %w", pathname, err)
	}
	_, werr := f.WriteString(entry.String() + "\n")
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("append to %s: %w", pathname, werr)
	}
	if cerr != nil {
		return fmt.Errorf("append to %s: %w", pathname, cerr)
	}
	return nil
}

// Add appends a new open entry to the current period's file, creating the file (and
// writing the configured header, if any) when this is its first entry. The path is
// re-resolved from the clock on every call. Returns the path that was written to.
func (b *Book) Add(text string) (string, error) {
	now := b.now()
	pathname := b.Resolve(now)
	created, err := b.EnsureExists(pathname)
	if err != nil {
		return "", err
	}
	if created && b.header != nil {
		if err := b.Append(pathname, Entry{Text: b.header(now)}); err != nil {
			return "", err
		}
	}
	if err := b.Append(pathname, Entry{Text: text}); err != nil {
		return "", err
	}
	return pathname, nil
}
