// The logbook package manages a directory of plain-text todo files, one per day (or
// per week, month, quarter, or year, depending on the configured period). A Book maps
// dates to file paths with a fixed naming convention, creates files lazily, and appends
// one entry per line; files are never renamed, deleted, or rewritten after creation,
// with the single exception of the section template written the moment a new period's
// file comes into existence.
//
// Files are meant to be edited by hand: each one is a sequence of sections (TODAY,
// THIS WEEK, and so on, up to COMPLETED and DROPPED) whose tasks are ordinary text
// lines, optionally prefixed by a marker such as "-" or "[x]". Marking a task done or
// moving it between sections is done in a text editor, not by this package. What this
// package does do, at the start of each period, is carry the still-open tasks of the
// previous file into the new one (see Rollover); tasks whose horizon has expired can
// be routed interactively through a ReviewFunc.
//
// Lookup operations (ReadSections, SearchEntries) just re-read the files every time.
// A logbook file holds a few dozen lines at most, so there is nothing to be gained
// from caching or indexing; the only consumer is the command line tool in the
// cmd/logbook subdirectory.
package logbook // import "github.com/nicolagi/logbook"
