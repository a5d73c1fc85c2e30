// The logbook command keeps plain-text todo files, one per day, under a root
// directory (lib/logbook in the user's home directory, unless configured otherwise in
// ~/.config/logbook/config.yaml or through LOGBOOK_ROOT).
//
// Invoked without arguments it rolls the previous file's open tasks into today's file,
// creating it if needed, and opens it in your editor ($VISUAL, then $EDITOR, then vi;
// set editor to "plumb" to post the path to the plan9 plumber and edit in acme
// instead). The subcommands append, list and review entries without leaving the
// shell; see their help text.
//
// Example queries for list: all open entries mentioning "spec": 'spec'. All open
// entries for this week not mentioning "spec": '#week:-spec'. The colon combines
// conditions (boolean AND); prepending minus negates one; the # symbol introduces a
// condition on the section heading, while the default condition looks for a substring
// in the entry text.
package main // import "github.com/nicolagi/logbook/cmd/logbook"
