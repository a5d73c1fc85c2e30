package main

import (
	"strings"

	"github.com/nicolagi/logbook"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Append an entry to the current file without opening the editor",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pathname, _, err := book.Rollover(nil)
		if err != nil {
			return err
		}
		return book.Append(pathname, logbook.Entry{Text: strings.Join(args, " ")})
	},
}
