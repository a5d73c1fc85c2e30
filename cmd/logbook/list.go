package main

import (
	"strings"

	"github.com/nicolagi/logbook"
	"github.com/spf13/cobra"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "Print open entries, optionally filtered",
	Long: `Without a query, prints every open entry in the current file. Query terms
are separated by colons and ANDed together: a bare term matches entries
containing it, #term matches entries in sections whose heading contains it,
and a leading minus negates a term. Example: list '#week:-spec'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scan := book.SearchEntries().WithDone(false)
		if listAll {
			scan.InAllFiles()
		}
		if len(args) == 1 {
			for _, term := range strings.Split(args[0], ":") {
				if term = strings.TrimSpace(term); term != "" {
					addSearchTerm(scan, term)
				}
			}
		}
		entries, err := scan.Results()
		if err != nil {
			return err
		}
		return printEntries(cmd.OutOrStdout(), entries)
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "scan every file under the root, not just the current one")
}

func addSearchTerm(s *logbook.EntryScan, term string) {
	if term == "" {
		return
	}
	switch term[0] {
	case '-':
		if term = term[1:]; term != "" {
			addSearchTerm(s, term)
			s.Not()
		}
	case '#':
		s.WithSection(term[1:])
	default:
		s.WithText(term)
	}
}
