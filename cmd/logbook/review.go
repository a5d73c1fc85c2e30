package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/nicolagi/logbook"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Start the current file, reviewing tasks from expired horizons",
	Long: `Review is the interactive form of the rollover that happens when logbook is
invoked without arguments. For every open task whose horizon has expired you
are asked whether it was completed, dropped, or should be deferred to another
horizon. If the current file already exists, review does nothing; review
before you edit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pathname, created, err := book.Rollover(reviewPrompt(cmd))
		if err != nil {
			return err
		}
		if !created {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, nothing to review\n", pathname)
		}
		return nil
	},
}

// reviewPrompt asks, for one carried-over task at a time, which section of the new
// file it should land in. Reaching end of input keeps the task where it was.
func reviewPrompt(cmd *cobra.Command) logbook.ReviewFunc {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	return func(section logbook.Section, entry logbook.Entry) string {
		fmt.Fprintf(out, `Did you complete this %s?
	<enter> = completed
	d = dropped / abandoned / delegated
	t = defer to today
	w = defer to this week
	m = defer to this month
	q = defer to this quarter
	y = defer to this year
`, section.Last)
		for {
			fmt.Fprintln(out, entry.Text)
			if !in.Scan() {
				return section.Heading
			}
			switch strings.TrimSpace(in.Text()) {
			case "":
				return logbook.SectionCompleted
			case "d":
				return logbook.SectionDropped
			case "t":
				return logbook.SectionToday
			case "w":
				return logbook.SectionWeek
			case "m":
				return logbook.SectionMonth
			case "q":
				return logbook.SectionQuarter
			case "y":
				return logbook.SectionYear
			default:
				fmt.Fprintln(out, "I didn't understand that, please try again")
			}
		}
	}
}
