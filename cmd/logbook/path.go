package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var pathDate string

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the file path for a date, without touching the filesystem",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()
		if pathDate != "" {
			var err error
			date, err = time.Parse("2006-01-02", pathDate)
			if err != nil {
				return fmt.Errorf("date %q: %w", pathDate, err)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), book.Resolve(date))
		return nil
	},
}

func init() {
	pathCmd.Flags().StringVar(&pathDate, "date", "", "resolve for this date (YYYY-MM-DD) instead of today")
}
