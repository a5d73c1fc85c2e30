package main

import (
	"github.com/nicolagi/logbook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	rootFlag   string
	periodFlag string

	config *logbook.Config
	book   *logbook.Book
)

var rootCmd = &cobra.Command{
	Use:   "logbook",
	Short: "An editor-driven daily todo logbook",
	Long: `Logbook keeps one plain-text todo file per day under a root directory.
Invoked without arguments it carries the previous file's open tasks into
today's file and opens it in your editor. Use the subcommands to append,
list and review entries without leaving the shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pathname, created, err := book.Rollover(nil)
		if err != nil {
			return err
		}
		if created {
			log.WithField("path", pathname).Info("Started a new logbook file")
		}
		return newEditor(config).Edit(pathname)
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default: ~/.config/logbook/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "logbook root directory (default: ~/lib/logbook)")
	rootCmd.PersistentFlags().StringVar(&periodFlag, "period", "", "file granularity: day, week, month, quarter, year")
	rootCmd.AddCommand(addCmd, listCmd, pathCmd, reviewCmd, versionCmd)
}

func initConfig() {
	config = mustLoadConfig()
	setupLogging(config)
	book = mustOpenBook(config)
}

func mustLoadConfig() *logbook.Config {
	pathname := configFile
	if pathname == "" {
		var err error
		pathname, err = logbook.DefaultConfigPath()
		if err != nil {
			log.WithField("cause", err).Fatal("Could not locate configuration")
		}
	}
	cfg, err := logbook.LoadConfig(pathname)
	if err != nil {
		log.WithFields(log.Fields{
			"cause": err,
			"path":  pathname,
		}).Fatal("Could not load configuration")
	}
	if rootFlag != "" {
		cfg.Root = rootFlag
	}
	if periodFlag != "" {
		cfg.Period = periodFlag
	}
	return cfg
}

func mustOpenBook(cfg *logbook.Config) *logbook.Book {
	b, err := cfg.NewBook()
	if err != nil {
		log.WithField("cause", err).Fatal("Could not open logbook")
	}
	return b
}
