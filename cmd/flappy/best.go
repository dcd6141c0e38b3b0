package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Print the best score",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		logger, closeLog := newLogger()
		defer closeLog()

		tracker := highscore.NewTracker(store, highscore.DefaultKey, logger)
		fmt.Fprintln(cmd.OutOrStdout(), tracker.Best())
		return nil
	},
}
