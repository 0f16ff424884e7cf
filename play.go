package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/internal/console"
	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/game"
)

func playCmd() *cobra.Command {
	var dailyRound bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play rounds in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := setup(cmd.Context())
			defer func() { _ = d.closeDict() }()

			start := d.lists.Start
			newRound := func() (game.Session, error) { return game.NewRound(start) }
			if dailyRound {
				salt := d.cfg.DailySalt
				newRound = func() (game.Session, error) {
					return game.NewRoundAt(start, daily.Picker(time.Now(), salt))
				}
			}
			g := console.New(d.validator, newRound, cmd.OutOrStdout())
			return g.Run(cmd.Context(), cmd.InOrStdin())
		},
	}
	cmd.Flags().BoolVar(&dailyRound, "daily", false, "use today's root word")
	return cmd
}
