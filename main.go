package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/internal/config"
	"github.com/robalobadob/wordscramble/internal/dictionary"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/words"
)

var rootCmd = &cobra.Command{
	Use:   "wordscramble",
	Short: "Build words from the letters of a random root word",
	Long: `wordscramble draws a root word and accepts words spelled from its letters:
each at least four letters long, not used before, not the root's own prefix,
and known to the dictionary.`,
	SilenceUsage: true,
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd(), playCmd())
}

// deps is what both commands need to run a game.
type deps struct {
	cfg       config.Config
	lists     *words.Lists
	validator *game.Validator
	closeDict func() error
}

// setup loads configuration, word lists and the dictionary. A missing or
// empty word list cannot be recovered from and ends the process.
func setup(ctx context.Context) *deps {
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	lists, err := words.Load(cfg.StartWordsFile, cfg.DictionaryFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	dict, closeDict, err := dictionary.Open(ctx, cfg.DictionaryDB, cfg.Language, lists.Dictionary)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	return &deps{
		cfg:       cfg,
		lists:     lists,
		validator: game.NewValidator(dict, cfg.Language),
		closeDict: closeDict,
	}
}
