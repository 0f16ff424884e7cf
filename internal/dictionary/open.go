package dictionary

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
)

// Open returns the dictionary for language seeded with words. With an empty
// dbPath the words are held in a Set; otherwise they are imported into the
// sqlite database at dbPath, which then serves lookups. The returned close
// function releases any database handle.
func Open(ctx context.Context, dbPath, language string, words []string) (game.Dictionary, func() error, error) {
	if dbPath == "" {
		set := NewSet(language, words)
		log.Info().Int("words", set.Len(language)).Str("language", language).Msg("dictionary loaded in memory")
		return set, func() error { return nil }, nil
	}

	db, err := OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open dictionary db: %w", err)
	}
	added, err := db.Import(ctx, language, words)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("import dictionary: %w", err)
	}
	total, err := db.Count(ctx, language)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("count dictionary: %w", err)
	}
	log.Info().Int("added", added).Int("words", total).Str("language", language).Str("db", dbPath).Msg("dictionary loaded into sqlite")
	return db, db.Close, nil
}
