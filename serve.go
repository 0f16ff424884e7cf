package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/store"
)

func serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rounds over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := setup(cmd.Context())
			defer func() { _ = d.closeDict() }()
			if port == "" {
				port = d.cfg.Port
			}

			start, dict := d.lists.Stats()
			srv := httpserver.New(store.NewMemoryStore(), d.validator, d.lists.Start, httpserver.Options{
				JWTSecret:      d.cfg.JWTSecret,
				CookieName:     d.cfg.CookieName,
				ClientOrigin:   d.cfg.ClientOrigin,
				DailySalt:      d.cfg.DailySalt,
				Secure:         d.cfg.Production(),
				DictionarySize: dict,
			})
			log.Info().Str("port", port).Int("startWords", start).Int("dictionary", dict).Str("language", d.validator.Language()).Msg("starting wordscramble server")
			return srv.Start(":" + port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PORT or 5175)")
	return cmd
}
