package main

import (
	"errors"
	"net/http"

	httpServer "github.com/reshetovitsme/news-digest-bot/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func serveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve digest previews as RSS feeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := do.Invoke[*httpServer.Server](a.injector)
			if err != nil {
				return err
			}
			if err := server.Start(cmd.Context()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
