package main

import (
	"github.com/go-telegram/bot"
	telegramHandler "github.com/reshetovitsme/news-digest-bot/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func listenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Post operator replies from Telegram to X",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := do.Invoke[*bot.Bot](a.injector)
			if err != nil {
				return err
			}
			handler := do.MustInvoke[*telegramHandler.Handler](a.injector)
			return handler.Listen(cmd.Context(), b)
		},
	}
}
