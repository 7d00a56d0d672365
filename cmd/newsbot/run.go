package main

import (
	"fmt"

	"github.com/reshetovitsme/news-digest-bot/internal/modules/pipeline/domain"
	pipelineService "github.com/reshetovitsme/news-digest-bot/internal/modules/pipeline/service"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func runCmd(a *app) *cobra.Command {
	var opts domain.Options

	cmd := &cobra.Command{
		Use:   "run <profile>",
		Short: "Aggregate a profile once, then relay or summarize and post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := do.Invoke[*pipelineService.Service](a.injector)
			if err != nil {
				return err
			}

			opts.DryRun = a.cfg.DryRun
			result, err := pipeline.Run(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s (%d items)\n", result.Profile, result.Outcome, len(result.Items))
			if result.Summary != "" {
				fmt.Fprintf(out, "\n%s\n", result.Summary)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Ticker, "ticker", "", "Ticker for profiles with a {ticker} placeholder (default from config)")
	cmd.Flags().BoolVar(&opts.HITL, "hitl", false, "Send the digest to Telegram for review instead of posting")
	return cmd
}
