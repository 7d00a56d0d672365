package main

import (
	"fmt"
	"text/tabwriter"

	pipelineService "github.com/reshetovitsme/news-digest-bot/internal/modules/pipeline/service"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

func sourcesCmd(a *app) *cobra.Command {
	var ticker string

	cmd := &cobra.Command{
		Use:   "sources <profile>",
		Short: "Fetch every source of a profile once and report what came back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := do.Invoke[*pipelineService.Service](a.injector)
			if err != nil {
				return err
			}

			results, err := pipeline.Probe(cmd.Context(), args[0], ticker)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SOURCE\tKIND\tITEMS\tLATEST\tERROR")
			for _, r := range results {
				latest := "-"
				if len(r.Items) > 0 {
					latest = r.Items[0].Title
				}
				errText := "-"
				if r.Err != nil {
					errText = r.Err.Error()
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", r.Source.Name, r.Source.Kind, len(r.Items), truncate(latest, 60), errText)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&ticker, "ticker", "", "Ticker for profiles with a {ticker} placeholder")
	return cmd
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
