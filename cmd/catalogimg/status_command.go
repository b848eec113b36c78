package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"catalogimg/internal/placeholder"
	"catalogimg/internal/rewriter"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show each product's image kind and pending action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			result, err := rewriter.New(logger).Inspect(cmd.Context(), cfg.CatalogPath)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			rows := statusRows(result.Changes)
			if isTerminal(out) {
				headers := []string{"#", "Name", "Image", "Color", "Action"}
				aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
			} else {
				fmt.Fprint(out, renderPlain(rows))
			}
			fmt.Fprintf(out, "%d of %d products need a placeholder\n", result.Rewritten, result.Total)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the status as JSON")
	return cmd
}

func statusRows(changes []placeholder.Change) [][]string {
	rows := make([][]string, 0, len(changes))
	for _, change := range changes {
		action := "keep"
		if change.Rewritten {
			action = "rewrite"
		}
		rows = append(rows, []string{
			strconv.Itoa(change.Index),
			change.Name,
			string(change.Kind),
			placeholder.HexColor(change.Color),
			action,
		})
	}
	return rows
}
