package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"catalogimg/internal/placeholder"
)

type paletteEntry struct {
	Index   int    `json:"index"`
	Encoded string `json:"encoded"`
	Hex     string `json:"hex"`
}

func newPaletteCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "palette",
		Short:       "List the placeholder fill colors",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make([]paletteEntry, len(placeholder.Palette))
			for i, encoded := range placeholder.Palette {
				entries[i] = paletteEntry{Index: i, Encoded: encoded, Hex: placeholder.HexColor(encoded)}
			}
			if asJSON {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, len(entries))
			for i, entry := range entries {
				rows[i] = []string{strconv.Itoa(entry.Index), entry.Hex, entry.Encoded}
			}
			out := cmd.OutOrStdout()
			if isTerminal(out) {
				fmt.Fprintln(out, renderTable([]string{"#", "Hex", "Encoded"}, rows, []columnAlignment{alignRight}))
				return nil
			}
			fmt.Fprint(out, renderPlain(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the palette as JSON")
	return cmd
}
