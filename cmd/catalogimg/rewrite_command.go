package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"catalogimg/internal/rewriter"
)

type rewriteFlags struct {
	dryRun bool
	force  bool
	json   bool
}

func newRewriteCommand(ctx *commandContext) *cobra.Command {
	var flags rewriteFlags

	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Replace https:// product images with SVG placeholders",
		Long: `Rewrite loads the catalog, replaces every product image that starts with
https:// by an inline SVG placeholder colored by the product's position, and
writes the catalog back with two-space indentation. Nothing is written when a
product lacks a name or image.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRewrite(cmd, ctx, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Report pending rewrites without writing the catalog")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Write the catalog even when no image changes")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Emit the result as JSON")
	return cmd
}

func runRewrite(cmd *cobra.Command, ctx *commandContext, flags rewriteFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	svc := rewriter.New(logger)
	result, err := svc.Run(cmd.Context(), rewriter.Options{
		Path:   cfg.CatalogPath,
		DryRun: flags.dryRun,
		Force:  flags.force,
		Lock:   cfg.Rewrite.Lock,
	})
	if err != nil {
		return err
	}

	if flags.json {
		return writeJSON(cmd, result)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderStatusLine(summaryKind(result), summarize(result), isTerminal(out)))
	return nil
}

func summaryKind(result *rewriter.Result) statusKind {
	switch {
	case result.DryRun && result.Rewritten > 0:
		return statusWarn
	case result.Written:
		return statusOK
	default:
		return statusInfo
	}
}

func summarize(result *rewriter.Result) string {
	switch {
	case result.DryRun:
		return fmt.Sprintf("Would rewrite %d of %d product images in %s", result.Rewritten, result.Total, result.Path)
	case result.Rewritten > 0:
		return fmt.Sprintf("Rewrote %d of %d product images in %s", result.Rewritten, result.Total, result.Path)
	case result.Written:
		return fmt.Sprintf("No remote images in %s (%d products); catalog rewritten", result.Path, result.Total)
	default:
		return fmt.Sprintf("No remote images in %s (%d products); catalog unchanged", result.Path, result.Total)
	}
}
