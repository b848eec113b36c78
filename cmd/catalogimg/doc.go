// Package main hosts the catalogimg CLI entrypoint and command graph.
//
// Invoked with no arguments it rewrites the configured catalog in place,
// replacing remote product images with inline SVG placeholders. Subcommands
// preview pending changes, list the palette, and scaffold configuration. The
// heavy lifting lives in internal/rewriter; this package resolves
// configuration, builds the logger, and renders results.
package main
