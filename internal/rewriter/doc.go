// Package rewriter runs the load, transform, save pass over a catalog file.
//
// A run takes the catalog lock, decodes and validates every product, replaces
// remote images with generated placeholders, and only then writes the file
// back. Any failure before the write leaves the original file untouched.
package rewriter
