// Package placeholder generates inline SVG placeholder images for catalog
// products and rewrites remote image references in place.
//
// The package is pure: it never touches the filesystem or the network. Callers
// hand it an ordered slice of records and it replaces every image that points
// at an https:// URL with a data URI whose fill color is selected from a fixed
// palette by the record's position. Position, not content, drives the color,
// so inserting a product shifts the colors of everything after it.
package placeholder
