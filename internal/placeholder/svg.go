package placeholder

import "strings"

const (
	remotePrefix      = "https://"
	placeholderPrefix = "data:image/svg+xml,"

	svgHead = placeholderPrefix +
		"%3Csvg xmlns='http://www.w3.org/2000/svg' width='300' height='200'%3E" +
		"%3Crect fill='"
	svgMiddle = "' width='300' height='200'/%3E" +
		"%3Ctext x='50%25' y='50%25' font-size='20' fill='white' text-anchor='middle' dominant-baseline='middle'%3E"
	svgTail = "%3C/text%3E%3C/svg%3E"
)

// Kind classifies an image reference for reporting.
type Kind string

const (
	KindRemote      Kind = "remote"
	KindPlaceholder Kind = "placeholder"
	KindOther       Kind = "other"
)

// NeedsPlaceholder reports whether image is a remote reference that should be
// replaced. Only the literal lowercase https:// prefix matches.
func NeedsPlaceholder(image string) bool {
	return strings.HasPrefix(image, remotePrefix)
}

// Classify reports what kind of reference image holds.
func Classify(image string) Kind {
	switch {
	case NeedsPlaceholder(image):
		return KindRemote
	case strings.HasPrefix(image, placeholderPrefix):
		return KindPlaceholder
	default:
		return KindOther
	}
}

// EncodeName converts a display name into the text embedded in the SVG.
// Spaces become '+'; every other character is passed through untouched.
func EncodeName(name string) string {
	return strings.ReplaceAll(name, " ", "+")
}

// DataURI renders the placeholder for the given palette color and display name.
func DataURI(color, name string) string {
	encoded := EncodeName(name)
	var b strings.Builder
	b.Grow(len(svgHead) + len(color) + len(svgMiddle) + len(encoded) + len(svgTail))
	b.WriteString(svgHead)
	b.WriteString(color)
	b.WriteString(svgMiddle)
	b.WriteString(encoded)
	b.WriteString(svgTail)
	return b.String()
}
