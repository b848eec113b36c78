package placeholder

import "strings"

// Palette lists the URL-encoded fill colors used cyclically by product index.
var Palette = [...]string{
	"%234A90E2", "%231F4B8C", "%23333333", "%23FF6B35", "%234ECDC4",
	"%23654321", "%236366F1", "%238B7355", "%23EC4899", "%238B5A3C",
	"%23F97316", "%236B7280", "%23A16207", "%23520000", "%23818CF8",
	"%2306B6D4", "%23F4A460", "%2314B8A6", "%23FBD34D", "%23A78BFA",
	"%23DC2626", "%23334155", "%231E1B4B", "%23F87171", "%23A0522D",
	"%230EA5E9", "%23E0E7FF", "%23D97706", "%2310B981", "%2364748B",
}

// ColorAt returns the palette entry for the product at index i.
// Negative indices wrap the same way positive ones do.
func ColorAt(i int) string {
	n := len(Palette)
	return Palette[((i%n)+n)%n]
}

// HexColor decodes a palette entry into its #RRGGBB form.
func HexColor(encoded string) string {
	if rest, ok := strings.CutPrefix(encoded, "%23"); ok {
		return "#" + rest
	}
	return encoded
}
