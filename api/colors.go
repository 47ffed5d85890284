package api

import "strings"

// Glow buckets for rank colors.
const (
	GlowGreen  = "green"
	GlowBlue   = "blue"
	GlowPurple = "purple"
	GlowGold   = "gold"
)

var glowPrefixes = map[string][]string{
	GlowGreen:  {"22c", "16a3", "4ade", "34d", "86ef"},
	GlowBlue:   {"3b8", "60a5", "93c5", "1d4", "2563", "38b"},
	GlowPurple: {"a85", "c084", "7c3a", "9333", "d8b4"},
	GlowGold:   {"f59", "fcd3", "fbbf", "f97", "eab"},
}

// RankGlow buckets a hex color string for presentation. The color is
// never validated; anything unrecognized falls back to green.
func RankGlow(hexColor string) string {
	normalized := strings.TrimPrefix(strings.ToLower(hexColor), "#")
	for _, glow := range []string{GlowGreen, GlowBlue, GlowPurple, GlowGold} {
		for _, prefix := range glowPrefixes[glow] {
			if strings.HasPrefix(normalized, prefix) {
				return glow
			}
		}
	}
	return GlowGreen
}
