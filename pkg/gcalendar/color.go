package gcalendar

import (
	"strconv"
	"strings"
)

type rgb struct{ r, g, b int }

// Event colors of the Google Calendar palette, keyed by colorId.
var eventPalette = []struct {
	id  string
	rgb rgb
}{
	{"1", rgb{0xa4, 0xbd, 0xfc}},  // Lavender
	{"2", rgb{0x7a, 0xe7, 0xbf}},  // Sage
	{"3", rgb{0xdb, 0xad, 0xff}},  // Grape
	{"4", rgb{0xff, 0x88, 0x7c}},  // Flamingo
	{"5", rgb{0xfb, 0xd7, 0x5b}},  // Banana
	{"6", rgb{0xff, 0xb8, 0x78}},  // Tangerine
	{"7", rgb{0x46, 0xd6, 0xdb}},  // Peacock
	{"9", rgb{0x54, 0x84, 0xed}},  // Blueberry
	{"10", rgb{0x51, 0xb7, 0x49}}, // Basil
	{"11", rgb{0xdc, 0x21, 0x27}}, // Tomato
}

const graphiteColorID = "8"

// ColorIDFor returns the event colorId closest to a "#rrggbb" or "#rgb"
// color. Grays map to Graphite. Anything else returns "", which leaves the
// calendar's own color.
func ColorIDFor(hex string) string {
	c, ok := parseHex(hex)
	if !ok {
		return ""
	}
	if max3(c.r, c.g, c.b)-min3(c.r, c.g, c.b) < 32 {
		return graphiteColorID
	}

	best, bestDist := "", -1
	for _, p := range eventPalette {
		dr, dg, db := c.r-p.rgb.r, c.g-p.rgb.g, c.b-p.rgb.b
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best, bestDist = p.id, dist
		}
	}
	return best
}

func parseHex(s string) (rgb, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return rgb{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}, true
}

func max3(a, b, c int) int { return max(a, max(b, c)) }
func min3(a, b, c int) int { return min(a, min(b, c)) }
