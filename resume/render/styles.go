package render

import (
	"strconv"
	"strings"

	"resume-renderer/resume/layout"
)

// RunStyle captures the inline run formatting shared by both writers.
type RunStyle struct {
	Bold   bool
	Italic bool
	Size   float64
	Color  string
}

const (
	DefaultAccentColor = "1F3864"
	TextColor          = "111111"
	MutedColor         = "4B5563"
	TitleSize          = 24
	HeadingSize        = 14
	EmphasisSize       = 11.5
	BodySize           = 10.5
)

// StyleMap centralizes the formatting of each block kind. An empty Color on a
// heading means the accent color.
var StyleMap = map[layout.Kind]RunStyle{
	layout.KindTitle: {
		Bold:  true,
		Size:  TitleSize,
		Color: TextColor,
	},
	layout.KindSectionHeading: {
		Bold: true,
		Size: HeadingSize,
	},
	layout.KindEmphasis: {
		Size:  EmphasisSize,
		Color: TextColor,
	},
	layout.KindContactLine: {
		Size:  BodySize,
		Color: MutedColor,
	},
	layout.KindBody: {
		Size:  BodySize,
		Color: TextColor,
	},
	layout.KindBulletList: {
		Size:  BodySize,
		Color: TextColor,
	},
	layout.KindDateLine: {
		Italic: true,
		Size:   BodySize,
		Color:  TextColor,
	},
}

// accentHex normalizes #RGB, #RGBA, #RRGGBB and #RRGGBBAA to RRGGBB.
// Alpha is dropped. ok is false when raw is empty or not a hex color.
func accentHex(raw string) (hex string, ok bool) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	switch len(s) {
	case 3, 4:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6, 8:
		s = s[:6]
	default:
		return "", false
	}
	if _, err := strconv.ParseUint(s, 16, 32); err != nil {
		return "", false
	}
	return strings.ToUpper(s), true
}

// resolveAccent returns the request accent or the default navy.
func resolveAccent(raw string) string {
	if hex, ok := accentHex(raw); ok {
		return hex
	}
	return DefaultAccentColor
}

func hexToRGB(hex string) (r, g, b int) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}

func halfPoints(size float64) string {
	return strconv.Itoa(int(size * 2))
}
