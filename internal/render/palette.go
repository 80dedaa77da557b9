package render

import (
	"fmt"
	"strconv"
)

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

func mustHex(s string) Color {
	if len(s) != 7 || s[0] != '#' {
		panic(fmt.Sprintf("render: malformed hex color %q", s))
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		panic(fmt.Sprintf("render: malformed hex color %q", s))
	}
	return Color{R: int(v >> 16), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

// Brand palette.
var (
	Green     = mustHex("#00ff88")
	Cyan      = mustHex("#00d4ff")
	Orange    = mustHex("#ff9f43")
	Yellow    = mustHex("#ffd93d")
	Red       = mustHex("#ff4d6a")
	Pink      = mustHex("#ff69b4")
	Purple    = mustHex("#b44dff")
	White     = mustHex("#ffffff")
	GrayLight = mustHex("#cccccc")
	Gray      = mustHex("#999999")
	GrayDim   = mustHex("#555555")
	GreenDark = mustHex("#0a1f14")
	CardFill  = mustHex("#111111")
	Black     = mustHex("#000000")
)
