package block

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// FallbackHex is used when a color string cannot be parsed.
const FallbackHex = "#3a86ff"

// Color is an HSL triple. Hue is degrees in [0, 360); saturation and
// lightness are fractions in [0, 1]. HSL is the canonical stored form;
// hex is only a display encoding.
type Color struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// ParseColor parses a hex color string ("#rrggbb") into HSL, falling back
// to FallbackHex for unparseable input.
func ParseColor(hex string) Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(FallbackHex)
	}
	h, s, l := c.Hsl()
	return Color{H: h, S: s, L: l}
}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Hsl(c.H, c.S, c.L).Clamped().Hex()
}

// String implements fmt.Stringer with the CSS hsl() form.
func (c Color) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", c.H, c.S*100, c.L*100)
}
