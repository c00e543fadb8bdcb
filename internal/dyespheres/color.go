package dyespheres

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for color strings that are not 6 hex digits.
var ErrInvalidColor = errors.New("invalid color")

// Color is an 8-bit RGB base color.
type Color struct {
	R, G, B uint8
}

// Hex formats c as #RRGGBB.
func (c Color) Hex() string { return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B) }

// ParseHex parses "RRGGBB" or "#RRGGBB" (either case).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w %q: expected 6 hex digits", ErrInvalidColor, s)
	}
	for i := 0; i < len(h); i++ {
		if !isHexDigit(h[i]) {
			return Color{}, fmt.Errorf("%w %q: bad digit %q", ErrInvalidColor, s, h[i])
		}
	}
	cf, err := colorful.Hex("#" + strings.ToLower(h))
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := cf.RGB255()
	return Color{r, g, b}, nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
