// Package icon draws and resamples square application icons.
//
// A Generator paints an icon procedurally from a Style; a Resizer produces
// one by resampling an existing logo. Both write PNG files.
package icon

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/touchicon/internal/colour"
)

const (
	// DefaultSize is the edge length of an apple touch icon.
	DefaultSize = 180

	// MinSize and MaxSize bound the edge length accepted by NewGenerator and NewResizer.
	MinSize = 16
	MaxSize = 1024
)

var (
	// ErrInvalidSize is returned for icon sizes outside [MinSize, MaxSize].
	ErrInvalidSize = errors.New("invalid icon size")

	// ErrEmptyLabel is returned when a style has no label text.
	ErrEmptyLabel = errors.New("label cannot be empty")

	// ErrTranslucentGradient is returned when a gradient colour is not opaque.
	ErrTranslucentGradient = errors.New("gradient colours must be opaque")
)

// Style holds the visual parameters of a generated icon.
type Style struct {
	Label         string      `yaml:"label"`
	GradientStart colour.RGBA `yaml:"gradient_start"`
	GradientEnd   colour.RGBA `yaml:"gradient_end"`
	Border        colour.RGBA `yaml:"border"`
	Text          colour.RGBA `yaml:"text"`
	Accent        colour.RGBA `yaml:"accent"`
	Fonts         []string    `yaml:"fonts"`
}

// DefaultStyle returns the navy "JL" style.
func DefaultStyle() Style {
	return Style{
		Label:         "JL",
		GradientStart: colour.MustParseHex("#1e40af"),
		GradientEnd:   colour.MustParseHex("#111827"),
		Border:        colour.MustParseHex("#ffffff4c"),
		Text:          colour.MustParseHex("#ffffff"),
		Accent:        colour.MustParseHex("#60a5fa"),
		Fonts: []string{
			"arial.ttf",
			"/System/Library/Fonts/Arial.ttf",
		},
	}
}

// Validate checks the style can be drawn. The gradient is the icon's
// background, so both of its colours must be opaque; the other colours are
// composited over it and may carry alpha.
func (s Style) Validate() error {
	if s.Label == "" {
		return ErrEmptyLabel
	}
	for _, c := range []struct {
		key   string
		value colour.RGBA
	}{
		{"gradient_start", s.GradientStart},
		{"gradient_end", s.GradientEnd},
	} {
		if c.value.A != 0xff {
			return fmt.Errorf("%w: %s is %s", ErrTranslucentGradient, c.key, c.value.Hex())
		}
	}
	return nil
}

// ValidateSize checks an icon edge length.
func ValidateSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidSize, size, MinSize, MaxSize)
	}
	return nil
}

// scaled returns int(size * f), truncated like the layout fractions expect.
func scaled(size int, f float64) int {
	return int(float64(size) * f)
}

// atLeastOne is max(1, int(size * f)), used for stroke widths.
func atLeastOne(size int, f float64) int {
	return max(1, scaled(size, f))
}
