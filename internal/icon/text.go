package icon

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// errEmptyBounds means the face produced no visible pixels for the text.
var errEmptyBounds = errors.New("text has an empty bounding box")

// Label offsets: the text box is nudged right and centred slightly above
// the middle so it sits well under the iOS icon mask.
const (
	labelNudgeX   = 4
	labelCentreY  = 0.45
	labelFontSize = 0.35
)

// DrawLabel draws text with its bounding box horizontally centred (plus
// labelNudgeX) and its vertical centre at labelCentreY of the icon height.
func (ic *Icon) DrawLabel(text string, face font.Face, c color.Color) error {
	bounds, _ := font.BoundString(face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return errEmptyBounds
	}

	size := ic.Size()
	x := (size-w)/2 + labelNudgeX
	y := scaled(size, labelCentreY) - h/2

	d := &font.Drawer{
		Dst:  ic.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x) - bounds.Min.X, Y: fixed.I(y) - bounds.Min.Y},
	}
	d.DrawString(text)
	return nil
}

// DrawFallbackLabel draws text with the bitmap face, its top-left corner at a
// fixed spot left of and above the centre.
func (ic *Icon) DrawFallbackLabel(text string, c color.Color) {
	face := basicfont.Face7x13
	size := ic.Size()
	x := size/2 - 20 + labelNudgeX
	y := size/2 - 20

	d := &font.Drawer{
		Dst:  ic.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
