package icon

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/jmylchreest/touchicon/internal/colour"
)

// bezierCircle is the control point distance for a quarter circle drawn as one cubic.
const bezierCircle = 0.5522847498

// Icon is a square raster that drawing operations mutate in place.
type Icon struct {
	img *image.RGBA
}

// NewIcon creates a size x size transparent icon.
func NewIcon(size int) *Icon {
	return &Icon{img: image.NewRGBA(image.Rect(0, 0, size, size))}
}

// Size returns the edge length in pixels.
func (ic *Icon) Size() int {
	return ic.img.Bounds().Dx()
}

// Image returns the underlying raster.
func (ic *Icon) Image() *image.RGBA {
	return ic.img
}

// VerticalGradient fills every row y with Gradient(start, end, y, size).
func (ic *Icon) VerticalGradient(start, end colour.RGBA) {
	size := ic.Size()
	for y := 0; y < size; y++ {
		c := colour.Gradient(start, end, y, size)
		draw.Draw(ic.img, image.Rect(0, y, size, y+1), image.NewUniform(c), image.Point{}, draw.Src)
	}
}

// FillRect composites c over the half-open rectangle r.
// Inverted rectangles draw nothing.
func (ic *Icon) FillRect(r image.Rectangle, c color.Color) {
	draw.Draw(ic.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// StrokeRect outlines the rectangle whose corners (x0, y0) and (x1, y1) are
// both inclusive pixel coordinates. The stroke grows inward. The four bands
// never overlap, so translucent colours are composited exactly once per pixel.
func (ic *Icon) StrokeRect(x0, y0, x1, y1, width int, c color.Color) {
	if x1 < x0 || y1 < y0 || width < 1 {
		return
	}
	if 2*width >= x1-x0+1 || 2*width >= y1-y0+1 {
		ic.FillRect(rect(x0, y0, x1+1, y1+1), c)
		return
	}

	ic.FillRect(rect(x0, y0, x1+1, y0+width), c)
	ic.FillRect(rect(x0, y1-width+1, x1+1, y1+1), c)
	ic.FillRect(rect(x0, y0+width, x0+width, y1-width+1), c)
	ic.FillRect(rect(x1-width+1, y0+width, x1+1, y1-width+1), c)
}

// Line draws a line of the given width between two pixel coordinates.
// Axis-aligned lines cover whole pixels with both endpoints included;
// other lines are rasterised as an anti-aliased quad.
func (ic *Icon) Line(x0, y0, x1, y1, width int, c color.Color) {
	if width < 1 {
		return
	}

	switch {
	case y0 == y1:
		top := y0 - (width-1)/2
		ic.FillRect(rect(min(x0, x1), top, max(x0, x1)+1, top+width), c)
	case x0 == x1:
		left := x0 - (width-1)/2
		ic.FillRect(rect(left, min(y0, y1), left+width, max(y0, y1)+1), c)
	default:
		ic.quad(x0, y0, x1, y1, width, c)
	}
}

func (ic *Icon) quad(x0, y0, x1, y1, width int, c color.Color) {
	// Pixel centres.
	ax, ay := float32(x0)+0.5, float32(y0)+0.5
	bx, by := float32(x1)+0.5, float32(y1)+0.5

	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	half := float32(width) / 2
	nx, ny := -dy/length*half, dx/length*half

	r := ic.rasterizer()
	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
	r.Draw(ic.img, ic.img.Bounds(), image.NewUniform(c), image.Point{})
}

// FillCircle fills the circle inscribed in the inclusive pixel box
// [cx-radius, cx+radius] x [cy-radius, cy+radius].
func (ic *Icon) FillCircle(cx, cy, radius int, c color.Color) {
	if radius < 0 {
		return
	}

	x, y := float32(cx)+0.5, float32(cy)+0.5
	rad := float32(radius) + 0.5
	k := rad * bezierCircle

	r := ic.rasterizer()
	r.MoveTo(x+rad, y)
	r.CubeTo(x+rad, y+k, x+k, y+rad, x, y+rad)
	r.CubeTo(x-k, y+rad, x-rad, y+k, x-rad, y)
	r.CubeTo(x-rad, y-k, x-k, y-rad, x, y-rad)
	r.CubeTo(x+k, y-rad, x+rad, y-k, x+rad, y)
	r.ClosePath()
	r.Draw(ic.img, ic.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (ic *Icon) rasterizer() *vector.Rasterizer {
	size := ic.Size()
	r := vector.NewRasterizer(size, size)
	r.DrawOp = draw.Over
	return r
}

// Opaque reports whether every pixel is fully opaque.
func (ic *Icon) Opaque() bool {
	return ic.img.Opaque()
}

// rect builds a rectangle without canonicalising it, so inverted bounds stay empty.
func rect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}
