package icon

import (
	"image"
	"image/color"
	"testing"

	"github.com/jmylchreest/touchicon/internal/colour"
)

func TestVerticalGradient(t *testing.T) {
	start, end := colour.Opaque(30, 64, 175), colour.Opaque(17, 24, 39)
	ic := NewIcon(DefaultSize)
	ic.VerticalGradient(start, end)

	if !ic.Opaque() {
		t.Fatal("gradient left transparent pixels")
	}

	for y := 0; y < DefaultSize; y++ {
		want := colour.Gradient(start, end, y, DefaultSize).NRGBA()
		for _, x := range []int{0, DefaultSize / 2, DefaultSize - 1} {
			got := color.NRGBAModel.Convert(ic.Image().At(x, y)).(color.NRGBA)
			if got != want {
				t.Fatalf("pixel (%d, %d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestStrokeRectCompositesOnce(t *testing.T) {
	ic := NewIcon(20)
	c := color.NRGBA{R: 255, G: 255, B: 255, A: 100}
	ic.StrokeRect(2, 2, 12, 12, 2, c)

	img := ic.Image()
	corner := img.RGBAAt(2, 2)
	edge := img.RGBAAt(7, 2)
	inner := img.RGBAAt(3, 3)

	if corner.A == 0 {
		t.Fatal("corner not painted")
	}
	if corner != edge || corner != inner {
		t.Errorf("stroke pixels differ: corner %+v edge %+v inner %+v", corner, edge, inner)
	}

	tests := []struct {
		name    string
		x, y    int
		painted bool
	}{
		{"top-left", 2, 2, true},
		{"bottom-right inclusive", 12, 12, true},
		{"right edge inner column", 11, 7, true},
		{"inside", 7, 7, false},
		{"just inside stroke", 4, 4, false},
		{"outside", 13, 13, false},
		{"above", 7, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := img.RGBAAt(tt.x, tt.y).A != 0
			if got != tt.painted {
				t.Errorf("pixel (%d, %d) painted = %v, want %v", tt.x, tt.y, got, tt.painted)
			}
		})
	}
}

func TestStrokeRectThickFills(t *testing.T) {
	ic := NewIcon(10)
	ic.StrokeRect(1, 1, 4, 4, 3, color.White)

	for y := 1; y <= 4; y++ {
		for x := 1; x <= 4; x++ {
			if ic.Image().RGBAAt(x, y).A != 0xff {
				t.Fatalf("pixel (%d, %d) not filled", x, y)
			}
		}
	}
}

func TestStrokeRectInvertedIsNoop(t *testing.T) {
	ic := NewIcon(10)
	ic.StrokeRect(8, 8, 2, 2, 1, color.White)
	ic.FillRect(rect(6, 6, 3, 3), color.White)

	b := ic.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if ic.Image().RGBAAt(x, y).A != 0 {
				t.Fatalf("pixel (%d, %d) painted by inverted rectangle", x, y)
			}
		}
	}
}

func TestLineAxisAligned(t *testing.T) {
	ic := NewIcon(20)
	ic.Line(3, 5, 10, 5, 1, color.White)
	ic.Line(15, 2, 15, 8, 3, color.White)

	img := ic.Image()
	tests := []struct {
		name    string
		x, y    int
		painted bool
	}{
		{"horizontal start", 3, 5, true},
		{"horizontal end inclusive", 10, 5, true},
		{"horizontal past end", 11, 5, false},
		{"horizontal row below", 5, 6, false},
		{"vertical left column", 14, 2, true},
		{"vertical right column", 16, 8, true},
		{"vertical past end", 15, 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := img.RGBAAt(tt.x, tt.y).A == 0xff
			if got != tt.painted {
				t.Errorf("pixel (%d, %d) painted = %v, want %v", tt.x, tt.y, got, tt.painted)
			}
		})
	}
}

func TestLineDiagonal(t *testing.T) {
	ic := NewIcon(40)
	ic.Line(5, 30, 30, 5, 4, color.White)

	img := ic.Image()
	if img.RGBAAt(17, 17).A < 0xf0 {
		t.Errorf("midpoint not covered: %+v", img.RGBAAt(17, 17))
	}
	if img.RGBAAt(5, 5).A != 0 {
		t.Errorf("far corner painted: %+v", img.RGBAAt(5, 5))
	}
}

func TestFillCircle(t *testing.T) {
	ic := NewIcon(30)
	ic.FillCircle(15, 15, 4, color.White)

	img := ic.Image()
	for _, p := range []image.Point{{15, 15}, {11, 15}, {19, 15}, {15, 11}, {15, 19}} {
		if img.RGBAAt(p.X, p.Y).A < 0x80 {
			t.Errorf("pixel %v inside circle has alpha %d", p, img.RGBAAt(p.X, p.Y).A)
		}
	}
	for _, p := range []image.Point{{10, 10}, {20, 20}, {15, 21}, {9, 15}} {
		if img.RGBAAt(p.X, p.Y).A != 0 {
			t.Errorf("pixel %v outside circle has alpha %d", p, img.RGBAAt(p.X, p.Y).A)
		}
	}
}
