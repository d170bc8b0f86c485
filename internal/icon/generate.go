package icon

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// GeneratorOptions configures a Generator.
type GeneratorOptions struct {
	// Size is the icon edge length. Zero means DefaultSize.
	Size int

	Style Style

	// FontDirs are searched for bare font file names. Nil means DefaultFontDirs.
	FontDirs []string

	Logger hclog.Logger
}

// Generator paints icons procedurally.
type Generator struct {
	size   int
	style  Style
	fonts  *FontChain
	logger hclog.Logger
}

// NewGenerator validates opts and returns a Generator.
func NewGenerator(opts GeneratorOptions) (*Generator, error) {
	size := opts.Size
	if size == 0 {
		size = DefaultSize
	}
	if err := ValidateSize(size); err != nil {
		return nil, err
	}
	if err := opts.Style.Validate(); err != nil {
		return nil, fmt.Errorf("invalid style: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	dirs := opts.FontDirs
	if dirs == nil {
		dirs = DefaultFontDirs()
	}

	return &Generator{
		size:  size,
		style: opts.Style,
		fonts: &FontChain{
			Paths:      opts.Style.Fonts,
			SearchDirs: dirs,
			Logger:     logger.Named("font"),
		},
		logger: logger,
	}, nil
}

// Render paints a new icon: gradient, border, label, then the pen and
// document glyphs.
func (g *Generator) Render(ctx context.Context) (*Icon, error) {
	ic := NewIcon(g.size)
	size := g.size

	steps := []struct {
		name string
		draw func()
	}{
		{"gradient", func() { ic.VerticalGradient(g.style.GradientStart, g.style.GradientEnd) }},
		{"border", func() {
			margin := scaled(size, 0.02)
			ic.StrokeRect(margin, margin, size-margin, size-margin, atLeastOne(size, 0.01), g.style.Border)
		}},
		{"label", func() { g.drawLabel(ic) }},
		{"pen", func() { g.drawPen(ic) }},
		{"document", func() { g.drawDocument(ic) }},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.logger.Trace("drawing", "step", step.name)
		step.draw()
	}

	return ic, nil
}

// Generate renders an icon and writes it as PNG to path.
func (g *Generator) Generate(ctx context.Context, path string) (string, error) {
	ic, err := g.Render(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render icon: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := WritePNG(path, ic.Image(), false); err != nil {
		return "", err
	}
	g.logger.Debug("icon written", "path", path, "size", g.size)
	return path, nil
}

func (g *Generator) drawLabel(ic *Icon) {
	points := float64(scaled(g.size, labelFontSize))
	face, name := g.fonts.Face(points)
	g.logger.Debug("using font", "font", name, "points", points)

	if err := ic.DrawLabel(g.style.Label, face, g.style.Text); err != nil {
		g.logger.Warn("font error, using basic text", "font", name, "error", err)
		ic.DrawFallbackLabel(g.style.Label, g.style.Text)
	}
}

func (g *Generator) drawPen(ic *Icon) {
	size := g.size
	x1, y1 := scaled(size, 0.25), scaled(size, 0.75)
	x2, y2 := scaled(size, 0.45), scaled(size, 0.65)

	ic.Line(x1, y1, x2, y2, atLeastOne(size, 0.025), g.style.Accent)
	ic.FillCircle(x2, y2, scaled(size, 0.025), g.style.Accent)
}

func (g *Generator) drawDocument(ic *Icon) {
	size := g.size
	x, y := scaled(size, 0.55), scaled(size, 0.65)
	w, h := scaled(size, 0.18), scaled(size, 0.22)

	ic.StrokeRect(x, y, x+w, y+h, atLeastOne(size, 0.02), g.style.Accent)

	lineWidth := atLeastOne(size, 0.008)
	for i := 0; i < 3; i++ {
		ly := scaled(size, 0.70+float64(i)*0.04)
		ic.Line(scaled(size, 0.58), ly, scaled(size, 0.70), ly, lineWidth, g.style.Accent)
	}
}
