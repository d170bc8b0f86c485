package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes img as PNG. optimize selects the best compression level.
func EncodePNG(img image.Image, optimize bool) ([]byte, error) {
	level := png.DefaultCompression
	if optimize {
		level = png.BestCompression
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(level)); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG encodes img fully in memory, writes it to a temporary file next
// to path and renames that into place. path is either the complete new icon
// or untouched; a failed encode or write leaves nothing behind.
func WritePNG(path string, img image.Image, optimize bool) error {
	data, err := EncodePNG(img, optimize)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - Output directory needs standard permissions
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary icon: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write icon: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil { // #nosec G302 - Icons are public assets
		return fmt.Errorf("failed to set icon permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write icon: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write icon: %w", err)
	}
	committed = true
	return nil
}
