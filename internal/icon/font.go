package icon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Names reported for the built-in faces.
const (
	EmbeddedFontName = "Go Bold (embedded)"
	BitmapFontName   = "basicfont 7x13"
)

var errFontNotFound = errors.New("font not found")

// FontChain resolves a font face by trying candidate files in order, then
// the embedded Go Bold font, then the 7x13 bitmap face.
type FontChain struct {
	// Paths are tried in order. A bare file name is looked up in the
	// working directory and then in SearchDirs.
	Paths []string

	// SearchDirs are walked recursively for bare file names.
	SearchDirs []string

	Logger hclog.Logger
}

// DefaultFontDirs returns the usual system font directories.
func DefaultFontDirs() []string {
	dirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/Library/Fonts",
		"/System/Library/Fonts",
		`C:\Windows\Fonts`,
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, ".fonts"),
			filepath.Join(home, "Library", "Fonts"),
		)
	}
	return dirs
}

// Face returns the first face that loads at the given point size (72 DPI)
// along with a name describing where it came from. It always succeeds: the
// bitmap face is the last resort, and it has a fixed size.
func (fc *FontChain) Face(points float64) (font.Face, string) {
	logger := fc.logger()

	for _, candidate := range fc.Paths {
		path, err := fc.resolve(candidate)
		if err != nil {
			logger.Debug("font unavailable", "font", candidate, "error", err)
			continue
		}

		data, err := os.ReadFile(path) // #nosec G304 - Font path from user configuration
		if err != nil {
			logger.Debug("font unreadable", "path", path, "error", err)
			continue
		}

		face, err := parseFace(data, points)
		if err != nil {
			logger.Debug("font unusable", "path", path, "error", err)
			continue
		}
		return face, path
	}

	face, err := parseFace(gobold.TTF, points)
	if err == nil {
		return face, EmbeddedFontName
	}
	logger.Warn("embedded font failed, using bitmap font", "error", err)

	return basicfont.Face7x13, BitmapFontName
}

func (fc *FontChain) resolve(candidate string) (string, error) {
	if candidate == "" {
		return "", errFontNotFound
	}

	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}

	// Only bare names are searched for.
	if strings.ContainsAny(candidate, `/\`) {
		return "", fmt.Errorf("%w: %s", errFontNotFound, candidate)
	}

	for _, dir := range fc.SearchDirs {
		if found := findFile(dir, candidate); found != "" {
			return found, nil
		}
	}
	return "", fmt.Errorf("%w: %s", errFontNotFound, candidate)
}

func (fc *FontChain) logger() hclog.Logger {
	if fc.Logger == nil {
		return hclog.NewNullLogger()
	}
	return fc.Logger
}

// findFile walks dir for a file named name, ignoring case.
func findFile(dir, name string) string {
	var found string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories are skipped.
			return nil
		}
		if !d.IsDir() && strings.EqualFold(d.Name(), name) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found
}

func parseFace(data []byte, points float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}
