package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/touchicon/internal/icon"
)

// LoadStyle reads a YAML style file over base. Keys missing from the file
// keep base's values; unknown keys are an error.
func LoadStyle(path string, base icon.Style) (icon.Style, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified style file
	if err != nil {
		return icon.Style{}, fmt.Errorf("failed to read style file: %w", err)
	}

	style, err := ParseStyle(data, base)
	if err != nil {
		return icon.Style{}, fmt.Errorf("%s: %w", path, err)
	}
	return style, nil
}

// ParseStyle decodes YAML style data over base.
func ParseStyle(data []byte, base icon.Style) (icon.Style, error) {
	style := base
	style.Fonts = append([]string(nil), base.Fonts...)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&style); err != nil && !errors.Is(err, io.EOF) {
		return icon.Style{}, fmt.Errorf("invalid style: %w", err)
	}

	if err := style.Validate(); err != nil {
		return icon.Style{}, fmt.Errorf("invalid style: %w", err)
	}
	return style, nil
}
