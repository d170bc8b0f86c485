package cli_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLogo(t *testing.T, path string, size int) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create logo: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode logo: %v", err)
	}
}

// TestResizeCommand covers the resize command end to end.
func TestResizeCommand(t *testing.T) {
	t.Run("DefaultPaths", func(t *testing.T) {
		root := t.TempDir()
		icons := filepath.Join(root, "icons")
		if err := os.MkdirAll(icons, 0o755); err != nil {
			t.Fatalf("Failed to create icons dir: %v", err)
		}
		writeLogo(t, filepath.Join(root, "assets", "image.png"), 512)
		chdir(t, icons)

		stdout, _, err := run(t, "resize")
		if err != nil {
			t.Fatalf("resize failed: %v", err)
		}

		if w, h := pngSize(t, filepath.Join(icons, "icon-180.png")); w != 180 || h != 180 {
			t.Errorf("icon is %dx%d, want 180x180", w, h)
		}
		for _, want := range []string{"Original image size: 512x512", "New size: 180x180", "Created iOS icon: icon-180.png", "iOS icon created successfully!"} {
			if !strings.Contains(stdout, want) {
				t.Errorf("stdout missing %q: %q", want, stdout)
			}
		}
	})

	t.Run("MissingSource", func(t *testing.T) {
		dir := t.TempDir()
		out := filepath.Join(dir, "icon-180.png")

		stdout, _, err := run(t, "resize", "--source", filepath.Join(dir, "nope.png"), "--output", out)
		if err != nil {
			t.Fatalf("expected exit status 0, got error: %v", err)
		}
		if !strings.Contains(stdout, "Error processing image:") {
			t.Errorf("stdout missing error line: %q", stdout)
		}
		if !strings.Contains(stdout, "Failed to create iOS icon.") {
			t.Errorf("stdout missing failure summary: %q", stdout)
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Error("failed resize left an output file")
		}
	})

	t.Run("MissingSourceStrict", func(t *testing.T) {
		dir := t.TempDir()
		_, _, err := run(t, "--strict", "resize", "-s", filepath.Join(dir, "nope.png"), "-o", filepath.Join(dir, "out.png"))
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Fatalf("expected not found error, got %v", err)
		}
	})

	t.Run("StrictFromEnvironment", func(t *testing.T) {
		t.Setenv("TOUCHICON_STRICT", "true")
		dir := t.TempDir()
		if _, _, err := run(t, "resize", "-s", filepath.Join(dir, "nope.png"), "-o", filepath.Join(dir, "out.png")); err == nil {
			t.Fatal("expected error with TOUCHICON_STRICT=true")
		}
	})

	t.Run("CustomSize", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "logo.png")
		writeLogo(t, src, 40)
		out := filepath.Join(dir, "big.png")

		stdout, _, err := run(t, "resize", "-s", src, "-o", out, "--size", "192")
		if err != nil {
			t.Fatalf("resize failed: %v", err)
		}
		if w, h := pngSize(t, out); w != 192 || h != 192 {
			t.Errorf("icon is %dx%d, want 192x192", w, h)
		}
		if !strings.Contains(stdout, "Original image size: 40x40") {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("FlagsOverrideInvalidEnvironment", func(t *testing.T) {
		t.Setenv("TOUCHICON_SIZE", "8")
		dir := t.TempDir()
		src := filepath.Join(dir, "logo.png")
		writeLogo(t, src, 40)
		out := filepath.Join(dir, "icon.png")

		if _, _, err := run(t, "--strict", "resize", "-s", src, "-o", out, "--size", "64"); err != nil {
			t.Fatalf("resize failed: %v", err)
		}
		if w, h := pngSize(t, out); w != 64 || h != 64 {
			t.Errorf("icon is %dx%d, want 64x64", w, h)
		}
	})
}
