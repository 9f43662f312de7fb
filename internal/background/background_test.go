package background

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func writeColorFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, colorFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMissingFilesGiveNothing(t *testing.T) {
	o := NewAt(t.TempDir())
	if img := o.Image(); img != nil {
		t.Error("Image() for empty dir should be nil")
	}
	if _, ok := o.Color(); ok {
		t.Error("Color() for empty dir should report no override")
	}
}

func TestColorFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		ok      bool
	}{
		{"plain hex", "#1A2B3C", "#1a2b3c", true},
		{"missing hash", "1A2B3C", "#1a2b3c", true},
		{"trailing newline", "#FF0000\n", "#ff0000", true},
		{"surrounding whitespace", "  #00FF00  \n", "#00ff00", true},
		{"garbage", "not a color", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeColorFile(t, dir, tt.content)
			o := NewAt(dir)
			c, ok := o.Color()
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			want, err := colorful.Hex(tt.want)
			if err != nil {
				t.Fatal(err)
			}
			if c != want {
				t.Errorf("color = %v, want %v", c, want)
			}
		})
	}
}

func TestImageDecodesPNG(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	src.Set(1, 1, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, imageFileName), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	o := NewAt(dir)
	img := o.Image()
	if img == nil {
		t.Fatal("Image() returned nil for a valid PNG")
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
}

func TestImageGarbageIsNil(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, imageFileName), []byte("definitely not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if img := NewAt(dir).Image(); img != nil {
		t.Error("Image() for a corrupt file should be nil")
	}
}

func TestReloadPicksUpChanges(t *testing.T) {
	dir := t.TempDir()
	o := NewAt(dir)

	if _, ok := o.Color(); ok {
		t.Fatal("no color file yet")
	}

	// The empty result is cached until Reload.
	writeColorFile(t, dir, "#123456")
	if _, ok := o.Color(); ok {
		t.Fatal("cached miss should persist until Reload")
	}

	o.Reload()
	c, ok := o.Color()
	if !ok {
		t.Fatal("Color() after Reload should see the new file")
	}
	want, _ := colorful.Hex("#123456")
	if c != want {
		t.Errorf("color = %v, want %v", c, want)
	}
}
