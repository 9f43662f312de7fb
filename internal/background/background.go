// Package background loads the user's canvas background overrides: an
// optional PNG image (grc_background.png) and an optional #RRGGBB color
// file (grc_background_color) next to the effects config. Both are cached
// after the first lookup; malformed files behave as if absent.
package background

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	dirName       = ".gnuradio"
	imageFileName = "grc_background.png"
	colorFileName = "grc_background_color"
)

// Overrides caches the user's background image and color. The zero value
// is not usable; use New.
type Overrides struct {
	dir string

	img        image.Image
	imgChecked bool

	color        colorful.Color
	hasColor     bool
	colorChecked bool
}

// New returns overrides rooted at the user's config directory. If the home
// directory cannot be determined the overrides simply stay empty.
func New() *Overrides {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Overrides{}
	}
	return NewAt(filepath.Join(home, dirName))
}

// NewAt returns overrides rooted at an explicit directory.
func NewAt(dir string) *Overrides {
	return &Overrides{dir: dir}
}

// Image returns the user's background image, or nil if none is set or it
// cannot be decoded.
func (o *Overrides) Image() image.Image {
	if o.imgChecked {
		return o.img
	}
	o.imgChecked = true
	if o.dir == "" {
		return nil
	}
	f, err := os.Open(filepath.Join(o.dir, imageFileName))
	if err != nil {
		return nil
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil
	}
	o.img = img
	return o.img
}

// Color returns the user's background color override and whether one is
// set. The file holds a single #RRGGBB value.
func (o *Overrides) Color() (colorful.Color, bool) {
	if o.colorChecked {
		return o.color, o.hasColor
	}
	o.colorChecked = true
	if o.dir == "" {
		return colorful.Color{}, false
	}
	data, err := os.ReadFile(filepath.Join(o.dir, colorFileName))
	if err != nil {
		return colorful.Color{}, false
	}
	hex := strings.TrimSpace(string(data))
	if len(hex) > 0 && hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	o.color = c
	o.hasColor = true
	return o.color, true
}

// Reload drops the caches so the next lookup re-reads the files. Call
// after the user changes either override.
func (o *Overrides) Reload() {
	o.img = nil
	o.imgChecked = false
	o.color = colorful.Color{}
	o.hasColor = false
	o.colorChecked = false
}
