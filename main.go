package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/ncruces/zenity"

	"flowfx/internal/background"
	"flowfx/internal/config"
	"flowfx/internal/effects"
	"flowfx/internal/game"
	"flowfx/internal/sound"
)

// Per-style particle colors, in the spirit of the theme palettes.
var styleColors = map[effects.Style]string{
	effects.StyleMatrixRain: "#00FF41",
	effects.StyleSnow:       "#CCDDFF",
	effects.StyleBubbles:    "#66CCFF",
	effects.StyleConfetti:   "#FF66AA",
	effects.StyleSparks:     "#FFAA33",
	effects.StyleDust:       "#AAAACC",
	effects.StyleFire:       "#FF6622",
	effects.StyleFireflies:  "#CCFF66",
	effects.StyleLightning:  "#AACCFF",
	effects.StyleStarfield:  "#FFFFFF",
	effects.StyleScanline:   "#00FF88",
	effects.StyleGlitch:     "#FF00FF",
}

var (
	canvasBackground = mustHex("#1A1A2E")
	blockFill        = mustHex("#16213E")
	blockBorder      = mustHex("#E94560")
	highlightColor   = mustHex("#FFD700")
	connectionColor  = mustHex("#53B8BB")
	textColor        = mustHex("#DDDDDD")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// block is a mock flow-graph block for previewing the effects.
type block struct {
	id          string
	label       string
	x, y, w, h  float64
	highlighted bool
	ripple      effects.Ripple
}

// connection joins two mock blocks.
type connection struct {
	id       string
	from, to *block
}

type app struct {
	cfg    config.Config
	canvas *game.Canvas

	ambient  *effects.AmbientSystem
	flow     *effects.FlowManager
	entrance *effects.EntranceTracker
	bg       *background.Overrides
	sounds   *sound.Player

	styleIdx int

	blocks      []*block
	connections []*connection
	nextBlockID int

	bgImage *ebiten.Image

	prevKey map[ebiten.Key]bool
	lastErr error
}

func newApp() *app {
	cfg, err := config.Load()

	a := &app{
		cfg:      cfg,
		canvas:   game.NewCanvas(nil),
		ambient:  effects.NewAmbientSystem(),
		flow:     effects.NewFlowManager(),
		entrance: effects.NewEntranceTracker(),
		bg:       background.New(),
		sounds:   sound.NewPlayer(cueDir()),
		prevKey:  map[ebiten.Key]bool{},
		lastErr:  err,
	}

	// Restore the configured style.
	for i, s := range effects.Styles {
		if string(s) == cfg.AmbientMode() {
			a.styleIdx = i
			break
		}
	}

	a.addBlock(120, 140, "source")
	a.addBlock(420, 260, "filter")
	a.addBlock(720, 140, "sink")
	a.connections = []*connection{
		{id: "c1", from: a.blocks[0], to: a.blocks[1]},
		{id: "c2", from: a.blocks[1], to: a.blocks[2]},
	}
	return a
}

func cueDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sounds"
	}
	return filepath.Join(home, ".gnuradio", "sounds")
}

func (a *app) addBlock(x, y float64, label string) *block {
	a.nextBlockID++
	b := &block{
		id:    fmt.Sprintf("b%d", a.nextBlockID),
		label: label,
		x:     x, y: y, w: 140, h: 60,
	}
	a.blocks = append(a.blocks, b)
	if a.cfg.BlockEntranceAnim {
		a.entrance.Register(b.id)
	}
	return b
}

func (a *app) style() effects.Style {
	return effects.Styles[a.styleIdx]
}

func (a *app) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !a.prevKey[k]
		a.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyTab) || justPressed(ebiten.KeyRight) {
		a.cycleStyle(1)
	}
	if justPressed(ebiten.KeyLeft) {
		a.cycleStyle(-1)
	}
	if justPressed(ebiten.KeyG) {
		a.cfg.GridOverlay = !a.cfg.GridOverlay
	}
	if justPressed(ebiten.KeyD) {
		a.cfg.DataFlowParticles = !a.cfg.DataFlowParticles
	}
	if justPressed(ebiten.KeyN) {
		a.spawnBlock()
	}
	if justPressed(ebiten.KeyB) {
		if err := a.pickBackground(); err != nil {
			a.lastErr = err
		}
	}
	if justPressed(ebiten.KeyS) {
		if err := a.cfg.Save(); err != nil {
			a.lastErr = err
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.handleClick(ebiten.CursorPosition())
	}

	if a.cfg.DataFlowParticles {
		for _, c := range a.connections {
			a.flow.EnsureDots(c.id)
		}
		a.flow.Tick()
	}
	return nil
}

// cycleStyle steps through the ambient styles. The particle system is
// discarded and recreated so no particles of the old style linger.
func (a *app) cycleStyle(dir int) {
	a.styleIdx = (a.styleIdx + dir + len(effects.Styles)) % len(effects.Styles)
	a.ambient = effects.NewAmbientSystem()
	a.cfg.AmbientParticles = string(a.style())
}

func (a *app) spawnBlock() {
	x := 80 + float64((a.nextBlockID*97)%720)
	y := 100 + float64((a.nextBlockID*61)%300)
	b := a.addBlock(x, y, fmt.Sprintf("block_%d", a.nextBlockID))
	if len(a.blocks) > 1 {
		prev := a.blocks[len(a.blocks)-2]
		a.connections = append(a.connections, &connection{
			id:   "c" + b.id,
			from: prev,
			to:   b,
		})
	}
}

func (a *app) handleClick(mx, my int) {
	fx, fy := float64(mx), float64(my)
	var hit *block
	for i := len(a.blocks) - 1; i >= 0; i-- {
		b := a.blocks[i]
		if fx >= b.x && fx <= b.x+b.w && fy >= b.y && fy <= b.y+b.h {
			hit = b
			break
		}
	}
	for _, b := range a.blocks {
		b.highlighted = b == hit
	}
	if hit != nil {
		if err := a.sounds.Play(a.cfg.ClickSoundKind()); err != nil {
			a.lastErr = err
		}
	}
}

// pickBackground lets the user choose a PNG, installs it as the background
// override and reloads the cache.
func (a *app) pickBackground() error {
	name, err := zenity.SelectFile(
		zenity.Title("Choose Background Image"),
		zenity.FileFilters{{
			Name:     "PNG images",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dst := filepath.Join(home, ".gnuradio", "grc_background.png")
	if err := copyFile(name, dst); err != nil {
		return err
	}
	a.bg.Reload()
	a.bgImage = nil
	return nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}

func (a *app) Draw(screen *ebiten.Image) {
	a.canvas.Retarget(screen)
	cv := a.canvas
	w := float64(config.WindowWidth)
	h := float64(config.WindowHeight)

	// Layer 1: theme background.
	cv.FillRect(0, 0, w, h, canvasBackground, 1)

	// Layer 2: user background image.
	a.drawBackgroundImage(screen)

	// Layer 3: user background color override.
	if c, ok := a.bg.Color(); ok {
		cv.FillRect(0, 0, w, h, c, 1)
	}

	// Layer 4: grid overlay.
	if a.cfg.GridOverlay {
		a.drawGrid(cv, w, h)
	}

	// Layer 5: ambient particles.
	if style := a.style(); style != effects.StyleOff {
		a.ambient.TickAndRender(cv, w, h, style, styleColors[style])
	}

	// Layer 6: the mock flow graph.
	for _, c := range a.connections {
		a.drawConnection(cv, c)
	}
	now := time.Now()
	for _, b := range a.blocks {
		a.drawBlock(cv, b, now)
	}

	a.drawStatus(screen)
}

func (a *app) drawBackgroundImage(screen *ebiten.Image) {
	if a.bgImage == nil {
		img := a.bg.Image()
		if img == nil {
			return
		}
		a.bgImage = ebiten.NewImageFromImage(img)
	}
	bw := a.bgImage.Bounds().Dx()
	bh := a.bgImage.Bounds().Dy()
	if bw == 0 || bh == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(config.WindowWidth)/float64(bw), float64(config.WindowHeight)/float64(bh))
	screen.DrawImage(a.bgImage, op)
}

func (a *app) drawGrid(cv *game.Canvas, w, h float64) {
	for x := 0.0; x <= w; x += config.GridSpacing {
		cv.StrokeLine(x, 0, x, h, config.GridLineWidth, highlightColor, config.GridAlpha)
	}
	for y := 0.0; y <= h; y += config.GridSpacing {
		cv.StrokeLine(0, y, w, y, config.GridLineWidth, highlightColor, config.GridAlpha)
	}
}

func (a *app) drawConnection(cv *game.Canvas, c *connection) {
	x1 := c.from.x + c.from.w
	y1 := c.from.y + c.from.h/2
	x2 := c.to.x
	y2 := c.to.y + c.to.h/2
	cv.StrokeLine(x1, y1, x2, y2, 2, connectionColor, 1)

	if !a.cfg.DataFlowParticles {
		return
	}
	// Map dot progress linearly onto the connection segment.
	for _, t := range a.flow.Progress(c.id) {
		if t <= 0 || t >= 1 {
			continue
		}
		px := x1 + (x2-x1)*t
		py := y1 + (y2-y1)*t
		cv.FillCircle(px, py, 3.5, connectionColor, 0.9)
	}
}

func (a *app) drawBlock(cv *game.Canvas, b *block, now time.Time) {
	fade := 1.0
	if a.cfg.BlockEntranceAnim {
		fade = a.entrance.FadeAlpha(b.id)
	}
	if fade < 1 {
		cv.PushGroup()
	}

	cv.FillRect(b.x, b.y, b.w, b.h, blockFill, 1)
	border := blockBorder
	if b.highlighted {
		border = highlightColor
	}
	cv.StrokeRect(b.x, b.y, b.w, b.h, 2, border, 1)
	for i, r := range b.label {
		cv.Glyph(r, b.x+10+float64(i)*7, b.y+b.h/2+5, 13, textColor, 1)
	}

	if a.cfg.ClickRipple {
		b.ripple.Update(b.highlighted, now)
		for _, ring := range b.ripple.Rings(now) {
			cv.StrokeRoundedRect(
				b.x-ring.Expand, b.y-ring.Expand,
				b.w+ring.Expand*2, b.h+ring.Expand*2,
				10+ring.Expand*0.3, ring.StrokeWidth,
				highlightColor, ring.Alpha)
		}
	}

	if fade < 1 {
		cv.PopGroup(fade)
	}
}

func (a *app) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf(
		"style: %s | Tab/arrows cycle, G grid, D flow dots, N new block, B background, S save, Esc quit",
		a.style())
	if err := a.ambient.Err(); err != nil {
		a.lastErr = err
	}
	if a.lastErr != nil {
		status += " | Error: " + a.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("flowfx preview")
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(newApp()); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
