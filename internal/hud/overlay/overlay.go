//go:build cgo

// Package overlay draws the hunger and thirst HUD of every player on the
// board in a raylib window.
package overlay

import (
	"context"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/easy-hunger/internal/hud"
)

// Field-log palette.
var (
	colorBG      = rl.NewColor(0x14, 0x1A, 0x1F, 255)
	colorPanel   = rl.NewColor(0x1C, 0x23, 0x29, 255)
	colorBorder  = rl.NewColor(0x2E, 0x3A, 0x40, 255)
	colorText    = rl.NewColor(0xE8, 0xE2, 0xD8, 255)
	colorDim     = rl.NewColor(0xA6, 0xAD, 0xB1, 255)
	colorMuted   = rl.NewColor(0x7D, 0x85, 0x8A, 255)
	colorHunger  = rl.NewColor(0xD4, 0x6A, 0x1E, 255)
	colorThirst  = rl.NewColor(0x3A, 0x8D, 0xC4, 255)
	colorWellFed = rl.NewColor(0x2F, 0x5D, 0x42, 255)
	colorDanger  = rl.NewColor(0xB8, 0x4A, 0x3A, 255)
)

const (
	panelHeight = 92
	panelGap    = 10
	margin      = 16
)

type Config struct {
	Title     string
	Width     int32
	Height    int32
	MaxHunger float32
	MaxThirst float32
	// WellFed draws the threshold marker on both bars.
	WellFed float32
}

type Overlay struct {
	cfg   Config
	board *hud.Board
}

func New(board *hud.Board, cfg Config) *Overlay {
	if cfg.Title == "" {
		cfg.Title = "easy hunger"
	}
	if cfg.Width <= 0 {
		cfg.Width = 520
	}
	if cfg.Height <= 0 {
		cfg.Height = 640
	}
	return &Overlay{cfg: cfg, board: board}
}

// Run opens the window and draws until it is closed or ctx ends. It must
// be called from the main goroutine.
func (o *Overlay) Run(ctx context.Context) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(o.cfg.Width, o.cfg.Height, o.cfg.Title)
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(30)

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}
		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		o.draw(int32(rl.GetScreenWidth()))
		rl.EndDrawing()
	}
	return nil
}

func (o *Overlay) draw(width int32) {
	readouts := o.board.Snapshot()
	if len(readouts) == 0 {
		rl.DrawText("waiting for players...", margin, margin, 20, colorMuted)
		return
	}
	y := float32(margin)
	for _, r := range readouts {
		rect := rl.NewRectangle(margin, y, float32(width-2*margin), panelHeight)
		o.drawPlayer(rect, r)
		y += panelHeight + panelGap
	}
}

func (o *Overlay) drawPlayer(rect rl.Rectangle, r hud.Readout) {
	rl.DrawRectangleRounded(rect, 0.08, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.08, 8, 1.2, colorBorder)

	x, y := int32(rect.X)+12, int32(rect.Y)+8
	rl.DrawText(r.Name, x, y, 20, colorText)
	age := time.Since(r.Updated).Round(time.Second)
	stamp := fmt.Sprintf("%s ago", age)
	rl.DrawText(stamp, int32(rect.X+rect.Width)-12-rl.MeasureText(stamp, 14), y+4, 14, colorMuted)

	barRect := rl.NewRectangle(rect.X+100, rect.Y+38, rect.Width-112, 16)
	o.drawMeter("Hunger", barRect, r.Hunger, r.HungerPreview, o.cfg.MaxHunger, colorHunger)
	barRect.Y += 24
	o.drawMeter("Thirst", barRect, r.Thirst, r.ThirstPreview, o.cfg.MaxThirst, colorThirst)
}

func (o *Overlay) drawMeter(label string, rect rl.Rectangle, level, preview, max float32, fill rl.Color) {
	rl.DrawText(label, int32(rect.X)-88, int32(rect.Y), 16, colorDim)

	bar := hud.BarFor(level, preview, max)
	rl.DrawRectangleRec(rect, rl.Fade(colorBorder, 0.6))
	if bar.Level < 0.25 {
		fill = colorDanger
	}
	filled := rect
	filled.Width = rect.Width * bar.Level
	rl.DrawRectangleRec(filled, fill)
	if bar.Preview > 0 {
		pending := rl.NewRectangle(filled.X+filled.Width, rect.Y, rect.Width*bar.Preview, rect.Height)
		rl.DrawRectangleRec(pending, rl.Fade(fill, 0.4))
	}
	if o.cfg.WellFed > 0 && max > 0 {
		mx := int32(rect.X + rect.Width*(o.cfg.WellFed/max))
		rl.DrawLine(mx, int32(rect.Y)-2, mx, int32(rect.Y+rect.Height)+2, colorWellFed)
	}
	value := fmt.Sprintf("%.0f", level)
	rl.DrawText(value, int32(rect.X+rect.Width)-rl.MeasureText(value, 14)-4, int32(rect.Y)+1, 14, colorText)
}
