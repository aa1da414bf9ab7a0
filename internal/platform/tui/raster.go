package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Sprite glyphs and colors.
var spriteLooks = map[core.Sprite]struct {
	glyph rune
	color core.Color
}{
	core.SpriteShip:       {'▲', core.ColorBrightCyan},
	core.SpriteEnemy:      {'▓', core.ColorBrightGreen},
	core.SpriteProjectile: {'│', core.ColorBrightYellow},
}

// hudRows is the number of terminal rows above the playfield.
const hudRows = 1

// Viewport maps world coordinates onto terminal cells.
// Row 0 holds the HUD; the playfield fills the rows below it.
type Viewport struct {
	Cols, Rows     int
	WorldW, WorldH float64
}

func (v Viewport) fieldRows() int {
	return max(v.Rows-hudRows, 1)
}

func (v Viewport) scale() (sx, sy float64) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 1, 1
	}
	return float64(v.Cols) / v.WorldW, float64(v.fieldRows()) / v.WorldH
}

// CellRect returns the cells covered by a world rectangle. Every visible
// rectangle covers at least one cell.
func (v Viewport) CellRect(r core.Rect) (x, y, w, h int) {
	sx, sy := v.scale()
	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom() * sy))
	w = max(x1-x0, 1)
	h = max(y1-y0, 1)
	return x0, y0 + hudRows, w, h
}

// ToWorld converts a terminal cell to the world point at its center.
// ok is false for cells outside the playfield.
func (v Viewport) ToWorld(col, row int) (x, y float64, ok bool) {
	if col < 0 || col >= v.Cols || row < hudRows || row >= v.Rows {
		return 0, 0, false
	}
	sx, sy := v.scale()
	return (float64(col) + 0.5) / sx, (float64(row-hudRows) + 0.5) / sy, true
}

// Rasterize draws a batch into the screen, scaled to its size.
func Rasterize(dst *core.Screen, b core.DrawBatch) Viewport {
	dst.Clear()
	v := Viewport{Cols: dst.Width(), Rows: dst.Height(), WorldW: b.Width, WorldH: b.Height}

	for _, c := range b.Commands {
		switch c.Kind {
		case core.DrawSprite:
			look := spriteLooks[c.Sprite]
			x, y, w, h := v.CellRect(c.Rect)
			dst.FillRect(x, y, w, h, look.glyph, look.color)
		case core.DrawButton:
			drawButton(dst, v, c)
		case core.DrawOverlay:
			drawOverlay(dst, v, c)
		}
	}

	if b.ShowHUD {
		drawHUD(dst, b.HUD)
	}
	return v
}

func drawButton(dst *core.Screen, v Viewport, c core.DrawCommand) {
	sx, sy := v.scale()
	cx, cy := c.Rect.Center()
	label := "[ " + c.Text + " ]"
	if c.Highlight {
		label = "> " + c.Text + " <"
	}
	col := max(int(cx*sx)-len([]rune(label))/2, 0)
	row := int(cy*sy) + hudRows
	if c.Highlight {
		dst.DrawTextColored(col, row, label, core.ColorBrightYellow)
		return
	}
	dst.DrawText(col, row, label)
}

// drawOverlay draws a boxed message over the playfield.
func drawOverlay(dst *core.Screen, v Viewport, c core.DrawCommand) {
	row := hudRows + v.fieldRows()/3
	w := max(len([]rune(c.Text)), len([]rune(c.Subtext))) + 4
	x := (dst.Width() - w) / 2
	dst.FillRect(x, row-1, w, 5, ' ', core.ColorDefault)
	dst.DrawBox(x, row-1, w, 5, core.ColorGray)
	dst.DrawTextCentered(row, c.Text, core.ColorBrightYellow)
	if c.Subtext != "" {
		dst.DrawTextCentered(row+2, c.Subtext, core.ColorWhite)
	}
}

func drawHUD(dst *core.Screen, h core.HUD) {
	left := fmt.Sprintf(" Score %d  Level %d  Ships %s", h.Score, h.Level, strings.Repeat("▲", max(h.ShipsLeft, 0)))
	right := fmt.Sprintf("%s  High %d ", h.Difficulty, h.HighScore)
	dst.FillRect(0, 0, dst.Width(), hudRows, ' ', core.ColorDefault)
	dst.DrawTextColored(0, 0, left, core.ColorWhite)
	dst.DrawTextColored(max(dst.Width()-len([]rune(right)), 0), 0, right, core.ColorGray)
}
