package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// A 120x41 terminal gives 40 playfield rows: 10 world units per column
// and 20 per row.
func testViewport() Viewport {
	return Viewport{Cols: 120, Rows: 41, WorldW: 1200, WorldH: 800}
}

func TestCellRect(t *testing.T) {
	v := testViewport()

	tests := []struct {
		name       string
		rect       core.Rect
		x, y, w, h int
	}{
		{"enemy", core.NewRect(44, 44, 44, 44), 4, 3, 5, 3},
		{"thin projectile", core.NewRect(600, 400, 3, 15), 60, 21, 1, 1},
		{"origin", core.NewRect(0, 0, 10, 20), 0, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := v.CellRect(tt.rect)
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("CellRect(%+v) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					tt.rect, x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestToWorld(t *testing.T) {
	v := testViewport()

	x, y, ok := v.ToWorld(60, 21)
	if !ok {
		t.Fatal("ToWorld inside the playfield should succeed")
	}
	if math.Abs(x-605) > 1e-6 || math.Abs(y-410) > 1e-6 {
		t.Errorf("ToWorld(60, 21) = (%v, %v), want (605, 410)", x, y)
	}

	outside := []struct{ col, row int }{
		{0, 0},   // HUD row
		{-1, 5},  // left of screen
		{120, 5}, // right of screen
		{5, 41},  // below screen
	}
	for _, c := range outside {
		if _, _, ok := v.ToWorld(c.col, c.row); ok {
			t.Errorf("ToWorld(%d, %d) should be outside the playfield", c.col, c.row)
		}
	}
}

func TestToWorldHitsRasterizedButton(t *testing.T) {
	v := testViewport()
	button := core.NewRect(500, 455, 200, 50)

	x, y, w, h := v.CellRect(button)
	cx, cy, ok := v.ToWorld(x+w/2, y+h/2)
	if !ok || !button.Contains(cx, cy) {
		t.Errorf("center cell of button maps to (%v, %v), outside %+v", cx, cy, button)
	}
}

func TestRasterizeSprites(t *testing.T) {
	s := core.NewScreen(120, 41)
	var b core.DrawBatch
	b.Width, b.Height = 1200, 800
	b.Sprite(core.SpriteEnemy, core.NewRect(44, 44, 44, 44))
	b.Sprite(core.SpriteProjectile, core.NewRect(600, 400, 3, 15))

	Rasterize(s, b)

	for y := 3; y < 6; y++ {
		for x := 4; x < 9; x++ {
			if got := s.Get(x, y); got != '▓' {
				t.Fatalf("cell (%d,%d) = %q, want enemy glyph", x, y, got)
			}
		}
	}
	if got := s.Get(60, 21); got != '│' {
		t.Errorf("projectile cell = %q, want '│'", got)
	}
	if got := s.GetCell(60, 21).Color; got != core.ColorBrightYellow {
		t.Errorf("projectile color = %v, want bright yellow", got)
	}
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("HUD row should be blank without HUD, got %q", got)
	}
}

func TestRasterizeHUDAndOverlay(t *testing.T) {
	s := core.NewScreen(120, 41)
	b := core.DrawBatch{
		Width:   1200,
		Height:  800,
		ShowHUD: true,
		HUD:     core.HUD{Score: 120, HighScore: 900, Level: 3, ShipsLeft: 2, Difficulty: "Hard"},
	}
	b.Overlay("GAME OVER", "Score 120")

	Rasterize(s, b)

	hud := s.Row(0)
	for _, want := range []string{"Score 120", "Level 3", "▲▲", "Hard", "High 900"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.Contains(s.String(), "GAME OVER") || !strings.Contains(s.String(), "Score 120") {
		t.Errorf("overlay not drawn:\n%s", s.String())
	}
}

func TestRasterizeMenuFromGame(t *testing.T) {
	game := invaders.New(config.DefaultInvadersConfig(), nil, nil)
	s := core.NewScreen(120, 41)

	Rasterize(s, game.Step(nil, 0).Draw)

	out := s.String()
	for _, want := range []string{"INVADERS", "[ Easy ]", "> Medium <", "[ Hard ]"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu screen missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(s.Row(0), "Score") {
		t.Error("menu should not show the HUD")
	}

	for _, tt := range []struct {
		label string
		color core.Color
	}{
		{"[ Easy ]", core.ColorDefault},
		{"> Medium <", core.ColorBrightYellow},
	} {
		row, col := findText(s, tt.label)
		if row < 0 {
			continue
		}
		if got := s.GetCell(col, row).Color; got != tt.color {
			t.Errorf("%q color = %v, want %v", tt.label, got, tt.color)
		}
	}
}

// findText returns the cell where text starts, or -1, -1.
func findText(s *core.Screen, text string) (row, col int) {
	for y := 0; y < s.Height(); y++ {
		if i := strings.Index(s.Row(y), text); i >= 0 {
			return y, len([]rune(s.Row(y)[:i]))
		}
	}
	return -1, -1
}

func TestRasterizeTinyScreenDoesNotPanic(t *testing.T) {
	game := invaders.New(config.DefaultInvadersConfig(), nil, nil)
	game.Start(config.DifficultyMedium)

	for _, size := range [][2]int{{1, 1}, {10, 2}, {0, 0}} {
		s := core.NewScreen(size[0], size[1])
		Rasterize(s, game.Step(nil, 1.0/60).Draw)
	}
}
