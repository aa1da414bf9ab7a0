package core

// Sprite identifies what an entity rectangle should look like.
type Sprite int

const (
	SpriteShip Sprite = iota
	SpriteEnemy
	SpriteProjectile
)

// DrawKind selects how a DrawCommand is interpreted by the renderer.
type DrawKind int

const (
	DrawSprite  DrawKind = iota // Rect filled with the sprite's look
	DrawButton                  // Rect outlined with a centered label
	DrawOverlay                 // Centered message box with Text and Subtext
)

// DrawCommand is a single draw primitive in world coordinates.
type DrawCommand struct {
	Kind      DrawKind
	Sprite    Sprite
	Rect      Rect
	Text      string
	Subtext   string
	Highlight bool
}

// HUD carries the values shown in the heads-up display.
type HUD struct {
	Score      int
	HighScore  int
	Level      int
	ShipsLeft  int
	Difficulty string
}

// DrawBatch is the ordered list of primitives for one tick.
// Width and Height give the world size the rectangles refer to.
type DrawBatch struct {
	Width    float64
	Height   float64
	Commands []DrawCommand
	HUD      HUD
	ShowHUD  bool
}

// Sprite appends an entity rectangle.
func (b *DrawBatch) Sprite(s Sprite, r Rect) {
	b.Commands = append(b.Commands, DrawCommand{Kind: DrawSprite, Sprite: s, Rect: r})
}

// Button appends a labeled button rectangle.
func (b *DrawBatch) Button(r Rect, label string, highlight bool) {
	b.Commands = append(b.Commands, DrawCommand{Kind: DrawButton, Rect: r, Text: label, Highlight: highlight})
}

// Overlay appends a centered message box.
func (b *DrawBatch) Overlay(title, subtitle string) {
	b.Commands = append(b.Commands, DrawCommand{Kind: DrawOverlay, Text: title, Subtext: subtitle})
}
