// Package invaders implements the alien-invasion simulation: a ship at the
// bottom of the world fires upward at a fleet that sweeps sideways and drops
// one step each time it reaches an edge.
//
// The package is pure game logic. Input arrives as core.Event values and every
// tick produces a core.DrawBatch; timing, rendering and persistence belong to
// the caller.
package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Positioner is anything with a world position (top-left corner).
type Positioner interface {
	Pos() (x, y float64)
}

// Bounded is anything with an axis-aligned bounding box.
type Bounded interface {
	Bounds() core.Rect
}

// Living reports whether an entity still takes part in the world.
type Living interface {
	Alive() bool
}

// Body is what the collision engine works with.
type Body interface {
	Positioner
	Bounded
	Living
}

// Ship is the player-controlled ship.
// Remaining lives are tracked by Stats, not here.
type Ship struct {
	X, Y        float64
	W, H        float64
	MovingLeft  bool
	MovingRight bool
}

// NewShip creates a ship centered at the bottom of a world of the given size.
func NewShip(w, h, worldW, worldH float64) *Ship {
	s := &Ship{W: w, H: h}
	s.Center(worldW, worldH)
	return s
}

// Center places the ship at the bottom middle of the world.
func (s *Ship) Center(worldW, worldH float64) {
	s.X = (worldW - s.W) / 2
	s.Y = worldH - s.H
}

// Move advances the ship horizontally and keeps it inside [0, worldW].
// Holding both directions cancels out.
func (s *Ship) Move(dt, speed, worldW float64) {
	dir := 0.0
	if s.MovingRight {
		dir++
	}
	if s.MovingLeft {
		dir--
	}
	s.X = core.ClampF(s.X+dir*speed*dt, 0, worldW-s.W)
}

// TopCenter is where projectiles leave the ship.
func (s *Ship) TopCenter() (float64, float64) {
	return s.X + s.W/2, s.Y
}

func (s *Ship) Pos() (float64, float64) { return s.X, s.Y }
func (s *Ship) Bounds() core.Rect       { return core.NewRect(s.X, s.Y, s.W, s.H) }
func (s *Ship) Alive() bool             { return true }

// Projectile is a shot travelling straight up at a fixed speed.
type Projectile struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Units per second, upward
	dead  bool
}

func (p *Projectile) Pos() (float64, float64) { return p.X, p.Y }
func (p *Projectile) Bounds() core.Rect       { return core.NewRect(p.X, p.Y, p.W, p.H) }
func (p *Projectile) Alive() bool             { return !p.dead }

// Kill marks the projectile for removal at the next reap.
func (p *Projectile) Kill() { p.dead = true }

// Enemy is a single member of the fleet.
type Enemy struct {
	Row, Col int
	X, Y     float64
	W, H     float64
	dead     bool
}

func (e *Enemy) Pos() (float64, float64) { return e.X, e.Y }
func (e *Enemy) Bounds() core.Rect       { return core.NewRect(e.X, e.Y, e.W, e.H) }
func (e *Enemy) Alive() bool             { return !e.dead }

// Kill marks the enemy for removal at the next reap.
func (e *Enemy) Kill() { e.dead = true }
