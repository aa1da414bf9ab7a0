package invaders

import "github.com/vovakirdan/tui-invaders/internal/config"

// Fleet is the enemy formation for one level.
// All enemies share one horizontal direction and move as a rigid block.
type Fleet struct {
	Enemies    []*Enemy
	Columns    int
	Rows       int
	Direction  float64 // +1 right, -1 left
	DropOffset float64 // Total distance dropped so far

	speed     float64
	dropSpeed float64
	worldW    float64
}

// FleetLayout returns the fleet grid size for a ship of the given height.
func FleetLayout(s config.Settings, shipHeight float64) (columns, rows int) {
	s.ShipHeight = shipHeight
	return config.FleetLayout(s)
}

// BuildFleet lays out a fresh fleet. The layout is deterministic; settings
// that leave no room produce an empty fleet.
func BuildFleet(s config.Settings, shipHeight float64) *Fleet {
	columns, rows := FleetLayout(s, shipHeight)
	f := &Fleet{
		Enemies:   make([]*Enemy, 0, columns*rows),
		Columns:   columns,
		Rows:      rows,
		Direction: 1,
		speed:     s.EnemySpeed,
		dropSpeed: s.FleetDropSpeed,
		worldW:    s.ScreenWidth,
	}
	ew, eh := s.EnemyWidth, s.EnemyHeight
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			f.Enemies = append(f.Enemies, &Enemy{
				Row: row,
				Col: col,
				X:   ew + 2*ew*float64(col),
				Y:   eh + 2*eh*float64(row),
				W:   ew,
				H:   eh,
			})
		}
	}
	return f
}

// Advance moves the fleet sideways by speed*dt. If any live enemy has reached
// the edge it is heading toward, the whole fleet drops once and reverses.
func (f *Fleet) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	dx := f.speed * f.Direction * dt
	for _, e := range f.Enemies {
		if e.Alive() {
			e.X += dx
		}
	}
	if f.atEdge() {
		f.drop()
	}
}

// atEdge stops at the first enemy past the boundary in the current direction.
func (f *Fleet) atEdge() bool {
	for _, e := range f.Enemies {
		if !e.Alive() {
			continue
		}
		if f.Direction > 0 && e.X+e.W >= f.worldW {
			return true
		}
		if f.Direction < 0 && e.X <= 0 {
			return true
		}
	}
	return false
}

func (f *Fleet) drop() {
	for _, e := range f.Enemies {
		if e.Alive() {
			e.Y += f.dropSpeed
		}
	}
	f.DropOffset += f.dropSpeed
	f.Direction = -f.Direction
}

// Live returns the enemies still alive, in layout order.
func (f *Fleet) Live() []*Enemy {
	out := make([]*Enemy, 0, len(f.Enemies))
	for _, e := range f.Enemies {
		if e.Alive() {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of live enemies.
func (f *Fleet) Len() int {
	n := 0
	for _, e := range f.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Empty reports whether the level is cleared.
func (f *Fleet) Empty() bool {
	return f.Len() == 0
}

// ReachedBottom reports whether any live enemy touches the bottom of a world
// of height h.
func (f *Fleet) ReachedBottom(h float64) bool {
	for _, e := range f.Enemies {
		if e.Alive() && e.Y+e.H >= h {
			return true
		}
	}
	return false
}

// Reap removes killed enemies.
func (f *Fleet) Reap() {
	live := f.Enemies[:0]
	for _, e := range f.Enemies {
		if e.Alive() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(f.Enemies); i++ {
		f.Enemies[i] = nil
	}
	f.Enemies = live
}

// Clear removes every enemy at once.
func (f *Fleet) Clear() {
	f.Enemies = f.Enemies[:0]
}
