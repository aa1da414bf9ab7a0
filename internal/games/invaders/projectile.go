package invaders

import (
	"errors"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// ErrAtCapacity is returned by Fire when the live projectile cap is reached.
var ErrAtCapacity = errors.New("invaders: projectile cap reached")

// Projectiles owns the live shots.
type Projectiles struct {
	shots []*Projectile
	cap   int
	speed float64
	w, h  float64
}

// NewProjectiles creates an empty manager using the level's settings.
func NewProjectiles(s config.Settings) *Projectiles {
	return &Projectiles{
		shots: make([]*Projectile, 0, max(s.ProjectileCap, 0)),
		cap:   s.ProjectileCap,
		speed: s.ProjectileSpeed,
		w:     s.ProjectileWidth,
		h:     s.ProjectileHeight,
	}
}

// Fire spawns a projectile whose top center sits at (x, y).
func (p *Projectiles) Fire(x, y float64) (*Projectile, error) {
	if p.Len() >= p.cap {
		return nil, ErrAtCapacity
	}
	shot := &Projectile{
		X:     x - p.w/2,
		Y:     y,
		W:     p.w,
		H:     p.h,
		Speed: p.speed,
	}
	p.shots = append(p.shots, shot)
	return shot, nil
}

// Advance moves every shot up and drops those that have left the top.
func (p *Projectiles) Advance(dt float64) {
	if dt > 0 {
		for _, s := range p.shots {
			s.Y -= s.Speed * dt
		}
	}
	kept := p.shots[:0]
	for _, s := range p.shots {
		if s.Alive() && s.Y+s.H > 0 {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(p.shots); i++ {
		p.shots[i] = nil
	}
	p.shots = kept
}

// Reap removes killed shots.
func (p *Projectiles) Reap() {
	kept := p.shots[:0]
	for _, s := range p.shots {
		if s.Alive() {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(p.shots); i++ {
		p.shots[i] = nil
	}
	p.shots = kept
}

// Clear removes all shots.
func (p *Projectiles) Clear() {
	p.shots = p.shots[:0]
}

// Len returns the number of live shots.
func (p *Projectiles) Len() int {
	n := 0
	for _, s := range p.shots {
		if s.Alive() {
			n++
		}
	}
	return n
}

// Live returns the live shots.
func (p *Projectiles) Live() []*Projectile {
	out := make([]*Projectile, 0, len(p.shots))
	for _, s := range p.shots {
		if s.Alive() {
			out = append(out, s)
		}
	}
	return out
}
