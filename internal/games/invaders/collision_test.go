package invaders

import (
	"slices"
	"testing"
)

func shotAt(x, y float64) *Projectile {
	return &Projectile{X: x, Y: y, W: 3, H: 15}
}

func enemyAt(x, y float64) *Enemy {
	return &Enemy{X: x, Y: y, W: 44, H: 44}
}

// pairs flattens a result into (shot, enemy) pointer pairs so two runs over
// differently ordered inputs can be compared.
func pairs(c Collisions, shots []*Projectile, enemies []*Enemy) map[[2]any]bool {
	out := make(map[[2]any]bool)
	for i, js := range c.Hits {
		for _, j := range js {
			out[[2]any{shots[i], enemies[j]}] = true
		}
	}
	return out
}

func TestCollideGroupsBasic(t *testing.T) {
	shots := []*Projectile{
		shotAt(10, 10),  // hits enemy 0
		shotAt(500, 10), // misses
		shotAt(60, 20),  // hits enemy 1
	}
	enemies := []*Enemy{
		enemyAt(0, 0),
		enemyAt(50, 0),
		enemyAt(300, 300),
	}

	c := CollideGroups(shots, enemies, true, true)
	if !slices.Equal(c.Hits[0], []int{0}) {
		t.Errorf("Hits[0] = %v, expected [0]", c.Hits[0])
	}
	if _, ok := c.Hits[1]; ok {
		t.Errorf("shot 1 should not hit anything, got %v", c.Hits[1])
	}
	if !slices.Equal(c.RemovedA, []int{0, 2}) {
		t.Errorf("RemovedA = %v, expected [0 2]", c.RemovedA)
	}
	if !slices.Equal(c.RemovedB, []int{0, 1}) {
		t.Errorf("RemovedB = %v, expected [0 1]", c.RemovedB)
	}
	for _, s := range shots {
		if !s.Alive() {
			t.Fatal("CollideGroups must not modify its inputs")
		}
	}
}

func TestCollideGroupsOneShotManyEnemies(t *testing.T) {
	// Shot straddles the touching edges of two enemies.
	shots := []*Projectile{shotAt(43, 10)}
	enemies := []*Enemy{enemyAt(0, 0), enemyAt(44, 0)}

	c := CollideGroups(shots, enemies, true, true)
	if !slices.Equal(c.Hits[0], []int{0, 1}) {
		t.Errorf("Hits[0] = %v, expected [0 1]", c.Hits[0])
	}
	if len(c.RemovedB) != 2 {
		t.Errorf("RemovedB = %v, expected both enemies", c.RemovedB)
	}
}

func TestCollideGroupsManyShotsOneEnemy(t *testing.T) {
	shots := []*Projectile{shotAt(5, 5), shotAt(20, 5), shotAt(30, 30)}
	enemies := []*Enemy{enemyAt(0, 0)}

	c := CollideGroups(shots, enemies, true, true)
	if len(c.RemovedA) != 3 {
		t.Errorf("RemovedA = %v, expected all three shots", c.RemovedA)
	}
	if !slices.Equal(c.RemovedB, []int{0}) {
		t.Errorf("RemovedB = %v, expected the enemy once", c.RemovedB)
	}
}

func TestCollideGroupsRemovalFlags(t *testing.T) {
	shots := []*Projectile{shotAt(5, 5)}
	enemies := []*Enemy{enemyAt(0, 0)}

	tests := []struct {
		name             string
		removeA, removeB bool
		wantA, wantB     int
	}{
		{"both", true, true, 1, 1},
		{"pierce", false, true, 0, 1},
		{"shield", true, false, 1, 0},
		{"query only", false, false, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := CollideGroups(shots, enemies, tc.removeA, tc.removeB)
			if len(c.RemovedA) != tc.wantA || len(c.RemovedB) != tc.wantB {
				t.Errorf("removed %d/%d, expected %d/%d", len(c.RemovedA), len(c.RemovedB), tc.wantA, tc.wantB)
			}
			if c.Empty() {
				t.Error("Hits should be reported regardless of removal flags")
			}
		})
	}
}

func TestCollideGroupsSkipsDead(t *testing.T) {
	dead := shotAt(5, 5)
	dead.Kill()
	gone := enemyAt(100, 0)
	gone.Kill()

	c := CollideGroups([]*Projectile{dead, shotAt(105, 5)}, []*Enemy{enemyAt(0, 0), gone}, true, true)
	if !c.Empty() {
		t.Errorf("dead members collided: %v", c.Hits)
	}
}

func TestCollideGroupsOrderIndependent(t *testing.T) {
	f := BuildFleet(mediumSettings(), 48)
	enemies := f.Live()
	var shots []*Projectile
	for i := 0; i < 40; i++ {
		shots = append(shots, shotAt(float64(i*31), float64((i*53)%700)))
	}

	forward := CollideGroups(shots, enemies, true, true)
	want := pairs(forward, shots, enemies)

	rs := slices.Clone(shots)
	re := slices.Clone(enemies)
	slices.Reverse(rs)
	slices.Reverse(re)
	backward := CollideGroups(rs, re, true, true)
	got := pairs(backward, rs, re)

	if len(want) == 0 {
		t.Fatal("test layout produced no collisions")
	}
	if len(got) != len(want) {
		t.Fatalf("reversed order found %d pairs, expected %d", len(got), len(want))
	}
	for p := range want {
		if !got[p] {
			t.Errorf("pair %v missing when iterating in reverse", p)
		}
	}
	if len(forward.RemovedB) != len(backward.RemovedB) {
		t.Errorf("removed %d enemies forward, %d reversed", len(forward.RemovedB), len(backward.RemovedB))
	}
}

func TestNoSurvivingOverlapAfterPass(t *testing.T) {
	for _, pierce := range []bool{false, true} {
		f := BuildFleet(mediumSettings(), 48)
		enemies := f.Live()
		var shots []*Projectile
		for x := 0.0; x < 1200; x += 17 {
			shots = append(shots, shotAt(x, 40+x/3))
		}

		c := CollideGroups(shots, enemies, !pierce, true)
		for _, i := range c.RemovedA {
			shots[i].Kill()
		}
		for _, j := range c.RemovedB {
			enemies[j].Kill()
		}

		for _, s := range shots {
			if !s.Alive() {
				continue
			}
			for _, e := range enemies {
				if e.Alive() && s.Bounds().Overlaps(e.Bounds()) {
					t.Fatalf("pierce=%v: surviving shot %+v overlaps surviving enemy %+v", pierce, *s, *e)
				}
			}
		}
	}
}

func TestCollideAny(t *testing.T) {
	ship := &Ship{X: 100, Y: 752, W: 60, H: 48}
	far := []*Enemy{enemyAt(0, 0), enemyAt(500, 500)}
	if CollideAny(ship, far) {
		t.Error("ship should not collide with distant enemies")
	}

	touching := append(far, enemyAt(160, 708)) // touches the ship's top-right corner
	if !CollideAny(ship, touching) {
		t.Error("touching edges should count as a collision")
	}

	touching[2].Kill()
	if CollideAny(ship, touching) {
		t.Error("dead enemies should not collide")
	}
}
