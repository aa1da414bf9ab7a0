package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Terminals only report key presses. A held arrow key arrives as one press,
// a pause of the OS repeat delay, then a stream of repeats. A movement key is
// released when no press arrives within the hold window.
const (
	DefaultInitialHold = 550 * time.Millisecond // Covers the usual repeat delay
	DefaultRepeatHold  = 120 * time.Millisecond // Covers the gap between repeats
)

type heldKey struct {
	last    time.Time
	repeats int
}

// KeyMapper translates Bubble Tea key messages to game events and
// synthesizes key releases for movement keys.
type KeyMapper struct {
	initialHold time.Duration
	repeatHold  time.Duration
	held        map[core.Key]*heldKey
}

// NewKeyMapper creates a key mapper with the default hold windows.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWithHold(DefaultInitialHold, DefaultRepeatHold)
}

// NewKeyMapperWithHold creates a key mapper with custom hold windows.
func NewKeyMapperWithHold(initial, repeat time.Duration) *KeyMapper {
	return &KeyMapper{
		initialHold: initial,
		repeatHold:  repeat,
		held:        make(map[core.Key]*heldKey),
	}
}

// Lookup returns the game key bound to a terminal key string.
func Lookup(key string) core.Key {
	switch key {
	case "ctrl+c", "q":
		return core.KeyQuit
	case "left", "a", "h":
		return core.KeyLeft
	case "right", "d", "l":
		return core.KeyRight
	case " ", "space", "up", "w", "k":
		return core.KeyFire
	case "enter":
		return core.KeyConfirm
	case "p":
		return core.KeyPlay
	case "r":
		return core.KeyRestart
	case "1":
		return core.KeyEasy
	case "2":
		return core.KeyMedium
	case "3":
		return core.KeyHard
	}
	return core.KeyNone
}

// MapKey translates a key press received at now into zero or more events.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, now time.Time) []core.Event {
	k := Lookup(msg.String())
	switch k {
	case core.KeyNone:
		return nil
	case core.KeyLeft, core.KeyRight:
		return km.press(k, now)
	default:
		return []core.Event{core.KeyDown(k)}
	}
}

// press handles a movement key. Pressing one direction releases the other.
func (km *KeyMapper) press(k core.Key, now time.Time) []core.Event {
	var events []core.Event

	opposite := core.KeyLeft
	if k == core.KeyLeft {
		opposite = core.KeyRight
	}
	if _, ok := km.held[opposite]; ok {
		delete(km.held, opposite)
		events = append(events, core.KeyUp(opposite))
	}

	if h, ok := km.held[k]; ok {
		h.last = now
		h.repeats++
		return events
	}
	km.held[k] = &heldKey{last: now}
	return append(events, core.KeyDown(k))
}

// Expire releases movement keys whose hold window has passed.
func (km *KeyMapper) Expire(now time.Time) []core.Event {
	var events []core.Event
	for _, k := range []core.Key{core.KeyLeft, core.KeyRight} {
		h, ok := km.held[k]
		if !ok {
			continue
		}
		window := km.repeatHold
		if h.repeats == 0 {
			window = km.initialHold
		}
		if now.Sub(h.last) > window {
			delete(km.held, k)
			events = append(events, core.KeyUp(k))
		}
	}
	return events
}

// Held reports whether a movement key is currently considered down.
func (km *KeyMapper) Held(k core.Key) bool {
	_, ok := km.held[k]
	return ok
}
