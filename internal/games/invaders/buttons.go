package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ButtonID names an on-screen button. Clicks are dispatched by ID.
type ButtonID int

const (
	ButtonNone ButtonID = iota
	ButtonEasy
	ButtonMedium
	ButtonHard
	ButtonPlayAgain
)

// Label returns the text shown on the button.
func (b ButtonID) Label() string {
	switch b {
	case ButtonEasy:
		return "Easy"
	case ButtonMedium:
		return "Medium"
	case ButtonHard:
		return "Hard"
	case ButtonPlayAgain:
		return "Play Again"
	default:
		return ""
	}
}

// buttonForDifficulty maps a difficulty to its menu button.
func buttonForDifficulty(d config.Difficulty) ButtonID {
	switch d {
	case config.DifficultyEasy:
		return ButtonEasy
	case config.DifficultyHard:
		return ButtonHard
	default:
		return ButtonMedium
	}
}

// Button is a clickable rectangle in world coordinates.
type Button struct {
	ID   ButtonID
	Rect core.Rect
}

const (
	buttonW   = 200
	buttonH   = 50
	buttonGap = 40
)

// buttonsFor lays out the buttons visible in a state, left to right.
// States without buttons return nil.
func buttonsFor(s State, worldW, worldH float64) []Button {
	var ids []ButtonID
	switch s {
	case StateMenu:
		ids = []ButtonID{ButtonEasy, ButtonMedium, ButtonHard}
	case StateGameOver:
		ids = []ButtonID{ButtonPlayAgain}
	default:
		return nil
	}

	n := float64(len(ids))
	total := n*buttonW + (n-1)*buttonGap
	x := (worldW - total) / 2
	y := worldH*0.6 - buttonH/2

	out := make([]Button, 0, len(ids))
	for _, id := range ids {
		out = append(out, Button{ID: id, Rect: core.NewRect(x, y, buttonW, buttonH)})
		x += buttonW + buttonGap
	}
	return out
}

// buttonAt returns the button under (x, y), or ButtonNone.
func buttonAt(buttons []Button, x, y float64) ButtonID {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b.ID
		}
	}
	return ButtonNone
}

// stepHighlight moves the highlight by delta within buttons, clamped at the ends.
// An unknown current ID selects the first button.
func stepHighlight(buttons []Button, current ButtonID, delta int) ButtonID {
	if len(buttons) == 0 {
		return ButtonNone
	}
	pos := -1
	for i, b := range buttons {
		if b.ID == current {
			pos = i
			break
		}
	}
	if pos < 0 {
		return buttons[0].ID
	}
	return buttons[core.Clamp(pos+delta, 0, len(buttons)-1)].ID
}
