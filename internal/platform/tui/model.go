package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Model is the Bubble Tea model driving one invaders game.
type Model struct {
	game     *invaders.Game
	screen   *core.Screen
	keys     *KeyMapper
	queue    *core.EventQueue
	config   core.RuntimeConfig
	now      func() time.Time
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *invaders.Game, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   NewKeyMapper(),
		queue:  &core.EventQueue{},
		config: cfg,
		now:    time.Now,
	}
	// Draw the menu before the first tick arrives.
	Rasterize(m.screen, game.Step(nil, 0).Draw)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues game events for a key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	for _, e := range m.keys.MapKey(msg, m.now()) {
		m.queue.Push(e)
	}
	return m, nil
}

// handleMouse queues a click at the world point under the cursor.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	settings := m.game.Settings()
	v := Viewport{
		Cols:   m.screen.Width(),
		Rows:   m.screen.Height(),
		WorldW: settings.ScreenWidth,
		WorldH: settings.ScreenHeight,
	}
	if x, y, ok := v.ToWorld(msg.X, msg.Y); ok {
		m.queue.Push(core.MouseDown(x, y))
	}
	return m, nil
}

// handleResize changes the terminal grid. The world size is fixed, so the
// game keeps running and is rescaled on the next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the queued events.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, e := range m.keys.Expire(now) {
		m.queue.Push(e)
	}

	res := m.game.Step(m.queue.Drain(), m.config.TickSeconds())
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	Rasterize(m.screen, res.Draw)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".invaders", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("invaders_%s.txt", timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the game and flushes the high
// score when the program exits, however it ends.
func Run(game *invaders.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Button clicks
	)

	_, err := p.Run()
	game.Quit()
	return err
}
