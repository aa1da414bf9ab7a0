package invaders

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// HighScoreStore persists the best score between sessions.
type HighScoreStore interface {
	ReadHighScore() (int, error)
	WriteHighScore(score int) error
}

// GameRecorder is implemented by stores that also keep a history of
// finished games.
type GameRecorder interface {
	RecordGame(difficulty string, score, level int) error
}

// Game is one player's session: menu, play, respawn pauses and game over.
type Game struct {
	cfg      config.InvadersConfig
	settings config.Settings
	store    HighScoreStore
	logger   *log.Logger

	state        State
	stats        Stats
	ship         *Ship
	fleet        *Fleet
	projectiles  *Projectiles
	respawnTimer float64

	lastDifficulty config.Difficulty
	persistedHigh  int
	highlight      ButtonID
	actions        map[ButtonID]func()
	quit           bool
}

// New creates a game sitting in the difficulty menu.
// store may be nil to play without persistence; logger may be nil to discard
// log output. A failing store is logged and treated as a high score of 0.
func New(cfg config.InvadersConfig, store HighScoreStore, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		cfg:            cfg,
		store:          store,
		logger:         logger,
		state:          StateMenu,
		lastDifficulty: config.DifficultyMedium,
	}
	g.actions = map[ButtonID]func(){
		ButtonEasy:      func() { g.Start(config.DifficultyEasy) },
		ButtonMedium:    func() { g.Start(config.DifficultyMedium) },
		ButtonHard:      func() { g.Start(config.DifficultyHard) },
		ButtonPlayAgain: g.Restart,
	}

	if store != nil {
		hs, err := store.ReadHighScore()
		if err != nil {
			logger.Warn("could not read high score", "error", err)
			hs = 0
		}
		g.persistedHigh = max(hs, 0)
	}
	g.stats.HighScore = g.persistedHigh
	g.stats.Level = 1

	g.settings = cfg.SettingsFor(g.lastDifficulty, 1)
	g.ship = NewShip(g.settings.ShipWidth, g.settings.ShipHeight, g.settings.ScreenWidth, g.settings.ScreenHeight)
	g.fleet = &Fleet{Direction: 1}
	g.projectiles = NewProjectiles(g.settings)
	g.highlight = buttonForDifficulty(g.lastDifficulty)
	return g
}

// State returns the current mode.
func (g *Game) State() State { return g.state }

// Stats returns a copy of the session statistics.
func (g *Game) Stats() Stats { return g.stats }

// Settings returns the settings in effect for the current level.
func (g *Game) Settings() config.Settings { return g.settings }

// Ship returns the player ship.
func (g *Game) Ship() *Ship { return g.ship }

// Fleet returns the current enemy fleet.
func (g *Game) Fleet() *Fleet { return g.fleet }

// Projectiles returns the live shot manager.
func (g *Game) Projectiles() *Projectiles { return g.projectiles }

// Start begins a new game at the given difficulty.
// It is ignored unless the game is in the menu or over.
func (g *Game) Start(d config.Difficulty) bool {
	if !g.transition(TriggerStart) {
		return false
	}
	g.lastDifficulty = d
	g.highlight = buttonForDifficulty(d)
	g.settings = g.cfg.SettingsFor(d, 1)
	g.stats.Reset(d, g.settings.ShipLimit)
	g.stats.Active = true
	g.respawnTimer = 0
	// Keep the movement flags: a direction held through the menu stays held.
	g.ship.W, g.ship.H = g.settings.ShipWidth, g.settings.ShipHeight
	g.ship.Center(g.settings.ScreenWidth, g.settings.ScreenHeight)
	g.rebuildWorld()
	g.logger.Info("game started", "difficulty", d, "ships", g.stats.ShipsLeft)
	return true
}

// Restart returns from game over to the difficulty menu.
func (g *Game) Restart() {
	if !g.transition(TriggerRestart) {
		return
	}
	g.highlight = buttonForDifficulty(g.lastDifficulty)
}

// Step advances the game by one tick of dt seconds.
// Events are applied first; the world only moves while playing.
func (g *Game) Step(events []core.Event, dt float64) core.StepResult {
	for _, e := range events {
		g.handleEvent(e)
		if g.quit {
			break
		}
	}
	if g.quit {
		g.FlushHighScore()
		return g.result()
	}

	switch g.state {
	case StatePlaying:
		g.update(dt)
	case StateRespawnPause:
		g.respawnTimer -= dt
		if g.respawnTimer <= 0 {
			g.respawn()
		}
	}
	return g.result()
}

// Quit requests termination and flushes the high score.
func (g *Game) Quit() {
	g.quit = true
	g.FlushHighScore()
}

// FlushHighScore writes the high score back if it beats the stored value.
// Failures are logged and retried on the next flush.
func (g *Game) FlushHighScore() {
	if g.store == nil || g.stats.HighScore <= g.persistedHigh {
		return
	}
	if err := g.store.WriteHighScore(g.stats.HighScore); err != nil {
		g.logger.Warn("could not save high score", "score", g.stats.HighScore, "error", err)
		return
	}
	g.persistedHigh = g.stats.HighScore
	g.logger.Debug("high score saved", "score", g.persistedHigh)
}

// handleEvent turns one input event into intent flags or a transition.
func (g *Game) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventQuit:
		g.quit = true
	case core.EventKeyDown:
		g.keyDown(e.Key)
	case core.EventKeyUp:
		g.keyUp(e.Key)
	case core.EventMouseDown:
		g.click(e.X, e.Y)
	}
}

func (g *Game) keyDown(k core.Key) {
	switch k {
	case core.KeyQuit:
		g.quit = true
	case core.KeyLeft:
		g.ship.MovingLeft = true
		g.moveHighlight(-1)
	case core.KeyRight:
		g.ship.MovingRight = true
		g.moveHighlight(1)
	case core.KeyFire:
		if g.state == StatePlaying {
			g.fire()
		}
	case core.KeyEasy:
		g.chooseDifficulty(config.DifficultyEasy)
	case core.KeyMedium:
		g.chooseDifficulty(config.DifficultyMedium)
	case core.KeyHard:
		g.chooseDifficulty(config.DifficultyHard)
	case core.KeyConfirm:
		g.press(g.highlight)
	case core.KeyPlay:
		if g.state == StateMenu || g.state == StateGameOver {
			g.Start(g.lastDifficulty)
		}
	case core.KeyRestart:
		g.Restart()
	}
}

func (g *Game) keyUp(k core.Key) {
	switch k {
	case core.KeyLeft:
		g.ship.MovingLeft = false
	case core.KeyRight:
		g.ship.MovingRight = false
	}
}

// chooseDifficulty starts a game from the menu only.
func (g *Game) chooseDifficulty(d config.Difficulty) {
	if g.state != StateMenu {
		g.logger.Debug("difficulty ignored", "state", g.state, "difficulty", d)
		return
	}
	g.Start(d)
}

func (g *Game) click(x, y float64) {
	id := buttonAt(g.buttons(), x, y)
	if id == ButtonNone {
		return
	}
	g.press(id)
}

// press runs a button's action if the button is on screen.
func (g *Game) press(id ButtonID) {
	if id == ButtonNone {
		return
	}
	for _, b := range g.buttons() {
		if b.ID == id {
			if action, ok := g.actions[id]; ok {
				action()
			}
			return
		}
	}
	g.logger.Debug("button not available", "button", id.Label(), "state", g.state)
}

func (g *Game) moveHighlight(delta int) {
	buttons := g.buttons()
	if len(buttons) == 0 {
		return
	}
	g.highlight = stepHighlight(buttons, g.highlight, delta)
}

func (g *Game) buttons() []Button {
	return buttonsFor(g.state, g.settings.ScreenWidth, g.settings.ScreenHeight)
}

func (g *Game) fire() {
	x, y := g.ship.TopCenter()
	if _, err := g.projectiles.Fire(x, y); err != nil && !errors.Is(err, ErrAtCapacity) {
		g.logger.Error("fire failed", "error", err)
	}
}

// update runs one playing tick: move, query, reap, score, transition.
func (g *Game) update(dt float64) {
	s := g.settings
	g.ship.Move(dt, s.ShipSpeed, s.ScreenWidth)
	g.projectiles.Advance(dt)
	g.fleet.Advance(dt)

	shots := g.projectiles.Live()
	enemies := g.fleet.Live()
	hits := CollideGroups(shots, enemies, !s.Pierce, true)
	shipHit := CollideAny(g.ship, enemies)
	landed := g.fleet.ReachedBottom(s.ScreenHeight)

	for _, i := range hits.RemovedA {
		shots[i].Kill()
	}
	for _, j := range hits.RemovedB {
		enemies[j].Kill()
	}
	g.projectiles.Reap()
	g.fleet.Reap()

	g.applyScore(len(hits.RemovedB))
	if g.checkShipLoss(shipHit || landed) {
		return
	}
	g.checkLevelClear()
}

func (g *Game) applyScore(killed int) {
	if killed == 0 {
		return
	}
	g.stats.AddScore(killed * g.settings.EnemyPoints)
}

// checkShipLoss handles a hit and reports whether the state changed.
func (g *Game) checkShipLoss(hit bool) bool {
	if !hit {
		return false
	}
	if g.stats.LoseShip() > 0 {
		g.transition(TriggerShipLost)
		g.respawnTimer = g.settings.RespawnDelay
		g.logger.Debug("ship lost", "ships_left", g.stats.ShipsLeft)
		return true
	}
	g.transition(TriggerLastShipLost)
	g.endGame()
	return true
}

func (g *Game) checkLevelClear() {
	if !g.fleet.Empty() {
		return
	}
	if !g.transition(TriggerLevelClear) {
		return
	}
	g.stats.Level++
	g.settings = g.cfg.SettingsFor(g.stats.Difficulty, g.stats.Level)
	g.rebuildWorld()
	g.logger.Debug("level cleared", "level", g.stats.Level, "enemy_speed", g.settings.EnemySpeed)
}

func (g *Game) respawn() {
	if !g.transition(TriggerRespawn) {
		return
	}
	g.respawnTimer = 0
	g.ship.Center(g.settings.ScreenWidth, g.settings.ScreenHeight)
	g.rebuildWorld()
}

// rebuildWorld replaces the fleet and empties the sky.
func (g *Game) rebuildWorld() {
	g.projectiles = NewProjectiles(g.settings)
	g.fleet = BuildFleet(g.settings, g.settings.ShipHeight)
}

func (g *Game) endGame() {
	g.stats.Active = false
	g.logger.Info("game over",
		"difficulty", g.stats.Difficulty,
		"score", g.stats.Score,
		"level", g.stats.Level,
	)
	if rec, ok := g.store.(GameRecorder); ok {
		if err := rec.RecordGame(string(g.stats.Difficulty), g.stats.Score, g.stats.Level); err != nil {
			g.logger.Warn("could not record game", "error", err)
		}
	}
	g.FlushHighScore()
	g.highlight = ButtonPlayAgain
}

// transition applies t if the state table allows it.
func (g *Game) transition(t Trigger) bool {
	to, ok := g.state.Next(t)
	if !ok {
		g.logger.Debug("transition ignored", "state", g.state, "trigger", t)
		return false
	}
	g.state = to
	return true
}

// result snapshots the session for the platform.
func (g *Game) result() core.StepResult {
	return core.StepResult{
		State: core.GameState{
			Score:     g.stats.Score,
			HighScore: g.stats.HighScore,
			Level:     g.stats.Level,
			ShipsLeft: g.stats.ShipsLeft,
			Active:    g.state == StatePlaying || g.state == StateRespawnPause,
			GameOver:  g.state == StateGameOver,
		},
		Draw: g.draw(),
		Quit: g.quit,
	}
}

// draw emits the primitives for the current frame, back to front.
func (g *Game) draw() core.DrawBatch {
	b := core.DrawBatch{
		Width:  g.settings.ScreenWidth,
		Height: g.settings.ScreenHeight,
		HUD: core.HUD{
			Score:      g.stats.Score,
			HighScore:  g.stats.HighScore,
			Level:      g.stats.Level,
			ShipsLeft:  g.stats.ShipsLeft,
			Difficulty: g.stats.Difficulty.Title(),
		},
		ShowHUD: g.state != StateMenu,
	}

	if g.state != StateMenu {
		for _, e := range g.fleet.Enemies {
			if e.Alive() {
				b.Sprite(core.SpriteEnemy, e.Bounds())
			}
		}
		for _, p := range g.projectiles.Live() {
			b.Sprite(core.SpriteProjectile, p.Bounds())
		}
		b.Sprite(core.SpriteShip, g.ship.Bounds())
	}

	switch g.state {
	case StateMenu:
		b.Overlay("INVADERS", "Choose a difficulty  [1] Easy  [2] Medium  [3] Hard  [P] Play  [Q] Quit")
	case StateRespawnPause:
		b.Overlay("SHIP LOST", fmt.Sprintf("%d left", g.stats.ShipsLeft))
	case StateGameOver:
		b.Overlay("GAME OVER", fmt.Sprintf("Score %d  Level %d  [R] Menu  [P] Play  [Q] Quit", g.stats.Score, g.stats.Level))
	}

	for _, btn := range g.buttons() {
		b.Button(btn.Rect, btn.ID.Label(), btn.ID == g.highlight)
	}
	return b
}
