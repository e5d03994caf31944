package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-knight/internal/core"
	"github.com/vovakirdan/tui-knight/internal/platform/snapshot"
	"github.com/vovakirdan/tui-knight/internal/registry"
	"github.com/vovakirdan/tui-knight/internal/storage"
)

// ErrRenderTargetUnavailable is returned when there is no terminal to draw on.
var ErrRenderTargetUnavailable = errors.New("tui: render target unavailable: stdout is not a terminal")

// Screenshot sizes in pixels.
const (
	screenshotWidth = 800
	thumbnailWidth  = 200
)

// Options configures a game session.
type Options struct {
	Store         *storage.Store // may be nil
	Logger        *log.Logger    // nil discards
	MaxLines      int            // text box lines per page
	PageDwell     float64        // seconds a full page stays before the next
	ScreenshotDir string         // empty means ~/.knight/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	view   *Viewport
	store  *storage.Store
	log    *log.Logger
	config core.RuntimeConfig

	keys  *KeyMapper
	latch *KeyLatch
	last  time.Time

	runID      string
	state      core.GameState
	shotDir    string
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	err        error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.MaxLines <= 0 {
		opts.MaxLines = 6
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			shotDir = filepath.Join(home, ".knight", "screenshots")
		}
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	return Model{
		game:    game,
		screen:  screen,
		view:    NewViewport(screen, opts.MaxLines, opts.PageDwell),
		store:   opts.Store,
		log:     logger,
		config:  cfg,
		keys:    NewKeyMapper(),
		latch:   NewKeyLatch(DefaultHold),
		runID:   uuid.NewString(),
		shotDir: shotDir,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: state will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	k, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	// Movement keys only latch while platforming; elsewhere A and D are
	// battle commands and must fire once.
	m.latch.Press(k, time.Now(), Movement(k) && m.state.Screen == "play")
	return m, nil
}

// handleResize processes window resize events. World coordinates do not
// depend on the terminal size, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame with the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now

	result := m.game.Step(m.latch.Frame(now), dt)
	if result.State.Screen != "play" {
		m.latch.Release()
	}
	m.view.Advance(dt)

	if result.Err != nil {
		m.log.Error("game stopped", "run", m.runID, "error", result.Err)
		m.err = result.Err
		m.quitting = true
		return m, tea.Quit
	}

	if result.Battle != nil {
		m.saveBattle(*result.Battle)
	}

	wasOver := m.state.GameOver
	m.state = result.State

	// Save score on game over (once); a restart starts a new run
	if m.state.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	if wasOver && !m.state.GameOver {
		m.runID = uuid.NewString()
		m.scoreSaved = false
		m.log.Debug("new run", "run", m.runID)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) saveBattle(b core.BattleOutcome) {
	m.log.Info("battle", "run", m.runID, "enemy", b.Enemy, "outcome", b.Outcome, "turns", b.Turns)
	if m.store == nil {
		return
	}
	_, err := m.store.SaveBattle(storage.BattleEntry{
		RunID:   m.runID,
		GameID:  m.game.ID(),
		Enemy:   b.Enemy,
		Outcome: b.Outcome,
		Turns:   b.Turns,
	})
	if err != nil {
		m.log.Warn("could not save battle", "error", err)
	}
}

func (m *Model) saveScore() {
	m.log.Info("run over", "run", m.runID, "score", m.state.Score)
	if m.store == nil || m.state.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.runID, m.state.Score); err != nil {
		m.log.Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current frame as text, a PNG and a thumbnail.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.log.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s", m.game.ID(), timestamp))

	m.render()
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "error", err)
	}

	canvas := snapshot.NewCanvas(m.game.WorldSize(), screenshotWidth)
	m.game.Render(canvas)
	if err := canvas.SavePNG(base + ".png"); err != nil {
		m.log.Warn("could not save screenshot", "error", err)
		return
	}
	if err := snapshot.SaveThumbnail(canvas.Image(), base+"_thumb.png", thumbnailWidth); err != nil {
		m.log.Warn("could not save thumbnail", "error", err)
	}
	m.log.Info("screenshot saved", "path", base+".png")
}

func (m *Model) render() {
	m.view.Begin(m.game.WorldSize())
	m.game.Render(m.view)
	m.view.End()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// RunID returns the identifier of the current run.
func (m Model) RunID() string {
	return m.runID
}

// Run starts the Bubble Tea program for game. It fails fast when stdout is
// not a terminal and returns the game's fault if one stopped it.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrRenderTargetUnavailable
	}

	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
