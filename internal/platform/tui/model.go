package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/settings"
	"github.com/vovakirdan/tui-flappy/internal/sim"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Muter is implemented by audio collaborators that can be silenced.
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// Options carries the optional collaborators of a game model. Every field may be
// left zero; the model then runs without that feature.
type Options struct {
	Store    *storage.Store    // Run journal
	Settings *settings.Manager // Persists the mute toggle
	Audio    sim.Audio         // Installed on the game; Muter enables the m key
	Logger   *log.Logger
	Source   string // Journal source label for finished runs
}

// Model is the Bubble Tea model that runs the game.
type Model struct {
	game       *sim.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       GameKeyMap
	inputFrame core.InputFrame
	gameState  core.GameState

	replay   *storage.RunEntry // Set in replay mode
	playback *sim.Playback

	muted     bool
	lastRunID int64 // Journal ID of the last saved run
	status    string
	quitting  bool
}

// NewModel creates a model for interactive play.
func NewModel(game *sim.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	if opts.Source == "" {
		opts.Source = "local"
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		inputFrame: core.NewInputFrame(),
	}

	if opts.Audio != nil {
		game.SetAudio(opts.Audio)
	}
	if muter, ok := opts.Audio.(Muter); ok {
		m.muted = muter.Muted()
	}

	game.Reset(m.config)
	m.gameState = game.State()
	return m
}

// NewReplayModel creates a model that plays back a journaled run. Player input
// other than quit is ignored.
func NewReplayModel(game *sim.Game, cfg core.RuntimeConfig, entry storage.RunEntry, opts Options) Model {
	m := NewModel(game, cfg, opts)
	m.replay = &entry
	m.playback = sim.NewPlayback(entry.Run)
	game.Load(entry.Run)
	m.gameState = game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.playback == nil && MouseAction(msg) == core.ActionJump {
			m.inputFrame.Set(core.ActionJump)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The simulation runs in canvas pixels, so a resize only changes the projection
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionMute:
		m.toggleMute()
	case action != core.ActionNone && m.playback == nil:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.playback != nil {
		if !m.playback.Done() {
			m.gameState = m.game.Step(m.playback.Next()).State
		}
		return m, tickCmd(m.config.TickInterval)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case result.Events.Has(core.EventStart):
		m.status = ""
		m.opts.Logger.Debug("run started")
	case result.Events.Has(core.EventRestart):
		m.status = ""
		m.opts.Logger.Debug("run restarted")
	}

	if result.Events.Has(core.EventCollision) {
		m.saveRun()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickInterval)
}

// saveRun journals the run that just ended.
func (m *Model) saveRun() {
	r, ok := m.game.LastRun()
	if !ok {
		return
	}
	m.opts.Logger.Info("run finished", "score", r.Score, "ticks", r.Ticks, "seed", r.Seed)

	if m.opts.Store == nil {
		return
	}
	id, err := m.opts.Store.SaveRun(m.opts.Source, r)
	if err != nil {
		m.opts.Logger.Warn("could not journal run", "error", err)
		return
	}
	m.lastRunID = id
	m.status = fmt.Sprintf("run #%d saved", id)
}

// toggleMute flips the audio mute state and persists it.
func (m *Model) toggleMute() {
	muter, ok := m.opts.Audio.(Muter)
	if !ok {
		m.status = "no audio"
		return
	}
	m.muted = muter.ToggleMute()
	if m.opts.Settings != nil {
		if err := m.opts.Settings.SetMuted(m.muted); err != nil {
			m.opts.Logger.Warn("could not save settings", "error", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := config.DataPath("screenshots")
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.status = "screenshot saved"
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.drawStatus()

	return RenderScreen(m.screen)
}

// drawStatus draws the bottom status line over the game.
func (m Model) drawStatus() {
	y := m.screen.Height() - 1
	left := m.status
	if m.replay != nil {
		left = fmt.Sprintf("REPLAY #%d  tick %d/%d", m.replay.ID, m.playback.Tick(), m.replay.Run.Ticks)
	} else if left == "" && m.gameState.Phase() == core.PhaseIdle {
		left = helpLine(m.keys.ShortHelp())
	}
	if left != "" {
		m.screen.DrawTextColored(1, y, left, core.ColorStatus)
	}
	if m.muted {
		const label = "muted"
		m.screen.DrawTextColored(m.screen.Width()-len(label)-1, y, label, core.ColorStatus)
	}
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Muted reports whether audio is muted.
func (m Model) Muted() bool {
	return m.muted
}

// LastRunID returns the journal ID of the last saved run, or 0.
func (m Model) LastRunID() int64 {
	return m.lastRunID
}

// Run starts an interactive Bubble Tea program for the game.
func Run(game *sim.Game, cfg core.RuntimeConfig, opts Options) error {
	return runProgram(NewModel(game, cfg, opts))
}

// RunReplay plays back a journaled run in the terminal.
func RunReplay(game *sim.Game, cfg core.RuntimeConfig, entry storage.RunEntry, opts Options) error {
	return runProgram(NewReplayModel(game, cfg, entry, opts))
}

func runProgram(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks jump
	)

	_, err := p.Run()
	return err
}
