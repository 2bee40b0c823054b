package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/atomicstack/focuslist/internal/backend"
	"github.com/atomicstack/focuslist/internal/logging/events"
	"github.com/atomicstack/focuslist/internal/ui"
	"github.com/atomicstack/focuslist/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Entries      int
	Seed         int64
	KickInterval time.Duration
	KickN        int
	Match        state.MatchMode
	Width        int
	Height       int
	ShowFooter   bool
	Mouse        bool
}

// Run bootstraps and executes the Bubble Tea program. A fatal error raised
// while the program runs is returned as is.
func Run(cfg Config) (err error) {
	defer func() { events.App.Exit(err) }()

	model := NewModel(cfg)
	defer model.Stop()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model.UI, opts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return model.UI.Err()
}

// Model bundles the UI model with the kicker feeding it.
type Model struct {
	UI     *ui.Model
	kicker *backend.Kicker
}

// NewModel builds the example state and the UI model for cfg.
func NewModel(cfg Config) Model {
	kicker := backend.NewKicker(cfg.KickInterval, cfg.KickN)
	initial := state.Example(cfg.Entries, cfg.Match)
	return Model{
		UI: ui.NewModel(initial, newRand(cfg.Seed), ui.Options{
			Width:      cfg.Width,
			Height:     cfg.Height,
			ShowFooter: cfg.ShowFooter,
			Kicker:     kicker,
		}),
		kicker: kicker,
	}
}

// Stop shuts the kicker down and waits for it.
func (m Model) Stop() {
	m.kicker.Stop()
	m.kicker.Wait()
}

// newRand returns the kick source for seed. Config resolves an unset seed
// before it gets here, so equal seeds always replay equal kicks.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
