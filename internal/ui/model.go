package ui

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/atomicstack/focuslist/internal/backend"
	"github.com/atomicstack/focuslist/internal/data/dispatcher"
	"github.com/atomicstack/focuslist/internal/entry"
	"github.com/atomicstack/focuslist/internal/logging"
	"github.com/atomicstack/focuslist/internal/theme"
	"github.com/atomicstack/focuslist/internal/ui/command"
	"github.com/atomicstack/focuslist/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const appTitle = "focuslist"

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	// Width and Height pin the viewport size; zero follows the terminal.
	Width      int
	Height     int
	ShowFooter bool
	// Styles defaults to theme.Default.
	Styles *theme.Styles
	// Kicker is optional; without one entries are only changed by input.
	Kicker *backend.Kicker
}

// Model implements the Bubble Tea model for the entry list.
type Model struct {
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	kicker     *backend.Kicker

	keys   keyMap
	help   help.Model
	search textinput.Model
	styles *theme.Styles

	cache fragmentCache
	// screen maps rendered rows to click handlers, as of the last View.
	screen []func()
	offset int

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	infoMsg     string
	fatal       error
	copyText    func(string) error

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps initial in a dispatcher and prepares the view. rng feeds
// the kick actions.
func NewModel(initial state.Model, rng entry.Rand, opts Options) *Model {
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	m := &Model{
		dispatcher: dispatcher.New(initial, rng),
		bus:        command.New(),
		kicker:     opts.Kicker,
		keys:       defaultKeyMap(),
		help:       help.New(),
		search:     newSearchInput(styles),
		styles:     styles,
		cache:      fragmentCache{},
		showFooter: opts.ShowFooter,
		copyText:   writeClipboard,
	}
	m.search.SetValue(initial.Search())
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.kicker != nil {
		return waitForKick(m.kicker)
	}
	return nil
}

// Update responds to Bubble Tea messages. Actions scheduled while handling a
// message are dispatched in order before Update returns.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateSearchModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Msg{}):       m.handleCommandMsg,
		reflect.TypeOf(kickMsg{}):           m.handleKickMsg,
		reflect.TypeOf(kickDoneMsg{}):       m.handleKickDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.flush(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// flush dispatches every queued action. A fatal error stops the program and
// discards whatever is still queued.
func (m *Model) flush() tea.Cmd {
	for _, action := range m.bus.Drain() {
		if m.fatal != nil {
			return nil
		}
		res, err := m.dispatcher.Handle(action)
		if err != nil {
			m.fatal = fmt.Errorf("dispatch %s: %w", state.Describe(action), err)
			m.bus.Drain()
			return tea.Quit
		}
		m.noteResult(res)
	}
	return nil
}

func (m *Model) noteResult(res dispatcher.Result) {
	current := m.dispatcher.Current()
	if res.SearchChanged {
		if m.search.Value() != current.Search() {
			m.search.SetValue(current.Search())
		}
		m.offset = 0
	}
	if res.Dumped {
		m.setInfo(fmt.Sprintf("State written to %s", logging.Path()))
	}
}

func (m *Model) schedule(action state.Action) {
	m.bus.Schedule(action)
}

func (m *Model) handleCommandMsg(msg tea.Msg) tea.Cmd {
	cmdMsg, ok := msg.(command.Msg)
	if !ok {
		return nil
	}
	m.schedule(cmdMsg.Action)
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// State returns the current application state.
func (m *Model) State() state.Model {
	return m.dispatcher.Current()
}

// Err returns the fatal error that stopped the program, if any.
func (m *Model) Err() error {
	return m.fatal
}

// RuntimeFault reports whether the program stopped on a runtime fault rather
// than a raised error.
func (m *Model) RuntimeFault() bool {
	var fatal *state.FatalError
	return errors.As(m.fatal, &fatal) && fatal.Runtime
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
}

func (m *Model) clearInfo() {
	m.infoMsg = ""
}
