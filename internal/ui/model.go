package ui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/pydo/internal/command"
	"github.com/nibzard/pydo/internal/todo"
)

// Mode is the input mode of the dashboard.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeTextEntry
)

func (m Mode) String() string {
	if m == ModeTextEntry {
		return "text-entry"
	}
	return "browsing"
}

// DefaultTickInterval is the redraw heartbeat used when none is configured.
const DefaultTickInterval = 100 * time.Millisecond

type tickMsg time.Time

// Option configures a Model.
type Option func(*Model)

// WithTickInterval sets the heartbeat between file reloads.
func WithTickInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.tickInterval = d
		}
	}
}

// WithLogger sets the logger. The dashboard owns the terminal, so the logger
// must not write to stdout or stderr.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithTheme overrides the default styles.
func WithTheme(theme Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// Model is the bubbletea model of the dashboard. It keeps only the cursor,
// the tab, the mode and the entry buffer between frames; the document is
// reloaded from disk on every tick.
type Model struct {
	dispatcher   *command.Dispatcher
	logger       *log.Logger
	keys         keyMap
	help         help.Model
	theme        Theme
	tickInterval time.Duration

	mode     Mode
	selected todo.List
	position int
	buffer   []rune
	doc      *todo.Document

	width  int
	height int
	err    error
}

// NewModel returns a dashboard model driving d.
func NewModel(d *command.Dispatcher, opts ...Option) *Model {
	m := &Model{
		dispatcher:   d,
		logger:       log.New(io.Discard),
		keys:         defaultKeyMap,
		help:         help.New(),
		theme:        DefaultTheme(),
		tickInterval: DefaultTickInterval,
		selected:     todo.ListTasks,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Err returns the error that stopped the dashboard, if any.
func (m *Model) Err() error {
	return m.err
}

// Mode returns the current input mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Selected returns the active tab.
func (m *Model) Selected() todo.List {
	return m.selected
}

// Position returns the cursor row in the active list.
func (m *Model) Position() int {
	return m.position
}

// Buffer returns the text typed so far in text-entry mode.
func (m *Model) Buffer() string {
	return string(m.buffer)
}

func (m *Model) Init() tea.Cmd {
	if !m.refresh() {
		return tea.Quit
	}
	return tickCmd(m.tickInterval)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.refresh() {
			return m, tea.Quit
		}
		return m, tickCmd(m.tickInterval)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.mode == ModeTextEntry {
			return m.updateEntry(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m *Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.doc.Len(m.selected)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tasks):
		m.selected = todo.ListTasks
		m.position = 0
	case key.Matches(msg, m.keys.Remember):
		m.selected = todo.ListRemember
		m.position = 0
	case key.Matches(msg, m.keys.Add):
		m.mode = ModeTextEntry
		m.buffer = m.buffer[:0]
	case key.Matches(msg, m.keys.Clear):
		m.position = 0
		if m.selected != todo.ListTasks {
			return m, nil
		}
		if !m.dispatch(m.dispatcher.RemoveCompleted()) {
			return m, tea.Quit
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.selected != todo.ListTasks || m.position >= n {
			return m, nil
		}
		if !m.dispatch(m.dispatcher.Complete(m.position)) {
			return m, tea.Quit
		}
	case key.Matches(msg, m.keys.Delete):
		if m.position >= n {
			return m, nil
		}
		var err error
		if m.selected == todo.ListTasks {
			err = m.dispatcher.Remove(m.position)
		} else {
			err = m.dispatcher.RemoveRemember(m.position)
		}
		if !m.dispatch(err) {
			return m, tea.Quit
		}
		m.position = Up(m.position, m.doc.Len(m.selected))
	case key.Matches(msg, m.keys.Up):
		m.position = Up(m.position, n)
	case key.Matches(msg, m.keys.Down):
		m.position = Down(m.position, n)
	}
	return m, nil
}

func (m *Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Commit):
		text := string(m.buffer)
		m.leaveEntry()
		var err error
		if m.selected == todo.ListTasks {
			err = m.dispatcher.Add(text)
		} else {
			err = m.dispatcher.Remember(text)
		}
		if !m.dispatch(err) {
			return m, tea.Quit
		}
	case key.Matches(msg, m.keys.Cancel):
		m.leaveEntry()
	case key.Matches(msg, m.keys.Erase):
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}
	case msg.Type == tea.KeySpace:
		m.buffer = append(m.buffer, ' ')
	case msg.Type == tea.KeyRunes:
		m.buffer = append(m.buffer, msg.Runes...)
	}
	return m, nil
}

func (m *Model) leaveEntry() {
	m.mode = ModeBrowsing
	m.buffer = m.buffer[:0]
	m.position = 0
}

// dispatch records a failed mutation and reloads the document after a
// successful one. It reports whether the dashboard can keep running.
func (m *Model) dispatch(err error) bool {
	if err != nil {
		m.logger.Error("mutation failed", "err", err)
		m.err = err
		return false
	}
	return m.refresh()
}

// refresh recreates a missing file and reloads the document from disk.
func (m *Model) refresh() bool {
	if err := m.dispatcher.Run(""); err != nil {
		m.logger.Error("ensure todo file failed", "path", m.dispatcher.Store().Path, "err", err)
		m.err = err
		return false
	}
	doc, err := m.dispatcher.Store().Load()
	if err != nil {
		m.logger.Error("reload failed", "path", m.dispatcher.Store().Path, "err", err)
		m.err = err
		return false
	}
	m.doc = doc
	return true
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
