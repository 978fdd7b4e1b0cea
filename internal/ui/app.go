package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renpho-home/renpho-go/internal/prefs"
	"github.com/renpho-home/renpho-go/renpho"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *renpho.Client
	PollTick  time.Duration
	ThemeName string
	Units     string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	client    *renpho.Client
	pollTick  time.Duration
	prefsPath string

	theme  Theme
	styles Styles
	keys   keyMap
	units  string

	width  int
	height int
	ready  bool

	snapshot    renpho.Snapshot
	lastUpdated time.Time
	refreshing  bool
	spin        spinner.Model

	showHelp bool
}

type (
	tickMsg        time.Time
	snapshotMsg    renpho.Snapshot
	refreshDoneMsg struct{}
)

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}
	// The dashboard only re-reads the client's caches, so a tick faster
	// than the poll interval buys nothing beyond a second.
	if pollTick > time.Second {
		pollTick = time.Second
	}

	units := opts.Units
	if units != "lb" {
		units = "kg"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		ctx:       ctx,
		client:    opts.Client,
		pollTick:  pollTick,
		prefsPath: prefsPath,
		theme:     theme,
		styles:    theme.Styles(),
		keys:      DefaultKeyMap(),
		units:     units,
		spin:      sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
		m.spin.Tick,
	}
	if m.client != nil {
		cmds = append(cmds, snapshotCmd(m.client))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.client != nil {
			cmds = append(cmds, snapshotCmd(m.client))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = renpho.Snapshot(msg)
		m.lastUpdated = time.Now()
		return m, nil

	case refreshDoneMsg:
		m.refreshing = false
		if m.client != nil {
			return m, snapshotCmd(m.client)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleUnits):
		if m.units == "kg" {
			m.units = "lb"
		} else {
			m.units = "kg"
		}
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.refreshing || m.client == nil {
			return m, nil
		}
		m.refreshing = true
		return m, refreshCmd(m.ctx, m.client)
	}

	return m, nil
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Units: m.units})
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func snapshotCmd(client *renpho.Client) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(client.Snapshot())
	}
}

func refreshCmd(ctx context.Context, client *renpho.Client) tea.Cmd {
	return func() tea.Msg {
		client.FetchMeasurements(ctx)
		client.FetchDeviceInfo(ctx)
		client.FetchGirths(ctx)
		client.FetchGirthGoals(ctx)
		return refreshDoneMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
