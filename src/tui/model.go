package tui

import (
	"time"

	"nomi/src/catalog"
	"nomi/src/clipboard"
	"nomi/src/selection"
	"nomi/src/session"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	profileURL   = "https://discordapp.com/users/119304362580377601"
	profileTitle = "Made by spacegoblins"

	gridColumns = 3
	cellWidth   = 28
	maxContentW = 96
)

type focus int

const (
	focusName focus = iota
	focusGrid
	focusButtons
)

type button int

const (
	buttonGenerate button = iota
	buttonCopy
	buttonClear
	buttonCount
)

func (b button) String() string {
	switch b {
	case buttonGenerate:
		return "Generate Nomi Description"
	case buttonCopy:
		return "Copy Description"
	default:
		return "Clear All Selections"
	}
}

// feedbackExpiredMsg fires when a copy's feedback delay has elapsed
type feedbackExpiredMsg struct {
	ticket session.Ticket
}

// Options configure the form
type Options struct {
	Dark         bool
	StrictExpiry bool
}

// Model is the bubbletea model for the appearance form
type Model struct {
	session    session.Session
	exporter   *clipboard.Exporter
	categories []catalog.Category

	name     textinput.Model
	viewport viewport.Model
	styles   styles

	focus  focus
	cat    int
	item   int
	button button
	dark   bool

	width  int
	height int
	ready  bool
}

// New creates the form over a catalog, copying through exporter
func New(c *catalog.Catalog, exporter *clipboard.Exporter, opts Options) Model {
	s := session.New(c)
	s.StrictExpiry = opts.StrictExpiry

	name := textinput.New()
	name.Placeholder = "Enter Nomi's name (e.g., 'Bob')"
	name.CharLimit = 120
	name.Width = 40
	name.Prompt = "› "
	name.Focus()

	return Model{
		session:    s,
		exporter:   exporter,
		categories: c.Categories(),
		name:       name,
		styles:     newStyles(opts.Dark),
		focus:      focusName,
		dark:       opts.Dark,
	}
}

// Session returns the current form state
func (m Model) Session() session.Session {
	return m.session
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case feedbackExpiredMsg:
		m.session = m.session.ExpireFeedback(msg.ticket)

	case tea.KeyMsg:
		var quit bool
		m, cmd, quit = m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}

	default:
		if m.focus == focusName {
			m.name, cmd = m.name.Update(msg)
		}
	}

	m.syncViewport()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return m, nil, true
	case "tab":
		return m.setFocus((m.focus + 1) % 3), nil, false
	case "shift+tab":
		return m.setFocus((m.focus + 2) % 3), nil, false
	}

	if m.focus == focusName {
		switch key {
		case "enter", "down", "esc":
			return m.setFocus(focusGrid), nil, false
		}
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		if v := m.name.Value(); v != m.session.State.Name() {
			m.session = m.session.Do(selection.SetName{Text: v})
		}
		return m, cmd, false
	}

	switch key {
	case "q":
		return m, nil, true
	case "g":
		next, cmd := m.press(buttonGenerate)
		return next, cmd, false
	case "y", "c":
		next, cmd := m.press(buttonCopy)
		return next, cmd, false
	case "x":
		next, cmd := m.press(buttonClear)
		return next, cmd, false
	case "t":
		m.dark = !m.dark
		m.styles = newStyles(m.dark)
		return m, nil, false
	case "n", "/":
		return m.setFocus(focusName), nil, false
	}

	if m.focus == focusButtons {
		switch key {
		case "left", "h":
			m.button = (m.button + buttonCount - 1) % buttonCount
		case "right", "l":
			m.button = (m.button + 1) % buttonCount
		case "up", "k":
			return m.setFocus(focusGrid), nil, false
		case "enter", " ":
			next, cmd := m.press(m.button)
			return next, cmd, false
		}
		return m, nil, false
	}

	switch key {
	case "left", "h":
		m.moveItem(-1)
	case "right", "l":
		m.moveItem(1)
	case "up", "k":
		if !m.moveRow(-1) {
			return m.setFocus(focusName), nil, false
		}
	case "down", "j":
		if !m.moveRow(1) {
			return m.setFocus(focusButtons), nil, false
		}
	case "pgup", "[":
		m.moveCategory(-1)
	case "pgdown", "]":
		m.moveCategory(1)
	case "enter", " ":
		m.session = m.session.Do(selection.Toggle{Category: m.categories[m.cat].Name, Feature: m.currentFeature()})
	}
	return m, nil, false
}

func (m Model) setFocus(f focus) Model {
	m.focus = f
	if f == focusName {
		m.name.Focus()
	} else {
		m.name.Blur()
	}
	return m
}

func (m Model) press(b button) (Model, tea.Cmd) {
	m.button = b

	switch b {
	case buttonGenerate:
		m.session = m.session.Generate()
	case buttonCopy:
		var ticket session.Ticket
		m.session, _, ticket = m.session.Copy(m.exporter)
		return m, expireAfter(m.exporter.FeedbackDelay(), ticket)
	case buttonClear:
		m.session = m.session.Clear()
		m.name.SetValue("")
	}
	return m, nil
}

// expireAfter schedules the feedback clear for one copy. Timers are never
// cancelled; see session.ExpireFeedback for how stale tickets are treated.
func expireAfter(d time.Duration, ticket session.Ticket) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackExpiredMsg{ticket: ticket}
	})
}

func (m Model) currentFeature() string {
	return m.categories[m.cat].Features[m.item]
}

func (m *Model) moveItem(delta int) {
	n := len(m.categories[m.cat].Features)
	next := m.item + delta
	switch {
	case next < 0 && m.cat > 0:
		m.cat--
		m.item = len(m.categories[m.cat].Features) - 1
	case next >= n && m.cat < len(m.categories)-1:
		m.cat++
		m.item = 0
	case next >= 0 && next < n:
		m.item = next
	}
}

// moveRow moves up or down one grid row, crossing into the neighbouring
// category at the same column. It reports false at either end of the form.
func (m *Model) moveRow(delta int) bool {
	col := m.item % gridColumns
	next := m.item + delta*gridColumns
	n := len(m.categories[m.cat].Features)

	if next >= 0 && next < n {
		m.item = next
		return true
	}

	target := m.cat + delta
	if target < 0 || target >= len(m.categories) {
		return false
	}
	m.cat = target
	features := len(m.categories[target].Features)
	if delta > 0 {
		m.item = min(col, features-1)
	} else {
		lastRow := (features - 1) / gridColumns
		m.item = min(lastRow*gridColumns+col, features-1)
	}
	return true
}

func (m *Model) moveCategory(delta int) {
	target := m.cat + delta
	if target < 0 || target >= len(m.categories) {
		return
	}
	m.cat = target
	m.item = 0
}

func (m *Model) resize() {
	headerH := lineCount(m.headerView())
	footerH := lineCount(m.footerView())
	h := m.height - headerH - footerH
	if h < 3 {
		h = 3
	}
	w := min(m.width, maxContentW)

	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.ready = true
	} else {
		m.viewport.Width = w
		m.viewport.Height = h
	}
}

// syncViewport re-renders the body and scrolls so the focused line is visible
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	body, line := m.bodyView()
	m.viewport.SetContent(body)

	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}
