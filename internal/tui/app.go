// Package tui provides an interactive terminal browser for parsed logs.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reqlens/reqlens/internal/correlate"
	"github.com/reqlens/reqlens/internal/entry"
	"github.com/reqlens/reqlens/internal/filter"
	"github.com/reqlens/reqlens/internal/inspect"
	"github.com/reqlens/reqlens/internal/parser"
	"github.com/reqlens/reqlens/internal/report"
	"github.com/reqlens/reqlens/internal/stats"
)

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			PaddingLeft(1).
			PaddingRight(1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#353533"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4444")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44AAFF"))

	debugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6600")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// tab identifies which list the browser shows.
type tab int

const (
	tabEntries tab = iota
	tabGroups
)

// Model is the bubbletea model for the log browser.
type Model struct {
	source  string
	entries []entry.LogEntry
	groups  []correlate.Group
	stats   stats.Stats

	// Display state.
	tab        tab
	width      int
	height     int
	cursor     int
	offset     int // first visible row
	errorsOnly bool

	// Search state.
	searching bool
	search    textinput.Model
	query     string

	// Detail view for the selected group.
	detail   bool
	viewport viewport.Model

	// Filtered views, rebuilt when query or errorsOnly change.
	visEntries []entry.LogEntry
	visGroups  []correlate.Group
}

// NewModel creates a browser over one parse result.
func NewModel(source string, entries []entry.LogEntry, groups []correlate.Group, st stats.Stats) Model {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/"
	search.CharLimit = 128

	m := Model{
		source:   source,
		entries:  entries,
		groups:   groups,
		stats:    st,
		search:   search,
		viewport: viewport.New(80, 20),
	}
	m.refilter()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search-as-typed: every keystroke refilters the visible list.
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.SetValue("")
			m.query = ""
			m.refilter()
			return m, nil
		case "enter":
			m.searching = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.query = m.search.Value()
			m.refilter()
			return m, cmd
		}
	}

	if m.detail {
		switch msg.String() {
		case "esc", "q":
			m.detail = false
			return m, nil
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.tab == tabEntries {
			m.tab = tabGroups
		} else {
			m.tab = tabEntries
		}
		m.cursor = 0
		m.offset = 0
		return m, nil
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "e":
		m.errorsOnly = !m.errorsOnly
		m.refilter()
		return m, nil
	case "up", "k":
		m.move(-1)
		return m, nil
	case "down", "j":
		m.move(1)
		return m, nil
	case "pgup":
		m.move(-m.pageSize())
		return m, nil
	case "pgdown":
		m.move(m.pageSize())
		return m, nil
	case "g":
		m.cursor = 0
		m.offset = 0
		return m, nil
	case "G":
		m.move(m.listLen())
		return m, nil
	case "enter":
		if m.tab == tabGroups && m.cursor < len(m.visGroups) {
			m.detail = true
			m.viewport.SetContent(m.renderDetail(&m.visGroups[m.cursor]))
			m.viewport.GotoTop()
		}
		return m, nil
	}

	return m, nil
}

// move shifts the cursor and keeps it inside the visible window.
func (m *Model) move(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if max := m.listLen() - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.pageSize() {
		m.offset = m.cursor - m.pageSize() + 1
	}
}

func (m *Model) listLen() int {
	if m.tab == tabGroups {
		return len(m.visGroups)
	}
	return len(m.visEntries)
}

func (m *Model) pageSize() int {
	n := m.height - 5
	if n < 1 {
		n = 10
	}
	return n
}

// refilter rebuilds the visible entry and group lists from the current
// search query and errors-only toggle. Source slices are never mutated.
func (m *Model) refilter() {
	chain := filter.NewChain(filter.MatchAll)
	if m.query != "" {
		chain.Add(filter.NewKeywordFilter(m.query))
	}
	if m.errorsOnly {
		chain.Add(filter.NewErrorsOnlyFilter())
	}
	m.visEntries = filter.Apply(m.entries, chain)

	m.visGroups = m.visGroups[:0]
	for _, g := range m.groups {
		if m.errorsOnly && !g.HasErrors {
			continue
		}
		if m.query != "" && !groupMatches(&g, m.query) {
			continue
		}
		m.visGroups = append(m.visGroups, g)
	}

	m.cursor = 0
	m.offset = 0
}

func groupMatches(g *correlate.Group, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(g.RequestID), q) {
		return true
	}
	if strings.Contains(strings.ToLower(g.URL.Or("")), q) {
		return true
	}
	for i := range g.Entries {
		if strings.Contains(strings.ToLower(g.Entries[i].Content), q) {
			return true
		}
	}
	return false
}

// View renders the browser.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("reqlens · "+m.source) + "\n")

	if m.detail {
		sb.WriteString(m.viewport.View())
		sb.WriteString("\n" + helpStyle.Render("esc back · ↑/↓ scroll"))
		return sb.String()
	}

	if m.tab == tabEntries {
		m.renderEntries(&sb)
	} else {
		m.renderGroups(&sb)
	}

	sb.WriteString("\n" + m.statusLine())
	if m.searching {
		sb.WriteString("\n" + m.search.View())
	} else {
		sb.WriteString("\n" + helpStyle.Render("tab entries/requests · / search · e errors · enter detail · q quit"))
	}
	return sb.String()
}

func (m Model) renderEntries(sb *strings.Builder) {
	end := m.offset + m.pageSize()
	if end > len(m.visEntries) {
		end = len(m.visEntries)
	}
	for i := m.offset; i < end; i++ {
		e := &m.visEntries[i]
		line := truncate(e.Format(), m.width-2)
		line = m.levelStyle(e.Level).Render(line)
		if i == m.cursor {
			line = selectedStyle.Render("▸") + line
		} else {
			line = " " + line
		}
		sb.WriteString(line + "\n")
	}
	if len(m.visEntries) == 0 {
		sb.WriteString(dimStyle.Render("  no matching entries") + "\n")
	}
}

func (m Model) renderGroups(sb *strings.Builder) {
	end := m.offset + m.pageSize()
	if end > len(m.visGroups) {
		end = len(m.visGroups)
	}
	for i := m.offset; i < end; i++ {
		g := &m.visGroups[i]
		line := truncate(groupLine(g), m.width-2)
		switch {
		case g.HasErrors:
			line = errorStyle.Render(line)
		case g.HasWarnings:
			line = warnStyle.Render(line)
		}
		if i == m.cursor {
			line = selectedStyle.Render("▸") + line
		} else {
			line = " " + line
		}
		sb.WriteString(line + "\n")
	}
	if len(m.visGroups) == 0 {
		sb.WriteString(dimStyle.Render("  no matching requests") + "\n")
	}
}

func groupLine(g *correlate.Group) string {
	line := g.RequestID
	if method, ok := g.Method.Get(); ok {
		line += fmt.Sprintf("  %s %s", method, g.URL.Or(""))
	}
	if status, ok := g.ResponseStatus.Get(); ok {
		line += fmt.Sprintf("  → %d", status)
	}
	if ms, ok := g.DurationMs.Get(); ok {
		line += "  " + report.FormatDuration(ms)
	}
	line += fmt.Sprintf("  (%d entries)", len(g.Entries))
	return line
}

// renderDetail shows every entry of a group with cleaned content and
// inspected markers, pretty-printing response bodies where possible.
func (m Model) renderDetail(g *correlate.Group) string {
	var sb strings.Builder

	sb.WriteString(selectedStyle.Render(g.RequestID) + "\n")
	if start, ok := g.StartTime.Get(); ok {
		sb.WriteString(dimStyle.Render("start "+start) + "\n")
	}
	if ms, ok := g.DurationMs.Get(); ok {
		sb.WriteString(dimStyle.Render("duration "+report.FormatDuration(ms)) + "\n")
	}
	sb.WriteString("\n")

	for i := range g.Entries {
		e := &g.Entries[i]
		cleaned := parser.Clean(e.Content)
		ins := inspect.Inspect(cleaned)

		header := fmt.Sprintf("line %d", e.LineNumber)
		if ts, ok := e.Timestamp.Get(); ok {
			header += " · " + ts
		}
		if e.Level != entry.LevelUnknown {
			header += " · " + e.Level.String()
		}
		sb.WriteString(dimStyle.Render(header) + "\n")

		switch ins.Kind {
		case inspect.KindResponse:
			sb.WriteString(fmt.Sprintf("<<< %d\n", ins.Status))
			sb.WriteString(inspect.PrettyBody(ins.Body) + "\n")
		case inspect.KindIncoming, inspect.KindOutgoing:
			sb.WriteString(fmt.Sprintf("%s %s %s\n", ins.Kind, ins.Method, ins.URL))
		case inspect.KindCache:
			sb.WriteString(fmt.Sprintf("cache %s %s\n", ins.CacheOp, ins.CacheKey))
		default:
			sb.WriteString(cleaned + "\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) statusLine() string {
	name := "entries"
	count := fmt.Sprintf("%d/%d", len(m.visEntries), len(m.entries))
	if m.tab == tabGroups {
		name = "requests"
		count = fmt.Sprintf("%d/%d", len(m.visGroups), len(m.groups))
	}
	status := fmt.Sprintf(" %s %s · err %d · warn %d ", name, count, m.stats.Errors, m.stats.Warnings)
	if m.errorsOnly {
		status += "· errors-only "
	}
	if m.query != "" {
		status += fmt.Sprintf("· search %q ", m.query)
	}
	return statusBarStyle.Render(status)
}

func (m Model) levelStyle(l entry.Level) lipgloss.Style {
	switch l {
	case entry.LevelError:
		return errorStyle
	case entry.LevelWarn:
		return warnStyle
	case entry.LevelDebug:
		return debugStyle
	case entry.LevelInfo:
		return infoStyle
	default:
		return dimStyle
	}
}

// truncate shortens s to max runes, never splitting a multibyte rune.
func truncate(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
