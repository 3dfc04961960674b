package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mouse-blink/marks/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// header and footer rows around the source viewport.
	chromeHeight = 2
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)
	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))
	markedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))
	cursorStyle = lipgloss.NewStyle().
			Reverse(true)
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

type reviewKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Toggle   key.Binding
	Mark     key.Binding
	Unmark   key.Binding
	Search   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Save     key.Binding
	Discard  key.Binding
}

func newReviewKeyMap() reviewKeyMap {
	return reviewKeyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		PageDown: key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "page down")),
		PageUp:   key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "page up")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Mark:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mark")),
		Unmark:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unmark")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Next:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
		Prev:     key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "prev")),
		Save:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "save+quit")),
		Discard:  key.NewBinding(key.WithKeys("Q", "ctrl+c"), key.WithHelp("Q", "quit")),
	}
}

// reviewModel is the Bubble Tea model of an interactive marking session.
type reviewModel struct {
	path  model.Path
	lines []string
	spec  model.MarkSpec

	cursor int
	top    int
	width  int
	height int

	keys        reviewKeyMap
	search      textinput.Model
	searching   bool
	query       string
	status      string
	progressBar progress.Model

	done bool
	save bool
}

func newReviewModel(session ReviewSession) reviewModel {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search"

	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(20),
	)

	return reviewModel{
		path:        session.Path,
		lines:       session.Lines,
		spec:        session.Spec.Clone(),
		width:       defaultWidth,
		height:      defaultHeight,
		keys:        newReviewKeyMap(),
		search:      search,
		progressBar: prog,
	}
}

func (m reviewModel) Init() tea.Cmd {
	return tick()
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tickMsg:
		return m.handleTickMsg(msg)
	}

	return m, cmd
}

func (m reviewModel) handleWindowSize(msg tea.WindowSizeMsg) reviewModel {
	m.width = msg.Width
	m.height = msg.Height
	m.progressBar.Width = max(10, msg.Width/4)

	return m.scrollToCursor()
}

func (m reviewModel) handleTickMsg(_ tickMsg) (reviewModel, tea.Cmd) {
	if m.done {
		return m, nil
	}

	return m, tick()
}

func (m reviewModel) handleKeyMsg(msg tea.KeyMsg) (reviewModel, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Discard):
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		m.done = true
		m.save = true

		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m = m.moveTo(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m = m.moveTo(m.cursor + 1)
	case key.Matches(msg, m.keys.PageDown):
		m = m.moveTo(m.cursor + m.pageSize())
	case key.Matches(msg, m.keys.PageUp):
		m = m.moveTo(m.cursor - m.pageSize())
	case key.Matches(msg, m.keys.Top):
		m = m.moveTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m = m.moveTo(len(m.lines) - 1)
	case key.Matches(msg, m.keys.Toggle):
		if m.cursorMarked() {
			m.unmarkCursor()
		} else {
			m.markCursor()
		}
	case key.Matches(msg, m.keys.Mark):
		m.markCursor()
		m = m.moveTo(m.cursor + 1)
	case key.Matches(msg, m.keys.Unmark):
		m.unmarkCursor()
		m = m.moveTo(m.cursor + 1)
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue("")

		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Next):
		m = m.findNext(1)
	case key.Matches(msg, m.keys.Prev):
		m = m.findNext(-1)
	}

	return m, nil
}

func (m reviewModel) handleSearchKey(msg tea.KeyMsg) (reviewModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()

		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()

		if value := m.search.Value(); value != "" {
			m.query = value
		}

		return m.findNext(1), nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	return m, cmd
}

// findNext moves the cursor to the next line containing the query,
// wrapping around the file, in the given direction.
func (m reviewModel) findNext(direction int) reviewModel {
	if m.query == "" || len(m.lines) == 0 {
		return m
	}

	n := len(m.lines)
	for step := 1; step <= n; step++ {
		idx := ((m.cursor+direction*step)%n + n) % n
		if strings.Contains(m.lines[idx], m.query) {
			return m.moveTo(idx)
		}
	}

	m.status = fmt.Sprintf("pattern not found: %s", m.query)

	return m
}

func (m reviewModel) cursorMarked() bool {
	return m.spec.Matches(m.cursorOffset())
}

func (m reviewModel) cursorOffset() model.LineOffset {
	return offsetAt(m.cursor)
}

// offsetAt converts a line index to an offset, clamped to the domain.
func offsetAt(index int) model.LineOffset {
	if index < 0 {
		return 0
	}

	return model.LineOffset(min(index, int(model.MaxLineOffset)))
}

func (m *reviewModel) markCursor() {
	if len(m.lines) == 0 || m.cursorMarked() {
		return
	}

	m.spec.Add(m.cursorOffset())
}

// unmarkCursor removes the cursor offset from every interval covering it.
// Each Remove drops the offset from the first covering interval.
func (m *reviewModel) unmarkCursor() {
	offset := m.cursorOffset()
	for m.spec.Matches(offset) {
		m.spec.Remove(offset)
	}
}

func (m reviewModel) moveTo(index int) reviewModel {
	m.cursor = max(0, min(index, len(m.lines)-1))
	return m.scrollToCursor()
}

func (m reviewModel) pageSize() int {
	return max(1, m.height-chromeHeight)
}

func (m reviewModel) scrollToCursor() reviewModel {
	page := m.pageSize()

	if m.cursor < m.top {
		m.top = m.cursor
	}

	if m.cursor >= m.top+page {
		m.top = m.cursor - page + 1
	}

	m.top = max(0, m.top)

	return m
}

func (m reviewModel) markedCount() int {
	count := 0

	for i := range m.lines {
		if m.spec.Matches(offsetAt(i)) {
			count++
		}
	}

	return count
}

func (m reviewModel) result() ReviewResult {
	return ReviewResult{Spec: m.spec, Save: m.save}
}

func (m reviewModel) View() string {
	if m.done {
		return ""
	}

	rows := make([]string, 0, m.pageSize()+chromeHeight)
	rows = append(rows, headerStyle.Render(truncateToWidth(string(m.path), m.width)))

	end := min(len(m.lines), m.top+m.pageSize())
	for i := m.top; i < end; i++ {
		rows = append(rows, m.renderLine(i))
	}

	for i := end - m.top; i < m.pageSize(); i++ {
		rows = append(rows, "~")
	}

	rows = append(rows, m.viewFooter())

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m reviewModel) renderLine(index int) string {
	marked := m.spec.Matches(offsetAt(index))

	separator := "|"
	if marked {
		separator = "+"
	}

	number := fmt.Sprintf("%4d", index+1)
	text := truncateToWidth(m.lines[index], m.width-lipgloss.Width(number)-1)

	if marked {
		text = markedStyle.Render(text)
	}

	line := numberStyle.Render(number) + separator + text
	if index == m.cursor {
		return cursorStyle.Render(number+separator) + text
	}

	return line
}

func (m reviewModel) viewFooter() string {
	if m.searching {
		return m.search.View()
	}

	total := len(m.lines)
	marked := m.markedCount()

	percent := 0.0
	if total > 0 {
		percent = float64(marked) / float64(total)
	}

	line := 0
	if total > 0 {
		line = m.cursor + 1
	}

	info := fmt.Sprintf(" %d/%d marked  line %d/%d", marked, total, line, total)
	if m.status != "" {
		info += "  " + m.status
	}

	return m.progressBar.ViewAs(percent) + footerStyle.Render(info)
}

// truncateToWidth cuts text to at most width cells, ending with an ellipsis.
func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	var b strings.Builder

	for _, r := range text {
		runeWidth := lipgloss.Width(string(r))
		if currentWidth+runeWidth > maxWidth {
			break
		}

		b.WriteRune(r)
		currentWidth += runeWidth
	}

	return b.String() + ellipsis
}
