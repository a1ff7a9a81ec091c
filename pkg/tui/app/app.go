// Package app implements the Bubble Tea journal UI: an entry form with a
// mood picker, a filterable entry list and a mood chart.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"tableflip.dev/mindtrackr/pkg/chart"
	"tableflip.dev/mindtrackr/pkg/entry"
	"tableflip.dev/mindtrackr/pkg/journal"
	"tableflip.dev/mindtrackr/pkg/mood"
	"tableflip.dev/mindtrackr/pkg/store"
	"tableflip.dev/mindtrackr/pkg/tui/theme"
	"tableflip.dev/mindtrackr/pkg/view"
)

// StatusTimeout is how long status and error messages stay on screen.
const StatusTimeout = 5 * time.Second

// warnRatio of MaxTextLength turns the character counter into a warning.
const warnRatio = 0.8

type pane int

const (
	paneForm pane = iota
	paneMoods
	paneList
	paneCount
)

// Options configure New.
type Options struct {
	Journal *journal.Store
	Logger  *zap.Logger
	// Events reloads the journal whenever it fires; nil disables reloads.
	Events <-chan store.Event
	// Profile colours the chart; termenv.Ascii renders plain text.
	Profile termenv.Profile
}

// Model contains UI state.
type Model struct {
	journal *journal.Store
	ctx     context.Context
	log     *zap.Logger
	events  <-chan store.Event
	theme   theme.Theme

	focus pane
	text  textarea.Model

	moods     []mood.Mood
	moodIndex int
	selected  mood.Mood

	filter  mood.Mood
	entries []*entry.Entry
	cursor  int

	canvas    *chart.Canvas
	chartKind chart.Kind
	chart     *chart.Handle

	status    string
	errText   string
	statusSeq int

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the journal.
func New(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	ta := textarea.New()
	ta.Placeholder = "How are you feeling today?"
	ta.CharLimit = entry.MaxTextLength
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(4)
	ta.Focus()

	m := Model{
		journal: opts.Journal,
		ctx:     ctx,
		log:     log,
		events:  opts.Events,
		theme:   theme.Default(),
		focus:   paneForm,
		text:    ta,
		moods:   mood.All(),
		canvas:  chart.NewCanvas(chart.WithProfile(opts.Profile), chart.WithWidth(24)),
	}
	m.refresh()
	return m
}

// Init starts listening for slot changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.waitForChange())
}

// Close releases the chart canvas.
func (m Model) Close() error {
	return m.canvas.Close()
}

// messages
type slotChangedMsg struct{ err error }
type clearStatusMsg struct{ seq int }

func (m Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return slotChangedMsg{err: ev.Err}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
		return m, nil

	case slotChangedMsg:
		if msg.err != nil {
			m.log.Debug("slot watcher error", zap.Error(msg.err))
		}
		m.journal.Load(m.ctx)
		m.refresh()
		return m, m.waitForChange()

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.errText = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			cmd := m.submit()
			return m, cmd
		case "esc":
			cmd := m.clearFilterAndError()
			return m, cmd
		case "tab":
			m.setFocus((m.focus + 1) % paneCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + paneCount - 1) % paneCount)
			return m, nil
		}

		switch m.focus {
		case paneMoods:
			cmd := m.updateMoods(msg)
			return m, cmd
		case paneList:
			return m.updateList(msg)
		}
	}

	if m.focus == paneForm {
		var cmd tea.Cmd
		m.text, cmd = m.text.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) setFocus(p pane) {
	m.focus = p
	if p == paneForm {
		m.text.Focus()
	} else {
		m.text.Blur()
	}
}

func (m *Model) updateMoods(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		m.moodIndex = (m.moodIndex + len(m.moods) - 1) % len(m.moods)
	case "right", "l":
		m.moodIndex = (m.moodIndex + 1) % len(m.moods)
	case "enter", " ":
		m.selected = m.moods[m.moodIndex]
	case "q":
		return tea.Quit
	}
	return nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "d", "x", "delete":
		cmd := m.removeSelected()
		return m, cmd
	case "f":
		cmd := m.cycleFilter()
		return m, cmd
	case "c":
		m.chartKind = (m.chartKind + 1) % 3
		m.renderChart()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) submit() tea.Cmd {
	e, err := m.journal.Add(m.ctx, m.text.Value(), m.selected, nil)
	if err != nil {
		return m.setError(err)
	}
	m.text.Reset()
	m.selected = mood.Unset
	m.refresh()
	return m.setStatus(fmt.Sprintf("Journal entry added for %s mood", e.Mood))
}

func (m *Model) removeSelected() tea.Cmd {
	e := m.Selected()
	if e == nil {
		return nil
	}
	if err := m.journal.Remove(m.ctx, e.ID); err != nil {
		return m.setError(err)
	}
	m.refresh()
	return m.setStatus("Journal entry deleted")
}

func (m *Model) cycleFilter() tea.Cmd {
	next := mood.Unset
	if m.filter == mood.Unset {
		next = m.moods[0]
	} else if i := m.filter.Index(); i >= 0 && i < len(m.moods)-1 {
		next = m.moods[i+1]
	}
	m.filter = next
	m.cursor = 0
	m.refresh()
	if next == mood.Unset {
		return m.setStatus("Showing all entries")
	}
	return m.setStatus(fmt.Sprintf("Filtered to show %s entries", next))
}

func (m *Model) clearFilterAndError() tea.Cmd {
	m.errText = ""
	if m.filter == mood.Unset {
		return nil
	}
	m.filter = mood.Unset
	m.cursor = 0
	m.refresh()
	return m.setStatus("Showing all entries")
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	m.errText = ""
	return m.expire()
}

func (m *Model) setError(err error) tea.Cmd {
	m.errText = err.Error()
	m.status = ""
	return m.expire()
}

func (m *Model) expire() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// refresh recomputes the visible entries and the chart from the journal.
func (m *Model) refresh() {
	if m.journal == nil {
		return
	}
	all := m.journal.Entries()
	m.entries = view.SortByDate(view.FilterByMood(all, m.filter), view.Descending)
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.renderChart()
}

func (m *Model) renderChart() {
	if m.journal == nil {
		return
	}
	all := m.journal.Entries()
	var data chart.Data
	if m.chartKind == chart.Line {
		data = chart.FromDates(view.CountsByDate(all))
	} else {
		data = chart.FromCounts(view.CountMoods(all), len(all))
	}
	h, err := m.canvas.Render(m.chartKind, data)
	if err != nil {
		m.log.Debug("chart render failed", zap.Error(err))
		return
	}
	m.chart = h
}

// Selected is the entry under the list cursor, or nil.
func (m Model) Selected() *entry.Entry {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return m.entries[m.cursor]
}

func (m *Model) applySizes() {
	w := m.termWidth - 6
	if w < 20 {
		w = 20
	}
	if w > 100 {
		w = 100
	}
	m.text.SetWidth(w)
}

// View renders the form, the list and the chart stacked vertically.
func (m Model) View() string {
	sections := []string{
		m.theme.Title.Render("MindTrackr"),
		m.panel(paneForm, m.formView()),
		m.panel(paneMoods, m.moodsView()),
		m.panel(paneList, m.listView()),
		m.theme.Panel.Frame.Render(m.chartView()),
		m.footerView(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) panel(p pane, body string) string {
	if m.focus == p {
		return m.theme.Panel.Focused.Render(body)
	}
	return m.theme.Panel.Frame.Render(body)
}

func (m Model) formView() string {
	var b strings.Builder
	b.WriteString(m.theme.Panel.Title.Render("New entry"))
	b.WriteString("\n")
	b.WriteString(m.text.View())
	b.WriteString("\n")
	b.WriteString(m.counterView())
	return b.String()
}

func (m Model) counterView() string {
	n := entry.TextLength(m.text.Value())
	s := fmt.Sprintf("%d/%d", n, entry.MaxTextLength)
	if float64(n) >= warnRatio*entry.MaxTextLength {
		return m.theme.Form.CounterWarn.Render(s + " nearing the limit")
	}
	return m.theme.Form.Counter.Render(s)
}

func (m Model) moodsView() string {
	chips := make([]string, 0, len(m.moods))
	for i, md := range m.moods {
		label := md.String()
		if m.focus == paneMoods && i == m.moodIndex {
			label = "[" + label + "]"
		}
		switch {
		case md == m.selected:
			chips = append(chips, m.theme.MoodChip(md).Render(label))
		default:
			chips = append(chips, m.theme.Form.Chip.Inherit(m.theme.Mood(md)).Render(label))
		}
	}
	title := m.theme.Panel.Title.Render("Mood")
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m Model) listView() string {
	var b strings.Builder
	title := "Entries"
	if m.filter != mood.Unset {
		title = m.filter.String() + " entries"
	}
	b.WriteString(m.theme.Panel.Title.Render(fmt.Sprintf("%s (%d)", title, len(m.entries))))
	b.WriteString("\n")
	if len(m.entries) == 0 {
		b.WriteString(m.theme.Panel.Faint.Render("No entries yet"))
		return b.String()
	}

	width := m.termWidth - 30
	if width < 20 {
		width = 40
	}
	for i, e := range m.entries {
		line := fmt.Sprintf("%s  %s  %s",
			m.theme.Panel.Faint.Render(e.Date.String()),
			m.theme.Mood(e.Mood).Render(fmt.Sprintf("%-8s", e.Mood)),
			truncate.StringWithTail(strings.ReplaceAll(e.Text, "\n", " "), uint(width), "…"),
		)
		if m.focus == paneList && i == m.cursor {
			line = m.theme.Panel.Cursor.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < len(m.entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) chartView() string {
	title := m.theme.Panel.Title.Render("Mood " + m.chartKind.String())
	if m.chart == nil {
		return title
	}
	return title + "\n" + strings.TrimRight(m.chart.String(), "\n")
}

func (m Model) footerView() string {
	var line string
	switch {
	case m.errText != "":
		line = m.theme.Footer.Error.Render(m.errText)
	case m.status != "":
		line = m.theme.Footer.Status.Render(m.status)
	}
	help := m.theme.Footer.Help.Render(helpFor(m.focus))
	if line == "" {
		return help
	}
	return line + "\n" + help
}

func helpFor(p pane) string {
	switch p {
	case paneMoods:
		return "←/→ move · enter select mood · ctrl+s save · tab next · q quit"
	case paneList:
		return "j/k move · d delete · f filter · c chart · esc clear filter · tab next · q quit"
	default:
		return "type your entry · ctrl+s save · tab next · esc clear · ctrl+c quit"
	}
}
