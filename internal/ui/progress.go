package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"declet/internal/pipeline"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	spinStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	waitingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// row is the displayed state of one file being checked.
type row struct {
	path  string
	label string
	stage pipeline.Stage
	final bool
}

type checkModel struct {
	title  string
	events <-chan pipeline.Event
	spin   spinner.Model
	bar    progress.Model
	rows   []row
	byPath map[string]int
	width  int
	done   bool
}

type eventMsg pipeline.Event
type streamClosedMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders per-file
// analysis progress fed from a pipeline event channel. The model quits
// when the channel is closed.
func NewProgressModel(title string, files []string, events <-chan pipeline.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinStyle

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 76

	m := &checkModel{
		title:  title,
		events: events,
		spin:   sp,
		bar:    bar,
		rows:   make([]row, len(files)),
		byPath: make(map[string]int, len(files)),
		width:  80,
	}
	for i, path := range files {
		m.rows[i] = row{path: path, label: "queued"}
		m.byPath[path] = i
	}
	return m
}

func (m *checkModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.nextEvent())
}

func (m *checkModel) nextEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return streamClosedMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(pipeline.Event(msg)), m.nextEvent())
	case streamClosedMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		next, cmd := m.bar.Update(msg)
		m.bar = next.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *checkModel) apply(ev pipeline.Event) tea.Cmd {
	idx, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	r := &m.rows[idx]
	r.stage = ev.Stage
	switch ev.Status {
	case pipeline.StatusWorking:
		r.label = workingLabel(ev.Stage)
	case pipeline.StatusDone:
		// Done for an intermediate stage just advances the fraction;
		// only the check stage closes the row.
		if ev.Stage == pipeline.StageCheck {
			r.label = "done"
			r.final = true
		}
	case pipeline.StatusError:
		r.label = "error"
		r.final = true
	}
	return m.bar.SetPercent(m.fraction())
}

// fraction averages per-file completion. Finished rows count as 1; the
// rest contribute the fraction of their current stage.
func (m *checkModel) fraction() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	var sum float64
	for _, r := range m.rows {
		if r.final {
			sum += 1
			continue
		}
		switch r.stage {
		case pipeline.StageLex:
			sum += 0.2
		case pipeline.StageParse:
			sum += 0.5
		case pipeline.StageCheck:
			sum += 0.8
		}
	}
	return sum / float64(len(m.rows))
}

func (m *checkModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}

	var b strings.Builder
	if m.done {
		b.WriteString(headerStyle.Render("done: " + m.title))
	} else {
		b.WriteString(m.spin.View())
		b.WriteString(" ")
		b.WriteString(headerStyle.Render(m.title))
	}
	b.WriteString("\n\n")

	pathWidth := m.width - 16
	if pathWidth < 20 {
		pathWidth = 20
	}
	for _, r := range m.rows {
		b.WriteString("  ")
		b.WriteString(labelStyle(r.label).Render(fmt.Sprintf("%12s", r.label)))
		b.WriteString(" ")
		b.WriteString(fitPath(r.path, pathWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1.0))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

func workingLabel(stage pipeline.Stage) string {
	switch stage {
	case pipeline.StageLex:
		return "tokenizing"
	case pipeline.StageParse:
		return "parsing"
	case pipeline.StageCheck:
		return "checking"
	}
	return "working"
}

func labelStyle(label string) lipgloss.Style {
	switch label {
	case "done":
		return okStyle
	case "error":
		return failStyle
	case "queued":
		return waitingStyle
	}
	return activeStyle
}

func fitPath(path string, width int) string {
	if width <= 0 || runewidth.StringWidth(path) <= width {
		return path
	}
	if width <= 3 {
		return runewidth.Truncate(path, width, "")
	}
	return runewidth.Truncate(path, width-3, "...")
}
