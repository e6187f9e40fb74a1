package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rcanalyzer/internal/domain"
	"rcanalyzer/internal/render"
)

// EmptyInputWarning is shown when the passage box is blank.
const EmptyInputWarning = "Please enter some text!"

// ReportPort is the TUI-facing subset of the analyzer service.
type ReportPort interface {
	Report(ctx context.Context, passage string) (*domain.Report, error)
}

type reportMsg struct {
	report *domain.Report
	err    error
}

type focus int

const (
	focusInput focus = iota
	focusReport
)

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service   ReportPort
	timeout   time.Duration
	input     textarea.Model
	viewport  viewport.Model
	styles    render.Styles
	report    *domain.Report
	status    string
	focus     focus
	analyzing bool
	ready     bool
}

// New creates a new TUI model. timeout bounds one analysis, including the AI
// call; zero means no limit.
func New(service ReportPort, timeout time.Duration) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste your RC passage here"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Focus()
	return Model{
		service:  service,
		timeout:  timeout,
		input:    ta,
		viewport: viewport.New(0, 0),
		styles:   render.DefaultStyles(),
		status:   "ctrl+s analyze · tab switch pane · ctrl+c quit",
	}
}

// Init initializes the model (textarea cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key, window and analysis events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.resize(msg.Width, msg.Height)
		m.viewport.SetContent(m.renderReport())
		return m, nil
	case reportMsg:
		m.analyzing = false
		if msg.err != nil {
			m.report = nil
			if errors.Is(msg.err, domain.ErrEmptyInput) {
				m.status = EmptyInputWarning
			} else {
				m.status = "Error: " + msg.err.Error()
			}
		} else {
			m.report = msg.report
			m.status = fmt.Sprintf("Analyzed %d words.", msg.report.Result.TotalWords)
			if msg.report.AIError != "" {
				m.status += " AI analysis failed."
			}
		}
		m.viewport.SetContent(m.renderReport())
		m.viewport.GotoTop()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit
		case "ctrl+s":
			return m.analyze()
		case "tab":
			m.toggleFocus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m Model) analyze() (tea.Model, tea.Cmd) {
	if m.analyzing {
		return m, nil
	}
	passage := m.input.Value()
	if strings.TrimSpace(passage) == "" {
		m.status = EmptyInputWarning
		return m, nil
	}
	m.analyzing = true
	m.status = "Analyzing..."
	svc, timeout := m.service, m.timeout
	return m, func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		rep, err := svc.Report(ctx, passage)
		return reportMsg{report: rep, err: err}
	}
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusReport
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) resize(width, height int) {
	fw, fh := boxStyle.GetFrameSize()
	inner := max(20, width-fw)
	// title + status + two box frames
	avail := max(6, height-2-2*fh)
	inputHeight := max(3, avail/3)
	m.input.SetWidth(inner)
	m.input.SetHeight(inputHeight)
	m.viewport.Width = inner
	m.viewport.Height = max(3, avail-inputHeight)
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := titleStyle.Render("CAT RC Analyzer")
	input := boxStyle.BorderForeground(m.borderColor(focusInput)).Render(m.input.View())
	report := boxStyle.BorderForeground(m.borderColor(focusReport)).Render(m.viewport.View())
	statusStyle := okStyle
	if m.status == EmptyInputWarning || strings.HasPrefix(m.status, "Error:") {
		statusStyle = warnStyle
	}
	return header + "\n" + input + "\n" + report + "\n" + statusStyle.Render(m.status)
}

func (m Model) borderColor(f focus) lipgloss.Color {
	if m.focus == f {
		return lipgloss.Color("12")
	}
	return lipgloss.Color("8")
}

func (m Model) renderReport() string {
	if m.report == nil {
		return "No analysis yet."
	}
	return lipgloss.NewStyle().Width(m.viewport.Width).Render(render.Format(m.report, m.styles))
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)
