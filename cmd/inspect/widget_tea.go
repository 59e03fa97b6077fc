//go:build !no_bubbletea

package inspect

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/krau/SiteLens/core"
	"github.com/krau/SiteLens/i18n"
	"github.com/krau/SiteLens/i18n/i18nk"
	"github.com/krau/SiteLens/pkg/widget"
	"github.com/krau/SiteLens/render"
)

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0066CC")).
			Padding(0, 2)
)

// lines above and below the viewport
const chromeHeight = 5

// submitResultMsg carries the outcome of one submission back into the
// update loop.
type submitResultMsg struct {
	res *widget.Result
	err error
}

type inspectModel struct {
	ctx      context.Context
	widget   *widget.Widget
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	initial string
	pending int
	target  string
	notice  string
	width   int
	ready   bool
}

func newInspectModel(ctx context.Context, w *widget.Widget, initial string) inspectModel {
	ti := textinput.New()
	ti.Placeholder = i18n.T(i18nk.InputPlaceholder)
	ti.SetValue(initial)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := inspectModel{
		ctx:      ctx,
		widget:   w,
		input:    ti,
		spinner:  sp,
		viewport: viewport.New(render.DefaultWidth, 20),
		width:    render.DefaultWidth,
	}
	if strings.TrimSpace(initial) != "" {
		m.initial = initial
		m.pending = 1
		m.target = strings.TrimSpace(initial)
	}
	return m
}

func (m inspectModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.initial != "" {
		cmds = append(cmds, m.submit(m.initial))
	}
	return tea.Batch(cmds...)
}

// submit runs one submission off the update loop. Overlapping submissions
// are allowed, the widget discards all but the latest.
func (m inspectModel) submit(input string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.widget.Submit(m.ctx, input)
		return submitResultMsg{res: res, err: err}
	}
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.input.Width = max(msg.Width-lipgloss.Width(m.button())-6, 10)
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.pending++
			m.target = strings.TrimSpace(m.input.Value())
			m.notice = ""
			return m, m.submit(m.input.Value())
		case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case submitResultMsg:
		m.pending--
		switch {
		case errors.Is(msg.err, widget.ErrSuperseded):
			// a newer submission owns the display
		case msg.err != nil:
			m.notice = core.UserMessage(msg.err)
		default:
			m.notice = ""
			m.refresh()
			m.viewport.GotoTop()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectModel) refresh() {
	model := m.widget.Model()
	if model == nil {
		m.viewport.SetContent(helpStyle.Render(i18n.T(i18nk.NoModel)))
		return
	}
	m.viewport.SetContent(render.New(m.width).Render(model))
}

func (m inspectModel) button() string {
	return buttonStyle.Render(i18n.T(i18nk.Analyze))
}

func (m inspectModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n  ")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", m.button()))
	sb.WriteString("\n  ")
	switch {
	case m.pending > 0:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" ")
		sb.WriteString(i18n.T(i18nk.Analyzing, map[string]any{"URL": m.target}))
	case m.notice != "":
		sb.WriteString(errorStyle.Render(m.notice))
	}
	sb.WriteString("\n")
	if m.ready {
		sb.WriteString(m.viewport.View())
	}
	sb.WriteString("\n  ")
	sb.WriteString(helpStyle.Render(i18n.T(i18nk.HelpKeys)))
	return sb.String()
}

// Run blocks until the user quits or ctx is done. A non-empty initial
// input is submitted right away.
func Run(ctx context.Context, w *widget.Widget, initial string) error {
	// Log output would tear the alternate screen.
	ctx = log.WithContext(ctx, log.New(io.Discard))

	p := tea.NewProgram(
		newInspectModel(ctx, w, initial),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
