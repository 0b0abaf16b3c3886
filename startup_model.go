package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/curvedit/internal/config"
	"github.com/olivier-w/curvedit/internal/ui"
)

type startupPhase uint8

const (
	phaseBrowse startupPhase = iota
	phaseOpening
)

type startupResolvedMsg struct {
	model ui.Model
	err   error
}

// startupModel runs the file browser, then hands over to the editor for
// the chosen file.
type startupModel struct {
	cfg     *config.Config
	browser ui.BrowserModel
	phase   startupPhase
	errMsg  string
	width   int
	height  int
	spinner spinner.Model
}

func newStartupModel(cfg *config.Config) startupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	return startupModel{
		cfg:     cfg,
		browser: ui.NewBrowser(cfg.StartDir),
		phase:   phaseBrowse,
		spinner: s,
	}
}

func (m startupModel) Init() tea.Cmd {
	return tea.Batch(m.browser.Init(), m.spinner.Tick)
}

func (m startupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.phase == phaseBrowse {
			return m.updateBrowser(msg)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.phase == phaseOpening {
			return m, cmd
		}
		return m, nil

	case ui.BrowserCancelledMsg:
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case ui.BrowserSelectedMsg:
		m.phase = phaseOpening
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, openSelectionCmd(msg.Path, m.cfg))

	case startupResolvedMsg:
		if msg.err != nil {
			m.phase = phaseBrowse
			m.errMsg = msg.err.Error()
			return m, nil
		}

		cmds := []tea.Cmd{msg.model.Init()}
		if m.width > 0 || m.height > 0 {
			w, h := m.width, m.height
			cmds = append(cmds, func() tea.Msg {
				return tea.WindowSizeMsg{Width: w, Height: h}
			})
		}
		return msg.model, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.phase == phaseOpening && startupIsQuit(msg) {
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}

	if m.phase == phaseBrowse {
		return m.updateBrowser(msg)
	}
	return m, nil
}

func (m startupModel) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.browser.Update(msg)
	if browser, ok := model.(ui.BrowserModel); ok {
		m.browser = browser
	}
	return m, cmd
}

func (m startupModel) View() string {
	if m.phase == phaseBrowse {
		if m.browser.HasError() {
			return "\n  curvedit\n\n  " + m.browser.Error().Error() + "\n"
		}
		if m.errMsg == "" {
			return m.browser.View()
		}
		return "\n  curvedit\n\n  " + startupErrorStyle.Render(m.errMsg) + "\n\n" + indentBlock(m.browser.View(), "  ")
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(startupHeaderStyle.Render("curvedit"))
	b.WriteString("\n\n  ")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(startupStatusStyle.Render("Opening..."))
	b.WriteString("\n\n  ")
	b.WriteString(startupHelpStyle.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

func openSelectionCmd(path string, cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		model, err := buildEditorModel(path, cfg)
		return startupResolvedMsg{model: model, err: err}
	}
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func startupIsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

var (
	startupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})
	startupStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})
	startupHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
	startupErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#A00000", Dark: "#FF8080"})
)
