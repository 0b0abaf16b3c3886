package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/curvedit/internal/config"
	"github.com/olivier-w/curvedit/internal/curve"
	"github.com/olivier-w/curvedit/internal/editor"
	"github.com/olivier-w/curvedit/internal/plot"
	"github.com/olivier-w/curvedit/internal/status"
)

// Plot placement inside the view, in cells.
const (
	plotLeft = 2
	plotTop  = 2

	minPlotCols = 10
	minPlotRows = 4
)

// offPlot is the pointer position before the mouse has moved.
var offPlot = curve.V(-1, -1)

// Model is the Bubbletea model for the curve editor.
type Model struct {
	session  *editor.Session
	renderer *plot.Renderer
	help     help.Model
	prompt   textinput.Model

	width    int
	height   int
	pointer  curve.Vec
	axis     editor.Axis
	snap     bool // toggled from the keyboard
	ctrl     bool // held during the last mouse event
	lastTick time.Time
	message  status.Message
	title    string

	prompting bool
	quitting  bool
}

// New creates an editor model driving s.
func New(s *editor.Session, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "curve.curve"
	ti.CharLimit = 1024
	ti.Width = 60

	return Model{
		session:  s,
		renderer: plot.NewRenderer(fps, cfg.Spring),
		help:     help.New(),
		prompt:   ti,
		width:    80,
		height:   24,
		pointer:  offPlot,
		title:    s.Document().Title(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle(m.title))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	return next, cmd
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(tea.MouseEvent(msg)), nil

	case tickMsg:
		return m.tick(time.Time(msg))

	case fileSavedMsg:
		m.session.Saved(msg.path, msg.err)
		return m, nil

	case clipboardReadMsg:
		if msg.err != nil {
			m.session.Fail(clipboardFailure(msg.err, "can't paste content"), msg.err)
			return m, nil
		}
		m.session.Paste(msg.text)
		return m, nil

	case clipboardWrittenMsg:
		if msg.err != nil {
			m.session.Fail(clipboardFailure(msg.err, "copy failed"), msg.err)
			return m, nil
		}
		m.session.Info("points copied to clipboard")
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - plotLeft
		return m, nil
	}

	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Paste {
		m.session.Paste(string(msg.Runes))
		return m, nil
	}

	switch {
	case isQuit(msg):
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case key.Matches(msg, keys.Copy):
		return m, writeClipboardCmd(m.session.Encoded())
	case key.Matches(msg, keys.Paste):
		return m, readClipboardCmd()
	case key.Matches(msg, keys.Save):
		if path, content, ok := m.session.PendingSave(); ok {
			return m, saveCmd(path, content)
		}
		if !m.session.Document().Attached() {
			m.prompting = true
			return m, m.prompt.Focus()
		}
	case key.Matches(msg, keys.Axis):
		m.axis = m.axis.Next()
	case key.Matches(msg, keys.Snap):
		m.snap = !m.snap
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(m.prompt.Value())
		if path == "" {
			return m, nil
		}
		m.closePrompt()
		return m, saveCmd(path, m.session.SaveAs(path))
	case "esc":
		m.closePrompt()
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Reset()
	m.prompt.Blur()
}

func (m Model) handleMouse(ev tea.MouseEvent) Model {
	g := m.grid()
	col, row := ev.X-plotLeft, ev.Y-plotTop
	m.pointer = g.Normalize(col, row)
	m.ctrl = ev.Ctrl

	in := m.input()
	switch ev.Action {
	case tea.MouseActionPress:
		if !g.Contains(col, row) {
			return m
		}
		switch ev.Button {
		case tea.MouseButtonLeft:
			in.PrimaryDown = true
		case tea.MouseButtonRight:
			in.SecondaryDown = true
		default:
			return m
		}
	case tea.MouseActionRelease:
		// Terminal release events don't reliably report which button was
		// released, so any release ends the drag.
		in.PrimaryUp = true
	}
	m.session.Step(in)
	return m
}

func (m Model) tick(now time.Time) (Model, tea.Cmd) {
	var dt float32
	if !m.lastTick.IsZero() {
		dt = float32(now.Sub(m.lastTick).Seconds())
	}
	m.lastTick = now

	m.session.Step(m.input())
	m.message = m.session.Status().MostImportant(dt)
	m.renderer.Update(m.grid(), m.session.Points().SortedLive())

	cmds := []tea.Cmd{tickCmd()}
	if title := m.session.Document().Title(); title != m.title {
		m.title = title
		cmds = append(cmds, tea.SetWindowTitle(title))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) input() editor.Input {
	return editor.Input{
		Pointer: m.pointer,
		Axis:    m.axis,
		Snap:    m.snap || m.ctrl,
	}
}

// grid returns the plot area left after the header and footer.
func (m Model) grid() plot.Grid {
	footer := 2 + lipgloss.Height(m.help.View(keys))
	return plot.Grid{
		Cols: max(minPlotCols, m.width-2*plotLeft),
		Rows: max(minPlotRows, m.height-plotTop-footer),
	}
}

func (m Model) markers() []plot.Marker {
	pts := m.session.Points().Points()
	markers := make([]plot.Marker, 0, len(pts)+1)
	for _, p := range pts {
		kind := plot.MarkerPoint
		if p.Selected {
			kind = plot.MarkerSelected
		}
		markers = append(markers, plot.Marker{Pos: p.Position(), Kind: kind})
	}
	if ghost, ok := m.session.Ghost(m.pointer); ok {
		markers = append(markers, plot.Marker{Pos: ghost, Kind: plot.MarkerGhost})
	}
	return markers
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render(m.title)
	var modes []string
	if icon := m.axis.Icon(); icon != "" {
		modes = append(modes, icon)
	}
	if m.snap {
		modes = append(modes, "[snap]")
	}
	if len(modes) > 0 {
		header += "  " + modeStyle.Render(strings.Join(modes, " "))
	}

	var b strings.Builder
	b.WriteString("  " + header + "\n\n")
	b.WriteString(indentBlock(m.renderer.View(m.grid(), m.markers()), "  "))
	b.WriteString("\n\n")
	if m.prompting {
		b.WriteString("  " + labelStyle.Render("Save as: ") + m.prompt.View() + "\n")
		b.WriteString("  " + helpStyle.Render("enter confirm  esc back"))
		return b.String()
	}
	b.WriteString("  " + toneStyle(m.message.Tone).Render(m.message.Text) + "\n")
	b.WriteString(indentBlock(m.help.View(keys), "  "))
	return b.String()
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
