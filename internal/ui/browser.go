package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/curvedit/internal/curvefile"
)

type fileItem struct {
	name string
	ext  string
}

func (i fileItem) Title() string       { return i.name }
func (i fileItem) Description() string { return i.ext }
func (i fileItem) FilterValue() string { return i.name }

type newItem struct{}

func (i newItem) Title() string       { return "New curve..." }
func (i newItem) Description() string { return "start from the default curve" }
func (i newItem) FilterValue() string { return "new" }

// BrowserModel lists the curve files of a directory. It reports its outcome
// with BrowserSelectedMsg or BrowserCancelledMsg.
type BrowserModel struct {
	dir     string
	list    list.Model
	input   textinput.Model
	newMode bool
	empty   bool
	err     error
}

// NewBrowser creates a browser listing the curve files in dir.
func NewBrowser(dir string) BrowserModel {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return BrowserModel{dir: dir, err: fmt.Errorf("cannot read directory: %w", err)}
	}

	items := []list.Item{newItem{}}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !curvefile.IsCurveExt(ext) {
			continue
		}
		items = append(items, fileItem{name: strings.TrimSuffix(e.Name(), ext), ext: ext})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	l := list.New(items, delegate, 80, 20)
	l.Title = "curvedit"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = headerStyle

	ti := textinput.New()
	ti.Placeholder = "ease.curve"
	ti.CharLimit = 1024
	ti.Width = 60

	return BrowserModel{dir: dir, list: l, input: ti, empty: len(items) == 1}
}

// HasError returns true if the browser could not be initialized.
func (m BrowserModel) HasError() bool {
	return m.err != nil
}

// Error returns the initialization error, if any.
func (m BrowserModel) Error() error {
	return m.err
}

func (m BrowserModel) Init() tea.Cmd {
	return tea.SetWindowTitle("curvedit")
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.newMode {
		return m.updateNewInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't intercept keys when filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			switch item := m.list.SelectedItem().(type) {
			case newItem:
				m.newMode = true
				return m, tea.Batch(m.input.Focus(), tea.SetWindowTitle("curvedit - new curve"))
			case fileItem:
				return m, selectPath(filepath.Join(m.dir, item.name+item.ext))
			}
		case "q", "esc", "ctrl+c":
			return m, cancelBrowser
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) updateNewInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				return m, nil
			}
			if !filepath.IsAbs(name) {
				name = filepath.Join(m.dir, name)
			}
			return m, selectPath(name)
		case "esc":
			m.newMode = false
			m.input.Reset()
			m.input.Blur()
			return m, tea.SetWindowTitle("curvedit")
		case "ctrl+c":
			return m, cancelBrowser
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func selectPath(path string) tea.Cmd {
	return func() tea.Msg {
		return BrowserSelectedMsg{Path: path}
	}
}

func cancelBrowser() tea.Msg {
	return BrowserCancelledMsg{}
}

func (m BrowserModel) View() string {
	if m.newMode {
		s := "\n"
		s += "  " + headerStyle.Render("curvedit") + "\n"
		s += "\n"
		s += "  " + labelStyle.Render("New curve file:") + "\n"
		s += "  " + m.input.View() + "\n"
		s += "\n"
		s += "  " + helpStyle.Render("enter confirm  esc back  ctrl+c quit") + "\n"
		return s
	}
	if m.empty {
		return m.list.View() + "\n  " + helpStyle.Render(emptyDirText(m.dir))
	}
	return m.list.View()
}

func emptyDirText(dir string) string {
	return fmt.Sprintf("no curve files (%s) in %s", curvefile.SupportedExtsList(), dir)
}
