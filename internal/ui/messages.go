package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/curvedit/internal/curvefile"
)

// fps is the editor tick rate.
const fps = 30

type tickMsg time.Time

type fileSavedMsg struct {
	path string
	err  error
}

type clipboardReadMsg struct {
	text string
	err  error
}

type clipboardWrittenMsg struct {
	err error
}

// BrowserSelectedMsg is emitted when the browser picks a curve file, or a
// path for a new one.
type BrowserSelectedMsg struct {
	Path string
}

// BrowserCancelledMsg is emitted when the browser is dismissed.
type BrowserCancelledMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func saveCmd(path, content string) tea.Cmd {
	return func() tea.Msg {
		return fileSavedMsg{path: path, err: curvefile.Write(path, content)}
	}
}
