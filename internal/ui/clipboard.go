package ui

import (
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoClipboard = errors.New("no clipboard utility found")

// Overridden in tests.
var (
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
	readClipboard        = clipboard.ReadAll
	writeClipboard       = clipboard.WriteAll
)

func readClipboardCmd() tea.Cmd {
	return func() tea.Msg {
		if clipboardUnsupported() {
			return clipboardReadMsg{err: errNoClipboard}
		}
		text, err := readClipboard()
		return clipboardReadMsg{text: text, err: err}
	}
}

func writeClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if clipboardUnsupported() {
			return clipboardWrittenMsg{err: errNoClipboard}
		}
		return clipboardWrittenMsg{err: writeClipboard(text)}
	}
}

// clipboardFailure returns the status prefix for a clipboard error.
func clipboardFailure(err error, action string) string {
	if errors.Is(err, errNoClipboard) {
		return "clipboard not available"
	}
	return action
}
