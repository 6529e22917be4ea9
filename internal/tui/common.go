package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/tasker/internal/theme"
)

// viewState represents the currently active view.
type viewState int

const (
	viewBoards viewState = iota
	viewArchive
	viewStats
)

var viewNames = []string{"Boards", "Archive", "Stats"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// result turns the outcome of a list operation into a status update.
func result(msg string, err error) tea.Cmd {
	if err != nil {
		text := strings.TrimSpace(theme.ErrorLine(err))
		return func() tea.Msg { return statusMsg{text: text, isError: true} }
	}
	text := strings.TrimSpace(msg)
	if text == "" {
		return nil
	}
	return func() tea.Msg { return statusMsg{text: text} }
}
