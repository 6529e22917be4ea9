package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/tasker/internal/store"
	"github.com/sadopc/tasker/internal/view"
)

type archiveModel struct {
	active  *store.List
	archive *store.List
	now     func() time.Time
	width   int
	height  int

	cursor int
}

func newArchiveModel(active, archive *store.List, now func() time.Time) archiveModel {
	return archiveModel{active: active, archive: archive, now: now}
}

func (a *archiveModel) setSize(w, h int) {
	a.width = w
	a.height = h
}

func (a archiveModel) update(msg tea.Msg) (archiveModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	items := a.archive.Tasks()
	switch {
	case key.Matches(keyMsg, keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if a.cursor < len(items)-1 {
			a.cursor++
		}
	case key.Matches(keyMsg, keys.Restore):
		if a.cursor < len(items) {
			out, err := a.archive.MoveBetween(a.active, []string{fmt.Sprint(items[a.cursor].ID)}, true)
			if a.cursor >= a.archive.Len() {
				a.cursor = max(0, a.archive.Len()-1)
			}
			return a, result(out, err)
		}
	}
	return a, nil
}

func (a archiveModel) view() string {
	w := a.width - 4
	title := titleStyle.Render("Archive")

	items := a.archive.Tasks()
	if len(items) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("The archive is empty."),
		)
		return panelStyle.Width(w).Render(content)
	}

	now := a.now()
	lines := []string{title, ""}
	for i, t := range items {
		cursor := "  "
		if i == a.cursor {
			cursor = selectedItemStyle.Render("> ")
		}
		line := cursor + view.Item(t, now)
		if len(t.Boards) > 0 {
			line += mutedStyle.Render(" @" + strings.Join(t.Boards, " @"))
		}
		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, mutedStyle.Render("  r: restore"))

	return panelStyle.Width(w).Render(strings.Join(lines, "\n"))
}
