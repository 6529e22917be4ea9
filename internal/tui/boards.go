package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/tasker/internal/store"
	"github.com/sadopc/tasker/internal/task"
	"github.com/sadopc/tasker/internal/view"
)

// row is one selectable line of the board list. An item in several
// boards gets one row per board.
type row struct {
	board string
	task  *task.Task
}

type boardsModel struct {
	active        *store.List
	archive       *store.List
	now           func() time.Time
	showCompleted bool
	width         int
	height        int

	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formDesc   *string
	formBoards *string
	formNote   *bool
}

func newBoardsModel(active, archive *store.List, showCompleted bool, now func() time.Time) boardsModel {
	desc, boards, note := "", "", false
	return boardsModel{
		active:        active,
		archive:       archive,
		now:           now,
		showCompleted: showCompleted,
		formDesc:      &desc,
		formBoards:    &boards,
		formNote:      &note,
	}
}

func (b *boardsModel) setSize(w, h int) {
	b.width = w
	b.height = h
}

func (b boardsModel) rows() []row {
	tasks := b.active.Tasks()
	var rows []row
	for _, c := range view.BoardCounts(tasks) {
		for _, t := range tasks {
			if t.InBoard(c.Name) && (b.showCompleted || !t.IsComplete()) {
				rows = append(rows, row{board: c.Name, task: t})
			}
		}
	}
	return rows
}

func (b boardsModel) selected() *task.Task {
	rows := b.rows()
	if b.cursor < 0 || b.cursor >= len(rows) {
		return nil
	}
	return rows[b.cursor].task
}

func (b *boardsModel) clampCursor() {
	n := len(b.rows())
	if b.cursor >= n {
		b.cursor = max(0, n-1)
	}
}

func (b boardsModel) update(msg tea.Msg) (boardsModel, tea.Cmd) {
	if b.formActive && b.form != nil {
		return b.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}
		return b, nil
	case key.Matches(keyMsg, keys.Down):
		if b.cursor < len(b.rows())-1 {
			b.cursor++
		}
		return b, nil
	case key.Matches(keyMsg, keys.New):
		return b.showNewEntryForm()
	case key.Matches(keyMsg, keys.Clear):
		out, err := b.active.MoveBetween(b.archive, nil, false)
		b.clampCursor()
		return b, result(out, err)
	}

	t := b.selected()
	if t == nil {
		return b, nil
	}
	id := fmt.Sprint(t.ID)

	switch {
	case key.Matches(keyMsg, keys.Begin):
		return b, result(b.active.FlipFlag([]string{id}, task.Begin))
	case key.Matches(keyMsg, keys.Check):
		out, err := b.active.FlipFlag([]string{id}, task.Check)
		b.clampCursor()
		return b, result(out, err)
	case key.Matches(keyMsg, keys.Star):
		return b, result(b.active.FlipFlag([]string{id}, task.Star))
	case key.Matches(keyMsg, keys.Priority):
		return b, result(b.active.SetPriority([]string{"@" + id, nextPriority(t)}))
	case key.Matches(keyMsg, keys.Delete):
		out, err := b.active.MoveBetween(b.archive, []string{id}, false)
		b.clampCursor()
		return b, result(out, err)
	}
	return b, nil
}

// nextPriority cycles normal, medium, high.
func nextPriority(t *task.Task) string {
	p, _ := t.Priority()
	return fmt.Sprint(int(p)%3 + 1)
}

func (b boardsModel) showNewEntryForm() (boardsModel, tea.Cmd) {
	*b.formDesc = ""
	*b.formBoards = ""
	*b.formNote = false

	b.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Description").Value(b.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description is required")
					}
					return nil
				}),
			huh.NewInput().Title("Boards (space separated)").Value(b.formBoards),
			huh.NewConfirm().Title("Note?").Affirmative("Note").Negative("Task").Value(b.formNote),
		),
	).WithShowHelp(true).WithShowErrors(true)

	b.formActive = true
	return b, b.form.Init()
}

func (b boardsModel) updateForm(msg tea.Msg) (boardsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			b.formActive = false
			b.form = nil
			return b, nil
		}
	}

	form, cmd := b.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		b.form = f
	}

	if b.form.State == huh.StateCompleted {
		b.formActive = false
		b.form = nil
		args := entryArgs(*b.formDesc, *b.formBoards)
		return b, result(b.active.NewEntry(args, *b.formNote), nil)
	}
	return b, cmd
}

// entryArgs builds the word list a new entry is created from.
func entryArgs(desc, boards string) []string {
	var args []string
	for _, name := range strings.FieldsFunc(boards, func(r rune) bool { return r == ' ' || r == ',' }) {
		args = append(args, "@"+strings.TrimPrefix(name, "@"))
	}
	return append(args, strings.Fields(desc)...)
}

func (b boardsModel) view() string {
	w := b.width - 4
	if b.formActive && b.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("New Entry"), "", b.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("Boards")
	rows := b.rows()
	if len(rows) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No items yet. Press n to create one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	counts := make(map[string]view.BoardCount)
	for _, c := range view.BoardCounts(b.active.Tasks()) {
		counts[c.Name] = c
	}

	now := b.now()
	lines := []string{title}
	for i, r := range rows {
		if i == 0 || rows[i-1].board != r.board {
			c := counts[r.board]
			lines = append(lines, "", boardStyle.Render(r.board)+" "+mutedStyle.Render(fmt.Sprintf("[%d/%d]", c.Done, c.Total)))
		}
		cursor := "  "
		if i == b.cursor {
			cursor = selectedItemStyle.Render("> ")
		}
		lines = append(lines, cursor+view.Item(r.task, now))
	}

	lines = append(lines, "")
	lines = append(lines, mutedStyle.Render("  b: begin  c: check  s: star  p: priority  n: new  d: delete  C: clear"))

	return panelStyle.Width(w).Render(strings.Join(lines, "\n"))
}
