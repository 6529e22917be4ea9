package store

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/tasker/internal/task"
	"github.com/sadopc/tasker/internal/theme"
)

// FlipFlag toggles f on every listed item. All ids are checked before any
// item changes. Begin and check skip notes, which are then left out of the
// report.
func (l *List) FlipFlag(tokens []string, f task.Flag) (string, error) {
	ids, err := l.resolve(tokens)
	if err != nil {
		return "", err
	}

	var marked, unmarked []string
	for _, id := range ids {
		on, ok := l.tasks[id].Flip(f)
		if !ok {
			continue
		}
		if on {
			marked = append(marked, formatID(id))
		} else {
			unmarked = append(unmarked, formatID(id))
		}
	}

	onLabel, offLabel := flagLabels(f)
	var lines []string
	if len(marked) > 0 {
		lines = append(lines, done(onLabel, marked...))
	}
	if len(unmarked) > 0 {
		lines = append(lines, done(offLabel, unmarked...))
	}
	return strings.Join(lines, "\n"), nil
}

func flagLabels(f task.Flag) (on, off string) {
	switch f {
	case task.Begin:
		return "Started task(s)", "Paused task(s)"
	case task.Check:
		return "Checked task(s)", "Unchecked task(s)"
	default:
		return "Starred item(s)", "Unstarred item(s)"
	}
}

// Edit replaces the description of the "@id" item with the other words.
func (l *List) Edit(args []string) (string, error) {
	tok, words, err := singleID(args)
	if err != nil {
		return "", err
	}
	t, err := l.lookup(tok)
	if err != nil {
		return "", err
	}
	t.Description = strings.Join(words, " ")
	return done("Updated description of item", formatID(t.ID)), nil
}

// MoveToBoard replaces the boards of the "@id" item with the other words.
func (l *List) MoveToBoard(args []string) (string, error) {
	tok, words, err := singleID(args)
	if err != nil {
		return "", err
	}
	t, err := l.lookup(tok)
	if err != nil {
		return "", err
	}
	t.SetBoards(words)
	return done("Updated boards of item", formatID(t.ID)), nil
}

// SetPriority sets the priority of the "@id" task from the single
// remaining word.
func (l *List) SetPriority(args []string) (string, error) {
	tok, words, err := singleID(args)
	if err != nil {
		return "", err
	}
	if len(words) != 1 {
		return "", ErrInvalidPriority
	}
	p, ok := task.ParsePriority(words[0])
	if !ok {
		return "", ErrInvalidPriority
	}
	t, err := l.lookup(tok)
	if err != nil {
		return "", err
	}
	if !t.SetPriority(p) {
		return "", &NotATaskError{ID: t.ID}
	}
	return done("Updated priority of task", formatID(t.ID)) + " to " + priorityStyle(p).Render(p.Label()), nil
}

// NewEntry creates a task, or a note when isNote is set. "@" words name
// its boards and the other words form the description.
func (l *List) NewEntry(args []string, isNote bool) string {
	boards, words := splitBoards(args)
	id := l.AllocateID()
	l.Insert(task.New(id, strings.Join(words, " "), boards, isNote, l.now()))
	if isNote {
		return done("Created note", formatID(id))
	}
	return done("Created task", formatID(id))
}

// MoveBetween moves items to dst, where each gets a fresh id. A nil tokens
// slice selects every completed task. All ids are checked before anything
// moves. The report lists the ids the items had in l.
func (l *List) MoveBetween(dst *List, tokens []string, restore bool) (string, error) {
	var ids []uint64
	if tokens == nil {
		for _, t := range l.Tasks() {
			if t.IsComplete() {
				ids = append(ids, t.ID)
			}
		}
		if len(ids) == 0 {
			return " " + theme.Dim.Render("No completed items to clear"), nil
		}
	} else {
		var err error
		if ids, err = l.resolve(tokens); err != nil {
			return "", err
		}
	}

	removed, err := l.Remove(ids)
	if err != nil {
		return "", err
	}
	for _, t := range removed {
		t.ID = dst.AllocateID()
		dst.Insert(t)
	}

	moved := make([]string, len(ids))
	for i, id := range ids {
		moved[i] = formatID(id)
	}
	if restore {
		return done("Restored item(s)", moved...), nil
	}
	return done("Deleted item(s)", moved...), nil
}

func (l *List) lookup(tok string) (*task.Task, error) {
	id, ok := parseID(tok)
	if !ok {
		return nil, &NotFoundError{ID: tok}
	}
	t, ok := l.tasks[id]
	if !ok {
		return nil, &NotFoundError{ID: tok}
	}
	return t, nil
}

func done(label string, ids ...string) string {
	return theme.DoneLine(label, ids...)
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func priorityStyle(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityMedium:
		return theme.Medium
	case task.PriorityHigh:
		return theme.High
	}
	return theme.Success
}
