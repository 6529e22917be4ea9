// Package task defines the task and note records kept in a task list.
package task

import (
	"strconv"
	"strings"
	"time"
)

// DefaultBoard is assigned to entries created without a board.
const DefaultBoard = "My Board"

// DateLayout renders creation dates as "Fri Oct 16 2026".
const DateLayout = "Mon Jan _2 2006"

// Priority of a task. Notes carry none.
type Priority int

const (
	PriorityNormal Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// ParsePriority accepts "1", "2" or "3".
func ParsePriority(s string) (Priority, bool) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false
	}
	p := Priority(n)
	return p, p.Valid()
}

func (p Priority) Valid() bool {
	return p >= PriorityNormal && p <= PriorityHigh
}

// Label is the severity word shown when a priority changes.
func (p Priority) Label() string {
	switch p {
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "normal"
	}
}

// Progress is the state only tasks have. A nil Progress marks a note.
type Progress struct {
	Complete   bool
	InProgress bool
	Priority   Priority
}

// Task is one entry of a task list: a task when Progress is set, a note otherwise.
type Task struct {
	ID          uint64
	Date        string
	Timestamp   int64 // unix milliseconds
	Description string
	Starred     bool
	Boards      []string
	Progress    *Progress
}

// New builds a fresh task or note created at now.
func New(id uint64, description string, boards []string, isNote bool, now time.Time) *Task {
	t := &Task{
		ID:          id,
		Date:        now.Format(DateLayout),
		Timestamp:   now.UnixMilli(),
		Description: description,
		Boards:      NormalizeBoards(boards),
	}
	if !isNote {
		t.Progress = &Progress{Priority: PriorityNormal}
	}
	return t
}

func (t *Task) IsNote() bool {
	return t.Progress == nil
}

func (t *Task) IsComplete() bool {
	return t.Progress != nil && t.Progress.Complete
}

func (t *Task) IsInProgress() bool {
	return t.Progress != nil && t.Progress.InProgress
}

// Priority reports the task priority; ok is false for notes.
func (t *Task) Priority() (p Priority, ok bool) {
	if t.Progress == nil {
		return 0, false
	}
	return t.Progress.Priority, true
}

// SetPriority updates the priority of a task. It returns false for notes.
func (t *Task) SetPriority(p Priority) bool {
	if t.Progress == nil {
		return false
	}
	t.Progress.Priority = p
	return true
}

// SetBoards replaces the board memberships.
func (t *Task) SetBoards(boards []string) {
	t.Boards = NormalizeBoards(boards)
}

func (t *Task) InBoard(name string) bool {
	for _, b := range t.Boards {
		if b == name {
			return true
		}
	}
	return false
}

// AgeDays is the number of whole days elapsed since creation.
func (t *Task) AgeDays(now time.Time) int64 {
	diff := now.UnixMilli() - t.Timestamp
	if diff < 0 {
		return 0
	}
	return diff / int64(24*time.Hour/time.Millisecond)
}

// Created returns the creation instant.
func (t *Task) Created() time.Time {
	return time.UnixMilli(t.Timestamp)
}

// NormalizeBoards strips the "@" input marker, drops empty and duplicate
// names, and falls back to DefaultBoard so the result is never empty.
func NormalizeBoards(boards []string) []string {
	out := make([]string, 0, len(boards))
	seen := make(map[string]bool, len(boards))
	for _, b := range boards {
		name := strings.TrimPrefix(b, "@")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	if len(out) == 0 {
		out = append(out, DefaultBoard)
	}
	return out
}
