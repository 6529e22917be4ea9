package store

import (
	"strings"

	"github.com/sadopc/tasker/internal/task"
)

// Find returns the items whose description contains any of terms,
// ignoring case.
func (l *List) Find(terms []string) []*task.Task {
	var out []*task.Task
	for _, t := range l.Tasks() {
		desc := strings.ToLower(t.Description)
		for _, term := range terms {
			if term != "" && strings.Contains(desc, strings.ToLower(term)) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

type attribute func(*task.Task) bool

var attributes = map[string]attribute{
	"pending":    pending,
	"unchecked":  pending,
	"incomplete": pending,
	"done":       (*task.Task).IsComplete,
	"checked":    (*task.Task).IsComplete,
	"complete":   (*task.Task).IsComplete,
	"progress":   (*task.Task).IsInProgress,
	"started":    (*task.Task).IsInProgress,
	"begun":      (*task.Task).IsInProgress,
	"star":       starred,
	"starred":    starred,
	"note":       (*task.Task).IsNote,
	"notes":      (*task.Task).IsNote,
	"task":       isTask,
	"tasks":      isTask,
}

func pending(t *task.Task) bool { return !t.IsNote() && !t.IsComplete() }
func starred(t *task.Task) bool { return t.Starred }
func isTask(t *task.Task) bool  { return !t.IsNote() }

// Filter returns the items matching every attribute word. Words that are
// not attributes name boards; when any is given an item must belong to at
// least one of them.
func (l *List) Filter(words []string) []*task.Task {
	var attrs []attribute
	var boards []string
	for _, w := range words {
		if a, ok := attributes[strings.ToLower(w)]; ok {
			attrs = append(attrs, a)
			continue
		}
		if name := strings.TrimPrefix(w, "@"); name != "" {
			boards = append(boards, name)
		}
	}

	var out []*task.Task
	for _, t := range l.Tasks() {
		if matchesAll(t, attrs) && inAnyBoard(t, boards) {
			out = append(out, t)
		}
	}
	return out
}

func matchesAll(t *task.Task, attrs []attribute) bool {
	for _, a := range attrs {
		if !a(t) {
			return false
		}
	}
	return true
}

func inAnyBoard(t *task.Task, boards []string) bool {
	if len(boards) == 0 {
		return true
	}
	for _, b := range boards {
		if t.InBoard(b) {
			return true
		}
	}
	return false
}

// Descriptions returns the descriptions of the listed items in input order.
// Every id is checked first.
func (l *List) Descriptions(tokens []string) ([]string, error) {
	ids, err := l.resolve(tokens)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = l.tasks[id].Description
	}
	return out, nil
}
