// Package store keeps a task list in memory and implements the operations
// that query and modify it.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/sadopc/tasker/internal/task"
)

// List is one collection of tasks and notes keyed by id. A process holds
// two: the active list and the archive.
type List struct {
	tasks map[uint64]*task.Task
	now   func() time.Time
}

// Option configures a List.
type Option func(*List)

// WithClock replaces the clock used to stamp new entries.
func WithClock(now func() time.Time) Option {
	return func(l *List) { l.now = now }
}

// New returns an empty list.
func New(opts ...Option) *List {
	l := &List{
		tasks: make(map[uint64]*task.Task),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses a serialized list. Empty input yields an empty list.
// The document is checked against the list schema before decoding, and
// the map key is authoritative for each record's id.
func Load(data []byte, opts ...Option) (*List, error) {
	l := New(opts...)
	if len(bytes.TrimSpace(data)) == 0 {
		return l, nil
	}
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Err: err}
	}
	for key, body := range raw {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, &ParseError{Path: key, Err: fmt.Errorf("invalid id: %w", err)}
		}
		t := &task.Task{}
		if err := json.Unmarshal(body, t); err != nil {
			return nil, &ParseError{Path: key, Err: err}
		}
		t.ID = id
		l.tasks[id] = t
	}
	return l, nil
}

// MarshalJSON writes the list as an object keyed by id in ascending
// numeric order.
func (l *List) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range l.IDs() {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.FormatUint(id, 10)))
		buf.WriteByte(':')
		body, err := task.Encode(l.tasks[id])
		if err != nil {
			return nil, fmt.Errorf("marshal item %d: %w", id, err)
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Serialize returns the pretty-printed document with 2-space indentation.
func (l *List) Serialize() ([]byte, error) {
	compact, err := l.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("indent task list: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func (l *List) Len() int {
	return len(l.tasks)
}

func (l *List) Get(id uint64) (*task.Task, bool) {
	t, ok := l.tasks[id]
	return t, ok
}

// Insert stores t under its current id, replacing any existing record.
func (l *List) Insert(t *task.Task) {
	l.tasks[t.ID] = t
}

// AllocateID returns the smallest id not currently in use.
func (l *List) AllocateID() uint64 {
	var id uint64
	for {
		if _, taken := l.tasks[id]; !taken {
			return id
		}
		id++
	}
}

// IDs returns every id in ascending numeric order.
func (l *List) IDs() []uint64 {
	ids := make([]uint64, 0, len(l.tasks))
	for id := range l.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Tasks returns every record in ascending id order.
func (l *List) Tasks() []*task.Task {
	ids := l.IDs()
	out := make([]*task.Task, len(ids))
	for i, id := range ids {
		out[i] = l.tasks[id]
	}
	return out
}

// Remove deletes and returns the records for ids. Every id is checked
// before anything is removed: on a missing id the list is left untouched.
func (l *List) Remove(ids []uint64) ([]*task.Task, error) {
	for _, id := range ids {
		if _, ok := l.tasks[id]; !ok {
			return nil, &NotFoundError{ID: strconv.FormatUint(id, 10)}
		}
	}
	removed := make([]*task.Task, 0, len(ids))
	for _, id := range ids {
		t, ok := l.tasks[id]
		if !ok {
			continue // repeated id
		}
		delete(l.tasks, id)
		removed = append(removed, t)
	}
	return removed, nil
}

// resolve turns id tokens into existing ids, in input order without
// repeats. It fails on the first token that names no item.
func (l *List) resolve(tokens []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(tokens))
	seen := make(map[uint64]bool, len(tokens))
	for _, tok := range tokens {
		id, ok := parseID(tok)
		if !ok {
			return nil, &NotFoundError{ID: tok}
		}
		if _, ok := l.tasks[id]; !ok {
			return nil, &NotFoundError{ID: tok}
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

// parseID accepts only the canonical decimal form of an id, so "007"
// names no item.
func parseID(tok string) (uint64, bool) {
	id, err := strconv.ParseUint(tok, 10, 64)
	if err != nil || strconv.FormatUint(id, 10) != tok {
		return 0, false
	}
	return id, true
}
