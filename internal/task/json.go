package task

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// record is the persisted form. Keys stay compatible with taskbook storage files.
type record struct {
	ID          uint64   `json:"_id"`
	Date        string   `json:"_date"`
	Timestamp   int64    `json:"_timestamp"`
	Description string   `json:"description"`
	Starred     bool     `json:"isStarred"`
	Boards      []string `json:"boards"`
	IsTask      bool     `json:"_isTask"`
	Complete    *bool    `json:"isComplete"`
	InProgress  *bool    `json:"inProgress"`
	Priority    *int     `json:"priority"`
}

func (t Task) MarshalJSON() ([]byte, error) {
	r := record{
		ID:          t.ID,
		Date:        t.Date,
		Timestamp:   t.Timestamp,
		Description: t.Description,
		Starred:     t.Starred,
		Boards:      t.Boards,
		IsTask:      t.Progress != nil,
	}
	if r.Boards == nil {
		r.Boards = []string{}
	}
	if p := t.Progress; p != nil {
		complete, inProgress, priority := p.Complete, p.InProgress, int(p.Priority)
		r.Complete = &complete
		r.InProgress = &inProgress
		r.Priority = &priority
	}
	return Encode(r)
}

// Encode marshals v without escaping "<", ">" and "&", so stored
// descriptions stay readable.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON reads a persisted record. Tasks missing progress fields get
// the defaults of a new task; progress fields on notes are ignored.
func (t *Task) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*t = Task{
		ID:          r.ID,
		Date:        r.Date,
		Timestamp:   r.Timestamp,
		Description: r.Description,
		Starred:     r.Starred,
		Boards:      NormalizeBoards(r.Boards),
	}
	if !r.IsTask {
		return nil
	}
	p := &Progress{Priority: PriorityNormal}
	if r.Complete != nil {
		p.Complete = *r.Complete
	}
	if r.InProgress != nil {
		p.InProgress = *r.InProgress
	}
	if r.Priority != nil {
		p.Priority = Priority(*r.Priority)
		if !p.Priority.Valid() {
			return fmt.Errorf("invalid priority %d", *r.Priority)
		}
	}
	t.Progress = p
	return nil
}
