// Package export writes task lists to files other tools can read.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sadopc/tasker/internal/task"
)

// Write exports tasks to path in the format named by its extension.
func Write(tasks []*task.Task, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ToCSV(tasks, path)
	case ".json":
		return ToJSON(tasks, path)
	case ".yaml", ".yml":
		return ToYAML(tasks, path)
	case ".toml":
		return ToTOML(tasks, path)
	default:
		return fmt.Errorf("unsupported export format %q", ext)
	}
}

type document struct {
	ExportedAt string `json:"exported_at" yaml:"exported_at" toml:"exported_at"`
	Count      int    `json:"count" yaml:"count" toml:"count"`
	Items      []item `json:"items" yaml:"items" toml:"items"`
}

type item struct {
	ID          uint64   `json:"id" yaml:"id" toml:"id"`
	Kind        string   `json:"kind" yaml:"kind" toml:"kind"`
	Description string   `json:"description" yaml:"description" toml:"description"`
	Boards      []string `json:"boards" yaml:"boards" toml:"boards"`
	Status      string   `json:"status,omitempty" yaml:"status,omitempty" toml:"status,omitempty"`
	Priority    int      `json:"priority,omitempty" yaml:"priority,omitempty" toml:"priority,omitempty"`
	Starred     bool     `json:"starred" yaml:"starred" toml:"starred"`
	Created     string   `json:"created" yaml:"created" toml:"created"`
}

func newDocument(tasks []*task.Task) document {
	doc := document{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(tasks),
		Items:      make([]item, 0, len(tasks)),
	}
	for _, t := range tasks {
		doc.Items = append(doc.Items, newItem(t))
	}
	return doc
}

func newItem(t *task.Task) item {
	it := item{
		ID:          t.ID,
		Kind:        kind(t),
		Description: t.Description,
		Boards:      t.Boards,
		Status:      status(t),
		Starred:     t.Starred,
		Created:     t.Created().Local().Format(time.RFC3339),
	}
	if p, ok := t.Priority(); ok {
		it.Priority = int(p)
	}
	return it
}

func kind(t *task.Task) string {
	if t.IsNote() {
		return "note"
	}
	return "task"
}

func status(t *task.Task) string {
	switch {
	case t.IsNote():
		return ""
	case t.IsComplete():
		return "done"
	case t.IsInProgress():
		return "in-progress"
	}
	return "pending"
}
