package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sadopc/tasker/internal/task"
	"gopkg.in/yaml.v3"
)

func sampleData() []*task.Task {
	now := time.Now()

	pending := task.New(0, "write report", []string{"work"}, false, now)
	pending.SetPriority(task.PriorityHigh)

	done := task.New(1, "buy milk", nil, false, now)
	done.Flip(task.Check)

	note := task.New(2, "ideas", []string{"work", "home"}, true, now)
	note.Starred = true

	return []*task.Task{pending, done, note}
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.csv")

	if err := ToCSV(sampleData(), path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	// header + 3 data rows
	if len(records) != 4 {
		t.Fatalf("expected 4 rows (1 header + 3 data), got %d", len(records))
	}

	header := records[0]
	expectedHeader := []string{"ID", "Kind", "Description", "Boards", "Status", "Priority", "Starred", "Created"}
	for i, h := range expectedHeader {
		if header[i] != h {
			t.Fatalf("header[%d] = %q, want %q", i, header[i], h)
		}
	}

	row := records[1]
	if row[0] != "0" || row[1] != "task" || row[2] != "write report" {
		t.Fatalf("unexpected first row %v", row)
	}
	if row[4] != "pending" || row[5] != "3" {
		t.Fatalf("status/priority = %q/%q", row[4], row[5])
	}

	if records[2][4] != "done" {
		t.Fatalf("status = %q, want done", records[2][4])
	}

	noteRow := records[3]
	if noteRow[1] != "note" || noteRow[4] != "" || noteRow[5] != "" {
		t.Fatalf("note should have no status or priority: %v", noteRow)
	}
	if noteRow[3] != "work;home" || noteRow[6] != "true" {
		t.Fatalf("note boards/starred = %q/%q", noteRow[3], noteRow[6])
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	if err := ToCSV(nil, path); err != nil {
		t.Fatal(err)
	}

	f, _ := os.Open(path)
	defer f.Close()
	records, _ := csv.NewReader(f).ReadAll()
	if len(records) != 1 {
		t.Fatalf("expected 1 row (header only), got %d", len(records))
	}
}

func TestToCSVBadPath(t *testing.T) {
	if err := ToCSV(nil, "/nonexistent/dir/file.csv"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

func TestToCSVSpecialCharacters(t *testing.T) {
	tk := task.New(0, `say "hi", then leave`, nil, false, time.Now())
	path := filepath.Join(t.TempDir(), "special.csv")

	if err := ToCSV([]*task.Task{tk}, path); err != nil {
		t.Fatal(err)
	}

	f, _ := os.Open(path)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("CSV should be valid even with special chars: %v", err)
	}
	if records[1][2] != `say "hi", then leave` {
		t.Fatalf("description mangled: %q", records[1][2])
	}
}

// ============================================================
// Structured formats
// ============================================================

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")

	if err := ToJSON(sampleData(), path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var result document
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if result.Count != 3 || len(result.Items) != 3 {
		t.Fatalf("count = %d, items = %d, want 3", result.Count, len(result.Items))
	}
	if result.ExportedAt == "" {
		t.Fatal("exported_at should not be empty")
	}
	if it := result.Items[0]; it.Priority != 3 || it.Status != "pending" {
		t.Fatalf("first item = %+v", it)
	}
}

func TestToJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")

	if err := ToJSON(nil, path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	items, ok := raw["items"].([]any)
	if !ok || len(items) != 0 {
		t.Fatalf("items should be an empty array, got %v", raw["items"])
	}
}

func TestToYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yaml")

	if err := ToYAML(sampleData(), path); err != nil {
		t.Fatalf("ToYAML: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var result document
	if err := yaml.Unmarshal(data, &result); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if result.Count != 3 {
		t.Fatalf("count = %d, want 3", result.Count)
	}
	if it := result.Items[2]; it.Kind != "note" || !it.Starred || len(it.Boards) != 2 {
		t.Fatalf("note item = %+v", it)
	}
}

func TestToTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.toml")

	if err := ToTOML(sampleData(), path); err != nil {
		t.Fatalf("ToTOML: %v", err)
	}

	var result document
	if _, err := toml.DecodeFile(path, &result); err != nil {
		t.Fatalf("invalid TOML: %v", err)
	}
	if result.Count != 3 || len(result.Items) != 3 {
		t.Fatalf("count = %d, items = %d", result.Count, len(result.Items))
	}
	if result.Items[1].Description != "buy milk" {
		t.Fatalf("second item = %+v", result.Items[1])
	}
}

// ============================================================
// Dispatch
// ============================================================

func TestWriteByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "a.json", "a.yaml", "a.yml", "a.TOML"} {
		path := filepath.Join(dir, name)
		if err := Write(sampleData(), path); err != nil {
			t.Errorf("Write(%s): %v", name, err)
			continue
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Write(%s) produced no file", name)
		}
	}

	if err := Write(sampleData(), filepath.Join(dir, "a.xml")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
