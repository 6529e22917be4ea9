package config

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// clearEnv keeps the developer's environment out of the tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TASKER_DIRECTORY", "TASKER_DISPLAY_COMPLETE", "TASKER_DISPLAY_PROGRESS", "TASKER_BACKEND", "TASKER_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func writeSettings(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMissingUsesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	s, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := Defaults(dir)
	if s != want {
		t.Fatalf("got %+v, want %+v", s, want)
	}
	if !s.NeedsWrite() {
		t.Fatal("missing document should be written")
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeSettings(t, dir, `{
  "taskbookDirectory": "/tmp/tasks",
  "displayCompleteTasks": false,
  "displayProgressOverview": true
}`)

	s, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if s.Directory != "/tmp/tasks" || s.DisplayCompleteTasks || !s.DisplayProgressOverview {
		t.Fatalf("unexpected settings %+v", s)
	}
	if s.StorageBackend != "json" {
		t.Fatalf("backend = %q, want default json", s.StorageBackend)
	}
	if s.NeedsWrite() {
		t.Fatal("existing document should be left alone")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeSettings(t, dir, `{"taskbookDirectory": "/tmp/tasks", "displayCompleteTasks": true}`)
	t.Setenv("TASKER_DISPLAY_COMPLETE", "false")
	t.Setenv("TASKER_BACKEND", "sqlite")
	t.Setenv("TASKER_LOG_LEVEL", "debug")

	s, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if s.DisplayCompleteTasks {
		t.Fatal("env should override displayCompleteTasks")
	}
	if s.StorageBackend != "sqlite" || s.LogLevel != "debug" {
		t.Fatalf("unexpected settings %+v", s)
	}
}

func TestLoadDamaged(t *testing.T) {
	cases := map[string]string{
		"syntax":      `{"taskbookDirectory": `,
		"bad backend": `{"storageBackend": "mongo"}`,
		"bad level":   `{"logLevel": "loud"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			writeSettings(t, dir, body)

			_, err := Load(dir)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
		})
	}
}

func TestLoadOrReset(t *testing.T) {
	clearEnv(t)
	logger := log.New(io.Discard)
	dir := t.TempDir()
	writeSettings(t, dir, `not json`)

	var asked string
	yes := func(q string) (bool, error) { asked = q; return true, nil }
	s, err := LoadOrReset(dir, yes, logger)
	if err != nil {
		t.Fatal(err)
	}
	if asked == "" {
		t.Fatal("confirm was not called")
	}
	if s != Defaults(dir) {
		t.Fatalf("expected defaults, got %+v", s)
	}

	no := func(string) (bool, error) { return false, nil }
	if _, err := LoadOrReset(dir, no, logger); err == nil {
		t.Fatal("declining the reset should fail")
	}
}

func TestLoadOrResetSkipsPromptWhenValid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	never := func(string) (bool, error) {
		t.Fatal("confirm should not be called")
		return false, nil
	}
	if _, err := LoadOrReset(dir, never, log.New(io.Discard)); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOrResetBadEnvKeepsFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	body := `{"taskbookDirectory": "/srv/mytasks", "displayCompleteTasks": false}`
	writeSettings(t, dir, body)

	tests := []struct {
		name, value string
	}{
		{"TASKER_LOG_LEVEL", "verbose"},
		{"TASKER_BACKEND", "mongo"},
		{"TASKER_DISPLAY_COMPLETE", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.name, tt.value)
			asked := false
			yes := func(string) (bool, error) { asked = true; return true, nil }

			_, err := LoadOrReset(dir, yes, log.New(io.Discard))
			if err == nil {
				t.Fatal("expected an error for the bad override")
			}
			var pe *ParseError
			if errors.As(err, &pe) {
				t.Fatalf("a bad override is not a damaged file: %v", err)
			}
			if !strings.Contains(err.Error(), tt.name) {
				t.Fatalf("error %q should name %s", err, tt.name)
			}
			if asked {
				t.Fatal("no reset should be offered for a bad override")
			}
			data, _ := os.ReadFile(filepath.Join(dir, FileName))
			if string(data) != body {
				t.Fatalf("settings file changed: %s", data)
			}
		})
	}
}

func TestSave(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "cfg")

	if err := Save(dir, Defaults(dir)); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"taskbookDirectory", "displayCompleteTasks", "displayProgressOverview", "storageBackend"} {
		if _, ok := raw[k]; !ok {
			t.Errorf("missing key %q in %s", k, data)
		}
	}

	s, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	// existing document: Save is a no-op
	s.DisplayCompleteTasks = false
	if err := Save(dir, s); err != nil {
		t.Fatal(err)
	}
	again, _ := Load(dir)
	if !again.DisplayCompleteTasks {
		t.Fatal("existing document was rewritten")
	}
}

func TestStorageDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	tests := []struct {
		in, want string
	}{
		{"~", home},
		{"~/.config/tasker", filepath.Join(home, ".config", "tasker")},
		{"/var/tasks", "/var/tasks"},
	}
	for _, tt := range tests {
		got, err := Settings{Directory: tt.in}.StorageDir()
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("StorageDir(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
