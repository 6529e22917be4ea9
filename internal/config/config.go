// Package config loads and saves the settings document.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// FileName is the settings document inside the config directory.
const FileName = "settings.json"

// Settings holds the user preferences. Keys stay compatible with taskbook.
type Settings struct {
	Directory               string `json:"taskbookDirectory" mapstructure:"taskbookDirectory" validate:"required"`
	DisplayCompleteTasks    bool   `json:"displayCompleteTasks" mapstructure:"displayCompleteTasks"`
	DisplayProgressOverview bool   `json:"displayProgressOverview" mapstructure:"displayProgressOverview"`
	StorageBackend          string `json:"storageBackend" mapstructure:"storageBackend" validate:"oneof=json sqlite"`
	LogLevel                string `json:"logLevel,omitempty" mapstructure:"logLevel" validate:"omitempty,oneof=debug info warn error"`

	// set when the document is missing or was replaced by defaults
	needsWrite bool
}

// ParseError reports a settings document that cannot be used.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse settings %s: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// BaseDir returns ~/.config/tasker (or the platform equivalent).
func BaseDir() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "tasker"), nil
}

// Defaults returns the settings used when no document exists.
func Defaults(baseDir string) Settings {
	return Settings{
		Directory:               baseDir,
		DisplayCompleteTasks:    true,
		DisplayProgressOverview: true,
		StorageBackend:          "json",
		needsWrite:              true,
	}
}

func setDefaults(v *viper.Viper, baseDir string) {
	d := Defaults(baseDir)
	v.SetDefault("taskbookDirectory", d.Directory)
	v.SetDefault("displayCompleteTasks", d.DisplayCompleteTasks)
	v.SetDefault("displayProgressOverview", d.DisplayProgressOverview)
	v.SetDefault("storageBackend", d.StorageBackend)
	v.SetDefault("logLevel", "")
}

// envVar maps a settings key to the environment variable overriding it.
type envVar struct {
	key   string
	name  string
	field string
}

var envVars = []envVar{
	{"taskbookDirectory", "TASKER_DIRECTORY", "Directory"},
	{"displayCompleteTasks", "TASKER_DISPLAY_COMPLETE", "DisplayCompleteTasks"},
	{"displayProgressOverview", "TASKER_DISPLAY_PROGRESS", "DisplayProgressOverview"},
	{"storageBackend", "TASKER_BACKEND", "StorageBackend"},
	{"logLevel", "TASKER_LOG_LEVEL", "LogLevel"},
}

func bindEnvVars(v *viper.Viper) {
	for _, e := range envVars {
		v.BindEnv(e.key, e.name)
	}
}

// Load reads the settings document in baseDir, applies defaults and
// environment overrides, and validates the result. A missing or empty
// document yields the defaults.
//
// The document is checked on its own first. Only a problem in the file is
// a ParseError; an override that breaks otherwise valid settings is a
// plain error naming the variable.
func Load(baseDir string) (Settings, error) {
	path := filepath.Join(baseDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	missing := len(bytes.TrimSpace(data)) == 0

	file, err := newViper(baseDir, data, false)
	if err != nil {
		return Settings{}, &ParseError{Path: path, Err: err}
	}
	if _, err := decode(file); err != nil {
		return Settings{}, &ParseError{Path: path, Err: err}
	}

	merged, err := newViper(baseDir, data, true)
	if err != nil {
		return Settings{}, &ParseError{Path: path, Err: err}
	}
	s, err := decode(merged)
	if err != nil {
		return Settings{}, envError(err)
	}
	s.needsWrite = missing
	return s, nil
}

func newViper(baseDir string, data []byte, withEnv bool) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v, baseDir)
	if withEnv {
		bindEnvVars(v)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return v, nil
	}
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return v, nil
}

func decode(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, err
	}
	if err := validator.New().Struct(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// envError names the environment override behind err.
func envError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		for _, e := range envVars {
			if e.field == verrs[0].StructField() {
				return fmt.Errorf("invalid %s value %q: %w", e.name, os.Getenv(e.name), err)
			}
		}
	}
	var set []string
	for _, e := range envVars {
		if os.Getenv(e.name) != "" {
			set = append(set, e.name)
		}
	}
	return fmt.Errorf("invalid environment override (%s): %w", strings.Join(set, ", "), err)
}

// Confirm asks a yes/no question.
type Confirm func(question string) (bool, error)

// LoadOrReset is Load, except that a damaged document is replaced by the
// defaults when confirm agrees.
func LoadOrReset(baseDir string, confirm Confirm, logger *log.Logger) (Settings, error) {
	s, err := Load(baseDir)
	var pe *ParseError
	if !errors.As(err, &pe) {
		return s, err
	}
	logger.Warn("settings file is damaged", "path", pe.Path, "err", pe.Err)
	ok, cerr := confirm("Settings file is damaged, replace it with defaults?")
	if cerr != nil {
		return Settings{}, cerr
	}
	if !ok {
		return Settings{}, err
	}
	return Defaults(baseDir), nil
}

// StorageDir is the directory holding the task list documents, with a
// leading "~" expanded.
func (s Settings) StorageDir() (string, error) {
	return expandHome(s.Directory)
}

// NeedsWrite reports whether Save has anything to persist.
func (s Settings) NeedsWrite() bool {
	return s.needsWrite
}

// Save writes the settings document when it was missing or reset. An
// existing document is left alone so environment overrides never end up
// in it.
func Save(baseDir string, s Settings) error {
	if !s.needsWrite {
		return nil
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(baseDir, FileName), data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand home: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
