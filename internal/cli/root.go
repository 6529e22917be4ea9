// Package cli wires the command line surface to the task lists.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/sadopc/tasker/internal/config"
	"github.com/sadopc/tasker/internal/store"
	"github.com/sadopc/tasker/internal/tui"
	"github.com/spf13/cobra"
)

// ErrReported is returned after an operation error was already printed.
var ErrReported = errors.New("error already reported")

// Options holds the collaborators the command talks to.
type Options struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Confirm     config.Confirm
	Clipboard   func(text string) error
	Interactive func(active, archive *store.List, showCompleted bool) error
	Now         func() time.Time
}

// DefaultOptions talks to the real terminal and clipboard.
func DefaultOptions() Options {
	return Options{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Confirm:     config.HuhConfirm,
		Clipboard:   clipboard.WriteAll,
		Interactive: tui.Run,
		Now:         time.Now,
	}
}

type operation struct {
	name      string
	shorthand string
	usage     string
}

var operations = []operation{
	{"archive", "a", "Display archived items"},
	{"begin", "b", "Start/pause task"},
	{"check", "c", "Check/uncheck task"},
	{"clear", "", "Delete all checked items"},
	{"copy", "y", "Copy item description"},
	{"delete", "d", "Delete item"},
	{"edit", "e", "Edit item description"},
	{"find", "f", "Search for items"},
	{"list", "l", "List items by attributes"},
	{"move", "m", "Move item between boards"},
	{"note", "n", "Create note"},
	{"priority", "p", "Update priority of task"},
	{"restore", "r", "Restore items from archive"},
	{"star", "s", "Star/unstar item"},
	{"task", "t", "Create task"},
	{"timeline", "i", "Display timeline view"},
	{"interactive", "I", "Browse boards interactively"},
}

// NewRootCommand builds the tasker command.
func NewRootCommand(opts Options) *cobra.Command {
	var (
		verbose   bool
		configDir string
		exportTo  string
		selected  = make(map[string]*bool, len(operations))
	)

	cmd := &cobra.Command{
		Use:           "tasker [flags] [input...]",
		Short:         "Tasks, boards and notes for the command line",
		Long:          "tasker keeps tasks and notes on boards. Run it without flags to see your boards.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			op := ""
			for _, o := range operations {
				if *selected[o.name] {
					op = o.name
				}
			}
			if exportTo != "" {
				op = "export"
			}

			logger := newLogger(opts.Stderr, verbose)
			r := &runner{opts: opts, logger: logger, verbose: verbose, configDir: configDir}
			return r.run(op, args, exportTo)
		},
	}

	flags := cmd.Flags()
	names := make([]string, 0, len(operations)+1)
	for _, o := range operations {
		selected[o.name] = flags.BoolP(o.name, o.shorthand, false, o.usage)
		names = append(names, o.name)
	}
	flags.StringVar(&exportTo, "export", "", "Export items to a .csv, .json, .yaml or .toml file")
	names = append(names, "export")
	cmd.MarkFlagsMutuallyExclusive(names...)

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug output to stderr")
	cmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory holding settings.json")
	cmd.PersistentFlags().MarkHidden("config-dir")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "tasker",
		ReportTimestamp: false,
	})
}

// Execute runs the command with os.Args.
func Execute() error {
	return NewRootCommand(DefaultOptions()).Execute()
}

// wrapLoad names the document a load error came from.
func wrapLoad(name string, err error) error {
	return fmt.Errorf("load %s: %w", name, err)
}
