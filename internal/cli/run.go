package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sadopc/tasker/internal/config"
	"github.com/sadopc/tasker/internal/export"
	"github.com/sadopc/tasker/internal/storage"
	"github.com/sadopc/tasker/internal/store"
	"github.com/sadopc/tasker/internal/task"
	"github.com/sadopc/tasker/internal/theme"
	"github.com/sadopc/tasker/internal/view"
)

var (
	errNoDescription = errors.New("no description was provided in input")
	errNoOperation   = errors.New("input given without an operation, see --help")
)

type runner struct {
	opts      Options
	logger    *log.Logger
	verbose   bool
	configDir string

	settings config.Settings
	backend  storage.Backend
	active   *store.List
	archive  *store.List
}

// run loads settings and both lists, applies op and persists the lists
// when op succeeded and changed them.
func (r *runner) run(op string, args []string, exportTo string) error {
	baseDir := r.configDir
	if baseDir == "" {
		dir, err := config.BaseDir()
		if err != nil {
			return fmt.Errorf("locate config directory: %w", err)
		}
		baseDir = dir
	}

	settings, err := config.LoadOrReset(baseDir, r.opts.Confirm, r.logger)
	if err != nil {
		return err
	}
	r.settings = settings
	if settings.LogLevel != "" && !r.verbose {
		if level, err := log.ParseLevel(settings.LogLevel); err == nil {
			r.logger.SetLevel(level)
		}
	}
	r.logger.Debug("settings loaded", "dir", baseDir, "backend", settings.StorageBackend)

	dir, err := settings.StorageDir()
	if err != nil {
		return err
	}
	backend, err := storage.Open(settings.StorageBackend, dir, r.logger)
	if err != nil {
		return err
	}
	defer backend.Close()
	r.backend = backend

	if r.active, err = r.load(storage.Active); err != nil {
		return err
	}
	if r.archive, err = r.load(storage.Archive); err != nil {
		return err
	}

	out, changed, err := r.dispatch(op, args, exportTo)
	if err != nil {
		fmt.Fprintln(r.opts.Stdout, theme.ErrorLine(err))
		return ErrReported
	}
	if out != "" {
		fmt.Fprintln(r.opts.Stdout, out)
	}

	if changed {
		if err := r.persist(op); err != nil {
			return err
		}
	}
	return config.Save(baseDir, r.settings)
}

func (r *runner) load(name string) (*store.List, error) {
	data, err := r.backend.Load(name)
	if err != nil {
		return nil, wrapLoad(name, err)
	}
	l, err := store.Load(data, store.WithClock(r.opts.Now))
	if err != nil {
		return nil, wrapLoad(name, err)
	}
	r.logger.Debug("list loaded", "name", name, "items", l.Len())
	return l, nil
}

// persist saves both lists, the one items moved into first. A failed
// second write then leaves a moved item in both documents, never in none.
func (r *runner) persist(op string) error {
	order := []struct {
		name string
		list *store.List
	}{{storage.Archive, r.archive}, {storage.Active, r.active}}
	if op == "restore" {
		order[0], order[1] = order[1], order[0]
	}
	for _, doc := range order {
		name, l := doc.name, doc.list
		data, err := l.Serialize()
		if err != nil {
			return err
		}
		if err := r.backend.Save(name, data); err != nil {
			return err
		}
		r.logger.Debug("list saved", "name", name, "items", l.Len())
	}
	return nil
}

func (r *runner) viewOptions() view.Options {
	return view.Options{
		ShowCompleted: r.settings.DisplayCompleteTasks,
		ShowOverview:  r.settings.DisplayProgressOverview,
		Now:           r.opts.Now(),
	}
}

// dispatch runs one operation and returns its report. The bool is set when
// either list was modified.
func (r *runner) dispatch(op string, args []string, exportTo string) (string, bool, error) {
	switch op {
	case "":
		if len(args) > 0 {
			return "", false, errNoOperation
		}
		return view.Boards(r.active.Tasks(), r.viewOptions()), false, nil
	case "archive":
		opts := r.viewOptions()
		opts.ShowCompleted, opts.ShowOverview = true, false
		return view.Boards(r.archive.Tasks(), opts), false, nil
	case "timeline":
		return view.Timeline(r.active.Tasks(), r.viewOptions()), false, nil
	case "find":
		return r.matches(r.active.Find(args)), false, nil
	case "list":
		return r.matches(r.active.Filter(args)), false, nil
	case "begin", "check", "star":
		ids, err := idTokens(args)
		if err != nil {
			return "", false, err
		}
		out, err := r.active.FlipFlag(ids, flagOps[op])
		return out, err == nil, err
	case "clear":
		out, err := r.active.MoveBetween(r.archive, nil, false)
		return out, err == nil, err
	case "delete":
		ids, err := idTokens(args)
		if err != nil {
			return "", false, err
		}
		out, err := r.active.MoveBetween(r.archive, ids, false)
		return out, err == nil, err
	case "restore":
		ids, err := idTokens(args)
		if err != nil {
			return "", false, err
		}
		out, err := r.archive.MoveBetween(r.active, ids, true)
		return out, err == nil, err
	case "edit":
		out, err := r.active.Edit(args)
		return out, err == nil, err
	case "move":
		out, err := r.active.MoveToBoard(args)
		return out, err == nil, err
	case "priority":
		out, err := r.active.SetPriority(args)
		return out, err == nil, err
	case "task", "note":
		if len(args) == 0 {
			return "", false, errNoDescription
		}
		return r.active.NewEntry(args, op == "note"), true, nil
	case "copy":
		return r.copy(args)
	case "export":
		if err := export.Write(r.active.Tasks(), exportTo); err != nil {
			return "", false, err
		}
		return theme.DoneLine("Exported items to", exportTo), false, nil
	case "interactive":
		if err := r.opts.Interactive(r.active, r.archive, r.settings.DisplayCompleteTasks); err != nil {
			return "", false, err
		}
		return "", true, nil
	}
	return "", false, fmt.Errorf("unknown operation %q", op)
}

var flagOps = map[string]task.Flag{
	"begin": task.Begin,
	"check": task.Check,
	"star":  task.Star,
}

func (r *runner) matches(tasks []*task.Task) string {
	if len(tasks) == 0 {
		return " " + theme.Dim.Render("No items matched")
	}
	opts := r.viewOptions()
	opts.ShowOverview = false
	return view.Boards(tasks, opts)
}

func (r *runner) copy(args []string) (string, bool, error) {
	ids, err := idTokens(args)
	if err != nil {
		return "", false, err
	}
	descs, err := r.active.Descriptions(ids)
	if err != nil {
		return "", false, err
	}
	if err := r.opts.Clipboard(strings.Join(descs, "\n")); err != nil {
		return "", false, fmt.Errorf("copy to clipboard: %w", err)
	}
	return theme.DoneLine("Copied the descriptions of item(s)", ids...), false, nil
}

// idTokens returns the id arguments with an optional "@" marker removed.
// At least one is required.
func idTokens(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, store.ErrMissingID
	}
	ids := make([]string, len(args))
	for i, a := range args {
		ids[i] = strings.TrimPrefix(a, "@")
	}
	return ids, nil
}
