// Package view renders task lists for the terminal: the board view, the
// timeline view and the progress overview.
package view

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sadopc/tasker/internal/task"
	"github.com/sadopc/tasker/internal/theme"
)

// Options controls what the views show.
type Options struct {
	ShowCompleted bool
	ShowOverview  bool
	Now           time.Time
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

func (o Options) visible(t *task.Task) bool {
	return o.ShowCompleted || !t.IsComplete()
}

// Item renders the one-line display form of t:
// "N. glyph description [Nd] [star]".
func Item(t *task.Task, now time.Time) string {
	desc := t.Description
	if p, ok := t.Priority(); ok {
		switch p {
		case task.PriorityMedium:
			desc = theme.Medium.Render(desc) + " (!)"
		case task.PriorityHigh:
			desc = theme.High.Render(desc) + " (!!)"
		}
	}

	status := theme.Pending.Render(theme.GlyphPending)
	switch {
	case t.IsNote():
		status = theme.Note.Render(theme.GlyphNote)
	case t.IsComplete():
		status = theme.Complete.Render(theme.GlyphComplete)
		desc = theme.Dim.Render(t.Description)
	case t.IsInProgress():
		status = theme.InProgress.Render(theme.GlyphInProgress)
	}

	var b strings.Builder
	b.WriteString(theme.Dim.Render(fmt.Sprintf("%d.", t.ID)))
	b.WriteString(" " + status + " " + desc)
	if days := t.AgeDays(now); days > 0 {
		b.WriteString(" " + theme.Dim.Render(fmt.Sprintf("%dd", days)))
	}
	if t.Starred {
		b.WriteString(" " + theme.Star.Render(theme.GlyphStar))
	}
	return b.String()
}

// BoardCount is the completion counter of one board.
type BoardCount struct {
	Name  string
	Done  int
	Total int
}

// BoardCounts tallies every board of tasks. The default board comes first,
// the others follow in name order. Notes count towards the total only.
func BoardCounts(tasks []*task.Task) []BoardCount {
	idx := make(map[string]int)
	var counts []BoardCount
	for _, t := range tasks {
		for _, name := range t.Boards {
			i, ok := idx[name]
			if !ok {
				i = len(counts)
				idx[name] = i
				counts = append(counts, BoardCount{Name: name})
			}
			counts[i].Total++
			if t.IsComplete() {
				counts[i].Done++
			}
		}
	}
	sort.Slice(counts, func(i, j int) bool {
		a, b := counts[i].Name, counts[j].Name
		if a == task.DefaultBoard || b == task.DefaultBoard {
			return a == task.DefaultBoard && b != task.DefaultBoard
		}
		return a < b
	})
	return counts
}

// Boards renders tasks grouped by board. An item in several boards is
// listed under each of them.
func Boards(tasks []*task.Task, opts Options) string {
	now := opts.now()
	var sections []string
	for _, c := range BoardCounts(tasks) {
		var b strings.Builder
		b.WriteString(header(c.Name, c.Done, c.Total))
		for _, t := range tasks {
			if t.InBoard(c.Name) && opts.visible(t) {
				b.WriteString("\n    " + Item(t, now))
			}
		}
		sections = append(sections, b.String())
	}
	out := strings.Join(sections, "\n\n")
	if opts.ShowOverview {
		out = joinBlocks(out, Overview(tasks))
	}
	return out
}

// Timeline renders tasks grouped by creation date, newest date first.
func Timeline(tasks []*task.Task, opts Options) string {
	now := opts.now()
	type group struct {
		date   string
		latest int64
		items  []*task.Task
		done   int
	}
	idx := make(map[string]int)
	var groups []*group
	for _, t := range tasks {
		i, ok := idx[t.Date]
		if !ok {
			i = len(groups)
			idx[t.Date] = i
			groups = append(groups, &group{date: t.Date})
		}
		g := groups[i]
		g.items = append(g.items, t)
		if t.Timestamp > g.latest {
			g.latest = t.Timestamp
		}
		if t.IsComplete() {
			g.done++
		}
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].latest > groups[j].latest })

	var sections []string
	for _, g := range groups {
		var b strings.Builder
		b.WriteString(header(g.date, g.done, len(g.items)))
		b.WriteString(" " + theme.Dim.Render(humanize.RelTime(time.UnixMilli(g.latest), now, "ago", "from now")))
		for _, t := range g.items {
			if opts.visible(t) {
				b.WriteString("\n    " + Item(t, now))
			}
		}
		sections = append(sections, b.String())
	}
	out := strings.Join(sections, "\n\n")
	if opts.ShowOverview {
		out = joinBlocks(out, Overview(tasks))
	}
	return out
}

func header(name string, done, total int) string {
	return " " + theme.Underline.Render(name) + " " + theme.Dim.Render(fmt.Sprintf("[%d/%d]", done, total))
}

func joinBlocks(a, b string) string {
	if a == "" {
		return b
	}
	return a + "\n\n" + b
}

// Counts summarises a set of items.
type Counts struct {
	Done       int
	InProgress int
	Pending    int
	Notes      int
}

// Tasks is the number of items that are not notes.
func (c Counts) Tasks() int {
	return c.Done + c.InProgress + c.Pending
}

// Percent is the share of tasks completed, 0 without tasks.
func (c Counts) Percent() int {
	if c.Tasks() == 0 {
		return 0
	}
	return c.Done * 100 / c.Tasks()
}

func Count(tasks []*task.Task) Counts {
	var c Counts
	for _, t := range tasks {
		switch {
		case t.IsNote():
			c.Notes++
		case t.IsComplete():
			c.Done++
		case t.IsInProgress():
			c.InProgress++
		default:
			c.Pending++
		}
	}
	return c
}

// Overview renders the two-line progress summary.
func Overview(tasks []*task.Task) string {
	c := Count(tasks)
	pct := fmt.Sprintf("%d%%", c.Percent())
	line1 := "  " + theme.Dim.Render(pct+" of all tasks complete.")
	line2 := "  " + strings.Join([]string{
		theme.Complete.Render(fmt.Sprintf("%d", c.Done)) + theme.Dim.Render(" done"),
		theme.InProgress.Render(fmt.Sprintf("%d", c.InProgress)) + theme.Dim.Render(" in-progress"),
		theme.Pending.Render(fmt.Sprintf("%d", c.Pending)) + theme.Dim.Render(" pending"),
		theme.Note.Render(fmt.Sprintf("%d", c.Notes)) + theme.Dim.Render(" notes"),
	}, theme.Dim.Render(" · "))
	return line1 + "\n" + line2
}
