package view

import (
	"strings"
	"testing"
	"time"

	"github.com/sadopc/tasker/internal/store"
	"github.com/sadopc/tasker/internal/task"
)

var testNow = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

func newList(t *testing.T, entries ...string) *store.List {
	t.Helper()
	l := store.New(store.WithClock(func() time.Time { return testNow }))
	for _, e := range entries {
		isNote := strings.HasPrefix(e, "note:")
		l.NewEntry(strings.Fields(strings.TrimPrefix(e, "note:")), isNote)
	}
	return l
}

func check(t *testing.T, l *store.List, ids ...string) {
	t.Helper()
	if _, err := l.FlipFlag(ids, task.Check); err != nil {
		t.Fatal(err)
	}
}

// ============================================================
// Item display form
// ============================================================

func TestItemGlyphs(t *testing.T) {
	l := newList(t, "plain", "started", "finished", "note:idea")
	if _, err := l.FlipFlag([]string{"1"}, task.Begin); err != nil {
		t.Fatal(err)
	}
	check(t, l, "2")

	tests := []struct {
		id   uint64
		want string
	}{
		{0, "0. ☐ plain"},
		{1, "1. ∴ started"},
		{2, "2. ✓ finished"},
		{3, "3. ● idea"},
	}
	for _, tt := range tests {
		tk, _ := l.Get(tt.id)
		if got := Item(tk, testNow); got != tt.want {
			t.Errorf("Item(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestItemPriorityStarAndAge(t *testing.T) {
	l := newList(t, "urgent", "soon")
	if _, err := l.SetPriority([]string{"@0", "3"}); err != nil {
		t.Fatal(err)
	}
	if _, err := l.SetPriority([]string{"@1", "2"}); err != nil {
		t.Fatal(err)
	}
	if _, err := l.FlipFlag([]string{"0"}, task.Star); err != nil {
		t.Fatal(err)
	}

	tk, _ := l.Get(0)
	got := Item(tk, testNow.Add(50*time.Hour))
	if got != "0. ☐ urgent (!!) 2d ٭" {
		t.Fatalf("Item = %q", got)
	}
	tk, _ = l.Get(1)
	if got := Item(tk, testNow.Add(23*time.Hour)); got != "1. ☐ soon (!)" {
		t.Fatalf("Item = %q, age under one day should be omitted", got)
	}
}

// ============================================================
// Board view
// ============================================================

func TestBoardCounter(t *testing.T) {
	l := newList(t, "@cooking pasta", "@cooking bread", "@cooking soup", "laundry")
	check(t, l, "0", "2")

	out := Boards(l.Tasks(), Options{ShowCompleted: true, Now: testNow})
	if !strings.Contains(out, "cooking [2/3]") {
		t.Fatalf("missing cooking counter:\n%s", out)
	}
	section := out[strings.Index(out, "cooking"):]
	for _, want := range []string{"pasta", "bread", "soup"} {
		if !strings.Contains(section, want) {
			t.Errorf("cooking section missing %q:\n%s", want, section)
		}
	}
	if strings.Contains(section, "laundry") {
		t.Errorf("laundry listed under cooking:\n%s", section)
	}
}

func TestBoardOrder(t *testing.T) {
	l := newList(t, "@zeta a", "@alpha b", "c")
	out := Boards(l.Tasks(), Options{ShowCompleted: true, Now: testNow})

	iMy := strings.Index(out, task.DefaultBoard)
	iAlpha := strings.Index(out, "alpha")
	iZeta := strings.Index(out, "zeta")
	if !(iMy < iAlpha && iAlpha < iZeta) {
		t.Fatalf("wrong board order:\n%s", out)
	}
}

func TestItemInSeveralBoards(t *testing.T) {
	l := newList(t, "@home @work call")
	out := Boards(l.Tasks(), Options{ShowCompleted: true, Now: testNow})
	if n := strings.Count(out, "call"); n != 2 {
		t.Fatalf("item listed %d times, want 2:\n%s", n, out)
	}
}

func TestBoardCountsNotesNeverDone(t *testing.T) {
	l := newList(t, "note:idea", "task")
	check(t, l, "1")
	counts := BoardCounts(l.Tasks())
	if len(counts) != 1 {
		t.Fatalf("counts = %+v", counts)
	}
	if c := counts[0]; c.Done != 1 || c.Total != 2 {
		t.Fatalf("counts = %+v, want 1/2", c)
	}
}

func TestHideCompletedKeepsCounter(t *testing.T) {
	l := newList(t, "@x done-one", "@x open-one")
	check(t, l, "0")

	out := Boards(l.Tasks(), Options{ShowCompleted: false, Now: testNow})
	if strings.Contains(out, "done-one") {
		t.Fatalf("completed item shown:\n%s", out)
	}
	if !strings.Contains(out, "[1/2]") {
		t.Fatalf("counter should still count completed items:\n%s", out)
	}
}

func TestBoardsEmpty(t *testing.T) {
	if out := Boards(nil, Options{}); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

// ============================================================
// Timeline and overview
// ============================================================

func TestTimelineNewestFirst(t *testing.T) {
	day := 24 * time.Hour
	older := task.New(0, "older", nil, false, testNow.Add(-3*day))
	newer := task.New(1, "newer", nil, false, testNow)

	out := Timeline([]*task.Task{older, newer}, Options{ShowCompleted: true, Now: testNow})
	if strings.Index(out, "Fri Oct 16 2026") > strings.Index(out, "Tue Oct 13 2026") {
		t.Fatalf("timeline not newest first:\n%s", out)
	}
	if !strings.Contains(out, "3 days ago") {
		t.Fatalf("missing relative time:\n%s", out)
	}
}

func TestOverview(t *testing.T) {
	l := newList(t, "a", "b", "c", "d", "note:e")
	check(t, l, "0")
	if _, err := l.FlipFlag([]string{"1"}, task.Begin); err != nil {
		t.Fatal(err)
	}

	c := Count(l.Tasks())
	if c != (Counts{Done: 1, InProgress: 1, Pending: 2, Notes: 1}) {
		t.Fatalf("counts = %+v", c)
	}
	out := Overview(l.Tasks())
	for _, want := range []string{"25% of all tasks complete.", "1 done", "1 in-progress", "2 pending", "1 notes"} {
		if !strings.Contains(out, want) {
			t.Errorf("overview missing %q:\n%s", want, out)
		}
	}
}

func TestOverviewWithoutTasks(t *testing.T) {
	if p := (Counts{Notes: 3}).Percent(); p != 0 {
		t.Fatalf("percent = %d", p)
	}
}
