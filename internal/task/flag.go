package task

// Flag is one of the per-record markers that can be flipped.
type Flag int

const (
	Begin Flag = iota
	Check
	Star
)

func (f Flag) String() string {
	switch f {
	case Begin:
		return "begin"
	case Check:
		return "check"
	case Star:
		return "star"
	}
	return "unknown"
}

// Flip toggles f and reports the resulting state. ok is false when the
// flag does not apply to the record (begin and check on a note), in which
// case nothing changes.
//
// Starting a task clears its completion and completing a task stops its
// progress, so the two are never set together after a flip.
func (t *Task) Flip(f Flag) (on bool, ok bool) {
	switch f {
	case Begin:
		if t.Progress == nil {
			return false, false
		}
		t.Progress.InProgress = !t.Progress.InProgress
		if t.Progress.InProgress {
			t.Progress.Complete = false
		}
		return t.Progress.InProgress, true
	case Check:
		if t.Progress == nil {
			return false, false
		}
		t.Progress.Complete = !t.Progress.Complete
		if t.Progress.Complete {
			t.Progress.InProgress = false
		}
		return t.Progress.Complete, true
	case Star:
		t.Starred = !t.Starred
		return t.Starred, true
	}
	return false, false
}
