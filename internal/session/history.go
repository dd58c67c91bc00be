package session

import "github.com/piwi3910/knitgauge/internal/model"

const defaultMaxDepth = 50

// Snapshot is the session state from before one labeled change.
type Snapshot struct {
	Selection model.SelectionState
	Params    model.ParameterSet
	Label     string // the change, e.g. "Apply Men L"
}

// History is a linear timeline of snapshots with a cursor. Entries before
// the cursor can be undone; entries from the cursor on can be redone.
// Undo and Redo swap the caller's state with the entry under the cursor, so
// one slice serves both directions.
type History struct {
	entries  []Snapshot
	cursor   int
	maxDepth int
}

// NewHistory creates a History holding at most 50 undo steps.
func NewHistory() *History {
	return &History{maxDepth: defaultMaxDepth}
}

// Push records the state before a change. Anything that could have been
// redone is dropped.
func (h *History) Push(s Snapshot) {
	h.entries = append(h.entries[:h.cursor], s)
	if over := len(h.entries) - h.maxDepth; over > 0 {
		h.entries = h.entries[over:]
	}
	h.cursor = len(h.entries)
}

// Undo steps back one change. current is stored in its place so Redo can
// return to it; it should carry the label of the change being undone.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if h.cursor == 0 {
		return Snapshot{}, false
	}
	h.cursor--
	prev := h.entries[h.cursor]
	h.entries[h.cursor] = current
	return prev, true
}

// Redo steps forward one change, storing current for the next Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if h.cursor == len(h.entries) {
		return Snapshot{}, false
	}
	next := h.entries[h.cursor]
	h.entries[h.cursor] = current
	h.cursor++
	return next, true
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.entries)
}

// UndoLabel names the change Undo would revert.
func (h *History) UndoLabel() (string, bool) {
	if !h.CanUndo() {
		return "", false
	}
	return h.entries[h.cursor-1].Label, true
}

// RedoLabel names the change Redo would reapply.
func (h *History) RedoLabel() (string, bool) {
	if !h.CanRedo() {
		return "", false
	}
	return h.entries[h.cursor].Label, true
}

// MakeSnapshot copies the given state into a labeled snapshot.
func MakeSnapshot(sel model.SelectionState, params model.ParameterSet, label string) Snapshot {
	return Snapshot{
		Selection: sel,
		Params:    params.Clone(),
		Label:     label,
	}
}
