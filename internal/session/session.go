// Package session owns the per-user aggregate of selection state and
// measurement values. A Session has exactly one writer; it is never shared
// between users and holds no locks.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/piwi3910/knitgauge/internal/engine"
	"github.com/piwi3910/knitgauge/internal/log"
	"github.com/piwi3910/knitgauge/internal/model"
)

// Session is one editing session: the current selection, the measurement
// values, and their undo history.
type Session struct {
	id      string
	catalog model.Catalog
	sel     model.SelectionState
	params  model.ParameterSet
	history *History
	logger  *zap.SugaredLogger
}

// New starts a session with cfg's defaults. A nil logger disables logging.
func New(cfg model.AppConfig, logger *zap.SugaredLogger) *Session {
	sel := model.DefaultSelection()
	cfg.ApplyToSelection(&sel)

	s := &Session{
		id:      uuid.New().String(),
		catalog: model.DefaultCatalog(),
		sel:     sel,
		params:  model.NewParameterSet(),
		history: NewHistory(),
	}
	s.logger = log.OrNop(logger).With("session", s.id)
	s.logger.Debugw("session started",
		"garment", sel.Garment, "unit", sel.Unit, "format", sel.Format)
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Catalog returns the size preset catalog the session resolves against.
func (s *Session) Catalog() model.Catalog {
	return s.catalog
}

// Selection returns a copy of the current selection state.
func (s *Session) Selection() model.SelectionState {
	return s.sel
}

// Params returns a copy of the current measurement values.
func (s *Session) Params() model.ParameterSet {
	return s.params.Clone()
}

// Get returns a field's current value and whether it is set.
func (s *Session) Get(f model.MeasurementField) (float64, bool) {
	return s.params.Get(f)
}

// Set stores free-form text into a field. Text that does not parse as a
// non-negative decimal leaves the field unset without error. The size
// marker is not touched.
func (s *Session) Set(f model.MeasurementField, raw string) {
	s.record(fmt.Sprintf("Edit %s", f))
	if !s.params.Set(f, raw) {
		s.logger.Debugw("measurement left unset", "field", f.Key(), "input", raw)
		return
	}
	s.logger.Debugw("measurement set", "field", f.Key(), "value", s.params.Value(f))
}

// ApplyPreset selects a size. name must be a catalog name or
// model.SizeCustom; validate user input with Catalog().ResolveSizeName.
func (s *Session) ApplyPreset(name string) {
	s.record(fmt.Sprintf("Apply %s", name))
	engine.ApplyPreset(&s.sel, s.catalog, &s.params, name)
	s.logger.Infow("size selected", "size", name)
}

// ResetAll clears every measurement field. The selection is kept.
func (s *Session) ResetAll() {
	s.record("Reset")
	s.params.ResetAll()
	s.logger.Debugw("measurements reset")
}

// Merge copies every set field of values into the session as one undoable
// edit, such as an imported file. It returns the number of fields copied.
func (s *Session) Merge(values model.ParameterSet, label string) int {
	if values.SetCount() == 0 {
		return 0
	}
	s.record(label)
	n := 0
	for _, f := range model.AllFields() {
		if v, ok := values.Get(f); ok {
			s.params.SetValue(f, v)
			n++
		}
	}
	s.logger.Infow("measurements merged", "source", label, "fields", n)
	return n
}

// StartCustom switches to Custom and clears every field, for a fresh
// manual configuration.
func (s *Session) StartCustom() {
	s.record("Start custom")
	engine.ApplyPreset(&s.sel, s.catalog, &s.params, model.SizeCustom)
	s.params.ResetAll()
	s.logger.Infow("custom configuration started")
}

// SetUnit changes the active unit. Stored values are not converted; they
// are interpreted under the new unit from now on.
func (s *Session) SetUnit(u model.Unit) {
	if u == s.sel.Unit {
		return
	}
	s.record(fmt.Sprintf("Unit %s", u))
	s.logger.Infow("unit changed without converting values",
		"from", s.sel.Unit, "to", u, "set_fields", s.params.SetCount())
	s.sel.Unit = u
}

// SetGarment selects the chart template. Measurements are unaffected.
func (s *Session) SetGarment(g model.GarmentType) {
	if g == s.sel.Garment {
		return
	}
	s.record(fmt.Sprintf("Garment %s", g))
	s.sel.Garment = g
	s.logger.Debugw("garment selected", "garment", g)
}

// SetFormat selects the output document format.
func (s *Session) SetFormat(f model.Format) {
	if f == s.sel.Format {
		return
	}
	s.record(fmt.Sprintf("Format %s", f))
	s.sel.Format = f
	s.logger.Debugw("format selected", "format", f)
}

// Payload assembles the export payload from the current snapshot.
func (s *Session) Payload() model.ExportPayload {
	payload := engine.BuildExportPayload(s.sel, s.params)
	if missing := payload.Missing(); len(missing) > 0 {
		s.logger.Infow("exporting with unset fields as zero", "missing", len(missing))
	}
	s.logger.Infow("export payload built",
		"garment", payload.GarmentType, "format", payload.Format)
	return payload
}

// Divergence reports fields that no longer match the selected preset.
func (s *Session) Divergence() []engine.FieldDivergence {
	return engine.Divergence(s.sel, s.catalog, s.params)
}

// Undo restores the state before the last change. It reports whether
// anything was undone.
func (s *Session) Undo() bool {
	label, _ := s.history.UndoLabel()
	snap, ok := s.history.Undo(s.snapshot(label))
	if !ok {
		return false
	}
	s.restore(snap)
	s.logger.Debugw("undo", "change", label)
	return true
}

// Redo reapplies the last undone change.
func (s *Session) Redo() bool {
	label, _ := s.history.RedoLabel()
	snap, ok := s.history.Redo(s.snapshot(label))
	if !ok {
		return false
	}
	s.restore(snap)
	s.logger.Debugw("redo", "change", label)
	return true
}

// CanUndo reports whether Undo would change anything.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

// UndoLabel names the change Undo would revert, e.g. "Apply Men L".
func (s *Session) UndoLabel() (string, bool) {
	return s.history.UndoLabel()
}

// RedoLabel names the change Redo would reapply.
func (s *Session) RedoLabel() (string, bool) {
	return s.history.RedoLabel()
}

func (s *Session) record(label string) {
	s.history.Push(s.snapshot(label))
}

func (s *Session) snapshot(label string) Snapshot {
	return MakeSnapshot(s.sel, s.params, label)
}

func (s *Session) restore(snap Snapshot) {
	s.sel = snap.Selection
	s.params = snap.Params.Clone()
}
