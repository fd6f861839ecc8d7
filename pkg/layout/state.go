// Package layout owns the editable card form layout and the palette of
// component templates that have not been placed yet.
//
// State is the only writer of both. Every mutation is a silent no-op when it
// refers to a row or component that no longer exists: keyboard and pointer
// gestures can race with structural edits, and a stale id must never crash
// the builder. Mutators report whether anything changed so callers can show
// feedback.
//
// State is not safe for concurrent use. It is driven from a single UI loop.
package layout

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/pluqqy/cardform/pkg/models"
)

// State holds the layout and the available palette for one builder session
type State struct {
	rows      models.Layout
	available map[models.Kind]bool

	ids      IDGenerator
	issued   map[string]bool
	logger   *log.Logger
	revision uint64

	subscribers map[int]func(models.Layout)
	nextSub     int
}

// Option configures a State
type Option func(*State)

// WithIDGenerator replaces the default uuid based id generator
func WithIDGenerator(g IDGenerator) Option {
	return func(s *State) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(l *log.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns an empty layout with every template available
func New(opts ...Option) *State {
	s := &State{
		rows:        models.Layout{},
		available:   make(map[models.Kind]bool),
		ids:         UUIDGenerator{},
		issued:      make(map[string]bool),
		logger:      log.Default(),
		subscribers: make(map[int]func(models.Layout)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.resetPalette()
	return s
}

func (s *State) resetPalette() {
	for _, k := range models.Kinds() {
		s.available[k] = true
	}
}

// AddRow appends an empty row and returns its id
func (s *State) AddRow() string {
	id := s.freshID(s.ids.RowID)
	s.rows = append(s.rows, models.Row{ID: id, Components: []models.Component{}})
	s.logger.Debug("row added", "row", id, "rows", len(s.rows))
	s.changed()
	return id
}

// RemoveRow removes the row and returns its kinds to the palette
func (s *State) RemoveRow(rowID string) bool {
	idx := s.RowIndex(rowID)
	if idx < 0 {
		s.logger.Debug("remove row ignored", "row", rowID)
		return false
	}

	removed := s.rows[idx]
	s.rows = slices.Delete(s.rows, idx, idx+1)
	for _, c := range removed.Components {
		s.restoreKind(c.Kind)
	}

	s.logger.Debug("row removed", "row", rowID, "components", len(removed.Components))
	s.changed()
	return true
}

// PlaceComponent appends a new instance of kind to the row. It does nothing
// when the kind is already placed or the row does not exist.
func (s *State) PlaceComponent(rowID string, kind models.Kind) (string, bool) {
	idx := s.RowIndex(rowID)
	if idx < 0 || !s.available[kind] {
		s.logger.Debug("place ignored", "row", rowID, "kind", kind)
		return "", false
	}
	tmpl, ok := models.DefaultTemplate(kind)
	if !ok {
		return "", false
	}

	id := s.freshID(func() string { return s.ids.ComponentID(kind) })
	s.rows[idx].Components = append(s.rows[idx].Components, models.Component{
		ID:     id,
		Kind:   kind,
		Fields: tmpl.Fields,
	})
	delete(s.available, kind)

	s.logger.Debug("component placed", "row", rowID, "component", id, "kind", kind)
	s.changed()
	return id, true
}

// RemoveComponent removes the component from the row. Its kind returns to the
// palette once no other instance of it remains.
func (s *State) RemoveComponent(rowID, componentID string) bool {
	ri := s.RowIndex(rowID)
	if ri < 0 {
		s.logger.Debug("remove component ignored", "row", rowID, "component", componentID)
		return false
	}
	ci := s.ComponentIndex(rowID, componentID)
	if ci < 0 {
		s.logger.Debug("remove component ignored", "row", rowID, "component", componentID)
		return false
	}

	kind := s.rows[ri].Components[ci].Kind
	s.rows[ri].Components = slices.Delete(s.rows[ri].Components, ci, ci+1)
	s.restoreKind(kind)

	s.logger.Debug("component removed", "row", rowID, "component", componentID)
	s.changed()
	return true
}

// ReorderRows moves the row at from to position to
func (s *State) ReorderRows(from, to int) bool {
	rows, ok := MoveElement(s.rows, from, to)
	if !ok {
		return false
	}
	s.rows = rows
	s.logger.Debug("rows reordered", "from", from, "to", to)
	s.changed()
	return true
}

// ReorderComponentsWithinRow moves a component inside one row. Components
// never change rows through a reorder.
func (s *State) ReorderComponentsWithinRow(rowID string, from, to int) bool {
	ri := s.RowIndex(rowID)
	if ri < 0 {
		return false
	}
	comps, ok := MoveElement(s.rows[ri].Components, from, to)
	if !ok {
		return false
	}
	s.rows[ri].Components = comps
	s.logger.Debug("components reordered", "row", rowID, "from", from, "to", to)
	s.changed()
	return true
}

// UpdateComponent replaces the editable fields of a component. Its id and
// kind are left untouched.
func (s *State) UpdateComponent(componentID string, fields models.Fields) bool {
	for ri := range s.rows {
		for ci := range s.rows[ri].Components {
			if s.rows[ri].Components[ci].ID != componentID {
				continue
			}
			s.rows[ri].Components[ci].Fields = fields
			s.logger.Debug("component updated", "component", componentID)
			s.changed()
			return true
		}
	}
	s.logger.Debug("update ignored", "component", componentID)
	return false
}

// ClearAll removes every row and restores the full palette. Ids issued
// before the clear are still never handed out again.
func (s *State) ClearAll() {
	s.rows = models.Layout{}
	s.resetPalette()
	s.logger.Debug("layout cleared")
	s.changed()
}

// restoreKind puts kind back into the palette unless an instance of it is
// still placed somewhere.
func (s *State) restoreKind(kind models.Kind) {
	for _, row := range s.rows {
		for _, c := range row.Components {
			if c.Kind == kind {
				return
			}
		}
	}
	s.available[kind] = true
}

// freshID draws from next until it yields an id this session has never seen
func (s *State) freshID(next func() string) string {
	for {
		id := next()
		if id != "" && !s.issued[id] {
			s.issued[id] = true
			return id
		}
	}
}

func (s *State) changed() {
	s.revision++
	if len(s.subscribers) == 0 {
		return
	}
	keys := make([]int, 0, len(s.subscribers))
	for k := range s.subscribers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if fn, ok := s.subscribers[k]; ok {
			fn(s.Layout())
		}
	}
}

// Subscribe registers fn to receive a snapshot after every mutation. The
// returned function removes the subscription. A nil fn is ignored.
func (s *State) Subscribe(fn func(models.Layout)) func() {
	if fn == nil {
		return func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	return func() { delete(s.subscribers, id) }
}
