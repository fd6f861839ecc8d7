package layout

import "github.com/pluqqy/cardform/pkg/models"

// Layout returns a deep copy of the current rows
func (s *State) Layout() models.Layout {
	return s.rows.Clone()
}

// Palette returns the templates still available for placement, in palette order
func (s *State) Palette() []models.Template {
	var out []models.Template
	for _, t := range models.DefaultPalette() {
		if s.available[t.Kind] {
			out = append(out, t)
		}
	}
	return out
}

// Available reports whether kind can still be placed
func (s *State) Available(kind models.Kind) bool {
	return s.available[kind]
}

// Revision increases by one with every successful mutation
func (s *State) Revision() uint64 {
	return s.revision
}

// RowCount returns the number of rows
func (s *State) RowCount() int {
	return len(s.rows)
}

// RowIndex returns the position of the row, or -1
func (s *State) RowIndex(rowID string) int {
	for i, row := range s.rows {
		if row.ID == rowID {
			return i
		}
	}
	return -1
}

// Row returns a copy of the row with the given id
func (s *State) Row(rowID string) (models.Row, bool) {
	idx := s.RowIndex(rowID)
	if idx < 0 {
		return models.Row{}, false
	}
	row := s.rows[idx]
	comps := make([]models.Component, len(row.Components))
	copy(comps, row.Components)
	return models.Row{ID: row.ID, Components: comps}, true
}

// ComponentIndex returns the position of a component inside its row, or -1
func (s *State) ComponentIndex(rowID, componentID string) int {
	idx := s.RowIndex(rowID)
	if idx < 0 {
		return -1
	}
	for i, c := range s.rows[idx].Components {
		if c.ID == componentID {
			return i
		}
	}
	return -1
}

// FindComponent locates a component anywhere in the layout and returns the
// id of the row that owns it.
func (s *State) FindComponent(componentID string) (string, models.Component, bool) {
	for _, row := range s.rows {
		for _, c := range row.Components {
			if c.ID == componentID {
				return row.ID, c, true
			}
		}
	}
	return "", models.Component{}, false
}
