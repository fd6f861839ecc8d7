package dnd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/cardform/pkg/layout"
	"github.com/pluqqy/cardform/pkg/models"
	"github.com/pluqqy/cardform/pkg/tui/testhelpers"
)

func newTestCoordinator() (*layout.State, *Coordinator) {
	st := layout.New(layout.WithIDGenerator(&layout.SequenceGenerator{}))
	return st, NewCoordinator(st, nil)
}

func rowIDs(st *layout.State) []string {
	var ids []string
	for _, r := range st.Layout() {
		ids = append(ids, r.ID)
	}
	return ids
}

func componentIDs(st *layout.State, rowID string) []string {
	r, _ := st.Row(rowID)
	var ids []string
	for _, c := range r.Components {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestCoordinator_Phases(t *testing.T) {
	st, c := newTestCoordinator()
	row := st.AddRow()

	assert.Equal(t, Idle, c.Phase())
	_, ok := c.Active()
	assert.False(t, ok)

	c.Start(Palette(models.KindCVV))
	assert.Equal(t, Dragging, c.Phase())
	e, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, PaletteItem, e.Type)

	_, hovered := c.Hover()
	assert.False(t, hovered)
	c.Move(Target{RowID: row})
	h, hovered := c.Hover()
	assert.True(t, hovered)
	assert.Equal(t, row, h.RowID)

	c.Cancel()
	assert.Equal(t, Idle, c.Phase())
	_, hovered = c.Hover()
	assert.False(t, hovered)
}

func TestCoordinator_MoveDoesNotMutate(t *testing.T) {
	st, c := newTestCoordinator()
	a, b := st.AddRow(), st.AddRow()
	rev := st.Revision()

	c.Start(RowOf(a))
	c.Move(Target{RowID: b})
	c.Move(Target{RowID: a})
	c.Move(Target{RowID: b})

	assert.Equal(t, rev, st.Revision())
	assert.Equal(t, []string{a, b}, rowIDs(st))
}

func TestCoordinator_DropPaletteOnRow(t *testing.T) {
	st, c := newTestCoordinator()
	row := st.AddRow()

	c.Start(Palette(models.KindCardNumber))
	outcome := c.Drop(&Target{RowID: row})

	assert.Equal(t, OutcomePlaced, outcome)
	assert.True(t, outcome.Mutated())
	assert.Equal(t, Idle, c.Phase())
	r, _ := st.Row(row)
	require.Len(t, r.Components, 1)
	assert.Equal(t, models.KindCardNumber, r.Components[0].Kind)
}

func TestCoordinator_DropPaletteOnComponentTargetPlacesInItsRow(t *testing.T) {
	st, c := newTestCoordinator()
	row := st.AddRow()
	existing, _ := st.PlaceComponent(row, models.KindCardNumber)

	c.Start(Palette(models.KindCVV))
	outcome := c.Drop(&Target{RowID: row, ComponentID: existing})

	assert.Equal(t, OutcomePlaced, outcome)
	assert.Len(t, componentIDs(st, row), 2)
}

func TestCoordinator_DropPaletteKindAlreadyPlaced(t *testing.T) {
	st, c := newTestCoordinator()
	row := st.AddRow()
	c.Start(Palette(models.KindCVV))
	st.PlaceComponent(row, models.KindCVV)
	rev := st.Revision()

	assert.Equal(t, OutcomeIgnored, c.Drop(&Target{RowID: row}))
	assert.Equal(t, rev, st.Revision())
}

func TestCoordinator_DropRowOnRow(t *testing.T) {
	st, c := newTestCoordinator()
	a, b, d := st.AddRow(), st.AddRow(), st.AddRow()

	c.Start(RowOf(a))
	assert.Equal(t, OutcomeRowsReordered, c.Drop(&Target{RowID: d}))
	assert.Equal(t, []string{b, d, a}, rowIDs(st))

	c.Start(RowOf(a))
	assert.Equal(t, OutcomeIgnored, c.Drop(&Target{RowID: a}), "drop on itself")
}

func TestCoordinator_RowIndicesResolvedAtDrop(t *testing.T) {
	st, c := newTestCoordinator()
	a, b, d := st.AddRow(), st.AddRow(), st.AddRow()

	c.Start(RowOf(d))
	// a row disappears while the gesture is in flight
	st.RemoveRow(a)
	assert.Equal(t, OutcomeRowsReordered, c.Drop(&Target{RowID: b}))
	assert.Equal(t, []string{d, b}, rowIDs(st))
}

func TestCoordinator_DropComponentWithinRow(t *testing.T) {
	st, c := newTestCoordinator()
	row := st.AddRow()
	n, _ := st.PlaceComponent(row, models.KindCardNumber)
	e, _ := st.PlaceComponent(row, models.KindCardExpiry)
	v, _ := st.PlaceComponent(row, models.KindCVV)

	c.Start(ComponentOf(row, v))
	assert.Equal(t, OutcomeComponentsReordered, c.Drop(&Target{RowID: row, ComponentID: n}))
	assert.Equal(t, []string{v, n, e}, componentIDs(st, row))
}

func TestCoordinator_DropComponentOnOwnNonEmptyRowUsesNearestComponent(t *testing.T) {
	st, c := newTestCoordinator()
	row := st.AddRow()
	n, _ := st.PlaceComponent(row, models.KindCardNumber)
	e, _ := st.PlaceComponent(row, models.KindCardExpiry)
	v, _ := st.PlaceComponent(row, models.KindCVV)

	// no hint: the last component is nearest
	c.Start(ComponentOf(row, n))
	assert.Equal(t, OutcomeComponentsReordered, c.Drop(&Target{RowID: row}))
	assert.Equal(t, []string{e, v, n}, componentIDs(st, row))

	// stale hint falls back to the row
	c.Start(ComponentOf(row, e))
	assert.Equal(t, OutcomeComponentsReordered, c.Drop(&Target{RowID: row, ComponentID: "cvv-999"}))
	assert.Equal(t, []string{v, n, e}, componentIDs(st, row))
}

func TestCoordinator_DropComponentInOtherRowIsIgnored(t *testing.T) {
	st, c := newTestCoordinator()
	a, b := st.AddRow(), st.AddRow()
	n, _ := st.PlaceComponent(a, models.KindCardNumber)
	v, _ := st.PlaceComponent(b, models.KindCVV)

	c.Start(ComponentOf(a, n))
	assert.Equal(t, OutcomeIgnored, c.Drop(&Target{RowID: b, ComponentID: v}))

	c.Start(ComponentOf(a, n))
	empty := st.AddRow()
	before := st.Layout()
	assert.Equal(t, OutcomeIgnored, c.Drop(&Target{RowID: empty}))
	assert.Equal(t, before, st.Layout())
}

func TestCoordinator_CancelledDrops(t *testing.T) {
	tests := []struct {
		name  string
		setup func(st *layout.State) (Entity, *Target)
	}{
		{
			name: "nil target",
			setup: func(st *layout.State) (Entity, *Target) {
				return Palette(models.KindCVV), nil
			},
		},
		{
			name: "target row removed",
			setup: func(st *layout.State) (Entity, *Target) {
				row := st.AddRow()
				st.RemoveRow(row)
				return Palette(models.KindCVV), &Target{RowID: row}
			},
		},
		{
			name: "dragged row removed by clear all",
			setup: func(st *layout.State) (Entity, *Target) {
				a := st.AddRow()
				st.ClearAll()
				b := st.AddRow()
				return RowOf(a), &Target{RowID: b}
			},
		},
		{
			name: "dragged component removed",
			setup: func(st *layout.State) (Entity, *Target) {
				row := st.AddRow()
				id, _ := st.PlaceComponent(row, models.KindCVV)
				st.RemoveComponent(row, id)
				return ComponentOf(row, id), &Target{RowID: row}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, c := newTestCoordinator()
			e, target := tt.setup(st)
			before := st.Layout()
			rev := st.Revision()

			c.Start(e)
			outcome := c.Drop(target)

			assert.Equal(t, OutcomeCancelled, outcome)
			assert.False(t, outcome.Mutated())
			assert.Equal(t, Idle, c.Phase())
			assert.Equal(t, rev, st.Revision())
			assert.Equal(t, before, st.Layout())
		})
	}
}

func TestCoordinator_DropWhileIdle(t *testing.T) {
	st, c := newTestCoordinator()
	row := st.AddRow()

	assert.Equal(t, OutcomeCancelled, c.Drop(&Target{RowID: row}))
}

func TestParseID(t *testing.T) {
	st := layout.New(layout.WithIDGenerator(&layout.SequenceGenerator{}))
	row := st.AddRow()
	comp, _ := st.PlaceComponent(row, models.KindCVV)

	tests := []struct {
		name    string
		raw     string
		want    Entity
		wantErr error
	}{
		{"palette entry", PaletteID(models.KindSubmit), Palette(models.KindSubmit), nil},
		{"row", row, RowOf(row), nil},
		{"component", comp, ComponentOf(row, comp), nil},
		{"placed kind", PaletteID(models.KindCVV), Entity{}, ErrUnavailableKind},
		{"unknown kind", "palette-iban", Entity{}, models.ErrUnknownKind},
		{"unknown id", "row-404", Entity{}, ErrUnknownEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.raw, st)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTarget(t *testing.T) {
	st := layout.New(layout.WithIDGenerator(&layout.SequenceGenerator{}))
	row := st.AddRow()
	comp, _ := st.PlaceComponent(row, models.KindCVV)

	got, err := ParseTarget(row, st)
	require.NoError(t, err)
	assert.Equal(t, Target{RowID: row}, got)

	got, err = ParseTarget(comp, st)
	require.NoError(t, err)
	assert.Equal(t, Target{RowID: row, ComponentID: comp}, got)

	_, err = ParseTarget(PaletteID(models.KindSubmit), st)
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestCoordinator_CheckoutForm(t *testing.T) {
	st := testhelpers.CheckoutForm().Build()
	c := NewCoordinator(st, nil)
	require.Equal(t, []string{"row-1", "row-3", "row-6"}, rowIDs(st))

	c.Start(ComponentOf("row-3", "cvv-5"))
	assert.Equal(t, OutcomeComponentsReordered, c.Drop(&Target{RowID: "row-3", ComponentID: "card-expiry-4"}))
	assert.Equal(t, []string{"cvv-5", "card-expiry-4"}, componentIDs(st, "row-3"))

	c.Start(ComponentOf("row-1", "card-number-2"))
	assert.Equal(t, OutcomeIgnored, c.Drop(&Target{RowID: "row-6"}))
	assert.Equal(t, []string{"card-number-2"}, componentIDs(st, "row-1"))

	c.Start(RowOf("row-6"))
	assert.Equal(t, OutcomeRowsReordered, c.Drop(&Target{RowID: "row-1", ComponentID: "card-number-2"}))
	assert.Equal(t, []string{"row-6", "row-1", "row-3"}, rowIDs(st))

	c.Start(Palette(models.KindCardholderName))
	assert.Equal(t, OutcomePlaced, c.Drop(&Target{RowID: "row-3", ComponentID: "cvv-5"}))
	assert.Equal(t, []string{"cvv-5", "card-expiry-4", "cardholder-name-8"}, componentIDs(st, "row-3"))
	assert.Empty(t, st.Palette())
}
