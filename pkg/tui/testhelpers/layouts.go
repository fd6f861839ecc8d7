package testhelpers

import (
	"github.com/pluqqy/cardform/pkg/layout"
	"github.com/pluqqy/cardform/pkg/models"
)

// LayoutBuilder provides a fluent interface for building test layouts
type LayoutBuilder struct {
	rows [][]models.Kind
	opts []layout.Option
}

// NewLayoutBuilder starts an empty layout with sequential ids (row-1, cvv-2, ...)
func NewLayoutBuilder() *LayoutBuilder {
	return &LayoutBuilder{
		opts: []layout.Option{layout.WithIDGenerator(&layout.SequenceGenerator{})},
	}
}

// Row appends a row holding kinds in order
func (b *LayoutBuilder) Row(kinds ...models.Kind) *LayoutBuilder {
	b.rows = append(b.rows, kinds)
	return b
}

// With adds state options, applied after the sequential id generator
func (b *LayoutBuilder) With(opts ...layout.Option) *LayoutBuilder {
	b.opts = append(b.opts, opts...)
	return b
}

// Build applies the rows to a fresh state. It panics when a kind is placed
// twice, since that is a broken fixture rather than a test outcome.
func (b *LayoutBuilder) Build() *layout.State {
	return b.Apply(layout.New(b.opts...))
}

// Apply places the rows on an existing state
func (b *LayoutBuilder) Apply(st *layout.State) *layout.State {
	for _, kinds := range b.rows {
		rowID := st.AddRow()
		for _, kind := range kinds {
			if _, ok := st.PlaceComponent(rowID, kind); !ok {
				panic("testhelpers: cannot place " + string(kind))
			}
		}
	}
	return st
}

// CheckoutForm returns the usual three row layout: number, expiry and cvv
// side by side, then submit
func CheckoutForm() *LayoutBuilder {
	return NewLayoutBuilder().
		Row(models.KindCardNumber).
		Row(models.KindCardExpiry, models.KindCVV).
		Row(models.KindSubmit)
}

// ComponentIDs lists every component id in layout order
func ComponentIDs(l models.Layout) []string {
	var ids []string
	for _, row := range l {
		for _, c := range row.Components {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
