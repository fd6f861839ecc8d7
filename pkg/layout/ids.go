package layout

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pluqqy/cardform/pkg/models"
)

// RowIDPrefix starts every row id. Gesture payloads rely on it to tell rows
// apart from components.
const RowIDPrefix = "row-"

// IDGenerator produces opaque identifiers for rows and placed components
type IDGenerator interface {
	RowID() string
	ComponentID(kind models.Kind) string
}

// UUIDGenerator issues random ids such as "row-<uuid>" and "cvv-<uuid>"
type UUIDGenerator struct{}

func (UUIDGenerator) RowID() string {
	return RowIDPrefix + uuid.NewString()
}

func (UUIDGenerator) ComponentID(kind models.Kind) string {
	return string(kind) + "-" + uuid.NewString()
}

// SequenceGenerator issues ids from a counter ("row-1", "cvv-2", ...). It gives
// stable ids for tests and for non-interactive composition.
type SequenceGenerator struct {
	n int
}

func (g *SequenceGenerator) RowID() string {
	g.n++
	return fmt.Sprintf("%s%d", RowIDPrefix, g.n)
}

func (g *SequenceGenerator) ComponentID(kind models.Kind) string {
	g.n++
	return fmt.Sprintf("%s-%d", kind, g.n)
}
