// Package dnd interprets drag gestures over the builder and turns a completed
// drop into exactly one structural change on a layout.State.
//
// Gesture payloads arrive as loosely shaped ids from the UI. They are parsed
// into an Entity at this boundary; nothing past the Coordinator ever sees a
// raw id.
package dnd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pluqqy/cardform/pkg/layout"
	"github.com/pluqqy/cardform/pkg/models"
)

// PaletteIDPrefix marks gesture ids that refer to a palette template
const PaletteIDPrefix = "palette-"

var (
	// ErrUnknownEntity is returned when a gesture id matches no row, component or palette entry
	ErrUnknownEntity = errors.New("unknown drag entity")

	// ErrUnavailableKind is returned when a palette id names a kind that is already placed
	ErrUnavailableKind = errors.New("kind is not in the palette")
)

// EntityType tags which variant an Entity holds
type EntityType int

const (
	PaletteItem EntityType = iota
	RowEntity
	ComponentEntity
)

func (t EntityType) String() string {
	switch t {
	case PaletteItem:
		return "palette-item"
	case RowEntity:
		return "row"
	case ComponentEntity:
		return "component"
	}
	return fmt.Sprintf("EntityType(%d)", int(t))
}

// Entity is the thing being dragged. Kind is set for palette items, RowID for
// rows and components, ComponentID for components.
type Entity struct {
	Type        EntityType
	Kind        models.Kind
	RowID       string
	ComponentID string
}

// Palette returns an entity for a palette template
func Palette(kind models.Kind) Entity {
	return Entity{Type: PaletteItem, Kind: kind}
}

// RowOf returns an entity for a whole row
func RowOf(rowID string) Entity {
	return Entity{Type: RowEntity, RowID: rowID}
}

// ComponentOf returns an entity for a placed component
func ComponentOf(rowID, componentID string) Entity {
	return Entity{Type: ComponentEntity, RowID: rowID, ComponentID: componentID}
}

// PaletteID returns the gesture id used for a palette entry
func PaletteID(kind models.Kind) string {
	return PaletteIDPrefix + string(kind)
}

// ParseID validates a raw gesture id against the current state
func ParseID(raw string, st *layout.State) (Entity, error) {
	if rest, ok := strings.CutPrefix(raw, PaletteIDPrefix); ok {
		kind, err := models.ParseKind(rest)
		if err != nil {
			return Entity{}, err
		}
		if !st.Available(kind) {
			return Entity{}, fmt.Errorf("%w: %s", ErrUnavailableKind, kind)
		}
		return Palette(kind), nil
	}

	if st.RowIndex(raw) >= 0 {
		return RowOf(raw), nil
	}

	if rowID, _, ok := st.FindComponent(raw); ok {
		return ComponentOf(rowID, raw), nil
	}

	return Entity{}, fmt.Errorf("%w: %q", ErrUnknownEntity, raw)
}

// Target is a drop location: a row, optionally narrowed to the component
// nearest to the pointer or keyboard cursor inside it.
type Target struct {
	RowID       string
	ComponentID string
}

// ParseTarget validates a raw drop target id. A row id targets the row, a
// component id targets that component inside its row.
func ParseTarget(raw string, st *layout.State) (Target, error) {
	if st.RowIndex(raw) >= 0 {
		return Target{RowID: raw}, nil
	}
	if rowID, _, ok := st.FindComponent(raw); ok {
		return Target{RowID: rowID, ComponentID: raw}, nil
	}
	return Target{}, fmt.Errorf("%w: %q", ErrUnknownEntity, raw)
}
