package dnd

import (
	"github.com/charmbracelet/log"

	"github.com/pluqqy/cardform/pkg/layout"
)

// Phase is the gesture state
type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// Outcome describes what a finished gesture did to the layout
type Outcome int

const (
	// OutcomeCancelled means the gesture ended without a usable target
	OutcomeCancelled Outcome = iota
	// OutcomeIgnored means the drop was understood but changed nothing
	OutcomeIgnored
	OutcomePlaced
	OutcomeRowsReordered
	OutcomeComponentsReordered
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeIgnored:
		return "ignored"
	case OutcomePlaced:
		return "placed"
	case OutcomeRowsReordered:
		return "rows reordered"
	case OutcomeComponentsReordered:
		return "components reordered"
	}
	return "unknown"
}

// Mutated reports whether the layout changed
func (o Outcome) Mutated() bool {
	return o >= OutcomePlaced
}

// Coordinator runs one gesture at a time against a layout.State. Only Drop
// mutates; Start, Move and Cancel never do.
type Coordinator struct {
	state  *layout.State
	logger *log.Logger

	phase   Phase
	active  Entity
	hover   Target
	hovered bool
}

// NewCoordinator returns an idle coordinator bound to st
func NewCoordinator(st *layout.State, logger *log.Logger) *Coordinator {
	if logger == nil {
		logger = log.Default()
	}
	return &Coordinator{state: st, logger: logger}
}

// Phase returns the current gesture state
func (c *Coordinator) Phase() Phase {
	return c.phase
}

// Active returns the entity being dragged, if any
func (c *Coordinator) Active() (Entity, bool) {
	return c.active, c.phase == Dragging
}

// Hover returns the last target reported by Move during the current gesture
func (c *Coordinator) Hover() (Target, bool) {
	return c.hover, c.phase == Dragging && c.hovered
}

// Start begins a gesture for e. Starting while already dragging abandons the
// previous gesture without changes.
func (c *Coordinator) Start(e Entity) {
	if c.phase == Dragging {
		c.logger.Debug("gesture restarted", "previous", c.active.Type)
	}
	c.phase = Dragging
	c.active = e
	c.hover = Target{}
	c.hovered = false
	c.logger.Debug("gesture started", "type", e.Type, "kind", e.Kind, "row", e.RowID, "component", e.ComponentID)
}

// Move records the target under the cursor for visual feedback only
func (c *Coordinator) Move(t Target) {
	if c.phase != Dragging {
		return
	}
	c.hover = t
	c.hovered = true
}

// Cancel ends the gesture without touching the layout
func (c *Coordinator) Cancel() {
	if c.phase == Dragging {
		c.logger.Debug("gesture cancelled", "type", c.active.Type)
	}
	c.reset()
}

// Drop ends the gesture over t and applies the matching mutation. A nil
// target, a stale target or a stale dragged entity cancels the gesture.
func (c *Coordinator) Drop(t *Target) Outcome {
	if c.phase != Dragging {
		return OutcomeCancelled
	}
	e := c.active
	c.reset()

	if t == nil || c.state.RowIndex(t.RowID) < 0 {
		c.logger.Debug("drop without target", "type", e.Type)
		return OutcomeCancelled
	}

	outcome := c.apply(e, *t)
	c.logger.Debug("drop", "type", e.Type, "target", t.RowID, "outcome", outcome)
	return outcome
}

func (c *Coordinator) apply(e Entity, t Target) Outcome {
	switch e.Type {
	case PaletteItem:
		if _, ok := c.state.PlaceComponent(t.RowID, e.Kind); ok {
			return OutcomePlaced
		}
		return OutcomeIgnored

	case RowEntity:
		// Indices are looked up now, not at Start, so rows added or removed
		// mid-gesture are accounted for.
		from := c.state.RowIndex(e.RowID)
		if from < 0 {
			return OutcomeCancelled
		}
		if c.state.ReorderRows(from, c.state.RowIndex(t.RowID)) {
			return OutcomeRowsReordered
		}
		return OutcomeIgnored

	case ComponentEntity:
		owner, _, ok := c.state.FindComponent(e.ComponentID)
		if !ok {
			return OutcomeCancelled
		}
		if owner != t.RowID {
			// Components only move between rows through remove and place.
			return OutcomeIgnored
		}
		from := c.state.ComponentIndex(owner, e.ComponentID)
		to := c.nearestIndex(t)
		if c.state.ReorderComponentsWithinRow(owner, from, to) {
			return OutcomeComponentsReordered
		}
		return OutcomeIgnored
	}
	return OutcomeCancelled
}

// nearestIndex resolves a target inside a non-empty row to a component
// position: the hinted component when it still exists, otherwise the last one.
func (c *Coordinator) nearestIndex(t Target) int {
	if t.ComponentID != "" {
		if idx := c.state.ComponentIndex(t.RowID, t.ComponentID); idx >= 0 {
			return idx
		}
	}
	row, _ := c.state.Row(t.RowID)
	return len(row.Components) - 1
}

func (c *Coordinator) reset() {
	c.phase = Idle
	c.active = Entity{}
	c.hover = Target{}
	c.hovered = false
}
