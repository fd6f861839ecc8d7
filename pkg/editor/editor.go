// Package editor holds the draft session used to edit one placed component's
// literal attributes before they are written back to the layout.
package editor

import (
	"errors"
	"fmt"

	"github.com/pluqqy/cardform/pkg/models"
)

var (
	// ErrNoSession is returned when a draft is edited without an open session
	ErrNoSession = errors.New("no component is being edited")

	// ErrFieldHidden is returned for a field the component's kind does not offer
	ErrFieldHidden = errors.New("field is not editable for this component")
)

// Committer receives the draft when a session is committed. *layout.State
// satisfies it.
type Committer interface {
	UpdateComponent(componentID string, fields models.Fields) bool
}

// ConfigEditor edits a copy of a component. Nothing reaches the layout until
// Commit.
type ConfigEditor struct {
	target    Committer
	active    bool
	component models.Component
	draft     models.Fields
}

// New returns an editor with no open session
func New(target Committer) *ConfigEditor {
	return &ConfigEditor{target: target}
}

// Open starts a session seeded from the component's current values,
// replacing any session already open
func (e *ConfigEditor) Open(c models.Component) {
	e.active = true
	e.component = c
	e.draft = c.Fields
}

// Active reports whether a session is open
func (e *ConfigEditor) Active() bool {
	return e.active
}

// Component returns the component being edited as it was when opened
func (e *ConfigEditor) Component() models.Component {
	return e.component
}

// Draft returns the current draft values
func (e *ConfigEditor) Draft() models.Fields {
	return e.draft
}

// Fields returns the fields offered for the component being edited
func (e *ConfigEditor) Fields() []models.Field {
	if !e.active {
		return nil
	}
	return models.VisibleFields(e.component.Kind)
}

// SetField changes one draft value
func (e *ConfigEditor) SetField(f models.Field, value string) error {
	if !e.active {
		return ErrNoSession
	}
	if !models.FieldVisible(e.component.Kind, f) {
		return fmt.Errorf("%w: %s on %s", ErrFieldHidden, f, e.component.Kind)
	}
	e.draft = e.draft.With(f, value)
	return nil
}

// Commit writes the draft to the layout and closes the session. It reports
// whether the layout accepted the update; a component removed while the
// session was open is simply not updated.
func (e *ConfigEditor) Commit() bool {
	if !e.active {
		return false
	}
	id, draft := e.component.ID, e.draft
	e.close()
	return e.target.UpdateComponent(id, draft)
}

// Cancel discards the draft and closes the session
func (e *ConfigEditor) Cancel() {
	e.close()
}

func (e *ConfigEditor) close() {
	e.active = false
	e.component = models.Component{}
	e.draft = models.Fields{}
}
