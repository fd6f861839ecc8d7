package models

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a string does not name a palette kind
var ErrUnknownKind = errors.New("unknown component kind")

// Kind identifies one of the fixed card form field categories
type Kind string

const (
	KindCardNumber     Kind = "card-number"
	KindCardExpiry     Kind = "card-expiry"
	KindCVV            Kind = "cvv"
	KindCardholderName Kind = "cardholder-name"
	KindSubmit         Kind = "submit"
)

// Kinds returns every kind in palette order
func Kinds() []Kind {
	return []Kind{KindCardNumber, KindCardExpiry, KindCVV, KindCardholderName, KindSubmit}
}

// ParseKind validates s against the closed set of kinds
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Field names one editable attribute of a placed component
type Field string

const (
	FieldLabel       Field = "label"
	FieldPlaceholder Field = "placeholder"
	FieldAriaLabel   Field = "aria-label"
	FieldButtonText  Field = "button-text"
)

// Fields holds the editable literal attributes of a component
type Fields struct {
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder,omitempty"`
	AriaLabel   string `yaml:"aria_label,omitempty"`
	ButtonText  string `yaml:"button_text,omitempty"`
}

// Get returns the value stored for f
func (fs Fields) Get(f Field) string {
	switch f {
	case FieldLabel:
		return fs.Label
	case FieldPlaceholder:
		return fs.Placeholder
	case FieldAriaLabel:
		return fs.AriaLabel
	case FieldButtonText:
		return fs.ButtonText
	}
	return ""
}

// With returns a copy of fs with f set to value
func (fs Fields) With(f Field, value string) Fields {
	switch f {
	case FieldLabel:
		fs.Label = value
	case FieldPlaceholder:
		fs.Placeholder = value
	case FieldAriaLabel:
		fs.AriaLabel = value
	case FieldButtonText:
		fs.ButtonText = value
	}
	return fs
}

// Template is the immutable default definition of a kind, as shown in the palette
type Template struct {
	Kind   Kind   `yaml:"kind"`
	Fields `yaml:",inline"`
}

// Component is a placed, independently editable copy of a template
type Component struct {
	ID     string `yaml:"id"`
	Kind   Kind   `yaml:"kind"`
	Fields `yaml:",inline"`
}

// Row is an ordered container of components
type Row struct {
	ID         string      `yaml:"id"`
	Components []Component `yaml:"components"`
}

// Layout is the ordered collection of rows that makes up the card form
type Layout []Row

// Clone returns a deep copy so callers can hold a snapshot across mutations
func (l Layout) Clone() Layout {
	if l == nil {
		return Layout{}
	}
	out := make(Layout, len(l))
	for i, row := range l {
		comps := make([]Component, len(row.Components))
		copy(comps, row.Components)
		out[i] = Row{ID: row.ID, Components: comps}
	}
	return out
}

// Kinds returns the kinds placed anywhere in the layout, in layout order
func (l Layout) Kinds() []Kind {
	var kinds []Kind
	for _, row := range l {
		for _, c := range row.Components {
			kinds = append(kinds, c.Kind)
		}
	}
	return kinds
}
