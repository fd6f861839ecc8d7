package models

// DefaultTemplate returns the default values for kind. The second value is false
// for a kind outside the palette.
func DefaultTemplate(kind Kind) (Template, bool) {
	switch kind {
	case KindCardNumber:
		return Template{Kind: kind, Fields: Fields{
			Label:       "Card Number",
			Placeholder: "4111 1111 1111 1111",
			AriaLabel:   "Card Number",
		}}, true
	case KindCardExpiry:
		return Template{Kind: kind, Fields: Fields{
			Label:       "Expiry Date",
			Placeholder: "MM/YY",
			AriaLabel:   "Expiry Date",
		}}, true
	case KindCVV:
		return Template{Kind: kind, Fields: Fields{
			Label:       "CVV",
			Placeholder: "123",
			AriaLabel:   "CVV",
		}}, true
	case KindCardholderName:
		return Template{Kind: kind, Fields: Fields{
			Label:       "Cardholder Name",
			Placeholder: "Name on card",
			AriaLabel:   "Cardholder Name",
		}}, true
	case KindSubmit:
		return Template{Kind: kind, Fields: Fields{
			Label:      "Submit Button",
			ButtonText: "Pay",
		}}, true
	}
	return Template{}, false
}

// DefaultPalette returns a template for every kind in palette order
func DefaultPalette() []Template {
	kinds := Kinds()
	out := make([]Template, 0, len(kinds))
	for _, k := range kinds {
		t, _ := DefaultTemplate(k)
		out = append(out, t)
	}
	return out
}

// TagName returns the custom element emitted for kind in generated markup
func TagName(kind Kind) string {
	switch kind {
	case KindCardNumber:
		return "primer-input-card-number"
	case KindCardExpiry:
		return "primer-input-card-expiry"
	case KindCVV:
		return "primer-input-cvv"
	case KindCardholderName:
		return "primer-input-card-holder-name"
	case KindSubmit:
		return "primer-card-form-submit"
	}
	return ""
}

// VisibleFields returns the editable fields shown for kind, in form order.
// Placeholder is hidden for submit and button text is only offered for submit.
func VisibleFields(kind Kind) []Field {
	if kind == KindSubmit {
		return []Field{FieldLabel, FieldAriaLabel, FieldButtonText}
	}
	return []Field{FieldLabel, FieldPlaceholder, FieldAriaLabel}
}

// FieldVisible reports whether f is editable for kind
func FieldVisible(kind Kind, f Field) bool {
	for _, v := range VisibleFields(kind) {
		if v == f {
			return true
		}
	}
	return false
}

// DisplayName returns a human readable label for a field
func (f Field) DisplayName() string {
	switch f {
	case FieldLabel:
		return "Label"
	case FieldPlaceholder:
		return "Placeholder"
	case FieldAriaLabel:
		return "Aria Label"
	case FieldButtonText:
		return "Button Text"
	}
	return string(f)
}
