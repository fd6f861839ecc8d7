package testhelpers

import (
	"strings"
	"testing"
)

// AssertViewContains checks if a view contains expected text
func AssertViewContains(t *testing.T, view, expected string) {
	t.Helper()

	if !strings.Contains(view, expected) {
		t.Errorf("View does not contain expected text: %q\nView:\n%s", expected, view)
	}
}

// AssertViewNotContains checks if a view does not contain certain text
func AssertViewNotContains(t *testing.T, view, unexpected string) {
	t.Helper()

	if strings.Contains(view, unexpected) {
		t.Errorf("View unexpectedly contains text: %q\nView:\n%s", unexpected, view)
	}
}
