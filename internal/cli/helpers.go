package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prompts on w and reads the answer from r
func Confirm(r io.Reader, w io.Writer, prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	fmt.Fprint(w, prompt+suffix)

	reader := bufio.NewReader(r)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))

	if response == "" {
		return defaultYes, nil
	}

	return response == "y" || response == "yes", nil
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(w io.Writer, format string, args ...interface{}) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(w, "✓ %s\n", msg)
	} else {
		fmt.Fprintf(w, "OK: %s\n", msg)
	}
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(w io.Writer, format string, args ...interface{}) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(w, "ℹ %s\n", msg)
	} else {
		fmt.Fprintf(w, "INFO: %s\n", msg)
	}
}

// PrintWarning prints a warning message, even in quiet mode
func PrintWarning(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(w, "⚠ %s\n", msg)
	} else {
		fmt.Fprintf(w, "WARNING: %s\n", msg)
	}
}

// Global flags (will be set from cmd package)
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}
