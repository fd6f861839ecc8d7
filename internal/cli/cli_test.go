package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/cardform/pkg/models"
)

func TestParseRows(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    [][]models.Kind
		wantErr string
	}{
		{
			name: "single and multi component rows",
			args: []string{"card-number", "card-expiry,cvv", "submit"},
			want: [][]models.Kind{
				{models.KindCardNumber},
				{models.KindCardExpiry, models.KindCVV},
				{models.KindSubmit},
			},
		},
		{
			name: "whitespace and empty parts are ignored",
			args: []string{" card-number , cvv ,", ""},
			want: [][]models.Kind{
				{models.KindCardNumber, models.KindCVV},
				nil,
			},
		},
		{
			name:    "unknown kind",
			args:    []string{"card-number,iban"},
			wantErr: "row 1",
		},
		{
			name:    "kind used twice",
			args:    []string{"cvv", "card-number,cvv"},
			wantErr: "already placed in row 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRows(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRowsUnknownKindWrapsSentinel(t *testing.T) {
	_, err := ParseRows([]string{"iban"})
	assert.ErrorIs(t, err, models.ErrUnknownKind)
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(f), f)
	}
	assert.Error(t, ValidateOutputFormat("xml"))
}

func TestOutputResults(t *testing.T) {
	data := map[string]string{"kind": "cvv"}

	var buf bytes.Buffer
	require.NoError(t, OutputResults(&buf, "yaml", data))
	assert.Equal(t, "kind: cvv\n", buf.String())

	buf.Reset()
	require.NoError(t, OutputResults(&buf, "json", data))
	assert.JSONEq(t, `{"kind":"cvv"}`, buf.String())

	assert.Error(t, OutputResults(&buf, "xml", data))
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("KIND", "LABEL")
	table.Row("cvv", "CVV")
	require.NoError(t, table.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "KIND"))
	assert.True(t, strings.HasPrefix(lines[2], "cvv"))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "long te...", TruncateString("long text here", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestPrintHelpersRespectQuiet(t *testing.T) {
	defer SetGlobalFlags(false, false, false)

	var buf bytes.Buffer
	SetGlobalFlags(true, false, false)
	PrintSuccess(&buf, "done")
	PrintInfo(&buf, "info")
	assert.Empty(t, buf.String())

	PrintWarning(&buf, "careful")
	assert.Equal(t, "⚠ careful\n", buf.String())

	buf.Reset()
	SetGlobalFlags(false, true, false)
	PrintSuccess(&buf, "saved %s", "settings")
	assert.Equal(t, "OK: saved settings\n", buf.String())
}

func TestConfirm(t *testing.T) {
	defer SetGlobalFlags(false, false, false)

	tests := []struct {
		input      string
		defaultYes bool
		want       bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"y", false, true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := Confirm(strings.NewReader(tt.input), &out, "Overwrite?", tt.defaultYes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, out.String(), "Overwrite?")
	}

	SetGlobalFlags(false, false, true)
	got, err := Confirm(strings.NewReader(""), &bytes.Buffer{}, "Overwrite?", false)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, log.DebugLevel)

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, LoggerFromContext(ctx))
	assert.Same(t, log.Default(), LoggerFromContext(context.Background()))

	LoggerFromContext(ctx).Debug("placed", "kind", "cvv")
	assert.Contains(t, buf.String(), "placed")
	assert.Contains(t, buf.String(), "kind=cvv")
}

func TestNewLoggerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, log.InfoLevel)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())
	logger.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}
