package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/scalarguard/pkg/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failing(t *testing.T) (scalar.Result, error) {
	t.Helper()
	spec := scalar.NewTypeSpec().Field("count", "int").Field("name", "string")
	params := scalar.NamedParams(map[string]any{"count": "3", "name": 4})
	res, err := scalar.Check(params, spec, scalar.DefaultOptions())
	require.NoError(t, err)
	return res, res.Err()
}

func TestReport_Document(t *testing.T) {
	t.Run("Pass", func(t *testing.T) {
		var buf bytes.Buffer
		NewReport(&buf).Document("ok.yaml", scalar.Result{}, nil)
		assert.Equal(t, "✓ ok.yaml\n", buf.String())
	})

	t.Run("Failures", func(t *testing.T) {
		var buf bytes.Buffer
		res, err := failing(t)
		NewReport(&buf).Document("args.yaml", res, err)

		out := buf.String()
		assert.Contains(t, out, "✗ args.yaml: 2 failures")
		assert.Contains(t, out, "'count' expected int, string given")
		assert.Contains(t, out, "'name' expected string, int given")
	})

	t.Run("Config error", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := scalar.Check(scalar.Args(1), scalar.Positional("nope"), scalar.DefaultOptions())
		NewReport(&buf).Document("bad.yaml", scalar.Result{}, err)
		assert.Contains(t, buf.String(), "! bad.yaml: Scalar Enforce Call-Error: Unrecognized Scalar Type 'nope'.")
	})
}

func TestMarkdown(t *testing.T) {
	res, err := failing(t)
	md := Markdown("args.yaml", res, err)
	assert.Contains(t, md, "## args.yaml")
	assert.Contains(t, md, "| `count` | int | string |")

	assert.Contains(t, Markdown("ok.yaml", scalar.Result{}, nil), "All declared keys match.")
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer("notty")
	require.NoError(t, err)

	res, verr := failing(t)
	out, err := render(Markdown("args.yaml", res, verr))
	require.NoError(t, err)
	assert.Contains(t, out, "args.yaml")
	assert.Contains(t, out, "count")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "v1.2.3")
	assert.Contains(t, buf.String(), "scalarguard v1.2.3")
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain", "args.yaml", "args.yaml"},
		{"Unicode", "café ✓", "café ✓"},
		{"ANSI escape", "\x1b[31mred", "[31mred"},
		{"Line break", "a\nb\r", "ab"},
		{"Tab", "a\tb", "a b"},
		{"Invalid UTF-8", "a\xffb", "a�b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize(tt.input))
		})
	}
}

func TestReport_Document_SanitizesKeys(t *testing.T) {
	spec := scalar.NewTypeSpec().Field("bad\x1b[2Jkey", "int")
	res, err := scalar.Check(scalar.NamedParams(map[string]any{"bad\x1b[2Jkey": "x"}), spec, scalar.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	NewReport(&buf).Document("doc\x07.yaml", res, res.Err())
	assert.NotContains(t, buf.String(), "\x1b")
	assert.NotContains(t, buf.String(), "\x07")
	assert.Contains(t, buf.String(), "✗ doc.yaml: 1 failure")
}

func TestReport_Document_SanitizesConfigErrors(t *testing.T) {
	_, err := scalar.Check(scalar.Args(1), scalar.Positional("bad\x1b[2Jtag"), scalar.DefaultOptions())
	require.ErrorIs(t, err, scalar.ErrConfig)

	var buf bytes.Buffer
	NewReport(&buf).Document("bad.yaml", scalar.Result{}, err)
	assert.NotContains(t, buf.String(), "\x1b")
	assert.Contains(t, buf.String(), "Unrecognized Scalar Type 'bad[2jtag'.")
}

func TestMarkdown_Sanitizes(t *testing.T) {
	spec := scalar.NewTypeSpec().Field("k\x1b[2J", "int")
	res, err := scalar.Check(scalar.NamedParams(map[string]any{"k\x1b[2J": "x"}), spec, scalar.DefaultOptions())
	require.NoError(t, err)

	md := Markdown("doc\x1b[31m.yaml", res, res.Err())
	assert.NotContains(t, md, "\x1b")
	assert.Contains(t, md, "## doc[31m.yaml")
	assert.Contains(t, md, "| `k[2J` | int | string |")

	render, rerr := NewRenderer("notty")
	require.NoError(t, rerr)
	out, rerr := render(md)
	require.NoError(t, rerr)
	assert.NotContains(t, out, "doc\x1b[31m.yaml")
	assert.NotContains(t, out, "k\x1b[2J")

	_, cfgErr := scalar.Check(scalar.Args(1), scalar.Positional("bad\x07tag"), scalar.DefaultOptions())
	require.Error(t, cfgErr)
	assert.NotContains(t, Markdown("bad.yaml", scalar.Result{}, cfgErr), "\x07")
}
