package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/evenodd/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEvenCommand(t *testing.T) {
	out, err := execute(t, "even", "4", "7", "banana", "--color=false")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "even true")
	assert.Contains(t, lines[1], "even false")
	assert.Contains(t, lines[2], "rejected at type gate")
}

func TestEvenCommand_BlankAndSeparatedLiterals(t *testing.T) {
	out, err := execute(t, "even", "", "1_000", "--color=false")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, "rejected at type gate")
	}
}

func TestOddCommand_ThrowOnNonInteger(t *testing.T) {
	_, err := execute(t, "odd", "2.5", "--throw-on-non-integer", "--color=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an integer")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestRenderer_UnknownFormat(t *testing.T) {
	_, err := NewRenderer("xml", false)
	assert.Error(t, err)
}

func TestRenderer_Entries(t *testing.T) {
	entries := []model.Entry{
		{Line: 1, Input: "10", Result: true, Status: model.StatusClassified, Path: "primary"},
		{Line: 2, Input: "NaN", Status: model.StatusError, Gate: "nan", Error: "boom"},
		{Line: 3, Input: "1.5", Status: model.StatusRejected, Gate: "integer"},
	}

	r, err := NewRenderer("text", false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderEntries(&buf, "even", entries))
	assert.Equal(t, "10   even true  (primary)\nNaN  error  boom\n1.5  false  rejected at integer gate\n", buf.String())

	r, _ = NewRenderer("json", true)
	buf.Reset()
	require.NoError(t, r.RenderEntries(&buf, "even", entries))

	var decoded []model.Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, entries, decoded)
}

func TestRenderer_ReportYAML(t *testing.T) {
	report := &model.Report{
		RunID:   "run-1",
		Kind:    "odd",
		Totals:  model.Totals{Inputs: 1, Matched: 1},
		Entries: []model.Entry{{Line: 1, Input: "3", Result: true, Status: model.StatusClassified}},
	}

	r, err := NewRenderer("yaml", false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderReport(&buf, report))
	assert.Contains(t, buf.String(), "run_id: run-1")
	assert.Contains(t, buf.String(), "matched: 1")
}

func TestRenderer_ReportText(t *testing.T) {
	report := &model.Report{
		RunID:   "run-2",
		Kind:    "even",
		Totals:  model.Totals{Inputs: 2, Matched: 1, CacheHits: 1},
		Entries: []model.Entry{{Line: 4, Input: "2", Result: true, Status: model.StatusClassified, Path: "primary", Cached: true}},
	}

	r, _ := NewRenderer("text", false)
	var buf bytes.Buffer
	require.NoError(t, r.RenderReport(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "run-2")
	assert.Contains(t, out, "(primary, cached)")
	assert.Contains(t, out, "Cache hits: 1")
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "values.txt")
	reportPath := filepath.Join(dir, "report.yaml")
	require.NoError(t, os.WriteFile(input, []byte("# values\n1\n2\n3\n3\n"), 0644))

	_, err := execute(t, "batch", input, "--kind", "odd", "-o", "yaml", "--report", reportPath)
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var report model.Report
	require.NoError(t, yaml.Unmarshal(data, &report))
	assert.Equal(t, "odd", report.Kind)
	assert.Equal(t, input, report.Source)
	assert.Equal(t, model.Totals{Inputs: 4, Matched: 3, Unmatched: 1, CacheHits: 1}, report.Totals)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, writeDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# evenodd configuration file"))

	var cfg model.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, model.DefaultMaxDepth, cfg.Engine.MaxDepth)
	assert.Equal(t, "text", cfg.Output.Format)

	assert.Error(t, writeDefaultConfig(path), "existing file must not be overwritten")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
