package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ppiankov/evenodd/internal/model"
	"gopkg.in/yaml.v3"
)

// palette holds the text styles; the zero value renders plain text
type palette struct {
	yes   lipgloss.Style
	no    lipgloss.Style
	muted lipgloss.Style
	fail  lipgloss.Style
	title lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{yes: plain, no: plain, muted: plain, fail: plain, title: plain}
	}
	return palette{
		yes:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		no:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		title: lipgloss.NewStyle().Bold(true),
	}
}

// Renderer writes verdicts in the configured format
type Renderer struct {
	format string
	styles palette
}

// NewRenderer creates a renderer for text, json or yaml output
func NewRenderer(format string, color bool) (*Renderer, error) {
	switch format {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
	return &Renderer{format: format, styles: newPalette(color && format == "text")}, nil
}

// RenderEntries writes the verdicts of an even/odd invocation
func (r *Renderer) RenderEntries(w io.Writer, kind string, entries []model.Entry) error {
	switch r.format {
	case "json":
		return writeJSON(w, entries)
	case "yaml":
		return writeYAML(w, entries)
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Input))
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, r.entryLine(kind, width, e)); err != nil {
			return err
		}
	}
	return nil
}

// RenderReport writes a batch report
func (r *Renderer) RenderReport(w io.Writer, report *model.Report) error {
	switch r.format {
	case "json":
		return writeJSON(w, report)
	case "yaml":
		return writeYAML(w, report)
	}

	var b strings.Builder
	rule := strings.Repeat("═", 59)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "  "+r.styles.title.Render("evenodd batch report"))
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "  Run:     %s\n", report.RunID)
	fmt.Fprintf(&b, "  Source:  %s\n", report.Source)
	fmt.Fprintf(&b, "  Kind:    %s\n", report.Kind)
	fmt.Fprintln(&b)

	width := 0
	for _, e := range report.Entries {
		width = max(width, len(e.Input))
	}
	for _, e := range report.Entries {
		fmt.Fprintf(&b, "  %4d  %s\n", e.Line, r.entryLine(report.Kind, width, e))
	}

	t := report.Totals
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "  Inputs:     %d\n", t.Inputs)
	fmt.Fprintf(&b, "  %-10s  %d\n", report.Kind+":", t.Matched)
	fmt.Fprintf(&b, "  %-10s  %d\n", "not "+report.Kind+":", t.Unmatched)
	fmt.Fprintf(&b, "  Rejected:   %d\n", t.Rejected)
	fmt.Fprintf(&b, "  Errors:     %d\n", t.Errored)
	fmt.Fprintf(&b, "  Cache hits: %d\n", t.CacheHits)

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) entryLine(kind string, width int, e model.Entry) string {
	input := fmt.Sprintf("%-*s", width, e.Input)

	switch e.Status {
	case model.StatusError:
		return fmt.Sprintf("%s  %s  %s", input, r.styles.fail.Render("error"), r.styles.muted.Render(e.Error))
	case model.StatusRejected:
		return fmt.Sprintf("%s  %s  %s", input, r.styles.no.Render("false"), r.styles.muted.Render("rejected at "+e.Gate+" gate"))
	}

	verdict := r.styles.no.Render("false")
	if e.Result {
		verdict = r.styles.yes.Render("true")
	}
	note := e.Path
	if e.Cached {
		note += ", cached"
	}
	return fmt.Sprintf("%s  %s %s  %s", input, kind, verdict, r.styles.muted.Render("("+note+")"))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
