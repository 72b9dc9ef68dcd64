package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/compare"
	"github.com/dotcommander/stackpick/internal/preset"
	"github.com/dotcommander/stackpick/internal/ranking"
	"github.com/dotcommander/stackpick/internal/recommend"
)

// MarkdownFormatter renders reports as Markdown
type MarkdownFormatter struct {
	w    io.Writer
	opts Options
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(w io.Writer, opts Options) *MarkdownFormatter {
	return &MarkdownFormatter{w: w, opts: opts}
}

// Recommendation writes the recommend report.
func (f *MarkdownFormatter) Recommendation(r *recommend.Result) error {
	var builder strings.Builder
	winner := r.Winner.Framework

	builder.WriteString("# Recommendation\n\n")
	writePreset(&builder, r.Preset)

	builder.WriteString(fmt.Sprintf("## %s\n\n", winner.Name))
	builder.WriteString(fmt.Sprintf("**Score:** %d\n\n", r.Winner.Score))
	if winner.Tagline != "" {
		builder.WriteString(fmt.Sprintf("*%s*\n\n", winner.Tagline))
	}
	if len(r.Chips) > 0 {
		chips := make([]string, len(r.Chips))
		for i, c := range r.Chips {
			chips[i] = "`" + c + "`"
		}
		builder.WriteString(strings.Join(chips, " ") + "\n\n")
	}
	builder.WriteString(r.Explanation + "\n\n")

	if len(r.RunnersUp) > 0 {
		builder.WriteString("## Runners-up\n\n")
		writeEntryTable(&builder, r.RunnersUp)
	}

	if f.opts.ShowBreakdown {
		builder.WriteString("## Score Breakdown\n\n")
		builder.WriteString("| Group | Term | Points |\n")
		builder.WriteString("|-------|------|--------|\n")
		for _, c := range r.Breakdown.Details {
			builder.WriteString(fmt.Sprintf("| %s | %s | %+.2f |\n", c.Group, c.Name, c.Points))
		}
		builder.WriteString(fmt.Sprintf("| **total** | | **%d** (%.2f) |\n\n", r.Breakdown.Total, r.Breakdown.Raw))
	}

	return f.write(builder.String())
}

// Ranking writes the full ranking as a table.
func (f *MarkdownFormatter) Ranking(p preset.Preset, entries []ranking.ScoredEntry) error {
	var builder strings.Builder

	builder.WriteString("# Ranking\n\n")
	writePreset(&builder, p)
	writeEntryTable(&builder, entries)

	return f.write(builder.String())
}

// Comparison writes the metric table, leaders in bold.
func (f *MarkdownFormatter) Comparison(c *compare.Comparison) error {
	var builder strings.Builder

	builder.WriteString("# Comparison\n\n")
	builder.WriteString("| Metric |")
	sep := "|--------|"
	for _, fw := range c.Frameworks {
		builder.WriteString(fmt.Sprintf(" %s |", fw.Name))
		sep += "------|"
	}
	builder.WriteString("\n" + sep + "\n")

	for r, row := range c.Rows {
		builder.WriteString(fmt.Sprintf("| %s |", row.Label))
		for i, v := range row.Values {
			if leads(c, r, i) {
				builder.WriteString(fmt.Sprintf(" **%d** |", v))
			} else {
				builder.WriteString(fmt.Sprintf(" %d |", v))
			}
		}
		builder.WriteString("\n")
	}
	builder.WriteString("| Average |")
	for _, a := range c.Averages {
		builder.WriteString(fmt.Sprintf(" %.1f |", a))
	}
	builder.WriteString("\n")

	return f.write(builder.String())
}

// Catalog writes the catalog as a table.
func (f *MarkdownFormatter) Catalog(source string, frameworks []catalog.Framework) error {
	var builder strings.Builder

	builder.WriteString("# Catalog\n\n")
	builder.WriteString(fmt.Sprintf("**Source:** %s\n\n", source))
	builder.WriteString("| ID | Name | Category |")
	sep := "|----|------|----------|"
	for _, m := range catalog.Metrics {
		builder.WriteString(fmt.Sprintf(" %s |", m.Label()))
		sep += "------|"
	}
	builder.WriteString("\n" + sep + "\n")

	for _, fw := range frameworks {
		builder.WriteString(fmt.Sprintf("| `%s` | %s | %s |", fw.ID, fw.Name, fw.Category))
		for _, m := range catalog.Metrics {
			builder.WriteString(fmt.Sprintf(" %d |", fw.Score(m)))
		}
		builder.WriteString("\n")
	}

	return f.write(builder.String())
}

// Validation writes the issues found in a catalog.
func (f *MarkdownFormatter) Validation(report ValidationReport) error {
	var builder strings.Builder

	builder.WriteString("# Catalog Validation\n\n")
	builder.WriteString("| Metric | Count |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Files | %d |\n", report.Files))
	builder.WriteString(fmt.Sprintf("| Entries | %d |\n", report.Entries))
	builder.WriteString(fmt.Sprintf("| Issues | %d |\n\n", len(report.Issues)))

	if len(report.Issues) > 0 {
		builder.WriteString("## Issues\n\n")
		for _, issue := range report.Issues {
			builder.WriteString(fmt.Sprintf("- **%s** - %s", issue.File, issue.Message))
			if issue.Source != "" {
				builder.WriteString(fmt.Sprintf(" `[%s]`", issue.Source))
			}
			builder.WriteString("\n")
		}
		builder.WriteString("\n")
	}

	builder.WriteString("## Conclusion\n\n")
	if report.Passed() {
		builder.WriteString("✓ Catalog passed validation\n")
	} else {
		builder.WriteString(fmt.Sprintf("✗ %d issue(s) found in %s\n", len(report.Issues), report.Source))
	}

	return f.write(builder.String())
}

func (f *MarkdownFormatter) write(content string) error {
	if _, err := io.WriteString(f.w, content); err != nil {
		return fmt.Errorf("error writing Markdown: %w", err)
	}
	return nil
}

func writePreset(builder *strings.Builder, p preset.Preset) {
	builder.WriteString(fmt.Sprintf("**Experience:** %s | **Scale:** %s | **Priority:** %s | **Type:** %s\n\n",
		p.Experience, p.Scale, p.Priority, p.Type))
}

func writeEntryTable(builder *strings.Builder, entries []ranking.ScoredEntry) {
	builder.WriteString("| Rank | Framework | Category | Score |\n")
	builder.WriteString("|------|-----------|----------|-------|\n")
	for _, e := range entries {
		builder.WriteString(fmt.Sprintf("| %d | %s | %s | %d |\n", e.Rank, e.Framework.Name, e.Framework.Category, e.Score))
	}
	builder.WriteString("\n")
}
