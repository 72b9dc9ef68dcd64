package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/compare"
	"github.com/dotcommander/stackpick/internal/preset"
	"github.com/dotcommander/stackpick/internal/ranking"
	"github.com/dotcommander/stackpick/internal/recommend"
	"github.com/dotcommander/stackpick/internal/types"
)

const barWidth = 20

type consoleStyles struct {
	winner lipgloss.Style
	header lipgloss.Style
	chip   lipgloss.Style
	muted  lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	warn   lipgloss.Style
	leader lipgloss.Style
}

func newConsoleStyles() consoleStyles {
	return consoleStyles{
		winner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")), // green
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // blue
		chip:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")), // gray
		good:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")), // red
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		leader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
}

// ConsoleFormatter renders reports for a terminal
type ConsoleFormatter struct {
	w      io.Writer
	opts   Options
	styles consoleStyles
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(w io.Writer, opts Options) *ConsoleFormatter {
	return &ConsoleFormatter{
		w:      w,
		opts:   opts,
		styles: newConsoleStyles(),
	}
}

// Recommendation prints the winner, its chips and rationale, then the
// runners-up. In quiet mode only the winner's id is printed.
func (f *ConsoleFormatter) Recommendation(r *recommend.Result) error {
	if f.opts.Quiet {
		fmt.Fprintln(f.w, r.Winner.Framework.ID)
		return nil
	}

	if f.opts.Verbose {
		fmt.Fprintf(f.w, "%s\n\n", f.styles.muted.Render(r.Preset.String()))
	}

	winner := r.Winner.Framework
	fmt.Fprintf(f.w, "%s  %s\n",
		f.styles.winner.Render("★ "+winner.Name),
		f.styles.muted.Render(fmt.Sprintf("score %d", r.Winner.Score)))
	if winner.Tagline != "" {
		fmt.Fprintf(f.w, "  %s\n", winner.Tagline)
	}
	if len(r.Chips) > 0 {
		chips := make([]string, len(r.Chips))
		for i, c := range r.Chips {
			chips[i] = f.styles.chip.Render("[" + c + "]")
		}
		fmt.Fprintf(f.w, "  %s\n", strings.Join(chips, " "))
	}
	fmt.Fprintf(f.w, "\n%s\n", r.Explanation)

	if len(r.RunnersUp) > 0 {
		fmt.Fprintf(f.w, "\n%s\n", f.styles.header.Render("Runners-up"))
		for _, e := range r.RunnersUp {
			fmt.Fprintf(f.w, "  %d. %-16s %4d\n", e.Rank, e.Framework.Name, e.Score)
		}
	}

	if f.opts.ShowBreakdown {
		fmt.Fprintf(f.w, "\n%s\n", f.styles.header.Render("Score breakdown for "+winner.Name))
		for _, c := range r.Breakdown.Details {
			fmt.Fprintf(f.w, "  %-11s %-34s %s\n", c.Group, c.Name, f.signed(c.Points))
		}
		fmt.Fprintf(f.w, "  %-11s %-34s %.2f -> %d\n", "total", "", r.Breakdown.Raw, r.Breakdown.Total)
	}

	return nil
}

// Ranking prints every entry with its score and a bar relative to the leader.
func (f *ConsoleFormatter) Ranking(p preset.Preset, entries []ranking.ScoredEntry) error {
	if f.opts.Quiet {
		for _, e := range entries {
			fmt.Fprintf(f.w, "%s %d\n", e.Framework.ID, e.Score)
		}
		return nil
	}

	fmt.Fprintf(f.w, "%s\n", f.styles.header.Render("Ranking for "+p.String()))

	top := 0
	if len(entries) > 0 {
		top = entries[0].Score
	}
	for _, e := range entries {
		name := e.Framework.Name
		if e.Rank == 1 {
			name = f.styles.winner.Render(fmt.Sprintf("%-16s", name))
		} else {
			name = fmt.Sprintf("%-16s", name)
		}
		fmt.Fprintf(f.w, "%3d. %s %4d  %s\n", e.Rank, name, e.Score, renderBar(e.Score, top, "10"))
	}

	return nil
}

// Comparison prints a metric table, marking the leader of each row.
func (f *ConsoleFormatter) Comparison(c *compare.Comparison) error {
	headers := []string{"Metric"}
	for _, fw := range c.Frameworks {
		headers = append(headers, fw.Name)
	}

	rows := make([][]string, 0, len(c.Rows)+1)
	for _, row := range c.Rows {
		cells := []string{row.Label}
		for i, v := range row.Values {
			cell := strconv.Itoa(v)
			if leads(c, len(rows), i) {
				cell += " ★"
			}
			cells = append(cells, cell)
		}
		rows = append(rows, cells)
	}
	avg := []string{"Average"}
	for _, a := range c.Averages {
		avg = append(avg, fmt.Sprintf("%.1f", a))
	}
	rows = append(rows, avg)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.styles.muted).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Inherit(f.styles.header)
			}
			if row >= 0 && row < len(c.Rows) && col > 0 && leads(c, row, col-1) {
				return style.Inherit(f.styles.leader)
			}
			return style
		})

	fmt.Fprintln(f.w, t.Render())
	return nil
}

// Catalog lists the catalog entries.
func (f *ConsoleFormatter) Catalog(source string, frameworks []catalog.Framework) error {
	if !f.opts.Quiet {
		fmt.Fprintf(f.w, "%s\n", f.styles.header.Render(fmt.Sprintf("%d frameworks from %s", len(frameworks), source)))
	}
	for _, fw := range frameworks {
		if f.opts.Quiet {
			fmt.Fprintln(f.w, fw.ID)
			continue
		}
		line := fmt.Sprintf("  %-14s %-16s %-9s", fw.ID, fw.Name, fw.Category)
		if f.opts.Verbose {
			line += fmt.Sprintf(" avg %5.1f  %s", fw.Average(), strings.Join(fw.Tags.Sorted(), ", "))
		}
		fmt.Fprintln(f.w, strings.TrimRight(line, " "))
	}
	return nil
}

// Validation prints every issue followed by a one-line verdict.
func (f *ConsoleFormatter) Validation(report ValidationReport) error {
	for _, issue := range report.Issues {
		style, prefix := f.styles.bad, "✘"
		if issue.Severity == types.SeverityWarning {
			style, prefix = f.styles.warn, "⚠"
		}
		fmt.Fprintf(f.w, "  %s %s: %s\n", style.Render(prefix), issue.File, issue.Message)
	}

	if f.opts.Quiet {
		return nil
	}

	if report.Passed() {
		fmt.Fprintf(f.w, "%s\n", f.styles.good.Render(fmt.Sprintf("✓ %d entries in %d file(s) passed", report.Entries, report.Files)))
		return nil
	}
	fmt.Fprintf(f.w, "\n%s\n", f.styles.bad.Render(fmt.Sprintf("✘ %d issue(s) in %s", len(report.Issues), report.Source)))
	return nil
}

// leads reports whether framework i leads metric row r. A single framework
// leads nothing.
func leads(c *compare.Comparison, r, i int) bool {
	if len(c.Frameworks) < 2 || i >= len(c.Frameworks) {
		return false
	}
	return c.Rows[r].IsLeader(c.Frameworks[i].ID)
}

func (f *ConsoleFormatter) signed(points float64) string {
	s := fmt.Sprintf("%+.2f", points)
	switch {
	case points < 0:
		return f.styles.bad.Render(s)
	case points > 0:
		return f.styles.good.Render(s)
	default:
		return s
	}
}

// renderBar draws value as a share of max, barWidth cells wide.
func renderBar(value, max int, color string) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	filled := (value * barWidth) / max
	if filled == 0 {
		filled = 1
	}
	if filled > barWidth {
		filled = barWidth
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return style.Render(strings.Repeat("█", filled))
}
