package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/compare"
	"github.com/dotcommander/stackpick/internal/preset"
	"github.com/dotcommander/stackpick/internal/ranking"
	"github.com/dotcommander/stackpick/internal/recommend"
	"github.com/dotcommander/stackpick/internal/scoring"
	"github.com/dotcommander/stackpick/internal/types"
)

// JSONFormatter renders reports as JSON documents
type JSONFormatter struct {
	w      io.Writer
	opts   Options
	indent bool
	now    func() time.Time
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(w io.Writer, opts Options, indent bool) *JSONFormatter {
	return &JSONFormatter{
		w:      w,
		opts:   opts,
		indent: indent,
		now:    time.Now,
	}
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Kind      string `json:"kind"`
	Timestamp string `json:"timestamp"`
}

// JSONEntry is one ranked framework
type JSONEntry struct {
	Rank     int    `json:"rank"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// JSONRecommendation is the recommend report
type JSONRecommendation struct {
	Header      JSONHeader         `json:"header"`
	Preset      preset.Preset      `json:"preset"`
	Winner      JSONEntry          `json:"winner"`
	RunnersUp   []JSONEntry        `json:"runners_up"`
	Explanation string             `json:"explanation"`
	Chips       []string           `json:"chips"`
	Breakdown   *scoring.Breakdown `json:"breakdown,omitempty"`
}

// JSONRanking is the rank report
type JSONRanking struct {
	Header  JSONHeader    `json:"header"`
	Preset  preset.Preset `json:"preset"`
	Entries []JSONEntry   `json:"entries"`
}

// JSONComparison is the compare report
type JSONComparison struct {
	Header JSONHeader `json:"header"`
	*compare.Comparison
}

// JSONCatalog is the catalog list report
type JSONCatalog struct {
	Header     JSONHeader          `json:"header"`
	Source     string              `json:"source"`
	Frameworks []catalog.Framework `json:"frameworks"`
}

// JSONValidation is the catalog validate report
type JSONValidation struct {
	Header JSONHeader `json:"header"`
	Passed bool       `json:"passed"`
	ValidationReport
}

func (f *JSONFormatter) header(kind string) JSONHeader {
	return JSONHeader{
		Tool:      "stackpick",
		Version:   Version,
		Kind:      kind,
		Timestamp: f.now().Format(time.RFC3339),
	}
}

func toJSONEntry(e ranking.ScoredEntry) JSONEntry {
	return JSONEntry{
		Rank:     e.Rank,
		ID:       e.Framework.ID,
		Name:     e.Framework.Name,
		Category: string(e.Framework.Category),
		Score:    e.Score,
	}
}

func toJSONEntries(entries []ranking.ScoredEntry) []JSONEntry {
	out := make([]JSONEntry, len(entries))
	for i, e := range entries {
		out[i] = toJSONEntry(e)
	}
	return out
}

// Recommendation writes the recommend report. The score breakdown is
// included when ShowBreakdown is set.
func (f *JSONFormatter) Recommendation(r *recommend.Result) error {
	report := JSONRecommendation{
		Header:      f.header("recommendation"),
		Preset:      r.Preset,
		Winner:      toJSONEntry(r.Winner),
		RunnersUp:   toJSONEntries(r.RunnersUp),
		Explanation: r.Explanation,
		Chips:       r.Chips,
	}
	if f.opts.ShowBreakdown {
		b := r.Breakdown
		report.Breakdown = &b
	}
	return f.write(report)
}

// Ranking writes the full ranking.
func (f *JSONFormatter) Ranking(p preset.Preset, entries []ranking.ScoredEntry) error {
	return f.write(JSONRanking{
		Header:  f.header("ranking"),
		Preset:  p,
		Entries: toJSONEntries(entries),
	})
}

// Comparison writes the metric comparison.
func (f *JSONFormatter) Comparison(c *compare.Comparison) error {
	return f.write(JSONComparison{Header: f.header("comparison"), Comparison: c})
}

// Catalog writes every catalog entry.
func (f *JSONFormatter) Catalog(source string, frameworks []catalog.Framework) error {
	return f.write(JSONCatalog{Header: f.header("catalog"), Source: source, Frameworks: frameworks})
}

// Validation writes the validation result.
func (f *JSONFormatter) Validation(report ValidationReport) error {
	if report.Issues == nil {
		report.Issues = []types.ValidationIssue{}
	}
	return f.write(JSONValidation{Header: f.header("validation"), Passed: report.Passed(), ValidationReport: report})
}

func (f *JSONFormatter) write(v any) error {
	var jsonBytes []byte
	var err error

	if f.indent {
		jsonBytes, err = json.MarshalIndent(v, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if _, err := fmt.Fprintln(f.w, string(jsonBytes)); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}
