// Package output renders recommendations, rankings, comparisons and catalog
// reports for the terminal, as JSON or as Markdown.
package output

import (
	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/compare"
	"github.com/dotcommander/stackpick/internal/preset"
	"github.com/dotcommander/stackpick/internal/ranking"
	"github.com/dotcommander/stackpick/internal/recommend"
	"github.com/dotcommander/stackpick/internal/types"
)

// Version is reported in JSON headers and by --version.
var Version = "dev"

// Formatter renders each report kind.
type Formatter interface {
	Recommendation(r *recommend.Result) error
	Ranking(p preset.Preset, entries []ranking.ScoredEntry) error
	Comparison(c *compare.Comparison) error
	Catalog(source string, frameworks []catalog.Framework) error
	Validation(report ValidationReport) error
}

// Options tunes what formatters include.
type Options struct {
	Quiet         bool
	Verbose       bool
	ShowBreakdown bool
}

// ValidationReport is the result of checking a catalog.
type ValidationReport struct {
	Source  string                  `json:"source"`
	Files   int                     `json:"files"`
	Entries int                     `json:"entries"`
	Issues  []types.ValidationIssue `json:"issues"`
}

// Passed reports whether no issue was found.
func (r ValidationReport) Passed() bool {
	return len(r.Issues) == 0
}
