// Package ranking orders a catalog by suitability for a preset and picks the
// winner and runners-up.
package ranking

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/preset"
	"github.com/dotcommander/stackpick/internal/scoring"
	"github.com/dotcommander/stackpick/internal/types"
)

// maxRunnersUp is how many entries after the winner Select returns.
const maxRunnersUp = 2

// ScoredEntry pairs a framework with its score for one preset.
type ScoredEntry struct {
	Framework catalog.Framework `json:"framework"`
	Score     int               `json:"score"`
	Rank      int               `json:"rank"` // 1-based position after sorting
}

// Selection is the winner and up to two runners-up of a ranking.
type Selection struct {
	Winner    ScoredEntry   `json:"winner"`
	RunnersUp []ScoredEntry `json:"runners_up"`
}

// Options configures a Ranker.
type Options struct {
	Parallel bool
	Workers  int // upper bound on concurrent scoring goroutines when Parallel
	Logger   *slog.Logger
}

// Ranker scores and sorts catalogs.
type Ranker struct {
	parallel bool
	workers  int
	logger   *slog.Logger
}

// NewRanker creates a Ranker. Workers below 1 is treated as 1.
func NewRanker(opts Options) *Ranker {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Ranker{
		parallel: opts.Parallel,
		workers:  workers,
		logger:   logger,
	}
}

// Rank ranks frameworks with a sequential Ranker.
func Rank(frameworks []catalog.Framework, p preset.Preset) ([]ScoredEntry, error) {
	return NewRanker(Options{}).Rank(frameworks, p)
}

// Rank scores every framework for p and sorts by score, highest first.
// Entries with equal scores keep their catalog order.
//
// All preconditions are checked before any entry is scored; a violation
// returns an error wrapping types.ErrInvalidInput.
func (r *Ranker) Rank(frameworks []catalog.Framework, p preset.Preset) ([]ScoredEntry, error) {
	if err := CheckPreconditions(frameworks, p); err != nil {
		return nil, err
	}

	scores := r.scoreAll(frameworks, p)

	entries := make([]ScoredEntry, len(frameworks))
	for i, f := range frameworks {
		entries[i] = ScoredEntry{Framework: f, Score: scores[i]}
		r.logger.Debug("scored framework", "id", f.ID, "score", scores[i])
	}

	// Stable sort preserves catalog order for ties
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Score > entries[b].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

// scoreAll returns scores indexed by catalog position
func (r *Ranker) scoreAll(frameworks []catalog.Framework, p preset.Preset) []int {
	scores := make([]int, len(frameworks))

	if !r.parallel || r.workers == 1 || len(frameworks) < 2 {
		for i, f := range frameworks {
			scores[i] = scoring.Score(f, p)
		}
		return scores
	}

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i := range frameworks {
		g.Go(func() error {
			scores[i] = scoring.Score(frameworks[i], p)
			return nil
		})
	}
	// Scoring cannot fail once preconditions hold
	_ = g.Wait()

	return scores
}

// CheckPreconditions verifies the preset and that the catalog is non-empty,
// with every entry carrying all five metrics in [0, 100] and a known category.
func CheckPreconditions(frameworks []catalog.Framework, p preset.Preset) error {
	if len(frameworks) == 0 {
		return fmt.Errorf("%w: catalog is empty", types.ErrInvalidInput)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	for _, f := range frameworks {
		if problems := f.Problems(); len(problems) > 0 {
			return fmt.Errorf("%w: %s", types.ErrInvalidInput, strings.Join(problems, "; "))
		}
	}
	return nil
}

// Select returns the first entry as the winner and the next two as runners-up.
// A ranking shorter than three entries yields fewer runners-up.
func Select(entries []ScoredEntry) (Selection, error) {
	if len(entries) == 0 {
		return Selection{}, fmt.Errorf("%w: nothing to select from an empty ranking", types.ErrInvalidInput)
	}

	end := 1 + maxRunnersUp
	if end > len(entries) {
		end = len(entries)
	}

	runnersUp := make([]ScoredEntry, 0, end-1)
	runnersUp = append(runnersUp, entries[1:end]...)

	return Selection{
		Winner:    entries[0],
		RunnersUp: runnersUp,
	}, nil
}
