// Package recommend ties ranking, selection and explanation together into a
// single recommendation for a questionnaire response.
package recommend

import (
	"fmt"
	"log/slog"

	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/explain"
	"github.com/dotcommander/stackpick/internal/preset"
	"github.com/dotcommander/stackpick/internal/ranking"
	"github.com/dotcommander/stackpick/internal/scoring"
)

// Result is one recommendation.
type Result struct {
	Preset      preset.Preset         `json:"preset"`
	Winner      ranking.ScoredEntry   `json:"winner"`
	RunnersUp   []ranking.ScoredEntry `json:"runners_up"`
	Explanation string                `json:"explanation"`
	Chips       []string              `json:"chips"`
	Breakdown   scoring.Breakdown     `json:"breakdown"` // winner's per-term contributions
	Ranking     []ranking.ScoredEntry `json:"-"`
}

// Engine computes recommendations with a configured ranker.
type Engine struct {
	ranker *ranking.Ranker
	logger *slog.Logger
}

// NewEngine creates an engine. A nil ranker ranks sequentially; a nil logger
// uses slog.Default.
func NewEngine(ranker *ranking.Ranker, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if ranker == nil {
		ranker = ranking.NewRanker(ranking.Options{Logger: logger})
	}
	return &Engine{ranker: ranker, logger: logger}
}

// Recommend ranks frameworks with a default engine and explains the winner.
func Recommend(frameworks []catalog.Framework, p preset.Preset) (*Result, error) {
	return NewEngine(nil, nil).Recommend(frameworks, p)
}

// Recommend ranks frameworks for p, selects the winner and runners-up, and
// builds the explanation for the winner.
func (e *Engine) Recommend(frameworks []catalog.Framework, p preset.Preset) (*Result, error) {
	ranked, err := e.ranker.Rank(frameworks, p)
	if err != nil {
		return nil, err
	}

	sel, err := ranking.Select(ranked)
	if err != nil {
		return nil, err
	}

	exp, err := explain.Explain(sel.Winner.Framework, p)
	if err != nil {
		return nil, fmt.Errorf("error explaining %s: %w", sel.Winner.Framework.ID, err)
	}

	e.logger.Debug("recommendation ready",
		"winner", sel.Winner.Framework.ID,
		"score", sel.Winner.Score,
		"runners_up", len(sel.RunnersUp),
		"chips", len(exp.Chips))

	return &Result{
		Preset:      p,
		Winner:      sel.Winner,
		RunnersUp:   sel.RunnersUp,
		Explanation: exp.Narrative,
		Chips:       exp.Chips,
		Breakdown:   scoring.Compute(sel.Winner.Framework, p),
		Ranking:     ranked,
	}, nil
}
