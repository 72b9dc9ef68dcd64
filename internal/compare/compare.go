package compare

import (
	"fmt"
	"slices"

	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/types"
)

// Row is one metric across the compared frameworks.
type Row struct {
	Metric  catalog.Metric `json:"metric"`
	Label   string         `json:"label"`
	Values  []int          `json:"values"`  // aligned with Comparison.Frameworks
	Leaders []string       `json:"leaders"` // ids holding the highest value
}

// Comparison is a metric table over up to MaxSelected frameworks.
type Comparison struct {
	Frameworks []catalog.Framework `json:"frameworks"`
	Rows       []Row               `json:"rows"`
	Averages   []float64           `json:"averages"`
}

// Build compares the frameworks named by ids, in the given order.
// It requires 1 to MaxSelected distinct ids, all present in c.
func Build(c *catalog.Catalog, ids []string) (*Comparison, error) {
	if len(ids) == 0 || len(ids) > MaxSelected {
		return nil, fmt.Errorf("%w: compare needs 1 to %d frameworks, got %d", types.ErrInvalidInput, MaxSelected, len(ids))
	}

	seen := make(map[string]bool, len(ids))
	frameworks := make([]catalog.Framework, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, fmt.Errorf("%w: %q listed more than once", types.ErrInvalidInput, id)
		}
		seen[id] = true

		f, ok := c.Get(id)
		if !ok {
			return nil, fmt.Errorf("%w: %w: %q", types.ErrInvalidInput, ErrUnknownFramework, id)
		}
		frameworks = append(frameworks, f)
	}

	cmp := &Comparison{
		Frameworks: frameworks,
		Rows:       make([]Row, 0, len(catalog.Metrics)),
		Averages:   make([]float64, len(frameworks)),
	}

	for _, m := range catalog.Metrics {
		row := Row{Metric: m, Label: m.Label(), Values: make([]int, len(frameworks))}
		best := -1
		for i, f := range frameworks {
			v := f.Score(m)
			row.Values[i] = v
			switch {
			case v > best:
				best = v
				row.Leaders = []string{f.ID}
			case v == best:
				row.Leaders = append(row.Leaders, f.ID)
			}
		}
		cmp.Rows = append(cmp.Rows, row)
	}

	for i, f := range frameworks {
		cmp.Averages[i] = f.Average()
	}

	return cmp, nil
}

// IsLeader reports whether id leads row.
func (r Row) IsLeader(id string) bool {
	return slices.Contains(r.Leaders, id)
}
