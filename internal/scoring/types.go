package scoring

import "github.com/dotcommander/stackpick/internal/catalog"

// Group names the rule group a contribution came from
type Group string

// Rule groups, in evaluation order
const (
	GroupExperience Group = "experience"
	GroupScale      Group = "scale"
	GroupPriority   Group = "priority"
	GroupType       Group = "type"
	GroupBaseline   Group = "baseline"
)

// Contribution is one applied scoring term
type Contribution struct {
	Group      Group   `json:"group"`
	Name       string  `json:"name"`      // e.g. "0.5 x learningCurve"
	Hundredths int     `json:"-"`         // exact value in hundredths of a point
	Points     float64 `json:"points"`    // Hundredths / 100
	TagBonus   bool    `json:"tag_bonus"` // whether this term is a tag bonus
}

// Breakdown is the full result of scoring one framework
type Breakdown struct {
	FrameworkID string         `json:"framework_id"`
	Total       int            `json:"total"` // rounded half away from zero
	Raw         float64        `json:"raw"`   // unrounded sum
	Details     []Contribution `json:"details"`
}

// GroupPoints returns the unrounded sum of one group's contributions
func (b Breakdown) GroupPoints(g Group) float64 {
	total := 0
	for _, c := range b.Details {
		if c.Group == g {
			total += c.Hundredths
		}
	}
	return float64(total) / 100
}

// MetricTerm weights one metric. Percent is the weight times 100, so 0.35 is 35.
type MetricTerm struct {
	Metric  catalog.Metric
	Percent int
}

// TagBonus awards Points once when the framework carries any of Tags
type TagBonus struct {
	Tags   []string
	Points int
}

// Rule is one branch of a rule group
type Rule struct {
	Terms []MetricTerm
	Bonus *TagBonus
}
