package scoring

import (
	"fmt"
	"strings"

	"github.com/dotcommander/stackpick/internal/catalog"
)

// ApplyRule evaluates one rule branch against a framework.
// Metric terms always apply; the tag bonus applies once if any of its tags match.
func ApplyRule(group Group, rule Rule, f catalog.Framework) []Contribution {
	details := make([]Contribution, 0, len(rule.Terms)+1)

	for _, term := range rule.Terms {
		details = append(details, metricContribution(group, term, f))
	}

	if rule.Bonus != nil && f.Tags.HasAny(rule.Bonus.Tags...) {
		details = append(details, pointsContribution(group, strings.Join(rule.Bonus.Tags, " or ")+" tag", rule.Bonus.Points, true))
	}

	return details
}

func metricContribution(group Group, term MetricTerm, f catalog.Framework) Contribution {
	return Contribution{
		Group:      group,
		Name:       fmt.Sprintf("%s x %s", formatWeight(term.Percent), term.Metric),
		Hundredths: term.Percent * f.Score(term.Metric),
		Points:     float64(term.Percent*f.Score(term.Metric)) / 100,
	}
}

func pointsContribution(group Group, name string, points int, tagBonus bool) Contribution {
	return Contribution{
		Group:      group,
		Name:       name,
		Hundredths: points * 100,
		Points:     float64(points),
		TagBonus:   tagBonus,
	}
}

// formatWeight renders a percent weight as a decimal: 35 -> "0.35", 50 -> "0.5"
func formatWeight(percent int) string {
	s := fmt.Sprintf("%d.%02d", percent/100, percent%100)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// RoundHalfAwayFromZero rounds a value held in hundredths to the nearest
// integer, with .50 rounding away from zero in both directions.
func RoundHalfAwayFromZero(hundredths int) int {
	if hundredths < 0 {
		return -((-hundredths + 50) / 100)
	}
	return (hundredths + 50) / 100
}
