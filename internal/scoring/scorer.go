// Package scoring computes how well a framework suits a questionnaire preset.
package scoring

import (
	"fmt"

	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/preset"
)

// Score returns the rounded suitability of f for p.
//
// Score is pure and never mutates its arguments. It expects f to carry all
// five metrics and p to be valid; ranking.Rank checks both before calling it.
// The result is not clamped and may be negative.
func Score(f catalog.Framework, p preset.Preset) int {
	return Compute(f, p).Total
}

// Compute scores f for p and keeps every applied term.
func Compute(f catalog.Framework, p preset.Preset) Breakdown {
	var details []Contribution

	// === EXPERIENCE ===
	if rule, ok := experienceRules[p.Experience]; ok {
		details = append(details, ApplyRule(GroupExperience, rule, f)...)
	}

	// === SCALE ===
	if rule, ok := scaleRules[p.Scale]; ok {
		details = append(details, ApplyRule(GroupScale, rule, f)...)
	}

	// === PRIORITY ===
	if rule, ok := priorityRules[p.Priority]; ok {
		details = append(details, ApplyRule(GroupPriority, rule, f)...)
	}

	// === PROJECT TYPE ===
	details = append(details, typeContributions(f, p.Type)...)

	// === BASELINE ===
	details = append(details, metricContribution(GroupBaseline, baselineTerm, f))

	total := 0
	for _, c := range details {
		total += c.Hundredths
	}

	return Breakdown{
		FrameworkID: f.ID,
		Total:       RoundHalfAwayFromZero(total),
		Raw:         float64(total) / 100,
		Details:     details,
	}
}

// typeContributions rewards a category match, penalizes the opposite category,
// and in fullstack mode applies the entry's own affinity bonus.
func typeContributions(f catalog.Framework, t preset.ProjectType) []Contribution {
	if t == preset.Fullstack {
		if f.FullstackAffinity == 0 {
			return nil
		}
		return []Contribution{pointsContribution(GroupType, "fullstack affinity", f.FullstackAffinity, false)}
	}

	want, ok := nativeCategory[t]
	if !ok {
		return nil
	}

	switch {
	case f.Category == want:
		return []Contribution{pointsContribution(GroupType, fmt.Sprintf("%s category match", t), categoryMatchPoints, false)}
	case f.Category == catalog.CategoryFrontend || f.Category == catalog.CategoryBackend:
		return []Contribution{pointsContribution(GroupType, fmt.Sprintf("%s category mismatch", t), categoryMismatchPoints, false)}
	default:
		return nil
	}
}
