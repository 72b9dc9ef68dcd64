// Package explain turns a recommendation winner into a short rationale and a
// list of reason chips.
package explain

import (
	"fmt"

	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/preset"
	"github.com/dotcommander/stackpick/internal/types"
)

// Metric thresholds for qualifiers and chips
const (
	easyLearningThreshold = 75
	highBarThreshold      = 85
)

// Reason chip labels
const (
	ChipBeginnerFriendly = "Beginner Friendly"
	ChipEnterpriseGrade  = "Enterprise Grade"
	ChipHighlyScalable   = "Highly Scalable"
	ChipHighPerformance  = "High Performance"
	ChipStrongJobMarket  = "Strong Job Market"
	ChipGreatCommunity   = "Great Community"
	ChipFrontendNative   = "Frontend Native"
	ChipBackendNative    = "Backend Native"
)

var personaPhrases = map[preset.Experience]string{
	preset.Beginner:     "As a beginner developer",
	preset.Intermediate: "As an intermediate developer",
	preset.Advanced:     "As an experienced developer",
}

var scalePhrases = map[preset.Scale]string{
	preset.Small:  "building a small project",
	preset.Medium: "working on a medium-sized application",
	preset.Large:  "planning a large-scale system",
}

var focusPhrases = map[preset.Priority]string{
	preset.Speed:       "who wants to ship quickly",
	preset.Performance: "focused on raw performance",
	preset.Jobs:        "aiming for the strongest career prospects",
}

var kindPhrases = map[preset.ProjectType]string{
	preset.Frontend:  "frontend",
	preset.Backend:   "backend",
	preset.Fullstack: "full-stack",
}

// Explanation is the rationale shown alongside a winner.
type Explanation struct {
	Narrative string   `json:"narrative"`
	Chips     []string `json:"chips"`
}

// Explain builds the narrative and chips for winner under p. It fails with
// types.ErrInvalidInput when a preset value is outside its domain.
func Explain(winner catalog.Framework, p preset.Preset) (Explanation, error) {
	persona, ok := personaPhrases[p.Experience]
	if !ok {
		return Explanation{}, fmt.Errorf("%w: unknown experience %q", types.ErrInvalidInput, p.Experience)
	}
	size, ok := scalePhrases[p.Scale]
	if !ok {
		return Explanation{}, fmt.Errorf("%w: unknown scale %q", types.ErrInvalidInput, p.Scale)
	}
	focus, ok := focusPhrases[p.Priority]
	if !ok {
		return Explanation{}, fmt.Errorf("%w: unknown priority %q", types.ErrInvalidInput, p.Priority)
	}
	kind, ok := kindPhrases[p.Type]
	if !ok {
		return Explanation{}, fmt.Errorf("%w: unknown project type %q", types.ErrInvalidInput, p.Type)
	}

	narrative := fmt.Sprintf("%s %s %s, %s is your best match for %s development. It offers %s, %s, and %s.",
		persona, size, focus, winner.Name, kind,
		learningQualifier(winner), demandQualifier(winner), scalabilityQualifier(winner))

	return Explanation{
		Narrative: narrative,
		Chips:     Chips(winner, p),
	}, nil
}

func learningQualifier(f catalog.Framework) string {
	if f.Score(catalog.MetricLearningCurve) >= easyLearningThreshold {
		return "an easy learning curve"
	}
	return "powerful capabilities"
}

func demandQualifier(f catalog.Framework) string {
	if f.Score(catalog.MetricJobDemand) >= highBarThreshold {
		return "strong industry demand"
	}
	return "solid community support"
}

func scalabilityQualifier(f catalog.Framework) string {
	if f.Score(catalog.MetricScalability) >= highBarThreshold {
		return "enterprise-grade scalability"
	}
	return "reliable performance"
}

// chipRule appends Label when Guard holds
type chipRule struct {
	Label string
	Guard func(f catalog.Framework, p preset.Preset) bool
}

// chipRules is evaluated in order; every matching rule contributes its label.
var chipRules = []chipRule{
	{ChipBeginnerFriendly, func(f catalog.Framework, p preset.Preset) bool {
		return p.Experience == preset.Beginner && f.Score(catalog.MetricLearningCurve) >= easyLearningThreshold
	}},
	{ChipEnterpriseGrade, func(f catalog.Framework, p preset.Preset) bool {
		return p.Experience == preset.Advanced && f.Score(catalog.MetricScalability) >= highBarThreshold
	}},
	{ChipHighlyScalable, func(f catalog.Framework, p preset.Preset) bool {
		return p.Scale == preset.Large && f.Score(catalog.MetricScalability) >= highBarThreshold
	}},
	{ChipHighPerformance, func(f catalog.Framework, p preset.Preset) bool {
		return p.Priority == preset.Performance && f.Score(catalog.MetricPerformance) >= highBarThreshold
	}},
	{ChipStrongJobMarket, func(f catalog.Framework, p preset.Preset) bool {
		return p.Priority == preset.Jobs && f.Score(catalog.MetricJobDemand) >= highBarThreshold
	}},
	{ChipGreatCommunity, func(f catalog.Framework, _ preset.Preset) bool {
		return f.Score(catalog.MetricCommunitySupport) >= highBarThreshold
	}},
	{ChipFrontendNative, func(f catalog.Framework, p preset.Preset) bool {
		return p.Type == preset.Frontend && f.Category == catalog.CategoryFrontend
	}},
	{ChipBackendNative, func(f catalog.Framework, p preset.Preset) bool {
		return p.Type == preset.Backend && f.Category == catalog.CategoryBackend
	}},
}

// Chips returns the reason chips for winner under p in their fixed order.
// The result is never nil; an empty slice means no chip applies.
func Chips(winner catalog.Framework, p preset.Preset) []string {
	chips := []string{}
	for _, rule := range chipRules {
		if rule.Guard(winner, p) {
			chips = append(chips, rule.Label)
		}
	}
	return chips
}
