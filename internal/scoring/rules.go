package scoring

import (
	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/preset"
)

// Type group points
const (
	categoryMatchPoints    = 40
	categoryMismatchPoints = -20
)

// baselineTerm applies regardless of preferences
var baselineTerm = MetricTerm{catalog.MetricCommunitySupport, 5}

var experienceRules = map[preset.Experience]Rule{
	preset.Beginner: {
		Terms: []MetricTerm{{catalog.MetricLearningCurve, 50}},
		Bonus: &TagBonus{Tags: []string{catalog.TagBeginnerFriendly}, Points: 30},
	},
	preset.Intermediate: {
		Terms: []MetricTerm{
			{catalog.MetricLearningCurve, 20},
			{catalog.MetricPerformance, 30},
		},
		Bonus: &TagBonus{Tags: []string{catalog.TagFastDevelopment}, Points: 15},
	},
	preset.Advanced: {
		Terms: []MetricTerm{
			{catalog.MetricPerformance, 35},
			{catalog.MetricScalability, 25},
		},
		Bonus: &TagBonus{Tags: []string{catalog.TagEnterprise, catalog.TagLargeScale}, Points: 20},
	},
}

var scaleRules = map[preset.Scale]Rule{
	preset.Small: {
		Terms: []MetricTerm{{catalog.MetricLearningCurve, 20}},
		Bonus: &TagBonus{Tags: []string{catalog.TagLightweight, catalog.TagFastDevelopment}, Points: 15},
	},
	preset.Medium: {
		Terms: []MetricTerm{
			{catalog.MetricPerformance, 20},
			{catalog.MetricCommunitySupport, 15},
		},
	},
	preset.Large: {
		Terms: []MetricTerm{
			{catalog.MetricScalability, 40},
			{catalog.MetricCommunitySupport, 20},
		},
		Bonus: &TagBonus{Tags: []string{catalog.TagEnterprise, catalog.TagScalable}, Points: 25},
	},
}

var priorityRules = map[preset.Priority]Rule{
	preset.Speed: {
		Terms: []MetricTerm{{catalog.MetricLearningCurve, 30}},
		Bonus: &TagBonus{Tags: []string{catalog.TagFastDevelopment}, Points: 20},
	},
	preset.Performance: {
		Terms: []MetricTerm{{catalog.MetricPerformance, 40}},
		Bonus: &TagBonus{Tags: []string{catalog.TagHighPerformance}, Points: 20},
	},
	preset.Jobs: {
		Terms: []MetricTerm{{catalog.MetricJobDemand, 50}},
		Bonus: &TagBonus{Tags: []string{catalog.TagHighDemand}, Points: 20},
	},
}

// nativeCategory maps the single-sided project types to the category they favor
var nativeCategory = map[preset.ProjectType]catalog.Category{
	preset.Frontend: catalog.CategoryFrontend,
	preset.Backend:  catalog.CategoryBackend,
}
