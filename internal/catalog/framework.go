// Package catalog holds the framework records the recommendation engine reads,
// and loads them from YAML catalog files.
package catalog

import (
	"fmt"
	"strings"
)

// Metric is one of the five fixed score dimensions of a framework.
type Metric string

// Metric keys. Every catalog entry carries all five.
const (
	MetricPerformance      Metric = "performance"
	MetricLearningCurve    Metric = "learningCurve"
	MetricCommunitySupport Metric = "communitySupport"
	MetricJobDemand        Metric = "jobDemand"
	MetricScalability      Metric = "scalability"
)

// Metrics lists the metric keys in display order.
var Metrics = []Metric{
	MetricPerformance,
	MetricLearningCurve,
	MetricCommunitySupport,
	MetricJobDemand,
	MetricScalability,
}

// Label returns the human-readable name of the metric.
func (m Metric) Label() string {
	switch m {
	case MetricPerformance:
		return "Performance"
	case MetricLearningCurve:
		return "Learning Curve"
	case MetricCommunitySupport:
		return "Community Support"
	case MetricJobDemand:
		return "Job Demand"
	case MetricScalability:
		return "Scalability"
	default:
		return string(m)
	}
}

// Inclusive bounds of a metric value.
const (
	MinScore = 0
	MaxScore = 100
)

// Category is the project side a framework targets.
type Category string

// Category values.
const (
	CategoryFrontend Category = "Frontend"
	CategoryBackend  Category = "Backend"
)

// Valid reports whether c is one of the known categories. Matching is
// case-sensitive.
func (c Category) Valid() bool {
	return c == CategoryFrontend || c == CategoryBackend
}

// Framework is one catalog entry. The engine treats it as read-only.
type Framework struct {
	ID                string         `yaml:"id" json:"id"`
	Name              string         `yaml:"name" json:"name"`
	Tagline           string         `yaml:"tagline,omitempty" json:"tagline,omitempty"`
	Creator           string         `yaml:"creator,omitempty" json:"creator,omitempty"`
	Year              int            `yaml:"year,omitempty" json:"year,omitempty"`
	Language          string         `yaml:"language,omitempty" json:"language,omitempty"`
	Category          Category       `yaml:"category" json:"category"`
	Scores            map[Metric]int `yaml:"scores" json:"scores"`
	Tags              TagSet         `yaml:"tags,omitempty" json:"tags,omitempty"`
	FullstackAffinity int            `yaml:"fullstackAffinity,omitempty" json:"fullstackAffinity,omitempty"`
}

// Score returns the value of metric m, or 0 when it is absent.
// Callers that must distinguish absence use MissingMetrics.
func (f Framework) Score(m Metric) int {
	return f.Scores[m]
}

// MissingMetrics returns the metric keys f does not carry, in Metrics order.
func (f Framework) MissingMetrics() []Metric {
	var missing []Metric
	for _, m := range Metrics {
		if _, ok := f.Scores[m]; !ok {
			missing = append(missing, m)
		}
	}
	return missing
}

// OutOfRangeMetrics returns the metrics of f whose value lies outside
// [MinScore, MaxScore], in Metrics order. Absent metrics are not reported.
func (f Framework) OutOfRangeMetrics() []Metric {
	var bad []Metric
	for _, m := range Metrics {
		if v, ok := f.Scores[m]; ok && (v < MinScore || v > MaxScore) {
			bad = append(bad, m)
		}
	}
	return bad
}

// Problems describes every data error in f that the scoring rules cannot
// work with: missing metrics, an unknown category, values out of range.
func (f Framework) Problems() []string {
	var problems []string
	if missing := f.MissingMetrics(); len(missing) > 0 {
		problems = append(problems, fmt.Sprintf("framework %q is missing metrics [%s]", f.ID, joinMetrics(missing)))
	}
	if !f.Category.Valid() {
		problems = append(problems, fmt.Sprintf("framework %q has unknown category %q (want %s or %s)", f.ID, f.Category, CategoryFrontend, CategoryBackend))
	}
	if bad := f.OutOfRangeMetrics(); len(bad) > 0 {
		problems = append(problems, fmt.Sprintf("framework %q has metrics outside [%d, %d]: [%s]", f.ID, MinScore, MaxScore, joinMetrics(bad)))
	}
	return problems
}

func joinMetrics(metrics []Metric) string {
	names := make([]string, len(metrics))
	for i, m := range metrics {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// Average returns the mean of the five metrics.
func (f Framework) Average() float64 {
	total := 0
	for _, m := range Metrics {
		total += f.Scores[m]
	}
	return float64(total) / float64(len(Metrics))
}
