package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dotcommander/stackpick/internal/types"
)

func fixedJSONFormatter(buf *bytes.Buffer, opts Options, indent bool) *JSONFormatter {
	f := NewJSONFormatter(buf, opts, indent)
	f.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return f
}

func TestJSONFormatter_Recommendation(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		indent   bool
		validate func(t *testing.T, report JSONRecommendation, raw string)
	}{
		{
			name:   "compact without breakdown",
			indent: false,
			validate: func(t *testing.T, report JSONRecommendation, raw string) {
				if strings.Count(raw, "\n") != 1 {
					t.Errorf("compact JSON should be a single line, got:\n%s", raw)
				}
				if report.Breakdown != nil {
					t.Error("Breakdown should be omitted")
				}
				if strings.Contains(raw, `"breakdown"`) {
					t.Error("raw JSON should not contain breakdown key")
				}
			},
		},
		{
			name:   "indented with breakdown",
			opts:   Options{ShowBreakdown: true},
			indent: true,
			validate: func(t *testing.T, report JSONRecommendation, raw string) {
				if !strings.Contains(raw, "\n  \"header\"") {
					t.Errorf("expected indented JSON, got:\n%s", raw)
				}
				if report.Breakdown == nil {
					t.Fatal("Breakdown should be present")
				}
				if report.Breakdown.Total != 186 {
					t.Errorf("Breakdown.Total = %d, want 186", report.Breakdown.Total)
				}
				if report.Breakdown.Raw != 186.25 {
					t.Errorf("Breakdown.Raw = %v, want 186.25", report.Breakdown.Raw)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := fixedJSONFormatter(&buf, tt.opts, tt.indent).Recommendation(testResult(t)); err != nil {
				t.Fatalf("Recommendation() error = %v", err)
			}

			var report JSONRecommendation
			if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
				t.Fatalf("Failed to parse JSON: %v", err)
			}

			if report.Header.Tool != "stackpick" {
				t.Errorf("Tool = %q, want %q", report.Header.Tool, "stackpick")
			}
			if report.Header.Kind != "recommendation" {
				t.Errorf("Kind = %q, want recommendation", report.Header.Kind)
			}
			if report.Header.Timestamp != "2025-01-01T00:00:00Z" {
				t.Errorf("Timestamp = %q", report.Header.Timestamp)
			}
			if report.Winner.ID != "alpha" || report.Winner.Score != 186 || report.Winner.Rank != 1 {
				t.Errorf("Winner = %+v", report.Winner)
			}
			if len(report.RunnersUp) != 2 || report.RunnersUp[0].ID != "beta" {
				t.Errorf("RunnersUp = %+v", report.RunnersUp)
			}
			if report.Preset != testPreset {
				t.Errorf("Preset = %+v, want %+v", report.Preset, testPreset)
			}
			if len(report.Chips) != 3 {
				t.Errorf("Chips = %v, want 3 chips", report.Chips)
			}
			if report.Explanation == "" {
				t.Error("Explanation is empty")
			}

			tt.validate(t, report, buf.String())
		})
	}
}

func TestJSONFormatter_Ranking(t *testing.T) {
	var buf bytes.Buffer
	if err := fixedJSONFormatter(&buf, Options{}, true).Ranking(testPreset, testResult(t).Ranking); err != nil {
		t.Fatalf("Ranking() error = %v", err)
	}

	var report JSONRanking
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	wantIDs := []string{"alpha", "beta", "gamma"}
	wantScores := []int{186, 100, -8}
	if len(report.Entries) != len(wantIDs) {
		t.Fatalf("got %d entries, want %d", len(report.Entries), len(wantIDs))
	}
	for i, e := range report.Entries {
		if e.ID != wantIDs[i] || e.Score != wantScores[i] || e.Rank != i+1 {
			t.Errorf("entry %d = %+v, want id %s score %d rank %d", i, e, wantIDs[i], wantScores[i], i+1)
		}
	}
}

func TestJSONFormatter_Comparison(t *testing.T) {
	var buf bytes.Buffer
	if err := fixedJSONFormatter(&buf, Options{}, true).Comparison(testComparison(t)); err != nil {
		t.Fatalf("Comparison() error = %v", err)
	}

	var report struct {
		Header JSONHeader `json:"header"`
		Rows   []struct {
			Metric  string   `json:"metric"`
			Values  []int    `json:"values"`
			Leaders []string `json:"leaders"`
		} `json:"rows"`
		Averages []float64 `json:"averages"`
	}
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if report.Header.Kind != "comparison" {
		t.Errorf("Kind = %q", report.Header.Kind)
	}
	if len(report.Rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(report.Rows))
	}
	if report.Rows[0].Metric != "performance" || report.Rows[0].Leaders[0] != "beta" {
		t.Errorf("first row = %+v", report.Rows[0])
	}
	if len(report.Averages) != 2 {
		t.Errorf("Averages = %v", report.Averages)
	}
}

func TestJSONFormatter_Catalog(t *testing.T) {
	var buf bytes.Buffer
	if err := fixedJSONFormatter(&buf, Options{}, false).Catalog("bundled", testFrameworks()); err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}

	raw := buf.String()
	for _, want := range []string{`"source":"bundled"`, `"id":"alpha"`, `"learningCurve":70`, `"tags":["beginner-friendly","fast-development"]`} {
		if !strings.Contains(raw, want) {
			t.Errorf("JSON missing %s:\n%s", want, raw)
		}
	}
}

func TestJSONFormatter_Validation(t *testing.T) {
	tests := []struct {
		name       string
		report     ValidationReport
		wantPassed bool
		wantIssues int
	}{
		{"clean", ValidationReport{Source: "x.yaml", Files: 1, Entries: 3}, true, 0},
		{
			"issues",
			ValidationReport{Source: "x.yaml", Files: 1, Issues: []types.ValidationIssue{
				{File: "x.yaml", Message: "bad", Severity: types.SeverityError, Source: types.SourceSchema},
			}},
			false,
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := fixedJSONFormatter(&buf, Options{}, false).Validation(tt.report); err != nil {
				t.Fatalf("Validation() error = %v", err)
			}

			if !strings.Contains(buf.String(), `"issues":[`) {
				t.Errorf("issues should always be an array:\n%s", buf.String())
			}

			var report JSONValidation
			if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
				t.Fatalf("Failed to parse JSON: %v", err)
			}
			if report.Passed != tt.wantPassed {
				t.Errorf("Passed = %v, want %v", report.Passed, tt.wantPassed)
			}
			if len(report.Issues) != tt.wantIssues {
				t.Errorf("got %d issues, want %d", len(report.Issues), tt.wantIssues)
			}
		})
	}
}
