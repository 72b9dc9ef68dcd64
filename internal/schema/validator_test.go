package schema

import (
	"strings"
	"testing"

	"github.com/dotcommander/stackpick/internal/types"
)

func validFramework() map[string]any {
	return map[string]any{
		"id":       "react",
		"name":     "React",
		"category": "Frontend",
		"scores": map[string]any{
			"performance":      88,
			"learningCurve":    75,
			"communitySupport": 98,
			"jobDemand":        97,
			"scalability":      90,
		},
		"tags": []any{"high-demand", "enterprise"},
	}
}

func catalogOf(frameworks ...map[string]any) map[string]any {
	list := make([]any, 0, len(frameworks))
	for _, f := range frameworks {
		list = append(list, f)
	}
	return map[string]any{"frameworks": list}
}

// TestNewValidator tests the Validator constructor
func TestNewValidator(t *testing.T) {
	v := NewValidator()
	if v == nil {
		t.Fatal("NewValidator returned nil")
	}
	if v.ctx == nil {
		t.Error("Validator.ctx is nil")
	}
	if len(v.schemas) != 0 {
		t.Errorf("Expected empty schemas map, got %d entries", len(v.schemas))
	}
}

// TestLoadSchemas tests loading embedded CUE schemas
func TestLoadSchemas(t *testing.T) {
	v := NewValidator()
	if err := v.LoadSchemas(); err != nil {
		t.Fatalf("LoadSchemas failed: %v", err)
	}
	if !v.HasSchema("catalog") {
		t.Error("Expected schema \"catalog\" to be loaded")
	}
}

func TestValidateCatalog_NotLoaded(t *testing.T) {
	v := NewValidator()
	if _, err := v.ValidateCatalog("x.yaml", catalogOf(validFramework())); err == nil {
		t.Error("expected error when schema is not loaded")
	}
}

func TestValidateCatalog(t *testing.T) {
	v := NewValidator()
	if err := v.LoadSchemas(); err != nil {
		t.Fatalf("LoadSchemas failed: %v", err)
	}

	tests := []struct {
		name      string
		data      map[string]any
		wantError bool
	}{
		{
			name:      "valid catalog",
			data:      catalogOf(validFramework()),
			wantError: false,
		},
		{
			name: "valid with optional fields",
			data: func() map[string]any {
				f := validFramework()
				f["tagline"] = "A JavaScript library for building user interfaces"
				f["creator"] = "Meta"
				f["year"] = 2013
				f["language"] = "JavaScript"
				f["fullstackAffinity"] = 25
				return catalogOf(f)
			}(),
			wantError: false,
		},
		{
			name:      "empty framework list",
			data:      map[string]any{"frameworks": []any{}},
			wantError: true,
		},
		{
			name: "missing scalability",
			data: func() map[string]any {
				f := validFramework()
				delete(f["scores"].(map[string]any), "scalability")
				return catalogOf(f)
			}(),
			wantError: true,
		},
		{
			name: "metric out of range",
			data: func() map[string]any {
				f := validFramework()
				f["scores"].(map[string]any)["performance"] = 101
				return catalogOf(f)
			}(),
			wantError: true,
		},
		{
			name: "unknown category",
			data: func() map[string]any {
				f := validFramework()
				f["category"] = "Mobile"
				return catalogOf(f)
			}(),
			wantError: true,
		},
		{
			name: "uppercase id",
			data: func() map[string]any {
				f := validFramework()
				f["id"] = "React"
				return catalogOf(f)
			}(),
			wantError: true,
		},
		{
			name: "unknown field",
			data: func() map[string]any {
				f := validFramework()
				f["stars"] = 200000
				return catalogOf(f)
			}(),
			wantError: true,
		},
		{
			name: "missing name",
			data: func() map[string]any {
				f := validFramework()
				delete(f, "name")
				return catalogOf(f)
			}(),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := v.ValidateCatalog("catalog.yaml", tt.data)
			if err != nil {
				t.Fatalf("ValidateCatalog returned error: %v", err)
			}
			hasErrors := len(issues) > 0
			if hasErrors != tt.wantError {
				t.Errorf("ValidateCatalog() issues = %v, wantError %v", issues, tt.wantError)
			}
			for _, issue := range issues {
				if issue.File != "catalog.yaml" {
					t.Errorf("issue.File = %q, want catalog.yaml", issue.File)
				}
				if issue.Severity != types.SeverityError {
					t.Errorf("issue.Severity = %q, want error", issue.Severity)
				}
				if !strings.HasPrefix(issue.Message, "schema: ") {
					t.Errorf("issue.Message = %q, want schema prefix", issue.Message)
				}
			}
		})
	}
}
