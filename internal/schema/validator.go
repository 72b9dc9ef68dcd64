// Package schema validates catalog documents against the embedded CUE schema.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/dotcommander/stackpick/internal/types"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Validator handles CUE validation of catalog documents
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas compiles every CUE file in the embedded schemas directory.
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		// embed.FS paths always use forward slashes
		content, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return fmt.Errorf("could not read schema %s: %w", entry.Name(), err)
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return fmt.Errorf("could not compile schema %s: %w", entry.Name(), instErr)
		}

		// catalog.cue -> catalog
		schemaName := strings.TrimSuffix(entry.Name(), ".cue")
		v.schemas[schemaName] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}

	return nil
}

// HasSchema reports whether a schema with the given name has been loaded.
func (v *Validator) HasSchema(name string) bool {
	_, ok := v.schemas[name]
	return ok
}

// ValidateCatalog validates a decoded catalog document against #Catalog.
// file is only used to label the returned issues.
func (v *Validator) ValidateCatalog(file string, data map[string]any) ([]types.ValidationIssue, error) {
	schema, ok := v.schemas["catalog"]
	if !ok {
		return nil, fmt.Errorf("catalog schema not loaded")
	}
	return v.validateAgainstSchema(schema, data, "catalog", file)
}

// validateAgainstSchema validates data against the #<SchemaType> definition of schema
func (v *Validator) validateAgainstSchema(schema cue.Value, data map[string]any, schemaType, file string) ([]types.ValidationIssue, error) {
	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	defPath := cue.ParsePath(fmt.Sprintf("#%s", strings.ToUpper(schemaType[:1])+schemaType[1:]))
	def := schema.LookupPath(defPath)
	if !def.Exists() {
		return nil, fmt.Errorf("schema definition %s not found", defPath)
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractIssues(err, file), nil
	}

	// Concreteness catches missing required fields
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractIssues(err, file), nil
	}

	return nil, nil
}

// extractIssues splits a CUE error into one issue per underlying error
func extractIssues(err error, file string) []types.ValidationIssue {
	var issues []types.ValidationIssue
	for _, e := range cueerrors.Errors(err) {
		issues = append(issues, types.ValidationIssue{
			File:     file,
			Message:  fmt.Sprintf("schema: %s", strings.TrimSpace(e.Error())),
			Severity: types.SeverityError,
			Source:   types.SourceSchema,
		})
	}
	if len(issues) == 0 {
		issues = append(issues, types.ValidationIssue{
			File:     file,
			Message:  fmt.Sprintf("schema: %v", err),
			Severity: types.SeverityError,
			Source:   types.SourceSchema,
		})
	}
	return issues
}
