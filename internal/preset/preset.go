// Package preset defines the four-answer questionnaire the recommendation
// engine scores against.
package preset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dotcommander/stackpick/internal/types"
)

// Experience is the user's self-reported skill level.
type Experience string

// Scale is the expected size of the project.
type Scale string

// Priority is what the user values most.
type Priority string

// ProjectType is the side of the stack the project needs.
type ProjectType string

const (
	Beginner     Experience = "beginner"
	Intermediate Experience = "intermediate"
	Advanced     Experience = "advanced"

	Small  Scale = "small"
	Medium Scale = "medium"
	Large  Scale = "large"

	Speed       Priority = "speed"
	Performance Priority = "performance"
	Jobs        Priority = "jobs"

	Frontend  ProjectType = "frontend"
	Backend   ProjectType = "backend"
	Fullstack ProjectType = "fullstack"
)

// Option is one selectable answer for a questionnaire field.
type Option struct {
	Value string
	Label string
}

// Domains of each field, in questionnaire order.
var (
	ExperienceOptions = []Option{
		{string(Beginner), "Beginner - new to web development"},
		{string(Intermediate), "Intermediate - shipped a few projects"},
		{string(Advanced), "Advanced - years of production experience"},
	}
	ScaleOptions = []Option{
		{string(Small), "Small - personal project or prototype"},
		{string(Medium), "Medium - startup or team product"},
		{string(Large), "Large - enterprise system"},
	}
	PriorityOptions = []Option{
		{string(Speed), "Development speed"},
		{string(Performance), "Runtime performance"},
		{string(Jobs), "Job market demand"},
	}
	TypeOptions = []Option{
		{string(Frontend), "Frontend"},
		{string(Backend), "Backend"},
		{string(Fullstack), "Full-stack"},
	}
)

// Preset is one complete questionnaire response.
type Preset struct {
	Experience Experience  `json:"experience" yaml:"experience" validate:"required,oneof=beginner intermediate advanced"`
	Scale      Scale       `json:"scale" yaml:"scale" validate:"required,oneof=small medium large"`
	Priority   Priority    `json:"priority" yaml:"priority" validate:"required,oneof=speed performance jobs"`
	Type       ProjectType `json:"type" yaml:"type" validate:"required,oneof=frontend backend fullstack"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that every field holds a value from its domain. Failures
// wrap types.ErrInvalidInput and name each offending field.
func (p Preset) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", types.ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		if fe.Tag() == "required" {
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s %q must be one of [%s]", field, fe.Value(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", types.ErrInvalidInput, strings.Join(msgs, "; "))
}

// New builds a preset from raw answers without validating it. Values are
// trimmed and lowercased.
func New(experience, scale, priority, projectType string) Preset {
	return Preset{
		Experience: Experience(normalize(experience)),
		Scale:      Scale(normalize(scale)),
		Priority:   Priority(normalize(priority)),
		Type:       ProjectType(normalize(projectType)),
	}
}

// Parse builds and validates a preset from raw answers.
func Parse(experience, scale, priority, projectType string) (Preset, error) {
	p := New(experience, scale, priority, projectType)
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// Complete reports whether every field has a value.
func (p Preset) Complete() bool {
	return p.Experience != "" && p.Scale != "" && p.Priority != "" && p.Type != ""
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// String renders the preset as key=value pairs.
func (p Preset) String() string {
	return fmt.Sprintf("experience=%s scale=%s priority=%s type=%s", p.Experience, p.Scale, p.Priority, p.Type)
}
