// Package wizard collects a questionnaire response interactively.
package wizard

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/dotcommander/stackpick/internal/preset"
)

// answers holds the raw form values before they become a preset.
type answers struct {
	experience string
	scale      string
	priority   string
	kind       string
}

func (a *answers) preset() preset.Preset {
	return preset.Preset{
		Experience: preset.Experience(a.experience),
		Scale:      preset.Scale(a.scale),
		Priority:   preset.Priority(a.priority),
		Type:       preset.ProjectType(a.kind),
	}
}

// Run asks the four questionnaire questions on in/out and returns the
// validated preset. Fields already set in initial are pre-selected.
func Run(in io.Reader, out io.Writer, initial preset.Preset) (preset.Preset, error) {
	a := &answers{
		experience: string(initial.Experience),
		scale:      string(initial.Scale),
		priority:   string(initial.Priority),
		kind:       string(initial.Type),
	}

	form := newForm(a).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return preset.Preset{}, fmt.Errorf("wizard failed: %w", err)
	}

	p := a.preset()
	if err := p.Validate(); err != nil {
		return preset.Preset{}, err
	}
	return p, nil
}

func newForm(a *answers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What is your experience level?").
				Options(selectOptions(preset.ExperienceOptions)...).
				Value(&a.experience),
			huh.NewSelect[string]().
				Title("How large is the project?").
				Options(selectOptions(preset.ScaleOptions)...).
				Value(&a.scale),
			huh.NewSelect[string]().
				Title("What matters most?").
				Options(selectOptions(preset.PriorityOptions)...).
				Value(&a.priority),
			huh.NewSelect[string]().
				Title("What are you building?").
				Options(selectOptions(preset.TypeOptions)...).
				Value(&a.kind),
		),
	)
}

func selectOptions(opts []preset.Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))
	for i, o := range opts {
		out[i] = huh.NewOption(o.Label, o.Value)
	}
	return out
}
