package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/stackpick/internal/preset"
)

// presetFlags holds the four questionnaire answers given on the command line
type presetFlags struct {
	experience  string
	scale       string
	priority    string
	projectType string
}

func (pf *presetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pf.experience, "experience", "", "Experience level (beginner|intermediate|advanced)")
	cmd.Flags().StringVar(&pf.scale, "scale", "", "Project scale (small|medium|large)")
	cmd.Flags().StringVar(&pf.priority, "priority", "", "Top priority (speed|performance|jobs)")
	cmd.Flags().StringVar(&pf.projectType, "type", "", "Project type (frontend|backend|fullstack)")
}

// partial returns whatever was given, unvalidated
func (pf *presetFlags) partial() preset.Preset {
	return preset.New(pf.experience, pf.scale, pf.priority, pf.projectType)
}

// resolve returns the validated preset, asking for the answers interactively
// when requested
func (pf *presetFlags) resolve(interactive bool) (preset.Preset, error) {
	if interactive {
		return runWizard(stdin, stderr, pf.partial())
	}
	return preset.Parse(pf.experience, pf.scale, pf.priority, pf.projectType)
}
