package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/stackpick/internal/recommend"
	"github.com/dotcommander/stackpick/internal/wizard"
)

var (
	recommendPreset      presetFlags
	recommendInteractive bool
	recommendBreakdown   bool
)

// Swapped in tests
var runWizard = wizard.Run

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend the best framework for your answers",
	Long: `The recommend command scores every catalog entry against your answers and
prints the winner, the reasons it won, and the two runners-up.

All four answers are required:
  --experience  beginner | intermediate | advanced
  --scale       small | medium | large
  --priority    speed | performance | jobs
  --type        frontend | backend | fullstack

Use --interactive to be asked for them instead. Answers already given as
flags are pre-selected.`,
	Example: `  stackpick recommend --experience beginner --scale small --priority jobs --type frontend
  stackpick recommend -i
  stackpick recommend --experience advanced --scale large --priority performance --type backend --breakdown -f json`,
	Args: cobra.NoArgs,
	Run:  run(runRecommend),
}

func init() {
	recommendPreset.register(recommendCmd)
	recommendCmd.Flags().BoolVarP(&recommendInteractive, "interactive", "i", false, "Answer the questionnaire interactively")
	recommendCmd.Flags().BoolVar(&recommendBreakdown, "breakdown", false, "Show how the winner's score was computed")

	viper.BindPFlag("showBreakdown", recommendCmd.Flags().Lookup("breakdown"))

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(args []string) error {
	p, err := recommendPreset.resolve(recommendInteractive)
	if err != nil {
		return fmt.Errorf("incomplete answers: %w", err)
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	c, err := s.loadCatalog()
	if err != nil {
		return err
	}

	result, err := recommend.NewEngine(s.ranker(), s.logger).Recommend(c.Frameworks(), p)
	if err != nil {
		return fmt.Errorf("error computing recommendation: %w", err)
	}

	return s.out.Recommendation(result)
}
