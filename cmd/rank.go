package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	rankPreset      presetFlags
	rankInteractive bool
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank every catalog entry for your answers",
	Long: `The rank command scores every catalog entry against your answers and prints
the full ranking, highest score first. Entries with equal scores keep their
catalog order.

Takes the same answer flags as recommend.`,
	Example: `  stackpick rank --experience intermediate --scale medium --priority speed --type fullstack
  stackpick rank -i --parallel --concurrency 8`,
	Args: cobra.NoArgs,
	Run:  run(runRank),
}

func init() {
	rankPreset.register(rankCmd)
	rankCmd.Flags().BoolVarP(&rankInteractive, "interactive", "i", false, "Answer the questionnaire interactively")

	rootCmd.AddCommand(rankCmd)
}

func runRank(args []string) error {
	p, err := rankPreset.resolve(rankInteractive)
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

	entries, err := s.ranker().Rank(c.Frameworks(), p)
	if err != nil {
		return fmt.Errorf("error ranking catalog: %w", err)
	}

	return s.out.Ranking(p, entries)
}
