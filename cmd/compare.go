package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/stackpick/internal/compare"
)

var compareCmd = &cobra.Command{
	Use:   "compare <id>...",
	Short: "Compare up to four frameworks side by side",
	Long: `The compare command prints each metric for the given frameworks next to each
other, marking the highest value in every row, followed by each framework's
average score.

Between 1 and 4 catalog ids are accepted. Use 'stackpick catalog list' to see
the available ids.`,
	Example: `  stackpick compare react vue svelte
  stackpick compare django rails laravel fastapi -f markdown -o compare.md`,
	Args: cobra.RangeArgs(1, compare.MaxSelected),
	Run:  run(runCompare),
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	c, err := s.loadCatalog()
	if err != nil {
		return err
	}

	sel := compare.NewSelection(c)
	for _, id := range args {
		if err := sel.Add(id); err != nil {
			return fmt.Errorf("error selecting %s: %w", id, err)
		}
	}

	cmp, err := sel.Build()
	if err != nil {
		return fmt.Errorf("error building comparison: %w", err)
	}

	return s.out.Comparison(cmp)
}
