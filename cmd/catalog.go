package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dotcommander/stackpick/internal/output"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate framework catalogs",
	Long: `The catalog command lists the frameworks stackpick scores and validates
catalog files against the catalog schema.

A catalog is a YAML file with a top-level 'frameworks' list, or a directory of
such files (*.yaml, *.yml), read in path order.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog entries",
	Args:  cobra.NoArgs,
	Run:   run(runCatalogList),
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a catalog file or directory",
	Long: `The validate command checks every catalog document and reports all issues:
schema violations, YAML errors, entries missing a metric and duplicate ids.

Without a path it validates the catalog from --catalog or the configuration,
or the bundled catalog. Exits 1 when any issue is found.`,
	Example: `  stackpick catalog validate ./catalogs
  stackpick catalog validate my-frameworks.yaml -f json`,
	Args: cobra.MaximumNArgs(1),
	Run:  run(runCatalogValidate),
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	c, err := s.loadCatalog()
	if err != nil {
		return err
	}

	return s.out.Catalog(s.catalogSource(), c.Frameworks())
}

func runCatalogValidate(args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		s.cfg.Catalog = args[0]
	}

	l, err := s.loader()
	if err != nil {
		return err
	}

	result, err := l.Check(s.cfg.Catalog)
	if err != nil {
		return err
	}

	report := output.ValidationReport{
		Source:  s.catalogSource(),
		Files:   result.Files,
		Entries: result.Entries,
		Issues:  result.Issues,
	}
	if err := s.out.Validation(report); err != nil {
		return err
	}

	if !report.Passed() {
		exitFunc(1)
	}
	return nil
}
