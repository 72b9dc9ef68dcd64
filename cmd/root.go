package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/config"
	"github.com/dotcommander/stackpick/internal/output"
	"github.com/dotcommander/stackpick/internal/outputters"
	"github.com/dotcommander/stackpick/internal/ranking"
	"github.com/dotcommander/stackpick/internal/schema"
)

var (
	catalogPath  string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	parallel     bool
	concurrency  int
	noSchema     bool
)

// Swapped in tests
var (
	exitFunc           = os.Exit
	stdout   io.Writer = os.Stdout
	stderr   io.Writer = os.Stderr
	stdin    io.Reader = os.Stdin
)

var rootCmd = &cobra.Command{
	Use:   "stackpick",
	Short: "Pick a web framework from four questions",
	Long: `Stackpick recommends a web framework from a short questionnaire: your
experience, the project's scale, what you value most, and whether you are
building a frontend, a backend, or both.

Every catalog entry is scored against your answers; the best match is shown
with the reasons it won, followed by the two runners-up.

The catalog is bundled, or loaded from a YAML file or directory with --catalog.`,
	Version:      output.Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "Catalog file or directory (bundled catalog if not specified)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&parallel, "parallel", false, "Score catalog entries concurrently")
	rootCmd.PersistentFlags().IntVar(&concurrency, "concurrency", 4, "Maximum concurrent scorers with --parallel")
	rootCmd.PersistentFlags().BoolVar(&noSchema, "no-schema", false, "Skip CUE schema validation of catalog files")

	viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("parallel", rootCmd.PersistentFlags().Lookup("parallel"))
	viper.BindPFlag("concurrency", rootCmd.PersistentFlags().Lookup("concurrency"))
}

func initConfig() {
	config.SetDefaults()
}

// run adapts a command body to cobra, printing the error and exiting 1
func run(fn func(args []string) error) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := fn(args); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	}
}

// session is the per-invocation state every command needs
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	out    *outputters.Outputter
}

func newSession() (*session, error) {
	cfg, err := config.LoadConfig(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	if noSchema {
		cfg.Schemas.Enabled = false
	}

	logger := newLogger(cfg, stderr)
	slog.SetDefault(logger)
	logger.Debug("configuration loaded",
		"catalog", cfg.Catalog,
		"format", cfg.Format,
		"parallel", cfg.Parallel,
		"schemas", cfg.Schemas.Enabled)

	out := outputters.NewOutputter(cfg)
	out.SetStdout(stdout)

	return &session{cfg: cfg, logger: logger, out: out}, nil
}

// newLogger writes text logs to w at Info, Debug when verbose, Error when quiet
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case cfg.Verbose:
		level = slog.LevelDebug
	case cfg.Quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (s *session) loader() (*catalog.Loader, error) {
	opts := []catalog.LoaderOption{
		catalog.WithLogger(s.logger),
		catalog.WithFollowSymlinks(s.cfg.FollowSymlinks),
	}
	if s.cfg.Schemas.Enabled {
		v := schema.NewValidator()
		if err := v.LoadSchemas(); err != nil {
			return nil, fmt.Errorf("error loading catalog schema: %w", err)
		}
		opts = append(opts, catalog.WithSchema(v))
	}
	return catalog.NewLoader(opts...), nil
}

func (s *session) loadCatalog() (*catalog.Catalog, error) {
	l, err := s.loader()
	if err != nil {
		return nil, err
	}
	c, err := l.Load(s.cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}
	s.logger.Debug("catalog ready", "source", s.catalogSource(), "frameworks", c.Len())
	return c, nil
}

func (s *session) catalogSource() string {
	if s.cfg.Catalog == "" {
		return catalog.BundledName
	}
	return s.cfg.Catalog
}

func (s *session) ranker() *ranking.Ranker {
	return ranking.NewRanker(ranking.Options{
		Parallel: s.cfg.Parallel,
		Workers:  s.cfg.Concurrency,
		Logger:   s.logger,
	})
}
