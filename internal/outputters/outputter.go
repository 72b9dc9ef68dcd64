package outputters

import (
	"fmt"
	"io"
	"os"

	"github.com/dotcommander/stackpick/internal/catalog"
	"github.com/dotcommander/stackpick/internal/compare"
	"github.com/dotcommander/stackpick/internal/config"
	"github.com/dotcommander/stackpick/internal/output"
	"github.com/dotcommander/stackpick/internal/preset"
	"github.com/dotcommander/stackpick/internal/ranking"
	"github.com/dotcommander/stackpick/internal/recommend"
)

// FormatterFactory creates formatters by format name
type FormatterFactory interface {
	CreateFormatter(format string, w io.Writer) (output.Formatter, error)
}

// DefaultFormatterFactory builds the console, json and markdown formatters
type DefaultFormatterFactory struct {
	opts output.Options
}

// NewDefaultFormatterFactory creates a factory from the configuration
func NewDefaultFormatterFactory(cfg *config.Config) *DefaultFormatterFactory {
	return &DefaultFormatterFactory{
		opts: output.Options{
			Quiet:         cfg.Quiet,
			Verbose:       cfg.Verbose,
			ShowBreakdown: cfg.ShowBreakdown,
		},
	}
}

// CreateFormatter returns the formatter for format writing to w
func (f *DefaultFormatterFactory) CreateFormatter(format string, w io.Writer) (output.Formatter, error) {
	switch format {
	case "console":
		return output.NewConsoleFormatter(w, f.opts), nil
	case "json":
		return output.NewJSONFormatter(w, f.opts, true), nil
	case "markdown":
		return output.NewMarkdownFormatter(w, f.opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Outputter routes reports to the configured format and destination
type Outputter struct {
	config  *config.Config
	factory FormatterFactory
	stdout  io.Writer
}

// NewOutputter creates a new Outputter writing to stdout unless the
// configuration names an output file
func NewOutputter(cfg *config.Config) *Outputter {
	return NewOutputterWithFactory(cfg, NewDefaultFormatterFactory(cfg))
}

// NewOutputterWithFactory creates an Outputter with a custom factory
func NewOutputterWithFactory(cfg *config.Config, factory FormatterFactory) *Outputter {
	return &Outputter{
		config:  cfg,
		factory: factory,
		stdout:  os.Stdout,
	}
}

// SetStdout replaces the writer used when no output file is configured
func (o *Outputter) SetStdout(w io.Writer) {
	o.stdout = w
}

// Emit creates the formatter and hands it to render. When an output file is
// configured, the report is written there instead of stdout.
func (o *Outputter) Emit(render func(output.Formatter) error) (err error) {
	w := o.stdout
	if o.config.Output != "" {
		file, createErr := os.Create(o.config.Output)
		if createErr != nil {
			return fmt.Errorf("error creating output file %s: %w", o.config.Output, createErr)
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("error writing to file %s: %w", o.config.Output, closeErr)
			}
		}()
		w = file
	}

	formatter, err := o.factory.CreateFormatter(o.config.Format, w)
	if err != nil {
		return err
	}
	if err := render(formatter); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}

// Recommendation emits a recommendation report
func (o *Outputter) Recommendation(r *recommend.Result) error {
	return o.Emit(func(f output.Formatter) error { return f.Recommendation(r) })
}

// Ranking emits a ranking report
func (o *Outputter) Ranking(p preset.Preset, entries []ranking.ScoredEntry) error {
	return o.Emit(func(f output.Formatter) error { return f.Ranking(p, entries) })
}

// Comparison emits a comparison report
func (o *Outputter) Comparison(c *compare.Comparison) error {
	return o.Emit(func(f output.Formatter) error { return f.Comparison(c) })
}

// Catalog emits a catalog listing
func (o *Outputter) Catalog(source string, frameworks []catalog.Framework) error {
	return o.Emit(func(f output.Formatter) error { return f.Catalog(source, frameworks) })
}

// Validation emits a catalog validation report
func (o *Outputter) Validation(report output.ValidationReport) error {
	return o.Emit(func(f output.Formatter) error { return f.Validation(report) })
}
