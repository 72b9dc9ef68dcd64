package catalog

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/stackpick/internal/discovery"
	"github.com/dotcommander/stackpick/internal/schema"
	"github.com/dotcommander/stackpick/internal/types"
)

//go:embed data/frameworks.yaml
var bundledCatalog []byte

// BundledName labels the embedded catalog in issues and logs.
const BundledName = "bundled:frameworks.yaml"

// document is the on-disk shape of a catalog file.
type document struct {
	Frameworks []Framework `yaml:"frameworks"`
}

// IssueError reports the validation issues that stopped a catalog load.
type IssueError struct {
	Issues []types.ValidationIssue
}

func (e *IssueError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, fmt.Sprintf("%s: %s", issue.File, issue.Message))
	}
	return fmt.Sprintf("catalog has %d issue(s): %s", len(e.Issues), strings.Join(msgs, "; "))
}

// Loader reads catalogs from the bundled data, a YAML file, or a directory of
// YAML files.
type Loader struct {
	validator      *schema.Validator
	followSymlinks bool
	logger         *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithSchema enables CUE validation of every catalog document. The validator
// must have its schemas loaded.
func WithSchema(v *schema.Validator) LoaderOption {
	return func(l *Loader) { l.validator = v }
}

// WithFollowSymlinks makes directory discovery follow symlinks that stay
// inside the catalog directory.
func WithFollowSymlinks(follow bool) LoaderOption {
	return func(l *Loader) { l.followSymlinks = follow }
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a Loader. Without WithSchema, documents are decoded
// without schema checks.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// Bundled returns the embedded catalog without schema checks.
func Bundled() (*Catalog, error) {
	return NewLoader().LoadBundled()
}

// Load dispatches on path: empty loads the bundled catalog, a directory is
// loaded with LoadDir, anything else with LoadFile.
func (l *Loader) Load(path string) (*Catalog, error) {
	sources, err := l.sources(path)
	if err != nil {
		return nil, err
	}
	return l.build(sources)
}

// LoadBundled loads the embedded catalog.
func (l *Loader) LoadBundled() (*Catalog, error) {
	return l.build([]source{{name: BundledName, data: bundledCatalog}})
}

// LoadFile loads a single YAML catalog file.
func (l *Loader) LoadFile(path string) (*Catalog, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return l.build([]source{src})
}

// LoadDir loads every catalog file below dir, in relative path order.
func (l *Loader) LoadDir(dir string) (*Catalog, error) {
	sources, err := l.dirSources(dir)
	if err != nil {
		return nil, err
	}
	return l.build(sources)
}

// CheckResult is what Check found in a catalog.
type CheckResult struct {
	Files   int
	Entries int
	Issues  []types.ValidationIssue
}

// Check loads path like Load but collects every issue instead of stopping at
// the first failing document. Entries missing a metric, with an unknown
// category or with out-of-range values are reported even when schema
// validation is off.
func (l *Loader) Check(path string) (*CheckResult, error) {
	sources, err := l.sources(path)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{Files: len(sources)}
	seen := make(map[string]bool)
	for _, src := range sources {
		frameworks, docIssues := l.decode(src)
		result.Issues = append(result.Issues, docIssues...)
		result.Entries += len(frameworks)

		for _, f := range frameworks {
			if seen[f.ID] {
				result.Issues = append(result.Issues, loaderIssue(src.name, fmt.Sprintf("%s: %q", ErrDuplicateID, f.ID)))
			}
			seen[f.ID] = true

			for _, problem := range f.Problems() {
				result.Issues = append(result.Issues, loaderIssue(src.name, problem))
			}
		}
	}

	return result, nil
}

type source struct {
	name string
	data []byte
}

func (l *Loader) sources(path string) ([]source, error) {
	if path == "" {
		return []source{{name: BundledName, data: bundledCatalog}}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog %s: %w", path, err)
	}
	if info.IsDir() {
		return l.dirSources(path)
	}

	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return []source{src}, nil
}

func (l *Loader) dirSources(dir string) ([]source, error) {
	files, err := discovery.NewFileDiscovery(dir, l.followSymlinks).DiscoverFiles()
	if err != nil {
		return nil, fmt.Errorf("error discovering catalog files in %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no catalog files found in %s", dir)
	}

	sources := make([]source, 0, len(files))
	for _, f := range files {
		l.logger.Debug("discovered catalog file", "path", f.RelPath, "bytes", f.Size)
		sources = append(sources, source{name: f.Path, data: f.Contents})
	}
	return sources, nil
}

func readSource(path string) (source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return source{}, fmt.Errorf("error reading catalog %s: %w", path, err)
	}
	return source{name: path, data: data}, nil
}

func (l *Loader) build(sources []source) (*Catalog, error) {
	var all []Framework
	for _, src := range sources {
		frameworks, issues := l.decode(src)
		if len(issues) > 0 {
			return nil, &IssueError{Issues: issues}
		}
		l.logger.Debug("loaded catalog document", "source", src.name, "frameworks", len(frameworks))
		all = append(all, frameworks...)
	}
	return New(all)
}

// decode parses one document, running schema validation first when enabled.
func (l *Loader) decode(src source) ([]Framework, []types.ValidationIssue) {
	if l.validator != nil {
		var raw map[string]any
		if err := yaml.Unmarshal(src.data, &raw); err != nil {
			return nil, []types.ValidationIssue{yamlIssue(src.name, err)}
		}
		if raw == nil {
			raw = map[string]any{}
		}
		issues, err := l.validator.ValidateCatalog(src.name, raw)
		if err != nil {
			return nil, []types.ValidationIssue{{
				File:     src.name,
				Message:  err.Error(),
				Severity: types.SeverityError,
				Source:   types.SourceSchema,
			}}
		}
		if len(issues) > 0 {
			return nil, issues
		}
	}

	var doc document
	if err := yaml.Unmarshal(src.data, &doc); err != nil {
		return nil, []types.ValidationIssue{yamlIssue(src.name, err)}
	}
	return doc.Frameworks, nil
}

func yamlIssue(file string, err error) types.ValidationIssue {
	return loaderIssue(file, fmt.Sprintf("error parsing YAML: %v", err))
}

func loaderIssue(file, msg string) types.ValidationIssue {
	return types.ValidationIssue{
		File:     file,
		Message:  msg,
		Severity: types.SeverityError,
		Source:   types.SourceLoader,
	}
}
