package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are the glob patterns that identify catalog files below a
// catalog directory.
var DefaultPatterns = []string{"**/*.yaml", "**/*.yml"}

// File represents a discovered catalog file with its metadata
type File struct {
	Path     string
	RelPath  string
	Size     int64
	Contents []byte
}

// FileDiscovery manages catalog file discovery
type FileDiscovery struct {
	rootPath       string
	followSymlinks bool
}

// NewFileDiscovery creates a new FileDiscovery instance
func NewFileDiscovery(rootPath string, followSymlinks bool) *FileDiscovery {
	return &FileDiscovery{
		rootPath:       rootPath,
		followSymlinks: followSymlinks,
	}
}

// DiscoverFiles finds all catalog files below the root, ordered by relative
// path so that catalog order is stable across runs.
func (fd *FileDiscovery) DiscoverFiles() ([]File, error) {
	return fd.DiscoverFilesWithPatterns(DefaultPatterns)
}

// DiscoverFilesWithPatterns finds files matching any of the given patterns.
// A file matched by more than one pattern is returned once.
func (fd *FileDiscovery) DiscoverFilesWithPatterns(patterns []string) ([]File, error) {
	seen := make(map[string]bool)
	var files []File

	for _, pattern := range patterns {
		// Use doublestar for glob matching with ** patterns
		matches, err := doublestar.Glob(os.DirFS(fd.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			f, ok, err := fd.processMatch(match)
			if err != nil {
				return nil, err
			}
			if ok {
				seen[match] = true
				files = append(files, f)
			}
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})

	return files, nil
}

// processMatch converts a glob match into a File, returning false if the match should be skipped.
func (fd *FileDiscovery) processMatch(match string) (File, bool, error) {
	fullPath := filepath.Join(fd.rootPath, match)

	linfo, err := os.Lstat(fullPath)
	if err != nil {
		return File{}, false, nil
	}

	readPath := fullPath
	if linfo.Mode()&os.ModeSymlink != 0 {
		resolved, ok := fd.resolveSymlink(fullPath)
		if !ok {
			return File{}, false, nil
		}
		readPath = resolved
	}

	info, err := os.Stat(readPath)
	if err != nil || info.IsDir() {
		return File{}, false, nil
	}

	contents, err := os.ReadFile(readPath)
	if err != nil {
		return File{}, false, fmt.Errorf("error reading %s: %w", fullPath, err)
	}

	return File{
		Path:     fullPath,
		RelPath:  filepath.ToSlash(match),
		Size:     info.Size(),
		Contents: contents,
	}, true, nil
}

// resolveSymlink follows a symlink if configured, returning the resolved path.
// Links that leave the root are skipped.
func (fd *FileDiscovery) resolveSymlink(fullPath string) (string, bool) {
	if !fd.followSymlinks {
		return "", false
	}

	realPath, err := filepath.EvalSymlinks(fullPath)
	if err != nil {
		return "", false
	}

	realRoot, err := filepath.EvalSymlinks(fd.rootPath)
	if err != nil {
		return "", false
	}

	if realPath != realRoot && !strings.HasPrefix(realPath, realRoot+string(filepath.Separator)) {
		return "", false
	}

	return realPath, true
}
