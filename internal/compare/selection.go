// Package compare builds side-by-side metric comparisons of a few selected
// frameworks.
package compare

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dotcommander/stackpick/internal/catalog"
)

// MaxSelected is the most frameworks a comparison holds.
const MaxSelected = 4

var (
	// ErrSelectionFull is returned when adding to a selection at capacity.
	ErrSelectionFull = errors.New("selection is full")
	// ErrUnknownFramework is returned for ids the catalog does not contain.
	ErrUnknownFramework = errors.New("unknown framework")
)

// Selection is an ordered set of framework ids chosen for comparison.
// It is owned by the caller; the zero value is not usable, use NewSelection.
type Selection struct {
	catalog *catalog.Catalog
	ids     []string
}

// NewSelection creates an empty selection over c.
func NewSelection(c *catalog.Catalog) *Selection {
	return &Selection{catalog: c, ids: make([]string, 0, MaxSelected)}
}

// Add appends id. Adding an id that is already selected is a no-op.
func (s *Selection) Add(id string) error {
	if _, ok := s.catalog.Get(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFramework, id)
	}
	if s.Has(id) {
		return nil
	}
	if len(s.ids) >= MaxSelected {
		return fmt.Errorf("%w: at most %d frameworks can be compared", ErrSelectionFull, MaxSelected)
	}
	s.ids = append(s.ids, id)
	return nil
}

// Remove drops id and reports whether it was selected.
func (s *Selection) Remove(id string) bool {
	i := slices.Index(s.ids, id)
	if i < 0 {
		return false
	}
	s.ids = slices.Delete(s.ids, i, i+1)
	return true
}

// Toggle removes id when selected and adds it otherwise. It reports whether
// id is selected afterwards.
func (s *Selection) Toggle(id string) (bool, error) {
	if s.Remove(id) {
		return false, nil
	}
	if err := s.Add(id); err != nil {
		return false, err
	}
	return true, nil
}

// Has reports whether id is selected.
func (s *Selection) Has(id string) bool {
	return slices.Contains(s.ids, id)
}

// IDs returns the selected ids in selection order.
func (s *Selection) IDs() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.ids)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = s.ids[:0]
}

// Build compares the current selection.
func (s *Selection) Build() (*Comparison, error) {
	return Build(s.catalog, s.ids)
}
