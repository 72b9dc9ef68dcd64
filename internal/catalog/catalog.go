package catalog

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when two catalog entries share an id.
var ErrDuplicateID = errors.New("duplicate framework id")

// Catalog is an ordered, read-only collection of frameworks.
type Catalog struct {
	frameworks []Framework
	index      map[string]int
}

// New builds a Catalog, keeping the order of frameworks.
func New(frameworks []Framework) (*Catalog, error) {
	c := &Catalog{
		frameworks: make([]Framework, 0, len(frameworks)),
		index:      make(map[string]int, len(frameworks)),
	}
	for _, f := range frameworks {
		if _, dup := c.index[f.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, f.ID)
		}
		c.index[f.ID] = len(c.frameworks)
		c.frameworks = append(c.frameworks, f)
	}
	return c, nil
}

// Frameworks returns the entries in catalog order. The slice is a copy.
func (c *Catalog) Frameworks() []Framework {
	out := make([]Framework, len(c.frameworks))
	copy(out, c.frameworks)
	return out
}

// Get looks up a framework by id.
func (c *Catalog) Get(id string) (Framework, bool) {
	i, ok := c.index[id]
	if !ok {
		return Framework{}, false
	}
	return c.frameworks[i], true
}

// IDs returns the ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.frameworks))
	for i, f := range c.frameworks {
		ids[i] = f.ID
	}
	return ids
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.frameworks)
}
