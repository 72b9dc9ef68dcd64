package catalog

import (
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"
)

// Well-known tags the scoring rules look for.
const (
	TagBeginnerFriendly = "beginner-friendly"
	TagFastDevelopment  = "fast-development"
	TagEnterprise       = "enterprise"
	TagLargeScale       = "large-scale"
	TagLightweight      = "lightweight"
	TagScalable         = "scalable"
	TagHighPerformance  = "high-performance"
	TagHighDemand       = "high-demand"
)

// TagSet is an unordered set of tag labels.
// It reads and writes as a sorted list in YAML and JSON.
type TagSet map[string]struct{}

// NewTagSet builds a TagSet from labels. Duplicates collapse.
func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

// Has reports whether tag is in the set. A nil set has no tags.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// HasAny reports whether at least one of tags is in the set.
func (s TagSet) HasAny(tags ...string) bool {
	for _, t := range tags {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// UnmarshalYAML decodes a YAML sequence of strings.
func (s *TagSet) UnmarshalYAML(node *yaml.Node) error {
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*s = NewTagSet(list...)
	return nil
}

// MarshalYAML encodes the set as a sorted sequence.
func (s TagSet) MarshalYAML() (any, error) {
	return s.Sorted(), nil
}

// UnmarshalJSON decodes a JSON array of strings.
func (s *TagSet) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = NewTagSet(list...)
	return nil
}

// MarshalJSON encodes the set as a sorted array.
func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}
