package item

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"
)

// FoldTag returns the case-folded identity of a tag name.
//
// Tag identity is case-insensitive ("@Phone" and "@phone" are the same
// context), but display casing is whatever the user typed first.
// Unicode case folding handles non-ASCII tags correctly where
// strings.ToLower would not.
func FoldTag(s string) string {
	// A cases.Caser is stateful and not safe for concurrent use, so a
	// fresh one is built per call.
	return cases.Fold().String(s)
}

// TagSet is an insertion-ordered set of tag names with case-insensitive
// identity. The zero value is an empty, usable set.
type TagSet struct {
	display []string
	folded  map[string]struct{}
}

// Add inserts a tag into the set.
//
// The tag is trimmed of surrounding whitespace; empty tags and
// case-insensitive duplicates are rejected. Returns true if the set
// changed.
func (s *TagSet) Add(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	key := FoldTag(tag)
	if _, dup := s.folded[key]; dup {
		return false
	}
	if s.folded == nil {
		s.folded = make(map[string]struct{})
	}
	s.folded[key] = struct{}{}
	s.display = append(s.display, tag)
	return true
}

// Has reports whether the set contains the tag, ignoring case.
func (s *TagSet) Has(tag string) bool {
	_, ok := s.folded[FoldTag(strings.TrimSpace(tag))]
	return ok
}

// HasFolded reports whether the set contains an already-folded key.
// Callers that fold once and probe many times use this to avoid
// re-folding on every probe.
func (s *TagSet) HasFolded(key string) bool {
	_, ok := s.folded[key]
	return ok
}

// Len returns the number of tags in the set.
func (s *TagSet) Len() int {
	return len(s.display)
}

// Names returns the tags in insertion order with original casing.
// The returned slice is a copy.
func (s *TagSet) Names() []string {
	out := make([]string, len(s.display))
	copy(out, s.display)
	return out
}

// MarshalJSON encodes the set as an array of display names.
func (s TagSet) MarshalJSON() ([]byte, error) {
	if s.display == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.display)
}
