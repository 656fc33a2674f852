package query

import (
	"strings"

	"github.com/trustedtext/trusted/internal/classify"
	"github.com/trustedtext/trusted/internal/item"
)

// Predicate is one independent filter condition over an item.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations, so the
// engine's conjunction evaluation can rely on every predicate being one
// of the known kinds.
//
// A filter compiles to a slice of predicates combined by conjunction;
// adding a filter dimension means adding a predicate type here, not
// editing a monolithic match function.
type Predicate interface {
	// Match reports whether the item satisfies this condition.
	Match(it *item.Item) bool

	predicateNode() // Marker method - seals interface to this package
}

// InBucket matches items classified into one bucket.
//
// Classification depends on the reference date and policy, so both are
// baked in when the filter is compiled - every item in one query run is
// judged against the same "today".
type InBucket struct {
	Want   item.Bucket
	Today  item.Date
	Policy classify.Policy
}

func (p InBucket) Match(it *item.Item) bool {
	return classify.Bucket(it, p.Today, p.Policy) == p.Want
}

func (InBucket) predicateNode() {}

// HasAllContexts matches items carrying every listed context (AND
// semantics). Keys are pre-folded at compile time.
type HasAllContexts struct {
	Keys []string
}

func (p HasAllContexts) Match(it *item.Item) bool {
	for _, key := range p.Keys {
		if !it.Contexts.HasFolded(key) {
			return false
		}
	}
	return true
}

func (HasAllContexts) predicateNode() {}

// ExcludesContexts matches items carrying none of the listed contexts.
// Exclusion wins over inclusion: an item with both an included and an
// excluded context is rejected.
type ExcludesContexts struct {
	Keys []string
}

func (p ExcludesContexts) Match(it *item.Item) bool {
	for _, key := range p.Keys {
		if it.Contexts.HasFolded(key) {
			return false
		}
	}
	return true
}

func (ExcludesContexts) predicateNode() {}

// HasAllProjects matches items carrying every listed project tag.
type HasAllProjects struct {
	Keys []string
}

func (p HasAllProjects) Match(it *item.Item) bool {
	for _, key := range p.Keys {
		if !it.Projects.HasFolded(key) {
			return false
		}
	}
	return true
}

func (HasAllProjects) predicateNode() {}

// DueBetween matches items whose due date falls inside an open range.
//
// After and Before are exclusive bounds; a zero Date leaves that side
// unbounded. Items without a due date never match a bounded range.
type DueBetween struct {
	After  item.Date
	Before item.Date
}

func (p DueBetween) Match(it *item.Item) bool {
	if it.DueDate.IsZero() {
		return false
	}
	if !p.After.IsZero() && !it.DueDate.After(p.After) {
		return false
	}
	if !p.Before.IsZero() && !it.DueDate.Before(p.Before) {
		return false
	}
	return true
}

func (DueBetween) predicateNode() {}

// PriorityBetween matches items whose priority character falls in the
// inclusive range [Min, Max]. Unset bounds leave that side open.
// Unprioritized items never match.
type PriorityBetween struct {
	Min item.Priority
	Max item.Priority
}

func (p PriorityBetween) Match(it *item.Item) bool {
	if !it.Priority.IsSet() {
		return false
	}
	if p.Min.IsSet() && it.Priority < p.Min {
		return false
	}
	if p.Max.IsSet() && it.Priority > p.Max {
		return false
	}
	return true
}

func (PriorityBetween) predicateNode() {}

// TextContains matches items whose description contains the needle,
// case-insensitively.
type TextContains struct {
	Needle string
}

func (p TextContains) Match(it *item.Item) bool {
	return strings.Contains(
		strings.ToLower(it.Description),
		strings.ToLower(p.Needle),
	)
}

func (TextContains) predicateNode() {}
