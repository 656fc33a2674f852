// Package query answers filtered views over a collection.
//
// A Filter is a pure conjunction: every set field adds one condition,
// unset fields impose none. Filters compile to independent predicates
// evaluated over the item sequence, and results come back in a defined,
// stable order - priority first (unprioritized last), then source
// order. Re-running a query against an unchanged collection returns the
// same sequence every time.
//
// Misconfigured filters (an impossible date or priority range) are
// valid, just useless: they yield an empty result, never an error.
package query

import (
	"sort"
	"strings"

	"github.com/trustedtext/trusted/internal/classify"
	"github.com/trustedtext/trusted/internal/collection"
	"github.com/trustedtext/trusted/internal/item"
)

// Filter is the structured query surface. Nil/zero fields impose no
// constraint; everything set must hold at once (pure AND).
type Filter struct {
	// Bucket restricts results to one GTD bucket.
	Bucket *item.Bucket

	// Contexts lists context tags the item must ALL carry.
	Contexts []string

	// ExcludeContexts lists context tags the item must NOT carry.
	ExcludeContexts []string

	// Projects lists project tags the item must ALL carry.
	Projects []string

	// DueBefore keeps items due strictly before this date.
	DueBefore item.Date

	// DueAfter keeps items due strictly after this date.
	DueAfter item.Date

	// PriorityMin / PriorityMax bound the priority character range,
	// inclusive on both ends.
	PriorityMin item.Priority
	PriorityMax item.Priority

	// TextContains keeps items whose description contains this
	// substring, case-insensitively.
	TextContains string
}

// impossible reports whether no item could ever satisfy the filter.
// An impossible range is a valid (if useless) filter, so the engine
// short-circuits to an empty result instead of erroring.
func (f Filter) impossible() bool {
	if !f.DueBefore.IsZero() && !f.DueAfter.IsZero() && !f.DueAfter.Before(f.DueBefore) {
		return true
	}
	if f.PriorityMin.IsSet() && f.PriorityMax.IsSet() && f.PriorityMin > f.PriorityMax {
		return true
	}
	return false
}

// Engine answers queries against one collection.
//
// The reference date comes from an injected provider, never from the
// wall clock directly, so tickler and overdue evaluation stays
// deterministic under test.
type Engine struct {
	coll   *collection.Collection
	policy classify.Policy
	today  func() item.Date
}

// New creates an engine over a collection with the given policy and
// date provider.
func New(coll *collection.Collection, pol classify.Policy, today func() item.Date) *Engine {
	return &Engine{coll: coll, policy: pol, today: today}
}

// Today returns the engine's current reference date.
func (e *Engine) Today() item.Date {
	return e.today()
}

// Policy returns the engine's classification policy.
func (e *Engine) Policy() classify.Policy {
	return e.policy
}

// Query returns all items matching the filter, ordered by priority
// (unprioritized after all prioritized, stable among equals), then
// source registration order, then line number.
func (e *Engine) Query(f Filter) []*item.Item {
	if f.impossible() {
		return nil
	}

	preds := e.compile(f)
	var out []*item.Item
	for _, it := range e.candidates(f) {
		if matchAll(preds, it) {
			out = append(out, it)
		}
	}

	// Candidates are already in source order; a stable sort on priority
	// rank alone keeps source order as the tie-break.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

// compile turns the filter into its predicate conjunction.
func (e *Engine) compile(f Filter) []Predicate {
	var preds []Predicate

	if f.Bucket != nil {
		preds = append(preds, InBucket{Want: *f.Bucket, Today: e.today(), Policy: e.policy})
	}
	if len(f.Contexts) > 0 {
		preds = append(preds, HasAllContexts{Keys: foldAll(f.Contexts, "@")})
	}
	if len(f.ExcludeContexts) > 0 {
		preds = append(preds, ExcludesContexts{Keys: foldAll(f.ExcludeContexts, "@")})
	}
	if len(f.Projects) > 0 {
		preds = append(preds, HasAllProjects{Keys: foldAll(f.Projects, "+")})
	}
	if !f.DueBefore.IsZero() || !f.DueAfter.IsZero() {
		preds = append(preds, DueBetween{After: f.DueAfter, Before: f.DueBefore})
	}
	if f.PriorityMin.IsSet() || f.PriorityMax.IsSet() {
		preds = append(preds, PriorityBetween{Min: f.PriorityMin, Max: f.PriorityMax})
	}
	if f.TextContains != "" {
		preds = append(preds, TextContains{Needle: f.TextContains})
	}

	return preds
}

// candidates picks the narrowest starting sequence for the scan.
//
// When the filter names contexts or projects, the collection's posting
// lists give a smaller candidate set than the full item sequence. The
// remaining predicates still run over every candidate, so this is an
// optimization only - it never changes the result.
func (e *Engine) candidates(f Filter) []*item.Item {
	best := e.coll.Items()
	for _, tag := range f.Contexts {
		if posting := e.coll.InContext(tag); len(posting) < len(best) {
			best = posting
		}
	}
	for _, tag := range f.Projects {
		if posting := e.coll.InProject(tag); len(posting) < len(best) {
			best = posting
		}
	}
	return best
}

// matchAll evaluates the conjunction.
func matchAll(preds []Predicate, it *item.Item) bool {
	for _, p := range preds {
		if !p.Match(it) {
			return false
		}
	}
	return true
}

// foldAll case-folds a tag list once at compile time. Filters accept
// tags with or without their sigil ("@phone" and "phone" are the same
// request), so an optional leading sigil is stripped first.
func foldAll(tags []string, sigil string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, item.FoldTag(strings.TrimPrefix(t, sigil)))
	}
	return out
}
