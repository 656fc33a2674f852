// Package collection holds parsed items from one or more sources and
// maintains the lookup indices over them.
//
// Ownership is arena-by-source: each source id owns the contiguous
// sequence of items parsed from it. There is no per-item diffing —
// source text can be edited arbitrarily between parses, so replacing a
// source discards its old items wholesale and the indices are rebuilt
// from the union of all current sources.
//
// A Collection is owned by a single caller and mutated only through
// whole-source operations; it does no locking. Parsing and indexing are
// synchronous, bounded by input size, and never touch I/O — reading
// source text is the caller's job.
package collection

import (
	"strings"

	"github.com/google/uuid"

	"github.com/trustedtext/trusted/internal/classify"
	"github.com/trustedtext/trusted/internal/item"
	"github.com/trustedtext/trusted/internal/parse"
)

// Collection is an ordered set of per-source item sequences with
// derived indices by context and project.
type Collection struct {
	order   []string
	sources map[string][]*item.Item

	// Posting lists keyed by folded tag name, in global item order.
	byContext map[string][]*item.Item
	byProject map[string][]*item.Item
}

// New creates an empty collection.
func New() *Collection {
	return &Collection{
		sources:   make(map[string][]*item.Item),
		byContext: make(map[string][]*item.Item),
		byProject: make(map[string][]*item.Item),
	}
}

// AddSource parses lines and registers them under the given source id.
//
// An empty id gets a generated one; the effective id is returned along
// with the parsed items. Adding an id that already exists replaces that
// source's items wholesale, same as ReplaceSource.
func (c *Collection) AddSource(id string, lines []string) (string, []*item.Item) {
	if id == "" {
		id = "source-" + uuid.NewString()
	}
	return id, c.put(id, lines)
}

// ReplaceSource atomically swaps out the prior items for a source id and
// rebuilds the indices. An unknown id is registered as a new source.
func (c *Collection) ReplaceSource(id string, lines []string) []*item.Item {
	return c.put(id, lines)
}

// put installs a source's items and rebuilds the indices.
func (c *Collection) put(id string, lines []string) []*item.Item {
	items := parse.Source(id, lines)
	if _, known := c.sources[id]; !known {
		c.order = append(c.order, id)
	}
	c.sources[id] = items
	c.rebuild()
	return items
}

// RemoveSource discards a source and its items.
// Returns false if the id was not registered.
func (c *Collection) RemoveSource(id string) bool {
	if _, known := c.sources[id]; !known {
		return false
	}
	delete(c.sources, id)
	for i, other := range c.order {
		if other == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.rebuild()
	return true
}

// rebuild recomputes the posting lists from all current sources.
//
// Tags are not individually diffable without reparsing the whole
// source, so any source change rebuilds from scratch.
func (c *Collection) rebuild() {
	c.byContext = make(map[string][]*item.Item)
	c.byProject = make(map[string][]*item.Item)
	for _, it := range c.Items() {
		for _, name := range it.Contexts.Names() {
			key := item.FoldTag(name)
			c.byContext[key] = append(c.byContext[key], it)
		}
		for _, name := range it.Projects.Names() {
			key := item.FoldTag(name)
			c.byProject[key] = append(c.byProject[key], it)
		}
	}
}

// Items returns all items in global order: source registration order,
// then line number. The returned slice is a copy.
func (c *Collection) Items() []*item.Item {
	var out []*item.Item
	for _, id := range c.order {
		out = append(out, c.sources[id]...)
	}
	return out
}

// SourceIDs returns the registered source ids in registration order.
func (c *Collection) SourceIDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// SourceItems returns the items owned by one source, or nil.
func (c *Collection) SourceItems(id string) []*item.Item {
	return c.sources[id]
}

// Len returns the total number of items.
func (c *Collection) Len() int {
	n := 0
	for _, items := range c.sources {
		n += len(items)
	}
	return n
}

// InContext returns the items carrying the given context tag,
// case-insensitively, in global order. An optional leading "@" on the
// tag is accepted.
func (c *Collection) InContext(tag string) []*item.Item {
	return c.byContext[item.FoldTag(strings.TrimPrefix(tag, "@"))]
}

// InProject returns the items carrying the given project tag,
// case-insensitively, in global order. An optional leading "+" on the
// tag is accepted.
func (c *Collection) InProject(tag string) []*item.Item {
	return c.byProject[item.FoldTag(strings.TrimPrefix(tag, "+"))]
}

// ByBucket groups all items by their bucket for the given date.
//
// The grouping is computed on demand rather than stored: bucket
// membership depends on the injected date, and a stored index would
// silently go stale at midnight.
func (c *Collection) ByBucket(today item.Date, pol classify.Policy) map[item.Bucket][]*item.Item {
	out := make(map[item.Bucket][]*item.Item)
	for _, it := range c.Items() {
		b := classify.Bucket(it, today, pol)
		out[b] = append(out[b], it)
	}
	return out
}
