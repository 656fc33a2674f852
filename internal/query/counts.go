package query

import (
	"sort"

	"github.com/trustedtext/trusted/internal/classify"
	"github.com/trustedtext/trusted/internal/item"
)

// TagCount pairs a tag's display name with the number of actionable
// items carrying it.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ContextCounts returns every context appearing on a visible next
// action, with counts, ordered by count descending and then name
// ascending. It answers "where do I have work to do right now".
func (e *Engine) ContextCounts() []TagCount {
	return e.counts(func(it *item.Item) []string { return it.Contexts.Names() })
}

// ProjectCounts returns every project with visible next actions, with
// counts, same ordering as ContextCounts.
func (e *Engine) ProjectCounts() []TagCount {
	return e.counts(func(it *item.Item) []string { return it.Projects.Names() })
}

// counts tallies tags over next-action items only: a context that
// appears solely on completed or deferred items has no actionable work.
func (e *Engine) counts(names func(*item.Item) []string) []TagCount {
	today := e.today()
	tally := make(map[string]int)
	display := make(map[string]string)

	for _, it := range e.coll.Items() {
		if classify.Bucket(it, today, e.policy) != item.BucketNextAction {
			continue
		}
		for _, name := range names(it) {
			key := item.FoldTag(name)
			if _, seen := display[key]; !seen {
				display[key] = name
			}
			tally[key]++
		}
	}

	out := make([]TagCount, 0, len(tally))
	for key, n := range tally {
		out = append(out, TagCount{Name: display[key], Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
