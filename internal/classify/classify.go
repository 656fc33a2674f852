// Package classify assigns parsed items to GTD buckets.
//
// Classification is a pure function of the item's attributes, the
// injected "today" date, and the policy naming the reserved deferral
// tags. Two items with identical attributes always land in the same
// bucket, whatever their description says.
//
// The precedence order encodes GTD's core policy: defer, incubate, and
// wait states take priority over "actionable now", and a tickled item is
// invisible until its date arrives.
package classify

import "github.com/trustedtext/trusted/internal/item"

// Policy names the reserved tags that mark deferral states.
//
// The tag names are a local convention, not part of the grammar, so they
// are configurable rather than hard-coded. A reserved tag matches
// whether it was written as a context ("@waiting") or a project
// ("+waiting"); matching is case-insensitive like all tag identity.
type Policy struct {
	// WaitingTags mark items blocked on someone else.
	WaitingTags []string

	// SomedayTags mark incubating someday/maybe items.
	SomedayTags []string
}

// DefaultPolicy returns the stock reserved tag names.
func DefaultPolicy() Policy {
	return Policy{
		WaitingTags: []string{"waiting"},
		SomedayTags: []string{"someday", "maybe"},
	}
}

// folded returns the case-folded forms of a tag list.
func folded(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, item.FoldTag(t))
	}
	return out
}

// hasReserved reports whether the item carries any of the reserved tags,
// as either a context or a project.
func hasReserved(it *item.Item, tags []string) bool {
	for _, key := range folded(tags) {
		if it.Contexts.HasFolded(key) || it.Projects.HasFolded(key) {
			return true
		}
	}
	return false
}

// Bucket classifies an item. The first matching rule wins:
//
//  1. Completed items are done, whatever else they carry.
//  2. A tickle date strictly after today hides the item (tickler file).
//  3. A someday tag with no due date incubates the item.
//  4. A waiting tag with no past due date parks the item; an overdue
//     waiting item falls through and becomes actionable again.
//  5. Everything else is actionable now.
func Bucket(it *item.Item, today item.Date, pol Policy) item.Bucket {
	switch {
	case it.Completed:
		return item.BucketCompleted

	case !it.TickleDate.IsZero() && it.TickleDate.After(today):
		return item.BucketTickler

	case hasReserved(it, pol.SomedayTags) && it.DueDate.IsZero():
		return item.BucketSomeday

	case hasReserved(it, pol.WaitingTags) &&
		(it.DueDate.IsZero() || !it.DueDate.Before(today)):
		return item.BucketWaiting

	default:
		return item.BucketNextAction
	}
}
