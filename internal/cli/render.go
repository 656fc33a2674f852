package cli

import (
	"fmt"

	"github.com/trustedtext/trusted/internal/item"
	"github.com/trustedtext/trusted/internal/query"
)

// renderItems writes a query result in the configured format.
//
// Text mode prints one line per item: source, line number, then the raw
// line verbatim - the raw text is the item's canonical form, so views
// re-render exactly what the file contains.
func renderItems(f *OutputFormatter, items []*item.Item) error {
	if f.JSON() {
		if items == nil {
			items = []*item.Item{}
		}
		return f.Success(items)
	}
	for _, it := range items {
		if _, err := fmt.Fprintf(f.Writer, "%s:%d: %s\n", it.Source.SourceID, it.Source.Line, it.RawText); err != nil {
			return err
		}
	}
	return nil
}

// renderCounts writes a tag summary: sigil-prefixed tag and count per
// line, already ordered by the engine.
func renderCounts(f *OutputFormatter, sigil string, counts []query.TagCount) error {
	if f.JSON() {
		if counts == nil {
			counts = []query.TagCount{}
		}
		return f.Success(counts)
	}
	for _, c := range counts {
		if _, err := fmt.Fprintf(f.Writer, "%s%s\t%d\n", sigil, c.Name, c.Count); err != nil {
			return err
		}
	}
	return nil
}
