// Package parse turns free-form task lines into structured items.
//
// Parsing is total: every line, however malformed, produces exactly one
// item. Metadata that fails to parse (an impossible date, a stray sigil)
// degrades to literal description text — human-typed input must never
// block on syntax.
//
// The grammar is positional only where it has to be: completion and
// priority markers anchor to the start of the line, everything else is
// recognized anywhere. See Tokens for the exact token forms.
package parse

import (
	"strings"

	"github.com/trustedtext/trusted/internal/item"
)

// Line parses one line of text into an Item.
//
// The raw line is preserved verbatim on the item, so an unmodified item
// round-trips byte-for-byte. The description is the line with all token
// spans removed and whitespace collapsed.
func Line(raw string, loc item.SourceLocation) *item.Item {
	it := &item.Item{
		RawText: raw,
		Source:  loc,
	}

	tokens := Tokens(raw)
	for _, tok := range tokens {
		switch tok.Kind {
		case KindCompletion:
			it.Completed = true
		case KindCompletionDate:
			d, _ := item.ParseDate(tok.Value)
			it.CompletionDate = d
		case KindPriority:
			p, ok := item.PriorityFrom(tok.Value[0])
			if ok {
				it.Priority = p
			}
		case KindDue:
			d, _ := item.ParseDate(tok.Value)
			it.DueDate = d
		case KindTickle:
			d, _ := item.ParseDate(tok.Value)
			it.TickleDate = d
		case KindContext:
			it.Contexts.Add(tok.Value)
		case KindProject:
			it.Projects.Add(tok.Value)
		}
	}

	it.Description = stripSpans(raw, tokens)
	return it
}

// Source parses all lines of one source. Line numbers are 1-based.
// Callers normalize line endings before handing lines over.
func Source(id string, lines []string) []*item.Item {
	items := make([]*item.Item, 0, len(lines))
	for i, line := range lines {
		loc := item.SourceLocation{SourceID: id, Line: i + 1}
		items = append(items, Line(line, loc))
	}
	return items
}

// stripSpans removes every token span from the raw line and collapses
// the remaining whitespace.
func stripSpans(raw string, tokens []Token) string {
	if len(tokens) == 0 {
		return strings.Join(strings.Fields(raw), " ")
	}

	cut := make([]bool, len(raw))
	for _, tok := range tokens {
		for i := tok.Start; i < tok.End && i < len(cut); i++ {
			cut[i] = true
		}
	}

	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if !cut[i] {
			b.WriteByte(raw[i])
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
