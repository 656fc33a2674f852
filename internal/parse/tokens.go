package parse

import (
	"regexp"

	"github.com/trustedtext/trusted/internal/item"
)

// Kind identifies a metadata token recognized in a task line.
type Kind int

const (
	// KindCompletion is the leading "x " completion marker.
	KindCompletion Kind = iota

	// KindCompletionDate is the date immediately after the completion
	// marker.
	KindCompletionDate

	// KindPriority is a "(A)" marker at the start of the line.
	KindPriority

	// KindDue is a "due:YYYY-MM-DD" marker.
	KindDue

	// KindTickle is a "tickle:YYYY-MM-DD" (or "t:") marker.
	KindTickle

	// KindContext is an "@context" tag.
	KindContext

	// KindProject is a "+Project" tag.
	KindProject
)

// Token is one recognized metadata token with its source span.
// Start and End are byte offsets into the raw line, half-open.
type Token struct {
	Kind  Kind
	Value string
	Start int
	End   int
}

// Token extraction is an ordered set of independent matchers over one
// line. Each matcher skips spans already claimed by an earlier matcher,
// so a context tag inside a consumed date marker is never re-tokenized.
var (
	completionRe     = regexp.MustCompile(`^x `)
	completionDateRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})(\s|$)`)
	priorityRe       = regexp.MustCompile(`^\(([A-Z0-9])\) `)
	dueRe            = regexp.MustCompile(`(?:^|\s)(due:(\S+))`)
	tickleRe         = regexp.MustCompile(`(?:^|\s)((?:tickle|t):(\S+))`)
	contextRe        = regexp.MustCompile(`(?:^|\s)(@(\S+))`)
	projectRe        = regexp.MustCompile(`(?:^|\s)(\+(\S+))`)
)

// extractor accumulates tokens and claimed spans for one line.
type extractor struct {
	line   string
	tokens []Token
	spans  [][2]int
}

// claimed reports whether [start,end) overlaps a span already consumed
// by an earlier token.
func (e *extractor) claimed(start, end int) bool {
	for _, s := range e.spans {
		if start < s[1] && end > s[0] {
			return true
		}
	}
	return false
}

// emit records a token and claims its span.
func (e *extractor) emit(kind Kind, value string, start, end int) {
	e.tokens = append(e.tokens, Token{Kind: kind, Value: value, Start: start, End: end})
	e.spans = append(e.spans, [2]int{start, end})
}

// Tokens extracts all metadata tokens from one line of text.
//
// Tokenizing is a pure function: it never fails, and malformed metadata
// (invalid dates, stray sigils, mid-line priority markers) simply
// produces no token, leaving the text literal. Conflicting single-valued
// markers resolve first-valid-wins; later occurrences stay literal.
func Tokens(line string) []Token {
	e := &extractor{line: line}

	e.completion()
	e.priority()
	e.date(dueRe, KindDue)
	e.date(tickleRe, KindTickle)
	e.tags(contextRe, KindContext)
	e.tags(projectRe, KindProject)

	return e.tokens
}

// completion recognizes the fixed-position "x " marker and an optional
// completion date immediately after it.
func (e *extractor) completion() {
	loc := completionRe.FindStringIndex(e.line)
	if loc == nil {
		return
	}
	e.emit(KindCompletion, "x", 0, loc[1])

	rest := e.line[loc[1]:]
	m := completionDateRe.FindStringSubmatchIndex(rest)
	if m == nil {
		return
	}
	value := rest[m[2]:m[3]]
	if _, ok := item.ParseDate(value); !ok {
		return
	}
	e.emit(KindCompletionDate, value, loc[1]+m[2], loc[1]+m[3])
}

// priority recognizes a parenthesized marker at the absolute start of
// the line. A marker anywhere else is literal text: stray parenthesized
// letters mid-sentence must not become priorities.
func (e *extractor) priority() {
	m := priorityRe.FindStringSubmatchIndex(e.line)
	if m == nil {
		return
	}
	e.emit(KindPriority, e.line[m[2]:m[3]], 0, m[3]+1)
}

// date recognizes the first keyword-tagged date marker whose payload is
// a real calendar date. Malformed payloads stay literal and scanning
// continues; a second valid marker of the same kind also stays literal.
func (e *extractor) date(re *regexp.Regexp, kind Kind) {
	for _, m := range re.FindAllStringSubmatchIndex(e.line, -1) {
		start, end := m[2], m[3]
		if e.claimed(start, end) {
			continue
		}
		payload := e.line[m[4]:m[5]]
		d, ok := item.ParseDate(payload)
		if !ok {
			continue
		}
		e.emit(kind, d.String(), start, end)
		return
	}
}

// tags recognizes every sigil-prefixed tag not inside a claimed span.
func (e *extractor) tags(re *regexp.Regexp, kind Kind) {
	for _, m := range re.FindAllStringSubmatchIndex(e.line, -1) {
		start, end := m[2], m[3]
		if e.claimed(start, end) {
			continue
		}
		e.emit(kind, e.line[m[4]:m[5]], start, end)
	}
}
