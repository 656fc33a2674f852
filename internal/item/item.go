// Package item defines the structured model of one plain-text task line.
//
// An Item is the parsed form of a single line: description text plus the
// metadata embedded in it (contexts, projects, dates, priority,
// completion state). The raw line is preserved verbatim so an unmodified
// item round-trips byte-for-byte — the text file is the only persisted
// form of the system.
//
// An item never stores its GTD bucket. Classification is a pure function
// of the other attributes (see the classify package); storing it would
// let it drift from the fields it is derived from.
package item

// SourceLocation is a non-owning back-reference to the line an item was
// parsed from. It exists for reporting and for whole-source replacement;
// it is never used for content identity.
type SourceLocation struct {
	// SourceID identifies the originating source (typically a file path).
	SourceID string `json:"source"`

	// Line is the 1-based line number within the source.
	Line int `json:"line"`
}

// Item is one parsed task line.
type Item struct {
	// RawText is the original line, verbatim, markers included.
	RawText string `json:"raw"`

	// Description is the line with metadata markers stripped and
	// whitespace collapsed, for display and text search.
	Description string `json:"description"`

	// Contexts holds context tags ("@phone" → "phone").
	Contexts TagSet `json:"contexts"`

	// Projects holds project tags ("+Redesign" → "Redesign").
	Projects TagSet `json:"projects"`

	// DueDate is the optional due date.
	DueDate Date `json:"due"`

	// TickleDate is the optional date before which the item stays
	// hidden from action lists.
	TickleDate Date `json:"tickle"`

	// Priority is the optional priority ordinal.
	Priority Priority `json:"priority"`

	// Completed marks the item done.
	Completed bool `json:"completed"`

	// CompletionDate is set only when Completed is true.
	CompletionDate Date `json:"completion_date"`

	// Source locates the originating line.
	Source SourceLocation `json:"location"`
}
