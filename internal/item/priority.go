package item

// Priority is a single-character ordinal: 'A'–'Z' or '0'–'9'.
//
// Byte order defines rank, so '0'–'9' outrank 'A'–'Z' and 'A' outranks
// 'B'. The zero value means unprioritized, which sorts after every
// prioritized item.
type Priority byte

// NoPriority is the unset priority.
const NoPriority Priority = 0

// PriorityFrom validates a marker character as a priority.
// Only uppercase letters and digits are accepted.
func PriorityFrom(b byte) (Priority, bool) {
	if (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') {
		return Priority(b), true
	}
	return NoPriority, false
}

// IsSet reports whether the priority is present.
func (p Priority) IsSet() bool {
	return p != NoPriority
}

// Rank returns the sort rank of the priority.
// Lower rank sorts first; unprioritized ranks after all set priorities.
func (p Priority) Rank() int {
	if !p.IsSet() {
		return 256
	}
	return int(p)
}

// String renders the priority character, or the empty string when unset.
func (p Priority) String() string {
	if !p.IsSet() {
		return ""
	}
	return string(rune(p))
}

// MarshalJSON encodes the priority as a one-character string, or null.
func (p Priority) MarshalJSON() ([]byte, error) {
	if !p.IsSet() {
		return []byte("null"), nil
	}
	return []byte(`"` + p.String() + `"`), nil
}
