package duedate

import "time"

// Kind tells what a Resolution carries.
type Kind int

const (
	// KindUnresolved means no date could be extracted from the phrase.
	KindUnresolved Kind = iota
	// KindDateOnly means a calendar date without a meaningful time component.
	KindDateOnly
	// KindDateTime means a full date with an explicit time of day.
	KindDateTime
)

// Resolution is the outcome of resolving a free-text phrase. Either fully
// populated (Kind + Time) or unresolved; never partial.
type Resolution struct {
	Kind Kind
	Time time.Time
}

// Unresolved returns the empty resolution.
func Unresolved() Resolution { return Resolution{Kind: KindUnresolved} }

// Unresolved reports whether no date was extracted.
func (r Resolution) Unresolved() bool { return r.Kind == KindUnresolved }

// Format renders the resolution for storage: ISO date for date-only values,
// ISO date-time for values with a time component, empty when unresolved.
func (r Resolution) Format() string {
	switch r.Kind {
	case KindDateOnly:
		return r.Time.Format("2006-01-02")
	case KindDateTime:
		return r.Time.Format("2006-01-02 15:04")
	default:
		return ""
	}
}
