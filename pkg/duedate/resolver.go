package duedate

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"chat-task-manager/pkg/log"
)

// Resolver turns free-text Russian/English due-date phrases into calendar
// dates, with a bias toward future occurrences. It is deterministic: the same
// phrase and base time always produce the same Resolution.
type Resolver struct {
	location *time.Location
	l        log.Logger
}

// NewResolver creates a resolver for the given IANA timezone, e.g. "Europe/Moscow".
func NewResolver(timezone string, l log.Logger) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc, l: l}, nil
}

var (
	clockColonRe = regexp.MustCompile(`(?:^|\D)(\d{1,2}):(\d{2})(?:\D|$)`)
	clockDotRe   = regexp.MustCompile(`(?:^|[^\d.])(\d{1,2})\.(\d{2})(?:[^\d.]|$)`)
	isoRe        = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})(?:[ T](\d{1,2}):(\d{2}))?`)
	dotDateRe    = regexp.MustCompile(`(?:^|[^\d.])(\d{1,2})\.(\d{1,2})(?:\.(\d{4}))?(?:[^\d.]|$)`)
	inDurationRe = regexp.MustCompile(`(?:через|in)\s+(\d+)\s+(день|дня|дней|недел\p{L}*|месяц\p{L}*|day|days|week|weeks|month|months)`)
)

// Resolve maps a phrase to a date, a date-time, or unresolved. An empty or
// unparseable phrase is not an error: it resolves to KindUnresolved.
func (r *Resolver) Resolve(phrase string, base time.Time) Resolution {
	raw := strings.TrimSpace(phrase)
	if raw == "" {
		return Resolution{Kind: KindUnresolved}
	}

	lowered := strings.ToLower(raw)
	base = base.In(r.location)

	// Time-of-day word: at most one match, first lexicon entry wins; the word
	// is stripped so it cannot confuse the date grammar.
	tod, stripped, hasTOD := matchTimeOfDay(lowered)

	date, hasDate := r.parseDate(stripped, base)
	clockHour, clockMin, hasClock := parseClock(stripped)

	if !hasDate {
		if !hasTOD && !hasClock {
			r.l.Warnf(context.Background(), "duedate: could not resolve phrase %q", raw)
			return Resolution{Kind: KindUnresolved}
		}
		// A pure time reference anchors to the base date.
		date = startOfDay(base, r.location)
	}

	if hasTOD {
		return Resolution{
			Kind: KindDateTime,
			Time: time.Date(date.Year(), date.Month(), date.Day(), tod.hour, tod.minute, 0, 0, r.location),
		}
	}
	if hasClock {
		return Resolution{
			Kind: KindDateTime,
			Time: time.Date(date.Year(), date.Month(), date.Day(), clockHour, clockMin, 0, 0, r.location),
		}
	}
	return Resolution{Kind: KindDateOnly, Time: date}
}

// matchTimeOfDay scans the fixed lexicon in order and strips the first match.
func matchTimeOfDay(phrase string) (timeOfDayEntry, string, bool) {
	padded := " " + phrase + " "
	for _, entry := range timeOfDayLexicon {
		for _, w := range entry.words {
			if idx := strings.Index(padded, " "+w+" "); idx >= 0 {
				stripped := strings.TrimSpace(padded[:idx+1] + padded[idx+len(w)+1:])
				return entry, stripped, true
			}
		}
	}
	return timeOfDayEntry{}, phrase, false
}

// parseDate extracts a calendar date from the phrase. Grammar categories are
// tried from most to least specific; the result is midnight in the resolver's
// timezone.
func (r *Resolver) parseDate(phrase string, base time.Time) (time.Time, bool) {
	words := splitWords(phrase)

	// ISO input is accepted idempotently.
	if m := isoRe.FindStringSubmatch(phrase); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, r.location), true
		}
	}

	// "day after tomorrow" is the one multi-word relative form in English.
	if strings.Contains(phrase, "day after tomorrow") {
		return startOfDay(base.AddDate(0, 0, 2), r.location), true
	}

	for _, w := range words {
		if offset, ok := relativeDayWords[w]; ok {
			return startOfDay(base.AddDate(0, 0, offset), r.location), true
		}
	}

	// "через 3 дня" / "in 2 weeks"
	if m := inDurationRe.FindStringSubmatch(phrase); m != nil {
		amount, _ := strconv.Atoi(m[1])
		if d, ok := addDuration(base, amount, m[2]); ok {
			return startOfDay(d, r.location), true
		}
	}
	// "через неделю" / "через месяц" imply an amount of one.
	if containsWord(words, "через") {
		for _, w := range words {
			if d, ok := addDuration(base, 1, w); ok && !strings.HasPrefix(w, "д") {
				return startOfDay(d, r.location), true
			}
		}
	}

	// Weekday names always resolve forward: today's weekday means next week.
	for _, w := range words {
		if target, ok := weekdays[w]; ok {
			daysUntil := int(target - base.Weekday())
			if daysUntil <= 0 {
				daysUntil += 7
			}
			return startOfDay(base.AddDate(0, 0, daysUntil), r.location), true
		}
	}

	// Day-of-month with an explicit month name: "5 сентября", "september 5",
	// "5th of september". Prefers the next future occurrence.
	if d, ok := r.parseDayMonth(words, base); ok {
		return d, true
	}

	// Numeric "05.09" or "05.09.2026" dates. The month part must be a valid
	// month, otherwise the token is left for the clock-time check.
	if m := dotDateRe.FindStringSubmatch(phrase); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if day >= 1 && day <= 31 && month >= 1 && month <= 12 {
			year := base.Year()
			explicitYear := false
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
				explicitYear = true
			}
			d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, r.location)
			if !explicitYear && d.Before(startOfDay(base, r.location)) {
				d = d.AddDate(1, 0, 0)
			}
			return d, true
		}
	}

	// Bare day number: "5-го", "the 5th", "27". Current month preferred; a day
	// already past rolls to the next month.
	if d, ok := r.parseBareDay(words, base); ok {
		return d, true
	}

	return time.Time{}, false
}

// parseDayMonth handles day numbers adjacent to a month name in either order.
func (r *Resolver) parseDayMonth(words []string, base time.Time) (time.Time, bool) {
	for i, w := range words {
		month, ok := ruMonths[w]
		if !ok {
			month, ok = enMonths[w]
		}
		if !ok {
			continue
		}

		day := 0
		if i > 0 {
			day = dayNumber(words[i-1])
		}
		if day == 0 && i > 1 && words[i-1] == "of" {
			day = dayNumber(words[i-2])
		}
		if day == 0 && i+1 < len(words) {
			day = dayNumber(words[i+1])
		}
		if day == 0 {
			continue
		}

		d := time.Date(base.Year(), month, day, 0, 0, 0, 0, r.location)
		if d.Before(startOfDay(base, r.location)) {
			d = d.AddDate(1, 0, 0)
		}
		return d, true
	}
	return time.Time{}, false
}

// parseBareDay handles a lone day-of-month mention without a month name.
func (r *Resolver) parseBareDay(words []string, base time.Time) (time.Time, bool) {
	for _, w := range words {
		day := dayNumber(w)
		if day == 0 {
			continue
		}
		d := time.Date(base.Year(), base.Month(), day, 0, 0, 0, 0, r.location)
		if d.Before(startOfDay(base, r.location)) {
			d = d.AddDate(0, 1, 0)
		}
		return d, true
	}
	return time.Time{}, false
}

// dayNumber parses "5", "5-го", "5го", "5th" style day mentions; 0 means no match.
func dayNumber(w string) int {
	for _, suffix := range []string{"-го", "го", "-е", "st", "nd", "rd", "th"} {
		w = strings.TrimSuffix(w, suffix)
	}
	if w == "" {
		return 0
	}
	for _, c := range w {
		if c < '0' || c > '9' {
			return 0
		}
	}
	n, _ := strconv.Atoi(w)
	if n < 1 || n > 31 {
		return 0
	}
	return n
}

// parseClock finds an explicit numeric clock time: HH:MM, or HH.MM when the
// token is not a plausible day.month date.
func parseClock(phrase string) (int, int, bool) {
	if m := clockColonRe.FindStringSubmatch(phrase); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if h <= 23 && min <= 59 {
			return h, min, true
		}
	}
	if m := clockDotRe.FindStringSubmatch(phrase); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		// A dot token with a valid month part reads as a date, not a time.
		if min >= 1 && min <= 12 && h >= 1 && h <= 31 {
			return 0, 0, false
		}
		if h <= 23 && min <= 59 {
			return h, min, true
		}
	}
	return 0, 0, false
}

func addDuration(base time.Time, amount int, unit string) (time.Time, bool) {
	switch {
	case strings.HasPrefix(unit, "д") && unit != "днём" && unit != "днем", strings.HasPrefix(unit, "day"):
		return base.AddDate(0, 0, amount), true
	case strings.HasPrefix(unit, "недел"), strings.HasPrefix(unit, "week"):
		return base.AddDate(0, 0, amount*7), true
	case strings.HasPrefix(unit, "месяц"), strings.HasPrefix(unit, "month"):
		return base.AddDate(0, amount, 0), true
	}
	return base, false
}

func splitWords(phrase string) []string {
	fields := strings.FieldsFunc(phrase, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';' || r == '!' || r == '?' || r == '«' || r == '»' || r == '(' || r == ')'
	})
	// Trailing sentence punctuation would hide words like "завтра."; inner
	// dots stay so clock and date tokens survive as single words.
	words := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".:\"'")
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}

func containsWord(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
