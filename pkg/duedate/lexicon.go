package duedate

import "time"

// timeOfDayEntry maps a spoken time-of-day word to a fixed clock time.
type timeOfDayEntry struct {
	words  []string
	hour   int
	minute int
}

// timeOfDayLexicon is scanned in order; the first matching entry wins and the
// matched word is stripped from the phrase before date parsing.
var timeOfDayLexicon = []timeOfDayEntry{
	{words: []string{"утром", "с утра", "morning"}, hour: 9},
	{words: []string{"днём", "днем", "afternoon"}, hour: 13},
	{words: []string{"вечером", "вечера", "evening"}, hour: 18},
	{words: []string{"ночью", "night"}, hour: 23},
}

// relativeDayWords maps single words to day offsets from the base date.
var relativeDayWords = map[string]int{
	"сегодня":     0,
	"today":       0,
	"завтра":      1,
	"tomorrow":    1,
	"послезавтра": 2,
	"вчера":       -1,
	"yesterday":   -1,
}

// ruMonths maps Russian month names (genitive, as written after a day number)
// to their calendar months.
var ruMonths = map[string]time.Month{
	"января":   time.January,
	"февраля":  time.February,
	"марта":    time.March,
	"апреля":   time.April,
	"мая":      time.May,
	"июня":     time.June,
	"июля":     time.July,
	"августа":  time.August,
	"сентября": time.September,
	"октября":  time.October,
	"ноября":   time.November,
	"декабря":  time.December,
}

var enMonths = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// weekdays covers Russian nominative and accusative forms plus English names.
var weekdays = map[string]time.Weekday{
	"понедельник": time.Monday,
	"вторник":     time.Tuesday,
	"среда":       time.Wednesday,
	"среду":       time.Wednesday,
	"четверг":     time.Thursday,
	"пятница":     time.Friday,
	"пятницу":     time.Friday,
	"суббота":     time.Saturday,
	"субботу":     time.Saturday,
	"воскресенье": time.Sunday,
	"monday":      time.Monday,
	"tuesday":     time.Tuesday,
	"wednesday":   time.Wednesday,
	"thursday":    time.Thursday,
	"friday":      time.Friday,
	"saturday":    time.Saturday,
	"sunday":      time.Sunday,
}
