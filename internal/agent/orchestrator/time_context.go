package orchestrator

import (
	"fmt"
	"time"
)

const dateFormatISO = "2006-01-02"

// russianWeekdays maps time.Weekday to its Russian name.
var russianWeekdays = [...]string{
	"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота",
}

// timeContext renders the temporal context block appended to the system prompt.
func (o *Orchestrator) timeContext() string {
	loc, err := time.LoadLocation(o.cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	now := o.now().In(loc)

	// Monday-Sunday week
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(dateFormatISO),
		russianWeekdays[now.Weekday()],
		tomorrow.Format(dateFormatISO),
		weekStart.Format(dateFormatISO),
		weekEnd.Format(dateFormatISO),
	)
}
