package schedule

import "time"

// Summarize builds the display summary for a schedule. NextUnlock is the
// first legacy entry still in the future; flat-format schedules have none.
// TotalEntries counts enabled types for flat schedules and calendar entries
// for legacy ones.
func Summarize(base Base, now time.Time) Summary {
	today := midnight(now)

	var next *Entry
	for i := range base.Entries {
		d, err := time.ParseInLocation(dayLayout, base.Entries[i].Date, today.Location())
		if err != nil {
			continue
		}
		if d.After(today) {
			next = &base.Entries[i]
			break
		}
	}

	total := len(base.EnabledProblemTypes)
	if total == 0 {
		total = len(base.Entries)
	}

	return Summary{
		ClassName:            base.ClassName,
		TeacherName:          base.TeacherName,
		TotalEntries:         total,
		AllowAheadOfSchedule: base.AllowAheadOfSchedule,
		NextUnlock:           next,
	}
}
