package schedule

import (
	"sort"
	"time"
)

// dayLayout is the calendar-date format used by legacy schedule entries.
const dayLayout = "2006-01-02"

// ComputeUnlocked derives the unlocked problem-type set from the base
// schedule plus imported updates in arrival order. It is a pure function of
// its arguments.
//
// Flat grants (enabledProblemTypes) union in unconditionally. Dated entries
// union in once their date has passed, compared at day granularity; ahead
// bypasses the date gate entirely. A malformed date contributes nothing
// rather than failing the whole derivation, so one bad entry cannot block
// the rest of the schedule.
func ComputeUnlocked(base Base, updates []Update, ahead bool, now time.Time) map[string]struct{} {
	today := midnight(now)
	unlocked := make(map[string]struct{})

	for _, pt := range base.EnabledProblemTypes {
		unlocked[pt] = struct{}{}
	}
	for _, entry := range base.Entries {
		unionEntry(unlocked, entry, ahead, today)
	}

	for _, u := range updates {
		if u.Flat() {
			for _, pt := range u.Enabled {
				unlocked[pt] = struct{}{}
			}
			continue
		}
		if u.Dated != nil {
			unionEntry(unlocked, *u.Dated, ahead, today)
		}
	}

	return unlocked
}

// unionEntry adds a dated entry's problem types when its date is satisfied.
func unionEntry(unlocked map[string]struct{}, entry Entry, ahead bool, today time.Time) {
	if !ahead {
		entryDate, err := time.ParseInLocation(dayLayout, entry.Date, today.Location())
		if err != nil || entryDate.After(today) {
			return
		}
	}
	for _, pt := range entry.ProblemTypes {
		unlocked[pt] = struct{}{}
	}
}

// Sorted returns the set as a sorted slice for stable display and export.
func Sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for pt := range set {
		out = append(out, pt)
	}
	sort.Strings(out)
	return out
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
