// Package schedule models the teacher-authored taught schedule and derives
// the set of unlocked problem types from it.
//
// Two schedule shapes coexist across a multi-year deployment. The new flat
// format lists enabledProblemTypes directly: a teacher ticking a type is a
// direct grant with no temporal gating. The legacy format is a rollout
// calendar of dated entries whose types unlock once the date passes. Both
// shapes are normalized here; consumers only ever see Base and Update.
package schedule

import "time"

// Entry is one dated unlock in the legacy calendar format.
type Entry struct {
	Date         string   `json:"date"`
	Label        string   `json:"label,omitempty"`
	ProblemTypes []string `json:"problemTypes"`
}

// Base is the single authoritative teacher configuration for a class.
// EnabledProblemTypes (flat, canonical) and Entries (legacy, dated) are not
// mutually exclusive; both contribute to the unlocked set.
type Base struct {
	ClassName            string   `json:"className"`
	TeacherName          string   `json:"teacherName"`
	EnabledProblemTypes  []string `json:"enabledProblemTypes,omitempty"`
	Entries              []Entry  `json:"schedule,omitempty"`
	AllowAheadOfSchedule bool     `json:"allowAheadOfSchedule,omitempty"`
}

// Update is one imported schedule update, keyed by the update package's
// updateId. Exactly one of Enabled (flat grant) or Dated (legacy entry) is
// meaningful; Enabled wins when both are present, matching how update
// packages are converted on import.
type Update struct {
	UpdateID   string
	Enabled    []string
	Dated      *Entry
	ImportedAt time.Time
}

// Flat reports whether this update is a flat unconditional grant.
func (u Update) Flat() bool {
	return len(u.Enabled) > 0
}

// Summary describes the schedule for display and export.
type Summary struct {
	ClassName            string
	TeacherName          string
	TotalEntries         int
	AllowAheadOfSchedule bool
	NextUnlock           *Entry
}
