// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Diagram is the predicate function for diagram builders.
type Diagram func(*sql.Selector)

// ImportedQuestion is the predicate function for importedquestion builders.
type ImportedQuestion func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// ScheduleUpdate is the predicate function for scheduleupdate builders.
type ScheduleUpdate func(*sql.Selector)

// SessionSummary is the predicate function for sessionsummary builders.
type SessionSummary func(*sql.Selector)
