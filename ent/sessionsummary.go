// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/marblesj/wace-student-trainer/ent/sessionsummary"
)

// SessionSummary is the model entity for the SessionSummary schema.
type SessionSummary struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt time.Time `json:"ended_at,omitempty"`
	// DurationMinutes holds the value of the "duration_minutes" field.
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// Problem type the session was filtered to, if any
	TopicFilter string `json:"topic_filter,omitempty"`
	// QuestionsViewed holds the value of the "questions_viewed" field.
	QuestionsViewed int `json:"questions_viewed,omitempty"`
	// SolutionsRevealed holds the value of the "solutions_revealed" field.
	SolutionsRevealed int `json:"solutions_revealed,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionSummary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionsummary.FieldID, sessionsummary.FieldDurationMinutes, sessionsummary.FieldQuestionsViewed, sessionsummary.FieldSolutionsRevealed:
			values[i] = new(sql.NullInt64)
		case sessionsummary.FieldSessionID, sessionsummary.FieldTopicFilter:
			values[i] = new(sql.NullString)
		case sessionsummary.FieldStartedAt, sessionsummary.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionSummary fields.
func (_m *SessionSummary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionsummary.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionsummary.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionsummary.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case sessionsummary.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = value.Time
			}
		case sessionsummary.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case sessionsummary.FieldTopicFilter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_filter", values[i])
			} else if value.Valid {
				_m.TopicFilter = value.String
			}
		case sessionsummary.FieldQuestionsViewed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_viewed", values[i])
			} else if value.Valid {
				_m.QuestionsViewed = int(value.Int64)
			}
		case sessionsummary.FieldSolutionsRevealed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field solutions_revealed", values[i])
			} else if value.Valid {
				_m.SolutionsRevealed = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionSummary.
// This includes values selected through modifiers, order, etc.
func (_m *SessionSummary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionSummary.
// Note that you need to call SessionSummary.Unwrap() before calling this method if this SessionSummary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionSummary) Update() *SessionSummaryUpdateOne {
	return NewSessionSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionSummary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionSummary) Unwrap() *SessionSummary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionSummary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionSummary) String() string {
	var builder strings.Builder
	builder.WriteString("SessionSummary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ended_at=")
	builder.WriteString(_m.EndedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("topic_filter=")
	builder.WriteString(_m.TopicFilter)
	builder.WriteString(", ")
	builder.WriteString("questions_viewed=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsViewed))
	builder.WriteString(", ")
	builder.WriteString("solutions_revealed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SolutionsRevealed))
	builder.WriteByte(')')
	return builder.String()
}

// SessionSummaries is a parsable slice of SessionSummary.
type SessionSummaries []*SessionSummary
