// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/marblesj/wace-student-trainer/ent/scheduleupdate"
)

// ScheduleUpdate is the model entity for the ScheduleUpdate schema.
type ScheduleUpdate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UpdateID holds the value of the "update_id" field.
	UpdateID string `json:"update_id,omitempty"`
	// Flat grant (new format); empty for legacy updates
	EnabledProblemTypes []string `json:"enabled_problem_types,omitempty"`
	// Legacy dated entry, YYYY-MM-DD
	Date string `json:"date,omitempty"`
	// Label holds the value of the "label" field.
	Label string `json:"label,omitempty"`
	// Legacy dated entry types
	ProblemTypes []string `json:"problem_types,omitempty"`
	// ImportedAt holds the value of the "imported_at" field.
	ImportedAt   time.Time `json:"imported_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduleUpdate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduleupdate.FieldEnabledProblemTypes, scheduleupdate.FieldProblemTypes:
			values[i] = new([]byte)
		case scheduleupdate.FieldID:
			values[i] = new(sql.NullInt64)
		case scheduleupdate.FieldUpdateID, scheduleupdate.FieldDate, scheduleupdate.FieldLabel:
			values[i] = new(sql.NullString)
		case scheduleupdate.FieldImportedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduleUpdate fields.
func (_m *ScheduleUpdate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduleupdate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scheduleupdate.FieldUpdateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field update_id", values[i])
			} else if value.Valid {
				_m.UpdateID = value.String
			}
		case scheduleupdate.FieldEnabledProblemTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field enabled_problem_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EnabledProblemTypes); err != nil {
					return fmt.Errorf("unmarshal field enabled_problem_types: %w", err)
				}
			}
		case scheduleupdate.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case scheduleupdate.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case scheduleupdate.FieldProblemTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field problem_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProblemTypes); err != nil {
					return fmt.Errorf("unmarshal field problem_types: %w", err)
				}
			}
		case scheduleupdate.FieldImportedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field imported_at", values[i])
			} else if value.Valid {
				_m.ImportedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduleUpdate.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduleUpdate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScheduleUpdate.
// Note that you need to call ScheduleUpdate.Unwrap() before calling this method if this ScheduleUpdate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduleUpdate) Update() *ScheduleUpdateUpdateOne {
	return NewScheduleUpdateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduleUpdate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduleUpdate) Unwrap() *ScheduleUpdate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduleUpdate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduleUpdate) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduleUpdate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("update_id=")
	builder.WriteString(_m.UpdateID)
	builder.WriteString(", ")
	builder.WriteString("enabled_problem_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnabledProblemTypes))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("problem_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProblemTypes))
	builder.WriteString(", ")
	builder.WriteString("imported_at=")
	builder.WriteString(_m.ImportedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduleUpdates is a parsable slice of ScheduleUpdate.
type ScheduleUpdates []*ScheduleUpdate
