// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/marblesj/wace-student-trainer/ent/importedquestion"
)

// ImportedQuestion is the model entity for the ImportedQuestion schema.
type ImportedQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Filename-like catalogue key
	Filename string `json:"filename,omitempty"`
	// Full question record as JSON
	QuestionData map[string]interface{} `json:"question_data,omitempty"`
	// updateId of the package that delivered this question
	ImportedFrom string `json:"imported_from,omitempty"`
	// ImportedAt holds the value of the "imported_at" field.
	ImportedAt   time.Time `json:"imported_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImportedQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case importedquestion.FieldQuestionData:
			values[i] = new([]byte)
		case importedquestion.FieldID:
			values[i] = new(sql.NullInt64)
		case importedquestion.FieldFilename, importedquestion.FieldImportedFrom:
			values[i] = new(sql.NullString)
		case importedquestion.FieldImportedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImportedQuestion fields.
func (_m *ImportedQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case importedquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case importedquestion.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case importedquestion.FieldQuestionData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field question_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuestionData); err != nil {
					return fmt.Errorf("unmarshal field question_data: %w", err)
				}
			}
		case importedquestion.FieldImportedFrom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field imported_from", values[i])
			} else if value.Valid {
				_m.ImportedFrom = value.String
			}
		case importedquestion.FieldImportedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ImportedQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *ImportedQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ImportedQuestion.
// Note that you need to call ImportedQuestion.Unwrap() before calling this method if this ImportedQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImportedQuestion) Update() *ImportedQuestionUpdateOne {
	return NewImportedQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImportedQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImportedQuestion) Unwrap() *ImportedQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImportedQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImportedQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("ImportedQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("question_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionData))
	builder.WriteString(", ")
	builder.WriteString("imported_from=")
	builder.WriteString(_m.ImportedFrom)
	builder.WriteString(", ")
	builder.WriteString("imported_at=")
	builder.WriteString(_m.ImportedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ImportedQuestions is a parsable slice of ImportedQuestion.
type ImportedQuestions []*ImportedQuestion
