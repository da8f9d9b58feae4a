// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/marblesj/wace-student-trainer/ent/diagram"
)

// Diagram is the model entity for the Diagram schema.
type Diagram struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// Base64 data URL of the image
	DataURL string `json:"data_url,omitempty"`
	// ImportedFrom holds the value of the "imported_from" field.
	ImportedFrom string `json:"imported_from,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Diagram) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagram.FieldID:
			values[i] = new(sql.NullInt64)
		case diagram.FieldFilename, diagram.FieldDataURL, diagram.FieldImportedFrom:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Diagram fields.
func (_m *Diagram) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagram.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case diagram.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case diagram.FieldDataURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_url", values[i])
			} else if value.Valid {
				_m.DataURL = value.String
			}
		case diagram.FieldImportedFrom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field imported_from", values[i])
			} else if value.Valid {
				_m.ImportedFrom = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Diagram.
// This includes values selected through modifiers, order, etc.
func (_m *Diagram) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Diagram.
// Note that you need to call Diagram.Unwrap() before calling this method if this Diagram
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Diagram) Update() *DiagramUpdateOne {
	return NewDiagramClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Diagram entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Diagram) Unwrap() *Diagram {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Diagram is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Diagram) String() string {
	var builder strings.Builder
	builder.WriteString("Diagram(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("data_url=")
	builder.WriteString(_m.DataURL)
	builder.WriteString(", ")
	builder.WriteString("imported_from=")
	builder.WriteString(_m.ImportedFrom)
	builder.WriteByte(')')
	return builder.String()
}

// Diagrams is a parsable slice of Diagram.
type Diagrams []*Diagram
