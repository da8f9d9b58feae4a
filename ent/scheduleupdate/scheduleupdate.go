// Code generated by ent, DO NOT EDIT.

package scheduleupdate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scheduleupdate type in the database.
	Label = "schedule_update"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUpdateID holds the string denoting the update_id field in the database.
	FieldUpdateID = "update_id"
	// FieldEnabledProblemTypes holds the string denoting the enabled_problem_types field in the database.
	FieldEnabledProblemTypes = "enabled_problem_types"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldProblemTypes holds the string denoting the problem_types field in the database.
	FieldProblemTypes = "problem_types"
	// FieldImportedAt holds the string denoting the imported_at field in the database.
	FieldImportedAt = "imported_at"
	// Table holds the table name of the scheduleupdate in the database.
	Table = "schedule_updates"
)

// Columns holds all SQL columns for scheduleupdate fields.
var Columns = []string{
	FieldID,
	FieldUpdateID,
	FieldEnabledProblemTypes,
	FieldDate,
	FieldLabel,
	FieldProblemTypes,
	FieldImportedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UpdateIDValidator is a validator for the "update_id" field. It is called by the builders before save.
	UpdateIDValidator func(string) error
	// DefaultImportedAt holds the default value on creation for the "imported_at" field.
	DefaultImportedAt func() time.Time
)

// OrderOption defines the ordering options for the ScheduleUpdate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUpdateID orders the results by the update_id field.
func ByUpdateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByImportedAt orders the results by the imported_at field.
func ByImportedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportedAt, opts...).ToFunc()
}
