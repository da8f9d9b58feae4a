// Code generated by ent, DO NOT EDIT.

package profile

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldStudentName holds the string denoting the student_name field in the database.
	FieldStudentName = "student_name"
	// FieldAheadOfSchedule holds the string denoting the ahead_of_schedule field in the database.
	FieldAheadOfSchedule = "ahead_of_schedule"
	// FieldUpdatesImported holds the string denoting the updates_imported field in the database.
	FieldUpdatesImported = "updates_imported"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldKey,
	FieldStudentName,
	FieldAheadOfSchedule,
	FieldUpdatesImported,
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
	// KeyValidator is a validator for the "key" field. It is called by the builders before save.
	KeyValidator func(string) error
	// DefaultAheadOfSchedule holds the default value on creation for the "ahead_of_schedule" field.
	DefaultAheadOfSchedule bool
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByStudentName orders the results by the student_name field.
func ByStudentName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentName, opts...).ToFunc()
}

// ByAheadOfSchedule orders the results by the ahead_of_schedule field.
func ByAheadOfSchedule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAheadOfSchedule, opts...).ToFunc()
}
