// Code generated by ent, DO NOT EDIT.

package importedquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the importedquestion type in the database.
	Label = "imported_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldQuestionData holds the string denoting the question_data field in the database.
	FieldQuestionData = "question_data"
	// FieldImportedFrom holds the string denoting the imported_from field in the database.
	FieldImportedFrom = "imported_from"
	// FieldImportedAt holds the string denoting the imported_at field in the database.
	FieldImportedAt = "imported_at"
	// Table holds the table name of the importedquestion in the database.
	Table = "imported_questions"
)

// Columns holds all SQL columns for importedquestion fields.
var Columns = []string{
	FieldID,
	FieldFilename,
	FieldQuestionData,
	FieldImportedFrom,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// ImportedFromValidator is a validator for the "imported_from" field. It is called by the builders before save.
	ImportedFromValidator func(string) error
	// DefaultImportedAt holds the default value on creation for the "imported_at" field.
	DefaultImportedAt func() time.Time
)

// OrderOption defines the ordering options for the ImportedQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByImportedFrom orders the results by the imported_from field.
func ByImportedFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportedFrom, opts...).ToFunc()
}

// ByImportedAt orders the results by the imported_at field.
func ByImportedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportedAt, opts...).ToFunc()
}
