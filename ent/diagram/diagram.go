// Code generated by ent, DO NOT EDIT.

package diagram

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the diagram type in the database.
	Label = "diagram"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldDataURL holds the string denoting the data_url field in the database.
	FieldDataURL = "data_url"
	// FieldImportedFrom holds the string denoting the imported_from field in the database.
	FieldImportedFrom = "imported_from"
	// Table holds the table name of the diagram in the database.
	Table = "diagrams"
)

// Columns holds all SQL columns for diagram fields.
var Columns = []string{
	FieldID,
	FieldFilename,
	FieldDataURL,
	FieldImportedFrom,
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
	// DataURLValidator is a validator for the "data_url" field. It is called by the builders before save.
	DataURLValidator func(string) error
	// ImportedFromValidator is a validator for the "imported_from" field. It is called by the builders before save.
	ImportedFromValidator func(string) error
)

// OrderOption defines the ordering options for the Diagram queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByDataURL orders the results by the data_url field.
func ByDataURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataURL, opts...).ToFunc()
}

// ByImportedFrom orders the results by the imported_from field.
func ByImportedFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportedFrom, opts...).ToFunc()
}
