// Code generated by ent, DO NOT EDIT.

package sessionsummary

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionsummary type in the database.
	Label = "session_summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldDurationMinutes holds the string denoting the duration_minutes field in the database.
	FieldDurationMinutes = "duration_minutes"
	// FieldTopicFilter holds the string denoting the topic_filter field in the database.
	FieldTopicFilter = "topic_filter"
	// FieldQuestionsViewed holds the string denoting the questions_viewed field in the database.
	FieldQuestionsViewed = "questions_viewed"
	// FieldSolutionsRevealed holds the string denoting the solutions_revealed field in the database.
	FieldSolutionsRevealed = "solutions_revealed"
	// Table holds the table name of the sessionsummary in the database.
	Table = "session_summaries"
)

// Columns holds all SQL columns for sessionsummary fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldStartedAt,
	FieldEndedAt,
	FieldDurationMinutes,
	FieldTopicFilter,
	FieldQuestionsViewed,
	FieldSolutionsRevealed,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
)

// OrderOption defines the ordering options for the SessionSummary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByDurationMinutes orders the results by the duration_minutes field.
func ByDurationMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMinutes, opts...).ToFunc()
}

// ByTopicFilter orders the results by the topic_filter field.
func ByTopicFilter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicFilter, opts...).ToFunc()
}

// ByQuestionsViewed orders the results by the questions_viewed field.
func ByQuestionsViewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsViewed, opts...).ToFunc()
}

// BySolutionsRevealed orders the results by the solutions_revealed field.
func BySolutionsRevealed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionsRevealed, opts...).ToFunc()
}
