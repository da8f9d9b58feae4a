// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DiagramsColumns holds the columns for the "diagrams" table.
	DiagramsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "filename", Type: field.TypeString, Unique: true},
		{Name: "data_url", Type: field.TypeString, Size: 2147483647},
		{Name: "imported_from", Type: field.TypeString},
	}
	// DiagramsTable holds the schema information for the "diagrams" table.
	DiagramsTable = &schema.Table{
		Name:       "diagrams",
		Columns:    DiagramsColumns,
		PrimaryKey: []*schema.Column{DiagramsColumns[0]},
	}
	// ImportedQuestionsColumns holds the columns for the "imported_questions" table.
	ImportedQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "filename", Type: field.TypeString, Unique: true},
		{Name: "question_data", Type: field.TypeJSON},
		{Name: "imported_from", Type: field.TypeString},
		{Name: "imported_at", Type: field.TypeTime},
	}
	// ImportedQuestionsTable holds the schema information for the "imported_questions" table.
	ImportedQuestionsTable = &schema.Table{
		Name:       "imported_questions",
		Columns:    ImportedQuestionsColumns,
		PrimaryKey: []*schema.Column{ImportedQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "importedquestion_imported_from",
				Unique:  false,
				Columns: []*schema.Column{ImportedQuestionsColumns[3]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "student_name", Type: field.TypeString, Nullable: true},
		{Name: "ahead_of_schedule", Type: field.TypeBool, Default: false},
		{Name: "updates_imported", Type: field.TypeJSON, Nullable: true},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// ScheduleUpdatesColumns holds the columns for the "schedule_updates" table.
	ScheduleUpdatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "update_id", Type: field.TypeString, Unique: true},
		{Name: "enabled_problem_types", Type: field.TypeJSON, Nullable: true},
		{Name: "date", Type: field.TypeString, Nullable: true},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "problem_types", Type: field.TypeJSON, Nullable: true},
		{Name: "imported_at", Type: field.TypeTime},
	}
	// ScheduleUpdatesTable holds the schema information for the "schedule_updates" table.
	ScheduleUpdatesTable = &schema.Table{
		Name:       "schedule_updates",
		Columns:    ScheduleUpdatesColumns,
		PrimaryKey: []*schema.Column{ScheduleUpdatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scheduleupdate_imported_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduleUpdatesColumns[6]},
			},
		},
	}
	// SessionSummariesColumns holds the columns for the "session_summaries" table.
	SessionSummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "topic_filter", Type: field.TypeString, Nullable: true},
		{Name: "questions_viewed", Type: field.TypeInt},
		{Name: "solutions_revealed", Type: field.TypeInt},
	}
	// SessionSummariesTable holds the schema information for the "session_summaries" table.
	SessionSummariesTable = &schema.Table{
		Name:       "session_summaries",
		Columns:    SessionSummariesColumns,
		PrimaryKey: []*schema.Column{SessionSummariesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionsummary_started_at",
				Unique:  false,
				Columns: []*schema.Column{SessionSummariesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DiagramsTable,
		ImportedQuestionsTable,
		ProfilesTable,
		ScheduleUpdatesTable,
		SessionSummariesTable,
	}
)

func init() {
}
