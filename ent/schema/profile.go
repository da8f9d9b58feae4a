package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile is the single local student profile. The key is always "main";
// the import history lives here as an append-only JSON list and backs the
// importer's idempotency check.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty(),
		field.String("student_name").
			Optional(),
		field.Bool("ahead_of_schedule").
			Default(false).
			Comment("Student toggle; effective only when the base schedule allows it"),
		field.JSON("updates_imported", []map[string]any{}).
			Optional().
			Comment("Append-only import history entries"),
	}
}
