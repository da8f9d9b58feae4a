package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ImportedQuestion is a question delivered by a teacher update file. The base
// bundle is read-only on disk; only imported questions are persisted, and
// they overlay the bundle by filename at load time.
type ImportedQuestion struct {
	ent.Schema
}

func (ImportedQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("filename").
			Unique().
			NotEmpty().
			Comment("Filename-like catalogue key"),
		field.JSON("question_data", map[string]any{}).
			Comment("Full question record as JSON"),
		field.String("imported_from").
			NotEmpty().
			Comment("updateId of the package that delivered this question"),
		field.Time("imported_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ImportedQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("imported_from"),
	}
}
