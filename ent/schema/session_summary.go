package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionSummary records one practice session for progress reports.
type SessionSummary struct {
	ent.Schema
}

func (SessionSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty(),
		field.Time("started_at").
			Immutable(),
		field.Time("ended_at"),
		field.Int("duration_minutes"),
		field.String("topic_filter").
			Optional().
			Comment("Problem type the session was filtered to, if any"),
		field.Int("questions_viewed"),
		field.Int("solutions_revealed"),
	}
}

func (SessionSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
	}
}
