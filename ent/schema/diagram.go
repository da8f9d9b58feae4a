package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Diagram is an embedded image shipped inside an update package, keyed by
// the filename question parts reference it with.
type Diagram struct {
	ent.Schema
}

func (Diagram) Fields() []ent.Field {
	return []ent.Field{
		field.String("filename").
			Unique().
			NotEmpty(),
		field.Text("data_url").
			NotEmpty().
			Comment("Base64 data URL of the image"),
		field.String("imported_from").
			NotEmpty(),
	}
}
