package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Competition is one named competition within a season. A competition may
// span several files (one per discipline/gender/group), so it is deduplicated
// on (season, name).
type Competition struct{ ent.Schema }

func (Competition) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "competitions"},
	}
}

func (Competition) Fields() []ent.Field {
	return []ent.Field{
		field.String("season").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("venue").Optional(),
		field.String("start_date").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Competition) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE competition -> MANY events
		edge.To("events", Event.Type),
	}
}

func (Competition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("season", "name").Unique(),
	}
}
