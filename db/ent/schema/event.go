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

// Event is one race sheet: a discipline/gender/age-group/round within a
// competition, extracted from exactly one source file. The unique source_file
// index is what makes reprocessing replace instead of duplicate.
type Event struct{ ent.Schema }

func (Event) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "events"},
	}
}

func (Event) Fields() []ent.Field {
	return []ent.Field{
		// explicit FK so the upsert can set it directly
		field.Int("competition_id"),
		field.String("discipline").NotEmpty(),
		field.String("gender").Optional(),
		field.String("age_group").Optional(),
		field.String("round_type").Optional(),
		field.String("event_date").Optional(),
		field.String("source_file").NotEmpty().Unique(),
		field.Bool("needs_review").Default(false),
		field.String("review_notes").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY events -> ONE competition
		edge.From("competition", Competition.Type).
			Ref("events").
			Field("competition_id").
			Required().
			Unique(),
		// ONE event -> MANY results
		edge.To("results", RaceResult.Type),
	}
}

func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("competition_id"),
		index.Fields("discipline", "gender", "age_group"),
	}
}
