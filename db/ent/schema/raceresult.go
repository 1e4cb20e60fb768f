package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/fsun/ski-results/constants"
)

// RaceResult is one athlete's row on a race sheet. Raw time strings are kept
// verbatim; the parsed *_seconds columns are what queries sort and compare
// on, and stay null for DNF/DNS/DQ rows.
type RaceResult struct{ ent.Schema }

func (RaceResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "race_results"},
	}
}

func (RaceResult) Fields() []ent.Field {
	return []ent.Field{
		// explicit FK for the per-event replace
		field.Int("event_id"),
		field.Int("rank").Optional().Nillable(),
		field.String("bib").Optional(),
		field.String("name").NotEmpty(),
		field.String("name_pinyin").Optional(),
		field.String("team").Optional(),
		field.String("run1_time").Optional(),
		field.String("run2_time").Optional(),
		field.String("total_time").Optional(),
		field.String("time_diff").Optional(),
		field.Float("run1_seconds").Optional().Nillable(),
		field.Float("run2_seconds").Optional().Nillable(),
		field.Float("total_seconds").Optional().Nillable(),
		field.String("status").
			Default(string(constants.StatusOK)),
	}
}

func (RaceResult) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY results -> ONE event
		edge.From("event", Event.Type).
			Ref("results").
			Field("event_id").
			Required().
			Unique(),
	}
}

func (RaceResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id"),
		index.Fields("name"),
		index.Fields("name_pinyin"),
	}
}
