package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/fsun/ski-results/constants"
	"github.com/fsun/ski-results/db/ent/schema/utils"
)

// ProcessedFile records the last pipeline outcome per source file, keyed on
// the storage key. Re-running a file overwrites its row, so the table always
// reflects the most recent attempt.
type ProcessedFile struct{ ent.Schema }

func (ProcessedFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processed_files"},
	}
}

func (ProcessedFile) Fields() []ent.Field {
	return []ent.Field{
		field.String("file_key").NotEmpty().Unique(),
		field.String("file_type").Optional(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.ProcessingSuccess),
				string(constants.ProcessingFailed),
				string(constants.ProcessingSkipped),
			)),
		field.String("error_message").Optional(),
		field.Time("processed_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
