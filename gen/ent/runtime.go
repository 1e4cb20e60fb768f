// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fsun/ski-results/db/ent/schema"
	"github.com/fsun/ski-results/gen/ent/competition"
	"github.com/fsun/ski-results/gen/ent/event"
	"github.com/fsun/ski-results/gen/ent/processedfile"
	"github.com/fsun/ski-results/gen/ent/raceresult"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	competitionFields := schema.Competition{}.Fields()
	_ = competitionFields
	// competitionDescSeason is the schema descriptor for season field.
	competitionDescSeason := competitionFields[0].Descriptor()
	// competition.SeasonValidator is a validator for the "season" field. It is called by the builders before save.
	competition.SeasonValidator = competitionDescSeason.Validators[0].(func(string) error)
	// competitionDescName is the schema descriptor for name field.
	competitionDescName := competitionFields[1].Descriptor()
	// competition.NameValidator is a validator for the "name" field. It is called by the builders before save.
	competition.NameValidator = competitionDescName.Validators[0].(func(string) error)
	// competitionDescCreatedAt is the schema descriptor for created_at field.
	competitionDescCreatedAt := competitionFields[4].Descriptor()
	// competition.DefaultCreatedAt holds the default value on creation for the created_at field.
	competition.DefaultCreatedAt = competitionDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescDiscipline is the schema descriptor for discipline field.
	eventDescDiscipline := eventFields[1].Descriptor()
	// event.DisciplineValidator is a validator for the "discipline" field. It is called by the builders before save.
	event.DisciplineValidator = eventDescDiscipline.Validators[0].(func(string) error)
	// eventDescSourceFile is the schema descriptor for source_file field.
	eventDescSourceFile := eventFields[6].Descriptor()
	// event.SourceFileValidator is a validator for the "source_file" field. It is called by the builders before save.
	event.SourceFileValidator = eventDescSourceFile.Validators[0].(func(string) error)
	// eventDescNeedsReview is the schema descriptor for needs_review field.
	eventDescNeedsReview := eventFields[7].Descriptor()
	// event.DefaultNeedsReview holds the default value on creation for the needs_review field.
	event.DefaultNeedsReview = eventDescNeedsReview.Default.(bool)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[9].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	processedfileFields := schema.ProcessedFile{}.Fields()
	_ = processedfileFields
	// processedfileDescFileKey is the schema descriptor for file_key field.
	processedfileDescFileKey := processedfileFields[0].Descriptor()
	// processedfile.FileKeyValidator is a validator for the "file_key" field. It is called by the builders before save.
	processedfile.FileKeyValidator = processedfileDescFileKey.Validators[0].(func(string) error)
	// processedfileDescStatus is the schema descriptor for status field.
	processedfileDescStatus := processedfileFields[2].Descriptor()
	// processedfile.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processedfile.StatusValidator = func() func(string) error {
		validators := processedfileDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processedfileDescProcessedAt is the schema descriptor for processed_at field.
	processedfileDescProcessedAt := processedfileFields[4].Descriptor()
	// processedfile.DefaultProcessedAt holds the default value on creation for the processed_at field.
	processedfile.DefaultProcessedAt = processedfileDescProcessedAt.Default.(func() time.Time)
	// processedfile.UpdateDefaultProcessedAt holds the default value on update for the processed_at field.
	processedfile.UpdateDefaultProcessedAt = processedfileDescProcessedAt.UpdateDefault.(func() time.Time)
	raceresultFields := schema.RaceResult{}.Fields()
	_ = raceresultFields
	// raceresultDescName is the schema descriptor for name field.
	raceresultDescName := raceresultFields[3].Descriptor()
	// raceresult.NameValidator is a validator for the "name" field. It is called by the builders before save.
	raceresult.NameValidator = raceresultDescName.Validators[0].(func(string) error)
	// raceresultDescStatus is the schema descriptor for status field.
	raceresultDescStatus := raceresultFields[13].Descriptor()
	// raceresult.DefaultStatus holds the default value on creation for the status field.
	raceresult.DefaultStatus = raceresultDescStatus.Default.(string)
}
