// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompetitionsColumns holds the columns for the "competitions" table.
	CompetitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "season", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "venue", Type: field.TypeString, Nullable: true},
		{Name: "start_date", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CompetitionsTable holds the schema information for the "competitions" table.
	CompetitionsTable = &schema.Table{
		Name:       "competitions",
		Columns:    CompetitionsColumns,
		PrimaryKey: []*schema.Column{CompetitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "competition_season_name",
				Unique:  true,
				Columns: []*schema.Column{CompetitionsColumns[1], CompetitionsColumns[2]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "discipline", Type: field.TypeString},
		{Name: "gender", Type: field.TypeString, Nullable: true},
		{Name: "age_group", Type: field.TypeString, Nullable: true},
		{Name: "round_type", Type: field.TypeString, Nullable: true},
		{Name: "event_date", Type: field.TypeString, Nullable: true},
		{Name: "source_file", Type: field.TypeString, Unique: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "review_notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "competition_id", Type: field.TypeInt},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_competitions_events",
				Columns:    []*schema.Column{EventsColumns[10]},
				RefColumns: []*schema.Column{CompetitionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_competition_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[10]},
			},
			{
				Name:    "event_discipline_gender_age_group",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[2], EventsColumns[3]},
			},
		},
	}
	// ProcessedFilesColumns holds the columns for the "processed_files" table.
	ProcessedFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "file_key", Type: field.TypeString, Unique: true},
		{Name: "file_type", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime},
	}
	// ProcessedFilesTable holds the schema information for the "processed_files" table.
	ProcessedFilesTable = &schema.Table{
		Name:       "processed_files",
		Columns:    ProcessedFilesColumns,
		PrimaryKey: []*schema.Column{ProcessedFilesColumns[0]},
	}
	// RaceResultsColumns holds the columns for the "race_results" table.
	RaceResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "rank", Type: field.TypeInt, Nullable: true},
		{Name: "bib", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "name_pinyin", Type: field.TypeString, Nullable: true},
		{Name: "team", Type: field.TypeString, Nullable: true},
		{Name: "run1_time", Type: field.TypeString, Nullable: true},
		{Name: "run2_time", Type: field.TypeString, Nullable: true},
		{Name: "total_time", Type: field.TypeString, Nullable: true},
		{Name: "time_diff", Type: field.TypeString, Nullable: true},
		{Name: "run1_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "run2_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "total_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "OK"},
		{Name: "event_id", Type: field.TypeInt},
	}
	// RaceResultsTable holds the schema information for the "race_results" table.
	RaceResultsTable = &schema.Table{
		Name:       "race_results",
		Columns:    RaceResultsColumns,
		PrimaryKey: []*schema.Column{RaceResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "race_results_events_results",
				Columns:    []*schema.Column{RaceResultsColumns[14]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "raceresult_event_id",
				Unique:  false,
				Columns: []*schema.Column{RaceResultsColumns[14]},
			},
			{
				Name:    "raceresult_name",
				Unique:  false,
				Columns: []*schema.Column{RaceResultsColumns[3]},
			},
			{
				Name:    "raceresult_name_pinyin",
				Unique:  false,
				Columns: []*schema.Column{RaceResultsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompetitionsTable,
		EventsTable,
		ProcessedFilesTable,
		RaceResultsTable,
	}
)

func init() {
	CompetitionsTable.Annotation = &entsql.Annotation{
		Table: "competitions",
	}
	EventsTable.ForeignKeys[0].RefTable = CompetitionsTable
	EventsTable.Annotation = &entsql.Annotation{
		Table: "events",
	}
	ProcessedFilesTable.Annotation = &entsql.Annotation{
		Table: "processed_files",
	}
	RaceResultsTable.ForeignKeys[0].RefTable = EventsTable
	RaceResultsTable.Annotation = &entsql.Annotation{
		Table: "race_results",
	}
}
