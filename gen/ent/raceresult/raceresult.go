// Code generated by ent, DO NOT EDIT.

package raceresult

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the raceresult type in the database.
	Label = "race_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldRank holds the string denoting the rank field in the database.
	FieldRank = "rank"
	// FieldBib holds the string denoting the bib field in the database.
	FieldBib = "bib"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldNamePinyin holds the string denoting the name_pinyin field in the database.
	FieldNamePinyin = "name_pinyin"
	// FieldTeam holds the string denoting the team field in the database.
	FieldTeam = "team"
	// FieldRun1Time holds the string denoting the run1_time field in the database.
	FieldRun1Time = "run1_time"
	// FieldRun2Time holds the string denoting the run2_time field in the database.
	FieldRun2Time = "run2_time"
	// FieldTotalTime holds the string denoting the total_time field in the database.
	FieldTotalTime = "total_time"
	// FieldTimeDiff holds the string denoting the time_diff field in the database.
	FieldTimeDiff = "time_diff"
	// FieldRun1Seconds holds the string denoting the run1_seconds field in the database.
	FieldRun1Seconds = "run1_seconds"
	// FieldRun2Seconds holds the string denoting the run2_seconds field in the database.
	FieldRun2Seconds = "run2_seconds"
	// FieldTotalSeconds holds the string denoting the total_seconds field in the database.
	FieldTotalSeconds = "total_seconds"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// EdgeEvent holds the string denoting the event edge name in mutations.
	EdgeEvent = "event"
	// Table holds the table name of the raceresult in the database.
	Table = "race_results"
	// EventTable is the table that holds the event relation/edge.
	EventTable = "race_results"
	// EventInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventInverseTable = "events"
	// EventColumn is the table column denoting the event relation/edge.
	EventColumn = "event_id"
)

// Columns holds all SQL columns for raceresult fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldRank,
	FieldBib,
	FieldName,
	FieldNamePinyin,
	FieldTeam,
	FieldRun1Time,
	FieldRun2Time,
	FieldTotalTime,
	FieldTimeDiff,
	FieldRun1Seconds,
	FieldRun2Seconds,
	FieldTotalSeconds,
	FieldStatus,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
)

// OrderOption defines the ordering options for the RaceResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByRank orders the results by the rank field.
func ByRank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRank, opts...).ToFunc()
}

// ByBib orders the results by the bib field.
func ByBib(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBib, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByNamePinyin orders the results by the name_pinyin field.
func ByNamePinyin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNamePinyin, opts...).ToFunc()
}

// ByTeam orders the results by the team field.
func ByTeam(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTeam, opts...).ToFunc()
}

// ByRun1Time orders the results by the run1_time field.
func ByRun1Time(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRun1Time, opts...).ToFunc()
}

// ByRun2Time orders the results by the run2_time field.
func ByRun2Time(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRun2Time, opts...).ToFunc()
}

// ByTotalTime orders the results by the total_time field.
func ByTotalTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTime, opts...).ToFunc()
}

// ByTimeDiff orders the results by the time_diff field.
func ByTimeDiff(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeDiff, opts...).ToFunc()
}

// ByRun1Seconds orders the results by the run1_seconds field.
func ByRun1Seconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRun1Seconds, opts...).ToFunc()
}

// ByRun2Seconds orders the results by the run2_seconds field.
func ByRun2Seconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRun2Seconds, opts...).ToFunc()
}

// ByTotalSeconds orders the results by the total_seconds field.
func ByTotalSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSeconds, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEventField orders the results by event field.
func ByEventField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventStep(), sql.OrderByField(field, opts...))
	}
}
func newEventStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
	)
}
