// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fsun/ski-results/gen/ent/event"
	"github.com/fsun/ski-results/gen/ent/raceresult"
)

// RaceResult is the model entity for the RaceResult schema.
type RaceResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID int `json:"event_id,omitempty"`
	// Rank holds the value of the "rank" field.
	Rank *int `json:"rank,omitempty"`
	// Bib holds the value of the "bib" field.
	Bib string `json:"bib,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// NamePinyin holds the value of the "name_pinyin" field.
	NamePinyin string `json:"name_pinyin,omitempty"`
	// Team holds the value of the "team" field.
	Team string `json:"team,omitempty"`
	// Run1Time holds the value of the "run1_time" field.
	Run1Time string `json:"run1_time,omitempty"`
	// Run2Time holds the value of the "run2_time" field.
	Run2Time string `json:"run2_time,omitempty"`
	// TotalTime holds the value of the "total_time" field.
	TotalTime string `json:"total_time,omitempty"`
	// TimeDiff holds the value of the "time_diff" field.
	TimeDiff string `json:"time_diff,omitempty"`
	// Run1Seconds holds the value of the "run1_seconds" field.
	Run1Seconds *float64 `json:"run1_seconds,omitempty"`
	// Run2Seconds holds the value of the "run2_seconds" field.
	Run2Seconds *float64 `json:"run2_seconds,omitempty"`
	// TotalSeconds holds the value of the "total_seconds" field.
	TotalSeconds *float64 `json:"total_seconds,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RaceResultQuery when eager-loading is set.
	Edges        RaceResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RaceResultEdges holds the relations/edges for other nodes in the graph.
type RaceResultEdges struct {
	// Event holds the value of the event edge.
	Event *Event `json:"event,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RaceResultEdges) EventOrErr() (*Event, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: event.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RaceResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case raceresult.FieldRun1Seconds, raceresult.FieldRun2Seconds, raceresult.FieldTotalSeconds:
			values[i] = new(sql.NullFloat64)
		case raceresult.FieldID, raceresult.FieldEventID, raceresult.FieldRank:
			values[i] = new(sql.NullInt64)
		case raceresult.FieldBib, raceresult.FieldName, raceresult.FieldNamePinyin, raceresult.FieldTeam, raceresult.FieldRun1Time, raceresult.FieldRun2Time, raceresult.FieldTotalTime, raceresult.FieldTimeDiff, raceresult.FieldStatus:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RaceResult fields.
func (_m *RaceResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case raceresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case raceresult.FieldEventID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = int(value.Int64)
			}
		case raceresult.FieldRank:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rank", values[i])
			} else if value.Valid {
				_m.Rank = new(int)
				*_m.Rank = int(value.Int64)
			}
		case raceresult.FieldBib:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bib", values[i])
			} else if value.Valid {
				_m.Bib = value.String
			}
		case raceresult.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case raceresult.FieldNamePinyin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_pinyin", values[i])
			} else if value.Valid {
				_m.NamePinyin = value.String
			}
		case raceresult.FieldTeam:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team", values[i])
			} else if value.Valid {
				_m.Team = value.String
			}
		case raceresult.FieldRun1Time:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run1_time", values[i])
			} else if value.Valid {
				_m.Run1Time = value.String
			}
		case raceresult.FieldRun2Time:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run2_time", values[i])
			} else if value.Valid {
				_m.Run2Time = value.String
			}
		case raceresult.FieldTotalTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field total_time", values[i])
			} else if value.Valid {
				_m.TotalTime = value.String
			}
		case raceresult.FieldTimeDiff:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_diff", values[i])
			} else if value.Valid {
				_m.TimeDiff = value.String
			}
		case raceresult.FieldRun1Seconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field run1_seconds", values[i])
			} else if value.Valid {
				_m.Run1Seconds = new(float64)
				*_m.Run1Seconds = value.Float64
			}
		case raceresult.FieldRun2Seconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field run2_seconds", values[i])
			} else if value.Valid {
				_m.Run2Seconds = new(float64)
				*_m.Run2Seconds = value.Float64
			}
		case raceresult.FieldTotalSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_seconds", values[i])
			} else if value.Valid {
				_m.TotalSeconds = new(float64)
				*_m.TotalSeconds = value.Float64
			}
		case raceresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RaceResult.
// This includes values selected through modifiers, order, etc.
func (_m *RaceResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvent queries the "event" edge of the RaceResult entity.
func (_m *RaceResult) QueryEvent() *EventQuery {
	return NewRaceResultClient(_m.config).QueryEvent(_m)
}

// Update returns a builder for updating this RaceResult.
// Note that you need to call RaceResult.Unwrap() before calling this method if this RaceResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RaceResult) Update() *RaceResultUpdateOne {
	return NewRaceResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RaceResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RaceResult) Unwrap() *RaceResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RaceResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RaceResult) String() string {
	var builder strings.Builder
	builder.WriteString("RaceResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventID))
	builder.WriteString(", ")
	if v := _m.Rank; v != nil {
		builder.WriteString("rank=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("bib=")
	builder.WriteString(_m.Bib)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("name_pinyin=")
	builder.WriteString(_m.NamePinyin)
	builder.WriteString(", ")
	builder.WriteString("team=")
	builder.WriteString(_m.Team)
	builder.WriteString(", ")
	builder.WriteString("run1_time=")
	builder.WriteString(_m.Run1Time)
	builder.WriteString(", ")
	builder.WriteString("run2_time=")
	builder.WriteString(_m.Run2Time)
	builder.WriteString(", ")
	builder.WriteString("total_time=")
	builder.WriteString(_m.TotalTime)
	builder.WriteString(", ")
	builder.WriteString("time_diff=")
	builder.WriteString(_m.TimeDiff)
	builder.WriteString(", ")
	if v := _m.Run1Seconds; v != nil {
		builder.WriteString("run1_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Run2Seconds; v != nil {
		builder.WriteString("run2_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalSeconds; v != nil {
		builder.WriteString("total_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteByte(')')
	return builder.String()
}

// RaceResults is a parsable slice of RaceResult.
type RaceResults []*RaceResult
