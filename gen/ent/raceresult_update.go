// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fsun/ski-results/gen/ent/event"
	"github.com/fsun/ski-results/gen/ent/predicate"
	"github.com/fsun/ski-results/gen/ent/raceresult"
)

// RaceResultUpdate is the builder for updating RaceResult entities.
type RaceResultUpdate struct {
	config
	hooks    []Hook
	mutation *RaceResultMutation
}

// Where appends a list predicates to the RaceResultUpdate builder.
func (_u *RaceResultUpdate) Where(ps ...predicate.RaceResult) *RaceResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *RaceResultUpdate) SetEventID(v int) *RaceResultUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableEventID(v *int) *RaceResultUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetRank sets the "rank" field.
func (_u *RaceResultUpdate) SetRank(v int) *RaceResultUpdate {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableRank(v *int) *RaceResultUpdate {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *RaceResultUpdate) AddRank(v int) *RaceResultUpdate {
	_u.mutation.AddRank(v)
	return _u
}

// ClearRank clears the value of the "rank" field.
func (_u *RaceResultUpdate) ClearRank() *RaceResultUpdate {
	_u.mutation.ClearRank()
	return _u
}

// SetBib sets the "bib" field.
func (_u *RaceResultUpdate) SetBib(v string) *RaceResultUpdate {
	_u.mutation.SetBib(v)
	return _u
}

// SetNillableBib sets the "bib" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableBib(v *string) *RaceResultUpdate {
	if v != nil {
		_u.SetBib(*v)
	}
	return _u
}

// ClearBib clears the value of the "bib" field.
func (_u *RaceResultUpdate) ClearBib() *RaceResultUpdate {
	_u.mutation.ClearBib()
	return _u
}

// SetName sets the "name" field.
func (_u *RaceResultUpdate) SetName(v string) *RaceResultUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableName(v *string) *RaceResultUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNamePinyin sets the "name_pinyin" field.
func (_u *RaceResultUpdate) SetNamePinyin(v string) *RaceResultUpdate {
	_u.mutation.SetNamePinyin(v)
	return _u
}

// SetNillableNamePinyin sets the "name_pinyin" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableNamePinyin(v *string) *RaceResultUpdate {
	if v != nil {
		_u.SetNamePinyin(*v)
	}
	return _u
}

// ClearNamePinyin clears the value of the "name_pinyin" field.
func (_u *RaceResultUpdate) ClearNamePinyin() *RaceResultUpdate {
	_u.mutation.ClearNamePinyin()
	return _u
}

// SetTeam sets the "team" field.
func (_u *RaceResultUpdate) SetTeam(v string) *RaceResultUpdate {
	_u.mutation.SetTeam(v)
	return _u
}

// SetNillableTeam sets the "team" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableTeam(v *string) *RaceResultUpdate {
	if v != nil {
		_u.SetTeam(*v)
	}
	return _u
}

// ClearTeam clears the value of the "team" field.
func (_u *RaceResultUpdate) ClearTeam() *RaceResultUpdate {
	_u.mutation.ClearTeam()
	return _u
}

// SetRun1Time sets the "run1_time" field.
func (_u *RaceResultUpdate) SetRun1Time(v string) *RaceResultUpdate {
	_u.mutation.SetRun1Time(v)
	return _u
}

// SetNillableRun1Time sets the "run1_time" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableRun1Time(v *string) *RaceResultUpdate {
	if v != nil {
		_u.SetRun1Time(*v)
	}
	return _u
}

// ClearRun1Time clears the value of the "run1_time" field.
func (_u *RaceResultUpdate) ClearRun1Time() *RaceResultUpdate {
	_u.mutation.ClearRun1Time()
	return _u
}

// SetRun2Time sets the "run2_time" field.
func (_u *RaceResultUpdate) SetRun2Time(v string) *RaceResultUpdate {
	_u.mutation.SetRun2Time(v)
	return _u
}

// SetNillableRun2Time sets the "run2_time" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableRun2Time(v *string) *RaceResultUpdate {
	if v != nil {
		_u.SetRun2Time(*v)
	}
	return _u
}

// ClearRun2Time clears the value of the "run2_time" field.
func (_u *RaceResultUpdate) ClearRun2Time() *RaceResultUpdate {
	_u.mutation.ClearRun2Time()
	return _u
}

// SetTotalTime sets the "total_time" field.
func (_u *RaceResultUpdate) SetTotalTime(v string) *RaceResultUpdate {
	_u.mutation.SetTotalTime(v)
	return _u
}

// SetNillableTotalTime sets the "total_time" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableTotalTime(v *string) *RaceResultUpdate {
	if v != nil {
		_u.SetTotalTime(*v)
	}
	return _u
}

// ClearTotalTime clears the value of the "total_time" field.
func (_u *RaceResultUpdate) ClearTotalTime() *RaceResultUpdate {
	_u.mutation.ClearTotalTime()
	return _u
}

// SetTimeDiff sets the "time_diff" field.
func (_u *RaceResultUpdate) SetTimeDiff(v string) *RaceResultUpdate {
	_u.mutation.SetTimeDiff(v)
	return _u
}

// SetNillableTimeDiff sets the "time_diff" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableTimeDiff(v *string) *RaceResultUpdate {
	if v != nil {
		_u.SetTimeDiff(*v)
	}
	return _u
}

// ClearTimeDiff clears the value of the "time_diff" field.
func (_u *RaceResultUpdate) ClearTimeDiff() *RaceResultUpdate {
	_u.mutation.ClearTimeDiff()
	return _u
}

// SetRun1Seconds sets the "run1_seconds" field.
func (_u *RaceResultUpdate) SetRun1Seconds(v float64) *RaceResultUpdate {
	_u.mutation.ResetRun1Seconds()
	_u.mutation.SetRun1Seconds(v)
	return _u
}

// SetNillableRun1Seconds sets the "run1_seconds" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableRun1Seconds(v *float64) *RaceResultUpdate {
	if v != nil {
		_u.SetRun1Seconds(*v)
	}
	return _u
}

// AddRun1Seconds adds value to the "run1_seconds" field.
func (_u *RaceResultUpdate) AddRun1Seconds(v float64) *RaceResultUpdate {
	_u.mutation.AddRun1Seconds(v)
	return _u
}

// ClearRun1Seconds clears the value of the "run1_seconds" field.
func (_u *RaceResultUpdate) ClearRun1Seconds() *RaceResultUpdate {
	_u.mutation.ClearRun1Seconds()
	return _u
}

// SetRun2Seconds sets the "run2_seconds" field.
func (_u *RaceResultUpdate) SetRun2Seconds(v float64) *RaceResultUpdate {
	_u.mutation.ResetRun2Seconds()
	_u.mutation.SetRun2Seconds(v)
	return _u
}

// SetNillableRun2Seconds sets the "run2_seconds" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableRun2Seconds(v *float64) *RaceResultUpdate {
	if v != nil {
		_u.SetRun2Seconds(*v)
	}
	return _u
}

// AddRun2Seconds adds value to the "run2_seconds" field.
func (_u *RaceResultUpdate) AddRun2Seconds(v float64) *RaceResultUpdate {
	_u.mutation.AddRun2Seconds(v)
	return _u
}

// ClearRun2Seconds clears the value of the "run2_seconds" field.
func (_u *RaceResultUpdate) ClearRun2Seconds() *RaceResultUpdate {
	_u.mutation.ClearRun2Seconds()
	return _u
}

// SetTotalSeconds sets the "total_seconds" field.
func (_u *RaceResultUpdate) SetTotalSeconds(v float64) *RaceResultUpdate {
	_u.mutation.ResetTotalSeconds()
	_u.mutation.SetTotalSeconds(v)
	return _u
}

// SetNillableTotalSeconds sets the "total_seconds" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableTotalSeconds(v *float64) *RaceResultUpdate {
	if v != nil {
		_u.SetTotalSeconds(*v)
	}
	return _u
}

// AddTotalSeconds adds value to the "total_seconds" field.
func (_u *RaceResultUpdate) AddTotalSeconds(v float64) *RaceResultUpdate {
	_u.mutation.AddTotalSeconds(v)
	return _u
}

// ClearTotalSeconds clears the value of the "total_seconds" field.
func (_u *RaceResultUpdate) ClearTotalSeconds() *RaceResultUpdate {
	_u.mutation.ClearTotalSeconds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RaceResultUpdate) SetStatus(v string) *RaceResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RaceResultUpdate) SetNillableStatus(v *string) *RaceResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *RaceResultUpdate) SetEvent(v *Event) *RaceResultUpdate {
	return _u.SetEventID(v.ID)
}

// Mutation returns the RaceResultMutation object of the builder.
func (_u *RaceResultUpdate) Mutation() *RaceResultMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *RaceResultUpdate) ClearEvent() *RaceResultUpdate {
	_u.mutation.ClearEvent()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RaceResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RaceResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RaceResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RaceResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RaceResultUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := raceresult.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RaceResult.name": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RaceResult.event"`)
	}
	return nil
}

func (_u *RaceResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(raceresult.Table, raceresult.Columns, sqlgraph.NewFieldSpec(raceresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(raceresult.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(raceresult.FieldRank, field.TypeInt, value)
	}
	if _u.mutation.RankCleared() {
		_spec.ClearField(raceresult.FieldRank, field.TypeInt)
	}
	if value, ok := _u.mutation.Bib(); ok {
		_spec.SetField(raceresult.FieldBib, field.TypeString, value)
	}
	if _u.mutation.BibCleared() {
		_spec.ClearField(raceresult.FieldBib, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(raceresult.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NamePinyin(); ok {
		_spec.SetField(raceresult.FieldNamePinyin, field.TypeString, value)
	}
	if _u.mutation.NamePinyinCleared() {
		_spec.ClearField(raceresult.FieldNamePinyin, field.TypeString)
	}
	if value, ok := _u.mutation.Team(); ok {
		_spec.SetField(raceresult.FieldTeam, field.TypeString, value)
	}
	if _u.mutation.TeamCleared() {
		_spec.ClearField(raceresult.FieldTeam, field.TypeString)
	}
	if value, ok := _u.mutation.Run1Time(); ok {
		_spec.SetField(raceresult.FieldRun1Time, field.TypeString, value)
	}
	if _u.mutation.Run1TimeCleared() {
		_spec.ClearField(raceresult.FieldRun1Time, field.TypeString)
	}
	if value, ok := _u.mutation.Run2Time(); ok {
		_spec.SetField(raceresult.FieldRun2Time, field.TypeString, value)
	}
	if _u.mutation.Run2TimeCleared() {
		_spec.ClearField(raceresult.FieldRun2Time, field.TypeString)
	}
	if value, ok := _u.mutation.TotalTime(); ok {
		_spec.SetField(raceresult.FieldTotalTime, field.TypeString, value)
	}
	if _u.mutation.TotalTimeCleared() {
		_spec.ClearField(raceresult.FieldTotalTime, field.TypeString)
	}
	if value, ok := _u.mutation.TimeDiff(); ok {
		_spec.SetField(raceresult.FieldTimeDiff, field.TypeString, value)
	}
	if _u.mutation.TimeDiffCleared() {
		_spec.ClearField(raceresult.FieldTimeDiff, field.TypeString)
	}
	if value, ok := _u.mutation.Run1Seconds(); ok {
		_spec.SetField(raceresult.FieldRun1Seconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRun1Seconds(); ok {
		_spec.AddField(raceresult.FieldRun1Seconds, field.TypeFloat64, value)
	}
	if _u.mutation.Run1SecondsCleared() {
		_spec.ClearField(raceresult.FieldRun1Seconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Run2Seconds(); ok {
		_spec.SetField(raceresult.FieldRun2Seconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRun2Seconds(); ok {
		_spec.AddField(raceresult.FieldRun2Seconds, field.TypeFloat64, value)
	}
	if _u.mutation.Run2SecondsCleared() {
		_spec.ClearField(raceresult.FieldRun2Seconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalSeconds(); ok {
		_spec.SetField(raceresult.FieldTotalSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalSeconds(); ok {
		_spec.AddField(raceresult.FieldTotalSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.TotalSecondsCleared() {
		_spec.ClearField(raceresult.FieldTotalSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(raceresult.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   raceresult.EventTable,
			Columns: []string{raceresult.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   raceresult.EventTable,
			Columns: []string{raceresult.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{raceresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RaceResultUpdateOne is the builder for updating a single RaceResult entity.
type RaceResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RaceResultMutation
}

// SetEventID sets the "event_id" field.
func (_u *RaceResultUpdateOne) SetEventID(v int) *RaceResultUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableEventID(v *int) *RaceResultUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetRank sets the "rank" field.
func (_u *RaceResultUpdateOne) SetRank(v int) *RaceResultUpdateOne {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableRank(v *int) *RaceResultUpdateOne {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *RaceResultUpdateOne) AddRank(v int) *RaceResultUpdateOne {
	_u.mutation.AddRank(v)
	return _u
}

// ClearRank clears the value of the "rank" field.
func (_u *RaceResultUpdateOne) ClearRank() *RaceResultUpdateOne {
	_u.mutation.ClearRank()
	return _u
}

// SetBib sets the "bib" field.
func (_u *RaceResultUpdateOne) SetBib(v string) *RaceResultUpdateOne {
	_u.mutation.SetBib(v)
	return _u
}

// SetNillableBib sets the "bib" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableBib(v *string) *RaceResultUpdateOne {
	if v != nil {
		_u.SetBib(*v)
	}
	return _u
}

// ClearBib clears the value of the "bib" field.
func (_u *RaceResultUpdateOne) ClearBib() *RaceResultUpdateOne {
	_u.mutation.ClearBib()
	return _u
}

// SetName sets the "name" field.
func (_u *RaceResultUpdateOne) SetName(v string) *RaceResultUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableName(v *string) *RaceResultUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNamePinyin sets the "name_pinyin" field.
func (_u *RaceResultUpdateOne) SetNamePinyin(v string) *RaceResultUpdateOne {
	_u.mutation.SetNamePinyin(v)
	return _u
}

// SetNillableNamePinyin sets the "name_pinyin" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableNamePinyin(v *string) *RaceResultUpdateOne {
	if v != nil {
		_u.SetNamePinyin(*v)
	}
	return _u
}

// ClearNamePinyin clears the value of the "name_pinyin" field.
func (_u *RaceResultUpdateOne) ClearNamePinyin() *RaceResultUpdateOne {
	_u.mutation.ClearNamePinyin()
	return _u
}

// SetTeam sets the "team" field.
func (_u *RaceResultUpdateOne) SetTeam(v string) *RaceResultUpdateOne {
	_u.mutation.SetTeam(v)
	return _u
}

// SetNillableTeam sets the "team" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableTeam(v *string) *RaceResultUpdateOne {
	if v != nil {
		_u.SetTeam(*v)
	}
	return _u
}

// ClearTeam clears the value of the "team" field.
func (_u *RaceResultUpdateOne) ClearTeam() *RaceResultUpdateOne {
	_u.mutation.ClearTeam()
	return _u
}

// SetRun1Time sets the "run1_time" field.
func (_u *RaceResultUpdateOne) SetRun1Time(v string) *RaceResultUpdateOne {
	_u.mutation.SetRun1Time(v)
	return _u
}

// SetNillableRun1Time sets the "run1_time" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableRun1Time(v *string) *RaceResultUpdateOne {
	if v != nil {
		_u.SetRun1Time(*v)
	}
	return _u
}

// ClearRun1Time clears the value of the "run1_time" field.
func (_u *RaceResultUpdateOne) ClearRun1Time() *RaceResultUpdateOne {
	_u.mutation.ClearRun1Time()
	return _u
}

// SetRun2Time sets the "run2_time" field.
func (_u *RaceResultUpdateOne) SetRun2Time(v string) *RaceResultUpdateOne {
	_u.mutation.SetRun2Time(v)
	return _u
}

// SetNillableRun2Time sets the "run2_time" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableRun2Time(v *string) *RaceResultUpdateOne {
	if v != nil {
		_u.SetRun2Time(*v)
	}
	return _u
}

// ClearRun2Time clears the value of the "run2_time" field.
func (_u *RaceResultUpdateOne) ClearRun2Time() *RaceResultUpdateOne {
	_u.mutation.ClearRun2Time()
	return _u
}

// SetTotalTime sets the "total_time" field.
func (_u *RaceResultUpdateOne) SetTotalTime(v string) *RaceResultUpdateOne {
	_u.mutation.SetTotalTime(v)
	return _u
}

// SetNillableTotalTime sets the "total_time" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableTotalTime(v *string) *RaceResultUpdateOne {
	if v != nil {
		_u.SetTotalTime(*v)
	}
	return _u
}

// ClearTotalTime clears the value of the "total_time" field.
func (_u *RaceResultUpdateOne) ClearTotalTime() *RaceResultUpdateOne {
	_u.mutation.ClearTotalTime()
	return _u
}

// SetTimeDiff sets the "time_diff" field.
func (_u *RaceResultUpdateOne) SetTimeDiff(v string) *RaceResultUpdateOne {
	_u.mutation.SetTimeDiff(v)
	return _u
}

// SetNillableTimeDiff sets the "time_diff" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableTimeDiff(v *string) *RaceResultUpdateOne {
	if v != nil {
		_u.SetTimeDiff(*v)
	}
	return _u
}

// ClearTimeDiff clears the value of the "time_diff" field.
func (_u *RaceResultUpdateOne) ClearTimeDiff() *RaceResultUpdateOne {
	_u.mutation.ClearTimeDiff()
	return _u
}

// SetRun1Seconds sets the "run1_seconds" field.
func (_u *RaceResultUpdateOne) SetRun1Seconds(v float64) *RaceResultUpdateOne {
	_u.mutation.ResetRun1Seconds()
	_u.mutation.SetRun1Seconds(v)
	return _u
}

// SetNillableRun1Seconds sets the "run1_seconds" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableRun1Seconds(v *float64) *RaceResultUpdateOne {
	if v != nil {
		_u.SetRun1Seconds(*v)
	}
	return _u
}

// AddRun1Seconds adds value to the "run1_seconds" field.
func (_u *RaceResultUpdateOne) AddRun1Seconds(v float64) *RaceResultUpdateOne {
	_u.mutation.AddRun1Seconds(v)
	return _u
}

// ClearRun1Seconds clears the value of the "run1_seconds" field.
func (_u *RaceResultUpdateOne) ClearRun1Seconds() *RaceResultUpdateOne {
	_u.mutation.ClearRun1Seconds()
	return _u
}

// SetRun2Seconds sets the "run2_seconds" field.
func (_u *RaceResultUpdateOne) SetRun2Seconds(v float64) *RaceResultUpdateOne {
	_u.mutation.ResetRun2Seconds()
	_u.mutation.SetRun2Seconds(v)
	return _u
}

// SetNillableRun2Seconds sets the "run2_seconds" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableRun2Seconds(v *float64) *RaceResultUpdateOne {
	if v != nil {
		_u.SetRun2Seconds(*v)
	}
	return _u
}

// AddRun2Seconds adds value to the "run2_seconds" field.
func (_u *RaceResultUpdateOne) AddRun2Seconds(v float64) *RaceResultUpdateOne {
	_u.mutation.AddRun2Seconds(v)
	return _u
}

// ClearRun2Seconds clears the value of the "run2_seconds" field.
func (_u *RaceResultUpdateOne) ClearRun2Seconds() *RaceResultUpdateOne {
	_u.mutation.ClearRun2Seconds()
	return _u
}

// SetTotalSeconds sets the "total_seconds" field.
func (_u *RaceResultUpdateOne) SetTotalSeconds(v float64) *RaceResultUpdateOne {
	_u.mutation.ResetTotalSeconds()
	_u.mutation.SetTotalSeconds(v)
	return _u
}

// SetNillableTotalSeconds sets the "total_seconds" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableTotalSeconds(v *float64) *RaceResultUpdateOne {
	if v != nil {
		_u.SetTotalSeconds(*v)
	}
	return _u
}

// AddTotalSeconds adds value to the "total_seconds" field.
func (_u *RaceResultUpdateOne) AddTotalSeconds(v float64) *RaceResultUpdateOne {
	_u.mutation.AddTotalSeconds(v)
	return _u
}

// ClearTotalSeconds clears the value of the "total_seconds" field.
func (_u *RaceResultUpdateOne) ClearTotalSeconds() *RaceResultUpdateOne {
	_u.mutation.ClearTotalSeconds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RaceResultUpdateOne) SetStatus(v string) *RaceResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RaceResultUpdateOne) SetNillableStatus(v *string) *RaceResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEvent sets the "event" edge to the Event entity.
func (_u *RaceResultUpdateOne) SetEvent(v *Event) *RaceResultUpdateOne {
	return _u.SetEventID(v.ID)
}

// Mutation returns the RaceResultMutation object of the builder.
func (_u *RaceResultUpdateOne) Mutation() *RaceResultMutation {
	return _u.mutation
}

// ClearEvent clears the "event" edge to the Event entity.
func (_u *RaceResultUpdateOne) ClearEvent() *RaceResultUpdateOne {
	_u.mutation.ClearEvent()
	return _u
}

// Where appends a list predicates to the RaceResultUpdate builder.
func (_u *RaceResultUpdateOne) Where(ps ...predicate.RaceResult) *RaceResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RaceResultUpdateOne) Select(field string, fields ...string) *RaceResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RaceResult entity.
func (_u *RaceResultUpdateOne) Save(ctx context.Context) (*RaceResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RaceResultUpdateOne) SaveX(ctx context.Context) *RaceResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RaceResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RaceResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RaceResultUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := raceresult.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RaceResult.name": %w`, err)}
		}
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RaceResult.event"`)
	}
	return nil
}

func (_u *RaceResultUpdateOne) sqlSave(ctx context.Context) (_node *RaceResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(raceresult.Table, raceresult.Columns, sqlgraph.NewFieldSpec(raceresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RaceResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, raceresult.FieldID)
		for _, f := range fields {
			if !raceresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != raceresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(raceresult.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(raceresult.FieldRank, field.TypeInt, value)
	}
	if _u.mutation.RankCleared() {
		_spec.ClearField(raceresult.FieldRank, field.TypeInt)
	}
	if value, ok := _u.mutation.Bib(); ok {
		_spec.SetField(raceresult.FieldBib, field.TypeString, value)
	}
	if _u.mutation.BibCleared() {
		_spec.ClearField(raceresult.FieldBib, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(raceresult.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NamePinyin(); ok {
		_spec.SetField(raceresult.FieldNamePinyin, field.TypeString, value)
	}
	if _u.mutation.NamePinyinCleared() {
		_spec.ClearField(raceresult.FieldNamePinyin, field.TypeString)
	}
	if value, ok := _u.mutation.Team(); ok {
		_spec.SetField(raceresult.FieldTeam, field.TypeString, value)
	}
	if _u.mutation.TeamCleared() {
		_spec.ClearField(raceresult.FieldTeam, field.TypeString)
	}
	if value, ok := _u.mutation.Run1Time(); ok {
		_spec.SetField(raceresult.FieldRun1Time, field.TypeString, value)
	}
	if _u.mutation.Run1TimeCleared() {
		_spec.ClearField(raceresult.FieldRun1Time, field.TypeString)
	}
	if value, ok := _u.mutation.Run2Time(); ok {
		_spec.SetField(raceresult.FieldRun2Time, field.TypeString, value)
	}
	if _u.mutation.Run2TimeCleared() {
		_spec.ClearField(raceresult.FieldRun2Time, field.TypeString)
	}
	if value, ok := _u.mutation.TotalTime(); ok {
		_spec.SetField(raceresult.FieldTotalTime, field.TypeString, value)
	}
	if _u.mutation.TotalTimeCleared() {
		_spec.ClearField(raceresult.FieldTotalTime, field.TypeString)
	}
	if value, ok := _u.mutation.TimeDiff(); ok {
		_spec.SetField(raceresult.FieldTimeDiff, field.TypeString, value)
	}
	if _u.mutation.TimeDiffCleared() {
		_spec.ClearField(raceresult.FieldTimeDiff, field.TypeString)
	}
	if value, ok := _u.mutation.Run1Seconds(); ok {
		_spec.SetField(raceresult.FieldRun1Seconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRun1Seconds(); ok {
		_spec.AddField(raceresult.FieldRun1Seconds, field.TypeFloat64, value)
	}
	if _u.mutation.Run1SecondsCleared() {
		_spec.ClearField(raceresult.FieldRun1Seconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Run2Seconds(); ok {
		_spec.SetField(raceresult.FieldRun2Seconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRun2Seconds(); ok {
		_spec.AddField(raceresult.FieldRun2Seconds, field.TypeFloat64, value)
	}
	if _u.mutation.Run2SecondsCleared() {
		_spec.ClearField(raceresult.FieldRun2Seconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalSeconds(); ok {
		_spec.SetField(raceresult.FieldTotalSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalSeconds(); ok {
		_spec.AddField(raceresult.FieldTotalSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.TotalSecondsCleared() {
		_spec.ClearField(raceresult.FieldTotalSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(raceresult.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.EventCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   raceresult.EventTable,
			Columns: []string{raceresult.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   raceresult.EventTable,
			Columns: []string{raceresult.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RaceResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{raceresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
