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
	"github.com/fsun/ski-results/gen/ent/raceresult"
)

// RaceResultCreate is the builder for creating a RaceResult entity.
type RaceResultCreate struct {
	config
	mutation *RaceResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventID sets the "event_id" field.
func (_c *RaceResultCreate) SetEventID(v int) *RaceResultCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetRank sets the "rank" field.
func (_c *RaceResultCreate) SetRank(v int) *RaceResultCreate {
	_c.mutation.SetRank(v)
	return _c
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_c *RaceResultCreate) SetNillableRank(v *int) *RaceResultCreate {
	if v != nil {
		_c.SetRank(*v)
	}
	return _c
}

// SetBib sets the "bib" field.
func (_c *RaceResultCreate) SetBib(v string) *RaceResultCreate {
	_c.mutation.SetBib(v)
	return _c
}

// SetNillableBib sets the "bib" field if the given value is not nil.
func (_c *RaceResultCreate) SetNillableBib(v *string) *RaceResultCreate {
	if v != nil {
		_c.SetBib(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *RaceResultCreate) SetName(v string) *RaceResultCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNamePinyin sets the "name_pinyin" field.
func (_c *RaceResultCreate) SetNamePinyin(v string) *RaceResultCreate {
	_c.mutation.SetNamePinyin(v)
	return _c
}

// SetNillableNamePinyin sets the "name_pinyin" field if the given value is not nil.
func (_c *RaceResultCreate) SetNillableNamePinyin(v *string) *RaceResultCreate {
	if v != nil {
		_c.SetNamePinyin(*v)
	}
	return _c
}

// SetTeam sets the "team" field.
func (_c *RaceResultCreate) SetTeam(v string) *RaceResultCreate {
	_c.mutation.SetTeam(v)
	return _c
}

// SetNillableTeam sets the "team" field if the given value is not nil.
func (_c *RaceResultCreate) SetNillableTeam(v *string) *RaceResultCreate {
	if v != nil {
		_c.SetTeam(*v)
	}
	return _c
}

// SetRun1Time sets the "run1_time" field.
func (_c *RaceResultCreate) SetRun1Time(v string) *RaceResultCreate {
	_c.mutation.SetRun1Time(v)
	return _c
}

// SetNillableRun1Time sets the "run1_time" field if the given value is not nil.
func (_c *RaceResultCreate) SetNillableRun1Time(v *string) *RaceResultCreate {
	if v != nil {
		_c.SetRun1Time(*v)
	}
	return _c
}

// SetRun2Time sets the "run2_time" field.
func (_c *RaceResultCreate) SetRun2Time(v string) *RaceResultCreate {
	_c.mutation.SetRun2Time(v)
	return _c
}

// SetNillableRun2Time sets the "run2_time" field if the given value is not nil.
func (_c *RaceResultCreate) SetNillableRun2Time(v *string) *RaceResultCreate {
	if v != nil {
		_c.SetRun2Time(*v)
	}
	return _c
}

// SetTotalTime sets the "total_time" field.
func (_c *RaceResultCreate) SetTotalTime(v string) *RaceResultCreate {
	_c.mutation.SetTotalTime(v)
	return _c
}

// SetNillableTotalTime sets the "total_time" field if the given value is not nil.
func (_c *RaceResultCreate) SetNillableTotalTime(v *string) *RaceResultCreate {
	if v != nil {
		_c.SetTotalTime(*v)
	}
	return _c
}

// SetTimeDiff sets the "time_diff" field.
func (_c *RaceResultCreate) SetTimeDiff(v string) *RaceResultCreate {
	_c.mutation.SetTimeDiff(v)
	return _c
}

// SetNillableTimeDiff sets the "time_diff" field if the given value is not nil.
func (_c *RaceResultCreate) SetNillableTimeDiff(v *string) *RaceResultCreate {
	if v != nil {
		_c.SetTimeDiff(*v)
	}
	return _c
}

// SetRun1Seconds sets the "run1_seconds" field.
func (_c *RaceResultCreate) SetRun1Seconds(v float64) *RaceResultCreate {
	_c.mutation.SetRun1Seconds(v)
	return _c
}

// SetNillableRun1Seconds sets the "run1_seconds" field if the given value is not nil.
func (_c *RaceResultCreate) SetNillableRun1Seconds(v *float64) *RaceResultCreate {
	if v != nil {
		_c.SetRun1Seconds(*v)
	}
	return _c
}

// SetRun2Seconds sets the "run2_seconds" field.
func (_c *RaceResultCreate) SetRun2Seconds(v float64) *RaceResultCreate {
	_c.mutation.SetRun2Seconds(v)
	return _c
}

// SetNillableRun2Seconds sets the "run2_seconds" field if the given value is not nil.
func (_c *RaceResultCreate) SetNillableRun2Seconds(v *float64) *RaceResultCreate {
	if v != nil {
		_c.SetRun2Seconds(*v)
	}
	return _c
}

// SetTotalSeconds sets the "total_seconds" field.
func (_c *RaceResultCreate) SetTotalSeconds(v float64) *RaceResultCreate {
	_c.mutation.SetTotalSeconds(v)
	return _c
}

// SetNillableTotalSeconds sets the "total_seconds" field if the given value is not nil.
func (_c *RaceResultCreate) SetNillableTotalSeconds(v *float64) *RaceResultCreate {
	if v != nil {
		_c.SetTotalSeconds(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RaceResultCreate) SetStatus(v string) *RaceResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RaceResultCreate) SetNillableStatus(v *string) *RaceResultCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEvent sets the "event" edge to the Event entity.
func (_c *RaceResultCreate) SetEvent(v *Event) *RaceResultCreate {
	return _c.SetEventID(v.ID)
}

// Mutation returns the RaceResultMutation object of the builder.
func (_c *RaceResultCreate) Mutation() *RaceResultMutation {
	return _c.mutation
}

// Save creates the RaceResult in the database.
func (_c *RaceResultCreate) Save(ctx context.Context) (*RaceResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RaceResultCreate) SaveX(ctx context.Context) *RaceResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RaceResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RaceResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RaceResultCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := raceresult.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RaceResultCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "RaceResult.event_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "RaceResult.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := raceresult.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RaceResult.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RaceResult.status"`)}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "RaceResult.event"`)}
	}
	return nil
}

func (_c *RaceResultCreate) sqlSave(ctx context.Context) (*RaceResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RaceResultCreate) createSpec() (*RaceResult, *sqlgraph.CreateSpec) {
	var (
		_node = &RaceResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(raceresult.Table, sqlgraph.NewFieldSpec(raceresult.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Rank(); ok {
		_spec.SetField(raceresult.FieldRank, field.TypeInt, value)
		_node.Rank = &value
	}
	if value, ok := _c.mutation.Bib(); ok {
		_spec.SetField(raceresult.FieldBib, field.TypeString, value)
		_node.Bib = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(raceresult.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NamePinyin(); ok {
		_spec.SetField(raceresult.FieldNamePinyin, field.TypeString, value)
		_node.NamePinyin = value
	}
	if value, ok := _c.mutation.Team(); ok {
		_spec.SetField(raceresult.FieldTeam, field.TypeString, value)
		_node.Team = value
	}
	if value, ok := _c.mutation.Run1Time(); ok {
		_spec.SetField(raceresult.FieldRun1Time, field.TypeString, value)
		_node.Run1Time = value
	}
	if value, ok := _c.mutation.Run2Time(); ok {
		_spec.SetField(raceresult.FieldRun2Time, field.TypeString, value)
		_node.Run2Time = value
	}
	if value, ok := _c.mutation.TotalTime(); ok {
		_spec.SetField(raceresult.FieldTotalTime, field.TypeString, value)
		_node.TotalTime = value
	}
	if value, ok := _c.mutation.TimeDiff(); ok {
		_spec.SetField(raceresult.FieldTimeDiff, field.TypeString, value)
		_node.TimeDiff = value
	}
	if value, ok := _c.mutation.Run1Seconds(); ok {
		_spec.SetField(raceresult.FieldRun1Seconds, field.TypeFloat64, value)
		_node.Run1Seconds = &value
	}
	if value, ok := _c.mutation.Run2Seconds(); ok {
		_spec.SetField(raceresult.FieldRun2Seconds, field.TypeFloat64, value)
		_node.Run2Seconds = &value
	}
	if value, ok := _c.mutation.TotalSeconds(); ok {
		_spec.SetField(raceresult.FieldTotalSeconds, field.TypeFloat64, value)
		_node.TotalSeconds = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(raceresult.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
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
		_node.EventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RaceResult.Create().
//		SetEventID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RaceResultUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *RaceResultCreate) OnConflict(opts ...sql.ConflictOption) *RaceResultUpsertOne {
	_c.conflict = opts
	return &RaceResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RaceResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RaceResultCreate) OnConflictColumns(columns ...string) *RaceResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RaceResultUpsertOne{
		create: _c,
	}
}

type (
	// RaceResultUpsertOne is the builder for "upsert"-ing
	//  one RaceResult node.
	RaceResultUpsertOne struct {
		create *RaceResultCreate
	}

	// RaceResultUpsert is the "OnConflict" setter.
	RaceResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventID sets the "event_id" field.
func (u *RaceResultUpsert) SetEventID(v int) *RaceResultUpsert {
	u.Set(raceresult.FieldEventID, v)
	return u
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateEventID() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldEventID)
	return u
}

// SetRank sets the "rank" field.
func (u *RaceResultUpsert) SetRank(v int) *RaceResultUpsert {
	u.Set(raceresult.FieldRank, v)
	return u
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateRank() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldRank)
	return u
}

// AddRank adds v to the "rank" field.
func (u *RaceResultUpsert) AddRank(v int) *RaceResultUpsert {
	u.Add(raceresult.FieldRank, v)
	return u
}

// ClearRank clears the value of the "rank" field.
func (u *RaceResultUpsert) ClearRank() *RaceResultUpsert {
	u.SetNull(raceresult.FieldRank)
	return u
}

// SetBib sets the "bib" field.
func (u *RaceResultUpsert) SetBib(v string) *RaceResultUpsert {
	u.Set(raceresult.FieldBib, v)
	return u
}

// UpdateBib sets the "bib" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateBib() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldBib)
	return u
}

// ClearBib clears the value of the "bib" field.
func (u *RaceResultUpsert) ClearBib() *RaceResultUpsert {
	u.SetNull(raceresult.FieldBib)
	return u
}

// SetName sets the "name" field.
func (u *RaceResultUpsert) SetName(v string) *RaceResultUpsert {
	u.Set(raceresult.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateName() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldName)
	return u
}

// SetNamePinyin sets the "name_pinyin" field.
func (u *RaceResultUpsert) SetNamePinyin(v string) *RaceResultUpsert {
	u.Set(raceresult.FieldNamePinyin, v)
	return u
}

// UpdateNamePinyin sets the "name_pinyin" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateNamePinyin() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldNamePinyin)
	return u
}

// ClearNamePinyin clears the value of the "name_pinyin" field.
func (u *RaceResultUpsert) ClearNamePinyin() *RaceResultUpsert {
	u.SetNull(raceresult.FieldNamePinyin)
	return u
}

// SetTeam sets the "team" field.
func (u *RaceResultUpsert) SetTeam(v string) *RaceResultUpsert {
	u.Set(raceresult.FieldTeam, v)
	return u
}

// UpdateTeam sets the "team" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateTeam() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldTeam)
	return u
}

// ClearTeam clears the value of the "team" field.
func (u *RaceResultUpsert) ClearTeam() *RaceResultUpsert {
	u.SetNull(raceresult.FieldTeam)
	return u
}

// SetRun1Time sets the "run1_time" field.
func (u *RaceResultUpsert) SetRun1Time(v string) *RaceResultUpsert {
	u.Set(raceresult.FieldRun1Time, v)
	return u
}

// UpdateRun1Time sets the "run1_time" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateRun1Time() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldRun1Time)
	return u
}

// ClearRun1Time clears the value of the "run1_time" field.
func (u *RaceResultUpsert) ClearRun1Time() *RaceResultUpsert {
	u.SetNull(raceresult.FieldRun1Time)
	return u
}

// SetRun2Time sets the "run2_time" field.
func (u *RaceResultUpsert) SetRun2Time(v string) *RaceResultUpsert {
	u.Set(raceresult.FieldRun2Time, v)
	return u
}

// UpdateRun2Time sets the "run2_time" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateRun2Time() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldRun2Time)
	return u
}

// ClearRun2Time clears the value of the "run2_time" field.
func (u *RaceResultUpsert) ClearRun2Time() *RaceResultUpsert {
	u.SetNull(raceresult.FieldRun2Time)
	return u
}

// SetTotalTime sets the "total_time" field.
func (u *RaceResultUpsert) SetTotalTime(v string) *RaceResultUpsert {
	u.Set(raceresult.FieldTotalTime, v)
	return u
}

// UpdateTotalTime sets the "total_time" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateTotalTime() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldTotalTime)
	return u
}

// ClearTotalTime clears the value of the "total_time" field.
func (u *RaceResultUpsert) ClearTotalTime() *RaceResultUpsert {
	u.SetNull(raceresult.FieldTotalTime)
	return u
}

// SetTimeDiff sets the "time_diff" field.
func (u *RaceResultUpsert) SetTimeDiff(v string) *RaceResultUpsert {
	u.Set(raceresult.FieldTimeDiff, v)
	return u
}

// UpdateTimeDiff sets the "time_diff" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateTimeDiff() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldTimeDiff)
	return u
}

// ClearTimeDiff clears the value of the "time_diff" field.
func (u *RaceResultUpsert) ClearTimeDiff() *RaceResultUpsert {
	u.SetNull(raceresult.FieldTimeDiff)
	return u
}

// SetRun1Seconds sets the "run1_seconds" field.
func (u *RaceResultUpsert) SetRun1Seconds(v float64) *RaceResultUpsert {
	u.Set(raceresult.FieldRun1Seconds, v)
	return u
}

// UpdateRun1Seconds sets the "run1_seconds" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateRun1Seconds() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldRun1Seconds)
	return u
}

// AddRun1Seconds adds v to the "run1_seconds" field.
func (u *RaceResultUpsert) AddRun1Seconds(v float64) *RaceResultUpsert {
	u.Add(raceresult.FieldRun1Seconds, v)
	return u
}

// ClearRun1Seconds clears the value of the "run1_seconds" field.
func (u *RaceResultUpsert) ClearRun1Seconds() *RaceResultUpsert {
	u.SetNull(raceresult.FieldRun1Seconds)
	return u
}

// SetRun2Seconds sets the "run2_seconds" field.
func (u *RaceResultUpsert) SetRun2Seconds(v float64) *RaceResultUpsert {
	u.Set(raceresult.FieldRun2Seconds, v)
	return u
}

// UpdateRun2Seconds sets the "run2_seconds" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateRun2Seconds() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldRun2Seconds)
	return u
}

// AddRun2Seconds adds v to the "run2_seconds" field.
func (u *RaceResultUpsert) AddRun2Seconds(v float64) *RaceResultUpsert {
	u.Add(raceresult.FieldRun2Seconds, v)
	return u
}

// ClearRun2Seconds clears the value of the "run2_seconds" field.
func (u *RaceResultUpsert) ClearRun2Seconds() *RaceResultUpsert {
	u.SetNull(raceresult.FieldRun2Seconds)
	return u
}

// SetTotalSeconds sets the "total_seconds" field.
func (u *RaceResultUpsert) SetTotalSeconds(v float64) *RaceResultUpsert {
	u.Set(raceresult.FieldTotalSeconds, v)
	return u
}

// UpdateTotalSeconds sets the "total_seconds" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateTotalSeconds() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldTotalSeconds)
	return u
}

// AddTotalSeconds adds v to the "total_seconds" field.
func (u *RaceResultUpsert) AddTotalSeconds(v float64) *RaceResultUpsert {
	u.Add(raceresult.FieldTotalSeconds, v)
	return u
}

// ClearTotalSeconds clears the value of the "total_seconds" field.
func (u *RaceResultUpsert) ClearTotalSeconds() *RaceResultUpsert {
	u.SetNull(raceresult.FieldTotalSeconds)
	return u
}

// SetStatus sets the "status" field.
func (u *RaceResultUpsert) SetStatus(v string) *RaceResultUpsert {
	u.Set(raceresult.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RaceResultUpsert) UpdateStatus() *RaceResultUpsert {
	u.SetExcluded(raceresult.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RaceResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RaceResultUpsertOne) UpdateNewValues() *RaceResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RaceResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RaceResultUpsertOne) Ignore() *RaceResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RaceResultUpsertOne) DoNothing() *RaceResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RaceResultCreate.OnConflict
// documentation for more info.
func (u *RaceResultUpsertOne) Update(set func(*RaceResultUpsert)) *RaceResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RaceResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *RaceResultUpsertOne) SetEventID(v int) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateEventID() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateEventID()
	})
}

// SetRank sets the "rank" field.
func (u *RaceResultUpsertOne) SetRank(v int) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetRank(v)
	})
}

// AddRank adds v to the "rank" field.
func (u *RaceResultUpsertOne) AddRank(v int) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.AddRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateRank() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateRank()
	})
}

// ClearRank clears the value of the "rank" field.
func (u *RaceResultUpsertOne) ClearRank() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearRank()
	})
}

// SetBib sets the "bib" field.
func (u *RaceResultUpsertOne) SetBib(v string) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetBib(v)
	})
}

// UpdateBib sets the "bib" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateBib() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateBib()
	})
}

// ClearBib clears the value of the "bib" field.
func (u *RaceResultUpsertOne) ClearBib() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearBib()
	})
}

// SetName sets the "name" field.
func (u *RaceResultUpsertOne) SetName(v string) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateName() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateName()
	})
}

// SetNamePinyin sets the "name_pinyin" field.
func (u *RaceResultUpsertOne) SetNamePinyin(v string) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetNamePinyin(v)
	})
}

// UpdateNamePinyin sets the "name_pinyin" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateNamePinyin() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateNamePinyin()
	})
}

// ClearNamePinyin clears the value of the "name_pinyin" field.
func (u *RaceResultUpsertOne) ClearNamePinyin() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearNamePinyin()
	})
}

// SetTeam sets the "team" field.
func (u *RaceResultUpsertOne) SetTeam(v string) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetTeam(v)
	})
}

// UpdateTeam sets the "team" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateTeam() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateTeam()
	})
}

// ClearTeam clears the value of the "team" field.
func (u *RaceResultUpsertOne) ClearTeam() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearTeam()
	})
}

// SetRun1Time sets the "run1_time" field.
func (u *RaceResultUpsertOne) SetRun1Time(v string) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetRun1Time(v)
	})
}

// UpdateRun1Time sets the "run1_time" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateRun1Time() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateRun1Time()
	})
}

// ClearRun1Time clears the value of the "run1_time" field.
func (u *RaceResultUpsertOne) ClearRun1Time() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearRun1Time()
	})
}

// SetRun2Time sets the "run2_time" field.
func (u *RaceResultUpsertOne) SetRun2Time(v string) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetRun2Time(v)
	})
}

// UpdateRun2Time sets the "run2_time" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateRun2Time() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateRun2Time()
	})
}

// ClearRun2Time clears the value of the "run2_time" field.
func (u *RaceResultUpsertOne) ClearRun2Time() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearRun2Time()
	})
}

// SetTotalTime sets the "total_time" field.
func (u *RaceResultUpsertOne) SetTotalTime(v string) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetTotalTime(v)
	})
}

// UpdateTotalTime sets the "total_time" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateTotalTime() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateTotalTime()
	})
}

// ClearTotalTime clears the value of the "total_time" field.
func (u *RaceResultUpsertOne) ClearTotalTime() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearTotalTime()
	})
}

// SetTimeDiff sets the "time_diff" field.
func (u *RaceResultUpsertOne) SetTimeDiff(v string) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetTimeDiff(v)
	})
}

// UpdateTimeDiff sets the "time_diff" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateTimeDiff() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateTimeDiff()
	})
}

// ClearTimeDiff clears the value of the "time_diff" field.
func (u *RaceResultUpsertOne) ClearTimeDiff() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearTimeDiff()
	})
}

// SetRun1Seconds sets the "run1_seconds" field.
func (u *RaceResultUpsertOne) SetRun1Seconds(v float64) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetRun1Seconds(v)
	})
}

// AddRun1Seconds adds v to the "run1_seconds" field.
func (u *RaceResultUpsertOne) AddRun1Seconds(v float64) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.AddRun1Seconds(v)
	})
}

// UpdateRun1Seconds sets the "run1_seconds" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateRun1Seconds() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateRun1Seconds()
	})
}

// ClearRun1Seconds clears the value of the "run1_seconds" field.
func (u *RaceResultUpsertOne) ClearRun1Seconds() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearRun1Seconds()
	})
}

// SetRun2Seconds sets the "run2_seconds" field.
func (u *RaceResultUpsertOne) SetRun2Seconds(v float64) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetRun2Seconds(v)
	})
}

// AddRun2Seconds adds v to the "run2_seconds" field.
func (u *RaceResultUpsertOne) AddRun2Seconds(v float64) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.AddRun2Seconds(v)
	})
}

// UpdateRun2Seconds sets the "run2_seconds" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateRun2Seconds() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateRun2Seconds()
	})
}

// ClearRun2Seconds clears the value of the "run2_seconds" field.
func (u *RaceResultUpsertOne) ClearRun2Seconds() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearRun2Seconds()
	})
}

// SetTotalSeconds sets the "total_seconds" field.
func (u *RaceResultUpsertOne) SetTotalSeconds(v float64) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetTotalSeconds(v)
	})
}

// AddTotalSeconds adds v to the "total_seconds" field.
func (u *RaceResultUpsertOne) AddTotalSeconds(v float64) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.AddTotalSeconds(v)
	})
}

// UpdateTotalSeconds sets the "total_seconds" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateTotalSeconds() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateTotalSeconds()
	})
}

// ClearTotalSeconds clears the value of the "total_seconds" field.
func (u *RaceResultUpsertOne) ClearTotalSeconds() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearTotalSeconds()
	})
}

// SetStatus sets the "status" field.
func (u *RaceResultUpsertOne) SetStatus(v string) *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RaceResultUpsertOne) UpdateStatus() *RaceResultUpsertOne {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *RaceResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RaceResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RaceResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RaceResultUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RaceResultUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RaceResultCreateBulk is the builder for creating many RaceResult entities in bulk.
type RaceResultCreateBulk struct {
	config
	err      error
	builders []*RaceResultCreate
	conflict []sql.ConflictOption
}

// Save creates the RaceResult entities in the database.
func (_c *RaceResultCreateBulk) Save(ctx context.Context) ([]*RaceResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RaceResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RaceResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RaceResultCreateBulk) SaveX(ctx context.Context) []*RaceResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RaceResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RaceResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RaceResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RaceResultUpsert) {
//			SetEventID(v+v).
//		}).
//		Exec(ctx)
func (_c *RaceResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *RaceResultUpsertBulk {
	_c.conflict = opts
	return &RaceResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RaceResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RaceResultCreateBulk) OnConflictColumns(columns ...string) *RaceResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RaceResultUpsertBulk{
		create: _c,
	}
}

// RaceResultUpsertBulk is the builder for "upsert"-ing
// a bulk of RaceResult nodes.
type RaceResultUpsertBulk struct {
	create *RaceResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RaceResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RaceResultUpsertBulk) UpdateNewValues() *RaceResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RaceResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RaceResultUpsertBulk) Ignore() *RaceResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RaceResultUpsertBulk) DoNothing() *RaceResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RaceResultCreateBulk.OnConflict
// documentation for more info.
func (u *RaceResultUpsertBulk) Update(set func(*RaceResultUpsert)) *RaceResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RaceResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventID sets the "event_id" field.
func (u *RaceResultUpsertBulk) SetEventID(v int) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetEventID(v)
	})
}

// UpdateEventID sets the "event_id" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateEventID() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateEventID()
	})
}

// SetRank sets the "rank" field.
func (u *RaceResultUpsertBulk) SetRank(v int) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetRank(v)
	})
}

// AddRank adds v to the "rank" field.
func (u *RaceResultUpsertBulk) AddRank(v int) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.AddRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateRank() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateRank()
	})
}

// ClearRank clears the value of the "rank" field.
func (u *RaceResultUpsertBulk) ClearRank() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearRank()
	})
}

// SetBib sets the "bib" field.
func (u *RaceResultUpsertBulk) SetBib(v string) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetBib(v)
	})
}

// UpdateBib sets the "bib" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateBib() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateBib()
	})
}

// ClearBib clears the value of the "bib" field.
func (u *RaceResultUpsertBulk) ClearBib() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearBib()
	})
}

// SetName sets the "name" field.
func (u *RaceResultUpsertBulk) SetName(v string) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateName() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateName()
	})
}

// SetNamePinyin sets the "name_pinyin" field.
func (u *RaceResultUpsertBulk) SetNamePinyin(v string) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetNamePinyin(v)
	})
}

// UpdateNamePinyin sets the "name_pinyin" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateNamePinyin() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateNamePinyin()
	})
}

// ClearNamePinyin clears the value of the "name_pinyin" field.
func (u *RaceResultUpsertBulk) ClearNamePinyin() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearNamePinyin()
	})
}

// SetTeam sets the "team" field.
func (u *RaceResultUpsertBulk) SetTeam(v string) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetTeam(v)
	})
}

// UpdateTeam sets the "team" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateTeam() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateTeam()
	})
}

// ClearTeam clears the value of the "team" field.
func (u *RaceResultUpsertBulk) ClearTeam() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearTeam()
	})
}

// SetRun1Time sets the "run1_time" field.
func (u *RaceResultUpsertBulk) SetRun1Time(v string) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetRun1Time(v)
	})
}

// UpdateRun1Time sets the "run1_time" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateRun1Time() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateRun1Time()
	})
}

// ClearRun1Time clears the value of the "run1_time" field.
func (u *RaceResultUpsertBulk) ClearRun1Time() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearRun1Time()
	})
}

// SetRun2Time sets the "run2_time" field.
func (u *RaceResultUpsertBulk) SetRun2Time(v string) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetRun2Time(v)
	})
}

// UpdateRun2Time sets the "run2_time" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateRun2Time() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateRun2Time()
	})
}

// ClearRun2Time clears the value of the "run2_time" field.
func (u *RaceResultUpsertBulk) ClearRun2Time() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearRun2Time()
	})
}

// SetTotalTime sets the "total_time" field.
func (u *RaceResultUpsertBulk) SetTotalTime(v string) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetTotalTime(v)
	})
}

// UpdateTotalTime sets the "total_time" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateTotalTime() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateTotalTime()
	})
}

// ClearTotalTime clears the value of the "total_time" field.
func (u *RaceResultUpsertBulk) ClearTotalTime() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearTotalTime()
	})
}

// SetTimeDiff sets the "time_diff" field.
func (u *RaceResultUpsertBulk) SetTimeDiff(v string) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetTimeDiff(v)
	})
}

// UpdateTimeDiff sets the "time_diff" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateTimeDiff() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateTimeDiff()
	})
}

// ClearTimeDiff clears the value of the "time_diff" field.
func (u *RaceResultUpsertBulk) ClearTimeDiff() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearTimeDiff()
	})
}

// SetRun1Seconds sets the "run1_seconds" field.
func (u *RaceResultUpsertBulk) SetRun1Seconds(v float64) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetRun1Seconds(v)
	})
}

// AddRun1Seconds adds v to the "run1_seconds" field.
func (u *RaceResultUpsertBulk) AddRun1Seconds(v float64) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.AddRun1Seconds(v)
	})
}

// UpdateRun1Seconds sets the "run1_seconds" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateRun1Seconds() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateRun1Seconds()
	})
}

// ClearRun1Seconds clears the value of the "run1_seconds" field.
func (u *RaceResultUpsertBulk) ClearRun1Seconds() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearRun1Seconds()
	})
}

// SetRun2Seconds sets the "run2_seconds" field.
func (u *RaceResultUpsertBulk) SetRun2Seconds(v float64) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetRun2Seconds(v)
	})
}

// AddRun2Seconds adds v to the "run2_seconds" field.
func (u *RaceResultUpsertBulk) AddRun2Seconds(v float64) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.AddRun2Seconds(v)
	})
}

// UpdateRun2Seconds sets the "run2_seconds" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateRun2Seconds() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateRun2Seconds()
	})
}

// ClearRun2Seconds clears the value of the "run2_seconds" field.
func (u *RaceResultUpsertBulk) ClearRun2Seconds() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearRun2Seconds()
	})
}

// SetTotalSeconds sets the "total_seconds" field.
func (u *RaceResultUpsertBulk) SetTotalSeconds(v float64) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetTotalSeconds(v)
	})
}

// AddTotalSeconds adds v to the "total_seconds" field.
func (u *RaceResultUpsertBulk) AddTotalSeconds(v float64) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.AddTotalSeconds(v)
	})
}

// UpdateTotalSeconds sets the "total_seconds" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateTotalSeconds() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateTotalSeconds()
	})
}

// ClearTotalSeconds clears the value of the "total_seconds" field.
func (u *RaceResultUpsertBulk) ClearTotalSeconds() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.ClearTotalSeconds()
	})
}

// SetStatus sets the "status" field.
func (u *RaceResultUpsertBulk) SetStatus(v string) *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RaceResultUpsertBulk) UpdateStatus() *RaceResultUpsertBulk {
	return u.Update(func(s *RaceResultUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *RaceResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RaceResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RaceResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RaceResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
