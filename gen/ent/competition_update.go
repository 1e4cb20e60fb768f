// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fsun/ski-results/gen/ent/competition"
	"github.com/fsun/ski-results/gen/ent/event"
	"github.com/fsun/ski-results/gen/ent/predicate"
)

// CompetitionUpdate is the builder for updating Competition entities.
type CompetitionUpdate struct {
	config
	hooks    []Hook
	mutation *CompetitionMutation
}

// Where appends a list predicates to the CompetitionUpdate builder.
func (_u *CompetitionUpdate) Where(ps ...predicate.Competition) *CompetitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSeason sets the "season" field.
func (_u *CompetitionUpdate) SetSeason(v string) *CompetitionUpdate {
	_u.mutation.SetSeason(v)
	return _u
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_u *CompetitionUpdate) SetNillableSeason(v *string) *CompetitionUpdate {
	if v != nil {
		_u.SetSeason(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CompetitionUpdate) SetName(v string) *CompetitionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompetitionUpdate) SetNillableName(v *string) *CompetitionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVenue sets the "venue" field.
func (_u *CompetitionUpdate) SetVenue(v string) *CompetitionUpdate {
	_u.mutation.SetVenue(v)
	return _u
}

// SetNillableVenue sets the "venue" field if the given value is not nil.
func (_u *CompetitionUpdate) SetNillableVenue(v *string) *CompetitionUpdate {
	if v != nil {
		_u.SetVenue(*v)
	}
	return _u
}

// ClearVenue clears the value of the "venue" field.
func (_u *CompetitionUpdate) ClearVenue() *CompetitionUpdate {
	_u.mutation.ClearVenue()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *CompetitionUpdate) SetStartDate(v string) *CompetitionUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *CompetitionUpdate) SetNillableStartDate(v *string) *CompetitionUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *CompetitionUpdate) ClearStartDate() *CompetitionUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CompetitionUpdate) SetCreatedAt(v time.Time) *CompetitionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CompetitionUpdate) SetNillableCreatedAt(v *time.Time) *CompetitionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *CompetitionUpdate) AddEventIDs(ids ...int) *CompetitionUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *CompetitionUpdate) AddEvents(v ...*Event) *CompetitionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the CompetitionMutation object of the builder.
func (_u *CompetitionUpdate) Mutation() *CompetitionMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *CompetitionUpdate) ClearEvents() *CompetitionUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *CompetitionUpdate) RemoveEventIDs(ids ...int) *CompetitionUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *CompetitionUpdate) RemoveEvents(v ...*Event) *CompetitionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompetitionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompetitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompetitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompetitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompetitionUpdate) check() error {
	if v, ok := _u.mutation.Season(); ok {
		if err := competition.SeasonValidator(v); err != nil {
			return &ValidationError{Name: "season", err: fmt.Errorf(`ent: validator failed for field "Competition.season": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := competition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Competition.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CompetitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(competition.Table, competition.Columns, sqlgraph.NewFieldSpec(competition.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Season(); ok {
		_spec.SetField(competition.FieldSeason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(competition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Venue(); ok {
		_spec.SetField(competition.FieldVenue, field.TypeString, value)
	}
	if _u.mutation.VenueCleared() {
		_spec.ClearField(competition.FieldVenue, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(competition.FieldStartDate, field.TypeString, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(competition.FieldStartDate, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(competition.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   competition.EventsTable,
			Columns: []string{competition.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   competition.EventsTable,
			Columns: []string{competition.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   competition.EventsTable,
			Columns: []string{competition.EventsColumn},
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
			err = &NotFoundError{competition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompetitionUpdateOne is the builder for updating a single Competition entity.
type CompetitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompetitionMutation
}

// SetSeason sets the "season" field.
func (_u *CompetitionUpdateOne) SetSeason(v string) *CompetitionUpdateOne {
	_u.mutation.SetSeason(v)
	return _u
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_u *CompetitionUpdateOne) SetNillableSeason(v *string) *CompetitionUpdateOne {
	if v != nil {
		_u.SetSeason(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CompetitionUpdateOne) SetName(v string) *CompetitionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompetitionUpdateOne) SetNillableName(v *string) *CompetitionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVenue sets the "venue" field.
func (_u *CompetitionUpdateOne) SetVenue(v string) *CompetitionUpdateOne {
	_u.mutation.SetVenue(v)
	return _u
}

// SetNillableVenue sets the "venue" field if the given value is not nil.
func (_u *CompetitionUpdateOne) SetNillableVenue(v *string) *CompetitionUpdateOne {
	if v != nil {
		_u.SetVenue(*v)
	}
	return _u
}

// ClearVenue clears the value of the "venue" field.
func (_u *CompetitionUpdateOne) ClearVenue() *CompetitionUpdateOne {
	_u.mutation.ClearVenue()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *CompetitionUpdateOne) SetStartDate(v string) *CompetitionUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *CompetitionUpdateOne) SetNillableStartDate(v *string) *CompetitionUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *CompetitionUpdateOne) ClearStartDate() *CompetitionUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CompetitionUpdateOne) SetCreatedAt(v time.Time) *CompetitionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CompetitionUpdateOne) SetNillableCreatedAt(v *time.Time) *CompetitionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *CompetitionUpdateOne) AddEventIDs(ids ...int) *CompetitionUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *CompetitionUpdateOne) AddEvents(v ...*Event) *CompetitionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the CompetitionMutation object of the builder.
func (_u *CompetitionUpdateOne) Mutation() *CompetitionMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *CompetitionUpdateOne) ClearEvents() *CompetitionUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *CompetitionUpdateOne) RemoveEventIDs(ids ...int) *CompetitionUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *CompetitionUpdateOne) RemoveEvents(v ...*Event) *CompetitionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the CompetitionUpdate builder.
func (_u *CompetitionUpdateOne) Where(ps ...predicate.Competition) *CompetitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompetitionUpdateOne) Select(field string, fields ...string) *CompetitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Competition entity.
func (_u *CompetitionUpdateOne) Save(ctx context.Context) (*Competition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompetitionUpdateOne) SaveX(ctx context.Context) *Competition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompetitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompetitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompetitionUpdateOne) check() error {
	if v, ok := _u.mutation.Season(); ok {
		if err := competition.SeasonValidator(v); err != nil {
			return &ValidationError{Name: "season", err: fmt.Errorf(`ent: validator failed for field "Competition.season": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := competition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Competition.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CompetitionUpdateOne) sqlSave(ctx context.Context) (_node *Competition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(competition.Table, competition.Columns, sqlgraph.NewFieldSpec(competition.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Competition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, competition.FieldID)
		for _, f := range fields {
			if !competition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != competition.FieldID {
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
	if value, ok := _u.mutation.Season(); ok {
		_spec.SetField(competition.FieldSeason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(competition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Venue(); ok {
		_spec.SetField(competition.FieldVenue, field.TypeString, value)
	}
	if _u.mutation.VenueCleared() {
		_spec.ClearField(competition.FieldVenue, field.TypeString)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(competition.FieldStartDate, field.TypeString, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(competition.FieldStartDate, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(competition.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   competition.EventsTable,
			Columns: []string{competition.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   competition.EventsTable,
			Columns: []string{competition.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   competition.EventsTable,
			Columns: []string{competition.EventsColumn},
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
	_node = &Competition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{competition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
