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
	"github.com/fsun/ski-results/gen/ent/raceresult"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompetitionID sets the "competition_id" field.
func (_u *EventUpdate) SetCompetitionID(v int) *EventUpdate {
	_u.mutation.SetCompetitionID(v)
	return _u
}

// SetNillableCompetitionID sets the "competition_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableCompetitionID(v *int) *EventUpdate {
	if v != nil {
		_u.SetCompetitionID(*v)
	}
	return _u
}

// SetDiscipline sets the "discipline" field.
func (_u *EventUpdate) SetDiscipline(v string) *EventUpdate {
	_u.mutation.SetDiscipline(v)
	return _u
}

// SetNillableDiscipline sets the "discipline" field if the given value is not nil.
func (_u *EventUpdate) SetNillableDiscipline(v *string) *EventUpdate {
	if v != nil {
		_u.SetDiscipline(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *EventUpdate) SetGender(v string) *EventUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *EventUpdate) SetNillableGender(v *string) *EventUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *EventUpdate) ClearGender() *EventUpdate {
	_u.mutation.ClearGender()
	return _u
}

// SetAgeGroup sets the "age_group" field.
func (_u *EventUpdate) SetAgeGroup(v string) *EventUpdate {
	_u.mutation.SetAgeGroup(v)
	return _u
}

// SetNillableAgeGroup sets the "age_group" field if the given value is not nil.
func (_u *EventUpdate) SetNillableAgeGroup(v *string) *EventUpdate {
	if v != nil {
		_u.SetAgeGroup(*v)
	}
	return _u
}

// ClearAgeGroup clears the value of the "age_group" field.
func (_u *EventUpdate) ClearAgeGroup() *EventUpdate {
	_u.mutation.ClearAgeGroup()
	return _u
}

// SetRoundType sets the "round_type" field.
func (_u *EventUpdate) SetRoundType(v string) *EventUpdate {
	_u.mutation.SetRoundType(v)
	return _u
}

// SetNillableRoundType sets the "round_type" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRoundType(v *string) *EventUpdate {
	if v != nil {
		_u.SetRoundType(*v)
	}
	return _u
}

// ClearRoundType clears the value of the "round_type" field.
func (_u *EventUpdate) ClearRoundType() *EventUpdate {
	_u.mutation.ClearRoundType()
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *EventUpdate) SetEventDate(v string) *EventUpdate {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventDate(v *string) *EventUpdate {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// ClearEventDate clears the value of the "event_date" field.
func (_u *EventUpdate) ClearEventDate() *EventUpdate {
	_u.mutation.ClearEventDate()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *EventUpdate) SetSourceFile(v string) *EventUpdate {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSourceFile(v *string) *EventUpdate {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *EventUpdate) SetNeedsReview(v bool) *EventUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *EventUpdate) SetNillableNeedsReview(v *bool) *EventUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *EventUpdate) SetReviewNotes(v string) *EventUpdate {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *EventUpdate) SetNillableReviewNotes(v *string) *EventUpdate {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *EventUpdate) ClearReviewNotes() *EventUpdate {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EventUpdate) SetCreatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableCreatedAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompetition sets the "competition" edge to the Competition entity.
func (_u *EventUpdate) SetCompetition(v *Competition) *EventUpdate {
	return _u.SetCompetitionID(v.ID)
}

// AddResultIDs adds the "results" edge to the RaceResult entity by IDs.
func (_u *EventUpdate) AddResultIDs(ids ...int) *EventUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the RaceResult entity.
func (_u *EventUpdate) AddResults(v ...*RaceResult) *EventUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// ClearCompetition clears the "competition" edge to the Competition entity.
func (_u *EventUpdate) ClearCompetition() *EventUpdate {
	_u.mutation.ClearCompetition()
	return _u
}

// ClearResults clears all "results" edges to the RaceResult entity.
func (_u *EventUpdate) ClearResults() *EventUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to RaceResult entities by IDs.
func (_u *EventUpdate) RemoveResultIDs(ids ...int) *EventUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to RaceResult entities.
func (_u *EventUpdate) RemoveResults(v ...*RaceResult) *EventUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.Discipline(); ok {
		if err := event.DisciplineValidator(v); err != nil {
			return &ValidationError{Name: "discipline", err: fmt.Errorf(`ent: validator failed for field "Event.discipline": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFile(); ok {
		if err := event.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Event.source_file": %w`, err)}
		}
	}
	if _u.mutation.CompetitionCleared() && len(_u.mutation.CompetitionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.competition"`)
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Discipline(); ok {
		_spec.SetField(event.FieldDiscipline, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(event.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(event.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.AgeGroup(); ok {
		_spec.SetField(event.FieldAgeGroup, field.TypeString, value)
	}
	if _u.mutation.AgeGroupCleared() {
		_spec.ClearField(event.FieldAgeGroup, field.TypeString)
	}
	if value, ok := _u.mutation.RoundType(); ok {
		_spec.SetField(event.FieldRoundType, field.TypeString, value)
	}
	if _u.mutation.RoundTypeCleared() {
		_spec.ClearField(event.FieldRoundType, field.TypeString)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(event.FieldEventDate, field.TypeString, value)
	}
	if _u.mutation.EventDateCleared() {
		_spec.ClearField(event.FieldEventDate, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(event.FieldSourceFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(event.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(event.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(event.FieldReviewNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompetitionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.CompetitionTable,
			Columns: []string{event.CompetitionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(competition.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompetitionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.CompetitionTable,
			Columns: []string{event.CompetitionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(competition.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.ResultsTable,
			Columns: []string{event.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(raceresult.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.ResultsTable,
			Columns: []string{event.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(raceresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.ResultsTable,
			Columns: []string{event.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(raceresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetCompetitionID sets the "competition_id" field.
func (_u *EventUpdateOne) SetCompetitionID(v int) *EventUpdateOne {
	_u.mutation.SetCompetitionID(v)
	return _u
}

// SetNillableCompetitionID sets the "competition_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableCompetitionID(v *int) *EventUpdateOne {
	if v != nil {
		_u.SetCompetitionID(*v)
	}
	return _u
}

// SetDiscipline sets the "discipline" field.
func (_u *EventUpdateOne) SetDiscipline(v string) *EventUpdateOne {
	_u.mutation.SetDiscipline(v)
	return _u
}

// SetNillableDiscipline sets the "discipline" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableDiscipline(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetDiscipline(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *EventUpdateOne) SetGender(v string) *EventUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableGender(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *EventUpdateOne) ClearGender() *EventUpdateOne {
	_u.mutation.ClearGender()
	return _u
}

// SetAgeGroup sets the "age_group" field.
func (_u *EventUpdateOne) SetAgeGroup(v string) *EventUpdateOne {
	_u.mutation.SetAgeGroup(v)
	return _u
}

// SetNillableAgeGroup sets the "age_group" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableAgeGroup(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetAgeGroup(*v)
	}
	return _u
}

// ClearAgeGroup clears the value of the "age_group" field.
func (_u *EventUpdateOne) ClearAgeGroup() *EventUpdateOne {
	_u.mutation.ClearAgeGroup()
	return _u
}

// SetRoundType sets the "round_type" field.
func (_u *EventUpdateOne) SetRoundType(v string) *EventUpdateOne {
	_u.mutation.SetRoundType(v)
	return _u
}

// SetNillableRoundType sets the "round_type" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRoundType(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetRoundType(*v)
	}
	return _u
}

// ClearRoundType clears the value of the "round_type" field.
func (_u *EventUpdateOne) ClearRoundType() *EventUpdateOne {
	_u.mutation.ClearRoundType()
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *EventUpdateOne) SetEventDate(v string) *EventUpdateOne {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventDate(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// ClearEventDate clears the value of the "event_date" field.
func (_u *EventUpdateOne) ClearEventDate() *EventUpdateOne {
	_u.mutation.ClearEventDate()
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *EventUpdateOne) SetSourceFile(v string) *EventUpdateOne {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSourceFile(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *EventUpdateOne) SetNeedsReview(v bool) *EventUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableNeedsReview(v *bool) *EventUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *EventUpdateOne) SetReviewNotes(v string) *EventUpdateOne {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableReviewNotes(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *EventUpdateOne) ClearReviewNotes() *EventUpdateOne {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EventUpdateOne) SetCreatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableCreatedAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompetition sets the "competition" edge to the Competition entity.
func (_u *EventUpdateOne) SetCompetition(v *Competition) *EventUpdateOne {
	return _u.SetCompetitionID(v.ID)
}

// AddResultIDs adds the "results" edge to the RaceResult entity by IDs.
func (_u *EventUpdateOne) AddResultIDs(ids ...int) *EventUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the RaceResult entity.
func (_u *EventUpdateOne) AddResults(v ...*RaceResult) *EventUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// ClearCompetition clears the "competition" edge to the Competition entity.
func (_u *EventUpdateOne) ClearCompetition() *EventUpdateOne {
	_u.mutation.ClearCompetition()
	return _u
}

// ClearResults clears all "results" edges to the RaceResult entity.
func (_u *EventUpdateOne) ClearResults() *EventUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to RaceResult entities by IDs.
func (_u *EventUpdateOne) RemoveResultIDs(ids ...int) *EventUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to RaceResult entities.
func (_u *EventUpdateOne) RemoveResults(v ...*RaceResult) *EventUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.Discipline(); ok {
		if err := event.DisciplineValidator(v); err != nil {
			return &ValidationError{Name: "discipline", err: fmt.Errorf(`ent: validator failed for field "Event.discipline": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceFile(); ok {
		if err := event.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Event.source_file": %w`, err)}
		}
	}
	if _u.mutation.CompetitionCleared() && len(_u.mutation.CompetitionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.competition"`)
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
	if value, ok := _u.mutation.Discipline(); ok {
		_spec.SetField(event.FieldDiscipline, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(event.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(event.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.AgeGroup(); ok {
		_spec.SetField(event.FieldAgeGroup, field.TypeString, value)
	}
	if _u.mutation.AgeGroupCleared() {
		_spec.ClearField(event.FieldAgeGroup, field.TypeString)
	}
	if value, ok := _u.mutation.RoundType(); ok {
		_spec.SetField(event.FieldRoundType, field.TypeString, value)
	}
	if _u.mutation.RoundTypeCleared() {
		_spec.ClearField(event.FieldRoundType, field.TypeString)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(event.FieldEventDate, field.TypeString, value)
	}
	if _u.mutation.EventDateCleared() {
		_spec.ClearField(event.FieldEventDate, field.TypeString)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(event.FieldSourceFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(event.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(event.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(event.FieldReviewNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompetitionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.CompetitionTable,
			Columns: []string{event.CompetitionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(competition.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompetitionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.CompetitionTable,
			Columns: []string{event.CompetitionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(competition.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.ResultsTable,
			Columns: []string{event.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(raceresult.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.ResultsTable,
			Columns: []string{event.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(raceresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.ResultsTable,
			Columns: []string{event.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(raceresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
