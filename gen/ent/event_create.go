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
	"github.com/fsun/ski-results/gen/ent/raceresult"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCompetitionID sets the "competition_id" field.
func (_c *EventCreate) SetCompetitionID(v int) *EventCreate {
	_c.mutation.SetCompetitionID(v)
	return _c
}

// SetDiscipline sets the "discipline" field.
func (_c *EventCreate) SetDiscipline(v string) *EventCreate {
	_c.mutation.SetDiscipline(v)
	return _c
}

// SetGender sets the "gender" field.
func (_c *EventCreate) SetGender(v string) *EventCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *EventCreate) SetNillableGender(v *string) *EventCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetAgeGroup sets the "age_group" field.
func (_c *EventCreate) SetAgeGroup(v string) *EventCreate {
	_c.mutation.SetAgeGroup(v)
	return _c
}

// SetNillableAgeGroup sets the "age_group" field if the given value is not nil.
func (_c *EventCreate) SetNillableAgeGroup(v *string) *EventCreate {
	if v != nil {
		_c.SetAgeGroup(*v)
	}
	return _c
}

// SetRoundType sets the "round_type" field.
func (_c *EventCreate) SetRoundType(v string) *EventCreate {
	_c.mutation.SetRoundType(v)
	return _c
}

// SetNillableRoundType sets the "round_type" field if the given value is not nil.
func (_c *EventCreate) SetNillableRoundType(v *string) *EventCreate {
	if v != nil {
		_c.SetRoundType(*v)
	}
	return _c
}

// SetEventDate sets the "event_date" field.
func (_c *EventCreate) SetEventDate(v string) *EventCreate {
	_c.mutation.SetEventDate(v)
	return _c
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_c *EventCreate) SetNillableEventDate(v *string) *EventCreate {
	if v != nil {
		_c.SetEventDate(*v)
	}
	return _c
}

// SetSourceFile sets the "source_file" field.
func (_c *EventCreate) SetSourceFile(v string) *EventCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *EventCreate) SetNeedsReview(v bool) *EventCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *EventCreate) SetNillableNeedsReview(v *bool) *EventCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetReviewNotes sets the "review_notes" field.
func (_c *EventCreate) SetReviewNotes(v string) *EventCreate {
	_c.mutation.SetReviewNotes(v)
	return _c
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_c *EventCreate) SetNillableReviewNotes(v *string) *EventCreate {
	if v != nil {
		_c.SetReviewNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventCreate) SetCreatedAt(v time.Time) *EventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableCreatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompetition sets the "competition" edge to the Competition entity.
func (_c *EventCreate) SetCompetition(v *Competition) *EventCreate {
	return _c.SetCompetitionID(v.ID)
}

// AddResultIDs adds the "results" edge to the RaceResult entity by IDs.
func (_c *EventCreate) AddResultIDs(ids ...int) *EventCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the RaceResult entity.
func (_c *EventCreate) AddResults(v ...*RaceResult) *EventCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := event.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := event.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.CompetitionID(); !ok {
		return &ValidationError{Name: "competition_id", err: errors.New(`ent: missing required field "Event.competition_id"`)}
	}
	if _, ok := _c.mutation.Discipline(); !ok {
		return &ValidationError{Name: "discipline", err: errors.New(`ent: missing required field "Event.discipline"`)}
	}
	if v, ok := _c.mutation.Discipline(); ok {
		if err := event.DisciplineValidator(v); err != nil {
			return &ValidationError{Name: "discipline", err: fmt.Errorf(`ent: validator failed for field "Event.discipline": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceFile(); !ok {
		return &ValidationError{Name: "source_file", err: errors.New(`ent: missing required field "Event.source_file"`)}
	}
	if v, ok := _c.mutation.SourceFile(); ok {
		if err := event.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Event.source_file": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Event.needs_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Event.created_at"`)}
	}
	if len(_c.mutation.CompetitionIDs()) == 0 {
		return &ValidationError{Name: "competition", err: errors.New(`ent: missing required edge "Event.competition"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Discipline(); ok {
		_spec.SetField(event.FieldDiscipline, field.TypeString, value)
		_node.Discipline = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(event.FieldGender, field.TypeString, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.AgeGroup(); ok {
		_spec.SetField(event.FieldAgeGroup, field.TypeString, value)
		_node.AgeGroup = value
	}
	if value, ok := _c.mutation.RoundType(); ok {
		_spec.SetField(event.FieldRoundType, field.TypeString, value)
		_node.RoundType = value
	}
	if value, ok := _c.mutation.EventDate(); ok {
		_spec.SetField(event.FieldEventDate, field.TypeString, value)
		_node.EventDate = value
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(event.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(event.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ReviewNotes(); ok {
		_spec.SetField(event.FieldReviewNotes, field.TypeString, value)
		_node.ReviewNotes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CompetitionIDs(); len(nodes) > 0 {
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
		_node.CompetitionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.Create().
//		SetCompetitionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetCompetitionID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreate) OnConflict(opts ...sql.ConflictOption) *EventUpsertOne {
	_c.conflict = opts
	return &EventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreate) OnConflictColumns(columns ...string) *EventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertOne{
		create: _c,
	}
}

type (
	// EventUpsertOne is the builder for "upsert"-ing
	//  one Event node.
	EventUpsertOne struct {
		create *EventCreate
	}

	// EventUpsert is the "OnConflict" setter.
	EventUpsert struct {
		*sql.UpdateSet
	}
)

// SetCompetitionID sets the "competition_id" field.
func (u *EventUpsert) SetCompetitionID(v int) *EventUpsert {
	u.Set(event.FieldCompetitionID, v)
	return u
}

// UpdateCompetitionID sets the "competition_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateCompetitionID() *EventUpsert {
	u.SetExcluded(event.FieldCompetitionID)
	return u
}

// SetDiscipline sets the "discipline" field.
func (u *EventUpsert) SetDiscipline(v string) *EventUpsert {
	u.Set(event.FieldDiscipline, v)
	return u
}

// UpdateDiscipline sets the "discipline" field to the value that was provided on create.
func (u *EventUpsert) UpdateDiscipline() *EventUpsert {
	u.SetExcluded(event.FieldDiscipline)
	return u
}

// SetGender sets the "gender" field.
func (u *EventUpsert) SetGender(v string) *EventUpsert {
	u.Set(event.FieldGender, v)
	return u
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *EventUpsert) UpdateGender() *EventUpsert {
	u.SetExcluded(event.FieldGender)
	return u
}

// ClearGender clears the value of the "gender" field.
func (u *EventUpsert) ClearGender() *EventUpsert {
	u.SetNull(event.FieldGender)
	return u
}

// SetAgeGroup sets the "age_group" field.
func (u *EventUpsert) SetAgeGroup(v string) *EventUpsert {
	u.Set(event.FieldAgeGroup, v)
	return u
}

// UpdateAgeGroup sets the "age_group" field to the value that was provided on create.
func (u *EventUpsert) UpdateAgeGroup() *EventUpsert {
	u.SetExcluded(event.FieldAgeGroup)
	return u
}

// ClearAgeGroup clears the value of the "age_group" field.
func (u *EventUpsert) ClearAgeGroup() *EventUpsert {
	u.SetNull(event.FieldAgeGroup)
	return u
}

// SetRoundType sets the "round_type" field.
func (u *EventUpsert) SetRoundType(v string) *EventUpsert {
	u.Set(event.FieldRoundType, v)
	return u
}

// UpdateRoundType sets the "round_type" field to the value that was provided on create.
func (u *EventUpsert) UpdateRoundType() *EventUpsert {
	u.SetExcluded(event.FieldRoundType)
	return u
}

// ClearRoundType clears the value of the "round_type" field.
func (u *EventUpsert) ClearRoundType() *EventUpsert {
	u.SetNull(event.FieldRoundType)
	return u
}

// SetEventDate sets the "event_date" field.
func (u *EventUpsert) SetEventDate(v string) *EventUpsert {
	u.Set(event.FieldEventDate, v)
	return u
}

// UpdateEventDate sets the "event_date" field to the value that was provided on create.
func (u *EventUpsert) UpdateEventDate() *EventUpsert {
	u.SetExcluded(event.FieldEventDate)
	return u
}

// ClearEventDate clears the value of the "event_date" field.
func (u *EventUpsert) ClearEventDate() *EventUpsert {
	u.SetNull(event.FieldEventDate)
	return u
}

// SetSourceFile sets the "source_file" field.
func (u *EventUpsert) SetSourceFile(v string) *EventUpsert {
	u.Set(event.FieldSourceFile, v)
	return u
}

// UpdateSourceFile sets the "source_file" field to the value that was provided on create.
func (u *EventUpsert) UpdateSourceFile() *EventUpsert {
	u.SetExcluded(event.FieldSourceFile)
	return u
}

// SetNeedsReview sets the "needs_review" field.
func (u *EventUpsert) SetNeedsReview(v bool) *EventUpsert {
	u.Set(event.FieldNeedsReview, v)
	return u
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *EventUpsert) UpdateNeedsReview() *EventUpsert {
	u.SetExcluded(event.FieldNeedsReview)
	return u
}

// SetReviewNotes sets the "review_notes" field.
func (u *EventUpsert) SetReviewNotes(v string) *EventUpsert {
	u.Set(event.FieldReviewNotes, v)
	return u
}

// UpdateReviewNotes sets the "review_notes" field to the value that was provided on create.
func (u *EventUpsert) UpdateReviewNotes() *EventUpsert {
	u.SetExcluded(event.FieldReviewNotes)
	return u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (u *EventUpsert) ClearReviewNotes() *EventUpsert {
	u.SetNull(event.FieldReviewNotes)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *EventUpsert) SetCreatedAt(v time.Time) *EventUpsert {
	u.Set(event.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateCreatedAt() *EventUpsert {
	u.SetExcluded(event.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventUpsertOne) UpdateNewValues() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventUpsertOne) Ignore() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertOne) DoNothing() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreate.OnConflict
// documentation for more info.
func (u *EventUpsertOne) Update(set func(*EventUpsert)) *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompetitionID sets the "competition_id" field.
func (u *EventUpsertOne) SetCompetitionID(v int) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetCompetitionID(v)
	})
}

// UpdateCompetitionID sets the "competition_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateCompetitionID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCompetitionID()
	})
}

// SetDiscipline sets the "discipline" field.
func (u *EventUpsertOne) SetDiscipline(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetDiscipline(v)
	})
}

// UpdateDiscipline sets the "discipline" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateDiscipline() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateDiscipline()
	})
}

// SetGender sets the "gender" field.
func (u *EventUpsertOne) SetGender(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateGender() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *EventUpsertOne) ClearGender() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearGender()
	})
}

// SetAgeGroup sets the "age_group" field.
func (u *EventUpsertOne) SetAgeGroup(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetAgeGroup(v)
	})
}

// UpdateAgeGroup sets the "age_group" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateAgeGroup() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateAgeGroup()
	})
}

// ClearAgeGroup clears the value of the "age_group" field.
func (u *EventUpsertOne) ClearAgeGroup() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearAgeGroup()
	})
}

// SetRoundType sets the "round_type" field.
func (u *EventUpsertOne) SetRoundType(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetRoundType(v)
	})
}

// UpdateRoundType sets the "round_type" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateRoundType() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRoundType()
	})
}

// ClearRoundType clears the value of the "round_type" field.
func (u *EventUpsertOne) ClearRoundType() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearRoundType()
	})
}

// SetEventDate sets the "event_date" field.
func (u *EventUpsertOne) SetEventDate(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetEventDate(v)
	})
}

// UpdateEventDate sets the "event_date" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateEventDate() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventDate()
	})
}

// ClearEventDate clears the value of the "event_date" field.
func (u *EventUpsertOne) ClearEventDate() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearEventDate()
	})
}

// SetSourceFile sets the "source_file" field.
func (u *EventUpsertOne) SetSourceFile(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetSourceFile(v)
	})
}

// UpdateSourceFile sets the "source_file" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateSourceFile() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSourceFile()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *EventUpsertOne) SetNeedsReview(v bool) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateNeedsReview() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetReviewNotes sets the "review_notes" field.
func (u *EventUpsertOne) SetReviewNotes(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetReviewNotes(v)
	})
}

// UpdateReviewNotes sets the "review_notes" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateReviewNotes() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateReviewNotes()
	})
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (u *EventUpsertOne) ClearReviewNotes() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearReviewNotes()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EventUpsertOne) SetCreatedAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateCreatedAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *EventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
	conflict []sql.ConflictOption
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetCompetitionID(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventUpsertBulk {
	_c.conflict = opts
	return &EventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflictColumns(columns ...string) *EventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertBulk{
		create: _c,
	}
}

// EventUpsertBulk is the builder for "upsert"-ing
// a bulk of Event nodes.
type EventUpsertBulk struct {
	create *EventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *EventUpsertBulk) UpdateNewValues() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventUpsertBulk) Ignore() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertBulk) DoNothing() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreateBulk.OnConflict
// documentation for more info.
func (u *EventUpsertBulk) Update(set func(*EventUpsert)) *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetCompetitionID sets the "competition_id" field.
func (u *EventUpsertBulk) SetCompetitionID(v int) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetCompetitionID(v)
	})
}

// UpdateCompetitionID sets the "competition_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateCompetitionID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCompetitionID()
	})
}

// SetDiscipline sets the "discipline" field.
func (u *EventUpsertBulk) SetDiscipline(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetDiscipline(v)
	})
}

// UpdateDiscipline sets the "discipline" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateDiscipline() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateDiscipline()
	})
}

// SetGender sets the "gender" field.
func (u *EventUpsertBulk) SetGender(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateGender() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateGender()
	})
}

// ClearGender clears the value of the "gender" field.
func (u *EventUpsertBulk) ClearGender() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearGender()
	})
}

// SetAgeGroup sets the "age_group" field.
func (u *EventUpsertBulk) SetAgeGroup(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetAgeGroup(v)
	})
}

// UpdateAgeGroup sets the "age_group" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateAgeGroup() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateAgeGroup()
	})
}

// ClearAgeGroup clears the value of the "age_group" field.
func (u *EventUpsertBulk) ClearAgeGroup() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearAgeGroup()
	})
}

// SetRoundType sets the "round_type" field.
func (u *EventUpsertBulk) SetRoundType(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetRoundType(v)
	})
}

// UpdateRoundType sets the "round_type" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateRoundType() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRoundType()
	})
}

// ClearRoundType clears the value of the "round_type" field.
func (u *EventUpsertBulk) ClearRoundType() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearRoundType()
	})
}

// SetEventDate sets the "event_date" field.
func (u *EventUpsertBulk) SetEventDate(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetEventDate(v)
	})
}

// UpdateEventDate sets the "event_date" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateEventDate() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateEventDate()
	})
}

// ClearEventDate clears the value of the "event_date" field.
func (u *EventUpsertBulk) ClearEventDate() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearEventDate()
	})
}

// SetSourceFile sets the "source_file" field.
func (u *EventUpsertBulk) SetSourceFile(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetSourceFile(v)
	})
}

// UpdateSourceFile sets the "source_file" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateSourceFile() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSourceFile()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *EventUpsertBulk) SetNeedsReview(v bool) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateNeedsReview() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetReviewNotes sets the "review_notes" field.
func (u *EventUpsertBulk) SetReviewNotes(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetReviewNotes(v)
	})
}

// UpdateReviewNotes sets the "review_notes" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateReviewNotes() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateReviewNotes()
	})
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (u *EventUpsertBulk) ClearReviewNotes() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearReviewNotes()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EventUpsertBulk) SetCreatedAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateCreatedAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *EventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
