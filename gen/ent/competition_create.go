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
)

// CompetitionCreate is the builder for creating a Competition entity.
type CompetitionCreate struct {
	config
	mutation *CompetitionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSeason sets the "season" field.
func (_c *CompetitionCreate) SetSeason(v string) *CompetitionCreate {
	_c.mutation.SetSeason(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CompetitionCreate) SetName(v string) *CompetitionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetVenue sets the "venue" field.
func (_c *CompetitionCreate) SetVenue(v string) *CompetitionCreate {
	_c.mutation.SetVenue(v)
	return _c
}

// SetNillableVenue sets the "venue" field if the given value is not nil.
func (_c *CompetitionCreate) SetNillableVenue(v *string) *CompetitionCreate {
	if v != nil {
		_c.SetVenue(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *CompetitionCreate) SetStartDate(v string) *CompetitionCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *CompetitionCreate) SetNillableStartDate(v *string) *CompetitionCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompetitionCreate) SetCreatedAt(v time.Time) *CompetitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompetitionCreate) SetNillableCreatedAt(v *time.Time) *CompetitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *CompetitionCreate) AddEventIDs(ids ...int) *CompetitionCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *CompetitionCreate) AddEvents(v ...*Event) *CompetitionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the CompetitionMutation object of the builder.
func (_c *CompetitionCreate) Mutation() *CompetitionMutation {
	return _c.mutation
}

// Save creates the Competition in the database.
func (_c *CompetitionCreate) Save(ctx context.Context) (*Competition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompetitionCreate) SaveX(ctx context.Context) *Competition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompetitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompetitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompetitionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := competition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompetitionCreate) check() error {
	if _, ok := _c.mutation.Season(); !ok {
		return &ValidationError{Name: "season", err: errors.New(`ent: missing required field "Competition.season"`)}
	}
	if v, ok := _c.mutation.Season(); ok {
		if err := competition.SeasonValidator(v); err != nil {
			return &ValidationError{Name: "season", err: fmt.Errorf(`ent: validator failed for field "Competition.season": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Competition.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := competition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Competition.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Competition.created_at"`)}
	}
	return nil
}

func (_c *CompetitionCreate) sqlSave(ctx context.Context) (*Competition, error) {
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

func (_c *CompetitionCreate) createSpec() (*Competition, *sqlgraph.CreateSpec) {
	var (
		_node = &Competition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(competition.Table, sqlgraph.NewFieldSpec(competition.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Season(); ok {
		_spec.SetField(competition.FieldSeason, field.TypeString, value)
		_node.Season = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(competition.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Venue(); ok {
		_spec.SetField(competition.FieldVenue, field.TypeString, value)
		_node.Venue = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(competition.FieldStartDate, field.TypeString, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(competition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Competition.Create().
//		SetSeason(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompetitionUpsert) {
//			SetSeason(v+v).
//		}).
//		Exec(ctx)
func (_c *CompetitionCreate) OnConflict(opts ...sql.ConflictOption) *CompetitionUpsertOne {
	_c.conflict = opts
	return &CompetitionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Competition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompetitionCreate) OnConflictColumns(columns ...string) *CompetitionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompetitionUpsertOne{
		create: _c,
	}
}

type (
	// CompetitionUpsertOne is the builder for "upsert"-ing
	//  one Competition node.
	CompetitionUpsertOne struct {
		create *CompetitionCreate
	}

	// CompetitionUpsert is the "OnConflict" setter.
	CompetitionUpsert struct {
		*sql.UpdateSet
	}
)

// SetSeason sets the "season" field.
func (u *CompetitionUpsert) SetSeason(v string) *CompetitionUpsert {
	u.Set(competition.FieldSeason, v)
	return u
}

// UpdateSeason sets the "season" field to the value that was provided on create.
func (u *CompetitionUpsert) UpdateSeason() *CompetitionUpsert {
	u.SetExcluded(competition.FieldSeason)
	return u
}

// SetName sets the "name" field.
func (u *CompetitionUpsert) SetName(v string) *CompetitionUpsert {
	u.Set(competition.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CompetitionUpsert) UpdateName() *CompetitionUpsert {
	u.SetExcluded(competition.FieldName)
	return u
}

// SetVenue sets the "venue" field.
func (u *CompetitionUpsert) SetVenue(v string) *CompetitionUpsert {
	u.Set(competition.FieldVenue, v)
	return u
}

// UpdateVenue sets the "venue" field to the value that was provided on create.
func (u *CompetitionUpsert) UpdateVenue() *CompetitionUpsert {
	u.SetExcluded(competition.FieldVenue)
	return u
}

// ClearVenue clears the value of the "venue" field.
func (u *CompetitionUpsert) ClearVenue() *CompetitionUpsert {
	u.SetNull(competition.FieldVenue)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *CompetitionUpsert) SetStartDate(v string) *CompetitionUpsert {
	u.Set(competition.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *CompetitionUpsert) UpdateStartDate() *CompetitionUpsert {
	u.SetExcluded(competition.FieldStartDate)
	return u
}

// ClearStartDate clears the value of the "start_date" field.
func (u *CompetitionUpsert) ClearStartDate() *CompetitionUpsert {
	u.SetNull(competition.FieldStartDate)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *CompetitionUpsert) SetCreatedAt(v time.Time) *CompetitionUpsert {
	u.Set(competition.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CompetitionUpsert) UpdateCreatedAt() *CompetitionUpsert {
	u.SetExcluded(competition.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Competition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CompetitionUpsertOne) UpdateNewValues() *CompetitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Competition.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CompetitionUpsertOne) Ignore() *CompetitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompetitionUpsertOne) DoNothing() *CompetitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompetitionCreate.OnConflict
// documentation for more info.
func (u *CompetitionUpsertOne) Update(set func(*CompetitionUpsert)) *CompetitionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompetitionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSeason sets the "season" field.
func (u *CompetitionUpsertOne) SetSeason(v string) *CompetitionUpsertOne {
	return u.Update(func(s *CompetitionUpsert) {
		s.SetSeason(v)
	})
}

// UpdateSeason sets the "season" field to the value that was provided on create.
func (u *CompetitionUpsertOne) UpdateSeason() *CompetitionUpsertOne {
	return u.Update(func(s *CompetitionUpsert) {
		s.UpdateSeason()
	})
}

// SetName sets the "name" field.
func (u *CompetitionUpsertOne) SetName(v string) *CompetitionUpsertOne {
	return u.Update(func(s *CompetitionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CompetitionUpsertOne) UpdateName() *CompetitionUpsertOne {
	return u.Update(func(s *CompetitionUpsert) {
		s.UpdateName()
	})
}

// SetVenue sets the "venue" field.
func (u *CompetitionUpsertOne) SetVenue(v string) *CompetitionUpsertOne {
	return u.Update(func(s *CompetitionUpsert) {
		s.SetVenue(v)
	})
}

// UpdateVenue sets the "venue" field to the value that was provided on create.
func (u *CompetitionUpsertOne) UpdateVenue() *CompetitionUpsertOne {
	return u.Update(func(s *CompetitionUpsert) {
		s.UpdateVenue()
	})
}

// ClearVenue clears the value of the "venue" field.
func (u *CompetitionUpsertOne) ClearVenue() *CompetitionUpsertOne {
	return u.Update(func(s *CompetitionUpsert) {
		s.ClearVenue()
	})
}

// SetStartDate sets the "start_date" field.
func (u *CompetitionUpsertOne) SetStartDate(v string) *CompetitionUpsertOne {
	return u.Update(func(s *CompetitionUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *CompetitionUpsertOne) UpdateStartDate() *CompetitionUpsertOne {
	return u.Update(func(s *CompetitionUpsert) {
		s.UpdateStartDate()
	})
}

// ClearStartDate clears the value of the "start_date" field.
func (u *CompetitionUpsertOne) ClearStartDate() *CompetitionUpsertOne {
	return u.Update(func(s *CompetitionUpsert) {
		s.ClearStartDate()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CompetitionUpsertOne) SetCreatedAt(v time.Time) *CompetitionUpsertOne {
	return u.Update(func(s *CompetitionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CompetitionUpsertOne) UpdateCreatedAt() *CompetitionUpsertOne {
	return u.Update(func(s *CompetitionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *CompetitionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompetitionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompetitionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CompetitionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CompetitionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CompetitionCreateBulk is the builder for creating many Competition entities in bulk.
type CompetitionCreateBulk struct {
	config
	err      error
	builders []*CompetitionCreate
	conflict []sql.ConflictOption
}

// Save creates the Competition entities in the database.
func (_c *CompetitionCreateBulk) Save(ctx context.Context) ([]*Competition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Competition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompetitionMutation)
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
func (_c *CompetitionCreateBulk) SaveX(ctx context.Context) []*Competition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompetitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompetitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Competition.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompetitionUpsert) {
//			SetSeason(v+v).
//		}).
//		Exec(ctx)
func (_c *CompetitionCreateBulk) OnConflict(opts ...sql.ConflictOption) *CompetitionUpsertBulk {
	_c.conflict = opts
	return &CompetitionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Competition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompetitionCreateBulk) OnConflictColumns(columns ...string) *CompetitionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompetitionUpsertBulk{
		create: _c,
	}
}

// CompetitionUpsertBulk is the builder for "upsert"-ing
// a bulk of Competition nodes.
type CompetitionUpsertBulk struct {
	create *CompetitionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Competition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CompetitionUpsertBulk) UpdateNewValues() *CompetitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Competition.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CompetitionUpsertBulk) Ignore() *CompetitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompetitionUpsertBulk) DoNothing() *CompetitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompetitionCreateBulk.OnConflict
// documentation for more info.
func (u *CompetitionUpsertBulk) Update(set func(*CompetitionUpsert)) *CompetitionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompetitionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSeason sets the "season" field.
func (u *CompetitionUpsertBulk) SetSeason(v string) *CompetitionUpsertBulk {
	return u.Update(func(s *CompetitionUpsert) {
		s.SetSeason(v)
	})
}

// UpdateSeason sets the "season" field to the value that was provided on create.
func (u *CompetitionUpsertBulk) UpdateSeason() *CompetitionUpsertBulk {
	return u.Update(func(s *CompetitionUpsert) {
		s.UpdateSeason()
	})
}

// SetName sets the "name" field.
func (u *CompetitionUpsertBulk) SetName(v string) *CompetitionUpsertBulk {
	return u.Update(func(s *CompetitionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CompetitionUpsertBulk) UpdateName() *CompetitionUpsertBulk {
	return u.Update(func(s *CompetitionUpsert) {
		s.UpdateName()
	})
}

// SetVenue sets the "venue" field.
func (u *CompetitionUpsertBulk) SetVenue(v string) *CompetitionUpsertBulk {
	return u.Update(func(s *CompetitionUpsert) {
		s.SetVenue(v)
	})
}

// UpdateVenue sets the "venue" field to the value that was provided on create.
func (u *CompetitionUpsertBulk) UpdateVenue() *CompetitionUpsertBulk {
	return u.Update(func(s *CompetitionUpsert) {
		s.UpdateVenue()
	})
}

// ClearVenue clears the value of the "venue" field.
func (u *CompetitionUpsertBulk) ClearVenue() *CompetitionUpsertBulk {
	return u.Update(func(s *CompetitionUpsert) {
		s.ClearVenue()
	})
}

// SetStartDate sets the "start_date" field.
func (u *CompetitionUpsertBulk) SetStartDate(v string) *CompetitionUpsertBulk {
	return u.Update(func(s *CompetitionUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *CompetitionUpsertBulk) UpdateStartDate() *CompetitionUpsertBulk {
	return u.Update(func(s *CompetitionUpsert) {
		s.UpdateStartDate()
	})
}

// ClearStartDate clears the value of the "start_date" field.
func (u *CompetitionUpsertBulk) ClearStartDate() *CompetitionUpsertBulk {
	return u.Update(func(s *CompetitionUpsert) {
		s.ClearStartDate()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CompetitionUpsertBulk) SetCreatedAt(v time.Time) *CompetitionUpsertBulk {
	return u.Update(func(s *CompetitionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CompetitionUpsertBulk) UpdateCreatedAt() *CompetitionUpsertBulk {
	return u.Update(func(s *CompetitionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *CompetitionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CompetitionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompetitionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompetitionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
