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
	"github.com/fsun/ski-results/gen/ent/processedfile"
)

// ProcessedFileCreate is the builder for creating a ProcessedFile entity.
type ProcessedFileCreate struct {
	config
	mutation *ProcessedFileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFileKey sets the "file_key" field.
func (_c *ProcessedFileCreate) SetFileKey(v string) *ProcessedFileCreate {
	_c.mutation.SetFileKey(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *ProcessedFileCreate) SetFileType(v string) *ProcessedFileCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_c *ProcessedFileCreate) SetNillableFileType(v *string) *ProcessedFileCreate {
	if v != nil {
		_c.SetFileType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessedFileCreate) SetStatus(v string) *ProcessedFileCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProcessedFileCreate) SetErrorMessage(v string) *ProcessedFileCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProcessedFileCreate) SetNillableErrorMessage(v *string) *ProcessedFileCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ProcessedFileCreate) SetProcessedAt(v time.Time) *ProcessedFileCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ProcessedFileCreate) SetNillableProcessedAt(v *time.Time) *ProcessedFileCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// Mutation returns the ProcessedFileMutation object of the builder.
func (_c *ProcessedFileCreate) Mutation() *ProcessedFileMutation {
	return _c.mutation
}

// Save creates the ProcessedFile in the database.
func (_c *ProcessedFileCreate) Save(ctx context.Context) (*ProcessedFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessedFileCreate) SaveX(ctx context.Context) *ProcessedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessedFileCreate) defaults() {
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		v := processedfile.DefaultProcessedAt()
		_c.mutation.SetProcessedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessedFileCreate) check() error {
	if _, ok := _c.mutation.FileKey(); !ok {
		return &ValidationError{Name: "file_key", err: errors.New(`ent: missing required field "ProcessedFile.file_key"`)}
	}
	if v, ok := _c.mutation.FileKey(); ok {
		if err := processedfile.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.file_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessedFile.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processedfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "ProcessedFile.processed_at"`)}
	}
	return nil
}

func (_c *ProcessedFileCreate) sqlSave(ctx context.Context) (*ProcessedFile, error) {
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

func (_c *ProcessedFileCreate) createSpec() (*ProcessedFile, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessedFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processedfile.Table, sqlgraph.NewFieldSpec(processedfile.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.FileKey(); ok {
		_spec.SetField(processedfile.FieldFileKey, field.TypeString, value)
		_node.FileKey = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(processedfile.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processedfile.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(processedfile.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(processedfile.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProcessedFile.Create().
//		SetFileKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessedFileUpsert) {
//			SetFileKey(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessedFileCreate) OnConflict(opts ...sql.ConflictOption) *ProcessedFileUpsertOne {
	_c.conflict = opts
	return &ProcessedFileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessedFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessedFileCreate) OnConflictColumns(columns ...string) *ProcessedFileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessedFileUpsertOne{
		create: _c,
	}
}

type (
	// ProcessedFileUpsertOne is the builder for "upsert"-ing
	//  one ProcessedFile node.
	ProcessedFileUpsertOne struct {
		create *ProcessedFileCreate
	}

	// ProcessedFileUpsert is the "OnConflict" setter.
	ProcessedFileUpsert struct {
		*sql.UpdateSet
	}
)

// SetFileKey sets the "file_key" field.
func (u *ProcessedFileUpsert) SetFileKey(v string) *ProcessedFileUpsert {
	u.Set(processedfile.FieldFileKey, v)
	return u
}

// UpdateFileKey sets the "file_key" field to the value that was provided on create.
func (u *ProcessedFileUpsert) UpdateFileKey() *ProcessedFileUpsert {
	u.SetExcluded(processedfile.FieldFileKey)
	return u
}

// SetFileType sets the "file_type" field.
func (u *ProcessedFileUpsert) SetFileType(v string) *ProcessedFileUpsert {
	u.Set(processedfile.FieldFileType, v)
	return u
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *ProcessedFileUpsert) UpdateFileType() *ProcessedFileUpsert {
	u.SetExcluded(processedfile.FieldFileType)
	return u
}

// ClearFileType clears the value of the "file_type" field.
func (u *ProcessedFileUpsert) ClearFileType() *ProcessedFileUpsert {
	u.SetNull(processedfile.FieldFileType)
	return u
}

// SetStatus sets the "status" field.
func (u *ProcessedFileUpsert) SetStatus(v string) *ProcessedFileUpsert {
	u.Set(processedfile.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProcessedFileUpsert) UpdateStatus() *ProcessedFileUpsert {
	u.SetExcluded(processedfile.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ProcessedFileUpsert) SetErrorMessage(v string) *ProcessedFileUpsert {
	u.Set(processedfile.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ProcessedFileUpsert) UpdateErrorMessage() *ProcessedFileUpsert {
	u.SetExcluded(processedfile.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ProcessedFileUpsert) ClearErrorMessage() *ProcessedFileUpsert {
	u.SetNull(processedfile.FieldErrorMessage)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *ProcessedFileUpsert) SetProcessedAt(v time.Time) *ProcessedFileUpsert {
	u.Set(processedfile.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ProcessedFileUpsert) UpdateProcessedAt() *ProcessedFileUpsert {
	u.SetExcluded(processedfile.FieldProcessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ProcessedFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProcessedFileUpsertOne) UpdateNewValues() *ProcessedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessedFile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProcessedFileUpsertOne) Ignore() *ProcessedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessedFileUpsertOne) DoNothing() *ProcessedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessedFileCreate.OnConflict
// documentation for more info.
func (u *ProcessedFileUpsertOne) Update(set func(*ProcessedFileUpsert)) *ProcessedFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessedFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileKey sets the "file_key" field.
func (u *ProcessedFileUpsertOne) SetFileKey(v string) *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetFileKey(v)
	})
}

// UpdateFileKey sets the "file_key" field to the value that was provided on create.
func (u *ProcessedFileUpsertOne) UpdateFileKey() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateFileKey()
	})
}

// SetFileType sets the "file_type" field.
func (u *ProcessedFileUpsertOne) SetFileType(v string) *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetFileType(v)
	})
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *ProcessedFileUpsertOne) UpdateFileType() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateFileType()
	})
}

// ClearFileType clears the value of the "file_type" field.
func (u *ProcessedFileUpsertOne) ClearFileType() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.ClearFileType()
	})
}

// SetStatus sets the "status" field.
func (u *ProcessedFileUpsertOne) SetStatus(v string) *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProcessedFileUpsertOne) UpdateStatus() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ProcessedFileUpsertOne) SetErrorMessage(v string) *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ProcessedFileUpsertOne) UpdateErrorMessage() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ProcessedFileUpsertOne) ClearErrorMessage() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.ClearErrorMessage()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *ProcessedFileUpsertOne) SetProcessedAt(v time.Time) *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ProcessedFileUpsertOne) UpdateProcessedAt() *ProcessedFileUpsertOne {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateProcessedAt()
	})
}

// Exec executes the query.
func (u *ProcessedFileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessedFileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessedFileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProcessedFileUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProcessedFileUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProcessedFileCreateBulk is the builder for creating many ProcessedFile entities in bulk.
type ProcessedFileCreateBulk struct {
	config
	err      error
	builders []*ProcessedFileCreate
	conflict []sql.ConflictOption
}

// Save creates the ProcessedFile entities in the database.
func (_c *ProcessedFileCreateBulk) Save(ctx context.Context) ([]*ProcessedFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessedFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessedFileMutation)
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
func (_c *ProcessedFileCreateBulk) SaveX(ctx context.Context) []*ProcessedFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProcessedFile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessedFileUpsert) {
//			SetFileKey(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessedFileCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProcessedFileUpsertBulk {
	_c.conflict = opts
	return &ProcessedFileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessedFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessedFileCreateBulk) OnConflictColumns(columns ...string) *ProcessedFileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessedFileUpsertBulk{
		create: _c,
	}
}

// ProcessedFileUpsertBulk is the builder for "upsert"-ing
// a bulk of ProcessedFile nodes.
type ProcessedFileUpsertBulk struct {
	create *ProcessedFileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProcessedFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProcessedFileUpsertBulk) UpdateNewValues() *ProcessedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessedFile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProcessedFileUpsertBulk) Ignore() *ProcessedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessedFileUpsertBulk) DoNothing() *ProcessedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessedFileCreateBulk.OnConflict
// documentation for more info.
func (u *ProcessedFileUpsertBulk) Update(set func(*ProcessedFileUpsert)) *ProcessedFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessedFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetFileKey sets the "file_key" field.
func (u *ProcessedFileUpsertBulk) SetFileKey(v string) *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetFileKey(v)
	})
}

// UpdateFileKey sets the "file_key" field to the value that was provided on create.
func (u *ProcessedFileUpsertBulk) UpdateFileKey() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateFileKey()
	})
}

// SetFileType sets the "file_type" field.
func (u *ProcessedFileUpsertBulk) SetFileType(v string) *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetFileType(v)
	})
}

// UpdateFileType sets the "file_type" field to the value that was provided on create.
func (u *ProcessedFileUpsertBulk) UpdateFileType() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateFileType()
	})
}

// ClearFileType clears the value of the "file_type" field.
func (u *ProcessedFileUpsertBulk) ClearFileType() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.ClearFileType()
	})
}

// SetStatus sets the "status" field.
func (u *ProcessedFileUpsertBulk) SetStatus(v string) *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProcessedFileUpsertBulk) UpdateStatus() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ProcessedFileUpsertBulk) SetErrorMessage(v string) *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ProcessedFileUpsertBulk) UpdateErrorMessage() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ProcessedFileUpsertBulk) ClearErrorMessage() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.ClearErrorMessage()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *ProcessedFileUpsertBulk) SetProcessedAt(v time.Time) *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ProcessedFileUpsertBulk) UpdateProcessedAt() *ProcessedFileUpsertBulk {
	return u.Update(func(s *ProcessedFileUpsert) {
		s.UpdateProcessedAt()
	})
}

// Exec executes the query.
func (u *ProcessedFileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProcessedFileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessedFileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessedFileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
