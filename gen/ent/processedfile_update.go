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
	"github.com/fsun/ski-results/gen/ent/predicate"
	"github.com/fsun/ski-results/gen/ent/processedfile"
)

// ProcessedFileUpdate is the builder for updating ProcessedFile entities.
type ProcessedFileUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessedFileMutation
}

// Where appends a list predicates to the ProcessedFileUpdate builder.
func (_u *ProcessedFileUpdate) Where(ps ...predicate.ProcessedFile) *ProcessedFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *ProcessedFileUpdate) SetFileKey(v string) *ProcessedFileUpdate {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *ProcessedFileUpdate) SetNillableFileKey(v *string) *ProcessedFileUpdate {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *ProcessedFileUpdate) SetFileType(v string) *ProcessedFileUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *ProcessedFileUpdate) SetNillableFileType(v *string) *ProcessedFileUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// ClearFileType clears the value of the "file_type" field.
func (_u *ProcessedFileUpdate) ClearFileType() *ProcessedFileUpdate {
	_u.mutation.ClearFileType()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessedFileUpdate) SetStatus(v string) *ProcessedFileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessedFileUpdate) SetNillableStatus(v *string) *ProcessedFileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessedFileUpdate) SetErrorMessage(v string) *ProcessedFileUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessedFileUpdate) SetNillableErrorMessage(v *string) *ProcessedFileUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessedFileUpdate) ClearErrorMessage() *ProcessedFileUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ProcessedFileUpdate) SetProcessedAt(v time.Time) *ProcessedFileUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// Mutation returns the ProcessedFileMutation object of the builder.
func (_u *ProcessedFileUpdate) Mutation() *ProcessedFileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessedFileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessedFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessedFileUpdate) defaults() {
	if _, ok := _u.mutation.ProcessedAt(); !ok {
		v := processedfile.UpdateDefaultProcessedAt()
		_u.mutation.SetProcessedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessedFileUpdate) check() error {
	if v, ok := _u.mutation.FileKey(); ok {
		if err := processedfile.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.file_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processedfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessedFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processedfile.Table, processedfile.Columns, sqlgraph.NewFieldSpec(processedfile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(processedfile.FieldFileKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(processedfile.FieldFileType, field.TypeString, value)
	}
	if _u.mutation.FileTypeCleared() {
		_spec.ClearField(processedfile.FieldFileType, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processedfile.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processedfile.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processedfile.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(processedfile.FieldProcessedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessedFileUpdateOne is the builder for updating a single ProcessedFile entity.
type ProcessedFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessedFileMutation
}

// SetFileKey sets the "file_key" field.
func (_u *ProcessedFileUpdateOne) SetFileKey(v string) *ProcessedFileUpdateOne {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *ProcessedFileUpdateOne) SetNillableFileKey(v *string) *ProcessedFileUpdateOne {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *ProcessedFileUpdateOne) SetFileType(v string) *ProcessedFileUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *ProcessedFileUpdateOne) SetNillableFileType(v *string) *ProcessedFileUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// ClearFileType clears the value of the "file_type" field.
func (_u *ProcessedFileUpdateOne) ClearFileType() *ProcessedFileUpdateOne {
	_u.mutation.ClearFileType()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessedFileUpdateOne) SetStatus(v string) *ProcessedFileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessedFileUpdateOne) SetNillableStatus(v *string) *ProcessedFileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessedFileUpdateOne) SetErrorMessage(v string) *ProcessedFileUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessedFileUpdateOne) SetNillableErrorMessage(v *string) *ProcessedFileUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessedFileUpdateOne) ClearErrorMessage() *ProcessedFileUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ProcessedFileUpdateOne) SetProcessedAt(v time.Time) *ProcessedFileUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// Mutation returns the ProcessedFileMutation object of the builder.
func (_u *ProcessedFileUpdateOne) Mutation() *ProcessedFileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessedFileUpdate builder.
func (_u *ProcessedFileUpdateOne) Where(ps ...predicate.ProcessedFile) *ProcessedFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessedFileUpdateOne) Select(field string, fields ...string) *ProcessedFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessedFile entity.
func (_u *ProcessedFileUpdateOne) Save(ctx context.Context) (*ProcessedFile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedFileUpdateOne) SaveX(ctx context.Context) *ProcessedFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessedFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProcessedFileUpdateOne) defaults() {
	if _, ok := _u.mutation.ProcessedAt(); !ok {
		v := processedfile.UpdateDefaultProcessedAt()
		_u.mutation.SetProcessedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessedFileUpdateOne) check() error {
	if v, ok := _u.mutation.FileKey(); ok {
		if err := processedfile.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.file_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processedfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessedFile.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessedFileUpdateOne) sqlSave(ctx context.Context) (_node *ProcessedFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processedfile.Table, processedfile.Columns, sqlgraph.NewFieldSpec(processedfile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessedFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processedfile.FieldID)
		for _, f := range fields {
			if !processedfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processedfile.FieldID {
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
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(processedfile.FieldFileKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(processedfile.FieldFileType, field.TypeString, value)
	}
	if _u.mutation.FileTypeCleared() {
		_spec.ClearField(processedfile.FieldFileType, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processedfile.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processedfile.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processedfile.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(processedfile.FieldProcessedAt, field.TypeTime, value)
	}
	_node = &ProcessedFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
