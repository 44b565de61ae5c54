// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homewise/homewise/ent/illustrationevent"
	"github.com/homewise/homewise/ent/predicate"
)

// IllustrationEventUpdate is the builder for updating IllustrationEvent entities.
type IllustrationEventUpdate struct {
	config
	hooks    []Hook
	mutation *IllustrationEventMutation
}

// Where appends a list predicates to the IllustrationEventUpdate builder.
func (_u *IllustrationEventUpdate) Where(ps ...predicate.IllustrationEvent) *IllustrationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *IllustrationEventUpdate) SetQuestionID(v string) *IllustrationEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *IllustrationEventUpdate) SetNillableQuestionID(v *string) *IllustrationEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *IllustrationEventUpdate) SetFileID(v string) *IllustrationEventUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *IllustrationEventUpdate) SetNillableFileID(v *string) *IllustrationEventUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *IllustrationEventUpdate) SetSuccess(v bool) *IllustrationEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *IllustrationEventUpdate) SetNillableSuccess(v *bool) *IllustrationEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IllustrationEventUpdate) SetErrorMessage(v string) *IllustrationEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IllustrationEventUpdate) SetNillableErrorMessage(v *string) *IllustrationEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *IllustrationEventUpdate) SetLatencyMs(v int64) *IllustrationEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *IllustrationEventUpdate) SetNillableLatencyMs(v *int64) *IllustrationEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *IllustrationEventUpdate) AddLatencyMs(v int64) *IllustrationEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the IllustrationEventMutation object of the builder.
func (_u *IllustrationEventUpdate) Mutation() *IllustrationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IllustrationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IllustrationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IllustrationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IllustrationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IllustrationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(illustrationevent.Table, illustrationevent.Columns, sqlgraph.NewFieldSpec(illustrationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(illustrationevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileID(); ok {
		_spec.SetField(illustrationevent.FieldFileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(illustrationevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(illustrationevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(illustrationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(illustrationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{illustrationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IllustrationEventUpdateOne is the builder for updating a single IllustrationEvent entity.
type IllustrationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IllustrationEventMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *IllustrationEventUpdateOne) SetQuestionID(v string) *IllustrationEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *IllustrationEventUpdateOne) SetNillableQuestionID(v *string) *IllustrationEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *IllustrationEventUpdateOne) SetFileID(v string) *IllustrationEventUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *IllustrationEventUpdateOne) SetNillableFileID(v *string) *IllustrationEventUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *IllustrationEventUpdateOne) SetSuccess(v bool) *IllustrationEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *IllustrationEventUpdateOne) SetNillableSuccess(v *bool) *IllustrationEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *IllustrationEventUpdateOne) SetErrorMessage(v string) *IllustrationEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *IllustrationEventUpdateOne) SetNillableErrorMessage(v *string) *IllustrationEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *IllustrationEventUpdateOne) SetLatencyMs(v int64) *IllustrationEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *IllustrationEventUpdateOne) SetNillableLatencyMs(v *int64) *IllustrationEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *IllustrationEventUpdateOne) AddLatencyMs(v int64) *IllustrationEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the IllustrationEventMutation object of the builder.
func (_u *IllustrationEventUpdateOne) Mutation() *IllustrationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the IllustrationEventUpdate builder.
func (_u *IllustrationEventUpdateOne) Where(ps ...predicate.IllustrationEvent) *IllustrationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IllustrationEventUpdateOne) Select(field string, fields ...string) *IllustrationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IllustrationEvent entity.
func (_u *IllustrationEventUpdateOne) Save(ctx context.Context) (*IllustrationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IllustrationEventUpdateOne) SaveX(ctx context.Context) *IllustrationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IllustrationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IllustrationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IllustrationEventUpdateOne) sqlSave(ctx context.Context) (_node *IllustrationEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(illustrationevent.Table, illustrationevent.Columns, sqlgraph.NewFieldSpec(illustrationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IllustrationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, illustrationevent.FieldID)
		for _, f := range fields {
			if !illustrationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != illustrationevent.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(illustrationevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileID(); ok {
		_spec.SetField(illustrationevent.FieldFileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(illustrationevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(illustrationevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(illustrationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(illustrationevent.FieldLatencyMs, field.TypeInt64, value)
	}
	_node = &IllustrationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{illustrationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
