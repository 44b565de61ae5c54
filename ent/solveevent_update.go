// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homewise/homewise/ent/predicate"
	"github.com/homewise/homewise/ent/solveevent"
)

// SolveEventUpdate is the builder for updating SolveEvent entities.
type SolveEventUpdate struct {
	config
	hooks    []Hook
	mutation *SolveEventMutation
}

// Where appends a list predicates to the SolveEventUpdate builder.
func (_u *SolveEventUpdate) Where(ps ...predicate.SolveEvent) *SolveEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *SolveEventUpdate) SetQuestionCount(v int) *SolveEventUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableQuestionCount(v *int) *SolveEventUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *SolveEventUpdate) AddQuestionCount(v int) *SolveEventUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetBatchCount sets the "batch_count" field.
func (_u *SolveEventUpdate) SetBatchCount(v int) *SolveEventUpdate {
	_u.mutation.ResetBatchCount()
	_u.mutation.SetBatchCount(v)
	return _u
}

// SetNillableBatchCount sets the "batch_count" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableBatchCount(v *int) *SolveEventUpdate {
	if v != nil {
		_u.SetBatchCount(*v)
	}
	return _u
}

// AddBatchCount adds value to the "batch_count" field.
func (_u *SolveEventUpdate) AddBatchCount(v int) *SolveEventUpdate {
	_u.mutation.AddBatchCount(v)
	return _u
}

// SetFailedBatches sets the "failed_batches" field.
func (_u *SolveEventUpdate) SetFailedBatches(v int) *SolveEventUpdate {
	_u.mutation.ResetFailedBatches()
	_u.mutation.SetFailedBatches(v)
	return _u
}

// SetNillableFailedBatches sets the "failed_batches" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableFailedBatches(v *int) *SolveEventUpdate {
	if v != nil {
		_u.SetFailedBatches(*v)
	}
	return _u
}

// AddFailedBatches adds value to the "failed_batches" field.
func (_u *SolveEventUpdate) AddFailedBatches(v int) *SolveEventUpdate {
	_u.mutation.AddFailedBatches(v)
	return _u
}

// SetPlaceholderCount sets the "placeholder_count" field.
func (_u *SolveEventUpdate) SetPlaceholderCount(v int) *SolveEventUpdate {
	_u.mutation.ResetPlaceholderCount()
	_u.mutation.SetPlaceholderCount(v)
	return _u
}

// SetNillablePlaceholderCount sets the "placeholder_count" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillablePlaceholderCount(v *int) *SolveEventUpdate {
	if v != nil {
		_u.SetPlaceholderCount(*v)
	}
	return _u
}

// AddPlaceholderCount adds value to the "placeholder_count" field.
func (_u *SolveEventUpdate) AddPlaceholderCount(v int) *SolveEventUpdate {
	_u.mutation.AddPlaceholderCount(v)
	return _u
}

// SetEstimatedTokensSaved sets the "estimated_tokens_saved" field.
func (_u *SolveEventUpdate) SetEstimatedTokensSaved(v int) *SolveEventUpdate {
	_u.mutation.ResetEstimatedTokensSaved()
	_u.mutation.SetEstimatedTokensSaved(v)
	return _u
}

// SetNillableEstimatedTokensSaved sets the "estimated_tokens_saved" field if the given value is not nil.
func (_u *SolveEventUpdate) SetNillableEstimatedTokensSaved(v *int) *SolveEventUpdate {
	if v != nil {
		_u.SetEstimatedTokensSaved(*v)
	}
	return _u
}

// AddEstimatedTokensSaved adds value to the "estimated_tokens_saved" field.
func (_u *SolveEventUpdate) AddEstimatedTokensSaved(v int) *SolveEventUpdate {
	_u.mutation.AddEstimatedTokensSaved(v)
	return _u
}

// Mutation returns the SolveEventMutation object of the builder.
func (_u *SolveEventUpdate) Mutation() *SolveEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SolveEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolveEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SolveEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolveEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SolveEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(solveevent.Table, solveevent.Columns, sqlgraph.NewFieldSpec(solveevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(solveevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(solveevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BatchCount(); ok {
		_spec.SetField(solveevent.FieldBatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchCount(); ok {
		_spec.AddField(solveevent.FieldBatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedBatches(); ok {
		_spec.SetField(solveevent.FieldFailedBatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedBatches(); ok {
		_spec.AddField(solveevent.FieldFailedBatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlaceholderCount(); ok {
		_spec.SetField(solveevent.FieldPlaceholderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlaceholderCount(); ok {
		_spec.AddField(solveevent.FieldPlaceholderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedTokensSaved(); ok {
		_spec.SetField(solveevent.FieldEstimatedTokensSaved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedTokensSaved(); ok {
		_spec.AddField(solveevent.FieldEstimatedTokensSaved, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solveevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SolveEventUpdateOne is the builder for updating a single SolveEvent entity.
type SolveEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SolveEventMutation
}

// SetQuestionCount sets the "question_count" field.
func (_u *SolveEventUpdateOne) SetQuestionCount(v int) *SolveEventUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableQuestionCount(v *int) *SolveEventUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *SolveEventUpdateOne) AddQuestionCount(v int) *SolveEventUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetBatchCount sets the "batch_count" field.
func (_u *SolveEventUpdateOne) SetBatchCount(v int) *SolveEventUpdateOne {
	_u.mutation.ResetBatchCount()
	_u.mutation.SetBatchCount(v)
	return _u
}

// SetNillableBatchCount sets the "batch_count" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableBatchCount(v *int) *SolveEventUpdateOne {
	if v != nil {
		_u.SetBatchCount(*v)
	}
	return _u
}

// AddBatchCount adds value to the "batch_count" field.
func (_u *SolveEventUpdateOne) AddBatchCount(v int) *SolveEventUpdateOne {
	_u.mutation.AddBatchCount(v)
	return _u
}

// SetFailedBatches sets the "failed_batches" field.
func (_u *SolveEventUpdateOne) SetFailedBatches(v int) *SolveEventUpdateOne {
	_u.mutation.ResetFailedBatches()
	_u.mutation.SetFailedBatches(v)
	return _u
}

// SetNillableFailedBatches sets the "failed_batches" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableFailedBatches(v *int) *SolveEventUpdateOne {
	if v != nil {
		_u.SetFailedBatches(*v)
	}
	return _u
}

// AddFailedBatches adds value to the "failed_batches" field.
func (_u *SolveEventUpdateOne) AddFailedBatches(v int) *SolveEventUpdateOne {
	_u.mutation.AddFailedBatches(v)
	return _u
}

// SetPlaceholderCount sets the "placeholder_count" field.
func (_u *SolveEventUpdateOne) SetPlaceholderCount(v int) *SolveEventUpdateOne {
	_u.mutation.ResetPlaceholderCount()
	_u.mutation.SetPlaceholderCount(v)
	return _u
}

// SetNillablePlaceholderCount sets the "placeholder_count" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillablePlaceholderCount(v *int) *SolveEventUpdateOne {
	if v != nil {
		_u.SetPlaceholderCount(*v)
	}
	return _u
}

// AddPlaceholderCount adds value to the "placeholder_count" field.
func (_u *SolveEventUpdateOne) AddPlaceholderCount(v int) *SolveEventUpdateOne {
	_u.mutation.AddPlaceholderCount(v)
	return _u
}

// SetEstimatedTokensSaved sets the "estimated_tokens_saved" field.
func (_u *SolveEventUpdateOne) SetEstimatedTokensSaved(v int) *SolveEventUpdateOne {
	_u.mutation.ResetEstimatedTokensSaved()
	_u.mutation.SetEstimatedTokensSaved(v)
	return _u
}

// SetNillableEstimatedTokensSaved sets the "estimated_tokens_saved" field if the given value is not nil.
func (_u *SolveEventUpdateOne) SetNillableEstimatedTokensSaved(v *int) *SolveEventUpdateOne {
	if v != nil {
		_u.SetEstimatedTokensSaved(*v)
	}
	return _u
}

// AddEstimatedTokensSaved adds value to the "estimated_tokens_saved" field.
func (_u *SolveEventUpdateOne) AddEstimatedTokensSaved(v int) *SolveEventUpdateOne {
	_u.mutation.AddEstimatedTokensSaved(v)
	return _u
}

// Mutation returns the SolveEventMutation object of the builder.
func (_u *SolveEventUpdateOne) Mutation() *SolveEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SolveEventUpdate builder.
func (_u *SolveEventUpdateOne) Where(ps ...predicate.SolveEvent) *SolveEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SolveEventUpdateOne) Select(field string, fields ...string) *SolveEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SolveEvent entity.
func (_u *SolveEventUpdateOne) Save(ctx context.Context) (*SolveEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolveEventUpdateOne) SaveX(ctx context.Context) *SolveEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SolveEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolveEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SolveEventUpdateOne) sqlSave(ctx context.Context) (_node *SolveEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(solveevent.Table, solveevent.Columns, sqlgraph.NewFieldSpec(solveevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SolveEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, solveevent.FieldID)
		for _, f := range fields {
			if !solveevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != solveevent.FieldID {
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
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(solveevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(solveevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BatchCount(); ok {
		_spec.SetField(solveevent.FieldBatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBatchCount(); ok {
		_spec.AddField(solveevent.FieldBatchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedBatches(); ok {
		_spec.SetField(solveevent.FieldFailedBatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedBatches(); ok {
		_spec.AddField(solveevent.FieldFailedBatches, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlaceholderCount(); ok {
		_spec.SetField(solveevent.FieldPlaceholderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlaceholderCount(); ok {
		_spec.AddField(solveevent.FieldPlaceholderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedTokensSaved(); ok {
		_spec.SetField(solveevent.FieldEstimatedTokensSaved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedTokensSaved(); ok {
		_spec.AddField(solveevent.FieldEstimatedTokensSaved, field.TypeInt, value)
	}
	_node = &SolveEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solveevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
