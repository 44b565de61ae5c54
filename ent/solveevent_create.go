// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homewise/homewise/ent/solveevent"
)

// SolveEventCreate is the builder for creating a SolveEvent entity.
type SolveEventCreate struct {
	config
	mutation *SolveEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SolveEventCreate) SetSequence(v int64) *SolveEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SolveEventCreate) SetTimestamp(v time.Time) *SolveEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SolveEventCreate) SetNillableTimestamp(v *time.Time) *SolveEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *SolveEventCreate) SetQuestionCount(v int) *SolveEventCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetBatchCount sets the "batch_count" field.
func (_c *SolveEventCreate) SetBatchCount(v int) *SolveEventCreate {
	_c.mutation.SetBatchCount(v)
	return _c
}

// SetFailedBatches sets the "failed_batches" field.
func (_c *SolveEventCreate) SetFailedBatches(v int) *SolveEventCreate {
	_c.mutation.SetFailedBatches(v)
	return _c
}

// SetNillableFailedBatches sets the "failed_batches" field if the given value is not nil.
func (_c *SolveEventCreate) SetNillableFailedBatches(v *int) *SolveEventCreate {
	if v != nil {
		_c.SetFailedBatches(*v)
	}
	return _c
}

// SetPlaceholderCount sets the "placeholder_count" field.
func (_c *SolveEventCreate) SetPlaceholderCount(v int) *SolveEventCreate {
	_c.mutation.SetPlaceholderCount(v)
	return _c
}

// SetNillablePlaceholderCount sets the "placeholder_count" field if the given value is not nil.
func (_c *SolveEventCreate) SetNillablePlaceholderCount(v *int) *SolveEventCreate {
	if v != nil {
		_c.SetPlaceholderCount(*v)
	}
	return _c
}

// SetEstimatedTokensSaved sets the "estimated_tokens_saved" field.
func (_c *SolveEventCreate) SetEstimatedTokensSaved(v int) *SolveEventCreate {
	_c.mutation.SetEstimatedTokensSaved(v)
	return _c
}

// SetNillableEstimatedTokensSaved sets the "estimated_tokens_saved" field if the given value is not nil.
func (_c *SolveEventCreate) SetNillableEstimatedTokensSaved(v *int) *SolveEventCreate {
	if v != nil {
		_c.SetEstimatedTokensSaved(*v)
	}
	return _c
}

// Mutation returns the SolveEventMutation object of the builder.
func (_c *SolveEventCreate) Mutation() *SolveEventMutation {
	return _c.mutation
}

// Save creates the SolveEvent in the database.
func (_c *SolveEventCreate) Save(ctx context.Context) (*SolveEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SolveEventCreate) SaveX(ctx context.Context) *SolveEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolveEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolveEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SolveEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := solveevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.FailedBatches(); !ok {
		v := solveevent.DefaultFailedBatches
		_c.mutation.SetFailedBatches(v)
	}
	if _, ok := _c.mutation.PlaceholderCount(); !ok {
		v := solveevent.DefaultPlaceholderCount
		_c.mutation.SetPlaceholderCount(v)
	}
	if _, ok := _c.mutation.EstimatedTokensSaved(); !ok {
		v := solveevent.DefaultEstimatedTokensSaved
		_c.mutation.SetEstimatedTokensSaved(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SolveEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SolveEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SolveEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "SolveEvent.question_count"`)}
	}
	if _, ok := _c.mutation.BatchCount(); !ok {
		return &ValidationError{Name: "batch_count", err: errors.New(`ent: missing required field "SolveEvent.batch_count"`)}
	}
	if _, ok := _c.mutation.FailedBatches(); !ok {
		return &ValidationError{Name: "failed_batches", err: errors.New(`ent: missing required field "SolveEvent.failed_batches"`)}
	}
	if _, ok := _c.mutation.PlaceholderCount(); !ok {
		return &ValidationError{Name: "placeholder_count", err: errors.New(`ent: missing required field "SolveEvent.placeholder_count"`)}
	}
	if _, ok := _c.mutation.EstimatedTokensSaved(); !ok {
		return &ValidationError{Name: "estimated_tokens_saved", err: errors.New(`ent: missing required field "SolveEvent.estimated_tokens_saved"`)}
	}
	return nil
}

func (_c *SolveEventCreate) sqlSave(ctx context.Context) (*SolveEvent, error) {
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

func (_c *SolveEventCreate) createSpec() (*SolveEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SolveEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(solveevent.Table, sqlgraph.NewFieldSpec(solveevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(solveevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(solveevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(solveevent.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.BatchCount(); ok {
		_spec.SetField(solveevent.FieldBatchCount, field.TypeInt, value)
		_node.BatchCount = value
	}
	if value, ok := _c.mutation.FailedBatches(); ok {
		_spec.SetField(solveevent.FieldFailedBatches, field.TypeInt, value)
		_node.FailedBatches = value
	}
	if value, ok := _c.mutation.PlaceholderCount(); ok {
		_spec.SetField(solveevent.FieldPlaceholderCount, field.TypeInt, value)
		_node.PlaceholderCount = value
	}
	if value, ok := _c.mutation.EstimatedTokensSaved(); ok {
		_spec.SetField(solveevent.FieldEstimatedTokensSaved, field.TypeInt, value)
		_node.EstimatedTokensSaved = value
	}
	return _node, _spec
}

// SolveEventCreateBulk is the builder for creating many SolveEvent entities in bulk.
type SolveEventCreateBulk struct {
	config
	err      error
	builders []*SolveEventCreate
}

// Save creates the SolveEvent entities in the database.
func (_c *SolveEventCreateBulk) Save(ctx context.Context) ([]*SolveEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SolveEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SolveEventMutation)
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
func (_c *SolveEventCreateBulk) SaveX(ctx context.Context) []*SolveEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolveEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolveEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
