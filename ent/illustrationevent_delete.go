// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/homewise/homewise/ent/illustrationevent"
	"github.com/homewise/homewise/ent/predicate"
)

// IllustrationEventDelete is the builder for deleting a IllustrationEvent entity.
type IllustrationEventDelete struct {
	config
	hooks    []Hook
	mutation *IllustrationEventMutation
}

// Where appends a list predicates to the IllustrationEventDelete builder.
func (_d *IllustrationEventDelete) Where(ps ...predicate.IllustrationEvent) *IllustrationEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *IllustrationEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IllustrationEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *IllustrationEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(illustrationevent.Table, sqlgraph.NewFieldSpec(illustrationevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// IllustrationEventDeleteOne is the builder for deleting a single IllustrationEvent entity.
type IllustrationEventDeleteOne struct {
	_d *IllustrationEventDelete
}

// Where appends a list predicates to the IllustrationEventDelete builder.
func (_d *IllustrationEventDeleteOne) Where(ps ...predicate.IllustrationEvent) *IllustrationEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *IllustrationEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{illustrationevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IllustrationEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
