// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"visitor-pulse-api/ent/predicate"
	"visitor-pulse-api/ent/visitorprofile"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// VisitorProfileDelete is the builder for deleting a VisitorProfile entity.
type VisitorProfileDelete struct {
	config
	hooks    []Hook
	mutation *VisitorProfileMutation
}

// Where appends a list predicates to the VisitorProfileDelete builder.
func (_d *VisitorProfileDelete) Where(ps ...predicate.VisitorProfile) *VisitorProfileDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *VisitorProfileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *VisitorProfileDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *VisitorProfileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(visitorprofile.Table, sqlgraph.NewFieldSpec(visitorprofile.FieldID, field.TypeUUID))
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

// VisitorProfileDeleteOne is the builder for deleting a single VisitorProfile entity.
type VisitorProfileDeleteOne struct {
	_d *VisitorProfileDelete
}

// Where appends a list predicates to the VisitorProfileDelete builder.
func (_d *VisitorProfileDeleteOne) Where(ps ...predicate.VisitorProfile) *VisitorProfileDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *VisitorProfileDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{visitorprofile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *VisitorProfileDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
