// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"visitor-pulse-api/ent/geocache"
	"visitor-pulse-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// GeoCacheDelete is the builder for deleting a GeoCache entity.
type GeoCacheDelete struct {
	config
	hooks    []Hook
	mutation *GeoCacheMutation
}

// Where appends a list predicates to the GeoCacheDelete builder.
func (_d *GeoCacheDelete) Where(ps ...predicate.GeoCache) *GeoCacheDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GeoCacheDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeoCacheDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GeoCacheDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(geocache.Table, sqlgraph.NewFieldSpec(geocache.FieldID, field.TypeUUID))
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

// GeoCacheDeleteOne is the builder for deleting a single GeoCache entity.
type GeoCacheDeleteOne struct {
	_d *GeoCacheDelete
}

// Where appends a list predicates to the GeoCacheDelete builder.
func (_d *GeoCacheDeleteOne) Where(ps ...predicate.GeoCache) *GeoCacheDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GeoCacheDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{geocache.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeoCacheDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
