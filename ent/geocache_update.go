// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitor-pulse-api/ent/geocache"
	"visitor-pulse-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// GeoCacheUpdate is the builder for updating GeoCache entities.
type GeoCacheUpdate struct {
	config
	hooks    []Hook
	mutation *GeoCacheMutation
}

// Where appends a list predicates to the GeoCacheUpdate builder.
func (_u *GeoCacheUpdate) Where(ps ...predicate.GeoCache) *GeoCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIP sets the "ip" field.
func (_u *GeoCacheUpdate) SetIP(v string) *GeoCacheUpdate {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *GeoCacheUpdate) SetNillableIP(v *string) *GeoCacheUpdate {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *GeoCacheUpdate) SetCity(v string) *GeoCacheUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *GeoCacheUpdate) SetNillableCity(v *string) *GeoCacheUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *GeoCacheUpdate) ClearCity() *GeoCacheUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetRegion sets the "region" field.
func (_u *GeoCacheUpdate) SetRegion(v string) *GeoCacheUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *GeoCacheUpdate) SetNillableRegion(v *string) *GeoCacheUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *GeoCacheUpdate) ClearRegion() *GeoCacheUpdate {
	_u.mutation.ClearRegion()
	return _u
}

// SetCountry sets the "country" field.
func (_u *GeoCacheUpdate) SetCountry(v string) *GeoCacheUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *GeoCacheUpdate) SetNillableCountry(v *string) *GeoCacheUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *GeoCacheUpdate) ClearCountry() *GeoCacheUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetLat sets the "lat" field.
func (_u *GeoCacheUpdate) SetLat(v float64) *GeoCacheUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *GeoCacheUpdate) SetNillableLat(v *float64) *GeoCacheUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *GeoCacheUpdate) AddLat(v float64) *GeoCacheUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *GeoCacheUpdate) ClearLat() *GeoCacheUpdate {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *GeoCacheUpdate) SetLng(v float64) *GeoCacheUpdate {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *GeoCacheUpdate) SetNillableLng(v *float64) *GeoCacheUpdate {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *GeoCacheUpdate) AddLng(v float64) *GeoCacheUpdate {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *GeoCacheUpdate) ClearLng() *GeoCacheUpdate {
	_u.mutation.ClearLng()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GeoCacheUpdate) SetUpdatedAt(v time.Time) *GeoCacheUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GeoCacheMutation object of the builder.
func (_u *GeoCacheUpdate) Mutation() *GeoCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeoCacheUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeoCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeoCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeoCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GeoCacheUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := geocache.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeoCacheUpdate) check() error {
	if v, ok := _u.mutation.IP(); ok {
		if err := geocache.IPValidator(v); err != nil {
			return &ValidationError{Name: "ip", err: fmt.Errorf(`ent: validator failed for field "GeoCache.ip": %w`, err)}
		}
	}
	return nil
}

func (_u *GeoCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(geocache.Table, geocache.Columns, sqlgraph.NewFieldSpec(geocache.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(geocache.FieldIP, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(geocache.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(geocache.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(geocache.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(geocache.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(geocache.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(geocache.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(geocache.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(geocache.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(geocache.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(geocache.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(geocache.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(geocache.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(geocache.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{geocache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeoCacheUpdateOne is the builder for updating a single GeoCache entity.
type GeoCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeoCacheMutation
}

// SetIP sets the "ip" field.
func (_u *GeoCacheUpdateOne) SetIP(v string) *GeoCacheUpdateOne {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *GeoCacheUpdateOne) SetNillableIP(v *string) *GeoCacheUpdateOne {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *GeoCacheUpdateOne) SetCity(v string) *GeoCacheUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *GeoCacheUpdateOne) SetNillableCity(v *string) *GeoCacheUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *GeoCacheUpdateOne) ClearCity() *GeoCacheUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetRegion sets the "region" field.
func (_u *GeoCacheUpdateOne) SetRegion(v string) *GeoCacheUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *GeoCacheUpdateOne) SetNillableRegion(v *string) *GeoCacheUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *GeoCacheUpdateOne) ClearRegion() *GeoCacheUpdateOne {
	_u.mutation.ClearRegion()
	return _u
}

// SetCountry sets the "country" field.
func (_u *GeoCacheUpdateOne) SetCountry(v string) *GeoCacheUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *GeoCacheUpdateOne) SetNillableCountry(v *string) *GeoCacheUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *GeoCacheUpdateOne) ClearCountry() *GeoCacheUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetLat sets the "lat" field.
func (_u *GeoCacheUpdateOne) SetLat(v float64) *GeoCacheUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *GeoCacheUpdateOne) SetNillableLat(v *float64) *GeoCacheUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *GeoCacheUpdateOne) AddLat(v float64) *GeoCacheUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *GeoCacheUpdateOne) ClearLat() *GeoCacheUpdateOne {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *GeoCacheUpdateOne) SetLng(v float64) *GeoCacheUpdateOne {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *GeoCacheUpdateOne) SetNillableLng(v *float64) *GeoCacheUpdateOne {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *GeoCacheUpdateOne) AddLng(v float64) *GeoCacheUpdateOne {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *GeoCacheUpdateOne) ClearLng() *GeoCacheUpdateOne {
	_u.mutation.ClearLng()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GeoCacheUpdateOne) SetUpdatedAt(v time.Time) *GeoCacheUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GeoCacheMutation object of the builder.
func (_u *GeoCacheUpdateOne) Mutation() *GeoCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the GeoCacheUpdate builder.
func (_u *GeoCacheUpdateOne) Where(ps ...predicate.GeoCache) *GeoCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeoCacheUpdateOne) Select(field string, fields ...string) *GeoCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeoCache entity.
func (_u *GeoCacheUpdateOne) Save(ctx context.Context) (*GeoCache, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeoCacheUpdateOne) SaveX(ctx context.Context) *GeoCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeoCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeoCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GeoCacheUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := geocache.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeoCacheUpdateOne) check() error {
	if v, ok := _u.mutation.IP(); ok {
		if err := geocache.IPValidator(v); err != nil {
			return &ValidationError{Name: "ip", err: fmt.Errorf(`ent: validator failed for field "GeoCache.ip": %w`, err)}
		}
	}
	return nil
}

func (_u *GeoCacheUpdateOne) sqlSave(ctx context.Context) (_node *GeoCache, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(geocache.Table, geocache.Columns, sqlgraph.NewFieldSpec(geocache.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeoCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, geocache.FieldID)
		for _, f := range fields {
			if !geocache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != geocache.FieldID {
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
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(geocache.FieldIP, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(geocache.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(geocache.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(geocache.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(geocache.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(geocache.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(geocache.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(geocache.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(geocache.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(geocache.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(geocache.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(geocache.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(geocache.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(geocache.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &GeoCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{geocache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
