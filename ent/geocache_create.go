// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitor-pulse-api/ent/geocache"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// GeoCacheCreate is the builder for creating a GeoCache entity.
type GeoCacheCreate struct {
	config
	mutation *GeoCacheMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIP sets the "ip" field.
func (_c *GeoCacheCreate) SetIP(v string) *GeoCacheCreate {
	_c.mutation.SetIP(v)
	return _c
}

// SetCity sets the "city" field.
func (_c *GeoCacheCreate) SetCity(v string) *GeoCacheCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *GeoCacheCreate) SetNillableCity(v *string) *GeoCacheCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetRegion sets the "region" field.
func (_c *GeoCacheCreate) SetRegion(v string) *GeoCacheCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_c *GeoCacheCreate) SetNillableRegion(v *string) *GeoCacheCreate {
	if v != nil {
		_c.SetRegion(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *GeoCacheCreate) SetCountry(v string) *GeoCacheCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *GeoCacheCreate) SetNillableCountry(v *string) *GeoCacheCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetLat sets the "lat" field.
func (_c *GeoCacheCreate) SetLat(v float64) *GeoCacheCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_c *GeoCacheCreate) SetNillableLat(v *float64) *GeoCacheCreate {
	if v != nil {
		_c.SetLat(*v)
	}
	return _c
}

// SetLng sets the "lng" field.
func (_c *GeoCacheCreate) SetLng(v float64) *GeoCacheCreate {
	_c.mutation.SetLng(v)
	return _c
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_c *GeoCacheCreate) SetNillableLng(v *float64) *GeoCacheCreate {
	if v != nil {
		_c.SetLng(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GeoCacheCreate) SetUpdatedAt(v time.Time) *GeoCacheCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GeoCacheCreate) SetNillableUpdatedAt(v *time.Time) *GeoCacheCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GeoCacheCreate) SetID(v uuid.UUID) *GeoCacheCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GeoCacheCreate) SetNillableID(v *uuid.UUID) *GeoCacheCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the GeoCacheMutation object of the builder.
func (_c *GeoCacheCreate) Mutation() *GeoCacheMutation {
	return _c.mutation
}

// Save creates the GeoCache in the database.
func (_c *GeoCacheCreate) Save(ctx context.Context) (*GeoCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeoCacheCreate) SaveX(ctx context.Context) *GeoCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeoCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeoCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GeoCacheCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := geocache.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := geocache.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeoCacheCreate) check() error {
	if _, ok := _c.mutation.IP(); !ok {
		return &ValidationError{Name: "ip", err: errors.New(`ent: missing required field "GeoCache.ip"`)}
	}
	if v, ok := _c.mutation.IP(); ok {
		if err := geocache.IPValidator(v); err != nil {
			return &ValidationError{Name: "ip", err: fmt.Errorf(`ent: validator failed for field "GeoCache.ip": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GeoCache.updated_at"`)}
	}
	return nil
}

func (_c *GeoCacheCreate) sqlSave(ctx context.Context) (*GeoCache, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GeoCacheCreate) createSpec() (*GeoCache, *sqlgraph.CreateSpec) {
	var (
		_node = &GeoCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(geocache.Table, sqlgraph.NewFieldSpec(geocache.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.IP(); ok {
		_spec.SetField(geocache.FieldIP, field.TypeString, value)
		_node.IP = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(geocache.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(geocache.FieldRegion, field.TypeString, value)
		_node.Region = &value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(geocache.FieldCountry, field.TypeString, value)
		_node.Country = &value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(geocache.FieldLat, field.TypeFloat64, value)
		_node.Lat = &value
	}
	if value, ok := _c.mutation.Lng(); ok {
		_spec.SetField(geocache.FieldLng, field.TypeFloat64, value)
		_node.Lng = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(geocache.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GeoCache.Create().
//		SetIP(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GeoCacheUpsert) {
//			SetIP(v+v).
//		}).
//		Exec(ctx)
func (_c *GeoCacheCreate) OnConflict(opts ...sql.ConflictOption) *GeoCacheUpsertOne {
	_c.conflict = opts
	return &GeoCacheUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GeoCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GeoCacheCreate) OnConflictColumns(columns ...string) *GeoCacheUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GeoCacheUpsertOne{
		create: _c,
	}
}

type (
	// GeoCacheUpsertOne is the builder for "upsert"-ing
	//  one GeoCache node.
	GeoCacheUpsertOne struct {
		create *GeoCacheCreate
	}

	// GeoCacheUpsert is the "OnConflict" setter.
	GeoCacheUpsert struct {
		*sql.UpdateSet
	}
)

// SetIP sets the "ip" field.
func (u *GeoCacheUpsert) SetIP(v string) *GeoCacheUpsert {
	u.Set(geocache.FieldIP, v)
	return u
}

// UpdateIP sets the "ip" field to the value that was provided on create.
func (u *GeoCacheUpsert) UpdateIP() *GeoCacheUpsert {
	u.SetExcluded(geocache.FieldIP)
	return u
}

// SetCity sets the "city" field.
func (u *GeoCacheUpsert) SetCity(v string) *GeoCacheUpsert {
	u.Set(geocache.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *GeoCacheUpsert) UpdateCity() *GeoCacheUpsert {
	u.SetExcluded(geocache.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *GeoCacheUpsert) ClearCity() *GeoCacheUpsert {
	u.SetNull(geocache.FieldCity)
	return u
}

// SetRegion sets the "region" field.
func (u *GeoCacheUpsert) SetRegion(v string) *GeoCacheUpsert {
	u.Set(geocache.FieldRegion, v)
	return u
}

// UpdateRegion sets the "region" field to the value that was provided on create.
func (u *GeoCacheUpsert) UpdateRegion() *GeoCacheUpsert {
	u.SetExcluded(geocache.FieldRegion)
	return u
}

// ClearRegion clears the value of the "region" field.
func (u *GeoCacheUpsert) ClearRegion() *GeoCacheUpsert {
	u.SetNull(geocache.FieldRegion)
	return u
}

// SetCountry sets the "country" field.
func (u *GeoCacheUpsert) SetCountry(v string) *GeoCacheUpsert {
	u.Set(geocache.FieldCountry, v)
	return u
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *GeoCacheUpsert) UpdateCountry() *GeoCacheUpsert {
	u.SetExcluded(geocache.FieldCountry)
	return u
}

// ClearCountry clears the value of the "country" field.
func (u *GeoCacheUpsert) ClearCountry() *GeoCacheUpsert {
	u.SetNull(geocache.FieldCountry)
	return u
}

// SetLat sets the "lat" field.
func (u *GeoCacheUpsert) SetLat(v float64) *GeoCacheUpsert {
	u.Set(geocache.FieldLat, v)
	return u
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *GeoCacheUpsert) UpdateLat() *GeoCacheUpsert {
	u.SetExcluded(geocache.FieldLat)
	return u
}

// AddLat adds v to the "lat" field.
func (u *GeoCacheUpsert) AddLat(v float64) *GeoCacheUpsert {
	u.Add(geocache.FieldLat, v)
	return u
}

// ClearLat clears the value of the "lat" field.
func (u *GeoCacheUpsert) ClearLat() *GeoCacheUpsert {
	u.SetNull(geocache.FieldLat)
	return u
}

// SetLng sets the "lng" field.
func (u *GeoCacheUpsert) SetLng(v float64) *GeoCacheUpsert {
	u.Set(geocache.FieldLng, v)
	return u
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *GeoCacheUpsert) UpdateLng() *GeoCacheUpsert {
	u.SetExcluded(geocache.FieldLng)
	return u
}

// AddLng adds v to the "lng" field.
func (u *GeoCacheUpsert) AddLng(v float64) *GeoCacheUpsert {
	u.Add(geocache.FieldLng, v)
	return u
}

// ClearLng clears the value of the "lng" field.
func (u *GeoCacheUpsert) ClearLng() *GeoCacheUpsert {
	u.SetNull(geocache.FieldLng)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GeoCacheUpsert) SetUpdatedAt(v time.Time) *GeoCacheUpsert {
	u.Set(geocache.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GeoCacheUpsert) UpdateUpdatedAt() *GeoCacheUpsert {
	u.SetExcluded(geocache.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GeoCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(geocache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GeoCacheUpsertOne) UpdateNewValues() *GeoCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(geocache.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GeoCache.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GeoCacheUpsertOne) Ignore() *GeoCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GeoCacheUpsertOne) DoNothing() *GeoCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GeoCacheCreate.OnConflict
// documentation for more info.
func (u *GeoCacheUpsertOne) Update(set func(*GeoCacheUpsert)) *GeoCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GeoCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetIP sets the "ip" field.
func (u *GeoCacheUpsertOne) SetIP(v string) *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetIP(v)
	})
}

// UpdateIP sets the "ip" field to the value that was provided on create.
func (u *GeoCacheUpsertOne) UpdateIP() *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateIP()
	})
}

// SetCity sets the "city" field.
func (u *GeoCacheUpsertOne) SetCity(v string) *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *GeoCacheUpsertOne) UpdateCity() *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *GeoCacheUpsertOne) ClearCity() *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.ClearCity()
	})
}

// SetRegion sets the "region" field.
func (u *GeoCacheUpsertOne) SetRegion(v string) *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetRegion(v)
	})
}

// UpdateRegion sets the "region" field to the value that was provided on create.
func (u *GeoCacheUpsertOne) UpdateRegion() *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateRegion()
	})
}

// ClearRegion clears the value of the "region" field.
func (u *GeoCacheUpsertOne) ClearRegion() *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.ClearRegion()
	})
}

// SetCountry sets the "country" field.
func (u *GeoCacheUpsertOne) SetCountry(v string) *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *GeoCacheUpsertOne) UpdateCountry() *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateCountry()
	})
}

// ClearCountry clears the value of the "country" field.
func (u *GeoCacheUpsertOne) ClearCountry() *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.ClearCountry()
	})
}

// SetLat sets the "lat" field.
func (u *GeoCacheUpsertOne) SetLat(v float64) *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *GeoCacheUpsertOne) AddLat(v float64) *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *GeoCacheUpsertOne) UpdateLat() *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *GeoCacheUpsertOne) ClearLat() *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.ClearLat()
	})
}

// SetLng sets the "lng" field.
func (u *GeoCacheUpsertOne) SetLng(v float64) *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetLng(v)
	})
}

// AddLng adds v to the "lng" field.
func (u *GeoCacheUpsertOne) AddLng(v float64) *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.AddLng(v)
	})
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *GeoCacheUpsertOne) UpdateLng() *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateLng()
	})
}

// ClearLng clears the value of the "lng" field.
func (u *GeoCacheUpsertOne) ClearLng() *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.ClearLng()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GeoCacheUpsertOne) SetUpdatedAt(v time.Time) *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GeoCacheUpsertOne) UpdateUpdatedAt() *GeoCacheUpsertOne {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GeoCacheUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GeoCacheCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GeoCacheUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GeoCacheUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GeoCacheUpsertOne.ID is not supported by MySQL driver. Use GeoCacheUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GeoCacheUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GeoCacheCreateBulk is the builder for creating many GeoCache entities in bulk.
type GeoCacheCreateBulk struct {
	config
	err      error
	builders []*GeoCacheCreate
	conflict []sql.ConflictOption
}

// Save creates the GeoCache entities in the database.
func (_c *GeoCacheCreateBulk) Save(ctx context.Context) ([]*GeoCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeoCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeoCacheMutation)
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
func (_c *GeoCacheCreateBulk) SaveX(ctx context.Context) []*GeoCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeoCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeoCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GeoCache.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GeoCacheUpsert) {
//			SetIP(v+v).
//		}).
//		Exec(ctx)
func (_c *GeoCacheCreateBulk) OnConflict(opts ...sql.ConflictOption) *GeoCacheUpsertBulk {
	_c.conflict = opts
	return &GeoCacheUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GeoCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GeoCacheCreateBulk) OnConflictColumns(columns ...string) *GeoCacheUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GeoCacheUpsertBulk{
		create: _c,
	}
}

// GeoCacheUpsertBulk is the builder for "upsert"-ing
// a bulk of GeoCache nodes.
type GeoCacheUpsertBulk struct {
	create *GeoCacheCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GeoCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(geocache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GeoCacheUpsertBulk) UpdateNewValues() *GeoCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(geocache.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GeoCache.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GeoCacheUpsertBulk) Ignore() *GeoCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GeoCacheUpsertBulk) DoNothing() *GeoCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GeoCacheCreateBulk.OnConflict
// documentation for more info.
func (u *GeoCacheUpsertBulk) Update(set func(*GeoCacheUpsert)) *GeoCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GeoCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetIP sets the "ip" field.
func (u *GeoCacheUpsertBulk) SetIP(v string) *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetIP(v)
	})
}

// UpdateIP sets the "ip" field to the value that was provided on create.
func (u *GeoCacheUpsertBulk) UpdateIP() *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateIP()
	})
}

// SetCity sets the "city" field.
func (u *GeoCacheUpsertBulk) SetCity(v string) *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *GeoCacheUpsertBulk) UpdateCity() *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *GeoCacheUpsertBulk) ClearCity() *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.ClearCity()
	})
}

// SetRegion sets the "region" field.
func (u *GeoCacheUpsertBulk) SetRegion(v string) *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetRegion(v)
	})
}

// UpdateRegion sets the "region" field to the value that was provided on create.
func (u *GeoCacheUpsertBulk) UpdateRegion() *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateRegion()
	})
}

// ClearRegion clears the value of the "region" field.
func (u *GeoCacheUpsertBulk) ClearRegion() *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.ClearRegion()
	})
}

// SetCountry sets the "country" field.
func (u *GeoCacheUpsertBulk) SetCountry(v string) *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *GeoCacheUpsertBulk) UpdateCountry() *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateCountry()
	})
}

// ClearCountry clears the value of the "country" field.
func (u *GeoCacheUpsertBulk) ClearCountry() *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.ClearCountry()
	})
}

// SetLat sets the "lat" field.
func (u *GeoCacheUpsertBulk) SetLat(v float64) *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *GeoCacheUpsertBulk) AddLat(v float64) *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *GeoCacheUpsertBulk) UpdateLat() *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *GeoCacheUpsertBulk) ClearLat() *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.ClearLat()
	})
}

// SetLng sets the "lng" field.
func (u *GeoCacheUpsertBulk) SetLng(v float64) *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetLng(v)
	})
}

// AddLng adds v to the "lng" field.
func (u *GeoCacheUpsertBulk) AddLng(v float64) *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.AddLng(v)
	})
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *GeoCacheUpsertBulk) UpdateLng() *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateLng()
	})
}

// ClearLng clears the value of the "lng" field.
func (u *GeoCacheUpsertBulk) ClearLng() *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.ClearLng()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GeoCacheUpsertBulk) SetUpdatedAt(v time.Time) *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GeoCacheUpsertBulk) UpdateUpdatedAt() *GeoCacheUpsertBulk {
	return u.Update(func(s *GeoCacheUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GeoCacheUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GeoCacheCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GeoCacheCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GeoCacheUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
