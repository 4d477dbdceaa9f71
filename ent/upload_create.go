// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitor-pulse-api/ent/tenant"
	"visitor-pulse-api/ent/upload"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// UploadCreate is the builder for creating a Upload entity.
type UploadCreate struct {
	config
	mutation *UploadMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *UploadCreate) SetTenantID(v uuid.UUID) *UploadCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *UploadCreate) SetFilename(v string) *UploadCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_c *UploadCreate) SetNillableFilename(v *string) *UploadCreate {
	if v != nil {
		_c.SetFilename(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UploadCreate) SetStatus(v string) *UploadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UploadCreate) SetNillableStatus(v *string) *UploadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRowCount sets the "row_count" field.
func (_c *UploadCreate) SetRowCount(v int) *UploadCreate {
	_c.mutation.SetRowCount(v)
	return _c
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_c *UploadCreate) SetNillableRowCount(v *int) *UploadCreate {
	if v != nil {
		_c.SetRowCount(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *UploadCreate) SetError(v string) *UploadCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *UploadCreate) SetNillableError(v *string) *UploadCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *UploadCreate) SetProcessedAt(v time.Time) *UploadCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *UploadCreate) SetNillableProcessedAt(v *time.Time) *UploadCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UploadCreate) SetCreatedAt(v time.Time) *UploadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UploadCreate) SetNillableCreatedAt(v *time.Time) *UploadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UploadCreate) SetID(v uuid.UUID) *UploadCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UploadCreate) SetNillableID(v *uuid.UUID) *UploadCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *UploadCreate) SetTenant(v *Tenant) *UploadCreate {
	return _c.SetTenantID(v.ID)
}

// Mutation returns the UploadMutation object of the builder.
func (_c *UploadCreate) Mutation() *UploadMutation {
	return _c.mutation
}

// Save creates the Upload in the database.
func (_c *UploadCreate) Save(ctx context.Context) (*Upload, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadCreate) SaveX(ctx context.Context) *Upload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := upload.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RowCount(); !ok {
		v := upload.DefaultRowCount
		_c.mutation.SetRowCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := upload.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := upload.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Upload.tenant_id"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := upload.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Upload.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Upload.status"`)}
	}
	if _, ok := _c.mutation.RowCount(); !ok {
		return &ValidationError{Name: "row_count", err: errors.New(`ent: missing required field "Upload.row_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Upload.created_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "Upload.tenant"`)}
	}
	return nil
}

func (_c *UploadCreate) sqlSave(ctx context.Context) (*Upload, error) {
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

func (_c *UploadCreate) createSpec() (*Upload, *sqlgraph.CreateSpec) {
	var (
		_node = &Upload{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(upload.Table, sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(upload.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(upload.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RowCount(); ok {
		_spec.SetField(upload.FieldRowCount, field.TypeInt, value)
		_node.RowCount = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(upload.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(upload.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(upload.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   upload.TenantTable,
			Columns: []string{upload.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Upload.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UploadUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *UploadCreate) OnConflict(opts ...sql.ConflictOption) *UploadUpsertOne {
	_c.conflict = opts
	return &UploadUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Upload.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UploadCreate) OnConflictColumns(columns ...string) *UploadUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UploadUpsertOne{
		create: _c,
	}
}

type (
	// UploadUpsertOne is the builder for "upsert"-ing
	//  one Upload node.
	UploadUpsertOne struct {
		create *UploadCreate
	}

	// UploadUpsert is the "OnConflict" setter.
	UploadUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *UploadUpsert) SetTenantID(v uuid.UUID) *UploadUpsert {
	u.Set(upload.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *UploadUpsert) UpdateTenantID() *UploadUpsert {
	u.SetExcluded(upload.FieldTenantID)
	return u
}

// SetFilename sets the "filename" field.
func (u *UploadUpsert) SetFilename(v string) *UploadUpsert {
	u.Set(upload.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *UploadUpsert) UpdateFilename() *UploadUpsert {
	u.SetExcluded(upload.FieldFilename)
	return u
}

// ClearFilename clears the value of the "filename" field.
func (u *UploadUpsert) ClearFilename() *UploadUpsert {
	u.SetNull(upload.FieldFilename)
	return u
}

// SetStatus sets the "status" field.
func (u *UploadUpsert) SetStatus(v string) *UploadUpsert {
	u.Set(upload.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UploadUpsert) UpdateStatus() *UploadUpsert {
	u.SetExcluded(upload.FieldStatus)
	return u
}

// SetRowCount sets the "row_count" field.
func (u *UploadUpsert) SetRowCount(v int) *UploadUpsert {
	u.Set(upload.FieldRowCount, v)
	return u
}

// UpdateRowCount sets the "row_count" field to the value that was provided on create.
func (u *UploadUpsert) UpdateRowCount() *UploadUpsert {
	u.SetExcluded(upload.FieldRowCount)
	return u
}

// AddRowCount adds v to the "row_count" field.
func (u *UploadUpsert) AddRowCount(v int) *UploadUpsert {
	u.Add(upload.FieldRowCount, v)
	return u
}

// SetError sets the "error" field.
func (u *UploadUpsert) SetError(v string) *UploadUpsert {
	u.Set(upload.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *UploadUpsert) UpdateError() *UploadUpsert {
	u.SetExcluded(upload.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *UploadUpsert) ClearError() *UploadUpsert {
	u.SetNull(upload.FieldError)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *UploadUpsert) SetProcessedAt(v time.Time) *UploadUpsert {
	u.Set(upload.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *UploadUpsert) UpdateProcessedAt() *UploadUpsert {
	u.SetExcluded(upload.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *UploadUpsert) ClearProcessedAt() *UploadUpsert {
	u.SetNull(upload.FieldProcessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Upload.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(upload.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UploadUpsertOne) UpdateNewValues() *UploadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(upload.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(upload.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Upload.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UploadUpsertOne) Ignore() *UploadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UploadUpsertOne) DoNothing() *UploadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UploadCreate.OnConflict
// documentation for more info.
func (u *UploadUpsertOne) Update(set func(*UploadUpsert)) *UploadUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UploadUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *UploadUpsertOne) SetTenantID(v uuid.UUID) *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *UploadUpsertOne) UpdateTenantID() *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.UpdateTenantID()
	})
}

// SetFilename sets the "filename" field.
func (u *UploadUpsertOne) SetFilename(v string) *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *UploadUpsertOne) UpdateFilename() *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.UpdateFilename()
	})
}

// ClearFilename clears the value of the "filename" field.
func (u *UploadUpsertOne) ClearFilename() *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.ClearFilename()
	})
}

// SetStatus sets the "status" field.
func (u *UploadUpsertOne) SetStatus(v string) *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UploadUpsertOne) UpdateStatus() *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.UpdateStatus()
	})
}

// SetRowCount sets the "row_count" field.
func (u *UploadUpsertOne) SetRowCount(v int) *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.SetRowCount(v)
	})
}

// AddRowCount adds v to the "row_count" field.
func (u *UploadUpsertOne) AddRowCount(v int) *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.AddRowCount(v)
	})
}

// UpdateRowCount sets the "row_count" field to the value that was provided on create.
func (u *UploadUpsertOne) UpdateRowCount() *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.UpdateRowCount()
	})
}

// SetError sets the "error" field.
func (u *UploadUpsertOne) SetError(v string) *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *UploadUpsertOne) UpdateError() *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *UploadUpsertOne) ClearError() *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.ClearError()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *UploadUpsertOne) SetProcessedAt(v time.Time) *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *UploadUpsertOne) UpdateProcessedAt() *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *UploadUpsertOne) ClearProcessedAt() *UploadUpsertOne {
	return u.Update(func(s *UploadUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *UploadUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UploadCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UploadUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UploadUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UploadUpsertOne.ID is not supported by MySQL driver. Use UploadUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UploadUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UploadCreateBulk is the builder for creating many Upload entities in bulk.
type UploadCreateBulk struct {
	config
	err      error
	builders []*UploadCreate
	conflict []sql.ConflictOption
}

// Save creates the Upload entities in the database.
func (_c *UploadCreateBulk) Save(ctx context.Context) ([]*Upload, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Upload, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadMutation)
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
func (_c *UploadCreateBulk) SaveX(ctx context.Context) []*Upload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Upload.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UploadUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *UploadCreateBulk) OnConflict(opts ...sql.ConflictOption) *UploadUpsertBulk {
	_c.conflict = opts
	return &UploadUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Upload.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UploadCreateBulk) OnConflictColumns(columns ...string) *UploadUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UploadUpsertBulk{
		create: _c,
	}
}

// UploadUpsertBulk is the builder for "upsert"-ing
// a bulk of Upload nodes.
type UploadUpsertBulk struct {
	create *UploadCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Upload.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(upload.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UploadUpsertBulk) UpdateNewValues() *UploadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(upload.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(upload.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Upload.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UploadUpsertBulk) Ignore() *UploadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UploadUpsertBulk) DoNothing() *UploadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UploadCreateBulk.OnConflict
// documentation for more info.
func (u *UploadUpsertBulk) Update(set func(*UploadUpsert)) *UploadUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UploadUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *UploadUpsertBulk) SetTenantID(v uuid.UUID) *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *UploadUpsertBulk) UpdateTenantID() *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.UpdateTenantID()
	})
}

// SetFilename sets the "filename" field.
func (u *UploadUpsertBulk) SetFilename(v string) *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *UploadUpsertBulk) UpdateFilename() *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.UpdateFilename()
	})
}

// ClearFilename clears the value of the "filename" field.
func (u *UploadUpsertBulk) ClearFilename() *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.ClearFilename()
	})
}

// SetStatus sets the "status" field.
func (u *UploadUpsertBulk) SetStatus(v string) *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UploadUpsertBulk) UpdateStatus() *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.UpdateStatus()
	})
}

// SetRowCount sets the "row_count" field.
func (u *UploadUpsertBulk) SetRowCount(v int) *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.SetRowCount(v)
	})
}

// AddRowCount adds v to the "row_count" field.
func (u *UploadUpsertBulk) AddRowCount(v int) *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.AddRowCount(v)
	})
}

// UpdateRowCount sets the "row_count" field to the value that was provided on create.
func (u *UploadUpsertBulk) UpdateRowCount() *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.UpdateRowCount()
	})
}

// SetError sets the "error" field.
func (u *UploadUpsertBulk) SetError(v string) *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *UploadUpsertBulk) UpdateError() *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *UploadUpsertBulk) ClearError() *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.ClearError()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *UploadUpsertBulk) SetProcessedAt(v time.Time) *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *UploadUpsertBulk) UpdateProcessedAt() *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *UploadUpsertBulk) ClearProcessedAt() *UploadUpsertBulk {
	return u.Update(func(s *UploadUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *UploadUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UploadCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UploadCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UploadUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
