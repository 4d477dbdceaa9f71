// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitor-pulse-api/ent/rawevent"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// RawEventCreate is the builder for creating a RawEvent entity.
type RawEventCreate struct {
	config
	mutation *RawEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *RawEventCreate) SetTenantID(v uuid.UUID) *RawEventCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetUploadID sets the "upload_id" field.
func (_c *RawEventCreate) SetUploadID(v uuid.UUID) *RawEventCreate {
	_c.mutation.SetUploadID(v)
	return _c
}

// SetVisitorKey sets the "visitor_key" field.
func (_c *RawEventCreate) SetVisitorKey(v string) *RawEventCreate {
	_c.mutation.SetVisitorKey(v)
	return _c
}

// SetVisitorUUID sets the "visitor_uuid" field.
func (_c *RawEventCreate) SetVisitorUUID(v string) *RawEventCreate {
	_c.mutation.SetVisitorUUID(v)
	return _c
}

// SetNillableVisitorUUID sets the "visitor_uuid" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableVisitorUUID(v *string) *RawEventCreate {
	if v != nil {
		_c.SetVisitorUUID(*v)
	}
	return _c
}

// SetIP sets the "ip" field.
func (_c *RawEventCreate) SetIP(v string) *RawEventCreate {
	_c.mutation.SetIP(v)
	return _c
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableIP(v *string) *RawEventCreate {
	if v != nil {
		_c.SetIP(*v)
	}
	return _c
}

// SetEventTs sets the "event_ts" field.
func (_c *RawEventCreate) SetEventTs(v time.Time) *RawEventCreate {
	_c.mutation.SetEventTs(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *RawEventCreate) SetEventType(v string) *RawEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableEventType(v *string) *RawEventCreate {
	if v != nil {
		_c.SetEventType(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *RawEventCreate) SetURL(v string) *RawEventCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableURL(v *string) *RawEventCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetReferrerURL sets the "referrer_url" field.
func (_c *RawEventCreate) SetReferrerURL(v string) *RawEventCreate {
	_c.mutation.SetReferrerURL(v)
	return _c
}

// SetNillableReferrerURL sets the "referrer_url" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableReferrerURL(v *string) *RawEventCreate {
	if v != nil {
		_c.SetReferrerURL(*v)
	}
	return _c
}

// SetTimeOnPageMs sets the "time_on_page_ms" field.
func (_c *RawEventCreate) SetTimeOnPageMs(v int) *RawEventCreate {
	_c.mutation.SetTimeOnPageMs(v)
	return _c
}

// SetNillableTimeOnPageMs sets the "time_on_page_ms" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableTimeOnPageMs(v *int) *RawEventCreate {
	if v != nil {
		_c.SetTimeOnPageMs(*v)
	}
	return _c
}

// SetIdleTimeMs sets the "idle_time_ms" field.
func (_c *RawEventCreate) SetIdleTimeMs(v int) *RawEventCreate {
	_c.mutation.SetIdleTimeMs(v)
	return _c
}

// SetNillableIdleTimeMs sets the "idle_time_ms" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableIdleTimeMs(v *int) *RawEventCreate {
	if v != nil {
		_c.SetIdleTimeMs(*v)
	}
	return _c
}

// SetScrollPct sets the "scroll_pct" field.
func (_c *RawEventCreate) SetScrollPct(v float64) *RawEventCreate {
	_c.mutation.SetScrollPct(v)
	return _c
}

// SetNillableScrollPct sets the "scroll_pct" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableScrollPct(v *float64) *RawEventCreate {
	if v != nil {
		_c.SetScrollPct(*v)
	}
	return _c
}

// SetThreshold sets the "threshold" field.
func (_c *RawEventCreate) SetThreshold(v string) *RawEventCreate {
	_c.mutation.SetThreshold(v)
	return _c
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableThreshold(v *string) *RawEventCreate {
	if v != nil {
		_c.SetThreshold(*v)
	}
	return _c
}

// SetElementIdentifier sets the "element_identifier" field.
func (_c *RawEventCreate) SetElementIdentifier(v string) *RawEventCreate {
	_c.mutation.SetElementIdentifier(v)
	return _c
}

// SetNillableElementIdentifier sets the "element_identifier" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableElementIdentifier(v *string) *RawEventCreate {
	if v != nil {
		_c.SetElementIdentifier(*v)
	}
	return _c
}

// SetElementText sets the "element_text" field.
func (_c *RawEventCreate) SetElementText(v string) *RawEventCreate {
	_c.mutation.SetElementText(v)
	return _c
}

// SetNillableElementText sets the "element_text" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableElementText(v *string) *RawEventCreate {
	if v != nil {
		_c.SetElementText(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *RawEventCreate) SetTitle(v string) *RawEventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableTitle(v *string) *RawEventCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetLat sets the "lat" field.
func (_c *RawEventCreate) SetLat(v float64) *RawEventCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableLat(v *float64) *RawEventCreate {
	if v != nil {
		_c.SetLat(*v)
	}
	return _c
}

// SetLng sets the "lng" field.
func (_c *RawEventCreate) SetLng(v float64) *RawEventCreate {
	_c.mutation.SetLng(v)
	return _c
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableLng(v *float64) *RawEventCreate {
	if v != nil {
		_c.SetLng(*v)
	}
	return _c
}

// SetRawRow sets the "raw_row" field.
func (_c *RawEventCreate) SetRawRow(v map[string]string) *RawEventCreate {
	_c.mutation.SetRawRow(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RawEventCreate) SetCreatedAt(v time.Time) *RawEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableCreatedAt(v *time.Time) *RawEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RawEventCreate) SetID(v uuid.UUID) *RawEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RawEventCreate) SetNillableID(v *uuid.UUID) *RawEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RawEventMutation object of the builder.
func (_c *RawEventCreate) Mutation() *RawEventMutation {
	return _c.mutation
}

// Save creates the RawEvent in the database.
func (_c *RawEventCreate) Save(ctx context.Context) (*RawEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RawEventCreate) SaveX(ctx context.Context) *RawEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RawEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rawevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := rawevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RawEventCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "RawEvent.tenant_id"`)}
	}
	if _, ok := _c.mutation.UploadID(); !ok {
		return &ValidationError{Name: "upload_id", err: errors.New(`ent: missing required field "RawEvent.upload_id"`)}
	}
	if _, ok := _c.mutation.VisitorKey(); !ok {
		return &ValidationError{Name: "visitor_key", err: errors.New(`ent: missing required field "RawEvent.visitor_key"`)}
	}
	if v, ok := _c.mutation.VisitorKey(); ok {
		if err := rawevent.VisitorKeyValidator(v); err != nil {
			return &ValidationError{Name: "visitor_key", err: fmt.Errorf(`ent: validator failed for field "RawEvent.visitor_key": %w`, err)}
		}
	}
	if v, ok := _c.mutation.VisitorUUID(); ok {
		if err := rawevent.VisitorUUIDValidator(v); err != nil {
			return &ValidationError{Name: "visitor_uuid", err: fmt.Errorf(`ent: validator failed for field "RawEvent.visitor_uuid": %w`, err)}
		}
	}
	if v, ok := _c.mutation.IP(); ok {
		if err := rawevent.IPValidator(v); err != nil {
			return &ValidationError{Name: "ip", err: fmt.Errorf(`ent: validator failed for field "RawEvent.ip": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventTs(); !ok {
		return &ValidationError{Name: "event_ts", err: errors.New(`ent: missing required field "RawEvent.event_ts"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := rawevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "RawEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Threshold(); ok {
		if err := rawevent.ThresholdValidator(v); err != nil {
			return &ValidationError{Name: "threshold", err: fmt.Errorf(`ent: validator failed for field "RawEvent.threshold": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RawEvent.created_at"`)}
	}
	return nil
}

func (_c *RawEventCreate) sqlSave(ctx context.Context) (*RawEvent, error) {
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

func (_c *RawEventCreate) createSpec() (*RawEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RawEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rawevent.Table, sqlgraph.NewFieldSpec(rawevent.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(rawevent.FieldTenantID, field.TypeUUID, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.UploadID(); ok {
		_spec.SetField(rawevent.FieldUploadID, field.TypeUUID, value)
		_node.UploadID = value
	}
	if value, ok := _c.mutation.VisitorKey(); ok {
		_spec.SetField(rawevent.FieldVisitorKey, field.TypeString, value)
		_node.VisitorKey = value
	}
	if value, ok := _c.mutation.VisitorUUID(); ok {
		_spec.SetField(rawevent.FieldVisitorUUID, field.TypeString, value)
		_node.VisitorUUID = &value
	}
	if value, ok := _c.mutation.IP(); ok {
		_spec.SetField(rawevent.FieldIP, field.TypeString, value)
		_node.IP = &value
	}
	if value, ok := _c.mutation.EventTs(); ok {
		_spec.SetField(rawevent.FieldEventTs, field.TypeTime, value)
		_node.EventTs = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(rawevent.FieldEventType, field.TypeString, value)
		_node.EventType = &value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(rawevent.FieldURL, field.TypeString, value)
		_node.URL = &value
	}
	if value, ok := _c.mutation.ReferrerURL(); ok {
		_spec.SetField(rawevent.FieldReferrerURL, field.TypeString, value)
		_node.ReferrerURL = &value
	}
	if value, ok := _c.mutation.TimeOnPageMs(); ok {
		_spec.SetField(rawevent.FieldTimeOnPageMs, field.TypeInt, value)
		_node.TimeOnPageMs = &value
	}
	if value, ok := _c.mutation.IdleTimeMs(); ok {
		_spec.SetField(rawevent.FieldIdleTimeMs, field.TypeInt, value)
		_node.IdleTimeMs = &value
	}
	if value, ok := _c.mutation.ScrollPct(); ok {
		_spec.SetField(rawevent.FieldScrollPct, field.TypeFloat64, value)
		_node.ScrollPct = &value
	}
	if value, ok := _c.mutation.Threshold(); ok {
		_spec.SetField(rawevent.FieldThreshold, field.TypeString, value)
		_node.Threshold = &value
	}
	if value, ok := _c.mutation.ElementIdentifier(); ok {
		_spec.SetField(rawevent.FieldElementIdentifier, field.TypeString, value)
		_node.ElementIdentifier = &value
	}
	if value, ok := _c.mutation.ElementText(); ok {
		_spec.SetField(rawevent.FieldElementText, field.TypeString, value)
		_node.ElementText = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(rawevent.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(rawevent.FieldLat, field.TypeFloat64, value)
		_node.Lat = &value
	}
	if value, ok := _c.mutation.Lng(); ok {
		_spec.SetField(rawevent.FieldLng, field.TypeFloat64, value)
		_node.Lng = &value
	}
	if value, ok := _c.mutation.RawRow(); ok {
		_spec.SetField(rawevent.FieldRawRow, field.TypeJSON, value)
		_node.RawRow = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rawevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RawEvent.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RawEventUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RawEventCreate) OnConflict(opts ...sql.ConflictOption) *RawEventUpsertOne {
	_c.conflict = opts
	return &RawEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RawEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RawEventCreate) OnConflictColumns(columns ...string) *RawEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RawEventUpsertOne{
		create: _c,
	}
}

type (
	// RawEventUpsertOne is the builder for "upsert"-ing
	//  one RawEvent node.
	RawEventUpsertOne struct {
		create *RawEventCreate
	}

	// RawEventUpsert is the "OnConflict" setter.
	RawEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *RawEventUpsert) SetTenantID(v uuid.UUID) *RawEventUpsert {
	u.Set(rawevent.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateTenantID() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldTenantID)
	return u
}

// SetUploadID sets the "upload_id" field.
func (u *RawEventUpsert) SetUploadID(v uuid.UUID) *RawEventUpsert {
	u.Set(rawevent.FieldUploadID, v)
	return u
}

// UpdateUploadID sets the "upload_id" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateUploadID() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldUploadID)
	return u
}

// SetVisitorKey sets the "visitor_key" field.
func (u *RawEventUpsert) SetVisitorKey(v string) *RawEventUpsert {
	u.Set(rawevent.FieldVisitorKey, v)
	return u
}

// UpdateVisitorKey sets the "visitor_key" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateVisitorKey() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldVisitorKey)
	return u
}

// SetVisitorUUID sets the "visitor_uuid" field.
func (u *RawEventUpsert) SetVisitorUUID(v string) *RawEventUpsert {
	u.Set(rawevent.FieldVisitorUUID, v)
	return u
}

// UpdateVisitorUUID sets the "visitor_uuid" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateVisitorUUID() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldVisitorUUID)
	return u
}

// ClearVisitorUUID clears the value of the "visitor_uuid" field.
func (u *RawEventUpsert) ClearVisitorUUID() *RawEventUpsert {
	u.SetNull(rawevent.FieldVisitorUUID)
	return u
}

// SetIP sets the "ip" field.
func (u *RawEventUpsert) SetIP(v string) *RawEventUpsert {
	u.Set(rawevent.FieldIP, v)
	return u
}

// UpdateIP sets the "ip" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateIP() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldIP)
	return u
}

// ClearIP clears the value of the "ip" field.
func (u *RawEventUpsert) ClearIP() *RawEventUpsert {
	u.SetNull(rawevent.FieldIP)
	return u
}

// SetEventTs sets the "event_ts" field.
func (u *RawEventUpsert) SetEventTs(v time.Time) *RawEventUpsert {
	u.Set(rawevent.FieldEventTs, v)
	return u
}

// UpdateEventTs sets the "event_ts" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateEventTs() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldEventTs)
	return u
}

// SetEventType sets the "event_type" field.
func (u *RawEventUpsert) SetEventType(v string) *RawEventUpsert {
	u.Set(rawevent.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateEventType() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldEventType)
	return u
}

// ClearEventType clears the value of the "event_type" field.
func (u *RawEventUpsert) ClearEventType() *RawEventUpsert {
	u.SetNull(rawevent.FieldEventType)
	return u
}

// SetURL sets the "url" field.
func (u *RawEventUpsert) SetURL(v string) *RawEventUpsert {
	u.Set(rawevent.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateURL() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldURL)
	return u
}

// ClearURL clears the value of the "url" field.
func (u *RawEventUpsert) ClearURL() *RawEventUpsert {
	u.SetNull(rawevent.FieldURL)
	return u
}

// SetReferrerURL sets the "referrer_url" field.
func (u *RawEventUpsert) SetReferrerURL(v string) *RawEventUpsert {
	u.Set(rawevent.FieldReferrerURL, v)
	return u
}

// UpdateReferrerURL sets the "referrer_url" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateReferrerURL() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldReferrerURL)
	return u
}

// ClearReferrerURL clears the value of the "referrer_url" field.
func (u *RawEventUpsert) ClearReferrerURL() *RawEventUpsert {
	u.SetNull(rawevent.FieldReferrerURL)
	return u
}

// SetTimeOnPageMs sets the "time_on_page_ms" field.
func (u *RawEventUpsert) SetTimeOnPageMs(v int) *RawEventUpsert {
	u.Set(rawevent.FieldTimeOnPageMs, v)
	return u
}

// UpdateTimeOnPageMs sets the "time_on_page_ms" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateTimeOnPageMs() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldTimeOnPageMs)
	return u
}

// AddTimeOnPageMs adds v to the "time_on_page_ms" field.
func (u *RawEventUpsert) AddTimeOnPageMs(v int) *RawEventUpsert {
	u.Add(rawevent.FieldTimeOnPageMs, v)
	return u
}

// ClearTimeOnPageMs clears the value of the "time_on_page_ms" field.
func (u *RawEventUpsert) ClearTimeOnPageMs() *RawEventUpsert {
	u.SetNull(rawevent.FieldTimeOnPageMs)
	return u
}

// SetIdleTimeMs sets the "idle_time_ms" field.
func (u *RawEventUpsert) SetIdleTimeMs(v int) *RawEventUpsert {
	u.Set(rawevent.FieldIdleTimeMs, v)
	return u
}

// UpdateIdleTimeMs sets the "idle_time_ms" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateIdleTimeMs() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldIdleTimeMs)
	return u
}

// AddIdleTimeMs adds v to the "idle_time_ms" field.
func (u *RawEventUpsert) AddIdleTimeMs(v int) *RawEventUpsert {
	u.Add(rawevent.FieldIdleTimeMs, v)
	return u
}

// ClearIdleTimeMs clears the value of the "idle_time_ms" field.
func (u *RawEventUpsert) ClearIdleTimeMs() *RawEventUpsert {
	u.SetNull(rawevent.FieldIdleTimeMs)
	return u
}

// SetScrollPct sets the "scroll_pct" field.
func (u *RawEventUpsert) SetScrollPct(v float64) *RawEventUpsert {
	u.Set(rawevent.FieldScrollPct, v)
	return u
}

// UpdateScrollPct sets the "scroll_pct" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateScrollPct() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldScrollPct)
	return u
}

// AddScrollPct adds v to the "scroll_pct" field.
func (u *RawEventUpsert) AddScrollPct(v float64) *RawEventUpsert {
	u.Add(rawevent.FieldScrollPct, v)
	return u
}

// ClearScrollPct clears the value of the "scroll_pct" field.
func (u *RawEventUpsert) ClearScrollPct() *RawEventUpsert {
	u.SetNull(rawevent.FieldScrollPct)
	return u
}

// SetThreshold sets the "threshold" field.
func (u *RawEventUpsert) SetThreshold(v string) *RawEventUpsert {
	u.Set(rawevent.FieldThreshold, v)
	return u
}

// UpdateThreshold sets the "threshold" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateThreshold() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldThreshold)
	return u
}

// ClearThreshold clears the value of the "threshold" field.
func (u *RawEventUpsert) ClearThreshold() *RawEventUpsert {
	u.SetNull(rawevent.FieldThreshold)
	return u
}

// SetElementIdentifier sets the "element_identifier" field.
func (u *RawEventUpsert) SetElementIdentifier(v string) *RawEventUpsert {
	u.Set(rawevent.FieldElementIdentifier, v)
	return u
}

// UpdateElementIdentifier sets the "element_identifier" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateElementIdentifier() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldElementIdentifier)
	return u
}

// ClearElementIdentifier clears the value of the "element_identifier" field.
func (u *RawEventUpsert) ClearElementIdentifier() *RawEventUpsert {
	u.SetNull(rawevent.FieldElementIdentifier)
	return u
}

// SetElementText sets the "element_text" field.
func (u *RawEventUpsert) SetElementText(v string) *RawEventUpsert {
	u.Set(rawevent.FieldElementText, v)
	return u
}

// UpdateElementText sets the "element_text" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateElementText() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldElementText)
	return u
}

// ClearElementText clears the value of the "element_text" field.
func (u *RawEventUpsert) ClearElementText() *RawEventUpsert {
	u.SetNull(rawevent.FieldElementText)
	return u
}

// SetTitle sets the "title" field.
func (u *RawEventUpsert) SetTitle(v string) *RawEventUpsert {
	u.Set(rawevent.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateTitle() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *RawEventUpsert) ClearTitle() *RawEventUpsert {
	u.SetNull(rawevent.FieldTitle)
	return u
}

// SetLat sets the "lat" field.
func (u *RawEventUpsert) SetLat(v float64) *RawEventUpsert {
	u.Set(rawevent.FieldLat, v)
	return u
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateLat() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldLat)
	return u
}

// AddLat adds v to the "lat" field.
func (u *RawEventUpsert) AddLat(v float64) *RawEventUpsert {
	u.Add(rawevent.FieldLat, v)
	return u
}

// ClearLat clears the value of the "lat" field.
func (u *RawEventUpsert) ClearLat() *RawEventUpsert {
	u.SetNull(rawevent.FieldLat)
	return u
}

// SetLng sets the "lng" field.
func (u *RawEventUpsert) SetLng(v float64) *RawEventUpsert {
	u.Set(rawevent.FieldLng, v)
	return u
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateLng() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldLng)
	return u
}

// AddLng adds v to the "lng" field.
func (u *RawEventUpsert) AddLng(v float64) *RawEventUpsert {
	u.Add(rawevent.FieldLng, v)
	return u
}

// ClearLng clears the value of the "lng" field.
func (u *RawEventUpsert) ClearLng() *RawEventUpsert {
	u.SetNull(rawevent.FieldLng)
	return u
}

// SetRawRow sets the "raw_row" field.
func (u *RawEventUpsert) SetRawRow(v map[string]string) *RawEventUpsert {
	u.Set(rawevent.FieldRawRow, v)
	return u
}

// UpdateRawRow sets the "raw_row" field to the value that was provided on create.
func (u *RawEventUpsert) UpdateRawRow() *RawEventUpsert {
	u.SetExcluded(rawevent.FieldRawRow)
	return u
}

// ClearRawRow clears the value of the "raw_row" field.
func (u *RawEventUpsert) ClearRawRow() *RawEventUpsert {
	u.SetNull(rawevent.FieldRawRow)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RawEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rawevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RawEventUpsertOne) UpdateNewValues() *RawEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(rawevent.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(rawevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RawEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RawEventUpsertOne) Ignore() *RawEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RawEventUpsertOne) DoNothing() *RawEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RawEventCreate.OnConflict
// documentation for more info.
func (u *RawEventUpsertOne) Update(set func(*RawEventUpsert)) *RawEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RawEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *RawEventUpsertOne) SetTenantID(v uuid.UUID) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateTenantID() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateTenantID()
	})
}

// SetUploadID sets the "upload_id" field.
func (u *RawEventUpsertOne) SetUploadID(v uuid.UUID) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetUploadID(v)
	})
}

// UpdateUploadID sets the "upload_id" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateUploadID() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateUploadID()
	})
}

// SetVisitorKey sets the "visitor_key" field.
func (u *RawEventUpsertOne) SetVisitorKey(v string) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetVisitorKey(v)
	})
}

// UpdateVisitorKey sets the "visitor_key" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateVisitorKey() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateVisitorKey()
	})
}

// SetVisitorUUID sets the "visitor_uuid" field.
func (u *RawEventUpsertOne) SetVisitorUUID(v string) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetVisitorUUID(v)
	})
}

// UpdateVisitorUUID sets the "visitor_uuid" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateVisitorUUID() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateVisitorUUID()
	})
}

// ClearVisitorUUID clears the value of the "visitor_uuid" field.
func (u *RawEventUpsertOne) ClearVisitorUUID() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearVisitorUUID()
	})
}

// SetIP sets the "ip" field.
func (u *RawEventUpsertOne) SetIP(v string) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetIP(v)
	})
}

// UpdateIP sets the "ip" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateIP() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateIP()
	})
}

// ClearIP clears the value of the "ip" field.
func (u *RawEventUpsertOne) ClearIP() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearIP()
	})
}

// SetEventTs sets the "event_ts" field.
func (u *RawEventUpsertOne) SetEventTs(v time.Time) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetEventTs(v)
	})
}

// UpdateEventTs sets the "event_ts" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateEventTs() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateEventTs()
	})
}

// SetEventType sets the "event_type" field.
func (u *RawEventUpsertOne) SetEventType(v string) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateEventType() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateEventType()
	})
}

// ClearEventType clears the value of the "event_type" field.
func (u *RawEventUpsertOne) ClearEventType() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearEventType()
	})
}

// SetURL sets the "url" field.
func (u *RawEventUpsertOne) SetURL(v string) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateURL() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateURL()
	})
}

// ClearURL clears the value of the "url" field.
func (u *RawEventUpsertOne) ClearURL() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearURL()
	})
}

// SetReferrerURL sets the "referrer_url" field.
func (u *RawEventUpsertOne) SetReferrerURL(v string) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetReferrerURL(v)
	})
}

// UpdateReferrerURL sets the "referrer_url" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateReferrerURL() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateReferrerURL()
	})
}

// ClearReferrerURL clears the value of the "referrer_url" field.
func (u *RawEventUpsertOne) ClearReferrerURL() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearReferrerURL()
	})
}

// SetTimeOnPageMs sets the "time_on_page_ms" field.
func (u *RawEventUpsertOne) SetTimeOnPageMs(v int) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetTimeOnPageMs(v)
	})
}

// AddTimeOnPageMs adds v to the "time_on_page_ms" field.
func (u *RawEventUpsertOne) AddTimeOnPageMs(v int) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.AddTimeOnPageMs(v)
	})
}

// UpdateTimeOnPageMs sets the "time_on_page_ms" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateTimeOnPageMs() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateTimeOnPageMs()
	})
}

// ClearTimeOnPageMs clears the value of the "time_on_page_ms" field.
func (u *RawEventUpsertOne) ClearTimeOnPageMs() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearTimeOnPageMs()
	})
}

// SetIdleTimeMs sets the "idle_time_ms" field.
func (u *RawEventUpsertOne) SetIdleTimeMs(v int) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetIdleTimeMs(v)
	})
}

// AddIdleTimeMs adds v to the "idle_time_ms" field.
func (u *RawEventUpsertOne) AddIdleTimeMs(v int) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.AddIdleTimeMs(v)
	})
}

// UpdateIdleTimeMs sets the "idle_time_ms" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateIdleTimeMs() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateIdleTimeMs()
	})
}

// ClearIdleTimeMs clears the value of the "idle_time_ms" field.
func (u *RawEventUpsertOne) ClearIdleTimeMs() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearIdleTimeMs()
	})
}

// SetScrollPct sets the "scroll_pct" field.
func (u *RawEventUpsertOne) SetScrollPct(v float64) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetScrollPct(v)
	})
}

// AddScrollPct adds v to the "scroll_pct" field.
func (u *RawEventUpsertOne) AddScrollPct(v float64) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.AddScrollPct(v)
	})
}

// UpdateScrollPct sets the "scroll_pct" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateScrollPct() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateScrollPct()
	})
}

// ClearScrollPct clears the value of the "scroll_pct" field.
func (u *RawEventUpsertOne) ClearScrollPct() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearScrollPct()
	})
}

// SetThreshold sets the "threshold" field.
func (u *RawEventUpsertOne) SetThreshold(v string) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetThreshold(v)
	})
}

// UpdateThreshold sets the "threshold" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateThreshold() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateThreshold()
	})
}

// ClearThreshold clears the value of the "threshold" field.
func (u *RawEventUpsertOne) ClearThreshold() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearThreshold()
	})
}

// SetElementIdentifier sets the "element_identifier" field.
func (u *RawEventUpsertOne) SetElementIdentifier(v string) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetElementIdentifier(v)
	})
}

// UpdateElementIdentifier sets the "element_identifier" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateElementIdentifier() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateElementIdentifier()
	})
}

// ClearElementIdentifier clears the value of the "element_identifier" field.
func (u *RawEventUpsertOne) ClearElementIdentifier() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearElementIdentifier()
	})
}

// SetElementText sets the "element_text" field.
func (u *RawEventUpsertOne) SetElementText(v string) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetElementText(v)
	})
}

// UpdateElementText sets the "element_text" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateElementText() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateElementText()
	})
}

// ClearElementText clears the value of the "element_text" field.
func (u *RawEventUpsertOne) ClearElementText() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearElementText()
	})
}

// SetTitle sets the "title" field.
func (u *RawEventUpsertOne) SetTitle(v string) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateTitle() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *RawEventUpsertOne) ClearTitle() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearTitle()
	})
}

// SetLat sets the "lat" field.
func (u *RawEventUpsertOne) SetLat(v float64) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *RawEventUpsertOne) AddLat(v float64) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateLat() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *RawEventUpsertOne) ClearLat() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearLat()
	})
}

// SetLng sets the "lng" field.
func (u *RawEventUpsertOne) SetLng(v float64) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetLng(v)
	})
}

// AddLng adds v to the "lng" field.
func (u *RawEventUpsertOne) AddLng(v float64) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.AddLng(v)
	})
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateLng() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateLng()
	})
}

// ClearLng clears the value of the "lng" field.
func (u *RawEventUpsertOne) ClearLng() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearLng()
	})
}

// SetRawRow sets the "raw_row" field.
func (u *RawEventUpsertOne) SetRawRow(v map[string]string) *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.SetRawRow(v)
	})
}

// UpdateRawRow sets the "raw_row" field to the value that was provided on create.
func (u *RawEventUpsertOne) UpdateRawRow() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateRawRow()
	})
}

// ClearRawRow clears the value of the "raw_row" field.
func (u *RawEventUpsertOne) ClearRawRow() *RawEventUpsertOne {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearRawRow()
	})
}

// Exec executes the query.
func (u *RawEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RawEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RawEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RawEventUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RawEventUpsertOne.ID is not supported by MySQL driver. Use RawEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RawEventUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RawEventCreateBulk is the builder for creating many RawEvent entities in bulk.
type RawEventCreateBulk struct {
	config
	err      error
	builders []*RawEventCreate
	conflict []sql.ConflictOption
}

// Save creates the RawEvent entities in the database.
func (_c *RawEventCreateBulk) Save(ctx context.Context) ([]*RawEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RawEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RawEventMutation)
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
func (_c *RawEventCreateBulk) SaveX(ctx context.Context) []*RawEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RawEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RawEventUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RawEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *RawEventUpsertBulk {
	_c.conflict = opts
	return &RawEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RawEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RawEventCreateBulk) OnConflictColumns(columns ...string) *RawEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RawEventUpsertBulk{
		create: _c,
	}
}

// RawEventUpsertBulk is the builder for "upsert"-ing
// a bulk of RawEvent nodes.
type RawEventUpsertBulk struct {
	create *RawEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RawEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rawevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RawEventUpsertBulk) UpdateNewValues() *RawEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(rawevent.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(rawevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RawEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RawEventUpsertBulk) Ignore() *RawEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RawEventUpsertBulk) DoNothing() *RawEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RawEventCreateBulk.OnConflict
// documentation for more info.
func (u *RawEventUpsertBulk) Update(set func(*RawEventUpsert)) *RawEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RawEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *RawEventUpsertBulk) SetTenantID(v uuid.UUID) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateTenantID() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateTenantID()
	})
}

// SetUploadID sets the "upload_id" field.
func (u *RawEventUpsertBulk) SetUploadID(v uuid.UUID) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetUploadID(v)
	})
}

// UpdateUploadID sets the "upload_id" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateUploadID() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateUploadID()
	})
}

// SetVisitorKey sets the "visitor_key" field.
func (u *RawEventUpsertBulk) SetVisitorKey(v string) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetVisitorKey(v)
	})
}

// UpdateVisitorKey sets the "visitor_key" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateVisitorKey() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateVisitorKey()
	})
}

// SetVisitorUUID sets the "visitor_uuid" field.
func (u *RawEventUpsertBulk) SetVisitorUUID(v string) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetVisitorUUID(v)
	})
}

// UpdateVisitorUUID sets the "visitor_uuid" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateVisitorUUID() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateVisitorUUID()
	})
}

// ClearVisitorUUID clears the value of the "visitor_uuid" field.
func (u *RawEventUpsertBulk) ClearVisitorUUID() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearVisitorUUID()
	})
}

// SetIP sets the "ip" field.
func (u *RawEventUpsertBulk) SetIP(v string) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetIP(v)
	})
}

// UpdateIP sets the "ip" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateIP() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateIP()
	})
}

// ClearIP clears the value of the "ip" field.
func (u *RawEventUpsertBulk) ClearIP() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearIP()
	})
}

// SetEventTs sets the "event_ts" field.
func (u *RawEventUpsertBulk) SetEventTs(v time.Time) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetEventTs(v)
	})
}

// UpdateEventTs sets the "event_ts" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateEventTs() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateEventTs()
	})
}

// SetEventType sets the "event_type" field.
func (u *RawEventUpsertBulk) SetEventType(v string) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateEventType() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateEventType()
	})
}

// ClearEventType clears the value of the "event_type" field.
func (u *RawEventUpsertBulk) ClearEventType() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearEventType()
	})
}

// SetURL sets the "url" field.
func (u *RawEventUpsertBulk) SetURL(v string) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateURL() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateURL()
	})
}

// ClearURL clears the value of the "url" field.
func (u *RawEventUpsertBulk) ClearURL() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearURL()
	})
}

// SetReferrerURL sets the "referrer_url" field.
func (u *RawEventUpsertBulk) SetReferrerURL(v string) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetReferrerURL(v)
	})
}

// UpdateReferrerURL sets the "referrer_url" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateReferrerURL() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateReferrerURL()
	})
}

// ClearReferrerURL clears the value of the "referrer_url" field.
func (u *RawEventUpsertBulk) ClearReferrerURL() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearReferrerURL()
	})
}

// SetTimeOnPageMs sets the "time_on_page_ms" field.
func (u *RawEventUpsertBulk) SetTimeOnPageMs(v int) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetTimeOnPageMs(v)
	})
}

// AddTimeOnPageMs adds v to the "time_on_page_ms" field.
func (u *RawEventUpsertBulk) AddTimeOnPageMs(v int) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.AddTimeOnPageMs(v)
	})
}

// UpdateTimeOnPageMs sets the "time_on_page_ms" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateTimeOnPageMs() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateTimeOnPageMs()
	})
}

// ClearTimeOnPageMs clears the value of the "time_on_page_ms" field.
func (u *RawEventUpsertBulk) ClearTimeOnPageMs() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearTimeOnPageMs()
	})
}

// SetIdleTimeMs sets the "idle_time_ms" field.
func (u *RawEventUpsertBulk) SetIdleTimeMs(v int) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetIdleTimeMs(v)
	})
}

// AddIdleTimeMs adds v to the "idle_time_ms" field.
func (u *RawEventUpsertBulk) AddIdleTimeMs(v int) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.AddIdleTimeMs(v)
	})
}

// UpdateIdleTimeMs sets the "idle_time_ms" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateIdleTimeMs() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateIdleTimeMs()
	})
}

// ClearIdleTimeMs clears the value of the "idle_time_ms" field.
func (u *RawEventUpsertBulk) ClearIdleTimeMs() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearIdleTimeMs()
	})
}

// SetScrollPct sets the "scroll_pct" field.
func (u *RawEventUpsertBulk) SetScrollPct(v float64) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetScrollPct(v)
	})
}

// AddScrollPct adds v to the "scroll_pct" field.
func (u *RawEventUpsertBulk) AddScrollPct(v float64) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.AddScrollPct(v)
	})
}

// UpdateScrollPct sets the "scroll_pct" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateScrollPct() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateScrollPct()
	})
}

// ClearScrollPct clears the value of the "scroll_pct" field.
func (u *RawEventUpsertBulk) ClearScrollPct() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearScrollPct()
	})
}

// SetThreshold sets the "threshold" field.
func (u *RawEventUpsertBulk) SetThreshold(v string) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetThreshold(v)
	})
}

// UpdateThreshold sets the "threshold" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateThreshold() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateThreshold()
	})
}

// ClearThreshold clears the value of the "threshold" field.
func (u *RawEventUpsertBulk) ClearThreshold() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearThreshold()
	})
}

// SetElementIdentifier sets the "element_identifier" field.
func (u *RawEventUpsertBulk) SetElementIdentifier(v string) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetElementIdentifier(v)
	})
}

// UpdateElementIdentifier sets the "element_identifier" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateElementIdentifier() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateElementIdentifier()
	})
}

// ClearElementIdentifier clears the value of the "element_identifier" field.
func (u *RawEventUpsertBulk) ClearElementIdentifier() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearElementIdentifier()
	})
}

// SetElementText sets the "element_text" field.
func (u *RawEventUpsertBulk) SetElementText(v string) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetElementText(v)
	})
}

// UpdateElementText sets the "element_text" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateElementText() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateElementText()
	})
}

// ClearElementText clears the value of the "element_text" field.
func (u *RawEventUpsertBulk) ClearElementText() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearElementText()
	})
}

// SetTitle sets the "title" field.
func (u *RawEventUpsertBulk) SetTitle(v string) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateTitle() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *RawEventUpsertBulk) ClearTitle() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearTitle()
	})
}

// SetLat sets the "lat" field.
func (u *RawEventUpsertBulk) SetLat(v float64) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *RawEventUpsertBulk) AddLat(v float64) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateLat() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *RawEventUpsertBulk) ClearLat() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearLat()
	})
}

// SetLng sets the "lng" field.
func (u *RawEventUpsertBulk) SetLng(v float64) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetLng(v)
	})
}

// AddLng adds v to the "lng" field.
func (u *RawEventUpsertBulk) AddLng(v float64) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.AddLng(v)
	})
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateLng() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateLng()
	})
}

// ClearLng clears the value of the "lng" field.
func (u *RawEventUpsertBulk) ClearLng() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearLng()
	})
}

// SetRawRow sets the "raw_row" field.
func (u *RawEventUpsertBulk) SetRawRow(v map[string]string) *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.SetRawRow(v)
	})
}

// UpdateRawRow sets the "raw_row" field to the value that was provided on create.
func (u *RawEventUpsertBulk) UpdateRawRow() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.UpdateRawRow()
	})
}

// ClearRawRow clears the value of the "raw_row" field.
func (u *RawEventUpsertBulk) ClearRawRow() *RawEventUpsertBulk {
	return u.Update(func(s *RawEventUpsert) {
		s.ClearRawRow()
	})
}

// Exec executes the query.
func (u *RawEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RawEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RawEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RawEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
