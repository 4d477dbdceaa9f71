// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitor-pulse-api/ent/visitorprofile"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// VisitorProfileCreate is the builder for creating a VisitorProfile entity.
type VisitorProfileCreate struct {
	config
	mutation *VisitorProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *VisitorProfileCreate) SetTenantID(v uuid.UUID) *VisitorProfileCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *VisitorProfileCreate) SetWindowStart(v time.Time) *VisitorProfileCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetWindowEnd sets the "window_end" field.
func (_c *VisitorProfileCreate) SetWindowEnd(v time.Time) *VisitorProfileCreate {
	_c.mutation.SetWindowEnd(v)
	return _c
}

// SetVisitorKey sets the "visitor_key" field.
func (_c *VisitorProfileCreate) SetVisitorKey(v string) *VisitorProfileCreate {
	_c.mutation.SetVisitorKey(v)
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *VisitorProfileCreate) SetFirstSeenAt(v time.Time) *VisitorProfileCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *VisitorProfileCreate) SetLastSeenAt(v time.Time) *VisitorProfileCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetVisitsCount sets the "visits_count" field.
func (_c *VisitorProfileCreate) SetVisitsCount(v int) *VisitorProfileCreate {
	_c.mutation.SetVisitsCount(v)
	return _c
}

// SetNillableVisitsCount sets the "visits_count" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableVisitsCount(v *int) *VisitorProfileCreate {
	if v != nil {
		_c.SetVisitsCount(*v)
	}
	return _c
}

// SetTotalEvents sets the "total_events" field.
func (_c *VisitorProfileCreate) SetTotalEvents(v int) *VisitorProfileCreate {
	_c.mutation.SetTotalEvents(v)
	return _c
}

// SetNillableTotalEvents sets the "total_events" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableTotalEvents(v *int) *VisitorProfileCreate {
	if v != nil {
		_c.SetTotalEvents(*v)
	}
	return _c
}

// SetPageViews sets the "page_views" field.
func (_c *VisitorProfileCreate) SetPageViews(v int) *VisitorProfileCreate {
	_c.mutation.SetPageViews(v)
	return _c
}

// SetNillablePageViews sets the "page_views" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillablePageViews(v *int) *VisitorProfileCreate {
	if v != nil {
		_c.SetPageViews(*v)
	}
	return _c
}

// SetUniquePagesCount sets the "unique_pages_count" field.
func (_c *VisitorProfileCreate) SetUniquePagesCount(v int) *VisitorProfileCreate {
	_c.mutation.SetUniquePagesCount(v)
	return _c
}

// SetNillableUniquePagesCount sets the "unique_pages_count" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableUniquePagesCount(v *int) *VisitorProfileCreate {
	if v != nil {
		_c.SetUniquePagesCount(*v)
	}
	return _c
}

// SetTotalTimeOnPageMs sets the "total_time_on_page_ms" field.
func (_c *VisitorProfileCreate) SetTotalTimeOnPageMs(v int) *VisitorProfileCreate {
	_c.mutation.SetTotalTimeOnPageMs(v)
	return _c
}

// SetNillableTotalTimeOnPageMs sets the "total_time_on_page_ms" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableTotalTimeOnPageMs(v *int) *VisitorProfileCreate {
	if v != nil {
		_c.SetTotalTimeOnPageMs(*v)
	}
	return _c
}

// SetAvgTimeOnPageMs sets the "avg_time_on_page_ms" field.
func (_c *VisitorProfileCreate) SetAvgTimeOnPageMs(v float64) *VisitorProfileCreate {
	_c.mutation.SetAvgTimeOnPageMs(v)
	return _c
}

// SetNillableAvgTimeOnPageMs sets the "avg_time_on_page_ms" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableAvgTimeOnPageMs(v *float64) *VisitorProfileCreate {
	if v != nil {
		_c.SetAvgTimeOnPageMs(*v)
	}
	return _c
}

// SetMaxScrollPercentage sets the "max_scroll_percentage" field.
func (_c *VisitorProfileCreate) SetMaxScrollPercentage(v float64) *VisitorProfileCreate {
	_c.mutation.SetMaxScrollPercentage(v)
	return _c
}

// SetNillableMaxScrollPercentage sets the "max_scroll_percentage" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableMaxScrollPercentage(v *float64) *VisitorProfileCreate {
	if v != nil {
		_c.SetMaxScrollPercentage(*v)
	}
	return _c
}

// SetFlags sets the "flags" field.
func (_c *VisitorProfileCreate) SetFlags(v map[string]bool) *VisitorProfileCreate {
	_c.mutation.SetFlags(v)
	return _c
}

// SetEngagementScore sets the "engagement_score" field.
func (_c *VisitorProfileCreate) SetEngagementScore(v int) *VisitorProfileCreate {
	_c.mutation.SetEngagementScore(v)
	return _c
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableEngagementScore(v *int) *VisitorProfileCreate {
	if v != nil {
		_c.SetEngagementScore(*v)
	}
	return _c
}

// SetEngagementSegment sets the "engagement_segment" field.
func (_c *VisitorProfileCreate) SetEngagementSegment(v string) *VisitorProfileCreate {
	_c.mutation.SetEngagementSegment(v)
	return _c
}

// SetNillableEngagementSegment sets the "engagement_segment" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableEngagementSegment(v *string) *VisitorProfileCreate {
	if v != nil {
		_c.SetEngagementSegment(*v)
	}
	return _c
}

// SetLat sets the "lat" field.
func (_c *VisitorProfileCreate) SetLat(v float64) *VisitorProfileCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableLat(v *float64) *VisitorProfileCreate {
	if v != nil {
		_c.SetLat(*v)
	}
	return _c
}

// SetLng sets the "lng" field.
func (_c *VisitorProfileCreate) SetLng(v float64) *VisitorProfileCreate {
	_c.mutation.SetLng(v)
	return _c
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableLng(v *float64) *VisitorProfileCreate {
	if v != nil {
		_c.SetLng(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *VisitorProfileCreate) SetCity(v string) *VisitorProfileCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableCity(v *string) *VisitorProfileCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetRegion sets the "region" field.
func (_c *VisitorProfileCreate) SetRegion(v string) *VisitorProfileCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableRegion(v *string) *VisitorProfileCreate {
	if v != nil {
		_c.SetRegion(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *VisitorProfileCreate) SetCountry(v string) *VisitorProfileCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableCountry(v *string) *VisitorProfileCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetIdentity sets the "identity" field.
func (_c *VisitorProfileCreate) SetIdentity(v map[string]string) *VisitorProfileCreate {
	_c.mutation.SetIdentity(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VisitorProfileCreate) SetCreatedAt(v time.Time) *VisitorProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableCreatedAt(v *time.Time) *VisitorProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VisitorProfileCreate) SetUpdatedAt(v time.Time) *VisitorProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableUpdatedAt(v *time.Time) *VisitorProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VisitorProfileCreate) SetID(v uuid.UUID) *VisitorProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VisitorProfileCreate) SetNillableID(v *uuid.UUID) *VisitorProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the VisitorProfileMutation object of the builder.
func (_c *VisitorProfileCreate) Mutation() *VisitorProfileMutation {
	return _c.mutation
}

// Save creates the VisitorProfile in the database.
func (_c *VisitorProfileCreate) Save(ctx context.Context) (*VisitorProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VisitorProfileCreate) SaveX(ctx context.Context) *VisitorProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitorProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitorProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VisitorProfileCreate) defaults() {
	if _, ok := _c.mutation.VisitsCount(); !ok {
		v := visitorprofile.DefaultVisitsCount
		_c.mutation.SetVisitsCount(v)
	}
	if _, ok := _c.mutation.TotalEvents(); !ok {
		v := visitorprofile.DefaultTotalEvents
		_c.mutation.SetTotalEvents(v)
	}
	if _, ok := _c.mutation.PageViews(); !ok {
		v := visitorprofile.DefaultPageViews
		_c.mutation.SetPageViews(v)
	}
	if _, ok := _c.mutation.UniquePagesCount(); !ok {
		v := visitorprofile.DefaultUniquePagesCount
		_c.mutation.SetUniquePagesCount(v)
	}
	if _, ok := _c.mutation.TotalTimeOnPageMs(); !ok {
		v := visitorprofile.DefaultTotalTimeOnPageMs
		_c.mutation.SetTotalTimeOnPageMs(v)
	}
	if _, ok := _c.mutation.AvgTimeOnPageMs(); !ok {
		v := visitorprofile.DefaultAvgTimeOnPageMs
		_c.mutation.SetAvgTimeOnPageMs(v)
	}
	if _, ok := _c.mutation.MaxScrollPercentage(); !ok {
		v := visitorprofile.DefaultMaxScrollPercentage
		_c.mutation.SetMaxScrollPercentage(v)
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		v := visitorprofile.DefaultEngagementScore
		_c.mutation.SetEngagementScore(v)
	}
	if _, ok := _c.mutation.EngagementSegment(); !ok {
		v := visitorprofile.DefaultEngagementSegment
		_c.mutation.SetEngagementSegment(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := visitorprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := visitorprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := visitorprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VisitorProfileCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "VisitorProfile.tenant_id"`)}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "VisitorProfile.window_start"`)}
	}
	if _, ok := _c.mutation.WindowEnd(); !ok {
		return &ValidationError{Name: "window_end", err: errors.New(`ent: missing required field "VisitorProfile.window_end"`)}
	}
	if _, ok := _c.mutation.VisitorKey(); !ok {
		return &ValidationError{Name: "visitor_key", err: errors.New(`ent: missing required field "VisitorProfile.visitor_key"`)}
	}
	if v, ok := _c.mutation.VisitorKey(); ok {
		if err := visitorprofile.VisitorKeyValidator(v); err != nil {
			return &ValidationError{Name: "visitor_key", err: fmt.Errorf(`ent: validator failed for field "VisitorProfile.visitor_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "VisitorProfile.first_seen_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "VisitorProfile.last_seen_at"`)}
	}
	if _, ok := _c.mutation.VisitsCount(); !ok {
		return &ValidationError{Name: "visits_count", err: errors.New(`ent: missing required field "VisitorProfile.visits_count"`)}
	}
	if _, ok := _c.mutation.TotalEvents(); !ok {
		return &ValidationError{Name: "total_events", err: errors.New(`ent: missing required field "VisitorProfile.total_events"`)}
	}
	if _, ok := _c.mutation.PageViews(); !ok {
		return &ValidationError{Name: "page_views", err: errors.New(`ent: missing required field "VisitorProfile.page_views"`)}
	}
	if _, ok := _c.mutation.UniquePagesCount(); !ok {
		return &ValidationError{Name: "unique_pages_count", err: errors.New(`ent: missing required field "VisitorProfile.unique_pages_count"`)}
	}
	if _, ok := _c.mutation.TotalTimeOnPageMs(); !ok {
		return &ValidationError{Name: "total_time_on_page_ms", err: errors.New(`ent: missing required field "VisitorProfile.total_time_on_page_ms"`)}
	}
	if _, ok := _c.mutation.AvgTimeOnPageMs(); !ok {
		return &ValidationError{Name: "avg_time_on_page_ms", err: errors.New(`ent: missing required field "VisitorProfile.avg_time_on_page_ms"`)}
	}
	if _, ok := _c.mutation.MaxScrollPercentage(); !ok {
		return &ValidationError{Name: "max_scroll_percentage", err: errors.New(`ent: missing required field "VisitorProfile.max_scroll_percentage"`)}
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		return &ValidationError{Name: "engagement_score", err: errors.New(`ent: missing required field "VisitorProfile.engagement_score"`)}
	}
	if _, ok := _c.mutation.EngagementSegment(); !ok {
		return &ValidationError{Name: "engagement_segment", err: errors.New(`ent: missing required field "VisitorProfile.engagement_segment"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VisitorProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "VisitorProfile.updated_at"`)}
	}
	return nil
}

func (_c *VisitorProfileCreate) sqlSave(ctx context.Context) (*VisitorProfile, error) {
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

func (_c *VisitorProfileCreate) createSpec() (*VisitorProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &VisitorProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(visitorprofile.Table, sqlgraph.NewFieldSpec(visitorprofile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(visitorprofile.FieldTenantID, field.TypeUUID, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(visitorprofile.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.WindowEnd(); ok {
		_spec.SetField(visitorprofile.FieldWindowEnd, field.TypeTime, value)
		_node.WindowEnd = value
	}
	if value, ok := _c.mutation.VisitorKey(); ok {
		_spec.SetField(visitorprofile.FieldVisitorKey, field.TypeString, value)
		_node.VisitorKey = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(visitorprofile.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(visitorprofile.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if value, ok := _c.mutation.VisitsCount(); ok {
		_spec.SetField(visitorprofile.FieldVisitsCount, field.TypeInt, value)
		_node.VisitsCount = value
	}
	if value, ok := _c.mutation.TotalEvents(); ok {
		_spec.SetField(visitorprofile.FieldTotalEvents, field.TypeInt, value)
		_node.TotalEvents = value
	}
	if value, ok := _c.mutation.PageViews(); ok {
		_spec.SetField(visitorprofile.FieldPageViews, field.TypeInt, value)
		_node.PageViews = value
	}
	if value, ok := _c.mutation.UniquePagesCount(); ok {
		_spec.SetField(visitorprofile.FieldUniquePagesCount, field.TypeInt, value)
		_node.UniquePagesCount = value
	}
	if value, ok := _c.mutation.TotalTimeOnPageMs(); ok {
		_spec.SetField(visitorprofile.FieldTotalTimeOnPageMs, field.TypeInt, value)
		_node.TotalTimeOnPageMs = value
	}
	if value, ok := _c.mutation.AvgTimeOnPageMs(); ok {
		_spec.SetField(visitorprofile.FieldAvgTimeOnPageMs, field.TypeFloat64, value)
		_node.AvgTimeOnPageMs = value
	}
	if value, ok := _c.mutation.MaxScrollPercentage(); ok {
		_spec.SetField(visitorprofile.FieldMaxScrollPercentage, field.TypeFloat64, value)
		_node.MaxScrollPercentage = value
	}
	if value, ok := _c.mutation.Flags(); ok {
		_spec.SetField(visitorprofile.FieldFlags, field.TypeJSON, value)
		_node.Flags = value
	}
	if value, ok := _c.mutation.EngagementScore(); ok {
		_spec.SetField(visitorprofile.FieldEngagementScore, field.TypeInt, value)
		_node.EngagementScore = value
	}
	if value, ok := _c.mutation.EngagementSegment(); ok {
		_spec.SetField(visitorprofile.FieldEngagementSegment, field.TypeString, value)
		_node.EngagementSegment = value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(visitorprofile.FieldLat, field.TypeFloat64, value)
		_node.Lat = &value
	}
	if value, ok := _c.mutation.Lng(); ok {
		_spec.SetField(visitorprofile.FieldLng, field.TypeFloat64, value)
		_node.Lng = &value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(visitorprofile.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(visitorprofile.FieldRegion, field.TypeString, value)
		_node.Region = &value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(visitorprofile.FieldCountry, field.TypeString, value)
		_node.Country = &value
	}
	if value, ok := _c.mutation.Identity(); ok {
		_spec.SetField(visitorprofile.FieldIdentity, field.TypeJSON, value)
		_node.Identity = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(visitorprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(visitorprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VisitorProfile.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VisitorProfileUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *VisitorProfileCreate) OnConflict(opts ...sql.ConflictOption) *VisitorProfileUpsertOne {
	_c.conflict = opts
	return &VisitorProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VisitorProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VisitorProfileCreate) OnConflictColumns(columns ...string) *VisitorProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VisitorProfileUpsertOne{
		create: _c,
	}
}

type (
	// VisitorProfileUpsertOne is the builder for "upsert"-ing
	//  one VisitorProfile node.
	VisitorProfileUpsertOne struct {
		create *VisitorProfileCreate
	}

	// VisitorProfileUpsert is the "OnConflict" setter.
	VisitorProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *VisitorProfileUpsert) SetTenantID(v uuid.UUID) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateTenantID() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldTenantID)
	return u
}

// SetWindowStart sets the "window_start" field.
func (u *VisitorProfileUpsert) SetWindowStart(v time.Time) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldWindowStart, v)
	return u
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateWindowStart() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldWindowStart)
	return u
}

// SetWindowEnd sets the "window_end" field.
func (u *VisitorProfileUpsert) SetWindowEnd(v time.Time) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldWindowEnd, v)
	return u
}

// UpdateWindowEnd sets the "window_end" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateWindowEnd() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldWindowEnd)
	return u
}

// SetVisitorKey sets the "visitor_key" field.
func (u *VisitorProfileUpsert) SetVisitorKey(v string) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldVisitorKey, v)
	return u
}

// UpdateVisitorKey sets the "visitor_key" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateVisitorKey() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldVisitorKey)
	return u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (u *VisitorProfileUpsert) SetFirstSeenAt(v time.Time) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldFirstSeenAt, v)
	return u
}

// UpdateFirstSeenAt sets the "first_seen_at" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateFirstSeenAt() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldFirstSeenAt)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *VisitorProfileUpsert) SetLastSeenAt(v time.Time) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateLastSeenAt() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldLastSeenAt)
	return u
}

// SetVisitsCount sets the "visits_count" field.
func (u *VisitorProfileUpsert) SetVisitsCount(v int) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldVisitsCount, v)
	return u
}

// UpdateVisitsCount sets the "visits_count" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateVisitsCount() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldVisitsCount)
	return u
}

// AddVisitsCount adds v to the "visits_count" field.
func (u *VisitorProfileUpsert) AddVisitsCount(v int) *VisitorProfileUpsert {
	u.Add(visitorprofile.FieldVisitsCount, v)
	return u
}

// SetTotalEvents sets the "total_events" field.
func (u *VisitorProfileUpsert) SetTotalEvents(v int) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldTotalEvents, v)
	return u
}

// UpdateTotalEvents sets the "total_events" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateTotalEvents() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldTotalEvents)
	return u
}

// AddTotalEvents adds v to the "total_events" field.
func (u *VisitorProfileUpsert) AddTotalEvents(v int) *VisitorProfileUpsert {
	u.Add(visitorprofile.FieldTotalEvents, v)
	return u
}

// SetPageViews sets the "page_views" field.
func (u *VisitorProfileUpsert) SetPageViews(v int) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldPageViews, v)
	return u
}

// UpdatePageViews sets the "page_views" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdatePageViews() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldPageViews)
	return u
}

// AddPageViews adds v to the "page_views" field.
func (u *VisitorProfileUpsert) AddPageViews(v int) *VisitorProfileUpsert {
	u.Add(visitorprofile.FieldPageViews, v)
	return u
}

// SetUniquePagesCount sets the "unique_pages_count" field.
func (u *VisitorProfileUpsert) SetUniquePagesCount(v int) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldUniquePagesCount, v)
	return u
}

// UpdateUniquePagesCount sets the "unique_pages_count" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateUniquePagesCount() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldUniquePagesCount)
	return u
}

// AddUniquePagesCount adds v to the "unique_pages_count" field.
func (u *VisitorProfileUpsert) AddUniquePagesCount(v int) *VisitorProfileUpsert {
	u.Add(visitorprofile.FieldUniquePagesCount, v)
	return u
}

// SetTotalTimeOnPageMs sets the "total_time_on_page_ms" field.
func (u *VisitorProfileUpsert) SetTotalTimeOnPageMs(v int) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldTotalTimeOnPageMs, v)
	return u
}

// UpdateTotalTimeOnPageMs sets the "total_time_on_page_ms" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateTotalTimeOnPageMs() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldTotalTimeOnPageMs)
	return u
}

// AddTotalTimeOnPageMs adds v to the "total_time_on_page_ms" field.
func (u *VisitorProfileUpsert) AddTotalTimeOnPageMs(v int) *VisitorProfileUpsert {
	u.Add(visitorprofile.FieldTotalTimeOnPageMs, v)
	return u
}

// SetAvgTimeOnPageMs sets the "avg_time_on_page_ms" field.
func (u *VisitorProfileUpsert) SetAvgTimeOnPageMs(v float64) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldAvgTimeOnPageMs, v)
	return u
}

// UpdateAvgTimeOnPageMs sets the "avg_time_on_page_ms" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateAvgTimeOnPageMs() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldAvgTimeOnPageMs)
	return u
}

// AddAvgTimeOnPageMs adds v to the "avg_time_on_page_ms" field.
func (u *VisitorProfileUpsert) AddAvgTimeOnPageMs(v float64) *VisitorProfileUpsert {
	u.Add(visitorprofile.FieldAvgTimeOnPageMs, v)
	return u
}

// SetMaxScrollPercentage sets the "max_scroll_percentage" field.
func (u *VisitorProfileUpsert) SetMaxScrollPercentage(v float64) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldMaxScrollPercentage, v)
	return u
}

// UpdateMaxScrollPercentage sets the "max_scroll_percentage" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateMaxScrollPercentage() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldMaxScrollPercentage)
	return u
}

// AddMaxScrollPercentage adds v to the "max_scroll_percentage" field.
func (u *VisitorProfileUpsert) AddMaxScrollPercentage(v float64) *VisitorProfileUpsert {
	u.Add(visitorprofile.FieldMaxScrollPercentage, v)
	return u
}

// SetFlags sets the "flags" field.
func (u *VisitorProfileUpsert) SetFlags(v map[string]bool) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldFlags, v)
	return u
}

// UpdateFlags sets the "flags" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateFlags() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldFlags)
	return u
}

// ClearFlags clears the value of the "flags" field.
func (u *VisitorProfileUpsert) ClearFlags() *VisitorProfileUpsert {
	u.SetNull(visitorprofile.FieldFlags)
	return u
}

// SetEngagementScore sets the "engagement_score" field.
func (u *VisitorProfileUpsert) SetEngagementScore(v int) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldEngagementScore, v)
	return u
}

// UpdateEngagementScore sets the "engagement_score" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateEngagementScore() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldEngagementScore)
	return u
}

// AddEngagementScore adds v to the "engagement_score" field.
func (u *VisitorProfileUpsert) AddEngagementScore(v int) *VisitorProfileUpsert {
	u.Add(visitorprofile.FieldEngagementScore, v)
	return u
}

// SetEngagementSegment sets the "engagement_segment" field.
func (u *VisitorProfileUpsert) SetEngagementSegment(v string) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldEngagementSegment, v)
	return u
}

// UpdateEngagementSegment sets the "engagement_segment" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateEngagementSegment() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldEngagementSegment)
	return u
}

// SetLat sets the "lat" field.
func (u *VisitorProfileUpsert) SetLat(v float64) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldLat, v)
	return u
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateLat() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldLat)
	return u
}

// AddLat adds v to the "lat" field.
func (u *VisitorProfileUpsert) AddLat(v float64) *VisitorProfileUpsert {
	u.Add(visitorprofile.FieldLat, v)
	return u
}

// ClearLat clears the value of the "lat" field.
func (u *VisitorProfileUpsert) ClearLat() *VisitorProfileUpsert {
	u.SetNull(visitorprofile.FieldLat)
	return u
}

// SetLng sets the "lng" field.
func (u *VisitorProfileUpsert) SetLng(v float64) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldLng, v)
	return u
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateLng() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldLng)
	return u
}

// AddLng adds v to the "lng" field.
func (u *VisitorProfileUpsert) AddLng(v float64) *VisitorProfileUpsert {
	u.Add(visitorprofile.FieldLng, v)
	return u
}

// ClearLng clears the value of the "lng" field.
func (u *VisitorProfileUpsert) ClearLng() *VisitorProfileUpsert {
	u.SetNull(visitorprofile.FieldLng)
	return u
}

// SetCity sets the "city" field.
func (u *VisitorProfileUpsert) SetCity(v string) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateCity() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldCity)
	return u
}

// ClearCity clears the value of the "city" field.
func (u *VisitorProfileUpsert) ClearCity() *VisitorProfileUpsert {
	u.SetNull(visitorprofile.FieldCity)
	return u
}

// SetRegion sets the "region" field.
func (u *VisitorProfileUpsert) SetRegion(v string) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldRegion, v)
	return u
}

// UpdateRegion sets the "region" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateRegion() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldRegion)
	return u
}

// ClearRegion clears the value of the "region" field.
func (u *VisitorProfileUpsert) ClearRegion() *VisitorProfileUpsert {
	u.SetNull(visitorprofile.FieldRegion)
	return u
}

// SetCountry sets the "country" field.
func (u *VisitorProfileUpsert) SetCountry(v string) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldCountry, v)
	return u
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateCountry() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldCountry)
	return u
}

// ClearCountry clears the value of the "country" field.
func (u *VisitorProfileUpsert) ClearCountry() *VisitorProfileUpsert {
	u.SetNull(visitorprofile.FieldCountry)
	return u
}

// SetIdentity sets the "identity" field.
func (u *VisitorProfileUpsert) SetIdentity(v map[string]string) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldIdentity, v)
	return u
}

// UpdateIdentity sets the "identity" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateIdentity() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldIdentity)
	return u
}

// ClearIdentity clears the value of the "identity" field.
func (u *VisitorProfileUpsert) ClearIdentity() *VisitorProfileUpsert {
	u.SetNull(visitorprofile.FieldIdentity)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VisitorProfileUpsert) SetUpdatedAt(v time.Time) *VisitorProfileUpsert {
	u.Set(visitorprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VisitorProfileUpsert) UpdateUpdatedAt() *VisitorProfileUpsert {
	u.SetExcluded(visitorprofile.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.VisitorProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(visitorprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VisitorProfileUpsertOne) UpdateNewValues() *VisitorProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(visitorprofile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(visitorprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VisitorProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VisitorProfileUpsertOne) Ignore() *VisitorProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VisitorProfileUpsertOne) DoNothing() *VisitorProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VisitorProfileCreate.OnConflict
// documentation for more info.
func (u *VisitorProfileUpsertOne) Update(set func(*VisitorProfileUpsert)) *VisitorProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VisitorProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *VisitorProfileUpsertOne) SetTenantID(v uuid.UUID) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateTenantID() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateTenantID()
	})
}

// SetWindowStart sets the "window_start" field.
func (u *VisitorProfileUpsertOne) SetWindowStart(v time.Time) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetWindowStart(v)
	})
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateWindowStart() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateWindowStart()
	})
}

// SetWindowEnd sets the "window_end" field.
func (u *VisitorProfileUpsertOne) SetWindowEnd(v time.Time) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetWindowEnd(v)
	})
}

// UpdateWindowEnd sets the "window_end" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateWindowEnd() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateWindowEnd()
	})
}

// SetVisitorKey sets the "visitor_key" field.
func (u *VisitorProfileUpsertOne) SetVisitorKey(v string) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetVisitorKey(v)
	})
}

// UpdateVisitorKey sets the "visitor_key" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateVisitorKey() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateVisitorKey()
	})
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (u *VisitorProfileUpsertOne) SetFirstSeenAt(v time.Time) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetFirstSeenAt(v)
	})
}

// UpdateFirstSeenAt sets the "first_seen_at" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateFirstSeenAt() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateFirstSeenAt()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *VisitorProfileUpsertOne) SetLastSeenAt(v time.Time) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateLastSeenAt() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateLastSeenAt()
	})
}

// SetVisitsCount sets the "visits_count" field.
func (u *VisitorProfileUpsertOne) SetVisitsCount(v int) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetVisitsCount(v)
	})
}

// AddVisitsCount adds v to the "visits_count" field.
func (u *VisitorProfileUpsertOne) AddVisitsCount(v int) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddVisitsCount(v)
	})
}

// UpdateVisitsCount sets the "visits_count" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateVisitsCount() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateVisitsCount()
	})
}

// SetTotalEvents sets the "total_events" field.
func (u *VisitorProfileUpsertOne) SetTotalEvents(v int) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetTotalEvents(v)
	})
}

// AddTotalEvents adds v to the "total_events" field.
func (u *VisitorProfileUpsertOne) AddTotalEvents(v int) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddTotalEvents(v)
	})
}

// UpdateTotalEvents sets the "total_events" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateTotalEvents() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateTotalEvents()
	})
}

// SetPageViews sets the "page_views" field.
func (u *VisitorProfileUpsertOne) SetPageViews(v int) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetPageViews(v)
	})
}

// AddPageViews adds v to the "page_views" field.
func (u *VisitorProfileUpsertOne) AddPageViews(v int) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddPageViews(v)
	})
}

// UpdatePageViews sets the "page_views" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdatePageViews() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdatePageViews()
	})
}

// SetUniquePagesCount sets the "unique_pages_count" field.
func (u *VisitorProfileUpsertOne) SetUniquePagesCount(v int) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetUniquePagesCount(v)
	})
}

// AddUniquePagesCount adds v to the "unique_pages_count" field.
func (u *VisitorProfileUpsertOne) AddUniquePagesCount(v int) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddUniquePagesCount(v)
	})
}

// UpdateUniquePagesCount sets the "unique_pages_count" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateUniquePagesCount() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateUniquePagesCount()
	})
}

// SetTotalTimeOnPageMs sets the "total_time_on_page_ms" field.
func (u *VisitorProfileUpsertOne) SetTotalTimeOnPageMs(v int) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetTotalTimeOnPageMs(v)
	})
}

// AddTotalTimeOnPageMs adds v to the "total_time_on_page_ms" field.
func (u *VisitorProfileUpsertOne) AddTotalTimeOnPageMs(v int) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddTotalTimeOnPageMs(v)
	})
}

// UpdateTotalTimeOnPageMs sets the "total_time_on_page_ms" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateTotalTimeOnPageMs() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateTotalTimeOnPageMs()
	})
}

// SetAvgTimeOnPageMs sets the "avg_time_on_page_ms" field.
func (u *VisitorProfileUpsertOne) SetAvgTimeOnPageMs(v float64) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetAvgTimeOnPageMs(v)
	})
}

// AddAvgTimeOnPageMs adds v to the "avg_time_on_page_ms" field.
func (u *VisitorProfileUpsertOne) AddAvgTimeOnPageMs(v float64) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddAvgTimeOnPageMs(v)
	})
}

// UpdateAvgTimeOnPageMs sets the "avg_time_on_page_ms" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateAvgTimeOnPageMs() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateAvgTimeOnPageMs()
	})
}

// SetMaxScrollPercentage sets the "max_scroll_percentage" field.
func (u *VisitorProfileUpsertOne) SetMaxScrollPercentage(v float64) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetMaxScrollPercentage(v)
	})
}

// AddMaxScrollPercentage adds v to the "max_scroll_percentage" field.
func (u *VisitorProfileUpsertOne) AddMaxScrollPercentage(v float64) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddMaxScrollPercentage(v)
	})
}

// UpdateMaxScrollPercentage sets the "max_scroll_percentage" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateMaxScrollPercentage() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateMaxScrollPercentage()
	})
}

// SetFlags sets the "flags" field.
func (u *VisitorProfileUpsertOne) SetFlags(v map[string]bool) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetFlags(v)
	})
}

// UpdateFlags sets the "flags" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateFlags() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateFlags()
	})
}

// ClearFlags clears the value of the "flags" field.
func (u *VisitorProfileUpsertOne) ClearFlags() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearFlags()
	})
}

// SetEngagementScore sets the "engagement_score" field.
func (u *VisitorProfileUpsertOne) SetEngagementScore(v int) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetEngagementScore(v)
	})
}

// AddEngagementScore adds v to the "engagement_score" field.
func (u *VisitorProfileUpsertOne) AddEngagementScore(v int) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddEngagementScore(v)
	})
}

// UpdateEngagementScore sets the "engagement_score" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateEngagementScore() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateEngagementScore()
	})
}

// SetEngagementSegment sets the "engagement_segment" field.
func (u *VisitorProfileUpsertOne) SetEngagementSegment(v string) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetEngagementSegment(v)
	})
}

// UpdateEngagementSegment sets the "engagement_segment" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateEngagementSegment() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateEngagementSegment()
	})
}

// SetLat sets the "lat" field.
func (u *VisitorProfileUpsertOne) SetLat(v float64) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *VisitorProfileUpsertOne) AddLat(v float64) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateLat() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *VisitorProfileUpsertOne) ClearLat() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearLat()
	})
}

// SetLng sets the "lng" field.
func (u *VisitorProfileUpsertOne) SetLng(v float64) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetLng(v)
	})
}

// AddLng adds v to the "lng" field.
func (u *VisitorProfileUpsertOne) AddLng(v float64) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddLng(v)
	})
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateLng() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateLng()
	})
}

// ClearLng clears the value of the "lng" field.
func (u *VisitorProfileUpsertOne) ClearLng() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearLng()
	})
}

// SetCity sets the "city" field.
func (u *VisitorProfileUpsertOne) SetCity(v string) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateCity() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *VisitorProfileUpsertOne) ClearCity() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearCity()
	})
}

// SetRegion sets the "region" field.
func (u *VisitorProfileUpsertOne) SetRegion(v string) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetRegion(v)
	})
}

// UpdateRegion sets the "region" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateRegion() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateRegion()
	})
}

// ClearRegion clears the value of the "region" field.
func (u *VisitorProfileUpsertOne) ClearRegion() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearRegion()
	})
}

// SetCountry sets the "country" field.
func (u *VisitorProfileUpsertOne) SetCountry(v string) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateCountry() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateCountry()
	})
}

// ClearCountry clears the value of the "country" field.
func (u *VisitorProfileUpsertOne) ClearCountry() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearCountry()
	})
}

// SetIdentity sets the "identity" field.
func (u *VisitorProfileUpsertOne) SetIdentity(v map[string]string) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetIdentity(v)
	})
}

// UpdateIdentity sets the "identity" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateIdentity() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateIdentity()
	})
}

// ClearIdentity clears the value of the "identity" field.
func (u *VisitorProfileUpsertOne) ClearIdentity() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearIdentity()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VisitorProfileUpsertOne) SetUpdatedAt(v time.Time) *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VisitorProfileUpsertOne) UpdateUpdatedAt() *VisitorProfileUpsertOne {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *VisitorProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VisitorProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VisitorProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VisitorProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: VisitorProfileUpsertOne.ID is not supported by MySQL driver. Use VisitorProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VisitorProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VisitorProfileCreateBulk is the builder for creating many VisitorProfile entities in bulk.
type VisitorProfileCreateBulk struct {
	config
	err      error
	builders []*VisitorProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the VisitorProfile entities in the database.
func (_c *VisitorProfileCreateBulk) Save(ctx context.Context) ([]*VisitorProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VisitorProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VisitorProfileMutation)
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
func (_c *VisitorProfileCreateBulk) SaveX(ctx context.Context) []*VisitorProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VisitorProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VisitorProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VisitorProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VisitorProfileUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *VisitorProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *VisitorProfileUpsertBulk {
	_c.conflict = opts
	return &VisitorProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VisitorProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VisitorProfileCreateBulk) OnConflictColumns(columns ...string) *VisitorProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VisitorProfileUpsertBulk{
		create: _c,
	}
}

// VisitorProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of VisitorProfile nodes.
type VisitorProfileUpsertBulk struct {
	create *VisitorProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.VisitorProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(visitorprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VisitorProfileUpsertBulk) UpdateNewValues() *VisitorProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(visitorprofile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(visitorprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VisitorProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VisitorProfileUpsertBulk) Ignore() *VisitorProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VisitorProfileUpsertBulk) DoNothing() *VisitorProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VisitorProfileCreateBulk.OnConflict
// documentation for more info.
func (u *VisitorProfileUpsertBulk) Update(set func(*VisitorProfileUpsert)) *VisitorProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VisitorProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *VisitorProfileUpsertBulk) SetTenantID(v uuid.UUID) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateTenantID() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateTenantID()
	})
}

// SetWindowStart sets the "window_start" field.
func (u *VisitorProfileUpsertBulk) SetWindowStart(v time.Time) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetWindowStart(v)
	})
}

// UpdateWindowStart sets the "window_start" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateWindowStart() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateWindowStart()
	})
}

// SetWindowEnd sets the "window_end" field.
func (u *VisitorProfileUpsertBulk) SetWindowEnd(v time.Time) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetWindowEnd(v)
	})
}

// UpdateWindowEnd sets the "window_end" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateWindowEnd() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateWindowEnd()
	})
}

// SetVisitorKey sets the "visitor_key" field.
func (u *VisitorProfileUpsertBulk) SetVisitorKey(v string) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetVisitorKey(v)
	})
}

// UpdateVisitorKey sets the "visitor_key" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateVisitorKey() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateVisitorKey()
	})
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (u *VisitorProfileUpsertBulk) SetFirstSeenAt(v time.Time) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetFirstSeenAt(v)
	})
}

// UpdateFirstSeenAt sets the "first_seen_at" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateFirstSeenAt() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateFirstSeenAt()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *VisitorProfileUpsertBulk) SetLastSeenAt(v time.Time) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateLastSeenAt() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateLastSeenAt()
	})
}

// SetVisitsCount sets the "visits_count" field.
func (u *VisitorProfileUpsertBulk) SetVisitsCount(v int) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetVisitsCount(v)
	})
}

// AddVisitsCount adds v to the "visits_count" field.
func (u *VisitorProfileUpsertBulk) AddVisitsCount(v int) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddVisitsCount(v)
	})
}

// UpdateVisitsCount sets the "visits_count" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateVisitsCount() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateVisitsCount()
	})
}

// SetTotalEvents sets the "total_events" field.
func (u *VisitorProfileUpsertBulk) SetTotalEvents(v int) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetTotalEvents(v)
	})
}

// AddTotalEvents adds v to the "total_events" field.
func (u *VisitorProfileUpsertBulk) AddTotalEvents(v int) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddTotalEvents(v)
	})
}

// UpdateTotalEvents sets the "total_events" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateTotalEvents() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateTotalEvents()
	})
}

// SetPageViews sets the "page_views" field.
func (u *VisitorProfileUpsertBulk) SetPageViews(v int) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetPageViews(v)
	})
}

// AddPageViews adds v to the "page_views" field.
func (u *VisitorProfileUpsertBulk) AddPageViews(v int) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddPageViews(v)
	})
}

// UpdatePageViews sets the "page_views" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdatePageViews() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdatePageViews()
	})
}

// SetUniquePagesCount sets the "unique_pages_count" field.
func (u *VisitorProfileUpsertBulk) SetUniquePagesCount(v int) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetUniquePagesCount(v)
	})
}

// AddUniquePagesCount adds v to the "unique_pages_count" field.
func (u *VisitorProfileUpsertBulk) AddUniquePagesCount(v int) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddUniquePagesCount(v)
	})
}

// UpdateUniquePagesCount sets the "unique_pages_count" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateUniquePagesCount() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateUniquePagesCount()
	})
}

// SetTotalTimeOnPageMs sets the "total_time_on_page_ms" field.
func (u *VisitorProfileUpsertBulk) SetTotalTimeOnPageMs(v int) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetTotalTimeOnPageMs(v)
	})
}

// AddTotalTimeOnPageMs adds v to the "total_time_on_page_ms" field.
func (u *VisitorProfileUpsertBulk) AddTotalTimeOnPageMs(v int) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddTotalTimeOnPageMs(v)
	})
}

// UpdateTotalTimeOnPageMs sets the "total_time_on_page_ms" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateTotalTimeOnPageMs() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateTotalTimeOnPageMs()
	})
}

// SetAvgTimeOnPageMs sets the "avg_time_on_page_ms" field.
func (u *VisitorProfileUpsertBulk) SetAvgTimeOnPageMs(v float64) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetAvgTimeOnPageMs(v)
	})
}

// AddAvgTimeOnPageMs adds v to the "avg_time_on_page_ms" field.
func (u *VisitorProfileUpsertBulk) AddAvgTimeOnPageMs(v float64) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddAvgTimeOnPageMs(v)
	})
}

// UpdateAvgTimeOnPageMs sets the "avg_time_on_page_ms" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateAvgTimeOnPageMs() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateAvgTimeOnPageMs()
	})
}

// SetMaxScrollPercentage sets the "max_scroll_percentage" field.
func (u *VisitorProfileUpsertBulk) SetMaxScrollPercentage(v float64) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetMaxScrollPercentage(v)
	})
}

// AddMaxScrollPercentage adds v to the "max_scroll_percentage" field.
func (u *VisitorProfileUpsertBulk) AddMaxScrollPercentage(v float64) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddMaxScrollPercentage(v)
	})
}

// UpdateMaxScrollPercentage sets the "max_scroll_percentage" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateMaxScrollPercentage() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateMaxScrollPercentage()
	})
}

// SetFlags sets the "flags" field.
func (u *VisitorProfileUpsertBulk) SetFlags(v map[string]bool) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetFlags(v)
	})
}

// UpdateFlags sets the "flags" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateFlags() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateFlags()
	})
}

// ClearFlags clears the value of the "flags" field.
func (u *VisitorProfileUpsertBulk) ClearFlags() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearFlags()
	})
}

// SetEngagementScore sets the "engagement_score" field.
func (u *VisitorProfileUpsertBulk) SetEngagementScore(v int) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetEngagementScore(v)
	})
}

// AddEngagementScore adds v to the "engagement_score" field.
func (u *VisitorProfileUpsertBulk) AddEngagementScore(v int) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddEngagementScore(v)
	})
}

// UpdateEngagementScore sets the "engagement_score" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateEngagementScore() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateEngagementScore()
	})
}

// SetEngagementSegment sets the "engagement_segment" field.
func (u *VisitorProfileUpsertBulk) SetEngagementSegment(v string) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetEngagementSegment(v)
	})
}

// UpdateEngagementSegment sets the "engagement_segment" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateEngagementSegment() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateEngagementSegment()
	})
}

// SetLat sets the "lat" field.
func (u *VisitorProfileUpsertBulk) SetLat(v float64) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *VisitorProfileUpsertBulk) AddLat(v float64) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateLat() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *VisitorProfileUpsertBulk) ClearLat() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearLat()
	})
}

// SetLng sets the "lng" field.
func (u *VisitorProfileUpsertBulk) SetLng(v float64) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetLng(v)
	})
}

// AddLng adds v to the "lng" field.
func (u *VisitorProfileUpsertBulk) AddLng(v float64) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.AddLng(v)
	})
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateLng() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateLng()
	})
}

// ClearLng clears the value of the "lng" field.
func (u *VisitorProfileUpsertBulk) ClearLng() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearLng()
	})
}

// SetCity sets the "city" field.
func (u *VisitorProfileUpsertBulk) SetCity(v string) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateCity() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateCity()
	})
}

// ClearCity clears the value of the "city" field.
func (u *VisitorProfileUpsertBulk) ClearCity() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearCity()
	})
}

// SetRegion sets the "region" field.
func (u *VisitorProfileUpsertBulk) SetRegion(v string) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetRegion(v)
	})
}

// UpdateRegion sets the "region" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateRegion() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateRegion()
	})
}

// ClearRegion clears the value of the "region" field.
func (u *VisitorProfileUpsertBulk) ClearRegion() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearRegion()
	})
}

// SetCountry sets the "country" field.
func (u *VisitorProfileUpsertBulk) SetCountry(v string) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateCountry() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateCountry()
	})
}

// ClearCountry clears the value of the "country" field.
func (u *VisitorProfileUpsertBulk) ClearCountry() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearCountry()
	})
}

// SetIdentity sets the "identity" field.
func (u *VisitorProfileUpsertBulk) SetIdentity(v map[string]string) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetIdentity(v)
	})
}

// UpdateIdentity sets the "identity" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateIdentity() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateIdentity()
	})
}

// ClearIdentity clears the value of the "identity" field.
func (u *VisitorProfileUpsertBulk) ClearIdentity() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.ClearIdentity()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VisitorProfileUpsertBulk) SetUpdatedAt(v time.Time) *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VisitorProfileUpsertBulk) UpdateUpdatedAt() *VisitorProfileUpsertBulk {
	return u.Update(func(s *VisitorProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *VisitorProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the VisitorProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for VisitorProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VisitorProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
