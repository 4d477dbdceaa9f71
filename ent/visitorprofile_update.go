// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitor-pulse-api/ent/predicate"
	"visitor-pulse-api/ent/visitorprofile"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// VisitorProfileUpdate is the builder for updating VisitorProfile entities.
type VisitorProfileUpdate struct {
	config
	hooks    []Hook
	mutation *VisitorProfileMutation
}

// Where appends a list predicates to the VisitorProfileUpdate builder.
func (_u *VisitorProfileUpdate) Where(ps ...predicate.VisitorProfile) *VisitorProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *VisitorProfileUpdate) SetTenantID(v uuid.UUID) *VisitorProfileUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableTenantID(v *uuid.UUID) *VisitorProfileUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *VisitorProfileUpdate) SetWindowStart(v time.Time) *VisitorProfileUpdate {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableWindowStart(v *time.Time) *VisitorProfileUpdate {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *VisitorProfileUpdate) SetWindowEnd(v time.Time) *VisitorProfileUpdate {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableWindowEnd(v *time.Time) *VisitorProfileUpdate {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// SetVisitorKey sets the "visitor_key" field.
func (_u *VisitorProfileUpdate) SetVisitorKey(v string) *VisitorProfileUpdate {
	_u.mutation.SetVisitorKey(v)
	return _u
}

// SetNillableVisitorKey sets the "visitor_key" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableVisitorKey(v *string) *VisitorProfileUpdate {
	if v != nil {
		_u.SetVisitorKey(*v)
	}
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *VisitorProfileUpdate) SetFirstSeenAt(v time.Time) *VisitorProfileUpdate {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableFirstSeenAt(v *time.Time) *VisitorProfileUpdate {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *VisitorProfileUpdate) SetLastSeenAt(v time.Time) *VisitorProfileUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableLastSeenAt(v *time.Time) *VisitorProfileUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetVisitsCount sets the "visits_count" field.
func (_u *VisitorProfileUpdate) SetVisitsCount(v int) *VisitorProfileUpdate {
	_u.mutation.ResetVisitsCount()
	_u.mutation.SetVisitsCount(v)
	return _u
}

// SetNillableVisitsCount sets the "visits_count" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableVisitsCount(v *int) *VisitorProfileUpdate {
	if v != nil {
		_u.SetVisitsCount(*v)
	}
	return _u
}

// AddVisitsCount adds value to the "visits_count" field.
func (_u *VisitorProfileUpdate) AddVisitsCount(v int) *VisitorProfileUpdate {
	_u.mutation.AddVisitsCount(v)
	return _u
}

// SetTotalEvents sets the "total_events" field.
func (_u *VisitorProfileUpdate) SetTotalEvents(v int) *VisitorProfileUpdate {
	_u.mutation.ResetTotalEvents()
	_u.mutation.SetTotalEvents(v)
	return _u
}

// SetNillableTotalEvents sets the "total_events" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableTotalEvents(v *int) *VisitorProfileUpdate {
	if v != nil {
		_u.SetTotalEvents(*v)
	}
	return _u
}

// AddTotalEvents adds value to the "total_events" field.
func (_u *VisitorProfileUpdate) AddTotalEvents(v int) *VisitorProfileUpdate {
	_u.mutation.AddTotalEvents(v)
	return _u
}

// SetPageViews sets the "page_views" field.
func (_u *VisitorProfileUpdate) SetPageViews(v int) *VisitorProfileUpdate {
	_u.mutation.ResetPageViews()
	_u.mutation.SetPageViews(v)
	return _u
}

// SetNillablePageViews sets the "page_views" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillablePageViews(v *int) *VisitorProfileUpdate {
	if v != nil {
		_u.SetPageViews(*v)
	}
	return _u
}

// AddPageViews adds value to the "page_views" field.
func (_u *VisitorProfileUpdate) AddPageViews(v int) *VisitorProfileUpdate {
	_u.mutation.AddPageViews(v)
	return _u
}

// SetUniquePagesCount sets the "unique_pages_count" field.
func (_u *VisitorProfileUpdate) SetUniquePagesCount(v int) *VisitorProfileUpdate {
	_u.mutation.ResetUniquePagesCount()
	_u.mutation.SetUniquePagesCount(v)
	return _u
}

// SetNillableUniquePagesCount sets the "unique_pages_count" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableUniquePagesCount(v *int) *VisitorProfileUpdate {
	if v != nil {
		_u.SetUniquePagesCount(*v)
	}
	return _u
}

// AddUniquePagesCount adds value to the "unique_pages_count" field.
func (_u *VisitorProfileUpdate) AddUniquePagesCount(v int) *VisitorProfileUpdate {
	_u.mutation.AddUniquePagesCount(v)
	return _u
}

// SetTotalTimeOnPageMs sets the "total_time_on_page_ms" field.
func (_u *VisitorProfileUpdate) SetTotalTimeOnPageMs(v int) *VisitorProfileUpdate {
	_u.mutation.ResetTotalTimeOnPageMs()
	_u.mutation.SetTotalTimeOnPageMs(v)
	return _u
}

// SetNillableTotalTimeOnPageMs sets the "total_time_on_page_ms" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableTotalTimeOnPageMs(v *int) *VisitorProfileUpdate {
	if v != nil {
		_u.SetTotalTimeOnPageMs(*v)
	}
	return _u
}

// AddTotalTimeOnPageMs adds value to the "total_time_on_page_ms" field.
func (_u *VisitorProfileUpdate) AddTotalTimeOnPageMs(v int) *VisitorProfileUpdate {
	_u.mutation.AddTotalTimeOnPageMs(v)
	return _u
}

// SetAvgTimeOnPageMs sets the "avg_time_on_page_ms" field.
func (_u *VisitorProfileUpdate) SetAvgTimeOnPageMs(v float64) *VisitorProfileUpdate {
	_u.mutation.ResetAvgTimeOnPageMs()
	_u.mutation.SetAvgTimeOnPageMs(v)
	return _u
}

// SetNillableAvgTimeOnPageMs sets the "avg_time_on_page_ms" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableAvgTimeOnPageMs(v *float64) *VisitorProfileUpdate {
	if v != nil {
		_u.SetAvgTimeOnPageMs(*v)
	}
	return _u
}

// AddAvgTimeOnPageMs adds value to the "avg_time_on_page_ms" field.
func (_u *VisitorProfileUpdate) AddAvgTimeOnPageMs(v float64) *VisitorProfileUpdate {
	_u.mutation.AddAvgTimeOnPageMs(v)
	return _u
}

// SetMaxScrollPercentage sets the "max_scroll_percentage" field.
func (_u *VisitorProfileUpdate) SetMaxScrollPercentage(v float64) *VisitorProfileUpdate {
	_u.mutation.ResetMaxScrollPercentage()
	_u.mutation.SetMaxScrollPercentage(v)
	return _u
}

// SetNillableMaxScrollPercentage sets the "max_scroll_percentage" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableMaxScrollPercentage(v *float64) *VisitorProfileUpdate {
	if v != nil {
		_u.SetMaxScrollPercentage(*v)
	}
	return _u
}

// AddMaxScrollPercentage adds value to the "max_scroll_percentage" field.
func (_u *VisitorProfileUpdate) AddMaxScrollPercentage(v float64) *VisitorProfileUpdate {
	_u.mutation.AddMaxScrollPercentage(v)
	return _u
}

// SetFlags sets the "flags" field.
func (_u *VisitorProfileUpdate) SetFlags(v map[string]bool) *VisitorProfileUpdate {
	_u.mutation.SetFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *VisitorProfileUpdate) ClearFlags() *VisitorProfileUpdate {
	_u.mutation.ClearFlags()
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *VisitorProfileUpdate) SetEngagementScore(v int) *VisitorProfileUpdate {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableEngagementScore(v *int) *VisitorProfileUpdate {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *VisitorProfileUpdate) AddEngagementScore(v int) *VisitorProfileUpdate {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetEngagementSegment sets the "engagement_segment" field.
func (_u *VisitorProfileUpdate) SetEngagementSegment(v string) *VisitorProfileUpdate {
	_u.mutation.SetEngagementSegment(v)
	return _u
}

// SetNillableEngagementSegment sets the "engagement_segment" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableEngagementSegment(v *string) *VisitorProfileUpdate {
	if v != nil {
		_u.SetEngagementSegment(*v)
	}
	return _u
}

// SetLat sets the "lat" field.
func (_u *VisitorProfileUpdate) SetLat(v float64) *VisitorProfileUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableLat(v *float64) *VisitorProfileUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *VisitorProfileUpdate) AddLat(v float64) *VisitorProfileUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *VisitorProfileUpdate) ClearLat() *VisitorProfileUpdate {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *VisitorProfileUpdate) SetLng(v float64) *VisitorProfileUpdate {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableLng(v *float64) *VisitorProfileUpdate {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *VisitorProfileUpdate) AddLng(v float64) *VisitorProfileUpdate {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *VisitorProfileUpdate) ClearLng() *VisitorProfileUpdate {
	_u.mutation.ClearLng()
	return _u
}

// SetCity sets the "city" field.
func (_u *VisitorProfileUpdate) SetCity(v string) *VisitorProfileUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableCity(v *string) *VisitorProfileUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *VisitorProfileUpdate) ClearCity() *VisitorProfileUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetRegion sets the "region" field.
func (_u *VisitorProfileUpdate) SetRegion(v string) *VisitorProfileUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableRegion(v *string) *VisitorProfileUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *VisitorProfileUpdate) ClearRegion() *VisitorProfileUpdate {
	_u.mutation.ClearRegion()
	return _u
}

// SetCountry sets the "country" field.
func (_u *VisitorProfileUpdate) SetCountry(v string) *VisitorProfileUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *VisitorProfileUpdate) SetNillableCountry(v *string) *VisitorProfileUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *VisitorProfileUpdate) ClearCountry() *VisitorProfileUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetIdentity sets the "identity" field.
func (_u *VisitorProfileUpdate) SetIdentity(v map[string]string) *VisitorProfileUpdate {
	_u.mutation.SetIdentity(v)
	return _u
}

// ClearIdentity clears the value of the "identity" field.
func (_u *VisitorProfileUpdate) ClearIdentity() *VisitorProfileUpdate {
	_u.mutation.ClearIdentity()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VisitorProfileUpdate) SetUpdatedAt(v time.Time) *VisitorProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VisitorProfileMutation object of the builder.
func (_u *VisitorProfileUpdate) Mutation() *VisitorProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VisitorProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitorProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VisitorProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitorProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VisitorProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := visitorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitorProfileUpdate) check() error {
	if v, ok := _u.mutation.VisitorKey(); ok {
		if err := visitorprofile.VisitorKeyValidator(v); err != nil {
			return &ValidationError{Name: "visitor_key", err: fmt.Errorf(`ent: validator failed for field "VisitorProfile.visitor_key": %w`, err)}
		}
	}
	return nil
}

func (_u *VisitorProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visitorprofile.Table, visitorprofile.Columns, sqlgraph.NewFieldSpec(visitorprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(visitorprofile.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(visitorprofile.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(visitorprofile.FieldWindowEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VisitorKey(); ok {
		_spec.SetField(visitorprofile.FieldVisitorKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(visitorprofile.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(visitorprofile.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VisitsCount(); ok {
		_spec.SetField(visitorprofile.FieldVisitsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVisitsCount(); ok {
		_spec.AddField(visitorprofile.FieldVisitsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalEvents(); ok {
		_spec.SetField(visitorprofile.FieldTotalEvents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalEvents(); ok {
		_spec.AddField(visitorprofile.FieldTotalEvents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageViews(); ok {
		_spec.SetField(visitorprofile.FieldPageViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageViews(); ok {
		_spec.AddField(visitorprofile.FieldPageViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UniquePagesCount(); ok {
		_spec.SetField(visitorprofile.FieldUniquePagesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUniquePagesCount(); ok {
		_spec.AddField(visitorprofile.FieldUniquePagesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeOnPageMs(); ok {
		_spec.SetField(visitorprofile.FieldTotalTimeOnPageMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeOnPageMs(); ok {
		_spec.AddField(visitorprofile.FieldTotalTimeOnPageMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTimeOnPageMs(); ok {
		_spec.SetField(visitorprofile.FieldAvgTimeOnPageMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTimeOnPageMs(); ok {
		_spec.AddField(visitorprofile.FieldAvgTimeOnPageMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScrollPercentage(); ok {
		_spec.SetField(visitorprofile.FieldMaxScrollPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScrollPercentage(); ok {
		_spec.AddField(visitorprofile.FieldMaxScrollPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(visitorprofile.FieldFlags, field.TypeJSON, value)
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(visitorprofile.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(visitorprofile.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(visitorprofile.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementSegment(); ok {
		_spec.SetField(visitorprofile.FieldEngagementSegment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(visitorprofile.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(visitorprofile.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(visitorprofile.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(visitorprofile.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(visitorprofile.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(visitorprofile.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(visitorprofile.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(visitorprofile.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(visitorprofile.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(visitorprofile.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(visitorprofile.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(visitorprofile.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Identity(); ok {
		_spec.SetField(visitorprofile.FieldIdentity, field.TypeJSON, value)
	}
	if _u.mutation.IdentityCleared() {
		_spec.ClearField(visitorprofile.FieldIdentity, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(visitorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visitorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VisitorProfileUpdateOne is the builder for updating a single VisitorProfile entity.
type VisitorProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VisitorProfileMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *VisitorProfileUpdateOne) SetTenantID(v uuid.UUID) *VisitorProfileUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableTenantID(v *uuid.UUID) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *VisitorProfileUpdateOne) SetWindowStart(v time.Time) *VisitorProfileUpdateOne {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableWindowStart(v *time.Time) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetWindowEnd sets the "window_end" field.
func (_u *VisitorProfileUpdateOne) SetWindowEnd(v time.Time) *VisitorProfileUpdateOne {
	_u.mutation.SetWindowEnd(v)
	return _u
}

// SetNillableWindowEnd sets the "window_end" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableWindowEnd(v *time.Time) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetWindowEnd(*v)
	}
	return _u
}

// SetVisitorKey sets the "visitor_key" field.
func (_u *VisitorProfileUpdateOne) SetVisitorKey(v string) *VisitorProfileUpdateOne {
	_u.mutation.SetVisitorKey(v)
	return _u
}

// SetNillableVisitorKey sets the "visitor_key" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableVisitorKey(v *string) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetVisitorKey(*v)
	}
	return _u
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_u *VisitorProfileUpdateOne) SetFirstSeenAt(v time.Time) *VisitorProfileUpdateOne {
	_u.mutation.SetFirstSeenAt(v)
	return _u
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableFirstSeenAt(v *time.Time) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetFirstSeenAt(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *VisitorProfileUpdateOne) SetLastSeenAt(v time.Time) *VisitorProfileUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableLastSeenAt(v *time.Time) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// SetVisitsCount sets the "visits_count" field.
func (_u *VisitorProfileUpdateOne) SetVisitsCount(v int) *VisitorProfileUpdateOne {
	_u.mutation.ResetVisitsCount()
	_u.mutation.SetVisitsCount(v)
	return _u
}

// SetNillableVisitsCount sets the "visits_count" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableVisitsCount(v *int) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetVisitsCount(*v)
	}
	return _u
}

// AddVisitsCount adds value to the "visits_count" field.
func (_u *VisitorProfileUpdateOne) AddVisitsCount(v int) *VisitorProfileUpdateOne {
	_u.mutation.AddVisitsCount(v)
	return _u
}

// SetTotalEvents sets the "total_events" field.
func (_u *VisitorProfileUpdateOne) SetTotalEvents(v int) *VisitorProfileUpdateOne {
	_u.mutation.ResetTotalEvents()
	_u.mutation.SetTotalEvents(v)
	return _u
}

// SetNillableTotalEvents sets the "total_events" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableTotalEvents(v *int) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetTotalEvents(*v)
	}
	return _u
}

// AddTotalEvents adds value to the "total_events" field.
func (_u *VisitorProfileUpdateOne) AddTotalEvents(v int) *VisitorProfileUpdateOne {
	_u.mutation.AddTotalEvents(v)
	return _u
}

// SetPageViews sets the "page_views" field.
func (_u *VisitorProfileUpdateOne) SetPageViews(v int) *VisitorProfileUpdateOne {
	_u.mutation.ResetPageViews()
	_u.mutation.SetPageViews(v)
	return _u
}

// SetNillablePageViews sets the "page_views" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillablePageViews(v *int) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetPageViews(*v)
	}
	return _u
}

// AddPageViews adds value to the "page_views" field.
func (_u *VisitorProfileUpdateOne) AddPageViews(v int) *VisitorProfileUpdateOne {
	_u.mutation.AddPageViews(v)
	return _u
}

// SetUniquePagesCount sets the "unique_pages_count" field.
func (_u *VisitorProfileUpdateOne) SetUniquePagesCount(v int) *VisitorProfileUpdateOne {
	_u.mutation.ResetUniquePagesCount()
	_u.mutation.SetUniquePagesCount(v)
	return _u
}

// SetNillableUniquePagesCount sets the "unique_pages_count" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableUniquePagesCount(v *int) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetUniquePagesCount(*v)
	}
	return _u
}

// AddUniquePagesCount adds value to the "unique_pages_count" field.
func (_u *VisitorProfileUpdateOne) AddUniquePagesCount(v int) *VisitorProfileUpdateOne {
	_u.mutation.AddUniquePagesCount(v)
	return _u
}

// SetTotalTimeOnPageMs sets the "total_time_on_page_ms" field.
func (_u *VisitorProfileUpdateOne) SetTotalTimeOnPageMs(v int) *VisitorProfileUpdateOne {
	_u.mutation.ResetTotalTimeOnPageMs()
	_u.mutation.SetTotalTimeOnPageMs(v)
	return _u
}

// SetNillableTotalTimeOnPageMs sets the "total_time_on_page_ms" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableTotalTimeOnPageMs(v *int) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetTotalTimeOnPageMs(*v)
	}
	return _u
}

// AddTotalTimeOnPageMs adds value to the "total_time_on_page_ms" field.
func (_u *VisitorProfileUpdateOne) AddTotalTimeOnPageMs(v int) *VisitorProfileUpdateOne {
	_u.mutation.AddTotalTimeOnPageMs(v)
	return _u
}

// SetAvgTimeOnPageMs sets the "avg_time_on_page_ms" field.
func (_u *VisitorProfileUpdateOne) SetAvgTimeOnPageMs(v float64) *VisitorProfileUpdateOne {
	_u.mutation.ResetAvgTimeOnPageMs()
	_u.mutation.SetAvgTimeOnPageMs(v)
	return _u
}

// SetNillableAvgTimeOnPageMs sets the "avg_time_on_page_ms" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableAvgTimeOnPageMs(v *float64) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetAvgTimeOnPageMs(*v)
	}
	return _u
}

// AddAvgTimeOnPageMs adds value to the "avg_time_on_page_ms" field.
func (_u *VisitorProfileUpdateOne) AddAvgTimeOnPageMs(v float64) *VisitorProfileUpdateOne {
	_u.mutation.AddAvgTimeOnPageMs(v)
	return _u
}

// SetMaxScrollPercentage sets the "max_scroll_percentage" field.
func (_u *VisitorProfileUpdateOne) SetMaxScrollPercentage(v float64) *VisitorProfileUpdateOne {
	_u.mutation.ResetMaxScrollPercentage()
	_u.mutation.SetMaxScrollPercentage(v)
	return _u
}

// SetNillableMaxScrollPercentage sets the "max_scroll_percentage" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableMaxScrollPercentage(v *float64) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetMaxScrollPercentage(*v)
	}
	return _u
}

// AddMaxScrollPercentage adds value to the "max_scroll_percentage" field.
func (_u *VisitorProfileUpdateOne) AddMaxScrollPercentage(v float64) *VisitorProfileUpdateOne {
	_u.mutation.AddMaxScrollPercentage(v)
	return _u
}

// SetFlags sets the "flags" field.
func (_u *VisitorProfileUpdateOne) SetFlags(v map[string]bool) *VisitorProfileUpdateOne {
	_u.mutation.SetFlags(v)
	return _u
}

// ClearFlags clears the value of the "flags" field.
func (_u *VisitorProfileUpdateOne) ClearFlags() *VisitorProfileUpdateOne {
	_u.mutation.ClearFlags()
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *VisitorProfileUpdateOne) SetEngagementScore(v int) *VisitorProfileUpdateOne {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableEngagementScore(v *int) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *VisitorProfileUpdateOne) AddEngagementScore(v int) *VisitorProfileUpdateOne {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetEngagementSegment sets the "engagement_segment" field.
func (_u *VisitorProfileUpdateOne) SetEngagementSegment(v string) *VisitorProfileUpdateOne {
	_u.mutation.SetEngagementSegment(v)
	return _u
}

// SetNillableEngagementSegment sets the "engagement_segment" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableEngagementSegment(v *string) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetEngagementSegment(*v)
	}
	return _u
}

// SetLat sets the "lat" field.
func (_u *VisitorProfileUpdateOne) SetLat(v float64) *VisitorProfileUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableLat(v *float64) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *VisitorProfileUpdateOne) AddLat(v float64) *VisitorProfileUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *VisitorProfileUpdateOne) ClearLat() *VisitorProfileUpdateOne {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *VisitorProfileUpdateOne) SetLng(v float64) *VisitorProfileUpdateOne {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableLng(v *float64) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *VisitorProfileUpdateOne) AddLng(v float64) *VisitorProfileUpdateOne {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *VisitorProfileUpdateOne) ClearLng() *VisitorProfileUpdateOne {
	_u.mutation.ClearLng()
	return _u
}

// SetCity sets the "city" field.
func (_u *VisitorProfileUpdateOne) SetCity(v string) *VisitorProfileUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableCity(v *string) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *VisitorProfileUpdateOne) ClearCity() *VisitorProfileUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetRegion sets the "region" field.
func (_u *VisitorProfileUpdateOne) SetRegion(v string) *VisitorProfileUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableRegion(v *string) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *VisitorProfileUpdateOne) ClearRegion() *VisitorProfileUpdateOne {
	_u.mutation.ClearRegion()
	return _u
}

// SetCountry sets the "country" field.
func (_u *VisitorProfileUpdateOne) SetCountry(v string) *VisitorProfileUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *VisitorProfileUpdateOne) SetNillableCountry(v *string) *VisitorProfileUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *VisitorProfileUpdateOne) ClearCountry() *VisitorProfileUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetIdentity sets the "identity" field.
func (_u *VisitorProfileUpdateOne) SetIdentity(v map[string]string) *VisitorProfileUpdateOne {
	_u.mutation.SetIdentity(v)
	return _u
}

// ClearIdentity clears the value of the "identity" field.
func (_u *VisitorProfileUpdateOne) ClearIdentity() *VisitorProfileUpdateOne {
	_u.mutation.ClearIdentity()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VisitorProfileUpdateOne) SetUpdatedAt(v time.Time) *VisitorProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VisitorProfileMutation object of the builder.
func (_u *VisitorProfileUpdateOne) Mutation() *VisitorProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the VisitorProfileUpdate builder.
func (_u *VisitorProfileUpdateOne) Where(ps ...predicate.VisitorProfile) *VisitorProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VisitorProfileUpdateOne) Select(field string, fields ...string) *VisitorProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VisitorProfile entity.
func (_u *VisitorProfileUpdateOne) Save(ctx context.Context) (*VisitorProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VisitorProfileUpdateOne) SaveX(ctx context.Context) *VisitorProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VisitorProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VisitorProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VisitorProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := visitorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VisitorProfileUpdateOne) check() error {
	if v, ok := _u.mutation.VisitorKey(); ok {
		if err := visitorprofile.VisitorKeyValidator(v); err != nil {
			return &ValidationError{Name: "visitor_key", err: fmt.Errorf(`ent: validator failed for field "VisitorProfile.visitor_key": %w`, err)}
		}
	}
	return nil
}

func (_u *VisitorProfileUpdateOne) sqlSave(ctx context.Context) (_node *VisitorProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(visitorprofile.Table, visitorprofile.Columns, sqlgraph.NewFieldSpec(visitorprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VisitorProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, visitorprofile.FieldID)
		for _, f := range fields {
			if !visitorprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != visitorprofile.FieldID {
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
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(visitorprofile.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(visitorprofile.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WindowEnd(); ok {
		_spec.SetField(visitorprofile.FieldWindowEnd, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VisitorKey(); ok {
		_spec.SetField(visitorprofile.FieldVisitorKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeenAt(); ok {
		_spec.SetField(visitorprofile.FieldFirstSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(visitorprofile.FieldLastSeenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.VisitsCount(); ok {
		_spec.SetField(visitorprofile.FieldVisitsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVisitsCount(); ok {
		_spec.AddField(visitorprofile.FieldVisitsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalEvents(); ok {
		_spec.SetField(visitorprofile.FieldTotalEvents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalEvents(); ok {
		_spec.AddField(visitorprofile.FieldTotalEvents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageViews(); ok {
		_spec.SetField(visitorprofile.FieldPageViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageViews(); ok {
		_spec.AddField(visitorprofile.FieldPageViews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UniquePagesCount(); ok {
		_spec.SetField(visitorprofile.FieldUniquePagesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUniquePagesCount(); ok {
		_spec.AddField(visitorprofile.FieldUniquePagesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeOnPageMs(); ok {
		_spec.SetField(visitorprofile.FieldTotalTimeOnPageMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeOnPageMs(); ok {
		_spec.AddField(visitorprofile.FieldTotalTimeOnPageMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTimeOnPageMs(); ok {
		_spec.SetField(visitorprofile.FieldAvgTimeOnPageMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTimeOnPageMs(); ok {
		_spec.AddField(visitorprofile.FieldAvgTimeOnPageMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScrollPercentage(); ok {
		_spec.SetField(visitorprofile.FieldMaxScrollPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScrollPercentage(); ok {
		_spec.AddField(visitorprofile.FieldMaxScrollPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Flags(); ok {
		_spec.SetField(visitorprofile.FieldFlags, field.TypeJSON, value)
	}
	if _u.mutation.FlagsCleared() {
		_spec.ClearField(visitorprofile.FieldFlags, field.TypeJSON)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(visitorprofile.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(visitorprofile.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementSegment(); ok {
		_spec.SetField(visitorprofile.FieldEngagementSegment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(visitorprofile.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(visitorprofile.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(visitorprofile.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(visitorprofile.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(visitorprofile.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(visitorprofile.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(visitorprofile.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(visitorprofile.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(visitorprofile.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(visitorprofile.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(visitorprofile.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(visitorprofile.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Identity(); ok {
		_spec.SetField(visitorprofile.FieldIdentity, field.TypeJSON, value)
	}
	if _u.mutation.IdentityCleared() {
		_spec.ClearField(visitorprofile.FieldIdentity, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(visitorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &VisitorProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{visitorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
