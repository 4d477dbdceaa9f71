// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"visitor-pulse-api/ent/predicate"
	"visitor-pulse-api/ent/rawevent"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// RawEventUpdate is the builder for updating RawEvent entities.
type RawEventUpdate struct {
	config
	hooks    []Hook
	mutation *RawEventMutation
}

// Where appends a list predicates to the RawEventUpdate builder.
func (_u *RawEventUpdate) Where(ps ...predicate.RawEvent) *RawEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *RawEventUpdate) SetTenantID(v uuid.UUID) *RawEventUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableTenantID(v *uuid.UUID) *RawEventUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetUploadID sets the "upload_id" field.
func (_u *RawEventUpdate) SetUploadID(v uuid.UUID) *RawEventUpdate {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableUploadID(v *uuid.UUID) *RawEventUpdate {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// SetVisitorKey sets the "visitor_key" field.
func (_u *RawEventUpdate) SetVisitorKey(v string) *RawEventUpdate {
	_u.mutation.SetVisitorKey(v)
	return _u
}

// SetNillableVisitorKey sets the "visitor_key" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableVisitorKey(v *string) *RawEventUpdate {
	if v != nil {
		_u.SetVisitorKey(*v)
	}
	return _u
}

// SetVisitorUUID sets the "visitor_uuid" field.
func (_u *RawEventUpdate) SetVisitorUUID(v string) *RawEventUpdate {
	_u.mutation.SetVisitorUUID(v)
	return _u
}

// SetNillableVisitorUUID sets the "visitor_uuid" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableVisitorUUID(v *string) *RawEventUpdate {
	if v != nil {
		_u.SetVisitorUUID(*v)
	}
	return _u
}

// ClearVisitorUUID clears the value of the "visitor_uuid" field.
func (_u *RawEventUpdate) ClearVisitorUUID() *RawEventUpdate {
	_u.mutation.ClearVisitorUUID()
	return _u
}

// SetIP sets the "ip" field.
func (_u *RawEventUpdate) SetIP(v string) *RawEventUpdate {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableIP(v *string) *RawEventUpdate {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *RawEventUpdate) ClearIP() *RawEventUpdate {
	_u.mutation.ClearIP()
	return _u
}

// SetEventTs sets the "event_ts" field.
func (_u *RawEventUpdate) SetEventTs(v time.Time) *RawEventUpdate {
	_u.mutation.SetEventTs(v)
	return _u
}

// SetNillableEventTs sets the "event_ts" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableEventTs(v *time.Time) *RawEventUpdate {
	if v != nil {
		_u.SetEventTs(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *RawEventUpdate) SetEventType(v string) *RawEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableEventType(v *string) *RawEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *RawEventUpdate) ClearEventType() *RawEventUpdate {
	_u.mutation.ClearEventType()
	return _u
}

// SetURL sets the "url" field.
func (_u *RawEventUpdate) SetURL(v string) *RawEventUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableURL(v *string) *RawEventUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *RawEventUpdate) ClearURL() *RawEventUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetReferrerURL sets the "referrer_url" field.
func (_u *RawEventUpdate) SetReferrerURL(v string) *RawEventUpdate {
	_u.mutation.SetReferrerURL(v)
	return _u
}

// SetNillableReferrerURL sets the "referrer_url" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableReferrerURL(v *string) *RawEventUpdate {
	if v != nil {
		_u.SetReferrerURL(*v)
	}
	return _u
}

// ClearReferrerURL clears the value of the "referrer_url" field.
func (_u *RawEventUpdate) ClearReferrerURL() *RawEventUpdate {
	_u.mutation.ClearReferrerURL()
	return _u
}

// SetTimeOnPageMs sets the "time_on_page_ms" field.
func (_u *RawEventUpdate) SetTimeOnPageMs(v int) *RawEventUpdate {
	_u.mutation.ResetTimeOnPageMs()
	_u.mutation.SetTimeOnPageMs(v)
	return _u
}

// SetNillableTimeOnPageMs sets the "time_on_page_ms" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableTimeOnPageMs(v *int) *RawEventUpdate {
	if v != nil {
		_u.SetTimeOnPageMs(*v)
	}
	return _u
}

// AddTimeOnPageMs adds value to the "time_on_page_ms" field.
func (_u *RawEventUpdate) AddTimeOnPageMs(v int) *RawEventUpdate {
	_u.mutation.AddTimeOnPageMs(v)
	return _u
}

// ClearTimeOnPageMs clears the value of the "time_on_page_ms" field.
func (_u *RawEventUpdate) ClearTimeOnPageMs() *RawEventUpdate {
	_u.mutation.ClearTimeOnPageMs()
	return _u
}

// SetIdleTimeMs sets the "idle_time_ms" field.
func (_u *RawEventUpdate) SetIdleTimeMs(v int) *RawEventUpdate {
	_u.mutation.ResetIdleTimeMs()
	_u.mutation.SetIdleTimeMs(v)
	return _u
}

// SetNillableIdleTimeMs sets the "idle_time_ms" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableIdleTimeMs(v *int) *RawEventUpdate {
	if v != nil {
		_u.SetIdleTimeMs(*v)
	}
	return _u
}

// AddIdleTimeMs adds value to the "idle_time_ms" field.
func (_u *RawEventUpdate) AddIdleTimeMs(v int) *RawEventUpdate {
	_u.mutation.AddIdleTimeMs(v)
	return _u
}

// ClearIdleTimeMs clears the value of the "idle_time_ms" field.
func (_u *RawEventUpdate) ClearIdleTimeMs() *RawEventUpdate {
	_u.mutation.ClearIdleTimeMs()
	return _u
}

// SetScrollPct sets the "scroll_pct" field.
func (_u *RawEventUpdate) SetScrollPct(v float64) *RawEventUpdate {
	_u.mutation.ResetScrollPct()
	_u.mutation.SetScrollPct(v)
	return _u
}

// SetNillableScrollPct sets the "scroll_pct" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableScrollPct(v *float64) *RawEventUpdate {
	if v != nil {
		_u.SetScrollPct(*v)
	}
	return _u
}

// AddScrollPct adds value to the "scroll_pct" field.
func (_u *RawEventUpdate) AddScrollPct(v float64) *RawEventUpdate {
	_u.mutation.AddScrollPct(v)
	return _u
}

// ClearScrollPct clears the value of the "scroll_pct" field.
func (_u *RawEventUpdate) ClearScrollPct() *RawEventUpdate {
	_u.mutation.ClearScrollPct()
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *RawEventUpdate) SetThreshold(v string) *RawEventUpdate {
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableThreshold(v *string) *RawEventUpdate {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// ClearThreshold clears the value of the "threshold" field.
func (_u *RawEventUpdate) ClearThreshold() *RawEventUpdate {
	_u.mutation.ClearThreshold()
	return _u
}

// SetElementIdentifier sets the "element_identifier" field.
func (_u *RawEventUpdate) SetElementIdentifier(v string) *RawEventUpdate {
	_u.mutation.SetElementIdentifier(v)
	return _u
}

// SetNillableElementIdentifier sets the "element_identifier" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableElementIdentifier(v *string) *RawEventUpdate {
	if v != nil {
		_u.SetElementIdentifier(*v)
	}
	return _u
}

// ClearElementIdentifier clears the value of the "element_identifier" field.
func (_u *RawEventUpdate) ClearElementIdentifier() *RawEventUpdate {
	_u.mutation.ClearElementIdentifier()
	return _u
}

// SetElementText sets the "element_text" field.
func (_u *RawEventUpdate) SetElementText(v string) *RawEventUpdate {
	_u.mutation.SetElementText(v)
	return _u
}

// SetNillableElementText sets the "element_text" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableElementText(v *string) *RawEventUpdate {
	if v != nil {
		_u.SetElementText(*v)
	}
	return _u
}

// ClearElementText clears the value of the "element_text" field.
func (_u *RawEventUpdate) ClearElementText() *RawEventUpdate {
	_u.mutation.ClearElementText()
	return _u
}

// SetTitle sets the "title" field.
func (_u *RawEventUpdate) SetTitle(v string) *RawEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableTitle(v *string) *RawEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *RawEventUpdate) ClearTitle() *RawEventUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetLat sets the "lat" field.
func (_u *RawEventUpdate) SetLat(v float64) *RawEventUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableLat(v *float64) *RawEventUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *RawEventUpdate) AddLat(v float64) *RawEventUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *RawEventUpdate) ClearLat() *RawEventUpdate {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *RawEventUpdate) SetLng(v float64) *RawEventUpdate {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *RawEventUpdate) SetNillableLng(v *float64) *RawEventUpdate {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *RawEventUpdate) AddLng(v float64) *RawEventUpdate {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *RawEventUpdate) ClearLng() *RawEventUpdate {
	_u.mutation.ClearLng()
	return _u
}

// SetRawRow sets the "raw_row" field.
func (_u *RawEventUpdate) SetRawRow(v map[string]string) *RawEventUpdate {
	_u.mutation.SetRawRow(v)
	return _u
}

// ClearRawRow clears the value of the "raw_row" field.
func (_u *RawEventUpdate) ClearRawRow() *RawEventUpdate {
	_u.mutation.ClearRawRow()
	return _u
}

// Mutation returns the RawEventMutation object of the builder.
func (_u *RawEventUpdate) Mutation() *RawEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RawEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RawEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RawEventUpdate) check() error {
	if v, ok := _u.mutation.VisitorKey(); ok {
		if err := rawevent.VisitorKeyValidator(v); err != nil {
			return &ValidationError{Name: "visitor_key", err: fmt.Errorf(`ent: validator failed for field "RawEvent.visitor_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VisitorUUID(); ok {
		if err := rawevent.VisitorUUIDValidator(v); err != nil {
			return &ValidationError{Name: "visitor_uuid", err: fmt.Errorf(`ent: validator failed for field "RawEvent.visitor_uuid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IP(); ok {
		if err := rawevent.IPValidator(v); err != nil {
			return &ValidationError{Name: "ip", err: fmt.Errorf(`ent: validator failed for field "RawEvent.ip": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := rawevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "RawEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Threshold(); ok {
		if err := rawevent.ThresholdValidator(v); err != nil {
			return &ValidationError{Name: "threshold", err: fmt.Errorf(`ent: validator failed for field "RawEvent.threshold": %w`, err)}
		}
	}
	return nil
}

func (_u *RawEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rawevent.Table, rawevent.Columns, sqlgraph.NewFieldSpec(rawevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(rawevent.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UploadID(); ok {
		_spec.SetField(rawevent.FieldUploadID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VisitorKey(); ok {
		_spec.SetField(rawevent.FieldVisitorKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisitorUUID(); ok {
		_spec.SetField(rawevent.FieldVisitorUUID, field.TypeString, value)
	}
	if _u.mutation.VisitorUUIDCleared() {
		_spec.ClearField(rawevent.FieldVisitorUUID, field.TypeString)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(rawevent.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(rawevent.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.EventTs(); ok {
		_spec.SetField(rawevent.FieldEventTs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(rawevent.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(rawevent.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(rawevent.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(rawevent.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.ReferrerURL(); ok {
		_spec.SetField(rawevent.FieldReferrerURL, field.TypeString, value)
	}
	if _u.mutation.ReferrerURLCleared() {
		_spec.ClearField(rawevent.FieldReferrerURL, field.TypeString)
	}
	if value, ok := _u.mutation.TimeOnPageMs(); ok {
		_spec.SetField(rawevent.FieldTimeOnPageMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeOnPageMs(); ok {
		_spec.AddField(rawevent.FieldTimeOnPageMs, field.TypeInt, value)
	}
	if _u.mutation.TimeOnPageMsCleared() {
		_spec.ClearField(rawevent.FieldTimeOnPageMs, field.TypeInt)
	}
	if value, ok := _u.mutation.IdleTimeMs(); ok {
		_spec.SetField(rawevent.FieldIdleTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIdleTimeMs(); ok {
		_spec.AddField(rawevent.FieldIdleTimeMs, field.TypeInt, value)
	}
	if _u.mutation.IdleTimeMsCleared() {
		_spec.ClearField(rawevent.FieldIdleTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ScrollPct(); ok {
		_spec.SetField(rawevent.FieldScrollPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScrollPct(); ok {
		_spec.AddField(rawevent.FieldScrollPct, field.TypeFloat64, value)
	}
	if _u.mutation.ScrollPctCleared() {
		_spec.ClearField(rawevent.FieldScrollPct, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(rawevent.FieldThreshold, field.TypeString, value)
	}
	if _u.mutation.ThresholdCleared() {
		_spec.ClearField(rawevent.FieldThreshold, field.TypeString)
	}
	if value, ok := _u.mutation.ElementIdentifier(); ok {
		_spec.SetField(rawevent.FieldElementIdentifier, field.TypeString, value)
	}
	if _u.mutation.ElementIdentifierCleared() {
		_spec.ClearField(rawevent.FieldElementIdentifier, field.TypeString)
	}
	if value, ok := _u.mutation.ElementText(); ok {
		_spec.SetField(rawevent.FieldElementText, field.TypeString, value)
	}
	if _u.mutation.ElementTextCleared() {
		_spec.ClearField(rawevent.FieldElementText, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(rawevent.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(rawevent.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(rawevent.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(rawevent.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(rawevent.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(rawevent.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(rawevent.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(rawevent.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RawRow(); ok {
		_spec.SetField(rawevent.FieldRawRow, field.TypeJSON, value)
	}
	if _u.mutation.RawRowCleared() {
		_spec.ClearField(rawevent.FieldRawRow, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rawevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RawEventUpdateOne is the builder for updating a single RawEvent entity.
type RawEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RawEventMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *RawEventUpdateOne) SetTenantID(v uuid.UUID) *RawEventUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableTenantID(v *uuid.UUID) *RawEventUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetUploadID sets the "upload_id" field.
func (_u *RawEventUpdateOne) SetUploadID(v uuid.UUID) *RawEventUpdateOne {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableUploadID(v *uuid.UUID) *RawEventUpdateOne {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// SetVisitorKey sets the "visitor_key" field.
func (_u *RawEventUpdateOne) SetVisitorKey(v string) *RawEventUpdateOne {
	_u.mutation.SetVisitorKey(v)
	return _u
}

// SetNillableVisitorKey sets the "visitor_key" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableVisitorKey(v *string) *RawEventUpdateOne {
	if v != nil {
		_u.SetVisitorKey(*v)
	}
	return _u
}

// SetVisitorUUID sets the "visitor_uuid" field.
func (_u *RawEventUpdateOne) SetVisitorUUID(v string) *RawEventUpdateOne {
	_u.mutation.SetVisitorUUID(v)
	return _u
}

// SetNillableVisitorUUID sets the "visitor_uuid" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableVisitorUUID(v *string) *RawEventUpdateOne {
	if v != nil {
		_u.SetVisitorUUID(*v)
	}
	return _u
}

// ClearVisitorUUID clears the value of the "visitor_uuid" field.
func (_u *RawEventUpdateOne) ClearVisitorUUID() *RawEventUpdateOne {
	_u.mutation.ClearVisitorUUID()
	return _u
}

// SetIP sets the "ip" field.
func (_u *RawEventUpdateOne) SetIP(v string) *RawEventUpdateOne {
	_u.mutation.SetIP(v)
	return _u
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableIP(v *string) *RawEventUpdateOne {
	if v != nil {
		_u.SetIP(*v)
	}
	return _u
}

// ClearIP clears the value of the "ip" field.
func (_u *RawEventUpdateOne) ClearIP() *RawEventUpdateOne {
	_u.mutation.ClearIP()
	return _u
}

// SetEventTs sets the "event_ts" field.
func (_u *RawEventUpdateOne) SetEventTs(v time.Time) *RawEventUpdateOne {
	_u.mutation.SetEventTs(v)
	return _u
}

// SetNillableEventTs sets the "event_ts" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableEventTs(v *time.Time) *RawEventUpdateOne {
	if v != nil {
		_u.SetEventTs(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *RawEventUpdateOne) SetEventType(v string) *RawEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableEventType(v *string) *RawEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// ClearEventType clears the value of the "event_type" field.
func (_u *RawEventUpdateOne) ClearEventType() *RawEventUpdateOne {
	_u.mutation.ClearEventType()
	return _u
}

// SetURL sets the "url" field.
func (_u *RawEventUpdateOne) SetURL(v string) *RawEventUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableURL(v *string) *RawEventUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *RawEventUpdateOne) ClearURL() *RawEventUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetReferrerURL sets the "referrer_url" field.
func (_u *RawEventUpdateOne) SetReferrerURL(v string) *RawEventUpdateOne {
	_u.mutation.SetReferrerURL(v)
	return _u
}

// SetNillableReferrerURL sets the "referrer_url" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableReferrerURL(v *string) *RawEventUpdateOne {
	if v != nil {
		_u.SetReferrerURL(*v)
	}
	return _u
}

// ClearReferrerURL clears the value of the "referrer_url" field.
func (_u *RawEventUpdateOne) ClearReferrerURL() *RawEventUpdateOne {
	_u.mutation.ClearReferrerURL()
	return _u
}

// SetTimeOnPageMs sets the "time_on_page_ms" field.
func (_u *RawEventUpdateOne) SetTimeOnPageMs(v int) *RawEventUpdateOne {
	_u.mutation.ResetTimeOnPageMs()
	_u.mutation.SetTimeOnPageMs(v)
	return _u
}

// SetNillableTimeOnPageMs sets the "time_on_page_ms" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableTimeOnPageMs(v *int) *RawEventUpdateOne {
	if v != nil {
		_u.SetTimeOnPageMs(*v)
	}
	return _u
}

// AddTimeOnPageMs adds value to the "time_on_page_ms" field.
func (_u *RawEventUpdateOne) AddTimeOnPageMs(v int) *RawEventUpdateOne {
	_u.mutation.AddTimeOnPageMs(v)
	return _u
}

// ClearTimeOnPageMs clears the value of the "time_on_page_ms" field.
func (_u *RawEventUpdateOne) ClearTimeOnPageMs() *RawEventUpdateOne {
	_u.mutation.ClearTimeOnPageMs()
	return _u
}

// SetIdleTimeMs sets the "idle_time_ms" field.
func (_u *RawEventUpdateOne) SetIdleTimeMs(v int) *RawEventUpdateOne {
	_u.mutation.ResetIdleTimeMs()
	_u.mutation.SetIdleTimeMs(v)
	return _u
}

// SetNillableIdleTimeMs sets the "idle_time_ms" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableIdleTimeMs(v *int) *RawEventUpdateOne {
	if v != nil {
		_u.SetIdleTimeMs(*v)
	}
	return _u
}

// AddIdleTimeMs adds value to the "idle_time_ms" field.
func (_u *RawEventUpdateOne) AddIdleTimeMs(v int) *RawEventUpdateOne {
	_u.mutation.AddIdleTimeMs(v)
	return _u
}

// ClearIdleTimeMs clears the value of the "idle_time_ms" field.
func (_u *RawEventUpdateOne) ClearIdleTimeMs() *RawEventUpdateOne {
	_u.mutation.ClearIdleTimeMs()
	return _u
}

// SetScrollPct sets the "scroll_pct" field.
func (_u *RawEventUpdateOne) SetScrollPct(v float64) *RawEventUpdateOne {
	_u.mutation.ResetScrollPct()
	_u.mutation.SetScrollPct(v)
	return _u
}

// SetNillableScrollPct sets the "scroll_pct" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableScrollPct(v *float64) *RawEventUpdateOne {
	if v != nil {
		_u.SetScrollPct(*v)
	}
	return _u
}

// AddScrollPct adds value to the "scroll_pct" field.
func (_u *RawEventUpdateOne) AddScrollPct(v float64) *RawEventUpdateOne {
	_u.mutation.AddScrollPct(v)
	return _u
}

// ClearScrollPct clears the value of the "scroll_pct" field.
func (_u *RawEventUpdateOne) ClearScrollPct() *RawEventUpdateOne {
	_u.mutation.ClearScrollPct()
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *RawEventUpdateOne) SetThreshold(v string) *RawEventUpdateOne {
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableThreshold(v *string) *RawEventUpdateOne {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// ClearThreshold clears the value of the "threshold" field.
func (_u *RawEventUpdateOne) ClearThreshold() *RawEventUpdateOne {
	_u.mutation.ClearThreshold()
	return _u
}

// SetElementIdentifier sets the "element_identifier" field.
func (_u *RawEventUpdateOne) SetElementIdentifier(v string) *RawEventUpdateOne {
	_u.mutation.SetElementIdentifier(v)
	return _u
}

// SetNillableElementIdentifier sets the "element_identifier" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableElementIdentifier(v *string) *RawEventUpdateOne {
	if v != nil {
		_u.SetElementIdentifier(*v)
	}
	return _u
}

// ClearElementIdentifier clears the value of the "element_identifier" field.
func (_u *RawEventUpdateOne) ClearElementIdentifier() *RawEventUpdateOne {
	_u.mutation.ClearElementIdentifier()
	return _u
}

// SetElementText sets the "element_text" field.
func (_u *RawEventUpdateOne) SetElementText(v string) *RawEventUpdateOne {
	_u.mutation.SetElementText(v)
	return _u
}

// SetNillableElementText sets the "element_text" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableElementText(v *string) *RawEventUpdateOne {
	if v != nil {
		_u.SetElementText(*v)
	}
	return _u
}

// ClearElementText clears the value of the "element_text" field.
func (_u *RawEventUpdateOne) ClearElementText() *RawEventUpdateOne {
	_u.mutation.ClearElementText()
	return _u
}

// SetTitle sets the "title" field.
func (_u *RawEventUpdateOne) SetTitle(v string) *RawEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableTitle(v *string) *RawEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *RawEventUpdateOne) ClearTitle() *RawEventUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetLat sets the "lat" field.
func (_u *RawEventUpdateOne) SetLat(v float64) *RawEventUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableLat(v *float64) *RawEventUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *RawEventUpdateOne) AddLat(v float64) *RawEventUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *RawEventUpdateOne) ClearLat() *RawEventUpdateOne {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *RawEventUpdateOne) SetLng(v float64) *RawEventUpdateOne {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *RawEventUpdateOne) SetNillableLng(v *float64) *RawEventUpdateOne {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *RawEventUpdateOne) AddLng(v float64) *RawEventUpdateOne {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *RawEventUpdateOne) ClearLng() *RawEventUpdateOne {
	_u.mutation.ClearLng()
	return _u
}

// SetRawRow sets the "raw_row" field.
func (_u *RawEventUpdateOne) SetRawRow(v map[string]string) *RawEventUpdateOne {
	_u.mutation.SetRawRow(v)
	return _u
}

// ClearRawRow clears the value of the "raw_row" field.
func (_u *RawEventUpdateOne) ClearRawRow() *RawEventUpdateOne {
	_u.mutation.ClearRawRow()
	return _u
}

// Mutation returns the RawEventMutation object of the builder.
func (_u *RawEventUpdateOne) Mutation() *RawEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RawEventUpdate builder.
func (_u *RawEventUpdateOne) Where(ps ...predicate.RawEvent) *RawEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RawEventUpdateOne) Select(field string, fields ...string) *RawEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RawEvent entity.
func (_u *RawEventUpdateOne) Save(ctx context.Context) (*RawEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawEventUpdateOne) SaveX(ctx context.Context) *RawEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RawEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RawEventUpdateOne) check() error {
	if v, ok := _u.mutation.VisitorKey(); ok {
		if err := rawevent.VisitorKeyValidator(v); err != nil {
			return &ValidationError{Name: "visitor_key", err: fmt.Errorf(`ent: validator failed for field "RawEvent.visitor_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VisitorUUID(); ok {
		if err := rawevent.VisitorUUIDValidator(v); err != nil {
			return &ValidationError{Name: "visitor_uuid", err: fmt.Errorf(`ent: validator failed for field "RawEvent.visitor_uuid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IP(); ok {
		if err := rawevent.IPValidator(v); err != nil {
			return &ValidationError{Name: "ip", err: fmt.Errorf(`ent: validator failed for field "RawEvent.ip": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EventType(); ok {
		if err := rawevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "RawEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Threshold(); ok {
		if err := rawevent.ThresholdValidator(v); err != nil {
			return &ValidationError{Name: "threshold", err: fmt.Errorf(`ent: validator failed for field "RawEvent.threshold": %w`, err)}
		}
	}
	return nil
}

func (_u *RawEventUpdateOne) sqlSave(ctx context.Context) (_node *RawEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rawevent.Table, rawevent.Columns, sqlgraph.NewFieldSpec(rawevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RawEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rawevent.FieldID)
		for _, f := range fields {
			if !rawevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rawevent.FieldID {
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
		_spec.SetField(rawevent.FieldTenantID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UploadID(); ok {
		_spec.SetField(rawevent.FieldUploadID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VisitorKey(); ok {
		_spec.SetField(rawevent.FieldVisitorKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.VisitorUUID(); ok {
		_spec.SetField(rawevent.FieldVisitorUUID, field.TypeString, value)
	}
	if _u.mutation.VisitorUUIDCleared() {
		_spec.ClearField(rawevent.FieldVisitorUUID, field.TypeString)
	}
	if value, ok := _u.mutation.IP(); ok {
		_spec.SetField(rawevent.FieldIP, field.TypeString, value)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(rawevent.FieldIP, field.TypeString)
	}
	if value, ok := _u.mutation.EventTs(); ok {
		_spec.SetField(rawevent.FieldEventTs, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(rawevent.FieldEventType, field.TypeString, value)
	}
	if _u.mutation.EventTypeCleared() {
		_spec.ClearField(rawevent.FieldEventType, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(rawevent.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(rawevent.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.ReferrerURL(); ok {
		_spec.SetField(rawevent.FieldReferrerURL, field.TypeString, value)
	}
	if _u.mutation.ReferrerURLCleared() {
		_spec.ClearField(rawevent.FieldReferrerURL, field.TypeString)
	}
	if value, ok := _u.mutation.TimeOnPageMs(); ok {
		_spec.SetField(rawevent.FieldTimeOnPageMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeOnPageMs(); ok {
		_spec.AddField(rawevent.FieldTimeOnPageMs, field.TypeInt, value)
	}
	if _u.mutation.TimeOnPageMsCleared() {
		_spec.ClearField(rawevent.FieldTimeOnPageMs, field.TypeInt)
	}
	if value, ok := _u.mutation.IdleTimeMs(); ok {
		_spec.SetField(rawevent.FieldIdleTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIdleTimeMs(); ok {
		_spec.AddField(rawevent.FieldIdleTimeMs, field.TypeInt, value)
	}
	if _u.mutation.IdleTimeMsCleared() {
		_spec.ClearField(rawevent.FieldIdleTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.ScrollPct(); ok {
		_spec.SetField(rawevent.FieldScrollPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScrollPct(); ok {
		_spec.AddField(rawevent.FieldScrollPct, field.TypeFloat64, value)
	}
	if _u.mutation.ScrollPctCleared() {
		_spec.ClearField(rawevent.FieldScrollPct, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(rawevent.FieldThreshold, field.TypeString, value)
	}
	if _u.mutation.ThresholdCleared() {
		_spec.ClearField(rawevent.FieldThreshold, field.TypeString)
	}
	if value, ok := _u.mutation.ElementIdentifier(); ok {
		_spec.SetField(rawevent.FieldElementIdentifier, field.TypeString, value)
	}
	if _u.mutation.ElementIdentifierCleared() {
		_spec.ClearField(rawevent.FieldElementIdentifier, field.TypeString)
	}
	if value, ok := _u.mutation.ElementText(); ok {
		_spec.SetField(rawevent.FieldElementText, field.TypeString, value)
	}
	if _u.mutation.ElementTextCleared() {
		_spec.ClearField(rawevent.FieldElementText, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(rawevent.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(rawevent.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(rawevent.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(rawevent.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(rawevent.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(rawevent.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(rawevent.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(rawevent.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RawRow(); ok {
		_spec.SetField(rawevent.FieldRawRow, field.TypeJSON, value)
	}
	if _u.mutation.RawRowCleared() {
		_spec.ClearField(rawevent.FieldRawRow, field.TypeJSON)
	}
	_node = &RawEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rawevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
