// Code generated by ent, DO NOT EDIT.

package rawevent

import (
	"time"
	"visitor-pulse-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldTenantID, v))
}

// UploadID applies equality check predicate on the "upload_id" field. It's identical to UploadIDEQ.
func UploadID(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldUploadID, v))
}

// VisitorKey applies equality check predicate on the "visitor_key" field. It's identical to VisitorKeyEQ.
func VisitorKey(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldVisitorKey, v))
}

// VisitorUUID applies equality check predicate on the "visitor_uuid" field. It's identical to VisitorUUIDEQ.
func VisitorUUID(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldVisitorUUID, v))
}

// IP applies equality check predicate on the "ip" field. It's identical to IPEQ.
func IP(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldIP, v))
}

// EventTs applies equality check predicate on the "event_ts" field. It's identical to EventTsEQ.
func EventTs(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldEventTs, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldEventType, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldURL, v))
}

// ReferrerURL applies equality check predicate on the "referrer_url" field. It's identical to ReferrerURLEQ.
func ReferrerURL(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldReferrerURL, v))
}

// TimeOnPageMs applies equality check predicate on the "time_on_page_ms" field. It's identical to TimeOnPageMsEQ.
func TimeOnPageMs(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldTimeOnPageMs, v))
}

// IdleTimeMs applies equality check predicate on the "idle_time_ms" field. It's identical to IdleTimeMsEQ.
func IdleTimeMs(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldIdleTimeMs, v))
}

// ScrollPct applies equality check predicate on the "scroll_pct" field. It's identical to ScrollPctEQ.
func ScrollPct(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldScrollPct, v))
}

// Threshold applies equality check predicate on the "threshold" field. It's identical to ThresholdEQ.
func Threshold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldThreshold, v))
}

// ElementIdentifier applies equality check predicate on the "element_identifier" field. It's identical to ElementIdentifierEQ.
func ElementIdentifier(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldElementIdentifier, v))
}

// ElementText applies equality check predicate on the "element_text" field. It's identical to ElementTextEQ.
func ElementText(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldElementText, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldTitle, v))
}

// Lat applies equality check predicate on the "lat" field. It's identical to LatEQ.
func Lat(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldLat, v))
}

// Lng applies equality check predicate on the "lng" field. It's identical to LngEQ.
func Lng(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldLng, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldTenantID, v))
}

// UploadIDEQ applies the EQ predicate on the "upload_id" field.
func UploadIDEQ(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldUploadID, v))
}

// UploadIDNEQ applies the NEQ predicate on the "upload_id" field.
func UploadIDNEQ(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldUploadID, v))
}

// UploadIDIn applies the In predicate on the "upload_id" field.
func UploadIDIn(vs ...uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldUploadID, vs...))
}

// UploadIDNotIn applies the NotIn predicate on the "upload_id" field.
func UploadIDNotIn(vs ...uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldUploadID, vs...))
}

// UploadIDGT applies the GT predicate on the "upload_id" field.
func UploadIDGT(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldUploadID, v))
}

// UploadIDGTE applies the GTE predicate on the "upload_id" field.
func UploadIDGTE(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldUploadID, v))
}

// UploadIDLT applies the LT predicate on the "upload_id" field.
func UploadIDLT(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldUploadID, v))
}

// UploadIDLTE applies the LTE predicate on the "upload_id" field.
func UploadIDLTE(v uuid.UUID) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldUploadID, v))
}

// VisitorKeyEQ applies the EQ predicate on the "visitor_key" field.
func VisitorKeyEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldVisitorKey, v))
}

// VisitorKeyNEQ applies the NEQ predicate on the "visitor_key" field.
func VisitorKeyNEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldVisitorKey, v))
}

// VisitorKeyIn applies the In predicate on the "visitor_key" field.
func VisitorKeyIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldVisitorKey, vs...))
}

// VisitorKeyNotIn applies the NotIn predicate on the "visitor_key" field.
func VisitorKeyNotIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldVisitorKey, vs...))
}

// VisitorKeyGT applies the GT predicate on the "visitor_key" field.
func VisitorKeyGT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldVisitorKey, v))
}

// VisitorKeyGTE applies the GTE predicate on the "visitor_key" field.
func VisitorKeyGTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldVisitorKey, v))
}

// VisitorKeyLT applies the LT predicate on the "visitor_key" field.
func VisitorKeyLT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldVisitorKey, v))
}

// VisitorKeyLTE applies the LTE predicate on the "visitor_key" field.
func VisitorKeyLTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldVisitorKey, v))
}

// VisitorKeyContains applies the Contains predicate on the "visitor_key" field.
func VisitorKeyContains(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContains(FieldVisitorKey, v))
}

// VisitorKeyHasPrefix applies the HasPrefix predicate on the "visitor_key" field.
func VisitorKeyHasPrefix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasPrefix(FieldVisitorKey, v))
}

// VisitorKeyHasSuffix applies the HasSuffix predicate on the "visitor_key" field.
func VisitorKeyHasSuffix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasSuffix(FieldVisitorKey, v))
}

// VisitorKeyEqualFold applies the EqualFold predicate on the "visitor_key" field.
func VisitorKeyEqualFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEqualFold(FieldVisitorKey, v))
}

// VisitorKeyContainsFold applies the ContainsFold predicate on the "visitor_key" field.
func VisitorKeyContainsFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContainsFold(FieldVisitorKey, v))
}

// VisitorUUIDEQ applies the EQ predicate on the "visitor_uuid" field.
func VisitorUUIDEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldVisitorUUID, v))
}

// VisitorUUIDNEQ applies the NEQ predicate on the "visitor_uuid" field.
func VisitorUUIDNEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldVisitorUUID, v))
}

// VisitorUUIDIn applies the In predicate on the "visitor_uuid" field.
func VisitorUUIDIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldVisitorUUID, vs...))
}

// VisitorUUIDNotIn applies the NotIn predicate on the "visitor_uuid" field.
func VisitorUUIDNotIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldVisitorUUID, vs...))
}

// VisitorUUIDGT applies the GT predicate on the "visitor_uuid" field.
func VisitorUUIDGT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldVisitorUUID, v))
}

// VisitorUUIDGTE applies the GTE predicate on the "visitor_uuid" field.
func VisitorUUIDGTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldVisitorUUID, v))
}

// VisitorUUIDLT applies the LT predicate on the "visitor_uuid" field.
func VisitorUUIDLT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldVisitorUUID, v))
}

// VisitorUUIDLTE applies the LTE predicate on the "visitor_uuid" field.
func VisitorUUIDLTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldVisitorUUID, v))
}

// VisitorUUIDContains applies the Contains predicate on the "visitor_uuid" field.
func VisitorUUIDContains(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContains(FieldVisitorUUID, v))
}

// VisitorUUIDHasPrefix applies the HasPrefix predicate on the "visitor_uuid" field.
func VisitorUUIDHasPrefix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasPrefix(FieldVisitorUUID, v))
}

// VisitorUUIDHasSuffix applies the HasSuffix predicate on the "visitor_uuid" field.
func VisitorUUIDHasSuffix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasSuffix(FieldVisitorUUID, v))
}

// VisitorUUIDIsNil applies the IsNil predicate on the "visitor_uuid" field.
func VisitorUUIDIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldVisitorUUID))
}

// VisitorUUIDNotNil applies the NotNil predicate on the "visitor_uuid" field.
func VisitorUUIDNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldVisitorUUID))
}

// VisitorUUIDEqualFold applies the EqualFold predicate on the "visitor_uuid" field.
func VisitorUUIDEqualFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEqualFold(FieldVisitorUUID, v))
}

// VisitorUUIDContainsFold applies the ContainsFold predicate on the "visitor_uuid" field.
func VisitorUUIDContainsFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContainsFold(FieldVisitorUUID, v))
}

// IPEQ applies the EQ predicate on the "ip" field.
func IPEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldIP, v))
}

// IPNEQ applies the NEQ predicate on the "ip" field.
func IPNEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldIP, v))
}

// IPIn applies the In predicate on the "ip" field.
func IPIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldIP, vs...))
}

// IPNotIn applies the NotIn predicate on the "ip" field.
func IPNotIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldIP, vs...))
}

// IPGT applies the GT predicate on the "ip" field.
func IPGT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldIP, v))
}

// IPGTE applies the GTE predicate on the "ip" field.
func IPGTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldIP, v))
}

// IPLT applies the LT predicate on the "ip" field.
func IPLT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldIP, v))
}

// IPLTE applies the LTE predicate on the "ip" field.
func IPLTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldIP, v))
}

// IPContains applies the Contains predicate on the "ip" field.
func IPContains(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContains(FieldIP, v))
}

// IPHasPrefix applies the HasPrefix predicate on the "ip" field.
func IPHasPrefix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasPrefix(FieldIP, v))
}

// IPHasSuffix applies the HasSuffix predicate on the "ip" field.
func IPHasSuffix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasSuffix(FieldIP, v))
}

// IPIsNil applies the IsNil predicate on the "ip" field.
func IPIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldIP))
}

// IPNotNil applies the NotNil predicate on the "ip" field.
func IPNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldIP))
}

// IPEqualFold applies the EqualFold predicate on the "ip" field.
func IPEqualFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEqualFold(FieldIP, v))
}

// IPContainsFold applies the ContainsFold predicate on the "ip" field.
func IPContainsFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContainsFold(FieldIP, v))
}

// EventTsEQ applies the EQ predicate on the "event_ts" field.
func EventTsEQ(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldEventTs, v))
}

// EventTsNEQ applies the NEQ predicate on the "event_ts" field.
func EventTsNEQ(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldEventTs, v))
}

// EventTsIn applies the In predicate on the "event_ts" field.
func EventTsIn(vs ...time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldEventTs, vs...))
}

// EventTsNotIn applies the NotIn predicate on the "event_ts" field.
func EventTsNotIn(vs ...time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldEventTs, vs...))
}

// EventTsGT applies the GT predicate on the "event_ts" field.
func EventTsGT(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldEventTs, v))
}

// EventTsGTE applies the GTE predicate on the "event_ts" field.
func EventTsGTE(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldEventTs, v))
}

// EventTsLT applies the LT predicate on the "event_ts" field.
func EventTsLT(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldEventTs, v))
}

// EventTsLTE applies the LTE predicate on the "event_ts" field.
func EventTsLTE(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldEventTs, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeIsNil applies the IsNil predicate on the "event_type" field.
func EventTypeIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldEventType))
}

// EventTypeNotNil applies the NotNil predicate on the "event_type" field.
func EventTypeNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldEventType))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContainsFold(FieldEventType, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContainsFold(FieldURL, v))
}

// ReferrerURLEQ applies the EQ predicate on the "referrer_url" field.
func ReferrerURLEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldReferrerURL, v))
}

// ReferrerURLNEQ applies the NEQ predicate on the "referrer_url" field.
func ReferrerURLNEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldReferrerURL, v))
}

// ReferrerURLIn applies the In predicate on the "referrer_url" field.
func ReferrerURLIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldReferrerURL, vs...))
}

// ReferrerURLNotIn applies the NotIn predicate on the "referrer_url" field.
func ReferrerURLNotIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldReferrerURL, vs...))
}

// ReferrerURLGT applies the GT predicate on the "referrer_url" field.
func ReferrerURLGT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldReferrerURL, v))
}

// ReferrerURLGTE applies the GTE predicate on the "referrer_url" field.
func ReferrerURLGTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldReferrerURL, v))
}

// ReferrerURLLT applies the LT predicate on the "referrer_url" field.
func ReferrerURLLT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldReferrerURL, v))
}

// ReferrerURLLTE applies the LTE predicate on the "referrer_url" field.
func ReferrerURLLTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldReferrerURL, v))
}

// ReferrerURLContains applies the Contains predicate on the "referrer_url" field.
func ReferrerURLContains(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContains(FieldReferrerURL, v))
}

// ReferrerURLHasPrefix applies the HasPrefix predicate on the "referrer_url" field.
func ReferrerURLHasPrefix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasPrefix(FieldReferrerURL, v))
}

// ReferrerURLHasSuffix applies the HasSuffix predicate on the "referrer_url" field.
func ReferrerURLHasSuffix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasSuffix(FieldReferrerURL, v))
}

// ReferrerURLIsNil applies the IsNil predicate on the "referrer_url" field.
func ReferrerURLIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldReferrerURL))
}

// ReferrerURLNotNil applies the NotNil predicate on the "referrer_url" field.
func ReferrerURLNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldReferrerURL))
}

// ReferrerURLEqualFold applies the EqualFold predicate on the "referrer_url" field.
func ReferrerURLEqualFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEqualFold(FieldReferrerURL, v))
}

// ReferrerURLContainsFold applies the ContainsFold predicate on the "referrer_url" field.
func ReferrerURLContainsFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContainsFold(FieldReferrerURL, v))
}

// TimeOnPageMsEQ applies the EQ predicate on the "time_on_page_ms" field.
func TimeOnPageMsEQ(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldTimeOnPageMs, v))
}

// TimeOnPageMsNEQ applies the NEQ predicate on the "time_on_page_ms" field.
func TimeOnPageMsNEQ(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldTimeOnPageMs, v))
}

// TimeOnPageMsIn applies the In predicate on the "time_on_page_ms" field.
func TimeOnPageMsIn(vs ...int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldTimeOnPageMs, vs...))
}

// TimeOnPageMsNotIn applies the NotIn predicate on the "time_on_page_ms" field.
func TimeOnPageMsNotIn(vs ...int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldTimeOnPageMs, vs...))
}

// TimeOnPageMsGT applies the GT predicate on the "time_on_page_ms" field.
func TimeOnPageMsGT(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldTimeOnPageMs, v))
}

// TimeOnPageMsGTE applies the GTE predicate on the "time_on_page_ms" field.
func TimeOnPageMsGTE(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldTimeOnPageMs, v))
}

// TimeOnPageMsLT applies the LT predicate on the "time_on_page_ms" field.
func TimeOnPageMsLT(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldTimeOnPageMs, v))
}

// TimeOnPageMsLTE applies the LTE predicate on the "time_on_page_ms" field.
func TimeOnPageMsLTE(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldTimeOnPageMs, v))
}

// TimeOnPageMsIsNil applies the IsNil predicate on the "time_on_page_ms" field.
func TimeOnPageMsIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldTimeOnPageMs))
}

// TimeOnPageMsNotNil applies the NotNil predicate on the "time_on_page_ms" field.
func TimeOnPageMsNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldTimeOnPageMs))
}

// IdleTimeMsEQ applies the EQ predicate on the "idle_time_ms" field.
func IdleTimeMsEQ(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldIdleTimeMs, v))
}

// IdleTimeMsNEQ applies the NEQ predicate on the "idle_time_ms" field.
func IdleTimeMsNEQ(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldIdleTimeMs, v))
}

// IdleTimeMsIn applies the In predicate on the "idle_time_ms" field.
func IdleTimeMsIn(vs ...int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldIdleTimeMs, vs...))
}

// IdleTimeMsNotIn applies the NotIn predicate on the "idle_time_ms" field.
func IdleTimeMsNotIn(vs ...int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldIdleTimeMs, vs...))
}

// IdleTimeMsGT applies the GT predicate on the "idle_time_ms" field.
func IdleTimeMsGT(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldIdleTimeMs, v))
}

// IdleTimeMsGTE applies the GTE predicate on the "idle_time_ms" field.
func IdleTimeMsGTE(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldIdleTimeMs, v))
}

// IdleTimeMsLT applies the LT predicate on the "idle_time_ms" field.
func IdleTimeMsLT(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldIdleTimeMs, v))
}

// IdleTimeMsLTE applies the LTE predicate on the "idle_time_ms" field.
func IdleTimeMsLTE(v int) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldIdleTimeMs, v))
}

// IdleTimeMsIsNil applies the IsNil predicate on the "idle_time_ms" field.
func IdleTimeMsIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldIdleTimeMs))
}

// IdleTimeMsNotNil applies the NotNil predicate on the "idle_time_ms" field.
func IdleTimeMsNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldIdleTimeMs))
}

// ScrollPctEQ applies the EQ predicate on the "scroll_pct" field.
func ScrollPctEQ(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldScrollPct, v))
}

// ScrollPctNEQ applies the NEQ predicate on the "scroll_pct" field.
func ScrollPctNEQ(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldScrollPct, v))
}

// ScrollPctIn applies the In predicate on the "scroll_pct" field.
func ScrollPctIn(vs ...float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldScrollPct, vs...))
}

// ScrollPctNotIn applies the NotIn predicate on the "scroll_pct" field.
func ScrollPctNotIn(vs ...float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldScrollPct, vs...))
}

// ScrollPctGT applies the GT predicate on the "scroll_pct" field.
func ScrollPctGT(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldScrollPct, v))
}

// ScrollPctGTE applies the GTE predicate on the "scroll_pct" field.
func ScrollPctGTE(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldScrollPct, v))
}

// ScrollPctLT applies the LT predicate on the "scroll_pct" field.
func ScrollPctLT(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldScrollPct, v))
}

// ScrollPctLTE applies the LTE predicate on the "scroll_pct" field.
func ScrollPctLTE(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldScrollPct, v))
}

// ScrollPctIsNil applies the IsNil predicate on the "scroll_pct" field.
func ScrollPctIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldScrollPct))
}

// ScrollPctNotNil applies the NotNil predicate on the "scroll_pct" field.
func ScrollPctNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldScrollPct))
}

// ThresholdEQ applies the EQ predicate on the "threshold" field.
func ThresholdEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldThreshold, v))
}

// ThresholdNEQ applies the NEQ predicate on the "threshold" field.
func ThresholdNEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldThreshold, v))
}

// ThresholdIn applies the In predicate on the "threshold" field.
func ThresholdIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldThreshold, vs...))
}

// ThresholdNotIn applies the NotIn predicate on the "threshold" field.
func ThresholdNotIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldThreshold, vs...))
}

// ThresholdGT applies the GT predicate on the "threshold" field.
func ThresholdGT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldThreshold, v))
}

// ThresholdGTE applies the GTE predicate on the "threshold" field.
func ThresholdGTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldThreshold, v))
}

// ThresholdLT applies the LT predicate on the "threshold" field.
func ThresholdLT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldThreshold, v))
}

// ThresholdLTE applies the LTE predicate on the "threshold" field.
func ThresholdLTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldThreshold, v))
}

// ThresholdContains applies the Contains predicate on the "threshold" field.
func ThresholdContains(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContains(FieldThreshold, v))
}

// ThresholdHasPrefix applies the HasPrefix predicate on the "threshold" field.
func ThresholdHasPrefix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasPrefix(FieldThreshold, v))
}

// ThresholdHasSuffix applies the HasSuffix predicate on the "threshold" field.
func ThresholdHasSuffix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasSuffix(FieldThreshold, v))
}

// ThresholdIsNil applies the IsNil predicate on the "threshold" field.
func ThresholdIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldThreshold))
}

// ThresholdNotNil applies the NotNil predicate on the "threshold" field.
func ThresholdNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldThreshold))
}

// ThresholdEqualFold applies the EqualFold predicate on the "threshold" field.
func ThresholdEqualFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEqualFold(FieldThreshold, v))
}

// ThresholdContainsFold applies the ContainsFold predicate on the "threshold" field.
func ThresholdContainsFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContainsFold(FieldThreshold, v))
}

// ElementIdentifierEQ applies the EQ predicate on the "element_identifier" field.
func ElementIdentifierEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldElementIdentifier, v))
}

// ElementIdentifierNEQ applies the NEQ predicate on the "element_identifier" field.
func ElementIdentifierNEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldElementIdentifier, v))
}

// ElementIdentifierIn applies the In predicate on the "element_identifier" field.
func ElementIdentifierIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldElementIdentifier, vs...))
}

// ElementIdentifierNotIn applies the NotIn predicate on the "element_identifier" field.
func ElementIdentifierNotIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldElementIdentifier, vs...))
}

// ElementIdentifierGT applies the GT predicate on the "element_identifier" field.
func ElementIdentifierGT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldElementIdentifier, v))
}

// ElementIdentifierGTE applies the GTE predicate on the "element_identifier" field.
func ElementIdentifierGTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldElementIdentifier, v))
}

// ElementIdentifierLT applies the LT predicate on the "element_identifier" field.
func ElementIdentifierLT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldElementIdentifier, v))
}

// ElementIdentifierLTE applies the LTE predicate on the "element_identifier" field.
func ElementIdentifierLTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldElementIdentifier, v))
}

// ElementIdentifierContains applies the Contains predicate on the "element_identifier" field.
func ElementIdentifierContains(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContains(FieldElementIdentifier, v))
}

// ElementIdentifierHasPrefix applies the HasPrefix predicate on the "element_identifier" field.
func ElementIdentifierHasPrefix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasPrefix(FieldElementIdentifier, v))
}

// ElementIdentifierHasSuffix applies the HasSuffix predicate on the "element_identifier" field.
func ElementIdentifierHasSuffix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasSuffix(FieldElementIdentifier, v))
}

// ElementIdentifierIsNil applies the IsNil predicate on the "element_identifier" field.
func ElementIdentifierIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldElementIdentifier))
}

// ElementIdentifierNotNil applies the NotNil predicate on the "element_identifier" field.
func ElementIdentifierNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldElementIdentifier))
}

// ElementIdentifierEqualFold applies the EqualFold predicate on the "element_identifier" field.
func ElementIdentifierEqualFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEqualFold(FieldElementIdentifier, v))
}

// ElementIdentifierContainsFold applies the ContainsFold predicate on the "element_identifier" field.
func ElementIdentifierContainsFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContainsFold(FieldElementIdentifier, v))
}

// ElementTextEQ applies the EQ predicate on the "element_text" field.
func ElementTextEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldElementText, v))
}

// ElementTextNEQ applies the NEQ predicate on the "element_text" field.
func ElementTextNEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldElementText, v))
}

// ElementTextIn applies the In predicate on the "element_text" field.
func ElementTextIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldElementText, vs...))
}

// ElementTextNotIn applies the NotIn predicate on the "element_text" field.
func ElementTextNotIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldElementText, vs...))
}

// ElementTextGT applies the GT predicate on the "element_text" field.
func ElementTextGT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldElementText, v))
}

// ElementTextGTE applies the GTE predicate on the "element_text" field.
func ElementTextGTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldElementText, v))
}

// ElementTextLT applies the LT predicate on the "element_text" field.
func ElementTextLT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldElementText, v))
}

// ElementTextLTE applies the LTE predicate on the "element_text" field.
func ElementTextLTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldElementText, v))
}

// ElementTextContains applies the Contains predicate on the "element_text" field.
func ElementTextContains(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContains(FieldElementText, v))
}

// ElementTextHasPrefix applies the HasPrefix predicate on the "element_text" field.
func ElementTextHasPrefix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasPrefix(FieldElementText, v))
}

// ElementTextHasSuffix applies the HasSuffix predicate on the "element_text" field.
func ElementTextHasSuffix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasSuffix(FieldElementText, v))
}

// ElementTextIsNil applies the IsNil predicate on the "element_text" field.
func ElementTextIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldElementText))
}

// ElementTextNotNil applies the NotNil predicate on the "element_text" field.
func ElementTextNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldElementText))
}

// ElementTextEqualFold applies the EqualFold predicate on the "element_text" field.
func ElementTextEqualFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEqualFold(FieldElementText, v))
}

// ElementTextContainsFold applies the ContainsFold predicate on the "element_text" field.
func ElementTextContainsFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContainsFold(FieldElementText, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldContainsFold(FieldTitle, v))
}

// LatEQ applies the EQ predicate on the "lat" field.
func LatEQ(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldLat, v))
}

// LatNEQ applies the NEQ predicate on the "lat" field.
func LatNEQ(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldLat, v))
}

// LatIn applies the In predicate on the "lat" field.
func LatIn(vs ...float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldLat, vs...))
}

// LatNotIn applies the NotIn predicate on the "lat" field.
func LatNotIn(vs ...float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldLat, vs...))
}

// LatGT applies the GT predicate on the "lat" field.
func LatGT(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldLat, v))
}

// LatGTE applies the GTE predicate on the "lat" field.
func LatGTE(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldLat, v))
}

// LatLT applies the LT predicate on the "lat" field.
func LatLT(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldLat, v))
}

// LatLTE applies the LTE predicate on the "lat" field.
func LatLTE(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldLat, v))
}

// LatIsNil applies the IsNil predicate on the "lat" field.
func LatIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldLat))
}

// LatNotNil applies the NotNil predicate on the "lat" field.
func LatNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldLat))
}

// LngEQ applies the EQ predicate on the "lng" field.
func LngEQ(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldLng, v))
}

// LngNEQ applies the NEQ predicate on the "lng" field.
func LngNEQ(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldLng, v))
}

// LngIn applies the In predicate on the "lng" field.
func LngIn(vs ...float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldLng, vs...))
}

// LngNotIn applies the NotIn predicate on the "lng" field.
func LngNotIn(vs ...float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldLng, vs...))
}

// LngGT applies the GT predicate on the "lng" field.
func LngGT(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldLng, v))
}

// LngGTE applies the GTE predicate on the "lng" field.
func LngGTE(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldLng, v))
}

// LngLT applies the LT predicate on the "lng" field.
func LngLT(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldLng, v))
}

// LngLTE applies the LTE predicate on the "lng" field.
func LngLTE(v float64) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldLng, v))
}

// LngIsNil applies the IsNil predicate on the "lng" field.
func LngIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldLng))
}

// LngNotNil applies the NotNil predicate on the "lng" field.
func LngNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldLng))
}

// RawRowIsNil applies the IsNil predicate on the "raw_row" field.
func RawRowIsNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIsNull(FieldRawRow))
}

// RawRowNotNil applies the NotNil predicate on the "raw_row" field.
func RawRowNotNil() predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotNull(FieldRawRow))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RawEvent {
	return predicate.RawEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RawEvent) predicate.RawEvent {
	return predicate.RawEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RawEvent) predicate.RawEvent {
	return predicate.RawEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RawEvent) predicate.RawEvent {
	return predicate.RawEvent(sql.NotPredicates(p))
}
