// Code generated by ent, DO NOT EDIT.

package visitorprofile

import (
	"time"
	"visitor-pulse-api/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldTenantID, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldWindowStart, v))
}

// WindowEnd applies equality check predicate on the "window_end" field. It's identical to WindowEndEQ.
func WindowEnd(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldWindowEnd, v))
}

// VisitorKey applies equality check predicate on the "visitor_key" field. It's identical to VisitorKeyEQ.
func VisitorKey(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldVisitorKey, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldFirstSeenAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldLastSeenAt, v))
}

// VisitsCount applies equality check predicate on the "visits_count" field. It's identical to VisitsCountEQ.
func VisitsCount(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldVisitsCount, v))
}

// TotalEvents applies equality check predicate on the "total_events" field. It's identical to TotalEventsEQ.
func TotalEvents(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldTotalEvents, v))
}

// PageViews applies equality check predicate on the "page_views" field. It's identical to PageViewsEQ.
func PageViews(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldPageViews, v))
}

// UniquePagesCount applies equality check predicate on the "unique_pages_count" field. It's identical to UniquePagesCountEQ.
func UniquePagesCount(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldUniquePagesCount, v))
}

// TotalTimeOnPageMs applies equality check predicate on the "total_time_on_page_ms" field. It's identical to TotalTimeOnPageMsEQ.
func TotalTimeOnPageMs(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldTotalTimeOnPageMs, v))
}

// AvgTimeOnPageMs applies equality check predicate on the "avg_time_on_page_ms" field. It's identical to AvgTimeOnPageMsEQ.
func AvgTimeOnPageMs(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldAvgTimeOnPageMs, v))
}

// MaxScrollPercentage applies equality check predicate on the "max_scroll_percentage" field. It's identical to MaxScrollPercentageEQ.
func MaxScrollPercentage(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldMaxScrollPercentage, v))
}

// EngagementScore applies equality check predicate on the "engagement_score" field. It's identical to EngagementScoreEQ.
func EngagementScore(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldEngagementScore, v))
}

// EngagementSegment applies equality check predicate on the "engagement_segment" field. It's identical to EngagementSegmentEQ.
func EngagementSegment(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldEngagementSegment, v))
}

// Lat applies equality check predicate on the "lat" field. It's identical to LatEQ.
func Lat(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldLat, v))
}

// Lng applies equality check predicate on the "lng" field. It's identical to LngEQ.
func Lng(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldLng, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldCity, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldRegion, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldCountry, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v uuid.UUID) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldTenantID, v))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldWindowStart, v))
}

// WindowEndEQ applies the EQ predicate on the "window_end" field.
func WindowEndEQ(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldWindowEnd, v))
}

// WindowEndNEQ applies the NEQ predicate on the "window_end" field.
func WindowEndNEQ(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldWindowEnd, v))
}

// WindowEndIn applies the In predicate on the "window_end" field.
func WindowEndIn(vs ...time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldWindowEnd, vs...))
}

// WindowEndNotIn applies the NotIn predicate on the "window_end" field.
func WindowEndNotIn(vs ...time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldWindowEnd, vs...))
}

// WindowEndGT applies the GT predicate on the "window_end" field.
func WindowEndGT(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldWindowEnd, v))
}

// WindowEndGTE applies the GTE predicate on the "window_end" field.
func WindowEndGTE(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldWindowEnd, v))
}

// WindowEndLT applies the LT predicate on the "window_end" field.
func WindowEndLT(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldWindowEnd, v))
}

// WindowEndLTE applies the LTE predicate on the "window_end" field.
func WindowEndLTE(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldWindowEnd, v))
}

// VisitorKeyEQ applies the EQ predicate on the "visitor_key" field.
func VisitorKeyEQ(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldVisitorKey, v))
}

// VisitorKeyNEQ applies the NEQ predicate on the "visitor_key" field.
func VisitorKeyNEQ(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldVisitorKey, v))
}

// VisitorKeyIn applies the In predicate on the "visitor_key" field.
func VisitorKeyIn(vs ...string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldVisitorKey, vs...))
}

// VisitorKeyNotIn applies the NotIn predicate on the "visitor_key" field.
func VisitorKeyNotIn(vs ...string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldVisitorKey, vs...))
}

// VisitorKeyGT applies the GT predicate on the "visitor_key" field.
func VisitorKeyGT(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldVisitorKey, v))
}

// VisitorKeyGTE applies the GTE predicate on the "visitor_key" field.
func VisitorKeyGTE(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldVisitorKey, v))
}

// VisitorKeyLT applies the LT predicate on the "visitor_key" field.
func VisitorKeyLT(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldVisitorKey, v))
}

// VisitorKeyLTE applies the LTE predicate on the "visitor_key" field.
func VisitorKeyLTE(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldVisitorKey, v))
}

// VisitorKeyContains applies the Contains predicate on the "visitor_key" field.
func VisitorKeyContains(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldContains(FieldVisitorKey, v))
}

// VisitorKeyHasPrefix applies the HasPrefix predicate on the "visitor_key" field.
func VisitorKeyHasPrefix(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldHasPrefix(FieldVisitorKey, v))
}

// VisitorKeyHasSuffix applies the HasSuffix predicate on the "visitor_key" field.
func VisitorKeyHasSuffix(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldHasSuffix(FieldVisitorKey, v))
}

// VisitorKeyEqualFold applies the EqualFold predicate on the "visitor_key" field.
func VisitorKeyEqualFold(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEqualFold(FieldVisitorKey, v))
}

// VisitorKeyContainsFold applies the ContainsFold predicate on the "visitor_key" field.
func VisitorKeyContainsFold(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldContainsFold(FieldVisitorKey, v))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldFirstSeenAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldLastSeenAt, v))
}

// VisitsCountEQ applies the EQ predicate on the "visits_count" field.
func VisitsCountEQ(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldVisitsCount, v))
}

// VisitsCountNEQ applies the NEQ predicate on the "visits_count" field.
func VisitsCountNEQ(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldVisitsCount, v))
}

// VisitsCountIn applies the In predicate on the "visits_count" field.
func VisitsCountIn(vs ...int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldVisitsCount, vs...))
}

// VisitsCountNotIn applies the NotIn predicate on the "visits_count" field.
func VisitsCountNotIn(vs ...int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldVisitsCount, vs...))
}

// VisitsCountGT applies the GT predicate on the "visits_count" field.
func VisitsCountGT(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldVisitsCount, v))
}

// VisitsCountGTE applies the GTE predicate on the "visits_count" field.
func VisitsCountGTE(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldVisitsCount, v))
}

// VisitsCountLT applies the LT predicate on the "visits_count" field.
func VisitsCountLT(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldVisitsCount, v))
}

// VisitsCountLTE applies the LTE predicate on the "visits_count" field.
func VisitsCountLTE(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldVisitsCount, v))
}

// TotalEventsEQ applies the EQ predicate on the "total_events" field.
func TotalEventsEQ(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldTotalEvents, v))
}

// TotalEventsNEQ applies the NEQ predicate on the "total_events" field.
func TotalEventsNEQ(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldTotalEvents, v))
}

// TotalEventsIn applies the In predicate on the "total_events" field.
func TotalEventsIn(vs ...int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldTotalEvents, vs...))
}

// TotalEventsNotIn applies the NotIn predicate on the "total_events" field.
func TotalEventsNotIn(vs ...int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldTotalEvents, vs...))
}

// TotalEventsGT applies the GT predicate on the "total_events" field.
func TotalEventsGT(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldTotalEvents, v))
}

// TotalEventsGTE applies the GTE predicate on the "total_events" field.
func TotalEventsGTE(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldTotalEvents, v))
}

// TotalEventsLT applies the LT predicate on the "total_events" field.
func TotalEventsLT(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldTotalEvents, v))
}

// TotalEventsLTE applies the LTE predicate on the "total_events" field.
func TotalEventsLTE(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldTotalEvents, v))
}

// PageViewsEQ applies the EQ predicate on the "page_views" field.
func PageViewsEQ(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldPageViews, v))
}

// PageViewsNEQ applies the NEQ predicate on the "page_views" field.
func PageViewsNEQ(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldPageViews, v))
}

// PageViewsIn applies the In predicate on the "page_views" field.
func PageViewsIn(vs ...int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldPageViews, vs...))
}

// PageViewsNotIn applies the NotIn predicate on the "page_views" field.
func PageViewsNotIn(vs ...int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldPageViews, vs...))
}

// PageViewsGT applies the GT predicate on the "page_views" field.
func PageViewsGT(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldPageViews, v))
}

// PageViewsGTE applies the GTE predicate on the "page_views" field.
func PageViewsGTE(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldPageViews, v))
}

// PageViewsLT applies the LT predicate on the "page_views" field.
func PageViewsLT(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldPageViews, v))
}

// PageViewsLTE applies the LTE predicate on the "page_views" field.
func PageViewsLTE(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldPageViews, v))
}

// UniquePagesCountEQ applies the EQ predicate on the "unique_pages_count" field.
func UniquePagesCountEQ(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldUniquePagesCount, v))
}

// UniquePagesCountNEQ applies the NEQ predicate on the "unique_pages_count" field.
func UniquePagesCountNEQ(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldUniquePagesCount, v))
}

// UniquePagesCountIn applies the In predicate on the "unique_pages_count" field.
func UniquePagesCountIn(vs ...int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldUniquePagesCount, vs...))
}

// UniquePagesCountNotIn applies the NotIn predicate on the "unique_pages_count" field.
func UniquePagesCountNotIn(vs ...int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldUniquePagesCount, vs...))
}

// UniquePagesCountGT applies the GT predicate on the "unique_pages_count" field.
func UniquePagesCountGT(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldUniquePagesCount, v))
}

// UniquePagesCountGTE applies the GTE predicate on the "unique_pages_count" field.
func UniquePagesCountGTE(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldUniquePagesCount, v))
}

// UniquePagesCountLT applies the LT predicate on the "unique_pages_count" field.
func UniquePagesCountLT(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldUniquePagesCount, v))
}

// UniquePagesCountLTE applies the LTE predicate on the "unique_pages_count" field.
func UniquePagesCountLTE(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldUniquePagesCount, v))
}

// TotalTimeOnPageMsEQ applies the EQ predicate on the "total_time_on_page_ms" field.
func TotalTimeOnPageMsEQ(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldTotalTimeOnPageMs, v))
}

// TotalTimeOnPageMsNEQ applies the NEQ predicate on the "total_time_on_page_ms" field.
func TotalTimeOnPageMsNEQ(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldTotalTimeOnPageMs, v))
}

// TotalTimeOnPageMsIn applies the In predicate on the "total_time_on_page_ms" field.
func TotalTimeOnPageMsIn(vs ...int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldTotalTimeOnPageMs, vs...))
}

// TotalTimeOnPageMsNotIn applies the NotIn predicate on the "total_time_on_page_ms" field.
func TotalTimeOnPageMsNotIn(vs ...int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldTotalTimeOnPageMs, vs...))
}

// TotalTimeOnPageMsGT applies the GT predicate on the "total_time_on_page_ms" field.
func TotalTimeOnPageMsGT(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldTotalTimeOnPageMs, v))
}

// TotalTimeOnPageMsGTE applies the GTE predicate on the "total_time_on_page_ms" field.
func TotalTimeOnPageMsGTE(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldTotalTimeOnPageMs, v))
}

// TotalTimeOnPageMsLT applies the LT predicate on the "total_time_on_page_ms" field.
func TotalTimeOnPageMsLT(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldTotalTimeOnPageMs, v))
}

// TotalTimeOnPageMsLTE applies the LTE predicate on the "total_time_on_page_ms" field.
func TotalTimeOnPageMsLTE(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldTotalTimeOnPageMs, v))
}

// AvgTimeOnPageMsEQ applies the EQ predicate on the "avg_time_on_page_ms" field.
func AvgTimeOnPageMsEQ(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldAvgTimeOnPageMs, v))
}

// AvgTimeOnPageMsNEQ applies the NEQ predicate on the "avg_time_on_page_ms" field.
func AvgTimeOnPageMsNEQ(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldAvgTimeOnPageMs, v))
}

// AvgTimeOnPageMsIn applies the In predicate on the "avg_time_on_page_ms" field.
func AvgTimeOnPageMsIn(vs ...float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldAvgTimeOnPageMs, vs...))
}

// AvgTimeOnPageMsNotIn applies the NotIn predicate on the "avg_time_on_page_ms" field.
func AvgTimeOnPageMsNotIn(vs ...float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldAvgTimeOnPageMs, vs...))
}

// AvgTimeOnPageMsGT applies the GT predicate on the "avg_time_on_page_ms" field.
func AvgTimeOnPageMsGT(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldAvgTimeOnPageMs, v))
}

// AvgTimeOnPageMsGTE applies the GTE predicate on the "avg_time_on_page_ms" field.
func AvgTimeOnPageMsGTE(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldAvgTimeOnPageMs, v))
}

// AvgTimeOnPageMsLT applies the LT predicate on the "avg_time_on_page_ms" field.
func AvgTimeOnPageMsLT(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldAvgTimeOnPageMs, v))
}

// AvgTimeOnPageMsLTE applies the LTE predicate on the "avg_time_on_page_ms" field.
func AvgTimeOnPageMsLTE(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldAvgTimeOnPageMs, v))
}

// MaxScrollPercentageEQ applies the EQ predicate on the "max_scroll_percentage" field.
func MaxScrollPercentageEQ(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldMaxScrollPercentage, v))
}

// MaxScrollPercentageNEQ applies the NEQ predicate on the "max_scroll_percentage" field.
func MaxScrollPercentageNEQ(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldMaxScrollPercentage, v))
}

// MaxScrollPercentageIn applies the In predicate on the "max_scroll_percentage" field.
func MaxScrollPercentageIn(vs ...float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldMaxScrollPercentage, vs...))
}

// MaxScrollPercentageNotIn applies the NotIn predicate on the "max_scroll_percentage" field.
func MaxScrollPercentageNotIn(vs ...float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldMaxScrollPercentage, vs...))
}

// MaxScrollPercentageGT applies the GT predicate on the "max_scroll_percentage" field.
func MaxScrollPercentageGT(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldMaxScrollPercentage, v))
}

// MaxScrollPercentageGTE applies the GTE predicate on the "max_scroll_percentage" field.
func MaxScrollPercentageGTE(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldMaxScrollPercentage, v))
}

// MaxScrollPercentageLT applies the LT predicate on the "max_scroll_percentage" field.
func MaxScrollPercentageLT(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldMaxScrollPercentage, v))
}

// MaxScrollPercentageLTE applies the LTE predicate on the "max_scroll_percentage" field.
func MaxScrollPercentageLTE(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldMaxScrollPercentage, v))
}

// FlagsIsNil applies the IsNil predicate on the "flags" field.
func FlagsIsNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIsNull(FieldFlags))
}

// FlagsNotNil applies the NotNil predicate on the "flags" field.
func FlagsNotNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotNull(FieldFlags))
}

// EngagementScoreEQ applies the EQ predicate on the "engagement_score" field.
func EngagementScoreEQ(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldEngagementScore, v))
}

// EngagementScoreNEQ applies the NEQ predicate on the "engagement_score" field.
func EngagementScoreNEQ(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldEngagementScore, v))
}

// EngagementScoreIn applies the In predicate on the "engagement_score" field.
func EngagementScoreIn(vs ...int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldEngagementScore, vs...))
}

// EngagementScoreNotIn applies the NotIn predicate on the "engagement_score" field.
func EngagementScoreNotIn(vs ...int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldEngagementScore, vs...))
}

// EngagementScoreGT applies the GT predicate on the "engagement_score" field.
func EngagementScoreGT(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldEngagementScore, v))
}

// EngagementScoreGTE applies the GTE predicate on the "engagement_score" field.
func EngagementScoreGTE(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldEngagementScore, v))
}

// EngagementScoreLT applies the LT predicate on the "engagement_score" field.
func EngagementScoreLT(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldEngagementScore, v))
}

// EngagementScoreLTE applies the LTE predicate on the "engagement_score" field.
func EngagementScoreLTE(v int) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldEngagementScore, v))
}

// EngagementSegmentEQ applies the EQ predicate on the "engagement_segment" field.
func EngagementSegmentEQ(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldEngagementSegment, v))
}

// EngagementSegmentNEQ applies the NEQ predicate on the "engagement_segment" field.
func EngagementSegmentNEQ(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldEngagementSegment, v))
}

// EngagementSegmentIn applies the In predicate on the "engagement_segment" field.
func EngagementSegmentIn(vs ...string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldEngagementSegment, vs...))
}

// EngagementSegmentNotIn applies the NotIn predicate on the "engagement_segment" field.
func EngagementSegmentNotIn(vs ...string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldEngagementSegment, vs...))
}

// EngagementSegmentGT applies the GT predicate on the "engagement_segment" field.
func EngagementSegmentGT(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldEngagementSegment, v))
}

// EngagementSegmentGTE applies the GTE predicate on the "engagement_segment" field.
func EngagementSegmentGTE(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldEngagementSegment, v))
}

// EngagementSegmentLT applies the LT predicate on the "engagement_segment" field.
func EngagementSegmentLT(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldEngagementSegment, v))
}

// EngagementSegmentLTE applies the LTE predicate on the "engagement_segment" field.
func EngagementSegmentLTE(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldEngagementSegment, v))
}

// EngagementSegmentContains applies the Contains predicate on the "engagement_segment" field.
func EngagementSegmentContains(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldContains(FieldEngagementSegment, v))
}

// EngagementSegmentHasPrefix applies the HasPrefix predicate on the "engagement_segment" field.
func EngagementSegmentHasPrefix(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldHasPrefix(FieldEngagementSegment, v))
}

// EngagementSegmentHasSuffix applies the HasSuffix predicate on the "engagement_segment" field.
func EngagementSegmentHasSuffix(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldHasSuffix(FieldEngagementSegment, v))
}

// EngagementSegmentEqualFold applies the EqualFold predicate on the "engagement_segment" field.
func EngagementSegmentEqualFold(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEqualFold(FieldEngagementSegment, v))
}

// EngagementSegmentContainsFold applies the ContainsFold predicate on the "engagement_segment" field.
func EngagementSegmentContainsFold(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldContainsFold(FieldEngagementSegment, v))
}

// LatEQ applies the EQ predicate on the "lat" field.
func LatEQ(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldLat, v))
}

// LatNEQ applies the NEQ predicate on the "lat" field.
func LatNEQ(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldLat, v))
}

// LatIn applies the In predicate on the "lat" field.
func LatIn(vs ...float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldLat, vs...))
}

// LatNotIn applies the NotIn predicate on the "lat" field.
func LatNotIn(vs ...float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldLat, vs...))
}

// LatGT applies the GT predicate on the "lat" field.
func LatGT(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldLat, v))
}

// LatGTE applies the GTE predicate on the "lat" field.
func LatGTE(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldLat, v))
}

// LatLT applies the LT predicate on the "lat" field.
func LatLT(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldLat, v))
}

// LatLTE applies the LTE predicate on the "lat" field.
func LatLTE(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldLat, v))
}

// LatIsNil applies the IsNil predicate on the "lat" field.
func LatIsNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIsNull(FieldLat))
}

// LatNotNil applies the NotNil predicate on the "lat" field.
func LatNotNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotNull(FieldLat))
}

// LngEQ applies the EQ predicate on the "lng" field.
func LngEQ(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldLng, v))
}

// LngNEQ applies the NEQ predicate on the "lng" field.
func LngNEQ(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldLng, v))
}

// LngIn applies the In predicate on the "lng" field.
func LngIn(vs ...float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldLng, vs...))
}

// LngNotIn applies the NotIn predicate on the "lng" field.
func LngNotIn(vs ...float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldLng, vs...))
}

// LngGT applies the GT predicate on the "lng" field.
func LngGT(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldLng, v))
}

// LngGTE applies the GTE predicate on the "lng" field.
func LngGTE(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldLng, v))
}

// LngLT applies the LT predicate on the "lng" field.
func LngLT(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldLng, v))
}

// LngLTE applies the LTE predicate on the "lng" field.
func LngLTE(v float64) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldLng, v))
}

// LngIsNil applies the IsNil predicate on the "lng" field.
func LngIsNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIsNull(FieldLng))
}

// LngNotNil applies the NotNil predicate on the "lng" field.
func LngNotNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotNull(FieldLng))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldHasSuffix(FieldCity, v))
}

// CityIsNil applies the IsNil predicate on the "city" field.
func CityIsNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIsNull(FieldCity))
}

// CityNotNil applies the NotNil predicate on the "city" field.
func CityNotNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotNull(FieldCity))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldContainsFold(FieldCity, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionIsNil applies the IsNil predicate on the "region" field.
func RegionIsNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIsNull(FieldRegion))
}

// RegionNotNil applies the NotNil predicate on the "region" field.
func RegionNotNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotNull(FieldRegion))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldContainsFold(FieldRegion, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryIsNil applies the IsNil predicate on the "country" field.
func CountryIsNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIsNull(FieldCountry))
}

// CountryNotNil applies the NotNil predicate on the "country" field.
func CountryNotNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotNull(FieldCountry))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldContainsFold(FieldCountry, v))
}

// IdentityIsNil applies the IsNil predicate on the "identity" field.
func IdentityIsNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIsNull(FieldIdentity))
}

// IdentityNotNil applies the NotNil predicate on the "identity" field.
func IdentityNotNil() predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotNull(FieldIdentity))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VisitorProfile) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VisitorProfile) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VisitorProfile) predicate.VisitorProfile {
	return predicate.VisitorProfile(sql.NotPredicates(p))
}
