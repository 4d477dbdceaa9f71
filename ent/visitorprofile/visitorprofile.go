// Code generated by ent, DO NOT EDIT.

package visitorprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the visitorprofile type in the database.
	Label = "visitor_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldWindowEnd holds the string denoting the window_end field in the database.
	FieldWindowEnd = "window_end"
	// FieldVisitorKey holds the string denoting the visitor_key field in the database.
	FieldVisitorKey = "visitor_key"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldVisitsCount holds the string denoting the visits_count field in the database.
	FieldVisitsCount = "visits_count"
	// FieldTotalEvents holds the string denoting the total_events field in the database.
	FieldTotalEvents = "total_events"
	// FieldPageViews holds the string denoting the page_views field in the database.
	FieldPageViews = "page_views"
	// FieldUniquePagesCount holds the string denoting the unique_pages_count field in the database.
	FieldUniquePagesCount = "unique_pages_count"
	// FieldTotalTimeOnPageMs holds the string denoting the total_time_on_page_ms field in the database.
	FieldTotalTimeOnPageMs = "total_time_on_page_ms"
	// FieldAvgTimeOnPageMs holds the string denoting the avg_time_on_page_ms field in the database.
	FieldAvgTimeOnPageMs = "avg_time_on_page_ms"
	// FieldMaxScrollPercentage holds the string denoting the max_scroll_percentage field in the database.
	FieldMaxScrollPercentage = "max_scroll_percentage"
	// FieldFlags holds the string denoting the flags field in the database.
	FieldFlags = "flags"
	// FieldEngagementScore holds the string denoting the engagement_score field in the database.
	FieldEngagementScore = "engagement_score"
	// FieldEngagementSegment holds the string denoting the engagement_segment field in the database.
	FieldEngagementSegment = "engagement_segment"
	// FieldLat holds the string denoting the lat field in the database.
	FieldLat = "lat"
	// FieldLng holds the string denoting the lng field in the database.
	FieldLng = "lng"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldCountry holds the string denoting the country field in the database.
	FieldCountry = "country"
	// FieldIdentity holds the string denoting the identity field in the database.
	FieldIdentity = "identity"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the visitorprofile in the database.
	Table = "visitor_profiles"
)

// Columns holds all SQL columns for visitorprofile fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldWindowStart,
	FieldWindowEnd,
	FieldVisitorKey,
	FieldFirstSeenAt,
	FieldLastSeenAt,
	FieldVisitsCount,
	FieldTotalEvents,
	FieldPageViews,
	FieldUniquePagesCount,
	FieldTotalTimeOnPageMs,
	FieldAvgTimeOnPageMs,
	FieldMaxScrollPercentage,
	FieldFlags,
	FieldEngagementScore,
	FieldEngagementSegment,
	FieldLat,
	FieldLng,
	FieldCity,
	FieldRegion,
	FieldCountry,
	FieldIdentity,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// VisitorKeyValidator is a validator for the "visitor_key" field. It is called by the builders before save.
	VisitorKeyValidator func(string) error
	// DefaultVisitsCount holds the default value on creation for the "visits_count" field.
	DefaultVisitsCount int
	// DefaultTotalEvents holds the default value on creation for the "total_events" field.
	DefaultTotalEvents int
	// DefaultPageViews holds the default value on creation for the "page_views" field.
	DefaultPageViews int
	// DefaultUniquePagesCount holds the default value on creation for the "unique_pages_count" field.
	DefaultUniquePagesCount int
	// DefaultTotalTimeOnPageMs holds the default value on creation for the "total_time_on_page_ms" field.
	DefaultTotalTimeOnPageMs int
	// DefaultAvgTimeOnPageMs holds the default value on creation for the "avg_time_on_page_ms" field.
	DefaultAvgTimeOnPageMs float64
	// DefaultMaxScrollPercentage holds the default value on creation for the "max_scroll_percentage" field.
	DefaultMaxScrollPercentage float64
	// DefaultEngagementScore holds the default value on creation for the "engagement_score" field.
	DefaultEngagementScore int
	// DefaultEngagementSegment holds the default value on creation for the "engagement_segment" field.
	DefaultEngagementSegment string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the VisitorProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByWindowEnd orders the results by the window_end field.
func ByWindowEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEnd, opts...).ToFunc()
}

// ByVisitorKey orders the results by the visitor_key field.
func ByVisitorKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitorKey, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByVisitsCount orders the results by the visits_count field.
func ByVisitsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitsCount, opts...).ToFunc()
}

// ByTotalEvents orders the results by the total_events field.
func ByTotalEvents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalEvents, opts...).ToFunc()
}

// ByPageViews orders the results by the page_views field.
func ByPageViews(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageViews, opts...).ToFunc()
}

// ByUniquePagesCount orders the results by the unique_pages_count field.
func ByUniquePagesCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUniquePagesCount, opts...).ToFunc()
}

// ByTotalTimeOnPageMs orders the results by the total_time_on_page_ms field.
func ByTotalTimeOnPageMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTimeOnPageMs, opts...).ToFunc()
}

// ByAvgTimeOnPageMs orders the results by the avg_time_on_page_ms field.
func ByAvgTimeOnPageMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgTimeOnPageMs, opts...).ToFunc()
}

// ByMaxScrollPercentage orders the results by the max_scroll_percentage field.
func ByMaxScrollPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxScrollPercentage, opts...).ToFunc()
}

// ByEngagementScore orders the results by the engagement_score field.
func ByEngagementScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementScore, opts...).ToFunc()
}

// ByEngagementSegment orders the results by the engagement_segment field.
func ByEngagementSegment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementSegment, opts...).ToFunc()
}

// ByLat orders the results by the lat field.
func ByLat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLat, opts...).ToFunc()
}

// ByLng orders the results by the lng field.
func ByLng(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLng, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// ByCountry orders the results by the country field.
func ByCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountry, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
