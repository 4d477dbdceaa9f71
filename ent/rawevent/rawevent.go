// Code generated by ent, DO NOT EDIT.

package rawevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the rawevent type in the database.
	Label = "raw_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldUploadID holds the string denoting the upload_id field in the database.
	FieldUploadID = "upload_id"
	// FieldVisitorKey holds the string denoting the visitor_key field in the database.
	FieldVisitorKey = "visitor_key"
	// FieldVisitorUUID holds the string denoting the visitor_uuid field in the database.
	FieldVisitorUUID = "visitor_uuid"
	// FieldIP holds the string denoting the ip field in the database.
	FieldIP = "ip"
	// FieldEventTs holds the string denoting the event_ts field in the database.
	FieldEventTs = "event_ts"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldReferrerURL holds the string denoting the referrer_url field in the database.
	FieldReferrerURL = "referrer_url"
	// FieldTimeOnPageMs holds the string denoting the time_on_page_ms field in the database.
	FieldTimeOnPageMs = "time_on_page_ms"
	// FieldIdleTimeMs holds the string denoting the idle_time_ms field in the database.
	FieldIdleTimeMs = "idle_time_ms"
	// FieldScrollPct holds the string denoting the scroll_pct field in the database.
	FieldScrollPct = "scroll_pct"
	// FieldThreshold holds the string denoting the threshold field in the database.
	FieldThreshold = "threshold"
	// FieldElementIdentifier holds the string denoting the element_identifier field in the database.
	FieldElementIdentifier = "element_identifier"
	// FieldElementText holds the string denoting the element_text field in the database.
	FieldElementText = "element_text"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldLat holds the string denoting the lat field in the database.
	FieldLat = "lat"
	// FieldLng holds the string denoting the lng field in the database.
	FieldLng = "lng"
	// FieldRawRow holds the string denoting the raw_row field in the database.
	FieldRawRow = "raw_row"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the rawevent in the database.
	Table = "raw_events"
)

// Columns holds all SQL columns for rawevent fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldUploadID,
	FieldVisitorKey,
	FieldVisitorUUID,
	FieldIP,
	FieldEventTs,
	FieldEventType,
	FieldURL,
	FieldReferrerURL,
	FieldTimeOnPageMs,
	FieldIdleTimeMs,
	FieldScrollPct,
	FieldThreshold,
	FieldElementIdentifier,
	FieldElementText,
	FieldTitle,
	FieldLat,
	FieldLng,
	FieldRawRow,
	FieldCreatedAt,
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
	// VisitorUUIDValidator is a validator for the "visitor_uuid" field. It is called by the builders before save.
	VisitorUUIDValidator func(string) error
	// IPValidator is a validator for the "ip" field. It is called by the builders before save.
	IPValidator func(string) error
	// EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	EventTypeValidator func(string) error
	// ThresholdValidator is a validator for the "threshold" field. It is called by the builders before save.
	ThresholdValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the RawEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByUploadID orders the results by the upload_id field.
func ByUploadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadID, opts...).ToFunc()
}

// ByVisitorKey orders the results by the visitor_key field.
func ByVisitorKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitorKey, opts...).ToFunc()
}

// ByVisitorUUID orders the results by the visitor_uuid field.
func ByVisitorUUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisitorUUID, opts...).ToFunc()
}

// ByIP orders the results by the ip field.
func ByIP(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIP, opts...).ToFunc()
}

// ByEventTs orders the results by the event_ts field.
func ByEventTs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventTs, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByReferrerURL orders the results by the referrer_url field.
func ByReferrerURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferrerURL, opts...).ToFunc()
}

// ByTimeOnPageMs orders the results by the time_on_page_ms field.
func ByTimeOnPageMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeOnPageMs, opts...).ToFunc()
}

// ByIdleTimeMs orders the results by the idle_time_ms field.
func ByIdleTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdleTimeMs, opts...).ToFunc()
}

// ByScrollPct orders the results by the scroll_pct field.
func ByScrollPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScrollPct, opts...).ToFunc()
}

// ByThreshold orders the results by the threshold field.
func ByThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreshold, opts...).ToFunc()
}

// ByElementIdentifier orders the results by the element_identifier field.
func ByElementIdentifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElementIdentifier, opts...).ToFunc()
}

// ByElementText orders the results by the element_text field.
func ByElementText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElementText, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByLat orders the results by the lat field.
func ByLat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLat, opts...).ToFunc()
}

// ByLng orders the results by the lng field.
func ByLng(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLng, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
