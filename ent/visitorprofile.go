// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"visitor-pulse-api/ent/visitorprofile"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// VisitorProfile is the model entity for the VisitorProfile schema.
type VisitorProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID uuid.UUID `json:"tenant_id,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart time.Time `json:"window_start,omitempty"`
	// WindowEnd holds the value of the "window_end" field.
	WindowEnd time.Time `json:"window_end,omitempty"`
	// VisitorKey holds the value of the "visitor_key" field.
	VisitorKey string `json:"visitor_key,omitempty"`
	// FirstSeenAt holds the value of the "first_seen_at" field.
	FirstSeenAt time.Time `json:"first_seen_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// VisitsCount holds the value of the "visits_count" field.
	VisitsCount int `json:"visits_count,omitempty"`
	// TotalEvents holds the value of the "total_events" field.
	TotalEvents int `json:"total_events,omitempty"`
	// PageViews holds the value of the "page_views" field.
	PageViews int `json:"page_views,omitempty"`
	// UniquePagesCount holds the value of the "unique_pages_count" field.
	UniquePagesCount int `json:"unique_pages_count,omitempty"`
	// TotalTimeOnPageMs holds the value of the "total_time_on_page_ms" field.
	TotalTimeOnPageMs int `json:"total_time_on_page_ms,omitempty"`
	// AvgTimeOnPageMs holds the value of the "avg_time_on_page_ms" field.
	AvgTimeOnPageMs float64 `json:"avg_time_on_page_ms,omitempty"`
	// MaxScrollPercentage holds the value of the "max_scroll_percentage" field.
	MaxScrollPercentage float64 `json:"max_scroll_percentage,omitempty"`
	// Flags holds the value of the "flags" field.
	Flags map[string]bool `json:"flags,omitempty"`
	// EngagementScore holds the value of the "engagement_score" field.
	EngagementScore int `json:"engagement_score,omitempty"`
	// EngagementSegment holds the value of the "engagement_segment" field.
	EngagementSegment string `json:"engagement_segment,omitempty"`
	// Lat holds the value of the "lat" field.
	Lat *float64 `json:"lat,omitempty"`
	// Lng holds the value of the "lng" field.
	Lng *float64 `json:"lng,omitempty"`
	// City holds the value of the "city" field.
	City *string `json:"city,omitempty"`
	// Region holds the value of the "region" field.
	Region *string `json:"region,omitempty"`
	// Country holds the value of the "country" field.
	Country *string `json:"country,omitempty"`
	// Identity holds the value of the "identity" field.
	Identity map[string]string `json:"identity,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VisitorProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case visitorprofile.FieldFlags, visitorprofile.FieldIdentity:
			values[i] = new([]byte)
		case visitorprofile.FieldAvgTimeOnPageMs, visitorprofile.FieldMaxScrollPercentage, visitorprofile.FieldLat, visitorprofile.FieldLng:
			values[i] = new(sql.NullFloat64)
		case visitorprofile.FieldVisitsCount, visitorprofile.FieldTotalEvents, visitorprofile.FieldPageViews, visitorprofile.FieldUniquePagesCount, visitorprofile.FieldTotalTimeOnPageMs, visitorprofile.FieldEngagementScore:
			values[i] = new(sql.NullInt64)
		case visitorprofile.FieldVisitorKey, visitorprofile.FieldEngagementSegment, visitorprofile.FieldCity, visitorprofile.FieldRegion, visitorprofile.FieldCountry:
			values[i] = new(sql.NullString)
		case visitorprofile.FieldWindowStart, visitorprofile.FieldWindowEnd, visitorprofile.FieldFirstSeenAt, visitorprofile.FieldLastSeenAt, visitorprofile.FieldCreatedAt, visitorprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case visitorprofile.FieldID, visitorprofile.FieldTenantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VisitorProfile fields.
func (_m *VisitorProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case visitorprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case visitorprofile.FieldTenantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value != nil {
				_m.TenantID = *value
			}
		case visitorprofile.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = value.Time
			}
		case visitorprofile.FieldWindowEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_end", values[i])
			} else if value.Valid {
				_m.WindowEnd = value.Time
			}
		case visitorprofile.FieldVisitorKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visitor_key", values[i])
			} else if value.Valid {
				_m.VisitorKey = value.String
			}
		case visitorprofile.FieldFirstSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_at", values[i])
			} else if value.Valid {
				_m.FirstSeenAt = value.Time
			}
		case visitorprofile.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case visitorprofile.FieldVisitsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field visits_count", values[i])
			} else if value.Valid {
				_m.VisitsCount = int(value.Int64)
			}
		case visitorprofile.FieldTotalEvents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_events", values[i])
			} else if value.Valid {
				_m.TotalEvents = int(value.Int64)
			}
		case visitorprofile.FieldPageViews:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_views", values[i])
			} else if value.Valid {
				_m.PageViews = int(value.Int64)
			}
		case visitorprofile.FieldUniquePagesCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unique_pages_count", values[i])
			} else if value.Valid {
				_m.UniquePagesCount = int(value.Int64)
			}
		case visitorprofile.FieldTotalTimeOnPageMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_time_on_page_ms", values[i])
			} else if value.Valid {
				_m.TotalTimeOnPageMs = int(value.Int64)
			}
		case visitorprofile.FieldAvgTimeOnPageMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_time_on_page_ms", values[i])
			} else if value.Valid {
				_m.AvgTimeOnPageMs = value.Float64
			}
		case visitorprofile.FieldMaxScrollPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_scroll_percentage", values[i])
			} else if value.Valid {
				_m.MaxScrollPercentage = value.Float64
			}
		case visitorprofile.FieldFlags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field flags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Flags); err != nil {
					return fmt.Errorf("unmarshal field flags: %w", err)
				}
			}
		case visitorprofile.FieldEngagementScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_score", values[i])
			} else if value.Valid {
				_m.EngagementScore = int(value.Int64)
			}
		case visitorprofile.FieldEngagementSegment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_segment", values[i])
			} else if value.Valid {
				_m.EngagementSegment = value.String
			}
		case visitorprofile.FieldLat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lat", values[i])
			} else if value.Valid {
				_m.Lat = new(float64)
				*_m.Lat = value.Float64
			}
		case visitorprofile.FieldLng:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lng", values[i])
			} else if value.Valid {
				_m.Lng = new(float64)
				*_m.Lng = value.Float64
			}
		case visitorprofile.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = new(string)
				*_m.City = value.String
			}
		case visitorprofile.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = new(string)
				*_m.Region = value.String
			}
		case visitorprofile.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				_m.Country = new(string)
				*_m.Country = value.String
			}
		case visitorprofile.FieldIdentity:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field identity", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Identity); err != nil {
					return fmt.Errorf("unmarshal field identity: %w", err)
				}
			}
		case visitorprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case visitorprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VisitorProfile.
// This includes values selected through modifiers, order, etc.
func (_m *VisitorProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VisitorProfile.
// Note that you need to call VisitorProfile.Unwrap() before calling this method if this VisitorProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VisitorProfile) Update() *VisitorProfileUpdateOne {
	return NewVisitorProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VisitorProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VisitorProfile) Unwrap() *VisitorProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VisitorProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VisitorProfile) String() string {
	var builder strings.Builder
	builder.WriteString("VisitorProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("window_start=")
	builder.WriteString(_m.WindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("window_end=")
	builder.WriteString(_m.WindowEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("visitor_key=")
	builder.WriteString(_m.VisitorKey)
	builder.WriteString(", ")
	builder.WriteString("first_seen_at=")
	builder.WriteString(_m.FirstSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("visits_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.VisitsCount))
	builder.WriteString(", ")
	builder.WriteString("total_events=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalEvents))
	builder.WriteString(", ")
	builder.WriteString("page_views=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageViews))
	builder.WriteString(", ")
	builder.WriteString("unique_pages_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UniquePagesCount))
	builder.WriteString(", ")
	builder.WriteString("total_time_on_page_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTimeOnPageMs))
	builder.WriteString(", ")
	builder.WriteString("avg_time_on_page_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgTimeOnPageMs))
	builder.WriteString(", ")
	builder.WriteString("max_scroll_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxScrollPercentage))
	builder.WriteString(", ")
	builder.WriteString("flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Flags))
	builder.WriteString(", ")
	builder.WriteString("engagement_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngagementScore))
	builder.WriteString(", ")
	builder.WriteString("engagement_segment=")
	builder.WriteString(_m.EngagementSegment)
	builder.WriteString(", ")
	if v := _m.Lat; v != nil {
		builder.WriteString("lat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Lng; v != nil {
		builder.WriteString("lng=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.City; v != nil {
		builder.WriteString("city=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Region; v != nil {
		builder.WriteString("region=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Country; v != nil {
		builder.WriteString("country=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("identity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Identity))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VisitorProfiles is a parsable slice of VisitorProfile.
type VisitorProfiles []*VisitorProfile
