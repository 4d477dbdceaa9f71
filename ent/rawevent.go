// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"visitor-pulse-api/ent/rawevent"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// RawEvent is the model entity for the RawEvent schema.
type RawEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID uuid.UUID `json:"tenant_id,omitempty"`
	// UploadID holds the value of the "upload_id" field.
	UploadID uuid.UUID `json:"upload_id,omitempty"`
	// VisitorKey holds the value of the "visitor_key" field.
	VisitorKey string `json:"visitor_key,omitempty"`
	// VisitorUUID holds the value of the "visitor_uuid" field.
	VisitorUUID *string `json:"visitor_uuid,omitempty"`
	// IP holds the value of the "ip" field.
	IP *string `json:"ip,omitempty"`
	// EventTs holds the value of the "event_ts" field.
	EventTs time.Time `json:"event_ts,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType *string `json:"event_type,omitempty"`
	// URL holds the value of the "url" field.
	URL *string `json:"url,omitempty"`
	// ReferrerURL holds the value of the "referrer_url" field.
	ReferrerURL *string `json:"referrer_url,omitempty"`
	// TimeOnPageMs holds the value of the "time_on_page_ms" field.
	TimeOnPageMs *int `json:"time_on_page_ms,omitempty"`
	// IdleTimeMs holds the value of the "idle_time_ms" field.
	IdleTimeMs *int `json:"idle_time_ms,omitempty"`
	// ScrollPct holds the value of the "scroll_pct" field.
	ScrollPct *float64 `json:"scroll_pct,omitempty"`
	// Threshold holds the value of the "threshold" field.
	Threshold *string `json:"threshold,omitempty"`
	// ElementIdentifier holds the value of the "element_identifier" field.
	ElementIdentifier *string `json:"element_identifier,omitempty"`
	// ElementText holds the value of the "element_text" field.
	ElementText *string `json:"element_text,omitempty"`
	// Title holds the value of the "title" field.
	Title *string `json:"title,omitempty"`
	// Lat holds the value of the "lat" field.
	Lat *float64 `json:"lat,omitempty"`
	// Lng holds the value of the "lng" field.
	Lng *float64 `json:"lng,omitempty"`
	// RawRow holds the value of the "raw_row" field.
	RawRow map[string]string `json:"raw_row,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RawEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rawevent.FieldRawRow:
			values[i] = new([]byte)
		case rawevent.FieldScrollPct, rawevent.FieldLat, rawevent.FieldLng:
			values[i] = new(sql.NullFloat64)
		case rawevent.FieldTimeOnPageMs, rawevent.FieldIdleTimeMs:
			values[i] = new(sql.NullInt64)
		case rawevent.FieldVisitorKey, rawevent.FieldVisitorUUID, rawevent.FieldIP, rawevent.FieldEventType, rawevent.FieldURL, rawevent.FieldReferrerURL, rawevent.FieldThreshold, rawevent.FieldElementIdentifier, rawevent.FieldElementText, rawevent.FieldTitle:
			values[i] = new(sql.NullString)
		case rawevent.FieldEventTs, rawevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case rawevent.FieldID, rawevent.FieldTenantID, rawevent.FieldUploadID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RawEvent fields.
func (_m *RawEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rawevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case rawevent.FieldTenantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value != nil {
				_m.TenantID = *value
			}
		case rawevent.FieldUploadID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field upload_id", values[i])
			} else if value != nil {
				_m.UploadID = *value
			}
		case rawevent.FieldVisitorKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visitor_key", values[i])
			} else if value.Valid {
				_m.VisitorKey = value.String
			}
		case rawevent.FieldVisitorUUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visitor_uuid", values[i])
			} else if value.Valid {
				_m.VisitorUUID = new(string)
				*_m.VisitorUUID = value.String
			}
		case rawevent.FieldIP:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip", values[i])
			} else if value.Valid {
				_m.IP = new(string)
				*_m.IP = value.String
			}
		case rawevent.FieldEventTs:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field event_ts", values[i])
			} else if value.Valid {
				_m.EventTs = value.Time
			}
		case rawevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = new(string)
				*_m.EventType = value.String
			}
		case rawevent.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = new(string)
				*_m.URL = value.String
			}
		case rawevent.FieldReferrerURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field referrer_url", values[i])
			} else if value.Valid {
				_m.ReferrerURL = new(string)
				*_m.ReferrerURL = value.String
			}
		case rawevent.FieldTimeOnPageMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_on_page_ms", values[i])
			} else if value.Valid {
				_m.TimeOnPageMs = new(int)
				*_m.TimeOnPageMs = int(value.Int64)
			}
		case rawevent.FieldIdleTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field idle_time_ms", values[i])
			} else if value.Valid {
				_m.IdleTimeMs = new(int)
				*_m.IdleTimeMs = int(value.Int64)
			}
		case rawevent.FieldScrollPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field scroll_pct", values[i])
			} else if value.Valid {
				_m.ScrollPct = new(float64)
				*_m.ScrollPct = value.Float64
			}
		case rawevent.FieldThreshold:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field threshold", values[i])
			} else if value.Valid {
				_m.Threshold = new(string)
				*_m.Threshold = value.String
			}
		case rawevent.FieldElementIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field element_identifier", values[i])
			} else if value.Valid {
				_m.ElementIdentifier = new(string)
				*_m.ElementIdentifier = value.String
			}
		case rawevent.FieldElementText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field element_text", values[i])
			} else if value.Valid {
				_m.ElementText = new(string)
				*_m.ElementText = value.String
			}
		case rawevent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case rawevent.FieldLat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lat", values[i])
			} else if value.Valid {
				_m.Lat = new(float64)
				*_m.Lat = value.Float64
			}
		case rawevent.FieldLng:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lng", values[i])
			} else if value.Valid {
				_m.Lng = new(float64)
				*_m.Lng = value.Float64
			}
		case rawevent.FieldRawRow:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_row", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawRow); err != nil {
					return fmt.Errorf("unmarshal field raw_row: %w", err)
				}
			}
		case rawevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RawEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RawEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RawEvent.
// Note that you need to call RawEvent.Unwrap() before calling this method if this RawEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RawEvent) Update() *RawEventUpdateOne {
	return NewRawEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RawEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RawEvent) Unwrap() *RawEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RawEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RawEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RawEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("upload_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UploadID))
	builder.WriteString(", ")
	builder.WriteString("visitor_key=")
	builder.WriteString(_m.VisitorKey)
	builder.WriteString(", ")
	if v := _m.VisitorUUID; v != nil {
		builder.WriteString("visitor_uuid=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.IP; v != nil {
		builder.WriteString("ip=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("event_ts=")
	builder.WriteString(_m.EventTs.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EventType; v != nil {
		builder.WriteString("event_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.URL; v != nil {
		builder.WriteString("url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReferrerURL; v != nil {
		builder.WriteString("referrer_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TimeOnPageMs; v != nil {
		builder.WriteString("time_on_page_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.IdleTimeMs; v != nil {
		builder.WriteString("idle_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ScrollPct; v != nil {
		builder.WriteString("scroll_pct=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Threshold; v != nil {
		builder.WriteString("threshold=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ElementIdentifier; v != nil {
		builder.WriteString("element_identifier=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ElementText; v != nil {
		builder.WriteString("element_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
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
	builder.WriteString("raw_row=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawRow))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RawEvents is a parsable slice of RawEvent.
type RawEvents []*RawEvent
