package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// RawEvent is the append-only audit trail of accepted CSV rows.
// Rows are never mutated after insert.
type RawEvent struct{ ent.Schema }

// Fields of the RawEvent.
func (RawEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.UUID("tenant_id", uuid.UUID{}),
		field.UUID("upload_id", uuid.UUID{}),
		field.String("visitor_key").NotEmpty().MaxLen(128),
		field.String("visitor_uuid").Optional().Nillable().MaxLen(64),
		field.String("ip").Optional().Nillable().MaxLen(64),
		field.Time("event_ts"),
		field.String("event_type").Optional().Nillable().MaxLen(128),
		field.String("url").Optional().Nillable(),
		field.String("referrer_url").Optional().Nillable(),
		field.Int("time_on_page_ms").Optional().Nillable(),
		field.Int("idle_time_ms").Optional().Nillable(),
		field.Float("scroll_pct").Optional().Nillable(),
		field.String("threshold").Optional().Nillable().MaxLen(64),
		field.String("element_identifier").Optional().Nillable(),
		field.String("element_text").Optional().Nillable(),
		field.String("title").Optional().Nillable(),
		field.Float("lat").Optional().Nillable(),
		field.Float("lng").Optional().Nillable(),
		field.JSON("raw_row", map[string]string{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Indexes defines indexes for the RawEvent entity.
func (RawEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "event_ts"),
		index.Fields("tenant_id", "visitor_key"),
		index.Fields("upload_id"),
	}
}
