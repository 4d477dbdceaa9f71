package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// VisitorProfile is the per-visitor behavioral aggregate for one time window.
// Uniqueness is (tenant_id, window_start, window_end, visitor_key); re-ingesting
// the same window upserts the row, it never accumulates.
type VisitorProfile struct{ ent.Schema }

// Fields of the VisitorProfile.
func (VisitorProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.UUID("tenant_id", uuid.UUID{}),
		field.Time("window_start"),
		field.Time("window_end"),
		field.String("visitor_key").NotEmpty().MaxLen(128),
		field.Time("first_seen_at"),
		field.Time("last_seen_at"),
		field.Int("visits_count").Default(0),
		field.Int("total_events").Default(0),
		field.Int("page_views").Default(0),
		field.Int("unique_pages_count").Default(0),
		field.Int("total_time_on_page_ms").Default(0),
		field.Float("avg_time_on_page_ms").Default(0),
		field.Float("max_scroll_percentage").Default(0),
		field.JSON("flags", map[string]bool{}).Optional(),
		field.Int("engagement_score").Default(0),
		field.String("engagement_segment").Default("Casual"),
		field.Float("lat").Optional().Nillable(),
		field.Float("lng").Optional().Nillable(),
		field.String("city").Optional().Nillable(),
		field.String("region").Optional().Nillable(),
		field.String("country").Optional().Nillable(),
		field.JSON("identity", map[string]string{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Indexes defines indexes for the VisitorProfile entity.
func (VisitorProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "window_start", "window_end", "visitor_key").Unique(),
		index.Fields("tenant_id", "engagement_score"),
	}
}
