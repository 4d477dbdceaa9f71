package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Upload tracks one CSV ingestion run. Status is a terminal state machine:
// processing -> completed | error.
type Upload struct{ ent.Schema }

// Fields of the Upload.
func (Upload) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.UUID("tenant_id", uuid.UUID{}),
		field.String("filename").Optional().MaxLen(255),
		field.String("status").Default("processing"), // processing | completed | error
		field.Int("row_count").Default(0),
		field.String("error").Optional().Nillable(),
		field.Time("processed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

// Edges of the Upload.
func (Upload) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).Ref("uploads").Field("tenant_id").Unique().Required(),
	}
}

// Indexes defines indexes for the Upload entity.
func (Upload) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
	}
}
