package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// GeoCache is the write-through cache of IP geolocation results, keyed by IP.
// A row with null lat/lng is a miss and will be retried, not a negative cache.
type GeoCache struct{ ent.Schema }

// Fields of the GeoCache.
func (GeoCache) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New),
		field.String("ip").NotEmpty().Unique().MaxLen(64),
		field.String("city").Optional().Nillable(),
		field.String("region").Optional().Nillable(),
		field.String("country").Optional().Nillable(),
		field.Float("lat").Optional().Nillable(),
		field.Float("lng").Optional().Nillable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
