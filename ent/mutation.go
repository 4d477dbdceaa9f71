// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"visitor-pulse-api/ent/geocache"
	"visitor-pulse-api/ent/predicate"
	"visitor-pulse-api/ent/rawevent"
	"visitor-pulse-api/ent/tenant"
	"visitor-pulse-api/ent/upload"
	"visitor-pulse-api/ent/visitorprofile"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGeoCache       = "GeoCache"
	TypeRawEvent       = "RawEvent"
	TypeTenant         = "Tenant"
	TypeUpload         = "Upload"
	TypeVisitorProfile = "VisitorProfile"
)

// GeoCacheMutation represents an operation that mutates the GeoCache nodes in the graph.
type GeoCacheMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	ip            *string
	city          *string
	region        *string
	country       *string
	lat           *float64
	addlat        *float64
	lng           *float64
	addlng        *float64
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GeoCache, error)
	predicates    []predicate.GeoCache
}

var _ ent.Mutation = (*GeoCacheMutation)(nil)

// geocacheOption allows management of the mutation configuration using functional options.
type geocacheOption func(*GeoCacheMutation)

// newGeoCacheMutation creates new mutation for the GeoCache entity.
func newGeoCacheMutation(c config, op Op, opts ...geocacheOption) *GeoCacheMutation {
	m := &GeoCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeGeoCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGeoCacheID sets the ID field of the mutation.
func withGeoCacheID(id uuid.UUID) geocacheOption {
	return func(m *GeoCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *GeoCache
		)
		m.oldValue = func(ctx context.Context) (*GeoCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GeoCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGeoCache sets the old GeoCache of the mutation.
func withGeoCache(node *GeoCache) geocacheOption {
	return func(m *GeoCacheMutation) {
		m.oldValue = func(context.Context) (*GeoCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GeoCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GeoCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GeoCache entities.
func (m *GeoCacheMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GeoCacheMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GeoCacheMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GeoCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIP sets the "ip" field.
func (m *GeoCacheMutation) SetIP(s string) {
	m.ip = &s
}

// IP returns the value of the "ip" field in the mutation.
func (m *GeoCacheMutation) IP() (r string, exists bool) {
	v := m.ip
	if v == nil {
		return
	}
	return *v, true
}

// OldIP returns the old "ip" field's value of the GeoCache entity.
// If the GeoCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeoCacheMutation) OldIP(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIP: %w", err)
	}
	return oldValue.IP, nil
}

// ResetIP resets all changes to the "ip" field.
func (m *GeoCacheMutation) ResetIP() {
	m.ip = nil
}

// SetCity sets the "city" field.
func (m *GeoCacheMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *GeoCacheMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the GeoCache entity.
// If the GeoCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeoCacheMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *GeoCacheMutation) ClearCity() {
	m.city = nil
	m.clearedFields[geocache.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *GeoCacheMutation) CityCleared() bool {
	_, ok := m.clearedFields[geocache.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *GeoCacheMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, geocache.FieldCity)
}

// SetRegion sets the "region" field.
func (m *GeoCacheMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *GeoCacheMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the GeoCache entity.
// If the GeoCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeoCacheMutation) OldRegion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ClearRegion clears the value of the "region" field.
func (m *GeoCacheMutation) ClearRegion() {
	m.region = nil
	m.clearedFields[geocache.FieldRegion] = struct{}{}
}

// RegionCleared returns if the "region" field was cleared in this mutation.
func (m *GeoCacheMutation) RegionCleared() bool {
	_, ok := m.clearedFields[geocache.FieldRegion]
	return ok
}

// ResetRegion resets all changes to the "region" field.
func (m *GeoCacheMutation) ResetRegion() {
	m.region = nil
	delete(m.clearedFields, geocache.FieldRegion)
}

// SetCountry sets the "country" field.
func (m *GeoCacheMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *GeoCacheMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the GeoCache entity.
// If the GeoCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeoCacheMutation) OldCountry(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *GeoCacheMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[geocache.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *GeoCacheMutation) CountryCleared() bool {
	_, ok := m.clearedFields[geocache.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *GeoCacheMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, geocache.FieldCountry)
}

// SetLat sets the "lat" field.
func (m *GeoCacheMutation) SetLat(f float64) {
	m.lat = &f
	m.addlat = nil
}

// Lat returns the value of the "lat" field in the mutation.
func (m *GeoCacheMutation) Lat() (r float64, exists bool) {
	v := m.lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLat returns the old "lat" field's value of the GeoCache entity.
// If the GeoCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeoCacheMutation) OldLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLat: %w", err)
	}
	return oldValue.Lat, nil
}

// AddLat adds f to the "lat" field.
func (m *GeoCacheMutation) AddLat(f float64) {
	if m.addlat != nil {
		*m.addlat += f
	} else {
		m.addlat = &f
	}
}

// AddedLat returns the value that was added to the "lat" field in this mutation.
func (m *GeoCacheMutation) AddedLat() (r float64, exists bool) {
	v := m.addlat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLat clears the value of the "lat" field.
func (m *GeoCacheMutation) ClearLat() {
	m.lat = nil
	m.addlat = nil
	m.clearedFields[geocache.FieldLat] = struct{}{}
}

// LatCleared returns if the "lat" field was cleared in this mutation.
func (m *GeoCacheMutation) LatCleared() bool {
	_, ok := m.clearedFields[geocache.FieldLat]
	return ok
}

// ResetLat resets all changes to the "lat" field.
func (m *GeoCacheMutation) ResetLat() {
	m.lat = nil
	m.addlat = nil
	delete(m.clearedFields, geocache.FieldLat)
}

// SetLng sets the "lng" field.
func (m *GeoCacheMutation) SetLng(f float64) {
	m.lng = &f
	m.addlng = nil
}

// Lng returns the value of the "lng" field in the mutation.
func (m *GeoCacheMutation) Lng() (r float64, exists bool) {
	v := m.lng
	if v == nil {
		return
	}
	return *v, true
}

// OldLng returns the old "lng" field's value of the GeoCache entity.
// If the GeoCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeoCacheMutation) OldLng(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLng is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLng requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLng: %w", err)
	}
	return oldValue.Lng, nil
}

// AddLng adds f to the "lng" field.
func (m *GeoCacheMutation) AddLng(f float64) {
	if m.addlng != nil {
		*m.addlng += f
	} else {
		m.addlng = &f
	}
}

// AddedLng returns the value that was added to the "lng" field in this mutation.
func (m *GeoCacheMutation) AddedLng() (r float64, exists bool) {
	v := m.addlng
	if v == nil {
		return
	}
	return *v, true
}

// ClearLng clears the value of the "lng" field.
func (m *GeoCacheMutation) ClearLng() {
	m.lng = nil
	m.addlng = nil
	m.clearedFields[geocache.FieldLng] = struct{}{}
}

// LngCleared returns if the "lng" field was cleared in this mutation.
func (m *GeoCacheMutation) LngCleared() bool {
	_, ok := m.clearedFields[geocache.FieldLng]
	return ok
}

// ResetLng resets all changes to the "lng" field.
func (m *GeoCacheMutation) ResetLng() {
	m.lng = nil
	m.addlng = nil
	delete(m.clearedFields, geocache.FieldLng)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GeoCacheMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GeoCacheMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GeoCache entity.
// If the GeoCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GeoCacheMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GeoCacheMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the GeoCacheMutation builder.
func (m *GeoCacheMutation) Where(ps ...predicate.GeoCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GeoCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GeoCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GeoCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GeoCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GeoCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GeoCache).
func (m *GeoCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GeoCacheMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.ip != nil {
		fields = append(fields, geocache.FieldIP)
	}
	if m.city != nil {
		fields = append(fields, geocache.FieldCity)
	}
	if m.region != nil {
		fields = append(fields, geocache.FieldRegion)
	}
	if m.country != nil {
		fields = append(fields, geocache.FieldCountry)
	}
	if m.lat != nil {
		fields = append(fields, geocache.FieldLat)
	}
	if m.lng != nil {
		fields = append(fields, geocache.FieldLng)
	}
	if m.updated_at != nil {
		fields = append(fields, geocache.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GeoCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case geocache.FieldIP:
		return m.IP()
	case geocache.FieldCity:
		return m.City()
	case geocache.FieldRegion:
		return m.Region()
	case geocache.FieldCountry:
		return m.Country()
	case geocache.FieldLat:
		return m.Lat()
	case geocache.FieldLng:
		return m.Lng()
	case geocache.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GeoCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case geocache.FieldIP:
		return m.OldIP(ctx)
	case geocache.FieldCity:
		return m.OldCity(ctx)
	case geocache.FieldRegion:
		return m.OldRegion(ctx)
	case geocache.FieldCountry:
		return m.OldCountry(ctx)
	case geocache.FieldLat:
		return m.OldLat(ctx)
	case geocache.FieldLng:
		return m.OldLng(ctx)
	case geocache.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GeoCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeoCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case geocache.FieldIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIP(v)
		return nil
	case geocache.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case geocache.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case geocache.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case geocache.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLat(v)
		return nil
	case geocache.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLng(v)
		return nil
	case geocache.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GeoCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GeoCacheMutation) AddedFields() []string {
	var fields []string
	if m.addlat != nil {
		fields = append(fields, geocache.FieldLat)
	}
	if m.addlng != nil {
		fields = append(fields, geocache.FieldLng)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GeoCacheMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case geocache.FieldLat:
		return m.AddedLat()
	case geocache.FieldLng:
		return m.AddedLng()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GeoCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	case geocache.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLat(v)
		return nil
	case geocache.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLng(v)
		return nil
	}
	return fmt.Errorf("unknown GeoCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GeoCacheMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(geocache.FieldCity) {
		fields = append(fields, geocache.FieldCity)
	}
	if m.FieldCleared(geocache.FieldRegion) {
		fields = append(fields, geocache.FieldRegion)
	}
	if m.FieldCleared(geocache.FieldCountry) {
		fields = append(fields, geocache.FieldCountry)
	}
	if m.FieldCleared(geocache.FieldLat) {
		fields = append(fields, geocache.FieldLat)
	}
	if m.FieldCleared(geocache.FieldLng) {
		fields = append(fields, geocache.FieldLng)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GeoCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GeoCacheMutation) ClearField(name string) error {
	switch name {
	case geocache.FieldCity:
		m.ClearCity()
		return nil
	case geocache.FieldRegion:
		m.ClearRegion()
		return nil
	case geocache.FieldCountry:
		m.ClearCountry()
		return nil
	case geocache.FieldLat:
		m.ClearLat()
		return nil
	case geocache.FieldLng:
		m.ClearLng()
		return nil
	}
	return fmt.Errorf("unknown GeoCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GeoCacheMutation) ResetField(name string) error {
	switch name {
	case geocache.FieldIP:
		m.ResetIP()
		return nil
	case geocache.FieldCity:
		m.ResetCity()
		return nil
	case geocache.FieldRegion:
		m.ResetRegion()
		return nil
	case geocache.FieldCountry:
		m.ResetCountry()
		return nil
	case geocache.FieldLat:
		m.ResetLat()
		return nil
	case geocache.FieldLng:
		m.ResetLng()
		return nil
	case geocache.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown GeoCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GeoCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GeoCacheMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GeoCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GeoCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GeoCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GeoCacheMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GeoCacheMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GeoCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GeoCacheMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GeoCache edge %s", name)
}

// RawEventMutation represents an operation that mutates the RawEvent nodes in the graph.
type RawEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	tenant_id          *uuid.UUID
	upload_id          *uuid.UUID
	visitor_key        *string
	visitor_uuid       *string
	ip                 *string
	event_ts           *time.Time
	event_type         *string
	url                *string
	referrer_url       *string
	time_on_page_ms    *int
	addtime_on_page_ms *int
	idle_time_ms       *int
	addidle_time_ms    *int
	scroll_pct         *float64
	addscroll_pct      *float64
	threshold          *string
	element_identifier *string
	element_text       *string
	title              *string
	lat                *float64
	addlat             *float64
	lng                *float64
	addlng             *float64
	raw_row            *map[string]string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*RawEvent, error)
	predicates         []predicate.RawEvent
}

var _ ent.Mutation = (*RawEventMutation)(nil)

// raweventOption allows management of the mutation configuration using functional options.
type raweventOption func(*RawEventMutation)

// newRawEventMutation creates new mutation for the RawEvent entity.
func newRawEventMutation(c config, op Op, opts ...raweventOption) *RawEventMutation {
	m := &RawEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRawEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRawEventID sets the ID field of the mutation.
func withRawEventID(id uuid.UUID) raweventOption {
	return func(m *RawEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RawEvent
		)
		m.oldValue = func(ctx context.Context) (*RawEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RawEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRawEvent sets the old RawEvent of the mutation.
func withRawEvent(node *RawEvent) raweventOption {
	return func(m *RawEventMutation) {
		m.oldValue = func(context.Context) (*RawEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RawEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RawEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RawEvent entities.
func (m *RawEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RawEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RawEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RawEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RawEventMutation) SetTenantID(u uuid.UUID) {
	m.tenant_id = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RawEventMutation) TenantID() (r uuid.UUID, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldTenantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RawEventMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetUploadID sets the "upload_id" field.
func (m *RawEventMutation) SetUploadID(u uuid.UUID) {
	m.upload_id = &u
}

// UploadID returns the value of the "upload_id" field in the mutation.
func (m *RawEventMutation) UploadID() (r uuid.UUID, exists bool) {
	v := m.upload_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadID returns the old "upload_id" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldUploadID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadID: %w", err)
	}
	return oldValue.UploadID, nil
}

// ResetUploadID resets all changes to the "upload_id" field.
func (m *RawEventMutation) ResetUploadID() {
	m.upload_id = nil
}

// SetVisitorKey sets the "visitor_key" field.
func (m *RawEventMutation) SetVisitorKey(s string) {
	m.visitor_key = &s
}

// VisitorKey returns the value of the "visitor_key" field in the mutation.
func (m *RawEventMutation) VisitorKey() (r string, exists bool) {
	v := m.visitor_key
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitorKey returns the old "visitor_key" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldVisitorKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitorKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitorKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitorKey: %w", err)
	}
	return oldValue.VisitorKey, nil
}

// ResetVisitorKey resets all changes to the "visitor_key" field.
func (m *RawEventMutation) ResetVisitorKey() {
	m.visitor_key = nil
}

// SetVisitorUUID sets the "visitor_uuid" field.
func (m *RawEventMutation) SetVisitorUUID(s string) {
	m.visitor_uuid = &s
}

// VisitorUUID returns the value of the "visitor_uuid" field in the mutation.
func (m *RawEventMutation) VisitorUUID() (r string, exists bool) {
	v := m.visitor_uuid
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitorUUID returns the old "visitor_uuid" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldVisitorUUID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitorUUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitorUUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitorUUID: %w", err)
	}
	return oldValue.VisitorUUID, nil
}

// ClearVisitorUUID clears the value of the "visitor_uuid" field.
func (m *RawEventMutation) ClearVisitorUUID() {
	m.visitor_uuid = nil
	m.clearedFields[rawevent.FieldVisitorUUID] = struct{}{}
}

// VisitorUUIDCleared returns if the "visitor_uuid" field was cleared in this mutation.
func (m *RawEventMutation) VisitorUUIDCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldVisitorUUID]
	return ok
}

// ResetVisitorUUID resets all changes to the "visitor_uuid" field.
func (m *RawEventMutation) ResetVisitorUUID() {
	m.visitor_uuid = nil
	delete(m.clearedFields, rawevent.FieldVisitorUUID)
}

// SetIP sets the "ip" field.
func (m *RawEventMutation) SetIP(s string) {
	m.ip = &s
}

// IP returns the value of the "ip" field in the mutation.
func (m *RawEventMutation) IP() (r string, exists bool) {
	v := m.ip
	if v == nil {
		return
	}
	return *v, true
}

// OldIP returns the old "ip" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldIP(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIP is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIP requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIP: %w", err)
	}
	return oldValue.IP, nil
}

// ClearIP clears the value of the "ip" field.
func (m *RawEventMutation) ClearIP() {
	m.ip = nil
	m.clearedFields[rawevent.FieldIP] = struct{}{}
}

// IPCleared returns if the "ip" field was cleared in this mutation.
func (m *RawEventMutation) IPCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldIP]
	return ok
}

// ResetIP resets all changes to the "ip" field.
func (m *RawEventMutation) ResetIP() {
	m.ip = nil
	delete(m.clearedFields, rawevent.FieldIP)
}

// SetEventTs sets the "event_ts" field.
func (m *RawEventMutation) SetEventTs(t time.Time) {
	m.event_ts = &t
}

// EventTs returns the value of the "event_ts" field in the mutation.
func (m *RawEventMutation) EventTs() (r time.Time, exists bool) {
	v := m.event_ts
	if v == nil {
		return
	}
	return *v, true
}

// OldEventTs returns the old "event_ts" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldEventTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventTs: %w", err)
	}
	return oldValue.EventTs, nil
}

// ResetEventTs resets all changes to the "event_ts" field.
func (m *RawEventMutation) ResetEventTs() {
	m.event_ts = nil
}

// SetEventType sets the "event_type" field.
func (m *RawEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *RawEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldEventType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ClearEventType clears the value of the "event_type" field.
func (m *RawEventMutation) ClearEventType() {
	m.event_type = nil
	m.clearedFields[rawevent.FieldEventType] = struct{}{}
}

// EventTypeCleared returns if the "event_type" field was cleared in this mutation.
func (m *RawEventMutation) EventTypeCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldEventType]
	return ok
}

// ResetEventType resets all changes to the "event_type" field.
func (m *RawEventMutation) ResetEventType() {
	m.event_type = nil
	delete(m.clearedFields, rawevent.FieldEventType)
}

// SetURL sets the "url" field.
func (m *RawEventMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *RawEventMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *RawEventMutation) ClearURL() {
	m.url = nil
	m.clearedFields[rawevent.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *RawEventMutation) URLCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *RawEventMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, rawevent.FieldURL)
}

// SetReferrerURL sets the "referrer_url" field.
func (m *RawEventMutation) SetReferrerURL(s string) {
	m.referrer_url = &s
}

// ReferrerURL returns the value of the "referrer_url" field in the mutation.
func (m *RawEventMutation) ReferrerURL() (r string, exists bool) {
	v := m.referrer_url
	if v == nil {
		return
	}
	return *v, true
}

// OldReferrerURL returns the old "referrer_url" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldReferrerURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferrerURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferrerURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferrerURL: %w", err)
	}
	return oldValue.ReferrerURL, nil
}

// ClearReferrerURL clears the value of the "referrer_url" field.
func (m *RawEventMutation) ClearReferrerURL() {
	m.referrer_url = nil
	m.clearedFields[rawevent.FieldReferrerURL] = struct{}{}
}

// ReferrerURLCleared returns if the "referrer_url" field was cleared in this mutation.
func (m *RawEventMutation) ReferrerURLCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldReferrerURL]
	return ok
}

// ResetReferrerURL resets all changes to the "referrer_url" field.
func (m *RawEventMutation) ResetReferrerURL() {
	m.referrer_url = nil
	delete(m.clearedFields, rawevent.FieldReferrerURL)
}

// SetTimeOnPageMs sets the "time_on_page_ms" field.
func (m *RawEventMutation) SetTimeOnPageMs(i int) {
	m.time_on_page_ms = &i
	m.addtime_on_page_ms = nil
}

// TimeOnPageMs returns the value of the "time_on_page_ms" field in the mutation.
func (m *RawEventMutation) TimeOnPageMs() (r int, exists bool) {
	v := m.time_on_page_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeOnPageMs returns the old "time_on_page_ms" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldTimeOnPageMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeOnPageMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeOnPageMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeOnPageMs: %w", err)
	}
	return oldValue.TimeOnPageMs, nil
}

// AddTimeOnPageMs adds i to the "time_on_page_ms" field.
func (m *RawEventMutation) AddTimeOnPageMs(i int) {
	if m.addtime_on_page_ms != nil {
		*m.addtime_on_page_ms += i
	} else {
		m.addtime_on_page_ms = &i
	}
}

// AddedTimeOnPageMs returns the value that was added to the "time_on_page_ms" field in this mutation.
func (m *RawEventMutation) AddedTimeOnPageMs() (r int, exists bool) {
	v := m.addtime_on_page_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearTimeOnPageMs clears the value of the "time_on_page_ms" field.
func (m *RawEventMutation) ClearTimeOnPageMs() {
	m.time_on_page_ms = nil
	m.addtime_on_page_ms = nil
	m.clearedFields[rawevent.FieldTimeOnPageMs] = struct{}{}
}

// TimeOnPageMsCleared returns if the "time_on_page_ms" field was cleared in this mutation.
func (m *RawEventMutation) TimeOnPageMsCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldTimeOnPageMs]
	return ok
}

// ResetTimeOnPageMs resets all changes to the "time_on_page_ms" field.
func (m *RawEventMutation) ResetTimeOnPageMs() {
	m.time_on_page_ms = nil
	m.addtime_on_page_ms = nil
	delete(m.clearedFields, rawevent.FieldTimeOnPageMs)
}

// SetIdleTimeMs sets the "idle_time_ms" field.
func (m *RawEventMutation) SetIdleTimeMs(i int) {
	m.idle_time_ms = &i
	m.addidle_time_ms = nil
}

// IdleTimeMs returns the value of the "idle_time_ms" field in the mutation.
func (m *RawEventMutation) IdleTimeMs() (r int, exists bool) {
	v := m.idle_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldIdleTimeMs returns the old "idle_time_ms" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldIdleTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdleTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdleTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdleTimeMs: %w", err)
	}
	return oldValue.IdleTimeMs, nil
}

// AddIdleTimeMs adds i to the "idle_time_ms" field.
func (m *RawEventMutation) AddIdleTimeMs(i int) {
	if m.addidle_time_ms != nil {
		*m.addidle_time_ms += i
	} else {
		m.addidle_time_ms = &i
	}
}

// AddedIdleTimeMs returns the value that was added to the "idle_time_ms" field in this mutation.
func (m *RawEventMutation) AddedIdleTimeMs() (r int, exists bool) {
	v := m.addidle_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearIdleTimeMs clears the value of the "idle_time_ms" field.
func (m *RawEventMutation) ClearIdleTimeMs() {
	m.idle_time_ms = nil
	m.addidle_time_ms = nil
	m.clearedFields[rawevent.FieldIdleTimeMs] = struct{}{}
}

// IdleTimeMsCleared returns if the "idle_time_ms" field was cleared in this mutation.
func (m *RawEventMutation) IdleTimeMsCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldIdleTimeMs]
	return ok
}

// ResetIdleTimeMs resets all changes to the "idle_time_ms" field.
func (m *RawEventMutation) ResetIdleTimeMs() {
	m.idle_time_ms = nil
	m.addidle_time_ms = nil
	delete(m.clearedFields, rawevent.FieldIdleTimeMs)
}

// SetScrollPct sets the "scroll_pct" field.
func (m *RawEventMutation) SetScrollPct(f float64) {
	m.scroll_pct = &f
	m.addscroll_pct = nil
}

// ScrollPct returns the value of the "scroll_pct" field in the mutation.
func (m *RawEventMutation) ScrollPct() (r float64, exists bool) {
	v := m.scroll_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldScrollPct returns the old "scroll_pct" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldScrollPct(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScrollPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScrollPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScrollPct: %w", err)
	}
	return oldValue.ScrollPct, nil
}

// AddScrollPct adds f to the "scroll_pct" field.
func (m *RawEventMutation) AddScrollPct(f float64) {
	if m.addscroll_pct != nil {
		*m.addscroll_pct += f
	} else {
		m.addscroll_pct = &f
	}
}

// AddedScrollPct returns the value that was added to the "scroll_pct" field in this mutation.
func (m *RawEventMutation) AddedScrollPct() (r float64, exists bool) {
	v := m.addscroll_pct
	if v == nil {
		return
	}
	return *v, true
}

// ClearScrollPct clears the value of the "scroll_pct" field.
func (m *RawEventMutation) ClearScrollPct() {
	m.scroll_pct = nil
	m.addscroll_pct = nil
	m.clearedFields[rawevent.FieldScrollPct] = struct{}{}
}

// ScrollPctCleared returns if the "scroll_pct" field was cleared in this mutation.
func (m *RawEventMutation) ScrollPctCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldScrollPct]
	return ok
}

// ResetScrollPct resets all changes to the "scroll_pct" field.
func (m *RawEventMutation) ResetScrollPct() {
	m.scroll_pct = nil
	m.addscroll_pct = nil
	delete(m.clearedFields, rawevent.FieldScrollPct)
}

// SetThreshold sets the "threshold" field.
func (m *RawEventMutation) SetThreshold(s string) {
	m.threshold = &s
}

// Threshold returns the value of the "threshold" field in the mutation.
func (m *RawEventMutation) Threshold() (r string, exists bool) {
	v := m.threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldThreshold returns the old "threshold" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldThreshold(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreshold: %w", err)
	}
	return oldValue.Threshold, nil
}

// ClearThreshold clears the value of the "threshold" field.
func (m *RawEventMutation) ClearThreshold() {
	m.threshold = nil
	m.clearedFields[rawevent.FieldThreshold] = struct{}{}
}

// ThresholdCleared returns if the "threshold" field was cleared in this mutation.
func (m *RawEventMutation) ThresholdCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldThreshold]
	return ok
}

// ResetThreshold resets all changes to the "threshold" field.
func (m *RawEventMutation) ResetThreshold() {
	m.threshold = nil
	delete(m.clearedFields, rawevent.FieldThreshold)
}

// SetElementIdentifier sets the "element_identifier" field.
func (m *RawEventMutation) SetElementIdentifier(s string) {
	m.element_identifier = &s
}

// ElementIdentifier returns the value of the "element_identifier" field in the mutation.
func (m *RawEventMutation) ElementIdentifier() (r string, exists bool) {
	v := m.element_identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldElementIdentifier returns the old "element_identifier" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldElementIdentifier(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElementIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElementIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElementIdentifier: %w", err)
	}
	return oldValue.ElementIdentifier, nil
}

// ClearElementIdentifier clears the value of the "element_identifier" field.
func (m *RawEventMutation) ClearElementIdentifier() {
	m.element_identifier = nil
	m.clearedFields[rawevent.FieldElementIdentifier] = struct{}{}
}

// ElementIdentifierCleared returns if the "element_identifier" field was cleared in this mutation.
func (m *RawEventMutation) ElementIdentifierCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldElementIdentifier]
	return ok
}

// ResetElementIdentifier resets all changes to the "element_identifier" field.
func (m *RawEventMutation) ResetElementIdentifier() {
	m.element_identifier = nil
	delete(m.clearedFields, rawevent.FieldElementIdentifier)
}

// SetElementText sets the "element_text" field.
func (m *RawEventMutation) SetElementText(s string) {
	m.element_text = &s
}

// ElementText returns the value of the "element_text" field in the mutation.
func (m *RawEventMutation) ElementText() (r string, exists bool) {
	v := m.element_text
	if v == nil {
		return
	}
	return *v, true
}

// OldElementText returns the old "element_text" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldElementText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElementText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElementText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElementText: %w", err)
	}
	return oldValue.ElementText, nil
}

// ClearElementText clears the value of the "element_text" field.
func (m *RawEventMutation) ClearElementText() {
	m.element_text = nil
	m.clearedFields[rawevent.FieldElementText] = struct{}{}
}

// ElementTextCleared returns if the "element_text" field was cleared in this mutation.
func (m *RawEventMutation) ElementTextCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldElementText]
	return ok
}

// ResetElementText resets all changes to the "element_text" field.
func (m *RawEventMutation) ResetElementText() {
	m.element_text = nil
	delete(m.clearedFields, rawevent.FieldElementText)
}

// SetTitle sets the "title" field.
func (m *RawEventMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *RawEventMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *RawEventMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[rawevent.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *RawEventMutation) TitleCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *RawEventMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, rawevent.FieldTitle)
}

// SetLat sets the "lat" field.
func (m *RawEventMutation) SetLat(f float64) {
	m.lat = &f
	m.addlat = nil
}

// Lat returns the value of the "lat" field in the mutation.
func (m *RawEventMutation) Lat() (r float64, exists bool) {
	v := m.lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLat returns the old "lat" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLat: %w", err)
	}
	return oldValue.Lat, nil
}

// AddLat adds f to the "lat" field.
func (m *RawEventMutation) AddLat(f float64) {
	if m.addlat != nil {
		*m.addlat += f
	} else {
		m.addlat = &f
	}
}

// AddedLat returns the value that was added to the "lat" field in this mutation.
func (m *RawEventMutation) AddedLat() (r float64, exists bool) {
	v := m.addlat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLat clears the value of the "lat" field.
func (m *RawEventMutation) ClearLat() {
	m.lat = nil
	m.addlat = nil
	m.clearedFields[rawevent.FieldLat] = struct{}{}
}

// LatCleared returns if the "lat" field was cleared in this mutation.
func (m *RawEventMutation) LatCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldLat]
	return ok
}

// ResetLat resets all changes to the "lat" field.
func (m *RawEventMutation) ResetLat() {
	m.lat = nil
	m.addlat = nil
	delete(m.clearedFields, rawevent.FieldLat)
}

// SetLng sets the "lng" field.
func (m *RawEventMutation) SetLng(f float64) {
	m.lng = &f
	m.addlng = nil
}

// Lng returns the value of the "lng" field in the mutation.
func (m *RawEventMutation) Lng() (r float64, exists bool) {
	v := m.lng
	if v == nil {
		return
	}
	return *v, true
}

// OldLng returns the old "lng" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldLng(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLng is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLng requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLng: %w", err)
	}
	return oldValue.Lng, nil
}

// AddLng adds f to the "lng" field.
func (m *RawEventMutation) AddLng(f float64) {
	if m.addlng != nil {
		*m.addlng += f
	} else {
		m.addlng = &f
	}
}

// AddedLng returns the value that was added to the "lng" field in this mutation.
func (m *RawEventMutation) AddedLng() (r float64, exists bool) {
	v := m.addlng
	if v == nil {
		return
	}
	return *v, true
}

// ClearLng clears the value of the "lng" field.
func (m *RawEventMutation) ClearLng() {
	m.lng = nil
	m.addlng = nil
	m.clearedFields[rawevent.FieldLng] = struct{}{}
}

// LngCleared returns if the "lng" field was cleared in this mutation.
func (m *RawEventMutation) LngCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldLng]
	return ok
}

// ResetLng resets all changes to the "lng" field.
func (m *RawEventMutation) ResetLng() {
	m.lng = nil
	m.addlng = nil
	delete(m.clearedFields, rawevent.FieldLng)
}

// SetRawRow sets the "raw_row" field.
func (m *RawEventMutation) SetRawRow(value map[string]string) {
	m.raw_row = &value
}

// RawRow returns the value of the "raw_row" field in the mutation.
func (m *RawEventMutation) RawRow() (r map[string]string, exists bool) {
	v := m.raw_row
	if v == nil {
		return
	}
	return *v, true
}

// OldRawRow returns the old "raw_row" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldRawRow(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawRow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawRow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawRow: %w", err)
	}
	return oldValue.RawRow, nil
}

// ClearRawRow clears the value of the "raw_row" field.
func (m *RawEventMutation) ClearRawRow() {
	m.raw_row = nil
	m.clearedFields[rawevent.FieldRawRow] = struct{}{}
}

// RawRowCleared returns if the "raw_row" field was cleared in this mutation.
func (m *RawEventMutation) RawRowCleared() bool {
	_, ok := m.clearedFields[rawevent.FieldRawRow]
	return ok
}

// ResetRawRow resets all changes to the "raw_row" field.
func (m *RawEventMutation) ResetRawRow() {
	m.raw_row = nil
	delete(m.clearedFields, rawevent.FieldRawRow)
}

// SetCreatedAt sets the "created_at" field.
func (m *RawEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RawEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RawEvent entity.
// If the RawEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RawEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RawEventMutation builder.
func (m *RawEventMutation) Where(ps ...predicate.RawEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RawEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RawEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RawEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RawEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RawEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RawEvent).
func (m *RawEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RawEventMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.tenant_id != nil {
		fields = append(fields, rawevent.FieldTenantID)
	}
	if m.upload_id != nil {
		fields = append(fields, rawevent.FieldUploadID)
	}
	if m.visitor_key != nil {
		fields = append(fields, rawevent.FieldVisitorKey)
	}
	if m.visitor_uuid != nil {
		fields = append(fields, rawevent.FieldVisitorUUID)
	}
	if m.ip != nil {
		fields = append(fields, rawevent.FieldIP)
	}
	if m.event_ts != nil {
		fields = append(fields, rawevent.FieldEventTs)
	}
	if m.event_type != nil {
		fields = append(fields, rawevent.FieldEventType)
	}
	if m.url != nil {
		fields = append(fields, rawevent.FieldURL)
	}
	if m.referrer_url != nil {
		fields = append(fields, rawevent.FieldReferrerURL)
	}
	if m.time_on_page_ms != nil {
		fields = append(fields, rawevent.FieldTimeOnPageMs)
	}
	if m.idle_time_ms != nil {
		fields = append(fields, rawevent.FieldIdleTimeMs)
	}
	if m.scroll_pct != nil {
		fields = append(fields, rawevent.FieldScrollPct)
	}
	if m.threshold != nil {
		fields = append(fields, rawevent.FieldThreshold)
	}
	if m.element_identifier != nil {
		fields = append(fields, rawevent.FieldElementIdentifier)
	}
	if m.element_text != nil {
		fields = append(fields, rawevent.FieldElementText)
	}
	if m.title != nil {
		fields = append(fields, rawevent.FieldTitle)
	}
	if m.lat != nil {
		fields = append(fields, rawevent.FieldLat)
	}
	if m.lng != nil {
		fields = append(fields, rawevent.FieldLng)
	}
	if m.raw_row != nil {
		fields = append(fields, rawevent.FieldRawRow)
	}
	if m.created_at != nil {
		fields = append(fields, rawevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RawEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rawevent.FieldTenantID:
		return m.TenantID()
	case rawevent.FieldUploadID:
		return m.UploadID()
	case rawevent.FieldVisitorKey:
		return m.VisitorKey()
	case rawevent.FieldVisitorUUID:
		return m.VisitorUUID()
	case rawevent.FieldIP:
		return m.IP()
	case rawevent.FieldEventTs:
		return m.EventTs()
	case rawevent.FieldEventType:
		return m.EventType()
	case rawevent.FieldURL:
		return m.URL()
	case rawevent.FieldReferrerURL:
		return m.ReferrerURL()
	case rawevent.FieldTimeOnPageMs:
		return m.TimeOnPageMs()
	case rawevent.FieldIdleTimeMs:
		return m.IdleTimeMs()
	case rawevent.FieldScrollPct:
		return m.ScrollPct()
	case rawevent.FieldThreshold:
		return m.Threshold()
	case rawevent.FieldElementIdentifier:
		return m.ElementIdentifier()
	case rawevent.FieldElementText:
		return m.ElementText()
	case rawevent.FieldTitle:
		return m.Title()
	case rawevent.FieldLat:
		return m.Lat()
	case rawevent.FieldLng:
		return m.Lng()
	case rawevent.FieldRawRow:
		return m.RawRow()
	case rawevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RawEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rawevent.FieldTenantID:
		return m.OldTenantID(ctx)
	case rawevent.FieldUploadID:
		return m.OldUploadID(ctx)
	case rawevent.FieldVisitorKey:
		return m.OldVisitorKey(ctx)
	case rawevent.FieldVisitorUUID:
		return m.OldVisitorUUID(ctx)
	case rawevent.FieldIP:
		return m.OldIP(ctx)
	case rawevent.FieldEventTs:
		return m.OldEventTs(ctx)
	case rawevent.FieldEventType:
		return m.OldEventType(ctx)
	case rawevent.FieldURL:
		return m.OldURL(ctx)
	case rawevent.FieldReferrerURL:
		return m.OldReferrerURL(ctx)
	case rawevent.FieldTimeOnPageMs:
		return m.OldTimeOnPageMs(ctx)
	case rawevent.FieldIdleTimeMs:
		return m.OldIdleTimeMs(ctx)
	case rawevent.FieldScrollPct:
		return m.OldScrollPct(ctx)
	case rawevent.FieldThreshold:
		return m.OldThreshold(ctx)
	case rawevent.FieldElementIdentifier:
		return m.OldElementIdentifier(ctx)
	case rawevent.FieldElementText:
		return m.OldElementText(ctx)
	case rawevent.FieldTitle:
		return m.OldTitle(ctx)
	case rawevent.FieldLat:
		return m.OldLat(ctx)
	case rawevent.FieldLng:
		return m.OldLng(ctx)
	case rawevent.FieldRawRow:
		return m.OldRawRow(ctx)
	case rawevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RawEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rawevent.FieldTenantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case rawevent.FieldUploadID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadID(v)
		return nil
	case rawevent.FieldVisitorKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitorKey(v)
		return nil
	case rawevent.FieldVisitorUUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitorUUID(v)
		return nil
	case rawevent.FieldIP:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIP(v)
		return nil
	case rawevent.FieldEventTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventTs(v)
		return nil
	case rawevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case rawevent.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case rawevent.FieldReferrerURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferrerURL(v)
		return nil
	case rawevent.FieldTimeOnPageMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeOnPageMs(v)
		return nil
	case rawevent.FieldIdleTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdleTimeMs(v)
		return nil
	case rawevent.FieldScrollPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScrollPct(v)
		return nil
	case rawevent.FieldThreshold:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreshold(v)
		return nil
	case rawevent.FieldElementIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElementIdentifier(v)
		return nil
	case rawevent.FieldElementText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElementText(v)
		return nil
	case rawevent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case rawevent.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLat(v)
		return nil
	case rawevent.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLng(v)
		return nil
	case rawevent.FieldRawRow:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawRow(v)
		return nil
	case rawevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RawEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RawEventMutation) AddedFields() []string {
	var fields []string
	if m.addtime_on_page_ms != nil {
		fields = append(fields, rawevent.FieldTimeOnPageMs)
	}
	if m.addidle_time_ms != nil {
		fields = append(fields, rawevent.FieldIdleTimeMs)
	}
	if m.addscroll_pct != nil {
		fields = append(fields, rawevent.FieldScrollPct)
	}
	if m.addlat != nil {
		fields = append(fields, rawevent.FieldLat)
	}
	if m.addlng != nil {
		fields = append(fields, rawevent.FieldLng)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RawEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rawevent.FieldTimeOnPageMs:
		return m.AddedTimeOnPageMs()
	case rawevent.FieldIdleTimeMs:
		return m.AddedIdleTimeMs()
	case rawevent.FieldScrollPct:
		return m.AddedScrollPct()
	case rawevent.FieldLat:
		return m.AddedLat()
	case rawevent.FieldLng:
		return m.AddedLng()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rawevent.FieldTimeOnPageMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeOnPageMs(v)
		return nil
	case rawevent.FieldIdleTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIdleTimeMs(v)
		return nil
	case rawevent.FieldScrollPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScrollPct(v)
		return nil
	case rawevent.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLat(v)
		return nil
	case rawevent.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLng(v)
		return nil
	}
	return fmt.Errorf("unknown RawEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RawEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rawevent.FieldVisitorUUID) {
		fields = append(fields, rawevent.FieldVisitorUUID)
	}
	if m.FieldCleared(rawevent.FieldIP) {
		fields = append(fields, rawevent.FieldIP)
	}
	if m.FieldCleared(rawevent.FieldEventType) {
		fields = append(fields, rawevent.FieldEventType)
	}
	if m.FieldCleared(rawevent.FieldURL) {
		fields = append(fields, rawevent.FieldURL)
	}
	if m.FieldCleared(rawevent.FieldReferrerURL) {
		fields = append(fields, rawevent.FieldReferrerURL)
	}
	if m.FieldCleared(rawevent.FieldTimeOnPageMs) {
		fields = append(fields, rawevent.FieldTimeOnPageMs)
	}
	if m.FieldCleared(rawevent.FieldIdleTimeMs) {
		fields = append(fields, rawevent.FieldIdleTimeMs)
	}
	if m.FieldCleared(rawevent.FieldScrollPct) {
		fields = append(fields, rawevent.FieldScrollPct)
	}
	if m.FieldCleared(rawevent.FieldThreshold) {
		fields = append(fields, rawevent.FieldThreshold)
	}
	if m.FieldCleared(rawevent.FieldElementIdentifier) {
		fields = append(fields, rawevent.FieldElementIdentifier)
	}
	if m.FieldCleared(rawevent.FieldElementText) {
		fields = append(fields, rawevent.FieldElementText)
	}
	if m.FieldCleared(rawevent.FieldTitle) {
		fields = append(fields, rawevent.FieldTitle)
	}
	if m.FieldCleared(rawevent.FieldLat) {
		fields = append(fields, rawevent.FieldLat)
	}
	if m.FieldCleared(rawevent.FieldLng) {
		fields = append(fields, rawevent.FieldLng)
	}
	if m.FieldCleared(rawevent.FieldRawRow) {
		fields = append(fields, rawevent.FieldRawRow)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RawEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RawEventMutation) ClearField(name string) error {
	switch name {
	case rawevent.FieldVisitorUUID:
		m.ClearVisitorUUID()
		return nil
	case rawevent.FieldIP:
		m.ClearIP()
		return nil
	case rawevent.FieldEventType:
		m.ClearEventType()
		return nil
	case rawevent.FieldURL:
		m.ClearURL()
		return nil
	case rawevent.FieldReferrerURL:
		m.ClearReferrerURL()
		return nil
	case rawevent.FieldTimeOnPageMs:
		m.ClearTimeOnPageMs()
		return nil
	case rawevent.FieldIdleTimeMs:
		m.ClearIdleTimeMs()
		return nil
	case rawevent.FieldScrollPct:
		m.ClearScrollPct()
		return nil
	case rawevent.FieldThreshold:
		m.ClearThreshold()
		return nil
	case rawevent.FieldElementIdentifier:
		m.ClearElementIdentifier()
		return nil
	case rawevent.FieldElementText:
		m.ClearElementText()
		return nil
	case rawevent.FieldTitle:
		m.ClearTitle()
		return nil
	case rawevent.FieldLat:
		m.ClearLat()
		return nil
	case rawevent.FieldLng:
		m.ClearLng()
		return nil
	case rawevent.FieldRawRow:
		m.ClearRawRow()
		return nil
	}
	return fmt.Errorf("unknown RawEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RawEventMutation) ResetField(name string) error {
	switch name {
	case rawevent.FieldTenantID:
		m.ResetTenantID()
		return nil
	case rawevent.FieldUploadID:
		m.ResetUploadID()
		return nil
	case rawevent.FieldVisitorKey:
		m.ResetVisitorKey()
		return nil
	case rawevent.FieldVisitorUUID:
		m.ResetVisitorUUID()
		return nil
	case rawevent.FieldIP:
		m.ResetIP()
		return nil
	case rawevent.FieldEventTs:
		m.ResetEventTs()
		return nil
	case rawevent.FieldEventType:
		m.ResetEventType()
		return nil
	case rawevent.FieldURL:
		m.ResetURL()
		return nil
	case rawevent.FieldReferrerURL:
		m.ResetReferrerURL()
		return nil
	case rawevent.FieldTimeOnPageMs:
		m.ResetTimeOnPageMs()
		return nil
	case rawevent.FieldIdleTimeMs:
		m.ResetIdleTimeMs()
		return nil
	case rawevent.FieldScrollPct:
		m.ResetScrollPct()
		return nil
	case rawevent.FieldThreshold:
		m.ResetThreshold()
		return nil
	case rawevent.FieldElementIdentifier:
		m.ResetElementIdentifier()
		return nil
	case rawevent.FieldElementText:
		m.ResetElementText()
		return nil
	case rawevent.FieldTitle:
		m.ResetTitle()
		return nil
	case rawevent.FieldLat:
		m.ResetLat()
		return nil
	case rawevent.FieldLng:
		m.ResetLng()
		return nil
	case rawevent.FieldRawRow:
		m.ResetRawRow()
		return nil
	case rawevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RawEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RawEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RawEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RawEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RawEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RawEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RawEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RawEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RawEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RawEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RawEvent edge %s", name)
}

// TenantMutation represents an operation that mutates the Tenant nodes in the graph.
type TenantMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	domain         *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	uploads        map[uuid.UUID]struct{}
	removeduploads map[uuid.UUID]struct{}
	cleareduploads bool
	done           bool
	oldValue       func(context.Context) (*Tenant, error)
	predicates     []predicate.Tenant
}

var _ ent.Mutation = (*TenantMutation)(nil)

// tenantOption allows management of the mutation configuration using functional options.
type tenantOption func(*TenantMutation)

// newTenantMutation creates new mutation for the Tenant entity.
func newTenantMutation(c config, op Op, opts ...tenantOption) *TenantMutation {
	m := &TenantMutation{
		config:        c,
		op:            op,
		typ:           TypeTenant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTenantID sets the ID field of the mutation.
func withTenantID(id uuid.UUID) tenantOption {
	return func(m *TenantMutation) {
		var (
			err   error
			once  sync.Once
			value *Tenant
		)
		m.oldValue = func(ctx context.Context) (*Tenant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tenant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTenant sets the old Tenant of the mutation.
func withTenant(node *Tenant) tenantOption {
	return func(m *TenantMutation) {
		m.oldValue = func(context.Context) (*Tenant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TenantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TenantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Tenant entities.
func (m *TenantMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TenantMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TenantMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tenant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TenantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TenantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TenantMutation) ResetName() {
	m.name = nil
}

// SetDomain sets the "domain" field.
func (m *TenantMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *TenantMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldDomain(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ClearDomain clears the value of the "domain" field.
func (m *TenantMutation) ClearDomain() {
	m.domain = nil
	m.clearedFields[tenant.FieldDomain] = struct{}{}
}

// DomainCleared returns if the "domain" field was cleared in this mutation.
func (m *TenantMutation) DomainCleared() bool {
	_, ok := m.clearedFields[tenant.FieldDomain]
	return ok
}

// ResetDomain resets all changes to the "domain" field.
func (m *TenantMutation) ResetDomain() {
	m.domain = nil
	delete(m.clearedFields, tenant.FieldDomain)
}

// SetCreatedAt sets the "created_at" field.
func (m *TenantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TenantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tenant entity.
// If the Tenant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TenantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TenantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddUploadIDs adds the "uploads" edge to the Upload entity by ids.
func (m *TenantMutation) AddUploadIDs(ids ...uuid.UUID) {
	if m.uploads == nil {
		m.uploads = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.uploads[ids[i]] = struct{}{}
	}
}

// ClearUploads clears the "uploads" edge to the Upload entity.
func (m *TenantMutation) ClearUploads() {
	m.cleareduploads = true
}

// UploadsCleared reports if the "uploads" edge to the Upload entity was cleared.
func (m *TenantMutation) UploadsCleared() bool {
	return m.cleareduploads
}

// RemoveUploadIDs removes the "uploads" edge to the Upload entity by IDs.
func (m *TenantMutation) RemoveUploadIDs(ids ...uuid.UUID) {
	if m.removeduploads == nil {
		m.removeduploads = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.uploads, ids[i])
		m.removeduploads[ids[i]] = struct{}{}
	}
}

// RemovedUploads returns the removed IDs of the "uploads" edge to the Upload entity.
func (m *TenantMutation) RemovedUploadsIDs() (ids []uuid.UUID) {
	for id := range m.removeduploads {
		ids = append(ids, id)
	}
	return
}

// UploadsIDs returns the "uploads" edge IDs in the mutation.
func (m *TenantMutation) UploadsIDs() (ids []uuid.UUID) {
	for id := range m.uploads {
		ids = append(ids, id)
	}
	return
}

// ResetUploads resets all changes to the "uploads" edge.
func (m *TenantMutation) ResetUploads() {
	m.uploads = nil
	m.cleareduploads = false
	m.removeduploads = nil
}

// Where appends a list predicates to the TenantMutation builder.
func (m *TenantMutation) Where(ps ...predicate.Tenant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TenantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TenantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tenant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TenantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TenantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tenant).
func (m *TenantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TenantMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, tenant.FieldName)
	}
	if m.domain != nil {
		fields = append(fields, tenant.FieldDomain)
	}
	if m.created_at != nil {
		fields = append(fields, tenant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TenantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tenant.FieldName:
		return m.Name()
	case tenant.FieldDomain:
		return m.Domain()
	case tenant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TenantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tenant.FieldName:
		return m.OldName(ctx)
	case tenant.FieldDomain:
		return m.OldDomain(ctx)
	case tenant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tenant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tenant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tenant.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case tenant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TenantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TenantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TenantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TenantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tenant.FieldDomain) {
		fields = append(fields, tenant.FieldDomain)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TenantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TenantMutation) ClearField(name string) error {
	switch name {
	case tenant.FieldDomain:
		m.ClearDomain()
		return nil
	}
	return fmt.Errorf("unknown Tenant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TenantMutation) ResetField(name string) error {
	switch name {
	case tenant.FieldName:
		m.ResetName()
		return nil
	case tenant.FieldDomain:
		m.ResetDomain()
		return nil
	case tenant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tenant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TenantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.uploads != nil {
		edges = append(edges, tenant.EdgeUploads)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TenantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeUploads:
		ids := make([]ent.Value, 0, len(m.uploads))
		for id := range m.uploads {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TenantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeduploads != nil {
		edges = append(edges, tenant.EdgeUploads)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TenantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tenant.EdgeUploads:
		ids := make([]ent.Value, 0, len(m.removeduploads))
		for id := range m.removeduploads {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TenantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduploads {
		edges = append(edges, tenant.EdgeUploads)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TenantMutation) EdgeCleared(name string) bool {
	switch name {
	case tenant.EdgeUploads:
		return m.cleareduploads
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TenantMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Tenant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TenantMutation) ResetEdge(name string) error {
	switch name {
	case tenant.EdgeUploads:
		m.ResetUploads()
		return nil
	}
	return fmt.Errorf("unknown Tenant edge %s", name)
}

// UploadMutation represents an operation that mutates the Upload nodes in the graph.
type UploadMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	filename      *string
	status        *string
	row_count     *int
	addrow_count  *int
	error         *string
	processed_at  *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	tenant        *uuid.UUID
	clearedtenant bool
	done          bool
	oldValue      func(context.Context) (*Upload, error)
	predicates    []predicate.Upload
}

var _ ent.Mutation = (*UploadMutation)(nil)

// uploadOption allows management of the mutation configuration using functional options.
type uploadOption func(*UploadMutation)

// newUploadMutation creates new mutation for the Upload entity.
func newUploadMutation(c config, op Op, opts ...uploadOption) *UploadMutation {
	m := &UploadMutation{
		config:        c,
		op:            op,
		typ:           TypeUpload,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadID sets the ID field of the mutation.
func withUploadID(id uuid.UUID) uploadOption {
	return func(m *UploadMutation) {
		var (
			err   error
			once  sync.Once
			value *Upload
		)
		m.oldValue = func(ctx context.Context) (*Upload, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Upload.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUpload sets the old Upload of the mutation.
func withUpload(node *Upload) uploadOption {
	return func(m *UploadMutation) {
		m.oldValue = func(context.Context) (*Upload, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Upload entities.
func (m *UploadMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Upload.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *UploadMutation) SetTenantID(u uuid.UUID) {
	m.tenant = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *UploadMutation) TenantID() (r uuid.UUID, exists bool) {
	v := m.tenant
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldTenantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *UploadMutation) ResetTenantID() {
	m.tenant = nil
}

// SetFilename sets the "filename" field.
func (m *UploadMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *UploadMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ClearFilename clears the value of the "filename" field.
func (m *UploadMutation) ClearFilename() {
	m.filename = nil
	m.clearedFields[upload.FieldFilename] = struct{}{}
}

// FilenameCleared returns if the "filename" field was cleared in this mutation.
func (m *UploadMutation) FilenameCleared() bool {
	_, ok := m.clearedFields[upload.FieldFilename]
	return ok
}

// ResetFilename resets all changes to the "filename" field.
func (m *UploadMutation) ResetFilename() {
	m.filename = nil
	delete(m.clearedFields, upload.FieldFilename)
}

// SetStatus sets the "status" field.
func (m *UploadMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *UploadMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UploadMutation) ResetStatus() {
	m.status = nil
}

// SetRowCount sets the "row_count" field.
func (m *UploadMutation) SetRowCount(i int) {
	m.row_count = &i
	m.addrow_count = nil
}

// RowCount returns the value of the "row_count" field in the mutation.
func (m *UploadMutation) RowCount() (r int, exists bool) {
	v := m.row_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRowCount returns the old "row_count" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldRowCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowCount: %w", err)
	}
	return oldValue.RowCount, nil
}

// AddRowCount adds i to the "row_count" field.
func (m *UploadMutation) AddRowCount(i int) {
	if m.addrow_count != nil {
		*m.addrow_count += i
	} else {
		m.addrow_count = &i
	}
}

// AddedRowCount returns the value that was added to the "row_count" field in this mutation.
func (m *UploadMutation) AddedRowCount() (r int, exists bool) {
	v := m.addrow_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowCount resets all changes to the "row_count" field.
func (m *UploadMutation) ResetRowCount() {
	m.row_count = nil
	m.addrow_count = nil
}

// SetError sets the "error" field.
func (m *UploadMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *UploadMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *UploadMutation) ClearError() {
	m.error = nil
	m.clearedFields[upload.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *UploadMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[upload.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *UploadMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, upload.FieldError)
}

// SetProcessedAt sets the "processed_at" field.
func (m *UploadMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *UploadMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *UploadMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[upload.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *UploadMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[upload.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *UploadMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, upload.FieldProcessedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UploadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UploadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UploadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (m *UploadMutation) ClearTenant() {
	m.clearedtenant = true
	m.clearedFields[upload.FieldTenantID] = struct{}{}
}

// TenantCleared reports if the "tenant" edge to the Tenant entity was cleared.
func (m *UploadMutation) TenantCleared() bool {
	return m.clearedtenant
}

// TenantIDs returns the "tenant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TenantID instead. It exists only for internal usage by the builders.
func (m *UploadMutation) TenantIDs() (ids []uuid.UUID) {
	if id := m.tenant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTenant resets all changes to the "tenant" edge.
func (m *UploadMutation) ResetTenant() {
	m.tenant = nil
	m.clearedtenant = false
}

// Where appends a list predicates to the UploadMutation builder.
func (m *UploadMutation) Where(ps ...predicate.Upload) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Upload, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Upload).
func (m *UploadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.tenant != nil {
		fields = append(fields, upload.FieldTenantID)
	}
	if m.filename != nil {
		fields = append(fields, upload.FieldFilename)
	}
	if m.status != nil {
		fields = append(fields, upload.FieldStatus)
	}
	if m.row_count != nil {
		fields = append(fields, upload.FieldRowCount)
	}
	if m.error != nil {
		fields = append(fields, upload.FieldError)
	}
	if m.processed_at != nil {
		fields = append(fields, upload.FieldProcessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, upload.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case upload.FieldTenantID:
		return m.TenantID()
	case upload.FieldFilename:
		return m.Filename()
	case upload.FieldStatus:
		return m.Status()
	case upload.FieldRowCount:
		return m.RowCount()
	case upload.FieldError:
		return m.Error()
	case upload.FieldProcessedAt:
		return m.ProcessedAt()
	case upload.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case upload.FieldTenantID:
		return m.OldTenantID(ctx)
	case upload.FieldFilename:
		return m.OldFilename(ctx)
	case upload.FieldStatus:
		return m.OldStatus(ctx)
	case upload.FieldRowCount:
		return m.OldRowCount(ctx)
	case upload.FieldError:
		return m.OldError(ctx)
	case upload.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case upload.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Upload field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case upload.FieldTenantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case upload.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case upload.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case upload.FieldRowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowCount(v)
		return nil
	case upload.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case upload.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case upload.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Upload field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadMutation) AddedFields() []string {
	var fields []string
	if m.addrow_count != nil {
		fields = append(fields, upload.FieldRowCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case upload.FieldRowCount:
		return m.AddedRowCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case upload.FieldRowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowCount(v)
		return nil
	}
	return fmt.Errorf("unknown Upload numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(upload.FieldFilename) {
		fields = append(fields, upload.FieldFilename)
	}
	if m.FieldCleared(upload.FieldError) {
		fields = append(fields, upload.FieldError)
	}
	if m.FieldCleared(upload.FieldProcessedAt) {
		fields = append(fields, upload.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadMutation) ClearField(name string) error {
	switch name {
	case upload.FieldFilename:
		m.ClearFilename()
		return nil
	case upload.FieldError:
		m.ClearError()
		return nil
	case upload.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Upload nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadMutation) ResetField(name string) error {
	switch name {
	case upload.FieldTenantID:
		m.ResetTenantID()
		return nil
	case upload.FieldFilename:
		m.ResetFilename()
		return nil
	case upload.FieldStatus:
		m.ResetStatus()
		return nil
	case upload.FieldRowCount:
		m.ResetRowCount()
		return nil
	case upload.FieldError:
		m.ResetError()
		return nil
	case upload.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case upload.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Upload field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tenant != nil {
		edges = append(edges, upload.EdgeTenant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case upload.EdgeTenant:
		if id := m.tenant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtenant {
		edges = append(edges, upload.EdgeTenant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadMutation) EdgeCleared(name string) bool {
	switch name {
	case upload.EdgeTenant:
		return m.clearedtenant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadMutation) ClearEdge(name string) error {
	switch name {
	case upload.EdgeTenant:
		m.ClearTenant()
		return nil
	}
	return fmt.Errorf("unknown Upload unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadMutation) ResetEdge(name string) error {
	switch name {
	case upload.EdgeTenant:
		m.ResetTenant()
		return nil
	}
	return fmt.Errorf("unknown Upload edge %s", name)
}

// VisitorProfileMutation represents an operation that mutates the VisitorProfile nodes in the graph.
type VisitorProfileMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	tenant_id                *uuid.UUID
	window_start             *time.Time
	window_end               *time.Time
	visitor_key              *string
	first_seen_at            *time.Time
	last_seen_at             *time.Time
	visits_count             *int
	addvisits_count          *int
	total_events             *int
	addtotal_events          *int
	page_views               *int
	addpage_views            *int
	unique_pages_count       *int
	addunique_pages_count    *int
	total_time_on_page_ms    *int
	addtotal_time_on_page_ms *int
	avg_time_on_page_ms      *float64
	addavg_time_on_page_ms   *float64
	max_scroll_percentage    *float64
	addmax_scroll_percentage *float64
	flags                    *map[string]bool
	engagement_score         *int
	addengagement_score      *int
	engagement_segment       *string
	lat                      *float64
	addlat                   *float64
	lng                      *float64
	addlng                   *float64
	city                     *string
	region                   *string
	country                  *string
	identity                 *map[string]string
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*VisitorProfile, error)
	predicates               []predicate.VisitorProfile
}

var _ ent.Mutation = (*VisitorProfileMutation)(nil)

// visitorprofileOption allows management of the mutation configuration using functional options.
type visitorprofileOption func(*VisitorProfileMutation)

// newVisitorProfileMutation creates new mutation for the VisitorProfile entity.
func newVisitorProfileMutation(c config, op Op, opts ...visitorprofileOption) *VisitorProfileMutation {
	m := &VisitorProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeVisitorProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVisitorProfileID sets the ID field of the mutation.
func withVisitorProfileID(id uuid.UUID) visitorprofileOption {
	return func(m *VisitorProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *VisitorProfile
		)
		m.oldValue = func(ctx context.Context) (*VisitorProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VisitorProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVisitorProfile sets the old VisitorProfile of the mutation.
func withVisitorProfile(node *VisitorProfile) visitorprofileOption {
	return func(m *VisitorProfileMutation) {
		m.oldValue = func(context.Context) (*VisitorProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VisitorProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VisitorProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VisitorProfile entities.
func (m *VisitorProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VisitorProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VisitorProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VisitorProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *VisitorProfileMutation) SetTenantID(u uuid.UUID) {
	m.tenant_id = &u
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *VisitorProfileMutation) TenantID() (r uuid.UUID, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldTenantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *VisitorProfileMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetWindowStart sets the "window_start" field.
func (m *VisitorProfileMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *VisitorProfileMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *VisitorProfileMutation) ResetWindowStart() {
	m.window_start = nil
}

// SetWindowEnd sets the "window_end" field.
func (m *VisitorProfileMutation) SetWindowEnd(t time.Time) {
	m.window_end = &t
}

// WindowEnd returns the value of the "window_end" field in the mutation.
func (m *VisitorProfileMutation) WindowEnd() (r time.Time, exists bool) {
	v := m.window_end
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEnd returns the old "window_end" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldWindowEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEnd: %w", err)
	}
	return oldValue.WindowEnd, nil
}

// ResetWindowEnd resets all changes to the "window_end" field.
func (m *VisitorProfileMutation) ResetWindowEnd() {
	m.window_end = nil
}

// SetVisitorKey sets the "visitor_key" field.
func (m *VisitorProfileMutation) SetVisitorKey(s string) {
	m.visitor_key = &s
}

// VisitorKey returns the value of the "visitor_key" field in the mutation.
func (m *VisitorProfileMutation) VisitorKey() (r string, exists bool) {
	v := m.visitor_key
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitorKey returns the old "visitor_key" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldVisitorKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitorKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitorKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitorKey: %w", err)
	}
	return oldValue.VisitorKey, nil
}

// ResetVisitorKey resets all changes to the "visitor_key" field.
func (m *VisitorProfileMutation) ResetVisitorKey() {
	m.visitor_key = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *VisitorProfileMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *VisitorProfileMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *VisitorProfileMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *VisitorProfileMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *VisitorProfileMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *VisitorProfileMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetVisitsCount sets the "visits_count" field.
func (m *VisitorProfileMutation) SetVisitsCount(i int) {
	m.visits_count = &i
	m.addvisits_count = nil
}

// VisitsCount returns the value of the "visits_count" field in the mutation.
func (m *VisitorProfileMutation) VisitsCount() (r int, exists bool) {
	v := m.visits_count
	if v == nil {
		return
	}
	return *v, true
}

// OldVisitsCount returns the old "visits_count" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldVisitsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisitsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisitsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisitsCount: %w", err)
	}
	return oldValue.VisitsCount, nil
}

// AddVisitsCount adds i to the "visits_count" field.
func (m *VisitorProfileMutation) AddVisitsCount(i int) {
	if m.addvisits_count != nil {
		*m.addvisits_count += i
	} else {
		m.addvisits_count = &i
	}
}

// AddedVisitsCount returns the value that was added to the "visits_count" field in this mutation.
func (m *VisitorProfileMutation) AddedVisitsCount() (r int, exists bool) {
	v := m.addvisits_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetVisitsCount resets all changes to the "visits_count" field.
func (m *VisitorProfileMutation) ResetVisitsCount() {
	m.visits_count = nil
	m.addvisits_count = nil
}

// SetTotalEvents sets the "total_events" field.
func (m *VisitorProfileMutation) SetTotalEvents(i int) {
	m.total_events = &i
	m.addtotal_events = nil
}

// TotalEvents returns the value of the "total_events" field in the mutation.
func (m *VisitorProfileMutation) TotalEvents() (r int, exists bool) {
	v := m.total_events
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalEvents returns the old "total_events" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldTotalEvents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalEvents: %w", err)
	}
	return oldValue.TotalEvents, nil
}

// AddTotalEvents adds i to the "total_events" field.
func (m *VisitorProfileMutation) AddTotalEvents(i int) {
	if m.addtotal_events != nil {
		*m.addtotal_events += i
	} else {
		m.addtotal_events = &i
	}
}

// AddedTotalEvents returns the value that was added to the "total_events" field in this mutation.
func (m *VisitorProfileMutation) AddedTotalEvents() (r int, exists bool) {
	v := m.addtotal_events
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalEvents resets all changes to the "total_events" field.
func (m *VisitorProfileMutation) ResetTotalEvents() {
	m.total_events = nil
	m.addtotal_events = nil
}

// SetPageViews sets the "page_views" field.
func (m *VisitorProfileMutation) SetPageViews(i int) {
	m.page_views = &i
	m.addpage_views = nil
}

// PageViews returns the value of the "page_views" field in the mutation.
func (m *VisitorProfileMutation) PageViews() (r int, exists bool) {
	v := m.page_views
	if v == nil {
		return
	}
	return *v, true
}

// OldPageViews returns the old "page_views" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldPageViews(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageViews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageViews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageViews: %w", err)
	}
	return oldValue.PageViews, nil
}

// AddPageViews adds i to the "page_views" field.
func (m *VisitorProfileMutation) AddPageViews(i int) {
	if m.addpage_views != nil {
		*m.addpage_views += i
	} else {
		m.addpage_views = &i
	}
}

// AddedPageViews returns the value that was added to the "page_views" field in this mutation.
func (m *VisitorProfileMutation) AddedPageViews() (r int, exists bool) {
	v := m.addpage_views
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageViews resets all changes to the "page_views" field.
func (m *VisitorProfileMutation) ResetPageViews() {
	m.page_views = nil
	m.addpage_views = nil
}

// SetUniquePagesCount sets the "unique_pages_count" field.
func (m *VisitorProfileMutation) SetUniquePagesCount(i int) {
	m.unique_pages_count = &i
	m.addunique_pages_count = nil
}

// UniquePagesCount returns the value of the "unique_pages_count" field in the mutation.
func (m *VisitorProfileMutation) UniquePagesCount() (r int, exists bool) {
	v := m.unique_pages_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUniquePagesCount returns the old "unique_pages_count" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldUniquePagesCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniquePagesCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniquePagesCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniquePagesCount: %w", err)
	}
	return oldValue.UniquePagesCount, nil
}

// AddUniquePagesCount adds i to the "unique_pages_count" field.
func (m *VisitorProfileMutation) AddUniquePagesCount(i int) {
	if m.addunique_pages_count != nil {
		*m.addunique_pages_count += i
	} else {
		m.addunique_pages_count = &i
	}
}

// AddedUniquePagesCount returns the value that was added to the "unique_pages_count" field in this mutation.
func (m *VisitorProfileMutation) AddedUniquePagesCount() (r int, exists bool) {
	v := m.addunique_pages_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUniquePagesCount resets all changes to the "unique_pages_count" field.
func (m *VisitorProfileMutation) ResetUniquePagesCount() {
	m.unique_pages_count = nil
	m.addunique_pages_count = nil
}

// SetTotalTimeOnPageMs sets the "total_time_on_page_ms" field.
func (m *VisitorProfileMutation) SetTotalTimeOnPageMs(i int) {
	m.total_time_on_page_ms = &i
	m.addtotal_time_on_page_ms = nil
}

// TotalTimeOnPageMs returns the value of the "total_time_on_page_ms" field in the mutation.
func (m *VisitorProfileMutation) TotalTimeOnPageMs() (r int, exists bool) {
	v := m.total_time_on_page_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTimeOnPageMs returns the old "total_time_on_page_ms" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldTotalTimeOnPageMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTimeOnPageMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTimeOnPageMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTimeOnPageMs: %w", err)
	}
	return oldValue.TotalTimeOnPageMs, nil
}

// AddTotalTimeOnPageMs adds i to the "total_time_on_page_ms" field.
func (m *VisitorProfileMutation) AddTotalTimeOnPageMs(i int) {
	if m.addtotal_time_on_page_ms != nil {
		*m.addtotal_time_on_page_ms += i
	} else {
		m.addtotal_time_on_page_ms = &i
	}
}

// AddedTotalTimeOnPageMs returns the value that was added to the "total_time_on_page_ms" field in this mutation.
func (m *VisitorProfileMutation) AddedTotalTimeOnPageMs() (r int, exists bool) {
	v := m.addtotal_time_on_page_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTimeOnPageMs resets all changes to the "total_time_on_page_ms" field.
func (m *VisitorProfileMutation) ResetTotalTimeOnPageMs() {
	m.total_time_on_page_ms = nil
	m.addtotal_time_on_page_ms = nil
}

// SetAvgTimeOnPageMs sets the "avg_time_on_page_ms" field.
func (m *VisitorProfileMutation) SetAvgTimeOnPageMs(f float64) {
	m.avg_time_on_page_ms = &f
	m.addavg_time_on_page_ms = nil
}

// AvgTimeOnPageMs returns the value of the "avg_time_on_page_ms" field in the mutation.
func (m *VisitorProfileMutation) AvgTimeOnPageMs() (r float64, exists bool) {
	v := m.avg_time_on_page_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgTimeOnPageMs returns the old "avg_time_on_page_ms" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldAvgTimeOnPageMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgTimeOnPageMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgTimeOnPageMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgTimeOnPageMs: %w", err)
	}
	return oldValue.AvgTimeOnPageMs, nil
}

// AddAvgTimeOnPageMs adds f to the "avg_time_on_page_ms" field.
func (m *VisitorProfileMutation) AddAvgTimeOnPageMs(f float64) {
	if m.addavg_time_on_page_ms != nil {
		*m.addavg_time_on_page_ms += f
	} else {
		m.addavg_time_on_page_ms = &f
	}
}

// AddedAvgTimeOnPageMs returns the value that was added to the "avg_time_on_page_ms" field in this mutation.
func (m *VisitorProfileMutation) AddedAvgTimeOnPageMs() (r float64, exists bool) {
	v := m.addavg_time_on_page_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgTimeOnPageMs resets all changes to the "avg_time_on_page_ms" field.
func (m *VisitorProfileMutation) ResetAvgTimeOnPageMs() {
	m.avg_time_on_page_ms = nil
	m.addavg_time_on_page_ms = nil
}

// SetMaxScrollPercentage sets the "max_scroll_percentage" field.
func (m *VisitorProfileMutation) SetMaxScrollPercentage(f float64) {
	m.max_scroll_percentage = &f
	m.addmax_scroll_percentage = nil
}

// MaxScrollPercentage returns the value of the "max_scroll_percentage" field in the mutation.
func (m *VisitorProfileMutation) MaxScrollPercentage() (r float64, exists bool) {
	v := m.max_scroll_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxScrollPercentage returns the old "max_scroll_percentage" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldMaxScrollPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxScrollPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxScrollPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxScrollPercentage: %w", err)
	}
	return oldValue.MaxScrollPercentage, nil
}

// AddMaxScrollPercentage adds f to the "max_scroll_percentage" field.
func (m *VisitorProfileMutation) AddMaxScrollPercentage(f float64) {
	if m.addmax_scroll_percentage != nil {
		*m.addmax_scroll_percentage += f
	} else {
		m.addmax_scroll_percentage = &f
	}
}

// AddedMaxScrollPercentage returns the value that was added to the "max_scroll_percentage" field in this mutation.
func (m *VisitorProfileMutation) AddedMaxScrollPercentage() (r float64, exists bool) {
	v := m.addmax_scroll_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxScrollPercentage resets all changes to the "max_scroll_percentage" field.
func (m *VisitorProfileMutation) ResetMaxScrollPercentage() {
	m.max_scroll_percentage = nil
	m.addmax_scroll_percentage = nil
}

// SetFlags sets the "flags" field.
func (m *VisitorProfileMutation) SetFlags(value map[string]bool) {
	m.flags = &value
}

// Flags returns the value of the "flags" field in the mutation.
func (m *VisitorProfileMutation) Flags() (r map[string]bool, exists bool) {
	v := m.flags
	if v == nil {
		return
	}
	return *v, true
}

// OldFlags returns the old "flags" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldFlags(ctx context.Context) (v map[string]bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlags: %w", err)
	}
	return oldValue.Flags, nil
}

// ClearFlags clears the value of the "flags" field.
func (m *VisitorProfileMutation) ClearFlags() {
	m.flags = nil
	m.clearedFields[visitorprofile.FieldFlags] = struct{}{}
}

// FlagsCleared returns if the "flags" field was cleared in this mutation.
func (m *VisitorProfileMutation) FlagsCleared() bool {
	_, ok := m.clearedFields[visitorprofile.FieldFlags]
	return ok
}

// ResetFlags resets all changes to the "flags" field.
func (m *VisitorProfileMutation) ResetFlags() {
	m.flags = nil
	delete(m.clearedFields, visitorprofile.FieldFlags)
}

// SetEngagementScore sets the "engagement_score" field.
func (m *VisitorProfileMutation) SetEngagementScore(i int) {
	m.engagement_score = &i
	m.addengagement_score = nil
}

// EngagementScore returns the value of the "engagement_score" field in the mutation.
func (m *VisitorProfileMutation) EngagementScore() (r int, exists bool) {
	v := m.engagement_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementScore returns the old "engagement_score" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldEngagementScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementScore: %w", err)
	}
	return oldValue.EngagementScore, nil
}

// AddEngagementScore adds i to the "engagement_score" field.
func (m *VisitorProfileMutation) AddEngagementScore(i int) {
	if m.addengagement_score != nil {
		*m.addengagement_score += i
	} else {
		m.addengagement_score = &i
	}
}

// AddedEngagementScore returns the value that was added to the "engagement_score" field in this mutation.
func (m *VisitorProfileMutation) AddedEngagementScore() (r int, exists bool) {
	v := m.addengagement_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetEngagementScore resets all changes to the "engagement_score" field.
func (m *VisitorProfileMutation) ResetEngagementScore() {
	m.engagement_score = nil
	m.addengagement_score = nil
}

// SetEngagementSegment sets the "engagement_segment" field.
func (m *VisitorProfileMutation) SetEngagementSegment(s string) {
	m.engagement_segment = &s
}

// EngagementSegment returns the value of the "engagement_segment" field in the mutation.
func (m *VisitorProfileMutation) EngagementSegment() (r string, exists bool) {
	v := m.engagement_segment
	if v == nil {
		return
	}
	return *v, true
}

// OldEngagementSegment returns the old "engagement_segment" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldEngagementSegment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngagementSegment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngagementSegment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngagementSegment: %w", err)
	}
	return oldValue.EngagementSegment, nil
}

// ResetEngagementSegment resets all changes to the "engagement_segment" field.
func (m *VisitorProfileMutation) ResetEngagementSegment() {
	m.engagement_segment = nil
}

// SetLat sets the "lat" field.
func (m *VisitorProfileMutation) SetLat(f float64) {
	m.lat = &f
	m.addlat = nil
}

// Lat returns the value of the "lat" field in the mutation.
func (m *VisitorProfileMutation) Lat() (r float64, exists bool) {
	v := m.lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLat returns the old "lat" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLat: %w", err)
	}
	return oldValue.Lat, nil
}

// AddLat adds f to the "lat" field.
func (m *VisitorProfileMutation) AddLat(f float64) {
	if m.addlat != nil {
		*m.addlat += f
	} else {
		m.addlat = &f
	}
}

// AddedLat returns the value that was added to the "lat" field in this mutation.
func (m *VisitorProfileMutation) AddedLat() (r float64, exists bool) {
	v := m.addlat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLat clears the value of the "lat" field.
func (m *VisitorProfileMutation) ClearLat() {
	m.lat = nil
	m.addlat = nil
	m.clearedFields[visitorprofile.FieldLat] = struct{}{}
}

// LatCleared returns if the "lat" field was cleared in this mutation.
func (m *VisitorProfileMutation) LatCleared() bool {
	_, ok := m.clearedFields[visitorprofile.FieldLat]
	return ok
}

// ResetLat resets all changes to the "lat" field.
func (m *VisitorProfileMutation) ResetLat() {
	m.lat = nil
	m.addlat = nil
	delete(m.clearedFields, visitorprofile.FieldLat)
}

// SetLng sets the "lng" field.
func (m *VisitorProfileMutation) SetLng(f float64) {
	m.lng = &f
	m.addlng = nil
}

// Lng returns the value of the "lng" field in the mutation.
func (m *VisitorProfileMutation) Lng() (r float64, exists bool) {
	v := m.lng
	if v == nil {
		return
	}
	return *v, true
}

// OldLng returns the old "lng" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldLng(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLng is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLng requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLng: %w", err)
	}
	return oldValue.Lng, nil
}

// AddLng adds f to the "lng" field.
func (m *VisitorProfileMutation) AddLng(f float64) {
	if m.addlng != nil {
		*m.addlng += f
	} else {
		m.addlng = &f
	}
}

// AddedLng returns the value that was added to the "lng" field in this mutation.
func (m *VisitorProfileMutation) AddedLng() (r float64, exists bool) {
	v := m.addlng
	if v == nil {
		return
	}
	return *v, true
}

// ClearLng clears the value of the "lng" field.
func (m *VisitorProfileMutation) ClearLng() {
	m.lng = nil
	m.addlng = nil
	m.clearedFields[visitorprofile.FieldLng] = struct{}{}
}

// LngCleared returns if the "lng" field was cleared in this mutation.
func (m *VisitorProfileMutation) LngCleared() bool {
	_, ok := m.clearedFields[visitorprofile.FieldLng]
	return ok
}

// ResetLng resets all changes to the "lng" field.
func (m *VisitorProfileMutation) ResetLng() {
	m.lng = nil
	m.addlng = nil
	delete(m.clearedFields, visitorprofile.FieldLng)
}

// SetCity sets the "city" field.
func (m *VisitorProfileMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *VisitorProfileMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *VisitorProfileMutation) ClearCity() {
	m.city = nil
	m.clearedFields[visitorprofile.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *VisitorProfileMutation) CityCleared() bool {
	_, ok := m.clearedFields[visitorprofile.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *VisitorProfileMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, visitorprofile.FieldCity)
}

// SetRegion sets the "region" field.
func (m *VisitorProfileMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *VisitorProfileMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldRegion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ClearRegion clears the value of the "region" field.
func (m *VisitorProfileMutation) ClearRegion() {
	m.region = nil
	m.clearedFields[visitorprofile.FieldRegion] = struct{}{}
}

// RegionCleared returns if the "region" field was cleared in this mutation.
func (m *VisitorProfileMutation) RegionCleared() bool {
	_, ok := m.clearedFields[visitorprofile.FieldRegion]
	return ok
}

// ResetRegion resets all changes to the "region" field.
func (m *VisitorProfileMutation) ResetRegion() {
	m.region = nil
	delete(m.clearedFields, visitorprofile.FieldRegion)
}

// SetCountry sets the "country" field.
func (m *VisitorProfileMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *VisitorProfileMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldCountry(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *VisitorProfileMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[visitorprofile.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *VisitorProfileMutation) CountryCleared() bool {
	_, ok := m.clearedFields[visitorprofile.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *VisitorProfileMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, visitorprofile.FieldCountry)
}

// SetIdentity sets the "identity" field.
func (m *VisitorProfileMutation) SetIdentity(value map[string]string) {
	m.identity = &value
}

// Identity returns the value of the "identity" field in the mutation.
func (m *VisitorProfileMutation) Identity() (r map[string]string, exists bool) {
	v := m.identity
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentity returns the old "identity" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldIdentity(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentity: %w", err)
	}
	return oldValue.Identity, nil
}

// ClearIdentity clears the value of the "identity" field.
func (m *VisitorProfileMutation) ClearIdentity() {
	m.identity = nil
	m.clearedFields[visitorprofile.FieldIdentity] = struct{}{}
}

// IdentityCleared returns if the "identity" field was cleared in this mutation.
func (m *VisitorProfileMutation) IdentityCleared() bool {
	_, ok := m.clearedFields[visitorprofile.FieldIdentity]
	return ok
}

// ResetIdentity resets all changes to the "identity" field.
func (m *VisitorProfileMutation) ResetIdentity() {
	m.identity = nil
	delete(m.clearedFields, visitorprofile.FieldIdentity)
}

// SetCreatedAt sets the "created_at" field.
func (m *VisitorProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VisitorProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VisitorProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VisitorProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VisitorProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the VisitorProfile entity.
// If the VisitorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VisitorProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VisitorProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the VisitorProfileMutation builder.
func (m *VisitorProfileMutation) Where(ps ...predicate.VisitorProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VisitorProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VisitorProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VisitorProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VisitorProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VisitorProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VisitorProfile).
func (m *VisitorProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VisitorProfileMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.tenant_id != nil {
		fields = append(fields, visitorprofile.FieldTenantID)
	}
	if m.window_start != nil {
		fields = append(fields, visitorprofile.FieldWindowStart)
	}
	if m.window_end != nil {
		fields = append(fields, visitorprofile.FieldWindowEnd)
	}
	if m.visitor_key != nil {
		fields = append(fields, visitorprofile.FieldVisitorKey)
	}
	if m.first_seen_at != nil {
		fields = append(fields, visitorprofile.FieldFirstSeenAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, visitorprofile.FieldLastSeenAt)
	}
	if m.visits_count != nil {
		fields = append(fields, visitorprofile.FieldVisitsCount)
	}
	if m.total_events != nil {
		fields = append(fields, visitorprofile.FieldTotalEvents)
	}
	if m.page_views != nil {
		fields = append(fields, visitorprofile.FieldPageViews)
	}
	if m.unique_pages_count != nil {
		fields = append(fields, visitorprofile.FieldUniquePagesCount)
	}
	if m.total_time_on_page_ms != nil {
		fields = append(fields, visitorprofile.FieldTotalTimeOnPageMs)
	}
	if m.avg_time_on_page_ms != nil {
		fields = append(fields, visitorprofile.FieldAvgTimeOnPageMs)
	}
	if m.max_scroll_percentage != nil {
		fields = append(fields, visitorprofile.FieldMaxScrollPercentage)
	}
	if m.flags != nil {
		fields = append(fields, visitorprofile.FieldFlags)
	}
	if m.engagement_score != nil {
		fields = append(fields, visitorprofile.FieldEngagementScore)
	}
	if m.engagement_segment != nil {
		fields = append(fields, visitorprofile.FieldEngagementSegment)
	}
	if m.lat != nil {
		fields = append(fields, visitorprofile.FieldLat)
	}
	if m.lng != nil {
		fields = append(fields, visitorprofile.FieldLng)
	}
	if m.city != nil {
		fields = append(fields, visitorprofile.FieldCity)
	}
	if m.region != nil {
		fields = append(fields, visitorprofile.FieldRegion)
	}
	if m.country != nil {
		fields = append(fields, visitorprofile.FieldCountry)
	}
	if m.identity != nil {
		fields = append(fields, visitorprofile.FieldIdentity)
	}
	if m.created_at != nil {
		fields = append(fields, visitorprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, visitorprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VisitorProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case visitorprofile.FieldTenantID:
		return m.TenantID()
	case visitorprofile.FieldWindowStart:
		return m.WindowStart()
	case visitorprofile.FieldWindowEnd:
		return m.WindowEnd()
	case visitorprofile.FieldVisitorKey:
		return m.VisitorKey()
	case visitorprofile.FieldFirstSeenAt:
		return m.FirstSeenAt()
	case visitorprofile.FieldLastSeenAt:
		return m.LastSeenAt()
	case visitorprofile.FieldVisitsCount:
		return m.VisitsCount()
	case visitorprofile.FieldTotalEvents:
		return m.TotalEvents()
	case visitorprofile.FieldPageViews:
		return m.PageViews()
	case visitorprofile.FieldUniquePagesCount:
		return m.UniquePagesCount()
	case visitorprofile.FieldTotalTimeOnPageMs:
		return m.TotalTimeOnPageMs()
	case visitorprofile.FieldAvgTimeOnPageMs:
		return m.AvgTimeOnPageMs()
	case visitorprofile.FieldMaxScrollPercentage:
		return m.MaxScrollPercentage()
	case visitorprofile.FieldFlags:
		return m.Flags()
	case visitorprofile.FieldEngagementScore:
		return m.EngagementScore()
	case visitorprofile.FieldEngagementSegment:
		return m.EngagementSegment()
	case visitorprofile.FieldLat:
		return m.Lat()
	case visitorprofile.FieldLng:
		return m.Lng()
	case visitorprofile.FieldCity:
		return m.City()
	case visitorprofile.FieldRegion:
		return m.Region()
	case visitorprofile.FieldCountry:
		return m.Country()
	case visitorprofile.FieldIdentity:
		return m.Identity()
	case visitorprofile.FieldCreatedAt:
		return m.CreatedAt()
	case visitorprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VisitorProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case visitorprofile.FieldTenantID:
		return m.OldTenantID(ctx)
	case visitorprofile.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case visitorprofile.FieldWindowEnd:
		return m.OldWindowEnd(ctx)
	case visitorprofile.FieldVisitorKey:
		return m.OldVisitorKey(ctx)
	case visitorprofile.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	case visitorprofile.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case visitorprofile.FieldVisitsCount:
		return m.OldVisitsCount(ctx)
	case visitorprofile.FieldTotalEvents:
		return m.OldTotalEvents(ctx)
	case visitorprofile.FieldPageViews:
		return m.OldPageViews(ctx)
	case visitorprofile.FieldUniquePagesCount:
		return m.OldUniquePagesCount(ctx)
	case visitorprofile.FieldTotalTimeOnPageMs:
		return m.OldTotalTimeOnPageMs(ctx)
	case visitorprofile.FieldAvgTimeOnPageMs:
		return m.OldAvgTimeOnPageMs(ctx)
	case visitorprofile.FieldMaxScrollPercentage:
		return m.OldMaxScrollPercentage(ctx)
	case visitorprofile.FieldFlags:
		return m.OldFlags(ctx)
	case visitorprofile.FieldEngagementScore:
		return m.OldEngagementScore(ctx)
	case visitorprofile.FieldEngagementSegment:
		return m.OldEngagementSegment(ctx)
	case visitorprofile.FieldLat:
		return m.OldLat(ctx)
	case visitorprofile.FieldLng:
		return m.OldLng(ctx)
	case visitorprofile.FieldCity:
		return m.OldCity(ctx)
	case visitorprofile.FieldRegion:
		return m.OldRegion(ctx)
	case visitorprofile.FieldCountry:
		return m.OldCountry(ctx)
	case visitorprofile.FieldIdentity:
		return m.OldIdentity(ctx)
	case visitorprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case visitorprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VisitorProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VisitorProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case visitorprofile.FieldTenantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case visitorprofile.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case visitorprofile.FieldWindowEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEnd(v)
		return nil
	case visitorprofile.FieldVisitorKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitorKey(v)
		return nil
	case visitorprofile.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	case visitorprofile.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case visitorprofile.FieldVisitsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisitsCount(v)
		return nil
	case visitorprofile.FieldTotalEvents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalEvents(v)
		return nil
	case visitorprofile.FieldPageViews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageViews(v)
		return nil
	case visitorprofile.FieldUniquePagesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniquePagesCount(v)
		return nil
	case visitorprofile.FieldTotalTimeOnPageMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTimeOnPageMs(v)
		return nil
	case visitorprofile.FieldAvgTimeOnPageMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgTimeOnPageMs(v)
		return nil
	case visitorprofile.FieldMaxScrollPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxScrollPercentage(v)
		return nil
	case visitorprofile.FieldFlags:
		v, ok := value.(map[string]bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlags(v)
		return nil
	case visitorprofile.FieldEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementScore(v)
		return nil
	case visitorprofile.FieldEngagementSegment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngagementSegment(v)
		return nil
	case visitorprofile.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLat(v)
		return nil
	case visitorprofile.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLng(v)
		return nil
	case visitorprofile.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case visitorprofile.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case visitorprofile.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case visitorprofile.FieldIdentity:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentity(v)
		return nil
	case visitorprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case visitorprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VisitorProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VisitorProfileMutation) AddedFields() []string {
	var fields []string
	if m.addvisits_count != nil {
		fields = append(fields, visitorprofile.FieldVisitsCount)
	}
	if m.addtotal_events != nil {
		fields = append(fields, visitorprofile.FieldTotalEvents)
	}
	if m.addpage_views != nil {
		fields = append(fields, visitorprofile.FieldPageViews)
	}
	if m.addunique_pages_count != nil {
		fields = append(fields, visitorprofile.FieldUniquePagesCount)
	}
	if m.addtotal_time_on_page_ms != nil {
		fields = append(fields, visitorprofile.FieldTotalTimeOnPageMs)
	}
	if m.addavg_time_on_page_ms != nil {
		fields = append(fields, visitorprofile.FieldAvgTimeOnPageMs)
	}
	if m.addmax_scroll_percentage != nil {
		fields = append(fields, visitorprofile.FieldMaxScrollPercentage)
	}
	if m.addengagement_score != nil {
		fields = append(fields, visitorprofile.FieldEngagementScore)
	}
	if m.addlat != nil {
		fields = append(fields, visitorprofile.FieldLat)
	}
	if m.addlng != nil {
		fields = append(fields, visitorprofile.FieldLng)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VisitorProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case visitorprofile.FieldVisitsCount:
		return m.AddedVisitsCount()
	case visitorprofile.FieldTotalEvents:
		return m.AddedTotalEvents()
	case visitorprofile.FieldPageViews:
		return m.AddedPageViews()
	case visitorprofile.FieldUniquePagesCount:
		return m.AddedUniquePagesCount()
	case visitorprofile.FieldTotalTimeOnPageMs:
		return m.AddedTotalTimeOnPageMs()
	case visitorprofile.FieldAvgTimeOnPageMs:
		return m.AddedAvgTimeOnPageMs()
	case visitorprofile.FieldMaxScrollPercentage:
		return m.AddedMaxScrollPercentage()
	case visitorprofile.FieldEngagementScore:
		return m.AddedEngagementScore()
	case visitorprofile.FieldLat:
		return m.AddedLat()
	case visitorprofile.FieldLng:
		return m.AddedLng()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VisitorProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case visitorprofile.FieldVisitsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVisitsCount(v)
		return nil
	case visitorprofile.FieldTotalEvents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalEvents(v)
		return nil
	case visitorprofile.FieldPageViews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageViews(v)
		return nil
	case visitorprofile.FieldUniquePagesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUniquePagesCount(v)
		return nil
	case visitorprofile.FieldTotalTimeOnPageMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTimeOnPageMs(v)
		return nil
	case visitorprofile.FieldAvgTimeOnPageMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgTimeOnPageMs(v)
		return nil
	case visitorprofile.FieldMaxScrollPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxScrollPercentage(v)
		return nil
	case visitorprofile.FieldEngagementScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEngagementScore(v)
		return nil
	case visitorprofile.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLat(v)
		return nil
	case visitorprofile.FieldLng:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLng(v)
		return nil
	}
	return fmt.Errorf("unknown VisitorProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VisitorProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(visitorprofile.FieldFlags) {
		fields = append(fields, visitorprofile.FieldFlags)
	}
	if m.FieldCleared(visitorprofile.FieldLat) {
		fields = append(fields, visitorprofile.FieldLat)
	}
	if m.FieldCleared(visitorprofile.FieldLng) {
		fields = append(fields, visitorprofile.FieldLng)
	}
	if m.FieldCleared(visitorprofile.FieldCity) {
		fields = append(fields, visitorprofile.FieldCity)
	}
	if m.FieldCleared(visitorprofile.FieldRegion) {
		fields = append(fields, visitorprofile.FieldRegion)
	}
	if m.FieldCleared(visitorprofile.FieldCountry) {
		fields = append(fields, visitorprofile.FieldCountry)
	}
	if m.FieldCleared(visitorprofile.FieldIdentity) {
		fields = append(fields, visitorprofile.FieldIdentity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VisitorProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VisitorProfileMutation) ClearField(name string) error {
	switch name {
	case visitorprofile.FieldFlags:
		m.ClearFlags()
		return nil
	case visitorprofile.FieldLat:
		m.ClearLat()
		return nil
	case visitorprofile.FieldLng:
		m.ClearLng()
		return nil
	case visitorprofile.FieldCity:
		m.ClearCity()
		return nil
	case visitorprofile.FieldRegion:
		m.ClearRegion()
		return nil
	case visitorprofile.FieldCountry:
		m.ClearCountry()
		return nil
	case visitorprofile.FieldIdentity:
		m.ClearIdentity()
		return nil
	}
	return fmt.Errorf("unknown VisitorProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VisitorProfileMutation) ResetField(name string) error {
	switch name {
	case visitorprofile.FieldTenantID:
		m.ResetTenantID()
		return nil
	case visitorprofile.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case visitorprofile.FieldWindowEnd:
		m.ResetWindowEnd()
		return nil
	case visitorprofile.FieldVisitorKey:
		m.ResetVisitorKey()
		return nil
	case visitorprofile.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	case visitorprofile.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case visitorprofile.FieldVisitsCount:
		m.ResetVisitsCount()
		return nil
	case visitorprofile.FieldTotalEvents:
		m.ResetTotalEvents()
		return nil
	case visitorprofile.FieldPageViews:
		m.ResetPageViews()
		return nil
	case visitorprofile.FieldUniquePagesCount:
		m.ResetUniquePagesCount()
		return nil
	case visitorprofile.FieldTotalTimeOnPageMs:
		m.ResetTotalTimeOnPageMs()
		return nil
	case visitorprofile.FieldAvgTimeOnPageMs:
		m.ResetAvgTimeOnPageMs()
		return nil
	case visitorprofile.FieldMaxScrollPercentage:
		m.ResetMaxScrollPercentage()
		return nil
	case visitorprofile.FieldFlags:
		m.ResetFlags()
		return nil
	case visitorprofile.FieldEngagementScore:
		m.ResetEngagementScore()
		return nil
	case visitorprofile.FieldEngagementSegment:
		m.ResetEngagementSegment()
		return nil
	case visitorprofile.FieldLat:
		m.ResetLat()
		return nil
	case visitorprofile.FieldLng:
		m.ResetLng()
		return nil
	case visitorprofile.FieldCity:
		m.ResetCity()
		return nil
	case visitorprofile.FieldRegion:
		m.ResetRegion()
		return nil
	case visitorprofile.FieldCountry:
		m.ResetCountry()
		return nil
	case visitorprofile.FieldIdentity:
		m.ResetIdentity()
		return nil
	case visitorprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case visitorprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown VisitorProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VisitorProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VisitorProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VisitorProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VisitorProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VisitorProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VisitorProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VisitorProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VisitorProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VisitorProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VisitorProfile edge %s", name)
}
