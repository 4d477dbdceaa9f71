// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GeoCache is the predicate function for geocache builders.
type GeoCache func(*sql.Selector)

// RawEvent is the predicate function for rawevent builders.
type RawEvent func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)

// Upload is the predicate function for upload builders.
type Upload func(*sql.Selector)

// VisitorProfile is the predicate function for visitorprofile builders.
type VisitorProfile func(*sql.Selector)
