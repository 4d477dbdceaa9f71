// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GeoCachesColumns holds the columns for the "geo_caches" table.
	GeoCachesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "ip", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "region", Type: field.TypeString, Nullable: true},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "lng", Type: field.TypeFloat64, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GeoCachesTable holds the schema information for the "geo_caches" table.
	GeoCachesTable = &schema.Table{
		Name:       "geo_caches",
		Columns:    GeoCachesColumns,
		PrimaryKey: []*schema.Column{GeoCachesColumns[0]},
	}
	// RawEventsColumns holds the columns for the "raw_events" table.
	RawEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID},
		{Name: "upload_id", Type: field.TypeUUID},
		{Name: "visitor_key", Type: field.TypeString, Size: 128},
		{Name: "visitor_uuid", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "ip", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "event_ts", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString, Nullable: true, Size: 128},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "referrer_url", Type: field.TypeString, Nullable: true},
		{Name: "time_on_page_ms", Type: field.TypeInt, Nullable: true},
		{Name: "idle_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "scroll_pct", Type: field.TypeFloat64, Nullable: true},
		{Name: "threshold", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "element_identifier", Type: field.TypeString, Nullable: true},
		{Name: "element_text", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "lng", Type: field.TypeFloat64, Nullable: true},
		{Name: "raw_row", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RawEventsTable holds the schema information for the "raw_events" table.
	RawEventsTable = &schema.Table{
		Name:       "raw_events",
		Columns:    RawEventsColumns,
		PrimaryKey: []*schema.Column{RawEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rawevent_tenant_id_event_ts",
				Unique:  false,
				Columns: []*schema.Column{RawEventsColumns[1], RawEventsColumns[6]},
			},
			{
				Name:    "rawevent_tenant_id_visitor_key",
				Unique:  false,
				Columns: []*schema.Column{RawEventsColumns[1], RawEventsColumns[3]},
			},
			{
				Name:    "rawevent_upload_id",
				Unique:  false,
				Columns: []*schema.Column{RawEventsColumns[2]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 128},
		{Name: "domain", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
	}
	// UploadsColumns holds the columns for the "uploads" table.
	UploadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "status", Type: field.TypeString, Default: "processing"},
		{Name: "row_count", Type: field.TypeInt, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeUUID},
	}
	// UploadsTable holds the schema information for the "uploads" table.
	UploadsTable = &schema.Table{
		Name:       "uploads",
		Columns:    UploadsColumns,
		PrimaryKey: []*schema.Column{UploadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "uploads_tenants_uploads",
				Columns:    []*schema.Column{UploadsColumns[7]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "upload_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UploadsColumns[7], UploadsColumns[6]},
			},
		},
	}
	// VisitorProfilesColumns holds the columns for the "visitor_profiles" table.
	VisitorProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "window_end", Type: field.TypeTime},
		{Name: "visitor_key", Type: field.TypeString, Size: 128},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "last_seen_at", Type: field.TypeTime},
		{Name: "visits_count", Type: field.TypeInt, Default: 0},
		{Name: "total_events", Type: field.TypeInt, Default: 0},
		{Name: "page_views", Type: field.TypeInt, Default: 0},
		{Name: "unique_pages_count", Type: field.TypeInt, Default: 0},
		{Name: "total_time_on_page_ms", Type: field.TypeInt, Default: 0},
		{Name: "avg_time_on_page_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "max_scroll_percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "flags", Type: field.TypeJSON, Nullable: true},
		{Name: "engagement_score", Type: field.TypeInt, Default: 0},
		{Name: "engagement_segment", Type: field.TypeString, Default: "Casual"},
		{Name: "lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "lng", Type: field.TypeFloat64, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "region", Type: field.TypeString, Nullable: true},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "identity", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VisitorProfilesTable holds the schema information for the "visitor_profiles" table.
	VisitorProfilesTable = &schema.Table{
		Name:       "visitor_profiles",
		Columns:    VisitorProfilesColumns,
		PrimaryKey: []*schema.Column{VisitorProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "visitorprofile_tenant_id_window_start_window_end_visitor_key",
				Unique:  true,
				Columns: []*schema.Column{VisitorProfilesColumns[1], VisitorProfilesColumns[2], VisitorProfilesColumns[3], VisitorProfilesColumns[4]},
			},
			{
				Name:    "visitorprofile_tenant_id_engagement_score",
				Unique:  false,
				Columns: []*schema.Column{VisitorProfilesColumns[1], VisitorProfilesColumns[15]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GeoCachesTable,
		RawEventsTable,
		TenantsTable,
		UploadsTable,
		VisitorProfilesTable,
	}
)

func init() {
	UploadsTable.ForeignKeys[0].RefTable = TenantsTable
}
