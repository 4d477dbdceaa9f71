// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"
	"visitor-pulse-api/ent/geocache"
	"visitor-pulse-api/ent/rawevent"
	"visitor-pulse-api/ent/schema"
	"visitor-pulse-api/ent/tenant"
	"visitor-pulse-api/ent/upload"
	"visitor-pulse-api/ent/visitorprofile"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	geocacheFields := schema.GeoCache{}.Fields()
	_ = geocacheFields
	// geocacheDescIP is the schema descriptor for ip field.
	geocacheDescIP := geocacheFields[1].Descriptor()
	// geocache.IPValidator is a validator for the "ip" field. It is called by the builders before save.
	geocache.IPValidator = func() func(string) error {
		validators := geocacheDescIP.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(ip string) error {
			for _, fn := range fns {
				if err := fn(ip); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// geocacheDescUpdatedAt is the schema descriptor for updated_at field.
	geocacheDescUpdatedAt := geocacheFields[7].Descriptor()
	// geocache.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	geocache.DefaultUpdatedAt = geocacheDescUpdatedAt.Default.(func() time.Time)
	// geocache.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	geocache.UpdateDefaultUpdatedAt = geocacheDescUpdatedAt.UpdateDefault.(func() time.Time)
	// geocacheDescID is the schema descriptor for id field.
	geocacheDescID := geocacheFields[0].Descriptor()
	// geocache.DefaultID holds the default value on creation for the id field.
	geocache.DefaultID = geocacheDescID.Default.(func() uuid.UUID)
	raweventFields := schema.RawEvent{}.Fields()
	_ = raweventFields
	// raweventDescVisitorKey is the schema descriptor for visitor_key field.
	raweventDescVisitorKey := raweventFields[3].Descriptor()
	// rawevent.VisitorKeyValidator is a validator for the "visitor_key" field. It is called by the builders before save.
	rawevent.VisitorKeyValidator = func() func(string) error {
		validators := raweventDescVisitorKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(visitor_key string) error {
			for _, fn := range fns {
				if err := fn(visitor_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// raweventDescVisitorUUID is the schema descriptor for visitor_uuid field.
	raweventDescVisitorUUID := raweventFields[4].Descriptor()
	// rawevent.VisitorUUIDValidator is a validator for the "visitor_uuid" field. It is called by the builders before save.
	rawevent.VisitorUUIDValidator = raweventDescVisitorUUID.Validators[0].(func(string) error)
	// raweventDescIP is the schema descriptor for ip field.
	raweventDescIP := raweventFields[5].Descriptor()
	// rawevent.IPValidator is a validator for the "ip" field. It is called by the builders before save.
	rawevent.IPValidator = raweventDescIP.Validators[0].(func(string) error)
	// raweventDescEventType is the schema descriptor for event_type field.
	raweventDescEventType := raweventFields[7].Descriptor()
	// rawevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	rawevent.EventTypeValidator = raweventDescEventType.Validators[0].(func(string) error)
	// raweventDescThreshold is the schema descriptor for threshold field.
	raweventDescThreshold := raweventFields[13].Descriptor()
	// rawevent.ThresholdValidator is a validator for the "threshold" field. It is called by the builders before save.
	rawevent.ThresholdValidator = raweventDescThreshold.Validators[0].(func(string) error)
	// raweventDescCreatedAt is the schema descriptor for created_at field.
	raweventDescCreatedAt := raweventFields[20].Descriptor()
	// rawevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	rawevent.DefaultCreatedAt = raweventDescCreatedAt.Default.(func() time.Time)
	// raweventDescID is the schema descriptor for id field.
	raweventDescID := raweventFields[0].Descriptor()
	// rawevent.DefaultID holds the default value on creation for the id field.
	rawevent.DefaultID = raweventDescID.Default.(func() uuid.UUID)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescName is the schema descriptor for name field.
	tenantDescName := tenantFields[1].Descriptor()
	// tenant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tenant.NameValidator = func() func(string) error {
		validators := tenantDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// tenantDescDomain is the schema descriptor for domain field.
	tenantDescDomain := tenantFields[2].Descriptor()
	// tenant.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	tenant.DomainValidator = tenantDescDomain.Validators[0].(func(string) error)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[3].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	// tenantDescID is the schema descriptor for id field.
	tenantDescID := tenantFields[0].Descriptor()
	// tenant.DefaultID holds the default value on creation for the id field.
	tenant.DefaultID = tenantDescID.Default.(func() uuid.UUID)
	uploadFields := schema.Upload{}.Fields()
	_ = uploadFields
	// uploadDescFilename is the schema descriptor for filename field.
	uploadDescFilename := uploadFields[2].Descriptor()
	// upload.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	upload.FilenameValidator = uploadDescFilename.Validators[0].(func(string) error)
	// uploadDescStatus is the schema descriptor for status field.
	uploadDescStatus := uploadFields[3].Descriptor()
	// upload.DefaultStatus holds the default value on creation for the status field.
	upload.DefaultStatus = uploadDescStatus.Default.(string)
	// uploadDescRowCount is the schema descriptor for row_count field.
	uploadDescRowCount := uploadFields[4].Descriptor()
	// upload.DefaultRowCount holds the default value on creation for the row_count field.
	upload.DefaultRowCount = uploadDescRowCount.Default.(int)
	// uploadDescCreatedAt is the schema descriptor for created_at field.
	uploadDescCreatedAt := uploadFields[7].Descriptor()
	// upload.DefaultCreatedAt holds the default value on creation for the created_at field.
	upload.DefaultCreatedAt = uploadDescCreatedAt.Default.(func() time.Time)
	// uploadDescID is the schema descriptor for id field.
	uploadDescID := uploadFields[0].Descriptor()
	// upload.DefaultID holds the default value on creation for the id field.
	upload.DefaultID = uploadDescID.Default.(func() uuid.UUID)
	visitorprofileFields := schema.VisitorProfile{}.Fields()
	_ = visitorprofileFields
	// visitorprofileDescVisitorKey is the schema descriptor for visitor_key field.
	visitorprofileDescVisitorKey := visitorprofileFields[4].Descriptor()
	// visitorprofile.VisitorKeyValidator is a validator for the "visitor_key" field. It is called by the builders before save.
	visitorprofile.VisitorKeyValidator = func() func(string) error {
		validators := visitorprofileDescVisitorKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(visitor_key string) error {
			for _, fn := range fns {
				if err := fn(visitor_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// visitorprofileDescVisitsCount is the schema descriptor for visits_count field.
	visitorprofileDescVisitsCount := visitorprofileFields[7].Descriptor()
	// visitorprofile.DefaultVisitsCount holds the default value on creation for the visits_count field.
	visitorprofile.DefaultVisitsCount = visitorprofileDescVisitsCount.Default.(int)
	// visitorprofileDescTotalEvents is the schema descriptor for total_events field.
	visitorprofileDescTotalEvents := visitorprofileFields[8].Descriptor()
	// visitorprofile.DefaultTotalEvents holds the default value on creation for the total_events field.
	visitorprofile.DefaultTotalEvents = visitorprofileDescTotalEvents.Default.(int)
	// visitorprofileDescPageViews is the schema descriptor for page_views field.
	visitorprofileDescPageViews := visitorprofileFields[9].Descriptor()
	// visitorprofile.DefaultPageViews holds the default value on creation for the page_views field.
	visitorprofile.DefaultPageViews = visitorprofileDescPageViews.Default.(int)
	// visitorprofileDescUniquePagesCount is the schema descriptor for unique_pages_count field.
	visitorprofileDescUniquePagesCount := visitorprofileFields[10].Descriptor()
	// visitorprofile.DefaultUniquePagesCount holds the default value on creation for the unique_pages_count field.
	visitorprofile.DefaultUniquePagesCount = visitorprofileDescUniquePagesCount.Default.(int)
	// visitorprofileDescTotalTimeOnPageMs is the schema descriptor for total_time_on_page_ms field.
	visitorprofileDescTotalTimeOnPageMs := visitorprofileFields[11].Descriptor()
	// visitorprofile.DefaultTotalTimeOnPageMs holds the default value on creation for the total_time_on_page_ms field.
	visitorprofile.DefaultTotalTimeOnPageMs = visitorprofileDescTotalTimeOnPageMs.Default.(int)
	// visitorprofileDescAvgTimeOnPageMs is the schema descriptor for avg_time_on_page_ms field.
	visitorprofileDescAvgTimeOnPageMs := visitorprofileFields[12].Descriptor()
	// visitorprofile.DefaultAvgTimeOnPageMs holds the default value on creation for the avg_time_on_page_ms field.
	visitorprofile.DefaultAvgTimeOnPageMs = visitorprofileDescAvgTimeOnPageMs.Default.(float64)
	// visitorprofileDescMaxScrollPercentage is the schema descriptor for max_scroll_percentage field.
	visitorprofileDescMaxScrollPercentage := visitorprofileFields[13].Descriptor()
	// visitorprofile.DefaultMaxScrollPercentage holds the default value on creation for the max_scroll_percentage field.
	visitorprofile.DefaultMaxScrollPercentage = visitorprofileDescMaxScrollPercentage.Default.(float64)
	// visitorprofileDescEngagementScore is the schema descriptor for engagement_score field.
	visitorprofileDescEngagementScore := visitorprofileFields[15].Descriptor()
	// visitorprofile.DefaultEngagementScore holds the default value on creation for the engagement_score field.
	visitorprofile.DefaultEngagementScore = visitorprofileDescEngagementScore.Default.(int)
	// visitorprofileDescEngagementSegment is the schema descriptor for engagement_segment field.
	visitorprofileDescEngagementSegment := visitorprofileFields[16].Descriptor()
	// visitorprofile.DefaultEngagementSegment holds the default value on creation for the engagement_segment field.
	visitorprofile.DefaultEngagementSegment = visitorprofileDescEngagementSegment.Default.(string)
	// visitorprofileDescCreatedAt is the schema descriptor for created_at field.
	visitorprofileDescCreatedAt := visitorprofileFields[23].Descriptor()
	// visitorprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	visitorprofile.DefaultCreatedAt = visitorprofileDescCreatedAt.Default.(func() time.Time)
	// visitorprofileDescUpdatedAt is the schema descriptor for updated_at field.
	visitorprofileDescUpdatedAt := visitorprofileFields[24].Descriptor()
	// visitorprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	visitorprofile.DefaultUpdatedAt = visitorprofileDescUpdatedAt.Default.(func() time.Time)
	// visitorprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	visitorprofile.UpdateDefaultUpdatedAt = visitorprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// visitorprofileDescID is the schema descriptor for id field.
	visitorprofileDescID := visitorprofileFields[0].Descriptor()
	// visitorprofile.DefaultID holds the default value on creation for the id field.
	visitorprofile.DefaultID = visitorprofileDescID.Default.(func() uuid.UUID)
}
