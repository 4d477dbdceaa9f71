package ingest

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"visitor-pulse-api/ent"
	"visitor-pulse-api/ent/visitorprofile"
	"visitor-pulse-api/internal/esx"
	"visitor-pulse-api/internal/geo"
	"visitor-pulse-api/internal/normalize"
	"visitor-pulse-api/internal/scoring"
	"visitor-pulse-api/internal/session"
)

// profileAggregate is everything derived for one visitor within a window.
type profileAggregate struct {
	FirstSeenAt         time.Time
	LastSeenAt          time.Time
	VisitsCount         int
	TotalEvents         int
	PageViews           int
	UniquePagesCount    int
	TotalTimeOnPageMs   int
	AvgTimeOnPageMs     float64
	MaxScrollPercentage float64
	Flags               scoring.Flags
	Score               int
	Segment             string
	Identity            map[string]string
	Location            *geo.Location
}

// aggregateVisitor folds one visitor's events into a profile row and upserts
// it. The upsert fully replaces every derived column so re-ingesting the same
// window converges instead of accumulating.
func (p *Processor) aggregateVisitor(ctx context.Context, tenantID uuid.UUID, visitorKey string, events []*normalize.Event, windowStart, windowEnd time.Time) error {
	agg := p.computeAggregate(ctx, events)

	create := p.db.VisitorProfile.Create().
		SetTenantID(tenantID).
		SetWindowStart(windowStart).
		SetWindowEnd(windowEnd).
		SetVisitorKey(visitorKey).
		SetFirstSeenAt(agg.FirstSeenAt).
		SetLastSeenAt(agg.LastSeenAt).
		SetVisitsCount(agg.VisitsCount).
		SetTotalEvents(agg.TotalEvents).
		SetPageViews(agg.PageViews).
		SetUniquePagesCount(agg.UniquePagesCount).
		SetTotalTimeOnPageMs(agg.TotalTimeOnPageMs).
		SetAvgTimeOnPageMs(agg.AvgTimeOnPageMs).
		SetMaxScrollPercentage(agg.MaxScrollPercentage).
		SetFlags(agg.Flags.Map()).
		SetEngagementScore(agg.Score).
		SetEngagementSegment(agg.Segment).
		SetIdentity(agg.Identity).
		SetUpdatedAt(time.Now())

	if loc := agg.Location; loc != nil {
		create.SetLat(loc.Lat).SetLng(loc.Lng)
		if loc.City != "" {
			create.SetCity(loc.City)
		}
		if loc.Region != "" {
			create.SetRegion(loc.Region)
		}
		if loc.Country != "" {
			create.SetCountry(loc.Country)
		}
	}

	err := create.
		OnConflictColumns(
			visitorprofile.FieldTenantID,
			visitorprofile.FieldWindowStart,
			visitorprofile.FieldWindowEnd,
			visitorprofile.FieldVisitorKey,
		).
		UpdateNewValues().
		Update(func(u *ent.VisitorProfileUpsert) {
			// Unset optionals must be cleared, not left over from the
			// previous ingestion of this window.
			if agg.Location == nil {
				u.ClearLat()
				u.ClearLng()
				u.ClearCity()
				u.ClearRegion()
				u.ClearCountry()
			} else {
				if agg.Location.City == "" {
					u.ClearCity()
				}
				if agg.Location.Region == "" {
					u.ClearRegion()
				}
				if agg.Location.Country == "" {
					u.ClearCountry()
				}
			}
		}).
		Exec(ctx)
	if err != nil {
		return err
	}

	if p.es != nil {
		row, err := p.db.VisitorProfile.Query().
			Where(
				visitorprofile.TenantIDEQ(tenantID),
				visitorprofile.WindowStartEQ(windowStart),
				visitorprofile.WindowEndEQ(windowEnd),
				visitorprofile.VisitorKeyEQ(visitorKey),
			).
			Only(ctx)
		if err != nil {
			return err
		}
		p.indexProfile(ctx, row.ID, tenantID, visitorKey, agg)
	}
	return nil
}

// computeAggregate derives the behavioral aggregate from one visitor's
// events. Geo resolution is part of the aggregate and is best-effort.
func (p *Processor) computeAggregate(ctx context.Context, events []*normalize.Event) profileAggregate {
	sorted := session.Sorted(events)
	sessions := session.Split(events)

	agg := profileAggregate{
		FirstSeenAt: sorted[0].Timestamp,
		LastSeenAt:  sorted[len(sorted)-1].Timestamp,
		VisitsCount: len(sessions),
		TotalEvents: len(sorted),
		Identity:    normalize.Identity(sorted[0].Raw),
	}

	pages := map[string]struct{}{}
	flags := scoring.Flags{IsRepeatVisitor: len(sessions) >= 2}
	for _, ev := range sorted {
		if scoring.IsPageView(ev.EventType) {
			agg.PageViews++
		}
		if ev.URL != "" {
			pages[ev.URL] = struct{}{}
		}
		if ev.TimeOnPageMs != nil {
			agg.TotalTimeOnPageMs += *ev.TimeOnPageMs
		}
		if ev.ScrollPct != nil && *ev.ScrollPct > agg.MaxScrollPercentage {
			agg.MaxScrollPercentage = *ev.ScrollPct
		}
		flags.VisitedKeyPage = flags.VisitedKeyPage || scoring.IsKeyPage(ev.URL)
		flags.CTAClicked = flags.CTAClicked || scoring.IsCTAClick(ev.ElementIdentifier, ev.URL)
		flags.ExitIntentTriggered = flags.ExitIntentTriggered || scoring.IsExitIntent(ev.EventType)
		flags.VideoEngaged = flags.VideoEngaged || scoring.IsVideoEngaged(ev.EventType)
	}
	agg.UniquePagesCount = len(pages)
	if agg.PageViews > 0 {
		agg.AvgTimeOnPageMs = float64(agg.TotalTimeOnPageMs) / float64(agg.PageViews)
	}
	flags.HighAttention = agg.TotalTimeOnPageMs >= 60000
	agg.Flags = flags

	agg.Score = scoring.Score(scoring.Input{
		VisitsCount:         agg.VisitsCount,
		TotalTimeOnPageMs:   agg.TotalTimeOnPageMs,
		MaxScrollPercentage: agg.MaxScrollPercentage,
		VisitedKeyPage:      flags.VisitedKeyPage,
		CTAClicked:          flags.CTAClicked,
		ExitIntentTriggered: flags.ExitIntentTriggered,
		VideoEngaged:        flags.VideoEngaged,
	})
	agg.Segment = scoring.Segment(agg.Score)

	agg.Location = p.resolveLocation(ctx, sorted)
	return agg
}

// resolveLocation builds the geo query from the visitor's events. Explicit
// coordinates win over sheet addresses which win over IP geolocation.
func (p *Processor) resolveLocation(ctx context.Context, sorted []*normalize.Event) *geo.Location {
	if p.geo == nil {
		return nil
	}
	q := geo.Query{Address: normalize.Address(sorted[0].Raw)}
	if ev, ok := lo.Find(sorted, func(e *normalize.Event) bool { return e.Coordinates != nil }); ok {
		q.Explicit = ev.Coordinates
	}
	if ev, ok := lo.Find(sorted, func(e *normalize.Event) bool { return e.IP != "" }); ok {
		q.IP = ev.IP
	}
	return p.geo.Resolve(ctx, q)
}

func (p *Processor) indexProfile(ctx context.Context, id, tenantID uuid.UUID, visitorKey string, agg profileAggregate) {
	if p.es == nil {
		return
	}
	doc := esx.ProfileDoc{
		ID:         id.String(),
		TenantID:   tenantID.String(),
		VisitorKey: visitorKey,
		Segment:    agg.Segment,
		Score:      agg.Score,
		Company:    agg.Identity["companyName"],
		Name:       strings.TrimSpace(agg.Identity["firstName"] + " " + agg.Identity["lastName"]),
		LastSeenAt: agg.LastSeenAt.Format(time.RFC3339),
	}
	if loc := agg.Location; loc != nil {
		doc.City = loc.City
		doc.Region = loc.Region
		doc.Country = loc.Country
		doc.Lat = loc.Lat
		doc.Lng = loc.Lng
	}
	if err := esx.IndexProfile(ctx, p.es, esx.ProfilesIndex, doc); err != nil {
		ingestLogger.Warn("profile indexing failed",
			zap.String("visitor_key", visitorKey), zap.Error(err))
	}
}
