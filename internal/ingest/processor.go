// Package ingest runs the CSV upload pipeline: parse, normalize, persist,
// sessionize, score and upsert visitor profiles.
package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"visitor-pulse-api/ent"
	"visitor-pulse-api/internal/config"
	"visitor-pulse-api/internal/esx"
	"visitor-pulse-api/internal/geo"
	"visitor-pulse-api/internal/logx"
	"visitor-pulse-api/internal/metrics"
	"visitor-pulse-api/internal/mqx"
	"visitor-pulse-api/internal/normalize"
)

var ingestLogger = logx.GetScope("ingest")

// Upload terminal states.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// Profile windows trail the latest event by this many days.
const windowDays = 30

// Processor drives one upload through the pipeline. All collaborators except
// the database are optional; a nil Redis, MQ or ES client degrades the
// corresponding side effect to a no-op.
type Processor struct {
	db    *ent.Client
	geo   *geo.Resolver
	mq    mqx.Publisher
	es    *esx.Client
	store *config.Store
}

func NewProcessor(db *ent.Client, resolver *geo.Resolver, mq mqx.Publisher, es *esx.Client, store *config.Store) *Processor {
	return &Processor{db: db, geo: resolver, mq: mq, es: es, store: store}
}

// ProcessUpload ingests one CSV payload for a tenant and drives the upload
// row to a terminal status. It returns the number of accepted rows. Rows
// without a usable timestamp are counted and dropped; an upload where every
// row is dropped ends in the error status without touching raw storage.
func (p *Processor) ProcessUpload(ctx context.Context, tenantID, uploadID uuid.UUID, data []byte) (int, error) {
	start := time.Now()
	defer func() { metrics.IngestDuration.Observe(time.Since(start).Seconds()) }()

	rows, err := parseCSV(data)
	if err != nil {
		return 0, p.fail(ctx, tenantID, uploadID, fmt.Sprintf("csv parse failed: %v", err))
	}

	events := make([]*normalize.Event, 0, len(rows))
	rejected := 0
	for _, row := range rows {
		ev, err := normalize.ParseRow(row)
		if err != nil {
			rejected++
			continue
		}
		events = append(events, ev)
	}
	metrics.RowsRejected.Add(float64(rejected))
	if rejected > 0 {
		ingestLogger.Info("rows rejected during normalization",
			zap.String("upload_id", uploadID.String()), zap.Int("rejected", rejected))
	}
	if len(events) == 0 {
		msg := fmt.Sprintf("no rows with a usable timestamp (%d rejected)", rejected)
		return 0, p.fail(ctx, tenantID, uploadID, msg)
	}

	if err := p.persistRawEvents(ctx, tenantID, uploadID, events); err != nil {
		return 0, p.fail(ctx, tenantID, uploadID, fmt.Sprintf("raw event persistence failed: %v", err))
	}
	metrics.EventsIngested.Add(float64(len(events)))

	windowStart, windowEnd := computeWindow(events)
	p.aggregateAll(ctx, tenantID, events, windowStart, windowEnd)

	if err := p.db.Upload.UpdateOneID(uploadID).
		SetStatus(StatusCompleted).
		SetRowCount(len(events)).
		SetProcessedAt(time.Now()).
		Exec(ctx); err != nil {
		return len(events), err
	}
	metrics.UploadsProcessed.WithLabelValues(StatusCompleted).Inc()
	p.publish(ctx, "upload.completed", mqx.UploadEvent{
		TenantID: tenantID.String(),
		UploadID: uploadID.String(),
		Status:   StatusCompleted,
		RowCount: len(events),
	})

	ingestLogger.Info("upload completed",
		zap.String("upload_id", uploadID.String()),
		zap.Int("rows", len(events)),
		zap.Int("rejected", rejected),
		zap.Duration("took", time.Since(start)))
	return len(events), nil
}

// persistRawEvents appends the accepted rows in batches.
func (p *Processor) persistRawEvents(ctx context.Context, tenantID, uploadID uuid.UUID, events []*normalize.Event) error {
	batchSize := p.store.Get().Ingest.BatchSize
	if batchSize <= 0 {
		batchSize = 1000
	}
	for _, chunk := range lo.Chunk(events, batchSize) {
		builders := lo.Map(chunk, func(ev *normalize.Event, _ int) *ent.RawEventCreate {
			c := p.db.RawEvent.Create().
				SetTenantID(tenantID).
				SetUploadID(uploadID).
				SetVisitorKey(ev.VisitorKey).
				SetEventTs(ev.Timestamp).
				SetRawRow(ev.Raw)
			if ev.UUID != "" {
				c.SetVisitorUUID(ev.UUID)
			}
			if ev.IP != "" {
				c.SetIP(ev.IP)
			}
			if ev.EventType != "" {
				c.SetEventType(ev.EventType)
			}
			if ev.URL != "" {
				c.SetURL(ev.URL)
			}
			if ev.ReferrerURL != "" {
				c.SetReferrerURL(ev.ReferrerURL)
			}
			if ev.TimeOnPageMs != nil {
				c.SetTimeOnPageMs(*ev.TimeOnPageMs)
			}
			if ev.IdleTimeMs != nil {
				c.SetIdleTimeMs(*ev.IdleTimeMs)
			}
			if ev.ScrollPct != nil {
				c.SetScrollPct(*ev.ScrollPct)
			}
			if ev.Threshold != "" {
				c.SetThreshold(ev.Threshold)
			}
			if ev.ElementIdentifier != "" {
				c.SetElementIdentifier(ev.ElementIdentifier)
			}
			if ev.ElementText != "" {
				c.SetElementText(ev.ElementText)
			}
			if ev.Title != "" {
				c.SetTitle(ev.Title)
			}
			if ev.Coordinates != nil {
				c.SetLat(ev.Coordinates.Lat).SetLng(ev.Coordinates.Lng)
			}
			return c
		})
		if err := p.db.RawEvent.CreateBulk(builders...).Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// aggregateAll fans the visitors out over a bounded worker pool. A failed
// visitor is logged and counted but never fails the upload.
func (p *Processor) aggregateAll(ctx context.Context, tenantID uuid.UUID, events []*normalize.Event, windowStart, windowEnd time.Time) {
	grouped := lo.GroupBy(events, func(ev *normalize.Event) string { return ev.VisitorKey })

	maxConcurrent := p.store.Get().Ingest.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	for key, evs := range grouped {
		wg.Add(1)
		sem <- struct{}{}
		go func(key string, evs []*normalize.Event) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := p.aggregateVisitor(ctx, tenantID, key, evs, windowStart, windowEnd); err != nil {
				metrics.VisitorAggregations.WithLabelValues("error").Inc()
				ingestLogger.Error("visitor aggregation failed",
					zap.String("visitor_key", key), zap.Error(err))
				return
			}
			metrics.VisitorAggregations.WithLabelValues("ok").Inc()
		}(key, evs)
	}
	wg.Wait()
}

// computeWindow returns the trailing 30 day window ending at the latest
// event, clamped so it never starts before the earliest one.
func computeWindow(events []*normalize.Event) (time.Time, time.Time) {
	earliest, latest := events[0].Timestamp, events[0].Timestamp
	for _, ev := range events[1:] {
		if ev.Timestamp.Before(earliest) {
			earliest = ev.Timestamp
		}
		if ev.Timestamp.After(latest) {
			latest = ev.Timestamp
		}
	}
	start := latest.AddDate(0, 0, -windowDays)
	if start.Before(earliest) {
		start = earliest
	}
	return start, latest
}

// fail drives the upload to the error status and reports it downstream.
func (p *Processor) fail(ctx context.Context, tenantID, uploadID uuid.UUID, msg string) error {
	if err := p.db.Upload.UpdateOneID(uploadID).
		SetStatus(StatusError).
		SetError(msg).
		SetProcessedAt(time.Now()).
		Exec(ctx); err != nil {
		ingestLogger.Error("failed to mark upload as errored",
			zap.String("upload_id", uploadID.String()), zap.Error(err))
	}
	metrics.UploadsProcessed.WithLabelValues(StatusError).Inc()
	p.publish(ctx, "upload.failed", mqx.UploadEvent{
		TenantID: tenantID.String(),
		UploadID: uploadID.String(),
		Status:   StatusError,
		Error:    msg,
	})
	ingestLogger.Warn("upload failed", zap.String("upload_id", uploadID.String()), zap.String("reason", msg))
	return fmt.Errorf("upload %s: %s", uploadID, msg)
}

func (p *Processor) publish(ctx context.Context, routingKey string, evt mqx.UploadEvent) {
	if err := mqx.PublishUploadEvent(ctx, p.mq, routingKey, evt); err != nil {
		ingestLogger.Warn("mq publish failed", zap.String("routing_key", routingKey), zap.Error(err))
	}
}
