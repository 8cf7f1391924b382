package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stayfinder/internal/domain"
)

// IngestionService pulls property and room-type records from the upstream
// listings feed and upserts them into the store, invalidating the discovery
// snapshot caches on every successful write.
type IngestionService struct {
	feed  domain.FeedClient
	repo  domain.PropertyRepository
	cache domain.Cache
}

func NewIngestionService(f domain.FeedClient, r domain.PropertyRepository, cache domain.Cache) *IngestionService {
	return &IngestionService{feed: f, repo: r, cache: cache}
}

// Must match the snapshot cache keys used by the discovery service.
const (
	propertiesKey = "snapshot:properties"
	roomTypesKey  = "snapshot:roomtypes"
)

func (s *IngestionService) IngestProperty(ctx context.Context, id int64) error {
	// 1) Fetch the property. Known 404/401/403 are recorded as misses and
	// stop the ingest gracefully; anything else bubbles up.
	p, err := s.feed.GetProperty(ctx, id)
	if err != nil {
		low := strings.ToLower(err.Error())

		if errors.Is(err, domain.ErrNotFound) || strings.Contains(low, "not found") {
			_ = s.repo.LogMiss(ctx, id, 404, "not found")
			s.invalidateSnapshots(ctx)
			return nil
		}
		if strings.Contains(low, "403") || strings.Contains(low, "forbidden") ||
			strings.Contains(low, "401") || strings.Contains(low, "unauthorized") {
			_ = s.repo.LogMiss(ctx, id, 403, "inactive")
			s.invalidateSnapshots(ctx)
			return nil
		}
		return err
	}

	prop := mapProperty(id, p)
	if err := s.repo.UpsertProperty(ctx, prop); err != nil {
		return fmt.Errorf("upsert property %d: %w", id, err)
	}

	// 2) Room types: best-effort. A 404/401/403 here is a miss, not a failure;
	// other errors surface so we know inserts stopped.
	if rts, rerr := s.feed.GetRoomTypes(ctx, id); rerr != nil {
		low := strings.ToLower(rerr.Error())
		switch {
		case errors.Is(rerr, domain.ErrNotFound) || strings.Contains(low, "not found"):
			_ = s.repo.LogMiss(ctx, id, 404, "room types")
		case strings.Contains(low, "403") || strings.Contains(low, "forbidden") ||
			strings.Contains(low, "401") || strings.Contains(low, "unauthorized"):
			_ = s.repo.LogMiss(ctx, id, 403, "room types")
		default:
			return rerr
		}
	} else if len(rts) > 0 {
		if err := s.repo.UpsertRoomTypes(ctx, mapRoomTypes(id, rts)); err != nil {
			return fmt.Errorf("upsert room types for %d: %w", id, err)
		}
	}

	// Any successful write makes the cached snapshots stale.
	s.invalidateSnapshots(ctx)
	return nil
}

func (s *IngestionService) invalidateSnapshots(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, propertiesKey)
	_ = s.cache.Del(ctx, roomTypesKey)
}
