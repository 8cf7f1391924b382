package domain

import "context"

type PropertyRepository interface {
	// Write paths (used by the ingestor)
	UpsertProperty(ctx context.Context, p Property) error
	UpsertRoomTypes(ctx context.Context, rts []RoomType) error
	LogMiss(ctx context.Context, id int64, status int, reason string) error

	// Read paths (feed the discovery snapshot)
	ListProperties(ctx context.Context) ([]Property, error)
	ListRoomTypes(ctx context.Context) ([]RoomType, error)
}

type FeedClient interface {
	GetProperty(ctx context.Context, id int64) (map[string]any, error)
	GetRoomTypes(ctx context.Context, id int64) ([]map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
