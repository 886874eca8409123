package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
)

const recreationMarkerKey = "prayer:recreation:last_date"

type markerStore struct {
	client *redis.Client
}

func NewRecreationMarker(client *redis.Client) domain.RecreationMarker {
	return &markerStore{
		client: client,
	}
}

func (m *markerStore) LastRecreatedDate(ctx context.Context) (string, error) {
	val, err := m.client.Get(ctx, recreationMarkerKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}

	return val, nil
}

func (m *markerStore) SetLastRecreatedDate(ctx context.Context, date string) error {
	// No TTL: the marker only moves forward when a newer date completes.
	return m.client.Set(ctx, recreationMarkerKey, date, 0).Err()
}
