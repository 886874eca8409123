package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/misbahapp/prayer-notification-scheduling/internal/domain"
)

const (
	snoozeKeyPrefix = "prayer:snooze:"

	snoozeTTL = 48 * time.Hour
)

type snoozeRecord struct {
	Prayer         string `json:"prayer"`
	OriginalTime   string `json:"original_time"`
	SnoozeCount    int    `json:"snooze_count"`
	NextSnoozeTime string `json:"next_snooze_time"`
	MaxSnoozes     int    `json:"max_snoozes"`
	SnoozeDuration int    `json:"snooze_duration"`
}

type snoozeTracker struct {
	client *redis.Client
}

func NewSnoozeTracker(client *redis.Client) domain.SnoozeTracker {
	return &snoozeTracker{
		client: client,
	}
}

func snoozeKey(date string, prayer domain.PrayerName) string {
	return snoozeKeyPrefix + date + ":" + prayer.String()
}

func (s *snoozeTracker) Save(ctx context.Context, date string, info *domain.SnoozeInfo) error {
	if info == nil {
		return ErrInvalidSnoozeData
	}

	record := snoozeRecord{
		Prayer:         info.Prayer.String(),
		OriginalTime:   info.OriginalTime,
		SnoozeCount:    info.SnoozeCount,
		NextSnoozeTime: info.NextSnoozeTime,
		MaxSnoozes:     info.MaxSnoozes,
		SnoozeDuration: info.SnoozeDuration,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidSnoozeData
	}

	return s.client.Set(ctx, snoozeKey(date, info.Prayer), data, snoozeTTL).Err()
}

func (s *snoozeTracker) Get(ctx context.Context, date string, prayer domain.PrayerName) (*domain.SnoozeInfo, error) {
	data, err := s.client.Get(ctx, snoozeKey(date, prayer)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnoozeNotFound
		}
		return nil, err
	}

	var record snoozeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidSnoozeData
	}

	name, err := domain.ParsePrayerName(record.Prayer)
	if err != nil {
		return nil, ErrInvalidSnoozeData
	}

	return &domain.SnoozeInfo{
		Prayer:         name,
		OriginalTime:   record.OriginalTime,
		SnoozeCount:    record.SnoozeCount,
		NextSnoozeTime: record.NextSnoozeTime,
		MaxSnoozes:     record.MaxSnoozes,
		SnoozeDuration: record.SnoozeDuration,
	}, nil
}

func (s *snoozeTracker) Delete(ctx context.Context, date string, prayer domain.PrayerName) error {
	return s.client.Del(ctx, snoozeKey(date, prayer)).Err()
}
