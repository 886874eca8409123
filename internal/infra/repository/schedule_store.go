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
	scheduleKeyPrefix = "prayer:schedule:"
	notifiedKeyPrefix = "prayer:notified:"

	scheduleTTL = 48 * time.Hour
	notifiedTTL = 48 * time.Hour
)

type scheduledNotificationRecord struct {
	ID          string `json:"id"`
	Prayer      string `json:"prayer"`
	Time        string `json:"time"`
	Date        string `json:"date"`
	IsScheduled bool   `json:"is_scheduled"`
}

type dayScheduleRecord struct {
	Date          string                        `json:"date"`
	Notifications []scheduledNotificationRecord `json:"notifications"`
	SavedAt       time.Time                     `json:"saved_at"`
}

type scheduleStore struct {
	client *redis.Client
}

func NewScheduleStore(client *redis.Client) domain.ScheduleStore {
	return &scheduleStore{
		client: client,
	}
}

func (s *scheduleStore) SaveDay(ctx context.Context, date string, notifications []domain.ScheduledNotification) error {
	key := scheduleKeyPrefix + date

	records := make([]scheduledNotificationRecord, 0, len(notifications))
	for _, n := range notifications {
		records = append(records, scheduledNotificationRecord{
			ID:          n.ID,
			Prayer:      n.Prayer.String(),
			Time:        n.Time,
			Date:        n.Date,
			IsScheduled: n.IsScheduled,
		})
	}

	record := dayScheduleRecord{
		Date:          date,
		Notifications: records,
		SavedAt:       time.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidScheduleData
	}

	return s.client.Set(ctx, key, data, scheduleTTL).Err()
}

func (s *scheduleStore) GetDay(ctx context.Context, date string) ([]domain.ScheduledNotification, error) {
	key := scheduleKeyPrefix + date

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}

	var record dayScheduleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidScheduleData
	}

	notifications := make([]domain.ScheduledNotification, 0, len(record.Notifications))
	for _, r := range record.Notifications {
		prayer, err := domain.ParsePrayerName(r.Prayer)
		if err != nil {
			return nil, ErrInvalidScheduleData
		}
		notifications = append(notifications, domain.ScheduledNotification{
			ID:          r.ID,
			Prayer:      prayer,
			Time:        r.Time,
			Date:        r.Date,
			IsScheduled: r.IsScheduled,
		})
	}

	return notifications, nil
}

func (s *scheduleStore) DeleteDay(ctx context.Context, date string) error {
	key := scheduleKeyPrefix + date

	// Del is a no-op when the key is already gone.
	return s.client.Del(ctx, key).Err()
}

func (s *scheduleStore) ListDates(ctx context.Context) ([]string, error) {
	pattern := scheduleKeyPrefix + "*"
	dates := make([]string, 0)

	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		dates = append(dates, key[len(scheduleKeyPrefix):])
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}

func (s *scheduleStore) MarkNotified(ctx context.Context, date string, prayer domain.PrayerName) error {
	key := notifiedKeyPrefix + date + ":" + prayer.String()

	return s.client.Set(ctx, key, time.Now().Format(time.RFC3339), notifiedTTL).Err()
}
