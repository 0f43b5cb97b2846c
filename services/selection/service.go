// Package selection tracks the transient cursors a client carries while
// browsing: the booking flow's selected date and time, and the management
// flow's day under edit. Cursors are independent; setting one never
// clears another. They live in Redis next to the auth session and expire
// with it.
package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"modernschedule/models"

	"github.com/go-redis/redis/v8"
)

const selectionPrefix = "selection:"

// ErrUnknownCursor is returned for a cursor name outside date/time/day.
var ErrUnknownCursor = errors.New("selection: unknown cursor")

// SelectionService reads and writes a session's cursors.
type SelectionService interface {
	Get(ctx context.Context, sessionID string) (models.Selection, error)
	Set(ctx context.Context, sessionID string, cursor models.SelectionCursor, value string) (models.Selection, error)
	Clear(ctx context.Context, sessionID string, cursor models.SelectionCursor) (models.Selection, error)
}

// RedisSelectionService is the production implementation.
type RedisSelectionService struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSelectionService(client *redis.Client, ttl time.Duration) *RedisSelectionService {
	return &RedisSelectionService{Client: client, TTL: ttl}
}

func (s *RedisSelectionService) Get(ctx context.Context, sessionID string) (models.Selection, error) {
	data, err := s.Client.Get(ctx, selectionPrefix+sessionID).Result()
	if err == redis.Nil {
		return models.Selection{}, nil
	}
	if err != nil {
		return models.Selection{}, fmt.Errorf("selection: failed to load cursors: %w", err)
	}
	var sel models.Selection
	if err := json.Unmarshal([]byte(data), &sel); err != nil {
		return models.Selection{}, fmt.Errorf("selection: failed to unmarshal cursors: %w", err)
	}
	return sel, nil
}

func (s *RedisSelectionService) Set(ctx context.Context, sessionID string, cursor models.SelectionCursor, value string) (models.Selection, error) {
	return s.apply(ctx, sessionID, cursor, value)
}

func (s *RedisSelectionService) Clear(ctx context.Context, sessionID string, cursor models.SelectionCursor) (models.Selection, error) {
	return s.apply(ctx, sessionID, cursor, "")
}

func (s *RedisSelectionService) apply(ctx context.Context, sessionID string, cursor models.SelectionCursor, value string) (models.Selection, error) {
	sel, err := s.Get(ctx, sessionID)
	if err != nil {
		return models.Selection{}, err
	}

	switch cursor {
	case models.CursorDate:
		sel.SelectedDate = value
	case models.CursorTime:
		sel.SelectedTime = value
	case models.CursorDay:
		sel.SelectedDay = value
	default:
		return models.Selection{}, ErrUnknownCursor
	}

	data, err := json.Marshal(sel)
	if err != nil {
		return models.Selection{}, fmt.Errorf("selection: failed to marshal cursors: %w", err)
	}
	if err := s.Client.Set(ctx, selectionPrefix+sessionID, data, s.TTL).Err(); err != nil {
		return models.Selection{}, fmt.Errorf("selection: failed to store cursors: %w", err)
	}
	return sel, nil
}
