package db

import (
	"context"
	"encoding/json"

	m "tradetalk/internal/model"
)

const daysCacheKey = "tradetalk:days"

// Cache misses and redis failures both fall back to MySQL; the cache is a
// read shortcut, never a source of truth.
func (s *Storage) cachedDays(ctx context.Context) ([]m.TradingDay, bool) {
	if s.rds == nil {
		return nil, false
	}

	raw, err := s.rds.Get(ctx, daysCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var days []m.TradingDay
	if err := json.Unmarshal(raw, &days); err != nil {
		s.lg.Warn().Err(err).Msg("Dropping unreadable days cache")
		s.rds.Del(ctx, daysCacheKey)
		return nil, false
	}
	return days, true
}

func (s *Storage) cacheDays(ctx context.Context, days []m.TradingDay) {
	if s.rds == nil {
		return
	}

	raw, err := json.Marshal(days)
	if err != nil {
		return
	}
	if err := s.rds.Set(ctx, daysCacheKey, raw, s.ttl).Err(); err != nil {
		s.lg.Warn().Err(err).Msg("Failed to populate days cache")
	}
}

// invalidateDays drops the list cache after any successful write so the next
// list read refetches.
func (s *Storage) invalidateDays(ctx context.Context) {
	if s.rds == nil {
		return
	}
	if err := s.rds.Del(ctx, daysCacheKey).Err(); err != nil {
		s.lg.Warn().Err(err).Msg("Failed to invalidate days cache")
	}
}
