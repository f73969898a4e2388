package core

import (
	"context"
	"fmt"
	"time"
)

// LogStore returns the creation time of every log a user has written, in no
// particular order.
type LogStore interface {
	ListLogTimestamps(ctx context.Context, userID string) ([]time.Time, error)
}

type TimelineService struct {
	logs LogStore
	loc  *time.Location
	now  func() time.Time
}

// NewTimelineService computes timelines in loc. A nil now uses time.Now.
func NewTimelineService(logs LogStore, loc *time.Location, now func() time.Time) *TimelineService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &TimelineService{logs: logs, loc: loc, now: now}
}

func (s *TimelineService) Timeline(ctx context.Context, userID string) (*TimelineResult, error) {
	timestamps, err := s.logs.ListLogTimestamps(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load logs: %w", err)
	}

	dates := NewDateSet(timestamps, s.loc)
	today := DateOf(s.now(), s.loc)
	return &TimelineResult{
		WeeklyData:    BuildWeek(dates, today),
		CurrentStreak: CurrentStreak(dates, today),
	}, nil
}
