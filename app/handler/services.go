package handler

import (
	"context"
	"time"

	"tradetalk"
	"tradetalk/analyze"
	m "tradetalk/internal/model"
)

type DayReader interface {
	Days(ctx context.Context) ([]m.TradingDay, error)
	Open(ctx context.Context, date string) (*m.TradingDay, error)
	CalendarMonth(ctx context.Context, year int, month time.Month) ([]tradetalk.CalendarCell, error)
}

type DayWriter interface {
	Submit(ctx context.Context, day *m.TradingDay) (*m.TradingDay, error)
	Delete(ctx context.Context, date string) error
}

type DayAnalyzer interface {
	Analyze(ctx context.Context, date string) (*analyze.Result, error)
	Analysis(ctx context.Context, date string) (*analyze.Result, error)
}
