package tradetalk

import (
	"context"

	m "tradetalk/internal/model"
)

type Storage interface {
	RetrieveTradingDays(ctx context.Context) ([]m.TradingDay, error)
	RetrieveTradingDay(ctx context.Context, date string) (*m.TradingDay, error)
	SaveTradingDay(ctx context.Context, day *m.TradingDay) (*m.TradingDay, error)
	UpdateTradingDay(ctx context.Context, date string, trades []m.Trade, journal *m.JournalEntry) (*m.TradingDay, error)
	DeleteTradingDay(ctx context.Context, date string) error

	SavePsychoAnalysis(ctx context.Context, dayID string, raw string) (*m.PsychoAnalysis, error)
	RetrievePsychoAnalysis(ctx context.Context, dayID string) (*m.PsychoAnalysis, error)
}

type Analyzer interface {
	AnalyzeDay(ctx context.Context, trades []m.Trade, journal *m.JournalEntry) (string, error)
}
