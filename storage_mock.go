package tradetalk

import (
	"context"
	"fmt"

	md "tradetalk/internal/model"
)

type StorageMock struct {
	days     map[string]*md.TradingDay
	analyses map[string]*md.PsychoAnalysis
	creates  int
	updates  int
	err      error
	saveErr  error
}

func NewStorageMock() *StorageMock {
	return &StorageMock{
		days:     make(map[string]*md.TradingDay),
		analyses: make(map[string]*md.PsychoAnalysis),
	}
}

func (m *StorageMock) RetrieveTradingDays(ctx context.Context) ([]md.TradingDay, error) {
	if m.err != nil {
		return nil, m.err
	}
	rtn := make([]md.TradingDay, 0, len(m.days))
	for _, d := range m.days {
		rtn = append(rtn, *d)
	}
	return rtn, nil
}

func (m *StorageMock) RetrieveTradingDay(ctx context.Context, date string) (*md.TradingDay, error) {
	if m.err != nil {
		return nil, m.err
	}
	day, ok := m.days[date]
	if !ok {
		return nil, ErrDayNotFound
	}
	return day, nil
}

func (m *StorageMock) SaveTradingDay(ctx context.Context, day *md.TradingDay) (*md.TradingDay, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.creates++
	day.ID = fmt.Sprintf("day-%d", m.creates)
	m.days[day.Date] = day
	return day, nil
}

func (m *StorageMock) UpdateTradingDay(ctx context.Context, date string, trades []md.Trade, journal *md.JournalEntry) (*md.TradingDay, error) {
	if m.err != nil {
		return nil, m.err
	}
	day, ok := m.days[date]
	if !ok {
		return nil, ErrDayNotFound
	}
	m.updates++
	day.Trades = trades
	if journal != nil {
		day.Journal = md.NewJournal(*journal)
	} else {
		day.Journal = nil
	}
	return day, nil
}

func (m *StorageMock) DeleteTradingDay(ctx context.Context, date string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.days, date)
	return nil
}

func (m *StorageMock) SavePsychoAnalysis(ctx context.Context, dayID string, raw string) (*md.PsychoAnalysis, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	pa, ok := m.analyses[dayID]
	if ok {
		pa.Analysis = raw
	} else {
		pa = &md.PsychoAnalysis{ID: fmt.Sprintf("pa-%d", len(m.analyses)+1), TradingDayID: dayID, Analysis: raw}
		m.analyses[dayID] = pa
	}
	if day := m.dayByID(dayID); day != nil {
		day.PsychoAnalysis = pa
	}
	return pa, nil
}

func (m *StorageMock) RetrievePsychoAnalysis(ctx context.Context, dayID string) (*md.PsychoAnalysis, error) {
	pa, ok := m.analyses[dayID]
	if !ok {
		return nil, ErrAnalysisNotFound
	}
	return pa, nil
}

func (m *StorageMock) dayByID(id string) *md.TradingDay {
	for _, d := range m.days {
		if d.ID == id {
			return d
		}
	}
	return nil
}

type AnalyzerMock struct {
	raw   string
	err   error
	calls int
}

func (m *AnalyzerMock) AnalyzeDay(ctx context.Context, trades []md.Trade, journal *md.JournalEntry) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.raw, nil
}
