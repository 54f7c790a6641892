package handler

import (
	"context"
	"fmt"
	"time"

	"tradetalk"
	"tradetalk/analyze"
	m "tradetalk/internal/model"
)

// DaybookMock stands in for the Daybook behind every handler interface.
// Validation runs for real so handler tests exercise the actual gate.
type DaybookMock struct {
	days     map[string]*m.TradingDay
	analyses map[string]string
	creates  int
	updates  int
	err      error
}

func NewDaybookMock() *DaybookMock {
	return &DaybookMock{
		days:     make(map[string]*m.TradingDay),
		analyses: make(map[string]string),
	}
}

func (mock *DaybookMock) Days(ctx context.Context) ([]m.TradingDay, error) {
	fmt.Println("Days Called")

	if mock.err != nil {
		return nil, mock.err
	}
	rtn := make([]m.TradingDay, 0, len(mock.days))
	for _, d := range mock.days {
		rtn = append(rtn, *d)
	}
	return rtn, nil
}

func (mock *DaybookMock) Open(ctx context.Context, date string) (*m.TradingDay, error) {
	if mock.err != nil {
		return nil, mock.err
	}
	if day, ok := mock.days[date]; ok {
		return day, nil
	}
	return &m.TradingDay{Date: date, Trades: []m.Trade{}}, nil
}

func (mock *DaybookMock) CalendarMonth(ctx context.Context, year int, month time.Month) ([]tradetalk.CalendarCell, error) {
	if mock.err != nil {
		return nil, mock.err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	var cells []tradetalk.CalendarCell
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := d.Format(tradetalk.DateLayout)
		cell := tradetalk.CalendarCell{Date: date}
		if day, ok := mock.days[date]; ok {
			cell.HasData = true
			cell.HasAnalysis = day.HasAnalysis()
			if net, ok := m.NetResult(day.Trades); ok {
				cell.Net = &net
			}
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

func (mock *DaybookMock) Submit(ctx context.Context, day *m.TradingDay) (*m.TradingDay, error) {
	if err := tradetalk.ValidateDay(day); err != nil {
		return nil, err
	}
	if mock.err != nil {
		return nil, mock.err
	}

	if existing, ok := mock.days[day.Date]; ok {
		mock.updates++
		existing.Trades = day.Trades
		existing.Journal = day.Journal
		return existing, nil
	}
	mock.creates++
	day.ID = fmt.Sprintf("day-%d", mock.creates)
	mock.days[day.Date] = day
	return day, nil
}

func (mock *DaybookMock) Delete(ctx context.Context, date string) error {
	if mock.err != nil {
		return mock.err
	}
	delete(mock.days, date)
	return nil
}

func (mock *DaybookMock) Analyze(ctx context.Context, date string) (*analyze.Result, error) {
	day, ok := mock.days[date]
	if !ok {
		return nil, tradetalk.ErrMissingData
	}
	if len(day.Trades) == 0 {
		return nil, tradetalk.ErrNoTrades
	}
	if mock.err != nil {
		return nil, mock.err
	}

	raw := "Analyse du jour.\n\n" + analyze.Marker + " Continue comme ça."
	mock.analyses[day.ID] = raw
	rtn := analyze.Split(raw)
	return &rtn, nil
}

func (mock *DaybookMock) Analysis(ctx context.Context, date string) (*analyze.Result, error) {
	day, ok := mock.days[date]
	if !ok {
		return nil, tradetalk.ErrDayNotFound
	}
	raw, ok := mock.analyses[day.ID]
	if !ok {
		return nil, tradetalk.ErrAnalysisNotFound
	}
	rtn := analyze.Split(raw)
	return &rtn, nil
}
