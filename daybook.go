package tradetalk

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"tradetalk/analyze"
	m "tradetalk/internal/model"

	"github.com/rs/zerolog"
)

const DateLayout = "2006-01-02"

// Daybook drives the day-record lifecycle: a placeholder is handed out for
// dates with no record, edited freely in memory by the caller, and only
// becomes durable through Submit. All reads and writes go through Storage;
// the analysis round-trip goes through Analyzer.
type Daybook struct {
	stg Storage
	an  Analyzer
	lg  zerolog.Logger
}

func NewDaybook(stg Storage, an Analyzer) *Daybook {
	return &Daybook{
		stg: stg,
		an:  an,
		lg:  zerolog.New(os.Stdout).With().Str("Module", "Daybook").Timestamp().Logger(),
	}
}

// Days returns every persisted day record, nested analysis included.
func (b *Daybook) Days(ctx context.Context) ([]m.TradingDay, error) {
	return b.stg.RetrieveTradingDays(ctx)
}

// Open loads the record for date, or hands out a transient placeholder when
// none exists. A placeholder has no id and is never persisted by Open itself.
func (b *Daybook) Open(ctx context.Context, date string) (*m.TradingDay, error) {

	day, err := b.stg.RetrieveTradingDay(ctx, date)
	if err == nil {
		return day, nil
	}
	if errors.Is(err, ErrDayNotFound) {
		return &m.TradingDay{Date: date, Trades: []m.Trade{}}, nil
	}
	return nil, fmt.Errorf("RetrieveTradingDay 오류 발생. %w", err)
}

// ValidateDay runs the submission gate. Rules fire in a fixed order and the
// first failure is the whole answer; per-trade rules report only the first
// offending trade.
func ValidateDay(day *m.TradingDay) error {

	if day == nil {
		return ErrMissingData
	}

	journal := day.JournalEntry()
	if journal == nil || journal.Mood == "" {
		return ErrMoodRequired
	}

	if len(day.Trades) == 0 {
		return ErrNoTrades
	}

	for _, t := range day.Trades {
		if t.Pair == "" {
			return ErrPairRequired
		}
		if t.Amount == "" {
			return ErrAmountRequired
		}
		if t.Time == "" {
			return ErrTimeRequired
		}
		amount, err := strconv.ParseFloat(t.Amount, 64)
		if err != nil {
			return ErrAmountNotNumber
		}
		if amount <= 0 {
			return ErrAmountNotPositive
		}
	}

	return nil
}

// Submit validates and persists the day. Whether this is a create or an
// update is decided by an actual lookup against storage, so a first-time save
// for a date always results in exactly one create. Id and date are immutable
// once persisted: updates carry trades and journal only.
func (b *Daybook) Submit(ctx context.Context, day *m.TradingDay) (*m.TradingDay, error) {

	if err := ValidateDay(day); err != nil {
		return nil, err
	}

	_, err := b.stg.RetrieveTradingDay(ctx, day.Date)
	switch {
	case err == nil:
		b.lg.Info().Str("date", day.Date).Msg("Updating existing trading day")
		return b.stg.UpdateTradingDay(ctx, day.Date, day.Trades, day.JournalEntry())
	case errors.Is(err, ErrDayNotFound):
		b.lg.Info().Str("date", day.Date).Msg("Creating trading day")
		day.ID = ""
		day.PsychoAnalysis = nil
		return b.stg.SaveTradingDay(ctx, day)
	default:
		return nil, fmt.Errorf("submit lookup 오류 발생. %w", err)
	}
}

func (b *Daybook) Delete(ctx context.Context, date string) error {
	return b.stg.DeleteTradingDay(ctx, date)
}

// CalendarCell is the display metric bundle for one date of a month. Net is
// nil both for dates without a record and for recorded days with an empty
// trade list, so "no trades" never renders as zero.
type CalendarCell struct {
	Date        string   `json:"date"`
	HasData     bool     `json:"hasData"`
	Net         *float64 `json:"net"`
	HasAnalysis bool     `json:"hasAnalysis"`
}

// CalendarMonth derives the cells for every date of the given month from the
// persisted day list. Pure derivation: nothing is created for empty dates.
func (b *Daybook) CalendarMonth(ctx context.Context, year int, month time.Month) ([]CalendarCell, error) {

	days, err := b.stg.RetrieveTradingDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("RetrieveTradingDays 오류 발생. %w", err)
	}

	byDate := make(map[string]*m.TradingDay, len(days))
	for i := range days {
		byDate[days[i].Date] = &days[i]
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	cells := make([]CalendarCell, 0, 31)

	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		cell := CalendarCell{Date: date}

		if day, ok := byDate[date]; ok {
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

// Analyze runs the completion round-trip for a persisted day: request,
// persist the raw text, return the re-derived split. A day that was never
// submitted, or has no trades, is refused before any network call. When the
// response cannot be persisted the error wraps ErrAnalysisSaveFailed so the
// caller never mistakes a half-finished run for a saved one.
func (b *Daybook) Analyze(ctx context.Context, date string) (*analyze.Result, error) {

	day, err := b.stg.RetrieveTradingDay(ctx, date)
	if err != nil {
		if errors.Is(err, ErrDayNotFound) {
			return nil, ErrMissingData
		}
		return nil, fmt.Errorf("RetrieveTradingDay 오류 발생. %w", err)
	}
	if len(day.Trades) == 0 {
		return nil, ErrNoTrades
	}

	raw, err := b.an.AnalyzeDay(ctx, day.Trades, day.JournalEntry())
	if err != nil {
		return nil, fmt.Errorf("analysis request 오류 발생. %w", err)
	}

	if _, err := b.stg.SavePsychoAnalysis(ctx, day.ID, raw); err != nil {
		b.lg.Error().Err(err).Str("date", date).Msg("Error saving analysis")
		return nil, fmt.Errorf("%w: %v", ErrAnalysisSaveFailed, err)
	}

	rtn := analyze.Split(raw)
	return &rtn, nil
}

// Analysis loads the stored raw text for the day at date and splits it.
func (b *Daybook) Analysis(ctx context.Context, date string) (*analyze.Result, error) {

	day, err := b.stg.RetrieveTradingDay(ctx, date)
	if err != nil {
		return nil, err
	}

	pa, err := b.stg.RetrievePsychoAnalysis(ctx, day.ID)
	if err != nil {
		return nil, err
	}

	rtn := analyze.Split(pa.Analysis)
	return &rtn, nil
}
