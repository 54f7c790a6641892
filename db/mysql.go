package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"tradetalk"
	m "tradetalk/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type Storage struct {
	db  *gorm.DB
	rds *redis.Client
	ttl time.Duration
	lg  zerolog.Logger
}

type Option func(*Storage) error

func NewStorage(dsn string, options ...Option) (*Storage, error) {

	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn: sqlDB,
	}))
	if err != nil {
		return nil, err
	}

	stg := &Storage{
		db: db,
		lg: zerolog.New(os.Stdout).With().Str("Module", "Storage").Timestamp().Logger(),
	}

	for _, opt := range options {
		if err := opt(stg); err != nil {
			return nil, fmt.Errorf("failed to create Storage %w", err)
		}
	}

	return stg, nil
}

type CacheConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// WithCache attaches the read-through redis cache for the full day list.
// Without it every list read goes straight to MySQL.
func WithCache(conf *CacheConfig) Option {
	return func(s *Storage) error {
		if conf.Addr == "" {
			return errors.New("redis addr 미존재")
		}
		s.rds = redis.NewClient(&redis.Options{
			Addr:     conf.Addr,
			Password: conf.Password,
			DB:       conf.DB,
		})
		s.ttl = conf.TTL
		return nil
	}
}

func (s *Storage) AutoMigrate() error {
	return s.db.AutoMigrate(&m.TradingDay{}, &m.PsychoAnalysis{})
}

func (s *Storage) RetrieveTradingDays(ctx context.Context) ([]m.TradingDay, error) {

	if days, ok := s.cachedDays(ctx); ok {
		return days, nil
	}

	var days []m.TradingDay
	result := s.db.WithContext(ctx).Model(&m.TradingDay{}).Preload("PsychoAnalysis").Find(&days)
	if result.Error != nil {
		return nil, result.Error
	}

	s.cacheDays(ctx, days)
	return days, nil
}

func (s *Storage) RetrieveTradingDay(ctx context.Context, date string) (*m.TradingDay, error) {

	var day m.TradingDay
	result := s.db.WithContext(ctx).Where("date = ?", date).Preload("PsychoAnalysis").First(&day)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, tradetalk.ErrDayNotFound
		}
		return nil, result.Error
	}

	return &day, nil
}

func (s *Storage) SaveTradingDay(ctx context.Context, day *m.TradingDay) (*m.TradingDay, error) {

	if day.ID == "" {
		day.ID = uuid.NewString()
	}
	day.PsychoAnalysis = nil // analysis starts null, created through its own path

	result := s.db.WithContext(ctx).Create(day)
	if result.Error != nil {
		return nil, result.Error
	}

	s.invalidateDays(ctx)
	return day, nil
}

// UpdateTradingDay replaces trades and journal of the record at date. Id and
// date never change here. memo. struct 기반 Updates는 zero value 필드를
// 건너뛰므로 갱신 컬럼을 명시해야 함 (빈 trade 목록, journal 제거 케이스)
func (s *Storage) UpdateTradingDay(ctx context.Context, date string, trades []m.Trade, journal *m.JournalEntry) (*m.TradingDay, error) {

	day, err := s.RetrieveTradingDay(ctx, date)
	if err != nil {
		return nil, err
	}

	day.Trades = trades
	if journal != nil {
		day.Journal = m.NewJournal(*journal)
	} else {
		day.Journal = nil
	}

	result := s.db.WithContext(ctx).Model(day).Select("Trades", "Journal").Updates(day)
	if result.Error != nil {
		return nil, result.Error
	}

	s.invalidateDays(ctx)
	return day, nil
}

func (s *Storage) DeleteTradingDay(ctx context.Context, date string) error {

	result := s.db.WithContext(ctx).Where("date = ?", date).Delete(&m.TradingDay{})
	if result.Error != nil {
		return result.Error
	}

	s.invalidateDays(ctx)
	return nil
}

// SavePsychoAnalysis upserts the analysis row for a day. One row per day:
// rerunning the analysis overwrites the text instead of inserting a sibling.
func (s *Storage) SavePsychoAnalysis(ctx context.Context, dayID string, raw string) (*m.PsychoAnalysis, error) {

	var pa m.PsychoAnalysis
	result := s.db.WithContext(ctx).Where("trading_day_id = ?", dayID).Find(&pa)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		pa = m.PsychoAnalysis{
			ID:           uuid.NewString(),
			TradingDayID: dayID,
			Analysis:     raw,
		}
		result = s.db.WithContext(ctx).Create(&pa)
	} else {
		pa.Analysis = raw
		result = s.db.WithContext(ctx).Model(&pa).Select("Analysis").Updates(pa)
	}
	if result.Error != nil {
		return nil, result.Error
	}

	s.invalidateDays(ctx)
	return &pa, nil
}

func (s *Storage) RetrievePsychoAnalysis(ctx context.Context, dayID string) (*m.PsychoAnalysis, error) {

	var pa m.PsychoAnalysis
	result := s.db.WithContext(ctx).Where("trading_day_id = ?", dayID).First(&pa)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, tradetalk.ErrAnalysisNotFound
		}
		return nil, result.Error
	}

	return &pa, nil
}
