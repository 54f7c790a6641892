package model

import (
	"time"

	"gorm.io/datatypes"
)

// Trade is one logged execution inside a trading day. Trades only exist as
// part of their day's trade list; the id is client-generated and unique
// within that list.
type Trade struct {
	ID             string `json:"id"`
	Time           string `json:"time"` // HH:mm, local
	IsProfit       bool   `json:"isProfit"`
	Amount         string `json:"amount"`
	Pair           string `json:"pair"`
	IsExpanded     bool   `json:"isExpanded"` // UI state, carried but never interpreted here
	TradingViewURL string `json:"tradingViewUrl,omitempty"`
}

type JournalEntry struct {
	Content string `json:"content"` // serialized rich-text markup
	Mood    string `json:"mood"`
}

// PsychoAnalysis holds the raw completion text for one trading day. The text
// is stored unsplit; callers derive the analysis/recommendation halves on
// load so storage and render always parse from one string.
type PsychoAnalysis struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	TradingDayID string    `json:"trading_day_id" gorm:"uniqueIndex;size:36"`
	Analysis     string    `json:"analysis" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TradingDay is the aggregate root: exactly one record per calendar date.
// Trades and journal persist as JSON columns inside the day row; the analysis
// lives in its own table keyed back by trading_day_id.
type TradingDay struct {
	ID             string                            `json:"id" gorm:"primaryKey;size:36"`
	Date           string                            `json:"date" gorm:"uniqueIndex;size:10"` // 2006-01-02
	Trades         datatypes.JSONSlice[Trade]        `json:"trades"`
	Journal        *datatypes.JSONType[JournalEntry] `json:"journal"`
	PsychoAnalysis *PsychoAnalysis                   `json:"psycho_analyses" gorm:"foreignKey:TradingDayID"`
	CreatedAt      time.Time                         `json:"created_at"`
	UpdatedAt      time.Time                         `json:"updated_at"`
}

// NewJournal wraps a JournalEntry for storage in the day row.
func NewJournal(j JournalEntry) *datatypes.JSONType[JournalEntry] {
	v := datatypes.NewJSONType(j)
	return &v
}

// JournalEntry unwraps the stored journal, nil when the day has none.
func (d *TradingDay) JournalEntry() *JournalEntry {
	if d == nil || d.Journal == nil {
		return nil
	}
	j := d.Journal.Data()
	return &j
}
