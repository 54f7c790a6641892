package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetResult(t *testing.T) {

	t.Run("profit minus loss", func(t *testing.T) {
		trades := []Trade{
			{ID: "1", Amount: "100", IsProfit: true},
			{ID: "2", Amount: "40", IsProfit: false},
		}
		net, ok := NetResult(trades)
		assert.True(t, ok)
		assert.Equal(t, 60.0, net)
	})

	t.Run("empty list is no data, not zero", func(t *testing.T) {
		net, ok := NetResult(nil)
		assert.False(t, ok)
		assert.Equal(t, 0.0, net)

		net, ok = NetResult([]Trade{})
		assert.False(t, ok)
		assert.Equal(t, 0.0, net)
	})

	t.Run("losses only go negative", func(t *testing.T) {
		trades := []Trade{
			{ID: "1", Amount: "25.5", IsProfit: false},
			{ID: "2", Amount: "10", IsProfit: false},
		}
		net, ok := NetResult(trades)
		assert.True(t, ok)
		assert.Equal(t, -35.5, net)
	})

	t.Run("break-even zero still counts as data", func(t *testing.T) {
		trades := []Trade{
			{ID: "1", Amount: "50", IsProfit: true},
			{ID: "2", Amount: "50", IsProfit: false},
		}
		net, ok := NetResult(trades)
		assert.True(t, ok)
		assert.Equal(t, 0.0, net)
	})
}

func TestHasAnalysis(t *testing.T) {

	var missing *TradingDay
	assert.False(t, missing.HasAnalysis())

	day := &TradingDay{ID: "d1", Date: "2025-03-10"}
	assert.False(t, day.HasAnalysis())

	day.PsychoAnalysis = &PsychoAnalysis{ID: "a1", TradingDayID: "d1", Analysis: "text"}
	assert.True(t, day.HasAnalysis())
}

func TestMoodPairLists(t *testing.T) {

	assert.True(t, IsValidMood("confident"))
	assert.False(t, IsValidMood("euphoric"))
	assert.Len(t, MoodList(), 6)

	assert.True(t, IsValidPair("EUR/USD"))
	assert.False(t, IsValidPair("BTC/USD"))
	assert.Len(t, PairList(), 10)
}
