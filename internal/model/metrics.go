package model

import (
	"math"
	"strconv"
)

// NetResult sums the day's trade amounts, profits positive and losses
// negative. ok is false for an empty trade list so callers can tell "no
// trades" apart from a break-even zero. An amount that does not parse
// contributes NaN; validation keeps such trades from ever being persisted.
func NetResult(trades []Trade) (net float64, ok bool) {
	if len(trades) == 0 {
		return 0, false
	}

	for _, t := range trades {
		amount, err := strconv.ParseFloat(t.Amount, 64)
		if err != nil {
			amount = math.NaN()
		}
		if t.IsProfit {
			net += amount
		} else {
			net -= amount
		}
	}
	return net, true
}

// HasAnalysis reports whether the day carries a persisted analysis. Safe on a
// nil day, which stands for a date with no record at all.
func (d *TradingDay) HasAnalysis() bool {
	return d != nil && d.PsychoAnalysis != nil
}
