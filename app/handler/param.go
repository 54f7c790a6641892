package handler

/***************************************************************** request ****************************************************************/

type SubmitDayReq struct {
	Date    string        `json:"date" validate:"required,datetime=2006-01-02"`
	Trades  []TradeParam  `json:"trades" validate:"dive"`
	Journal *JournalParam `json:"journal"`
}

// Trade field presence is deliberately not enforced here: the daybook reports
// those gaps one at a time in its own order. Only enum membership is checked
// at the boundary.
type TradeParam struct {
	ID             string `json:"id"`
	Time           string `json:"time"`
	IsProfit       bool   `json:"isProfit"`
	Amount         string `json:"amount"`
	Pair           string `json:"pair" validate:"omitempty,pair"`
	IsExpanded     bool   `json:"isExpanded"`
	TradingViewURL string `json:"tradingViewUrl"`
}

type JournalParam struct {
	Content string `json:"content"`
	Mood    string `json:"mood" validate:"omitempty,mood"`
}

type DateParam struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

type CalendarParam struct {
	Year  int `validate:"required,min=1970,max=9999"`
	Month int `validate:"required,min=1,max=12"`
}
