package model

import "slices"

// 트레이딩 가능한 통화쌍 목록이 아니라, 클라이언트 선택지 그대로의 고정 목록
var pairList = []string{
	"EUR/USD",
	"GBP/USD",
	"USD/JPY",
	"USD/CHF",
	"AUD/USD",
	"USD/CAD",
	"NZD/USD",
	"EUR/GBP",
	"EUR/JPY",
	"GBP/JPY",
}

func IsValidPair(p string) bool {
	return slices.Contains(pairList, p)
}

func PairList() []string {
	return pairList
}
