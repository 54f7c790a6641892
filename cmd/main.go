package main

import (
	"tradetalk"
	"tradetalk/analyze"
	"tradetalk/app"
	"tradetalk/config"
	"tradetalk/db"

	"github.com/rs/zerolog"
)

func main() {

	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	level, err := conf.LogLevel()
	if err != nil {
		panic(err)
	}
	zerolog.SetGlobalLevel(level)

	stg, err := db.NewStorage(conf.Dsn(), db.WithCache(conf.CacheConfig()))
	if err != nil {
		panic(err)
	}
	if err := stg.AutoMigrate(); err != nil {
		panic(err)
	}

	// 분석 endpoint/credential 미설정 시 기동 실패
	analyzer, err := analyze.NewClient(conf.AnalyzerConfig())
	if err != nil {
		panic(err)
	}

	bk := tradetalk.NewDaybook(stg, analyzer)

	if err := app.Run(conf.App.Port, bk); err != nil {
		panic(err)
	}
}
