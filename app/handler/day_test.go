package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"tradetalk/app/middleware"
	"tradetalk/analyze"
	m "tradetalk/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func sendRequest(app *fiber.App, path, method string, body any, resp any) (int, error) {

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, err
	}
	if res.StatusCode >= fiber.StatusMultipleChoices {
		return res.StatusCode, fmt.Errorf("%s", raw)
	}
	if resp != nil {
		return res.StatusCode, json.Unmarshal(raw, resp)
	}
	return res.StatusCode, nil
}

func newTestApp(mock *DaybookMock) *fiber.App {
	app := fiber.New()
	middleware.SetupMiddleware(app)
	NewDayHandler(mock, mock, mock).InitRoute(app)
	NewModelHandler().InitRoute(app)
	return app
}

func submitReq(date string) SubmitDayReq {
	return SubmitDayReq{
		Date: date,
		Trades: []TradeParam{
			{ID: "t1", Time: "09:30", IsProfit: true, Amount: "100", Pair: "EUR/USD"},
			{ID: "t2", Time: "11:00", IsProfit: false, Amount: "40", Pair: "GBP/USD"},
		},
		Journal: &JournalParam{Content: "<p>ok</p>", Mood: "confident"},
	}
}

func TestSubmitDay(t *testing.T) {

	t.Run("first submission creates", func(t *testing.T) {
		mock := NewDaybookMock()
		app := newTestApp(mock)

		var resp m.TradingDay
		code, err := sendRequest(app, "/days/", "POST", submitReq("2025-03-10"), &resp)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, 1, mock.creates)
		assert.Equal(t, 0, mock.updates)
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("second submission updates", func(t *testing.T) {
		mock := NewDaybookMock()
		app := newTestApp(mock)

		_, err := sendRequest(app, "/days/", "POST", submitReq("2025-03-10"), nil)
		assert.NoError(t, err)
		_, err = sendRequest(app, "/days/", "POST", submitReq("2025-03-10"), nil)
		assert.NoError(t, err)
		assert.Equal(t, 1, mock.creates)
		assert.Equal(t, 1, mock.updates)
	})

	t.Run("missing mood reports 422 with first failing rule", func(t *testing.T) {
		app := newTestApp(NewDaybookMock())

		param := submitReq("2025-03-10")
		param.Journal = nil
		param.Trades = nil

		code, err := sendRequest(app, "/days/", "POST", param, nil)
		assert.Equal(t, fiber.StatusUnprocessableEntity, code)
		assert.ErrorContains(t, err, "select your mood")
	})

	t.Run("zero amount reports positivity rule", func(t *testing.T) {
		app := newTestApp(NewDaybookMock())

		param := submitReq("2025-03-10")
		param.Trades[1].Amount = "0"

		code, err := sendRequest(app, "/days/", "POST", param, nil)
		assert.Equal(t, fiber.StatusUnprocessableEntity, code)
		assert.ErrorContains(t, err, "greater than 0")
	})

	t.Run("unknown pair rejected at the boundary", func(t *testing.T) {
		app := newTestApp(NewDaybookMock())

		param := submitReq("2025-03-10")
		param.Trades[0].Pair = "BTC/USD"

		code, err := sendRequest(app, "/days/", "POST", param, nil)
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Error(t, err)
	})

	t.Run("duplicate trade ids rejected", func(t *testing.T) {
		app := newTestApp(NewDaybookMock())

		param := submitReq("2025-03-10")
		param.Trades[1].ID = "t1"

		code, err := sendRequest(app, "/days/", "POST", param, nil)
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.ErrorContains(t, err, "duplicate trade id")
	})
}

func TestGetDay(t *testing.T) {

	mock := NewDaybookMock()
	app := newTestApp(mock)

	_, err := sendRequest(app, "/days/", "POST", submitReq("2025-03-10"), nil)
	assert.NoError(t, err)

	t.Run("existing date", func(t *testing.T) {
		var resp m.TradingDay
		code, err := sendRequest(app, "/days/2025-03-10", "GET", nil, &resp)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, code)
		assert.Len(t, resp.Trades, 2)
	})

	t.Run("missing date is 404", func(t *testing.T) {
		code, err := sendRequest(app, "/days/2025-03-11", "GET", nil, nil)
		assert.Equal(t, fiber.StatusNotFound, code)
		assert.Error(t, err)
	})

	t.Run("open query hands out placeholder", func(t *testing.T) {
		var resp m.TradingDay
		code, err := sendRequest(app, "/days/2025-03-11?open=1", "GET", nil, &resp)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, code)
		assert.Empty(t, resp.ID)
		assert.Equal(t, "2025-03-11", resp.Date)
	})

	t.Run("malformed date", func(t *testing.T) {
		code, _ := sendRequest(app, "/days/10-03-2025", "GET", nil, nil)
		assert.Equal(t, fiber.StatusBadRequest, code)
	})
}

func TestCalendar(t *testing.T) {

	mock := NewDaybookMock()
	app := newTestApp(mock)

	_, err := sendRequest(app, "/days/", "POST", submitReq("2025-03-10"), nil)
	assert.NoError(t, err)

	var cells []struct {
		Date        string   `json:"date"`
		HasData     bool     `json:"hasData"`
		Net         *float64 `json:"net"`
		HasAnalysis bool     `json:"hasAnalysis"`
	}
	code, err := sendRequest(app, "/days/calendar/2025/3", "GET", nil, &cells)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Len(t, cells, 31)

	for _, cell := range cells {
		if cell.Date == "2025-03-10" {
			assert.True(t, cell.HasData)
			if assert.NotNil(t, cell.Net) {
				assert.Equal(t, 60.0, *cell.Net)
			}
		} else {
			assert.False(t, cell.HasData)
			assert.Nil(t, cell.Net)
		}
	}

	code, _ = sendRequest(app, "/days/calendar/2025/13", "GET", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestAnalysisEndpoints(t *testing.T) {

	mock := NewDaybookMock()
	app := newTestApp(mock)

	_, err := sendRequest(app, "/days/", "POST", submitReq("2025-03-10"), nil)
	assert.NoError(t, err)

	t.Run("analysis before run is 404", func(t *testing.T) {
		code, _ := sendRequest(app, "/days/2025-03-10/analysis", "GET", nil, nil)
		assert.Equal(t, fiber.StatusNotFound, code)
	})

	t.Run("run then reload", func(t *testing.T) {
		var run analyze.Result
		code, err := sendRequest(app, "/days/2025-03-10/analysis", "POST", nil, &run)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "Analyse du jour.", run.Analysis)
		assert.Equal(t, "Continue comme ça.", run.Recommendation)

		var loaded analyze.Result
		code, err = sendRequest(app, "/days/2025-03-10/analysis", "GET", nil, &loaded)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, run, loaded)
	})

	t.Run("unknown day is 422", func(t *testing.T) {
		code, err := sendRequest(app, "/days/2025-03-12/analysis", "POST", nil, nil)
		assert.Equal(t, fiber.StatusUnprocessableEntity, code)
		assert.ErrorContains(t, err, "missing day data")
	})
}

func TestModelEndpoints(t *testing.T) {

	app := newTestApp(NewDaybookMock())

	var pairs []string
	_, err := sendRequest(app, "/pairs", "GET", nil, &pairs)
	assert.NoError(t, err)
	assert.Contains(t, pairs, "EUR/USD")

	var moods []string
	_, err = sendRequest(app, "/moods", "GET", nil, &moods)
	assert.NoError(t, err)
	assert.Contains(t, moods, "confident")
}
