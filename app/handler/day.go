package handler

import (
	"errors"
	"fmt"
	"time"

	"tradetalk"
	m "tradetalk/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DayHandler struct {
	r DayReader
	w DayWriter
	a DayAnalyzer
}

func NewDayHandler(r DayReader, w DayWriter, a DayAnalyzer) *DayHandler {
	return &DayHandler{
		r: r,
		w: w,
		a: a,
	}
}

func (h *DayHandler) InitRoute(app *fiber.App) {

	router := app.Group("/days")

	router.Get("", h.Days)
	router.Get("/calendar/:year<int>/:month<int>", h.Calendar)
	router.Post("/", h.Submit)
	router.Get("/:date", h.Day)
	router.Delete("/:date", h.Delete)
	router.Post("/:date/analysis", h.Analyze)
	router.Get("/:date/analysis", h.Analysis)
}

func (h *DayHandler) Days(c *fiber.Ctx) error {

	days, err := h.r.Days(c.Context())
	if err != nil {
		return fmt.Errorf("RetrieveTradingDays 오류 발생. %w", err)
	}

	return c.Status(fiber.StatusOK).JSON(days)
}

// Day returns the record for a date. Without data this is a 404, unless the
// caller asks to open the date (?open=1) and gets a transient placeholder
// back, the way the drawer opens an empty calendar cell.
func (h *DayHandler) Day(c *fiber.Ctx) error {

	param := DateParam{Date: c.Params("date")}
	if err := validCheck(&param); err != nil {
		return fmt.Errorf("파라미터 유효성 검사 시 오류 발생. %w", err)
	}

	day, err := h.r.Open(c.Context(), param.Date)
	if err != nil {
		return fmt.Errorf("Open 오류 발생. %w", err)
	}

	if day.ID == "" && c.Query("open") == "" {
		return fiber.NewError(fiber.StatusNotFound, "trading day not found")
	}

	return c.Status(fiber.StatusOK).JSON(day)
}

func (h *DayHandler) Calendar(c *fiber.Ctx) error {

	param := CalendarParam{}
	var err error
	if param.Year, err = c.ParamsInt("year"); err != nil {
		return fmt.Errorf("파라미터 year 오류 발생. %w", err)
	}
	if param.Month, err = c.ParamsInt("month"); err != nil {
		return fmt.Errorf("파라미터 month 오류 발생. %w", err)
	}
	if err := validCheck(&param); err != nil {
		return fmt.Errorf("파라미터 유효성 검사 시 오류 발생. %w", err)
	}

	cells, err := h.r.CalendarMonth(c.Context(), param.Year, time.Month(param.Month))
	if err != nil {
		return fmt.Errorf("CalendarMonth 오류 발생. %w", err)
	}

	return c.Status(fiber.StatusOK).JSON(cells)
}

func (h *DayHandler) Submit(c *fiber.Ctx) error {

	param := SubmitDayReq{}
	err := c.BodyParser(&param)
	if err != nil {
		return fmt.Errorf("파라미터 BodyParse 시 오류 발생. %w", err)
	}

	err = validCheck(&param)
	if err != nil {
		return fmt.Errorf("파라미터 유효성 검사 시 오류 발생. %w", err)
	}

	day, err := toDay(&param)
	if err != nil {
		return err
	}

	saved, err := h.w.Submit(c.Context(), day)
	if err != nil {
		if tradetalk.IsValidationError(err) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return fmt.Errorf("Submit 오류 발생. %w", err)
	}

	return c.Status(fiber.StatusOK).JSON(saved)
}

func (h *DayHandler) Delete(c *fiber.Ctx) error {

	param := DateParam{Date: c.Params("date")}
	if err := validCheck(&param); err != nil {
		return fmt.Errorf("파라미터 유효성 검사 시 오류 발생. %w", err)
	}

	if err := h.w.Delete(c.Context(), param.Date); err != nil {
		return fmt.Errorf("DeleteTradingDay 오류 발생. %w", err)
	}

	return c.Status(fiber.StatusOK).SendString("Trading day 삭제 성공")
}

func (h *DayHandler) Analyze(c *fiber.Ctx) error {

	param := DateParam{Date: c.Params("date")}
	if err := validCheck(&param); err != nil {
		return fmt.Errorf("파라미터 유효성 검사 시 오류 발생. %w", err)
	}

	res, err := h.a.Analyze(c.Context(), param.Date)
	if err != nil {
		if tradetalk.IsValidationError(err) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return fmt.Errorf("Analyze 오류 발생. %w", err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *DayHandler) Analysis(c *fiber.Ctx) error {

	param := DateParam{Date: c.Params("date")}
	if err := validCheck(&param); err != nil {
		return fmt.Errorf("파라미터 유효성 검사 시 오류 발생. %w", err)
	}

	res, err := h.a.Analysis(c.Context(), param.Date)
	if err != nil {
		if errors.Is(err, tradetalk.ErrDayNotFound) || errors.Is(err, tradetalk.ErrAnalysisNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fmt.Errorf("Analysis 조회 오류 발생. %w", err)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// toDay converts the request body into the domain aggregate. Missing trade
// ids are filled server-side; duplicate ids within the day are rejected since
// trades are addressed by id inside their list.
func toDay(param *SubmitDayReq) (*m.TradingDay, error) {

	trades := make([]m.Trade, len(param.Trades))
	seen := make(map[string]bool, len(param.Trades))

	for i, t := range param.Trades {
		id := t.ID
		if id == "" {
			id = uuid.NewString()
		}
		if seen[id] {
			return nil, fiber.NewError(fiber.StatusBadRequest, "duplicate trade id: "+id)
		}
		seen[id] = true

		trades[i] = m.Trade{
			ID:             id,
			Time:           t.Time,
			IsProfit:       t.IsProfit,
			Amount:         t.Amount,
			Pair:           t.Pair,
			IsExpanded:     t.IsExpanded,
			TradingViewURL: t.TradingViewURL,
		}
	}

	day := &m.TradingDay{
		Date:   param.Date,
		Trades: trades,
	}
	if param.Journal != nil {
		day.Journal = m.NewJournal(m.JournalEntry{
			Content: param.Journal.Content,
			Mood:    param.Journal.Mood,
		})
	}
	return day, nil
}
