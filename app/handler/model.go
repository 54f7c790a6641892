package handler

import (
	m "tradetalk/internal/model"

	"github.com/gofiber/fiber/v2"
)

type ModelHandler struct {
}

func NewModelHandler() *ModelHandler {
	return &ModelHandler{}
}

func (h *ModelHandler) InitRoute(app *fiber.App) {
	app.Get("/pairs", h.GetPairs)
	app.Get("/moods", h.GetMoods)
}

func (h *ModelHandler) GetPairs(c *fiber.Ctx) error {
	return c.JSON(m.PairList())
}

func (h *ModelHandler) GetMoods(c *fiber.Ctx) error {
	return c.JSON(m.MoodList())
}
