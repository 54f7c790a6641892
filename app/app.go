package app

import (
	"fmt"

	"tradetalk"
	"tradetalk/app/handler"
	"tradetalk/app/middleware"

	"github.com/gofiber/fiber/v2"
)

func Run(port int, bk *tradetalk.Daybook) error {

	app := fiber.New()

	middleware.SetupMiddleware(app)

	handler.NewDayHandler(bk, bk, bk).InitRoute(app)
	handler.NewModelHandler().InitRoute(app)

	return app.Listen(fmt.Sprintf(":%d", port))
}
