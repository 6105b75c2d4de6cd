package api

import (
	"github.com/gofiber/fiber/v2"
)

// NewRouter builds the fiber app and mounts the scheduling endpoints under
// /api/v1.
func NewRouter(handler SchedulerHandler) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fifo", handler.FirstInFirstOut)
		v1.Post("/lifo", handler.LastInFirstOut)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}

	return app
}
