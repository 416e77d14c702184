package routes

import (
	"prep-scheduler/domain"
	"prep-scheduler/internal/api/handlers"
	"prep-scheduler/internal/api/presenters"
	"prep-scheduler/internal/middleware"
	"prep-scheduler/internal/utils/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App              *fiber.App
	InventoryHandler handlers.InventoryHandler
	LeftoverHandler  handlers.LeftoverHandler
	DeliveryHandler  handlers.DeliveryHandler
	ScheduleHandler  handlers.ScheduleHandler
	Middleware       middleware.Middleware
	Metrics          *metrics.Metrics
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Inventory()
	c.Leftovers()
	c.Delivery()
	c.Schedule()
}

func (c *Config) GuestRoute() {
	c.App.Get("/healthz", func(ctx *fiber.Ctx) error {
		return presenters.SuccessResponse(ctx, fiber.Map{"ok": true}, fiber.StatusOK, domain.MessageSuccessHealthCheck)
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(c.Metrics.Registry(), promhttp.HandlerOpts{})))
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory")
	{
		inventory.Get("", c.InventoryHandler.GetInventory)
		inventory.Post("/update", c.InventoryHandler.UpdateInventory)
		inventory.Post("/danger", c.InventoryHandler.UpdateDangerLevels)
	}
}

func (c *Config) Leftovers() {
	leftovers := c.App.Group("/api/v1/leftovers")
	{
		leftovers.Get("/:day", c.LeftoverHandler.GetLeftovers)
		leftovers.Post("", c.LeftoverHandler.UpsertLeftovers)
	}
}

func (c *Config) Delivery() {
	delivery := c.App.Group("/api/v1/delivery")
	{
		delivery.Post("", c.DeliveryHandler.ComputeDelivery)
		delivery.Post("/confirm", c.DeliveryHandler.ConfirmDelivery)
	}
}

func (c *Config) Schedule() {
	schedule := c.App.Group("/api/v1/schedule")
	{
		schedule.Get("", c.ScheduleHandler.GetSchedule)
		schedule.Get("/export", c.ScheduleHandler.ExportSchedule)
		schedule.Get("/history", c.ScheduleHandler.GetTaskHistory)
		schedule.Post("/complete/:id", c.ScheduleHandler.CompleteTask)
		schedule.Post("/delete/:id", c.ScheduleHandler.DeleteTask)
		schedule.Post("/move/:id", c.ScheduleHandler.MoveTask)
		schedule.Post("/update_qty/:id", c.ScheduleHandler.UpdateTaskQty)
	}
}
