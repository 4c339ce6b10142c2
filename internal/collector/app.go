// Package collector assembles the HTTP surface of the reference collector.
package collector

import (
	eventsHttp "konjac/internal/events/adapters/http/fiber"
	recordsHttp "konjac/internal/records/adapters/http/fiber"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// Options tune the fiber app. Zero values are usable.
type Options struct {
	CORSOrigins string // comma separated, "*" when empty
	AccessLog   bool
	Docs        bool
}

// NewApp mounts both collector endpoints plus /healthz and, optionally, /docs.
func NewApp(storeUC eventsHttp.StoreEventUseCase, fetchUC recordsHttp.FetchRecordsUseCase, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "konjac-collector",
		DisableStartupMessage: true,
	})

	origins := opts.CORSOrigins
	if origins == "" {
		origins = "*"
	}

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(storeUC)
	app.Post("/track-analytics", eventsHandler.TrackAnalytics)

	// records endpoints
	recordsHandler := recordsHttp.NewRecordsHandler(fetchUC)
	app.Post("/fetch-analytics", recordsHandler.FetchAnalytics)

	// Swagger
	if opts.Docs {
		app.Get("/docs/*", fiberSwagger.WrapHandler)
	}

	return app
}
