package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"prep-scheduler/internal/api/handlers"
	"prep-scheduler/internal/api/routes"
	"prep-scheduler/internal/middleware"
	"prep-scheduler/internal/utils"
	"prep-scheduler/internal/utils/cache"
	"prep-scheduler/internal/utils/lock"
	"prep-scheduler/internal/utils/mailing"
	"prep-scheduler/internal/utils/metrics"
	"prep-scheduler/internal/utils/storage"
	"prep-scheduler/pkg/delivery"
	"prep-scheduler/pkg/inventory"
	"prep-scheduler/pkg/leftover"
	"prep-scheduler/pkg/schedule"
	"prep-scheduler/pkg/weather"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const (
	accessLogPath     = "./logs/access.log"
	generationLockTTL = 30 * time.Second
	requestsPerSecond = 20
)

// Dependencies are the collaborators NewApp builds from configuration.
// A zero RateLimit disables the limiter and a nil AccessLog disables access logging.
type Dependencies struct {
	Weather   weather.Provider
	Clock     utils.Clock
	Locker    lock.Locker
	S3        storage.AwsS3
	Notifier  schedule.Notifier
	Metrics   *metrics.Metrics
	AccessLog io.Writer
	RateLimit int
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	deps, err := dependenciesFromConfig()
	if err != nil {
		return nil, err
	}
	return BuildApp(db, deps), nil
}

func dependenciesFromConfig() (Dependencies, error) {
	if err := os.MkdirAll(filepath.Dir(accessLogPath), os.ModePerm); err != nil {
		return Dependencies{}, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(accessLogPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return Dependencies{}, fmt.Errorf("error opening access log: %w", err)
	}

	weatherConfig, err := weatherConfigFromEnv()
	if err != nil {
		return Dependencies{}, err
	}

	rdb := cache.ConnectRedis()

	var locker lock.Locker
	if rdb != nil {
		locker = lock.NewRedisLocker(rdb, generationLockTTL)
	} else {
		locker = lock.NewMutexLocker()
	}

	var notifier schedule.Notifier
	if n := mailing.NewScheduleNotifier(); n != nil {
		notifier = n
	}

	return Dependencies{
		Weather:   weather.NewOpenMeteoProvider(weatherConfig, rdb),
		Clock:     utils.NewClock(),
		Locker:    locker,
		S3:        storage.NewAwsS3(),
		Notifier:  notifier,
		Metrics:   metrics.NewMetrics(),
		AccessLog: file,
		RateLimit: requestsPerSecond,
	}, nil
}

func weatherConfigFromEnv() (weather.Config, error) {
	lat, err := strconv.ParseFloat(utils.GetConfig("STORE_LAT"), 64)
	if err != nil {
		return weather.Config{}, fmt.Errorf("invalid STORE_LAT: %w", err)
	}
	lon, err := strconv.ParseFloat(utils.GetConfig("STORE_LON"), 64)
	if err != nil {
		return weather.Config{}, fmt.Errorf("invalid STORE_LON: %w", err)
	}
	ttl, err := time.ParseDuration(utils.GetConfig("WEATHER_CACHE_TTL"))
	if err != nil {
		return weather.Config{}, fmt.Errorf("invalid WEATHER_CACHE_TTL: %w", err)
	}

	return weather.Config{
		BaseURL:   utils.GetConfig("WEATHER_URL"),
		Latitude:  lat,
		Longitude: lon,
		CacheTTL:  ttl,
	}, nil
}

// BuildApp wires repositories, services and handlers around db.
func BuildApp(db *gorm.DB, deps Dependencies) *fiber.App {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: deps.AccessLog != nil,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	if deps.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			TimeFormat: "2006-01-02 15:04:05",
			TimeZone:   utils.GetConfig("APP_TIMEZONE"),
			Output:     deps.AccessLog,
		}))
	}
	if deps.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        deps.RateLimit,
			Expiration: 1 * time.Second,
		}))
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewMetrics()
	}
	if deps.Locker == nil {
		deps.Locker = lock.NewMutexLocker()
	}

	// Repository
	inventoryRepository := inventory.NewInventoryRepository(db)
	leftoverRepository := leftover.NewLeftoverRepository(db)
	deliveryRepository := delivery.NewDeliveryRepository(db, inventoryRepository)
	scheduleRepository := schedule.NewScheduleRepository(db, inventoryRepository)

	// Service
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	leftoverService := leftover.NewLeftoverService(leftoverRepository)
	deliveryService := delivery.NewDeliveryService(
		deliveryRepository,
		leftoverRepository,
		inventoryService,
		deps.Weather,
		deps.Clock,
		deps.S3,
		deps.Metrics,
	)
	scheduleService := schedule.NewScheduleService(
		scheduleRepository,
		inventoryRepository,
		leftoverRepository,
		deps.Weather,
		deps.Clock,
		deps.Locker,
		deps.Metrics,
		deps.Notifier,
	)

	// Handler
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	leftoverHandler := handlers.NewLeftoverHandler(leftoverService, validator)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService, validator)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		InventoryHandler: inventoryHandler,
		LeftoverHandler:  leftoverHandler,
		DeliveryHandler:  deliveryHandler,
		ScheduleHandler:  scheduleHandler,
		Middleware:       middlewares,
		Metrics:          deps.Metrics,
	}
	routesConfig.Setup()
	return app
}
