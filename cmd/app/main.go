package main

import (
	"fmt"
	"log/slog"
	"os"

	"shop/cmd"
	httpadapter "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/kafka"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/adapters/out/postgres/returnrepo"
	"shop/internal/core/ports"
	"shop/internal/jobs"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	db, err := openDatabase(configs)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}

	publisher := createPublisher(configs, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("close event publisher", "error", err)
		}
	}()

	app, err := cmd.NewCompositionRoot(configs, db, publisher)
	if err != nil {
		logger.Error("build composition root", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(
		app.CreateAdvanceShipmentsCommandHandler(),
		configs.ShipmentProgressSpec,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file found, reading environment directly")
	}

	return cmd.Config{
		HTTPPort:             envOrDefault("HTTP_PORT", "8080"),
		DBHost:               envOrDefault("DB_HOST", "localhost"),
		DBPort:               envOrDefault("DB_PORT", "5432"),
		DBUser:               envOrDefault("DB_USER", "postgres"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               envOrDefault("DB_NAME", "shop"),
		DBSslMode:            envOrDefault("DB_SSLMODE", "disable"),
		KafkaHost:            os.Getenv("KAFKA_HOST"),
		KafkaOrderTopic:      envOrDefault("KAFKA_ORDER_TOPIC", "order.events"),
		ShipmentProgressSpec: envOrDefault("SHIPMENT_PROGRESS_SPEC", "0 0 * * * *"),
		DeliverySurcharge:    os.Getenv("DELIVERY_SURCHARGE"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.DeliveryUpdateDTO{},
		&returnrepo.ReturnDTO{},
		&returnrepo.ReturnItemDTO{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func createPublisher(configs cmd.Config, logger *slog.Logger) ports.EventPublisher {
	if configs.KafkaHost == "" {
		logger.Info("no kafka host configured, order events disabled")
		return kafka.NewNoopEventPublisher()
	}

	return kafka.NewOrderEventPublisher(
		[]string{configs.KafkaHost},
		configs.KafkaOrderTopic,
		logger,
	)
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateOpenReturnCommandHandler(),
		app.CreateUpdateReturnStatusCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetReturnsQueryHandler(),
		app.CreateGetReturnQueryHandler(),
		app.CreateGetAllReturnsQueryHandler(),
		app.CreateGetProductsQueryHandler(),
		app.CreateGetProductQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
