package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ordering/cmd"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/outboxrepo"
	"ordering/internal/adapters/out/postgres/restaurantrepo"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	migrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	publisher, err := app.CreateEventPublisher()
	if err != nil {
		log.Fatalf("Failed to create event publisher: %v", err)
	}
	defer publisher.Close()

	consumer, err := app.CreateSagaConsumer()
	if err != nil {
		log.Fatalf("Failed to create saga consumer: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go consumer.Run(ctx)

	jobManager := app.CreateJobManager(publisher)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                   goDotEnvVariable("HTTP_PORT"),
		DBHost:                     goDotEnvVariable("DB_HOST"),
		DBPort:                     goDotEnvVariable("DB_PORT"),
		DBUser:                     goDotEnvVariable("DB_USER"),
		DBPassword:                 goDotEnvVariable("DB_PASSWORD"),
		DBName:                     goDotEnvVariable("DB_NAME"),
		DBSslMode:                  goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                  goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:         goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaPaymentRequestTopic:   goDotEnvVariable("KAFKA_PAYMENT_REQUEST_TOPIC"),
		KafkaPaymentResponseTopic:  goDotEnvVariable("KAFKA_PAYMENT_RESPONSE_TOPIC"),
		KafkaApprovalRequestTopic:  goDotEnvVariable("KAFKA_APPROVAL_REQUEST_TOPIC"),
		KafkaApprovalResponseTopic: goDotEnvVariable("KAFKA_APPROVAL_RESPONSE_TOPIC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&outboxrepo.OutboxMessageDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.ProductDTO{},
		&customerrepo.CustomerDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
