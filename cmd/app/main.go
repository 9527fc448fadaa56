package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"triage/cmd"
	_ "triage/docs"
	"triage/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpadapter "triage/internal/adapters/in/http"
)

//	@title			Delivery Order Triage API
//	@version		1.0
//	@description	Ranks pending delivery orders by urgency so drivers can decide delivery sequence.
//	@BasePath		/
func main() {
	configs := getConfigs()
	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	consumer, err := app.CreateOrderPlacedConsumer(logger)
	if err != nil {
		log.Fatalf("Failed to create order-placed consumer: %v", err)
	}
	defer consumer.Close()
	go func() {
		if runErr := consumer.Run(context.Background()); runErr != nil {
			logger.Error("order-placed consumer exited", slog.Any("err", runErr))
		}
	}()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:       goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaOrderPlacedTopic:    goDotEnvVariable("KAFKA_ORDER_PLACED_TOPIC"),
		DashboardRefreshSchedule: goDotEnvVariable("DASHBOARD_REFRESH_SCHEDULE"),
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ProductDTO{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = httpadapter.NewCustomValidator()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
