package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"replenish/cmd"
	httpin "replenish/internal/adapters/in/http"
	"replenish/internal/adapters/out/notify"
	"replenish/internal/core/domain/services"
	"replenish/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	window, err := services.NewBusinessWindow(configs.BusinessDayStartHour, configs.BusinessDayEndHour)
	if err != nil {
		log.Fatalf("Invalid business window: %v", err)
	}
	calendar := services.NewWorkCalendar(window)

	publisher := notify.NewKafkaPublisher(strings.Split(configs.KafkaHost, ","), configs.KafkaNotificationsTopic)
	defer func() { _ = publisher.Close() }()

	notifier := notify.NewDispatcher(publisher, configs.NotifyBufferSize, logger)
	notifier.Start()
	defer notifier.Stop()

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, calendar, logger)

	jobManager := jobs.NewJobManager(app.CreateCloseDueOrdersCommandHandler(), configs.AutoCloseCron, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
		AutoCloseCron:           goDotEnvVariable("AUTO_CLOSE_CRON"),
		AutoCloseWorkingHours:   goDotEnvIntVariable("AUTO_CLOSE_WORKING_HOURS"),
		BusinessDayStartHour:    goDotEnvIntVariable("BUSINESS_DAY_START_HOUR"),
		BusinessDayEndHour:      goDotEnvIntVariable("BUSINESS_DAY_END_HOUR"),
		NotifyBufferSize:        goDotEnvIntVariable("NOTIFY_BUFFER_SIZE"),
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

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateApproveOrderCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateRaiseIssueCommandHandler(),
		app.CreateReplyIssueCommandHandler(),
		app.CreateStartArrangingCommandHandler(),
		app.CreateMarkArrangedCommandHandler(),
		app.CreateSendForPackagingCommandHandler(),
		app.CreateStartPackagingCommandHandler(),
		app.CreateDispatchOrderCommandHandler(),
		app.CreateConfirmReceivedCommandHandler(),
		app.CreateReportDeliveryIssuesCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetUnclosedOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
