package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/piresc/groomer/internal/pkg/config"
	"github.com/piresc/groomer/internal/pkg/database"
	httpclient "github.com/piresc/groomer/internal/pkg/http"
	"github.com/piresc/groomer/internal/pkg/logger"
	"github.com/piresc/groomer/internal/pkg/models"
	"github.com/piresc/groomer/internal/utils"
	"github.com/piresc/groomer/services/auth"
	authgw "github.com/piresc/groomer/services/auth/gateway/http"
	"github.com/piresc/groomer/services/auth/repository"
	authuc "github.com/piresc/groomer/services/auth/usecase"
	groomergw "github.com/piresc/groomer/services/groomer/gateway/http"
	groomeruc "github.com/piresc/groomer/services/groomer/usecase"
)

func main() {
	configPath := flag.String("config", "config/groomer.env", "path to the .env file loaded when APP_ENV=local")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("api", configs.API.BaseURL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Session persistence
	sessionRepo, closeRepo, err := newSessionRepo(configs)
	if err != nil {
		zapLogger.Fatal("Failed to initialize session storage", logger.Err(err))
	}
	defer closeRepo()

	// Backend client shared by every gateway
	client := httpclient.NewClient(httpclient.Config{
		BaseURL:    configs.API.BaseURL,
		Timeout:    time.Duration(configs.API.TimeoutSeconds) * time.Second,
		MaxRetries: configs.API.MaxRetries,
	}, zapLogger)

	// Gateways
	authGW := authgw.NewAuthHTTPGateway(client)
	groomerGW := groomergw.NewGroomerHTTPGateway(client)

	// UseCases
	sessionStore := authuc.NewSessionStore(authGW, sessionRepo, configs)
	client.SetTokenProvider(sessionStore)
	client.OnUnauthorized(sessionStore.HandleUnauthorized)
	groomerUC := groomeruc.NewGroomerUsecase(groomerGW, sessionStore)

	if _, err := sessionStore.Init(ctx); err != nil {
		zapLogger.Error("Failed to restore session", logger.Err(err))
	}

	country, ok := utils.CountryByCode(configs.OTP.DefaultCountry)
	if !ok {
		country = utils.DefaultCountry()
	}

	flow := authuc.NewOTPFlow(authGW, sessionStore, configs)
	defer flow.Close()

	app := newCLI(os.Stdin, os.Stdout, sessionStore, flow, groomerUC, country)
	app.Run(ctx)

	zapLogger.Info("Shutting down", logger.String("app", configs.App.Name))
}

func newSessionRepo(configs *models.Config) (auth.SessionRepo, func(), error) {
	if configs.Session.Store != "redis" {
		return repository.NewMemorySessionRepo(configs.Session.KeyPrefix), func() {}, nil
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis", logger.Err(err))
		}
	}
	return repository.NewRedisSessionRepo(redisClient, configs.Session.KeyPrefix), closeFn, nil
}
