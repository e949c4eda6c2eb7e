package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	clerk "github.com/clerk/clerk-sdk-go/v2"
	gorillaHandlers "github.com/gorilla/handlers"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"wellnexAPI/handlers"
	"wellnexAPI/internal/bootstrap"
	"wellnexAPI/internal/config"
	"wellnexAPI/internal/logging"
	"wellnexAPI/internal/notification"
	"wellnexAPI/internal/predict"
	"wellnexAPI/internal/recommend"
	"wellnexAPI/middleware"
	"wellnexAPI/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	flushLogs := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogFile,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryDSN:        cfg.SentryDSN,
		SentryServerName: "wellnex-api",
	})
	defer flushLogs()

	if err := run(ctx, cfg); err != nil {
		log.Errorf("wellnex api: %s", err)
		flushLogs()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) (err error) {
	middleware.InitPrometheus()

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	firebaseApp, err := bootstrap.FirebaseApp(initCtx, cfg)
	if err != nil {
		return err
	}

	store, err := bootstrap.Store(initCtx, cfg, firebaseApp)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("closing document store...")
		err = multierr.Append(err, store.Close())
	}()

	locker, redisClient, err := bootstrap.Locker(initCtx, cfg)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() {
			err = multierr.Append(err, redisClient.Close())
		}()
	}

	var verifier middleware.TokenVerifier
	switch cfg.AuthProvider {
	case "firebase":
		verifier, err = middleware.NewFirebaseVerifier(initCtx, firebaseApp)
		if err != nil {
			return err
		}
		log.Info("auth: firebase id tokens")
	default:
		clerk.SetKey(cfg.ClerkSecretKey)
		verifier = middleware.ClerkVerifier{}
		log.Info("auth: clerk session tokens")
	}

	dispatcher := services.NewNotificationDispatcher(store, cfg.NotificationWorkers)
	defer dispatcher.Stop()
	if cfg.PushEnabled {
		fcmService, err := notification.NewFCMService(initCtx, firebaseApp)
		if err != nil {
			log.Warnf("could not initialize FCM, push notifications disabled: %s", err)
		} else {
			dispatcher.SetPushProvider(fcmService)
			log.Info("FCM push provider initialized")
		}
	}

	predictClient := predict.NewClient(cfg.PredictionURL, cfg.RemoteTimeout, cfg.RemoteRPS)
	recommendClient := recommend.NewClient(cfg.ChatURL, cfg.RemoteTimeout, cfg.RemoteRPS)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxy)
	go rateLimiter.CleanupVisitors(ctx)

	router := handlers.NewRouter(handlers.RouterDeps{
		Calendar:      services.NewCalendarService(store, locker, dispatcher),
		Routines:      services.NewRoutineService(store),
		Measurements:  services.NewMeasurementService(store),
		Chat:          services.NewChatService(recommendClient, store),
		Predictions:   services.NewPredictionService(predictClient),
		Notifications: services.NewNotificationService(store),
		Verifier:      verifier,
		RateLimiter:   rateLimiter,
		Health:        store.Ping,
		MetricsUser:   cfg.MetricsUser,
		MetricsPass:   cfg.MetricsPass,
		PprofSecret:   cfg.PprofSecret,
	})

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Pprof-Secret"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length"}),
		gorillaHandlers.AllowCredentials(),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      corsHandler(router),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("server shutdown complete")
	return nil
}
