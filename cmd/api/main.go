package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"autoservice/internal/adapter/http/routes"
	"autoservice/internal/infrastructure/config"
	"autoservice/internal/infrastructure/logger"
	"autoservice/internal/infrastructure/metrics"
	"autoservice/internal/infrastructure/scheduler"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

// @title           Auto Service API
// @version         1.0
// @description     Auto-service shop backend: service requests, revenue shares, ledgers and Telegram OTP login.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)
	metrics.Init()
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := routes.NewDependencies(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	jobs := scheduler.New(time.UTC)
	if cfg.OTP.CodeTTL > 0 {
		if err := jobs.EverySweep("otp-codes", cfg.OTP.SweepInterval, deps.Codes); err != nil {
			log.Fatalf("failed to schedule code sweep: %v", err)
		}
	}
	jobs.StartAsync()
	defer jobs.Stop()

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: routes.NewRouter(deps),
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s", err)
		}
	}()
	log.Infof("server started on %s", cfg.RunAddress)

	<-ctx.Done()

	log.Info("shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	log.Info("server exited properly")
}
