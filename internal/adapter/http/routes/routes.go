package routes

import (
	"context"
	"fmt"
	"slices"

	_ "autoservice/docs"
	"autoservice/internal/adapter/http/handlers"
	"autoservice/internal/adapter/http/middleware"
	"autoservice/internal/adapter/persistence/repository"
	"autoservice/internal/infrastructure/auth"
	"autoservice/internal/infrastructure/config"
	"autoservice/internal/infrastructure/database"
	"autoservice/internal/infrastructure/otpstore"
	"autoservice/internal/infrastructure/telegram"
	"autoservice/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies holds everything the HTTP surface needs.
type Dependencies struct {
	Config      *config.Config
	Tokens      middleware.TokenParser
	Codes       *otpstore.Store
	OTP         usecase.IOTPUseCase
	Workers     usecase.IWorkerUseCase
	Requests    usecase.IServiceRequestUseCase
	Ledger      usecase.ILedgerUseCase
	Diagnostics usecase.IDiagnosticUseCase
	Archive     usecase.IArchiveUseCase
}

// NewDependencies connects to DynamoDB and wires repositories into use cases.
func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	if cfg.DynamoDB.AutoCreate {
		if err := database.EnsureTables(ctx, ddb, cfg.Tables); err != nil {
			return nil, fmt.Errorf("ensure tables: %w", err)
		}
	}

	checklist, err := config.LoadChecklist(cfg.ChecklistFile)
	if err != nil {
		return nil, err
	}

	notifier, err := telegram.NewNotifier(cfg.Telegram)
	if err != nil {
		return nil, err
	}

	t := cfg.Tables
	workerRepo := repository.NewWorkerDynamoRepository(ddb, t.Workers)
	adminRepo := repository.NewAdminDynamoRepository(ddb, t.Admins)
	requestRepo := repository.NewServiceRequestDynamoRepository(ddb, t.Requests)
	archiveRepo := repository.NewArchiveDynamoRepository(ddb, t.ArchiveRequests)
	financialRepo := repository.NewFinancialDynamoRepository(ddb, t.Financials)
	transactionRepo := repository.NewTransactionDynamoRepository(ddb, t.Transactions)
	workerLedgerRepo := repository.NewWorkerLedgerDynamoRepository(ddb, t.WorkerFinancials)
	diagnosticRepo := repository.NewDiagnosticDynamoRepository(ddb, t.Diagnostics)
	writer := repository.NewDynamoAtomicWriter(ddb, t)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTLifetime)
	codes := otpstore.New(cfg.OTP.CodeTTL)

	return &Dependencies{
		Config:      cfg,
		Tokens:      tokens,
		Codes:       codes,
		OTP:         usecase.NewOTPUseCase(workerRepo, adminRepo, codes, notifier, tokens, nil),
		Workers:     usecase.NewWorkerUseCase(workerRepo),
		Requests:    usecase.NewServiceRequestUseCase(requestRepo, workerRepo, financialRepo, writer),
		Ledger:      usecase.NewLedgerUseCase(workerRepo, financialRepo, transactionRepo, workerLedgerRepo, writer),
		Diagnostics: usecase.NewDiagnosticUseCase(diagnosticRepo, requestRepo, checklist),
		Archive:     usecase.NewArchiveUseCase(archiveRepo),
	}, nil
}

// NewRouter builds the gin engine with middlewares, swagger, metrics and the
// /v1 API.
func NewRouter(deps *Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps.Config)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, shopHandlers{
		auth:         handlers.NewAuthHandler(deps.OTP),
		workers:      handlers.NewWorkerHandler(deps.Workers, deps.Requests, deps.Ledger),
		requests:     handlers.NewServiceRequestHandler(deps.Requests, deps.Ledger, deps.Diagnostics),
		archive:      handlers.NewArchiveHandler(deps.Archive),
		transactions: handlers.NewTransactionHandler(deps.Ledger),
	}, deps.Tokens)

	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Prometheus())
	router.Use(cors.New(corsConfig(cfg)))
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if cfg == nil || len(cfg.CORSOrigins) == 0 || slices.Contains(cfg.CORSOrigins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = cfg.CORSOrigins
	c.AllowCredentials = true
	log.Infof("[http][routes] cors origins=%v", cfg.CORSOrigins)
	return c
}
