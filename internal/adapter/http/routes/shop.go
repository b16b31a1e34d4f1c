package routes

import (
	"autoservice/internal/adapter/http/handlers"
	"autoservice/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth         = "/auth"
	PathRequests     = "/requests"
	PathWorkers      = "/workers"
	PathArchive      = "/archive"
	PathTransactions = "/transactions"
)

type shopHandlers struct {
	auth         *handlers.AuthHandler
	workers      *handlers.WorkerHandler
	requests     *handlers.ServiceRequestHandler
	archive      *handlers.ArchiveHandler
	transactions *handlers.TransactionHandler
}

func addShopRoutes(rg *gin.RouterGroup, h shopHandlers, tokens middleware.TokenParser) {
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/send-otp", h.auth.SendOTP)
		authGroup.POST("/verify-otp", h.auth.VerifyOTP)
	}

	// Customers submit the request form without an account.
	rg.POST(PathRequests, h.requests.Create)

	authed := rg.Group("", middleware.Authenticate(tokens))
	admin := middleware.RequireAdmin()

	requests := authed.Group(PathRequests)
	{
		requests.GET("", h.requests.List)
		requests.POST("/quick", admin, h.requests.QuickCreate)
		requests.GET("/:id", h.requests.Get)
		requests.PUT("/:id", admin, h.requests.Update)
		requests.PATCH("/:id/status", admin, h.requests.UpdateStatus)
		requests.PATCH("/:id/workers", admin, h.requests.AssignWorkers)
		requests.POST("/:id/complete", admin, h.requests.Complete)
		requests.POST("/:id/confirm", admin, h.requests.Confirm)
		requests.POST("/:id/cancel", admin, h.requests.Cancel)
		requests.GET("/:id/financials", h.requests.ListFinancials)
		requests.POST("/:id/financials", admin, h.requests.AddFinancial)
		requests.GET("/:id/diagnostics", h.requests.GetDiagnostics)
		requests.PUT("/:id/diagnostics", h.requests.SaveDiagnostics)
	}

	workers := authed.Group(PathWorkers)
	{
		workers.GET("", h.workers.List)
		workers.POST("", admin, h.workers.Create)
		workers.GET("/:id", h.workers.Get)
		workers.PUT("/:id", admin, h.workers.Update)
		workers.PATCH("/:id/rate", admin, h.workers.UpdateRate)
		workers.DELETE("/:id", admin, h.workers.Delete)
		workers.GET("/:id/requests", middleware.RequireSelfOrAdmin("id"), h.workers.ListRequests)
		workers.GET("/:id/ledger", middleware.RequireSelfOrAdmin("id"), h.workers.GetLedger)
		workers.POST("/:id/ledger", middleware.RequireSelf("id"), h.workers.AddLedgerEntry)
	}

	archive := authed.Group(PathArchive, admin)
	{
		archive.GET("", h.archive.List)
		archive.GET("/:id", h.archive.Get)
	}

	transactions := authed.Group(PathTransactions, admin)
	{
		transactions.GET("", h.transactions.List)
		transactions.POST("", h.transactions.Create)
	}
}
