package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shopcredit/creditledger/internal/adapter/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	accountHandler *AccountHandler,
	orderHandler *OrderHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		accounts := api.Group("/accounts")
		{
			accounts.POST("", accountHandler.CreateAccount)
			accounts.GET("/:id", accountHandler.GetAccount)
			accounts.PUT("/:id/profile", accountHandler.UpdateProfile)
			accounts.GET("/:id/credit", accountHandler.AvailableCredit)
			accounts.GET("/:id/ledger", accountHandler.Statement)
			accounts.GET("/:id/overdue", accountHandler.OverdueInstallments)
			accounts.GET("/:id/orders", orderHandler.ListOrdersByAccount)
			accounts.POST("/:id/suggestions", accountHandler.SuggestCreditLimit)
			accounts.GET("/:id/suggestions/current", accountHandler.CurrentCreditSuggestion)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrdersByStatus)
			orders.GET("/:number", orderHandler.GetOrder)
			orders.POST("/:number/approve", orderHandler.ApproveOrder)
			orders.POST("/:number/dispatch", orderHandler.DispatchOrder)
			orders.POST("/:number/deliver", orderHandler.DeliverOrder)
			orders.POST("/:number/cancel", orderHandler.CancelOrder)
			orders.GET("/:number/installments", orderHandler.PendingInstallments)
			orders.GET("/:number/default", orderHandler.OrderInDefault)
			orders.POST("/:number/installments/:installment/payments", orderHandler.RecordPayment)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
