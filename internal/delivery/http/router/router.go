// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"venmito/config"
	"venmito/internal/delivery/http/router/handler"
	"venmito/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PeopleHandler      *handler.PeopleHandler
	PromotionHandler   *handler.PromotionHandler
	TransferHandler    *handler.TransferHandler
	TransactionHandler *handler.TransactionHandler
	Metrics            *metrics.Registry `optional:"true"`
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	peopleHandler      *handler.PeopleHandler
	promotionHandler   *handler.PromotionHandler
	transferHandler    *handler.TransferHandler
	transactionHandler *handler.TransactionHandler
	metrics            *metrics.Registry
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		peopleHandler:      params.PeopleHandler,
		promotionHandler:   params.PromotionHandler,
		transferHandler:    params.TransferHandler,
		transactionHandler: params.TransactionHandler,
		metrics:            params.Metrics,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	people := e.Group("/people")
	{
		people.POST("/upload", r.peopleHandler.Upload)
		people.GET("", r.peopleHandler.List)
	}

	promotions := e.Group("/promotions")
	{
		promotions.POST("/upload", r.promotionHandler.Upload)
		promotions.GET("", r.promotionHandler.List)
	}

	// Transfers resolve parties against people, so upload people first.
	transfers := e.Group("/transfers")
	{
		transfers.POST("/upload", r.transferHandler.Upload)
		transfers.GET("", r.transferHandler.List)
	}

	transactions := e.Group("/transactions")
	{
		transactions.POST("/upload", r.transactionHandler.Upload)
		transactions.GET("", r.transactionHandler.List)
	}

	e.GET("/items", r.transactionHandler.ListItems)
}
