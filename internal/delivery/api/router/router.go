// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/Ulrich-Yao/website/config"
	"github.com/Ulrich-Yao/website/internal/delivery/api/middleware"
	"github.com/Ulrich-Yao/website/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router mounts, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	CategoryHandler    *handler.CategoryHandler
	ProductHandler     *handler.ProductHandler
	NewsHandler        *handler.NewsHandler
	LandingHandler     *handler.LandingHandler
	ProfileHandler     *handler.ProfileHandler
	QuestionHandler    *handler.QuestionHandler
	TransactionHandler *handler.TransactionHandler
	UploadHandler      *handler.UploadHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	categoryHandler    *handler.CategoryHandler
	productHandler     *handler.ProductHandler
	newsHandler        *handler.NewsHandler
	landingHandler     *handler.LandingHandler
	profileHandler     *handler.ProfileHandler
	questionHandler    *handler.QuestionHandler
	transactionHandler *handler.TransactionHandler
	uploadHandler      *handler.UploadHandler
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		categoryHandler:    params.CategoryHandler,
		productHandler:     params.ProductHandler,
		newsHandler:        params.NewsHandler,
		landingHandler:     params.LandingHandler,
		profileHandler:     params.ProfileHandler,
		questionHandler:    params.QuestionHandler,
		transactionHandler: params.TransactionHandler,
		uploadHandler:      params.UploadHandler,
		authMiddleware:     params.AuthMiddleware,
		config:             params.Config,
	}
}

// crudHandlers is the common shape of the per-entity handler sets.
type crudHandlers interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

// RegisterRoutes sets up all the API routes for the application.
// Reads on catalog, content and game resources are public; every mutation
// requires the session cookie. Transactions are private end to end.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes. Login must stay reachable without a session; logout
	// only clears the cookie so it needs no guard either.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Public-read resources
	r.mountResource(api, "/categories", r.categoryHandler)
	r.mountResource(api, "/products", r.productHandler)
	r.mountResource(api, "/news", r.newsHandler)
	r.mountResource(api, "/landing", r.landingHandler)
	r.mountResource(api, "/profiles", r.profileHandler)
	r.mountResource(api, "/questions", r.questionHandler)

	// The payment ledger is admin-only, reads included.
	transactionsGroup := api.Group("/transactions")
	transactionsGroup.Use(r.authMiddleware.Authenticate)
	{
		transactionsGroup.GET("", r.transactionHandler.List)
		transactionsGroup.GET("/:id", r.transactionHandler.Get)
		transactionsGroup.POST("", r.transactionHandler.Create)
		transactionsGroup.PUT("/:id", r.transactionHandler.Update)
		transactionsGroup.DELETE("/:id", r.transactionHandler.Delete)
	}

	// Media uploads feed the photo fields of the other resources.
	uploadsGroup := api.Group("/uploads")
	uploadsGroup.Use(r.authMiddleware.Authenticate)
	{
		uploadsGroup.POST("", r.uploadHandler.Upload)
	}

	// Stored uploads are served straight off disk.
	e.Static(r.config.Uploads.PublicPath, r.config.Uploads.Dir)
}

// mountResource wires the standard CRUD layout: public reads, guarded writes.
func (r *router) mountResource(api *echo.Group, prefix string, h crudHandlers) {
	group := api.Group(prefix)
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	group.POST("", h.Create, r.authMiddleware.Authenticate)
	group.PUT("/:id", h.Update, r.authMiddleware.Authenticate)
	group.DELETE("/:id", h.Delete, r.authMiddleware.Authenticate)
}

// RegisterAdminPages mounts the static dashboard bundle behind the page
// guard. Unauthenticated visitors are bounced to the login page, which is
// the single exempt path.
func (r *router) RegisterAdminPages(e *echo.Echo) {
	adminGroup := e.Group("/admin", r.authMiddleware.GuardPages)
	adminGroup.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root:  r.config.Web.AdminDir,
		HTML5: true,
	}))
}
