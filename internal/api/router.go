package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/nekogravitycat/share-it-backend/internal/auth"
	"github.com/nekogravitycat/share-it-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/share-it-backend/internal/booking/http"
	"github.com/nekogravitycat/share-it-backend/internal/comment"
	commentHttp "github.com/nekogravitycat/share-it-backend/internal/comment/http"
	"github.com/nekogravitycat/share-it-backend/internal/item"
	itemHttp "github.com/nekogravitycat/share-it-backend/internal/item/http"
	"github.com/nekogravitycat/share-it-backend/internal/request"
	requestHttp "github.com/nekogravitycat/share-it-backend/internal/request/http"
	"github.com/nekogravitycat/share-it-backend/internal/user"
	userHttp "github.com/nekogravitycat/share-it-backend/internal/user/http"
)

// Config holds everything the router needs.
type Config struct {
	IsProduction    bool
	ProdOrigins     []string
	DefaultPageSize int
	Logger          *zerolog.Logger

	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	CommentService comment.Service
	RequestService request.Service
	JWTManager     *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Metrics, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	// - RequestLogger: Attaches the logger to the request and logs one line per request.
	// - Metrics: Counts requests by route and status.
	r.Use(gin.Recovery(), RequestLogger(cfg.Logger), Metrics())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager, cfg.DefaultPageSize)
	itemHandler := itemHttp.NewHandler(cfg.ItemService, cfg.BookingService, cfg.CommentService, cfg.DefaultPageSize)
	commentHandler := commentHttp.NewHandler(cfg.CommentService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService, cfg.DefaultPageSize)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.DefaultPageSize)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		itemHttp.RegisterRoutes(v1, itemHandler, authMiddleware)
		commentHttp.RegisterRoutes(v1, commentHandler, authMiddleware)
		requestHttp.RegisterRoutes(v1, requestHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
	}

	return r
}
