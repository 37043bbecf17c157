package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/nekogravitycat/share-it-backend/internal/api"
	"github.com/nekogravitycat/share-it-backend/internal/auth"
	"github.com/nekogravitycat/share-it-backend/internal/booking"
	"github.com/nekogravitycat/share-it-backend/internal/comment"
	"github.com/nekogravitycat/share-it-backend/internal/item"
	"github.com/nekogravitycat/share-it-backend/internal/metrics"
	"github.com/nekogravitycat/share-it-backend/internal/request"
	"github.com/nekogravitycat/share-it-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction    bool
	ProdOrigins     []string
	DBPool          *pgxpool.Pool
	JWTSecret       string
	JWTTTL          time.Duration
	BcryptCost      int
	DefaultPageSize int
	Logger          *zerolog.Logger
	// Clock overrides the wall clock for booking queries; nil uses booking.SystemClock.
	Clock booking.Clock
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router         *gin.Engine
	JWTManager     *auth.JWTManager
	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	CommentService comment.Service
	RequestService request.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	metrics.Register()

	clock := cfg.Clock
	if clock == nil {
		clock = booking.SystemClock
	}

	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Item Module
	// Items check request existence against the request store.
	requestRepo := request.NewPgxRepository(cfg.DBPool)
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	itemService := item.NewService(itemRepo, userService, requestRepo, cfg.Logger)

	// Request Module
	requestService := request.NewService(requestRepo, userService, itemService, cfg.Logger)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, userService, itemService, clock, cfg.Logger)

	// Comment Module
	commentRepo := comment.NewPgxRepository(cfg.DBPool)
	commentService := comment.NewService(commentRepo, userService, itemService, bookingService, cfg.Logger)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		DefaultPageSize: cfg.DefaultPageSize,
		Logger:          cfg.Logger,
		UserService:     userService,
		ItemService:     itemService,
		BookingService:  bookingService,
		CommentService:  commentService,
		RequestService:  requestService,
		JWTManager:      jwtManager,
	})

	return &Container{
		Router:         router,
		JWTManager:     jwtManager,
		UserService:    userService,
		ItemService:    itemService,
		BookingService: bookingService,
		CommentService: commentService,
		RequestService: requestService,
	}
}
