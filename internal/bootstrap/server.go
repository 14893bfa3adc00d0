package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/hotelbooking/api"
	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/logger"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const swaggerDocument = "hotel.swagger.json"

// Run starts the HTTP server and blocks until context is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, hotel booking.HotelUseCase, log *zap.Logger) error {
	log = logger.OrNop(log)
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, hotel, log),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("http server started", zap.String("address", cfg.HTTP.Address))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http %s: %w", cfg.HTTP.Address, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		log.Info("http server stopped")
		return nil
	}
}

// NewRouter wires every handler group onto a gin engine.
func NewRouter(cfg *config.Config, hotel booking.HotelUseCase, log *zap.Logger) *gin.Engine {
	log = logger.OrNop(log)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	reservations := api.NewReservationHandler(hotel, log)
	api.NewRoomHandler(hotel).Register(router.Group("/rooms"))
	api.NewCustomerHandler(hotel).Register(router.Group("/customers"))
	reservations.RegisterAvailability(router.Group("/availability"))
	reservations.Register(router.Group("/reservations"))
	api.NewFlowHandler(hotel, log).Register(router.Group("/bookings"))

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/"+swaggerDocument),
		)))
	}
	return router
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// SeedRooms loads the rooms listed in the config into the inventory. Numbers that
// are already present are skipped.
func SeedRooms(ctx context.Context, hotel booking.HotelUseCase, seeds []config.RoomConfig) (int, error) {
	if len(seeds) == 0 {
		return 0, nil
	}
	rooms := make([]domain.Room, 0, len(seeds))
	for _, seed := range seeds {
		roomType, err := domain.ParseRoomType(seed.Type)
		if err != nil {
			return 0, fmt.Errorf("room %q: %w", seed.Number, err)
		}
		room, err := domain.NewRoom(seed.Number, seed.PriceCents, roomType)
		if err != nil {
			return 0, err
		}
		rooms = append(rooms, room)
	}
	return hotel.AddRooms(ctx, rooms)
}
