package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carebook/carebook/internal/config"
	"github.com/carebook/carebook/internal/domain/booking"
	"github.com/carebook/carebook/internal/domain/directory"
	"github.com/carebook/carebook/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "carebook-server",
		Short: "Doctor discovery and appointment booking API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(doctorsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func doctorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctors",
		Short: "Print the doctor directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			repo, err := newRepository(cfg)
			if err != nil {
				return err
			}
			doctors, err := repo.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%-4s %-24s %-22s %-20s %s\n", "ID", "NAME", "SPECIALIZATION", "AVAILABILITY", "SLOTS")
			for _, d := range doctors {
				fmt.Printf("%-4d %-24s %-22s %-20s %d\n",
					d.ID, d.Name, d.Specialization, d.Availability, len(d.Schedule))
			}
			return nil
		},
	}
}

func newRepository(cfg *config.Config) (directory.Repository, error) {
	if cfg.DoctorDataFile != "" {
		return directory.NewFileRepository(cfg.DoctorDataFile)
	}
	return directory.NewSeedRepository(), nil
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Doctor directory
	repo, err := newRepository(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load doctor directory")
	}
	dirSvc := directory.NewService(repo)

	// Booking
	store := booking.NewStore(cfg.SessionTTL())
	gateway := booking.NewSimulatedGateway(cfg.BookingDelay(), cfg.BookingSuccessRate)
	bookingSvc := booking.NewService(dirSvc, store, gateway, logger)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	store.StartJanitor(janitorCtx, time.Minute)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))
	// The timeout has to outlive the simulated gateway delay or every
	// submission would 504.
	e.Use(middleware.RequestTimeout(cfg.BookingDelay() + 10*time.Second))

	// API group
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Domain handlers
	directory.NewHandler(dirSvc).RegisterRoutes(apiV1)
	booking.NewHandler(bookingSvc).RegisterRoutes(apiV1)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
