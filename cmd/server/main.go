package main

import (
	"log"
	"net/http"

	_ "onlydevs/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"onlydevs/internal/cache"
	"onlydevs/internal/call"
	"onlydevs/internal/config"
	"onlydevs/internal/db"
	"onlydevs/internal/handler"
	"onlydevs/internal/payment"
	"onlydevs/internal/router"
	"onlydevs/internal/service"
	"onlydevs/internal/store"
)

// @title OnlyDevs Gig API
// @version 1.0
// @description Bounty-based debugging marketplace: gigs, mentors, and bounty payouts.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	var gigStore store.Store
	switch cfg.StoreDriver {
	case config.StoreDriverMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("database init: %v", err)
		}
		gigStore, err = store.NewGormStore(gormDB)
		if err != nil {
			log.Fatalf("store init: %v", err)
		}
	case config.StoreDriverFile:
		gigStore = store.NewFileStore(cfg.StorePath)
	default:
		log.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// External capabilities
	paymentProvider := payment.NewSandboxProvider(cfg.PayoutRecipient)
	callProvider := call.NewHuddleProvider("")

	// Initialize services
	gigService := service.NewGigService(gigStore, cacheClient, nil)
	payoutService := service.NewPayoutService(gigService, paymentProvider)
	callService := service.NewCallService(gigService, callProvider)

	// Initialize handlers
	gigHandler := handler.NewGigHandler(gigService)
	payoutHandler := handler.NewPayoutHandler(payoutService, paymentProvider)
	callHandler := handler.NewCallHandler(callService)

	// Register routes
	router.Register(e, cfg, gigHandler, payoutHandler, callHandler)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
