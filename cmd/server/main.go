package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/motorline/dealer-backend/internal/config"
	"github.com/motorline/dealer-backend/internal/database"
	"github.com/motorline/dealer-backend/internal/handler"
	"github.com/motorline/dealer-backend/internal/middleware"
	"github.com/motorline/dealer-backend/internal/queue"
	"github.com/motorline/dealer-backend/internal/repository"
	"github.com/motorline/dealer-backend/internal/router"
	"github.com/motorline/dealer-backend/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Create tables and seed the ticket/receive counters. Existing
	// counters are never reset.
	bootCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Bootstrap(bootCtx, db, cfg.SequenceStart,
		config.TicketSequence, config.ReceiveSequence); err != nil {
		log.Fatalf("schema bootstrap: %v", err)
	}

	// Repositories
	carRepo := repository.NewCarRepo(db)
	clientRepo := repository.NewClientRepo(db)
	userRepo := repository.NewUserRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	imageRepo := repository.NewImageRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	sequenceRepo := repository.NewSequenceRepo(db)

	// Record services
	h := &handler.RecordHandler{
		Cars:       service.NewCarService(carRepo, inventoryRepo),
		Clients:    service.NewClientService(clientRepo, saleRepo),
		Users:      service.NewUserService(userRepo, clientRepo),
		Sales:      service.NewSaleService(saleRepo, sequenceRepo),
		Invoices:   service.NewInvoiceService(invoiceRepo, sequenceRepo),
		Inventory:  service.NewInventoryService(inventoryRepo),
		Comments:   service.NewCommentService(commentRepo),
		Images:     service.NewImageService(imageRepo),
		Payments:   service.NewPaymentService(paymentRepo),
		BcryptCost: cfg.BcryptCost,
	}

	// Redis-backed middleware degrades to no-ops when Redis is down.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response caching disabled")
	}
	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Background consumer writes the document audit log.
	go func() {
		if err := queue.StartDocumentConsumer(); err != nil {
			log.Printf("document consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterRecords(e, h, rateLimit, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
