package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/charitybid/auctionengine/internal/auction/application"
	auctionhttp "github.com/charitybid/auctionengine/internal/auction/infra/http"
	auctionpg "github.com/charitybid/auctionengine/internal/auction/infra/repository/postgres"
	bidderpg "github.com/charitybid/auctionengine/internal/bidder/infra/repository/postgres"
	historypg "github.com/charitybid/auctionengine/internal/history/infra/repository/postgres"
	"github.com/charitybid/auctionengine/internal/notification/infra/email"
	notificationpg "github.com/charitybid/auctionengine/internal/notification/infra/repository/postgres"
	"github.com/charitybid/auctionengine/internal/notification/outbox"
	"github.com/charitybid/auctionengine/internal/shared/db"
	"github.com/charitybid/auctionengine/internal/shared/db/migrations"
	"github.com/charitybid/auctionengine/internal/shared/httpserver"
	"github.com/charitybid/auctionengine/internal/shared/logger"
)

func main() {
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting charity auction engine...")

	log.Info("Running database migrations...")
	if err := migrations.RunMigrations(); err != nil {
		log.Fatal("Database migration failed", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.GetPostgresDBPool(ctx)
	if err != nil {
		log.Fatal("Database connection failed", zap.Error(err))
	}
	defer pool.Close()

	txm := db.NewPgxTxManager(pool)

	auctionRepo := auctionpg.NewAuctionRepository(pool)
	bidRepo := auctionpg.NewBidRepository(pool)
	bidderRepo := bidderpg.NewBidderRepository(pool)
	historyRepo := historypg.NewHistoryRepository(pool)
	notificationRepo := notificationpg.NewNotificationRepository(pool)
	outboxRepo := notificationpg.NewOutboxRepository(pool)

	service := application.NewAuctionService(
		application.NewPlaceBidUseCase(txm, auctionRepo, bidRepo, bidderRepo, historyRepo, notificationRepo, outboxRepo),
		application.NewModerateBidUseCase(txm, bidRepo),
		application.NewStartAuctionUseCase(txm, auctionRepo, historyRepo),
		application.NewGetAuctionStateUseCase(auctionRepo, bidRepo),
		application.NewListBidsUseCase(auctionRepo, bidRepo),
	)

	sender := email.NewClient(
		os.Getenv("EMAIL_PROVIDER_URL"),
		os.Getenv("EMAIL_PROVIDER_API_KEY"),
		os.Getenv("EMAIL_FROM"),
	)
	dispatcher := outbox.NewDispatcher(txm, outboxRepo, sender,
		envDuration("OUTBOX_INTERVAL", 5*time.Second),
		envInt("OUTBOX_BATCH_SIZE", 50),
		envInt("OUTBOX_MAX_ATTEMPTS", 5),
	)
	go dispatcher.Run(ctx)

	server := httpserver.NewServer()
	auctionhttp.NewHandler(service).RegisterRoutes(server.App())

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":9000"
	}
	if err := server.Start(addr); err != nil {
		log.Fatal("HTTP server failed", zap.Error(err))
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
