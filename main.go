package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	auction "auction-engine/internal/auctionService"
	"auction-engine/internal/config"
	"auction-engine/internal/events"
	"auction-engine/internal/reputation"
	"auction-engine/internal/repository"
	"auction-engine/internal/repository/mysql"
	"auction-engine/internal/server"
	"auction-engine/internal/sweeper"
	"auction-engine/utils"
)

func main() {
	// .env is optional, real deployments configure via environment
	_ = godotenv.Load()

	cfg, err := config.Load("./config")
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}

	store, ledger, registry := buildStores(cfg)
	publisher, notifier, orders := buildEventSinks(cfg)

	userClient := reputation.NewClient(cfg.UserService.BaseURL, time.Duration(cfg.UserService.TimeoutSeconds)*time.Second)

	auctionSvc := auction.NewAuctionService(auction.Deps{
		Store:      store,
		Ledger:     ledger,
		Registry:   registry,
		Reputation: userClient,
		Directory:  userClient,
		Config: auction.ConfigProviderFunc(func() auction.AutoExtendSettings {
			return auction.AutoExtendSettings{
				Threshold: cfg.Auction.AutoExtendThreshold(),
				Duration:  cfg.Auction.AutoExtendDuration(),
			}
		}),
		Publisher:     publisher,
		Notifier:      notifier,
		Orders:        orders,
		CommitRetries: cfg.Auction.CommitRetries,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sweep := sweeper.New(store, publisher, notifier, orders, cfg.Auction.SweepInterval())
	go sweep.Run(ctx)

	router := server.SetupRouter(auctionSvc)

	utils.Info("starting auction server", map[string]any{"addr": cfg.Server.Addr()})
	if err := router.Run(cfg.Server.Addr()); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// buildStores selects the configured storage backend.
func buildStores(cfg *config.Config) (repository.AuctionStore, repository.BidLedger, repository.ProxyRegistry) {
	switch cfg.Storage.Driver {
	case "mysql":
		db, err := mysql.Open(cfg.Storage.DSN)
		if err != nil {
			utils.Fatal("failed to open mysql storage", map[string]any{"error": err.Error()})
		}
		return mysql.NewAuctionStore(db), mysql.NewBidLedger(db), mysql.NewProxyRegistry(db)
	default:
		mem := repository.NewMemoryStore()
		return mem, mem, mem
	}
}

// buildEventSinks connects the broker when configured, otherwise events and
// notifications only reach the structured log.
func buildEventSinks(cfg *config.Config) (events.Publisher, events.Notifier, events.OrderInitiator) {
	if cfg.RabbitMQ.URL == "" {
		utils.Warn("rabbitmq not configured, events go to the log only", nil)
		return events.LogPublisher{}, events.LogNotifier{}, events.LogOrderInitiator{}
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		utils.Fatal("failed to connect rabbitmq", map[string]any{"error": err.Error()})
	}
	return events.NewAMQPPublisher(conn, events.EventQueue),
		events.NewAMQPNotifier(conn),
		events.NewAMQPOrderInitiator(conn)
}
