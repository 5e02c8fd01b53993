// Command indexworker consumes the auction event queue and pushes document
// updates into the search-index service. It replaces the old save-hook index
// sync: the engine publishes after commit, this worker applies the change.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"auction-engine/internal/config"
	"auction-engine/internal/events"
	"auction-engine/utils"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("./config")
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	if cfg.RabbitMQ.URL == "" {
		utils.Fatal("rabbitmq url is required for the index worker", nil)
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		utils.Fatal("failed to connect rabbitmq", map[string]any{"error": err.Error()})
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		utils.Fatal("failed to open channel", map[string]any{"error": err.Error()})
	}
	defer ch.Close()

	if _, err = ch.QueueDeclare(events.EventQueue, true, false, false, false, nil); err != nil {
		utils.Fatal("failed to declare queue", map[string]any{"error": err.Error()})
	}

	// Manual ack so a failed index write requeues the event
	msgs, err := ch.Consume(events.EventQueue, "", false, false, false, false, nil)
	if err != nil {
		utils.Fatal("failed to consume", map[string]any{"error": err.Error()})
	}

	indexer := newIndexer(cfg.SearchIndex)
	utils.Info("index worker started, waiting for events", map[string]any{"queue": events.EventQueue})

	for d := range msgs {
		var evt events.Event
		if err := json.Unmarshal(d.Body, &evt); err != nil {
			utils.Warn("invalid event message, dropping", map[string]any{"error": err.Error()})
			_ = d.Nack(false, false)
			continue
		}
		handleEvent(context.Background(), indexer, evt, d)
	}
}

func handleEvent(ctx context.Context, idx *indexer, evt events.Event, d amqp.Delivery) {
	// Only state changes touch the index; audit-only events are acked through
	if evt.Type != events.TypeAuctionUpdated {
		_ = d.Ack(false)
		return
	}

	if err := idx.indexAuction(ctx, evt.AuctionID, evt.Payload); err != nil {
		utils.Error("index update failed, requeueing", map[string]any{
			"auction_id": evt.AuctionID,
			"error":      err.Error(),
		})
		_ = d.Nack(false, true)
		return
	}

	utils.Info("auction indexed", map[string]any{"auction_id": evt.AuctionID})
	_ = d.Ack(false)
}

type indexer struct {
	baseURL string
	client  *resty.Client
}

func newIndexer(cfg config.SearchIndexConfig) *indexer {
	client := resty.New()
	client.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	return &indexer{baseURL: cfg.BaseURL, client: client}
}

func (i *indexer) indexAuction(ctx context.Context, auctionID string, doc map[string]any) error {
	url := fmt.Sprintf("%s/auctions/_doc/%s", i.baseURL, auctionID)

	resp, err := i.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		Put(url)
	if err != nil {
		return fmt.Errorf("index auction %s: %w", auctionID, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("index auction %s: status %d", auctionID, resp.StatusCode())
	}
	return nil
}
