package sweeper

import (
	"context"
	"sync/atomic"
	"time"

	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// Sweeper closes auctions whose deadline has passed: sold when a winner
// stands, expired otherwise. The status=active predicate makes repeated
// sweeps idempotent; an auction closed by buy-now or a prior tick no longer
// matches.
type Sweeper struct {
	store     repository.AuctionStore
	publisher events.Publisher
	notifier  events.Notifier
	orders    events.OrderInitiator
	interval  time.Duration
	running   atomic.Bool
	now       func() time.Time
}

// New creates a sweeper with the given tick interval.
func New(store repository.AuctionStore, publisher events.Publisher, notifier events.Notifier, orders events.OrderInitiator, interval time.Duration) *Sweeper {
	if publisher == nil {
		publisher = events.LogPublisher{}
	}
	if notifier == nil {
		notifier = events.LogNotifier{}
	}
	if orders == nil {
		orders = events.LogOrderInitiator{}
	}
	return &Sweeper{
		store:     store,
		publisher: publisher,
		notifier:  notifier,
		orders:    orders,
		interval:  interval,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Run ticks until the context is cancelled. Call it from its own goroutine.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	utils.Info("sweeper started", map[string]any{"interval": s.interval.String()})
	for {
		select {
		case <-ctx.Done():
			utils.Info("sweeper stopped", nil)
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep processes every past-deadline active auction once. A tick that fires
// while the previous one still runs is skipped; overlap would be merely
// wasteful, not unsafe, but there is no reason to double the work.
func (s *Sweeper) Sweep(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		utils.Warn("sweep already in flight, skipping tick", nil)
		return
	}
	defer s.running.Store(false)

	now := s.now()
	expired, err := s.store.ListExpired(ctx, now)
	if err != nil {
		utils.Error("sweep: listing expired auctions failed", map[string]any{"error": err.Error()})
		return
	}
	if len(expired) == 0 {
		return
	}

	utils.Info("sweep: processing ended auctions", map[string]any{"count": len(expired)})
	for _, a := range expired {
		// Failures are isolated per auction; the rest of the batch proceeds
		if err := s.closeAuction(ctx, a); err != nil {
			utils.Error("sweep: closing auction failed", map[string]any{
				"auction_id": a.AuctionID,
				"error":      err.Error(),
			})
		}
	}
}

func (s *Sweeper) closeAuction(ctx context.Context, a model.Auction) error {
	sold := a.CurrentWinnerID != ""
	if sold {
		a.Status = model.StatusSold
	} else {
		a.Status = model.StatusExpired
	}

	// A conflict means the engine just touched this auction (a late bid or
	// buy-now); leave it for the next tick rather than fighting over it.
	if err := s.store.Commit(ctx, a); err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		Type:       events.TypeAuctionUpdated,
		AuctionID:  a.AuctionID,
		OccurredAt: s.now(),
		Payload: map[string]any{
			"current_price": a.CurrentPrice,
			"winner_id":     a.CurrentWinnerID,
			"bid_count":     a.BidCount,
			"status":        string(a.Status),
			"end_time":      a.EndTime,
		},
	})

	if sold {
		s.publish(ctx, events.Event{
			Type:       events.TypeAuctionSold,
			AuctionID:  a.AuctionID,
			OccurredAt: s.now(),
			Payload: map[string]any{
				"winner_id":   a.CurrentWinnerID,
				"final_price": a.CurrentPrice,
				"buy_now":     false,
			},
		})
		s.notifier.Notify(ctx, events.NotifySoldSeller, map[string]any{
			"auction_id":  a.AuctionID,
			"seller_id":   a.SellerID,
			"final_price": a.CurrentPrice,
		})
		s.notifier.Notify(ctx, events.NotifySoldWinner, map[string]any{
			"auction_id":  a.AuctionID,
			"winner_id":   a.CurrentWinnerID,
			"final_price": a.CurrentPrice,
		})
		if err := s.orders.OnAuctionClosed(ctx, a.AuctionID, a.CurrentWinnerID, a.CurrentPrice); err != nil {
			utils.Error("sweep: order initiation failed", map[string]any{
				"auction_id": a.AuctionID,
				"error":      err.Error(),
			})
		}
	} else {
		s.publish(ctx, events.Event{
			Type:       events.TypeAuctionExpired,
			AuctionID:  a.AuctionID,
			OccurredAt: s.now(),
			Payload:    map[string]any{"start_price": a.StartPrice},
		})
		s.notifier.Notify(ctx, events.NotifyExpiredSeller, map[string]any{
			"auction_id": a.AuctionID,
			"seller_id":  a.SellerID,
		})
	}
	return nil
}

func (s *Sweeper) publish(ctx context.Context, evt events.Event) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		utils.Error("sweep: event publish failed", map[string]any{
			"type":       evt.Type,
			"auction_id": evt.AuctionID,
			"error":      err.Error(),
		})
	}
}
