package events

import (
	"context"

	"auction-engine/utils"
)

// LogPublisher writes events to the structured log. Used when no broker is
// configured and as the test double's reference behavior.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, evt Event) error {
	utils.Info("domain event", map[string]any{
		"type":       evt.Type,
		"auction_id": evt.AuctionID,
		"payload":    evt.Payload,
	})
	return nil
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, kind string, payload map[string]any) {
	utils.Info("notification", map[string]any{
		"kind":    kind,
		"payload": payload,
	})
}

// LogOrderInitiator records order initiations without a broker.
type LogOrderInitiator struct{}

func (LogOrderInitiator) OnAuctionClosed(ctx context.Context, auctionID, winnerID string, finalPrice int64) error {
	utils.Info("order initiated", map[string]any{
		"auction_id":  auctionID,
		"winner_id":   winnerID,
		"final_price": finalPrice,
	})
	return nil
}
