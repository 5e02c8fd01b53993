package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
)

// minApprovalPercent is the rating floor for auctions that exclude unrated
// or poorly rated bidders.
const minApprovalPercent = 80.0

const defaultCommitRetries = 3

// BidOutcome is the committed auction state returned from a bid operation.
type BidOutcome struct {
	AuctionID       string              `json:"auction_id"`
	CurrentPrice    int64               `json:"current_price"`
	CurrentWinnerID string              `json:"current_winner_id"`
	BidCount        int                 `json:"bid_count"`
	EndTime         time.Time           `json:"end_time"`
	Status          model.AuctionStatus `json:"status"`
}

// RejectOutcome is the winner state after a rejection cascade.
type RejectOutcome struct {
	RejectedBidderID string `json:"rejected_bidder_id"`
	NewPrice         int64  `json:"new_price"`
	NewWinnerID      string `json:"new_winner_id"`
}

// ProxyBidStatus reports a bidder's own standing authorization.
type ProxyBidStatus struct {
	HasProxyBid bool  `json:"has_proxy_bid"`
	MaxAmount   int64 `json:"max_amount,omitempty"`
}

// PublicBidEntry is one row of the masked public history.
type PublicBidEntry struct {
	CreatedAt  time.Time `json:"created_at"`
	BidderName string    `json:"bidder_name"`
	Amount     int64     `json:"amount"`
}

// PublicBidHistory is the public view of an auction's bids.
type PublicBidHistory struct {
	AuctionID    string           `json:"auction_id"`
	CurrentPrice int64            `json:"current_price"`
	BidCount     int              `json:"bid_count"`
	Entries      []PublicBidEntry `json:"entries"`
}

// SellerBidEntry is one row of the seller's unmasked history.
type SellerBidEntry struct {
	CreatedAt  time.Time `json:"created_at"`
	BidderID   string    `json:"bidder_id"`
	BidderName string    `json:"bidder_name"`
	Amount     int64     `json:"amount"`
	Rejected   bool      `json:"rejected"`
}

// Deps collects the stores and collaborators the engine needs.
type Deps struct {
	Store      repository.AuctionStore
	Ledger     repository.BidLedger
	Registry   repository.ProxyRegistry
	Reputation ReputationProvider
	Directory  UserDirectory
	Config     ConfigProvider
	Publisher  events.Publisher
	Notifier   events.Notifier
	Orders     events.OrderInitiator
	// CommitRetries bounds optimistic-commit attempts per operation;
	// defaults to 3
	CommitRetries int
}

// AuctionService is the bid resolution engine: it accepts proxy maximums,
// decides price and leader, enforces lifecycle rules and runs the rejection
// cascade. All auction mutations go through the store's optimistic commit.
type AuctionService struct {
	store      repository.AuctionStore
	ledger     repository.BidLedger
	registry   repository.ProxyRegistry
	reputation ReputationProvider
	directory  UserDirectory
	config     ConfigProvider
	publisher  events.Publisher
	notifier   events.Notifier
	orders     events.OrderInitiator
	retries    int
	now        func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(deps Deps) *AuctionService {
	if deps.Publisher == nil {
		deps.Publisher = events.LogPublisher{}
	}
	if deps.Notifier == nil {
		deps.Notifier = events.LogNotifier{}
	}
	if deps.Orders == nil {
		deps.Orders = events.LogOrderInitiator{}
	}
	if deps.CommitRetries <= 0 {
		deps.CommitRetries = defaultCommitRetries
	}
	return &AuctionService{
		store:      deps.Store,
		ledger:     deps.Ledger,
		registry:   deps.Registry,
		reputation: deps.Reputation,
		directory:  deps.Directory,
		config:     deps.Config,
		publisher:  deps.Publisher,
		notifier:   deps.Notifier,
		orders:     deps.Orders,
		retries:    deps.CommitRetries,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SubmitProxyBid records or raises a bidder's maximum and runs one
// resolution pass against the other standing authorizations.
func (s *AuctionService) SubmitProxyBid(ctx context.Context, auctionID, bidderID string, maxAmount int64) (BidOutcome, error) {
	return s.placeProxy(ctx, auctionID, bidderID, maxAmount)
}

// UpdateProxyBid replaces the bidder's standing maximum. The new
// authorization is validated like a fresh submission, then a resolution pass
// runs so a raised maximum can take the lead immediately.
func (s *AuctionService) UpdateProxyBid(ctx context.Context, auctionID, bidderID string, newMaxAmount int64) (BidOutcome, error) {
	return s.placeProxy(ctx, auctionID, bidderID, newMaxAmount)
}

func (s *AuctionService) placeProxy(ctx context.Context, auctionID, bidderID string, maxAmount int64) (BidOutcome, error) {
	if auctionID == "" || bidderID == "" {
		return BidOutcome{}, fmt.Errorf("service: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if maxAmount <= 0 {
		return BidOutcome{}, fmt.Errorf("service: %w - non-positive max amount", auctionerrors.ErrInvalidBid)
	}

	a, err := s.store.Get(ctx, auctionID)
	if err != nil {
		return BidOutcome{}, fmt.Errorf("service: %w", err)
	}

	now := s.now()
	if err := s.validateBidder(ctx, a, bidderID, maxAmount, now); err != nil {
		return BidOutcome{}, err
	}

	auth := model.ProxyAuthorization{
		ProxyID:   utils.GenerateID(),
		AuctionID: auctionID,
		BidderID:  bidderID,
		MaxAmount: maxAmount,
		Active:    true,
		CreatedAt: now,
	}
	if err := s.registry.Upsert(ctx, auth); err != nil {
		return BidOutcome{}, fmt.Errorf("service: failed to store proxy bid for %s: %w", bidderID, err)
	}

	return s.resolve(ctx, auctionID, now)
}

// validateBidder checks every precondition before any mutation. Each failure
// maps to a distinct sentinel the handler layer reports as the reject reason.
func (s *AuctionService) validateBidder(ctx context.Context, a model.Auction, bidderID string, maxAmount int64, now time.Time) error {
	if a.Status != model.StatusActive {
		return fmt.Errorf("service: %w", auctionerrors.ErrAuctionNotActive)
	}
	if now.Before(a.StartTime) {
		return fmt.Errorf("service: %w", auctionerrors.ErrAuctionNotStarted)
	}
	if now.After(a.EndTime) {
		return fmt.Errorf("service: %w", auctionerrors.ErrAuctionEnded)
	}
	if bidderID == a.SellerID {
		return fmt.Errorf("service: %w", auctionerrors.ErrSelfBid)
	}
	if a.IsRejected(bidderID) {
		return fmt.Errorf("service: %w", auctionerrors.ErrBidderRejected)
	}

	if !a.AllowUnratedBidders {
		percent, rated, err := s.reputation.ApprovalPercentage(ctx, bidderID)
		if err != nil {
			return fmt.Errorf("service: failed to read reputation for %s: %w", bidderID, err)
		}
		if !rated {
			return fmt.Errorf("service: %w", auctionerrors.ErrBidderUnrated)
		}
		if percent < minApprovalPercent {
			return fmt.Errorf("service: %w - approval %.1f%%", auctionerrors.ErrBidderRatingTooLow, percent)
		}
	}

	if floor := minWinPrice(a); maxAmount < floor {
		return fmt.Errorf("service: %w - minimum is %d", auctionerrors.ErrBidBelowMinimum, floor)
	}
	return nil
}

// resolve runs the single resolution pass with bounded optimistic-commit
// retries. The loser of a commit race re-reads and re-resolves against the
// updated state, so two concurrent bids never both commit against the same
// stale price.
func (s *AuctionService) resolve(ctx context.Context, auctionID string, now time.Time) (BidOutcome, error) {
	for attempt := 0; attempt < s.retries; attempt++ {
		a, err := s.store.Get(ctx, auctionID)
		if err != nil {
			return BidOutcome{}, fmt.Errorf("service: %w", err)
		}
		// A concurrent buy-now or sweep may have closed the auction between
		// the precondition check and this pass; the committed state stands.
		if a.Status != model.StatusActive {
			return outcomeOf(a), nil
		}

		candidates, err := s.registry.ActiveAbove(ctx, auctionID, minWinPrice(a), "")
		if err != nil {
			return BidOutcome{}, fmt.Errorf("service: failed to load authorizations: %w", err)
		}

		decision := resolveProxyBids(a, candidates)
		if !decision.Changed {
			return outcomeOf(a), nil
		}

		previousWinner := a.CurrentWinnerID
		a.CurrentPrice = decision.Price
		a.CurrentWinnerID = decision.WinnerID
		a.BidCount++

		soldNow := a.HasBuyNow() && decision.Price >= a.BuyNowPrice
		if soldNow {
			a.Status = model.StatusSold
			a.EndTime = now
		} else if a.AutoExtend {
			if newEnd, extended := applyAutoExtend(a.EndTime, now, s.config.AutoExtendSettings()); extended {
				a.EndTime = newEnd
			}
		}

		if err := s.store.Commit(ctx, a); err != nil {
			if errors.Is(err, auctionerrors.ErrVersionConflict) {
				continue
			}
			return BidOutcome{}, fmt.Errorf("service: failed to commit auction %s: %w", auctionID, err)
		}

		bid := model.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: auctionID,
			BidderID:  decision.WinnerID,
			Amount:    decision.Price,
			CreatedAt: now,
		}
		if err := s.ledger.Append(ctx, bid); err != nil {
			return BidOutcome{}, fmt.Errorf("service: failed to append ledger entry: %w", err)
		}

		s.afterWinningCommit(ctx, a, previousWinner, soldNow)
		return outcomeOf(a), nil
	}
	return BidOutcome{}, fmt.Errorf("service: %w", auctionerrors.ErrCommitContention)
}

// afterWinningCommit emits the post-commit events for a resolution that
// changed the auction. Collaborator failures are logged, never rolled back.
func (s *AuctionService) afterWinningCommit(ctx context.Context, a model.Auction, previousWinner string, soldNow bool) {
	s.publishUpdated(ctx, a)
	s.publish(ctx, events.Event{
		Type:       events.TypeBidPlaced,
		AuctionID:  a.AuctionID,
		OccurredAt: s.now(),
		Payload: map[string]any{
			"winner_id": a.CurrentWinnerID,
			"amount":    a.CurrentPrice,
			"bid_count": a.BidCount,
		},
	})

	s.notifier.Notify(ctx, events.NotifyBidPlacedSeller, map[string]any{
		"auction_id":    a.AuctionID,
		"seller_id":     a.SellerID,
		"current_price": a.CurrentPrice,
	})
	s.notifier.Notify(ctx, events.NotifyBidPlacedBidder, map[string]any{
		"auction_id":    a.AuctionID,
		"bidder_id":     a.CurrentWinnerID,
		"current_price": a.CurrentPrice,
	})
	if previousWinner != "" && previousWinner != a.CurrentWinnerID {
		s.notifier.Notify(ctx, events.NotifyOutbid, map[string]any{
			"auction_id":    a.AuctionID,
			"bidder_id":     previousWinner,
			"current_price": a.CurrentPrice,
		})
	}

	if soldNow {
		s.publish(ctx, events.Event{
			Type:       events.TypeAuctionSold,
			AuctionID:  a.AuctionID,
			OccurredAt: s.now(),
			Payload: map[string]any{
				"winner_id":   a.CurrentWinnerID,
				"final_price": a.CurrentPrice,
				"buy_now":     true,
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
			utils.Error("order initiation failed", map[string]any{
				"auction_id": a.AuctionID,
				"error":      err.Error(),
			})
		}
	}
}

// CancelProxyBid deactivates the bidder's standing authorization. When the
// cancelling bidder holds the lead, a resolution pass lets a remaining
// authorization take over; their recorded bids stay valid either way.
func (s *AuctionService) CancelProxyBid(ctx context.Context, auctionID, bidderID string) error {
	if auctionID == "" || bidderID == "" {
		return fmt.Errorf("service: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidBid)
	}

	a, err := s.store.Get(ctx, auctionID)
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if err := s.registry.Deactivate(ctx, auctionID, bidderID); err != nil {
		return fmt.Errorf("service: %w", err)
	}

	if a.Status == model.StatusActive && a.CurrentWinnerID == bidderID {
		if _, err := s.resolve(ctx, auctionID, s.now()); err != nil {
			return err
		}
	}
	return nil
}

// GetMyProxyBid reports the caller's own standing authorization.
func (s *AuctionService) GetMyProxyBid(ctx context.Context, auctionID, bidderID string) (ProxyBidStatus, error) {
	if auctionID == "" || bidderID == "" {
		return ProxyBidStatus{}, fmt.Errorf("service: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidBid)
	}

	auth, err := s.registry.Find(ctx, auctionID, bidderID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrProxyNotFound) {
			return ProxyBidStatus{HasProxyBid: false}, nil
		}
		return ProxyBidStatus{}, fmt.Errorf("service: %w", err)
	}
	if !auth.Active {
		return ProxyBidStatus{HasProxyBid: false}, nil
	}
	return ProxyBidStatus{HasProxyBid: true, MaxAmount: auth.MaxAmount}, nil
}

// RejectBidder disqualifies a bidder on the seller's behalf: their ledger
// entries are flagged, their authorization is deactivated so a later pass
// cannot re-elect them, and the winner falls back to the highest remaining
// bid (or to the unsold state when none remains).
func (s *AuctionService) RejectBidder(ctx context.Context, auctionID, bidderID, sellerID string) (RejectOutcome, error) {
	if auctionID == "" || bidderID == "" || sellerID == "" {
		return RejectOutcome{}, fmt.Errorf("service: %w - missing identifier", auctionerrors.ErrInvalidBid)
	}

	for attempt := 0; attempt < s.retries; attempt++ {
		a, err := s.store.Get(ctx, auctionID)
		if err != nil {
			return RejectOutcome{}, fmt.Errorf("service: %w", err)
		}
		if a.SellerID != sellerID {
			return RejectOutcome{}, fmt.Errorf("service: %w", auctionerrors.ErrNotSeller)
		}

		if !a.IsRejected(bidderID) {
			a.RejectedBidders = append(a.RejectedBidders, bidderID)
		}
		if err := s.ledger.MarkRejected(ctx, auctionID, bidderID); err != nil {
			return RejectOutcome{}, fmt.Errorf("service: failed to flag ledger entries: %w", err)
		}
		if err := s.registry.Deactivate(ctx, auctionID, bidderID); err != nil && !errors.Is(err, auctionerrors.ErrProxyNotFound) {
			return RejectOutcome{}, fmt.Errorf("service: failed to deactivate proxy bid: %w", err)
		}

		if a.CurrentWinnerID == bidderID {
			next, err := s.ledger.HighestActive(ctx, auctionID, bidderID)
			switch {
			case err == nil:
				a.CurrentPrice = next.Amount
				a.CurrentWinnerID = next.BidderID
			case errors.Is(err, auctionerrors.ErrNoBids):
				// Auction reverts to unsold, still active
				a.CurrentPrice = 0
				a.CurrentWinnerID = ""
			default:
				return RejectOutcome{}, fmt.Errorf("service: failed to find fallback winner: %w", err)
			}
		}

		if err := s.store.Commit(ctx, a); err != nil {
			if errors.Is(err, auctionerrors.ErrVersionConflict) {
				continue
			}
			return RejectOutcome{}, fmt.Errorf("service: failed to commit auction %s: %w", auctionID, err)
		}

		s.publishUpdated(ctx, a)
		s.publish(ctx, events.Event{
			Type:       events.TypeBidderRejected,
			AuctionID:  auctionID,
			OccurredAt: s.now(),
			Payload: map[string]any{
				"bidder_id":     bidderID,
				"current_price": a.CurrentPrice,
				"winner_id":     a.CurrentWinnerID,
			},
		})
		s.notifier.Notify(ctx, events.NotifyBidderRejected, map[string]any{
			"auction_id": auctionID,
			"bidder_id":  bidderID,
			"seller_id":  sellerID,
		})

		return RejectOutcome{
			RejectedBidderID: bidderID,
			NewPrice:         a.CurrentPrice,
			NewWinnerID:      a.CurrentWinnerID,
		}, nil
	}
	return RejectOutcome{}, fmt.Errorf("service: %w", auctionerrors.ErrCommitContention)
}

// GetPublicBidHistory returns the non-rejected bids, newest first, with
// bidder names masked.
func (s *AuctionService) GetPublicBidHistory(ctx context.Context, auctionID string) (PublicBidHistory, error) {
	if auctionID == "" {
		return PublicBidHistory{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}

	a, err := s.store.Get(ctx, auctionID)
	if err != nil {
		return PublicBidHistory{}, fmt.Errorf("service: %w", err)
	}
	bids, err := s.ledger.HistoryFor(ctx, auctionID, false)
	if err != nil {
		return PublicBidHistory{}, fmt.Errorf("service: failed to load history: %w", err)
	}

	names := make(map[string]string)
	entries := make([]PublicBidEntry, 0, len(bids))
	for _, b := range bids {
		entries = append(entries, PublicBidEntry{
			CreatedAt:  b.CreatedAt,
			BidderName: utils.MaskName(s.lookupName(ctx, names, b.BidderID)),
			Amount:     b.Amount,
		})
	}

	return PublicBidHistory{
		AuctionID:    auctionID,
		CurrentPrice: a.CurrentPrice,
		BidCount:     a.BidCount,
		Entries:      entries,
	}, nil
}

// GetSellerBidHistory returns the full history, rejected entries included and
// names unmasked. Only the auction's seller may call it.
func (s *AuctionService) GetSellerBidHistory(ctx context.Context, auctionID, sellerID string) ([]SellerBidEntry, error) {
	if auctionID == "" || sellerID == "" {
		return nil, fmt.Errorf("service: %w - missing auctionID or sellerID", auctionerrors.ErrInvalidBid)
	}

	a, err := s.store.Get(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if a.SellerID != sellerID {
		return nil, fmt.Errorf("service: %w", auctionerrors.ErrNotSeller)
	}

	bids, err := s.ledger.HistoryFor(ctx, auctionID, true)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load history: %w", err)
	}

	names := make(map[string]string)
	entries := make([]SellerBidEntry, 0, len(bids))
	for _, b := range bids {
		entries = append(entries, SellerBidEntry{
			CreatedAt:  b.CreatedAt,
			BidderID:   b.BidderID,
			BidderName: s.lookupName(ctx, names, b.BidderID),
			Amount:     b.Amount,
			Rejected:   b.Rejected,
		})
	}
	return entries, nil
}

// lookupName resolves a display name through the directory, caching per call
// and degrading to "Unknown" when the collaborator fails.
func (s *AuctionService) lookupName(ctx context.Context, cache map[string]string, userID string) string {
	if name, ok := cache[userID]; ok {
		return name
	}
	name, err := s.directory.DisplayName(ctx, userID)
	if err != nil {
		utils.Warn("directory lookup failed", map[string]any{"user_id": userID, "error": err.Error()})
		name = "Unknown"
	}
	cache[userID] = name
	return name
}

func (s *AuctionService) publishUpdated(ctx context.Context, a model.Auction) {
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
}

func (s *AuctionService) publish(ctx context.Context, evt events.Event) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		utils.Error("event publish failed", map[string]any{
			"type":       evt.Type,
			"auction_id": evt.AuctionID,
			"error":      err.Error(),
		})
	}
}

func outcomeOf(a model.Auction) BidOutcome {
	return BidOutcome{
		AuctionID:       a.AuctionID,
		CurrentPrice:    a.CurrentPrice,
		CurrentWinnerID: a.CurrentWinnerID,
		BidCount:        a.BidCount,
		EndTime:         a.EndTime,
		Status:          a.Status,
	}
}
