package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

// AuctionStore is the durable record of one auction's commercial state.
// Commit applies the mutable fields (price, winner, status, end time, bid
// count, rejected set) atomically, but only when the caller's Version still
// matches the stored row; otherwise it fails with ErrVersionConflict and the
// caller must re-read and retry. The store never validates business rules.
type AuctionStore interface {
	Get(ctx context.Context, auctionID string) (model.Auction, error)
	Commit(ctx context.Context, auction model.Auction) error
	ListExpired(ctx context.Context, now time.Time) ([]model.Auction, error)
}

// BidLedger is the append-mostly log of every bid recorded against an
// auction. Entries are immutable except the rejected flag.
type BidLedger interface {
	Append(ctx context.Context, bid model.Bid) error
	HighestActive(ctx context.Context, auctionID, excludeBidderID string) (model.Bid, error)
	MarkRejected(ctx context.Context, auctionID, bidderID string) error
	HistoryFor(ctx context.Context, auctionID string, includeRejected bool) ([]model.Bid, error)
}

// ProxyRegistry holds each bidder's standing maximum-bid authorization per
// auction, one row per (auction, bidder) pair.
type ProxyRegistry interface {
	Upsert(ctx context.Context, auth model.ProxyAuthorization) error
	Deactivate(ctx context.Context, auctionID, bidderID string) error
	ActiveAbove(ctx context.Context, auctionID string, minAmount int64, excludeBidderID string) ([]model.ProxyAuthorization, error)
	Find(ctx context.Context, auctionID, bidderID string) (model.ProxyAuthorization, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore,
// BidLedger and ProxyRegistry, backing tests and single-node deployments.
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction                  // key: auctionID
	bids     map[string][]model.Bid                    // key: auctionID -> append-ordered entries
	proxies  map[string]map[string]model.ProxyAuthorization // key: auctionID -> bidderID
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]model.Auction),
		bids:     make(map[string][]model.Bid),
		proxies:  make(map[string]map[string]model.ProxyAuthorization),
	}
}

// Get returns the auction by id
func (s *MemoryStore) Get(ctx context.Context, auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	a.RejectedBidders = append([]string(nil), a.RejectedBidders...)
	return a, nil
}

// Commit writes the auction's mutable fields if its version is unchanged
func (s *MemoryStore) Commit(ctx context.Context, auction model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.auctions[auction.AuctionID]
	if !ok {
		return fmt.Errorf("commit auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	if stored.Version != auction.Version {
		return fmt.Errorf("commit auction %s: %w", auction.AuctionID, auctionerrors.ErrVersionConflict)
	}

	stored.CurrentPrice = auction.CurrentPrice
	stored.CurrentWinnerID = auction.CurrentWinnerID
	stored.Status = auction.Status
	stored.EndTime = auction.EndTime
	stored.BidCount = auction.BidCount
	stored.RejectedBidders = append([]string(nil), auction.RejectedBidders...)
	stored.Version++
	s.auctions[auction.AuctionID] = stored
	return nil
}

// ListExpired returns auctions still active whose end time has passed
func (s *MemoryStore) ListExpired(ctx context.Context, now time.Time) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var expired []model.Auction
	for _, a := range s.auctions {
		if a.Status == model.StatusActive && a.EndTime.Before(now) {
			a.RejectedBidders = append([]string(nil), a.RejectedBidders...)
			expired = append(expired, a)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i].AuctionID < expired[j].AuctionID })
	return expired, nil
}

// Append records a new ledger entry
func (s *MemoryStore) Append(ctx context.Context, bid model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bids[bid.AuctionID] = append(s.bids[bid.AuctionID], bid)
	return nil
}

// HighestActive returns the highest non-rejected bid for an auction,
// optionally excluding one bidder; ties go to the earlier bid
func (s *MemoryStore) HighestActive(ctx context.Context, auctionID, excludeBidderID string) (model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best model.Bid
	found := false
	for _, b := range s.bids[auctionID] {
		if b.Rejected || (excludeBidderID != "" && b.BidderID == excludeBidderID) {
			continue
		}
		if !found || b.Amount > best.Amount || (b.Amount == best.Amount && b.CreatedAt.Before(best.CreatedAt)) {
			best = b
			found = true
		}
	}
	if !found {
		return model.Bid{}, fmt.Errorf("highest active bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return best, nil
}

// MarkRejected flips the rejected flag on all of one bidder's entries
func (s *MemoryStore) MarkRejected(ctx context.Context, auctionID, bidderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.bids[auctionID]
	for i := range entries {
		if entries[i].BidderID == bidderID {
			entries[i].Rejected = true
		}
	}
	return nil
}

// HistoryFor returns the auction's bids ordered by timestamp descending
func (s *MemoryStore) HistoryFor(ctx context.Context, auctionID string, includeRejected bool) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var history []model.Bid
	for _, b := range s.bids[auctionID] {
		if !includeRejected && b.Rejected {
			continue
		}
		history = append(history, b)
	}
	sort.SliceStable(history, func(i, j int) bool { return history[i].CreatedAt.After(history[j].CreatedAt) })
	return history, nil
}

// Upsert creates or replaces a bidder's authorization, reactivating it.
// An existing row keeps its CreatedAt so equal-max ties stay stable.
func (s *MemoryStore) Upsert(ctx context.Context, auth model.ProxyAuthorization) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byBidder, ok := s.proxies[auth.AuctionID]
	if !ok {
		byBidder = make(map[string]model.ProxyAuthorization)
		s.proxies[auth.AuctionID] = byBidder
	}
	if existing, ok := byBidder[auth.BidderID]; ok {
		auth.ProxyID = existing.ProxyID
		auth.CreatedAt = existing.CreatedAt
	}
	auth.Active = true
	byBidder[auth.BidderID] = auth
	return nil
}

// Deactivate turns off a bidder's standing authorization
func (s *MemoryStore) Deactivate(ctx context.Context, auctionID, bidderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byBidder := s.proxies[auctionID]
	auth, ok := byBidder[bidderID]
	if !ok {
		return fmt.Errorf("deactivate proxy for auction %s bidder %s: %w", auctionID, bidderID, auctionerrors.ErrProxyNotFound)
	}
	auth.Active = false
	byBidder[bidderID] = auth
	return nil
}

// ActiveAbove returns active authorizations with max amount >= minAmount,
// ordered by (max amount desc, created at asc)
func (s *MemoryStore) ActiveAbove(ctx context.Context, auctionID string, minAmount int64, excludeBidderID string) ([]model.ProxyAuthorization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var active []model.ProxyAuthorization
	for _, auth := range s.proxies[auctionID] {
		if !auth.Active || auth.MaxAmount < minAmount {
			continue
		}
		if excludeBidderID != "" && auth.BidderID == excludeBidderID {
			continue
		}
		active = append(active, auth)
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].MaxAmount != active[j].MaxAmount {
			return active[i].MaxAmount > active[j].MaxAmount
		}
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})
	return active, nil
}

// Find returns a bidder's authorization for an auction, active or not
func (s *MemoryStore) Find(ctx context.Context, auctionID, bidderID string) (model.ProxyAuthorization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auth, ok := s.proxies[auctionID][bidderID]
	if !ok {
		return model.ProxyAuthorization{}, fmt.Errorf("get proxy for auction %s bidder %s: %w", auctionID, bidderID, auctionerrors.ErrProxyNotFound)
	}
	return auth, nil
}

// AddAuction seeds an auction row. This method is intended for tests and
// bootstrap seeding only; live mutations go through Commit.
func (s *MemoryStore) AddAuction(a model.Auction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auctions[a.AuctionID] = a
}
