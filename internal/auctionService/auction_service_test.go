package auction

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type stubReputation struct {
	percent float64
	rated   bool
	err     error
}

func (s stubReputation) ApprovalPercentage(context.Context, string) (float64, bool, error) {
	return s.percent, s.rated, s.err
}

type stubDirectory map[string]string

func (d stubDirectory) DisplayName(_ context.Context, userID string) (string, error) {
	name, ok := d[userID]
	if !ok {
		return "", errors.New("unknown user")
	}
	return name, nil
}

type capturingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *capturingPublisher) Publish(_ context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *capturingPublisher) has(eventType string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, evt := range p.events {
		if evt.Type == eventType {
			return true
		}
	}
	return false
}

type capturingNotifier struct {
	mu    sync.Mutex
	kinds []string
}

func (n *capturingNotifier) Notify(_ context.Context, kind string, _ map[string]any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.kinds = append(n.kinds, kind)
}

func (n *capturingNotifier) has(kind string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, k := range n.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

type capturingOrders struct {
	mu         sync.Mutex
	calls      int
	lastWinner string
	lastPrice  int64
}

func (o *capturingOrders) OnAuctionClosed(_ context.Context, _, winnerID string, finalPrice int64) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	o.lastWinner = winnerID
	o.lastPrice = finalPrice
	return nil
}

// engineFixture wires the service against the in-memory stores with a frozen,
// manually advanced clock.
type engineFixture struct {
	svc      *AuctionService
	mem      *repository.MemoryStore
	pub      *capturingPublisher
	notifier *capturingNotifier
	orders   *capturingOrders
	clock    time.Time
}

func newEngineFixture(t *testing.T, rep ReputationProvider) *engineFixture {
	t.Helper()

	f := &engineFixture{
		mem:      repository.NewMemoryStore(),
		pub:      &capturingPublisher{},
		notifier: &capturingNotifier{},
		orders:   &capturingOrders{},
		clock:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if rep == nil {
		rep = stubReputation{percent: 95, rated: true}
	}
	f.svc = NewAuctionService(Deps{
		Store:      f.mem,
		Ledger:     f.mem,
		Registry:   f.mem,
		Reputation: rep,
		Directory:  stubDirectory{"userA": "Alice Nguyen", "userB": "Bob Tran", "userC": "Carol Le"},
		Config: ConfigProviderFunc(func() AutoExtendSettings {
			return AutoExtendSettings{Threshold: 5 * time.Minute, Duration: 10 * time.Minute}
		}),
		Publisher: f.pub,
		Notifier:  f.notifier,
		Orders:    f.orders,
	})
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func (f *engineFixture) seed(mutate func(a *model.Auction)) model.Auction {
	a := model.Auction{
		AuctionID:  "auction1",
		SellerID:   "seller1",
		CategoryID: "cat1",
		StartPrice: 50,
		StepPrice:  5,
		StartTime:  f.clock.Add(-time.Hour),
		EndTime:    f.clock.Add(24 * time.Hour),
		Status:     model.StatusActive,
	}
	if mutate != nil {
		mutate(&a)
	}
	f.mem.AddAuction(a)
	return a
}

func (f *engineFixture) advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

func (f *engineFixture) auction(t *testing.T) model.Auction {
	t.Helper()
	a, err := f.mem.Get(context.Background(), "auction1")
	require.NoError(t, err)
	return a
}

func TestSubmitProxyBid_Preconditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		reputation ReputationProvider
		mutate     func(a *model.Auction)
		auctionID  string
		bidderID   string
		maxAmount  int64
		wantErr    error
	}{
		{
			name:      "empty_bidder_id",
			auctionID: "auction1",
			bidderID:  "",
			maxAmount: 100,
			wantErr:   auctionerrors.ErrInvalidBid,
		},
		{
			name:      "non_positive_max_amount",
			auctionID: "auction1",
			bidderID:  "userA",
			maxAmount: 0,
			wantErr:   auctionerrors.ErrInvalidBid,
		},
		{
			name:      "auction_not_found",
			auctionID: "missing",
			bidderID:  "userA",
			maxAmount: 100,
			wantErr:   auctionerrors.ErrAuctionNotFound,
		},
		{
			name:      "auction_not_active",
			mutate:    func(a *model.Auction) { a.Status = model.StatusSold },
			auctionID: "auction1",
			bidderID:  "userA",
			maxAmount: 100,
			wantErr:   auctionerrors.ErrAuctionNotActive,
		},
		{
			name:      "auction_not_started",
			mutate:    func(a *model.Auction) { a.StartTime = a.StartTime.Add(2 * time.Hour) },
			auctionID: "auction1",
			bidderID:  "userA",
			maxAmount: 100,
			wantErr:   auctionerrors.ErrAuctionNotStarted,
		},
		{
			name:      "auction_ended",
			mutate:    func(a *model.Auction) { a.EndTime = a.StartTime.Add(time.Minute) },
			auctionID: "auction1",
			bidderID:  "userA",
			maxAmount: 100,
			wantErr:   auctionerrors.ErrAuctionEnded,
		},
		{
			name:      "seller_bids_own_auction",
			auctionID: "auction1",
			bidderID:  "seller1",
			maxAmount: 100,
			wantErr:   auctionerrors.ErrSelfBid,
		},
		{
			name:      "rejected_bidder",
			mutate:    func(a *model.Auction) { a.RejectedBidders = []string{"userA"} },
			auctionID: "auction1",
			bidderID:  "userA",
			maxAmount: 100,
			wantErr:   auctionerrors.ErrBidderRejected,
		},
		{
			name:       "unrated_bidder",
			reputation: stubReputation{rated: false},
			auctionID:  "auction1",
			bidderID:   "userA",
			maxAmount:  100,
			wantErr:    auctionerrors.ErrBidderUnrated,
		},
		{
			name:       "rating_below_floor",
			reputation: stubReputation{percent: 60, rated: true},
			auctionID:  "auction1",
			bidderID:   "userA",
			maxAmount:  100,
			wantErr:    auctionerrors.ErrBidderRatingTooLow,
		},
		{
			name:       "unrated_bidder_allowed_when_opted_in",
			reputation: stubReputation{rated: false},
			mutate:     func(a *model.Auction) { a.AllowUnratedBidders = true },
			auctionID:  "auction1",
			bidderID:   "userA",
			maxAmount:  100,
			wantErr:    nil,
		},
		{
			name:      "max_below_minimum_winning_price",
			auctionID: "auction1",
			bidderID:  "userA",
			maxAmount: 49,
			wantErr:   auctionerrors.ErrBidBelowMinimum,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newEngineFixture(t, tc.reputation)
			f.seed(tc.mutate)

			_, err := f.svc.SubmitProxyBid(context.Background(), tc.auctionID, tc.bidderID, tc.maxAmount)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)

			// Rejections must not mutate the auction
			if tc.auctionID == "auction1" {
				a := f.auction(t)
				require.Equal(t, int64(0), a.CurrentPrice)
				require.Zero(t, a.BidCount)
			}
		})
	}
}

func TestSubmitProxyBid_SingleBidderOpensAtStartPrice(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)

	out, err := f.svc.SubmitProxyBid(context.Background(), "auction1", "userA", 100)
	require.NoError(t, err)

	require.Equal(t, int64(50), out.CurrentPrice)
	require.Equal(t, "userA", out.CurrentWinnerID)
	require.Equal(t, 1, out.BidCount)
	require.Equal(t, model.StatusActive, out.Status)

	bids, err := f.mem.HistoryFor(context.Background(), "auction1", true)
	require.NoError(t, err)
	require.Len(t, bids, 1)
	require.Equal(t, int64(50), bids[0].Amount)
	require.Equal(t, "userA", bids[0].BidderID)

	status, err := f.svc.GetMyProxyBid(context.Background(), "auction1", "userA")
	require.NoError(t, err)
	require.True(t, status.HasProxyBid)
	require.Equal(t, int64(100), status.MaxAmount)

	require.True(t, f.pub.has(events.TypeAuctionUpdated))
	require.True(t, f.pub.has(events.TypeBidPlaced))
	require.True(t, f.notifier.has(events.NotifyBidPlacedSeller))
	require.True(t, f.notifier.has(events.NotifyBidPlacedBidder))
}

func TestSubmitProxyBid_SecondPriceStep(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)
	ctx := context.Background()

	out, err := f.svc.SubmitProxyBid(ctx, "auction1", "userB", 80)
	require.NoError(t, err)
	require.Equal(t, int64(50), out.CurrentPrice)
	require.Equal(t, "userB", out.CurrentWinnerID)

	f.advance(time.Minute)

	// The stronger maximum takes the lead one step over the runner-up
	out, err = f.svc.SubmitProxyBid(ctx, "auction1", "userA", 100)
	require.NoError(t, err)
	require.Equal(t, int64(85), out.CurrentPrice)
	require.Equal(t, "userA", out.CurrentWinnerID)
	require.Equal(t, 2, out.BidCount)

	require.True(t, f.notifier.has(events.NotifyOutbid))
}

func TestSubmitProxyBid_LeaderConfirmedAgainstLowerMaximum(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)
	ctx := context.Background()

	_, err := f.svc.SubmitProxyBid(ctx, "auction1", "userA", 100)
	require.NoError(t, err)

	f.advance(time.Minute)

	// The challenger loses but drives the price up to their full maximum
	out, err := f.svc.SubmitProxyBid(ctx, "auction1", "userB", 80)
	require.NoError(t, err)
	require.Equal(t, "userA", out.CurrentWinnerID)
	require.Equal(t, int64(80), out.CurrentPrice)
	require.Equal(t, 2, out.BidCount)
	require.False(t, f.notifier.has(events.NotifyOutbid))
}

func TestSubmitProxyBid_EqualMaximumsEarlierAuthorizationWins(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)
	ctx := context.Background()

	_, err := f.svc.SubmitProxyBid(ctx, "auction1", "userA", 100)
	require.NoError(t, err)

	f.advance(time.Minute)

	out, err := f.svc.SubmitProxyBid(ctx, "auction1", "userB", 100)
	require.NoError(t, err)
	require.Equal(t, "userA", out.CurrentWinnerID)
	require.Equal(t, int64(100), out.CurrentPrice)
}

func TestSubmitProxyBid_BuyNowClosesImmediately(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(func(a *model.Auction) {
		a.BuyNowPrice = 90
		a.AutoExtend = true
	})
	ctx := context.Background()

	_, err := f.svc.SubmitProxyBid(ctx, "auction1", "userB", 95)
	require.NoError(t, err)

	f.advance(time.Minute)

	out, err := f.svc.SubmitProxyBid(ctx, "auction1", "userA", 100)
	require.NoError(t, err)

	require.Equal(t, model.StatusSold, out.Status)
	require.Equal(t, "userA", out.CurrentWinnerID)
	require.Equal(t, int64(100), out.CurrentPrice)
	// Closure pins the end time to the winning moment, auto-extend is skipped
	require.Equal(t, f.clock, out.EndTime)

	require.Equal(t, 1, f.orders.calls)
	require.Equal(t, "userA", f.orders.lastWinner)
	require.Equal(t, int64(100), f.orders.lastPrice)
	require.True(t, f.pub.has(events.TypeAuctionSold))
	require.True(t, f.notifier.has(events.NotifySoldSeller))
	require.True(t, f.notifier.has(events.NotifySoldWinner))

	// The auction is closed, later bids bounce
	_, err = f.svc.SubmitProxyBid(ctx, "auction1", "userC", 200)
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotActive)
}

func TestSubmitProxyBid_AutoExtendNearDeadline(t *testing.T) {
	t.Parallel()

	t.Run("inside_threshold", func(t *testing.T) {
		f := newEngineFixture(t, nil)
		f.seed(func(a *model.Auction) {
			a.AutoExtend = true
			a.EndTime = f.clock.Add(3 * time.Minute)
		})

		out, err := f.svc.SubmitProxyBid(context.Background(), "auction1", "userA", 100)
		require.NoError(t, err)
		require.Equal(t, f.clock.Add(10*time.Minute), out.EndTime)
	})

	t.Run("outside_threshold", func(t *testing.T) {
		f := newEngineFixture(t, nil)
		end := f.clock.Add(30 * time.Minute)
		f.seed(func(a *model.Auction) {
			a.AutoExtend = true
			a.EndTime = end
		})

		out, err := f.svc.SubmitProxyBid(context.Background(), "auction1", "userA", 100)
		require.NoError(t, err)
		require.Equal(t, end, out.EndTime)
	})

	t.Run("disabled", func(t *testing.T) {
		f := newEngineFixture(t, nil)
		end := f.clock.Add(3 * time.Minute)
		f.seed(func(a *model.Auction) {
			a.EndTime = end
		})

		out, err := f.svc.SubmitProxyBid(context.Background(), "auction1", "userA", 100)
		require.NoError(t, err)
		require.Equal(t, end, out.EndTime)
	})
}

func TestUpdateProxyBid_RaisedMaximumTakesLead(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)
	ctx := context.Background()

	_, err := f.svc.SubmitProxyBid(ctx, "auction1", "userA", 100)
	require.NoError(t, err)
	f.advance(time.Minute)

	out, err := f.svc.SubmitProxyBid(ctx, "auction1", "userB", 80)
	require.NoError(t, err)
	require.Equal(t, "userA", out.CurrentWinnerID)
	require.Equal(t, int64(80), out.CurrentPrice)
	f.advance(time.Minute)

	out, err = f.svc.UpdateProxyBid(ctx, "auction1", "userB", 120)
	require.NoError(t, err)
	require.Equal(t, "userB", out.CurrentWinnerID)
	require.Equal(t, int64(105), out.CurrentPrice) // min(120, 100+5)

	status, err := f.svc.GetMyProxyBid(ctx, "auction1", "userB")
	require.NoError(t, err)
	require.Equal(t, int64(120), status.MaxAmount)
}

func TestCancelProxyBid(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)
	ctx := context.Background()

	_, err := f.svc.SubmitProxyBid(ctx, "auction1", "userA", 100)
	require.NoError(t, err)
	f.advance(time.Minute)

	out, err := f.svc.SubmitProxyBid(ctx, "auction1", "userB", 60)
	require.NoError(t, err)
	require.Equal(t, "userA", out.CurrentWinnerID)
	require.Equal(t, int64(60), out.CurrentPrice)

	// A non-winner cancelling changes nothing but their own authorization
	require.NoError(t, f.svc.CancelProxyBid(ctx, "auction1", "userB"))
	a := f.auction(t)
	require.Equal(t, int64(60), a.CurrentPrice)
	require.Equal(t, "userA", a.CurrentWinnerID)

	status, err := f.svc.GetMyProxyBid(ctx, "auction1", "userB")
	require.NoError(t, err)
	require.False(t, status.HasProxyBid)

	// The winner cancelling stops future raises, but their recorded bids
	// stand: with no remaining authorization at the floor the committed
	// price and winner stay as they are
	require.NoError(t, f.svc.CancelProxyBid(ctx, "auction1", "userA"))
	a = f.auction(t)
	require.Equal(t, int64(60), a.CurrentPrice)
	require.Equal(t, "userA", a.CurrentWinnerID)

	status, err = f.svc.GetMyProxyBid(ctx, "auction1", "userA")
	require.NoError(t, err)
	require.False(t, status.HasProxyBid)

	// Cancelling an authorization that never existed reports not found
	err = f.svc.CancelProxyBid(ctx, "auction1", "ghost")
	require.ErrorIs(t, err, auctionerrors.ErrProxyNotFound)
}

func TestRejectBidder_RequiresSeller(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)

	_, err := f.svc.RejectBidder(context.Background(), "auction1", "userA", "not-the-seller")
	require.ErrorIs(t, err, auctionerrors.ErrNotSeller)
}

func TestRejectBidder_WinnerFallsBackToHighestRemaining(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)
	ctx := context.Background()

	_, err := f.svc.SubmitProxyBid(ctx, "auction1", "userB", 70)
	require.NoError(t, err)
	f.advance(time.Minute)

	out, err := f.svc.SubmitProxyBid(ctx, "auction1", "userA", 100)
	require.NoError(t, err)
	require.Equal(t, "userA", out.CurrentWinnerID)
	require.Equal(t, int64(75), out.CurrentPrice)

	rejected, err := f.svc.RejectBidder(ctx, "auction1", "userA", "seller1")
	require.NoError(t, err)
	require.Equal(t, "userA", rejected.RejectedBidderID)
	require.Equal(t, "userB", rejected.NewWinnerID)
	require.Equal(t, int64(50), rejected.NewPrice)

	a := f.auction(t)
	require.Equal(t, []string{"userA"}, a.RejectedBidders)
	require.Equal(t, "userB", a.CurrentWinnerID)
	require.Equal(t, int64(50), a.CurrentPrice)
	require.Equal(t, model.StatusActive, a.Status)

	require.True(t, f.pub.has(events.TypeBidderRejected))
	require.True(t, f.notifier.has(events.NotifyBidderRejected))

	// The rejected bidder cannot come back
	_, err = f.svc.SubmitProxyBid(ctx, "auction1", "userA", 200)
	require.ErrorIs(t, err, auctionerrors.ErrBidderRejected)

	// A later resolution pass must not re-elect the rejected maximum: the
	// standing winner is confirmed against the newcomer, not against userA
	f.advance(time.Minute)
	out, err = f.svc.SubmitProxyBid(ctx, "auction1", "userC", 60)
	require.NoError(t, err)
	require.Equal(t, "userB", out.CurrentWinnerID)
	require.Equal(t, int64(60), out.CurrentPrice)
}

func TestRejectBidder_NoFallbackRevertsToUnsold(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)
	ctx := context.Background()

	_, err := f.svc.SubmitProxyBid(ctx, "auction1", "userA", 100)
	require.NoError(t, err)

	rejected, err := f.svc.RejectBidder(ctx, "auction1", "userA", "seller1")
	require.NoError(t, err)
	require.Equal(t, int64(0), rejected.NewPrice)
	require.Equal(t, "", rejected.NewWinnerID)

	a := f.auction(t)
	require.Equal(t, model.StatusActive, a.Status)
	require.Equal(t, int64(0), a.CurrentPrice)
	require.Equal(t, "", a.CurrentWinnerID)

	// Rejection is idempotent
	rejected, err = f.svc.RejectBidder(ctx, "auction1", "userA", "seller1")
	require.NoError(t, err)
	require.Equal(t, int64(0), rejected.NewPrice)
	require.Equal(t, []string{"userA"}, f.auction(t).RejectedBidders)
}

func TestSubmitProxyBid_PriceIsMonotonic(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)
	ctx := context.Background()

	submissions := []struct {
		bidder string
		max    int64
	}{
		{"userA", 60},
		{"userB", 70},
		{"userC", 90},
		{"userA", 95},
		{"userB", 200},
	}

	var last int64
	for _, sub := range submissions {
		out, err := f.svc.SubmitProxyBid(ctx, "auction1", sub.bidder, sub.max)
		require.NoError(t, err)
		require.GreaterOrEqual(t, out.CurrentPrice, last)
		last = out.CurrentPrice
		f.advance(time.Minute)
	}
}

func TestSubmitProxyBid_ConcurrentCommits(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = f.svc.SubmitProxyBid(ctx, "auction1", "userA", 100)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = f.svc.SubmitProxyBid(ctx, "auction1", "userB", 90)
	}()
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	// Whatever the interleaving, the loser of the commit race re-resolved
	// against committed state: the strongest maximum leads and the price
	// never exceeds it
	a := f.auction(t)
	require.Equal(t, "userA", a.CurrentWinnerID)
	require.GreaterOrEqual(t, a.CurrentPrice, int64(90))
	require.LessOrEqual(t, a.CurrentPrice, int64(100))

	bids, err := f.mem.HistoryFor(ctx, "auction1", true)
	require.NoError(t, err)
	require.Equal(t, a.BidCount, len(bids))

	var highest int64
	for _, b := range bids {
		highest = max(highest, b.Amount)
	}
	require.Equal(t, a.CurrentPrice, highest)
}

func TestSubmitProxyBid_CommitContentionExhaustsRetries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := repository.NewMockAuctionStore(ctrl)
	ledger := repository.NewMockBidLedger(ctrl)
	registry := repository.NewMockProxyRegistry(ctrl)

	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	a := model.Auction{
		AuctionID:  "auction1",
		SellerID:   "seller1",
		StartPrice: 50,
		StepPrice:  5,
		StartTime:  clock.Add(-time.Hour),
		EndTime:    clock.Add(24 * time.Hour),
		Status:     model.StatusActive,
	}

	// One read for the preconditions, then one per resolution attempt
	store.EXPECT().Get(gomock.Any(), "auction1").Return(a, nil).Times(4)
	registry.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	registry.EXPECT().ActiveAbove(gomock.Any(), "auction1", int64(50), "").
		Return([]model.ProxyAuthorization{{BidderID: "userA", MaxAmount: 100, Active: true}}, nil).
		Times(3)
	store.EXPECT().Commit(gomock.Any(), gomock.Any()).
		Return(auctionerrors.ErrVersionConflict).
		Times(3)

	svc := NewAuctionService(Deps{
		Store:      store,
		Ledger:     ledger,
		Registry:   registry,
		Reputation: stubReputation{percent: 95, rated: true},
		Directory:  stubDirectory{},
		Config: ConfigProviderFunc(func() AutoExtendSettings {
			return AutoExtendSettings{Threshold: 5 * time.Minute, Duration: 10 * time.Minute}
		}),
	})
	svc.now = func() time.Time { return clock }

	_, err := svc.SubmitProxyBid(context.Background(), "auction1", "userA", 100)
	require.ErrorIs(t, err, auctionerrors.ErrCommitContention)
}

func TestGetPublicBidHistory_MasksNamesAndHidesRejected(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)
	ctx := context.Background()

	_, err := f.svc.SubmitProxyBid(ctx, "auction1", "userB", 70)
	require.NoError(t, err)
	f.advance(time.Minute)
	_, err = f.svc.SubmitProxyBid(ctx, "auction1", "userA", 100)
	require.NoError(t, err)
	_, err = f.svc.RejectBidder(ctx, "auction1", "userA", "seller1")
	require.NoError(t, err)

	history, err := f.svc.GetPublicBidHistory(ctx, "auction1")
	require.NoError(t, err)

	require.Equal(t, "auction1", history.AuctionID)
	require.Equal(t, int64(50), history.CurrentPrice)
	require.Len(t, history.Entries, 1)
	require.Equal(t, "****Tran", history.Entries[0].BidderName)
	require.Equal(t, int64(50), history.Entries[0].Amount)
}

func TestGetSellerBidHistory(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)
	ctx := context.Background()

	_, err := f.svc.SubmitProxyBid(ctx, "auction1", "userB", 70)
	require.NoError(t, err)
	f.advance(time.Minute)
	_, err = f.svc.SubmitProxyBid(ctx, "auction1", "userA", 100)
	require.NoError(t, err)
	_, err = f.svc.RejectBidder(ctx, "auction1", "userA", "seller1")
	require.NoError(t, err)

	_, err = f.svc.GetSellerBidHistory(ctx, "auction1", "someone-else")
	require.ErrorIs(t, err, auctionerrors.ErrNotSeller)

	entries, err := f.svc.GetSellerBidHistory(ctx, "auction1", "seller1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first, names unmasked, rejected entries flagged but present
	require.Equal(t, "userA", entries[0].BidderID)
	require.Equal(t, "Alice Nguyen", entries[0].BidderName)
	require.True(t, entries[0].Rejected)
	require.Equal(t, "userB", entries[1].BidderID)
	require.Equal(t, "Bob Tran", entries[1].BidderName)
	require.False(t, entries[1].Rejected)
}

func TestGetMyProxyBid_NoAuthorization(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(t, nil)
	f.seed(nil)

	status, err := f.svc.GetMyProxyBid(context.Background(), "auction1", "userA")
	require.NoError(t, err)
	require.False(t, status.HasProxyBid)
	require.Zero(t, status.MaxAmount)
}
