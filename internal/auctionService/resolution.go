package auction

import (
	"time"

	model "auction-engine/internal/models"
)

// resolutionDecision is the outcome of one resolution pass over the active
// proxy authorizations. Changed is false when the candidate set is empty and
// the auction state must stay as committed.
type resolutionDecision struct {
	WinnerID string
	Price    int64
	Changed  bool
}

// minWinPrice is the lowest amount that would currently win the auction: the
// start price while no bid stands, otherwise the committed price plus one
// step.
func minWinPrice(a model.Auction) int64 {
	if a.CurrentPrice == 0 {
		return a.StartPrice
	}
	return a.CurrentPrice + a.StepPrice
}

// resolveProxyBids computes the next price and leader from the auction's
// committed state and the active authorizations meeting the floor, already
// sorted by (max amount desc, created at asc).
//
// Price rules:
//   - a single candidate wins at the floor;
//   - a leader being confirmed against newly arrived competition pays just
//     enough to cover the runner-up's maximum;
//   - a new leader pays one step over the runner-up's maximum, capped at
//     their own declared maximum and floored at the minimum winning price.
//
// Every changed decision strictly raises the price, which is what guarantees
// one pass per triggering event terminates.
func resolveProxyBids(a model.Auction, candidates []model.ProxyAuthorization) resolutionDecision {
	if len(candidates) == 0 {
		return resolutionDecision{}
	}

	floor := minWinPrice(a)
	top := candidates[0]

	if len(candidates) == 1 {
		return resolutionDecision{WinnerID: top.BidderID, Price: floor, Changed: true}
	}

	second := candidates[1]
	var price int64
	if a.CurrentWinnerID == top.BidderID {
		price = max(floor, second.MaxAmount)
	} else {
		price = max(floor, min(top.MaxAmount, second.MaxAmount+a.StepPrice))
	}
	return resolutionDecision{WinnerID: top.BidderID, Price: price, Changed: true}
}

// applyAutoExtend is the anti-snipe policy: when the deadline is closer than
// the threshold, it moves to now plus the configured duration. Returns the
// unchanged deadline and false otherwise.
func applyAutoExtend(endTime, now time.Time, settings AutoExtendSettings) (time.Time, bool) {
	if endTime.Sub(now) < settings.Threshold {
		return now.Add(settings.Duration), true
	}
	return endTime, false
}
