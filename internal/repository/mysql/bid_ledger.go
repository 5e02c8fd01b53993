package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
)

type bidLedger struct {
	db *gorm.DB
}

// NewBidLedger creates the MySQL-backed bid ledger
func NewBidLedger(db *gorm.DB) repository.BidLedger {
	return &bidLedger{db: db}
}

func (l *bidLedger) Append(ctx context.Context, bid model.Bid) error {
	return l.db.WithContext(ctx).Create(&bid).Error
}

func (l *bidLedger) HighestActive(ctx context.Context, auctionID, excludeBidderID string) (model.Bid, error) {
	query := l.db.WithContext(ctx).
		Where("auction_id = ? AND rejected = ?", auctionID, false)
	if excludeBidderID != "" {
		query = query.Where("bidder_id <> ?", excludeBidderID)
	}

	var b model.Bid
	err := query.Order("amount DESC, created_at ASC").First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Bid{}, fmt.Errorf("highest active bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, err
	}
	return b, nil
}

func (l *bidLedger) MarkRejected(ctx context.Context, auctionID, bidderID string) error {
	return l.db.WithContext(ctx).
		Model(&model.Bid{}).
		Where("auction_id = ? AND bidder_id = ?", auctionID, bidderID).
		Update("rejected", true).Error
}

func (l *bidLedger) HistoryFor(ctx context.Context, auctionID string, includeRejected bool) ([]model.Bid, error) {
	query := l.db.WithContext(ctx).Where("auction_id = ?", auctionID)
	if !includeRejected {
		query = query.Where("rejected = ?", false)
	}

	var bids []model.Bid
	if err := query.Order("created_at DESC").Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}
