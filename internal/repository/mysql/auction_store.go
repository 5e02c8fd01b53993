package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
)

type auctionStore struct {
	db *gorm.DB
}

// NewAuctionStore creates the MySQL-backed auction store
func NewAuctionStore(db *gorm.DB) repository.AuctionStore {
	return &auctionStore{db: db}
}

func (s *auctionStore) Get(ctx context.Context, auctionID string) (model.Auction, error) {
	var a model.Auction
	err := s.db.WithContext(ctx).
		Where("auction_id = ?", auctionID).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, err
	}
	return a, nil
}

// Commit updates the mutable columns guarded by the row version; zero rows
// affected means another writer got there first.
func (s *auctionStore) Commit(ctx context.Context, a model.Auction) error {
	// Map-based updates skip gorm's field serializers, so the rejected set is
	// encoded by hand.
	rejected, err := json.Marshal(a.RejectedBidders)
	if err != nil {
		return fmt.Errorf("commit auction %s: encode rejected bidders: %w", a.AuctionID, err)
	}

	res := s.db.WithContext(ctx).
		Model(&model.Auction{}).
		Where("auction_id = ? AND version = ?", a.AuctionID, a.Version).
		Updates(map[string]any{
			"current_price":     a.CurrentPrice,
			"current_winner_id": a.CurrentWinnerID,
			"status":            a.Status,
			"end_time":          a.EndTime,
			"bid_count":         a.BidCount,
			"rejected_bidders":  string(rejected),
			"version":           gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.WithContext(ctx).
			Model(&model.Auction{}).
			Where("auction_id = ?", a.AuctionID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("commit auction %s: %w", a.AuctionID, auctionerrors.ErrAuctionNotFound)
		}
		return fmt.Errorf("commit auction %s: %w", a.AuctionID, auctionerrors.ErrVersionConflict)
	}
	return nil
}

func (s *auctionStore) ListExpired(ctx context.Context, now time.Time) ([]model.Auction, error) {
	var list []model.Auction
	if err := s.db.WithContext(ctx).
		Where("status = ? AND end_time < ?", model.StatusActive, now).
		Order("auction_id").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
