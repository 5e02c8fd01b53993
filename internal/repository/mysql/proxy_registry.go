package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
)

type proxyRegistry struct {
	db *gorm.DB
}

// NewProxyRegistry creates the MySQL-backed proxy registry
func NewProxyRegistry(db *gorm.DB) repository.ProxyRegistry {
	return &proxyRegistry{db: db}
}

// Upsert inserts or replaces the (auction, bidder) authorization. The unique
// index drives the conflict clause; created_at is left untouched on update so
// the earliest authorization keeps winning equal-max ties.
func (r *proxyRegistry) Upsert(ctx context.Context, auth model.ProxyAuthorization) error {
	auth.Active = true
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "auction_id"}, {Name: "bidder_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"max_amount", "active"}),
		}).
		Create(&auth).Error
}

func (r *proxyRegistry) Deactivate(ctx context.Context, auctionID, bidderID string) error {
	res := r.db.WithContext(ctx).
		Model(&model.ProxyAuthorization{}).
		Where("auction_id = ? AND bidder_id = ?", auctionID, bidderID).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("deactivate proxy for auction %s bidder %s: %w", auctionID, bidderID, auctionerrors.ErrProxyNotFound)
	}
	return nil
}

func (r *proxyRegistry) ActiveAbove(ctx context.Context, auctionID string, minAmount int64, excludeBidderID string) ([]model.ProxyAuthorization, error) {
	query := r.db.WithContext(ctx).
		Where("auction_id = ? AND active = ? AND max_amount >= ?", auctionID, true, minAmount)
	if excludeBidderID != "" {
		query = query.Where("bidder_id <> ?", excludeBidderID)
	}

	var list []model.ProxyAuthorization
	if err := query.Order("max_amount DESC, created_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *proxyRegistry) Find(ctx context.Context, auctionID, bidderID string) (model.ProxyAuthorization, error) {
	var auth model.ProxyAuthorization
	err := r.db.WithContext(ctx).
		Where("auction_id = ? AND bidder_id = ?", auctionID, bidderID).
		First(&auth).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProxyAuthorization{}, fmt.Errorf("find proxy for auction %s bidder %s: %w", auctionID, bidderID, auctionerrors.ErrProxyNotFound)
	}
	if err != nil {
		return model.ProxyAuthorization{}, err
	}
	return auth, nil
}
