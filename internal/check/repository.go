package check

import (
	"context"

	"github.com/changhyeonkim/format-check/go-api-server/internal/model"
	"gorm.io/gorm"
)

const insertBatchSize = 100

type CheckRepository struct{}

func NewCheckRepository() *CheckRepository {
	return &CheckRepository{}
}

func (r *CheckRepository) Create(ctx context.Context, db *gorm.DB, record *model.CheckRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *CheckRepository) CreateBatch(ctx context.Context, db *gorm.DB, records []*model.CheckRecord) error {
	if len(records) == 0 {
		return nil
	}
	return db.WithContext(ctx).CreateInBatches(records, insertBatchSize).Error
}

// FindRecentByMember returns the member's latest records, newest first
func (r *CheckRepository) FindRecentByMember(ctx context.Context, db *gorm.DB, memberID uint32, limit int) ([]model.CheckRecord, error) {
	var records []model.CheckRecord
	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *CheckRepository) CountByMember(ctx context.Context, db *gorm.DB, memberID uint32) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.CheckRecord{}).
		Where("member_id = ?", memberID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
