package member

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/changhyeonkim/format-check/go-api-server/internal/model"
)

// MemberRepository is stateless; every call takes the handle to run on (plain db or tx).
type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (m *MemberRepository) ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var ids []uint32
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("email = ?", email).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}

	return len(ids) > 0, nil
}

// Create inserts member. A unique email violation comes back as ErrMemberAlreadyExists.
func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	err := db.WithContext(ctx).Create(member).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("email unique constraint: %w", ErrMemberAlreadyExists)
	}
	return err
}

// FindByEmail returns ErrMemberNotFound when no row matches
func (m *MemberRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Member, error) {
	return m.findOne(ctx, db, "email = ?", email)
}

// FindByID returns ErrMemberNotFound when no row matches
func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Member, error) {
	return m.findOne(ctx, db, "id = ?", id)
}

func (m *MemberRepository) findOne(ctx context.Context, db *gorm.DB, query string, arg any) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where(query, arg).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("member %v: %w", arg, ErrMemberNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}
