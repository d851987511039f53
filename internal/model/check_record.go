package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckRecord is one rule evaluation made through the check API.
// The checked value itself is never stored, only a masked preview.
type CheckRecord struct {
	ID        string    `gorm:"column:id;type:VARCHAR2(36);primaryKey"`
	MemberID  uint32    `gorm:"column:member_id;not null;index:idx_check_record_member_created,priority:1"`
	Rule      string    `gorm:"column:rule;type:VARCHAR2(50);not null"`
	Valid     bool      `gorm:"column:valid;not null"`
	Preview   string    `gorm:"column:preview;type:VARCHAR2(64);not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_check_record_member_created,priority:2"`
}

// TableName specifies the table name for CheckRecord
func (*CheckRecord) TableName() string {
	return "check_record"
}

// BeforeCreate assigns a UUID primary key
func (r *CheckRecord) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// NewCheckRecord creates a record for a single evaluation
func NewCheckRecord(memberID uint32, rule string, valid bool, preview string) *CheckRecord {
	return &CheckRecord{
		MemberID: memberID,
		Rule:     rule,
		Valid:    valid,
		Preview:  preview,
	}
}
