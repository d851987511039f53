package member

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// CheckCounter reports how many checks a member has made
type CheckCounter interface {
	CountByMember(ctx context.Context, memberID uint32) (int64, error)
}

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
	checkCounter     CheckCounter
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository, checkCounter CheckCounter) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
		checkCounter:     checkCounter,
	}
}

// GetProfile returns the member with the number of checks recorded against them
func (s *MemberService) GetProfile(ctx context.Context, memberID uint32) (*GetProfileResponse, error) {
	member, err := s.memberRepository.FindByID(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("회원 조회 실패 memberID=%d: %w", memberID, err)
	}

	count, err := s.checkCounter.CountByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("검증 횟수 조회 실패: %w", err)
	}

	return &GetProfileResponse{
		ID:          member.ID,
		Name:        member.Name,
		Email:       member.Email,
		PhoneNumber: member.PhoneNumber,
		CheckCount:  count,
	}, nil
}
