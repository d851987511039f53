package check

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/changhyeonkim/format-check/go-api-server/internal/config"
	"github.com/changhyeonkim/format-check/go-api-server/internal/model"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/validator"
	"gorm.io/gorm"
)

type CheckService struct {
	db              *gorm.DB
	checkRepository *CheckRepository
	limits          config.CheckConfig
}

func NewCheckService(db *gorm.DB, checkRepository *CheckRepository, limits config.CheckConfig) *CheckService {
	return &CheckService{
		db:              db,
		checkRepository: checkRepository,
		limits:          limits,
	}
}

// ListRules returns the rule catalogue sorted by name
func (s *CheckService) ListRules() *ListRulesResponse {
	rules := validator.Rules()
	response := &ListRulesResponse{Rules: make([]RuleResponse, 0, len(rules))}
	for _, r := range rules {
		response.Rules = append(response.Rules, RuleResponse{
			Name:        r.Name,
			Tag:         r.Tag,
			Pattern:     r.Pattern,
			Description: r.Description,
		})
	}
	return response
}

// Check evaluates one value and records the outcome for the member
func (s *CheckService) Check(ctx context.Context, memberID uint32, request *CheckRequest) (*CheckResponse, error) {
	log := logger.FromContext(ctx)

	record, err := s.evaluate(memberID, request)
	if err != nil {
		log.Warn("검증 요청 거부", "rule", request.Rule, "error", err)
		return nil, err
	}

	if err := s.checkRepository.Create(ctx, s.db, record); err != nil {
		log.Error("검증 이력 저장 실패", "error", err)
		return nil, fmt.Errorf("create check record: %w", err)
	}

	log.Debug("검증 완료", "rule", record.Rule, "valid", record.Valid, "value", record.Preview)

	return &CheckResponse{Rule: record.Rule, Valid: record.Valid}, nil
}

// CheckBatch evaluates every item before writing anything, so one bad item rejects the whole batch
func (s *CheckService) CheckBatch(ctx context.Context, memberID uint32, request *BatchCheckRequest) (*BatchCheckResponse, error) {
	log := logger.FromContext(ctx)

	if len(request.Items) > s.limits.MaxBatchSize {
		log.Warn("배치 크기 초과", "items", len(request.Items), "max", s.limits.MaxBatchSize)
		return nil, fmt.Errorf("batch of %d items: %w", len(request.Items), ErrBatchTooLarge)
	}

	records := make([]*model.CheckRecord, 0, len(request.Items))
	response := &BatchCheckResponse{Results: make([]CheckResponse, 0, len(request.Items))}
	for i := range request.Items {
		record, err := s.evaluate(memberID, &request.Items[i])
		if err != nil {
			log.Warn("배치 검증 요청 거부", "index", i, "rule", request.Items[i].Rule, "error", err)
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		records = append(records, record)
		response.Results = append(response.Results, CheckResponse{Rule: record.Rule, Valid: record.Valid})
		if record.Valid {
			response.Passed++
		} else {
			response.Failed++
		}
	}

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return s.checkRepository.CreateBatch(ctx, tx, records)
	})
	if err != nil {
		log.Error("배치 검증 이력 저장 실패", "error", err)
		return nil, fmt.Errorf("create check records: %w", err)
	}

	log.Info("배치 검증 완료", "items", len(records), "passed", response.Passed, "failed", response.Failed)

	return response, nil
}

// History returns the member's most recent checks, newest first
func (s *CheckService) History(ctx context.Context, memberID uint32) (*HistoryResponse, error) {
	records, err := s.checkRepository.FindRecentByMember(ctx, s.db, memberID, s.limits.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("검증 이력 조회 실패: %w", err)
	}

	response := &HistoryResponse{Items: make([]HistoryItem, 0, len(records))}
	for _, r := range records {
		response.Items = append(response.Items, HistoryItem{
			ID:        r.ID,
			Rule:      r.Rule,
			Valid:     r.Valid,
			Preview:   r.Preview,
			CreatedAt: r.CreatedAt,
		})
	}
	return response, nil
}

// CountByMember reports how many checks a member has made
func (s *CheckService) CountByMember(ctx context.Context, memberID uint32) (int64, error) {
	return s.checkRepository.CountByMember(ctx, s.db, memberID)
}

func (s *CheckService) evaluate(memberID uint32, request *CheckRequest) (*model.CheckRecord, error) {
	if utf8.RuneCountInString(request.Value) > s.limits.MaxValueLength {
		return nil, fmt.Errorf("value of rule %s: %w", request.Rule, ErrValueTooLong)
	}

	valid, err := validator.Check(request.Rule, request.Value)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrUnknownRule)
	}

	return model.NewCheckRecord(memberID, request.Rule, valid, preview(request.Rule, request.Value)), nil
}

// secretRules never expose any part of the checked value
var secretRules = map[string]struct{}{
	validator.RulePassword:   {},
	validator.RuleSSN:        {},
	validator.RuleCreditCard: {},
}

// preview is the masked form of a value stored in history and logs
func preview(rule, value string) string {
	if _, ok := secretRules[rule]; ok {
		return logger.MaskHidden
	}
	return logger.MaskValue(value)
}
