package check

import (
	"net/http"

	sharedError "github.com/changhyeonkim/format-check/go-api-server/internal/shared/error"
)

const (
	unknownRule   = "UNKNOWN_RULE"    // errInfo
	valueTooLong  = "VALUE_TOO_LONG"  // errInfo
	batchTooLarge = "BATCH_TOO_LARGE" // errInfo
)

var (
	ErrUnknownRule   = sharedError.NewDomainError(unknownRule)
	ErrValueTooLong  = sharedError.NewDomainError(valueTooLong)
	ErrBatchTooLarge = sharedError.NewDomainError(batchTooLarge)
)

func init() {
	sharedError.RegisterDomainErrorResponse(unknownRule, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "CHECK-001",
		Message: "존재하지 않는 검증 규칙입니다.",
	})

	sharedError.RegisterDomainErrorResponse(valueTooLong, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "CHECK-002",
		Message: "검증할 값이 너무 깁니다.",
	})

	sharedError.RegisterDomainErrorResponse(batchTooLarge, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "CHECK-003",
		Message: "한 번에 검증할 수 있는 항목 수를 초과했습니다.",
	})
}
