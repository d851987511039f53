package auth

import (
	sharedError "github.com/changhyeonkim/format-check/go-api-server/internal/shared/error"
	"net/http"
)

const (
	incorrectEmailPassword = "INCORRECT_EMAIL_PASSWORD" // errInfo
	invalidRefreshToken    = "INVALID_REFRESH_TOKEN"    // errInfo
)

var (
	ErrInCorrectEmailPassword = sharedError.NewDomainError(incorrectEmailPassword)
	ErrInvalidRefreshToken    = sharedError.NewDomainError(invalidRefreshToken)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectEmailPassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-003",
		Message: "이메일 또는 비밀번호가 일치하지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidRefreshToken, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-004",
		Message: "다시 로그인해 주세요.",
	})
}
