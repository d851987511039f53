package validator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	sharedError "github.com/changhyeonkim/format-check/go-api-server/internal/shared/error"
)

// ToErrorResponse converts gin binding/validator errors into a ValidationFailed response
// whose message describes the first failing field.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return nil, false
	}

	resp := sharedError.ValidationFailed
	resp.Message = message(validationErrors[0])
	return &resp, true
}

func message(fe validator.FieldError) string {
	// rx_* tags: the rule description tells the client what format was expected
	if rule, ok := LookupTag(fe.Tag()); ok {
		return fmt.Sprintf("'%s' 필드 형식이 올바르지 않습니다. (%s)", fe.Field(), rule.Description)
	}

	unit := "자"
	switch fe.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		unit = "개"
	}

	switch fe.Tag() {
	case "required":
		return "필수 항목을 입력해 주세요."
	case "min", "gte":
		return fmt.Sprintf("'%s' 필드는 최소 %s%s 이상이어야 합니다.", fe.Field(), fe.Param(), unit)
	case "max", "lte":
		return fmt.Sprintf("'%s' 필드는 최대 %s%s까지 입력 가능합니다.", fe.Field(), fe.Param(), unit)
	case "oneof":
		return fmt.Sprintf("'%s' 필드는 [%s] 중 하나여야 합니다.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("'%s' 필드가 올바르지 않습니다.", fe.Field())
	}
}
