package validator

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll registers every rule of the rule set on gin's binding engine
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	if err := Register(v); err != nil {
		return err
	}

	slog.Info("공통 Validator 등록 완료", "validators", len(ruleSet.sorted))
	return nil
}

// Register adds one tag per rule (Rule.Tag) to v.
//
// Usage:
//
//	type Request struct {
//	    Phone string `json:"phone" binding:"required,rx_phone"`
//	}
func Register(v *validator.Validate) error {
	for _, r := range ruleSet.sorted {
		if err := v.RegisterValidation(r.Tag, fieldFunc(r.Match)); err != nil {
			return fmt.Errorf("%s validator 등록 실패: %w", r.Tag, err)
		}
	}
	return nil
}

// fieldFunc adapts a rule to go-playground. Non-string fields never match.
func fieldFunc(match func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return match(field.String())
	}
}
