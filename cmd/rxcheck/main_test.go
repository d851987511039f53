package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/validator"
)

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_List(t *testing.T) {
	for _, flag := range []string{"--list", "-l"} {
		t.Run(flag, func(t *testing.T) {
			// When
			code, out, _ := runCLI(flag)

			// Then
			assert.Equal(t, exitValid, code)
			assert.True(t, strings.HasPrefix(out, "RULE"))
			for _, r := range validator.Rules() {
				assert.Contains(t, out, r.Name)
			}
		})
	}
}

func TestRun_Check(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  []string
	}{
		{
			name:     "모든 값이 유효",
			args:     []string{"email", "john.doe@example.com", "a@b.io"},
			wantCode: exitValid,
			wantOut:  []string{"valid\tjohn.doe@example.com", "valid\ta@b.io"},
		},
		{
			name:     "하나라도 유효하지 않으면 1",
			args:     []string{"phone", "01712345678", "01212345678"},
			wantCode: exitInvalid,
			wantOut:  []string{"valid\t01712345678", "invalid\t01212345678"},
		},
		{
			name:     "대시로 시작하는 값은 플래그가 아님",
			args:     []string{"integer", "-5", "42"},
			wantCode: exitInvalid,
			wantOut:  []string{"invalid\t-5", "valid\t42"},
		},
		{
			name:     "규칙 뒤의 -l 도 값으로 검사",
			args:     []string{"code", "-l"},
			wantCode: exitInvalid,
			wantOut:  []string{"invalid\t-l"},
		},
		{
			name:     "빈 값은 유효하지 않음",
			args:     []string{"gender", ""},
			wantCode: exitInvalid,
			wantOut:  []string{"invalid\t"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runCLI(tt.args...)

			assert.Equal(t, tt.wantCode, code)
			for _, line := range tt.wantOut {
				assert.Contains(t, out, line)
			}
		})
	}
}

func TestRun_UsageErrors(t *testing.T) {
	t.Run("인자 없음", func(t *testing.T) {
		code, out, errOut := runCLI()

		assert.Equal(t, exitUsage, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "Usage:")
	})

	t.Run("값 없음", func(t *testing.T) {
		code, _, errOut := runCLI("email")

		assert.Equal(t, exitUsage, code)
		assert.Contains(t, errOut, "Usage:")
	})

	t.Run("알 수 없는 규칙", func(t *testing.T) {
		code, out, errOut := runCLI("postcode", "12345")

		assert.Equal(t, exitUsage, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, `unknown rule "postcode"`)
	})

	t.Run("알 수 없는 플래그", func(t *testing.T) {
		code, _, _ := runCLI("-verbose")

		assert.Equal(t, exitUsage, code)
	})
}
