package logger_test

import (
	"testing"
	"unicode/utf8"

	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/logger"
	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@gmail.com", logger.MaskEmail("john.doe@gmail.com"))
	assert.Equal(t, "***@example.com", logger.MaskEmail("@example.com"))
	assert.Equal(t, "***@***", logger.MaskEmail("plainaddress"))
	assert.Equal(t, "", logger.MaskEmail(""))
	assert.Equal(t, "김***@example.com", logger.MaskEmail("김철수@example.com"))
}

func TestMaskValue(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "", want: "***"},
		{in: "a", want: "***"},
		{in: "ab", want: "***"},
		{in: "01712345678", want: "01***"},
		{in: "Zoë Smith", want: "Zo***"},
		{in: "●●●●", want: "●●***"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, logger.MaskValue(tc.in), tc.in)
	}
}

func TestMaskEmail_MultiByteKeepsValidUTF8(t *testing.T) {
	masked := logger.MaskEmail("éric@example.com")

	assert.True(t, utf8.ValidString(masked))
	assert.Equal(t, "é***@example.com", masked)
}
