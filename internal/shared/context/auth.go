package context

import (
	"strconv"

	"github.com/gin-gonic/gin"

	sharedError "github.com/changhyeonkim/format-check/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/logger"
)

// Context keys set by the JWT middleware
const (
	MemberIDKey    = "member_id"
	MemberEmailKey = "member_email"
)

// GetMemberID returns the authenticated member's ID. The token carries it as a decimal string.
func GetMemberID(c *gin.Context) (uint32, bool) {
	idStr := c.GetString(MemberIDKey)
	if idStr == "" {
		return 0, false
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint32(id), true
}

// GetMemberEmail returns the email claim of the access token, if any
func GetMemberEmail(c *gin.Context) (string, bool) {
	email := c.GetString(MemberEmailKey)
	return email, email != ""
}

// RequireMemberID is GetMemberID for handlers behind the JWT middleware.
// On a miss it has already written the 401 response and aborted; the handler just returns.
func RequireMemberID(c *gin.Context) (uint32, bool) {
	memberID, ok := GetMemberID(c)
	if !ok {
		c.AbortWithStatusJSON(sharedError.Unauthorized.Status, sharedError.Unauthorized)
		logger.FromContext(c.Request.Context()).Error("[API] context에 회원 ID가 존재하지 않습니다.")
		return 0, false
	}
	return memberID, true
}
