package member_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/changhyeonkim/format-check/go-api-server/internal/check"
	"github.com/changhyeonkim/format-check/go-api-server/internal/member"
	"github.com/changhyeonkim/format-check/go-api-server/internal/model"
	sharedError "github.com/changhyeonkim/format-check/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T, memberID string) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	cfg := testutil.NewTestConfig()
	checkService := check.NewCheckService(db, check.NewCheckRepository(), cfg.Check)
	memberService := member.NewMemberService(db, member.NewMemberRepository(), checkService)
	memberHandler := member.NewMemberHandler(memberService)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/members/me", testutil.AuthenticatedAs(memberID), memberHandler.GetProfile)

	return router, db
}

func TestGetProfile_WithCheckCount(t *testing.T) {
	// Given: a member with two recorded checks
	router, db := setupTestEnvironment(t, "1")

	m := model.NewMember("Test User", "test@example.com", "01712345678", "hashed")
	require.NoError(t, db.Create(m).Error)
	require.Equal(t, uint32(1), m.ID)
	require.NoError(t, db.Create(model.NewCheckRecord(m.ID, "email", true, "a@***")).Error)
	require.NoError(t, db.Create(model.NewCheckRecord(m.ID, "ssn", false, "66***")).Error)

	// When
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/me",
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	var response member.GetProfileResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "test@example.com", response.Email)
	assert.Equal(t, "01712345678", response.PhoneNumber)
	assert.Equal(t, int64(2), response.CheckCount)
}

func TestGetProfile_NotFound(t *testing.T) {
	router, _ := setupTestEnvironment(t, "99")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/me",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestGetProfile_InvalidMemberID(t *testing.T) {
	router, _ := setupTestEnvironment(t, "not-a-number")

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/me",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestMemberRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	repo := member.NewMemberRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, db, model.NewMember("Kim", "kim@example.com", "01712345678", "hashed")))

	t.Run("ExistsByEmail", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, db, "kim@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, db, "lee@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate email is a domain error", func(t *testing.T) {
		err := repo.Create(ctx, db, model.NewMember("Kim", "kim@example.com", "01812345678", "hashed"))

		assert.ErrorIs(t, err, member.ErrMemberAlreadyExists)
	})

	t.Run("missing member is a domain error", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, db, "lee@example.com")
		assert.ErrorIs(t, err, member.ErrMemberNotFound)

		_, err = repo.FindByID(ctx, db, 42)
		assert.ErrorIs(t, err, member.ErrMemberNotFound)
	})
}
