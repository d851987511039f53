package router

import (
	"github.com/changhyeonkim/format-check/go-api-server/internal/auth"
	"github.com/changhyeonkim/format-check/go-api-server/internal/check"
	"github.com/changhyeonkim/format-check/go-api-server/internal/config"
	"github.com/changhyeonkim/format-check/go-api-server/internal/member"
	"github.com/changhyeonkim/format-check/go-api-server/internal/meta"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET(middleware.HealthPath, metaHandler.Health)

	// repository
	memberRepository := member.NewMemberRepository()
	checkRepository := check.NewCheckRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	checkService := check.NewCheckService(db.DB, checkRepository, cfg.Check)
	authService := auth.NewAuthService(db.DB, memberRepository, tokenManager)
	memberService := member.NewMemberService(db.DB, memberRepository, checkService)

	// handler
	checkHandler := check.NewCheckHandler(checkService)
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService)

	jwt := middleware.JWT(tokenManager)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/signup", authHandler.Signup)
		authV1.POST("/login", authHandler.Login)
		authV1.POST("/refresh", authHandler.Refresh)
	}

	router.GET("/api/v1/rules", checkHandler.ListRules)

	checkV1 := router.Group("/api/v1/checks")
	checkV1.Use(jwt)
	{
		checkV1.POST("", checkHandler.Check)
		checkV1.POST("/batch", checkHandler.CheckBatch)
		checkV1.GET("/history", checkHandler.History)
	}

	memberV1 := router.Group("/api/v1/members")
	memberV1.Use(jwt)
	{
		memberV1.GET("/me", memberHandler.GetProfile)
	}
}
