package database

import (
	"fmt"
	"log/slog"

	"github.com/changhyeonkim/format-check/go-api-server/internal/config"
	"github.com/changhyeonkim/format-check/go-api-server/internal/model"

	"gorm.io/gorm"
)

// Models lists every table in dependency order (referenced tables first)
func Models() []interface{} {
	return []interface{}{
		&model.Member{},
		&model.CheckRecord{},
	}
}

// Migrate executes database migration based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("⏭️  데이터베이스 마이그레이션 비활성화됨",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Warn("🔧 데이터베이스 마이그레이션 시작 - 모든 테이블이 삭제되고 재생성됩니다!",
		"auto_migrate", true, "env", cfg.App.Env, "driver", cfg.Database.Driver,
	)

	if cfg.IsProduction() {
		return fmt.Errorf("🚨 PRODUCTION 환경에서는 DB_AUTO_MIGRATE=true를 사용할 수 없습니다! 데이터 손실 방지를 위해 차단됨")
	}

	slog.Info("🗑️  기존 테이블 삭제 중...")
	if err := dropTables(db); err != nil {
		return fmt.Errorf("테이블 삭제 실패: %w", err)
	}

	slog.Info("📦 새 테이블 생성 중...")
	if err := runAutoMigrate(db); err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	slog.Info("✅ 마이그레이션 완료!")
	return nil
}

// dropTables drops in reverse dependency order. The gorm migrator speaks both Oracle and SQLite.
func dropTables(db *gorm.DB) error {
	models := Models()
	migrator := db.Migrator()

	for i := len(models) - 1; i >= 0; i-- {
		m := models[i]
		if !migrator.HasTable(m) {
			continue
		}
		if err := migrator.DropTable(m); err != nil {
			return fmt.Errorf("%T 삭제 실패: %w", m, err)
		}
		slog.Debug("테이블 삭제 성공", "model", fmt.Sprintf("%T", m))
	}
	return nil
}

// runAutoMigrate creates tables based on model definitions
func runAutoMigrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("%T 마이그레이션 실패: %w", m, err)
		}
		slog.Debug("테이블 생성됨", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
