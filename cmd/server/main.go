package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/changhyeonkim/format-check/go-api-server/internal/bootstrap"
	"github.com/changhyeonkim/format-check/go-api-server/internal/config"
	"github.com/changhyeonkim/format-check/go-api-server/internal/router"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/format-check/go-api-server/internal/shared/validator"
)

func main() {
	env := flag.String("env", "local", "Environment (local|dev|production)")
	flag.Parse()

	logger.Setup(*env)
	slog.Info("서버 초기화 시작", "env", *env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *env); err != nil {
		slog.Error("서버 실행 실패", "error", err)
		stop()
		os.Exit(1)
	}

	slog.Info("서버 종료 완료", "env", *env)
}

// run wires config, database, validators and routes, then serves until ctx is done
func run(ctx context.Context, env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("데이터베이스 종료 실패", "error", err)
		}
	}()

	engine := bootstrap.NewBootstrap(cfg).SetupEngine()

	// rx_* tags must exist before any request DTO is bound
	if err := validator.RegisterAll(); err != nil {
		return fmt.Errorf("공통 Validator 등록 실패: %w", err)
	}

	router.Setup(engine, cfg, db)

	slog.Info("서버 설정 완료",
		"env", cfg.App.Env,
		"db_driver", cfg.Database.Driver,
		"rules", len(validator.Rules()),
	)

	return bootstrap.New(cfg, engine).Run(ctx)
}
