// Package app は設定から各部品を組み立てる（cmd/api と cmd/export で共有）。
package app

import (
	"context"
	"fmt"
	"log/slog"

	"dashboard/internal/config"
	"dashboard/internal/handler"
	"dashboard/internal/idgen"
	"dashboard/internal/infra/db"
	infraRepo "dashboard/internal/infra/repository"
	repo "dashboard/internal/repository"
	"dashboard/internal/server"
	"dashboard/internal/store"
	"dashboard/internal/usecase"
)

type App struct {
	Store     *store.Store
	AuditLogs repo.AuditLogRepository
	Clock     idgen.Clock

	Products *usecase.ProductUsecase
	Orders   *usecase.OrderUsecase
	Reports  *usecase.ReportUsecase
	AuditLog *usecase.AuditLogUsecase
	Exports  *usecase.ExportUsecase

	close func() error
}

// Buildはcfg.StorageDriverに応じて保存先を選び、ストアを復元して返す
func Build(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	clock := idgen.RealClock{}
	ids, err := idgen.New(cfg.IDStrategy, clock)
	if err != nil {
		return nil, err
	}

	a := &App{Clock: clock, close: func() error { return nil }}

	var snapshots repo.SnapshotRepository
	switch cfg.StorageDriver {
	case config.StorageFile:
		snapshots = infraRepo.NewSnapshotFileRepository(cfg.StorageDir)
		a.AuditLogs = infraRepo.NewAuditLogMemoryRepository(cfg.AuditCapacity)
	case config.StorageMemory:
		snapshots = infraRepo.NewSnapshotMemoryRepository()
		a.AuditLogs = infraRepo.NewAuditLogMemoryRepository(cfg.AuditCapacity)
	case config.StoragePostgres:
		gormDB, err := db.Connect(cfg)
		if err != nil {
			return nil, fmt.Errorf("connect db: %w", err)
		}
		if err := db.Migrate(gormDB); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, err
		}
		a.close = sqlDB.Close
		snapshots = infraRepo.NewSnapshotGormRepository(gormDB)
		a.AuditLogs = infraRepo.NewAuditLogGormRepository(gormDB)
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.StorageDriver)
	}

	a.Store = store.New(ctx, cfg.StoreName, snapshots,
		store.WithAuditLog(a.AuditLogs),
		store.WithIDGenerator(ids),
		store.WithClock(clock),
		store.WithLogger(log),
	)

	a.Products = usecase.NewProductUsecase(a.Store)
	a.Orders = usecase.NewOrderUsecase(a.Store)
	a.Reports = usecase.NewReportUsecase(a.Store)
	a.AuditLog = usecase.NewAuditLogUsecase(a.AuditLogs)
	a.Exports = usecase.NewExportUsecase(a.Store, a.AuditLogs, clock)

	log.Info("app_built", "storage", cfg.StorageDriver, "store", cfg.StoreName, "id_strategy", cfg.IDStrategy)
	return a, nil
}

// Handlersはechoに登録するハンドラをまとめて作る
func (a *App) Handlers() server.Handlers {
	return server.Handlers{
		Products:  handler.NewAdminProductHandler(a.Products),
		Orders:    handler.NewAdminOrderHandler(a.Orders),
		Reports:   handler.NewAdminReportHandler(a.Reports),
		AuditLogs: handler.NewAdminAuditLogHandler(a.AuditLog),
		Export:    handler.NewExportHandler(a.Exports),
	}
}

func (a *App) Close() error {
	return a.close()
}
