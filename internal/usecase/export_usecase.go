package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dashboard/internal/domain/model"
	"dashboard/internal/idgen"
	repo "dashboard/internal/repository"
	"dashboard/internal/tabular"
)

// エクスポートできる種類（ファイル名の先頭にもなる）
const (
	ExportProducts  = "products"
	ExportOrders    = "orders"
	ExportReports   = "reports"
	ExportAuditLogs = "audit-logs"
)

// 読み取りだけ使う
type CollectionReader interface {
	Products() []model.Product
	Orders() []model.Order
	Reports() []model.Report
}

type ExportUsecase struct {
	store     CollectionReader
	auditRepo repo.AuditLogRepository
	clock     idgen.Clock
}

// auditRepoはnil可（audit-logsは空になる）
func NewExportUsecase(store CollectionReader, auditRepo repo.AuditLogRepository, clock idgen.Clock) *ExportUsecase {
	if clock == nil {
		clock = idgen.RealClock{}
	}
	return &ExportUsecase{store: store, auditRepo: auditRepo, clock: clock}
}

type ExportInput struct {
	Type   string
	Format tabular.Format
	// 画面側で絞り込んだデータ（JSON配列）。あればコレクションの代わりに使う。
	Data json.RawMessage
}

func (u *ExportUsecase) ExportToCSV(ctx context.Context, typ string, explicit json.RawMessage) (tabular.Document, error) {
	return u.Export(ctx, ExportInput{Type: typ, Format: tabular.FormatCSV, Data: explicit})
}

func (u *ExportUsecase) ExportToExcel(ctx context.Context, typ string, explicit json.RawMessage) (tabular.Document, error) {
	return u.Export(ctx, ExportInput{Type: typ, Format: tabular.FormatExcel, Data: explicit})
}

func (u *ExportUsecase) Export(ctx context.Context, in ExportInput) (tabular.Document, error) {
	format := in.Format
	if format == "" {
		format = tabular.FormatCSV
	}
	now := u.clock.Now()

	switch in.Type {
	case ExportProducts:
		return exportRows(in.Type, format, u.store.Products, in.Data, now)
	case ExportOrders:
		return exportRows(in.Type, format, u.store.Orders, in.Data, now)
	case ExportReports:
		return exportRows(in.Type, format, u.store.Reports, in.Data, now)
	case ExportAuditLogs:
		return exportRows(in.Type, format, func() []model.AuditLog { return u.recentAuditLogs(ctx) }, in.Data, now)
	default:
		return tabular.Document{}, NewHTTPError(http.StatusBadRequest, "invalid type")
	}
}

func (u *ExportUsecase) recentAuditLogs(ctx context.Context) []model.AuditLog {
	if u.auditRepo == nil {
		return []model.AuditLog{}
	}
	logs, err := u.auditRepo.List(ctx, repo.AuditLogFilter{Limit: repo.MaxAuditLimit})
	if err != nil {
		return []model.AuditLog{}
	}
	return logs
}

// dataがあればそれを、なければstoredの結果を出力する
func exportRows[T tabular.Record](typ string, f tabular.Format, stored func() []T, data json.RawMessage, now time.Time) (tabular.Document, error) {
	rows, err := explicitRows[T](data)
	if err != nil {
		return tabular.Document{}, err
	}
	if rows == nil {
		rows = stored()
	}
	return tabular.Export(typ, f, rows, now), nil
}

func explicitRows[T any](data json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	rows := []T{}
	if err := json.Unmarshal(trimmed, &rows); err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid data")
	}
	return rows, nil
}
