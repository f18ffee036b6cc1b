package usecase

import (
	"context"
	"net/http"
	"strings"

	"dashboard/internal/domain/model"
	"dashboard/internal/validator"
)

// レポートは作成と削除だけ
type ReportStore interface {
	Reports() []model.Report
	Report(id string) (model.Report, bool)
	AddReport(ctx context.Context, in model.NewReport) model.Report
	DeleteReport(ctx context.Context, id string) bool
}

type ReportUsecase struct {
	store ReportStore
}

func NewReportUsecase(store ReportStore) *ReportUsecase {
	return &ReportUsecase{store: store}
}

type ReportListOutput struct {
	Items []model.Report `json:"items"`
	Total int            `json:"total"`
}

func (u *ReportUsecase) List(ctx context.Context, reportType string) ReportListOutput {
	reportType = strings.TrimSpace(reportType)

	items := []model.Report{}
	for _, r := range u.store.Reports() {
		if reportType != "" && !strings.EqualFold(r.Type, reportType) {
			continue
		}
		items = append(items, r)
	}
	return ReportListOutput{Items: items, Total: len(items)}
}

func (u *ReportUsecase) Get(ctx context.Context, id string) (model.Report, error) {
	r, ok := u.store.Report(id)
	if !ok {
		return model.Report{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return r, nil
}

func (u *ReportUsecase) Create(ctx context.Context, in model.NewReport) (model.Report, error) {
	if err := validator.ValidateNewReport(in); err != nil {
		return model.Report{}, badRequest(err)
	}
	in.Title = strings.TrimSpace(in.Title)
	return u.store.AddReport(ctx, in), nil
}

func (u *ReportUsecase) Delete(ctx context.Context, id string) bool {
	return u.store.DeleteReport(ctx, id)
}
