package handler

import (
	"net/http"

	"dashboard/internal/domain/model"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// レポートは更新APIなし
type AdminReportHandler struct {
	uc *usecase.ReportUsecase
}

func NewAdminReportHandler(uc *usecase.ReportUsecase) *AdminReportHandler {
	return &AdminReportHandler{uc: uc}
}

func (h *AdminReportHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/reports", h.list)
	admin.GET("/reports/:id", h.detail)
	admin.POST("/reports", h.create)
	admin.DELETE("/reports/:id", h.delete)
}

func (h *AdminReportHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.List(c.Request().Context(), c.QueryParam("type")))
}

func (h *AdminReportHandler) detail(c echo.Context) error {
	r, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *AdminReportHandler) create(c echo.Context) error {
	var req model.NewReport
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	r, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *AdminReportHandler) delete(c echo.Context) error {
	if !h.uc.Delete(c.Request().Context(), c.Param("id")) {
		return c.JSON(http.StatusOK, SuccessResponse{Message: msgIgnored})
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
