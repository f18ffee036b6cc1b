package handler

import (
	"fmt"
	"io"
	"net/http"

	"dashboard/internal/tabular"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 画面から渡される絞り込み済みデータの上限
const maxExportBody = 10 << 20

// /admin/export/:type?format=csv|excel
type ExportHandler struct {
	uc *usecase.ExportUsecase
}

func NewExportHandler(uc *usecase.ExportUsecase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

func (h *ExportHandler) RegisterRoutes(admin *echo.Group) {
	// 保存中のコレクションをそのまま出力
	admin.GET("/export/:type", h.exportStored)
	// bodyのJSON配列を出力（コレクションより優先）
	admin.POST("/export/:type", h.exportExplicit)
}

func (h *ExportHandler) exportStored(c echo.Context) error {
	format, ok := tabular.ParseFormat(c.QueryParam("format"))
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid format"})
	}

	doc, err := h.uc.Export(c.Request().Context(), usecase.ExportInput{
		Type:   c.Param("type"),
		Format: format,
	})
	if err != nil {
		return writeError(c, err)
	}
	return download(c, doc)
}

func (h *ExportHandler) exportExplicit(c echo.Context) error {
	format, ok := tabular.ParseFormat(c.QueryParam("format"))
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid format"})
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxExportBody))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	doc, err := h.uc.Export(c.Request().Context(), usecase.ExportInput{
		Type:   c.Param("type"),
		Format: format,
		Data:   body,
	})
	if err != nil {
		return writeError(c, err)
	}
	return download(c, doc)
}

// ブラウザにファイルとして保存させる
func download(c echo.Context, doc tabular.Document) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	return c.Blob(http.StatusOK, doc.MIMEType, []byte(doc.Body))
}
