package server

import (
	"net/http"

	"dashboard/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Products  *handler.AdminProductHandler
	Orders    *handler.AdminOrderHandler
	Reports   *handler.AdminReportHandler
	AuditLogs *handler.AdminAuditLogHandler
	Export    *handler.ExportHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, handler.SuccessResponse{Message: "ok"})
	})

	admin := e.Group("/admin")
	h.Products.RegisterRoutes(admin)
	h.Orders.RegisterRoutes(admin)
	h.Reports.RegisterRoutes(admin)
	h.AuditLogs.RegisterRoutes(admin)
	h.Export.RegisterRoutes(admin)
}
