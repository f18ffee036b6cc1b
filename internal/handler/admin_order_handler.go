package handler

import (
	"net/http"

	"dashboard/internal/domain/model"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminOrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewAdminOrderHandler(uc *usecase.OrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

func (h *AdminOrderHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/orders", h.list)
	admin.GET("/orders/:id", h.detail)
	admin.POST("/orders", h.create)
	admin.PATCH("/orders/:id", h.update)
	admin.DELETE("/orders/:id", h.delete)
}

func (h *AdminOrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), usecase.ListOrdersInput{
		Q:      c.QueryParam("q"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) detail(c echo.Context) error {
	o, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *AdminOrderHandler) create(c echo.Context) error {
	var req model.NewOrder
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	o, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *AdminOrderHandler) update(c echo.Context) error {
	var req model.OrderPatch
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	o, found, err := h.uc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	if !found {
		return c.JSON(http.StatusOK, SuccessResponse{Message: msgIgnored})
	}
	return c.JSON(http.StatusOK, o)
}

func (h *AdminOrderHandler) delete(c echo.Context) error {
	if !h.uc.Delete(c.Request().Context(), c.Param("id")) {
		return c.JSON(http.StatusOK, SuccessResponse{Message: msgIgnored})
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
