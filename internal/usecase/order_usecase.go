package usecase

import (
	"context"
	"net/http"
	"strings"

	"dashboard/internal/domain/model"
	"dashboard/internal/validator"
)

type OrderStore interface {
	Orders() []model.Order
	Order(id string) (model.Order, bool)
	AddOrder(ctx context.Context, in model.NewOrder) model.Order
	UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (model.Order, bool)
	DeleteOrder(ctx context.Context, id string) bool
}

type OrderUsecase struct {
	store OrderStore
}

func NewOrderUsecase(store OrderStore) *OrderUsecase {
	return &OrderUsecase{store: store}
}

type ListOrdersInput struct {
	Q      string // customer / email の部分一致
	Status string
}

type OrderListOutput struct {
	Items []model.Order `json:"items"`
	Total int           `json:"total"`
}

func (u *OrderUsecase) List(ctx context.Context, in ListOrdersInput) (OrderListOutput, error) {
	status := model.OrderStatus(strings.TrimSpace(in.Status))
	if status != "" && !status.Valid() {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	q := strings.ToLower(strings.TrimSpace(in.Q))

	items := []model.Order{}
	for _, o := range u.store.Orders() {
		if status != "" && o.Status != status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(o.Customer), q) && !strings.Contains(strings.ToLower(o.Email), q) {
			continue
		}
		items = append(items, o)
	}
	return OrderListOutput{Items: items, Total: len(items)}, nil
}

func (u *OrderUsecase) Get(ctx context.Context, id string) (model.Order, error) {
	o, ok := u.store.Order(id)
	if !ok {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return o, nil
}

// Date未指定はstore側で今日になる
func (u *OrderUsecase) Create(ctx context.Context, in model.NewOrder) (model.Order, error) {
	if err := validator.ValidateNewOrder(in); err != nil {
		return model.Order{}, badRequest(err)
	}
	in.Customer = strings.TrimSpace(in.Customer)
	in.Email = strings.TrimSpace(in.Email)
	if in.Status == "" {
		in.Status = model.OrderStatusPending
	}
	return u.store.AddOrder(ctx, in), nil
}

func (u *OrderUsecase) Update(ctx context.Context, id string, patch model.OrderPatch) (model.Order, bool, error) {
	if err := validator.ValidateOrderPatch(patch); err != nil {
		return model.Order{}, false, badRequest(err)
	}
	o, found := u.store.UpdateOrder(ctx, id, patch)
	return o, found, nil
}

func (u *OrderUsecase) Delete(ctx context.Context, id string) bool {
	return u.store.DeleteOrder(ctx, id)
}
