package model

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// 日付はYYYY-MM-DDの文字列で持つ
const DateLayout = "2006-01-02"

type Order struct {
	ID       string          `json:"id"`
	Customer string          `json:"customer"`
	Email    string          `json:"email"`
	Amount   decimal.Decimal `json:"amount"`
	Status   OrderStatus     `json:"status"`
	Date     string          `json:"date"`
	Items    int64           `json:"items"`
}

func (Order) Columns() []string {
	return []string{"id", "customer", "email", "amount", "status", "date", "items"}
}

func (o Order) Values() []any {
	return []any{o.ID, o.Customer, o.Email, o.Amount, o.Status, o.Date, o.Items}
}

// Dateが空なら作成日になる
type NewOrder struct {
	Customer string          `json:"customer"`
	Email    string          `json:"email"`
	Amount   decimal.Decimal `json:"amount"`
	Status   OrderStatus     `json:"status"`
	Date     string          `json:"date,omitempty"`
	Items    int64           `json:"items"`
}

type OrderPatch struct {
	Customer *string          `json:"customer,omitempty"`
	Email    *string          `json:"email,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Status   *OrderStatus     `json:"status,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Items    *int64           `json:"items,omitempty"`
}

func (o Order) Apply(patch OrderPatch) Order {
	if patch.Customer != nil {
		o.Customer = *patch.Customer
	}
	if patch.Email != nil {
		o.Email = *patch.Email
	}
	if patch.Amount != nil {
		o.Amount = *patch.Amount
	}
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.Date != nil {
		o.Date = *patch.Date
	}
	if patch.Items != nil {
		o.Items = *patch.Items
	}
	return o
}
