package validator

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"dashboard/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 入力が不正
var ErrInvalidInput = errors.New("invalid input")

// どのフィールドが不正か。errors.Is(err, ErrInvalidInput) で判定できる。
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func invalid(field, msg string) error {
	return &InputError{Field: field, Message: msg}
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	return emailRe.MatchString(s)
}

// =====================
// 商品
// =====================

func ValidateNewProduct(in model.NewProduct) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name", "name required")
	}
	if err := nonNegativeDecimal("price", in.Price); err != nil {
		return err
	}
	if in.Stock < 0 {
		return invalid("stock", "stock must be >= 0")
	}
	if in.Sales != nil && *in.Sales < 0 {
		return invalid("sales", "sales must be >= 0")
	}
	//空は作成時にactiveで補う
	if in.Status != "" && !in.Status.Valid() {
		return invalid("status", "invalid status")
	}
	return nil
}

func ValidateProductPatch(p model.ProductPatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return invalid("name", "name required")
	}
	if p.Price != nil {
		if err := nonNegativeDecimal("price", *p.Price); err != nil {
			return err
		}
	}
	if p.Stock != nil && *p.Stock < 0 {
		return invalid("stock", "stock must be >= 0")
	}
	if p.Sales != nil && *p.Sales < 0 {
		return invalid("sales", "sales must be >= 0")
	}
	if p.Status != nil && !p.Status.Valid() {
		return invalid("status", "invalid status")
	}
	return nil
}

// =====================
// 注文
// =====================

func ValidateNewOrder(in model.NewOrder) error {
	if strings.TrimSpace(in.Customer) == "" {
		return invalid("customer", "customer required")
	}
	if !isEmailLike(strings.TrimSpace(in.Email)) {
		return invalid("email", "invalid email")
	}
	if err := nonNegativeDecimal("amount", in.Amount); err != nil {
		return err
	}
	if in.Status != "" && !in.Status.Valid() {
		return invalid("status", "invalid status")
	}
	if in.Date != "" && !isDate(in.Date) {
		return invalid("date", "date must be YYYY-MM-DD")
	}
	if in.Items < 0 {
		return invalid("items", "items must be >= 0")
	}
	return nil
}

func ValidateOrderPatch(p model.OrderPatch) error {
	if p.Customer != nil && strings.TrimSpace(*p.Customer) == "" {
		return invalid("customer", "customer required")
	}
	if p.Email != nil && !isEmailLike(strings.TrimSpace(*p.Email)) {
		return invalid("email", "invalid email")
	}
	if p.Amount != nil {
		if err := nonNegativeDecimal("amount", *p.Amount); err != nil {
			return err
		}
	}
	if p.Status != nil && !p.Status.Valid() {
		return invalid("status", "invalid status")
	}
	if p.Date != nil && !isDate(*p.Date) {
		return invalid("date", "date must be YYYY-MM-DD")
	}
	if p.Items != nil && *p.Items < 0 {
		return invalid("items", "items must be >= 0")
	}
	return nil
}

// =====================
// レポート
// =====================

func ValidateNewReport(in model.NewReport) error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "title required")
	}
	if in.Date != "" && !isDate(in.Date) {
		return invalid("date", "date must be YYYY-MM-DD")
	}
	return nil
}

func nonNegativeDecimal(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return invalid(field, field+" must be >= 0")
	}
	return nil
}

func isDate(s string) bool {
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}
