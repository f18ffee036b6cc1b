package model

import "github.com/shopspring/decimal"

// 商品の状態。在庫数から自動では決めない（表示用）。
type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusInactive   ProductStatus = "inactive"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock:
		return true
	}
	return false
}

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
	Sales    int64           `json:"sales"`
	Status   ProductStatus   `json:"status"`
}

// エクスポート時の列順（宣言順）
func (Product) Columns() []string {
	return []string{"id", "name", "category", "price", "stock", "sales", "status"}
}

func (p Product) Values() []any {
	return []any{p.ID, p.Name, p.Category, p.Price, p.Stock, p.Sales, p.Status}
}

// 作成時の入力（idなし）。Salesが未指定なら0。
type NewProduct struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
	Sales    *int64          `json:"sales,omitempty"`
	Status   ProductStatus   `json:"status"`
}

// 部分更新。nilのフィールドは変更しない。
type ProductPatch struct {
	Name     *string          `json:"name,omitempty"`
	Category *string          `json:"category,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Stock    *int64           `json:"stock,omitempty"`
	Sales    *int64           `json:"sales,omitempty"`
	Status   *ProductStatus   `json:"status,omitempty"`
}

// Applyはpatchを反映した新しい値を返す（pは変更しない）
func (p Product) Apply(patch ProductPatch) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Sales != nil {
		p.Sales = *patch.Sales
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	return p
}
