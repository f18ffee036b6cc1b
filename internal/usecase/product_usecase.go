package usecase

import (
	"context"
	"net/http"
	"strings"

	"dashboard/internal/domain/model"
	"dashboard/internal/validator"
)

// 商品コレクションの操作（store.Storeが満たす）
type ProductStore interface {
	Products() []model.Product
	Product(id string) (model.Product, bool)
	AddProduct(ctx context.Context, in model.NewProduct) model.Product
	UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (model.Product, bool)
	DeleteProduct(ctx context.Context, id string) bool
}

type ProductUsecase struct {
	store ProductStore
}

// DI
func NewProductUsecase(store ProductStore) *ProductUsecase {
	return &ProductUsecase{store: store}
}

// GET /admin/productsの入力DTO
type ListProductsInput struct {
	Q        string
	Category string
	Status   string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

// 一覧は挿入順のまま返す
func (u *ProductUsecase) List(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	status := model.ProductStatus(strings.TrimSpace(in.Status))
	if status != "" && !status.Valid() {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	q := strings.ToLower(strings.TrimSpace(in.Q))
	category := strings.TrimSpace(in.Category)

	items := []model.Product{}
	for _, p := range u.store.Products() {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		items = append(items, p)
	}

	return ProductListOutput{Items: items, Total: len(items)}, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id string) (model.Product, error) {
	p, ok := u.store.Product(id)
	if !ok {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return p, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in model.NewProduct) (model.Product, error) {
	if err := validator.ValidateNewProduct(in); err != nil {
		return model.Product{}, badRequest(err)
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Status == "" {
		in.Status = model.ProductStatusActive
	}
	return u.store.AddProduct(ctx, in), nil
}

// 該当なしはエラーにせず found=false を返す
func (u *ProductUsecase) Update(ctx context.Context, id string, patch model.ProductPatch) (model.Product, bool, error) {
	if err := validator.ValidateProductPatch(patch); err != nil {
		return model.Product{}, false, badRequest(err)
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	p, found := u.store.UpdateProduct(ctx, id, patch)
	return p, found, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, id string) bool {
	return u.store.DeleteProduct(ctx, id)
}
