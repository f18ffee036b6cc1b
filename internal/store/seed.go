package store

import (
	"dashboard/internal/domain/model"

	"github.com/shopspring/decimal"
)

// Seedは保存済みデータがないときの初期データを毎回新しく作って返す
func Seed() model.Snapshot {
	return model.Snapshot{
		Products: []model.Product{
			{ID: "1", Name: "Laptop Pro", Category: "Electronics", Price: decimal.RequireFromString("1299.99"), Stock: 45, Sales: 234, Status: model.ProductStatusActive},
			{ID: "2", Name: "Office Chair", Category: "Furniture", Price: decimal.RequireFromString("299.99"), Stock: 120, Sales: 89, Status: model.ProductStatusActive},
			{ID: "3", Name: "Wireless Earbuds", Category: "Electronics", Price: decimal.RequireFromString("149.99"), Stock: 0, Sales: 567, Status: model.ProductStatusOutOfStock},
			{ID: "4", Name: "Standing Desk", Category: "Furniture", Price: decimal.RequireFromString("599.99"), Stock: 23, Sales: 45, Status: model.ProductStatusActive},
			{ID: "5", Name: "USB-C Hub", Category: "Accessories", Price: decimal.RequireFromString("79.99"), Stock: 200, Sales: 892, Status: model.ProductStatusInactive},
		},
		Orders: []model.Order{
			{ID: "1", Customer: "John Smith", Email: "john@example.com", Amount: decimal.RequireFromString("1299.99"), Status: model.OrderStatusCompleted, Date: "2024-01-15", Items: 1},
			{ID: "2", Customer: "Sarah Johnson", Email: "sarah@example.com", Amount: decimal.RequireFromString("449.98"), Status: model.OrderStatusProcessing, Date: "2024-01-16", Items: 2},
			{ID: "3", Customer: "Mike Brown", Email: "mike@example.com", Amount: decimal.RequireFromString("79.99"), Status: model.OrderStatusPending, Date: "2024-01-17", Items: 1},
			{ID: "4", Customer: "Emily Davis", Email: "emily@example.com", Amount: decimal.RequireFromString("899.97"), Status: model.OrderStatusCompleted, Date: "2024-01-17", Items: 3},
			{ID: "5", Customer: "Chris Wilson", Email: "chris@example.com", Amount: decimal.RequireFromString("149.99"), Status: model.OrderStatusCancelled, Date: "2024-01-18", Items: 1},
		},
		Reports: []model.Report{
			{ID: "1", Title: "Monthly Sales Report", Type: "Sales", GeneratedBy: "Admin User", Date: "2024-01-01", Size: "2.4 MB"},
			{ID: "2", Title: "Inventory Summary", Type: "Inventory", GeneratedBy: "Manager", Date: "2024-01-05", Size: "1.1 MB"},
			{ID: "3", Title: "Customer Analytics", Type: "Analytics", GeneratedBy: "Admin User", Date: "2024-01-10", Size: "3.7 MB"},
			{ID: "4", Title: "Quarterly Revenue", Type: "Financial", GeneratedBy: "Finance Team", Date: "2024-01-12", Size: "0.8 MB"},
		},
	}
}
