package inventory

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/inventory"
	"github.com/datpham0412/yourlocalshop/internal/domain/product"
)

// ListStocksUseCase 库存总览用例(管理员/员工)
// 按商品分页,批量join库存数量,无库存记录的商品计为0
type ListStocksUseCase struct {
	productRepo product.Repository
	stockRepo   inventory.Repository
}

// NewListStocksUseCase 创建库存总览用例
func NewListStocksUseCase(productRepo product.Repository, stockRepo inventory.Repository) *ListStocksUseCase {
	return &ListStocksUseCase{
		productRepo: productRepo,
		stockRepo:   stockRepo,
	}
}

// StockOverview 库存总览项
type StockOverview struct {
	ProductID uint   `json:"product_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// Execute 分页查询库存总览
func (uc *ListStocksUseCase) Execute(ctx context.Context, page, pageSize int) ([]StockOverview, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	products, total, err := uc.productRepo.List(ctx, product.ListParams{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	stocks, err := uc.stockRepo.ListByProductIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	overview := make([]StockOverview, 0, len(products))
	for _, p := range products {
		qty := 0
		if s, ok := stocks[p.ID]; ok {
			qty = s.Quantity
		}
		overview = append(overview, StockOverview{
			ProductID: p.ID,
			SKU:       p.SKU,
			Name:      p.Name,
			Quantity:  qty,
		})
	}
	return overview, total, nil
}
