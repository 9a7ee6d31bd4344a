package product

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/product"
)

// ListProductsUseCase 商品列表用例(公开接口)
type ListProductsUseCase struct {
	productService product.Service
}

// NewListProductsUseCase 创建商品列表用例
func NewListProductsUseCase(productService product.Service) *ListProductsUseCase {
	return &ListProductsUseCase{productService: productService}
}

// ListProductsRequest 列表查询请求
type ListProductsRequest struct {
	Page     int
	PageSize int
	Keyword  string
	Category string
	SortBy   string
}

// ProductSummary 列表项DTO
type ProductSummary struct {
	ID       uint   `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Active   bool   `json:"active"`
}

// Execute 执行列表查询
// 返回当前页数据与总数(供响应层组装分页信息)
func (uc *ListProductsUseCase) Execute(ctx context.Context, req ListProductsRequest) ([]ProductSummary, int64, error) {
	items, total, err := uc.productService.ListProducts(ctx, product.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
		Category: req.Category,
		SortBy:   req.SortBy,
	})
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]ProductSummary, len(items))
	for i, p := range items {
		summaries[i] = ProductSummary{
			ID:       p.ID,
			SKU:      p.SKU,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Active:   p.Active,
		}
	}
	return summaries, total, nil
}
