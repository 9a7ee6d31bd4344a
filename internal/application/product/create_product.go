package product

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/inventory"
	"github.com/datpham0412/yourlocalshop/internal/domain/product"
)

// CreateProductUseCase 新建商品用例(管理员)
// 创建商品的同时初始化该商品的库存记录,
// 保证每个在售商品都有库存水位可查
type CreateProductUseCase struct {
	productService product.Service
	stockRepo      inventory.Repository
}

// NewCreateProductUseCase 创建商品用例
func NewCreateProductUseCase(productService product.Service, stockRepo inventory.Repository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productService: productService,
		stockRepo:      stockRepo,
	}
}

// CreateProductRequest 新建商品请求
type CreateProductRequest struct {
	SKU          string
	Name         string
	Category     string
	Price        int64 // 单价(分)
	Description  string
	InitialStock int // 初始库存
}

// CreateProductResponse 新建商品响应
type CreateProductResponse struct {
	ID       uint   `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
}

// Execute 执行新建商品
func (uc *CreateProductUseCase) Execute(ctx context.Context, req CreateProductRequest) (*CreateProductResponse, error) {
	p, err := uc.productService.CreateProduct(ctx, req.SKU, req.Name, req.Category, req.Price, req.Description)
	if err != nil {
		return nil, err
	}

	stock, err := inventory.NewStock(p.ID, req.InitialStock)
	if err != nil {
		return nil, err
	}
	if err := uc.stockRepo.Create(ctx, stock); err != nil {
		return nil, err
	}

	return &CreateProductResponse{
		ID:       p.ID,
		SKU:      p.SKU,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Stock:    stock.Quantity,
	}, nil
}
