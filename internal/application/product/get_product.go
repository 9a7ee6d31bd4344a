package product

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/inventory"
	"github.com/datpham0412/yourlocalshop/internal/domain/product"
	"github.com/datpham0412/yourlocalshop/internal/infrastructure/persistence/redis"
)

// GetProductUseCase 商品详情用例
// 设计说明:商品详情走Cache-Aside缓存,库存水位实时查库
// (库存变化频繁且对结算正确性敏感,不缓存)
type GetProductUseCase struct {
	productRepo product.Repository
	stockRepo   inventory.Repository
	cache       *redis.ProductCache
}

// NewGetProductUseCase 创建商品详情用例
func NewGetProductUseCase(
	productRepo product.Repository,
	stockRepo inventory.Repository,
	cache *redis.ProductCache,
) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		cache:       cache,
	}
}

// ProductDetail 商品详情DTO
type ProductDetail struct {
	ID          uint   `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	Stock       int    `json:"stock"`
}

// Execute 获取商品详情
func (uc *GetProductUseCase) Execute(ctx context.Context, id uint) (*ProductDetail, error) {
	p, err := uc.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	stockQty := 0
	if stock, err := uc.stockRepo.FindByProductID(ctx, id); err == nil {
		stockQty = stock.Quantity
	}

	return &ProductDetail{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Description: p.Description,
		Active:      p.Active,
		Stock:       stockQty,
	}, nil
}

// lookup 先查缓存,未命中回源数据库并写回
func (uc *GetProductUseCase) lookup(ctx context.Context, id uint) (*product.Product, error) {
	if cached, err := uc.cache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	p, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 写回失败只影响命中率,不影响请求
	_ = uc.cache.Set(ctx, p)
	return p, nil
}
