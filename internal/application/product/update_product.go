package product

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/product"
	"github.com/datpham0412/yourlocalshop/internal/infrastructure/persistence/redis"
)

// UpdateProductUseCase 更新商品用例(管理员)
// 更新后删除商品缓存,下次读取回源
type UpdateProductUseCase struct {
	productService product.Service
	cache          *redis.ProductCache
}

// NewUpdateProductUseCase 创建更新商品用例
func NewUpdateProductUseCase(productService product.Service, cache *redis.ProductCache) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productService: productService,
		cache:          cache,
	}
}

// UpdateProductRequest 更新商品请求
// 空字段表示不修改;Price为nil表示不改价
type UpdateProductRequest struct {
	ID          uint
	Name        string
	Category    string
	Description string
	Price       *int64
}

// Execute 执行更新商品
func (uc *UpdateProductUseCase) Execute(ctx context.Context, req UpdateProductRequest) error {
	if _, err := uc.productService.UpdateProductInfo(ctx, req.ID, req.Name, req.Category, req.Description); err != nil {
		return err
	}

	if req.Price != nil {
		if _, err := uc.productService.UpdateProductPrice(ctx, req.ID, *req.Price); err != nil {
			return err
		}
	}

	// 删缓存而非更新缓存,避免并发写序问题
	_ = uc.cache.Invalidate(ctx, req.ID)
	return nil
}

// DeleteProductUseCase 删除商品用例(管理员,软删除)
type DeleteProductUseCase struct {
	productService product.Service
	cache          *redis.ProductCache
}

// NewDeleteProductUseCase 创建删除商品用例
func NewDeleteProductUseCase(productService product.Service, cache *redis.ProductCache) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productService: productService,
		cache:          cache,
	}
}

// Execute 执行删除商品
// 软删除:历史订单保留下单时的商品快照,不受影响
func (uc *DeleteProductUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.productService.DeleteProduct(ctx, id); err != nil {
		return err
	}

	_ = uc.cache.Invalidate(ctx, id)
	return nil
}
