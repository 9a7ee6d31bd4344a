package inventory

import (
	"context"
)

// Repository 库存仓储接口
type Repository interface {
	// Create 创建库存记录(每个商品一条)
	Create(ctx context.Context, s *Stock) error

	// FindByProductID 根据商品ID查找库存记录
	// 不存在时返回ErrStockNotFound
	FindByProductID(ctx context.Context, productID uint) (*Stock, error)

	// Update 更新库存记录
	Update(ctx context.Context, s *Stock) error

	// DeductAtomic 原子扣减库存(条件UPDATE,库存不足时返回ErrInsufficientStock)
	// 支付流程在数据库事务内逐行调用,防止并发超卖
	DeductAtomic(ctx context.Context, productID uint, quantity int) error

	// ListByProductIDs 批量查询库存(购物车/结算校验用)
	ListByProductIDs(ctx context.Context, productIDs []uint) (map[uint]*Stock, error)
}
