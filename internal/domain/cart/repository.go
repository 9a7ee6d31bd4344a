package cart

import (
	"context"
)

// Repository 购物车仓储接口
type Repository interface {
	// FindByCustomerID 查找账户的购物车(包含明细)
	// 不存在时返回ErrCartNotFound,由应用层决定是否惰性创建
	FindByCustomerID(ctx context.Context, customerID uint) (*ShoppingCart, error)

	// Create 创建购物车
	Create(ctx context.Context, cart *ShoppingCart) error

	// Save 保存购物车聚合(明细的增删改一并落库)
	Save(ctx context.Context, cart *ShoppingCart) error
}
