package payment

import (
	"context"
)

// Repository 支付仓储接口
type Repository interface {
	// Create 创建支付记录
	// order_id上有唯一索引,重复创建返回ErrDuplicatePayment
	Create(ctx context.Context, payment *Payment) error

	// FindByID 根据ID查找支付记录
	FindByID(ctx context.Context, id uint) (*Payment, error)

	// FindByOrderID 根据订单ID查找支付记录
	// 不存在时返回ErrPaymentNotFound(用于支付前查重)
	FindByOrderID(ctx context.Context, orderID uint) (*Payment, error)

	// Update 更新支付记录(状态/支付时间)
	Update(ctx context.Context, payment *Payment) error
}
