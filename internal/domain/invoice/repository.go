package invoice

import "context"

// Repository 发票仓储接口
type Repository interface {
	// Create 保存发票(payment_id唯一索引,重复时返回ErrDuplicateInvoice)
	Create(ctx context.Context, inv *Invoice) error

	// FindByID 根据ID查找发票
	FindByID(ctx context.Context, id uint) (*Invoice, error)

	// FindByPaymentID 根据支付ID查找发票
	FindByPaymentID(ctx context.Context, paymentID uint) (*Invoice, error)

	// FindByOrderID 根据订单ID查找发票
	FindByOrderID(ctx context.Context, orderID uint) (*Invoice, error)
}
