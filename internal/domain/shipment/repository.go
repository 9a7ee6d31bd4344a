package shipment

import "context"

// Repository 物流单仓储接口
type Repository interface {
	// Create 保存物流单
	Create(ctx context.Context, s *Shipment) error

	// FindByID 根据ID查找物流单
	FindByID(ctx context.Context, id uint) (*Shipment, error)

	// FindByOrderID 根据订单ID查找物流单
	FindByOrderID(ctx context.Context, orderID uint) (*Shipment, error)

	// Update 更新物流单
	Update(ctx context.Context, s *Shipment) error
}
