package order

import (
	"context"
	"time"
)

// Repository 订单仓储接口(依赖倒置,由infrastructure层实现)
type Repository interface {
	// Create 创建订单(订单与明细在同一事务中写入)
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单(包含明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindByOrderNo 根据订单号查找订单
	FindByOrderNo(ctx context.Context, orderNo string) (*Order, error)

	// Update 更新订单(主要用于状态更新)
	Update(ctx context.Context, order *Order) error

	// ListByCustomerID 分页查询某账户的订单
	ListByCustomerID(ctx context.Context, customerID uint, page, pageSize int) ([]*Order, int64, error)

	// SalesBetween 统计时间段内的订单数与营收总额(分)
	// 已取消/已失败订单不计入
	SalesBetween(ctx context.Context, from, to time.Time) (totalOrders int64, totalRevenue int64, err error)
}
