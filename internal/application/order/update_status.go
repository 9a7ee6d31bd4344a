package order

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/order"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// UpdateStatusUseCase 订单状态推进用例(员工/管理员)
// 状态沿固定路径推进,非法转换由订单实体拒绝
type UpdateStatusUseCase struct {
	orderRepo order.Repository
}

// NewUpdateStatusUseCase 创建状态推进用例
func NewUpdateStatusUseCase(orderRepo order.Repository) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{orderRepo: orderRepo}
}

// UpdateStatusRequest 状态推进请求
type UpdateStatusRequest struct {
	OrderID uint
	Target  order.OrderStatus
}

// Execute 执行状态推进
// 支付(Paid)只能走支付流程,不开放给本接口
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, req UpdateStatusRequest) (*OrderDetail, error) {
	o, err := uc.orderRepo.FindByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	switch req.Target {
	case order.OrderStatusProcessing:
		err = o.AdvanceToProcessing()
	case order.OrderStatusPacked:
		err = o.MarkPacked()
	case order.OrderStatusShipped:
		err = o.MarkShipped()
	case order.OrderStatusDelivered:
		err = o.MarkDelivered()
	case order.OrderStatusFailed:
		err = o.MarkFailed()
	case order.OrderStatusCancelled:
		err = o.MarkCancelled()
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "不支持的目标状态")
	}
	if err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	return newOrderDetail(o), nil
}

// CancelOrderUseCase 取消订单用例(顾客)
// 只能取消自己的订单;已打包/已发货/已送达订单不可取消
type CancelOrderUseCase struct {
	orderRepo order.Repository
}

// NewCancelOrderUseCase 创建取消订单用例
func NewCancelOrderUseCase(orderRepo order.Repository) *CancelOrderUseCase {
	return &CancelOrderUseCase{orderRepo: orderRepo}
}

// Execute 执行取消订单
func (uc *CancelOrderUseCase) Execute(ctx context.Context, orderID, customerID uint) (*OrderDetail, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !o.IsOwnedBy(customerID) {
		return nil, apperrors.ErrOrderNotFound
	}

	if err := o.MarkCancelled(); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	return newOrderDetail(o), nil
}
