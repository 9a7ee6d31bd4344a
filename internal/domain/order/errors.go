package order

import (
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.ErrOrderNotFound

	// ErrInvalidStatusTransition 非法的状态转换
	ErrInvalidStatusTransition = apperrors.New(apperrors.ErrCodeInvalidOrderStatus, "订单状态不允许此操作")

	// ErrOrderNotPaid 订单未支付(扣减库存的前置条件)
	ErrOrderNotPaid = apperrors.New(apperrors.ErrCodeInvalidOrderStatus, "订单未支付,不能扣减库存")

	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = apperrors.ErrInsufficientStock

	// ErrOrderNoGenerate 订单号生成失败
	ErrOrderNoGenerate = apperrors.New(apperrors.ErrCodeInternal, "订单号生成失败")

	// ErrEmptyOrder 订单明细为空
	ErrEmptyOrder = apperrors.New(apperrors.ErrCodeInvalidParams, "订单明细不能为空")
)
