package payment

import (
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// 支付领域错误定义
var (
	// ErrPaymentNotFound 支付记录不存在
	ErrPaymentNotFound = apperrors.ErrPaymentNotFound

	// ErrNoOrder 支付必须关联订单
	ErrNoOrder = apperrors.New(apperrors.ErrCodeInvalidParams, "支付必须关联订单")

	// ErrOrderNotPayable 订单当前状态不可支付(仅待支付订单可创建支付)
	ErrOrderNotPayable = apperrors.New(apperrors.ErrCodeOrderNotPayable, "订单当前状态不可支付")

	// ErrAlreadyPaid 支付已完成,不可重复处理
	ErrAlreadyPaid = apperrors.New(apperrors.ErrCodeDuplicatePayment, "支付已完成")

	// ErrDuplicatePayment 订单已存在支付记录
	ErrDuplicatePayment = apperrors.ErrDuplicatePayment

	// ErrPaymentNotPersisted 支付尚未持久化,不能生成发票
	ErrPaymentNotPersisted = apperrors.New(apperrors.ErrCodePaymentNotPersisted, "支付记录尚未保存,不能生成发票")
)
