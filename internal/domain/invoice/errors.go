package invoice

import (
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// 发票领域错误定义
var (
	// ErrInvoiceNotFound 发票不存在
	ErrInvoiceNotFound = apperrors.ErrInvoiceNotFound

	// ErrPaymentNotPersisted 支付尚未持久化,不能生成发票
	ErrPaymentNotPersisted = apperrors.New(apperrors.ErrCodePaymentNotPersisted, "支付记录尚未保存,不能生成发票")

	// ErrDuplicateInvoice 同一支付只能开具一张发票
	ErrDuplicateInvoice = apperrors.New(apperrors.ErrCodeDuplicateEntry, "该支付已开具发票")
)
