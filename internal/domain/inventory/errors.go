package inventory

import (
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// 库存领域错误定义
var (
	// ErrStockNotFound 库存记录不存在
	ErrStockNotFound = apperrors.ErrStockNotFound

	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = apperrors.ErrInsufficientStock

	// ErrInvalidQuantity 无效的数量
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")
)
