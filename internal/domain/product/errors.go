package product

import (
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// 商品领域错误定义
var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = apperrors.ErrProductNotFound

	// ErrSKUDuplicate 商品编码已存在
	ErrSKUDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "商品编码已存在")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格必须大于0")

	// ErrProductInactive 商品已下架
	ErrProductInactive = apperrors.New(apperrors.ErrCodeBusinessError, "商品已下架")
)
