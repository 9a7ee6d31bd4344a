package cart

import (
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrCartNotFound 购物车不存在
	ErrCartNotFound = apperrors.ErrCartNotFound

	// ErrItemNotFound 购物车中没有该明细
	ErrItemNotFound = apperrors.ErrCartItemNotFound

	// ErrProductOutOfStock 商品无货(可用库存为0)
	ErrProductOutOfStock = apperrors.ErrProductOutOfStock

	// ErrInvalidQuantity 数量必须大于0
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "商品数量必须大于0")

	// ErrEmptyCart 购物车为空,不能下单
	ErrEmptyCart = apperrors.New(apperrors.ErrCodeBusinessError, "购物车为空,不能下单")
)
