package shipment

import (
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// 物流领域错误定义
var (
	// ErrShipmentNotFound 物流单不存在
	ErrShipmentNotFound = apperrors.ErrShipmentNotFound

	// ErrInvalidShipmentStatus 未定义的物流状态值
	ErrInvalidShipmentStatus = apperrors.New(apperrors.ErrCodeInvalidParams, "无效的物流状态")
)
