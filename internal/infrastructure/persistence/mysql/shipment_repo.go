package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/datpham0412/yourlocalshop/internal/domain/shipment"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// shipmentRepository 物流单仓储实现(MySQL)
type shipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository 创建物流单仓储
func NewShipmentRepository(db *gorm.DB) shipment.Repository {
	return &shipmentRepository{db: db}
}

// Create 保存物流单
func (r *shipmentRepository) Create(ctx context.Context, s *shipment.Shipment) error {
	model := &ShipmentModel{
		OrderID:        s.OrderID,
		TrackingNumber: s.TrackingNumber,
		Address:        s.Address,
		ContactName:    s.ContactName,
		Carrier:        s.Carrier,
		Status:         int(s.Status),
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建物流单失败")
	}

	s.ID = model.ID
	s.CreatedAt = model.CreatedAt
	s.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找物流单
func (r *shipmentRepository) FindByID(ctx context.Context, id uint) (*shipment.Shipment, error) {
	var model ShipmentModel
	err := dbFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, apperrors.Wrap(err, "查询物流单失败")
	}
	return toShipmentEntity(&model), nil
}

// FindByOrderID 根据订单ID查找物流单
func (r *shipmentRepository) FindByOrderID(ctx context.Context, orderID uint) (*shipment.Shipment, error) {
	var model ShipmentModel
	err := dbFromContext(ctx, r.db).Where("order_id = ?", orderID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, apperrors.Wrap(err, "查询物流单失败")
	}
	return toShipmentEntity(&model), nil
}

// Update 更新物流单
func (r *shipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	updates := map[string]interface{}{
		"status":  int(s.Status),
		"carrier": s.Carrier,
	}
	if !s.DeliveryDate.IsZero() {
		updates["delivery_date"] = s.DeliveryDate
	}

	err := dbFromContext(ctx, r.db).
		Model(&ShipmentModel{}).
		Where("id = ?", s.ID).
		Updates(updates).Error
	if err != nil {
		return apperrors.Wrap(err, "更新物流单失败")
	}
	return nil
}

// toShipmentEntity GORM模型 → 领域实体
func toShipmentEntity(m *ShipmentModel) *shipment.Shipment {
	var deliveryDate time.Time
	if m.DeliveryDate != nil {
		deliveryDate = *m.DeliveryDate
	}
	s := shipment.Reconstitute(m.ID, m.OrderID, m.TrackingNumber, m.Address, m.ContactName, m.Carrier, shipment.ShipmentStatus(m.Status), deliveryDate)
	s.CreatedAt = m.CreatedAt
	s.UpdatedAt = m.UpdatedAt
	return s
}
