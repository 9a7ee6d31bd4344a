package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/datpham0412/yourlocalshop/internal/domain/order"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单
// 订单与明细通过GORM关联一次写入,外层事务保证原子性
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := toOrderModel(o)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建订单失败")
	}

	// 回填自增ID
	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt
	for i := range model.Lines {
		o.Lines[i].ID = model.Lines[i].ID
		o.Lines[i].OrderID = model.ID
	}
	return nil
}

// FindByID 根据ID查找订单(含明细)
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := dbFromContext(ctx, r.db).Preload("Lines").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

// FindByOrderNo 根据订单号查找订单
func (r *orderRepository) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	var model OrderModel
	err := dbFromContext(ctx, r.db).Preload("Lines").Where("order_no = ?", orderNo).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

// Update 更新订单
// 明细在下单后不可变,只更新订单头(状态/收货信息)
func (r *orderRepository) Update(ctx context.Context, o *order.Order) error {
	err := dbFromContext(ctx, r.db).
		Model(&OrderModel{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"status":        int(o.Status),
			"ship_address":  o.ShipAddress,
			"contact_name":  o.ContactName,
			"contact_phone": o.ContactPhone,
		}).Error
	if err != nil {
		return apperrors.Wrap(err, "更新订单失败")
	}
	return nil
}

// ListByCustomerID 分页查询账户订单(新订单在前)
func (r *orderRepository) ListByCustomerID(ctx context.Context, customerID uint, page, pageSize int) ([]*order.Order, int64, error) {
	db := dbFromContext(ctx, r.db).Model(&OrderModel{}).Where("customer_id = ?", customerID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "统计订单总数失败")
	}

	var models []OrderModel
	offset := (page - 1) * pageSize
	err := db.Preload("Lines").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, total, nil
}

// SalesBetween 统计时间段内的订单数与营收总额
// 已取消/已失败订单不计入
func (r *orderRepository) SalesBetween(ctx context.Context, from, to time.Time) (int64, int64, error) {
	type row struct {
		TotalOrders  int64
		TotalRevenue int64
	}

	var result row
	err := dbFromContext(ctx, r.db).
		Model(&OrderModel{}).
		Select("COUNT(*) AS total_orders, COALESCE(SUM(total), 0) AS total_revenue").
		Where("order_date >= ? AND order_date < ?", from, to).
		Where("status NOT IN ?", []int{int(order.OrderStatusFailed), int(order.OrderStatusCancelled)}).
		Scan(&result).Error
	if err != nil {
		return 0, 0, apperrors.Wrap(err, "统计销售数据失败")
	}
	return result.TotalOrders, result.TotalRevenue, nil
}

// toOrderModel 领域实体 → GORM模型
func toOrderModel(o *order.Order) *OrderModel {
	lines := make([]OrderLineModel, len(o.Lines))
	for i, line := range o.Lines {
		lines[i] = OrderLineModel{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal,
		}
	}
	return &OrderModel{
		ID:           o.ID,
		OrderNo:      o.OrderNo,
		CustomerID:   o.CustomerID,
		OrderDate:    o.OrderDate,
		Status:       int(o.Status),
		Subtotal:     o.Subtotal,
		Tax:          o.Tax,
		Total:        o.Total,
		ShipAddress:  o.ShipAddress,
		ContactName:  o.ContactName,
		ContactPhone: o.ContactPhone,
		Lines:        lines,
	}
}

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(m *OrderModel) *order.Order {
	lines := make([]order.OrderLine, len(m.Lines))
	for i, line := range m.Lines {
		lines[i] = order.OrderLine{
			ID:        line.ID,
			OrderID:   line.OrderID,
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal,
		}
	}
	return &order.Order{
		ID:           m.ID,
		OrderNo:      m.OrderNo,
		CustomerID:   m.CustomerID,
		OrderDate:    m.OrderDate,
		Status:       order.OrderStatus(m.Status),
		Subtotal:     m.Subtotal,
		Tax:          m.Tax,
		Total:        m.Total,
		Lines:        lines,
		ShipAddress:  m.ShipAddress,
		ContactName:  m.ContactName,
		ContactPhone: m.ContactPhone,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
