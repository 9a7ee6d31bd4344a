package order

import (
	"context"
	"time"

	"github.com/datpham0412/yourlocalshop/internal/domain/order"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// GetOrderUseCase 订单详情用例
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建订单详情用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// OrderDetail 订单详情DTO
type OrderDetail struct {
	ID           uint            `json:"id"`
	OrderNo      string          `json:"order_no"`
	Status       string          `json:"status"`
	StatusCode   int             `json:"status_code"`
	Subtotal     int64           `json:"subtotal"`
	Tax          int64           `json:"tax"`
	Total        int64           `json:"total"`
	Lines        []OrderLineView `json:"lines"`
	ShipAddress  string          `json:"ship_address"`
	ContactName  string          `json:"contact_name"`
	ContactPhone string          `json:"contact_phone"`
	OrderDate    string          `json:"order_date"`
}

// OrderLineView 订单明细项DTO
type OrderLineView struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

// Execute 获取订单详情
// requesterID用于归属校验:顾客只能查看自己的订单;
// admin为true时跳过归属校验(员工/管理员)
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID, requesterID uint, admin bool) (*OrderDetail, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !admin && !o.IsOwnedBy(requesterID) {
		// 不暴露他人订单是否存在
		return nil, apperrors.ErrOrderNotFound
	}

	return newOrderDetail(o), nil
}

// ListOrdersUseCase 订单列表用例(按账户分页)
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// Execute 分页查询账户订单
func (uc *ListOrdersUseCase) Execute(ctx context.Context, customerID uint, page, pageSize int) ([]*OrderDetail, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	orders, total, err := uc.orderRepo.ListByCustomerID(ctx, customerID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	details := make([]*OrderDetail, len(orders))
	for i, o := range orders {
		details[i] = newOrderDetail(o)
	}
	return details, total, nil
}

// newOrderDetail 领域实体 → 详情DTO
func newOrderDetail(o *order.Order) *OrderDetail {
	lines := make([]OrderLineView, len(o.Lines))
	for i, line := range o.Lines {
		lines[i] = OrderLineView{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal,
		}
	}
	return &OrderDetail{
		ID:           o.ID,
		OrderNo:      o.OrderNo,
		Status:       o.Status.String(),
		StatusCode:   int(o.Status),
		Subtotal:     o.Subtotal,
		Tax:          o.Tax,
		Total:        o.Total,
		Lines:        lines,
		ShipAddress:  o.ShipAddress,
		ContactName:  o.ContactName,
		ContactPhone: o.ContactPhone,
		OrderDate:    o.OrderDate.Format(time.DateTime),
	}
}
