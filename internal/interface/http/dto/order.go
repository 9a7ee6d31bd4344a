package dto

// CheckoutRequest HTTP结算下单请求
type CheckoutRequest struct {
	ShipAddress  string `json:"ship_address" binding:"required,max=255" example:"1 Swanston St, Melbourne"`
	ContactName  string `json:"contact_name" binding:"required,max=50" example:"Alice Chen"`
	ContactPhone string `json:"contact_phone" binding:"required,max=20" example:"0400000001"`
}

// UpdateOrderStatusRequest HTTP订单状态推进请求(员工/管理员)
// 目标状态取订单状态枚举值(3处理中 4已打包 5已发货 6已送达 7已失败 8已取消)
type UpdateOrderStatusRequest struct {
	Status int `json:"status" binding:"required,min=3,max=8" example:"3"`
}

// OrderLineResponse HTTP订单明细项
type OrderLineResponse struct {
	ProductID uint   `json:"product_id" example:"1"`
	Name      string `json:"name" example:"手冲咖啡壶"`
	Price     int64  `json:"price" example:"1000"`
	Quantity  int    `json:"quantity" example:"2"`
	LineTotal int64  `json:"line_total" example:"2000"`
}

// OrderResponse HTTP订单响应
type OrderResponse struct {
	ID           uint                `json:"id" example:"1"`
	OrderNo      string              `json:"order_no" example:"ORD1700000000000001"`
	Status       string              `json:"status" example:"待支付"`
	StatusCode   int                 `json:"status_code" example:"1"`
	Subtotal     int64               `json:"subtotal" example:"2000"`
	Tax          int64               `json:"tax" example:"200"`
	Total        int64               `json:"total" example:"2200"`
	TotalYuan    string              `json:"total_yuan" example:"22.00"`
	Lines        []OrderLineResponse `json:"lines"`
	ShipAddress  string              `json:"ship_address"`
	ContactName  string              `json:"contact_name"`
	ContactPhone string              `json:"contact_phone"`
	OrderDate    string              `json:"order_date" example:"2026-08-30 10:30:00"`
}
