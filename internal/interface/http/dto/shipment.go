package dto

// UpdateShipmentRequest HTTP物流回传请求(员工/管理员)
// 状态取物流状态枚举值(1待发货 2已发出 3运输中 4已送达)
type UpdateShipmentRequest struct {
	Status      int    `json:"status" binding:"required,min=1,max=4" example:"2"`
	Carrier     string `json:"carrier" binding:"omitempty,max=50" example:"AusPost"`
	DeliveredAt string `json:"delivered_at" binding:"omitempty" example:"2026-08-30 15:00:00"` // 仅Delivered时有意义
}

// ShipmentResponse HTTP物流单响应
type ShipmentResponse struct {
	ID             uint   `json:"id" example:"1"`
	OrderID        uint   `json:"order_id" example:"1"`
	TrackingNumber string `json:"tracking_number" example:"SHP17000000000000001234"`
	Address        string `json:"address" example:"墨尔本柯林斯街1号"`
	ContactName    string `json:"contact_name" example:"张三"`
	Carrier        string `json:"carrier" example:"AusPost"`
	Status         string `json:"status" example:"已发出"`
	StatusCode     int    `json:"status_code" example:"2"`
	DeliveryDate   string `json:"delivery_date,omitempty" example:"2026-08-30 15:00:00"`
}
