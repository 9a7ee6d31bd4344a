package dto

// PayOrderRequest HTTP支付请求
type PayOrderRequest struct {
	Method string `json:"method" binding:"required,oneof=card cash" example:"card"`
}

// PaymentResponse HTTP支付响应
type PaymentResponse struct {
	PaymentID   uint   `json:"payment_id" example:"1"`
	OrderID     uint   `json:"order_id" example:"1"`
	OrderNo     string `json:"order_no" example:"ORD1700000000000001"`
	Amount      int64  `json:"amount" example:"2200"`
	AmountYuan  string `json:"amount_yuan" example:"22.00"`
	Status      string `json:"status" example:"支付成功"`
	PaymentDate string `json:"payment_date" example:"2026-08-30 10:31:00"`
	TrackingNo  string `json:"tracking_no" example:"SHP17000000000000001234"`
}

// InvoiceResponse HTTP发票响应
type InvoiceResponse struct {
	ID            uint   `json:"id" example:"1"`
	InvoiceNumber string `json:"invoice_number" example:"INV-1-20260830103100"`
	PaymentID     uint   `json:"payment_id" example:"1"`
	OrderID       uint   `json:"order_id" example:"1"`
	Amount        int64  `json:"amount" example:"2200"`
	AmountYuan    string `json:"amount_yuan" example:"22.00"`
	IssueDate     string `json:"issue_date" example:"2026-08-30 10:31:00"`
}
