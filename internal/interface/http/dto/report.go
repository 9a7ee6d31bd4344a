package dto

// SalesReportResponse HTTP销售报表响应(管理员)
type SalesReportResponse struct {
	From         string `json:"from" example:"2026-08-01"`
	To           string `json:"to" example:"2026-08-31"`
	TotalOrders  int64  `json:"total_orders" example:"42"`
	TotalRevenue int64  `json:"total_revenue" example:"924000"` // 分
	RevenueYuan  string `json:"revenue_yuan" example:"9240.00"`
	GeneratedAt  string `json:"generated_at" example:"2026-08-30 12:00:00"`
}
