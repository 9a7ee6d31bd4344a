package report

import (
	"context"
	"fmt"
	"time"

	"github.com/datpham0412/yourlocalshop/internal/domain/order"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// SalesReportUseCase 销售报表用例(管理员)
// 统计时间段内的订单数与营收总额,已取消/已失败订单不计入
type SalesReportUseCase struct {
	orderRepo order.Repository
}

// NewSalesReportUseCase 创建销售报表用例
func NewSalesReportUseCase(orderRepo order.Repository) *SalesReportUseCase {
	return &SalesReportUseCase{orderRepo: orderRepo}
}

// SalesReportRequest 报表请求
type SalesReportRequest struct {
	From time.Time
	To   time.Time
}

// SalesReportResponse 报表响应
type SalesReportResponse struct {
	From         string `json:"from"`
	To           string `json:"to"`
	TotalOrders  int64  `json:"total_orders"`
	TotalRevenue int64  `json:"total_revenue"` // 分
	RevenueYuan  string `json:"revenue_yuan"`
	GeneratedAt  string `json:"generated_at"` // 报表生成时间
}

// Execute 生成销售报表
func (uc *SalesReportUseCase) Execute(ctx context.Context, req SalesReportRequest) (*SalesReportResponse, error) {
	if req.From.IsZero() || req.To.IsZero() || req.To.Before(req.From) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "无效的统计时间范围")
	}

	totalOrders, totalRevenue, err := uc.orderRepo.SalesBetween(ctx, req.From, req.To)
	if err != nil {
		return nil, err
	}

	return &SalesReportResponse{
		From:         req.From.Format("2006-01-02"),
		To:           req.To.Format("2006-01-02"),
		TotalOrders:  totalOrders,
		TotalRevenue: totalRevenue,
		RevenueYuan:  fmt.Sprintf("%.2f", float64(totalRevenue)/100.0),
		GeneratedAt:  time.Now().Format("2006-01-02 15:04:05"),
	}, nil
}
