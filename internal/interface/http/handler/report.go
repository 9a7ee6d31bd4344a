package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appreport "github.com/datpham0412/yourlocalshop/internal/application/report"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/dto"
	"github.com/datpham0412/yourlocalshop/pkg/response"
)

// ReportHandler 报表HTTP处理器
type ReportHandler struct {
	salesReportUseCase *appreport.SalesReportUseCase
}

// NewReportHandler 创建报表处理器
func NewReportHandler(salesReportUseCase *appreport.SalesReportUseCase) *ReportHandler {
	return &ReportHandler{salesReportUseCase: salesReportUseCase}
}

// Sales 销售报表
// @Summary      销售报表
// @Description  统计时间范围内的有效订单数与销售总额,不含失败/取消订单(管理员)
// @Tags         报表
// @Security     BearerAuth
// @Produce      json
// @Param        from query string true "开始日期" example(2026-08-01)
// @Param        to query string true "结束日期(不含)" example(2026-09-01)
// @Success      200 {object} response.Response{data=dto.SalesReportResponse} "统计成功"
// @Failure      400 {object} response.Response "时间范围无效"
// @Router       /api/v1/reports/sales [get]
func (h *ReportHandler) Sales(c *gin.Context) {
	from, err := time.ParseInLocation("2006-01-02", c.Query("from"), time.Local)
	if err != nil {
		response.ErrorWithCode(c, 40900, "开始日期格式错误,期望 2006-01-02")
		return
	}
	to, err := time.ParseInLocation("2006-01-02", c.Query("to"), time.Local)
	if err != nil {
		response.ErrorWithCode(c, 40900, "结束日期格式错误,期望 2006-01-02")
		return
	}

	result, err := h.salesReportUseCase.Execute(c.Request.Context(), appreport.SalesReportRequest{
		From: from,
		To:   to,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.SalesReportResponse{
		From:         result.From,
		To:           result.To,
		TotalOrders:  result.TotalOrders,
		TotalRevenue: result.TotalRevenue,
		RevenueYuan:  result.RevenueYuan,
		GeneratedAt:  result.GeneratedAt,
	})
}
