package handler

import (
	"github.com/gin-gonic/gin"

	apppayment "github.com/datpham0412/yourlocalshop/internal/application/payment"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/dto"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/middleware"
	"github.com/datpham0412/yourlocalshop/pkg/response"
)

// PaymentHandler 支付与发票HTTP处理器
type PaymentHandler struct {
	payOrderUseCase        *apppayment.PayOrderUseCase
	generateInvoiceUseCase *apppayment.GenerateInvoiceUseCase
	getInvoiceUseCase      *apppayment.GetInvoiceUseCase
}

// NewPaymentHandler 创建支付处理器
func NewPaymentHandler(
	payOrderUseCase *apppayment.PayOrderUseCase,
	generateInvoiceUseCase *apppayment.GenerateInvoiceUseCase,
	getInvoiceUseCase *apppayment.GetInvoiceUseCase,
) *PaymentHandler {
	return &PaymentHandler{
		payOrderUseCase:        payOrderUseCase,
		generateInvoiceUseCase: generateInvoiceUseCase,
		getInvoiceUseCase:      getInvoiceUseCase,
	}
}

// Pay 支付订单
// @Summary      支付订单
// @Description  支付本人的待支付订单:扣减库存、订单转已支付、创建物流单并触发通知
// @Tags         支付
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "订单ID"
// @Param        request body dto.PayOrderRequest true "支付方式"
// @Success      200 {object} response.Response{data=dto.PaymentResponse} "支付成功"
// @Failure      400 {object} response.Response "订单不可支付或库存不足"
// @Failure      409 {object} response.Response "订单已支付"
// @Router       /api/v1/orders/{id}/payment [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	orderID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "订单ID格式错误")
		return
	}

	var req dto.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.payOrderUseCase.Execute(c.Request.Context(), apppayment.PayOrderRequest{
		OrderID:    orderID,
		CustomerID: middleware.MustGetAccountID(c),
		Method:     req.Method,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.PaymentResponse{
		PaymentID:   result.PaymentID,
		OrderID:     result.OrderID,
		OrderNo:     result.OrderNo,
		Amount:      result.Amount,
		AmountYuan:  dto.FormatYuan(result.Amount),
		Status:      result.Status,
		PaymentDate: result.PaymentDate,
		TrackingNo:  result.TrackingNo,
	})
}

// GenerateInvoice 生成发票
// @Summary      生成发票
// @Description  按支付单开具发票,重复请求返回冲突
// @Tags         支付
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "支付ID"
// @Success      200 {object} response.Response{data=dto.InvoiceResponse} "开具成功"
// @Failure      404 {object} response.Response "支付记录不存在"
// @Failure      409 {object} response.Response "发票已存在"
// @Router       /api/v1/payments/{id}/invoice [post]
func (h *PaymentHandler) GenerateInvoice(c *gin.Context) {
	paymentID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "支付ID格式错误")
		return
	}

	view, err := h.generateInvoiceUseCase.Execute(c.Request.Context(), apppayment.GenerateInvoiceRequest{
		PaymentID:   paymentID,
		RequesterID: middleware.MustGetAccountID(c),
		Admin:       middleware.IsStaff(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newInvoiceResponse(view))
}

// GetInvoice 查询发票
// @Summary      查询发票
// @Description  按订单查询已开具的发票
// @Tags         支付
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.InvoiceResponse} "查询成功"
// @Failure      404 {object} response.Response "发票不存在"
// @Router       /api/v1/orders/{id}/invoice [get]
func (h *PaymentHandler) GetInvoice(c *gin.Context) {
	orderID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "订单ID格式错误")
		return
	}

	view, err := h.getInvoiceUseCase.Execute(c.Request.Context(), orderID, middleware.MustGetAccountID(c), middleware.IsStaff(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newInvoiceResponse(view))
}

// newInvoiceResponse 应用层视图 → HTTP响应
func newInvoiceResponse(view *apppayment.InvoiceView) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:            view.ID,
		InvoiceNumber: view.InvoiceNumber,
		PaymentID:     view.PaymentID,
		OrderID:       view.OrderID,
		Amount:        view.Amount,
		AmountYuan:    dto.FormatYuan(view.Amount),
		IssueDate:     view.IssueDate,
	}
}
