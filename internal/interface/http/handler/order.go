package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apporder "github.com/datpham0412/yourlocalshop/internal/application/order"
	"github.com/datpham0412/yourlocalshop/internal/domain/order"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/dto"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/middleware"
	"github.com/datpham0412/yourlocalshop/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	checkoutUseCase     *apporder.CheckoutUseCase
	getOrderUseCase     *apporder.GetOrderUseCase
	listOrdersUseCase   *apporder.ListOrdersUseCase
	updateStatusUseCase *apporder.UpdateStatusUseCase
	cancelOrderUseCase  *apporder.CancelOrderUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	checkoutUseCase *apporder.CheckoutUseCase,
	getOrderUseCase *apporder.GetOrderUseCase,
	listOrdersUseCase *apporder.ListOrdersUseCase,
	updateStatusUseCase *apporder.UpdateStatusUseCase,
	cancelOrderUseCase *apporder.CancelOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		checkoutUseCase:     checkoutUseCase,
		getOrderUseCase:     getOrderUseCase,
		listOrdersUseCase:   listOrdersUseCase,
		updateStatusUseCase: updateStatusUseCase,
		cancelOrderUseCase:  cancelOrderUseCase,
	}
}

// Checkout 结算下单
// @Summary      结算下单
// @Description  以当前购物车快照创建待支付订单并清空购物车
// @Tags         订单
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CheckoutRequest true "收货信息"
// @Success      200 {object} response.Response "下单成功"
// @Failure      400 {object} response.Response "购物车为空或库存不足"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.checkoutUseCase.Execute(c.Request.Context(), apporder.CheckoutRequest{
		CustomerID:   middleware.MustGetAccountID(c),
		ShipAddress:  req.ShipAddress,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Get 订单详情
// @Summary      订单详情
// @Description  顾客只能查看本人订单;员工/管理员可查看全部
// @Tags         订单
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.OrderResponse} "查询成功"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "订单ID格式错误")
		return
	}

	detail, err := h.getOrderUseCase.Execute(c.Request.Context(), id, middleware.MustGetAccountID(c), middleware.IsStaff(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newOrderResponse(detail))
}

// List 我的订单列表
// @Summary      我的订单列表
// @Description  按下单时间倒序分页查询当前顾客的订单
// @Tags         订单
// @Security     BearerAuth
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	details, total, err := h.listOrdersUseCase.Execute(c.Request.Context(), middleware.MustGetAccountID(c), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]*dto.OrderResponse, 0, len(details))
	for _, detail := range details {
		list = append(list, newOrderResponse(detail))
	}
	response.SuccessWithPage(c, list, total, page, pageSize)
}

// UpdateStatus 推进订单状态
// @Summary      推进订单状态
// @Description  履约流转:处理中→已打包→已发货→已送达;支持标记失败/取消(员工/管理员)
// @Tags         订单
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdateOrderStatusRequest true "目标状态"
// @Success      200 {object} response.Response{data=dto.OrderResponse} "推进成功"
// @Failure      400 {object} response.Response "非法状态流转"
// @Router       /api/v1/orders/{id}/status [post]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "订单ID格式错误")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	detail, err := h.updateStatusUseCase.Execute(c.Request.Context(), apporder.UpdateStatusRequest{
		OrderID: id,
		Target:  order.OrderStatus(req.Status),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newOrderResponse(detail))
}

// Cancel 取消订单
// @Summary      取消订单
// @Description  顾客取消本人未发货的订单
// @Tags         订单
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.OrderResponse} "取消成功"
// @Failure      400 {object} response.Response "当前状态不可取消"
// @Router       /api/v1/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "订单ID格式错误")
		return
	}

	detail, err := h.cancelOrderUseCase.Execute(c.Request.Context(), id, middleware.MustGetAccountID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newOrderResponse(detail))
}

// newOrderResponse 应用层详情 → HTTP响应
func newOrderResponse(detail *apporder.OrderDetail) *dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(detail.Lines))
	for _, line := range detail.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal,
		})
	}
	return &dto.OrderResponse{
		ID:           detail.ID,
		OrderNo:      detail.OrderNo,
		Status:       detail.Status,
		StatusCode:   detail.StatusCode,
		Subtotal:     detail.Subtotal,
		Tax:          detail.Tax,
		Total:        detail.Total,
		TotalYuan:    dto.FormatYuan(detail.Total),
		Lines:        lines,
		ShipAddress:  detail.ShipAddress,
		ContactName:  detail.ContactName,
		ContactPhone: detail.ContactPhone,
		OrderDate:    detail.OrderDate,
	}
}
