package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appshipment "github.com/datpham0412/yourlocalshop/internal/application/shipment"
	"github.com/datpham0412/yourlocalshop/internal/domain/shipment"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/dto"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/middleware"
	"github.com/datpham0412/yourlocalshop/pkg/response"
)

// ShipmentHandler 物流HTTP处理器
type ShipmentHandler struct {
	updateShipmentUseCase *appshipment.UpdateShipmentUseCase
	getShipmentUseCase    *appshipment.GetShipmentUseCase
}

// NewShipmentHandler 创建物流处理器
func NewShipmentHandler(
	updateShipmentUseCase *appshipment.UpdateShipmentUseCase,
	getShipmentUseCase *appshipment.GetShipmentUseCase,
) *ShipmentHandler {
	return &ShipmentHandler{
		updateShipmentUseCase: updateShipmentUseCase,
		getShipmentUseCase:    getShipmentUseCase,
	}
}

// UpdateStatus 物流状态回传
// @Summary      物流状态回传
// @Description  记录承运方回传的物流状态;发出时触发通知,送达时记录时间(员工/管理员)
// @Tags         物流
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "物流单ID"
// @Param        request body dto.UpdateShipmentRequest true "物流状态"
// @Success      200 {object} response.Response{data=dto.ShipmentResponse} "回传成功"
// @Failure      404 {object} response.Response "物流单不存在"
// @Router       /api/v1/shipments/{id}/status [put]
func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	shipmentID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "物流单ID格式错误")
		return
	}

	var req dto.UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	var deliveredAt time.Time
	if req.DeliveredAt != "" {
		deliveredAt, err = time.ParseInLocation("2006-01-02 15:04:05", req.DeliveredAt, time.Local)
		if err != nil {
			response.ErrorWithCode(c, 40900, "送达时间格式错误,期望 2006-01-02 15:04:05")
			return
		}
	}

	view, err := h.updateShipmentUseCase.Execute(c.Request.Context(), appshipment.UpdateShipmentRequest{
		ShipmentID:  shipmentID,
		Status:      shipment.ShipmentStatus(req.Status),
		Carrier:     req.Carrier,
		DeliveredAt: deliveredAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newShipmentResponse(view))
}

// Get 查询物流单
// @Summary      查询物流单
// @Description  顾客查询本人订单的物流;员工/管理员可查全部
// @Tags         物流
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.ShipmentResponse} "查询成功"
// @Failure      404 {object} response.Response "物流单不存在"
// @Router       /api/v1/orders/{id}/shipment [get]
func (h *ShipmentHandler) Get(c *gin.Context) {
	orderID, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "订单ID格式错误")
		return
	}

	view, err := h.getShipmentUseCase.Execute(c.Request.Context(), orderID, middleware.MustGetAccountID(c), middleware.IsStaff(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newShipmentResponse(view))
}

// newShipmentResponse 应用层视图 → HTTP响应
func newShipmentResponse(view *appshipment.ShipmentView) *dto.ShipmentResponse {
	return &dto.ShipmentResponse{
		ID:             view.ID,
		OrderID:        view.OrderID,
		TrackingNumber: view.TrackingNumber,
		Address:        view.Address,
		ContactName:    view.ContactName,
		Carrier:        view.Carrier,
		Status:         view.Status,
		StatusCode:     view.StatusCode,
		DeliveryDate:   view.DeliveryDate,
	}
}
