package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appinventory "github.com/datpham0412/yourlocalshop/internal/application/inventory"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/dto"
	"github.com/datpham0412/yourlocalshop/pkg/response"
)

// InventoryHandler 库存HTTP处理器(员工/管理员)
type InventoryHandler struct {
	listStocksUseCase  *appinventory.ListStocksUseCase
	getStockUseCase    *appinventory.GetStockUseCase
	adjustStockUseCase *appinventory.AdjustStockUseCase
}

// NewInventoryHandler 创建库存处理器
func NewInventoryHandler(
	listStocksUseCase *appinventory.ListStocksUseCase,
	getStockUseCase *appinventory.GetStockUseCase,
	adjustStockUseCase *appinventory.AdjustStockUseCase,
) *InventoryHandler {
	return &InventoryHandler{
		listStocksUseCase:  listStocksUseCase,
		getStockUseCase:    getStockUseCase,
		adjustStockUseCase: adjustStockUseCase,
	}
}

// List 库存总览
// @Summary      库存总览
// @Description  按商品分页查询当前可用库存(员工/管理员)
// @Tags         库存
// @Security     BearerAuth
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	items, total, err := h.listStocksUseCase.Execute(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, items, total, page, pageSize)
}

// Get 查询商品库存
// @Summary      查询商品库存
// @Tags         库存
// @Security     BearerAuth
// @Produce      json
// @Param        product_id path int true "商品ID"
// @Success      200 {object} response.Response{data=dto.StockResponse} "查询成功"
// @Failure      404 {object} response.Response "库存记录不存在"
// @Router       /api/v1/inventory/{product_id} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	productID, err := parseUintParam(c, "product_id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "商品ID格式错误")
		return
	}

	result, err := h.getStockUseCase.Execute(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.StockResponse{
		ProductID: result.ProductID,
		Quantity:  result.Quantity,
	})
}

// Adjust 调整库存
// @Summary      调整库存
// @Description  按增量调整商品库存,正数入库负数核减(员工/管理员)
// @Tags         库存
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        product_id path int true "商品ID"
// @Param        request body dto.AdjustStockRequest true "调整量"
// @Success      200 {object} response.Response{data=dto.StockResponse} "调整成功"
// @Failure      400 {object} response.Response "库存不足"
// @Router       /api/v1/inventory/{product_id} [put]
func (h *InventoryHandler) Adjust(c *gin.Context) {
	productID, err := parseUintParam(c, "product_id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "商品ID格式错误")
		return
	}

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.adjustStockUseCase.Execute(c.Request.Context(), appinventory.AdjustStockRequest{
		ProductID: productID,
		Delta:     req.Delta,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.StockResponse{
		ProductID: result.ProductID,
		Quantity:  result.Quantity,
	})
}
