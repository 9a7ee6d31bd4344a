package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/datpham0412/yourlocalshop/internal/application/cart"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/dto"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/middleware"
	"github.com/datpham0412/yourlocalshop/pkg/response"
)

// CartHandler 购物车HTTP处理器
// 购物车归属当前登录顾客,所有接口都从Token取身份,不接受路径里的顾客ID
type CartHandler struct {
	addItemUseCase    *appcart.AddItemUseCase
	viewCartUseCase   *appcart.ViewCartUseCase
	updateItemUseCase *appcart.UpdateItemUseCase
	removeItemUseCase *appcart.RemoveItemUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	addItemUseCase *appcart.AddItemUseCase,
	viewCartUseCase *appcart.ViewCartUseCase,
	updateItemUseCase *appcart.UpdateItemUseCase,
	removeItemUseCase *appcart.RemoveItemUseCase,
) *CartHandler {
	return &CartHandler{
		addItemUseCase:    addItemUseCase,
		viewCartUseCase:   viewCartUseCase,
		updateItemUseCase: updateItemUseCase,
		removeItemUseCase: removeItemUseCase,
	}
}

// AddItem 加入购物车
// @Summary      加入购物车
// @Description  添加商品到当前顾客的购物车,数量超出库存时按库存截断
// @Tags         购物车
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.AddCartItemRequest true "商品与数量"
// @Success      200 {object} response.Response{data=dto.CartResponse} "添加成功"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	view, err := h.addItemUseCase.Execute(c.Request.Context(), appcart.AddItemRequest{
		CustomerID: middleware.MustGetAccountID(c),
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newCartResponse(view))
}

// View 查看购物车
// @Summary      查看购物车
// @Description  查询当前顾客的购物车,未创建时返回空车
// @Tags         购物车
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} response.Response{data=dto.CartResponse} "查询成功"
// @Router       /api/v1/cart [get]
func (h *CartHandler) View(c *gin.Context) {
	view, err := h.viewCartUseCase.Execute(c.Request.Context(), middleware.MustGetAccountID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newCartResponse(view))
}

// UpdateItem 修改购物车明细
// @Summary      修改购物车明细
// @Description  调整明细数量,数量为0等价于移除
// @Tags         购物车
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        item_id path int true "明细ID"
// @Param        request body dto.UpdateCartItemRequest true "新数量"
// @Success      200 {object} response.Response{data=dto.CartResponse} "修改成功"
// @Failure      404 {object} response.Response "明细不存在"
// @Router       /api/v1/cart/items/{item_id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, err := parseUintParam(c, "item_id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "明细ID格式错误")
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	view, err := h.updateItemUseCase.Execute(c.Request.Context(), appcart.UpdateItemRequest{
		CustomerID: middleware.MustGetAccountID(c),
		ItemID:     itemID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newCartResponse(view))
}

// RemoveItem 移除购物车明细
// @Summary      移除购物车明细
// @Tags         购物车
// @Security     BearerAuth
// @Produce      json
// @Param        item_id path int true "明细ID"
// @Success      200 {object} response.Response{data=dto.CartResponse} "移除成功"
// @Failure      404 {object} response.Response "明细不存在"
// @Router       /api/v1/cart/items/{item_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := parseUintParam(c, "item_id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "明细ID格式错误")
		return
	}

	view, err := h.removeItemUseCase.Execute(c.Request.Context(), middleware.MustGetAccountID(c), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, newCartResponse(view))
}

// newCartResponse 应用层视图 → HTTP响应
func newCartResponse(view *appcart.CartView) *dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, dto.CartItemResponse{
			ItemID:    item.ItemID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}
	return &dto.CartResponse{
		Items:     items,
		Subtotal:  view.Subtotal,
		Tax:       view.Tax,
		Total:     view.Total,
		TotalYuan: dto.FormatYuan(view.Total),
	}
}
