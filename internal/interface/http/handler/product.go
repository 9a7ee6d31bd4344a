package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appproduct "github.com/datpham0412/yourlocalshop/internal/application/product"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/dto"
	"github.com/datpham0412/yourlocalshop/pkg/response"
)

// ProductHandler 商品HTTP处理器
// 查询接口对所有人开放,写接口由路由层的角色中间件保护
type ProductHandler struct {
	createUseCase *appproduct.CreateProductUseCase
	getUseCase    *appproduct.GetProductUseCase
	listUseCase   *appproduct.ListProductsUseCase
	updateUseCase *appproduct.UpdateProductUseCase
	deleteUseCase *appproduct.DeleteProductUseCase
}

// NewProductHandler 创建商品处理器
func NewProductHandler(
	createUseCase *appproduct.CreateProductUseCase,
	getUseCase *appproduct.GetProductUseCase,
	listUseCase *appproduct.ListProductsUseCase,
	updateUseCase *appproduct.UpdateProductUseCase,
	deleteUseCase *appproduct.DeleteProductUseCase,
) *ProductHandler {
	return &ProductHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create 新建商品
// @Summary      新建商品
// @Description  创建商品并初始化库存(管理员)
// @Tags         商品
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProductRequest true "商品信息"
// @Success      200 {object} response.Response{data=dto.ProductResponse} "创建成功"
// @Failure      409 {object} response.Response "SKU重复"
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appproduct.CreateProductRequest{
		SKU:          req.SKU,
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		Description:  req.Description,
		InitialStock: req.InitialStock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.ProductResponse{
		ID:        result.ID,
		SKU:       result.SKU,
		Name:      result.Name,
		Category:  result.Category,
		Price:     result.Price,
		PriceYuan: dto.FormatYuan(result.Price),
		Active:    true,
		Stock:     result.Stock,
	})
}

// Get 商品详情
// @Summary      商品详情
// @Description  按ID查询商品,含当前库存
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response{data=dto.ProductResponse} "查询成功"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "商品ID格式错误")
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.ProductResponse{
		ID:          result.ID,
		SKU:         result.SKU,
		Name:        result.Name,
		Category:    result.Category,
		Price:       result.Price,
		PriceYuan:   dto.FormatYuan(result.Price),
		Description: result.Description,
		Active:      result.Active,
		Stock:       result.Stock,
	})
}

// List 商品列表
// @Summary      商品列表
// @Description  分页查询商品,支持关键词、分类过滤和价格排序
// @Tags         商品
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Param        keyword query string false "搜索关键词"
// @Param        category query string false "分类"
// @Param        sort_by query string false "排序" Enums(price_asc, price_desc)
// @Success      200 {object} response.Response "查询成功"
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	items, total, err := h.listUseCase.Execute(c.Request.Context(), appproduct.ListProductsRequest{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("keyword"),
		Category: c.Query("category"),
		SortBy:   c.Query("sort_by"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]dto.ProductListItem, 0, len(items))
	for _, item := range items {
		list = append(list, dto.ProductListItem{
			ID:        item.ID,
			SKU:       item.SKU,
			Name:      item.Name,
			Category:  item.Category,
			Price:     item.Price,
			PriceYuan: dto.FormatYuan(item.Price),
			Active:    item.Active,
		})
	}
	response.SuccessWithPage(c, list, total, page, pageSize)
}

// Update 更新商品
// @Summary      更新商品
// @Description  修改商品信息或价格(管理员)
// @Tags         商品
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "商品ID"
// @Param        request body dto.UpdateProductRequest true "更新内容"
// @Success      200 {object} response.Response "更新成功"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "商品ID格式错误")
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	if err := h.updateUseCase.Execute(c.Request.Context(), appproduct.UpdateProductRequest{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
	}); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Delete 下架商品
// @Summary      下架商品
// @Description  软删除商品,历史订单不受影响(管理员)
// @Tags         商品
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.ErrorWithCode(c, 40900, "商品ID格式错误")
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// parseUintParam 解析路径参数为uint
func parseUintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
