package dto

import "fmt"

// CreateProductRequest HTTP新建商品请求(管理员)
type CreateProductRequest struct {
	SKU          string `json:"sku" binding:"required,max=32" example:"KET-POUR-01"`
	Name         string `json:"name" binding:"required,max=200" example:"手冲咖啡壶"`
	Category     string `json:"category" binding:"omitempty,max=50" example:"厨具"`
	Price        int64  `json:"price" binding:"required,min=1,max=99999999" example:"1000"` // 单价(分)
	Description  string `json:"description" binding:"max=5000"`
	InitialStock int    `json:"initial_stock" binding:"min=0" example:"10"`
}

// UpdateProductRequest HTTP更新商品请求(管理员)
// 空字段表示不修改
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"omitempty,max=200"`
	Category    string `json:"category" binding:"omitempty,max=50"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	Price       *int64 `json:"price" binding:"omitempty,min=1,max=99999999"`
}

// ProductResponse HTTP商品详情响应
type ProductResponse struct {
	ID          uint   `json:"id" example:"1"`
	SKU         string `json:"sku" example:"KET-POUR-01"`
	Name        string `json:"name" example:"手冲咖啡壶"`
	Category    string `json:"category" example:"厨具"`
	Price       int64  `json:"price" example:"1000"`
	PriceYuan   string `json:"price_yuan" example:"10.00"` // 元,方便前端显示
	Description string `json:"description"`
	Active      bool   `json:"active" example:"true"`
	Stock       int    `json:"stock" example:"10"`
}

// ProductListItem HTTP商品列表项(不含描述,减少传输量)
type ProductListItem struct {
	ID        uint   `json:"id" example:"1"`
	SKU       string `json:"sku" example:"KET-POUR-01"`
	Name      string `json:"name" example:"手冲咖啡壶"`
	Category  string `json:"category" example:"厨具"`
	Price     int64  `json:"price" example:"1000"`
	PriceYuan string `json:"price_yuan" example:"10.00"`
	Active    bool   `json:"active" example:"true"`
}

// AdjustStockRequest HTTP库存调整请求(管理员/员工)
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required" example:"5"` // 正数入库,负数核减
}

// StockResponse HTTP库存响应
type StockResponse struct {
	ProductID uint `json:"product_id" example:"1"`
	Quantity  int  `json:"quantity" example:"15"`
}

// FormatYuan 分 → 元字符串
func FormatYuan(fen int64) string {
	return fmt.Sprintf("%.2f", float64(fen)/100.0)
}
