package dto

// AddCartItemRequest HTTP加购请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required" example:"1"`
	Quantity  int  `json:"quantity" binding:"required,min=1" example:"2"`
}

// UpdateCartItemRequest HTTP修改明细请求
// 数量为0等价于移除该明细
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0" example:"3"`
}

// CartItemResponse HTTP购物车明细项
type CartItemResponse struct {
	ItemID    uint   `json:"item_id" example:"1"`
	ProductID uint   `json:"product_id" example:"1"`
	Name      string `json:"name" example:"手冲咖啡壶"`
	Price     int64  `json:"price" example:"1000"`
	Quantity  int    `json:"quantity" example:"2"`
	LineTotal int64  `json:"line_total" example:"2000"`
}

// CartResponse HTTP购物车响应
type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	Subtotal  int64              `json:"subtotal" example:"2000"`
	Tax       int64              `json:"tax" example:"200"`
	Total     int64              `json:"total" example:"2200"`
	TotalYuan string             `json:"total_yuan" example:"22.00"`
}
