package cart

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/cart"
)

// ViewCartUseCase 查看购物车用例
type ViewCartUseCase struct {
	cartRepo cart.Repository
}

// NewViewCartUseCase 创建查看购物车用例
func NewViewCartUseCase(cartRepo cart.Repository) *ViewCartUseCase {
	return &ViewCartUseCase{cartRepo: cartRepo}
}

// Execute 查看购物车
// 账户尚未建档购物车时返回空购物车视图(而非404)
func (uc *ViewCartUseCase) Execute(ctx context.Context, customerID uint) (*CartView, error) {
	c, err := uc.cartRepo.FindByCustomerID(ctx, customerID)
	if err == cart.ErrCartNotFound {
		return newCartView(cart.NewShoppingCart(customerID)), nil
	}
	if err != nil {
		return nil, err
	}
	return newCartView(c), nil
}

// CartView 购物车视图DTO
type CartView struct {
	Items    []CartItemView `json:"items"`
	Subtotal int64          `json:"subtotal"`
	Tax      int64          `json:"tax"`
	Total    int64          `json:"total"`
}

// CartItemView 购物车明细项DTO
type CartItemView struct {
	ItemID    uint   `json:"item_id"`
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

// newCartView 领域实体 → 视图DTO
func newCartView(c *cart.ShoppingCart) *CartView {
	items := make([]CartItemView, len(c.Items))
	for i, item := range c.Items {
		items[i] = CartItemView{
			ItemID:    item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal(),
		}
	}
	return &CartView{
		Items:    items,
		Subtotal: c.Subtotal,
		Tax:      c.Tax,
		Total:    c.Total,
	}
}
