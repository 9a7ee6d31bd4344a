package cart

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/cart"
	"github.com/datpham0412/yourlocalshop/internal/domain/inventory"
	"github.com/datpham0412/yourlocalshop/internal/domain/product"
)

// UpdateItemUseCase 修改购物车明细用例
// 修改数量时刷新商品快照(名称/价格取当前值)并按库存夹紧;
// 数量为0等价于移除
type UpdateItemUseCase struct {
	cartRepo    cart.Repository
	productRepo product.Repository
	stockRepo   inventory.Repository
	taxRate     float64
}

// NewUpdateItemUseCase 创建修改明细用例
func NewUpdateItemUseCase(
	cartRepo cart.Repository,
	productRepo product.Repository,
	stockRepo inventory.Repository,
	taxRate float64,
) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		taxRate:     taxRate,
	}
}

// UpdateItemRequest 修改明细请求
type UpdateItemRequest struct {
	CustomerID uint
	ItemID     uint
	Quantity   int
}

// Execute 执行修改明细
func (uc *UpdateItemUseCase) Execute(ctx context.Context, req UpdateItemRequest) (*CartView, error) {
	if req.Quantity < 0 {
		return nil, cart.ErrInvalidQuantity
	}

	c, err := uc.cartRepo.FindByCustomerID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	if req.Quantity == 0 {
		if err := c.RemoveItem(req.ItemID); err != nil {
			return nil, err
		}
	} else {
		item := findItem(c, req.ItemID)
		if item == nil {
			return nil, cart.ErrItemNotFound
		}

		p, err := uc.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		stock, err := uc.stockRepo.FindByProductID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		snapshot := cart.ProductSnapshot{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
		}
		if err := c.UpdateItem(req.ItemID, req.Quantity, snapshot, stock.Quantity); err != nil {
			return nil, err
		}
	}

	c.RecalculateTotals(uc.taxRate)

	if err := uc.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return newCartView(c), nil
}

// RemoveItemUseCase 移除购物车明细用例
type RemoveItemUseCase struct {
	cartRepo cart.Repository
	taxRate  float64
}

// NewRemoveItemUseCase 创建移除明细用例
func NewRemoveItemUseCase(cartRepo cart.Repository, taxRate float64) *RemoveItemUseCase {
	return &RemoveItemUseCase{cartRepo: cartRepo, taxRate: taxRate}
}

// Execute 执行移除明细
func (uc *RemoveItemUseCase) Execute(ctx context.Context, customerID, itemID uint) (*CartView, error) {
	c, err := uc.cartRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := c.RemoveItem(itemID); err != nil {
		return nil, err
	}
	c.RecalculateTotals(uc.taxRate)

	if err := uc.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return newCartView(c), nil
}

// findItem 在购物车中查找明细项
func findItem(c *cart.ShoppingCart, itemID uint) *cart.CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}
