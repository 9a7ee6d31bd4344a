package cart

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/cart"
	"github.com/datpham0412/yourlocalshop/internal/domain/inventory"
	"github.com/datpham0412/yourlocalshop/internal/domain/product"
)

// AddItemUseCase 添加购物车商品用例
// 设计说明:
// 1. 购物车惰性创建:账户首次添加商品时才建档
// 2. 加入数量按当前可用库存夹紧(够多少加多少),无货才失败
// 3. 明细持有商品快照(名称/价格),变更后重算金额
type AddItemUseCase struct {
	cartRepo    cart.Repository
	productRepo product.Repository
	stockRepo   inventory.Repository
	taxRate     float64
}

// NewAddItemUseCase 创建添加商品用例
func NewAddItemUseCase(
	cartRepo cart.Repository,
	productRepo product.Repository,
	stockRepo inventory.Repository,
	taxRate float64,
) *AddItemUseCase {
	return &AddItemUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		taxRate:     taxRate,
	}
}

// AddItemRequest 添加商品请求
type AddItemRequest struct {
	CustomerID uint
	ProductID  uint
	Quantity   int
}

// Execute 执行添加商品
func (uc *AddItemUseCase) Execute(ctx context.Context, req AddItemRequest) (*CartView, error) {
	if req.Quantity <= 0 {
		return nil, cart.ErrInvalidQuantity
	}

	p, err := uc.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, product.ErrProductInactive
	}

	stock, err := uc.stockRepo.FindByProductID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	c, err := uc.cartRepo.FindByCustomerID(ctx, req.CustomerID)
	if err == cart.ErrCartNotFound {
		c = cart.NewShoppingCart(req.CustomerID)
		if err := uc.cartRepo.Create(ctx, c); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	snapshot := cart.ProductSnapshot{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
	}
	if err := c.AddItem(snapshot, req.Quantity, stock.Quantity); err != nil {
		return nil, err
	}
	c.RecalculateTotals(uc.taxRate)

	if err := uc.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	return newCartView(c), nil
}
