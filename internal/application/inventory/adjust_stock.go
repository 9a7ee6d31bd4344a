package inventory

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/inventory"
	"github.com/datpham0412/yourlocalshop/internal/domain/product"
)

// AdjustStockUseCase 库存调整用例(管理员/员工)
// 补货与手工盘点修正共用:delta为正表示入库,为负表示核减
type AdjustStockUseCase struct {
	stockRepo   inventory.Repository
	productRepo product.Repository
}

// NewAdjustStockUseCase 创建库存调整用例
func NewAdjustStockUseCase(stockRepo inventory.Repository, productRepo product.Repository) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		stockRepo:   stockRepo,
		productRepo: productRepo,
	}
}

// AdjustStockRequest 库存调整请求
type AdjustStockRequest struct {
	ProductID uint
	Delta     int // 正数入库,负数核减
}

// AdjustStockResponse 库存调整响应
type AdjustStockResponse struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"` // 调整后的可用数量
}

// Execute 执行库存调整
func (uc *AdjustStockUseCase) Execute(ctx context.Context, req AdjustStockRequest) (*AdjustStockResponse, error) {
	// 商品必须存在(含已下架商品,下架不影响盘点)
	if _, err := uc.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	stock, err := uc.stockRepo.FindByProductID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	if req.Delta >= 0 {
		if err := stock.Increase(req.Delta); err != nil {
			return nil, err
		}
	} else {
		if err := stock.Deduct(-req.Delta); err != nil {
			return nil, err
		}
	}

	if err := uc.stockRepo.Update(ctx, stock); err != nil {
		return nil, err
	}

	return &AdjustStockResponse{
		ProductID: stock.ProductID,
		Quantity:  stock.Quantity,
	}, nil
}

// GetStockUseCase 库存查询用例
type GetStockUseCase struct {
	stockRepo inventory.Repository
}

// NewGetStockUseCase 创建库存查询用例
func NewGetStockUseCase(stockRepo inventory.Repository) *GetStockUseCase {
	return &GetStockUseCase{stockRepo: stockRepo}
}

// Execute 查询商品当前可用库存
func (uc *GetStockUseCase) Execute(ctx context.Context, productID uint) (*AdjustStockResponse, error) {
	stock, err := uc.stockRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &AdjustStockResponse{
		ProductID: stock.ProductID,
		Quantity:  stock.Quantity,
	}, nil
}
