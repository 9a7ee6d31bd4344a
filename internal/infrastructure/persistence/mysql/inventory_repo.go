package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/datpham0412/yourlocalshop/internal/domain/inventory"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// stockRepository 库存仓储实现(MySQL)
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository 创建库存仓储
func NewStockRepository(db *gorm.DB) inventory.Repository {
	return &stockRepository{db: db}
}

// Create 创建库存记录
func (r *stockRepository) Create(ctx context.Context, s *inventory.Stock) error {
	model := &StockModel{
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建库存记录失败")
	}

	s.ID = model.ID
	s.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByProductID 根据商品ID查找库存记录
func (r *stockRepository) FindByProductID(ctx context.Context, productID uint) (*inventory.Stock, error) {
	var model StockModel
	err := dbFromContext(ctx, r.db).Where("product_id = ?", productID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrStockNotFound
		}
		return nil, apperrors.Wrap(err, "查询库存失败")
	}
	return toStockEntity(&model), nil
}

// Update 更新库存记录
func (r *stockRepository) Update(ctx context.Context, s *inventory.Stock) error {
	model := &StockModel{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
	}

	if err := dbFromContext(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新库存失败")
	}

	s.UpdatedAt = model.UpdatedAt
	return nil
}

// DeductAtomic 原子扣减库存
// 条件UPDATE防止并发超卖:
//
//	UPDATE stocks SET quantity = quantity - ? WHERE product_id = ? AND quantity >= ?
//
// 影响行数为0表示库存不足(或记录不存在)
func (r *stockRepository) DeductAtomic(ctx context.Context, productID uint, quantity int) error {
	result := dbFromContext(ctx, r.db).
		Model(&StockModel{}).
		Where("product_id = ? AND quantity >= ?", productID, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "扣减库存失败")
	}
	if result.RowsAffected == 0 {
		return inventory.ErrInsufficientStock
	}
	return nil
}

// ListByProductIDs 批量查询库存
func (r *stockRepository) ListByProductIDs(ctx context.Context, productIDs []uint) (map[uint]*inventory.Stock, error) {
	var models []StockModel
	err := dbFromContext(ctx, r.db).Where("product_id IN ?", productIDs).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "批量查询库存失败")
	}

	stocks := make(map[uint]*inventory.Stock, len(models))
	for i := range models {
		stocks[models[i].ProductID] = toStockEntity(&models[i])
	}
	return stocks, nil
}

// toStockEntity GORM模型 → 领域实体
func toStockEntity(m *StockModel) *inventory.Stock {
	return &inventory.Stock{
		ID:        m.ID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		UpdatedAt: m.UpdatedAt,
	}
}
