package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/datpham0412/yourlocalshop/internal/domain/cart"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// cartRepository 购物车仓储实现(MySQL)
// 购物车作为聚合整体读写:Save时明细全量替换,
// 避免逐条比对增删改的复杂度(购物车明细规模小)
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// FindByCustomerID 查找账户的购物车(含明细)
func (r *cartRepository) FindByCustomerID(ctx context.Context, customerID uint) (*cart.ShoppingCart, error) {
	var model CartModel
	err := dbFromContext(ctx, r.db).
		Preload("Items").
		Where("customer_id = ?", customerID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}
	return toCartEntity(&model), nil
}

// Create 创建购物车
func (r *cartRepository) Create(ctx context.Context, c *cart.ShoppingCart) error {
	model := &CartModel{
		CustomerID: c.CustomerID,
		Subtotal:   c.Subtotal,
		Tax:        c.Tax,
		Total:      c.Total,
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建购物车失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

// Save 保存购物车聚合
// 明细全量替换:先删后插,金额字段一并更新
func (r *cartRepository) Save(ctx context.Context, c *cart.ShoppingCart) error {
	db := dbFromContext(ctx, r.db)

	err := db.Model(&CartModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"subtotal": c.Subtotal,
			"tax":      c.Tax,
			"total":    c.Total,
		}).Error
	if err != nil {
		return apperrors.Wrap(err, "更新购物车失败")
	}

	if err := db.Where("cart_id = ?", c.ID).Delete(&CartItemModel{}).Error; err != nil {
		return apperrors.Wrap(err, "清理购物车明细失败")
	}

	if len(c.Items) == 0 {
		return nil
	}

	items := make([]CartItemModel, len(c.Items))
	for i, item := range c.Items {
		items[i] = CartItemModel{
			CartID:    c.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}
	if err := db.Create(&items).Error; err != nil {
		return apperrors.Wrap(err, "保存购物车明细失败")
	}

	// 回填明细ID(前端后续按item_id修改/移除)
	for i := range items {
		c.Items[i].ID = items[i].ID
	}
	return nil
}

// toCartEntity GORM模型 → 领域实体
func toCartEntity(m *CartModel) *cart.ShoppingCart {
	items := make([]cart.CartItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = cart.CartItem{
			ID:        item.ID,
			CartID:    item.CartID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}
	return &cart.ShoppingCart{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Items:      items,
		Subtotal:   m.Subtotal,
		Tax:        m.Tax,
		Total:      m.Total,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
