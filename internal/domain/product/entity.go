package product

import (
	"time"
)

// Product 商品实体(聚合根)
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. SKU作为业务唯一标识(数据库层保证唯一性)
// 3. 库存数量不在本实体:由inventory聚合单独维护,
//    商品信息与库存水位的修改路径分离
type Product struct {
	ID          uint
	SKU         string // 商品编码(业务唯一)
	Name        string // 商品名称
	Category    string // 分类
	Price       int64  // 单价(单位:分,1元=100分)
	Description string // 商品描述
	Active      bool   // 是否在售(下架商品不可加入购物车)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct 创建新商品(工厂方法)
// price必须>0,由调用方先通过参数校验
func NewProduct(sku, name, category string, price int64, description string) *Product {
	now := time.Now()
	return &Product{
		SKU:         sku,
		Name:        name,
		Category:    category,
		Price:       price,
		Description: description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdatePrice 更新价格(领域行为)
// 业务规则:价格必须>0。改价不影响历史订单(订单保存下单时快照)
func (p *Product) UpdatePrice(newPrice int64) error {
	if newPrice <= 0 {
		return ErrInvalidPrice
	}
	p.Price = newPrice
	p.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新商品信息(领域行为)
func (p *Product) UpdateInfo(name, category, description string) {
	if name != "" {
		p.Name = name
	}
	if category != "" {
		p.Category = category
	}
	if description != "" {
		p.Description = description
	}
	p.UpdatedAt = time.Now()
}

// Deactivate 下架商品
// 已有订单不受影响,仅阻止新的购物车添加
func (p *Product) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
}

// Activate 重新上架
func (p *Product) Activate() {
	p.Active = true
	p.UpdatedAt = time.Now()
}
