package product

import (
	"context"
)

// Repository 商品仓储接口(依赖倒置)
// domain层定义接口,infrastructure层实现,便于Mock测试
type Repository interface {
	// Create 创建商品
	// SKU已存在时返回ErrSKUDuplicate
	Create(ctx context.Context, p *Product) error

	// FindByID 根据ID查找商品
	FindByID(ctx context.Context, id uint) (*Product, error)

	// FindBySKU 根据商品编码查找商品
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// Update 更新商品信息
	Update(ctx context.Context, p *Product) error

	// Delete 删除商品(软删除)
	Delete(ctx context.Context, id uint) error

	// List 分页查询商品列表
	List(ctx context.Context, params ListParams) ([]*Product, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(匹配名称、分类)
	Category string // 按分类过滤
	SortBy   string // 排序字段(price_asc, price_desc, created_at_desc)
}
