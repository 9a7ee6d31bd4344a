package product

import (
	"context"
	"regexp"

	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// Service 商品领域服务接口
// 封装跨实体的业务规则校验,不依赖具体的Repository实现
type Service interface {
	// CreateProduct 新建商品(上架)
	// 业务规则:
	// - SKU格式必须合法(3-32位大写字母/数字/连字符)
	// - 价格必须在1-99999999分之间
	// - SKU不能重复
	CreateProduct(ctx context.Context, sku, name, category string, price int64, description string) (*Product, error)

	// GetProductByID 根据ID获取商品详情
	GetProductByID(ctx context.Context, id uint) (*Product, error)

	// UpdateProductInfo 更新商品信息
	UpdateProductInfo(ctx context.Context, id uint, name, category, description string) (*Product, error)

	// UpdateProductPrice 更新商品价格
	UpdateProductPrice(ctx context.Context, id uint, newPrice int64) (*Product, error)

	// DeleteProduct 下架并删除商品(软删除)
	DeleteProduct(ctx context.Context, id uint) error

	// ListProducts 分页查询商品列表
	ListProducts(ctx context.Context, params ListParams) ([]*Product, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建商品领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateProduct 新建商品
func (s *service) CreateProduct(ctx context.Context, sku, name, category string, price int64, description string) (*Product, error) {
	if !isValidSKU(sku) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "商品编码格式不正确")
	}

	if price < 1 || price > 99999999 {
		return nil, ErrInvalidPrice
	}

	if name == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "商品名称不能为空")
	}

	// SKU唯一性:先查重,最终由数据库UNIQUE索引兜底
	existing, err := s.repo.FindBySKU(ctx, sku)
	if err == nil && existing != nil {
		return nil, ErrSKUDuplicate
	}
	if err != nil && err != ErrProductNotFound {
		return nil, err
	}

	p := NewProduct(sku, name, category, price, description)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// GetProductByID 根据ID获取商品详情
func (s *service) GetProductByID(ctx context.Context, id uint) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProductInfo 更新商品信息
func (s *service) UpdateProductInfo(ctx context.Context, id uint, name, category, description string) (*Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.UpdateInfo(name, category, description)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProductPrice 更新商品价格
// 改价不影响历史订单与已存在的购物车快照(快照在结算前会刷新)
func (s *service) UpdateProductPrice(ctx context.Context, id uint, newPrice int64) (*Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.UpdatePrice(newPrice); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct 删除商品(软删除)
func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListProducts 分页查询商品列表
func (s *service) ListProducts(ctx context.Context, params ListParams) ([]*Product, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	return s.repo.List(ctx, params)
}

// isValidSKU 商品编码格式校验:3-32位大写字母/数字/连字符
func isValidSKU(sku string) bool {
	matched, _ := regexp.MatchString(`^[A-Z0-9-]{3,32}$`, sku)
	return matched
}
