package inventory

import (
	"time"
)

// Stock 库存记录(按商品一条)
// 设计说明:
// 1. 库存与商品信息分离:商品是目录数据,库存是运营数据,
//    修改路径与权限不同
// 2. 数量以实体方法变更,扣减不允许出现负库存
// 3. 并发扣减的正确性由仓储层的原子UPDATE保证(条件更新),
//    实体方法服务于单线程的领域逻辑与测试
type Stock struct {
	ID        uint
	ProductID uint
	Quantity  int // 可用数量
	UpdatedAt time.Time
}

// NewStock 创建库存记录
func NewStock(productID uint, quantity int) (*Stock, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	return &Stock{
		ProductID: productID,
		Quantity:  quantity,
		UpdatedAt: time.Now(),
	}, nil
}

// Deduct 扣减库存
// 业务规则:扣减数量必须>0,且不能超过可用数量
func (s *Stock) Deduct(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if s.Quantity < quantity {
		return ErrInsufficientStock
	}
	s.Quantity -= quantity
	s.UpdatedAt = time.Now()
	return nil
}

// Increase 增加库存(补货、取消订单回补)
func (s *Stock) Increase(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	s.Quantity += quantity
	s.UpdatedAt = time.Now()
	return nil
}

// Available 当前可用数量
func (s *Stock) Available() int {
	return s.Quantity
}
