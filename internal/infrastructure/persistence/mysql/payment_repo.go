package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/datpham0412/yourlocalshop/internal/domain/payment"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// paymentRepository 支付仓储实现(MySQL)
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository 创建支付仓储
func NewPaymentRepository(db *gorm.DB) payment.Repository {
	return &paymentRepository{db: db}
}

// Create 创建支付记录
// order_id唯一索引:并发重复支付在数据库层被拒绝
func (r *paymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	model := &PaymentModel{
		OrderID: p.OrderID,
		Method:  p.Method,
		Amount:  p.Amount,
		Status:  int(p.Status),
	}
	if !p.PaymentDate.IsZero() {
		d := p.PaymentDate
		model.PaymentDate = &d
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return payment.ErrDuplicatePayment
		}
		return apperrors.Wrap(err, "创建支付记录失败")
	}

	p.ID = model.ID
	return nil
}

// FindByID 根据ID查找支付记录
func (r *paymentRepository) FindByID(ctx context.Context, id uint) (*payment.Payment, error) {
	var model PaymentModel
	err := dbFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, apperrors.Wrap(err, "查询支付记录失败")
	}
	return toPaymentEntity(&model), nil
}

// FindByOrderID 根据订单ID查找支付记录
func (r *paymentRepository) FindByOrderID(ctx context.Context, orderID uint) (*payment.Payment, error) {
	var model PaymentModel
	err := dbFromContext(ctx, r.db).Where("order_id = ?", orderID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, apperrors.Wrap(err, "查询支付记录失败")
	}
	return toPaymentEntity(&model), nil
}

// Update 更新支付记录
func (r *paymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	updates := map[string]interface{}{
		"status": int(p.Status),
	}
	if !p.PaymentDate.IsZero() {
		updates["payment_date"] = p.PaymentDate
	}

	err := dbFromContext(ctx, r.db).
		Model(&PaymentModel{}).
		Where("id = ?", p.ID).
		Updates(updates).Error
	if err != nil {
		return apperrors.Wrap(err, "更新支付记录失败")
	}
	return nil
}

// toPaymentEntity GORM模型 → 领域实体
// 仓储重建的支付不持有订单聚合,需要订单时由应用层补全
func toPaymentEntity(m *PaymentModel) *payment.Payment {
	var paymentDate time.Time
	if m.PaymentDate != nil {
		paymentDate = *m.PaymentDate
	}
	return payment.Reconstitute(m.ID, m.OrderID, m.Method, m.Amount, payment.PaymentStatus(m.Status), paymentDate, nil)
}
