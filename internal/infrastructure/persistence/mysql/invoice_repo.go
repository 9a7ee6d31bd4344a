package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/datpham0412/yourlocalshop/internal/domain/invoice"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
)

// invoiceRepository 发票仓储实现(MySQL)
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository 创建发票仓储
func NewInvoiceRepository(db *gorm.DB) invoice.Repository {
	return &invoiceRepository{db: db}
}

// Create 保存发票
// payment_id唯一索引:同一支付的并发重复开票在数据库层被拒绝
func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	model := &InvoiceModel{
		PaymentID:     inv.PaymentID,
		OrderID:       inv.OrderID,
		InvoiceNumber: inv.InvoiceNumber,
		Amount:        inv.Amount,
		IssueDate:     inv.IssueDate,
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return invoice.ErrDuplicateInvoice
		}
		return apperrors.Wrap(err, "保存发票失败")
	}

	inv.ID = model.ID
	return nil
}

// FindByID 根据ID查找发票
func (r *invoiceRepository) FindByID(ctx context.Context, id uint) (*invoice.Invoice, error) {
	var model InvoiceModel
	err := dbFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invoice.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(err, "查询发票失败")
	}
	return toInvoiceEntity(&model), nil
}

// FindByPaymentID 根据支付ID查找发票
func (r *invoiceRepository) FindByPaymentID(ctx context.Context, paymentID uint) (*invoice.Invoice, error) {
	var model InvoiceModel
	err := dbFromContext(ctx, r.db).Where("payment_id = ?", paymentID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invoice.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(err, "查询发票失败")
	}
	return toInvoiceEntity(&model), nil
}

// FindByOrderID 根据订单ID查找发票
func (r *invoiceRepository) FindByOrderID(ctx context.Context, orderID uint) (*invoice.Invoice, error) {
	var model InvoiceModel
	err := dbFromContext(ctx, r.db).Where("order_id = ?", orderID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invoice.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(err, "查询发票失败")
	}
	return toInvoiceEntity(&model), nil
}

// toInvoiceEntity GORM模型 → 领域实体
func toInvoiceEntity(m *InvoiceModel) *invoice.Invoice {
	return invoice.Reconstitute(m.ID, m.PaymentID, m.OrderID, m.InvoiceNumber, m.Amount, m.IssueDate)
}
