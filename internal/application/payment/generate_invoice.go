package payment

import (
	"context"

	"github.com/datpham0412/yourlocalshop/internal/domain/account"
	"github.com/datpham0412/yourlocalshop/internal/domain/invoice"
	"github.com/datpham0412/yourlocalshop/internal/domain/order"
	"github.com/datpham0412/yourlocalshop/internal/domain/payment"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

// GenerateInvoiceUseCase 生成发票用例
// 支付完成后的独立步骤:基于已持久化的支付生成发票并落库,
// 每个支付至多一张发票(payment_id唯一索引)
type GenerateInvoiceUseCase struct {
	orderRepo   order.Repository
	paymentRepo payment.Repository
	invoiceRepo invoice.Repository
	accountRepo account.Repository
	listeners   []observer.Listener
}

// NewGenerateInvoiceUseCase 创建生成发票用例
func NewGenerateInvoiceUseCase(
	orderRepo order.Repository,
	paymentRepo payment.Repository,
	invoiceRepo invoice.Repository,
	accountRepo account.Repository,
	listeners []observer.Listener,
) *GenerateInvoiceUseCase {
	return &GenerateInvoiceUseCase{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		accountRepo: accountRepo,
		listeners:   listeners,
	}
}

// GenerateInvoiceRequest 生成发票请求
// 按支付单开票;Admin为true时跳过归属校验
type GenerateInvoiceRequest struct {
	PaymentID   uint
	RequesterID uint
	Admin       bool
}

// InvoiceView 发票DTO
type InvoiceView struct {
	ID            uint   `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	PaymentID     uint   `json:"payment_id"`
	OrderID       uint   `json:"order_id"`
	Amount        int64  `json:"amount"`
	IssueDate     string `json:"issue_date"`
}

// Execute 执行生成发票
func (uc *GenerateInvoiceUseCase) Execute(ctx context.Context, req GenerateInvoiceRequest) (*InvoiceView, error) {
	p, err := uc.paymentRepo.FindByID(ctx, req.PaymentID)
	if err != nil {
		return nil, err
	}

	o, err := uc.orderRepo.FindByID(ctx, p.OrderID)
	if err != nil {
		return nil, err
	}
	if !req.Admin && !o.IsOwnedBy(req.RequesterID) {
		return nil, apperrors.ErrPaymentNotFound
	}

	// 同一支付不重复开票
	if existing, err := uc.invoiceRepo.FindByPaymentID(ctx, p.ID); err == nil && existing != nil {
		return nil, invoice.ErrDuplicateInvoice
	} else if err != nil && err != invoice.ErrInvoiceNotFound {
		return nil, err
	}

	acc, err := uc.accountRepo.FindByID(ctx, o.CustomerID)
	if err != nil {
		return nil, err
	}

	// 仓储返回的支付不持有订单聚合,补全后再生成
	full := payment.Reconstitute(p.ID, p.OrderID, p.Method, p.Amount, p.Status, p.PaymentDate, o)
	for _, l := range uc.listeners {
		full.Events().Attach(l)
	}

	inv, err := full.GenerateInvoice(acc.Email)
	if err != nil {
		return nil, err
	}

	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	return &InvoiceView{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		PaymentID:     inv.PaymentID,
		OrderID:       inv.OrderID,
		Amount:        inv.Amount,
		IssueDate:     inv.IssueDate.Format("2006-01-02 15:04:05"),
	}, nil
}

// GetInvoiceUseCase 查询发票用例
type GetInvoiceUseCase struct {
	orderRepo   order.Repository
	invoiceRepo invoice.Repository
}

// NewGetInvoiceUseCase 创建查询发票用例
func NewGetInvoiceUseCase(orderRepo order.Repository, invoiceRepo invoice.Repository) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{
		orderRepo:   orderRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Execute 按订单查询发票
func (uc *GetInvoiceUseCase) Execute(ctx context.Context, orderID, requesterID uint, admin bool) (*InvoiceView, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !admin && !o.IsOwnedBy(requesterID) {
		return nil, apperrors.ErrOrderNotFound
	}

	inv, err := uc.invoiceRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &InvoiceView{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		PaymentID:     inv.PaymentID,
		OrderID:       inv.OrderID,
		Amount:        inv.Amount,
		IssueDate:     inv.IssueDate.Format("2006-01-02 15:04:05"),
	}, nil
}
