package invoice

import (
	"fmt"
	"strconv"
	"time"

	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

// Invoice 发票实体
// 设计说明:
// 1. 发票不能先于其支付存在:构造需要已持久化的支付ID
// 2. 发票号由订单ID与生成时刻派生,格式INV-{orderID}-{yyyyMMddHHmmss}
// 3. 金额从支付复制,生成后不再变更
type Invoice struct {
	ID            uint
	PaymentID     uint
	OrderID       uint
	InvoiceNumber string
	Amount        int64 // 金额(分),复制自支付
	IssueDate     time.Time

	events *observer.Subject
}

// New 创建待生成的发票
// paymentID为0表示支付尚未持久化,Generate时会拒绝
func New(paymentID, orderID uint, amount int64) *Invoice {
	return &Invoice{
		PaymentID: paymentID,
		OrderID:   orderID,
		Amount:    amount,
		events:    observer.NewSubject(),
	}
}

// Reconstitute 从持久化数据重建发票实体(仓储层使用)
func Reconstitute(id, paymentID, orderID uint, invoiceNumber string, amount int64, issueDate time.Time) *Invoice {
	return &Invoice{
		ID:            id,
		PaymentID:     paymentID,
		OrderID:       orderID,
		InvoiceNumber: invoiceNumber,
		Amount:        amount,
		IssueDate:     issueDate,
		events:        observer.NewSubject(),
	}
}

// Events 事件广播者(供调用方注册监听器)
func (i *Invoice) Events() *observer.Subject {
	return i.events
}

// Generate 生成发票
// 派生发票号、记录开票时间并广播InvoiceGenerated事件。
// 前置条件:必须关联已持久化的支付(PaymentID非0)
func (i *Invoice) Generate(customerEmail string) error {
	if i.PaymentID == 0 {
		return ErrPaymentNotPersisted
	}

	i.InvoiceNumber = fmt.Sprintf("INV-%d-%s", i.OrderID, time.Now().Format("20060102150405"))
	i.IssueDate = time.Now()

	return i.events.Emit(observer.EventInvoiceGenerated, observer.Payload{
		"email":      customerEmail,
		"invoice_no": i.InvoiceNumber,
		"amount":     strconv.FormatInt(i.Amount, 10),
		"order_id":   strconv.FormatUint(uint64(i.OrderID), 10),
	})
}
