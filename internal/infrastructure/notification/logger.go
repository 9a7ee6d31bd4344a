// Package notification 实现领域事件的带外通知
//
// 监听器实现pkg/observer.Listener接口,由应用层在支付/发票/物流
// 实体上注册。当前提供两种投递方式:
//  1. EmailLogNotifier:把"邮件"写入应用日志(开发/演示环境)
//  2. AMQPNotifier:向RabbitMQ投递事件(生产环境接真实邮件服务)
package notification

import (
	"log"

	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

// EmailLogNotifier 日志邮件通知器
// 以日志模拟邮件发送;收件人取事件负载中的email字段
type EmailLogNotifier struct{}

// NewEmailLogNotifier 创建日志邮件通知器
func NewEmailLogNotifier() *EmailLogNotifier {
	return &EmailLogNotifier{}
}

// Notify 实现observer.Listener
func (n *EmailLogNotifier) Notify(eventType observer.EventType, payload observer.Payload) error {
	email := payload["email"]
	if email == "" {
		email = "(未知收件人)"
	}

	switch eventType {
	case observer.EventPaymentCompleted:
		log.Printf("[邮件通知] 收件人=%s 订单=%s 支付成功,金额(分)=%s",
			email, payload["order_id"], payload["amount"])
	case observer.EventInvoiceGenerated:
		log.Printf("[邮件通知] 收件人=%s 订单=%s 发票已生成,发票号=%s",
			email, payload["order_id"], payload["invoice_no"])
	case observer.EventShipmentDispatched:
		log.Printf("[邮件通知] 订单=%s 包裹已发出,物流单号=%s 承运方=%s",
			payload["order_id"], payload["tracking_no"], payload["carrier"])
	default:
		log.Printf("[邮件通知] 事件=%s 负载=%v", eventType, payload)
	}
	return nil
}
