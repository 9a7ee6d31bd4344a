package notification

import (
	"context"
	"strings"
	"time"

	"github.com/datpham0412/yourlocalshop/pkg/metrics"
	"github.com/datpham0412/yourlocalshop/pkg/mq"
	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

// AMQPNotifier RabbitMQ事件通知器
// 把领域事件投递到Topic Exchange,路由键为notify.{event}
// (如notify.payment_completed),供外部邮件/分析服务消费。
// 投递失败返回error,会中止发起方的业务操作(同步广播,无失败隔离)。
type AMQPNotifier struct {
	publisher *mq.Publisher
}

// NewAMQPNotifier 创建RabbitMQ通知器
func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	publisher, err := mq.NewPublisher(url, exchange, "topic")
	if err != nil {
		return nil, err
	}
	return &AMQPNotifier{publisher: publisher}, nil
}

// eventMessage 投递的消息体
type eventMessage struct {
	Event     string            `json:"event"`
	Payload   map[string]string `json:"payload"`
	EmittedAt time.Time         `json:"emitted_at"`
}

// Notify 实现observer.Listener
func (n *AMQPNotifier) Notify(eventType observer.EventType, payload observer.Payload) error {
	routingKey := "notify." + toSnake(string(eventType))

	err := n.publisher.Publish(context.Background(), routingKey, eventMessage{
		Event:     string(eventType),
		Payload:   payload,
		EmittedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	metrics.NotificationsPublishedTotal.WithLabelValues(string(eventType)).Inc()
	return nil
}

// Close 关闭底层连接
func (n *AMQPNotifier) Close() error {
	return n.publisher.Close()
}

// toSnake 驼峰事件名转下划线(PaymentCompleted → payment_completed)
func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
