// Package observer 提供领域事件的同步广播机制
//
// Payment/Invoice/Shipment通过Subject向已注册的监听器广播领域事件
// （PaymentCompleted、InvoiceGenerated、ShipmentDispatched）。
//
// 语义约定：
// 1. 同步投递：Emit在当前调用栈内依次调用每个监听器
// 2. 注册顺序投递：监听器按Attach的先后顺序收到事件
// 3. 无失败隔离：任一监听器返回error时Emit立即中止并返回该error，
//    后续监听器不会收到该事件，发起方的业务操作随之失败
package observer

// EventType 领域事件类型
type EventType string

const (
	// EventPaymentCompleted 支付完成
	EventPaymentCompleted EventType = "PaymentCompleted"
	// EventInvoiceGenerated 发票已生成
	EventInvoiceGenerated EventType = "InvoiceGenerated"
	// EventShipmentDispatched 包裹已发出
	EventShipmentDispatched EventType = "ShipmentDispatched"
)

// Payload 事件负载（键值对）
type Payload map[string]string

// Listener 事件监听器接口
// 实现方执行带外动作（如发送邮件），动作本身的成败不回传给领域对象；
// 返回error表示监听器自身失败，会中止本次广播。
type Listener interface {
	Notify(eventType EventType, payload Payload) error
}

// ListenerFunc 函数适配器，便于用闭包注册监听器
type ListenerFunc func(eventType EventType, payload Payload) error

// Notify 实现Listener接口
func (f ListenerFunc) Notify(eventType EventType, payload Payload) error {
	return f(eventType, payload)
}

// Subject 事件广播者
// 设计说明：
// 1. 监听器列表按注册顺序保存
// 2. Attach幂等：同一监听器重复注册只生效一次
// 3. 非并发安全：与单线程请求内的同步执行模型一致
type Subject struct {
	listeners []Listener
}

// NewSubject 创建广播者
func NewSubject() *Subject {
	return &Subject{}
}

// Attach 注册监听器（幂等）
// 注意：监听器以接口值相等判断重复，要求实现类型可比较
func (s *Subject) Attach(l Listener) {
	if l == nil {
		return
	}
	for _, existing := range s.listeners {
		if existing == l {
			return
		}
	}
	s.listeners = append(s.listeners, l)
}

// Detach 注销监听器
func (s *Subject) Detach(l Listener) {
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Emit 按注册顺序同步广播事件
// 任一监听器返回error时立即中止并返回（无失败隔离）
func (s *Subject) Emit(eventType EventType, payload Payload) error {
	for _, l := range s.listeners {
		if err := l.Notify(eventType, payload); err != nil {
			return err
		}
	}
	return nil
}

// Len 当前已注册的监听器数量
func (s *Subject) Len() int {
	return len(s.listeners)
}
