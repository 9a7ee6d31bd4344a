package observer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingListener 记录收到的事件（测试用）
type recordingListener struct {
	name   string
	events []EventType
	err    error
}

func (l *recordingListener) Notify(eventType EventType, payload Payload) error {
	l.events = append(l.events, eventType)
	return l.err
}

// TestSubject_AttachIdempotent 重复注册同一监听器只生效一次
func TestSubject_AttachIdempotent(t *testing.T) {
	s := NewSubject()
	l := &recordingListener{name: "email"}

	s.Attach(l)
	s.Attach(l)
	s.Attach(l)

	assert.Equal(t, 1, s.Len(), "重复Attach不应增加监听器数量")

	require.NoError(t, s.Emit(EventPaymentCompleted, Payload{"order_id": "1"}))
	assert.Len(t, l.events, 1, "事件只应投递一次")
}

// TestSubject_EmitInAttachOrder 按注册顺序投递
func TestSubject_EmitInAttachOrder(t *testing.T) {
	s := NewSubject()
	var order []string

	s.Attach(ListenerFunc(func(e EventType, p Payload) error {
		order = append(order, "first")
		return nil
	}))
	s.Attach(ListenerFunc(func(e EventType, p Payload) error {
		order = append(order, "second")
		return nil
	}))
	s.Attach(ListenerFunc(func(e EventType, p Payload) error {
		order = append(order, "third")
		return nil
	}))

	require.NoError(t, s.Emit(EventInvoiceGenerated, nil))
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

// TestSubject_Detach 注销后不再收到事件
func TestSubject_Detach(t *testing.T) {
	s := NewSubject()
	a := &recordingListener{name: "a"}
	b := &recordingListener{name: "b"}

	s.Attach(a)
	s.Attach(b)
	s.Detach(a)

	require.NoError(t, s.Emit(EventShipmentDispatched, Payload{"tracking_no": "SHP1"}))

	assert.Empty(t, a.events, "已注销的监听器不应收到事件")
	assert.Len(t, b.events, 1)
}

// TestSubject_ListenerErrorAborts 监听器失败中止广播（无失败隔离）
func TestSubject_ListenerErrorAborts(t *testing.T) {
	s := NewSubject()
	boom := errors.New("smtp连接失败")

	first := &recordingListener{name: "first"}
	failing := &recordingListener{name: "failing", err: boom}
	last := &recordingListener{name: "last"}

	s.Attach(first)
	s.Attach(failing)
	s.Attach(last)

	err := s.Emit(EventPaymentCompleted, Payload{"order_id": "7"})

	require.ErrorIs(t, err, boom, "监听器错误应原样上抛")
	assert.Len(t, first.events, 1)
	assert.Empty(t, last.events, "失败之后的监听器不应再收到事件")
}

// TestSubject_EmitWithoutListeners 无监听器时广播为空操作
func TestSubject_EmitWithoutListeners(t *testing.T) {
	s := NewSubject()
	assert.NoError(t, s.Emit(EventPaymentCompleted, nil))
}
