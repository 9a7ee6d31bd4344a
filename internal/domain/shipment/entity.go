package shipment

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

// ShipmentStatus 物流状态
type ShipmentStatus int

const (
	ShipmentStatusPending    ShipmentStatus = 1 // 待发货
	ShipmentStatusDispatched ShipmentStatus = 2 // 已发出
	ShipmentStatusInTransit  ShipmentStatus = 3 // 运输中
	ShipmentStatusDelivered  ShipmentStatus = 4 // 已送达
)

func (s ShipmentStatus) String() string {
	switch s {
	case ShipmentStatusPending:
		return "待发货"
	case ShipmentStatusDispatched:
		return "已发出"
	case ShipmentStatusInTransit:
		return "运输中"
	case ShipmentStatusDelivered:
		return "已送达"
	default:
		return "未知状态"
	}
}

// Valid 是否为已定义的物流状态值
func (s ShipmentStatus) Valid() bool {
	return s >= ShipmentStatusPending && s <= ShipmentStatusDelivered
}

// Shipment 物流单实体
// 设计说明:
// 1. 物流状态由承运方回传,系统只如实记录,不做转换表校验
//    (与订单状态机不同,允许乱序/重复回传)
// 2. 置为Delivered时记录送达时间:回传带时间则用回传值,否则取当前时间
// 3. 置为Dispatched时广播ShipmentDispatched事件
type Shipment struct {
	ID             uint
	OrderID        uint
	TrackingNumber string
	Address        string // 收货地址(下单快照)
	ContactName    string // 收货人(下单快照)
	Carrier        string // 承运方
	Status         ShipmentStatus
	DeliveryDate   time.Time // 送达时间(Delivered后有效)
	CreatedAt      time.Time
	UpdatedAt      time.Time

	events *observer.Subject
}

// NewShipment 为订单创建物流单,初始状态Pending
// 收货地址/收货人取自订单快照,承运方在发货回传时补填
func NewShipment(orderID uint, address, contactName string) *Shipment {
	now := time.Now()
	return &Shipment{
		OrderID:        orderID,
		TrackingNumber: GenerateTrackingNumber(),
		Address:        address,
		ContactName:    contactName,
		Status:         ShipmentStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
		events:         observer.NewSubject(),
	}
}

// Reconstitute 从持久化数据重建物流单实体(仓储层使用)
func Reconstitute(id, orderID uint, trackingNumber, address, contactName, carrier string, status ShipmentStatus, deliveryDate time.Time) *Shipment {
	return &Shipment{
		ID:             id,
		OrderID:        orderID,
		TrackingNumber: trackingNumber,
		Address:        address,
		ContactName:    contactName,
		Carrier:        carrier,
		Status:         status,
		DeliveryDate:   deliveryDate,
		events:         observer.NewSubject(),
	}
}

// Events 事件广播者(供调用方注册监听器)
func (s *Shipment) Events() *observer.Subject {
	return s.events
}

// UpdateStatus 记录承运方回传的物流状态
// customerEmail为买家邮箱,随Dispatched事件下发供监听器寄送通知。
// deliveredAt仅在目标状态为Delivered时生效:为零值时取当前时间。
// 状态为Dispatched时广播ShipmentDispatched事件。
func (s *Shipment) UpdateStatus(target ShipmentStatus, customerEmail string, deliveredAt time.Time) error {
	if !target.Valid() {
		return ErrInvalidShipmentStatus
	}

	s.Status = target
	s.UpdatedAt = time.Now()

	if target == ShipmentStatusDelivered {
		if deliveredAt.IsZero() {
			deliveredAt = time.Now()
		}
		s.DeliveryDate = deliveredAt
	}

	if target == ShipmentStatusDispatched {
		return s.events.Emit(observer.EventShipmentDispatched, observer.Payload{
			"email":       customerEmail,
			"order_id":    strconv.FormatUint(uint64(s.OrderID), 10),
			"tracking_no": s.TrackingNumber,
			"carrier":     s.Carrier,
		})
	}
	return nil
}

// GenerateTrackingNumber 生成物流单号
// 格式: SHP + 毫秒时间戳 + 4位随机数
func GenerateTrackingNumber() string {
	return fmt.Sprintf("SHP%d%04d", time.Now().UnixMilli(), rand.Intn(10000))
}
