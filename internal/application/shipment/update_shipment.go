package shipment

import (
	"context"
	"time"

	"github.com/datpham0412/yourlocalshop/internal/domain/shipment"
	apperrors "github.com/datpham0412/yourlocalshop/pkg/errors"
	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

// CustomerLookup 订单买家查询(由订单/账户仓储适配)
// 返回买家账户ID与邮箱,物流查询用ID做归属校验,状态回传用邮箱下发通知
type CustomerLookup func(ctx context.Context, orderID uint) (accountID uint, email string, err error)

// UpdateShipmentUseCase 物流状态回传用例(员工/管理员)
// 回传Dispatched时广播ShipmentDispatched事件(经监听器通知顾客)
type UpdateShipmentUseCase struct {
	shipmentRepo   shipment.Repository
	customerLookup CustomerLookup
	listeners      []observer.Listener
}

// NewUpdateShipmentUseCase 创建物流回传用例
func NewUpdateShipmentUseCase(shipmentRepo shipment.Repository, customerLookup CustomerLookup, listeners []observer.Listener) *UpdateShipmentUseCase {
	return &UpdateShipmentUseCase{
		shipmentRepo:   shipmentRepo,
		customerLookup: customerLookup,
		listeners:      listeners,
	}
}

// UpdateShipmentRequest 物流回传请求
type UpdateShipmentRequest struct {
	ShipmentID  uint
	Status      shipment.ShipmentStatus
	Carrier     string    // 可选,发货时补填承运方
	DeliveredAt time.Time // 可选,Delivered时的实际送达时间
}

// ShipmentView 物流单DTO
type ShipmentView struct {
	ID             uint   `json:"id"`
	OrderID        uint   `json:"order_id"`
	TrackingNumber string `json:"tracking_number"`
	Address        string `json:"address"`
	ContactName    string `json:"contact_name"`
	Carrier        string `json:"carrier"`
	Status         string `json:"status"`
	StatusCode     int    `json:"status_code"`
	DeliveryDate   string `json:"delivery_date,omitempty"`
}

// Execute 执行物流状态回传
func (uc *UpdateShipmentUseCase) Execute(ctx context.Context, req UpdateShipmentRequest) (*ShipmentView, error) {
	shp, err := uc.shipmentRepo.FindByID(ctx, req.ShipmentID)
	if err != nil {
		return nil, err
	}

	_, email, err := uc.customerLookup(ctx, shp.OrderID)
	if err != nil {
		return nil, err
	}

	if req.Carrier != "" {
		shp.Carrier = req.Carrier
	}

	for _, l := range uc.listeners {
		shp.Events().Attach(l)
	}

	if err := shp.UpdateStatus(req.Status, email, req.DeliveredAt); err != nil {
		return nil, err
	}

	if err := uc.shipmentRepo.Update(ctx, shp); err != nil {
		return nil, err
	}
	return newShipmentView(shp), nil
}

// GetShipmentUseCase 物流查询用例
type GetShipmentUseCase struct {
	shipmentRepo   shipment.Repository
	customerLookup CustomerLookup
}

// NewGetShipmentUseCase 创建物流查询用例
func NewGetShipmentUseCase(shipmentRepo shipment.Repository, customerLookup CustomerLookup) *GetShipmentUseCase {
	return &GetShipmentUseCase{
		shipmentRepo:   shipmentRepo,
		customerLookup: customerLookup,
	}
}

// Execute 查询订单的物流单
// 顾客只能查看自己订单的物流;admin为true时跳过归属校验
func (uc *GetShipmentUseCase) Execute(ctx context.Context, orderID, requesterID uint, admin bool) (*ShipmentView, error) {
	if !admin {
		ownerID, _, err := uc.customerLookup(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if ownerID != requesterID {
			return nil, apperrors.ErrOrderNotFound
		}
	}

	shp, err := uc.shipmentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return newShipmentView(shp), nil
}

// newShipmentView 领域实体 → DTO
func newShipmentView(shp *shipment.Shipment) *ShipmentView {
	view := &ShipmentView{
		ID:             shp.ID,
		OrderID:        shp.OrderID,
		TrackingNumber: shp.TrackingNumber,
		Address:        shp.Address,
		ContactName:    shp.ContactName,
		Carrier:        shp.Carrier,
		Status:         shp.Status.String(),
		StatusCode:     int(shp.Status),
	}
	if !shp.DeliveryDate.IsZero() {
		view.DeliveryDate = shp.DeliveryDate.Format("2006-01-02 15:04:05")
	}
	return view
}
