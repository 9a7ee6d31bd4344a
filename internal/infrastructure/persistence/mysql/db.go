package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/datpham0412/yourlocalshop/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明:
// 1. GORM v2作为ORM框架
// 2. 配置连接池参数(MaxOpenConns、MaxIdleConns、ConnMaxLifetime)
// 3. debug模式打印SQL,release模式静默
// 4. 启动时自动迁移表结构(生产环境应换版本化迁移工具)
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只创建表/添加字段,不删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AccountModel{},
		&ProductModel{},
		&StockModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderLineModel{},
		&PaymentModel{},
		&InvoiceModel{},
		&ShipmentModel{},
	)
}

// AccountModel GORM账户模型
// infrastructure层的数据模型(带GORM tag);
// domain/account/entity.go是领域实体,不依赖GORM,由Repository转换
type AccountModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码(bcrypt加密)"`
	Name      string         `gorm:"size:50;not null;comment:姓名"`
	Phone     string         `gorm:"size:20;comment:联系电话"`
	Address   string         `gorm:"size:255;comment:默认收货地址"`
	Role      string         `gorm:"size:20;not null;default:customer;comment:角色"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

// ProductModel GORM商品模型
// 价格以int64存"分";SKU唯一索引防止重复
type ProductModel struct {
	ID          uint           `gorm:"primaryKey"`
	SKU         string         `gorm:"uniqueIndex;size:32;not null;comment:商品编码"`
	Name        string         `gorm:"index:idx_search;size:200;not null;comment:商品名称"`
	Category    string         `gorm:"index:idx_search;size:50;comment:分类"`
	Price       int64          `gorm:"index:idx_list;not null;comment:单价(分)"`
	Description string         `gorm:"type:text;comment:商品描述"`
	Active      bool           `gorm:"not null;default:true;comment:是否在售"`
	CreatedAt   time.Time      `gorm:"index:idx_list;comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

func (ProductModel) TableName() string {
	return "products"
}

// StockModel GORM库存模型
// 每个商品一条记录,扣减走条件UPDATE防止并发超卖
type StockModel struct {
	ID        uint      `gorm:"primaryKey"`
	ProductID uint      `gorm:"uniqueIndex;not null;comment:商品ID"`
	Quantity  int       `gorm:"not null;default:0;comment:可用数量"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (StockModel) TableName() string {
	return "stocks"
}

// CartModel GORM购物车模型
// 每个账户一条记录;金额字段冗余存储,明细变更后由应用层重算
type CartModel struct {
	ID         uint            `gorm:"primaryKey"`
	CustomerID uint            `gorm:"uniqueIndex;not null;comment:账户ID"`
	Subtotal   int64           `gorm:"not null;default:0;comment:小计(分)"`
	Tax        int64           `gorm:"not null;default:0;comment:税额(分)"`
	Total      int64           `gorm:"not null;default:0;comment:总额(分)"`
	Items      []CartItemModel `gorm:"foreignKey:CartID"`
	CreatedAt  time.Time       `gorm:"comment:创建时间"`
	UpdatedAt  time.Time       `gorm:"comment:更新时间"`
}

func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel GORM购物车明细模型
// 保存加入时的商品快照(名称/价格)
type CartItemModel struct {
	ID        uint   `gorm:"primaryKey"`
	CartID    uint   `gorm:"index;not null;comment:购物车ID"`
	ProductID uint   `gorm:"index;not null;comment:商品ID"`
	Name      string `gorm:"size:200;not null;comment:商品名称快照"`
	Price     int64  `gorm:"not null;comment:单价快照(分)"`
	Quantity  int    `gorm:"not null;comment:数量"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel GORM订单模型
// OrderNo唯一索引(业务主键);Status以int存储便于索引
type OrderModel struct {
	ID           uint             `gorm:"primaryKey"`
	OrderNo      string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	CustomerID   uint             `gorm:"index;not null;comment:买家账户ID"`
	OrderDate    time.Time        `gorm:"index;not null;comment:下单时间"`
	Status       int              `gorm:"index;type:tinyint;default:1;comment:订单状态"`
	Subtotal     int64            `gorm:"not null;comment:小计(分)"`
	Tax          int64            `gorm:"not null;comment:税额(分)"`
	Total        int64            `gorm:"not null;comment:总金额(分)"`
	ShipAddress  string           `gorm:"size:255;comment:收货地址"`
	ContactName  string           `gorm:"size:50;comment:收货人"`
	ContactPhone string           `gorm:"size:20;comment:联系电话"`
	Lines        []OrderLineModel `gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt    time.Time        `gorm:"comment:更新时间"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel GORM订单明细模型
// 记录下单时的名称/价格快照,与在售商品解耦
type OrderLineModel struct {
	ID        uint   `gorm:"primaryKey"`
	OrderID   uint   `gorm:"index;not null;comment:订单ID"`
	ProductID uint   `gorm:"index;not null;comment:商品ID"`
	Name      string `gorm:"size:200;not null;comment:商品名称快照"`
	Price     int64  `gorm:"not null;comment:下单时单价(分)"`
	Quantity  int    `gorm:"not null;comment:购买数量"`
	LineTotal int64  `gorm:"not null;comment:行小计(分)"`
}

func (OrderLineModel) TableName() string {
	return "order_lines"
}

// PaymentModel GORM支付模型
// OrderID唯一索引:数据库层面保证每个订单至多一条支付记录
type PaymentModel struct {
	ID          uint       `gorm:"primaryKey"`
	OrderID     uint       `gorm:"uniqueIndex;not null;comment:订单ID"`
	Method      string     `gorm:"size:20;not null;comment:支付方式"`
	Amount      int64      `gorm:"not null;comment:支付金额(分)"`
	Status      int        `gorm:"type:tinyint;default:1;comment:支付状态"`
	PaymentDate *time.Time `gorm:"comment:支付时间"`
	CreatedAt   time.Time  `gorm:"comment:创建时间"`
	UpdatedAt   time.Time  `gorm:"comment:更新时间"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// InvoiceModel GORM发票模型
// PaymentID唯一索引:每个支付至多一张发票
type InvoiceModel struct {
	ID            uint      `gorm:"primaryKey"`
	PaymentID     uint      `gorm:"uniqueIndex;not null;comment:支付ID"`
	OrderID       uint      `gorm:"index;not null;comment:订单ID"`
	InvoiceNumber string    `gorm:"uniqueIndex;size:40;not null;comment:发票号"`
	Amount        int64     `gorm:"not null;comment:金额(分)"`
	IssueDate     time.Time `gorm:"not null;comment:开票时间"`
	CreatedAt     time.Time `gorm:"comment:创建时间"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}

// ShipmentModel GORM物流单模型
type ShipmentModel struct {
	ID             uint       `gorm:"primaryKey"`
	OrderID        uint       `gorm:"uniqueIndex;not null;comment:订单ID"`
	TrackingNumber string     `gorm:"uniqueIndex;size:32;not null;comment:物流单号"`
	Address        string     `gorm:"size:255;not null;comment:收货地址"`
	ContactName    string     `gorm:"size:50;not null;comment:收货人"`
	Carrier        string     `gorm:"size:50;comment:承运方"`
	Status         int        `gorm:"type:tinyint;default:1;comment:物流状态"`
	DeliveryDate   *time.Time `gorm:"comment:送达时间"`
	CreatedAt      time.Time  `gorm:"comment:创建时间"`
	UpdatedAt      time.Time  `gorm:"comment:更新时间"`
}

func (ShipmentModel) TableName() string {
	return "shipments"
}
