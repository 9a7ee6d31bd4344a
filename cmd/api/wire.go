//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 使用方式：
//
//	wire gen ./cmd/api
//
// 生成wire_gen.go后，main.go可改为调用InitializeApp()

package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appaccount "github.com/datpham0412/yourlocalshop/internal/application/account"
	appcart "github.com/datpham0412/yourlocalshop/internal/application/cart"
	appinventory "github.com/datpham0412/yourlocalshop/internal/application/inventory"
	apporder "github.com/datpham0412/yourlocalshop/internal/application/order"
	apppayment "github.com/datpham0412/yourlocalshop/internal/application/payment"
	appproduct "github.com/datpham0412/yourlocalshop/internal/application/product"
	appreport "github.com/datpham0412/yourlocalshop/internal/application/report"
	appshipment "github.com/datpham0412/yourlocalshop/internal/application/shipment"
	"github.com/datpham0412/yourlocalshop/internal/domain/account"
	"github.com/datpham0412/yourlocalshop/internal/domain/order"
	"github.com/datpham0412/yourlocalshop/internal/domain/product"
	"github.com/datpham0412/yourlocalshop/internal/infrastructure/config"
	"github.com/datpham0412/yourlocalshop/internal/infrastructure/notification"
	"github.com/datpham0412/yourlocalshop/internal/infrastructure/persistence/mysql"
	"github.com/datpham0412/yourlocalshop/internal/infrastructure/persistence/redis"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/handler"
	"github.com/datpham0412/yourlocalshop/internal/interface/http/middleware"
	"github.com/datpham0412/yourlocalshop/pkg/jwt"
	"github.com/datpham0412/yourlocalshop/pkg/metrics"
	"github.com/datpham0412/yourlocalshop/pkg/observer"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewAccountRepository,
	mysql.NewProductRepository,
	mysql.NewStockRepository,
	mysql.NewCartRepository,
	mysql.NewOrderRepository,
	mysql.NewPaymentRepository,
	mysql.NewInvoiceRepository,
	mysql.NewShipmentRepository,
	mysql.NewTxManager,
	wire.Bind(new(apporder.Transactor), new(*mysql.TxManager)),
	wire.Bind(new(apppayment.Transactor), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	account.NewService,
	product.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appaccount.NewRegisterUseCase,
	appaccount.NewLoginUseCase,
	appaccount.NewLogoutUseCase,
	appaccount.NewProfileUseCase,
	appproduct.NewCreateProductUseCase,
	appproduct.NewGetProductUseCase,
	appproduct.NewListProductsUseCase,
	appproduct.NewUpdateProductUseCase,
	appproduct.NewDeleteProductUseCase,
	appinventory.NewAdjustStockUseCase,
	appinventory.NewGetStockUseCase,
	appinventory.NewListStocksUseCase,
	appcart.NewAddItemUseCase,
	appcart.NewViewCartUseCase,
	appcart.NewUpdateItemUseCase,
	appcart.NewRemoveItemUseCase,
	apporder.NewCheckoutUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewUpdateStatusUseCase,
	apporder.NewCancelOrderUseCase,
	apppayment.NewPayOrderUseCase,
	apppayment.NewGenerateInvoiceUseCase,
	apppayment.NewGetInvoiceUseCase,
	appshipment.NewUpdateShipmentUseCase,
	appshipment.NewGetShipmentUseCase,
	appreport.NewSalesReportUseCase,
	provideTaxRate,
	provideListeners,
	provideCustomerLookup,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	provideProductCache,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAccountHandler,
	handler.NewProductHandler,
	handler.NewInventoryHandler,
	handler.NewCartHandler,
	handler.NewOrderHandler,
	handler.NewPaymentHandler,
	handler.NewShipmentHandler,
	handler.NewReportHandler,
)

// provideJWTManager 从配置提取JWT参数
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideProductCache 从Redis客户端创建商品缓存
func provideProductCache(client *goredis.Client) *redis.ProductCache {
	return redis.NewProductCache(client)
}

// provideTaxRate 从配置提取税率
func provideTaxRate(cfg *config.Config) float64 {
	return cfg.Sales.TaxRate
}

// provideListeners 组装事件监听器
// 日志通知器始终启用；配置开启后额外向RabbitMQ投递
func provideListeners(cfg *config.Config) ([]observer.Listener, error) {
	listeners := []observer.Listener{notification.NewEmailLogNotifier()}
	if cfg.Notify.Enabled {
		amqpNotifier, err := notification.NewAMQPNotifier(cfg.Notify.AMQPURL, cfg.Notify.Exchange)
		if err != nil {
			return nil, err
		}
		listeners = append(listeners, amqpNotifier)
	}
	return listeners, nil
}

// provideCustomerLookup 订单买家查询，供物流查询做权限校验、状态回传取通知邮箱
func provideCustomerLookup(orderRepo order.Repository, accountRepo account.Repository) appshipment.CustomerLookup {
	return func(ctx context.Context, orderID uint) (uint, string, error) {
		o, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return 0, "", err
		}
		acc, err := accountRepo.FindByID(ctx, o.CustomerID)
		if err != nil {
			return 0, "", err
		}
		return o.CustomerID, acc.Email, nil
	}
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	accountHandler *handler.AccountHandler,
	productHandler *handler.ProductHandler,
	inventoryHandler *handler.InventoryHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
	shipmentHandler *handler.ShipmentHandler,
	reportHandler *handler.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.InitMetrics()

	r := gin.Default()
	r.Use(metrics.GinMiddleware())

	// Swagger文档，访问 /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, &handlers{
		account:   accountHandler,
		product:   productHandler,
		inventory: inventoryHandler,
		cart:      cartHandler,
		order:     orderHandler,
		payment:   paymentHandler,
		shipment:  shipmentHandler,
		report:    reportHandler,
	}, authMiddleware)

	return r
}

// InitializeApp 初始化整个应用
// Wire在编译期分析依赖关系并生成初始化代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
