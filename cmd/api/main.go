package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appaccount "github.com/datpham0412/yourlocalshop/internal/application/account"
	appcart "github.com/datpham0412/yourlocalshop/internal/application/cart"
	appinventory "github.com/datpham0412/yourlocalshop/internal/application/inventory"
	apporder "github.com/datpham0412/yourlocalshop/internal/application/order"
	apppayment "github.com/datpham0412/yourlocalshop/internal/application/payment"
	appproduct "github.com/datpham0412/yourlocalshop/internal/application/product"
	appreport "github.com/datpham0412/yourlocalshop/internal/application/report"
	appshipment "github.com/datpham0412/yourlocalshop/internal/application/shipment"
	"github.com/datpham0412/yourlocalshop/internal/domain/account"
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
	"github.com/datpham0412/yourlocalshop/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入，组装链为 Repository ← Service ← UseCase ← Handler
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化指标
	metrics.InitMetrics()

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 事件监听器
	// 日志通知器始终启用；配置开启后额外向RabbitMQ投递
	listeners := []observer.Listener{notification.NewEmailLogNotifier()}
	if cfg.Notify.Enabled {
		amqpNotifier, err := notification.NewAMQPNotifier(cfg.Notify.AMQPURL, cfg.Notify.Exchange)
		if err != nil {
			log.Fatalf("初始化消息队列失败: %v", err)
		}
		defer amqpNotifier.Close()
		listeners = append(listeners, amqpNotifier)
	}

	// 6. 依赖注入（手动组装）

	// 基础设施层
	accountRepo := mysql.NewAccountRepository(db)
	productRepo := mysql.NewProductRepository(db)
	stockRepo := mysql.NewStockRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	paymentRepo := mysql.NewPaymentRepository(db)
	invoiceRepo := mysql.NewInvoiceRepository(db)
	shipmentRepo := mysql.NewShipmentRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	productCache := redis.NewProductCache(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	accountService := account.NewService(accountRepo)
	productService := product.NewService(productRepo)

	// 应用层
	registerUseCase := appaccount.NewRegisterUseCase(accountService)
	loginUseCase := appaccount.NewLoginUseCase(accountService, jwtManager, sessionStore)
	logoutUseCase := appaccount.NewLogoutUseCase(sessionStore)
	profileUseCase := appaccount.NewProfileUseCase(accountRepo)

	createProductUseCase := appproduct.NewCreateProductUseCase(productService, stockRepo)
	getProductUseCase := appproduct.NewGetProductUseCase(productRepo, stockRepo, productCache)
	listProductsUseCase := appproduct.NewListProductsUseCase(productService)
	updateProductUseCase := appproduct.NewUpdateProductUseCase(productService, productCache)
	deleteProductUseCase := appproduct.NewDeleteProductUseCase(productService, productCache)

	adjustStockUseCase := appinventory.NewAdjustStockUseCase(stockRepo, productRepo)
	getStockUseCase := appinventory.NewGetStockUseCase(stockRepo)
	listStocksUseCase := appinventory.NewListStocksUseCase(productRepo, stockRepo)

	addItemUseCase := appcart.NewAddItemUseCase(cartRepo, productRepo, stockRepo, cfg.Sales.TaxRate)
	viewCartUseCase := appcart.NewViewCartUseCase(cartRepo)
	updateItemUseCase := appcart.NewUpdateItemUseCase(cartRepo, productRepo, stockRepo, cfg.Sales.TaxRate)
	removeItemUseCase := appcart.NewRemoveItemUseCase(cartRepo, cfg.Sales.TaxRate)

	checkoutUseCase := apporder.NewCheckoutUseCase(cartRepo, orderRepo, stockRepo, txManager)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	updateStatusUseCase := apporder.NewUpdateStatusUseCase(orderRepo)
	cancelOrderUseCase := apporder.NewCancelOrderUseCase(orderRepo)

	payOrderUseCase := apppayment.NewPayOrderUseCase(
		orderRepo, paymentRepo, stockRepo, shipmentRepo, accountRepo, listeners, txManager)
	generateInvoiceUseCase := apppayment.NewGenerateInvoiceUseCase(
		orderRepo, paymentRepo, invoiceRepo, accountRepo, listeners)
	getInvoiceUseCase := apppayment.NewGetInvoiceUseCase(orderRepo, invoiceRepo)

	customerLookup := appshipment.CustomerLookup(
		func(ctx context.Context, orderID uint) (uint, string, error) {
			o, err := orderRepo.FindByID(ctx, orderID)
			if err != nil {
				return 0, "", err
			}
			acc, err := accountRepo.FindByID(ctx, o.CustomerID)
			if err != nil {
				return 0, "", err
			}
			return o.CustomerID, acc.Email, nil
		})
	updateShipmentUseCase := appshipment.NewUpdateShipmentUseCase(shipmentRepo, customerLookup, listeners)
	getShipmentUseCase := appshipment.NewGetShipmentUseCase(shipmentRepo, customerLookup)

	salesReportUseCase := appreport.NewSalesReportUseCase(orderRepo)

	// 接口层
	accountHandler := handler.NewAccountHandler(registerUseCase, loginUseCase, logoutUseCase, profileUseCase, jwtManager)
	productHandler := handler.NewProductHandler(
		createProductUseCase, getProductUseCase, listProductsUseCase,
		updateProductUseCase, deleteProductUseCase)
	inventoryHandler := handler.NewInventoryHandler(listStocksUseCase, getStockUseCase, adjustStockUseCase)
	cartHandler := handler.NewCartHandler(addItemUseCase, viewCartUseCase, updateItemUseCase, removeItemUseCase)
	orderHandler := handler.NewOrderHandler(
		checkoutUseCase, getOrderUseCase, listOrdersUseCase, updateStatusUseCase, cancelOrderUseCase)
	paymentHandler := handler.NewPaymentHandler(payOrderUseCase, generateInvoiceUseCase, getInvoiceUseCase)
	shipmentHandler := handler.NewShipmentHandler(updateShipmentUseCase, getShipmentUseCase)
	reportHandler := handler.NewReportHandler(salesReportUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(metrics.GinMiddleware())

	// 8. 注册路由
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

	// 9. 启动服务（支持平滑退出）
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("\n服务启动成功，监听 %s\n", addr)
		fmt.Printf("  健康检查: GET /ping\n")
		fmt.Printf("  指标采集: GET /metrics\n")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("\n正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("关闭服务失败: %v", err)
	}
	fmt.Println("服务已退出")
}

// handlers 路由注册所需的全部处理器
type handlers struct {
	account   *handler.AccountHandler
	product   *handler.ProductHandler
	inventory *handler.InventoryHandler
	cart      *handler.CartHandler
	order     *handler.OrderHandler
	payment   *handler.PaymentHandler
	shipment  *handler.ShipmentHandler
	report    *handler.ReportHandler
}

// registerRoutes 注册路由
// 权限分层：公开 → 登录 → 员工/管理员 → 管理员
func registerRoutes(r *gin.Engine, h *handlers, auth *middleware.AuthMiddleware) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// 账户模块
		accounts := v1.Group("/accounts")
		{
			accounts.POST("/register", h.account.Register)
			accounts.POST("/login", h.account.Login)
			accounts.POST("/refresh", h.account.RefreshToken)
			accounts.POST("/logout", auth.RequireAuth(), h.account.Logout)
		}

		// 个人信息（登录）
		v1.GET("/profile", auth.RequireAuth(), h.account.Profile)
		v1.PUT("/profile", auth.RequireAuth(), h.account.UpdateProfile)

		// 商品模块（查询公开，管理需要管理员）
		products := v1.Group("/products")
		{
			products.GET("", h.product.List)
			products.GET("/:id", h.product.Get)

			admin := products.Group("")
			admin.Use(auth.RequireAuth(), auth.RequireRole(account.RoleAdmin))
			{
				admin.POST("", h.product.Create)
				admin.PUT("/:id", h.product.Update)
				admin.DELETE("/:id", h.product.Delete)
			}
		}

		// 库存模块（员工/管理员）
		inventory := v1.Group("/inventory")
		inventory.Use(auth.RequireAuth(), auth.RequireRole(account.RoleStaff, account.RoleAdmin))
		{
			inventory.GET("", h.inventory.List)
			inventory.GET("/:product_id", h.inventory.Get)
			inventory.PUT("/:product_id", h.inventory.Adjust)
		}

		// 购物车模块（登录顾客）
		cart := v1.Group("/cart")
		cart.Use(auth.RequireAuth())
		{
			cart.GET("", h.cart.View)
			cart.POST("/items", h.cart.AddItem)
			cart.PUT("/items/:item_id", h.cart.UpdateItem)
			cart.DELETE("/items/:item_id", h.cart.RemoveItem)
		}

		// 订单模块（登录）
		orders := v1.Group("/orders")
		orders.Use(auth.RequireAuth())
		{
			orders.POST("", h.order.Checkout)
			orders.GET("", h.order.List)
			orders.GET("/:id", h.order.Get)
			orders.POST("/:id/cancel", h.order.Cancel)

			orders.POST("/:id/payment", h.payment.Pay)
			orders.GET("/:id/invoice", h.payment.GetInvoice)
			orders.GET("/:id/shipment", h.shipment.Get)

			// 履约状态推进限员工/管理员
			orders.POST("/:id/status",
				auth.RequireRole(account.RoleStaff, account.RoleAdmin), h.order.UpdateStatus)
		}

		// 支付模块（登录）
		payments := v1.Group("/payments")
		payments.Use(auth.RequireAuth())
		{
			payments.POST("/:id/invoice", h.payment.GenerateInvoice)
		}

		// 物流模块（员工/管理员回传）
		shipments := v1.Group("/shipments")
		shipments.Use(auth.RequireAuth(), auth.RequireRole(account.RoleStaff, account.RoleAdmin))
		{
			shipments.PUT("/:id/status", h.shipment.UpdateStatus)
		}

		// 报表模块（管理员）
		reports := v1.Group("/reports")
		reports.Use(auth.RequireAuth(), auth.RequireRole(account.RoleAdmin))
		{
			reports.GET("/sales", h.report.Sales)
		}
	}
}
