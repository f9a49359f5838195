package routes

import (
	"foodway-backend/configs"
	"foodway-backend/controllers"
	"foodway-backend/middlewares"
	"foodway-backend/repository"
	"foodway-backend/services"
	"foodway-backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	bagRepo := repository.NewBagRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(catalogRepo)
	bagSvc := services.NewBagService(db, bagRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, hub)
	checkoutSvc := services.NewCheckoutService(db, bagRepo, orderRepo, services.SandboxGateway{}, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	bagCtrl := controllers.NewBagController(bagSvc, checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	operatorCtrl := controllers.NewOperatorController(orderSvc)

	authed := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", authed)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Catalog (public)
	r.GET("/restaurants", catalogCtrl.ListRestaurants)
	r.GET("/restaurants/:id", catalogCtrl.RestaurantDetail)
	r.GET("/foods", catalogCtrl.ListFoods)
	r.GET("/foods/:id", catalogCtrl.FoodDetail)

	// Bag
	bag := r.Group("/bag", authed)
	{
		bag.GET("", bagCtrl.Get)
		bag.POST("/items", bagCtrl.AddItem)
		bag.PATCH("/items/qty", bagCtrl.UpdateQty)
		bag.PATCH("/items/adjust", bagCtrl.AdjustQty)
		bag.DELETE("/items", bagCtrl.RemoveItem)
		bag.DELETE("", bagCtrl.Clear)
		bag.PATCH("/mode", bagCtrl.SetMode)
		bag.PATCH("/location", bagCtrl.SetDeliveryLocation)
		bag.PATCH("/pre-order-time", bagCtrl.SetPreOrderTime)
		bag.POST("/checkout", bagCtrl.PlaceOrder)
	}

	// Orders
	orders := r.Group("/orders", authed)
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
		orders.POST("/:id/reorder", orderCtrl.Reorder)
		orders.GET("/:id/qr", orderCtrl.PickupQR)
	}

	// Operator (admin)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.PUT("/orders/:id/complete", operatorCtrl.Complete)
		admin.PUT("/orders/:id/cancel", operatorCtrl.Cancel)
	}

	// Order stream
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
