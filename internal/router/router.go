package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"product-management/internal/cache"
	"product-management/internal/database"
	"product-management/internal/handler"
	"product-management/internal/handler/auth"
	"product-management/internal/handler/products"
	"product-management/internal/middleware"
	"product-management/internal/service"
	"product-management/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool, authn *service.Authenticator, cacheTTL time.Duration) {
	api := e.Group("/api")

	// 健康檢查（無需登入）
	api.GET("/health", handler.HealthHandler())

	// 註冊與登入
	api.POST("/auth/signup", auth.SignupHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db, authn))

	// 商品 CRUD（全部需要 bearer token；寫入另有擁有者/管理員檢查）
	apiProducts := api.Group("/products", middleware.RequireAuth(authn))
	apiProducts.GET("", products.ListProductsHandler(db, rdb, wp, cacheTTL))
	apiProducts.POST("", products.CreateProductHandler(db, rdb))
	apiProducts.PUT("/:id", products.UpdateProductHandler(db, rdb))
	apiProducts.DELETE("/:id", products.DeleteProductHandler(db, rdb))
}
