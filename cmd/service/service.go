// @title        Product Management API
// @version      1.0
// @description  多使用者商品庫存管理的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"product-management/internal/cache"
	"product-management/internal/config"
	"product-management/internal/database"
	"product-management/internal/router"
	"product-management/internal/service"
	"product-management/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "product-management/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	seedAdminFn     = database.SeedAdmin
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

// seedBootstrapAdmin 確保啟動用管理員帳號存在。
// 未設定 ADMIN_PASSWORD 時隨機產生密碼並記錄一次，絕不使用固定預設密碼。
func seedBootstrapAdmin(ctx context.Context, db database.DB, cfg *config.Config) error {
	password := cfg.AdminPassword
	generated := false
	if password == "" {
		var err error
		password, err = service.RandomSecret(16)
		if err != nil {
			return fmt.Errorf("產生管理員密碼失敗: %v", err)
		}
		generated = true
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return fmt.Errorf("管理員密碼雜湊失敗: %v", err)
	}

	created, err := seedAdminFn(ctx, db, cfg.AdminName, cfg.AdminEmail, hash)
	if err != nil {
		return fmt.Errorf("管理員帳號初始化失敗: %v", err)
	}
	if created && generated {
		// 只在本次啟動印出，之後無法再取得
		log.Printf("bootstrap admin %s created with generated password: %s", cfg.AdminEmail, password)
	}
	return nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("讀取設定失敗: %v", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	if err := seedBootstrapAdmin(context.Background(), db, cfg); err != nil {
		return err
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	authn := service.NewAuthenticator(cfg.JWTSecret, cfg.TokenTTL)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, redis, wp, authn, cfg.ProductsCacheTTL)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, fmt.Sprintf(":%d", cfg.Port))
}
