// Package config 以環境變數載入服務設定（12-factor）。
package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config 為服務全部的環境設定。
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// PostgreSQL
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Redis（商品列表快取）
	RedisAddr     string `env:"REDIS_ADDR,required"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Session token 簽章金鑰與效期
	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// 啟動用管理員帳號。密碼留空時會隨機產生並記錄一次。
	AdminName     string `env:"ADMIN_NAME" envDefault:"Admin"`
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:""`

	// 快取與背景工作
	ProductsCacheTTL time.Duration `env:"PRODUCTS_CACHE_TTL" envDefault:"30s"`
	WorkerCount      int           `env:"WORKER_COUNT" envDefault:"1"`
}

// Load 解析環境變數並回傳設定。
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
