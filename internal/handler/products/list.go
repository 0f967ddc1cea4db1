package products

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"product-management/internal/cache"
	"product-management/internal/database"
	"product-management/internal/dto"
	"product-management/internal/store"
	"product-management/internal/worker"

	"github.com/labstack/echo/v4"
)

// listCacheKey 商品列表快取鍵，任何商品寫入都會使其失效。
const listCacheKey = "products:all"

// ListProductsHandler 取得全部商品
// @Summary     商品列表
// @Description 回傳全部商品（含擁有者名稱），依建立時間新到舊。快取命中時直接回傳快取內容。
// @Tags        products
// @Produce     json
// @Success     200 {array} model.Product
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /products [get]
func ListProductsHandler(db database.DB, rdb cache.Cache, wp worker.Pool, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		// 快取命中直接回傳；失敗一律退回資料庫，不影響請求
		if cached, err := rdb.Get(ctx, listCacheKey).Result(); err == nil && cached != "" {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		list, err := store.ListProducts(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error fetching products"})
		}

		body, err := json.Marshal(list)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error fetching products"})
		}

		// 回填快取交給背景 worker，不阻塞當前請求
		wp.Submit(func() {
			rdb.Set(context.Background(), listCacheKey, body, ttl)
		})

		return c.JSONBlob(http.StatusOK, body)
	}
}
