package products

import (
	"net/http"

	"product-management/internal/api"
	"product-management/internal/cache"
	"product-management/internal/database"
	"product-management/internal/dto"
	"product-management/internal/middleware"
	"product-management/internal/model"
	"product-management/internal/store"

	"github.com/labstack/echo/v4"
)

// CreateProductHandler 建立商品
// @Summary     建立商品
// @Description 建立新商品，擁有者一律為呼叫者本人，客戶端無法指定 id 或擁有者。
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       body body api.ProductRequest true "商品資料"
// @Success     201 {object} model.Product
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /products [post]
func CreateProductHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFrom(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Access denied. No token provided."})
		}

		var req api.ProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Name, price, and quantity are required"})
		}

		ownerID := claims.UserID
		p := &model.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       *req.Price,
			Quantity:    *req.Quantity,
			UserID:      &ownerID,
		}
		created, err := store.CreateProduct(c.Request().Context(), db, p)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error creating product"})
		}

		rdb.Del(c.Request().Context(), listCacheKey)

		return c.JSON(http.StatusCreated, created)
	}
}
