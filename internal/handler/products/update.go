package products

import (
	"errors"
	"net/http"
	"strconv"

	"product-management/internal/api"
	"product-management/internal/cache"
	"product-management/internal/database"
	"product-management/internal/dto"
	"product-management/internal/middleware"
	"product-management/internal/model"
	"product-management/internal/service"
	"product-management/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// UpdateProductHandler 更新商品
// @Summary     更新商品
// @Description 覆寫商品的 name/description/price/quantity，擁有者與 id 不變。
// @Description 僅擁有者或管理員可更新；商品不存在一律回 404（先查存在再查權限）。
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id   path int                true "商品 ID"
// @Param       body body api.ProductRequest true "商品資料"
// @Success     200 {object} model.Product
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /products/{id} [put]
func UpdateProductHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFrom(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Access denied. No token provided."})
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid product ID"})
		}

		var req api.ProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Name, price, and quantity are required"})
		}

		// 先確認存在（404 優先於 403，管理員也一樣）
		ownerID, err := store.GetProductOwner(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "Product not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error updating product"})
		}
		if !service.CanMutate(claims, ownerID) {
			return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "Not authorized to edit this product"})
		}

		p := &model.Product{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Price:       *req.Price,
			Quantity:    *req.Quantity,
		}
		updated, err := store.UpdateProduct(c.Request().Context(), db, p)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error updating product"})
		}

		rdb.Del(c.Request().Context(), listCacheKey)

		return c.JSON(http.StatusOK, updated)
	}
}
