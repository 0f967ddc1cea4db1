package products

import (
	"errors"
	"net/http"
	"strconv"

	"product-management/internal/cache"
	"product-management/internal/database"
	"product-management/internal/dto"
	"product-management/internal/middleware"
	"product-management/internal/service"
	"product-management/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// DeleteProductHandler 刪除商品
// @Summary     刪除商品
// @Description 僅擁有者或管理員可刪除；商品不存在一律回 404。
// @Tags        products
// @Produce     json
// @Param       id path int true "商品 ID"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /products/{id} [delete]
func DeleteProductHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFrom(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Access denied. No token provided."})
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid product ID"})
		}

		ownerID, err := store.GetProductOwner(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "Product not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error deleting product"})
		}
		if !service.CanMutate(claims, ownerID) {
			return c.JSON(http.StatusForbidden, dto.HTTPError{Message: "Not authorized to delete this product"})
		}

		if err := store.DeleteProduct(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error deleting product"})
		}

		rdb.Del(c.Request().Context(), listCacheKey)

		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Product deleted successfully"})
	}
}
