package handler

import (
	"net/http"
	"time"

	"product-management/internal/dto"

	"github.com/labstack/echo/v4"
)

// HealthHandler 健康檢查（無需認證）
// @Summary     Health Check
// @Description 回傳服務狀態與當前時間
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.HealthResponse
// @Router      /health [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	}
}
