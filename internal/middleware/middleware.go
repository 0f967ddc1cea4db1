package middleware

import (
	"net/http"
	"strings"

	"product-management/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// extractClaims 從 Authorization header 取出並驗證 bearer token。
// 沒帶 token 回 401；帶了但格式錯誤、簽章錯誤或過期回 403。
func extractClaims(c echo.Context, auth *service.Authenticator) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
	}
	if !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusForbidden, "Invalid token")
	}
	claims, err := auth.VerifyToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusForbidden, "Invalid token")
	}
	return claims, nil
}

// RequireAuth 驗證 bearer token 並將 Claims 放入 context，
// 之後的 handler 以 middleware.ContextUserKey 取得呼叫者身分。
func RequireAuth(auth *service.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, auth)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom 取出 RequireAuth 放入的 Claims，未經過 RequireAuth 時回傳 nil。
func ClaimsFrom(c echo.Context) *service.Claims {
	claims, ok := c.Get(ContextUserKey).(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}
