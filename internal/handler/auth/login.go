package auth

import (
	"errors"
	"net/http"

	"product-management/internal/api"
	"product-management/internal/database"
	"product-management/internal/dto"
	"product-management/internal/service"
	"product-management/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 驗證 Email 與 Password，成功回傳 24 小時效期的存取令牌。
// @Description 查無帳號與密碼錯誤回覆完全相同，避免帳號列舉。
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     200 {object} dto.LoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, auth *service.Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Email and password are required"})
		}

		// 撈使用者資料；查無帳號與密碼錯誤必須回覆一致，資料庫故障則回 500
		user, err := store.GetUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Invalid credentials"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error logging in"})
		}
		if err := service.AuthenticateUser(*user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "Invalid credentials"})
		}

		token, err := auth.IssueToken(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error logging in"})
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{
			Token:   token,
			UserID:  user.ID,
			IsAdmin: user.IsAdmin,
			Name:    user.Name,
		})
	}
}
