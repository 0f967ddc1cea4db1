package auth

import (
	"errors"
	"net/http"

	"product-management/internal/api"
	"product-management/internal/database"
	"product-management/internal/dto"
	"product-management/internal/model"
	"product-management/internal/service"
	"product-management/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// SignupHandler 註冊新使用者
// @Summary     註冊使用者
// @Description 建立一般（非管理員）帳號，密碼僅儲存 bcrypt 雜湊。Email 重複回 400。
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.SignupRequest true "註冊資料"
// @Success     201 {object} dto.SignupResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "All fields are required"})
		}

		// Email 區分大小寫精確比對既有帳號
		_, err := store.GetUserByEmail(c.Request().Context(), db, req.Email)
		if err == nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "User already exists"})
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error creating user"})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error creating user"})
		}

		user := &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		}
		created, err := store.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error creating user"})
		}

		return c.JSON(http.StatusCreated, dto.SignupResponse{
			Message: "User created successfully",
			UserID:  created.ID,
		})
	}
}
