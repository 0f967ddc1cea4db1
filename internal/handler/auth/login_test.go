package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"product-management/internal/database"
	"product-management/internal/model"
	"product-management/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

/* ---------- 共用測試工具 ---------- */

type testValidator struct{ v *validator.Validate }

func (tv testValidator) Validate(i any) error { return tv.v.Struct(i) }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = testValidator{v: validator.New()}
	return e
}

// newJSONCtx 建立帶 JSON body 的 echo context
func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// fakeUserRow 實作 pgx.Row（users 資料列）
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 6:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*bool) = u.IsAdmin
		*dest[5].(*time.Time) = u.CreatedAt
	case 2:
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected number of dest")
	}
	return nil
}

/* ---------- 完整測試 ---------- */

func TestLoginHandler(t *testing.T) {
	authn := service.NewAuthenticator("testsecret", 24*time.Hour)
	hash, err := service.HashPassword("pw123")
	require.NoError(t, err)
	ann := model.User{ID: 3, Name: "Ann", Email: "ann@x.com", PasswordHash: hash}

	// bind error
	e := newEcho()
	ctx, rec := newJSONCtx(e, "{not json")
	h := LoginHandler(&database.FakeDB{}, authn)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 欄位缺漏
	ctx, rec = newJSONCtx(e, `{"email":"ann@x.com"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 查無帳號
	ctx, rec = newJSONCtx(e, `{"email":"nobody@x.com","password":"pw123"}`)
	h = LoginHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return &fakeUserRow{scanErr: pgx.ErrNoRows}
	}}, authn)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	notFoundBody := rec.Body.String()

	// 資料庫故障不得偽裝成帳密錯誤，必須回 500
	ctx, rec = newJSONCtx(e, `{"email":"ann@x.com","password":"pw123"}`)
	h = LoginHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return &fakeUserRow{scanErr: errors.New("connection refused")}
	}}, authn)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Error logging in")

	// 密碼錯誤：狀態與回應內容必須與查無帳號完全一致
	ctx, rec = newJSONCtx(e, `{"email":"ann@x.com","password":"wrong"}`)
	h = LoginHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return &fakeUserRow{user: &ann}
	}}, authn)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, notFoundBody, rec.Body.String())

	// 登入成功
	ctx, rec = newJSONCtx(e, `{"email":"ann@x.com","password":"pw123"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `"token"`)
	require.Contains(t, body, `"userId":3`)
	require.Contains(t, body, `"isAdmin":false`)
	require.Contains(t, body, `"name":"Ann"`)
}

func TestLoginTokenRoundTrip(t *testing.T) {
	// 登入發出的 token 必須能被同一把金鑰的 Verifier 接受
	authn := service.NewAuthenticator("testsecret", 24*time.Hour)
	hash, err := service.HashPassword("pw123")
	require.NoError(t, err)
	admin := model.User{ID: 1, Name: "Admin", Email: "admin@example.com", PasswordHash: hash, IsAdmin: true}

	e := newEcho()
	ctx, rec := newJSONCtx(e, `{"email":"admin@example.com","password":"pw123"}`)
	h := LoginHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return &fakeUserRow{user: &admin}
	}}, authn)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	claims, err := authn.VerifyToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.True(t, claims.IsAdmin)
}
