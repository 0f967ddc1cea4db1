package service

import (
	"errors"
	"fmt"
	"time"

	"product-management/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredentials 登入失敗的統一錯誤。
// 查無使用者與密碼錯誤回傳同一個錯誤，避免洩漏帳號是否存在。
var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims 定義 JWT 負載內容，即每個請求的呼叫者身分。
// 身分以發 token 當下為準，驗證時不再查資料庫。
type Claims struct {
	UserID  int  `json:"userId"`
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Authenticator 負責發行與驗證 session token。
// 簽章金鑰與效期由建構時注入，不讀取全域狀態。
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

func NewAuthenticator(secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{secret: []byte(secret), ttl: ttl}
}

// AuthenticateUser 比對使用者密碼，失敗一律回傳 ErrInvalidCredentials
func AuthenticateUser(user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueToken 依據使用者資訊產生 JWT，效期為建構時設定的 ttl
func (a *Authenticator) IssueToken(user model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// VerifyToken 驗證並解析 JWT 令牌，簽章錯誤、格式錯誤與過期都回傳 error
func (a *Authenticator) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
