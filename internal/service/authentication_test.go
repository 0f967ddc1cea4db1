package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"product-management/internal/model"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEqual(t, "pw123", hash)

	require.NoError(t, ComparePassword(hash, "pw123"))
	require.Error(t, ComparePassword(hash, "wrong"))
}

func TestRandomSecret(t *testing.T) {
	a, err := RandomSecret(16)
	require.NoError(t, err)
	require.Len(t, a, 32) // hex 編碼

	b, err := RandomSecret(16)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestAuthenticateUser(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	user := model.User{ID: 1, PasswordHash: hash}

	require.NoError(t, AuthenticateUser(user, "pw123"))

	// 密碼錯誤與查無帳號用同一個錯誤值
	err = AuthenticateUser(user, "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIssueAndVerifyToken(t *testing.T) {
	a := NewAuthenticator("testsecret", 24*time.Hour)

	tok, err := a.IssueToken(model.User{ID: 7, IsAdmin: true})
	require.NoError(t, err)

	claims, err := a.VerifyToken(tok)
	require.NoError(t, err)
	require.Equal(t, 7, claims.UserID)
	require.True(t, claims.IsAdmin)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenClaimKeys(t *testing.T) {
	// token payload 必須使用 userId / isAdmin 這兩個鍵，與既有客戶端相容
	a := NewAuthenticator("testsecret", time.Hour)
	tok, err := a.IssueToken(model.User{ID: 1})
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	require.Contains(t, string(payload), `"userId":1`)
	require.Contains(t, string(payload), `"isAdmin":false`)
}

func TestVerifyTokenRejections(t *testing.T) {
	a := NewAuthenticator("testsecret", time.Hour)

	// 格式錯誤
	_, err := a.VerifyToken("not-a-token")
	require.Error(t, err)

	// 簽章金鑰不同
	other := NewAuthenticator("othersecret", time.Hour)
	tok, err := other.IssueToken(model.User{ID: 1})
	require.NoError(t, err)
	_, err = a.VerifyToken(tok)
	require.Error(t, err)

	// 竄改 payload
	tok, err = a.IssueToken(model.User{ID: 1})
	require.NoError(t, err)
	parts := strings.Split(tok, ".")
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(`{"userId":99,"isAdmin":true}`))
	_, err = a.VerifyToken(strings.Join(parts, "."))
	require.Error(t, err)

	// 已過期
	expired := NewAuthenticator("testsecret", -time.Minute)
	tok, err = expired.IssueToken(model.User{ID: 1})
	require.NoError(t, err)
	_, err = a.VerifyToken(tok)
	require.Error(t, err)
}
