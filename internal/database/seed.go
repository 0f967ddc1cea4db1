package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// SeedAdmin 以 email 為唯一鍵，冪等地建立啟動用管理員帳號。
// 帳號已存在時不做任何事；passwordHash 必須是已雜湊過的密碼。
// 回傳是否有新建立帳號。
func SeedAdmin(ctx context.Context, db DB, name, email, passwordHash string) (bool, error) {
	var id int
	err := db.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1`,
		email,
	).Scan(&id)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("SeedAdmin: %w", err)
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO users (name, email, password_hash, is_admin)
		 VALUES ($1, $2, $3, true)`,
		name,
		email,
		passwordHash,
	); err != nil {
		return false, fmt.Errorf("SeedAdmin: %w", err)
	}
	return true, nil
}
