package model

import "time"

// Product 商品資料列。UserID 為擁有者，擁有者被刪除後可為 NULL（不做 cascade）。
// UserName 僅在列表查詢 JOIN 擁有者名稱時填入。
type Product struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	Quantity    int       `db:"quantity" json:"quantity"`
	UserID      *int      `db:"user_id" json:"user_id"`
	UserName    *string   `db:"user_name" json:"user_name,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
