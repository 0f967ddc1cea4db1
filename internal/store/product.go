package store

import (
	"context"
	"fmt"

	"product-management/internal/database"
	"product-management/internal/model"
)

// ListProducts 回傳全部商品並 JOIN 擁有者名稱，依建立時間新到舊排序。
func ListProducts(ctx context.Context, db database.DB) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT p.id, p.name, p.description, p.price, p.quantity, p.user_id, u.name AS user_name, p.created_at
		 FROM products p
		 LEFT JOIN users u ON p.user_id = u.id
		 ORDER BY p.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Quantity,
			&p.UserID,
			&p.UserName,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

// CreateProduct 新增商品，id 與 created_at 由資料庫產生。
func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (name, description, price, quantity, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		p.Name,
		p.Description,
		p.Price,
		p.Quantity,
		p.UserID,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	return p, nil
}

// GetProductOwner 取得商品擁有者 id，用於寫入前的存在與權限檢查。
// 商品不存在時回傳包 pgx.ErrNoRows 的錯誤。
func GetProductOwner(ctx context.Context, db database.DB, id int) (*int, error) {
	var ownerID *int
	row := db.QueryRow(ctx,
		`SELECT user_id FROM products WHERE id = $1`,
		id,
	)
	if err := row.Scan(&ownerID); err != nil {
		return nil, fmt.Errorf("GetProductOwner: %w", err)
	}
	return ownerID, nil
}

// UpdateProduct 覆寫 name/description/price/quantity，擁有者與 id 不變。
func UpdateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`UPDATE products
		 SET name = $1, description = $2, price = $3, quantity = $4
		 WHERE id = $5
		 RETURNING id, name, description, price, quantity, user_id, created_at`,
		p.Name,
		p.Description,
		p.Price,
		p.Quantity,
		p.ID,
	)
	updated := &model.Product{}
	if err := row.Scan(
		&updated.ID,
		&updated.Name,
		&updated.Description,
		&updated.Price,
		&updated.Quantity,
		&updated.UserID,
		&updated.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("UpdateProduct: %w", err)
	}
	return updated, nil
}

func DeleteProduct(ctx context.Context, db database.DB, id int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM products WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	return nil
}
