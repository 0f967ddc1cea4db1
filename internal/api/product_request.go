package api

// ProductRequest 建立與更新商品共用的請求格式。
// Price 與 Quantity 用指標以區分「缺欄位」與零值；Description 可省略。
// swagger:model api.ProductRequest
type ProductRequest struct {
	Name        string   `json:"name" validate:"required" example:"Widget"`
	Description string   `json:"description" example:"A useful widget"`
	Price       *float64 `json:"price" validate:"required,gte=0" example:"9.5"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0" example:"3"`
}
