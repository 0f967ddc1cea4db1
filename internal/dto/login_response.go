package dto

// swagger:model dto.LoginResponse
type LoginResponse struct {
	Token   string `json:"token" example:"eyJhbGciOi..."`
	UserID  int    `json:"userId" example:"1"`
	IsAdmin bool   `json:"isAdmin" example:"false"`
	Name    string `json:"name" example:"Alice"`
}
