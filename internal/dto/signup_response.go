package dto

// swagger:model dto.SignupResponse
type SignupResponse struct {
	Message string `json:"message" example:"User created successfully"`
	UserID  int    `json:"userId" example:"1"`
}
