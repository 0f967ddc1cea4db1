package dto

// swagger:model dto.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Product deleted successfully"`
}
