package dto

import "time"

// swagger:model dto.HealthResponse
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp" example:"2025-05-09T15:04:05Z"`
}
