package dto

import "time"

// AlertResponse salida de una alerta de stock.
type AlertResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// AlertListResponse lista de alertas (más recientes primero).
type AlertListResponse struct {
	Items []AlertResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
