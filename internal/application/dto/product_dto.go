package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Status no se acepta: siempre se deriva de (quantity, min_stock).
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=255"`
	Description string           `json:"description"`
	Quantity    int              `json:"quantity" validate:"min=0"`
	MinStock    int              `json:"min_stock" validate:"min=0"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// UpdateProductRequest entrada para actualizar campos descriptivos de un
// producto. Quantity no es actualizable aquí: solo vía movimientos.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description"`
	MinStock    *int             `json:"min_stock" validate:"omitempty,min=0"`
	Price       *decimal.Decimal `json:"price"`
	Active      *bool            `json:"active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Quantity     int              `json:"quantity"`
	MinStock     int              `json:"min_stock"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Status       string           `json:"status"`
	NeedsRestock bool             `json:"needs_restock"`
	Active       bool             `json:"active"`
	CreatedBy    string           `json:"created_by"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
