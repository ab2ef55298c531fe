package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock válidos para Product.Status.
const (
	StatusAvailable = "available" // por encima del doble del mínimo
	StatusLow       = "low"       // entre el mínimo y el doble del mínimo
	StatusCritical  = "critical"  // en el mínimo o por debajo
	StatusDepleted  = "depleted"  // sin existencias
)

// Product representa un producto del inventario.
// Quantity nunca se modifica directamente: solo vía movimientos de stock.
// Status es derivado de (Quantity, MinStock); nunca lo fija un caller.
type Product struct {
	ID          string
	Name        string
	Description string
	Quantity    int              // existencias actuales, siempre >= 0
	MinStock    int              // umbral mínimo, siempre >= 0
	Price       *decimal.Decimal // opcional, 2 decimales
	Status      string           // derivado, ver DeriveStockStatus
	Active      bool
	CreatedBy   string // UserID, inmutable tras la creación
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeriveStockStatus calcula el estado de stock como función pura de
// (quantity, minStock). Se evalúa en este orden:
//
//	quantity == 0            → depleted
//	quantity <= minStock     → critical
//	quantity <= 2*minStock   → low
//	en otro caso             → available
//
// Debe invocarse en cada cambio de cantidad; el estado jamás se asigna a mano.
func DeriveStockStatus(quantity, minStock int) string {
	switch {
	case quantity == 0:
		return StatusDepleted
	case quantity <= minStock:
		return StatusCritical
	case quantity <= 2*minStock:
		return StatusLow
	default:
		return StatusAvailable
	}
}

// NeedsRestock indica si el producto está en el umbral mínimo o por debajo.
func (p *Product) NeedsRestock() bool {
	return p.Quantity <= p.MinStock
}
