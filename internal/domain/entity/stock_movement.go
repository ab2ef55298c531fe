package entity

import "time"

// Tipos de movimiento de stock. Conjunto cerrado: cualquier otro valor se
// rechaza en la frontera HTTP antes de llegar al ledger.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// IsValidMovementType verifica que el tipo pertenezca al conjunto cerrado.
func IsValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// StockMovement representa un movimiento de stock (entrada o salida).
// El ledger es append-only: un movimiento es inmutable una vez creado,
// no existen operaciones de actualización ni borrado.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // in, out
	Quantity  int    // siempre >= 1
	Date      time.Time
	Notes     string
	CreatedBy string // UserID responsable, inmutable
}
