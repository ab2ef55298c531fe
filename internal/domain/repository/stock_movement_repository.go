package repository

import "github.com/tu-usuario/stockcontrol-api/internal/domain/entity"

// MovementFilter filtros para listar movimientos.
type MovementFilter struct {
	ProductID string // vacío = todos los productos
	Limit     int
	Offset    int
}

// StockMovementRepository define el puerto de persistencia para el ledger de
// movimientos. Append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// List devuelve movimientos ordenados del más reciente al más antiguo.
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	// CountByProduct cuenta los movimientos que referencian un producto
	// (semántica protect al eliminar productos).
	CountByProduct(productID string) (int64, error)
}
