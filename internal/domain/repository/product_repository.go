package repository

import (
	"time"

	"github.com/tu-usuario/stockcontrol-api/internal/domain/entity"
)

// ProductFilter filtros para listar productos.
type ProductFilter struct {
	Search     string // substring sobre name o description (case-insensitive)
	ActiveOnly bool
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción del TxRunner.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity escribe cantidad, estado derivado y updated_at como una
	// sola escritura lógica. Es la única vía de mutación de Quantity; la
	// invoca exclusivamente el ledger de movimientos.
	UpdateQuantity(id string, quantity int, status string, updatedAt time.Time) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Delete(id string) error
}
