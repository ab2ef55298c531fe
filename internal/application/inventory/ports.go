package inventory

import (
	"context"

	"github.com/tu-usuario/stockcontrol-api/internal/domain/entity"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger: si fn
// falla, ni la cantidad del producto ni el registro del movimiento cambian.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.AlertRepository,
	) error) error
}

// StatusNotifier recibe la transición de estado de un producto después de
// confirmar un movimiento. El ledger solo notifica; la política de creación
// de alertas vive fuera (ver usecase.AlertUseCase).
type StatusNotifier interface {
	NotifyStatusChange(ctx context.Context, product *entity.Product, previousStatus string) error
}
