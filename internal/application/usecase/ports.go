package usecase

import (
	"context"

	"github.com/tu-usuario/stockcontrol-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con
// repositorios atados a esa tx. Lo usan la actualización de productos (el
// UPDATE escribe stock_status y debe serializarse contra el ledger) y la
// eliminación (verificación protect + cascada de alertas atómicas).
// Misma firma que inventory.TxRunner; ambas las satisface postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.AlertRepository,
	) error) error
}
