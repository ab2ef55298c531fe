package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockcontrol-api/internal/application/dto"
	"github.com/tu-usuario/stockcontrol-api/internal/domain"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/entity"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/repository"
	"github.com/tu-usuario/stockcontrol-api/pkg/logger"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional
// (in, out) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// El ledger es la única vía de mutación de Product.Quantity; en la misma
// escritura se rederiva Product.Status.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository
	notifier StatusNotifier // opcional; nil = sin hook de alertas
	log      *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso. notifier puede ser nil.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	movRepo repository.StockMovementRepository,
	notifier StatusNotifier,
	log *logger.Logger,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo, notifier: notifier, log: log}
}

// MovementInputDTO entrada para registrar un movimiento de stock.
type MovementInputDTO struct {
	UserID    string
	ProductID string
	Type      string // in, out
	Quantity  int    // >= 1
	Notes     string
}

// RegisterMovement inicia una transacción, bloquea la fila del producto
// (SELECT FOR UPDATE), verifica suficiencia en salidas, escribe la nueva
// cantidad con su estado derivado y persiste el movimiento; Commit o Rollback.
//
// El bloqueo de fila serializa movimientos concurrentes sobre el mismo
// producto: dos salidas simultáneas no pueden pasar ambas la verificación de
// suficiencia contra una cantidad obsoleta.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (*dto.MovementResponse, error) {
	if !entity.IsValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.ProductID == "" || input.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		Type:      input.Type,
		Quantity:  input.Quantity,
		Date:      now,
		Notes:     input.Notes,
		CreatedBy: input.UserID,
	}

	var updated entity.Product
	var previousStatus string

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		_ repository.AlertRepository,
	) error {
		// Bloquea la fila del producto para evitar lost updates
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newQty := product.Quantity
		switch input.Type {
		case entity.MovementTypeIn:
			newQty += input.Quantity
		case entity.MovementTypeOut:
			if input.Quantity > product.Quantity {
				// Se rechaza antes de cualquier mutación
				return domain.ErrInsufficientStock
			}
			newQty -= input.Quantity
		}

		previousStatus = product.Status
		newStatus := entity.DeriveStockStatus(newQty, product.MinStock)

		// Cantidad, estado derivado y updated_at como una sola escritura lógica
		if err := productRepo.UpdateQuantity(product.ID, newQty, newStatus, now); err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		updated = *product
		updated.Quantity = newQty
		updated.Status = newStatus
		updated.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Hook post-commit: la generación de alertas es política externa al ledger.
	// Un fallo aquí no revierte el movimiento, pero nunca se ignora en silencio.
	if uc.notifier != nil && previousStatus != updated.Status {
		if err := uc.notifier.NotifyStatusChange(ctx, &updated, previousStatus); err != nil && uc.log != nil {
			uc.log.Warn().Err(err).
				Str("product_id", updated.ID).
				Str("status", updated.Status).
				Msg("hook de alertas falló tras registrar movimiento")
		}
	}

	return toMovementResponse(mov, &updated), nil
}

// ListMovements lista movimientos del más reciente al más antiguo,
// opcionalmente filtrados por producto. El ledger no expone update ni delete.
func (uc *RegisterMovementUseCase) ListMovements(productID string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.List(repository.MovementFilter{
		ProductID: productID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Date:      m.Date,
			Notes:     m.Notes,
			CreatedBy: m.CreatedBy,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementResponse(m *entity.StockMovement, p *entity.Product) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:              m.ID,
		ProductID:       m.ProductID,
		Type:            m.Type,
		Quantity:        m.Quantity,
		Date:            m.Date,
		Notes:           m.Notes,
		CreatedBy:       m.CreatedBy,
		ProductQuantity: p.Quantity,
		ProductStatus:   p.Status,
	}
}
