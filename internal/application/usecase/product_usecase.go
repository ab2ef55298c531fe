package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockcontrol-api/internal/application/dto"
	"github.com/tu-usuario/stockcontrol-api/internal/domain"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/entity"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Quantity y Status se
// manejan vía movimientos; aquí solo se fija la cantidad inicial al crear.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un nuevo producto. Status se deriva inmediatamente de
// (quantity, min_stock); el caller nunca lo fija.
func (uc *ProductUseCase) Create(createdBy string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var price *decimal.Decimal
	if in.Price != nil {
		rounded := in.Price.Round(2)
		price = &rounded
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		Price:       price,
		Status:      entity.DeriveStockStatus(in.Quantity, in.MinStock),
		Active:      true,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza campos descriptivos. No permite modificar Quantity ni
// Status (se manejan vía movimientos); cambiar MinStock rederiva el estado.
//
// Corre dentro de una transacción con bloqueo de fila: el UPDATE escribe
// stock_status, así que leer sin bloquear dejaría que un movimiento
// concurrente quede pisado con un estado obsoleto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		_ repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		_ repository.AlertRepository,
	) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return nil
		}
		if in.Name != nil {
			if *in.Name == "" {
				return domain.ErrInvalidInput
			}
			product.Name = *in.Name
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.MinStock != nil {
			if *in.MinStock < 0 {
				return domain.ErrInvalidInput
			}
			product.MinStock = *in.MinStock
		}
		if in.Price != nil {
			if in.Price.IsNegative() {
				return domain.ErrInvalidInput
			}
			rounded := in.Price.Round(2)
			product.Price = &rounded
		}
		if in.Active != nil {
			product.Active = *in.Active
		}
		// La cantidad leída bajo el lock es la actual: rederivar siempre
		product.Status = entity.DeriveStockStatus(product.Quantity, product.MinStock)
		product.UpdatedAt = time.Now()
		if err := productRepo.Update(product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	return toProductResponse(updated), nil
}

// List lista productos con filtro de búsqueda (substring sobre nombre o
// descripción) y flag activeOnly, paginado.
func (uc *ProductUseCase) List(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// Delete elimina un producto con semántica protect: si existen movimientos
// que lo referencian se rechaza (ErrProtectedReference); sus alertas se
// eliminan en cascada. Verificación y cascada corren en una transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		alertRepo repository.AlertRepository,
	) error {
		product, err := productRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		n, err := movRepo.CountByProduct(id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrProtectedReference
		}
		if err := alertRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Quantity:     p.Quantity,
		MinStock:     p.MinStock,
		Price:        p.Price,
		Status:       p.Status,
		NeedsRestock: p.NeedsRestock(),
		Active:       p.Active,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
