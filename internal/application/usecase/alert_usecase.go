package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockcontrol-api/internal/application/dto"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/entity"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/repository"
)

// AlertUseCase casos de uso para alertas de stock: listado, marcar como
// leída y la política de creación a partir de transiciones de estado.
// Implementa inventory.StatusNotifier como hook post-movimiento.
type AlertUseCase struct {
	repo repository.AlertRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(repo repository.AlertRepository) *AlertUseCase {
	return &AlertUseCase{repo: repo}
}

// List lista alertas de la más reciente a la más antigua.
// unreadOnly limita a alertas sin leer.
func (uc *AlertUseCase) List(unreadOnly bool, limit, offset int) (*dto.AlertListResponse, error) {
	list, err := uc.repo.List(unreadOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlertResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *ToAlertResponse(a))
	}
	return &dto.AlertListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// MarkRead marca una alerta como leída. Idempotente: marcar dos veces la
// misma alerta deja read=true sin error en la segunda llamada.
// Devuelve domain.ErrNotFound si el id no existe.
func (uc *AlertUseCase) MarkRead(id string) error {
	return uc.repo.MarkRead(id)
}

// NotifyStatusChange es la política de generación de alertas: cuando el
// estado de un producto cae a critical o depleted tras un movimiento, se
// crea una alerta con la severidad correspondiente. Otras transiciones no
// generan nada.
func (uc *AlertUseCase) NotifyStatusChange(_ context.Context, product *entity.Product, previousStatus string) error {
	if product.Status == previousStatus {
		return nil
	}
	var severity, message string
	switch product.Status {
	case entity.StatusDepleted:
		severity = entity.SeverityCritical
		message = fmt.Sprintf("El producto %q se quedó sin existencias", product.Name)
	case entity.StatusCritical:
		severity = entity.SeverityAttention
		message = fmt.Sprintf("El producto %q está en stock crítico: %d unidades (mínimo %d)",
			product.Name, product.Quantity, product.MinStock)
	default:
		return nil
	}
	return uc.repo.Create(&entity.Alert{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Severity:  severity,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	})
}

// ToAlertResponse convierte la entidad al DTO de salida.
func ToAlertResponse(a *entity.Alert) *dto.AlertResponse {
	if a == nil {
		return nil
	}
	return &dto.AlertResponse{
		ID:        a.ID,
		ProductID: a.ProductID,
		Severity:  a.Severity,
		Message:   a.Message,
		Read:      a.Read,
		CreatedAt: a.CreatedAt,
	}
}
