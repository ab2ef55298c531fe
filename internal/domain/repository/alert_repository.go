package repository

import "github.com/tu-usuario/stockcontrol-api/internal/domain/entity"

// AlertRepository define el puerto de persistencia para Alert (DIP).
type AlertRepository interface {
	Create(alert *entity.Alert) error
	GetByID(id string) (*entity.Alert, error)
	// List devuelve alertas ordenadas de la más reciente a la más antigua.
	List(unreadOnly bool, limit, offset int) ([]*entity.Alert, error)
	// MarkRead marca una alerta como leída. Idempotente: marcar una alerta ya
	// leída vuelve a dejarla leída sin error.
	MarkRead(id string) error
	// DeleteByProduct elimina todas las alertas de un producto (cascada al
	// eliminar el producto).
	DeleteByProduct(productID string) error
}
