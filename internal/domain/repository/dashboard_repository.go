package repository

import (
	"context"

	"github.com/tu-usuario/stockcontrol-api/internal/domain/entity"
)

// DashboardSnapshot resultado crudo de la consulta de resumen.
// Todos los conteos provienen del mismo snapshot transaccional, de modo que
// nunca se presentan agregados contradictorios bajo escrituras concurrentes.
type DashboardSnapshot struct {
	TotalActiveProducts        int
	ProductsAvailable          int
	ProductsCriticalOrDepleted int
	UnreadAlertCount           int
	LatestUnreadAlerts         []*entity.Alert // top 5 por recencia
}

// DashboardRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type DashboardRepository interface {
	// GetSnapshot computa todos los agregados contra un único punto en el
	// tiempo (una sola transacción de lectura).
	GetSnapshot(ctx context.Context) (*DashboardSnapshot, error)
}
