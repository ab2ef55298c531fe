// Package analytics contiene los casos de uso de lectura para el dashboard
// de salud del inventario.
package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stockcontrol-api/internal/application/dto"
	"github.com/tu-usuario/stockcontrol-api/internal/application/usecase"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del inventario y las alertas.
//
// Fuente de datos: DashboardRepository (consultas read-only sobre un único
// snapshot transaccional). Sin mutación ni efectos secundarios.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetSummary construye el DashboardSummaryDTO: total de productos activos,
// disponibles, críticos o agotados, alertas sin leer y las últimas 5 alertas.
// Todos los conteos reflejan el mismo punto en el tiempo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	snap, err := uc.dashboardRepo.GetSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: snapshot: %w", err)
	}

	latest := make([]dto.AlertResponse, 0, len(snap.LatestUnreadAlerts))
	for _, a := range snap.LatestUnreadAlerts {
		latest = append(latest, *usecase.ToAlertResponse(a))
	}

	return &dto.DashboardSummaryDTO{
		TotalActiveProducts:        snap.TotalActiveProducts,
		ProductsAvailable:          snap.ProductsAvailable,
		ProductsCriticalOrDepleted: snap.ProductsCriticalOrDepleted,
		UnreadAlertCount:           snap.UnreadAlertCount,
		LatestUnreadAlerts:         latest,
	}, nil
}
