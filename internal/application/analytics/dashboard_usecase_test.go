package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockcontrol-api/internal/application/analytics"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/entity"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/repository"
)

// fakeDashboardRepo devuelve un snapshot fijo o un error.
type fakeDashboardRepo struct {
	snapshot *repository.DashboardSnapshot
	err      error
}

func (r *fakeDashboardRepo) GetSnapshot(_ context.Context) (*repository.DashboardSnapshot, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.snapshot, nil
}

func TestDashboardGetSummary_MapeaSnapshot(t *testing.T) {
	now := time.Now()
	repo := &fakeDashboardRepo{snapshot: &repository.DashboardSnapshot{
		TotalActiveProducts:        10,
		ProductsAvailable:          6,
		ProductsCriticalOrDepleted: 3,
		UnreadAlertCount:           4,
		LatestUnreadAlerts: []*entity.Alert{
			{ID: "a2", ProductID: "p1", Severity: entity.SeverityCritical, Message: "sin existencias", CreatedAt: now},
			{ID: "a1", ProductID: "p2", Severity: entity.SeverityAttention, Message: "stock crítico", CreatedAt: now.Add(-time.Hour)},
		},
	}}

	uc := analytics.NewDashboardUseCase(repo)
	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, summary.TotalActiveProducts)
	assert.Equal(t, 6, summary.ProductsAvailable)
	assert.Equal(t, 3, summary.ProductsCriticalOrDepleted)
	assert.Equal(t, 4, summary.UnreadAlertCount)
	require.Len(t, summary.LatestUnreadAlerts, 2)
	assert.Equal(t, "a2", summary.LatestUnreadAlerts[0].ID, "la más reciente va primero")

	// Consistencia interna del snapshot: los subconjuntos nunca exceden el total
	assert.LessOrEqual(t,
		summary.ProductsAvailable+summary.ProductsCriticalOrDepleted,
		summary.TotalActiveProducts,
		"disponibles + críticos no puede superar el total de productos activos")
}

func TestDashboardGetSummary_SinAlertas(t *testing.T) {
	repo := &fakeDashboardRepo{snapshot: &repository.DashboardSnapshot{
		TotalActiveProducts: 0,
	}}

	uc := analytics.NewDashboardUseCase(repo)
	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.UnreadAlertCount)
	assert.NotNil(t, summary.LatestUnreadAlerts, "la lista vacía se serializa como [], no null")
	assert.Empty(t, summary.LatestUnreadAlerts)
}

func TestDashboardGetSummary_ErrorDelRepositorio(t *testing.T) {
	repoErr := errors.New("conexión perdida")
	uc := analytics.NewDashboardUseCase(&fakeDashboardRepo{err: repoErr})

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr, "el error original debe conservarse en la cadena")
}
