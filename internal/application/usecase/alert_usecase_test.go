package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockcontrol-api/internal/application/usecase"
	"github.com/tu-usuario/stockcontrol-api/internal/domain"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/entity"
)

func seedAlert(repo *fakeAlertRepo, id string, read bool, createdAt time.Time) {
	repo.alerts = append(repo.alerts, &entity.Alert{
		ID:        id,
		ProductID: "11111111-1111-1111-1111-111111111111",
		Severity:  entity.SeverityAttention,
		Message:   "stock crítico",
		Read:      read,
		CreatedAt: createdAt,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertList_MasRecientesPrimero(t *testing.T) {
	repo := &fakeAlertRepo{}
	now := time.Now()
	seedAlert(repo, "vieja", false, now.Add(-2*time.Hour))
	seedAlert(repo, "reciente", false, now)
	seedAlert(repo, "intermedia", false, now.Add(-1*time.Hour))

	uc := usecase.NewAlertUseCase(repo)
	resp, err := uc.List(false, 20, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "reciente", resp.Items[0].ID)
	assert.Equal(t, "intermedia", resp.Items[1].ID)
	assert.Equal(t, "vieja", resp.Items[2].ID)
}

func TestAlertList_SoloNoLeidas(t *testing.T) {
	repo := &fakeAlertRepo{}
	now := time.Now()
	seedAlert(repo, "leida", true, now)
	seedAlert(repo, "pendiente", false, now.Add(-time.Minute))

	uc := usecase.NewAlertUseCase(repo)
	resp, err := uc.List(true, 20, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "pendiente", resp.Items[0].ID)
	assert.False(t, resp.Items[0].Read)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests MarkRead — idempotencia
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertMarkRead_Idempotente(t *testing.T) {
	repo := &fakeAlertRepo{}
	seedAlert(repo, "a1", false, time.Now())
	uc := usecase.NewAlertUseCase(repo)

	require.NoError(t, uc.MarkRead("a1"))
	a, err := repo.GetByID("a1")
	require.NoError(t, err)
	assert.True(t, a.Read)

	// Segunda llamada: mismo resultado, sin error
	require.NoError(t, uc.MarkRead("a1"), "marcar dos veces debe ser idempotente")
	a, err = repo.GetByID("a1")
	require.NoError(t, err)
	assert.True(t, a.Read)
}

func TestAlertMarkRead_NoEncontrada(t *testing.T) {
	uc := usecase.NewAlertUseCase(&fakeAlertRepo{})
	err := uc.MarkRead("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests NotifyStatusChange — política de creación de alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestNotifyStatusChange_AgotadoCreaAlertaCritica(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := usecase.NewAlertUseCase(repo)

	err := uc.NotifyStatusChange(context.Background(), &entity.Product{
		ID:       "p1",
		Name:     "Cemento gris",
		Quantity: 0,
		MinStock: 5,
		Status:   entity.StatusDepleted,
	}, entity.StatusCritical)
	require.NoError(t, err)

	require.Len(t, repo.alerts, 1)
	a := repo.alerts[0]
	assert.Equal(t, entity.SeverityCritical, a.Severity)
	assert.Equal(t, "p1", a.ProductID)
	assert.Contains(t, a.Message, "Cemento gris")
	assert.False(t, a.Read, "las alertas nacen sin leer")
}

func TestNotifyStatusChange_CriticoCreaAlertaDeAtencion(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := usecase.NewAlertUseCase(repo)

	err := uc.NotifyStatusChange(context.Background(), &entity.Product{
		ID:       "p1",
		Name:     "Varilla 1/2",
		Quantity: 3,
		MinStock: 5,
		Status:   entity.StatusCritical,
	}, entity.StatusLow)
	require.NoError(t, err)

	require.Len(t, repo.alerts, 1)
	assert.Equal(t, entity.SeverityAttention, repo.alerts[0].Severity)
	assert.Contains(t, repo.alerts[0].Message, "3 unidades")
}

func TestNotifyStatusChange_TransicionesSinAlerta(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := usecase.NewAlertUseCase(repo)
	ctx := context.Background()

	// Subir a bajo o disponible no genera nada
	require.NoError(t, uc.NotifyStatusChange(ctx, &entity.Product{
		ID: "p1", Status: entity.StatusLow,
	}, entity.StatusCritical))
	require.NoError(t, uc.NotifyStatusChange(ctx, &entity.Product{
		ID: "p1", Status: entity.StatusAvailable,
	}, entity.StatusLow))
	// Sin transición tampoco
	require.NoError(t, uc.NotifyStatusChange(ctx, &entity.Product{
		ID: "p1", Status: entity.StatusCritical,
	}, entity.StatusCritical))

	assert.Empty(t, repo.alerts, "solo las caídas a crítico o agotado generan alerta")
}
