package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stockcontrol-api/internal/domain"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/entity"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre PostgreSQL (usable con pool o tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta.
func (r *AlertRepo) Create(alert *entity.Alert) error {
	query := `
		INSERT INTO stock_alerts (id, product_id, severity, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.ProductID, alert.Severity, alert.Message, alert.Read, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID. Devuelve nil sin error si no existe.
func (r *AlertRepo) GetByID(id string) (*entity.Alert, error) {
	query := `
		SELECT id, product_id, severity, message, read, created_at
		FROM stock_alerts WHERE id = $1`
	var a entity.Alert
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.ProductID, &a.Severity, &a.Message, &a.Read, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

// List devuelve alertas de la más reciente a la más antigua.
func (r *AlertRepo) List(unreadOnly bool, limit, offset int) ([]*entity.Alert, error) {
	query := `
		SELECT id, product_id, severity, message, read, created_at
		FROM stock_alerts`
	args := []any{}
	if unreadOnly {
		query += ` WHERE NOT read`
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.ProductID, &a.Severity, &a.Message, &a.Read, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// MarkRead marca la alerta como leída. Idempotente: el UPDATE también cubre
// filas ya leídas, así la segunda llamada afecta la misma fila sin error.
func (r *AlertRepo) MarkRead(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE stock_alerts SET read = true WHERE id = $1`, id,
	)
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByProduct elimina todas las alertas de un producto (cascada).
func (r *AlertRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_alerts WHERE product_id = $1`, productID,
	)
	if err != nil {
		return fmt.Errorf("delete alerts by product: %w", err)
	}
	return nil
}
