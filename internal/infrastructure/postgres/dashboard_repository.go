package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/entity"
	"github.com/tu-usuario/stockcontrol-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

const dashboardLatestAlerts = 5 // alertas sin leer en el widget del dashboard

// DashboardRepo consultas de solo lectura para el resumen del inventario.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// GetSnapshot computa todos los agregados dentro de una única transacción
// READ ONLY con aislamiento REPEATABLE READ: los conteos de productos y de
// alertas salen del mismo punto en el tiempo, sin bloquear a los escritores.
func (r *DashboardRepo) GetSnapshot(ctx context.Context) (*repository.DashboardSnapshot, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard: begin read tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var snap repository.DashboardSnapshot

	const productCounts = `
	SELECT
	    COUNT(*)                                                            AS total,
	    COUNT(*) FILTER (WHERE stock_status = 'available')                  AS available,
	    COUNT(*) FILTER (WHERE stock_status IN ('critical', 'depleted'))    AS critical
	FROM products
	WHERE active`
	if err := tx.QueryRow(ctx, productCounts).Scan(
		&snap.TotalActiveProducts, &snap.ProductsAvailable, &snap.ProductsCriticalOrDepleted,
	); err != nil {
		return nil, fmt.Errorf("dashboard: product counts: %w", err)
	}

	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM stock_alerts WHERE NOT read`,
	).Scan(&snap.UnreadAlertCount); err != nil {
		return nil, fmt.Errorf("dashboard: unread alert count: %w", err)
	}

	rows, err := tx.Query(ctx, `
		SELECT id, product_id, severity, message, read, created_at
		FROM stock_alerts WHERE NOT read
		ORDER BY created_at DESC
		LIMIT $1`, dashboardLatestAlerts)
	if err != nil {
		return nil, fmt.Errorf("dashboard: latest alerts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.ProductID, &a.Severity, &a.Message, &a.Read, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("dashboard: scan alert: %w", err)
		}
		snap.LatestUnreadAlerts = append(snap.LatestUnreadAlerts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: commit read tx: %w", err)
	}
	return &snap, nil
}
