package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard.
// Todos los conteos provienen del mismo snapshot de lectura, por lo que
// siempre se cumple: products_available + products_critical <= total_products.
type DashboardSummaryDTO struct {
	TotalActiveProducts        int `json:"total_products"`
	ProductsAvailable          int `json:"products_available"`
	ProductsCriticalOrDepleted int `json:"products_critical"`
	UnreadAlertCount           int `json:"unread_alerts"`

	// Últimas 5 alertas sin leer, de la más reciente a la más antigua.
	LatestUnreadAlerts []AlertResponse `json:"latest_unread_alerts"`
}
