package entity

import "time"

// Severidades válidas para Alert.Severity (conjunto cerrado).
const (
	SeverityCritical  = "critical"
	SeverityAttention = "attention"
	SeverityInfo      = "info"
)

// IsValidSeverity verifica que la severidad pertenezca al conjunto cerrado.
func IsValidSeverity(s string) bool {
	return s == SeverityCritical || s == SeverityAttention || s == SeverityInfo
}

// Alert representa un aviso de stock bajo asociado a un producto.
// Solo muta vía "marcar como leído"; se elimina únicamente en cascada
// al eliminar su producto.
type Alert struct {
	ID        string
	ProductID string
	Severity  string // critical, attention, info
	Message   string
	Read      bool
	CreatedAt time.Time
}
