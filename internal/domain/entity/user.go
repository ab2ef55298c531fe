package entity

import "time"

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Company      string // opcional
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName devuelve el nombre para mostrar del usuario.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
