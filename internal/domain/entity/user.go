package entity

import "time"

// Roles válidos para User.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// User representa un usuario del sistema (actor de los movimientos).
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // student, teacher, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
