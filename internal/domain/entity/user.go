package entity

import "time"

// User usuario del Command Center (login y atribución de veredictos).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         string // "admin" | "auditor"
	CreatedAt    time.Time
}
