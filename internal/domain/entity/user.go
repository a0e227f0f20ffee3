package entity

import "time"

// Papéis de usuário.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User é uma conta da loja (cliente ou administrador).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | customer
	Status       string // active | blocked
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
