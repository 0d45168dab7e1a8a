package entity

import "time"

// User representa un usuario del API, siempre ligado a una empresa.
// PasswordHash es bcrypt; nunca sale en respuestas.
type User struct {
	ID           int64
	CompanyID    int64
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
