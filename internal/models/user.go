package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AdminRole      = "admin"
	InstructorRole = "instructor"
	LearnerRole    = "learner"
)

const (
	UserActive   = "active"
	UserInactive = "inactive"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	Status       string    `json:"status"`
	LastLogin    time.Time `json:"last_login"`
}
