package domain

import (
	"time"
)

type UserType string

const (
	UserTypeEstudiante UserType = "estudiante"
	UserTypeCelador    UserType = "celador"
	UserTypeEmpleado   UserType = "empleado"
)

type User struct {
	ID            int64           `json:"id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         string          `json:"email"`
	PasswordHash  string          `json:"-"`
	UserType      UserType        `json:"user_type"`
	Schedule      []ScheduleEntry `json:"schedule"`
	ExpoPushToken string          `json:"expo_push_token,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int32           `json:"-"`
}
