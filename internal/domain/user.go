package domain

import (
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Nickname     string    `json:"nickname"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Bio          string    `json:"bio,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	FieldID      *int64    `json:"field_id,omitempty"`
	ProfessionID *int64    `json:"profession_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Заполняются джойнами при чтении профиля
	FieldName      *string `json:"field_name,omitempty"`
	ProfessionName *string `json:"profession_name,omitempty"`
}

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type CreateUserDTO struct {
	Email     string   `json:"email" binding:"required,email"`
	Nickname  string   `json:"nickname" binding:"required,min=2,max=32"`
	FirstName string   `json:"first_name" binding:"required"`
	LastName  string   `json:"last_name" binding:"required"`
	Password  string   `json:"password" binding:"required,min=6"`
	Role      UserRole `json:"role" binding:"required,oneof=user admin"`
}

// UpdateUserDTO описывает частичное обновление: заполняются только переданные поля.
type UpdateUserDTO struct {
	Nickname     *string `json:"nickname" binding:"omitempty,min=2,max=32"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Bio          *string `json:"bio"`
	Email        *string `json:"email" binding:"omitempty,email"`
	FieldID      *int64  `json:"field_id"`
	ProfessionID *int64  `json:"profession_id"`
	IsActive     *bool   `json:"is_active"`
}

type PasswordUpdateDTO struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
