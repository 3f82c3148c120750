package domain

import (
	"time"
)

// SearchProfile — анкета, по которой пользователя находят в поиске.
// Сфера и профессия хранятся на самом пользователе, здесь — остальные фасеты.
type SearchProfile struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	ServiceID        *int64    `json:"service_id,omitempty"`
	GenreID          *int64    `json:"genre_id,omitempty"`
	WorkFormatID     *int64    `json:"work_format_id,omitempty"`
	EmploymentTypeID *int64    `json:"employment_type_id,omitempty"`
	SkillLevelID     *int64    `json:"skill_level_id,omitempty"`
	AvailabilityID   *int64    `json:"availability_id,omitempty"`
	About            string    `json:"about,omitempty"`
	IsVisible        bool      `json:"is_visible"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Заполняются джойнами при чтении анкеты
	ServiceName        *string `json:"service_name,omitempty"`
	GenreName          *string `json:"genre_name,omitempty"`
	WorkFormatName     *string `json:"work_format_name,omitempty"`
	EmploymentTypeName *string `json:"employment_type_name,omitempty"`
	SkillLevelName     *string `json:"skill_level_name,omitempty"`
	AvailabilityName   *string `json:"availability_name,omitempty"`
}

type UpsertSearchProfileDTO struct {
	ServiceID        *int64  `json:"service_id"`
	GenreID          *int64  `json:"genre_id"`
	WorkFormatID     *int64  `json:"work_format_id"`
	EmploymentTypeID *int64  `json:"employment_type_id"`
	SkillLevelID     *int64  `json:"skill_level_id"`
	AvailabilityID   *int64  `json:"availability_id"`
	About            *string `json:"about"`
	IsVisible        *bool   `json:"is_visible"`
}
