package domain

import (
	"errors"
)

var (
	// ErrInvalidOption — значение фасета не принадлежит его справочнику.
	ErrInvalidOption = errors.New("значение не принадлежит справочнику фасета")
	// ErrSearchUnavailable — хранилище недоступно, поиск выполнить нельзя.
	ErrSearchUnavailable = errors.New("поиск временно недоступен")
)

type SearchRequest struct {
	FieldID          *int64 `form:"field_id"`
	ProfessionID     *int64 `form:"profession_id"`
	ServiceID        *int64 `form:"service_id"`
	GenreID          *int64 `form:"genre_id"`
	WorkFormatID     *int64 `form:"work_format_id"`
	EmploymentTypeID *int64 `form:"employment_type_id"`
	SkillLevelID     *int64 `form:"skill_level_id"`
	AvailabilityID   *int64 `form:"availability_id"`
	Query            string `form:"query"`
	Page             int    `form:"page"`
	Limit            int    `form:"limit"`
}

// SearchResult — проекция пользователя и его анкеты для выдачи поиска.
type SearchResult struct {
	ID        int64  `json:"id"`
	Nickname  string `json:"nickname"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`

	FieldName          *string `json:"field_name,omitempty"`
	ProfessionName     *string `json:"profession_name,omitempty"`
	ServiceName        *string `json:"service_name,omitempty"`
	GenreName          *string `json:"genre_name,omitempty"`
	WorkFormatName     *string `json:"work_format_name,omitempty"`
	EmploymentTypeName *string `json:"employment_type_name,omitempty"`
	SkillLevelName     *string `json:"skill_level_name,omitempty"`
	AvailabilityName   *string `json:"availability_name,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	Pagination Pagination     `json:"pagination"`
}
