package domain

import (
	"time"
)

// Справочники поиска. Иерархия: сфера -> профессия -> услуга -> жанр.
// Остальные справочники плоские и ни от чего не зависят.

type Field struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Profession struct {
	ID        int64     `json:"id"`
	FieldID   int64     `json:"field_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Service struct {
	ID           int64     `json:"id"`
	ProfessionID int64     `json:"profession_id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

type Genre struct {
	ID        int64     `json:"id"`
	ServiceID int64     `json:"service_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type WorkFormat struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type EmploymentType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SkillLevel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Availability struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Option — значение справочника в том виде, в каком его отдают эндпоинты
// выбора фильтров. UserCount показывает, сколько пользователей подходит
// под это значение, и нужен только для подсказок в интерфейсе.
type Option struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	UserCount *int   `json:"user_count,omitempty"`
}

// OptionList — ответ эндпоинта значений фасета: доступен ли фасет при
// текущем выборе родительских фасетов и его значения.
type OptionList struct {
	Enabled bool     `json:"enabled"`
	Options []Option `json:"options"`
}
