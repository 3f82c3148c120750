package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mooza/internal/domain"
	"mooza/internal/search"
)

type CatalogRepo struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{
		db: db,
	}
}

// facetTables — таблица справочника для каждого фасета.
var facetTables = map[search.FacetID]string{
	search.FacetField:          "fields",
	search.FacetProfession:     "professions",
	search.FacetService:        "services",
	search.FacetGenre:          "genres",
	search.FacetWorkFormat:     "work_formats",
	search.FacetEmploymentType: "employment_types",
	search.FacetSkillLevel:     "skill_levels",
	search.FacetAvailability:   "availabilities",
}

// flatFacetColumns — колонка анкеты для плоских фасетов, по ней считается
// количество подходящих пользователей.
var flatFacetColumns = map[search.FacetID]string{
	search.FacetWorkFormat:     "work_format_id",
	search.FacetEmploymentType: "employment_type_id",
	search.FacetSkillLevel:     "skill_level_id",
	search.FacetAvailability:   "availability_id",
}

func (r *CatalogRepo) Options(ctx context.Context, facet search.FacetID, scope *search.Scope) ([]domain.Option, error) {
	query, args, err := r.optionsQuery(facet, scope)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения значений справочника %s: %w", facet, err)
	}
	defer rows.Close()

	options := make([]domain.Option, 0)
	for rows.Next() {
		var opt domain.Option
		var userCount int
		if err := rows.Scan(&opt.ID, &opt.Name, &userCount); err != nil {
			return nil, fmt.Errorf("ошибка сканирования значения справочника: %w", err)
		}
		opt.UserCount = &userCount
		options = append(options, opt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return options, nil
}

func (r *CatalogRepo) optionsQuery(facet search.FacetID, scope *search.Scope) (string, []interface{}, error) {
	switch facet {
	case search.FacetField:
		return `
			SELECT f.id, f.name, COUNT(u.id)
			FROM fields f
			LEFT JOIN users u ON u.field_id = f.id AND u.is_active
			GROUP BY f.id, f.name
			ORDER BY f.name
		`, nil, nil

	case search.FacetProfession:
		query := `
			SELECT p.id, p.name, COUNT(u.id)
			FROM professions p
			LEFT JOIN users u ON u.profession_id = p.id AND u.is_active
		`
		if scope == nil {
			return query + " GROUP BY p.id, p.name ORDER BY p.name", nil, nil
		}
		return query + ` WHERE p.field_id = $1
			GROUP BY p.id, p.name
			ORDER BY p.name`, []interface{}{scope.OptionID}, nil

	case search.FacetService:
		query := `
			SELECT s.id, s.name, COUNT(sp.user_id)
			FROM services s
			LEFT JOIN search_profiles sp ON sp.service_id = s.id AND sp.is_visible
		`
		if scope == nil {
			return query + " GROUP BY s.id, s.name ORDER BY s.name", nil, nil
		}
		switch scope.Facet {
		case search.FacetProfession:
			return query + ` WHERE s.profession_id = $1
				GROUP BY s.id, s.name
				ORDER BY s.name`, []interface{}{scope.OptionID}, nil
		case search.FacetField:
			// Услуги всех профессий выбранной сферы
			return query + ` JOIN professions p ON p.id = s.profession_id
				WHERE p.field_id = $1
				GROUP BY s.id, s.name
				ORDER BY s.name`, []interface{}{scope.OptionID}, nil
		default:
			return "", nil, fmt.Errorf("недопустимый ключ области %s для фасета %s", scope.Facet, facet)
		}

	case search.FacetGenre:
		query := `
			SELECT g.id, g.name, COUNT(sp.user_id)
			FROM genres g
			LEFT JOIN search_profiles sp ON sp.genre_id = g.id AND sp.is_visible
		`
		if scope == nil {
			return query + " GROUP BY g.id, g.name ORDER BY g.name", nil, nil
		}
		return query + ` WHERE g.service_id = $1
			GROUP BY g.id, g.name
			ORDER BY g.name`, []interface{}{scope.OptionID}, nil

	case search.FacetWorkFormat, search.FacetEmploymentType, search.FacetSkillLevel, search.FacetAvailability:
		table := facetTables[facet]
		column := flatFacetColumns[facet]
		query := fmt.Sprintf(`
			SELECT t.id, t.name, COUNT(sp.user_id)
			FROM %s t
			LEFT JOIN search_profiles sp ON sp.%s = t.id AND sp.is_visible
			GROUP BY t.id, t.name
			ORDER BY t.name
		`, table, column)
		return query, nil, nil

	default:
		return "", nil, fmt.Errorf("неизвестный фасет %s", facet)
	}
}

func (r *CatalogRepo) OptionExists(ctx context.Context, facet search.FacetID, optionID int64) (bool, error) {
	table, ok := facetTables[facet]
	if !ok {
		return false, fmt.Errorf("неизвестный фасет %s", facet)
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", table)

	var exists bool
	err := r.db.QueryRow(ctx, query, optionID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ошибка проверки значения справочника %s: %w", facet, err)
	}

	return exists, nil
}
