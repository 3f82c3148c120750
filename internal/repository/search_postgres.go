package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"mooza/internal/domain"
	"mooza/internal/search"
)

type SearchRepo struct {
	db *pgxpool.Pool
}

func NewSearchRepository(db *pgxpool.Pool) *SearchRepo {
	return &SearchRepo{
		db: db,
	}
}

// targetAliases — алиасы таблиц в поисковом запросе для целей предикатов.
var targetAliases = map[search.JoinTarget]string{
	search.TargetUser:          "u",
	search.TargetSearchProfile: "sp",
}

const searchFromClause = `
	FROM users u
	LEFT JOIN search_profiles sp ON sp.user_id = u.id AND sp.is_visible
	LEFT JOIN fields f ON f.id = u.field_id
	LEFT JOIN professions p ON p.id = u.profession_id
	LEFT JOIN services sv ON sv.id = sp.service_id
	LEFT JOIN genres g ON g.id = sp.genre_id
	LEFT JOIN work_formats wf ON wf.id = sp.work_format_id
	LEFT JOIN employment_types et ON et.id = sp.employment_type_id
	LEFT JOIN skill_levels sl ON sl.id = sp.skill_level_id
	LEFT JOIN availabilities av ON av.id = sp.availability_id
`

// buildSearchConditions строит WHERE из дескриптора. Используется и выборкой,
// и подсчётом, чтобы количество всегда совпадало с выдачей.
func buildSearchConditions(q search.QueryDescriptor) (string, []interface{}) {
	conditions := []string{"u.is_active"}
	args := make([]interface{}, 0)
	argID := 1

	conditions = append(conditions, fmt.Sprintf("u.id <> $%d", argID))
	args = append(args, q.ExcludeUserID)
	argID++

	for _, predicate := range q.Predicates {
		alias := targetAliases[predicate.Target]
		conditions = append(conditions, fmt.Sprintf("%s.%s = $%d", alias, predicate.Column, argID))
		args = append(args, predicate.Value)
		argID++
	}

	if q.TextQuery != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.nickname ILIKE $%d OR u.bio ILIKE $%d)",
			argID, argID, argID, argID,
		))
		args = append(args, "%"+q.TextQuery+"%")
		argID++
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *SearchRepo) List(ctx context.Context, q search.QueryDescriptor) ([]domain.SearchResult, error) {
	whereClause, args := buildSearchConditions(q)

	selectClause := `
		SELECT u.id, u.nickname, u.first_name, u.last_name, u.bio, u.avatar_url,
		       f.name, p.name, sv.name, g.name, wf.name, et.name, sl.name, av.name
	`

	// Без текстового запроса порядок — по имени; вторичная сортировка по id
	// делает выдачу стабильной. Для текстового запроса ранжирование сверх
	// совпадения подстроки не гарантируется.
	orderClause := " ORDER BY u.last_name ASC, u.first_name ASC, u.id ASC"

	limitOffset := fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)

	query := selectClause + searchFromClause + whereClause + orderClause + limitOffset

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения поискового запроса: %w", err)
	}
	defer rows.Close()

	results := make([]domain.SearchResult, 0)
	for rows.Next() {
		var result domain.SearchResult
		if err := rows.Scan(
			&result.ID,
			&result.Nickname,
			&result.FirstName,
			&result.LastName,
			&result.Bio,
			&result.AvatarURL,
			&result.FieldName,
			&result.ProfessionName,
			&result.ServiceName,
			&result.GenreName,
			&result.WorkFormatName,
			&result.EmploymentTypeName,
			&result.SkillLevelName,
			&result.AvailabilityName,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования результата поиска: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return results, nil
}

func (r *SearchRepo) Count(ctx context.Context, q search.QueryDescriptor) (int, error) {
	whereClause, args := buildSearchConditions(q)

	query := "SELECT COUNT(*)" + searchFromClause + whereClause

	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта результатов поиска: %w", err)
	}

	return count, nil
}
