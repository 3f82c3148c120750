package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mooza/internal/domain"
)

type ProfileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{
		db: db,
	}
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.SearchProfile, error) {
	query := `
		SELECT sp.id, sp.user_id, sp.service_id, sp.genre_id, sp.work_format_id,
		       sp.employment_type_id, sp.skill_level_id, sp.availability_id,
		       sp.about, sp.is_visible, sp.created_at, sp.updated_at,
		       sv.name, g.name, wf.name, et.name, sl.name, av.name
		FROM search_profiles sp
		LEFT JOIN services sv ON sv.id = sp.service_id
		LEFT JOIN genres g ON g.id = sp.genre_id
		LEFT JOIN work_formats wf ON wf.id = sp.work_format_id
		LEFT JOIN employment_types et ON et.id = sp.employment_type_id
		LEFT JOIN skill_levels sl ON sl.id = sp.skill_level_id
		LEFT JOIN availabilities av ON av.id = sp.availability_id
		WHERE sp.user_id = $1
	`

	var profile domain.SearchProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.ServiceID,
		&profile.GenreID,
		&profile.WorkFormatID,
		&profile.EmploymentTypeID,
		&profile.SkillLevelID,
		&profile.AvailabilityID,
		&profile.About,
		&profile.IsVisible,
		&profile.CreatedAt,
		&profile.UpdatedAt,
		&profile.ServiceName,
		&profile.GenreName,
		&profile.WorkFormatName,
		&profile.EmploymentTypeName,
		&profile.SkillLevelName,
		&profile.AvailabilityName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("анкета пользователя %d не найдена", userID)
		}
		return nil, fmt.Errorf("ошибка получения анкеты: %w", err)
	}

	return &profile, nil
}

func (r *ProfileRepo) Upsert(ctx context.Context, userID int64, dto domain.UpsertSearchProfileDTO) (int64, error) {
	existing, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return r.create(ctx, userID, dto)
	}

	if err := r.update(ctx, existing.ID, dto); err != nil {
		return 0, err
	}

	return existing.ID, nil
}

func (r *ProfileRepo) create(ctx context.Context, userID int64, dto domain.UpsertSearchProfileDTO) (int64, error) {
	query := `
		INSERT INTO search_profiles (
			user_id, service_id, genre_id, work_format_id, employment_type_id,
			skill_level_id, availability_id, about, is_visible, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id
	`

	about := ""
	if dto.About != nil {
		about = *dto.About
	}
	isVisible := true
	if dto.IsVisible != nil {
		isVisible = *dto.IsVisible
	}

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		userID,
		dto.ServiceID,
		dto.GenreID,
		dto.WorkFormatID,
		dto.EmploymentTypeID,
		dto.SkillLevelID,
		dto.AvailabilityID,
		about,
		isVisible,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания анкеты: %w", err)
	}

	return id, nil
}

func (r *ProfileRepo) update(ctx context.Context, id int64, dto domain.UpsertSearchProfileDTO) error {
	setValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if dto.ServiceID != nil {
		setValues = append(setValues, fmt.Sprintf("service_id = $%d", argID))
		args = append(args, *dto.ServiceID)
		argID++
	}

	if dto.GenreID != nil {
		setValues = append(setValues, fmt.Sprintf("genre_id = $%d", argID))
		args = append(args, *dto.GenreID)
		argID++
	}

	if dto.WorkFormatID != nil {
		setValues = append(setValues, fmt.Sprintf("work_format_id = $%d", argID))
		args = append(args, *dto.WorkFormatID)
		argID++
	}

	if dto.EmploymentTypeID != nil {
		setValues = append(setValues, fmt.Sprintf("employment_type_id = $%d", argID))
		args = append(args, *dto.EmploymentTypeID)
		argID++
	}

	if dto.SkillLevelID != nil {
		setValues = append(setValues, fmt.Sprintf("skill_level_id = $%d", argID))
		args = append(args, *dto.SkillLevelID)
		argID++
	}

	if dto.AvailabilityID != nil {
		setValues = append(setValues, fmt.Sprintf("availability_id = $%d", argID))
		args = append(args, *dto.AvailabilityID)
		argID++
	}

	if dto.About != nil {
		setValues = append(setValues, fmt.Sprintf("about = $%d", argID))
		args = append(args, *dto.About)
		argID++
	}

	if dto.IsVisible != nil {
		setValues = append(setValues, fmt.Sprintf("is_visible = $%d", argID))
		args = append(args, *dto.IsVisible)
		argID++
	}

	if len(setValues) == 0 {
		return nil
	}

	setValues = append(setValues, fmt.Sprintf("updated_at = $%d", argID))
	args = append(args, time.Now())
	argID++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE search_profiles
		SET %s
		WHERE id = $%d
	`, strings.Join(setValues, ", "), argID)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления анкеты: %w", err)
	}

	return nil
}

func (r *ProfileRepo) Delete(ctx context.Context, userID int64) error {
	query := `DELETE FROM search_profiles WHERE user_id = $1`

	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления анкеты: %w", err)
	}

	return nil
}
