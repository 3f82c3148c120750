package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"mooza/internal/domain"
	"mooza/internal/repository"
	"mooza/internal/search"
)

type ProfileServiceImpl struct {
	profileRepo repository.ProfileRepository
	catalogRepo repository.CatalogRepository
	logger      *zap.Logger
}

func NewProfileService(profileRepo repository.ProfileRepository, catalogRepo repository.CatalogRepository, logger *zap.Logger) *ProfileServiceImpl {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (s *ProfileServiceImpl) GetByUserID(ctx context.Context, userID int64) (*domain.SearchProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ошибка при получении анкеты", zap.Int64("userId", userID), zap.Error(err))
		return nil, errors.New("анкета не найдена")
	}

	return profile, nil
}

func (s *ProfileServiceImpl) Upsert(ctx context.Context, userID int64, dto domain.UpsertSearchProfileDTO) (int64, error) {
	if err := s.validateFacets(ctx, dto); err != nil {
		if errors.Is(err, domain.ErrInvalidOption) {
			return 0, domain.ErrInvalidOption
		}
		s.logger.Error("ошибка проверки фасетов анкеты", zap.Int64("userId", userID), zap.Error(err))
		return 0, errors.New("ошибка при сохранении анкеты")
	}

	id, err := s.profileRepo.Upsert(ctx, userID, dto)
	if err != nil {
		s.logger.Error("ошибка при сохранении анкеты", zap.Int64("userId", userID), zap.Error(err))
		return 0, errors.New("ошибка при сохранении анкеты")
	}

	return id, nil
}

func (s *ProfileServiceImpl) Delete(ctx context.Context, userID int64) error {
	err := s.profileRepo.Delete(ctx, userID)
	if err != nil {
		s.logger.Error("ошибка при удалении анкеты", zap.Int64("userId", userID), zap.Error(err))
		return errors.New("ошибка при удалении анкеты")
	}

	return nil
}

func (s *ProfileServiceImpl) validateFacets(ctx context.Context, dto domain.UpsertSearchProfileDTO) error {
	checks := []struct {
		facet search.FacetID
		value *int64
	}{
		{search.FacetService, dto.ServiceID},
		{search.FacetGenre, dto.GenreID},
		{search.FacetWorkFormat, dto.WorkFormatID},
		{search.FacetEmploymentType, dto.EmploymentTypeID},
		{search.FacetSkillLevel, dto.SkillLevelID},
		{search.FacetAvailability, dto.AvailabilityID},
	}

	for _, c := range checks {
		if c.value == nil {
			continue
		}
		exists, err := s.catalogRepo.OptionExists(ctx, c.facet, *c.value)
		if err != nil {
			return fmt.Errorf("ошибка проверки значения фасета %s: %w", c.facet, err)
		}
		if !exists {
			return domain.ErrInvalidOption
		}
	}

	return nil
}
