package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"mooza/internal/domain"
	"mooza/internal/repository"
	"mooza/internal/storage"
	"mooza/pkg/auth"
)

type UserServiceImpl struct {
	repo        repository.UserRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewUserService(repo repository.UserRepository, fileStorage storage.FileStorage, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		repo:        repo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *UserServiceImpl) Create(ctx context.Context, dto domain.CreateUserDTO) (int64, error) {
	existingUser, err := s.repo.GetByEmail(ctx, dto.Email)
	if err == nil && existingUser != nil {
		return 0, errors.New("пользователь с таким email уже существует")
	}

	existingUser, err = s.repo.GetByNickname(ctx, dto.Nickname)
	if err == nil && existingUser != nil {
		return 0, errors.New("пользователь с таким ником уже существует")
	}

	hashedPassword, err := auth.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("ошибка при хешировании пароля", zap.Error(err))
		return 0, errors.New("ошибка при создании пользователя")
	}
	dto.Password = hashedPassword

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка при создании пользователя", zap.Error(err))
		return 0, errors.New("ошибка при создании пользователя")
	}

	return id, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка при получении пользователя", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New("пользователь не найден")
	}

	return user, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
	if dto.Email != nil {
		existingUser, err := s.repo.GetByEmail(ctx, *dto.Email)
		if err == nil && existingUser != nil && existingUser.ID != id {
			return errors.New("пользователь с таким email уже существует")
		}
	}

	if dto.Nickname != nil {
		existingUser, err := s.repo.GetByNickname(ctx, *dto.Nickname)
		if err == nil && existingUser != nil && existingUser.ID != id {
			return errors.New("пользователь с таким ником уже существует")
		}
	}

	err := s.repo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка при обновлении пользователя", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении пользователя")
	}

	return nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("пользователь не найден", zap.Int64("id", id), zap.Error(err))
		return errors.New("пользователь не найден")
	}

	ok, err := auth.VerifyPassword(dto.OldPassword, user.PasswordHash)
	if err != nil || !ok {
		return errors.New("неверный текущий пароль")
	}

	hashedPassword, err := auth.HashPassword(dto.NewPassword)
	if err != nil {
		s.logger.Error("ошибка при хешировании пароля", zap.Error(err))
		return errors.New("ошибка при смене пароля")
	}

	err = s.repo.UpdatePassword(ctx, id, hashedPassword)
	if err != nil {
		s.logger.Error("ошибка при смене пароля", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при смене пароля")
	}

	return nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка при удалении пользователя", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении пользователя")
	}

	return nil
}

func (s *UserServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("ошибка при получении списка пользователей", zap.Error(err))
		return nil, errors.New("ошибка при получении списка пользователей")
	}

	return users, nil
}

func (s *UserServiceImpl) UploadAvatar(ctx context.Context, userID int64, data []byte, filename string) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("загрузка файлов не настроена")
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("пользователь не найден", zap.Int64("id", userID), zap.Error(err))
		return "", errors.New("пользователь не найден")
	}

	url, err := s.fileStorage.UploadFile(ctx, data, filename)
	if err != nil {
		s.logger.Error("ошибка загрузки аватара", zap.Int64("userId", userID), zap.Error(err))
		return "", errors.New("ошибка при загрузке аватара")
	}

	if user.AvatarURL != "" {
		if err := s.fileStorage.DeleteFile(ctx, user.AvatarURL); err != nil {
			s.logger.Warn("не удалось удалить старый аватар", zap.String("url", user.AvatarURL), zap.Error(err))
		}
	}

	err = s.repo.UpdateAvatar(ctx, userID, url)
	if err != nil {
		s.logger.Error("ошибка сохранения ссылки на аватар", zap.Int64("userId", userID), zap.Error(err))
		return "", errors.New("ошибка при загрузке аватара")
	}

	return url, nil
}

func (s *UserServiceImpl) DeleteAvatar(ctx context.Context, userID int64) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("пользователь не найден", zap.Int64("id", userID), zap.Error(err))
		return errors.New("пользователь не найден")
	}

	if user.AvatarURL == "" {
		return nil
	}

	if s.fileStorage != nil {
		if err := s.fileStorage.DeleteFile(ctx, user.AvatarURL); err != nil {
			s.logger.Warn("не удалось удалить файл аватара", zap.String("url", user.AvatarURL), zap.Error(err))
		}
	}

	err = s.repo.UpdateAvatar(ctx, userID, "")
	if err != nil {
		s.logger.Error("ошибка при удалении аватара", zap.Int64("userId", userID), zap.Error(err))
		return errors.New("ошибка при удалении аватара")
	}

	return nil
}
