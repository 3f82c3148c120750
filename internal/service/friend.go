package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"mooza/internal/domain"
	"mooza/internal/repository"
)

type FriendServiceImpl struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
	logger     *zap.Logger
}

func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository, logger *zap.Logger) *FriendServiceImpl {
	return &FriendServiceImpl{
		friendRepo: friendRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (s *FriendServiceImpl) SendRequest(ctx context.Context, requesterID int64, dto domain.CreateFriendRequestDTO) (int64, error) {
	if requesterID == dto.AddresseeID {
		return 0, errors.New("нельзя отправить заявку самому себе")
	}

	addressee, err := s.userRepo.GetByID(ctx, dto.AddresseeID)
	if err != nil || !addressee.IsActive {
		return 0, errors.New("пользователь не найден")
	}

	existing, err := s.friendRepo.GetBetween(ctx, requesterID, dto.AddresseeID)
	if err == nil && existing != nil {
		switch existing.Status {
		case domain.FriendshipStatusAccepted:
			return 0, errors.New("пользователь уже в друзьях")
		case domain.FriendshipStatusPending:
			return 0, errors.New("заявка уже отправлена")
		case domain.FriendshipStatusDeclined:
			// Отклонённую заявку можно отправить заново.
			if err := s.friendRepo.Delete(ctx, existing.ID); err != nil {
				s.logger.Error("ошибка удаления отклонённой заявки", zap.Int64("id", existing.ID), zap.Error(err))
				return 0, errors.New("ошибка при отправке заявки")
			}
		}
	}

	id, err := s.friendRepo.CreateRequest(ctx, requesterID, dto.AddresseeID)
	if err != nil {
		s.logger.Error("ошибка при создании заявки в друзья", zap.Error(err))
		return 0, errors.New("ошибка при отправке заявки")
	}

	return id, nil
}

func (s *FriendServiceImpl) Accept(ctx context.Context, userID, friendshipID int64) error {
	return s.respond(ctx, userID, friendshipID, domain.FriendshipStatusAccepted)
}

func (s *FriendServiceImpl) Decline(ctx context.Context, userID, friendshipID int64) error {
	return s.respond(ctx, userID, friendshipID, domain.FriendshipStatusDeclined)
}

func (s *FriendServiceImpl) respond(ctx context.Context, userID, friendshipID int64, status domain.FriendshipStatus) error {
	friendship, err := s.friendRepo.GetByID(ctx, friendshipID)
	if err != nil {
		return errors.New("заявка не найдена")
	}

	if friendship.AddresseeID != userID {
		return errors.New("нет прав на обработку этой заявки")
	}

	if friendship.Status != domain.FriendshipStatusPending {
		return errors.New("заявка уже обработана")
	}

	err = s.friendRepo.UpdateStatus(ctx, friendshipID, status)
	if err != nil {
		s.logger.Error("ошибка при обновлении статуса заявки", zap.Int64("id", friendshipID), zap.Error(err))
		return errors.New("ошибка при обработке заявки")
	}

	return nil
}

func (s *FriendServiceImpl) Remove(ctx context.Context, userID, friendshipID int64) error {
	friendship, err := s.friendRepo.GetByID(ctx, friendshipID)
	if err != nil {
		return errors.New("запись не найдена")
	}

	if friendship.RequesterID != userID && friendship.AddresseeID != userID {
		return errors.New("нет прав на удаление этой записи")
	}

	err = s.friendRepo.Delete(ctx, friendshipID)
	if err != nil {
		s.logger.Error("ошибка при удалении из друзей", zap.Int64("id", friendshipID), zap.Error(err))
		return errors.New("ошибка при удалении из друзей")
	}

	return nil
}

func (s *FriendServiceImpl) ListFriends(ctx context.Context, userID int64, limit, offset int) ([]domain.Friend, int, error) {
	filter := domain.FriendFilter{
		UserID: userID,
		Status: domain.FriendshipStatusAccepted,
		Limit:  normalizeLimit(limit),
		Offset: normalizeOffset(offset),
	}

	return s.list(ctx, filter)
}

func (s *FriendServiceImpl) ListRequests(ctx context.Context, userID int64, incoming bool, limit, offset int) ([]domain.Friend, int, error) {
	filter := domain.FriendFilter{
		UserID:   userID,
		Status:   domain.FriendshipStatusPending,
		Incoming: incoming,
		Limit:    normalizeLimit(limit),
		Offset:   normalizeOffset(offset),
	}

	return s.list(ctx, filter)
}

func (s *FriendServiceImpl) list(ctx context.Context, filter domain.FriendFilter) ([]domain.Friend, int, error) {
	friends, err := s.friendRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка при получении списка друзей", zap.Int64("userId", filter.UserID), zap.Error(err))
		return nil, 0, errors.New("ошибка при получении списка друзей")
	}

	total, err := s.friendRepo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка при подсчёте друзей", zap.Int64("userId", filter.UserID), zap.Error(err))
		return nil, 0, errors.New("ошибка при получении списка друзей")
	}

	return friends, total, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
