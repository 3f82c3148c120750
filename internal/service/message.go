package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"mooza/internal/domain"
	"mooza/internal/repository"
)

type MessageServiceImpl struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	logger      *zap.Logger
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, logger *zap.Logger) *MessageServiceImpl {
	return &MessageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (s *MessageServiceImpl) Send(ctx context.Context, senderID int64, dto domain.SendMessageDTO) (int64, error) {
	if senderID == dto.RecipientID {
		return 0, errors.New("нельзя отправить сообщение самому себе")
	}

	recipient, err := s.userRepo.GetByID(ctx, dto.RecipientID)
	if err != nil || !recipient.IsActive {
		return 0, errors.New("получатель не найден")
	}

	id, err := s.messageRepo.Create(ctx, senderID, dto)
	if err != nil {
		s.logger.Error("ошибка при отправке сообщения", zap.Int64("senderId", senderID), zap.Error(err))
		return 0, errors.New("ошибка при отправке сообщения")
	}

	return id, nil
}

func (s *MessageServiceImpl) History(ctx context.Context, userID, peerID int64, limit, offset int) ([]domain.Message, int, error) {
	filter := domain.MessageFilter{
		UserID: userID,
		PeerID: peerID,
		Limit:  normalizeLimit(limit),
		Offset: normalizeOffset(offset),
	}

	messages, err := s.messageRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка при получении переписки", zap.Int64("userId", userID), zap.Int64("peerId", peerID), zap.Error(err))
		return nil, 0, errors.New("ошибка при получении переписки")
	}

	total, err := s.messageRepo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка при подсчёте сообщений", zap.Error(err))
		return nil, 0, errors.New("ошибка при получении переписки")
	}

	return messages, total, nil
}

func (s *MessageServiceImpl) MarkRead(ctx context.Context, userID, peerID int64) error {
	err := s.messageRepo.MarkRead(ctx, userID, peerID)
	if err != nil {
		s.logger.Error("ошибка при отметке сообщений прочитанными", zap.Int64("userId", userID), zap.Int64("peerId", peerID), zap.Error(err))
		return errors.New("ошибка при отметке сообщений")
	}

	return nil
}

func (s *MessageServiceImpl) UnreadCount(ctx context.Context, userID int64) (int, error) {
	count, err := s.messageRepo.UnreadCount(ctx, userID)
	if err != nil {
		s.logger.Error("ошибка при подсчёте непрочитанных", zap.Int64("userId", userID), zap.Error(err))
		return 0, errors.New("ошибка при подсчёте непрочитанных сообщений")
	}

	return count, nil
}

func (s *MessageServiceImpl) Dialogs(ctx context.Context, userID int64) ([]domain.Dialog, error) {
	dialogs, err := s.messageRepo.ListDialogs(ctx, userID)
	if err != nil {
		s.logger.Error("ошибка при получении диалогов", zap.Int64("userId", userID), zap.Error(err))
		return nil, errors.New("ошибка при получении диалогов")
	}

	return dialogs, nil
}
