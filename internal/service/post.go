package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"mooza/internal/domain"
	"mooza/internal/repository"
)

type PostServiceImpl struct {
	postRepo   repository.PostRepository
	friendRepo repository.FriendRepository
	logger     *zap.Logger
}

func NewPostService(postRepo repository.PostRepository, friendRepo repository.FriendRepository, logger *zap.Logger) *PostServiceImpl {
	return &PostServiceImpl{
		postRepo:   postRepo,
		friendRepo: friendRepo,
		logger:     logger,
	}
}

func (s *PostServiceImpl) Create(ctx context.Context, authorID int64, dto domain.CreatePostDTO) (int64, error) {
	id, err := s.postRepo.Create(ctx, authorID, dto)
	if err != nil {
		s.logger.Error("ошибка при создании поста", zap.Int64("authorId", authorID), zap.Error(err))
		return 0, errors.New("ошибка при создании поста")
	}

	return id, nil
}

func (s *PostServiceImpl) GetByID(ctx context.Context, id, viewerID int64) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id, viewerID)
	if err != nil {
		return nil, errors.New("пост не найден")
	}

	return post, nil
}

func (s *PostServiceImpl) Update(ctx context.Context, id, userID int64, dto domain.UpdatePostDTO) error {
	post, err := s.postRepo.GetByID(ctx, id, userID)
	if err != nil {
		return errors.New("пост не найден")
	}

	if post.AuthorID != userID {
		return errors.New("нет прав на редактирование этого поста")
	}

	err = s.postRepo.Update(ctx, id, dto)
	if err != nil {
		s.logger.Error("ошибка при обновлении поста", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при обновлении поста")
	}

	return nil
}

func (s *PostServiceImpl) Delete(ctx context.Context, id, userID int64) error {
	post, err := s.postRepo.GetByID(ctx, id, userID)
	if err != nil {
		return errors.New("пост не найден")
	}

	if post.AuthorID != userID {
		return errors.New("нет прав на удаление этого поста")
	}

	err = s.postRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("ошибка при удалении поста", zap.Int64("id", id), zap.Error(err))
		return errors.New("ошибка при удалении поста")
	}

	return nil
}

func (s *PostServiceImpl) Feed(ctx context.Context, userID int64, limit, offset int) ([]domain.Post, int, error) {
	filter := domain.PostFilter{
		FeedForUserID: &userID,
		Limit:         normalizeLimit(limit),
		Offset:        normalizeOffset(offset),
	}

	return s.list(ctx, userID, filter)
}

func (s *PostServiceImpl) ListByAuthor(ctx context.Context, authorID, viewerID int64, limit, offset int) ([]domain.Post, int, error) {
	filter := domain.PostFilter{
		AuthorID: &authorID,
		Limit:    normalizeLimit(limit),
		Offset:   normalizeOffset(offset),
	}

	return s.list(ctx, viewerID, filter)
}

func (s *PostServiceImpl) list(ctx context.Context, viewerID int64, filter domain.PostFilter) ([]domain.Post, int, error) {
	posts, err := s.postRepo.List(ctx, viewerID, filter)
	if err != nil {
		s.logger.Error("ошибка при получении постов", zap.Error(err))
		return nil, 0, errors.New("ошибка при получении постов")
	}

	total, err := s.postRepo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка при подсчёте постов", zap.Error(err))
		return nil, 0, errors.New("ошибка при получении постов")
	}

	return posts, total, nil
}

func (s *PostServiceImpl) Like(ctx context.Context, postID, userID int64) error {
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return errors.New("пост не найден")
	}

	err := s.postRepo.AddLike(ctx, postID, userID)
	if err != nil {
		s.logger.Error("ошибка при добавлении лайка", zap.Int64("postId", postID), zap.Error(err))
		return errors.New("ошибка при добавлении лайка")
	}

	return nil
}

func (s *PostServiceImpl) Unlike(ctx context.Context, postID, userID int64) error {
	err := s.postRepo.RemoveLike(ctx, postID, userID)
	if err != nil {
		s.logger.Error("ошибка при удалении лайка", zap.Int64("postId", postID), zap.Error(err))
		return errors.New("ошибка при удалении лайка")
	}

	return nil
}

func (s *PostServiceImpl) AddComment(ctx context.Context, postID, authorID int64, dto domain.CreateCommentDTO) (int64, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, authorID); err != nil {
		return 0, errors.New("пост не найден")
	}

	id, err := s.postRepo.CreateComment(ctx, postID, authorID, dto)
	if err != nil {
		s.logger.Error("ошибка при создании комментария", zap.Int64("postId", postID), zap.Error(err))
		return 0, errors.New("ошибка при создании комментария")
	}

	return id, nil
}

func (s *PostServiceImpl) DeleteComment(ctx context.Context, commentID, userID int64) error {
	comment, err := s.postRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return errors.New("комментарий не найден")
	}

	if comment.AuthorID != userID {
		post, err := s.postRepo.GetByID(ctx, comment.PostID, userID)
		if err != nil || post.AuthorID != userID {
			return errors.New("нет прав на удаление этого комментария")
		}
	}

	err = s.postRepo.DeleteComment(ctx, commentID)
	if err != nil {
		s.logger.Error("ошибка при удалении комментария", zap.Int64("id", commentID), zap.Error(err))
		return errors.New("ошибка при удалении комментария")
	}

	return nil
}

func (s *PostServiceImpl) ListComments(ctx context.Context, postID int64, limit, offset int) ([]domain.Comment, error) {
	comments, err := s.postRepo.GetCommentsByPostID(ctx, postID, normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		s.logger.Error("ошибка при получении комментариев", zap.Int64("postId", postID), zap.Error(err))
		return nil, errors.New("ошибка при получении комментариев")
	}

	return comments, nil
}
