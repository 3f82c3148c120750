package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"mooza/internal/domain"
	"mooza/internal/search"
)

type Repositories struct {
	User    UserRepository
	Auth    AuthRepository
	Catalog CatalogRepository
	Profile ProfileRepository
	Search  SearchRepository
	Friend  FriendRepository
	Post    PostRepository
	Message MessageRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Auth:    NewAuthRepository(db),
		Catalog: NewCatalogRepository(db),
		Profile: NewProfileRepository(db),
		Search:  NewSearchRepository(db),
		Friend:  NewFriendRepository(db),
		Post:    NewPostRepository(db),
		Message: NewMessageRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByNickname(ctx context.Context, nickname string) (*domain.User, error)
	Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateAvatar(ctx context.Context, id int64, avatarURL string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID int64) error
}

// CatalogRepository читает справочники поиска. Options реализует
// search.CatalogSource: список значений фасета, при необходимости
// ограниченный выбором вышестоящего фасета.
type CatalogRepository interface {
	Options(ctx context.Context, facet search.FacetID, scope *search.Scope) ([]domain.Option, error)
	OptionExists(ctx context.Context, facet search.FacetID, optionID int64) (bool, error)
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.SearchProfile, error)
	Upsert(ctx context.Context, userID int64, dto domain.UpsertSearchProfileDTO) (int64, error)
	Delete(ctx context.Context, userID int64) error
}

// SearchRepository исполняет скомпилированный дескриптор: страница выдачи
// и точный подсчёт с теми же предикатами.
type SearchRepository interface {
	List(ctx context.Context, q search.QueryDescriptor) ([]domain.SearchResult, error)
	Count(ctx context.Context, q search.QueryDescriptor) (int, error)
}

type FriendRepository interface {
	CreateRequest(ctx context.Context, requesterID, addresseeID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Friendship, error)
	GetBetween(ctx context.Context, userA, userB int64) (*domain.Friendship, error)
	UpdateStatus(ctx context.Context, id int64, status domain.FriendshipStatus) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.FriendFilter) ([]domain.Friend, error)
	CountByFilter(ctx context.Context, filter domain.FriendFilter) (int, error)
}

type PostRepository interface {
	Create(ctx context.Context, authorID int64, dto domain.CreatePostDTO) (int64, error)
	GetByID(ctx context.Context, id int64, viewerID int64) (*domain.Post, error)
	Update(ctx context.Context, id int64, dto domain.UpdatePostDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, viewerID int64, filter domain.PostFilter) ([]domain.Post, error)
	CountByFilter(ctx context.Context, filter domain.PostFilter) (int, error)

	AddLike(ctx context.Context, postID, userID int64) error
	RemoveLike(ctx context.Context, postID, userID int64) error

	CreateComment(ctx context.Context, postID, authorID int64, dto domain.CreateCommentDTO) (int64, error)
	GetCommentByID(ctx context.Context, id int64) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
	GetCommentsByPostID(ctx context.Context, postID int64, limit, offset int) ([]domain.Comment, error)
}

type MessageRepository interface {
	Create(ctx context.Context, senderID int64, dto domain.SendMessageDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Message, error)
	List(ctx context.Context, filter domain.MessageFilter) ([]domain.Message, error)
	CountByFilter(ctx context.Context, filter domain.MessageFilter) (int, error)
	MarkRead(ctx context.Context, userID, peerID int64) error
	UnreadCount(ctx context.Context, userID int64) (int, error)
	ListDialogs(ctx context.Context, userID int64) ([]domain.Dialog, error)
}
