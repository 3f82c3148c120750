package service

import (
	"context"

	"go.uber.org/zap"

	"mooza/config"
	"mooza/internal/domain"
	"mooza/internal/repository"
	"mooza/internal/search"
	"mooza/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	// OptionSource — источник значений фасетов; репозиторий справочников
	// либо кэширующая обёртка над ним.
	OptionSource search.CatalogSource
}

type Services struct {
	User    UserService
	Auth    AuthService
	Catalog CatalogService
	Profile ProfileService
	Search  SearchService
	Friend  FriendService
	Post    PostService
	Message MessageService
}

func NewServices(deps Deps) *Services {
	optionSource := deps.OptionSource
	if optionSource == nil {
		optionSource = deps.Repos.Catalog
	}

	return &Services{
		User:    NewUserService(deps.Repos.User, deps.FileStorage, deps.Logger),
		Auth:    NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Logger),
		Catalog: NewCatalogService(optionSource, deps.Logger),
		Profile: NewProfileService(deps.Repos.Profile, deps.Repos.Catalog, deps.Logger),
		Search:  NewSearchService(deps.Repos.Search, deps.Repos.Catalog, deps.Config.Search, deps.Logger),
		Friend:  NewFriendService(deps.Repos.Friend, deps.Repos.User, deps.Logger),
		Post:    NewPostService(deps.Repos.Post, deps.Repos.Friend, deps.Logger),
		Message: NewMessageService(deps.Repos.Message, deps.Repos.User, deps.Logger),
	}
}

type UserService interface {
	Create(ctx context.Context, dto domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)

	UploadAvatar(ctx context.Context, userID int64, data []byte, filename string) (string, error)
	DeleteAvatar(ctx context.Context, userID int64) error
}

type AuthService interface {
	Register(ctx context.Context, dto domain.RegisterRequest) (int64, error)
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

// CatalogService отдаёт значения фасетов с учётом выбора вышестоящих
// фасетов, переданного параметрами области.
type CatalogService interface {
	Options(ctx context.Context, facet search.FacetID, scope domain.SearchRequest) (*domain.OptionList, error)
}

type ProfileService interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.SearchProfile, error)
	Upsert(ctx context.Context, userID int64, dto domain.UpsertSearchProfileDTO) (int64, error)
	Delete(ctx context.Context, userID int64) error
}

type SearchService interface {
	Search(ctx context.Context, userID int64, req domain.SearchRequest) (*domain.SearchResponse, error)
}

type FriendService interface {
	SendRequest(ctx context.Context, requesterID int64, dto domain.CreateFriendRequestDTO) (int64, error)
	Accept(ctx context.Context, userID, friendshipID int64) error
	Decline(ctx context.Context, userID, friendshipID int64) error
	Remove(ctx context.Context, userID, friendshipID int64) error
	ListFriends(ctx context.Context, userID int64, limit, offset int) ([]domain.Friend, int, error)
	ListRequests(ctx context.Context, userID int64, incoming bool, limit, offset int) ([]domain.Friend, int, error)
}

type PostService interface {
	Create(ctx context.Context, authorID int64, dto domain.CreatePostDTO) (int64, error)
	GetByID(ctx context.Context, id, viewerID int64) (*domain.Post, error)
	Update(ctx context.Context, id, userID int64, dto domain.UpdatePostDTO) error
	Delete(ctx context.Context, id, userID int64) error
	Feed(ctx context.Context, userID int64, limit, offset int) ([]domain.Post, int, error)
	ListByAuthor(ctx context.Context, authorID, viewerID int64, limit, offset int) ([]domain.Post, int, error)

	Like(ctx context.Context, postID, userID int64) error
	Unlike(ctx context.Context, postID, userID int64) error

	AddComment(ctx context.Context, postID, authorID int64, dto domain.CreateCommentDTO) (int64, error)
	DeleteComment(ctx context.Context, commentID, userID int64) error
	ListComments(ctx context.Context, postID int64, limit, offset int) ([]domain.Comment, error)
}

type MessageService interface {
	Send(ctx context.Context, senderID int64, dto domain.SendMessageDTO) (int64, error)
	History(ctx context.Context, userID, peerID int64, limit, offset int) ([]domain.Message, int, error)
	MarkRead(ctx context.Context, userID, peerID int64) error
	UnreadCount(ctx context.Context, userID int64) (int, error)
	Dialogs(ctx context.Context, userID int64) ([]domain.Dialog, error)
}
