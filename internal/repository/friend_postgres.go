package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mooza/internal/domain"
)

type FriendRepo struct {
	db *pgxpool.Pool
}

func NewFriendRepository(db *pgxpool.Pool) *FriendRepo {
	return &FriendRepo{
		db: db,
	}
}

func (r *FriendRepo) CreateRequest(ctx context.Context, requesterID, addresseeID int64) (int64, error) {
	query := `
		INSERT INTO friendships (requester_id, addressee_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query, requesterID, addresseeID, domain.FriendshipStatusPending, now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания заявки в друзья: %w", err)
	}

	return id, nil
}

func (r *FriendRepo) GetByID(ctx context.Context, id int64) (*domain.Friendship, error) {
	query := `
		SELECT id, requester_id, addressee_id, status, created_at, updated_at
		FROM friendships
		WHERE id = $1
	`

	var friendship domain.Friendship
	err := r.db.QueryRow(ctx, query, id).Scan(
		&friendship.ID,
		&friendship.RequesterID,
		&friendship.AddresseeID,
		&friendship.Status,
		&friendship.CreatedAt,
		&friendship.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("заявка с id %d не найдена", id)
		}
		return nil, fmt.Errorf("ошибка получения заявки: %w", err)
	}

	return &friendship, nil
}

func (r *FriendRepo) GetBetween(ctx context.Context, userA, userB int64) (*domain.Friendship, error) {
	query := `
		SELECT id, requester_id, addressee_id, status, created_at, updated_at
		FROM friendships
		WHERE (requester_id = $1 AND addressee_id = $2)
		   OR (requester_id = $2 AND addressee_id = $1)
	`

	var friendship domain.Friendship
	err := r.db.QueryRow(ctx, query, userA, userB).Scan(
		&friendship.ID,
		&friendship.RequesterID,
		&friendship.AddresseeID,
		&friendship.Status,
		&friendship.CreatedAt,
		&friendship.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("ошибка получения связи пользователей: %w", err)
	}

	return &friendship, nil
}

func (r *FriendRepo) UpdateStatus(ctx context.Context, id int64, status domain.FriendshipStatus) error {
	query := `
		UPDATE friendships
		SET status = $1,
		    updated_at = $2
		WHERE id = $3
	`

	_, err := r.db.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса заявки: %w", err)
	}

	return nil
}

func (r *FriendRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM friendships WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления связи: %w", err)
	}

	return nil
}

// listQuery собирает запрос списка друзей или заявок. Для принятых связей
// собеседник определяется с любой стороны, для заявок — направлением.
func listConditions(filter domain.FriendFilter) (string, []interface{}) {
	args := []interface{}{filter.UserID, filter.Status}

	condition := ""
	switch {
	case filter.Status == domain.FriendshipStatusAccepted:
		condition = "(fs.requester_id = $1 OR fs.addressee_id = $1) AND fs.status = $2"
	case filter.Incoming:
		condition = "fs.addressee_id = $1 AND fs.status = $2"
	default:
		condition = "fs.requester_id = $1 AND fs.status = $2"
	}

	return condition, args
}

func (r *FriendRepo) List(ctx context.Context, filter domain.FriendFilter) ([]domain.Friend, error) {
	condition, args := listConditions(filter)

	query := fmt.Sprintf(`
		SELECT fs.id, fs.status, u.id, u.nickname, u.first_name, u.last_name, u.avatar_url, fs.updated_at
		FROM friendships fs
		JOIN users u ON u.id = CASE WHEN fs.requester_id = $1 THEN fs.addressee_id ELSE fs.requester_id END
		WHERE %s
		ORDER BY u.last_name, u.first_name, u.id
		LIMIT $3 OFFSET $4
	`, condition)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка друзей: %w", err)
	}
	defer rows.Close()

	friends := make([]domain.Friend, 0)
	for rows.Next() {
		var friend domain.Friend
		if err := rows.Scan(
			&friend.FriendshipID,
			&friend.Status,
			&friend.UserID,
			&friend.Nickname,
			&friend.FirstName,
			&friend.LastName,
			&friend.AvatarURL,
			&friend.Since,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки друга: %w", err)
		}
		friends = append(friends, friend)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return friends, nil
}

func (r *FriendRepo) CountByFilter(ctx context.Context, filter domain.FriendFilter) (int, error) {
	condition, args := listConditions(filter)

	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM friendships fs
		WHERE %s
	`, condition)

	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта друзей: %w", err)
	}

	return count, nil
}
