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

type MessageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{
		db: db,
	}
}

func (r *MessageRepo) Create(ctx context.Context, senderID int64, dto domain.SendMessageDTO) (int64, error) {
	query := `
		INSERT INTO messages (sender_id, recipient_id, text, is_read, created_at)
		VALUES ($1, $2, $3, false, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, senderID, dto.RecipientID, dto.Text, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка отправки сообщения: %w", err)
	}

	return id, nil
}

func (r *MessageRepo) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	query := `
		SELECT id, sender_id, recipient_id, text, is_read, read_at, created_at
		FROM messages
		WHERE id = $1
	`

	var message domain.Message
	err := r.db.QueryRow(ctx, query, id).Scan(
		&message.ID,
		&message.SenderID,
		&message.RecipientID,
		&message.Text,
		&message.IsRead,
		&message.ReadAt,
		&message.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("сообщение с id %d не найдено", id)
		}
		return nil, fmt.Errorf("ошибка получения сообщения: %w", err)
	}

	return &message, nil
}

const dialogCondition = `
	(sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)
`

func (r *MessageRepo) List(ctx context.Context, filter domain.MessageFilter) ([]domain.Message, error) {
	query := `
		SELECT id, sender_id, recipient_id, text, is_read, read_at, created_at
		FROM messages
		WHERE ` + dialogCondition + `
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, filter.UserID, filter.PeerID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения переписки: %w", err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0)
	for rows.Next() {
		var message domain.Message
		if err := rows.Scan(
			&message.ID,
			&message.SenderID,
			&message.RecipientID,
			&message.Text,
			&message.IsRead,
			&message.ReadAt,
			&message.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки сообщения: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return messages, nil
}

func (r *MessageRepo) CountByFilter(ctx context.Context, filter domain.MessageFilter) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM messages
		WHERE ` + dialogCondition

	var count int
	err := r.db.QueryRow(ctx, query, filter.UserID, filter.PeerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта сообщений: %w", err)
	}

	return count, nil
}

func (r *MessageRepo) MarkRead(ctx context.Context, userID, peerID int64) error {
	query := `
		UPDATE messages
		SET is_read = true,
		    read_at = $1
		WHERE recipient_id = $2 AND sender_id = $3 AND NOT is_read
	`

	_, err := r.db.Exec(ctx, query, time.Now(), userID, peerID)
	if err != nil {
		return fmt.Errorf("ошибка отметки сообщений прочитанными: %w", err)
	}

	return nil
}

func (r *MessageRepo) UnreadCount(ctx context.Context, userID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM messages
		WHERE recipient_id = $1 AND NOT is_read
	`

	var count int
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта непрочитанных сообщений: %w", err)
	}

	return count, nil
}

func (r *MessageRepo) ListDialogs(ctx context.Context, userID int64) ([]domain.Dialog, error) {
	// Последнее сообщение каждого диалога плюс количество непрочитанных.
	query := `
		SELECT DISTINCT ON (peer_id)
		       CASE WHEN m.sender_id = $1 THEN m.recipient_id ELSE m.sender_id END AS peer_id,
		       u.nickname, u.first_name, u.last_name, u.avatar_url,
		       m.text, m.sender_id, m.created_at,
		       (SELECT COUNT(*) FROM messages um
		        WHERE um.recipient_id = $1 AND NOT um.is_read
		          AND um.sender_id = CASE WHEN m.sender_id = $1 THEN m.recipient_id ELSE m.sender_id END)
		FROM messages m
		JOIN users u ON u.id = CASE WHEN m.sender_id = $1 THEN m.recipient_id ELSE m.sender_id END
		WHERE m.sender_id = $1 OR m.recipient_id = $1
		ORDER BY peer_id, m.created_at DESC, m.id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка диалогов: %w", err)
	}
	defer rows.Close()

	dialogs := make([]domain.Dialog, 0)
	for rows.Next() {
		var dialog domain.Dialog
		if err := rows.Scan(
			&dialog.PeerID,
			&dialog.PeerNickname,
			&dialog.PeerFirstName,
			&dialog.PeerLastName,
			&dialog.PeerAvatarURL,
			&dialog.LastMessage,
			&dialog.LastSenderID,
			&dialog.LastSentAt,
			&dialog.UnreadCount,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки диалога: %w", err)
		}
		dialogs = append(dialogs, dialog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return dialogs, nil
}
