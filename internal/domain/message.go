package domain

import (
	"time"
)

type Message struct {
	ID          int64      `json:"id"`
	SenderID    int64      `json:"sender_id"`
	RecipientID int64      `json:"recipient_id"`
	Text        string     `json:"text"`
	IsRead      bool       `json:"is_read"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type SendMessageDTO struct {
	RecipientID int64  `json:"recipient_id" binding:"required"`
	Text        string `json:"text" binding:"required,max=4000"`
}

// Dialog — сводка переписки с одним собеседником для списка диалогов.
type Dialog struct {
	PeerID        int64     `json:"peer_id"`
	PeerNickname  string    `json:"peer_nickname"`
	PeerFirstName string    `json:"peer_first_name"`
	PeerLastName  string    `json:"peer_last_name"`
	PeerAvatarURL string    `json:"peer_avatar_url,omitempty"`
	LastMessage   string    `json:"last_message"`
	LastSenderID  int64     `json:"last_sender_id"`
	LastSentAt    time.Time `json:"last_sent_at"`
	UnreadCount   int       `json:"unread_count"`
}

type MessageFilter struct {
	UserID int64 `json:"user_id"`
	PeerID int64 `json:"peer_id"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}
