package domain

import (
	"time"
)

type FriendshipStatus string

const (
	FriendshipStatusPending  FriendshipStatus = "pending"
	FriendshipStatusAccepted FriendshipStatus = "accepted"
	FriendshipStatusDeclined FriendshipStatus = "declined"
)

type Friendship struct {
	ID          int64            `json:"id"`
	RequesterID int64            `json:"requester_id"`
	AddresseeID int64            `json:"addressee_id"`
	Status      FriendshipStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Friend — запись в списке друзей или заявок с краткими данными пользователя.
type Friend struct {
	FriendshipID int64            `json:"friendship_id"`
	Status       FriendshipStatus `json:"status"`
	UserID       int64            `json:"user_id"`
	Nickname     string           `json:"nickname"`
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	AvatarURL    string           `json:"avatar_url,omitempty"`
	Since        time.Time        `json:"since"`
}

type CreateFriendRequestDTO struct {
	AddresseeID int64 `json:"addressee_id" binding:"required"`
}

type FriendFilter struct {
	UserID int64            `json:"user_id"`
	Status FriendshipStatus `json:"status"`
	// Incoming: true — заявки, адресованные пользователю, false — отправленные им.
	Incoming bool `json:"incoming"`
	Limit    int  `json:"limit"`
	Offset   int  `json:"offset"`
}
