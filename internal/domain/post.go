package domain

import (
	"time"
)

type Post struct {
	ID            int64     `json:"id"`
	AuthorID      int64     `json:"author_id"`
	Text          string    `json:"text"`
	ImageURL      *string   `json:"image_url,omitempty"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	LikedByMe     bool      `json:"liked_by_me"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	AuthorNickname  *string `json:"author_nickname,omitempty"`
	AuthorFirstName *string `json:"author_first_name,omitempty"`
	AuthorLastName  *string `json:"author_last_name,omitempty"`
	AuthorAvatarURL *string `json:"author_avatar_url,omitempty"`
}

type CreatePostDTO struct {
	Text     string  `json:"text" binding:"required,max=4000"`
	ImageURL *string `json:"image_url"`
}

type UpdatePostDTO struct {
	Text     *string `json:"text" binding:"omitempty,max=4000"`
	ImageURL *string `json:"image_url"`
}

type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	AuthorID  int64     `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AuthorNickname  *string `json:"author_nickname,omitempty"`
	AuthorAvatarURL *string `json:"author_avatar_url,omitempty"`
}

type CreateCommentDTO struct {
	Text string `json:"text" binding:"required,max=2000"`
}

type PostFilter struct {
	AuthorID      *int64 `json:"author_id"`
	FeedForUserID *int64 `json:"feed_for_user_id"`
	Limit         int    `json:"limit"`
	Offset        int    `json:"offset"`
}
