package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mooza/internal/domain"
)

type PostRepo struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) *PostRepo {
	return &PostRepo{
		db: db,
	}
}

const postSelectColumns = `
	p.id, p.author_id, p.text, p.image_url, p.created_at, p.updated_at,
	u.nickname, u.first_name, u.last_name, u.avatar_url,
	(SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id),
	(SELECT COUNT(*) FROM post_comments pc WHERE pc.post_id = p.id),
	EXISTS(SELECT 1 FROM post_likes pl WHERE pl.post_id = p.id AND pl.user_id = $1)
`

func scanPost(row pgx.Row) (*domain.Post, error) {
	var post domain.Post
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Text,
		&post.ImageURL,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.AuthorNickname,
		&post.AuthorFirstName,
		&post.AuthorLastName,
		&post.AuthorAvatarURL,
		&post.LikesCount,
		&post.CommentsCount,
		&post.LikedByMe,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepo) Create(ctx context.Context, authorID int64, dto domain.CreatePostDTO) (int64, error) {
	query := `
		INSERT INTO posts (author_id, text, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query, authorID, dto.Text, dto.ImageURL, now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания поста: %w", err)
	}

	return id, nil
}

func (r *PostRepo) GetByID(ctx context.Context, id int64, viewerID int64) (*domain.Post, error) {
	query := "SELECT " + postSelectColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $2
	`

	post, err := scanPost(r.db.QueryRow(ctx, query, viewerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("пост с id %d не найден", id)
		}
		return nil, fmt.Errorf("ошибка получения поста: %w", err)
	}

	return post, nil
}

func (r *PostRepo) Update(ctx context.Context, id int64, dto domain.UpdatePostDTO) error {
	setValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if dto.Text != nil {
		setValues = append(setValues, fmt.Sprintf("text = $%d", argID))
		args = append(args, *dto.Text)
		argID++
	}

	if dto.ImageURL != nil {
		setValues = append(setValues, fmt.Sprintf("image_url = $%d", argID))
		args = append(args, *dto.ImageURL)
		argID++
	}

	if len(setValues) == 0 {
		return nil
	}

	setValues = append(setValues, fmt.Sprintf("updated_at = $%d", argID))
	args = append(args, time.Now())
	argID++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE posts
		SET %s
		WHERE id = $%d
	`, strings.Join(setValues, ", "), argID)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления поста: %w", err)
	}

	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления поста: %w", err)
	}

	return nil
}

// feedCondition ограничивает ленту постами самого пользователя и его друзей.
func feedCondition(argID int) string {
	return fmt.Sprintf(`
	(p.author_id = $%d OR p.author_id IN (
		SELECT CASE WHEN fs.requester_id = $%d THEN fs.addressee_id ELSE fs.requester_id END
		FROM friendships fs
		WHERE (fs.requester_id = $%d OR fs.addressee_id = $%d) AND fs.status = 'accepted'
	))
`, argID, argID, argID, argID)
}

func (r *PostRepo) List(ctx context.Context, viewerID int64, filter domain.PostFilter) ([]domain.Post, error) {
	baseQuery := "SELECT " + postSelectColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
	`

	args := []interface{}{viewerID}
	argID := 2
	whereClause := ""

	switch {
	case filter.FeedForUserID != nil:
		whereClause = " WHERE " + feedCondition(argID)
		args = append(args, *filter.FeedForUserID)
		argID++
	case filter.AuthorID != nil:
		whereClause = fmt.Sprintf(" WHERE p.author_id = $%d", argID)
		args = append(args, *filter.AuthorID)
		argID++
	}

	query := baseQuery + whereClause +
		fmt.Sprintf(" ORDER BY p.created_at DESC, p.id DESC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка постов: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки поста: %w", err)
		}
		posts = append(posts, *post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return posts, nil
}

func (r *PostRepo) CountByFilter(ctx context.Context, filter domain.PostFilter) (int, error) {
	baseQuery := `SELECT COUNT(*) FROM posts p`

	args := make([]interface{}, 0)
	whereClause := ""

	switch {
	case filter.FeedForUserID != nil:
		whereClause = " WHERE " + feedCondition(1)
		args = append(args, *filter.FeedForUserID)
	case filter.AuthorID != nil:
		whereClause = " WHERE p.author_id = $1"
		args = append(args, *filter.AuthorID)
	}

	var count int
	err := r.db.QueryRow(ctx, baseQuery+whereClause, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта постов: %w", err)
	}

	return count, nil
}

func (r *PostRepo) AddLike(ctx context.Context, postID, userID int64) error {
	query := `
		INSERT INTO post_likes (post_id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, postID, userID, time.Now())
	if err != nil {
		return fmt.Errorf("ошибка добавления лайка: %w", err)
	}

	return nil
}

func (r *PostRepo) RemoveLike(ctx context.Context, postID, userID int64) error {
	query := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`

	_, err := r.db.Exec(ctx, query, postID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления лайка: %w", err)
	}

	return nil
}

func (r *PostRepo) CreateComment(ctx context.Context, postID, authorID int64, dto domain.CreateCommentDTO) (int64, error) {
	query := `
		INSERT INTO post_comments (post_id, author_id, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query, postID, authorID, dto.Text, now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания комментария: %w", err)
	}

	return id, nil
}

func (r *PostRepo) GetCommentByID(ctx context.Context, id int64) (*domain.Comment, error) {
	query := `
		SELECT pc.id, pc.post_id, pc.author_id, pc.text, pc.created_at, pc.updated_at,
		       u.nickname, u.avatar_url
		FROM post_comments pc
		JOIN users u ON u.id = pc.author_id
		WHERE pc.id = $1
	`

	var comment domain.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.Text,
		&comment.CreatedAt,
		&comment.UpdatedAt,
		&comment.AuthorNickname,
		&comment.AuthorAvatarURL,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("комментарий с id %d не найден", id)
		}
		return nil, fmt.Errorf("ошибка получения комментария: %w", err)
	}

	return &comment, nil
}

func (r *PostRepo) DeleteComment(ctx context.Context, id int64) error {
	query := `DELETE FROM post_comments WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления комментария: %w", err)
	}

	return nil
}

func (r *PostRepo) GetCommentsByPostID(ctx context.Context, postID int64, limit, offset int) ([]domain.Comment, error) {
	query := `
		SELECT pc.id, pc.post_id, pc.author_id, pc.text, pc.created_at, pc.updated_at,
		       u.nickname, u.avatar_url
		FROM post_comments pc
		JOIN users u ON u.id = pc.author_id
		WHERE pc.post_id = $1
		ORDER BY pc.created_at ASC, pc.id ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения комментариев: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.Text,
			&comment.CreatedAt,
			&comment.UpdatedAt,
			&comment.AuthorNickname,
			&comment.AuthorAvatarURL,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки комментария: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return comments, nil
}
