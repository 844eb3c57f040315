package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/bgogeta007/health-hustler/internal/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.PhotoComment) (*models.PhotoComment, error)
	GetByID(ctx context.Context, id uint64) (*models.PhotoComment, error)
	ListByPhotoIDs(ctx context.Context, photoIDs []uint64) ([]*models.PhotoComment, error)
	Delete(ctx context.Context, id uint64) error
}

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) CommentRepository {
	return &commentRepository{db: db}
}

func scanComment(row interface{ Scan(...interface{}) error }) (*models.PhotoComment, error) {
	c := &models.PhotoComment{}
	var mentions []byte
	err := row.Scan(&c.ID, &c.PhotoID, &c.UserID, &c.ParentID, &c.Content, &mentions, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(mentions) > 0 {
		if err := json.Unmarshal(mentions, &c.Mentions); err != nil {
			return nil, fmt.Errorf("failed to decode mentions: %w", err)
		}
	}
	return c, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.PhotoComment) (*models.PhotoComment, error) {
	mentions, err := json.Marshal(comment.Mentions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mentions: %w", err)
	}

	query := `
		INSERT INTO photo_comments (photo_id, user_id, parent_id, content, mentions)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		comment.PhotoID, comment.UserID, comment.ParentID, comment.Content, mentions,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get comment id: %w", err)
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *commentRepository) GetByID(ctx context.Context, id uint64) (*models.PhotoComment, error) {
	query := `
		SELECT id, photo_id, user_id, parent_id, content, mentions, created_at
		FROM photo_comments
		WHERE id = ?
	`
	c, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return c, nil
}

// ListByPhotoIDs loads the comments of a whole feed page in one query.
// Ordered oldest first so the tree assembles in display order.
func (r *commentRepository) ListByPhotoIDs(ctx context.Context, photoIDs []uint64) ([]*models.PhotoComment, error) {
	if len(photoIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, photo_id, user_id, parent_id, content, mentions, created_at
		FROM photo_comments
		WHERE photo_id IN (` + placeholders(len(photoIDs)) + `)
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, uint64Args(photoIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.PhotoComment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentRepository) Delete(ctx context.Context, id uint64) error {
	// replies go with their parent via the FK cascade
	query := `DELETE FROM photo_comments WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
