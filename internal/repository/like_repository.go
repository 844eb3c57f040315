package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// LikeRepository covers both photo and comment likes. The batched
// count/flag readers exist so a feed page resolves in a fixed number of
// queries regardless of how many photos or comments it holds.
type LikeRepository interface {
	CountByPhotoIDs(ctx context.Context, photoIDs []uint64) (map[uint64]int, error)
	LikedPhotos(ctx context.Context, userID uint64, photoIDs []uint64) (map[uint64]bool, error)
	TogglePhotoLike(ctx context.Context, userID, photoID uint64) (liked bool, err error)

	CountByCommentIDs(ctx context.Context, commentIDs []uint64) (map[uint64]int, error)
	LikedComments(ctx context.Context, userID uint64, commentIDs []uint64) (map[uint64]bool, error)
	ToggleCommentLike(ctx context.Context, userID, commentID uint64) (liked bool, err error)
}

type likeRepository struct {
	db *sql.DB
}

func NewLikeRepository(db *sql.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) CountByPhotoIDs(ctx context.Context, photoIDs []uint64) (map[uint64]int, error) {
	return r.countByIDs(ctx, "photo_likes", "photo_id", photoIDs)
}

func (r *likeRepository) CountByCommentIDs(ctx context.Context, commentIDs []uint64) (map[uint64]int, error) {
	return r.countByIDs(ctx, "comment_likes", "comment_id", commentIDs)
}

func (r *likeRepository) countByIDs(ctx context.Context, table, column string, ids []uint64) (map[uint64]int, error) {
	counts := make(map[uint64]int, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	query := `SELECT ` + column + `, COUNT(*) FROM ` + table +
		` WHERE ` + column + ` IN (` + placeholders(len(ids)) + `) GROUP BY ` + column
	rows, err := r.db.QueryContext(ctx, query, uint64Args(ids)...)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uint64
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan like count: %w", err)
		}
		counts[id] = count
	}
	return counts, rows.Err()
}

func (r *likeRepository) LikedPhotos(ctx context.Context, userID uint64, photoIDs []uint64) (map[uint64]bool, error) {
	return r.likedByIDs(ctx, "photo_likes", "photo_id", userID, photoIDs)
}

func (r *likeRepository) LikedComments(ctx context.Context, userID uint64, commentIDs []uint64) (map[uint64]bool, error) {
	return r.likedByIDs(ctx, "comment_likes", "comment_id", userID, commentIDs)
}

func (r *likeRepository) likedByIDs(ctx context.Context, table, column string, userID uint64, ids []uint64) (map[uint64]bool, error) {
	liked := make(map[uint64]bool, len(ids))
	if len(ids) == 0 {
		return liked, nil
	}

	args := append([]interface{}{userID}, uint64Args(ids)...)
	query := `SELECT ` + column + ` FROM ` + table +
		` WHERE user_id = ? AND ` + column + ` IN (` + placeholders(len(ids)) + `)`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read liked flags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan liked flag: %w", err)
		}
		liked[id] = true
	}
	return liked, rows.Err()
}

// TogglePhotoLike inserts or removes the like row and reports the new state
func (r *likeRepository) TogglePhotoLike(ctx context.Context, userID, photoID uint64) (bool, error) {
	return r.toggle(ctx, "photo_likes", "photo_id", userID, photoID)
}

func (r *likeRepository) ToggleCommentLike(ctx context.Context, userID, commentID uint64) (bool, error) {
	return r.toggle(ctx, "comment_likes", "comment_id", userID, commentID)
}

func (r *likeRepository) toggle(ctx context.Context, table, column string, userID, id uint64) (bool, error) {
	del := `DELETE FROM ` + table + ` WHERE user_id = ? AND ` + column + ` = ?`
	result, err := r.db.ExecContext(ctx, del, userID, id)
	if err != nil {
		return false, fmt.Errorf("failed to toggle like: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read toggle result: %w", err)
	}
	if affected > 0 {
		return false, nil
	}

	ins := `INSERT INTO ` + table + ` (user_id, ` + column + `) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, ins, userID, id); err != nil {
		return false, fmt.Errorf("failed to toggle like: %w", err)
	}
	return true, nil
}
