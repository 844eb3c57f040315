package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bgogeta007/health-hustler/internal/models"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *models.ProgressPhoto) (*models.ProgressPhoto, error)
	GetByID(ctx context.Context, id uint64) (*models.ProgressPhoto, error)
	ListByUser(ctx context.Context, userID uint64) ([]*models.ProgressPhoto, error)
	ListCommunity(ctx context.Context, limit, offset int) ([]*models.ProgressPhoto, error)
	SetVisibility(ctx context.Context, id uint64, isPrivate, communityVisible bool) error
	UpdateCaption(ctx context.Context, id uint64, caption string) error
	Delete(ctx context.Context, id uint64) error
	MaxWeekNumber(ctx context.Context, userID uint64) (int, error)
}

type photoRepository struct {
	db *sql.DB
}

func NewPhotoRepository(db *sql.DB) PhotoRepository {
	return &photoRepository{db: db}
}

const photoColumns = "id, user_id, photo_url, caption, week_number, is_private, community_visible, created_at"

func scanPhoto(row interface{ Scan(...interface{}) error }) (*models.ProgressPhoto, error) {
	p := &models.ProgressPhoto{}
	err := row.Scan(&p.ID, &p.UserID, &p.PhotoURL, &p.Caption, &p.WeekNumber, &p.IsPrivate, &p.CommunityVisible, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *photoRepository) Create(ctx context.Context, photo *models.ProgressPhoto) (*models.ProgressPhoto, error) {
	query := `
		INSERT INTO progress_photos (user_id, photo_url, caption, week_number, is_private, community_visible)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		photo.UserID, photo.PhotoURL, photo.Caption, photo.WeekNumber, photo.IsPrivate, photo.CommunityVisible,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create progress photo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get photo id: %w", err)
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *photoRepository) GetByID(ctx context.Context, id uint64) (*models.ProgressPhoto, error) {
	query := `SELECT ` + photoColumns + ` FROM progress_photos WHERE id = ?`
	p, err := scanPhoto(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress photo: %w", err)
	}
	return p, nil
}

func (r *photoRepository) ListByUser(ctx context.Context, userID uint64) ([]*models.ProgressPhoto, error) {
	query := `
		SELECT ` + photoColumns + `
		FROM progress_photos
		WHERE user_id = ?
		ORDER BY week_number ASC, created_at ASC
	`
	return r.queryPhotos(ctx, query, userID)
}

// ListCommunity returns publicly shared photos, newest first. Private
// photos never appear here even if community_visible was left stale.
func (r *photoRepository) ListCommunity(ctx context.Context, limit, offset int) ([]*models.ProgressPhoto, error) {
	query := `
		SELECT ` + photoColumns + `
		FROM progress_photos
		WHERE is_private = FALSE AND community_visible = TRUE
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	return r.queryPhotos(ctx, query, limit, offset)
}

func (r *photoRepository) queryPhotos(ctx context.Context, query string, args ...interface{}) ([]*models.ProgressPhoto, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress photos: %w", err)
	}
	defer rows.Close()

	var photos []*models.ProgressPhoto
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress photo: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *photoRepository) SetVisibility(ctx context.Context, id uint64, isPrivate, communityVisible bool) error {
	query := `
		UPDATE progress_photos
		SET is_private = ?, community_visible = ?
		WHERE id = ?
	`
	if _, err := r.db.ExecContext(ctx, query, isPrivate, communityVisible, id); err != nil {
		return fmt.Errorf("failed to update photo visibility: %w", err)
	}
	return nil
}

func (r *photoRepository) UpdateCaption(ctx context.Context, id uint64, caption string) error {
	query := `UPDATE progress_photos SET caption = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, caption, id); err != nil {
		return fmt.Errorf("failed to update photo caption: %w", err)
	}
	return nil
}

func (r *photoRepository) Delete(ctx context.Context, id uint64) error {
	query := `DELETE FROM progress_photos WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete progress photo: %w", err)
	}
	return nil
}

func (r *photoRepository) MaxWeekNumber(ctx context.Context, userID uint64) (int, error) {
	query := `SELECT COALESCE(MAX(week_number), 0) FROM progress_photos WHERE user_id = ?`
	var week int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&week); err != nil {
		return 0, fmt.Errorf("failed to get max week number: %w", err)
	}
	return week, nil
}
