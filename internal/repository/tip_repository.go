package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bgogeta007/health-hustler/internal/models"
)

type TipRepository interface {
	Save(ctx context.Context, saved *models.SavedTip) error
	Unsave(ctx context.Context, userID uint64, tipID int) error
	IsSaved(ctx context.Context, userID uint64, tipID int) (bool, error)
	ListByUser(ctx context.Context, userID uint64) ([]*models.SavedTip, error)
}

type tipRepository struct {
	db *sql.DB
}

func NewTipRepository(db *sql.DB) TipRepository {
	return &tipRepository{db: db}
}

// Save stores the tip's content alongside the bookmark so saved tips
// survive catalog edits
func (r *tipRepository) Save(ctx context.Context, saved *models.SavedTip) error {
	query := `
		INSERT INTO saved_tips (user_id, tip_id, tip_title, tip_content, tip_category)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE tip_title = VALUES(tip_title)
	`
	_, err := r.db.ExecContext(ctx, query,
		saved.UserID, saved.TipID, saved.TipTitle, saved.TipContent, saved.TipCategory,
	)
	if err != nil {
		return fmt.Errorf("failed to save tip: %w", err)
	}
	return nil
}

func (r *tipRepository) Unsave(ctx context.Context, userID uint64, tipID int) error {
	query := `DELETE FROM saved_tips WHERE user_id = ? AND tip_id = ?`
	if _, err := r.db.ExecContext(ctx, query, userID, tipID); err != nil {
		return fmt.Errorf("failed to unsave tip: %w", err)
	}
	return nil
}

func (r *tipRepository) IsSaved(ctx context.Context, userID uint64, tipID int) (bool, error) {
	query := `SELECT 1 FROM saved_tips WHERE user_id = ? AND tip_id = ?`
	var one int
	err := r.db.QueryRowContext(ctx, query, userID, tipID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check saved tip: %w", err)
	}
	return true, nil
}

func (r *tipRepository) ListByUser(ctx context.Context, userID uint64) ([]*models.SavedTip, error) {
	query := `
		SELECT id, user_id, tip_id, tip_title, tip_content, tip_category, created_at
		FROM saved_tips
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved tips: %w", err)
	}
	defer rows.Close()

	var tips []*models.SavedTip
	for rows.Next() {
		tip := &models.SavedTip{}
		err := rows.Scan(&tip.ID, &tip.UserID, &tip.TipID, &tip.TipTitle, &tip.TipContent, &tip.TipCategory, &tip.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved tip: %w", err)
		}
		tips = append(tips, tip)
	}
	return tips, rows.Err()
}
