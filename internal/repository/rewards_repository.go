package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/bgogeta007/health-hustler/internal/models"
)

type RewardsRepository interface {
	GetByUser(ctx context.Context, userID uint64) (*models.UserRewards, error)
	EnsureRow(ctx context.Context, userID uint64) error
	AddPoints(ctx context.Context, userID uint64, delta int) error
	AddBadge(ctx context.Context, userID uint64, badges []models.Badge) error
	Leaderboard(ctx context.Context, limit int) ([]*models.UserRewards, error)
	TotalPoints(ctx context.Context) (int, error)
}

type rewardsRepository struct {
	db *sql.DB
}

func NewRewardsRepository(db *sql.DB) RewardsRepository {
	return &rewardsRepository{db: db}
}

func scanRewards(row interface{ Scan(...interface{}) error }) (*models.UserRewards, error) {
	rw := &models.UserRewards{}
	var badges []byte
	err := row.Scan(&rw.ID, &rw.UserID, &rw.Points, &badges, &rw.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(badges) > 0 {
		if err := json.Unmarshal(badges, &rw.Badges); err != nil {
			return nil, fmt.Errorf("failed to decode badges: %w", err)
		}
	}
	return rw, nil
}

func (r *rewardsRepository) GetByUser(ctx context.Context, userID uint64) (*models.UserRewards, error) {
	query := `
		SELECT id, user_id, points, badges, updated_at
		FROM user_rewards
		WHERE user_id = ?
	`
	rw, err := scanRewards(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rewards: %w", err)
	}
	return rw, nil
}

// EnsureRow creates the zero-point rewards row if the user has none yet
func (r *rewardsRepository) EnsureRow(ctx context.Context, userID uint64) error {
	query := `
		INSERT INTO user_rewards (user_id, points, badges)
		VALUES (?, 0, '[]')
		ON DUPLICATE KEY UPDATE user_id = user_id
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to ensure rewards row: %w", err)
	}
	return nil
}

// AddPoints applies a signed adjustment, flooring the total at zero
func (r *rewardsRepository) AddPoints(ctx context.Context, userID uint64, delta int) error {
	query := `
		UPDATE user_rewards
		SET points = GREATEST(points + ?, 0), updated_at = NOW()
		WHERE user_id = ?
	`
	if _, err := r.db.ExecContext(ctx, query, delta, userID); err != nil {
		return fmt.Errorf("failed to adjust points: %w", err)
	}
	return nil
}

func (r *rewardsRepository) AddBadge(ctx context.Context, userID uint64, badges []models.Badge) error {
	data, err := json.Marshal(badges)
	if err != nil {
		return fmt.Errorf("failed to encode badges: %w", err)
	}

	query := `
		UPDATE user_rewards
		SET badges = ?, updated_at = NOW()
		WHERE user_id = ?
	`
	if _, err := r.db.ExecContext(ctx, query, data, userID); err != nil {
		return fmt.Errorf("failed to update badges: %w", err)
	}
	return nil
}

func (r *rewardsRepository) Leaderboard(ctx context.Context, limit int) ([]*models.UserRewards, error) {
	query := `
		SELECT id, user_id, points, badges, updated_at
		FROM user_rewards
		ORDER BY points DESC, updated_at ASC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var rewards []*models.UserRewards
	for rows.Next() {
		rw, err := scanRewards(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rewards: %w", err)
		}
		rewards = append(rewards, rw)
	}
	return rewards, rows.Err()
}

func (r *rewardsRepository) TotalPoints(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(SUM(points), 0) FROM user_rewards`
	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum points: %w", err)
	}
	return total, nil
}
