package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bgogeta007/health-hustler/internal/models"
)

// PlatformStats is the admin dashboard overview payload
type PlatformStats struct {
	TotalUsers       int `json:"total_users"`
	TotalPhotos      int `json:"total_photos"`
	CommunityPhotos  int `json:"community_photos"`
	ActiveChallenges int `json:"active_challenges"`
	Completions      int `json:"completions"`
	QuizSubmissions  int `json:"quiz_submissions"`
	PointsAwarded    int `json:"points_awarded"`
}

type AdminRepository interface {
	IsAdmin(ctx context.Context, userID uint64) (bool, error)
	Grant(ctx context.Context, userID uint64, role string) error
	Revoke(ctx context.Context, userID uint64) error
	List(ctx context.Context) ([]*models.AdminUser, error)
	Stats(ctx context.Context) (*PlatformStats, error)
}

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) IsAdmin(ctx context.Context, userID uint64) (bool, error) {
	query := `SELECT 1 FROM admin_users WHERE user_id = ?`
	var one int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check admin: %w", err)
	}
	return true, nil
}

func (r *adminRepository) Grant(ctx context.Context, userID uint64, role string) error {
	query := `
		INSERT INTO admin_users (user_id, role)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE role = VALUES(role)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, role); err != nil {
		return fmt.Errorf("failed to grant admin: %w", err)
	}
	return nil
}

func (r *adminRepository) Revoke(ctx context.Context, userID uint64) error {
	query := `DELETE FROM admin_users WHERE user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to revoke admin: %w", err)
	}
	return nil
}

func (r *adminRepository) List(ctx context.Context) ([]*models.AdminUser, error) {
	query := `SELECT user_id, role, created_at FROM admin_users ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []*models.AdminUser
	for rows.Next() {
		a := &models.AdminUser{}
		if err := rows.Scan(&a.UserID, &a.Role, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *adminRepository) Stats(ctx context.Context) (*PlatformStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM profiles),
			(SELECT COUNT(*) FROM progress_photos),
			(SELECT COUNT(*) FROM progress_photos WHERE is_private = FALSE AND community_visible = TRUE),
			(SELECT COUNT(*) FROM challenges WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM challenge_participants WHERE completed = TRUE),
			(SELECT COUNT(*) FROM quiz_results),
			(SELECT COALESCE(SUM(points), 0) FROM user_rewards)
	`
	stats := &PlatformStats{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalUsers, &stats.TotalPhotos, &stats.CommunityPhotos,
		&stats.ActiveChallenges, &stats.Completions, &stats.QuizSubmissions,
		&stats.PointsAwarded,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load platform stats: %w", err)
	}
	return stats, nil
}
