package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bgogeta007/health-hustler/internal/models"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*models.PlatformSettings, error)
	Update(ctx context.Context, settings *models.PlatformSettings) error
}

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the single settings row, or nil if it was never seeded
func (r *settingsRepository) Get(ctx context.Context) (*models.PlatformSettings, error) {
	query := `
		SELECT id, platform_name, theme_color, logo_url, favicon_url, updated_at
		FROM platform_settings
		ORDER BY id
		LIMIT 1
	`
	s := &models.PlatformSettings{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.ID, &s.PlatformName, &s.ThemeColor, &s.LogoURL, &s.FaviconURL, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get platform settings: %w", err)
	}
	return s, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *models.PlatformSettings) error {
	query := `
		INSERT INTO platform_settings (id, platform_name, theme_color, logo_url, favicon_url)
		VALUES (1, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			platform_name = VALUES(platform_name),
			theme_color = VALUES(theme_color),
			logo_url = VALUES(logo_url),
			favicon_url = VALUES(favicon_url),
			updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query,
		settings.PlatformName, settings.ThemeColor, settings.LogoURL, settings.FaviconURL,
	)
	if err != nil {
		return fmt.Errorf("failed to update platform settings: %w", err)
	}
	return nil
}
