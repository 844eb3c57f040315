package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/repository"
	"github.com/bgogeta007/health-hustler/internal/storage"
	"github.com/bgogeta007/health-hustler/pkg/logger"
)

// defaults used until an admin saves the settings row
var defaultSettings = models.PlatformSettings{
	ID:           1,
	PlatformName: "GreenLean",
	ThemeColor:   "#16a34a",
}

type SettingsService interface {
	Get(ctx context.Context) (*models.PlatformSettings, error)
	Update(ctx context.Context, settings *models.PlatformSettings) (*models.PlatformSettings, error)
	UploadLogo(ctx context.Context, data io.Reader, ext string) (*models.PlatformSettings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	cache        repository.CacheRepository
	files        storage.Client
	cdnBase      string
	cacheTTL     time.Duration
	log          *logger.Logger
}

func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	cache repository.CacheRepository,
	files storage.Client,
	cdnBase string,
	cacheTTL time.Duration,
	log *logger.Logger,
) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		cache:        cache,
		files:        files,
		cdnBase:      cdnBase,
		cacheTTL:     cacheTTL,
		log:          log,
	}
}

// Get serves from the Redis cache when possible; every page load reads
// settings, the row almost never changes.
func (s *settingsService) Get(ctx context.Context) (*models.PlatformSettings, error) {
	cached, err := s.cache.GetSettings(ctx)
	if err != nil {
		s.log.WithError(err).Warn("settings cache read failed")
	}
	if cached != nil {
		return cached, nil
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		copy := defaultSettings
		settings = &copy
	}

	if err := s.cache.SetSettings(ctx, settings, s.cacheTTL); err != nil {
		s.log.WithError(err).Warn("settings cache write failed")
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, settings *models.PlatformSettings) (*models.PlatformSettings, error) {
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	if err := s.cache.InvalidateSettings(ctx); err != nil {
		s.log.WithError(err).Warn("settings cache invalidation failed")
	}
	return s.settingsRepo.Get(ctx)
}

// UploadLogo stores the new logo and points the settings row at it; the
// previous file is deleted best effort after the row is updated
func (s *settingsService) UploadLogo(ctx context.Context, data io.Reader, ext string) (*models.PlatformSettings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	remotePath := fmt.Sprintf("branding/%s%s", uuid.New().String(), ext)
	if err := s.files.Upload(ctx, remotePath, data); err != nil {
		return nil, err
	}

	url := s.cdnBase + "/" + remotePath
	updated := *current
	updated.LogoURL = &url
	settings, err := s.Update(ctx, &updated)
	if err != nil {
		return nil, err
	}

	if current.LogoURL != nil {
		if old, ok := storagePath(*current.LogoURL, s.cdnBase); ok {
			if err := s.files.Delete(ctx, old); err != nil {
				s.log.WithError(err).Warn("failed to delete old logo")
			}
		}
	}
	return settings, nil
}
