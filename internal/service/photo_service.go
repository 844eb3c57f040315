package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/repository"
	"github.com/bgogeta007/health-hustler/internal/storage"
	"github.com/bgogeta007/health-hustler/pkg/logger"
)

var (
	ErrNotPhotoOwner   = errors.New("photo belongs to another user")
	ErrPrivateConflict = errors.New("a private photo cannot be shared with the community")
)

type PhotoService interface {
	Upload(ctx context.Context, userID uint64, data io.Reader, ext, caption string, weekNumber int, isPrivate, communityVisible bool) (*models.ProgressPhoto, error)
	ListMine(ctx context.Context, userID uint64) ([]*models.ProgressPhoto, error)
	SetVisibility(ctx context.Context, userID, photoID uint64, isPrivate, communityVisible bool) (*models.ProgressPhoto, error)
	UpdateCaption(ctx context.Context, userID, photoID uint64, caption string) (*models.ProgressPhoto, error)
	Delete(ctx context.Context, userID, photoID uint64) error
}

type photoService struct {
	photoRepo repository.PhotoRepository
	files     storage.Client
	cdnBase   string
	log       *logger.Logger
}

func NewPhotoService(photoRepo repository.PhotoRepository, files storage.Client, cdnBase string, log *logger.Logger) PhotoService {
	return &photoService{
		photoRepo: photoRepo,
		files:     files,
		cdnBase:   cdnBase,
		log:       log,
	}
}

// Upload stores the image and creates the photo row. A week number of
// zero means "next week", one past the user's current highest.
func (s *photoService) Upload(ctx context.Context, userID uint64, data io.Reader, ext, caption string, weekNumber int, isPrivate, communityVisible bool) (*models.ProgressPhoto, error) {
	if isPrivate && communityVisible {
		return nil, ErrPrivateConflict
	}

	if weekNumber <= 0 {
		max, err := s.photoRepo.MaxWeekNumber(ctx, userID)
		if err != nil {
			return nil, err
		}
		weekNumber = max + 1
	}

	remotePath := fmt.Sprintf("progress/%d/%s%s", userID, uuid.New().String(), ext)
	if err := s.files.Upload(ctx, remotePath, data); err != nil {
		return nil, err
	}

	photo, err := s.photoRepo.Create(ctx, &models.ProgressPhoto{
		UserID:           userID,
		PhotoURL:         s.cdnBase + "/" + remotePath,
		Caption:          caption,
		WeekNumber:       weekNumber,
		IsPrivate:        isPrivate,
		CommunityVisible: communityVisible,
	})
	if err != nil {
		// the row failed, don't leave the file behind
		if derr := s.files.Delete(ctx, remotePath); derr != nil {
			s.log.WithError(derr).Warn("failed to clean up orphaned upload")
		}
		return nil, err
	}

	s.log.WithUserID(userID).WithField("photo_id", photo.ID).Info("progress photo uploaded")
	return photo, nil
}

func (s *photoService) ListMine(ctx context.Context, userID uint64) ([]*models.ProgressPhoto, error) {
	return s.photoRepo.ListByUser(ctx, userID)
}

// SetVisibility enforces the privacy invariant: a photo can never be
// private and community visible at the same time. Callers that flip a
// photo private must clear the community flag in the same call.
func (s *photoService) SetVisibility(ctx context.Context, userID, photoID uint64, isPrivate, communityVisible bool) (*models.ProgressPhoto, error) {
	if _, err := s.ownedPhoto(ctx, userID, photoID); err != nil {
		return nil, err
	}

	if isPrivate && communityVisible {
		return nil, ErrPrivateConflict
	}

	if err := s.photoRepo.SetVisibility(ctx, photoID, isPrivate, communityVisible); err != nil {
		return nil, err
	}
	return s.photoRepo.GetByID(ctx, photoID)
}

func (s *photoService) UpdateCaption(ctx context.Context, userID, photoID uint64, caption string) (*models.ProgressPhoto, error) {
	if _, err := s.ownedPhoto(ctx, userID, photoID); err != nil {
		return nil, err
	}
	if err := s.photoRepo.UpdateCaption(ctx, photoID, caption); err != nil {
		return nil, err
	}
	return s.photoRepo.GetByID(ctx, photoID)
}

func (s *photoService) Delete(ctx context.Context, userID, photoID uint64) error {
	photo, err := s.ownedPhoto(ctx, userID, photoID)
	if err != nil {
		return err
	}

	if err := s.photoRepo.Delete(ctx, photoID); err != nil {
		return err
	}

	if remote, ok := storagePath(photo.PhotoURL, s.cdnBase); ok {
		if err := s.files.Delete(ctx, remote); err != nil {
			s.log.WithError(err).Warn("failed to delete photo file")
		}
	}
	return nil
}

func (s *photoService) ownedPhoto(ctx context.Context, userID, photoID uint64) (*models.ProgressPhoto, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}
	if photo.UserID != userID {
		return nil, ErrNotPhotoOwner
	}
	return photo, nil
}
