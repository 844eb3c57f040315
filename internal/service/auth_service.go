package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/repository"
	"github.com/bgogeta007/health-hustler/internal/storage"
	"github.com/bgogeta007/health-hustler/pkg/logger"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService interface {
	Register(ctx context.Context, email, username, fullName, password string) (*models.Profile, string, error)
	Login(ctx context.Context, email, password string) (*models.Profile, string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (uint64, error)
	GetProfile(ctx context.Context, userID uint64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID uint64, fullName, username string) (*models.Profile, error)
	ReplaceAvatar(ctx context.Context, userID uint64, data io.Reader, ext string) (*models.Profile, error)
	RemoveAvatar(ctx context.Context, userID uint64) (*models.Profile, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	files       storage.Client
	cdnBase     string
	sessionTTL  time.Duration
	log         *logger.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	files storage.Client,
	cdnBase string,
	sessionTTL time.Duration,
	log *logger.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		files:       files,
		cdnBase:     cdnBase,
		sessionTTL:  sessionTTL,
		log:         log,
	}
}

func (s *authService) Register(ctx context.Context, email, username, fullName, password string) (*models.Profile, string, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	existing, err = s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	profile, err := s.userRepo.Create(ctx, email, username, fullName, string(hash))
	if err != nil {
		return nil, "", err
	}

	token, err := s.sessionRepo.Create(ctx, profile.ID, s.sessionTTL)
	if err != nil {
		return nil, "", err
	}

	s.log.WithUserID(profile.ID).Info("user registered")
	return profile, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Profile, string, error) {
	profile, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if profile == nil {
		return nil, "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessionRepo.Create(ctx, profile.ID, s.sessionTTL)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.Delete(ctx, token)
}

// Authenticate resolves a bearer token to a user id, refreshing the
// session TTL on each hit. Returns 0 for unknown tokens.
func (s *authService) Authenticate(ctx context.Context, token string) (uint64, error) {
	userID, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		return 0, err
	}
	if userID == 0 {
		return 0, nil
	}
	if err := s.sessionRepo.Refresh(ctx, token, s.sessionTTL); err != nil {
		s.log.WithError(err).Warn("failed to refresh session")
	}
	return userID, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uint64) (*models.Profile, error) {
	profile, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}
	return profile, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uint64, fullName, username string) (*models.Profile, error) {
	current, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username != current.Username {
		taken, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if taken != nil && taken.ID != userID {
			return nil, ErrUsernameTaken
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, fullName, username); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// ReplaceAvatar uploads the new image before touching the old one, so a
// failed upload leaves the previous avatar intact.
func (s *authService) ReplaceAvatar(ctx context.Context, userID uint64, data io.Reader, ext string) (*models.Profile, error) {
	current, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	remotePath := fmt.Sprintf("avatars/%d/%s%s", userID, uuid.New().String(), ext)
	if err := s.files.Upload(ctx, remotePath, data); err != nil {
		return nil, err
	}

	url := s.cdnBase + "/" + remotePath
	if err := s.userRepo.UpdateAvatarURL(ctx, userID, &url); err != nil {
		return nil, err
	}

	if current.AvatarURL != nil {
		if old, ok := storagePath(*current.AvatarURL, s.cdnBase); ok {
			if err := s.files.Delete(ctx, old); err != nil {
				s.log.WithError(err).Warn("failed to delete old avatar")
			}
		}
	}

	return s.userRepo.GetByID(ctx, userID)
}

// RemoveAvatar clears the column before touching the file, so a failed
// file delete never strands a dangling URL
func (s *authService) RemoveAvatar(ctx context.Context, userID uint64) (*models.Profile, error) {
	current, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current.AvatarURL == nil {
		return current, nil
	}

	if err := s.userRepo.UpdateAvatarURL(ctx, userID, nil); err != nil {
		return nil, err
	}

	if old, ok := storagePath(*current.AvatarURL, s.cdnBase); ok {
		if err := s.files.Delete(ctx, old); err != nil {
			s.log.WithError(err).Warn("failed to delete avatar file")
		}
	}
	return s.userRepo.GetByID(ctx, userID)
}
