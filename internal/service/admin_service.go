package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/repository"
	"github.com/bgogeta007/health-hustler/pkg/logger"
)

var (
	ErrNotAdmin         = errors.New("administrator access required")
	ErrInvalidChallenge = errors.New("invalid challenge")
)

type AdminService interface {
	IsAdmin(ctx context.Context, userID uint64) (bool, error)
	Stats(ctx context.Context) (*repository.PlatformStats, error)
	ListUsers(ctx context.Context) ([]*models.Profile, error)
	GrantAdmin(ctx context.Context, userID uint64, role string) error
	RevokeAdmin(ctx context.Context, userID uint64) error
	ListAdmins(ctx context.Context) ([]*models.AdminUser, error)

	ListChallenges(ctx context.Context) ([]*models.Challenge, error)
	CreateChallenge(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error)
	UpdateChallenge(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error)
	SetChallengeActive(ctx context.Context, id uint64, active bool) error

	ListRewards(ctx context.Context, limit int) ([]*models.UserRewards, error)
	AdjustPoints(ctx context.Context, userID uint64, delta int) (*models.UserRewards, error)
	GrantBadge(ctx context.Context, userID uint64, badge models.Badge) (*models.UserRewards, error)
}

type adminService struct {
	adminRepo     repository.AdminRepository
	userRepo      repository.UserRepository
	challengeRepo repository.ChallengeRepository
	rewardsRepo   repository.RewardsRepository
	log           *logger.Logger
}

func NewAdminService(
	adminRepo repository.AdminRepository,
	userRepo repository.UserRepository,
	challengeRepo repository.ChallengeRepository,
	rewardsRepo repository.RewardsRepository,
	log *logger.Logger,
) AdminService {
	return &adminService{
		adminRepo:     adminRepo,
		userRepo:      userRepo,
		challengeRepo: challengeRepo,
		rewardsRepo:   rewardsRepo,
		log:           log,
	}
}

func (s *adminService) IsAdmin(ctx context.Context, userID uint64) (bool, error) {
	return s.adminRepo.IsAdmin(ctx, userID)
}

func (s *adminService) Stats(ctx context.Context) (*repository.PlatformStats, error) {
	return s.adminRepo.Stats(ctx)
}

func (s *adminService) ListUsers(ctx context.Context) ([]*models.Profile, error) {
	return s.userRepo.List(ctx)
}

func (s *adminService) GrantAdmin(ctx context.Context, userID uint64, role string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if role == "" {
		role = "admin"
	}
	if err := s.adminRepo.Grant(ctx, userID, role); err != nil {
		return err
	}
	s.log.WithUserID(userID).WithField("role", role).Info("admin granted")
	return nil
}

func (s *adminService) RevokeAdmin(ctx context.Context, userID uint64) error {
	return s.adminRepo.Revoke(ctx, userID)
}

func (s *adminService) ListAdmins(ctx context.Context) ([]*models.AdminUser, error) {
	return s.adminRepo.List(ctx)
}

func (s *adminService) ListChallenges(ctx context.Context) ([]*models.Challenge, error) {
	return s.challengeRepo.ListAll(ctx)
}

func (s *adminService) CreateChallenge(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error) {
	if err := validateChallenge(challenge); err != nil {
		return nil, err
	}
	return s.challengeRepo.Create(ctx, challenge)
}

func (s *adminService) UpdateChallenge(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error) {
	if err := validateChallenge(challenge); err != nil {
		return nil, err
	}
	existing, err := s.challengeRepo.GetByID(ctx, challenge.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrChallengeNotFound
	}
	if err := s.challengeRepo.Update(ctx, challenge); err != nil {
		return nil, err
	}
	return s.challengeRepo.GetByID(ctx, challenge.ID)
}

func (s *adminService) SetChallengeActive(ctx context.Context, id uint64, active bool) error {
	existing, err := s.challengeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrChallengeNotFound
	}
	return s.challengeRepo.SetActive(ctx, id, active)
}

func (s *adminService) ListRewards(ctx context.Context, limit int) ([]*models.UserRewards, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.rewardsRepo.Leaderboard(ctx, limit)
}

// AdjustPoints applies a manual signed correction to a user's total
func (s *adminService) AdjustPoints(ctx context.Context, userID uint64, delta int) (*models.UserRewards, error) {
	if err := s.rewardsRepo.EnsureRow(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.rewardsRepo.AddPoints(ctx, userID, delta); err != nil {
		return nil, err
	}
	s.log.WithUserID(userID).WithField("delta", delta).Info("points adjusted")
	return s.rewardsRepo.GetByUser(ctx, userID)
}

func (s *adminService) GrantBadge(ctx context.Context, userID uint64, badge models.Badge) (*models.UserRewards, error) {
	if err := s.rewardsRepo.EnsureRow(ctx, userID); err != nil {
		return nil, err
	}
	rewards, err := s.rewardsRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, b := range rewards.Badges {
		if b.ID == badge.ID {
			return rewards, nil
		}
	}
	badge.EarnedAt = time.Now()

	badges := append(rewards.Badges, badge)
	if err := s.rewardsRepo.AddBadge(ctx, userID, badges); err != nil {
		return nil, err
	}
	return s.rewardsRepo.GetByUser(ctx, userID)
}

func validateChallenge(c *models.Challenge) error {
	switch c.Type {
	case models.ChallengeTypeDaily, models.ChallengeTypeWeekly, models.ChallengeTypeStreak, models.ChallengeTypeGoal:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidChallenge, c.Type)
	}
	switch c.Difficulty {
	case models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced:
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidChallenge, c.Difficulty)
	}
	if c.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidChallenge)
	}
	if c.Points <= 0 {
		return fmt.Errorf("%w: points must be positive", ErrInvalidChallenge)
	}
	if c.Requirements.Target <= 0 {
		return fmt.Errorf("%w: requirements target must be positive", ErrInvalidChallenge)
	}
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalidChallenge)
	}
	return nil
}
