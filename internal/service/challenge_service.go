package service

import (
	"context"
	"errors"
	"time"

	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/repository"
	"github.com/bgogeta007/health-hustler/pkg/logger"
)

var (
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrChallengeInactive  = errors.New("challenge is not active")
	ErrAlreadyJoined      = errors.New("already participating in this challenge")
	ErrNotJoined          = errors.New("not participating in this challenge")
	ErrChallengeCompleted = errors.New("challenge is already completed")
	ErrInvalidProgress    = errors.New("progress increment must be positive")
)

const leaderboardLimit = 20

type ChallengeService interface {
	List(ctx context.Context, viewerID uint64) ([]*models.ChallengeView, error)
	Join(ctx context.Context, challengeID, userID uint64) (*models.ChallengeParticipant, error)
	Quit(ctx context.Context, challengeID, userID uint64) error
	LogProgress(ctx context.Context, challengeID, userID uint64, increment int) (*models.ChallengeParticipant, error)
	Rewards(ctx context.Context, userID uint64) (*models.UserRewards, error)
	Leaderboard(ctx context.Context) ([]*models.UserRewards, error)
}

type challengeService struct {
	challengeRepo repository.ChallengeRepository
	rewardsRepo   repository.RewardsRepository
	log           *logger.Logger
}

func NewChallengeService(challengeRepo repository.ChallengeRepository, rewardsRepo repository.RewardsRepository, log *logger.Logger) ChallengeService {
	return &challengeService{
		challengeRepo: challengeRepo,
		rewardsRepo:   rewardsRepo,
		log:           log,
	}
}

// List returns the active challenges decorated with participant counts
// and the viewer's own participation, batched per page.
func (s *challengeService) List(ctx context.Context, viewerID uint64) ([]*models.ChallengeView, error) {
	challenges, err := s.challengeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(challenges) == 0 {
		return []*models.ChallengeView{}, nil
	}

	ids := make([]uint64, len(challenges))
	for i, c := range challenges {
		ids[i] = c.ID
	}

	counts, err := s.challengeRepo.ParticipantCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	participations, err := s.challengeRepo.ListParticipations(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	mine := make(map[uint64]*models.ChallengeParticipant, len(participations))
	for _, p := range participations {
		mine[p.ChallengeID] = p
	}

	views := make([]*models.ChallengeView, 0, len(challenges))
	for _, c := range challenges {
		views = append(views, &models.ChallengeView{
			Challenge:         *c,
			ParticipantsCount: counts[c.ID],
			UserProgress:      mine[c.ID],
		})
	}
	return views, nil
}

func (s *challengeService) Join(ctx context.Context, challengeID, userID uint64) (*models.ChallengeParticipant, error) {
	challenge, err := s.activeChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	existing, err := s.challengeRepo.GetParticipant(ctx, challenge.ID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyJoined
	}

	participant, err := s.challengeRepo.Join(ctx, challenge.ID, userID)
	if err != nil {
		return nil, err
	}
	s.log.WithUserID(userID).WithField("challenge_id", challengeID).Info("challenge joined")
	return participant, nil
}

// Quit removes an in-progress participation. A completed participation
// is terminal and cannot be quit.
func (s *challengeService) Quit(ctx context.Context, challengeID, userID uint64) error {
	participant, err := s.challengeRepo.GetParticipant(ctx, challengeID, userID)
	if err != nil {
		return err
	}
	if participant == nil {
		return ErrNotJoined
	}
	if participant.Completed {
		return ErrChallengeCompleted
	}
	return s.challengeRepo.Quit(ctx, challengeID, userID)
}

// LogProgress advances the participant's counter. Reaching the
// challenge's target completes the participation and credits the reward
// points in the same transaction; completion is one-way.
func (s *challengeService) LogProgress(ctx context.Context, challengeID, userID uint64, increment int) (*models.ChallengeParticipant, error) {
	if increment <= 0 {
		return nil, ErrInvalidProgress
	}

	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}

	participant, err := s.challengeRepo.GetParticipant(ctx, challengeID, userID)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrNotJoined
	}
	if participant.Completed {
		return nil, ErrChallengeCompleted
	}

	progress := participant.Progress + increment
	streak := participant.StreakCount
	if challenge.Type == models.ChallengeTypeStreak || challenge.Type == models.ChallengeTypeDaily {
		streak++
	}

	if progress >= challenge.Requirements.Target {
		progress = challenge.Requirements.Target
		err = s.challengeRepo.CompleteAndAward(ctx, participant.ID, userID, progress, streak, challenge.Points)
		if err != nil {
			return nil, err
		}
		s.log.WithUserID(userID).
			WithField("challenge_id", challengeID).
			WithField("points", challenge.Points).
			Info("challenge completed")
	} else {
		if err := s.challengeRepo.UpdateProgress(ctx, participant.ID, progress, streak); err != nil {
			return nil, err
		}
	}

	return s.challengeRepo.GetParticipant(ctx, challengeID, userID)
}

// Rewards returns the user's points and badges, creating the zero row on
// first access
func (s *challengeService) Rewards(ctx context.Context, userID uint64) (*models.UserRewards, error) {
	rewards, err := s.rewardsRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rewards == nil {
		if err := s.rewardsRepo.EnsureRow(ctx, userID); err != nil {
			return nil, err
		}
		rewards, err = s.rewardsRepo.GetByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
	}
	return rewards, nil
}

func (s *challengeService) Leaderboard(ctx context.Context) ([]*models.UserRewards, error) {
	return s.rewardsRepo.Leaderboard(ctx, leaderboardLimit)
}

func (s *challengeService) activeChallenge(ctx context.Context, challengeID uint64) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge == nil {
		return nil, ErrChallengeNotFound
	}
	now := time.Now()
	if !challenge.IsActive || now.After(challenge.EndDate) {
		return nil, ErrChallengeInactive
	}
	return challenge, nil
}
