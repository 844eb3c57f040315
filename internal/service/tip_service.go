package service

import (
	"context"
	"errors"
	"time"

	"github.com/bgogeta007/health-hustler/internal/catalog"
	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/repository"
)

var ErrTipNotFound = errors.New("tip not found")

// DailyTip pairs the rotating tip with the viewer's bookmark state
type DailyTip struct {
	Tip   models.Tip `json:"tip"`
	Saved bool       `json:"saved"`
}

type TipService interface {
	TipOfTheDay(ctx context.Context, userID uint64) (*DailyTip, error)
	ToggleSave(ctx context.Context, userID uint64, tipID int) (bool, error)
	SavedTips(ctx context.Context, userID uint64) ([]*models.SavedTip, error)
}

type tipService struct {
	tipRepo repository.TipRepository
	now     func() time.Time
}

func NewTipService(tipRepo repository.TipRepository) TipService {
	return &tipService{tipRepo: tipRepo, now: time.Now}
}

func (s *tipService) TipOfTheDay(ctx context.Context, userID uint64) (*DailyTip, error) {
	tip := catalog.TipOfTheDay(s.now())
	saved, err := s.tipRepo.IsSaved(ctx, userID, tip.ID)
	if err != nil {
		return nil, err
	}
	return &DailyTip{Tip: tip, Saved: saved}, nil
}

// ToggleSave bookmarks or unbookmarks a tip, snapshotting its content so
// the bookmark outlives catalog edits. Returns the new saved state.
func (s *tipService) ToggleSave(ctx context.Context, userID uint64, tipID int) (bool, error) {
	tip := catalog.TipByID(tipID)
	if tip == nil {
		return false, ErrTipNotFound
	}

	saved, err := s.tipRepo.IsSaved(ctx, userID, tipID)
	if err != nil {
		return false, err
	}
	if saved {
		if err := s.tipRepo.Unsave(ctx, userID, tipID); err != nil {
			return false, err
		}
		return false, nil
	}

	err = s.tipRepo.Save(ctx, &models.SavedTip{
		UserID:      userID,
		TipID:       tip.ID,
		TipTitle:    tip.Title,
		TipContent:  tip.Content,
		TipCategory: tip.Category,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *tipService) SavedTips(ctx context.Context, userID uint64) ([]*models.SavedTip, error) {
	return s.tipRepo.ListByUser(ctx, userID)
}
