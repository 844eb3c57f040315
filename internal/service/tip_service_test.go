package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bgogeta007/health-hustler/internal/models"
)

func TestToggleSave_SnapshotsTipContent(t *testing.T) {
	var saved *models.SavedTip
	repo := &mockTipRepository{
		isSavedFunc: func(ctx context.Context, userID uint64, tipID int) (bool, error) {
			return false, nil
		},
		saveFunc: func(ctx context.Context, s *models.SavedTip) error {
			saved = s
			return nil
		},
	}
	svc := NewTipService(repo)

	nowSaved, err := svc.ToggleSave(context.Background(), 7, 2)
	if err != nil {
		t.Fatalf("ToggleSave failed: %v", err)
	}
	if !nowSaved {
		t.Error("expected saved=true after first toggle")
	}
	if saved.TipTitle != "Protein Timing" || saved.TipCategory != "nutrition" {
		t.Errorf("snapshot = %+v", saved)
	}
	if saved.TipContent == "" {
		t.Error("tip content was not snapshotted")
	}
}

func TestToggleSave_SecondToggleUnsaves(t *testing.T) {
	unsaved := false
	repo := &mockTipRepository{
		isSavedFunc: func(ctx context.Context, userID uint64, tipID int) (bool, error) {
			return true, nil
		},
		unsaveFunc: func(ctx context.Context, userID uint64, tipID int) error {
			unsaved = true
			return nil
		},
	}
	svc := NewTipService(repo)

	nowSaved, err := svc.ToggleSave(context.Background(), 7, 2)
	if err != nil {
		t.Fatalf("ToggleSave failed: %v", err)
	}
	if nowSaved || !unsaved {
		t.Errorf("saved=%v unsaved=%v, want false/true", nowSaved, unsaved)
	}
}

func TestToggleSave_UnknownTip(t *testing.T) {
	svc := NewTipService(&mockTipRepository{})
	if _, err := svc.ToggleSave(context.Background(), 7, 999); !errors.Is(err, ErrTipNotFound) {
		t.Fatalf("err = %v, want ErrTipNotFound", err)
	}
}
