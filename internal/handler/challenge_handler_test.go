package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/service"
)

type mockChallengeService struct {
	participant *models.ChallengeParticipant
	joinErr     error
	progressErr error
}

func (m *mockChallengeService) List(ctx context.Context, viewerID uint64) ([]*models.ChallengeView, error) {
	return []*models.ChallengeView{}, nil
}

func (m *mockChallengeService) Join(ctx context.Context, challengeID, userID uint64) (*models.ChallengeParticipant, error) {
	return m.participant, m.joinErr
}

func (m *mockChallengeService) Quit(ctx context.Context, challengeID, userID uint64) error {
	return nil
}

func (m *mockChallengeService) LogProgress(ctx context.Context, challengeID, userID uint64, increment int) (*models.ChallengeParticipant, error) {
	return m.participant, m.progressErr
}

func (m *mockChallengeService) Rewards(ctx context.Context, userID uint64) (*models.UserRewards, error) {
	return &models.UserRewards{UserID: userID}, nil
}

func (m *mockChallengeService) Leaderboard(ctx context.Context) ([]*models.UserRewards, error) {
	return []*models.UserRewards{}, nil
}

func newChallengeRequest(method, path, body string, vars map[string]string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	return mux.SetURLVars(req, vars)
}

func TestChallengeHandler_Join(t *testing.T) {
	tests := []struct {
		name         string
		challengeID  string
		joinErr      error
		expectStatus int
	}{
		{
			name:         "successful join",
			challengeID:  "3",
			expectStatus: http.StatusCreated,
		},
		{
			name:         "invalid id",
			challengeID:  "abc",
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "unknown challenge",
			challengeID:  "99",
			joinErr:      service.ErrChallengeNotFound,
			expectStatus: http.StatusNotFound,
		},
		{
			name:         "already joined",
			challengeID:  "3",
			joinErr:      service.ErrAlreadyJoined,
			expectStatus: http.StatusConflict,
		},
		{
			name:         "inactive challenge",
			challengeID:  "3",
			joinErr:      service.ErrChallengeInactive,
			expectStatus: http.StatusPreconditionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mockChallengeService{
				participant: &models.ChallengeParticipant{ID: 1, ChallengeID: 3},
				joinErr:     tt.joinErr,
			}
			h := NewChallengeHandler(mockService)

			req := newChallengeRequest(http.MethodPost, "/api/challenges/"+tt.challengeID+"/join", "", map[string]string{"id": tt.challengeID})
			rec := httptest.NewRecorder()
			h.Join(rec, req)

			if rec.Code != tt.expectStatus {
				t.Errorf("expected status %d, got %d (%s)", tt.expectStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestChallengeHandler_LogProgress(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		progressErr  error
		expectStatus int
	}{
		{
			name:         "default increment with empty body",
			body:         "",
			expectStatus: http.StatusOK,
		},
		{
			name:         "explicit increment",
			body:         `{"increment":3}`,
			expectStatus: http.StatusOK,
		},
		{
			name:         "completed participation is terminal",
			body:         `{"increment":1}`,
			progressErr:  service.ErrChallengeCompleted,
			expectStatus: http.StatusPreconditionFailed,
		},
		{
			name:         "non-positive increment",
			body:         `{"increment":-1}`,
			progressErr:  service.ErrInvalidProgress,
			expectStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mockChallengeService{
				participant: &models.ChallengeParticipant{ID: 1, ChallengeID: 3, Progress: 4},
				progressErr: tt.progressErr,
			}
			h := NewChallengeHandler(mockService)

			req := newChallengeRequest(http.MethodPost, "/api/challenges/3/progress", tt.body, map[string]string{"id": "3"})
			rec := httptest.NewRecorder()
			h.LogProgress(rec, req)

			if rec.Code != tt.expectStatus {
				t.Errorf("expected status %d, got %d (%s)", tt.expectStatus, rec.Code, rec.Body.String())
			}
		})
	}
}
