package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/pkg/logger"
)

func validAnswers() models.AnswerSet {
	return models.AnswerSet{
		1:  "30",
		2:  "Male",
		3:  "80",
		4:  "180",
		5:  "75",
		6:  "Moderately active (moderate exercise/sports 3-5 days/week)",
		7:  "None",
		8:  "Lose weight",
		9:  "3 meals",
		10: "None",
		11: "30-45 minutes",
		12: "Strength training",
	}
}

func TestValidateAnswers_Valid(t *testing.T) {
	if err := ValidateAnswers(validAnswers()); err != nil {
		t.Fatalf("valid answers rejected: %v", err)
	}
}

func TestValidateAnswers_MissingRequired(t *testing.T) {
	answers := validAnswers()
	delete(answers, 3)
	delete(answers, 8)

	err := ValidateAnswers(answers)
	var verr *AnswerValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected AnswerValidationError, got %v", err)
	}
	if _, ok := verr.Fields[3]; !ok {
		t.Error("missing weight answer not flagged")
	}
	if _, ok := verr.Fields[8]; !ok {
		t.Error("missing goal answer not flagged")
	}
	if len(verr.Fields) != 2 {
		t.Errorf("flagged %d fields, want 2", len(verr.Fields))
	}
}

func TestValidateAnswers_OutOfRange(t *testing.T) {
	answers := validAnswers()
	answers[1] = "11"  // below age min
	answers[4] = "260" // above height max
	answers[3] = "abc" // not a number

	err := ValidateAnswers(answers)
	var verr *AnswerValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected AnswerValidationError, got %v", err)
	}
	for _, id := range []int{1, 3, 4} {
		if _, ok := verr.Fields[id]; !ok {
			t.Errorf("question %d not flagged", id)
		}
	}
}

func TestValidateAnswers_UnknownOption(t *testing.T) {
	answers := validAnswers()
	answers[2] = "Attack helicopter"

	err := ValidateAnswers(answers)
	var verr *AnswerValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected AnswerValidationError, got %v", err)
	}
	if _, ok := verr.Fields[2]; !ok {
		t.Error("invalid gender option not flagged")
	}
}

func TestSubmit_PersistsResultAndSnapshot(t *testing.T) {
	var insertedResult *models.QuizResult
	var upsertedProfile *models.HealthProfile

	repo := &mockQuizRepository{
		insertResultFunc: func(ctx context.Context, result *models.QuizResult) (*models.QuizResult, error) {
			insertedResult = result
			stored := *result
			stored.ID = 42
			return &stored, nil
		},
		upsertHealthProfileFunc: func(ctx context.Context, profile *models.HealthProfile) error {
			upsertedProfile = profile
			return nil
		},
	}
	svc := NewQuizService(repo, logger.NewLogger("test"))

	result, targets, err := svc.Submit(context.Background(), 7, validAnswers())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if result.ID != 42 {
		t.Errorf("result id = %d, want 42", result.ID)
	}
	if insertedResult == nil || upsertedProfile == nil {
		t.Fatal("result row or snapshot was not written")
	}

	wantBMR := 88.362 + 13.397*80 + 4.799*180 - 5.677*30
	if diff := insertedResult.Calculations.BMR - wantBMR; diff > 0.001 || diff < -0.001 {
		t.Errorf("BMR = %f, want %f", insertedResult.Calculations.BMR, wantBMR)
	}
	if insertedResult.Calculations.TDEE != insertedResult.Calculations.BMR*1.55 {
		t.Errorf("TDEE = %f, want BMR*1.55", insertedResult.Calculations.TDEE)
	}
	if upsertedProfile.Calculations != insertedResult.Calculations {
		t.Error("snapshot calculations differ from result calculations")
	}

	// Lose weight: TDEE - 500, 40/30/30 split
	if targets.Split.Protein != 40 || targets.Split.Carbs != 30 || targets.Split.Fats != 30 {
		t.Errorf("split = %+v, want 40/30/30", targets.Split)
	}
}

func TestSubmit_InvalidAnswersNotPersisted(t *testing.T) {
	repo := &mockQuizRepository{
		insertResultFunc: func(ctx context.Context, result *models.QuizResult) (*models.QuizResult, error) {
			t.Fatal("insert must not run on invalid answers")
			return nil, nil
		},
	}
	svc := NewQuizService(repo, logger.NewLogger("test"))

	answers := validAnswers()
	delete(answers, 1)
	if _, _, err := svc.Submit(context.Background(), 7, answers); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestResult_OwnerOnly(t *testing.T) {
	repo := &mockQuizRepository{
		getResultByIDFunc: func(ctx context.Context, id uint64) (*models.QuizResult, error) {
			return &models.QuizResult{ID: id, UserID: 7}, nil
		},
	}
	svc := NewQuizService(repo, logger.NewLogger("test"))

	if _, err := svc.Result(context.Background(), 7, 42); err != nil {
		t.Fatalf("owner fetch failed: %v", err)
	}
	if _, err := svc.Result(context.Background(), 8, 42); !errors.Is(err, ErrResultNotFound) {
		t.Errorf("foreign result fetch = %v, want ErrResultNotFound", err)
	}
}

func TestResult_Missing(t *testing.T) {
	repo := &mockQuizRepository{
		getResultByIDFunc: func(ctx context.Context, id uint64) (*models.QuizResult, error) {
			return nil, nil
		},
	}
	svc := NewQuizService(repo, logger.NewLogger("test"))

	if _, err := svc.Result(context.Background(), 7, 99); !errors.Is(err, ErrResultNotFound) {
		t.Errorf("missing result fetch = %v, want ErrResultNotFound", err)
	}
}

func TestCurrentPlan_NoQuizYet(t *testing.T) {
	repo := &mockQuizRepository{
		getHealthProfileFunc: func(ctx context.Context, userID uint64) (*models.HealthProfile, error) {
			return nil, nil
		},
	}
	svc := NewQuizService(repo, logger.NewLogger("test"))

	profile, targets, err := svc.CurrentPlan(context.Background(), 7)
	if err != nil {
		t.Fatalf("CurrentPlan failed: %v", err)
	}
	if profile != nil || targets != nil {
		t.Error("expected nil plan for user without quiz history")
	}
}
