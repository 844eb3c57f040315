package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bgogeta007/health-hustler/internal/catalog"
	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/nutrition"
	"github.com/bgogeta007/health-hustler/internal/repository"
	"github.com/bgogeta007/health-hustler/pkg/logger"
)

var ErrResultNotFound = errors.New("quiz result not found")

// AnswerValidationError carries per-question messages for a rejected
// quiz submission
type AnswerValidationError struct {
	Fields map[int]string
}

func (e *AnswerValidationError) Error() string {
	return fmt.Sprintf("invalid answers for %d question(s)", len(e.Fields))
}

type QuizService interface {
	Questions() []models.Question
	Submit(ctx context.Context, userID uint64, answers models.AnswerSet) (*models.QuizResult, *nutrition.PlanTargets, error)
	History(ctx context.Context, userID uint64) ([]*models.QuizResult, error)
	Result(ctx context.Context, userID, resultID uint64) (*models.QuizResult, error)
	CurrentPlan(ctx context.Context, userID uint64) (*models.HealthProfile, *nutrition.PlanTargets, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
	log      *logger.Logger
}

func NewQuizService(quizRepo repository.QuizRepository, log *logger.Logger) QuizService {
	return &quizService{quizRepo: quizRepo, log: log}
}

func (s *quizService) Questions() []models.Question {
	return catalog.Questions
}

// Submit validates the full answer set, derives the health calculation,
// stores the immutable result row and overwrites the user's current-plan
// snapshot.
func (s *quizService) Submit(ctx context.Context, userID uint64, answers models.AnswerSet) (*models.QuizResult, *nutrition.PlanTargets, error) {
	if err := ValidateAnswers(answers); err != nil {
		return nil, nil, err
	}

	input := answersToInput(answers)
	calc, err := nutrition.Calculate(input)
	if err != nil {
		// ValidateAnswers already covered the calculator's required
		// subset, so this only fires on an internal inconsistency
		return nil, nil, fmt.Errorf("failed to compute health metrics: %w", err)
	}

	result, err := s.quizRepo.InsertResult(ctx, &models.QuizResult{
		UserID:       userID,
		Answers:      answers,
		Calculations: calc,
	})
	if err != nil {
		return nil, nil, err
	}

	err = s.quizRepo.UpsertHealthProfile(ctx, &models.HealthProfile{
		UserID:       userID,
		Answers:      answers,
		Calculations: calc,
	})
	if err != nil {
		return nil, nil, err
	}

	targets := nutrition.Targets(calc, answers[8])
	s.log.WithUserID(userID).Info("quiz submitted")
	return result, &targets, nil
}

func (s *quizService) History(ctx context.Context, userID uint64) ([]*models.QuizResult, error) {
	return s.quizRepo.ListResultsByUser(ctx, userID)
}

// Result fetches one past submission. Another user's result reads as
// not-found rather than forbidden.
func (s *quizService) Result(ctx context.Context, userID, resultID uint64) (*models.QuizResult, error) {
	result, err := s.quizRepo.GetResultByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result == nil || result.UserID != userID {
		return nil, ErrResultNotFound
	}
	return result, nil
}

// CurrentPlan returns nil without error when the user never took the quiz
func (s *quizService) CurrentPlan(ctx context.Context, userID uint64) (*models.HealthProfile, *nutrition.PlanTargets, error) {
	profile, err := s.quizRepo.GetHealthProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, nil
	}
	targets := nutrition.Targets(profile.Calculations, profile.Answers[8])
	return profile, &targets, nil
}

// ValidateAnswers checks every answer against its question definition:
// required presence, numeric range, and option membership.
func ValidateAnswers(answers models.AnswerSet) error {
	fields := make(map[int]string)

	for _, q := range catalog.Questions {
		raw, ok := answers[q.ID]
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			if q.Required {
				fields[q.ID] = "answer is required"
			}
			continue
		}

		switch q.Type {
		case models.QuestionTypeNumber:
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				fields[q.ID] = "answer must be a number"
				continue
			}
			if q.Min != nil && value < *q.Min {
				fields[q.ID] = fmt.Sprintf("answer must be at least %g", *q.Min)
			} else if q.Max != nil && value > *q.Max {
				fields[q.ID] = fmt.Sprintf("answer must be at most %g", *q.Max)
			}
		case models.QuestionTypeSelect, models.QuestionTypeRadio:
			if !containsOption(q.Options, raw) {
				fields[q.ID] = "answer is not one of the available options"
			}
		}
	}

	// ignore answers for question ids outside the quiz
	for id := range answers {
		if catalog.QuestionByID(id) == nil {
			delete(answers, id)
		}
	}

	if len(fields) > 0 {
		return &AnswerValidationError{Fields: fields}
	}
	return nil
}

func containsOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

// answersToInput pulls the calculator's fixed answer subset out of the
// full set. Question ids: 1 age, 2 gender, 3 weight, 4 height, 6
// activity level, 8 goal.
func answersToInput(answers models.AnswerSet) nutrition.Input {
	age, _ := strconv.ParseFloat(answers[1], 64)
	weight, _ := strconv.ParseFloat(answers[3], 64)
	height, _ := strconv.ParseFloat(answers[4], 64)

	return nutrition.Input{
		Age:           age,
		Gender:        answers[2],
		WeightKG:      weight,
		HeightCM:      height,
		ActivityLevel: answers[6],
		Goal:          answers[8],
	}
}
