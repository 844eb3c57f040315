package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/bgogeta007/health-hustler/internal/models"
)

type QuizRepository interface {
	InsertResult(ctx context.Context, result *models.QuizResult) (*models.QuizResult, error)
	GetResultByID(ctx context.Context, id uint64) (*models.QuizResult, error)
	ListResultsByUser(ctx context.Context, userID uint64) ([]*models.QuizResult, error)
	UpsertHealthProfile(ctx context.Context, profile *models.HealthProfile) error
	GetHealthProfile(ctx context.Context, userID uint64) (*models.HealthProfile, error)
}

type quizRepository struct {
	db *sql.DB
}

func NewQuizRepository(db *sql.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) InsertResult(ctx context.Context, result *models.QuizResult) (*models.QuizResult, error) {
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}
	calcs, err := json.Marshal(result.Calculations)
	if err != nil {
		return nil, fmt.Errorf("failed to encode calculations: %w", err)
	}

	query := `
		INSERT INTO quiz_results (user_id, answers, calculations)
		VALUES (?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query, result.UserID, answers, calcs)
	if err != nil {
		return nil, fmt.Errorf("failed to insert quiz result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz result id: %w", err)
	}
	return r.GetResultByID(ctx, uint64(id))
}

func (r *quizRepository) GetResultByID(ctx context.Context, id uint64) (*models.QuizResult, error) {
	query := `
		SELECT id, user_id, answers, calculations, created_at
		FROM quiz_results
		WHERE id = ?
	`
	result := &models.QuizResult{}
	var answers, calcs []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&result.ID, &result.UserID, &answers, &calcs, &result.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz result: %w", err)
	}

	if err := json.Unmarshal(answers, &result.Answers); err != nil {
		return nil, fmt.Errorf("failed to decode answers: %w", err)
	}
	if err := json.Unmarshal(calcs, &result.Calculations); err != nil {
		return nil, fmt.Errorf("failed to decode calculations: %w", err)
	}
	return result, nil
}

func (r *quizRepository) ListResultsByUser(ctx context.Context, userID uint64) ([]*models.QuizResult, error) {
	query := `
		SELECT id, user_id, answers, calculations, created_at
		FROM quiz_results
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz results: %w", err)
	}
	defer rows.Close()

	var results []*models.QuizResult
	for rows.Next() {
		result := &models.QuizResult{}
		var answers, calcs []byte
		if err := rows.Scan(&result.ID, &result.UserID, &answers, &calcs, &result.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quiz result: %w", err)
		}
		if err := json.Unmarshal(answers, &result.Answers); err != nil {
			return nil, fmt.Errorf("failed to decode answers: %w", err)
		}
		if err := json.Unmarshal(calcs, &result.Calculations); err != nil {
			return nil, fmt.Errorf("failed to decode calculations: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

func (r *quizRepository) UpsertHealthProfile(ctx context.Context, profile *models.HealthProfile) error {
	answers, err := json.Marshal(profile.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}
	calcs, err := json.Marshal(profile.Calculations)
	if err != nil {
		return fmt.Errorf("failed to encode calculations: %w", err)
	}

	query := `
		INSERT INTO health_profiles (user_id, answers, calculations)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE
			answers = VALUES(answers),
			calculations = VALUES(calculations),
			updated_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, profile.UserID, answers, calcs); err != nil {
		return fmt.Errorf("failed to upsert health profile: %w", err)
	}
	return nil
}

func (r *quizRepository) GetHealthProfile(ctx context.Context, userID uint64) (*models.HealthProfile, error) {
	query := `
		SELECT user_id, answers, calculations, updated_at
		FROM health_profiles
		WHERE user_id = ?
	`
	profile := &models.HealthProfile{}
	var answers, calcs []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID, &answers, &calcs, &profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get health profile: %w", err)
	}

	if err := json.Unmarshal(answers, &profile.Answers); err != nil {
		return nil, fmt.Errorf("failed to decode answers: %w", err)
	}
	if err := json.Unmarshal(calcs, &profile.Calculations); err != nil {
		return nil, fmt.Errorf("failed to decode calculations: %w", err)
	}
	return profile, nil
}
