package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bgogeta007/health-hustler/internal/models"
)

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error)
	Update(ctx context.Context, challenge *models.Challenge) error
	SetActive(ctx context.Context, id uint64, active bool) error
	GetByID(ctx context.Context, id uint64) (*models.Challenge, error)
	ListActive(ctx context.Context) ([]*models.Challenge, error)
	ListAll(ctx context.Context) ([]*models.Challenge, error)

	ParticipantCounts(ctx context.Context, challengeIDs []uint64) (map[uint64]int, error)
	GetParticipant(ctx context.Context, challengeID, userID uint64) (*models.ChallengeParticipant, error)
	ListParticipations(ctx context.Context, userID uint64) ([]*models.ChallengeParticipant, error)
	Join(ctx context.Context, challengeID, userID uint64) (*models.ChallengeParticipant, error)
	Quit(ctx context.Context, challengeID, userID uint64) error
	UpdateProgress(ctx context.Context, participantID uint64, progress, streak int) error
	CompleteAndAward(ctx context.Context, participantID, userID uint64, progress, streak, points int) error

	CountCompletions(ctx context.Context) (int, error)
}

type challengeRepository struct {
	db *sql.DB
}

func NewChallengeRepository(db *sql.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

const challengeColumns = "id, title, description, type, difficulty, points, requirements, start_date, end_date, is_active, created_at, updated_at"

func scanChallenge(row interface{ Scan(...interface{}) error }) (*models.Challenge, error) {
	c := &models.Challenge{}
	var reqs []byte
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Type, &c.Difficulty, &c.Points,
		&reqs, &c.StartDate, &c.EndDate, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(reqs) > 0 {
		if err := json.Unmarshal(reqs, &c.Requirements); err != nil {
			return nil, fmt.Errorf("failed to decode requirements: %w", err)
		}
	}
	return c, nil
}

func (r *challengeRepository) Create(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error) {
	reqs, err := json.Marshal(challenge.Requirements)
	if err != nil {
		return nil, fmt.Errorf("failed to encode requirements: %w", err)
	}

	query := `
		INSERT INTO challenges (title, description, type, difficulty, points, requirements, start_date, end_date, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		challenge.Title, challenge.Description, challenge.Type, challenge.Difficulty,
		challenge.Points, reqs, challenge.StartDate, challenge.EndDate, challenge.IsActive,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge id: %w", err)
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *challengeRepository) Update(ctx context.Context, challenge *models.Challenge) error {
	reqs, err := json.Marshal(challenge.Requirements)
	if err != nil {
		return fmt.Errorf("failed to encode requirements: %w", err)
	}

	query := `
		UPDATE challenges
		SET title = ?, description = ?, type = ?, difficulty = ?, points = ?,
			requirements = ?, start_date = ?, end_date = ?, is_active = ?, updated_at = NOW()
		WHERE id = ?
	`
	_, err = r.db.ExecContext(ctx, query,
		challenge.Title, challenge.Description, challenge.Type, challenge.Difficulty,
		challenge.Points, reqs, challenge.StartDate, challenge.EndDate, challenge.IsActive,
		challenge.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update challenge: %w", err)
	}
	return nil
}

func (r *challengeRepository) SetActive(ctx context.Context, id uint64, active bool) error {
	query := `UPDATE challenges SET is_active = ?, updated_at = NOW() WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, active, id); err != nil {
		return fmt.Errorf("failed to set challenge active flag: %w", err)
	}
	return nil
}

func (r *challengeRepository) GetByID(ctx context.Context, id uint64) (*models.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = ?`
	c, err := scanChallenge(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	return c, nil
}

func (r *challengeRepository) ListActive(ctx context.Context) ([]*models.Challenge, error) {
	query := `
		SELECT ` + challengeColumns + `
		FROM challenges
		WHERE is_active = TRUE AND end_date >= NOW()
		ORDER BY created_at ASC, id ASC
	`
	return r.queryChallenges(ctx, query)
}

func (r *challengeRepository) ListAll(ctx context.Context) ([]*models.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges ORDER BY created_at DESC`
	return r.queryChallenges(ctx, query)
}

func (r *challengeRepository) queryChallenges(ctx context.Context, query string, args ...interface{}) ([]*models.Challenge, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query challenges: %w", err)
	}
	defer rows.Close()

	var challenges []*models.Challenge
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan challenge: %w", err)
		}
		challenges = append(challenges, c)
	}
	return challenges, rows.Err()
}

func (r *challengeRepository) ParticipantCounts(ctx context.Context, challengeIDs []uint64) (map[uint64]int, error) {
	counts := make(map[uint64]int, len(challengeIDs))
	if len(challengeIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT challenge_id, COUNT(*)
		FROM challenge_participants
		WHERE challenge_id IN (` + placeholders(len(challengeIDs)) + `)
		GROUP BY challenge_id
	`
	rows, err := r.db.QueryContext(ctx, query, uint64Args(challengeIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uint64
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan participant count: %w", err)
		}
		counts[id] = count
	}
	return counts, rows.Err()
}

const participantColumns = "id, challenge_id, user_id, progress, completed, completion_date, streak_count, created_at"

func scanParticipant(row interface{ Scan(...interface{}) error }) (*models.ChallengeParticipant, error) {
	p := &models.ChallengeParticipant{}
	err := row.Scan(
		&p.ID, &p.ChallengeID, &p.UserID, &p.Progress,
		&p.Completed, &p.CompletionDate, &p.StreakCount, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *challengeRepository) GetParticipant(ctx context.Context, challengeID, userID uint64) (*models.ChallengeParticipant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM challenge_participants
		WHERE challenge_id = ? AND user_id = ?
	`
	p, err := scanParticipant(r.db.QueryRowContext(ctx, query, challengeID, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

func (r *challengeRepository) ListParticipations(ctx context.Context, userID uint64) ([]*models.ChallengeParticipant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM challenge_participants
		WHERE user_id = ?
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participations: %w", err)
	}
	defer rows.Close()

	var participants []*models.ChallengeParticipant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *challengeRepository) Join(ctx context.Context, challengeID, userID uint64) (*models.ChallengeParticipant, error) {
	query := `
		INSERT INTO challenge_participants (challenge_id, user_id, progress, streak_count)
		VALUES (?, ?, 0, 0)
	`
	if _, err := r.db.ExecContext(ctx, query, challengeID, userID); err != nil {
		return nil, fmt.Errorf("failed to join challenge: %w", err)
	}
	return r.GetParticipant(ctx, challengeID, userID)
}

func (r *challengeRepository) Quit(ctx context.Context, challengeID, userID uint64) error {
	query := `DELETE FROM challenge_participants WHERE challenge_id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, challengeID, userID); err != nil {
		return fmt.Errorf("failed to quit challenge: %w", err)
	}
	return nil
}

func (r *challengeRepository) UpdateProgress(ctx context.Context, participantID uint64, progress, streak int) error {
	query := `
		UPDATE challenge_participants
		SET progress = ?, streak_count = ?
		WHERE id = ?
	`
	if _, err := r.db.ExecContext(ctx, query, progress, streak, participantID); err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	return nil
}

// CompleteAndAward marks the participation completed and credits the
// challenge points in one transaction, so a crash between the two writes
// cannot leave a completed challenge without its reward.
func (r *challengeRepository) CompleteAndAward(ctx context.Context, participantID, userID uint64, progress, streak, points int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	complete := `
		UPDATE challenge_participants
		SET progress = ?, streak_count = ?, completed = TRUE, completion_date = ?
		WHERE id = ? AND completed = FALSE
	`
	result, err := tx.ExecContext(ctx, complete, progress, streak, time.Now().UTC(), participantID)
	if err != nil {
		return fmt.Errorf("failed to complete challenge: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read completion result: %w", err)
	}
	if affected == 0 {
		// already completed by a concurrent request; awarding again
		// would double-credit
		return nil
	}

	award := `
		INSERT INTO user_rewards (user_id, points, badges)
		VALUES (?, ?, '[]')
		ON DUPLICATE KEY UPDATE points = points + VALUES(points), updated_at = NOW()
	`
	if _, err := tx.ExecContext(ctx, award, userID, points); err != nil {
		return fmt.Errorf("failed to award points: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit completion: %w", err)
	}
	return nil
}

func (r *challengeRepository) CountCompletions(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM challenge_participants WHERE completed = TRUE`
	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count completions: %w", err)
	}
	return count, nil
}
