package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bgogeta007/health-hustler/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, email, username, fullName, passwordHash string) (*models.Profile, error)
	GetByID(ctx context.Context, id uint64) (*models.Profile, error)
	GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	GetByUsernames(ctx context.Context, usernames []string) ([]*models.Profile, error)
	SearchByUsernamePrefix(ctx context.Context, prefix string, limit int) ([]*models.Profile, error)
	UpdateProfile(ctx context.Context, id uint64, fullName, username string) error
	UpdateAvatarURL(ctx context.Context, id uint64, avatarURL *string) error
	List(ctx context.Context) ([]*models.Profile, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const profileColumns = "id, email, username, full_name, avatar_url, password_hash, created_at, updated_at"

func scanProfile(row interface{ Scan(...interface{}) error }) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(&p.ID, &p.Email, &p.Username, &p.FullName, &p.AvatarURL, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *userRepository) Create(ctx context.Context, email, username, fullName, passwordHash string) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (email, username, full_name, password_hash)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query, email, username, fullName, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile id: %w", err)
	}

	return r.GetByID(ctx, uint64(id))
}

func (r *userRepository) GetByID(ctx context.Context, id uint64) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`
	p, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Profile, error) {
	profiles := make(map[uint64]*models.Profile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id IN (` + placeholders(len(ids)) + `)`
	rows, err := r.db.QueryContext(ctx, query, uint64Args(ids)...)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles[p.ID] = p
	}
	return profiles, rows.Err()
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = ?`
	p, err := scanProfile(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return p, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = ?`
	p, err := scanProfile(r.db.QueryRowContext(ctx, query, strings.ToLower(username)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by username: %w", err)
	}
	return p, nil
}

func (r *userRepository) GetByUsernames(ctx context.Context, usernames []string) ([]*models.Profile, error) {
	if len(usernames) == 0 {
		return nil, nil
	}

	args := make([]interface{}, len(usernames))
	for i, u := range usernames {
		args[i] = strings.ToLower(u)
	}

	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username IN (` + placeholders(len(usernames)) + `)`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles by usernames: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *userRepository) SearchByUsernamePrefix(ctx context.Context, prefix string, limit int) ([]*models.Profile, error) {
	// usernames are stored lowercased, so a lowercased prefix gives
	// case-insensitive matching
	pattern := strings.ToLower(prefix) + "%"

	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE username LIKE ?
		ORDER BY username
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uint64, fullName, username string) error {
	query := `
		UPDATE profiles
		SET full_name = ?, username = ?, updated_at = NOW()
		WHERE id = ?
	`
	if _, err := r.db.ExecContext(ctx, query, fullName, strings.ToLower(username), id); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateAvatarURL(ctx context.Context, id uint64, avatarURL *string) error {
	query := `
		UPDATE profiles
		SET avatar_url = ?, updated_at = NOW()
		WHERE id = ?
	`
	if _, err := r.db.ExecContext(ctx, query, avatarURL, id); err != nil {
		return fmt.Errorf("failed to update avatar url: %w", err)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// placeholders builds a "?, ?, ?" list for IN clauses
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

func uint64Args(ids []uint64) []interface{} {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
