package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/storage"
	"github.com/bgogeta007/health-hustler/pkg/logger"
)

func newAuthService(userRepo *mockUserRepository, sessionRepo *mockSessionRepository) AuthService {
	return NewAuthService(userRepo, sessionRepo, storage.NewMockClient(), testCDN, time.Hour, logger.NewLogger("test"))
}

func TestRegister_EmailTaken(t *testing.T) {
	userRepo := &mockUserRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*models.Profile, error) {
			return &models.Profile{ID: 1, Email: email}, nil
		},
	}
	svc := newAuthService(userRepo, &mockSessionRepository{})

	_, _, err := svc.Register(context.Background(), "a@b.c", "alice", "Alice", "secret123")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegister_CreatesSessionAndHashesPassword(t *testing.T) {
	var storedHash string
	userRepo := &mockUserRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*models.Profile, error) {
			return nil, nil
		},
		getByUsernameFunc: func(ctx context.Context, username string) (*models.Profile, error) {
			return nil, nil
		},
		createFunc: func(ctx context.Context, email, username, fullName, passwordHash string) (*models.Profile, error) {
			storedHash = passwordHash
			return &models.Profile{ID: 1, Email: email, Username: username, FullName: fullName}, nil
		},
	}
	sessionRepo := &mockSessionRepository{
		createFunc: func(ctx context.Context, userID uint64, ttl time.Duration) (string, error) {
			return "tok-1", nil
		},
	}
	svc := newAuthService(userRepo, sessionRepo)

	profile, token, err := svc.Register(context.Background(), "a@b.c", "alice", "Alice", "secret123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if token != "tok-1" || profile.ID != 1 {
		t.Errorf("profile=%+v token=%q", profile, token)
	}
	if storedHash == "secret123" {
		t.Fatal("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret123")) != nil {
		t.Error("stored hash does not verify the password")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	userRepo := &mockUserRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*models.Profile, error) {
			return &models.Profile{ID: 1, PasswordHash: string(hash)}, nil
		},
	}
	svc := newAuthService(userRepo, &mockSessionRepository{})

	if _, _, err := svc.Login(context.Background(), "a@b.c", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	userRepo := &mockUserRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*models.Profile, error) {
			return nil, nil
		},
	}
	svc := newAuthService(userRepo, &mockSessionRepository{})

	if _, _, err := svc.Login(context.Background(), "nobody@b.c", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticate_UnknownTokenIsZero(t *testing.T) {
	sessionRepo := &mockSessionRepository{
		getFunc: func(ctx context.Context, token string) (uint64, error) {
			return 0, nil
		},
	}
	svc := newAuthService(&mockUserRepository{}, sessionRepo)

	userID, err := svc.Authenticate(context.Background(), "bogus")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if userID != 0 {
		t.Errorf("userID = %d, want 0", userID)
	}
}

func TestRemoveAvatar_ClearsColumnBeforeFileDelete(t *testing.T) {
	avatarURL := testCDN + "/avatars/1.jpg"
	cleared := false
	userRepo := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id uint64) (*models.Profile, error) {
			if cleared {
				return &models.Profile{ID: id}, nil
			}
			return &models.Profile{ID: id, AvatarURL: &avatarURL}, nil
		},
		updateAvatarURLFunc: func(ctx context.Context, id uint64, url *string) error {
			if url != nil {
				t.Errorf("avatar url set to %q, want nil", *url)
			}
			cleared = true
			return nil
		},
	}
	files := storage.NewMockClient()
	files.Upload(context.Background(), "avatars/1.jpg", strings.NewReader("img"))
	svc := NewAuthService(userRepo, &mockSessionRepository{}, files, testCDN, time.Hour, logger.NewLogger("test"))

	profile, err := svc.RemoveAvatar(context.Background(), 1)
	if err != nil {
		t.Fatalf("RemoveAvatar failed: %v", err)
	}
	if profile.AvatarURL != nil {
		t.Error("avatar url still set after removal")
	}
	if _, ok := files.File("avatars/1.jpg"); ok {
		t.Error("avatar file not deleted")
	}
}

func TestRemoveAvatar_FileDeleteFailureIsNotFatal(t *testing.T) {
	avatarURL := testCDN + "/avatars/1.jpg"
	cleared := false
	userRepo := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id uint64) (*models.Profile, error) {
			if cleared {
				return &models.Profile{ID: id}, nil
			}
			return &models.Profile{ID: id, AvatarURL: &avatarURL}, nil
		},
		updateAvatarURLFunc: func(ctx context.Context, id uint64, url *string) error {
			cleared = true
			return nil
		},
	}
	files := storage.NewMockClient()
	files.DeleteErr = errors.New("ftp down")
	svc := NewAuthService(userRepo, &mockSessionRepository{}, files, testCDN, time.Hour, logger.NewLogger("test"))

	profile, err := svc.RemoveAvatar(context.Background(), 1)
	if err != nil {
		t.Fatalf("RemoveAvatar failed: %v", err)
	}
	if profile.AvatarURL != nil {
		t.Error("avatar url not cleared despite file delete failure")
	}
}

func TestRemoveAvatar_NoAvatarIsNoop(t *testing.T) {
	userRepo := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id uint64) (*models.Profile, error) {
			return &models.Profile{ID: id}, nil
		},
		updateAvatarURLFunc: func(ctx context.Context, id uint64, url *string) error {
			t.Fatal("update must not run when no avatar is set")
			return nil
		},
	}
	svc := newAuthService(userRepo, &mockSessionRepository{})

	if _, err := svc.RemoveAvatar(context.Background(), 1); err != nil {
		t.Fatalf("RemoveAvatar failed: %v", err)
	}
}

func TestUpdateProfile_UsernameCollision(t *testing.T) {
	userRepo := &mockUserRepository{
		getByIDFunc: func(ctx context.Context, id uint64) (*models.Profile, error) {
			return &models.Profile{ID: id, Username: "alice"}, nil
		},
		getByUsernameFunc: func(ctx context.Context, username string) (*models.Profile, error) {
			return &models.Profile{ID: 99, Username: username}, nil
		},
	}
	svc := newAuthService(userRepo, &mockSessionRepository{})

	if _, err := svc.UpdateProfile(context.Background(), 1, "Alice", "bob"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
}
