package service

import (
	"context"
	"errors"
	"time"

	"github.com/bgogeta007/health-hustler/internal/models"
)

// Mock repositories

type mockUserRepository struct {
	createFunc                 func(ctx context.Context, email, username, fullName, passwordHash string) (*models.Profile, error)
	getByIDFunc                func(ctx context.Context, id uint64) (*models.Profile, error)
	getByIDsFunc               func(ctx context.Context, ids []uint64) (map[uint64]*models.Profile, error)
	getByEmailFunc             func(ctx context.Context, email string) (*models.Profile, error)
	getByUsernameFunc          func(ctx context.Context, username string) (*models.Profile, error)
	getByUsernamesFunc         func(ctx context.Context, usernames []string) ([]*models.Profile, error)
	searchByUsernamePrefixFunc func(ctx context.Context, prefix string, limit int) ([]*models.Profile, error)
	updateProfileFunc          func(ctx context.Context, id uint64, fullName, username string) error
	updateAvatarURLFunc        func(ctx context.Context, id uint64, avatarURL *string) error
	listFunc                   func(ctx context.Context) ([]*models.Profile, error)
}

func (m *mockUserRepository) Create(ctx context.Context, email, username, fullName, passwordHash string) (*models.Profile, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, email, username, fullName, passwordHash)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint64) (*models.Profile, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Profile, error) {
	if m.getByIDsFunc != nil {
		return m.getByIDsFunc(ctx, ids)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) GetByUsernames(ctx context.Context, usernames []string) ([]*models.Profile, error) {
	if m.getByUsernamesFunc != nil {
		return m.getByUsernamesFunc(ctx, usernames)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) SearchByUsernamePrefix(ctx context.Context, prefix string, limit int) ([]*models.Profile, error) {
	if m.searchByUsernamePrefixFunc != nil {
		return m.searchByUsernamePrefixFunc(ctx, prefix, limit)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, id uint64, fullName, username string) error {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, id, fullName, username)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) UpdateAvatarURL(ctx context.Context, id uint64, avatarURL *string) error {
	if m.updateAvatarURLFunc != nil {
		return m.updateAvatarURLFunc(ctx, id, avatarURL)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) List(ctx context.Context) ([]*models.Profile, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

type mockSessionRepository struct {
	createFunc  func(ctx context.Context, userID uint64, ttl time.Duration) (string, error)
	getFunc     func(ctx context.Context, token string) (uint64, error)
	refreshFunc func(ctx context.Context, token string, ttl time.Duration) error
	deleteFunc  func(ctx context.Context, token string) error
}

func (m *mockSessionRepository) Create(ctx context.Context, userID uint64, ttl time.Duration) (string, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, ttl)
	}
	return "", errors.New("not implemented")
}

func (m *mockSessionRepository) Get(ctx context.Context, token string) (uint64, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, token)
	}
	return 0, errors.New("not implemented")
}

func (m *mockSessionRepository) Refresh(ctx context.Context, token string, ttl time.Duration) error {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, token, ttl)
	}
	return nil
}

func (m *mockSessionRepository) Delete(ctx context.Context, token string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, token)
	}
	return errors.New("not implemented")
}

type mockQuizRepository struct {
	insertResultFunc        func(ctx context.Context, result *models.QuizResult) (*models.QuizResult, error)
	getResultByIDFunc       func(ctx context.Context, id uint64) (*models.QuizResult, error)
	listResultsByUserFunc   func(ctx context.Context, userID uint64) ([]*models.QuizResult, error)
	upsertHealthProfileFunc func(ctx context.Context, profile *models.HealthProfile) error
	getHealthProfileFunc    func(ctx context.Context, userID uint64) (*models.HealthProfile, error)
}

func (m *mockQuizRepository) InsertResult(ctx context.Context, result *models.QuizResult) (*models.QuizResult, error) {
	if m.insertResultFunc != nil {
		return m.insertResultFunc(ctx, result)
	}
	return nil, errors.New("not implemented")
}

func (m *mockQuizRepository) GetResultByID(ctx context.Context, id uint64) (*models.QuizResult, error) {
	if m.getResultByIDFunc != nil {
		return m.getResultByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockQuizRepository) ListResultsByUser(ctx context.Context, userID uint64) ([]*models.QuizResult, error) {
	if m.listResultsByUserFunc != nil {
		return m.listResultsByUserFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockQuizRepository) UpsertHealthProfile(ctx context.Context, profile *models.HealthProfile) error {
	if m.upsertHealthProfileFunc != nil {
		return m.upsertHealthProfileFunc(ctx, profile)
	}
	return errors.New("not implemented")
}

func (m *mockQuizRepository) GetHealthProfile(ctx context.Context, userID uint64) (*models.HealthProfile, error) {
	if m.getHealthProfileFunc != nil {
		return m.getHealthProfileFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

type mockPhotoRepository struct {
	createFunc        func(ctx context.Context, photo *models.ProgressPhoto) (*models.ProgressPhoto, error)
	getByIDFunc       func(ctx context.Context, id uint64) (*models.ProgressPhoto, error)
	listByUserFunc    func(ctx context.Context, userID uint64) ([]*models.ProgressPhoto, error)
	listCommunityFunc func(ctx context.Context, limit, offset int) ([]*models.ProgressPhoto, error)
	setVisibilityFunc func(ctx context.Context, id uint64, isPrivate, communityVisible bool) error
	updateCaptionFunc func(ctx context.Context, id uint64, caption string) error
	deleteFunc        func(ctx context.Context, id uint64) error
	maxWeekNumberFunc func(ctx context.Context, userID uint64) (int, error)
}

func (m *mockPhotoRepository) Create(ctx context.Context, photo *models.ProgressPhoto) (*models.ProgressPhoto, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, photo)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPhotoRepository) GetByID(ctx context.Context, id uint64) (*models.ProgressPhoto, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPhotoRepository) ListByUser(ctx context.Context, userID uint64) ([]*models.ProgressPhoto, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPhotoRepository) ListCommunity(ctx context.Context, limit, offset int) ([]*models.ProgressPhoto, error) {
	if m.listCommunityFunc != nil {
		return m.listCommunityFunc(ctx, limit, offset)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPhotoRepository) SetVisibility(ctx context.Context, id uint64, isPrivate, communityVisible bool) error {
	if m.setVisibilityFunc != nil {
		return m.setVisibilityFunc(ctx, id, isPrivate, communityVisible)
	}
	return errors.New("not implemented")
}

func (m *mockPhotoRepository) UpdateCaption(ctx context.Context, id uint64, caption string) error {
	if m.updateCaptionFunc != nil {
		return m.updateCaptionFunc(ctx, id, caption)
	}
	return errors.New("not implemented")
}

func (m *mockPhotoRepository) Delete(ctx context.Context, id uint64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockPhotoRepository) MaxWeekNumber(ctx context.Context, userID uint64) (int, error) {
	if m.maxWeekNumberFunc != nil {
		return m.maxWeekNumberFunc(ctx, userID)
	}
	return 0, errors.New("not implemented")
}

type mockCommentRepository struct {
	createFunc         func(ctx context.Context, comment *models.PhotoComment) (*models.PhotoComment, error)
	getByIDFunc        func(ctx context.Context, id uint64) (*models.PhotoComment, error)
	listByPhotoIDsFunc func(ctx context.Context, photoIDs []uint64) ([]*models.PhotoComment, error)
	deleteFunc         func(ctx context.Context, id uint64) error
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *models.PhotoComment) (*models.PhotoComment, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, comment)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uint64) (*models.PhotoComment, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCommentRepository) ListByPhotoIDs(ctx context.Context, photoIDs []uint64) ([]*models.PhotoComment, error) {
	if m.listByPhotoIDsFunc != nil {
		return m.listByPhotoIDsFunc(ctx, photoIDs)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

type mockLikeRepository struct {
	countByPhotoIDsFunc   func(ctx context.Context, photoIDs []uint64) (map[uint64]int, error)
	likedPhotosFunc       func(ctx context.Context, userID uint64, photoIDs []uint64) (map[uint64]bool, error)
	togglePhotoLikeFunc   func(ctx context.Context, userID, photoID uint64) (bool, error)
	countByCommentIDsFunc func(ctx context.Context, commentIDs []uint64) (map[uint64]int, error)
	likedCommentsFunc     func(ctx context.Context, userID uint64, commentIDs []uint64) (map[uint64]bool, error)
	toggleCommentLikeFunc func(ctx context.Context, userID, commentID uint64) (bool, error)
}

func (m *mockLikeRepository) CountByPhotoIDs(ctx context.Context, photoIDs []uint64) (map[uint64]int, error) {
	if m.countByPhotoIDsFunc != nil {
		return m.countByPhotoIDsFunc(ctx, photoIDs)
	}
	return map[uint64]int{}, nil
}

func (m *mockLikeRepository) LikedPhotos(ctx context.Context, userID uint64, photoIDs []uint64) (map[uint64]bool, error) {
	if m.likedPhotosFunc != nil {
		return m.likedPhotosFunc(ctx, userID, photoIDs)
	}
	return map[uint64]bool{}, nil
}

func (m *mockLikeRepository) TogglePhotoLike(ctx context.Context, userID, photoID uint64) (bool, error) {
	if m.togglePhotoLikeFunc != nil {
		return m.togglePhotoLikeFunc(ctx, userID, photoID)
	}
	return false, errors.New("not implemented")
}

func (m *mockLikeRepository) CountByCommentIDs(ctx context.Context, commentIDs []uint64) (map[uint64]int, error) {
	if m.countByCommentIDsFunc != nil {
		return m.countByCommentIDsFunc(ctx, commentIDs)
	}
	return map[uint64]int{}, nil
}

func (m *mockLikeRepository) LikedComments(ctx context.Context, userID uint64, commentIDs []uint64) (map[uint64]bool, error) {
	if m.likedCommentsFunc != nil {
		return m.likedCommentsFunc(ctx, userID, commentIDs)
	}
	return map[uint64]bool{}, nil
}

func (m *mockLikeRepository) ToggleCommentLike(ctx context.Context, userID, commentID uint64) (bool, error) {
	if m.toggleCommentLikeFunc != nil {
		return m.toggleCommentLikeFunc(ctx, userID, commentID)
	}
	return false, errors.New("not implemented")
}

type mockChallengeRepository struct {
	createFunc             func(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error)
	updateFunc             func(ctx context.Context, challenge *models.Challenge) error
	setActiveFunc          func(ctx context.Context, id uint64, active bool) error
	getByIDFunc            func(ctx context.Context, id uint64) (*models.Challenge, error)
	listActiveFunc         func(ctx context.Context) ([]*models.Challenge, error)
	listAllFunc            func(ctx context.Context) ([]*models.Challenge, error)
	participantCountsFunc  func(ctx context.Context, challengeIDs []uint64) (map[uint64]int, error)
	getParticipantFunc     func(ctx context.Context, challengeID, userID uint64) (*models.ChallengeParticipant, error)
	listParticipationsFunc func(ctx context.Context, userID uint64) ([]*models.ChallengeParticipant, error)
	joinFunc               func(ctx context.Context, challengeID, userID uint64) (*models.ChallengeParticipant, error)
	quitFunc               func(ctx context.Context, challengeID, userID uint64) error
	updateProgressFunc     func(ctx context.Context, participantID uint64, progress, streak int) error
	completeAndAwardFunc   func(ctx context.Context, participantID, userID uint64, progress, streak, points int) error
	countCompletionsFunc   func(ctx context.Context) (int, error)
}

func (m *mockChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) (*models.Challenge, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, challenge)
	}
	return nil, errors.New("not implemented")
}

func (m *mockChallengeRepository) Update(ctx context.Context, challenge *models.Challenge) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, challenge)
	}
	return errors.New("not implemented")
}

func (m *mockChallengeRepository) SetActive(ctx context.Context, id uint64, active bool) error {
	if m.setActiveFunc != nil {
		return m.setActiveFunc(ctx, id, active)
	}
	return errors.New("not implemented")
}

func (m *mockChallengeRepository) GetByID(ctx context.Context, id uint64) (*models.Challenge, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockChallengeRepository) ListActive(ctx context.Context) ([]*models.Challenge, error) {
	if m.listActiveFunc != nil {
		return m.listActiveFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockChallengeRepository) ListAll(ctx context.Context) ([]*models.Challenge, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockChallengeRepository) ParticipantCounts(ctx context.Context, challengeIDs []uint64) (map[uint64]int, error) {
	if m.participantCountsFunc != nil {
		return m.participantCountsFunc(ctx, challengeIDs)
	}
	return map[uint64]int{}, nil
}

func (m *mockChallengeRepository) GetParticipant(ctx context.Context, challengeID, userID uint64) (*models.ChallengeParticipant, error) {
	if m.getParticipantFunc != nil {
		return m.getParticipantFunc(ctx, challengeID, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockChallengeRepository) ListParticipations(ctx context.Context, userID uint64) ([]*models.ChallengeParticipant, error) {
	if m.listParticipationsFunc != nil {
		return m.listParticipationsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockChallengeRepository) Join(ctx context.Context, challengeID, userID uint64) (*models.ChallengeParticipant, error) {
	if m.joinFunc != nil {
		return m.joinFunc(ctx, challengeID, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockChallengeRepository) Quit(ctx context.Context, challengeID, userID uint64) error {
	if m.quitFunc != nil {
		return m.quitFunc(ctx, challengeID, userID)
	}
	return errors.New("not implemented")
}

func (m *mockChallengeRepository) UpdateProgress(ctx context.Context, participantID uint64, progress, streak int) error {
	if m.updateProgressFunc != nil {
		return m.updateProgressFunc(ctx, participantID, progress, streak)
	}
	return errors.New("not implemented")
}

func (m *mockChallengeRepository) CompleteAndAward(ctx context.Context, participantID, userID uint64, progress, streak, points int) error {
	if m.completeAndAwardFunc != nil {
		return m.completeAndAwardFunc(ctx, participantID, userID, progress, streak, points)
	}
	return errors.New("not implemented")
}

func (m *mockChallengeRepository) CountCompletions(ctx context.Context) (int, error) {
	if m.countCompletionsFunc != nil {
		return m.countCompletionsFunc(ctx)
	}
	return 0, errors.New("not implemented")
}

type mockRewardsRepository struct {
	getByUserFunc   func(ctx context.Context, userID uint64) (*models.UserRewards, error)
	ensureRowFunc   func(ctx context.Context, userID uint64) error
	addPointsFunc   func(ctx context.Context, userID uint64, delta int) error
	addBadgeFunc    func(ctx context.Context, userID uint64, badges []models.Badge) error
	leaderboardFunc func(ctx context.Context, limit int) ([]*models.UserRewards, error)
	totalPointsFunc func(ctx context.Context) (int, error)
}

func (m *mockRewardsRepository) GetByUser(ctx context.Context, userID uint64) (*models.UserRewards, error) {
	if m.getByUserFunc != nil {
		return m.getByUserFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRewardsRepository) EnsureRow(ctx context.Context, userID uint64) error {
	if m.ensureRowFunc != nil {
		return m.ensureRowFunc(ctx, userID)
	}
	return errors.New("not implemented")
}

func (m *mockRewardsRepository) AddPoints(ctx context.Context, userID uint64, delta int) error {
	if m.addPointsFunc != nil {
		return m.addPointsFunc(ctx, userID, delta)
	}
	return errors.New("not implemented")
}

func (m *mockRewardsRepository) AddBadge(ctx context.Context, userID uint64, badges []models.Badge) error {
	if m.addBadgeFunc != nil {
		return m.addBadgeFunc(ctx, userID, badges)
	}
	return errors.New("not implemented")
}

func (m *mockRewardsRepository) Leaderboard(ctx context.Context, limit int) ([]*models.UserRewards, error) {
	if m.leaderboardFunc != nil {
		return m.leaderboardFunc(ctx, limit)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRewardsRepository) TotalPoints(ctx context.Context) (int, error) {
	if m.totalPointsFunc != nil {
		return m.totalPointsFunc(ctx)
	}
	return 0, errors.New("not implemented")
}

type mockTipRepository struct {
	saveFunc       func(ctx context.Context, saved *models.SavedTip) error
	unsaveFunc     func(ctx context.Context, userID uint64, tipID int) error
	isSavedFunc    func(ctx context.Context, userID uint64, tipID int) (bool, error)
	listByUserFunc func(ctx context.Context, userID uint64) ([]*models.SavedTip, error)
}

func (m *mockTipRepository) Save(ctx context.Context, saved *models.SavedTip) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, saved)
	}
	return errors.New("not implemented")
}

func (m *mockTipRepository) Unsave(ctx context.Context, userID uint64, tipID int) error {
	if m.unsaveFunc != nil {
		return m.unsaveFunc(ctx, userID, tipID)
	}
	return errors.New("not implemented")
}

func (m *mockTipRepository) IsSaved(ctx context.Context, userID uint64, tipID int) (bool, error) {
	if m.isSavedFunc != nil {
		return m.isSavedFunc(ctx, userID, tipID)
	}
	return false, errors.New("not implemented")
}

func (m *mockTipRepository) ListByUser(ctx context.Context, userID uint64) ([]*models.SavedTip, error) {
	if m.listByUserFunc != nil {
		return m.listByUserFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

type mockSettingsRepository struct {
	getFunc    func(ctx context.Context) (*models.PlatformSettings, error)
	updateFunc func(ctx context.Context, settings *models.PlatformSettings) error
}

func (m *mockSettingsRepository) Get(ctx context.Context) (*models.PlatformSettings, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockSettingsRepository) Update(ctx context.Context, settings *models.PlatformSettings) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, settings)
	}
	return errors.New("not implemented")
}

type mockCacheRepository struct {
	getSettingsFunc        func(ctx context.Context) (*models.PlatformSettings, error)
	setSettingsFunc        func(ctx context.Context, settings *models.PlatformSettings, ttl time.Duration) error
	invalidateSettingsFunc func(ctx context.Context) error
}

func (m *mockCacheRepository) GetSettings(ctx context.Context) (*models.PlatformSettings, error) {
	if m.getSettingsFunc != nil {
		return m.getSettingsFunc(ctx)
	}
	return nil, nil
}

func (m *mockCacheRepository) SetSettings(ctx context.Context, settings *models.PlatformSettings, ttl time.Duration) error {
	if m.setSettingsFunc != nil {
		return m.setSettingsFunc(ctx, settings, ttl)
	}
	return nil
}

func (m *mockCacheRepository) InvalidateSettings(ctx context.Context) error {
	if m.invalidateSettingsFunc != nil {
		return m.invalidateSettingsFunc(ctx)
	}
	return nil
}
