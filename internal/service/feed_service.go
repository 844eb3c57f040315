package service

import (
	"context"
	"errors"

	"github.com/bgogeta007/health-hustler/internal/feedview"
	"github.com/bgogeta007/health-hustler/internal/models"
	"github.com/bgogeta007/health-hustler/internal/repository"
	"github.com/bgogeta007/health-hustler/pkg/logger"
)

var (
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrReplyDepth      = errors.New("replies cannot be nested")
	ErrEmptyComment    = errors.New("comment content is empty")
)

const mentionSuggestionLimit = 5

type FeedService interface {
	Feed(ctx context.Context, viewerID uint64, limit, offset int) (*feedview.Feed, error)
	AddComment(ctx context.Context, viewerID, photoID uint64, parentID *uint64, content string) (*feedview.CommentView, error)
	TogglePhotoLike(ctx context.Context, viewerID, photoID uint64) (bool, int, error)
	ToggleCommentLike(ctx context.Context, viewerID, commentID uint64) (bool, int, error)
	MentionCandidates(ctx context.Context, token string) ([]feedview.Author, error)
}

type feedService struct {
	photoRepo   repository.PhotoRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	userRepo    repository.UserRepository
	log         *logger.Logger
}

func NewFeedService(
	photoRepo repository.PhotoRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
	log *logger.Logger,
) FeedService {
	return &feedService{
		photoRepo:   photoRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
		log:         log,
	}
}

// Feed assembles one page of the community feed. Everything is loaded in
// a fixed number of batched queries keyed by the page's id sets, never
// per photo or per comment.
func (s *feedService) Feed(ctx context.Context, viewerID uint64, limit, offset int) (*feedview.Feed, error) {
	photos, err := s.photoRepo.ListCommunity(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(photos) == 0 {
		return &feedview.Feed{Photos: []feedview.PhotoView{}}, nil
	}

	photoIDs := make([]uint64, len(photos))
	authorIDs := make([]uint64, 0, len(photos))
	for i, p := range photos {
		photoIDs[i] = p.ID
		authorIDs = append(authorIDs, p.UserID)
	}

	comments, err := s.commentRepo.ListByPhotoIDs(ctx, photoIDs)
	if err != nil {
		return nil, err
	}

	commentIDs := make([]uint64, len(comments))
	for i, c := range comments {
		commentIDs[i] = c.ID
		authorIDs = append(authorIDs, c.UserID)
	}

	authors, err := s.userRepo.GetByIDs(ctx, dedupe(authorIDs))
	if err != nil {
		return nil, err
	}

	photoLikes, err := s.likeRepo.CountByPhotoIDs(ctx, photoIDs)
	if err != nil {
		return nil, err
	}
	likedPhotos, err := s.likeRepo.LikedPhotos(ctx, viewerID, photoIDs)
	if err != nil {
		return nil, err
	}
	commentLikes, err := s.likeRepo.CountByCommentIDs(ctx, commentIDs)
	if err != nil {
		return nil, err
	}
	likedComments, err := s.likeRepo.LikedComments(ctx, viewerID, commentIDs)
	if err != nil {
		return nil, err
	}

	// comments arrive ordered by created_at, so top-level nodes and
	// reply lists both come out in display order
	nodes := make(map[uint64]*feedview.CommentView, len(comments))
	topOrder := make(map[uint64][]uint64, len(photos))
	for _, c := range comments {
		view := feedview.NewCommentView(c, authorView(authors[c.UserID], c.UserID))
		view.Likes = commentLikes[c.ID]
		view.LikedByUser = likedComments[c.ID]

		if c.ParentID == nil {
			nodes[c.ID] = &view
			topOrder[c.PhotoID] = append(topOrder[c.PhotoID], c.ID)
			continue
		}
		parent, ok := nodes[*c.ParentID]
		if !ok {
			// orphaned reply, parent deleted out from under it
			continue
		}
		parent.Replies = append(parent.Replies, view)
	}

	feed := &feedview.Feed{Photos: make([]feedview.PhotoView, 0, len(photos))}
	for _, p := range photos {
		tree := make([]feedview.CommentView, 0, len(topOrder[p.ID]))
		for _, id := range topOrder[p.ID] {
			tree = append(tree, *nodes[id])
		}

		view := feedview.PhotoView{
			ID:          p.ID,
			PhotoURL:    p.PhotoURL,
			Caption:     p.Caption,
			WeekNumber:  p.WeekNumber,
			User:        authorView(authors[p.UserID], p.UserID),
			Likes:       photoLikes[p.ID],
			LikedByUser: likedPhotos[p.ID],
			Comments:    tree,
			CreatedAt:   p.CreatedAt,
		}
		view.RecountComments()
		feed.Photos = append(feed.Photos, view)
	}
	return feed, nil
}

// AddComment validates the target, bounds reply depth at two, resolves
// @mentions to user ids and persists the comment.
func (s *feedService) AddComment(ctx context.Context, viewerID, photoID uint64, parentID *uint64, content string) (*feedview.CommentView, error) {
	if content == "" {
		return nil, ErrEmptyComment
	}

	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo == nil || photo.IsPrivate || !photo.CommunityVisible {
		return nil, ErrPhotoNotFound
	}

	if parentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.PhotoID != photoID {
			return nil, ErrCommentNotFound
		}
		if parent.ParentID != nil {
			return nil, ErrReplyDepth
		}
	}

	mentions, err := s.resolveMentions(ctx, content)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.Create(ctx, &models.PhotoComment{
		PhotoID:  photoID,
		UserID:   viewerID,
		ParentID: parentID,
		Content:  content,
		Mentions: mentions,
	})
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	view := feedview.NewCommentView(comment, authorView(author, viewerID))
	return &view, nil
}

// TogglePhotoLike flips the viewer's like and returns the new flag with
// the authoritative count, so the client can reconcile its optimistic
// update.
func (s *feedService) TogglePhotoLike(ctx context.Context, viewerID, photoID uint64) (bool, int, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return false, 0, err
	}
	if photo == nil || photo.IsPrivate || !photo.CommunityVisible {
		return false, 0, ErrPhotoNotFound
	}

	liked, err := s.likeRepo.TogglePhotoLike(ctx, viewerID, photoID)
	if err != nil {
		return false, 0, err
	}
	counts, err := s.likeRepo.CountByPhotoIDs(ctx, []uint64{photoID})
	if err != nil {
		return false, 0, err
	}
	return liked, counts[photoID], nil
}

func (s *feedService) ToggleCommentLike(ctx context.Context, viewerID, commentID uint64) (bool, int, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return false, 0, err
	}
	if comment == nil {
		return false, 0, ErrCommentNotFound
	}

	liked, err := s.likeRepo.ToggleCommentLike(ctx, viewerID, commentID)
	if err != nil {
		return false, 0, err
	}
	counts, err := s.likeRepo.CountByCommentIDs(ctx, []uint64{commentID})
	if err != nil {
		return false, 0, err
	}
	return liked, counts[commentID], nil
}

// MentionCandidates serves autocomplete for a partial @token:
// case-insensitive prefix match, capped at five suggestions
func (s *feedService) MentionCandidates(ctx context.Context, token string) ([]feedview.Author, error) {
	profiles, err := s.userRepo.SearchByUsernamePrefix(ctx, token, mentionSuggestionLimit)
	if err != nil {
		return nil, err
	}

	candidates := make([]feedview.Author, 0, len(profiles))
	for _, p := range profiles {
		candidates = append(candidates, authorView(p, p.ID))
	}
	return candidates, nil
}

// resolveMentions maps @handles in the text to user ids. Handles that
// match no registered user are silently dropped.
func (s *feedService) resolveMentions(ctx context.Context, content string) ([]uint64, error) {
	handles := feedview.ExtractMentions(content)
	if len(handles) == 0 {
		return nil, nil
	}

	profiles, err := s.userRepo.GetByUsernames(ctx, handles)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func authorView(p *models.Profile, id uint64) feedview.Author {
	if p == nil {
		// author row deleted; keep the content with a placeholder
		return feedview.Author{ID: id, Username: "deleted", FullName: "Deleted User"}
	}
	return feedview.Author{
		ID:        p.ID,
		Username:  p.Username,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
	}
}

func dedupe(ids []uint64) []uint64 {
	seen := make(map[uint64]bool, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
