// Package feedview holds the community feed's nested view model and the
// local patch operations applied after user actions, so an open feed can
// be updated in place instead of refetched.
package feedview

import (
	"time"

	"github.com/bgogeta007/health-hustler/internal/models"
)

// Author is the profile slice rendered next to photos and comments
type Author struct {
	ID        uint64  `json:"id"`
	Username  string  `json:"username"`
	FullName  string  `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

// CommentView is one comment (or reply) with its like state. Replies is
// always nil on a reply; the tree depth is bounded at two.
type CommentView struct {
	ID          uint64        `json:"id"`
	PhotoID     uint64        `json:"photo_id"`
	ParentID    *uint64       `json:"parent_id"`
	Content     string        `json:"content"`
	Mentions    []uint64      `json:"mentions"`
	User        Author        `json:"user"`
	Likes       int           `json:"likes"`
	LikedByUser bool          `json:"liked_by_user"`
	Replies     []CommentView `json:"replies,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// PhotoView is one community photo with its comment tree
type PhotoView struct {
	ID            uint64        `json:"id"`
	PhotoURL      string        `json:"photo_url"`
	Caption       string        `json:"caption"`
	WeekNumber    int           `json:"week_number"`
	User          Author        `json:"user"`
	Likes         int           `json:"likes"`
	LikedByUser   bool          `json:"liked_by_user"`
	Comments      []CommentView `json:"comments"`
	CommentsCount int           `json:"comments_count"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Feed is the ordered photo sequence shown to one viewer
type Feed struct {
	Photos []PhotoView `json:"photos"`
}

// NewCommentView builds a view node for a freshly created comment row.
// New nodes start with zero likes and are appended, never re-sorted in.
func NewCommentView(c *models.PhotoComment, author Author) CommentView {
	return CommentView{
		ID:        c.ID,
		PhotoID:   c.PhotoID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		Mentions:  c.Mentions,
		User:      author,
		CreatedAt: c.CreatedAt,
	}
}

// TogglePhotoLike flips the viewer-like flag on a photo and adjusts its
// count by exactly one. Returns false if the photo is not in the feed.
func (f *Feed) TogglePhotoLike(photoID uint64) bool {
	for i := range f.Photos {
		if f.Photos[i].ID == photoID {
			toggle(&f.Photos[i].Likes, &f.Photos[i].LikedByUser)
			return true
		}
	}
	return false
}

// ToggleCommentLike flips the viewer-like flag on a comment or reply
func (f *Feed) ToggleCommentLike(photoID, commentID uint64) bool {
	p := f.photo(photoID)
	if p == nil {
		return false
	}
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			toggle(&p.Comments[i].Likes, &p.Comments[i].LikedByUser)
			return true
		}
		for j := range p.Comments[i].Replies {
			if p.Comments[i].Replies[j].ID == commentID {
				toggle(&p.Comments[i].Replies[j].Likes, &p.Comments[i].Replies[j].LikedByUser)
				return true
			}
		}
	}
	return false
}

// InsertComment splices a new node into the tree: appended to the photo's
// top-level list when parentID is nil, else to the parent comment's reply
// list. A parent that is itself a reply is rejected, keeping depth at two.
func (f *Feed) InsertComment(photoID uint64, parentID *uint64, node CommentView) bool {
	p := f.photo(photoID)
	if p == nil {
		return false
	}

	if parentID == nil {
		node.Replies = nil
		p.Comments = append(p.Comments, node)
		p.CommentsCount++
		return true
	}

	for i := range p.Comments {
		if p.Comments[i].ID == *parentID {
			node.Replies = nil
			p.Comments[i].Replies = append(p.Comments[i].Replies, node)
			p.CommentsCount++
			return true
		}
	}
	return false
}

// RecountComments recomputes a photo's total: top-level comments plus all replies
func (p *PhotoView) RecountComments() int {
	total := 0
	for i := range p.Comments {
		total += 1 + len(p.Comments[i].Replies)
	}
	p.CommentsCount = total
	return total
}

func (f *Feed) photo(photoID uint64) *PhotoView {
	for i := range f.Photos {
		if f.Photos[i].ID == photoID {
			return &f.Photos[i]
		}
	}
	return nil
}

func toggle(likes *int, liked *bool) {
	if *liked {
		*likes--
	} else {
		*likes++
	}
	*liked = !*liked
}
