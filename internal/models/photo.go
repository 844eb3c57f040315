package models

import "time"

// ProgressPhoto is one user-submitted progress image. community_visible
// must never be true while is_private is true; the photo service enforces
// this on every mutation.
type ProgressPhoto struct {
	ID               uint64    `json:"id" db:"id"`
	UserID           uint64    `json:"user_id" db:"user_id"`
	PhotoURL         string    `json:"photo_url" db:"photo_url"`
	Caption          string    `json:"caption" db:"caption"`
	WeekNumber       int       `json:"week_number" db:"week_number"`
	IsPrivate        bool      `json:"is_private" db:"is_private"`
	CommunityVisible bool      `json:"community_visible" db:"community_visible"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// PhotoComment belongs to exactly one photo. A non-nil ParentID makes it
// a reply; replies cannot themselves have replies.
type PhotoComment struct {
	ID        uint64    `json:"id" db:"id"`
	PhotoID   uint64    `json:"photo_id" db:"photo_id"`
	UserID    uint64    `json:"user_id" db:"user_id"`
	ParentID  *uint64   `json:"parent_id" db:"parent_id"`
	Content   string    `json:"content" db:"content"`
	Mentions  []uint64  `json:"mentions" db:"mentions"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
