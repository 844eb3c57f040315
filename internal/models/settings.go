package models

import "time"

// PlatformSettings is the single back-office configuration row
type PlatformSettings struct {
	ID           uint64    `json:"id" db:"id"`
	PlatformName string    `json:"platform_name" db:"platform_name"`
	ThemeColor   string    `json:"theme_color" db:"theme_color"`
	LogoURL      *string   `json:"logo_url" db:"logo_url"`
	FaviconURL   *string   `json:"favicon_url" db:"favicon_url"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Tip is one entry from the static daily-tip catalog
type Tip struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// SavedTip is a user's bookmarked tip, stored with a content snapshot
type SavedTip struct {
	ID          uint64    `json:"id" db:"id"`
	UserID      uint64    `json:"user_id" db:"user_id"`
	TipID       int       `json:"tip_id" db:"tip_id"`
	TipTitle    string    `json:"tip_title" db:"tip_title"`
	TipContent  string    `json:"tip_content" db:"tip_content"`
	TipCategory string    `json:"tip_category" db:"tip_category"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
