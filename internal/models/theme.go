package models

import (
	"strings"
	"time"
)

// Theme holds optional decorative asset paths for a complimentee's page.
// At most one theme exists per complimentee; lookups take the first match
// rather than relying on a unique constraint.
type Theme struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ComplimenteeID uint      `gorm:"index;not null" json:"complimentee_id"`
	ThemePath      string    `gorm:"size:255" json:"theme_path"`
	SongPath       string    `gorm:"size:255" json:"song_path"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EmbedSongPath returns the song path rewritten for embedding and whether
// the page should render a media embed. YouTube watch URLs become embed
// URLs; everything else passes through untouched.
func (t *Theme) EmbedSongPath() (string, bool) {
	if t == nil {
		return "", false
	}
	if !strings.Contains(t.SongPath, "youtube") {
		return t.SongPath, false
	}
	return strings.ReplaceAll(t.SongPath, "watch?v=", "embed/"), true
}
