package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbedSongPath(t *testing.T) {
	tests := []struct {
		name        string
		songPath    string
		wantPath    string
		wantYouTube bool
	}{
		{
			name:        "YouTube watch URL rewritten",
			songPath:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantPath:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			wantYouTube: true,
		},
		{
			name:        "YouTube URL already embeddable",
			songPath:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			wantPath:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			wantYouTube: true,
		},
		{
			name:     "Plain file path untouched",
			songPath: "media/song.mp3",
			wantPath: "media/song.mp3",
		},
		{
			name:     "Empty path",
			songPath: "",
			wantPath: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := &Theme{SongPath: tt.songPath}
			got, youtube := theme.EmbedSongPath()
			assert.Equal(t, tt.wantPath, got)
			assert.Equal(t, tt.wantYouTube, youtube)
		})
	}
}

func TestEmbedSongPathNilTheme(t *testing.T) {
	var theme *Theme
	got, youtube := theme.EmbedSongPath()
	assert.Empty(t, got)
	assert.False(t, youtube)
}
