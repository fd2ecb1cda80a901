// ABOUTME: Track metadata reader
// ABOUTME: Reads title/artist/album tags with a filename fallback
package meta

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// TrackInfo holds the displayable metadata of a loaded track
type TrackInfo struct {
	Path   string
	Title  string
	Artist string
	Album  string
	Year   int
	Genre  string
}

// ReadTrackInfo reads tag metadata from an audio file. Files without
// usable tags still produce a TrackInfo with the filename as title.
func ReadTrackInfo(path string) *TrackInfo {
	info := &TrackInfo{
		Path:  path,
		Title: baseName(path),
	}

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return info
	}

	if m.Title() != "" {
		info.Title = m.Title()
	}
	info.Artist = m.Artist()
	info.Album = m.Album()
	info.Year = m.Year()
	info.Genre = m.Genre()

	return info
}

// baseName strips the directory and extension from a path
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
