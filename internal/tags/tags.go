// Package tags provides unified tag reading and writing for music files.
// It consolidates metadata handling for MP3, FLAC, and Ogg Vorbis
// containers, with a degraded generic path for anything else.
package tags

import (
	"path/filepath"
	"strings"
)

// File extensions supported by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOGG  = ".ogg"
	ExtOGA  = ".oga"
	ExtWAV  = ".wav"
)

// Unknown is the sentinel value for artist/album/title fields absent
// from both the container tags and the filename.
const Unknown = "Unknown"

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// Tag holds the editable metadata of one music file. Path is the
// identity key and is stable for the life of a session. TrackNumber is
// kept as a string: empty means untagged. HasAlbumArt is derived from
// the container on read and never written as a field.
type Tag struct {
	Path        string
	Artist      string
	Album       string
	Title       string
	TrackNumber string
	HasAlbumArt bool
}

// Clone returns a copy of the tag.
func (t *Tag) Clone() *Tag {
	c := *t
	return &c
}

// IsMusicFile returns true if the path has a supported music file extension.
func IsMusicFile(path string) bool {
	switch ext(path) {
	case ExtMP3, ExtFLAC, ExtOGG, ExtOGA, ExtWAV:
		return true
	}
	return false
}

// ext returns the lowercased extension of path, including the dot.
func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
