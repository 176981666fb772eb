package tags

import (
	"fmt"

	"go.senan.xyz/taglib"
)

// Alternate tag key spellings tried in order for containers outside
// the known MP3/FLAC/Ogg set. The first spelling the container
// accepts wins.
var genericKeyVariants = map[string][]string{
	"title":  {"TITLE", "TIT2"},
	"artist": {"ARTIST", "TPE1"},
	"album":  {"ALBUM", "TALB"},
	"track":  {"TRACKNUMBER", "TRCK"},
}

// writeGenericTags is the last-resort write path for unknown
// extensions. TagLib abstracts most containers behind property maps;
// when even it cannot represent the file, the write fails.
func writeGenericTags(path string, t *Tag) error {
	fields := map[string]string{}
	if writable(t.Title) {
		fields["title"] = t.Title
	}
	if writable(t.Artist) {
		fields["artist"] = t.Artist
	}
	if writable(t.Album) {
		fields["album"] = t.Album
	}
	if t.TrackNumber != "" {
		fields["track"] = t.TrackNumber
	}

	if len(fields) == 0 {
		return nil
	}

	var lastErr error
	for field, value := range fields {
		if err := writeFirstAccepted(path, genericKeyVariants[field], value); err != nil {
			lastErr = err
		}
	}
	if lastErr != nil {
		return fmt.Errorf("generic write: %w", lastErr)
	}
	return nil
}

// writeFirstAccepted tries each key spelling until one write succeeds.
func writeFirstAccepted(path string, keys []string, value string) error {
	var lastErr error
	for _, key := range keys {
		err := taglib.WriteTags(path, map[string][]string{key: {value}}, 0)
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return lastErr
}
