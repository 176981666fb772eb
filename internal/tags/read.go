package tags

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"
)

// Read reads tag metadata from a music file. It never fails: a
// missing, unreadable, or tagless file yields filename-derived
// defaults with Unknown for fields the filename holds no opinion on.
func Read(path string) *Tag {
	t := defaultsFromFilename(path)

	if _, err := os.Stat(path); err != nil {
		return t
	}

	if readWithDhowden(path, t) {
		return t
	}

	// dhowden/tag has issues with some UTF-16 ID3 tags and some
	// Vorbis streams; fall back per format.
	switch ext(path) {
	case ExtMP3:
		readMP3WithID3v2(path, t)
	case ExtFLAC, ExtOGG, ExtOGA:
		readWithTaglib(path, t)
	}

	return t
}

// defaultsFromFilename builds the fallback metadata for a path.
// A stem of the form "Artist - Album - Title" or "Artist - Title"
// fills the matching fields; everything else stays Unknown.
func defaultsFromFilename(path string) *Tag {
	t := &Tag{
		Path:   path,
		Artist: Unknown,
		Album:  Unknown,
		Title:  Unknown,
	}

	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.Split(stem, " - ")
	switch {
	case len(parts) >= 3:
		t.Artist = parts[0]
		t.Album = parts[1]
		t.Title = parts[2]
	case len(parts) == 2:
		t.Artist = parts[0]
		t.Title = parts[1]
	}

	return t
}

// readWithDhowden fills t from container tags via dhowden/tag.
// Returns false when the container could not be parsed at all.
func readWithDhowden(path string, t *Tag) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return false
	}

	setIfPresent(&t.Artist, m.Artist())
	setIfPresent(&t.Album, m.Album())
	setIfPresent(&t.Title, m.Title())
	if n, _ := m.Track(); n > 0 {
		t.TrackNumber = strconv.Itoa(n)
	}
	t.HasAlbumArt = m.Picture() != nil

	return true
}

// readMP3WithID3v2 reads MP3 metadata using only the id3v2 library.
func readMP3WithID3v2(path string, t *Tag) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer id3tag.Close()

	setIfPresent(&t.Artist, id3tag.Artist())
	setIfPresent(&t.Album, id3tag.Album())
	setIfPresent(&t.Title, id3tag.Title())

	// TRCK may be "N" or "N/Total"
	if trck := textFrame(id3tag, "TRCK"); trck != "" {
		num := trck
		if idx := strings.Index(trck, "/"); idx > 0 {
			num = trck[:idx]
		}
		if n, err := strconv.Atoi(num); err == nil && n > 0 {
			t.TrackNumber = strconv.Itoa(n)
		}
	}

	t.HasAlbumArt = len(id3tag.GetFrames(id3tag.CommonID("Attached picture"))) > 0
}

// readWithTaglib reads FLAC/Ogg metadata using TagLib as fallback.
func readWithTaglib(path string, t *Tag) {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return
	}

	setIfPresent(&t.Artist, first(raw[taglib.Artist]))
	setIfPresent(&t.Album, first(raw[taglib.Album]))
	setIfPresent(&t.Title, first(raw[taglib.Title]))
	if n := first(raw[taglib.TrackNumber]); n != "" {
		t.TrackNumber = n
	}

	if img, err := taglib.ReadImage(path); err == nil && len(img) > 0 {
		t.HasAlbumArt = true
	}
}

// textFrame reads a text frame value from an ID3v2 tag.
func textFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}

// setIfPresent overwrites dst only when the container value is non-empty.
func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// first returns the first element of a taglib value list, or "".
func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
