package tags

import (
	"errors"
	"fmt"
	"os"

	"github.com/bogem/id3v2/v2"
)

// writeMP3Tags writes ID3v2 tags to an MP3 file. The simplified tag
// interface is tried first; a file without a tag header gets one
// created on save. If that path fails, raw text frames are written
// before declaring failure.
func writeMP3Tags(path string, t *Tag) error {
	if err := writeMP3Simple(path, t); err == nil {
		return nil
	}
	return writeMP3RawFrames(path, t)
}

// writeMP3Simple uses the id3v2 convenience setters.
func writeMP3Simple(path string, t *Tag) error {
	id3tag, err := openMP3Tag(path)
	if err != nil {
		return err
	}
	defer id3tag.Close()

	id3tag.SetVersion(4)
	id3tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	if writable(t.Title) {
		id3tag.SetTitle(t.Title)
	}
	if writable(t.Artist) {
		id3tag.SetArtist(t.Artist)
	}
	if writable(t.Album) {
		id3tag.SetAlbum(t.Album)
	}
	if t.TrackNumber != "" {
		id3tag.AddTextFrame(id3tag.CommonID("Track number/Position in set"), id3v2.EncodingUTF8, t.TrackNumber)
	}

	if err := id3tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}
	return nil
}

// writeMP3RawFrames writes the title/artist/album/track frames
// directly, skipping the convenience layer.
func writeMP3RawFrames(path string, t *Tag) error {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer id3tag.Close()

	id3tag.SetVersion(4)

	frames := map[string]string{}
	if writable(t.Title) {
		frames["TIT2"] = t.Title
	}
	if writable(t.Artist) {
		frames["TPE1"] = t.Artist
	}
	if writable(t.Album) {
		frames["TALB"] = t.Album
	}
	if t.TrackNumber != "" {
		frames["TRCK"] = t.TrackNumber
	}

	for id, value := range frames {
		id3tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
	}

	if err := id3tag.Save(); err != nil {
		return fmt.Errorf("save raw frames: %w", err)
	}
	return nil
}

// openMP3Tag opens an MP3 for tag editing, stripping unsupported
// ID3v2.2 headers when present and retrying.
func openMP3Tag(path string) (*id3v2.Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if errors.Is(err, id3v2.ErrUnsupportedVersion) {
		if stripErr := stripID3v2Tag(path); stripErr != nil {
			return nil, fmt.Errorf("strip unsupported ID3v2.2 tag: %w", stripErr)
		}
		id3tag, err = id3v2.Open(path, id3v2.Options{Parse: true})
	}
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return id3tag, nil
}

// stripID3v2Tag removes an ID3v2 tag from an MP3 file. Used to handle
// ID3v2.2 tags which the id3v2 library does not support.
func stripID3v2Tag(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if len(data) < 10 || string(data[:3]) != id3Magic {
		return nil // No ID3v2 tag to strip
	}

	// Tag size is bytes 6-9 as a synchsafe integer (7 bits per byte)
	size := int(data[6])<<21 | int(data[7])<<14 | int(data[8])<<7 | int(data[9])
	tagSize := size + 10

	// Footer flag (bit 4 of flags byte) adds another 10 bytes
	if data[5]&0x10 != 0 {
		tagSize += 10
	}

	if tagSize >= len(data) {
		return fmt.Errorf("ID3v2 tag size (%d) exceeds file size (%d)", tagSize, len(data))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	if err := os.WriteFile(path, data[tagSize:], info.Mode()); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
