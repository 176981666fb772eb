package tags

import (
	"fmt"

	"go.senan.xyz/taglib"
)

// writeOggTags writes Vorbis comments to an Ogg file using TagLib.
// Only the fields carried by t are replaced; other comments stay.
func writeOggTags(path string, t *Tag) error {
	props := make(map[string][]string)

	setProp := func(key, value string) {
		if writable(value) {
			props[key] = []string{value}
		}
	}

	setProp(taglib.Title, t.Title)
	setProp(taglib.Artist, t.Artist)
	setProp(taglib.Album, t.Album)
	if t.TrackNumber != "" {
		props[taglib.TrackNumber] = []string{t.TrackNumber}
	}

	if len(props) == 0 {
		return nil
	}

	if err := taglib.WriteTags(path, props, 0); err != nil {
		return fmt.Errorf("write tags: %w", err)
	}
	return nil
}
