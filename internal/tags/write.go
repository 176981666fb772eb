package tags

import (
	"fmt"
	"os"
)

// Write writes tag metadata to a music file in place. The file must
// already exist. Empty fields and the Unknown sentinel are skipped so
// a partial Tag only touches the fields it carries.
func Write(path string, t *Tag) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %w", err)
	}

	switch ext(path) {
	case ExtMP3:
		return writeMP3Tags(path, t)
	case ExtFLAC:
		return writeFLACTags(path, t)
	case ExtOGG, ExtOGA:
		return writeOggTags(path, t)
	default:
		return writeGenericTags(path, t)
	}
}

// writable reports whether a field value should be persisted.
// Unknown is a display sentinel, never a tag value.
func writable(value string) bool {
	return value != "" && value != Unknown
}
