package sheet

import "github.com/j6k4m8/beetsheet/internal/tags"

// Store is the tag persistence contract the sheet depends on,
// abstracted for dependency injection and testing.
type Store interface {
	Read(path string) *tags.Tag
	Write(path string, t *tags.Tag) error
	WriteCover(path string, img []byte, mimeType string) error
	HasCover(path string) bool
}

// FileStore persists tags to the actual files on disk.
type FileStore struct{}

func (FileStore) Read(path string) *tags.Tag { return tags.Read(path) }

func (FileStore) Write(path string, t *tags.Tag) error { return tags.Write(path, t) }

func (FileStore) WriteCover(path string, img []byte, mimeType string) error {
	return tags.WriteCover(path, img, mimeType)
}

func (FileStore) HasCover(path string) bool { return tags.HasCover(path) }

// Verify FileStore implements Store at compile time.
var _ Store = FileStore{}
