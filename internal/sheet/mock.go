package sheet

import "github.com/j6k4m8/beetsheet/internal/tags"

// MockStore is a test double for Store backed by in-memory maps.
type MockStore struct {
	tags       map[string]*tags.Tag
	covers     map[string][]byte
	writeErrs  map[string]error
	coverErrs  map[string]error
	writeCalls []string
	coverCalls []string
}

// NewMockStore creates a mock store for testing.
func NewMockStore() *MockStore {
	return &MockStore{
		tags:      make(map[string]*tags.Tag),
		covers:    make(map[string][]byte),
		writeErrs: make(map[string]error),
		coverErrs: make(map[string]error),
	}
}

func (m *MockStore) Read(path string) *tags.Tag {
	if t, ok := m.tags[path]; ok {
		return t.Clone()
	}
	return &tags.Tag{
		Path:   path,
		Artist: tags.Unknown,
		Album:  tags.Unknown,
		Title:  tags.Unknown,
	}
}

func (m *MockStore) Write(path string, t *tags.Tag) error {
	m.writeCalls = append(m.writeCalls, path)
	if err := m.writeErrs[path]; err != nil {
		return err
	}
	m.tags[path] = t.Clone()
	return nil
}

func (m *MockStore) WriteCover(path string, img []byte, _ string) error {
	m.coverCalls = append(m.coverCalls, path)
	if err := m.coverErrs[path]; err != nil {
		return err
	}
	m.covers[path] = img
	return nil
}

func (m *MockStore) HasCover(path string) bool {
	return len(m.covers[path]) > 0
}

// Test helpers

func (m *MockStore) SetTag(path string, t *tags.Tag) { m.tags[path] = t }

func (m *MockStore) SetWriteError(path string, err error) { m.writeErrs[path] = err }

func (m *MockStore) SetCoverError(path string, err error) { m.coverErrs[path] = err }

func (m *MockStore) WriteCalls() []string { return m.writeCalls }

func (m *MockStore) CoverCalls() []string { return m.coverCalls }

func (m *MockStore) Saved(path string) *tags.Tag { return m.tags[path] }

// Verify MockStore implements Store at compile time.
var _ Store = (*MockStore)(nil)
