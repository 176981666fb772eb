package tags

import (
	"bytes"
	"encoding/binary"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// Test file creation helpers

// createTestMP3 creates a minimal MP3 file with optional tags.
func createTestMP3(t *testing.T, dir, name string, tags *Tag) string {
	t.Helper()
	path := filepath.Join(dir, name)

	// Minimal MP3 frame (MPEG1 Layer3, 128kbps, 44100Hz, stereo)
	mp3Frame := make([]byte, 417)
	mp3Frame[0] = 0xff
	mp3Frame[1] = 0xfb
	mp3Frame[2] = 0x90
	mp3Frame[3] = 0x00

	if err := os.WriteFile(path, mp3Frame, 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}

	if tags != nil {
		if err := writeMP3Tags(path, tags); err != nil {
			t.Fatalf("failed to write MP3 tags: %v", err)
		}
	}

	return path
}

// createTestFLAC creates a test FLAC file using ffmpeg.
func createTestFLAC(t *testing.T, dir, name string, tags *Tag) string {
	t.Helper()
	path := filepath.Join(dir, name)

	cmd := exec.Command("ffmpeg", "-y", "-f", "lavfi", "-i", "sine=frequency=440:duration=1", "-c:a", "flac", path)
	cmd.Stderr = nil
	cmd.Stdout = nil
	if err := cmd.Run(); err != nil {
		t.Skipf("ffmpeg not available: %v", err)
	}

	if tags != nil {
		if err := writeFLACTags(path, tags); err != nil {
			t.Fatalf("failed to write FLAC tags: %v", err)
		}
	}

	return path
}

// createTestVorbis creates a test Vorbis (.ogg) file using ffmpeg.
func createTestVorbis(t *testing.T, dir, name string, tags *Tag) string {
	t.Helper()
	path := filepath.Join(dir, name)

	cmd := exec.Command("ffmpeg", "-y", "-f", "lavfi", "-i", "sine=frequency=440:duration=1", "-c:a", "libvorbis", path)
	cmd.Stderr = nil
	cmd.Stdout = nil
	if err := cmd.Run(); err != nil {
		t.Skipf("ffmpeg not available: %v", err)
	}

	if tags != nil {
		if err := writeOggTags(path, tags); err != nil {
			t.Fatalf("failed to write Vorbis tags: %v", err)
		}
	}

	return path
}

// createTestWAV creates a minimal PCM WAV file by hand.
func createTestWAV(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)

	samples := make([]byte, 8) // four 16-bit mono samples of silence

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	writeLE(&buf, uint32(36+len(samples)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	writeLE(&buf, uint32(16))
	writeLE(&buf, uint16(1)) // PCM
	writeLE(&buf, uint16(1)) // mono
	writeLE(&buf, uint32(44100))
	writeLE(&buf, uint32(44100*2))
	writeLE(&buf, uint16(2))
	writeLE(&buf, uint16(16))
	buf.WriteString("data")
	writeLE(&buf, uint32(len(samples)))
	buf.Write(samples)

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("failed to create test WAV: %v", err)
	}
	return path
}

func writeLE(buf *bytes.Buffer, v any) {
	if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
		panic(err)
	}
}

// tinyJPEG returns a minimal JPEG payload (header + EOI) good enough
// for embedding tests.
func tinyJPEG() []byte {
	return []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0xff, 0xd9}
}

// Tests for Read()

func TestRead_MissingFile(t *testing.T) {
	result := Read("/nonexistent/Song.mp3")

	if result.Artist != Unknown {
		t.Errorf("Artist = %q, want %q", result.Artist, Unknown)
	}
	if result.Album != Unknown {
		t.Errorf("Album = %q, want %q", result.Album, Unknown)
	}
	if result.Title != Unknown {
		t.Errorf("Title = %q, want %q", result.Title, Unknown)
	}
	if result.Path != "/nonexistent/Song.mp3" {
		t.Errorf("Path = %q", result.Path)
	}
	if result.HasAlbumArt {
		t.Error("HasAlbumArt = true for missing file")
	}
}

func TestRead_FilenameFallback(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantArtist string
		wantAlbum  string
		wantTitle  string
	}{
		{
			name:       "artist album title",
			path:       "/nope/Artist - Album - Title.mp3",
			wantArtist: "Artist",
			wantAlbum:  "Album",
			wantTitle:  "Title",
		},
		{
			name:       "artist title",
			path:       "/nope/Artist - Title.mp3",
			wantArtist: "Artist",
			wantAlbum:  Unknown,
			wantTitle:  "Title",
		},
		{
			name:       "no separator",
			path:       "/nope/Title.mp3",
			wantArtist: Unknown,
			wantAlbum:  Unknown,
			wantTitle:  Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Read(tt.path)
			if result.Artist != tt.wantArtist {
				t.Errorf("Artist = %q, want %q", result.Artist, tt.wantArtist)
			}
			if result.Album != tt.wantAlbum {
				t.Errorf("Album = %q, want %q", result.Album, tt.wantAlbum)
			}
			if result.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", result.Title, tt.wantTitle)
			}
		})
	}
}

func TestRead_MP3RoundTrip(t *testing.T) {
	dir := t.TempDir()
	written := &Tag{
		Title:       "X",
		Artist:      "Some Artist",
		Album:       "Some Album",
		TrackNumber: "3",
	}
	path := createTestMP3(t, dir, "test.mp3", written)

	result := Read(path)

	if result.Title != written.Title {
		t.Errorf("Title = %q, want %q", result.Title, written.Title)
	}
	if result.Artist != written.Artist {
		t.Errorf("Artist = %q, want %q", result.Artist, written.Artist)
	}
	if result.Album != written.Album {
		t.Errorf("Album = %q, want %q", result.Album, written.Album)
	}
	if result.TrackNumber != written.TrackNumber {
		t.Errorf("TrackNumber = %q, want %q", result.TrackNumber, written.TrackNumber)
	}
	if result.HasAlbumArt {
		t.Error("HasAlbumArt = true, no cover was written")
	}
}

func TestRead_MP3TaglessFallsBackToFilename(t *testing.T) {
	dir := t.TempDir()
	path := createTestMP3(t, dir, "Cool Artist - Cool Song.mp3", nil)

	result := Read(path)

	if result.Artist != "Cool Artist" {
		t.Errorf("Artist = %q, want %q", result.Artist, "Cool Artist")
	}
	if result.Title != "Cool Song" {
		t.Errorf("Title = %q, want %q", result.Title, "Cool Song")
	}
}

func TestRead_FLACRoundTrip(t *testing.T) {
	dir := t.TempDir()
	written := &Tag{
		Title:       "X",
		Artist:      "Flac Artist",
		Album:       "Flac Album",
		TrackNumber: "7",
	}
	path := createTestFLAC(t, dir, "test.flac", written)

	result := Read(path)

	if result.Title != written.Title {
		t.Errorf("Title = %q, want %q", result.Title, written.Title)
	}
	if result.Artist != written.Artist {
		t.Errorf("Artist = %q, want %q", result.Artist, written.Artist)
	}
	if result.Album != written.Album {
		t.Errorf("Album = %q, want %q", result.Album, written.Album)
	}
	if result.TrackNumber != written.TrackNumber {
		t.Errorf("TrackNumber = %q, want %q", result.TrackNumber, written.TrackNumber)
	}
}

func TestRead_OggRoundTrip(t *testing.T) {
	dir := t.TempDir()
	written := &Tag{
		Title:  "X",
		Artist: "Ogg Artist",
		Album:  "Ogg Album",
	}
	path := createTestVorbis(t, dir, "test.ogg", written)

	result := Read(path)

	if result.Title != written.Title {
		t.Errorf("Title = %q, want %q", result.Title, written.Title)
	}
	if result.Artist != written.Artist {
		t.Errorf("Artist = %q, want %q", result.Artist, written.Artist)
	}
	if result.Album != written.Album {
		t.Errorf("Album = %q, want %q", result.Album, written.Album)
	}
}

func TestRead_CorruptFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Artist - Song.mp3")
	if err := os.WriteFile(path, []byte("not an mp3 at all"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	result := Read(path)

	// Corrupt container never crashes; filename-derived values remain
	if result.Artist != "Artist" {
		t.Errorf("Artist = %q, want %q", result.Artist, "Artist")
	}
	if result.Title != "Song" {
		t.Errorf("Title = %q, want %q", result.Title, "Song")
	}
}

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"song.flac", true},
		{"song.ogg", true},
		{"song.oga", true},
		{"song.wav", true},
		{"song.txt", false},
		{"song", false},
		{"cover.jpg", false},
	}

	for _, tt := range tests {
		if got := IsMusicFile(tt.path); got != tt.want {
			t.Errorf("IsMusicFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
