// Package sheet holds the in-memory grid of tracks being edited: the
// ordered track list, its tag metadata, and the dirty/selected row
// state driving bulk edits and saves.
package sheet

import (
	"fmt"
	"os"
	"strconv"

	"github.com/j6k4m8/beetsheet/internal/guess"
	"github.com/j6k4m8/beetsheet/internal/tags"
)

// Field names an editable tag column.
type Field string

const (
	FieldArtist      Field = "artist"
	FieldAlbum       Field = "album"
	FieldTitle       Field = "title"
	FieldTrackNumber Field = "tracknumber"
)

// Track is one row of the grid.
type Track struct {
	Path  string
	Title string
}

// Row is a read-only snapshot of one track and its edit state.
type Row struct {
	Index       int
	Path        string
	Title       string
	Artist      string
	Album       string
	TrackNumber string
	HasAlbumArt bool
	Dirty       bool
	Selected    bool
}

// GuessReport summarizes a bulk heuristic pass: rows where a guess was
// found and applied vs rows where the filename yielded nothing.
type GuessReport struct {
	Applied int
	Skipped int
}

// Sheet owns the track list and its metadata. tracks[i].Path always
// equals meta[i].Path; the list is fixed at construction time.
// Not goroutine-safe; callers serialize access.
type Sheet struct {
	store    Store
	tracks   []Track
	meta     []*tags.Tag
	dirty    map[int]struct{}
	selected map[int]struct{}
}

// New builds a sheet by reading metadata for every path. Reads never
// fail; unreadable files show filename-derived or sentinel values.
func New(store Store, paths []string) *Sheet {
	s := &Sheet{
		store:    store,
		tracks:   make([]Track, 0, len(paths)),
		meta:     make([]*tags.Tag, 0, len(paths)),
		dirty:    make(map[int]struct{}),
		selected: make(map[int]struct{}),
	}
	for _, path := range paths {
		t := store.Read(path)
		s.tracks = append(s.tracks, Track{Path: path, Title: t.Title})
		s.meta = append(s.meta, t)
	}
	return s
}

// Len returns the number of tracks.
func (s *Sheet) Len() int { return len(s.tracks) }

// Paths returns the track paths in grid order.
func (s *Sheet) Paths() []string {
	paths := make([]string, len(s.tracks))
	for i, t := range s.tracks {
		paths[i] = t.Path
	}
	return paths
}

// Rows returns read-only snapshots of every track.
func (s *Sheet) Rows() []Row {
	rows := make([]Row, len(s.tracks))
	for i := range s.tracks {
		rows[i] = s.row(i)
	}
	return rows
}

// Row returns a snapshot of a single track.
func (s *Sheet) Row(i int) (Row, error) {
	if err := s.checkIndex(i); err != nil {
		return Row{}, err
	}
	return s.row(i), nil
}

func (s *Sheet) row(i int) Row {
	m := s.meta[i]
	_, dirty := s.dirty[i]
	_, selected := s.selected[i]
	return Row{
		Index:       i,
		Path:        m.Path,
		Title:       m.Title,
		Artist:      m.Artist,
		Album:       m.Album,
		TrackNumber: m.TrackNumber,
		HasAlbumArt: m.HasAlbumArt,
		Dirty:       dirty,
		Selected:    selected,
	}
}

// SetField updates one tag field of one row and marks it dirty.
// Editing the title also renames the grid row.
func (s *Sheet) SetField(i int, field Field, value string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}

	m := s.meta[i]
	switch field {
	case FieldArtist:
		m.Artist = value
	case FieldAlbum:
		m.Album = value
	case FieldTitle:
		m.Title = value
		s.tracks[i].Title = value
	case FieldTrackNumber:
		m.TrackNumber = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	s.dirty[i] = struct{}{}
	return nil
}

// SetFieldAll overwrites one field on every row. Destructive: every
// row ends up dirty with the same value.
func (s *Sheet) SetFieldAll(field Field, value string) error {
	for i := range s.tracks {
		if err := s.SetField(i, field, value); err != nil {
			return err
		}
	}
	return nil
}

// GuessTitle derives a title from the row's filename and applies it.
// A title guess always produces a value, even an empty one for an
// empty stem; only an invalid index leaves the row untouched.
func (s *Sheet) GuessTitle(i int) (string, bool) {
	if s.checkIndex(i) != nil {
		return "", false
	}
	title := guess.Title(s.tracks[i].Path)
	_ = s.SetField(i, FieldTitle, title)
	return title, true
}

// GuessTitles runs the title heuristic over every row.
func (s *Sheet) GuessTitles() GuessReport {
	var r GuessReport
	for i := range s.tracks {
		if _, ok := s.GuessTitle(i); ok {
			r.Applied++
		} else {
			r.Skipped++
		}
	}
	return r
}

// GuessTrackNumber derives a track number from the row's filename and
// applies it. Rows whose filename carries no number are left alone.
func (s *Sheet) GuessTrackNumber(i int) (int, bool) {
	if s.checkIndex(i) != nil {
		return 0, false
	}
	n, ok := guess.TrackNumber(s.tracks[i].Path)
	if !ok {
		return 0, false
	}
	_ = s.SetField(i, FieldTrackNumber, strconv.Itoa(n))
	return n, true
}

// GuessTrackNumbers runs the track-number heuristic over every row.
func (s *Sheet) GuessTrackNumbers() GuessReport {
	var r GuessReport
	for i := range s.tracks {
		if _, ok := s.GuessTrackNumber(i); ok {
			r.Applied++
		} else {
			r.Skipped++
		}
	}
	return r
}

// GuessArtist returns the artist prefix shared by every track
// filename, when one exists. It is a hint only; nothing is applied.
func (s *Sheet) GuessArtist() (string, bool) {
	return guess.CommonPrefix(s.Paths())
}

// SaveDirty writes every dirty row back to its file. Rows that save
// become clean; rows that fail stay dirty. The pass never aborts
// early, so one broken file cannot block the rest of the batch.
func (s *Sheet) SaveDirty() (saved, failed int) {
	for i := range s.tracks {
		if _, ok := s.dirty[i]; !ok {
			continue
		}
		if err := s.store.Write(s.tracks[i].Path, s.meta[i]); err != nil {
			failed++
			continue
		}
		delete(s.dirty, i)
		saved++
	}
	return saved, failed
}

// DirtyCount returns the number of rows with unsaved edits.
func (s *Sheet) DirtyCount() int { return len(s.dirty) }

// AttachCover embeds an image file as the row's front cover. The write
// is synchronous; on success the row's art flag is recomputed from the
// file and the row marked dirty.
func (s *Sheet) AttachCover(i int, imagePath string) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}

	img, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	path := s.tracks[i].Path
	if err := s.store.WriteCover(path, img, tags.MIMETypeByExt(imagePath)); err != nil {
		return fmt.Errorf("write cover: %w", err)
	}

	s.meta[i].HasAlbumArt = s.store.HasCover(path)
	s.dirty[i] = struct{}{}
	return nil
}

// AttachCoverSelected attaches the image to every selected row,
// counting successes and failures without aborting.
func (s *Sheet) AttachCoverSelected(imagePath string) (done, failed int) {
	for _, i := range s.SelectedIndices() {
		if err := s.AttachCover(i, imagePath); err != nil {
			failed++
			continue
		}
		done++
	}
	return done, failed
}

// Selection. Orthogonal to dirty state.

func (s *Sheet) Select(i int) {
	if s.checkIndex(i) == nil {
		s.selected[i] = struct{}{}
	}
}

func (s *Sheet) Deselect(i int) { delete(s.selected, i) }

func (s *Sheet) ToggleSelect(i int) {
	if _, ok := s.selected[i]; ok {
		s.Deselect(i)
		return
	}
	s.Select(i)
}

func (s *Sheet) SelectAll() {
	for i := range s.tracks {
		s.selected[i] = struct{}{}
	}
}

func (s *Sheet) ClearSelection() { s.selected = make(map[int]struct{}) }

// SelectedIndices returns the selected row indices in grid order.
func (s *Sheet) SelectedIndices() []int {
	indices := make([]int, 0, len(s.selected))
	for i := range s.tracks {
		if _, ok := s.selected[i]; ok {
			indices = append(indices, i)
		}
	}
	return indices
}

func (s *Sheet) checkIndex(i int) error {
	if i < 0 || i >= len(s.tracks) {
		return fmt.Errorf("row %d out of range [0, %d)", i, len(s.tracks))
	}
	return nil
}
