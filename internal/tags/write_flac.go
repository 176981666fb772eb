package tags

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// writeFLACTags updates Vorbis comments in a FLAC file. Existing
// comments are preserved; only the fields carried by t are replaced.
func writeFLACTags(path string, t *Tag) error {
	f, err := openFLAC(path)
	if err != nil {
		return err
	}

	cmts, cmtIdx := flacComments(f)

	setVorbisComment(cmts, "TITLE", t.Title)
	setVorbisComment(cmts, "ARTIST", t.Artist)
	setVorbisComment(cmts, "ALBUM", t.Album)
	if t.TrackNumber != "" {
		setVorbisComment(cmts, "TRACKNUMBER", t.TrackNumber)
	}

	cmtBlock := cmts.Marshal()
	if cmtIdx >= 0 {
		f.Meta[cmtIdx] = &cmtBlock
	} else {
		f.Meta = append(f.Meta, &cmtBlock)
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save file: %w", err)
	}
	return nil
}

// openFLAC parses a FLAC file, stripping an ID3v2 header first when
// some broken tool has prepended one.
func openFLAC(path string) (*flac.File, error) {
	f, id3Size, err := parseFLACWithID3Support(path)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	if id3Size > 0 {
		if err := stripFLACID3Header(path, id3Size); err != nil {
			return nil, fmt.Errorf("strip ID3v2 header: %w", err)
		}
		f, err = flac.ParseFile(path)
		if err != nil {
			return nil, fmt.Errorf("parse file after ID3 strip: %w", err)
		}
	}

	return f, nil
}

// flacComments returns the parsed VORBIS_COMMENT block and its index
// in f.Meta, or a fresh block and -1 when none exists.
func flacComments(f *flac.File) (*flacvorbis.MetaDataBlockVorbisComment, int) {
	for i, meta := range f.Meta {
		if meta.Type == flac.VorbisComment {
			if cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta); err == nil {
				return cmts, i
			}
			// Unparseable block gets replaced wholesale
			return flacvorbis.New(), i
		}
	}
	return flacvorbis.New(), -1
}

// setVorbisComment replaces all values of key with a single value.
// Empty or sentinel values leave the existing comment untouched.
func setVorbisComment(cmts *flacvorbis.MetaDataBlockVorbisComment, key, value string) {
	if !writable(value) {
		return
	}

	prefix := key + "="
	kept := cmts.Comments[:0]
	for _, c := range cmts.Comments {
		if !strings.HasPrefix(strings.ToUpper(c), prefix) {
			kept = append(kept, c)
		}
	}
	cmts.Comments = kept

	_ = cmts.Add(key, value)
}

// parseFLACWithID3Support parses a FLAC file, detecting a prepended
// ID3v2 header. Returns the parsed file, the header size (0 when
// absent), and any error.
func parseFLACWithID3Support(path string) (*flac.File, int64, error) {
	f, err := flac.ParseFile(path)
	if err == nil {
		return f, 0, nil
	}

	file, openErr := os.Open(path)
	if openErr != nil {
		return nil, 0, err // Return original error
	}
	defer file.Close()

	header := make([]byte, 10)
	if _, readErr := io.ReadFull(file, header); readErr != nil {
		return nil, 0, err
	}

	if !bytes.Equal(header[:3], []byte(id3Magic)) {
		return nil, 0, err // Not an ID3v2 header
	}

	// Size is stored in bytes 6-9 as a syncsafe integer
	id3Size := int64(10)
	id3Size += int64(header[6]&0x7f)<<21 |
		int64(header[7]&0x7f)<<14 |
		int64(header[8]&0x7f)<<7 |
		int64(header[9]&0x7f)

	// Verify FLAC magic after the ID3v2 header
	if _, seekErr := file.Seek(id3Size, io.SeekStart); seekErr != nil {
		return nil, 0, err
	}
	flacMagic := make([]byte, 4)
	if _, readErr := io.ReadFull(file, flacMagic); readErr != nil {
		return nil, 0, err
	}
	if !bytes.Equal(flacMagic, []byte("fLaC")) {
		return nil, 0, errors.New("no fLaC marker found after ID3v2 header")
	}

	return nil, id3Size, nil
}

// stripFLACID3Header removes a prepended ID3v2 header by rewriting the file.
func stripFLACID3Header(path string, id3Size int64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if int64(len(data)) <= id3Size {
		return errors.New("file too small to strip ID3v2 header")
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data[id3Size:], info.Mode().Perm())
}
