package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/go-flac"
	"go.senan.xyz/taglib"
)

// ReadCover extracts the embedded front cover from a music file.
// The third return value is false when the format is unsupported, no
// picture is embedded, or the read fails.
func ReadCover(path string) ([]byte, string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", false
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, "", false
	}

	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, "", false
	}
	return pic.Data, pic.MIMEType, true
}

// HasCover reports whether a file has an embedded front cover.
func HasCover(path string) bool {
	_, _, ok := ReadCover(path)
	return ok
}

// WriteCover embeds image data as the front cover of a music file,
// replacing any existing cover so at most one remains. For containers
// without picture support the image is written as a sibling
// "<stem>_cover.<ext>" file instead (degraded, non-embedded mode).
func WriteCover(path string, img []byte, mimeType string) error {
	if len(img) == 0 {
		return fmt.Errorf("empty image data")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %w", err)
	}

	switch ext(path) {
	case ExtMP3:
		return writeMP3Cover(path, img, mimeType)
	case ExtFLAC:
		return writeFLACCover(path, img, mimeType)
	case ExtOGG, ExtOGA:
		return writeOggCover(path, img)
	default:
		return writeSiblingCover(path, img, mimeType)
	}
}

// MIMETypeByExt derives an image MIME type from a file extension.
// Unknown extensions default to JPEG.
func MIMETypeByExt(imagePath string) string {
	switch strings.ToLower(filepath.Ext(imagePath)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	default:
		return "image/jpeg"
	}
}

// extForMIME is the inverse mapping used for sibling cover filenames.
func extForMIME(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	default:
		return ".jpg"
	}
}

// writeMP3Cover replaces all attached-picture frames with a single
// front cover.
func writeMP3Cover(path string, img []byte, mimeType string) error {
	id3tag, err := openMP3Tag(path)
	if err != nil {
		return err
	}
	defer id3tag.Close()

	id3tag.SetVersion(4)

	picID := id3tag.CommonID("Attached picture")
	id3tag.DeleteFrames(picID)
	id3tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    mimeType,
		PictureType: id3v2.PTFrontCover,
		Description: "Front Cover",
		Picture:     img,
	})

	if err := id3tag.Save(); err != nil {
		return fmt.Errorf("save cover: %w", err)
	}
	return nil
}

// writeFLACCover drops every picture block and appends one front cover.
func writeFLACCover(path string, img []byte, mimeType string) error {
	f, err := openFLAC(path)
	if err != nil {
		return err
	}

	kept := make([]*flac.MetaDataBlock, 0, len(f.Meta))
	for _, meta := range f.Meta {
		if meta.Type != flac.Picture {
			kept = append(kept, meta)
		}
	}
	f.Meta = kept

	pic, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "Front Cover", img, mimeType)
	if err != nil {
		return fmt.Errorf("create picture: %w", err)
	}
	picBlock := pic.Marshal()
	f.Meta = append(f.Meta, &picBlock)

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save file: %w", err)
	}
	return nil
}

// writeOggCover stores the cover through TagLib, which serializes it
// as a single base64 encoded FLAC picture structure under the
// reserved METADATA_BLOCK_PICTURE comment, replacing any prior value.
func writeOggCover(path string, img []byte) error {
	if err := taglib.WriteImage(path, img); err != nil {
		return fmt.Errorf("write picture comment: %w", err)
	}
	return nil
}

// writeSiblingCover copies the image next to the audio file.
func writeSiblingCover(path string, img []byte, mimeType string) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	coverPath := filepath.Join(dir, stem+"_cover"+extForMIME(mimeType))
	if err := os.WriteFile(coverPath, img, 0o644); err != nil {
		return fmt.Errorf("write sibling cover: %w", err)
	}
	return nil
}
