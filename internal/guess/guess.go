// Package guess derives tag metadata from filenames.
// All functions are pure: they look at the path string only, never at
// file contents.
package guess

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	// reVideoID matches an 11-character video-site content ID in square
	// brackets, e.g. "Song [dQw4w9WgXcQ]", with surrounding whitespace.
	reVideoID = regexp.MustCompile(`\s*\[[a-zA-Z0-9_-]{11}\]\s*`)
	// reTrackPrefix matches a leading track number plus separators,
	// e.g. "03 - ", "1.", "07_".
	reTrackPrefix = regexp.MustCompile(`^\d+[\s\-_.]+`)
	// reBracketNumber matches a digit run in parentheses or square
	// brackets anywhere in the stem, e.g. "Song (7)" or "Song [01]".
	reBracketNumber = regexp.MustCompile(`[([]\s*(\d+)\s*[)\]]`)
	// reSeparators matches underscores and periods used as word
	// separators in filenames.
	reSeparators = regexp.MustCompile(`[_.]`)
	// reMultiSpace matches runs of whitespace.
	reMultiSpace = regexp.MustCompile(`\s+`)
)

// artistSep is the literal separator between an artist prefix and the
// rest of a filename stem.
const artistSep = " - "

// Title extracts a probable track title from a file path.
// Only the filename stem is considered; directory and extension are
// ignored. An empty stem yields an empty string.
func Title(path string) string {
	name := stem(path)

	name = reVideoID.ReplaceAllString(name, "")
	name = reTrackPrefix.ReplaceAllString(name, "")
	name = reSeparators.ReplaceAllString(name, " ")
	name = reMultiSpace.ReplaceAllString(name, " ")

	return strings.TrimSpace(name)
}

// TrackNumber extracts a track number from a file path.
// A leading digit run followed by separators wins; otherwise a digit
// run in brackets or parentheses anywhere in the stem is used. The
// second return value is false when the filename holds no opinion.
func TrackNumber(path string) (int, bool) {
	name := stem(path)

	if m := reTrackPrefix.FindString(name); m != "" {
		digits := strings.TrimRight(m, " \t-_.")
		if n, err := strconv.Atoi(digits); err == nil {
			return n, true
		}
	}

	if m := reBracketNumber.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}

	return 0, false
}

// CommonPrefix finds a shared "Artist - " prefix across filenames.
// Every stem must split into exactly two parts on the first " - " and
// all first parts must be identical; anything else is no opinion.
func CommonPrefix(paths []string) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}

	var prefix string
	for i, path := range paths {
		parts := strings.SplitN(stem(path), artistSep, 2)
		if len(parts) != 2 {
			return "", false
		}
		if i == 0 {
			prefix = parts[0]
			continue
		}
		if parts[0] != prefix {
			return "", false
		}
	}
	return prefix, true
}

// Titles guesses a title for every path and reports the common artist
// prefix across the whole set, if any.
func Titles(paths []string) (map[string]string, string, bool) {
	titles := make(map[string]string, len(paths))
	for _, path := range paths {
		titles[path] = Title(path)
	}
	prefix, ok := CommonPrefix(paths)
	return titles, prefix, ok
}

// StripVideoID removes video-site content IDs from a string that is
// already a title rather than a path.
func StripVideoID(s string) string {
	return reVideoID.ReplaceAllString(s, "")
}

// stem returns the filename without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
