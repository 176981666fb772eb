package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/j6k4m8/beetsheet/internal/config"
	"github.com/j6k4m8/beetsheet/internal/tags"
)

// collectTracks validates the given paths and expands directories into
// supported music files, sorted. With no args it falls back to the
// configured default folder, then the working directory.
func collectTracks(cfg *config.Config, args []string) ([]string, error) {
	if len(args) == 0 {
		folder := cfg.DefaultFolder
		if folder == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			folder = wd
		}
		args = []string{folder}
	}

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", arg, err)
		}

		if !info.IsDir() {
			if !tags.IsMusicFile(arg) {
				return nil, fmt.Errorf("unsupported file type: %s", arg)
			}
			paths = append(paths, arg)
			continue
		}

		expanded, err := scanFolder(arg, cfg.Recursive)
		if err != nil {
			return nil, fmt.Errorf("scan %q: %w", arg, err)
		}
		paths = append(paths, expanded...)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no music files found")
	}

	sort.Strings(paths)
	return paths, nil
}

func scanFolder(dir string, recursive bool) ([]string, error) {
	var paths []string

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if tags.IsMusicFile(path) {
				paths = append(paths, path)
			}
		}
		return paths, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && tags.IsMusicFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
