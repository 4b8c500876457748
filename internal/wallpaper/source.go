// Package wallpaper owns the daemon's session state, the cycling loop, and
// the boundary to the external wallpaper-setting tool.
package wallpaper

import (
	"os"
	"path/filepath"
)

// List returns the regular files directly inside dir, as absolute paths in
// directory listing order. With recursive set it descends into
// subdirectories depth-first and appends their files. A directory that
// cannot be opened fails the whole call.
func List(dir string, recursive bool) ([]string, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		switch {
		case entry.Type().IsRegular():
			files = append(files, path)
		case entry.IsDir() && recursive:
			sub, err := List(path, true)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
		}
	}
	return files, nil
}
