package connectors

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type FileMeta struct {
	Path     string
	Size     int64
	Modified time.Time
	IsDir    bool
}

type DiscoveryOptions struct {
	Recursive      bool
	MinSize        int64
	MaxSize        int64
	ModifiedAfter  time.Time
	ModifiedBefore time.Time
}

// DataExtensions are the tabular formats the auditor ingests.
var DataExtensions = []string{"csv", "tsv"}

// DiscoverFiles walks root for files with one of the given extensions,
// applying the option filters. An empty result is not an error; callers
// decide how to report it.
func DiscoverFiles(root string, exts []string, options DiscoveryOptions) ([]FileMeta, int, error) {
	if root == "" {
		return nil, 0, fmt.Errorf("root directory cannot be empty")
	}

	stat, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, 0, fmt.Errorf("directory does not exist: %s", root)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("stat %s: %w", root, err)
	}
	if !stat.IsDir() {
		return nil, 0, fmt.Errorf("path is not a directory: %s", root)
	}

	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.ToLower(ext), ".")
		if ext == "" {
			return nil, 0, fmt.Errorf("file extension cannot be empty")
		}
		wanted["."+ext] = true
	}

	var files []FileMeta
	walkFunc := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if d.IsDir() && path != root && !options.Recursive {
			return filepath.SkipDir
		}

		if !d.IsDir() && wanted[strings.ToLower(filepath.Ext(path))] {
			info, err := d.Info()
			if err != nil {
				return fmt.Errorf("error getting file info for %s: %w", path, err)
			}

			if options.MinSize > 0 && info.Size() < options.MinSize {
				return nil
			}
			if options.MaxSize > 0 && info.Size() > options.MaxSize {
				return nil
			}
			if !options.ModifiedAfter.IsZero() && info.ModTime().Before(options.ModifiedAfter) {
				return nil
			}
			if !options.ModifiedBefore.IsZero() && info.ModTime().After(options.ModifiedBefore) {
				return nil
			}

			files = append(files, FileMeta{
				Path:     path,
				Size:     info.Size(),
				Modified: info.ModTime(),
				IsDir:    false,
			})
		}

		return nil
	}

	if err := filepath.WalkDir(root, walkFunc); err != nil {
		return nil, 0, fmt.Errorf("directory walk error: %w", err)
	}

	return files, len(files), nil
}
