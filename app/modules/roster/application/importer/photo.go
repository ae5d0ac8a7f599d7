package importer

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// playerPhotoDir is the managed storage location for player photos,
// relative to the media root.
const playerPhotoDir = "players/photos"

// PhotoLocator probes candidate filesystem paths for a referenced
// photo. It never writes.
type PhotoLocator struct {
	MediaRoot string
	Subdir    string
}

// Locate returns the first existing candidate path for ref. Candidate
// order: <root>/<subdir>/<team>/<ref>, <root>/<subdir>/<ref>,
// <root>/<ref>. An empty ref short-circuits without touching the
// filesystem.
func (l PhotoLocator) Locate(ref, teamName string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}

	var candidates []string
	if teamName != "" {
		candidates = append(candidates, filepath.Join(l.MediaRoot, l.Subdir, teamName, ref))
	}
	candidates = append(candidates,
		filepath.Join(l.MediaRoot, l.Subdir, ref),
		filepath.Join(l.MediaRoot, ref),
	)

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, true
		}
	}
	return "", false
}

// PhotoAttacher copies located photos into the managed media tree.
type PhotoAttacher struct {
	MediaRoot string
}

// Attach copies src into the player photo directory under the given
// filename and returns the relative reference to persist. The relative
// path always uses forward slashes.
func (a PhotoAttacher) Attach(src, filename string) (string, error) {
	dstDir := filepath.Join(a.MediaRoot, filepath.FromSlash(playerPhotoDir))
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	dst := filepath.Join(dstDir, filename)
	if err := copyFile(src, dst); err != nil {
		return "", err
	}

	return path.Join(playerPhotoDir, filename), nil
}

// copyFile copies src to dst byte-for-byte, preserving permissions and
// timestamps where the filesystem allows.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close destination: %w", err)
	}

	// Ignore timestamp failures since not every filesystem supports it.
	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	return nil
}
