package venice

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// DefaultOutputDir receives generated images when no directory is given.
	DefaultOutputDir = "generated"

	// upscaledSubdir and metadataSubdir live under the output directory.
	upscaledSubdir = "upscaled"
	metadataSubdir = "metadata"

	defaultStemName = "venice_image"
	stemTimeLayout  = "20060102_150405"
)

// ErrInvalidAspectRatio reports an aspect ratio outside the known set.
var ErrInvalidAspectRatio = errors.New("invalid aspect ratio")

// aspectDims maps the named aspect ratios to pixel dimensions.
var aspectDims = map[string][2]int{
	"square": {1024, 1024},
	"tall":   {768, 1024},
	"wide":   {1024, 768},
}

// AspectRatios returns the valid aspect ratio names, sorted.
func AspectRatios() []string {
	names := make([]string, 0, len(aspectDims))
	for name := range aspectDims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EffectiveDims resolves the pixel dimensions for a generation request.
// Explicit width and height override the named aspect ratio; otherwise the
// ratio is looked up, defaulting to tall.
func EffectiveDims(aspectRatio string, width, height int) (int, int, error) {
	if width > 0 && height > 0 {
		return width, height, nil
	}

	if aspectRatio == "" {
		aspectRatio = DefaultAspectRatio
	}

	dims, ok := aspectDims[aspectRatio]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q (valid: %s)",
			ErrInvalidAspectRatio, aspectRatio, strings.Join(AspectRatios(), ", "))
	}

	return dims[0], dims[1], nil
}

// artifactDirs holds the resolved output layout for one generation.
type artifactDirs struct {
	root     string
	upscaled string
	metadata string
}

// ensureDirs creates the output directory tree.
func ensureDirs(root string) (artifactDirs, error) {
	if root == "" {
		root = DefaultOutputDir
	}

	dirs := artifactDirs{
		root:     root,
		upscaled: filepath.Join(root, upscaledSubdir),
		metadata: filepath.Join(root, metadataSubdir),
	}

	for _, dir := range []string{dirs.root, dirs.upscaled, dirs.metadata} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return artifactDirs{}, fmt.Errorf("creating output directory: %w", err)
		}
	}

	return dirs, nil
}

// stem mints a distinct artifact filename stem. The seed tag records the
// request seed when one was set; the trailing sequence number keeps stems
// minted within the same second apart.
func (c *Client) stem(name string, seed *int64) string {
	if name == "" {
		name = defaultStemName
	}

	seedTag := "rnd"
	if seed != nil {
		seedTag = fmt.Sprintf("s%d", *seed)
	}

	return fmt.Sprintf("%s_%s_%s_%d",
		name, seedTag, time.Now().Format(stemTimeLayout), c.seq.Add(1))
}

// writeAtomic writes data through a temporary sibling and renames it into
// place, so a crash never leaves a truncated artifact at the final path.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".part"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming %s into place: %w", tmp, err)
	}

	return nil
}

// digest returns the hex SHA-256 of the artifact bytes.
func digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
