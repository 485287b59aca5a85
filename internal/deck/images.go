package deck

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ImageExtensions are the rendered image formats looked up under Tokens/.
var ImageExtensions = []string{".svg", ".png", ".jpg", ".jpeg", ".webp"}

var imagePattern = "**/*.{" + strings.Join(trimDots(ImageExtensions), ",") + "}"

func trimDots(exts []string) []string {
	out := make([]string, len(exts))
	for i, ext := range exts {
		out[i] = strings.TrimPrefix(ext, ".")
	}
	return out
}

// ImageKey normalizes a token name or image base name for matching:
// case is ignored and underscores count as spaces.
func ImageKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", " "))
}

// TokenImages maps ImageKey of every rendered image below the deck's Tokens
// folder to its path. A missing folder yields an empty map.
func (d *Deck) TokenImages() (map[string]string, error) {
	images := map[string]string{}
	dir := d.TokensDir()
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return images, nil
	}

	matches, err := doublestar.Glob(os.DirFS(dir), imagePattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	for _, m := range matches {
		base := path.Base(m)
		key := ImageKey(strings.TrimSuffix(base, path.Ext(base)))
		if _, ok := images[key]; !ok {
			images[key] = filepath.Join(dir, filepath.FromSlash(m))
		}
	}
	return images, nil
}

// TokenImage returns the rendered image of the named token, if any.
func (d *Deck) TokenImage(name string) (string, bool) {
	images, err := d.TokenImages()
	if err != nil {
		return "", false
	}
	p, ok := images[ImageKey(name)]
	return p, ok
}
