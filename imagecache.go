package drawbot

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultImageCacheSize matches the original's lru_cache(maxsize=32).
const defaultImageCacheSize = 32

// ImageCache is a bounded, path-keyed image decode cache. Each Drawing owns
// its own cache, so entries live no longer than the drawing that loaded
// them and repeated references to the same file never re-decode.
type ImageCache struct {
	cache *lru.Cache[string, image.Image]
}

// NewImageCache creates a cache holding up to capacity decoded images.
func NewImageCache(capacity int) *ImageCache {
	if capacity < 1 {
		capacity = defaultImageCacheSize
	}
	// lru.New only fails for non-positive sizes, which are clamped above.
	cache, _ := lru.New[string, image.Image](capacity)
	return &ImageCache{cache: cache}
}

// Get returns the decoded image for path, decoding and caching it on the
// first reference. Decode failures are propagated unmodified.
func (c *ImageCache) Get(path string) (image.Image, error) {
	if img, ok := c.cache.Get(path); ok {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("drawbot: failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("drawbot: failed to decode image %q: %w", path, err)
	}
	Logger().Debug("image decoded", "path", path, "format", format)

	c.cache.Add(path, img)
	return img, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	return c.cache.Len()
}
