// Package logo fetches the letterhead image once per process and keeps a
// JPEG copy for embedding in generated documents.
package logo

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"net/http"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/singleflight"
)

// JPEGQuality used for the embedded copy.
const JPEGQuality = 80

// Cache is safe for concurrent use. The zero value is not usable; call New.
type Cache struct {
	url    string
	client *http.Client
	group  singleflight.Group

	mu        sync.RWMutex
	attempted bool
	jpeg      []byte
}

// New returns an empty cache for url. A nil client means http.DefaultClient.
func New(url string, client *http.Client) *Cache {
	if client == nil {
		client = http.DefaultClient
	}
	return &Cache{url: url, client: client}
}

// EnsureLoaded blocks until the single fetch attempt has finished. Callers
// arriving while it is in flight share it. A failed attempt is logged and
// leaves the cache empty; it is never retried and EnsureLoaded still returns
// nil. The only error is ctx ending while waiting, which does not abort the
// shared attempt.
func (c *Cache) EnsureLoaded(ctx context.Context) error {
	if c.done() {
		return nil
	}
	ch := c.group.DoChan("logo", func() (any, error) {
		c.load(context.WithoutCancel(ctx))
		return nil, nil
	})
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Get returns the encoded JPEG, if the fetch succeeded.
func (c *Cache) Get() ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jpeg, c.jpeg != nil
}

// DataURI returns the logo as a base64 data URI, or "" when empty.
func (c *Cache) DataURI() string {
	b, ok := c.Get()
	if !ok {
		return ""
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(b)
}

func (c *Cache) done() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.attempted
}

func (c *Cache) load(ctx context.Context) {
	// A flight started after an earlier one completed lands here.
	if c.done() {
		return
	}
	data, err := c.fetch(ctx)

	c.mu.Lock()
	c.attempted = true
	if err == nil {
		c.jpeg = data
	}
	c.mu.Unlock()

	if err != nil {
		log.Printf("logo: preload failed, documents will render without it: %v", err)
		return
	}
	log.Printf("logo: cached %d bytes from %s", len(data), c.url)
}

func (c *Cache) fetch(ctx context.Context) ([]byte, error) {
	if c.url == "" {
		return nil, errors.New("no logo url configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: %s", c.url, resp.Status)
	}

	img, err := imaging.Decode(resp.Body, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}
	return Encode(img)
}

// Encode flattens img onto white and encodes it as JPEG.
func Encode(img image.Image) ([]byte, error) {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	flat := imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode logo: %w", err)
	}
	return buf.Bytes(), nil
}
