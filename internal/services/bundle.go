package services

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/sksa/borang/internal/borang"
)

// Collector keeps finished documents in memory, in save order.
type Collector struct {
	mu   sync.Mutex
	docs []borang.Document
}

func (c *Collector) Save(ctx context.Context, doc borang.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	c.docs = append(c.docs, doc)
	c.mu.Unlock()
	return nil
}

func (c *Collector) Docs() []borang.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]borang.Document(nil), c.docs...)
}

// WriteZip writes docs as flat ZIP entries in order. Repeated filenames (two
// students with the same name) get a _2, _3 ... suffix.
func WriteZip(w io.Writer, docs []borang.Document, modified time.Time) error {
	zw := zip.NewWriter(w)
	seen := make(map[string]int, len(docs))
	for _, d := range docs {
		name := uniqueName(SafeName(d.Filename), seen)
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("zip entry %s: %w", name, err)
		}
		if _, err := fw.Write(d.Data); err != nil {
			return fmt.Errorf("zip write %s: %w", name, err)
		}
	}
	return zw.Close()
}

var pathSeps = strings.NewReplacer("/", "_", "\\", "_")

// SafeName turns a document filename into a single path element. Student
// names such as "Muthu a/l Raju" carry slashes that would otherwise open
// directories inside the bundle or in the browser's download folder.
func SafeName(name string) string {
	n := path.Base(pathSeps.Replace(strings.TrimSpace(name)))
	switch n {
	case "", ".", "..", "/":
		return "BORANG.pdf"
	}
	return n
}

func uniqueName(name string, seen map[string]int) string {
	seen[name]++
	n := seen[name]
	if n == 1 {
		return name
	}
	ext := path.Ext(name)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), n, ext)
}

// BundleName is the ZIP download name for a program, e.g.
// BORANG_SUKAN_TAHUNAN.zip.
func BundleName(program string) string {
	if p := borang.Snake(program); p != "" {
		return "BORANG_" + p + ".zip"
	}
	return "BORANG.zip"
}
