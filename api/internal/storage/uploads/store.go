// Package uploads stores admin-uploaded images under the public directory.
package uploads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
)

// sniffLen is how much of the upload mimetype inspects.
const sniffLen = 3072

// Store writes files to <dir> and serves them under <urlPrefix>.
type Store struct {
	dir       string
	urlPrefix string
	now       func() time.Time
}

func NewStore(dir, urlPrefix string) *Store {
	return &Store{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/"), now: time.Now}
}

// WithClock overrides the timestamp source used in file names.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Save writes r to logo-<unix millis><ext> and returns its public URL. The
// extension comes from the original filename, falling back to the sniffed
// type and then ".png". Non-image content is rejected. Old uploads are never
// removed.
func (s *Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	if !isImage(mt) {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedUpload, mt.String())
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = mt.Extension()
	}
	if ext == "" {
		ext = ".png"
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := "logo-" + strconv.FormatInt(s.now().UnixMilli(), 10) + ext
	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	if _, err := io.Copy(f, io.MultiReader(bytes.NewReader(head), r)); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", name, err)
	}

	return path.Join(s.urlPrefix, name), nil
}

func isImage(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return true
		}
	}
	return false
}
