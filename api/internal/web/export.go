package web

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Export renders every public page plus sitemap.xml and robots.txt into dir,
// then copies the embedded assets and the public directory next to them. The
// admin page and the JSON API are not exported.
func (s *Site) Export(ctx context.Context, dir, publicDir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}

	for id, path := range PublicPages() {
		target := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(path, "/")), "index.html")
		if err := s.exportFile(target, func(w io.Writer) error { return s.Render(ctx, id, w) }); err != nil {
			return err
		}
	}

	if err := s.exportFile(filepath.Join(dir, "sitemap.xml"), func(w io.Writer) error { return s.WriteSitemap(ctx, w) }); err != nil {
		return err
	}
	if err := s.exportFile(filepath.Join(dir, "robots.txt"), func(w io.Writer) error { return s.WriteRobots(ctx, w) }); err != nil {
		return err
	}

	static, _ := fs.Sub(staticFS, "static")
	if err := copyTree(static, filepath.Join(dir, "static")); err != nil {
		return fmt.Errorf("failed to copy static assets: %w", err)
	}

	if publicDir != "" {
		if _, err := os.Stat(publicDir); err == nil {
			if err := copyTree(os.DirFS(publicDir), dir); err != nil {
				return fmt.Errorf("failed to copy public dir: %w", err)
			}
		}
	}

	s.logger.Info("Static export finished", slog.String("dir", dir), slog.Int("pages", len(PublicPages())))
	return nil
}

func (s *Site) exportFile(target string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", target, err)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, buf.Bytes(), 0o644)
}

func copyTree(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
