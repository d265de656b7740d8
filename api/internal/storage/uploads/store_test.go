package uploads_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/storage/uploads"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestStore_SaveNamesByTimestamp(t *testing.T) {
	dir := t.TempDir()
	store := uploads.NewStore(dir, "/uploads/").WithClock(fixedClock(1700000000123))

	url, err := store.Save(context.Background(), "Logo.PNG", bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/logo-1700000000123.png", url)

	written, err := os.ReadFile(filepath.Join(dir, "logo-1700000000123.png"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, written)
}

func TestStore_ExtensionFallsBackToSniffedType(t *testing.T) {
	store := uploads.NewStore(t.TempDir(), "/uploads").WithClock(fixedClock(42))

	url, err := store.Save(context.Background(), "blob", bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/logo-42.png", url)
}

func TestStore_RejectsNonImages(t *testing.T) {
	dir := t.TempDir()
	store := uploads.NewStore(dir, "/uploads")

	_, err := store.Save(context.Background(), "evil.png", strings.NewReader("#!/bin/sh\nrm -rf /\n"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedUpload)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestStore_KeepsPreviousUploads(t *testing.T) {
	dir := t.TempDir()
	ms := int64(1)
	store := uploads.NewStore(dir, "/uploads").WithClock(func() time.Time {
		ms++
		return time.UnixMilli(ms)
	})

	for i := 0; i < 3; i++ {
		_, err := store.Save(context.Background(), "logo.png", bytes.NewReader(pngBytes))
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
