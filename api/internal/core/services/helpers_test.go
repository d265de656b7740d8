package services_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/storage/jsonfile"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONStore(t *testing.T) *jsonfile.Store {
	t.Helper()
	return jsonfile.NewStore(t.TempDir(), discardLogger())
}

type recordingNotifier struct {
	mu    sync.Mutex
	kinds []domain.ChangeKind
}

func (r *recordingNotifier) Publish(kind domain.ChangeKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds = append(r.kinds, kind)
}

func (r *recordingNotifier) Kinds() []domain.ChangeKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ChangeKind(nil), r.kinds...)
}

func ptr[T any](v T) *T { return &v }
