package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/siteconfig"
)

// SiteInfoDocument is the document name of the configuration tree.
const SiteInfoDocument = "site-info"

// SiteInfoService is the load/save accessor for the configuration document.
// Every call reads the file afresh; there is no cache to invalidate.
type SiteInfoService struct {
	store    domain.DocumentStore
	notifier domain.ChangeNotifier
	logger   *slog.Logger

	// mu serializes read-modify-write cycles within this process.
	mu sync.Mutex
}

func NewSiteInfoService(store domain.DocumentStore, notifier domain.ChangeNotifier, logger *slog.Logger) *SiteInfoService {
	return &SiteInfoService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Get returns the stored document merged over defaults. A missing or corrupt
// file is not an error; only context cancellation is.
func (s *SiteInfoService) Get(ctx context.Context) (domain.SiteInfo, error) {
	raw, err := s.store.Load(ctx, SiteInfoDocument)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.SiteInfo{}, err
		}
		return siteconfig.Defaults(), nil
	}
	return siteconfig.Resolve(raw), nil
}

// Update overlays patch on the current document and overwrites the file with
// the full result.
func (s *SiteInfoService) Update(ctx context.Context, patch []byte) (domain.SiteInfo, error) {
	if !isJSONObject(patch) {
		return domain.SiteInfo{}, domain.ErrInvalidDocument
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Get(ctx)
	if err != nil {
		return domain.SiteInfo{}, err
	}

	updated := siteconfig.Overlay(current, patch)
	if err := s.store.Save(ctx, SiteInfoDocument, updated); err != nil {
		s.logger.Error("Failed to save site info", slog.String("error", err.Error()))
		return domain.SiteInfo{}, fmt.Errorf("save site info: %w", err)
	}

	s.logger.Info("Site info updated", slog.Int("bytes", len(patch)))
	s.notifier.Publish(domain.ChangeSiteInfo)
	return updated, nil
}

func isJSONObject(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}
