package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/siteconfig"
)

// TariffsDocument is the document name of the tariff collection.
const TariffsDocument = "tariffs"

// TariffService implements domain.TariffRepository on top of a document store.
// Every mutation rewrites the entire collection.
type TariffService struct {
	store    domain.DocumentStore
	notifier domain.ChangeNotifier
	logger   *slog.Logger
	newID    func() string

	mu sync.Mutex
}

func NewTariffService(store domain.DocumentStore, notifier domain.ChangeNotifier, logger *slog.Logger) *TariffService {
	return &TariffService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		newID:    func() string { return uuid.New().String() },
	}
}

// List returns the tariffs ordered by SortOrder. Equal SortOrder values keep
// their stored order. Until the first save the built-in tariffs are returned.
func (s *TariffService) List(ctx context.Context) ([]domain.Tariff, error) {
	raw, err := s.store.Load(ctx, TariffsDocument)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return siteconfig.DefaultTariffs(), nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.Warn("Tariffs file is not a list, using defaults", slog.String("error", err.Error()))
		return siteconfig.DefaultTariffs(), nil
	}

	tariffs := make([]domain.Tariff, 0, len(records))
	for i, rec := range records {
		t, err := decodeTariff(rec)
		if err != nil {
			s.logger.Warn("Skipping unreadable tariff record", slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		tariffs = append(tariffs, t)
	}
	sort.SliceStable(tariffs, func(i, j int) bool {
		return tariffs[i].SortOrder < tariffs[j].SortOrder
	})
	return tariffs, nil
}

// Create appends a tariff with a fresh id. Fields missing from patch take the
// stock values; SortOrder defaults to the position after the last tariff.
func (s *TariffService) Create(ctx context.Context, patch domain.TariffPatch) (domain.Tariff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tariffs, err := s.List(ctx)
	if err != nil {
		return domain.Tariff{}, err
	}

	t := domain.Tariff{
		ID:        s.newID(),
		Name:      domain.DefaultTariffName,
		Price:     0,
		Currency:  domain.DefaultCurrency,
		Period:    domain.DefaultPeriod,
		Features:  []string{},
		Popular:   false,
		SortOrder: len(tariffs) + 1,
		ButtonURL: "",
	}
	patch.Apply(&t)

	tariffs = append(tariffs, t)
	if err := s.save(ctx, tariffs); err != nil {
		return domain.Tariff{}, err
	}

	s.logger.Info("Tariff created", slog.String("id", t.ID), slog.String("name", t.Name))
	return t, nil
}

// Update overwrites the fields set in patch. The id never changes.
func (s *TariffService) Update(ctx context.Context, id string, patch domain.TariffPatch) (domain.Tariff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tariffs, err := s.List(ctx)
	if err != nil {
		return domain.Tariff{}, err
	}

	idx := -1
	for i := range tariffs {
		if tariffs[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Tariff{}, domain.ErrTariffNotFound
	}

	patch.Apply(&tariffs[idx])
	tariffs[idx].ID = id

	if err := s.save(ctx, tariffs); err != nil {
		return domain.Tariff{}, err
	}

	s.logger.Info("Tariff updated", slog.String("id", id))
	return tariffs[idx], nil
}

// Delete removes the tariff with id. Nothing is written when id is unknown.
func (s *TariffService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tariffs, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Tariff, 0, len(tariffs))
	for _, t := range tariffs {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tariffs) {
		return domain.ErrTariffNotFound
	}

	if err := s.save(ctx, kept); err != nil {
		return err
	}

	s.logger.Info("Tariff deleted", slog.String("id", id))
	return nil
}

// decodeTariff reads one stored record. A field of the wrong type keeps its
// zero value instead of discarding the whole record; only a record that is
// not an object is rejected.
func decodeTariff(raw json.RawMessage) (domain.Tariff, error) {
	var t domain.Tariff
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return t, fmt.Errorf("tariff record is not an object")
	}
	var typeErr *json.UnmarshalTypeError
	if err := json.Unmarshal(trimmed, &t); err != nil && !errors.As(err, &typeErr) {
		return t, err
	}
	if t.Currency == "" {
		t.Currency = domain.DefaultCurrency
	}
	if t.Features == nil {
		t.Features = []string{}
	}
	return t, nil
}

func (s *TariffService) save(ctx context.Context, tariffs []domain.Tariff) error {
	if err := s.store.Save(ctx, TariffsDocument, tariffs); err != nil {
		s.logger.Error("Failed to save tariffs", slog.String("error", err.Error()))
		return fmt.Errorf("save tariffs: %w", err)
	}
	s.notifier.Publish(domain.ChangeTariffs)
	return nil
}
