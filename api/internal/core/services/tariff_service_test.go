package services_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/services"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/siteconfig"
)

func TestTariffService_ListWithoutFileReturnsDefaults(t *testing.T) {
	svc := services.NewTariffService(newJSONStore(t), &recordingNotifier{}, discardLogger())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, siteconfig.DefaultTariffs(), got)
}

func TestTariffService_ListSortsStablyAndFillsCurrency(t *testing.T) {
	store := newJSONStore(t)
	doc := `[
		{"id": "a", "name": "A", "price": 1, "sortOrder": 3},
		{"id": "b", "name": "B", "price": 2, "currency": "USD", "sortOrder": 1},
		{"id": "c", "name": "C", "price": 3, "sortOrder": 2},
		{"id": "d", "name": "D", "price": 4, "sortOrder": 2}
	]`
	require.NoError(t, os.WriteFile(store.Path(services.TariffsDocument), []byte(doc), 0o644))
	svc := services.NewTariffService(store, &recordingNotifier{}, discardLogger())

	got, err := svc.List(context.Background())
	require.NoError(t, err)

	ids := make([]string, len(got))
	for i, tariff := range got {
		ids[i] = tariff.ID
	}
	assert.Equal(t, []string{"b", "c", "d", "a"}, ids)
	assert.Equal(t, "USD", got[0].Currency)
	assert.Equal(t, "RUB", got[1].Currency)
	assert.NotNil(t, got[1].Features)
}

func TestTariffService_MistypedFieldKeepsStoredRecords(t *testing.T) {
	store := newJSONStore(t)
	doc := `[
		{"id": "a", "name": "Mine", "price": "299", "sortOrder": 1},
		{"id": "b", "name": "Yours", "price": 499, "sortOrder": 2}
	]`
	require.NoError(t, os.WriteFile(store.Path(services.TariffsDocument), []byte(doc), 0o644))
	svc := services.NewTariffService(store, &recordingNotifier{}, discardLogger())
	ctx := context.Background()

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Mine", got[0].Name)
	assert.Zero(t, got[0].Price, "mistyped field falls back to zero")
	assert.Equal(t, 499.0, got[1].Price)

	_, err = svc.Create(ctx, domain.TariffPatch{Name: ptr("Pro")})
	require.NoError(t, err)

	raw, err := os.ReadFile(store.Path(services.TariffsDocument))
	require.NoError(t, err)
	var saved []domain.Tariff
	require.NoError(t, json.Unmarshal(raw, &saved))
	names := make([]string, len(saved))
	for i, tariff := range saved {
		names[i] = tariff.Name
	}
	assert.Equal(t, []string{"Mine", "Yours", "Pro"}, names)
}

func TestTariffService_NonObjectRecordIsSkipped(t *testing.T) {
	store := newJSONStore(t)
	require.NoError(t, os.WriteFile(store.Path(services.TariffsDocument), []byte(`["junk", {"id": "a", "name": "Kept"}]`), 0o644))
	svc := services.NewTariffService(store, &recordingNotifier{}, discardLogger())

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kept", got[0].Name)
}

func TestTariffService_CreateThenList(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := services.NewTariffService(newJSONStore(t), notifier, discardLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.TariffPatch{Name: ptr("Pro"), Price: ptr(999.0)})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Pro", created.Name)
	assert.Equal(t, 999.0, created.Price)
	assert.Equal(t, domain.DefaultCurrency, created.Currency)
	assert.Equal(t, domain.DefaultPeriod, created.Period)
	assert.Equal(t, 4, created.SortOrder)
	assert.False(t, created.Popular)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, created, list[3])
	assert.Equal(t, []domain.ChangeKind{domain.ChangeTariffs}, notifier.Kinds())
}

func TestTariffService_CreateAssignsDistinctIDs(t *testing.T) {
	svc := services.NewTariffService(newJSONStore(t), &recordingNotifier{}, discardLogger())
	ctx := context.Background()

	first, err := svc.Create(ctx, domain.TariffPatch{})
	require.NoError(t, err)
	second, err := svc.Create(ctx, domain.TariffPatch{})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, domain.DefaultTariffName, first.Name)
}

func TestTariffService_UpdateKeepsID(t *testing.T) {
	svc := services.NewTariffService(newJSONStore(t), &recordingNotifier{}, discardLogger())
	ctx := context.Background()

	updated, err := svc.Update(ctx, "2", domain.TariffPatch{Price: ptr(799.0), Popular: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "2", updated.ID)
	assert.Equal(t, 799.0, updated.Price)
	assert.Equal(t, "Стандарт", updated.Name)
	assert.False(t, updated.Popular)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, list[1])
}

func TestTariffService_UnknownIDs(t *testing.T) {
	store := newJSONStore(t)
	notifier := &recordingNotifier{}
	svc := services.NewTariffService(store, notifier, discardLogger())
	ctx := context.Background()

	_, err := svc.Update(ctx, "missing", domain.TariffPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrTariffNotFound)

	err = svc.Delete(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrTariffNotFound)

	_, statErr := os.Stat(store.Path(services.TariffsDocument))
	assert.True(t, os.IsNotExist(statErr), "nothing should be written for unknown ids")
	assert.Empty(t, notifier.Kinds())
}

func TestTariffService_Delete(t *testing.T) {
	svc := services.NewTariffService(newJSONStore(t), &recordingNotifier{}, discardLogger())
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "1"))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, tariff := range list {
		assert.NotEqual(t, "1", tariff.ID)
	}
}
