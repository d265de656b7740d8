package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/telemetry"
)

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := telemetry.NewHub()
	a := hub.Subscribe()
	b := hub.Subscribe()

	hub.Publish(domain.ChangeSiteInfo)

	for _, ch := range []chan telemetry.Event{a, b} {
		select {
		case ev := <-ch:
			assert.Equal(t, domain.ChangeSiteInfo, ev.Kind)
			assert.False(t, ev.At.IsZero())
		default:
			t.Fatal("expected an event")
		}
	}
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	hub := telemetry.NewHub()
	ch := hub.Subscribe()

	for i := 0; i < 100; i++ {
		hub.Publish(domain.ChangeTariffs)
	}

	assert.Len(t, ch, cap(ch))
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := telemetry.NewHub()
	ch := hub.Subscribe()
	require.Equal(t, 1, hub.Subscribers())

	hub.Unsubscribe(ch)
	hub.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers())

	hub.Publish(domain.ChangeUpload)
}
