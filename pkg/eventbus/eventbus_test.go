package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type pingEvent struct{}

func (pingEvent) Name() string { return "ping" }

func TestPublishReachesEveryListener(t *testing.T) {
	bus := New(zap.NewNop())
	var calls int32
	for i := 0; i < 3; i++ {
		bus.Subscribe("ping", func(ctx context.Context, event Event) error {
			atomic.AddInt32(&calls, 1)
			return nil
		})
	}
	bus.Subscribe("other", func(ctx context.Context, event Event) error {
		t.Error("listener of another event must not run")
		return nil
	})

	bus.Publish(context.Background(), pingEvent{})
	bus.Wait()

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestListenerOutlivesCanceledRequest(t *testing.T) {
	bus := New(zap.NewNop())
	var listenerErr error
	bus.Subscribe("ping", func(ctx context.Context, event Event) error {
		listenerErr = ctx.Err()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, pingEvent{})
	bus.Wait()

	assert.NoError(t, listenerErr)
}

func TestListenerErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	bus := New(zap.New(core))
	bus.Subscribe("ping", func(ctx context.Context, event Event) error {
		return errors.New("boom")
	})

	bus.Publish(context.Background(), pingEvent{})
	bus.Wait()

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "ping", entries[0].ContextMap()["event"])
	}
}
