package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/testing/leaktest"
)

func TestManager_GetReturnsSameSession(t *testing.T) {
	f := newFixture(t)
	m := f.manager(t, 4)
	defer func() { _ = m.Shutdown(context.Background()) }()

	a, err := m.Get(context.Background(), "p1")
	require.NoError(t, err)
	b, err := m.Get(context.Background(), " p1 ")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, m.Len())
}

func TestManager_GetRequiresID(t *testing.T) {
	f := newFixture(t)
	m := f.manager(t, 4)

	_, err := m.Get(context.Background(), "  ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestManager_EvictionSavesSession(t *testing.T) {
	f := newFixture(t)
	m := f.manager(t, 1)
	defer func() { _ = m.Shutdown(context.Background()) }()
	ctx := context.Background()

	a, err := m.Get(ctx, "a")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = a.Click(ctx)
		require.NoError(t, err)
	}

	_, err = m.Get(ctx, "b")
	require.NoError(t, err)
	select {
	case <-a.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("evicted session did not close")
	}

	restored, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.NotSame(t, a, restored)
	v, err := restored.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.State.ClickCount)
}

func TestManager_Shutdown(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	f := newFixture(t)
	m := f.manager(t, 10)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		s, err := m.Get(ctx, id)
		require.NoError(t, err)
		_, err = s.Click(ctx)
		require.NoError(t, err)
	}

	require.NoError(t, m.Shutdown(ctx))

	assert.Zero(t, m.Len())
	for _, id := range []string{"a", "b", "c"} {
		assert.True(t, f.persist.Load(ctx, id).Found, id)
	}
	_, err := m.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrSessionClosed)
	checker.Check(2)
}
