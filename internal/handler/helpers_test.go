package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CyberClicker_Go/internal/clock"
	"github.com/osse101/CyberClicker_Go/internal/cooldown"
	"github.com/osse101/CyberClicker_Go/internal/database/filestore"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/event"
	"github.com/osse101/CyberClicker_Go/internal/persistence"
	"github.com/osse101/CyberClicker_Go/internal/repository"
	"github.com/osse101/CyberClicker_Go/internal/session"
)

var epoch = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type testAPI struct {
	router  chi.Router
	persist persistence.Service
	clock   *clock.Fake
	manager *session.Manager
}

func newTestAPI(t *testing.T, snapshots repository.Snapshots) *testAPI {
	t.Helper()
	clk := clock.NewFake(epoch)
	if snapshots == nil {
		store, err := filestore.New(t.TempDir())
		require.NoError(t, err)
		snapshots = store
	}
	persist := persistence.NewService(snapshots, nil, nil, clk)

	cdCfg := cooldown.DefaultConfig()
	cdCfg.Clock = clk
	deps := session.Deps{
		Persistence: persist,
		Cooldowns:   cooldown.NewMemoryService(cdCfg),
		Bus:         event.NewMemoryBus(),
	}
	opts := session.Options{DisableTimers: true, Clock: clk, Random: func() float64 { return 0.99 }}
	m, err := session.NewManager(context.Background(), 16, deps, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	r := chi.NewRouter()
	r.Route("/players/{playerID}", NewGameHandler(m, clk).Mount)
	return &testAPI{router: r, persist: persist, clock: clk, manager: m}
}

func (a *testAPI) seed(t *testing.T, playerID string, state *domain.PlayerState) {
	t.Helper()
	require.NoError(t, a.persist.Save(context.Background(), playerID, state))
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
