package game

import (
	"github.com/osse101/CyberClicker_Go/internal/antieffect"
	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/utils"
)

// never is a draw that fails every roll
const never = 0.99

type recorder struct {
	got []domain.Notification
}

func (r *recorder) Notify(n domain.Notification) {
	r.got = append(r.got, n)
}

func (r *recorder) kinds() []domain.NotificationKind {
	out := make([]domain.NotificationKind, len(r.got))
	for i, n := range r.got {
		out[i] = n.Kind
	}
	return out
}

func (r *recorder) count(kind domain.NotificationKind) int {
	n := 0
	for _, got := range r.got {
		if got.Kind == kind {
			n++
		}
	}
	return n
}

// newTestEngine builds an engine over state with scripted draws
func newTestEngine(state *domain.PlayerState, draws ...float64) (*Engine, *recorder) {
	if state == nil {
		state = catalog.NewPlayerState()
	}
	if len(draws) == 0 {
		draws = []float64{never}
	}
	rec := &recorder{}
	e := New(state,
		WithRandom(utils.Sequence(draws...)),
		WithNotifier(rec),
		WithIDGenerator(func() string { return "fixed" }),
	)
	return e, rec
}

func withLevel(state *domain.PlayerState, id domain.UpgradeID, level int) *domain.PlayerState {
	state.Upgrades[id] = domain.UpgradeState{Level: level, Owned: level > 0}
	return state
}

func withEffect(state *domain.PlayerState, id string) *domain.PlayerState {
	a, ok := catalog.AntiEffect(id)
	if !ok {
		a = domain.AntiEffect{ID: id, Type: domain.AntiEffectClick, Severity: 1, FixCost: 100, Duration: domain.DurationUntilFixed}
	}
	a.Applied = true
	if a.Timed() {
		a.TimeRemaining = a.Duration
	}
	state.ActiveAntiEffects = append(state.ActiveAntiEffects, a)
	return state
}

func withAdvancedUnlocked(state *domain.PlayerState) *domain.PlayerState {
	for _, r := range catalog.AdvancedRequirements {
		withLevel(state, r.Upgrade, r.Level)
	}
	return state
}

func withEverythingOwned(state *domain.PlayerState) *domain.PlayerState {
	for _, u := range catalog.Upgrades() {
		withLevel(state, u.ID, 1)
	}
	for _, s := range catalog.Skins() {
		state.Skins[s.ID] = domain.SkinState{Owned: true}
	}
	return state
}

// drawFor returns a draw that makes PickIndex choose idx out of n
func drawFor(idx, n int) float64 {
	return (float64(idx) + 0.5) / float64(n)
}

// withBlock activates the dynamic block of an owned upgrade
func withBlock(state *domain.PlayerState, id domain.UpgradeID) *domain.PlayerState {
	for _, a := range antieffect.Dynamic(state) {
		if a.TargetUpgrade == id {
			a.Applied = true
			state.ActiveAntiEffects = append(state.ActiveAntiEffects, a)
		}
	}
	return state
}
