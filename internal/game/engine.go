// Package game is the incremental game simulation. An Engine owns one player's state
// and is not safe for concurrent use: callers serialize every operation.
package game

import (
	"github.com/google/uuid"

	"github.com/osse101/CyberClicker_Go/internal/antieffect"
	"github.com/osse101/CyberClicker_Go/internal/catalog"
	"github.com/osse101/CyberClicker_Go/internal/clock"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/modifier"
	"github.com/osse101/CyberClicker_Go/internal/prestige"
	"github.com/osse101/CyberClicker_Go/internal/utils"
)

// Notifier receives the outcome messages of engine operations
type Notifier interface {
	Notify(n domain.Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(domain.Notification)

// Notify calls f(n)
func (f NotifierFunc) Notify(n domain.Notification) { f(n) }

type discardNotifier struct{}

func (discardNotifier) Notify(domain.Notification) {}

// Engine applies game rules to a player state
type Engine struct {
	state         *domain.PlayerState
	rnd           func() float64 // For rolling RNG
	clock         clock.Clock
	notifier      Notifier
	selector      *antieffect.Selector
	newID         func() string
	saveRequested bool
}

// Option configures an Engine
type Option func(*Engine)

// WithRandom injects the random source used for every roll
func WithRandom(rnd func() float64) Option {
	return func(e *Engine) { e.rnd = rnd }
}

// WithClock injects the time source
func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithNotifier sets the receiver of outcome messages
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithIDGenerator overrides the custom theme id generator
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

// New creates an engine for state. A nil state starts a fresh game.
func New(state *domain.PlayerState, opts ...Option) *Engine {
	if state == nil {
		state = catalog.NewPlayerState()
	}
	e := &Engine{
		state:    state,
		rnd:      utils.RandomFloat,
		clock:    clock.Real{},
		notifier: discardNotifier{},
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.selector = antieffect.NewSelector(e.rnd)
	e.primeUnlockFlags()
	return e
}

// primeUnlockFlags keeps a restored game from announcing unlocks it already had
func (e *Engine) primeUnlockFlags() {
	e.state.AdvancedNotified = e.CategoryUnlocked(domain.CategoryAdvanced)
	e.state.SpecialNotified = e.CategoryUnlocked(domain.CategorySpecial)
}

// State returns a deep copy of the current state
func (e *Engine) State() *domain.PlayerState {
	return e.state.Clone()
}

// Money is the current balance
func (e *Engine) Money() float64 {
	return e.state.Money
}

// TakeSaveRequest reports whether an operation asked for an immediate save and clears the request
func (e *Engine) TakeSaveRequest() bool {
	requested := e.saveRequested
	e.saveRequested = false
	return requested
}

func (e *Engine) requestSave() {
	e.saveRequested = true
}

func (e *Engine) modifiers() modifier.Set {
	return modifier.ForState(e.state)
}

// resetCombo ends the click streak; every non-click action calls it
func (e *Engine) resetCombo() {
	e.state.ComboCount = 0
	e.state.ComboTimer = 0
}

// AddMoney credits amount after case-reward and prestige multipliers and returns what was credited.
// It is the only path that grows totalEarned.
func (e *Engine) AddMoney(amount float64) float64 {
	s := e.state
	final := amount * e.modifiers().Income()
	final *= prestige.BonusMultiplier(s.Robocoins)

	s.Money += final
	s.TotalEarned += final

	if !s.AdvancedNotified && e.CategoryUnlocked(domain.CategoryAdvanced) {
		s.AdvancedNotified = true
		e.notify(domain.NotifyCategoryUnlocked, domain.SeveritySuccess, "Advanced upgrades unlocked!",
			map[string]interface{}{"category": domain.CategoryAdvanced})
	}
	if s.AdvancedNotified && !s.SpecialNotified && e.CategoryUnlocked(domain.CategorySpecial) {
		s.SpecialNotified = true
		e.notify(domain.NotifyCategoryUnlocked, domain.SeveritySuccess, "Special upgrades unlocked!",
			map[string]interface{}{"category": domain.CategorySpecial})
	}
	return final
}

func (e *Engine) grantShield(seconds int) {
	e.state.ShieldActive = true
	e.state.ShieldTimeLeft = seconds
}

func (e *Engine) setMultiplier(value float64, seconds int) {
	e.state.TemporaryMultiplier = value
	e.state.MultiplierTimeLeft = seconds
}
