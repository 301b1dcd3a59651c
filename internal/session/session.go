// Package session runs one game engine per player behind a single-writer queue.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CyberClicker_Go/internal/clock"
	"github.com/osse101/CyberClicker_Go/internal/cooldown"
	"github.com/osse101/CyberClicker_Go/internal/domain"
	"github.com/osse101/CyberClicker_Go/internal/event"
	"github.com/osse101/CyberClicker_Go/internal/format"
	"github.com/osse101/CyberClicker_Go/internal/game"
	"github.com/osse101/CyberClicker_Go/internal/logger"
	"github.com/osse101/CyberClicker_Go/internal/metrics"
	"github.com/osse101/CyberClicker_Go/internal/persistence"
	"github.com/osse101/CyberClicker_Go/internal/prestige"
	"github.com/osse101/CyberClicker_Go/internal/scheduler"
	"github.com/osse101/CyberClicker_Go/internal/worker"
)

// Options tune a session's timers and randomness
type Options struct {
	TickInterval            time.Duration
	AutosaveInterval        time.Duration
	AntiEffectCheckInterval time.Duration
	QueueSize               int
	Clock                   clock.Clock
	Random                  func() float64
	// DisableTimers leaves ticking to the caller
	DisableTimers bool
}

func (o Options) withDefaults() Options {
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.AutosaveInterval <= 0 {
		o.AutosaveInterval = DefaultAutosaveInterval
	}
	if o.AntiEffectCheckInterval <= 0 {
		o.AntiEffectCheckInterval = DefaultAntiEffectCheckInterval
	}
	if o.QueueSize <= 0 {
		o.QueueSize = DefaultQueueSize
	}
	if o.Clock == nil {
		o.Clock = clock.Real{}
	}
	return o
}

// Deps are the services a session talks to
type Deps struct {
	Persistence persistence.Service
	Cooldowns   cooldown.Service
	Bus         event.Bus
}

// Outcome is the result of a command plus the notifications it produced
type Outcome[T any] struct {
	Result        T                     `json:"result"`
	Money         float64               `json:"money"`
	Notifications []domain.Notification `json:"notifications"`
}

// Session owns one player's engine. Every state access runs on its worker.
type Session struct {
	id   string
	deps Deps
	opts Options

	engine *game.Engine
	pool   *worker.Pool
	sched  *scheduler.Scheduler
	ctx    context.Context
	cancel context.CancelFunc

	// worker-only
	pending  []domain.Notification
	welcome  []domain.Notification
	autoID   uuid.UUID
	autoRate float64

	saveMu sync.Mutex
	saves  sync.WaitGroup
	// lifeMu orders saves.Add against Close's saves.Wait
	lifeMu sync.Mutex
	// generation advances on reset so snapshots taken before it are never written
	generation atomic.Int64
	closed     atomic.Bool
	done       chan struct{}
}

func newSession(ctx context.Context, id string, loaded persistence.LoadResult, deps Deps, opts Options) *Session {
	opts = opts.withDefaults()
	ctx, cancel := context.WithCancel(logger.WithPlayerID(ctx, id))

	s := &Session{
		id:     id,
		deps:   deps,
		opts:   opts,
		pool:   worker.NewPool(1, opts.QueueSize),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	engineOpts := []game.Option{
		game.WithClock(opts.Clock),
		game.WithNotifier(game.NotifierFunc(s.collect)),
	}
	if opts.Random != nil {
		engineOpts = append(engineOpts, game.WithRandom(opts.Random))
	}
	s.engine = game.New(loaded.State, engineOpts...)
	s.sched = scheduler.New(ctx, s.pool)

	if loaded.OfflineEarnings > 0 {
		n := domain.Notification{
			Kind:     domain.NotifyOfflineEarnings,
			Severity: domain.SeveritySuccess,
			Message:  fmt.Sprintf(MsgOfflineEarnings, format.Number(loaded.OfflineEarnings)),
			Data:     map[string]interface{}{"amount": loaded.OfflineEarnings},
		}
		s.welcome = append(s.welcome, n)
		s.publish(n)
	}
	return s
}

// start launches the worker and the timers
func (s *Session) start() {
	s.pool.Start(s.ctx)
	if !s.opts.DisableTimers {
		s.sched.Schedule(s.opts.TickInterval, worker.JobFunc(s.tickSecond))
		s.sched.Schedule(s.opts.AntiEffectCheckInterval, worker.JobFunc(s.checkAntiEffects))
		s.sched.Schedule(s.opts.AutosaveInterval, worker.JobFunc(s.autosave))
	}
	_ = s.pool.Submit(s.ctx, func(context.Context) error {
		s.syncAutoClicker()
		return nil
	})
	s.publishEvent(event.NewSessionEvent(event.SessionOpened, s.id, ""))
	logger.FromContext(s.ctx).Debug(LogMsgSessionOpened)
}

// ID returns the player id
func (s *Session) ID() string { return s.id }

// Done is closed once the session has stopped and written its final save
func (s *Session) Done() <-chan struct{} { return s.done }

// Closed reports whether the session stopped accepting commands
func (s *Session) Closed() bool { return s.closed.Load() }

// collect is the engine notifier; it runs on the worker
func (s *Session) collect(n domain.Notification) {
	s.pending = append(s.pending, n)
	s.publish(n)
}

func (s *Session) publish(n domain.Notification) {
	s.publishEvent(event.NewNotificationEvent(s.id, n, s.opts.Clock.Now()))
}

func (s *Session) publishEvent(evt event.Event) {
	if s.deps.Bus == nil {
		return
	}
	if err := s.deps.Bus.Publish(s.ctx, evt); err != nil {
		logger.FromContext(s.ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// run executes fn on the worker and gathers the notifications it produced
func run[T any](ctx context.Context, s *Session, fn func(e *game.Engine) (T, error)) (Outcome[T], error) {
	var out Outcome[T]
	if s.closed.Load() {
		return out, domain.ErrSessionClosed
	}
	var saveRequested bool
	err := s.pool.Submit(ctx, func(context.Context) error {
		s.pending = append(s.pending[:0], s.welcome...)
		s.welcome = nil

		res, err := fn(s.engine)
		out.Result = res
		out.Money = s.engine.Money()
		out.Notifications = append([]domain.Notification{}, s.pending...)
		s.pending = s.pending[:0]

		saveRequested = s.engine.TakeSaveRequest()
		s.syncAutoClicker()
		return err
	})
	if errors.Is(err, worker.ErrPoolStopped) {
		return out, domain.ErrSessionClosed
	}
	if saveRequested {
		s.saveInBackground(persistence.TriggerPurchase)
	}
	return out, err
}

// syncAutoClicker reschedules the auto clicker when its rate changed; worker only
func (s *Session) syncAutoClicker() {
	rate := s.engine.AutoClickerRate()
	if rate == s.autoRate || s.opts.DisableTimers {
		s.autoRate = rate
		return
	}
	s.autoRate = rate
	if s.autoID != uuid.Nil {
		s.sched.Cancel(s.autoID)
		s.autoID = uuid.Nil
	}
	if rate > 0 {
		interval := time.Duration(float64(time.Second) / rate)
		s.autoID = s.sched.Schedule(interval, worker.JobFunc(s.tickAutoClicker))
	}
	logger.FromContext(s.ctx).Debug(LogMsgAutoRateChanged, "rate", rate)
}

func (s *Session) tickAutoClicker(context.Context) error {
	if s.engine.TickAutoClicker() > 0 {
		metrics.Clicks.WithLabelValues(metrics.SourceAuto).Inc()
	}
	return nil
}

func (s *Session) tickSecond(context.Context) error {
	s.engine.TickSecond()
	s.syncAutoClicker()
	return nil
}

func (s *Session) checkAntiEffects(context.Context) error {
	s.engine.TickAntiEffectCheck()
	s.syncAutoClicker()
	return nil
}

// autosave snapshots on the worker and writes off it
func (s *Session) autosave(context.Context) error {
	s.saveSnapshotInBackground(s.takeSnapshot(), persistence.TriggerAutosave)
	return nil
}

// snapshot is a state copy tagged with the generation it was taken in
type snapshot struct {
	state      *domain.PlayerState
	generation int64
}

// takeSnapshot copies the state; worker only
func (s *Session) takeSnapshot() snapshot {
	return snapshot{state: s.engine.State(), generation: s.generation.Load()}
}

// snapshotOnWorker queues a state copy behind any pending commands
func (s *Session) snapshotOnWorker(ctx context.Context) (snapshot, error) {
	var snap snapshot
	err := s.pool.Submit(ctx, func(context.Context) error {
		snap = s.takeSnapshot()
		return nil
	})
	if errors.Is(err, worker.ErrPoolStopped) {
		return snap, domain.ErrSessionClosed
	}
	return snap, err
}

func (s *Session) saveInBackground(trigger string) {
	snap, err := s.snapshotOnWorker(s.ctx)
	if err != nil {
		return
	}
	s.saveSnapshotInBackground(snap, trigger)
}

// saveSnapshotInBackground writes snap off the worker. A closed session
// skips it; Close writes its own final save.
func (s *Session) saveSnapshotInBackground(snap snapshot, trigger string) {
	s.lifeMu.Lock()
	if s.closed.Load() {
		s.lifeMu.Unlock()
		return
	}
	s.saves.Add(1)
	s.lifeMu.Unlock()

	go func() {
		defer s.saves.Done()
		if err := s.write(s.ctx, snap, trigger); err != nil {
			logger.FromContext(s.ctx).Warn(LogMsgAutosaveFailed, "trigger", trigger, "error", err)
		}
	}()
}

// write persists one snapshot; saves of a session never overlap and a
// snapshot older than the last reset is dropped
func (s *Session) write(ctx context.Context, snap snapshot, trigger string) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if snap.generation != s.generation.Load() {
		return nil
	}
	state := snap.state

	start := time.Now()
	err := s.deps.Persistence.Save(ctx, s.id, state)
	s.publishEvent(event.NewSaveEvent(s.id, trigger, err == nil, time.Since(start)))
	return err
}

// View returns the state and everything derived from it
func (s *Session) View(ctx context.Context) (game.View, error) {
	var v game.View
	if s.closed.Load() {
		return v, domain.ErrSessionClosed
	}
	err := s.pool.Submit(ctx, func(context.Context) error {
		v = s.engine.View()
		return nil
	})
	if errors.Is(err, worker.ErrPoolStopped) {
		return v, domain.ErrSessionClosed
	}
	return v, err
}

// Click resolves a manual click
func (s *Session) Click(ctx context.Context) (Outcome[game.ClickResult], error) {
	out, err := run(ctx, s, func(e *game.Engine) (game.ClickResult, error) {
		return e.Click()
	})
	if err == nil {
		metrics.Clicks.WithLabelValues(metrics.SourceManual).Inc()
	}
	return out, err
}

// BuyUpgrade buys one level and returns the price paid
func (s *Session) BuyUpgrade(ctx context.Context, id domain.UpgradeID) (Outcome[float64], error) {
	return run(ctx, s, func(e *game.Engine) (float64, error) {
		return e.BuyUpgrade(id)
	})
}

// BuySkin unlocks a skin
func (s *Session) BuySkin(ctx context.Context, id domain.SkinID) (Outcome[domain.SkinID], error) {
	return run(ctx, s, func(e *game.Engine) (domain.SkinID, error) {
		return id, e.BuySkin(id)
	})
}

// ApplySkin switches the active skin
func (s *Session) ApplySkin(ctx context.Context, id domain.SkinID) (Outcome[domain.SkinID], error) {
	return run(ctx, s, func(e *game.Engine) (domain.SkinID, error) {
		return id, e.ApplySkin(id)
	})
}

// OpenCase opens one case of the tier
func (s *Session) OpenCase(ctx context.Context, tier domain.CaseTier) (Outcome[game.CaseResult], error) {
	return run(ctx, s, func(e *game.Engine) (game.CaseResult, error) {
		return e.OpenCase(tier)
	})
}

// SpinWheel spins the fortune wheel if its cooldown has passed
func (s *Session) SpinWheel(ctx context.Context) (Outcome[game.WheelResult], error) {
	var out Outcome[game.WheelResult]
	err := s.deps.Cooldowns.EnforceCooldown(ctx, s.id, cooldown.ActionWheel, func() error {
		var err error
		out, err = run(ctx, s, func(e *game.Engine) (game.WheelResult, error) {
			return e.SpinWheel(), nil
		})
		return err
	})
	if err != nil && errors.Is(err, domain.ErrOnCooldown) {
		n := domain.Notification{Kind: domain.NotifyWheelRejected, Severity: domain.SeverityWarning, Message: err.Error()}
		if left, ok := cooldown.RemainingFrom(err); ok {
			n.Data = map[string]interface{}{"remainingSeconds": int(left.Seconds())}
		}
		s.publish(n)
		out.Notifications = append(out.Notifications, n)
	}
	return out, err
}

// WheelStatus reports when the wheel can be spun again; nil means now
func (s *Session) WheelStatus(ctx context.Context) (*time.Time, error) {
	return s.deps.Cooldowns.GetReadyAt(ctx, s.id, cooldown.ActionWheel)
}

// PrestigePreview describes what prestiging now would do
func (s *Session) PrestigePreview(ctx context.Context) (prestige.Summary, error) {
	v, err := s.View(ctx)
	return v.Prestige, err
}

// Prestige resets progress for robocoins and returns the gain
func (s *Session) Prestige(ctx context.Context) (Outcome[float64], error) {
	return run(ctx, s, func(e *game.Engine) (float64, error) {
		return e.Prestige()
	})
}

// FixAntiEffect pays to remove an active anti-effect
func (s *Session) FixAntiEffect(ctx context.Context, id string) (Outcome[string], error) {
	return run(ctx, s, func(e *game.Engine) (string, error) {
		return id, e.FixAntiEffect(id)
	})
}

// Rename changes the player name
func (s *Session) Rename(ctx context.Context, name string) (Outcome[string], error) {
	return run(ctx, s, func(e *game.Engine) (string, error) {
		err := e.Rename(name)
		return e.State().PlayerName, err
	})
}

// UpdateSettings applies a partial settings change
func (s *Session) UpdateSettings(ctx context.Context, in game.Settings) (Outcome[game.Settings], error) {
	return run(ctx, s, func(e *game.Engine) (game.Settings, error) {
		err := e.UpdateSettings(in)
		st := e.State()
		return game.Settings{
			Language:            &st.Language,
			MusicEnabled:        &st.MusicEnabled,
			UseDesktopInterface: &st.UseDesktopInterface,
		}, err
	})
}

// SaveCustomTheme stores a palette and returns its id
func (s *Session) SaveCustomTheme(ctx context.Context, name string, colors domain.Palette) (Outcome[string], error) {
	return run(ctx, s, func(e *game.Engine) (string, error) {
		return e.SaveCustomTheme(name, colors)
	})
}

// ApplyCustomTheme returns the palette to apply
func (s *Session) ApplyCustomTheme(ctx context.Context, id string) (Outcome[domain.CustomTheme], error) {
	return run(ctx, s, func(e *game.Engine) (domain.CustomTheme, error) {
		return e.ApplyCustomTheme(id)
	})
}

// DeleteCustomTheme removes a palette
func (s *Session) DeleteCustomTheme(ctx context.Context, id string) (Outcome[string], error) {
	return run(ctx, s, func(e *game.Engine) (string, error) {
		return id, e.DeleteCustomTheme(id)
	})
}

// Save writes the current state now
func (s *Session) Save(ctx context.Context) error {
	if s.closed.Load() {
		return domain.ErrSessionClosed
	}
	snap, err := s.snapshotOnWorker(ctx)
	if err != nil {
		return err
	}
	return s.write(ctx, snap, persistence.TriggerManual)
}

// Reset wipes the game: fresh state, no saved snapshot, no wheel cooldown
func (s *Session) Reset(ctx context.Context) (Outcome[struct{}], error) {
	out, err := run(ctx, s, func(e *game.Engine) (struct{}, error) {
		e.Reset()
		s.generation.Add(1)
		return struct{}{}, nil
	})
	if err != nil {
		return out, err
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if err := s.deps.Persistence.Reset(ctx, s.id); err != nil {
		return out, err
	}
	if err := s.deps.Cooldowns.ResetCooldown(ctx, s.id, cooldown.ActionWheel); err != nil {
		return out, err
	}
	return out, nil
}

// Close stops the timers, drains queued commands and writes a final save.
// Only the first call does any work.
func (s *Session) Close(ctx context.Context, trigger string) error {
	s.lifeMu.Lock()
	first := s.closed.CompareAndSwap(false, true)
	s.lifeMu.Unlock()
	if !first {
		<-s.done
		return nil
	}
	defer close(s.done)
	log := logger.FromContext(s.ctx)

	s.sched.Stop()
	snap, snapErr := s.snapshotOnWorker(ctx)
	s.pool.Stop()
	s.saves.Wait()

	var err error
	if snapErr == nil {
		if err = s.write(ctx, snap, trigger); err != nil {
			log.Error(LogMsgFinalSaveFailed, "trigger", trigger, "error", err)
		}
	}
	s.publishEvent(event.NewSessionEvent(event.SessionClosed, s.id, trigger))
	s.cancel()
	log.Debug(LogMsgSessionClosed, "trigger", trigger)
	return err
}
