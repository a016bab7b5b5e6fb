// Package session is the game controller. It owns the entity table (player
// first, then enemies in spawn order), runs every periodic trigger on one
// cooperative game clock and is the only writer of hit points, score and
// liveness.
//
// All exported methods are safe for concurrent use. Timer callbacks run
// with the session lock held; events they produce are delivered to the
// sink after the lock is released. Only one caller delivers at a time, so a
// sink may call back into the session; events it causes are delivered after
// the current batch.
package session

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/square-dodge/internal/collision"
	"github.com/vovakirdan/square-dodge/internal/config"
	"github.com/vovakirdan/square-dodge/internal/core"
	"github.com/vovakirdan/square-dodge/internal/entity"
	"github.com/vovakirdan/square-dodge/internal/pursuit"
	"github.com/vovakirdan/square-dodge/internal/timer"
	"github.com/vovakirdan/square-dodge/internal/waves"
)

// Session runs one game.
type Session struct {
	mu sync.Mutex

	cfg    config.DodgeConfig
	bounds core.Vec
	spawn  entity.Anchor
	clock  *timer.Queue
	rng    *rand.Rand
	logger *log.Logger
	sink   Sink
	store  HighScoreStore

	started bool
	closed  bool
	nextID  int

	player    *Player
	lastScore float64
	highScore float64
	input     core.Input

	enemies  []*enemySlot
	waves    *waves.Scheduler
	warnings []warning

	pending  []Event
	flushing bool // a caller is delivering pending to the sink
}

type enemySlot struct {
	enemy *pursuit.Enemy
	ai    *timer.Timer
	ttl   *timer.Timer
}

type warning struct {
	wave   int
	points []core.Vec
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSink sets the receiver of render/HUD events.
func WithSink(sink Sink) Option {
	return func(s *Session) {
		s.sink = sink
	}
}

// WithStore sets the highscore store.
func WithStore(store HighScoreStore) Option {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSeed seeds the session RNG. Without it the seed is time based.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		if seed != 0 {
			s.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// New creates a session from a validated configuration. The game does not
// run until Start.
func New(cfg config.DodgeConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	anchor, err := entity.ParseAnchor(cfg.Player.Spawn)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		bounds: core.V(cfg.Scene.Width, cfg.Scene.Height),
		spawn:  anchor,
		clock:  timer.NewQueue(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: log.New(io.Discard),
		store:  &MemoryStore{},
		waves:  waves.NewScheduler(cfg.Game.InitialWave, cfg.Game.InitialEnemies),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.DodgeConfig {
	return s.cfg
}

// Start spawns the player and arms the input poll, score and wave timers.
func (s *Session) Start() error {
	s.mu.Lock()
	err := s.start()
	s.unlockAndFlush()
	return err
}

func (s *Session) start() error {
	if s.closed {
		return ErrClosed
	}
	if s.started {
		return ErrAlreadyStarted
	}

	best, err := s.store.HighScore()
	if err != nil {
		s.logger.Warn("could not load highscore", "error", err)
	}
	s.highScore = best

	s.spawnPlayer()
	s.started = true

	s.clock.Every(s.cfg.Input.Poll(), s.pollTick)
	s.clock.Every(s.cfg.Game.ScoreTick(), s.scoreTick)
	s.clock.After(s.cfg.Game.FirstWaveDelay(), func() {
		s.waveTick()
		s.clock.Every(s.cfg.Game.WaveCooldown(), s.waveTick)
	})

	s.logger.Info("session started",
		"scene", fmt.Sprintf("%gx%g", s.bounds.X, s.bounds.Y),
		"highscore", s.highScore,
		"first_pattern", s.waves.Pattern(),
		"initial_enemies", s.waves.EnemyCount())
	return nil
}

// Close stops every timer. The session keeps its last state for snapshots.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.clock.StopAll()
	s.logger.Debug("session closed", "elapsed", s.clock.Now())
}

// Advance moves the game clock forward by dt, firing every trigger that
// comes due on the way.
func (s *Session) Advance(dt time.Duration) {
	s.mu.Lock()
	if !s.closed {
		s.clock.Advance(dt)
	}
	s.unlockAndFlush()
}

// SetInput replaces the held input. It is applied on every input poll
// until replaced.
func (s *Session) SetInput(in core.Input) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = in
}

// SpawnWave plans and announces the next wave right away, outside the
// regular wave timer.
func (s *Session) SpawnWave() error {
	s.mu.Lock()
	err := s.spawnWave()
	s.unlockAndFlush()
	return err
}

// SpawnEnemy adds one enemy at pos.
func (s *Session) SpawnEnemy(pos core.Vec) (int, error) {
	s.mu.Lock()
	id, err := s.spawnEnemy(pos)
	s.unlockAndFlush()
	return id, err
}

// KillEnemy removes an enemy and cancels its timers. It reports false if
// the enemy was already gone.
func (s *Session) KillEnemy(id int) bool {
	s.mu.Lock()
	ok := s.killEnemy(id)
	s.unlockAndFlush()
	return ok
}

// KillPlayer ends the player's run, saving the highscore.
func (s *Session) KillPlayer() {
	s.mu.Lock()
	s.killPlayer("killed")
	s.unlockAndFlush()
}

// pollTick applies the held input to the player and checks for collisions.
func (s *Session) pollTick() {
	s.onPlayerInput(s.input)
	if s.player != nil && s.colliding() {
		s.onCollision()
	}
}

func (s *Session) onPlayerInput(in core.Input) {
	p := s.player
	if p == nil || !p.Active {
		return
	}
	if in.Quit {
		s.killPlayer("quit")
		return
	}
	p.Body.Move(in.Dir)
	s.emit(Event{Type: EventEntityMoved, EntityID: p.ID, Kind: KindPlayer, Pos: p.Body.Pos, Size: p.Body.Size})
}

func (s *Session) colliding() bool {
	rects := make([]core.Rect, 0, len(s.enemies))
	for _, slot := range s.enemies {
		rects = append(rects, slot.enemy.Body.Rect())
	}
	return collision.Any(s.player.Body.Rect(), rects)
}

// onCollision costs one hit point per colliding tick, however many
// enemies overlap. Ticks inside the damage cooldown cost nothing.
func (s *Session) onCollision() {
	p := s.player
	now := s.clock.Now()
	if p.immune(now, s.cfg.Game.DamageCooldown()) {
		return
	}
	p.hurt, p.hurtAt = true, now
	dead := p.Damage(1)
	s.emit(Event{Type: EventPlayerDamaged, EntityID: p.ID, Kind: KindPlayer, HP: p.HP})
	if dead {
		s.killPlayer("killed")
	}
}

func (s *Session) scoreTick() {
	if p := s.player; p != nil {
		p.Score = core.Round2(p.Score + p.ScoreStep)
	}
}

func (s *Session) waveTick() {
	if err := s.spawnWave(); err != nil {
		s.logger.Error("wave failed", "error", err)
	}
}

func (s *Session) spawnPlayer() {
	pc := s.cfg.Player
	pos := s.spawn.Resolve(s.bounds, pc.Size, s.rng)
	s.nextID++
	p := &Player{
		ID:        s.nextID,
		Body:      entity.NewBodyFromConfig(pos, pc.Motion, s.bounds),
		HP:        pc.HP,
		MaxHP:     pc.MaxHP,
		ScoreStep: s.cfg.Game.ScoreStep,
		Active:    true,
	}
	s.player = p
	s.emit(Event{Type: EventEntityAdded, EntityID: p.ID, Kind: KindPlayer, Pos: p.Body.Pos, Size: p.Body.Size, HP: p.HP})
}

func (s *Session) killPlayer(reason string) {
	p := s.player
	if p == nil {
		return
	}
	p.Active = false
	p.HP = 0
	s.lastScore = p.Score

	if p.Score > s.highScore {
		saved, err := s.store.SaveHighScore(p.Score)
		switch {
		case err != nil:
			s.logger.Warn("could not save highscore", "score", p.Score, "error", err)
		case saved:
			s.logger.Info("new highscore", "score", p.Score, "previous", s.highScore)
			s.emit(Event{Type: EventHighScore, Score: p.Score})
		}
		s.highScore = p.Score
	}

	p.Body.ClearTrail()
	s.player = nil
	s.input = core.Input{}

	s.emit(Event{Type: EventEntityRemoved, EntityID: p.ID, Kind: KindPlayer, Pos: p.Body.Pos, Size: p.Body.Size})
	s.emit(Event{Type: EventPlayerDied, EntityID: p.ID, Kind: KindPlayer, Score: p.Score})
	s.logger.Info("player died", "reason", reason, "score", p.Score, "elapsed", s.clock.Now())
}

// spawnWave runs the warning phase now and schedules the spawn phase.
// The player's score step doubles with every wave.
func (s *Session) spawnWave() error {
	if s.closed {
		return ErrClosed
	}
	if !s.started {
		return ErrNoPlayer
	}

	plan := s.waves.Next(s.bounds.X, s.bounds.Y, s.rng)
	if p := s.player; p != nil {
		p.ScoreStep *= 2
	}

	s.warnings = append(s.warnings, warning{wave: plan.Number, points: plan.Points})
	s.emit(Event{Type: EventWaveStarted, Wave: plan.Number, Pattern: plan.Pattern, Points: plan.Points})
	s.emit(Event{Type: EventWarningShown, Wave: plan.Number, Pattern: plan.Pattern, Points: plan.Points})
	s.logger.Info("wave incoming",
		"wave", plan.Number,
		"pattern", plan.Pattern,
		"enemies", len(plan.Points))

	s.clock.After(s.cfg.Game.Warning(), func() {
		s.clearWarning(plan.Number)
		s.spawnPlan(plan)
	})
	return nil
}

func (s *Session) clearWarning(wave int) {
	s.warnings = slices.DeleteFunc(s.warnings, func(w warning) bool { return w.wave == wave })
	s.emit(Event{Type: EventWarningCleared, Wave: wave})
}

// spawnPlan spawns the first enemy immediately and staggers the rest by
// the pattern's delay.
func (s *Session) spawnPlan(plan waves.Plan) {
	for i, pt := range plan.Points {
		spawn := func() {
			if _, err := s.spawnEnemy(pt); err != nil {
				s.logger.Error("spawn failed", "wave", plan.Number, "pos", pt, "error", err)
			}
		}
		if i == 0 || plan.SpawnDelay == 0 {
			spawn()
			continue
		}
		s.clock.After(time.Duration(i)*plan.SpawnDelay, spawn)
	}
}

func (s *Session) spawnEnemy(pos core.Vec) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if !s.started {
		return 0, ErrNoPlayer
	}
	if !finite(pos) {
		return 0, fmt.Errorf("session: cannot add enemy at %v: %w", pos, ErrInvalidPosition)
	}

	ec := s.cfg.Enemy
	s.nextID++
	id := s.nextID
	body := entity.NewBodyFromConfig(pos, ec.Motion, s.bounds)
	enemy := pursuit.New(id, body, playerHandle{s}, peerHandle{s}, ec.Wander, ec.TTL())

	slot := &enemySlot{enemy: enemy}
	slot.ai = s.clock.Every(ec.Reevaluate(), func() {
		if enemy.Step(s.rng) {
			s.emit(Event{Type: EventEntityMoved, EntityID: id, Kind: KindEnemy, Pos: body.Pos, Size: body.Size})
		}
	})
	slot.ttl = s.clock.After(ec.TTL(), func() {
		if enemy.Expire() {
			s.logger.Debug("enemy timed out", "id", id)
			s.killEnemy(id)
		}
	})
	s.enemies = append(s.enemies, slot)

	s.emit(Event{Type: EventEntityAdded, EntityID: id, Kind: KindEnemy, Pos: body.Pos, Size: body.Size})
	s.logger.Debug("enemy spawned", "id", id, "pos", body.Pos)
	return id, nil
}

// killEnemy cancels the enemy's timers and drops it from the table in one
// step, so no callback can fire for a removed enemy.
func (s *Session) killEnemy(id int) bool {
	i := slices.IndexFunc(s.enemies, func(slot *enemySlot) bool { return slot.enemy.ID == id })
	if i < 0 {
		return false
	}
	slot := s.enemies[i]
	slot.ai.Stop()
	slot.ttl.Stop()
	slot.enemy.Remove()
	slot.enemy.Body.ClearTrail()
	s.enemies = slices.Delete(s.enemies, i, i+1)

	s.emit(Event{Type: EventEntityRemoved, EntityID: id, Kind: KindEnemy, Pos: slot.enemy.Body.Pos, Size: slot.enemy.Body.Size})
	return true
}

func (s *Session) emit(ev Event) {
	if s.sink == nil {
		return
	}
	ev.At = s.clock.Now()
	s.pending = append(s.pending, ev)
}

// unlockAndFlush releases the session lock and hands queued events to the
// sink. If another caller is already delivering, the events stay queued and
// that caller drains them, so nested and concurrent batches keep commit order.
func (s *Session) unlockAndFlush() {
	if s.flushing || s.sink == nil || len(s.pending) == 0 {
		s.mu.Unlock()
		return
	}
	s.flushing = true
	for {
		events := s.pending
		s.pending = nil
		if len(events) == 0 {
			s.flushing = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()
		for _, ev := range events {
			s.sink.Handle(ev)
		}
		s.mu.Lock()
	}
}

func finite(v core.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// playerHandle lets enemies find the player without holding it. It is only
// dereferenced from timer callbacks, under the session lock.
type playerHandle struct{ s *Session }

func (h playerHandle) Target() (core.Vec, bool) {
	p := h.s.player
	if p == nil || !p.Active {
		return core.Vec{}, false
	}
	return p.Body.Pos, true
}

type peerHandle struct{ s *Session }

func (h peerHandle) Peers() []core.Rect {
	out := make([]core.Rect, 0, len(h.s.enemies))
	for _, slot := range h.s.enemies {
		out = append(out, slot.enemy.Body.Rect())
	}
	return out
}
