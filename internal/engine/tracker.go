package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Store is the key-value text medium progress is mirrored to.
type Store interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
}

// Journal records first completions for later history queries.
type Journal interface {
	Insert(ctx context.Context, activity string, completedAt time.Time, pointsAwarded int) (int64, error)
}

// Tracker owns the day's points, completed activities and the user
// profile, and writes every change through to its Store.
//
// In-memory values only change after the store accepted the new value.
// All methods are safe for concurrent use.
type Tracker struct {
	store   Store
	journal Journal
	clock   clockwork.Clock
	log     *slog.Logger

	mu        sync.Mutex
	points    int
	completed map[ActivityID]struct{}
	profile   Profile
	lastReset *time.Time
}

type Option func(*Tracker)

func WithClock(c clockwork.Clock) Option {
	return func(t *Tracker) { t.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

func WithJournal(j Journal) Option {
	return func(t *Tracker) { t.journal = j }
}

// LoadTracker reads persisted progress, falling back to defaults for
// missing or corrupt values, then applies the daily reset check.
func LoadTracker(ctx context.Context, store Store, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		store:     store,
		clock:     clockwork.NewRealClock(),
		log:       slog.Default(),
		completed: map[ActivityID]struct{}{},
		profile:   DefaultProfile(),
	}
	for _, opt := range opts {
		opt(t)
	}

	if s, ok := t.load(ctx, KeyPoints); ok {
		if n, ok := decodePoints(s); ok {
			t.points = n
		} else {
			t.log.Warn("ignoring corrupt stored value", "key", KeyPoints, "value", s)
		}
	}
	if s, ok := t.load(ctx, KeyCompletedActivities); ok {
		if set, ok := decodeCompleted(s); ok {
			t.completed = set
		} else {
			t.log.Warn("ignoring corrupt stored value", "key", KeyCompletedActivities, "value", s)
		}
	}
	if s, ok := t.load(ctx, KeyUserInfo); ok {
		if p, ok := decodeProfile(s); ok {
			t.profile = p
		} else {
			t.log.Warn("ignoring corrupt stored value", "key", KeyUserInfo, "value", s)
		}
	}
	if s, ok := t.load(ctx, KeyLastResetTime); ok {
		if ts, ok := decodeTime(s); ok {
			t.lastReset = &ts
		} else {
			t.log.Warn("ignoring corrupt stored value", "key", KeyLastResetTime, "value", s)
		}
	}

	if _, err := t.CheckDailyReset(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// load treats read failures like absent keys.
func (t *Tracker) load(ctx context.Context, key string) (string, bool) {
	s, ok, err := t.store.Load(ctx, key)
	if err != nil {
		t.log.Warn("stored value unreadable", "key", key, "error", err)
		return "", false
	}
	return s, ok
}

// CheckDailyReset clears points and completed activities when the last
// reset happened on an earlier calendar date. It reports whether a reset
// was applied.
func (t *Tracker) CheckDailyReset(ctx context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	if !ShouldReset(t.lastReset, now) {
		return false, nil
	}

	if err := t.store.Save(ctx, KeyPoints, encodePoints(0)); err != nil {
		return false, fmt.Errorf("reset points: %w", err)
	}
	t.points = 0

	empty := map[ActivityID]struct{}{}
	if err := t.store.Save(ctx, KeyCompletedActivities, encodeCompleted(empty)); err != nil {
		return false, fmt.Errorf("reset completed activities: %w", err)
	}
	t.completed = empty

	// Written last: if anything above failed, the next check retries.
	if err := t.store.Save(ctx, KeyLastResetTime, encodeTime(now)); err != nil {
		return false, fmt.Errorf("reset timestamp: %w", err)
	}
	t.lastReset = &now

	t.log.Info("daily progress reset", "at", now.Format(time.RFC3339))
	return true, nil
}

// AddPoints adds amount (which may be negative) to the point total.
func (t *Tracker) AddPoints(ctx context.Context, amount int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.addPointsLocked(ctx, amount)
}

func (t *Tracker) addPointsLocked(ctx context.Context, amount int) error {
	next := t.points + amount
	if err := t.store.Save(ctx, KeyPoints, encodePoints(next)); err != nil {
		return fmt.Errorf("save points: %w", err)
	}
	t.points = next
	return nil
}

// MarkActivityComplete records id as done today and awards
// PointsPerActivity. Repeated calls for the same activity award nothing.
// It returns the points awarded by this call.
func (t *Tracker) MarkActivityComplete(ctx context.Context, id string) (int, error) {
	a, err := ParseActivity(id)
	if err != nil {
		return 0, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, done := t.completed[a]; done {
		return 0, nil
	}

	next := make(map[ActivityID]struct{}, len(t.completed)+1)
	for k := range t.completed {
		next[k] = struct{}{}
	}
	next[a] = struct{}{}
	if err := t.store.Save(ctx, KeyCompletedActivities, encodeCompleted(next)); err != nil {
		return 0, fmt.Errorf("save completed activities: %w", err)
	}
	t.completed = next

	if err := t.addPointsLocked(ctx, PointsPerActivity); err != nil {
		return 0, err
	}

	if t.journal != nil {
		if _, err := t.journal.Insert(ctx, string(a), t.clock.Now(), PointsPerActivity); err != nil {
			t.log.Warn("completion not journaled", "activity", a, "error", err)
		}
	}
	return PointsPerActivity, nil
}

// SetUserProfile replaces the profile wholesale.
func (t *Tracker) SetUserProfile(ctx context.Context, p Profile) error {
	p = NormalizeProfile(p)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Save(ctx, KeyUserInfo, encodeProfile(p)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	t.profile = p
	return nil
}

func (t *Tracker) Points() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.points
}

// Completed returns the completed activities in catalog order.
func (t *Tracker) Completed() []ActivityID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completedLocked()
}

func (t *Tracker) completedLocked() []ActivityID {
	out := make([]ActivityID, 0, len(t.completed))
	for _, a := range Activities {
		if _, ok := t.completed[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

func (t *Tracker) IsCompleted(a ActivityID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.completed[a]
	return ok
}

func (t *Tracker) Profile() Profile {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.profile
}

// LastReset returns nil if no reset was ever recorded.
func (t *Tracker) LastReset() *time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.lastReset == nil {
		return nil
	}
	ts := *t.lastReset
	return &ts
}

// Snapshot is a consistent copy of tracker state.
type Snapshot struct {
	Points    int
	Completed []ActivityID
	Profile   Profile
	LastReset *time.Time
	Total     int
}

func (s Snapshot) IsCompleted(a ActivityID) bool {
	for _, c := range s.Completed {
		if c == a {
			return true
		}
	}
	return false
}

func (s Snapshot) Percent() int {
	return ProgressPercent(len(s.Completed), s.Total)
}

// Remaining returns catalog activities not yet completed, in order.
func (s Snapshot) Remaining() []ActivityID {
	var out []ActivityID
	for _, a := range Activities {
		if !s.IsCompleted(a) {
			out = append(out, a)
		}
	}
	return out
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		Points:    t.points,
		Completed: t.completedLocked(),
		Profile:   t.profile,
		Total:     len(Activities),
	}
	if t.lastReset != nil {
		ts := *t.lastReset
		s.LastReset = &ts
	}
	return s
}
