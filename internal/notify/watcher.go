package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/recallo/recallo/internal/planner"
	"github.com/recallo/recallo/internal/srs"
)

// Notifier delivers study recommendations to the learner.
type Notifier interface {
	SendRecommendations(recs []planner.Recommendation) error
}

// ItemSource loads the current item collection.
type ItemSource interface {
	All(ctx context.Context) ([]srs.Item, error)
}

// PatternSource loads the stored study pattern.
type PatternSource interface {
	Get(ctx context.Context) (planner.StudyPattern, error)
}

// Options configures the watcher's cadence and quiet window.
type Options struct {
	IntervalMinutes int
	// QuietStartHour..QuietEndHour is suppressed; the window may wrap
	// midnight (e.g. 22..8).
	QuietStartHour int
	QuietEndHour   int
}

// Watcher periodically evaluates the collection and pushes recommendations.
type Watcher struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	items     ItemSource
	patterns  PatternSource
	opts      Options
	logger    *zap.Logger
}

// New creates a watcher. It does not start checking until Start is called.
func New(notifier Notifier, items ItemSource, patterns PatternSource, opts Options, logger *zap.Logger) *Watcher {
	if opts.IntervalMinutes <= 0 {
		opts.IntervalMinutes = 60
	}
	return &Watcher{
		scheduler: gocron.NewScheduler(time.Local),
		notifier:  notifier,
		items:     items,
		patterns:  patterns,
		opts:      opts,
		logger:    logger,
	}
}

// Start schedules periodic checks and returns immediately.
func (w *Watcher) Start() error {
	_, err := w.scheduler.Every(w.opts.IntervalMinutes).Minutes().Do(func() {
		if err := w.Check(context.Background(), time.Now()); err != nil {
			w.logger.Error("recommendation check failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule check: %w", err)
	}
	w.scheduler.StartAsync()
	return nil
}

// Stop terminates the scheduled checks.
func (w *Watcher) Stop() {
	w.scheduler.Stop()
}

// Check runs one evaluation pass. Outside quiet hours it loads the
// collection, builds recommendations, and forwards any to the notifier.
func (w *Watcher) Check(ctx context.Context, now time.Time) error {
	if w.inQuietHours(now) {
		w.logger.Debug("inside quiet hours, skipping check", zap.Int("hour", now.Hour()))
		return nil
	}

	items, err := w.items.All(ctx)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	pattern, err := w.patterns.Get(ctx)
	if err != nil {
		return fmt.Errorf("load pattern: %w", err)
	}

	recs := planner.Recommend(items, pattern, now)
	if len(recs) == 0 {
		return nil
	}

	w.logger.Info("sending recommendations", zap.Int("count", len(recs)))
	return w.notifier.SendRecommendations(recs)
}

func (w *Watcher) inQuietHours(now time.Time) bool {
	start, end := w.opts.QuietStartHour, w.opts.QuietEndHour
	if start == end {
		return false
	}
	h := now.Hour()
	if start < end {
		return h >= start && h < end
	}
	// Window wraps midnight.
	return h >= start || h < end
}
