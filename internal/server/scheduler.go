package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/lexicon/pkg/logger"
)

// DefaultReloadSchedule reloads overrides every five minutes.
const DefaultReloadSchedule = "@every 5m"

var scheduleParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ParseSchedule validates a five-field cron expression or a descriptor such
// as "@hourly" or "@every 30s".
func ParseSchedule(spec string) (cron.Schedule, error) {
	schedule, err := scheduleParser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("server: invalid reload schedule %q: %w", spec, err)
	}
	return schedule, nil
}

// Scheduler periodically reloads the service overrides.
type Scheduler struct {
	cron    *cron.Cron
	log     *slog.Logger
	timeout time.Duration
}

// NewScheduler registers svc.Reload on spec. A run still in progress when the
// next one is due is skipped.
func NewScheduler(svc *Service, spec string, log *slog.Logger) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultReloadSchedule
	}
	schedule, err := ParseSchedule(spec)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNope()
	}

	cl := cronLogger{log: log.With(slog.String("component", "scheduler"))}
	s := &Scheduler{
		cron: cron.New(
			cron.WithParser(scheduleParser),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		log:     log,
		timeout: time.Minute,
	}

	s.cron.Schedule(schedule, cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := svc.Reload(ctx); err != nil {
			s.log.ErrorContext(ctx, "scheduled reload failed", logger.Error(err))
		}
	}))
	return s, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Shutdown stops scheduling and waits for a running reload to finish or ctx to expire.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append([]any{logger.Error(err)}, keysAndValues...)...)
}
