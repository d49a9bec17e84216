package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"breaking_news/internal/domain"
)

// Runner is one pipeline run.
type Runner interface {
	Run(ctx context.Context) (*domain.RunStats, error)
}

// Recorder is notified after every run. May be nil.
type Recorder interface {
	RunFinished(err error, d time.Duration)
}

type Scheduler struct {
	runner   Runner
	schedule string
	timeout  time.Duration
	recorder Recorder
	logger   *slog.Logger
	parser   cron.Parser
}

func NewScheduler(runner Runner, schedule string, timeout time.Duration, recorder Recorder, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		schedule: schedule,
		timeout:  timeout,
		recorder: recorder,
		logger:   logger,
		parser:   cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

// Start runs the pipeline once right away, then on every schedule tick
// until ctx is cancelled. A tick that fires while a run is still going is
// skipped.
func (s *Scheduler) Start(ctx context.Context) error {
	sched, err := s.parser.Parse(s.schedule)
	if err != nil {
		return fmt.Errorf("parse schedule %q: %w", s.schedule, err)
	}

	log := cronLogger{logger: s.logger}
	c := cron.New(
		cron.WithParser(s.parser),
		cron.WithLogger(log),
		cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)),
	)
	c.Schedule(sched, cron.FuncJob(func() { s.runOnce(ctx) }))

	s.logger.Info("scheduler started", "schedule", s.schedule, "run_timeout", s.timeout)

	s.runOnce(ctx)

	c.Start()
	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	runCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	_, err := s.runner.Run(runCtx)
	if s.recorder != nil {
		s.recorder.RunFinished(err, time.Since(start))
	}

	switch {
	case errors.Is(err, domain.ErrRunInProgress):
		s.logger.Warn("previous run still in progress, skipping")
	case err != nil:
		s.logger.Error("run failed", "error", err)
	}
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
