package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"breaking_news/internal/config"
	"breaking_news/internal/domain"
)

// Pipeline is the entry point the scheduler calls on every tick. It drains
// whatever a previous run left behind, builds a fresh queue and drains it.
type Pipeline struct {
	dispatcher Drainer
	selector   QueueBuilder
	runState   RunStateStore
	logger     *slog.Logger
	config     config.PipelineConfig

	running atomic.Bool
}

func NewPipeline(
	dispatcher Drainer,
	selector QueueBuilder,
	runState RunStateStore,
	logger *slog.Logger,
	cfg config.PipelineConfig,
) *Pipeline {
	return &Pipeline{
		dispatcher: dispatcher,
		selector:   selector,
		runState:   runState,
		logger:     logger.With("pipeline", cfg.Name),
		config:     cfg,
	}
}

// Run executes the three steps strictly in order. Overlapping calls are
// rejected with domain.ErrRunInProgress.
func (p *Pipeline) Run(ctx context.Context) (*domain.RunStats, error) {
	if !p.running.CompareAndSwap(false, true) {
		return nil, domain.ErrRunInProgress
	}
	defer p.running.Store(false)

	startTime := time.Now()
	stats := &domain.RunStats{}

	leftover, err := p.dispatcher.Drain(ctx)
	if err != nil {
		return stats, fmt.Errorf("drain leftover queue: %w", err)
	}
	stats.Leftover = leftover.Delivered
	stats.Pages += leftover.Pages

	if leftover.Delivered > 0 {
		p.logger.Warn("delivered items left over from a previous run", "count", leftover.Delivered)
	}

	enqueued, err := p.selector.BuildQueue(ctx)
	stats.Enqueued = enqueued
	if err != nil {
		return stats, fmt.Errorf("build queue: %w", err)
	}

	fresh, err := p.dispatcher.Drain(ctx)
	if err != nil {
		return stats, fmt.Errorf("drain queue: %w", err)
	}
	stats.Delivered = leftover.Delivered + fresh.Delivered
	stats.Pages += fresh.Pages

	if err := p.updateRunState(ctx, stats); err != nil {
		return stats, fmt.Errorf("update run state: %w", err)
	}

	stats.Duration = time.Since(startTime)

	p.logger.Info("run completed",
		"leftover", stats.Leftover,
		"enqueued", stats.Enqueued,
		"delivered", stats.Delivered,
		"pages", stats.Pages,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (p *Pipeline) updateRunState(ctx context.Context, stats *domain.RunStats) error {
	if p.runState == nil {
		return nil
	}

	state, err := p.runState.Get(ctx, p.config.Name)
	if err != nil {
		return err
	}

	state.Pipeline = p.config.Name
	state.LastRunAt = time.Now()
	state.TotalEnqueued += int64(stats.Enqueued)
	state.TotalDelivered += int64(stats.Delivered)

	return p.runState.Update(ctx, state)
}
